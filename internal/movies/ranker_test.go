package movies

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomasz450/analityka/pkg/config"
	"github.com/tomasz450/analityka/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{
		Env:       "development",
		LogLevel:  "error",
		LogFormat: "json",
	})
}

func ptr(f float64) *float64 {
	return &f
}

func allColumns() map[string]bool {
	return map[string]bool{
		ColTitle:      true,
		ColGenre:      true,
		ColStarRating: true,
		ColDuration:   true,
	}
}

func TestTopGenresTopMovies(t *testing.T) {
	ds := &Dataset{
		Columns: allColumns(),
		Records: []MovieRecord{
			{Title: "A", Genre: "Comedy", StarRating: ptr(8.0)},
			{Title: "B", Genre: "Comedy", StarRating: nil},
			{Title: "C", Genre: "Drama", StarRating: ptr(9.0)},
			{Title: "D", Genre: "Drama", StarRating: ptr(7.5)},
			{Title: "E", Genre: "Drama", StarRating: ptr(8.5)},
			{Title: "F", Genre: "Horror", StarRating: ptr(6.0)},
		},
	}

	entries, err := NewRanker(testLogger()).TopGenresTopMovies(ds, 2, 2)
	if err != nil {
		t.Fatalf("TopGenresTopMovies() failed: %v", err)
	}

	// Drama (3 records) outranks Comedy (2); Horror is cut. Within Drama the
	// top two ratings are C (9.0) and E (8.5).
	wantTitles := []string{"C", "E", "A", "B"}
	gotTitles := make([]string, len(entries))
	for i, e := range entries {
		gotTitles[i] = e.Title
	}

	if !reflect.DeepEqual(gotTitles, wantTitles) {
		t.Errorf("Titles = %v, want %v", gotTitles, wantTitles)
	}

	if entries[0].GenreGroup != "Drama" {
		t.Errorf("First group = %s, want Drama", entries[0].GenreGroup)
	}
	if entries[2].GenreGroup != "Comedy" {
		t.Errorf("Third group = %s, want Comedy", entries[2].GenreGroup)
	}
}

func TestTopGenresTieKeepsFirstEncounteredOrder(t *testing.T) {
	// Comedy and Drama both appear once; Comedy came first in the input.
	ds := &Dataset{
		Columns: allColumns(),
		Records: []MovieRecord{
			{Title: "A", Genre: "Comedy", StarRating: ptr(8.0)},
			{Title: "B", Genre: "Comedy", StarRating: nil},
			{Title: "C", Genre: "Drama", StarRating: ptr(9.0)},
		},
	}

	entries, err := NewRanker(testLogger()).TopGenresTopMovies(ds, 2, 2)
	if err != nil {
		t.Fatalf("TopGenresTopMovies() failed: %v", err)
	}

	wantTitles := []string{"A", "B", "C"}
	gotTitles := make([]string, len(entries))
	for i, e := range entries {
		gotTitles[i] = e.Title
	}

	if !reflect.DeepEqual(gotTitles, wantTitles) {
		t.Errorf("Titles = %v, want %v", gotTitles, wantTitles)
	}

	// Unrated B sorts after rated A inside Comedy.
	if entries[1].StarRating != nil {
		t.Error("Expected the unrated record to sort last in its group")
	}
}

func TestTopGenresRatingTiesAreStable(t *testing.T) {
	ds := &Dataset{
		Columns: allColumns(),
		Records: []MovieRecord{
			{Title: "First", Genre: "Drama", StarRating: ptr(8.0)},
			{Title: "Second", Genre: "Drama", StarRating: ptr(8.0)},
			{Title: "Third", Genre: "Drama", StarRating: ptr(8.0)},
		},
	}

	entries, err := NewRanker(testLogger()).TopGenresTopMovies(ds, 1, 3)
	if err != nil {
		t.Fatalf("TopGenresTopMovies() failed: %v", err)
	}

	wantTitles := []string{"First", "Second", "Third"}
	for i, want := range wantTitles {
		if entries[i].Title != want {
			t.Errorf("entries[%d].Title = %s, want %s", i, entries[i].Title, want)
		}
	}
}

func TestTopGenresLimits(t *testing.T) {
	ds := &Dataset{
		Columns: allColumns(),
		Records: []MovieRecord{
			{Title: "A", Genre: "Comedy", StarRating: ptr(8.0)},
			{Title: "B", Genre: "Drama", StarRating: ptr(9.0)},
		},
	}

	// More genres requested than distinct genres present.
	entries, err := NewRanker(testLogger()).TopGenresTopMovies(ds, 5, 5)
	if err != nil {
		t.Fatalf("TopGenresTopMovies() failed: %v", err)
	}

	groups := make(map[string]int)
	for _, e := range entries {
		groups[e.GenreGroup]++
	}

	if len(groups) != 2 {
		t.Errorf("Expected min(5, 2) = 2 genre groups, got %d", len(groups))
	}
	for g, n := range groups {
		if n > 5 {
			t.Errorf("Group %s has %d entries, want at most 5", g, n)
		}
	}
}

func TestTopGenresEmptyInput(t *testing.T) {
	ds := &Dataset{Columns: allColumns()}

	entries, err := NewRanker(testLogger()).TopGenresTopMovies(ds, 5, 5)
	if err != nil {
		t.Fatalf("Expected empty result without error, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestTopGenresMissingGenreColumn(t *testing.T) {
	ds := &Dataset{
		Columns: map[string]bool{ColTitle: true},
		Records: []MovieRecord{{Title: "A"}},
	}

	_, err := NewRanker(testLogger()).TopGenresTopMovies(ds, 5, 5)

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaError, got %v", err)
	}
	if schemaErr.Column != ColGenre {
		t.Errorf("Expected missing column genre, got %s", schemaErr.Column)
	}
}

func TestTopGenresInvalidParameters(t *testing.T) {
	ds := &Dataset{Columns: allColumns()}

	if _, err := NewRanker(testLogger()).TopGenresTopMovies(ds, 0, 5); err == nil {
		t.Error("Expected error for topNGenres = 0")
	}
	if _, err := NewRanker(testLogger()).TopGenresTopMovies(ds, 5, -1); err == nil {
		t.Error("Expected error for negative topNMovies")
	}
}

func TestTopGenresIdempotent(t *testing.T) {
	ds := &Dataset{
		Columns: allColumns(),
		Records: []MovieRecord{
			{Title: "A", Genre: "Comedy", StarRating: ptr(8.0)},
			{Title: "B", Genre: "Comedy", StarRating: nil},
			{Title: "C", Genre: "Drama", StarRating: ptr(9.0)},
			{Title: "D", Genre: "Drama", StarRating: ptr(9.0)},
		},
	}

	ranker := NewRanker(testLogger())

	first, err := ranker.TopGenresTopMovies(ds, 2, 2)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}

	second, err := ranker.TopGenresTopMovies(ds, 2, 2)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output across runs on the same input")
	}
}
