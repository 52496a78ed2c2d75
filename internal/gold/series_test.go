package gold

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestBuildSeries(t *testing.T) {
	tests := []struct {
		name      string
		records   []Record
		wantDates []string
		wantErr   bool
	}{
		{
			name: "unsorted input gets sorted ascending",
			records: []Record{
				{Data: "2023-01-04", Cena: decimal.NewFromInt(256)},
				{Data: "2023-01-02", Cena: decimal.NewFromInt(257)},
				{Data: "2023-01-03", Cena: decimal.NewFromInt(254)},
			},
			wantDates: []string{"2023-01-02", "2023-01-03", "2023-01-04"},
		},
		{
			name:      "empty input",
			records:   []Record{},
			wantDates: []string{},
		},
		{
			name: "bad date fails",
			records: []Record{
				{Data: "02-01-2023", Cena: decimal.NewFromInt(256)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := BuildSeries(tt.records)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuildSeries() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			if len(points) != len(tt.wantDates) {
				t.Fatalf("BuildSeries() returned %d points, want %d", len(points), len(tt.wantDates))
			}
			for i, want := range tt.wantDates {
				if got := points[i].Date.Format("2006-01-02"); got != want {
					t.Errorf("points[%d].Date = %s, want %s", i, got, want)
				}
			}
		})
	}
}

func TestBuildSeriesStableOnDuplicateDates(t *testing.T) {
	records := []Record{
		{Data: "2023-01-02", Cena: decimal.NewFromInt(100)},
		{Data: "2023-01-02", Cena: decimal.NewFromInt(200)},
	}

	points, err := BuildSeries(records)
	if err != nil {
		t.Fatalf("BuildSeries() failed: %v", err)
	}

	if !points[0].Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected input order preserved on duplicate dates, got %s first", points[0].Price)
	}
}

func TestStats(t *testing.T) {
	points := []PricePoint{
		{Date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), Price: mustDecimal(t, "250.00")},
		{Date: time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), Price: mustDecimal(t, "260.00")},
		{Date: time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), Price: mustDecimal(t, "240.50")},
	}

	stats := Stats(points)

	if stats.Count != 3 {
		t.Errorf("Count = %d, want 3", stats.Count)
	}
	if got := stats.Mean.String(); got != "250.17" {
		t.Errorf("Mean = %s, want 250.17", got)
	}
	if got := stats.Min.String(); got != "240.5" {
		t.Errorf("Min = %s, want 240.5", got)
	}
	if got := stats.Max.String(); got != "260" {
		t.Errorf("Max = %s, want 260", got)
	}
}

func TestStatsEmpty(t *testing.T) {
	stats := Stats(nil)

	if stats.Count != 0 {
		t.Errorf("Count = %d, want 0", stats.Count)
	}
	if !stats.Mean.IsZero() {
		t.Errorf("Mean = %s, want 0", stats.Mean)
	}
}

func TestSessionReplaceAndCurrent(t *testing.T) {
	s := NewSession()

	if _, _, ok := s.Current(); ok {
		t.Fatal("Expected empty session before first fetch")
	}

	points := []PricePoint{
		{Date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), Price: decimal.NewFromInt(250)},
	}
	s.Replace(testRange(t), points)

	rng, got, ok := s.Current()
	if !ok {
		t.Fatal("Expected session to be loaded")
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 point, got %d", len(got))
	}
	if rng.String() != "2023-01-02..2023-01-05" {
		t.Errorf("Unexpected range %s", rng)
	}
}
