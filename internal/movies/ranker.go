package movies

import (
	"fmt"
	"sort"

	"github.com/tomasz450/analityka/pkg/logger"
)

// SchemaError reports a dataset missing a required column. This is a
// configuration error for the whole dataset, not a per-record failure.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required column %q", e.Column)
}

// Ranker selects the most frequent genres and the top-rated films within
// each. The transformation is pure; writing the report is the caller's job.
type Ranker struct {
	logger *logger.Logger
}

// NewRanker creates a new ranker.
func NewRanker(log *logger.Logger) *Ranker {
	return &Ranker{logger: log}
}

// TopGenresTopMovies ranks genres by record count, keeps the topNGenres most
// frequent ones (ties keep first-encountered order), and within each genre
// orders records by star rating descending with unrated records last, keeping
// the first topNMovies. All sorts are stable, so equal ratings keep their
// original relative order. An empty dataset yields an empty result.
func (r *Ranker) TopGenresTopMovies(ds *Dataset, topNGenres, topNMovies int) ([]GenreRankingEntry, error) {
	if topNGenres <= 0 || topNMovies <= 0 {
		return nil, fmt.Errorf("topNGenres and topNMovies must be positive, got %d and %d", topNGenres, topNMovies)
	}

	if !ds.HasColumn(ColGenre) {
		return nil, &SchemaError{Column: ColGenre}
	}

	counts := make(map[string]int)
	var order []string // genres in first-encountered order

	for _, rec := range ds.Records {
		if _, seen := counts[rec.Genre]; !seen {
			order = append(order, rec.Genre)
		}
		counts[rec.Genre]++
	}

	genres := append([]string(nil), order...)
	sort.SliceStable(genres, func(i, j int) bool {
		return counts[genres[i]] > counts[genres[j]]
	})
	if len(genres) > topNGenres {
		genres = genres[:topNGenres]
	}

	var entries []GenreRankingEntry
	for _, genre := range genres {
		var group []MovieRecord
		for _, rec := range ds.Records {
			if rec.Genre == genre {
				group = append(group, rec)
			}
		}

		sort.SliceStable(group, func(i, j int) bool {
			return ratingLess(group[j].StarRating, group[i].StarRating)
		})

		if len(group) > topNMovies {
			group = group[:topNMovies]
		}

		for _, rec := range group {
			entries = append(entries, GenreRankingEntry{
				GenreGroup: genre,
				Title:      rec.Title,
				StarRating: rec.StarRating,
				Duration:   rec.Duration,
				Genre:      rec.Genre,
			})
		}
	}

	r.logger.WithFields(map[string]interface{}{
		"genres":  len(genres),
		"entries": len(entries),
	}).Info("Ranking completed")

	return entries, nil
}

// ratingLess orders ratings ascending with nil below any present value, so
// that sorting descending puts unrated records last.
func ratingLess(a, b *float64) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	default:
		return *a < *b
	}
}
