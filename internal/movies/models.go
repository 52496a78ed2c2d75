// Package movies loads the IMDb-style movies CSV and ranks the top films
// within the most frequent genres.
package movies

// Column names recognized in the movies dataset. Only genre is required;
// the rest are projected into the report when present.
const (
	ColTitle      = "title"
	ColGenre      = "genre"
	ColStarRating = "star_rating"
	ColDuration   = "duration"
)

// MovieRecord is one row of the source CSV. Immutable once loaded.
// StarRating and Duration are nil when the cell is empty or non-numeric.
type MovieRecord struct {
	Title      string
	Genre      string
	StarRating *float64
	Duration   *float64
}

// Dataset is the loaded CSV: the set of recognized header columns that were
// present in the source, plus all parsed rows in file order.
type Dataset struct {
	Columns map[string]bool
	Records []MovieRecord
}

// HasColumn reports whether the source header contained the named column.
func (d *Dataset) HasColumn(name string) bool {
	return d.Columns[name]
}

// GenreRankingEntry is one row of the ranking report: the genre group it
// belongs to plus the projected source attributes.
type GenreRankingEntry struct {
	GenreGroup string
	Title      string
	StarRating *float64
	Duration   *float64
	Genre      string
}
