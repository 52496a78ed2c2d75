package movies

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReportFilename is the fixed name of the ranking report.
const ReportFilename = "top5_genres_top_movies.csv"

// WriteReport writes the ranking as CSV: a genre_group column first, then
// only the recognized columns that were present in the source dataset.
func WriteReport(w io.Writer, ds *Dataset, entries []GenreRankingEntry) error {
	cw := csv.NewWriter(w)

	cols := []string{"genre_group"}
	for _, col := range []string{ColTitle, ColStarRating, ColDuration, ColGenre} {
		if ds.HasColumn(col) {
			cols = append(cols, col)
		}
	}

	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		row := []string{e.GenreGroup}
		for _, col := range cols[1:] {
			switch col {
			case ColTitle:
				row = append(row, e.Title)
			case ColStarRating:
				row = append(row, formatOptionalFloat(e.StarRating))
			case ColDuration:
				row = append(row, formatOptionalFloat(e.Duration))
			case ColGenre:
				row = append(row, e.Genre)
			}
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
