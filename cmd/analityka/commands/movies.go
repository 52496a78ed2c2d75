package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomasz450/analityka/internal/movies"
)

// moviesCmd represents the movies command.
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Movies CSV analysis",
	Long: `Downloads the movies CSV and computes rankings.

Example:
  go run ./cmd/analityka movies rank
  go run ./cmd/analityka movies rank --top-genres 3 --top-movies 10`,
}

// moviesRankCmd represents the rank subcommand.
var moviesRankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank top films within the most frequent genres",
	Long: `Downloads the movies dataset, selects the most frequent genres and
writes the top-rated films per genre to a CSV report.`,
	RunE: runMoviesRank,
}

var (
	// Rank flags
	rankTopGenres int
	rankTopMovies int
	rankOutFile   string
)

func init() {
	rootCmd.AddCommand(moviesCmd)
	moviesCmd.AddCommand(moviesRankCmd)

	moviesRankCmd.Flags().IntVar(&rankTopGenres, "top-genres", 5, "number of genres to keep")
	moviesRankCmd.Flags().IntVar(&rankTopMovies, "top-movies", 5, "number of films per genre")
	moviesRankCmd.Flags().StringVar(&rankOutFile, "out", movies.ReportFilename, "output CSV file")
}

func runMoviesRank(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	PrintInfo(fmt.Sprintf("Downloading movies dataset from %s", rt.cfg.Movies.CSVURL))

	loader := movies.NewLoader(rt.cfg, rt.httpClient, rt.log)
	ds, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load movies dataset: %w", err)
	}

	PrintInfo(fmt.Sprintf("Loaded %d rows", len(ds.Records)))

	ranker := movies.NewRanker(rt.log)
	entries, err := ranker.TopGenresTopMovies(ds, rankTopGenres, rankTopMovies)
	if err != nil {
		return fmt.Errorf("compute ranking: %w", err)
	}

	if len(entries) == 0 {
		return fmt.Errorf("no result produced (check that the dataset contains the expected columns)")
	}

	printRanking(entries)

	out, err := os.Create(rankOutFile)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer out.Close()

	if err := movies.WriteReport(out, ds, entries); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	PrintSuccess(fmt.Sprintf("Wrote result to %s", rankOutFile))
	return nil
}

func printRanking(entries []movies.GenreRankingEntry) {
	fmt.Println()
	PrintTableHeader([]string{"Genre", "Title", "Rating"}, []int{12, 40, 6})

	for _, e := range entries {
		rating := "-"
		if e.StarRating != nil {
			rating = fmt.Sprintf("%.1f", *e.StarRating)
		}
		PrintTableRow([]string{e.GenreGroup, e.Title, rating}, []int{12, 40, 6})
	}
	fmt.Println()
}
