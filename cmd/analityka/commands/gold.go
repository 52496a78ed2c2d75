package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomasz450/analityka/internal/dates"
	"github.com/tomasz450/analityka/internal/gold"
)

// goldCmd represents the gold command.
var goldCmd = &cobra.Command{
	Use:   "gold",
	Short: "NBP gold price archive",
	Long: `Fetches gold prices (1 g, PLN) from the NBP archive.

The archive starts at 2013-01-02 and serves at most 93 days per request.
Dates accept Polish month names in any case, with or without diacritics.

Example:
  go run ./cmd/analityka gold fetch --start 2023-01-02 --end 2023-03-31
  go run ./cmd/analityka gold fetch --start "3 maja 2023" --end "30 czerwca 2023" --xlsx ceny.xlsx`,
}

// goldFetchCmd represents the fetch subcommand.
var goldFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and display a gold price series",
	RunE:  runGoldFetch,
}

var (
	// Fetch flags
	goldStart string
	goldEnd   string
	goldXLSX  string
)

func init() {
	rootCmd.AddCommand(goldCmd)
	goldCmd.AddCommand(goldFetchCmd)

	goldFetchCmd.Flags().StringVar(&goldStart, "start", "", "range start (required)")
	goldFetchCmd.Flags().StringVar(&goldEnd, "end", "", "range end (required)")
	goldFetchCmd.Flags().StringVar(&goldXLSX, "xlsx", "", "also export the series to this xlsx file")
	goldFetchCmd.MarkFlagRequired("start")
	goldFetchCmd.MarkFlagRequired("end")
}

func runGoldFetch(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	v := dates.Validator{}

	start, err := v.ValidateString("start", goldStart)
	if err != nil {
		return err
	}

	end, err := v.ValidateString("end", goldEnd)
	if err != nil {
		return err
	}

	rng, err := dates.NewDateRange(start, end)
	if err != nil {
		return err
	}

	client := gold.NewClient(rt.cfg, rt.httpClient, rt.log)

	records, err := client.FetchGoldPrices(cmd.Context(), rng)
	if err != nil {
		if errors.Is(err, gold.ErrEmptyResult) {
			PrintWarning(fmt.Sprintf("No data for range %s", rng))
			return nil
		}
		return err
	}

	points, err := gold.BuildSeries(records)
	if err != nil {
		return err
	}

	printSeries(rng, points)

	if goldXLSX != "" {
		f, _, err := gold.Export(points, rng)
		if err != nil {
			return fmt.Errorf("build export: %w", err)
		}
		if err := f.SaveAs(goldXLSX); err != nil {
			return fmt.Errorf("save export: %w", err)
		}
		PrintSuccess(fmt.Sprintf("Exported to %s", goldXLSX))
	}

	return nil
}

func printSeries(rng dates.DateRange, points []gold.PricePoint) {
	stats := gold.Stats(points)

	fmt.Println()
	PrintDoubleSeparator()
	fmt.Printf("  Gold prices %s\n", rng)
	PrintSeparator()
	PrintKeyValue("Quotations", fmt.Sprintf("%d", stats.Count), 10)
	PrintKeyValue("Mean", stats.Mean.String()+" PLN", 10)
	PrintKeyValue("Min", stats.Min.String()+" PLN", 10)
	PrintKeyValue("Max", stats.Max.String()+" PLN", 10)
	PrintSeparator()

	PrintTableHeader([]string{"Date", "Price (PLN)"}, []int{12, 12})
	for _, p := range points {
		PrintTableRow([]string{p.Date.Format("2006-01-02"), p.Price.String()}, []int{12, 12})
	}
	fmt.Println()
}
