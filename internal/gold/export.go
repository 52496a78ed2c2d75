package gold

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tomasz450/analityka/internal/dates"
)

// ExportSheet is the single sheet name of the export workbook.
const ExportSheet = "Ceny zlota"

// Export builds an in-memory xlsx workbook with one sheet holding the
// series, headers matching the PricePoint attributes. The returned filename
// encodes the selected date range.
func Export(points []PricePoint, rng dates.DateRange) (*excelize.File, string, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetCellValue(ExportSheet, "A1", "date"); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellValue(ExportSheet, "B1", "price"); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}

	for i, p := range points {
		row := i + 2

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(ExportSheet, cell, p.Date.Format("2006-01-02")); err != nil {
			return nil, "", fmt.Errorf("write row %d: %w", row, err)
		}

		cell, err = excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return nil, "", fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(ExportSheet, cell, p.Price.InexactFloat64()); err != nil {
			return nil, "", fmt.Errorf("write row %d: %w", row, err)
		}
	}

	filename := fmt.Sprintf("ceny_zlota_%s_%s.xlsx",
		rng.Start.Format("2006-01-02"),
		rng.End.Format("2006-01-02"),
	)

	return f, filename, nil
}
