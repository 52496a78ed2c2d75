package gold

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport(t *testing.T) {
	points := []PricePoint{
		{Date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), Price: decimal.NewFromFloat(257.93)},
		{Date: time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), Price: decimal.NewFromFloat(254.04)},
	}
	rng := testRange(t)

	f, filename, err := Export(points, rng)
	require.NoError(t, err)

	assert.Equal(t, "ceny_zlota_2023-01-02_2023-01-05.xlsx", filename)

	// Round-trip through the xlsx encoder to make sure the workbook is
	// actually readable.
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	reopened, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"date", "price"}, rows[0])
	assert.Equal(t, "2023-01-02", rows[1][0])
	assert.Equal(t, "257.93", rows[1][1])
	assert.Equal(t, "2023-01-03", rows[2][0])
}

func TestExportEmptySeries(t *testing.T) {
	f, filename, err := Export(nil, testRange(t))
	require.NoError(t, err)
	require.NotEmpty(t, filename)

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1, "headers only")
}
