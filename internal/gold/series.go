package gold

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one quotation: a calendar date and the price of 1 g of gold
// in PLN.
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// BuildSeries converts raw records into price points ordered ascending by
// date. Input order is preserved on duplicate dates.
func BuildSeries(records []Record) ([]PricePoint, error) {
	points := make([]PricePoint, 0, len(records))

	for _, rec := range records {
		date, err := time.Parse("2006-01-02", rec.Data)
		if err != nil {
			return nil, fmt.Errorf("parse record date %q: %w", rec.Data, err)
		}

		points = append(points, PricePoint{
			Date:  date,
			Price: rec.Cena,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}

// SeriesStats summarizes a price series for the dashboard header.
type SeriesStats struct {
	Count int             `json:"count"`
	Mean  decimal.Decimal `json:"mean"`
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"`
}

// Stats computes count, mean (2 decimal places), min and max of a series.
// A zero-value result is returned for an empty series.
func Stats(points []PricePoint) SeriesStats {
	if len(points) == 0 {
		return SeriesStats{}
	}

	sum := decimal.Zero
	min := points[0].Price
	max := points[0].Price

	for _, p := range points {
		sum = sum.Add(p.Price)
		if p.Price.LessThan(min) {
			min = p.Price
		}
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}

	return SeriesStats{
		Count: len(points),
		Mean:  sum.Div(decimal.NewFromInt(int64(len(points)))).Round(2),
		Min:   min,
		Max:   max,
	}
}
