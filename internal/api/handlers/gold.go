package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tomasz450/analityka/internal/dates"
	"github.com/tomasz450/analityka/internal/gold"
	"github.com/tomasz450/analityka/pkg/logger"
)

// PriceFetcher fetches gold price records for a validated range.
type PriceFetcher interface {
	FetchGoldPrices(ctx context.Context, rng dates.DateRange) ([]gold.Record, error)
}

// GoldHandler handles the gold-price dashboard endpoints. It owns the
// session slot holding the currently displayed series.
type GoldHandler struct {
	fetcher PriceFetcher
	session *gold.Session
	logger  *logger.Logger
}

// NewGoldHandler creates a new gold handler.
func NewGoldHandler(fetcher PriceFetcher, session *gold.Session, log *logger.Logger) *GoldHandler {
	return &GoldHandler{
		fetcher: fetcher,
		session: session,
		logger:  log,
	}
}

// SeriesResponse is the JSON shape of a fetched series.
type SeriesResponse struct {
	Start  string            `json:"start"`
	End    string            `json:"end"`
	Stats  gold.SeriesStats  `json:"stats"`
	Points []gold.PricePoint `json:"points"`
}

// GetPrices validates the requested range, fetches it from NBP, replaces
// the session series and returns it. The start and end query parameters
// accept free-form dates, Polish month names included.
// GET /api/gold/prices?start=2023-01-02&end=3 maja 2023
func (h *GoldHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	v := dates.Validator{}

	start, err := v.ValidateString("start", r.URL.Query().Get("start"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	end, err := v.ValidateString("end", r.URL.Query().Get("end"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rng, err := dates.NewDateRange(start, end)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.fetcher.FetchGoldPrices(ctx, rng)
	if err != nil {
		// The previously displayed series stays untouched on any failure.
		if errors.Is(err, gold.ErrEmptyResult) {
			respondError(w, http.StatusNotFound,
				fmt.Sprintf("no data for range %s", rng))
			return
		}

		h.logger.WithError(err).Error("Gold price fetch failed")
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	points, err := gold.BuildSeries(records)
	if err != nil {
		h.logger.WithError(err).Error("Building price series failed")
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.session.Replace(rng, points)

	respondJSON(w, http.StatusOK, seriesResponse(rng, points))
}

// GetCurrent returns the currently displayed series.
// GET /api/gold/current
func (h *GoldHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	rng, points, ok := h.session.Current()
	if !ok {
		respondError(w, http.StatusNotFound, "no series fetched yet")
		return
	}

	respondJSON(w, http.StatusOK, seriesResponse(rng, points))
}

// Export streams the current series as an xlsx attachment.
// GET /api/gold/export
func (h *GoldHandler) Export(w http.ResponseWriter, r *http.Request) {
	rng, points, ok := h.session.Current()
	if !ok {
		respondError(w, http.StatusNotFound, "no series fetched yet")
		return
	}

	f, filename, err := gold.Export(points, rng)
	if err != nil {
		h.logger.WithError(err).Error("Export failed")
		respondError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(w); err != nil {
		h.logger.WithError(err).Error("Writing export response failed")
	}
}

func seriesResponse(rng dates.DateRange, points []gold.PricePoint) SeriesResponse {
	return SeriesResponse{
		Start:  rng.Start.Format("2006-01-02"),
		End:    rng.End.Format("2006-01-02"),
		Stats:  gold.Stats(points),
		Points: points,
	}
}
