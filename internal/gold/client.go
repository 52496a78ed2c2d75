// Package gold talks to the NBP gold-price archive and shapes its records
// into a displayable series.
package gold

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tomasz450/analityka/internal/dates"
	"github.com/tomasz450/analityka/pkg/config"
	"github.com/tomasz450/analityka/pkg/httputil"
	"github.com/tomasz450/analityka/pkg/logger"
)

// ErrEmptyResult signals a valid request for which the archive has no
// records. Distinct from FetchError: the previously displayed series should
// be kept as-is.
var ErrEmptyResult = errors.New("no gold price data for the requested range")

// FetchError reports a transport failure or an unexpected status code.
type FetchError struct {
	StatusCode int // 0 on transport errors
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("NBP request failed: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("NBP request failed: %s", e.Message)
}

// Record mirrors one entry of the NBP cenyzlota payload.
type Record struct {
	Data string          `json:"data"`
	Cena decimal.Decimal `json:"cena"`
}

// Client handles communication with the NBP API.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new NBP client. The shared HTTP client is capped at
// the configured request rate; no retry, one attempt per fetch.
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient.WithRateLimit(cfg.NBP.RateLimit),
		logger:     log,
		baseURL:    strings.TrimRight(cfg.NBP.BaseURL, "/"),
	}
}

// FetchGoldPrices fetches gold price records for a validated date range.
func (c *Client) FetchGoldPrices(ctx context.Context, rng dates.DateRange) ([]Record, error) {
	fullURL := fmt.Sprintf("%s/cenyzlota/%s/%s/",
		c.baseURL,
		rng.Start.Format("2006-01-02"),
		rng.End.Format("2006-01-02"),
	)

	resp, err := c.httpClient.GetWithHeaders(ctx, fullURL, map[string]string{
		"Accept": "application/json",
	})
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrEmptyResult
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &FetchError{Message: fmt.Sprintf("decode response: %v", err)}
	}

	c.logger.WithFields(map[string]interface{}{
		"range": rng.String(),
		"count": len(records),
	}).Debug("Fetched gold prices")

	return records, nil
}
