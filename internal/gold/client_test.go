package gold

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasz450/analityka/internal/dates"
	"github.com/tomasz450/analityka/pkg/config"
	"github.com/tomasz450/analityka/pkg/httputil"
	"github.com/tomasz450/analityka/pkg/logger"
)

func testRange(t *testing.T) dates.DateRange {
	t.Helper()

	rng, err := dates.NewDateRange(
		time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return rng
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := &config.Config{
		Env:         "development",
		LogLevel:    "error",
		LogFormat:   "json",
		HTTPTimeout: 5 * time.Second,
		NBP:         config.NBPConfig{BaseURL: baseURL, RateLimit: 0},
	}
	log := logger.New(cfg)
	return NewClient(cfg, httputil.New(cfg, log), log)
}

func TestFetchGoldPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cenyzlota/2023-01-02/2023-01-05/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"data":"2023-01-02","cena":257.93},
			{"data":"2023-01-03","cena":254.04},
			{"data":"2023-01-04","cena":256.31}
		]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	records, err := client.FetchGoldPrices(context.Background(), testRange(t))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "2023-01-02", records[0].Data)
	assert.Equal(t, "257.93", records[0].Cena.String())
}

func TestFetchGoldPricesNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 NotFound", http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.FetchGoldPrices(context.Background(), testRange(t))
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestFetchGoldPricesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.FetchGoldPrices(context.Background(), testRange(t))

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.Message, "internal error")
}

func TestFetchGoldPricesTransportError(t *testing.T) {
	// Server is closed before the request is made.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := newTestClient(t, url)

	_, err := client.FetchGoldPrices(context.Background(), testRange(t))

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.False(t, errors.Is(err, ErrEmptyResult))
}

func TestFetchGoldPricesMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.FetchGoldPrices(context.Background(), testRange(t))

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "decode response")
}
