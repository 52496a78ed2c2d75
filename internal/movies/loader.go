package movies

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomasz450/analityka/pkg/config"
	"github.com/tomasz450/analityka/pkg/httputil"
	"github.com/tomasz450/analityka/pkg/logger"
)

// Loader downloads and parses the movies CSV.
type Loader struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	url        string
}

// NewLoader creates a new loader for the configured CSV source.
func NewLoader(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Loader {
	return &Loader{
		httpClient: httpClient,
		logger:     log,
		url:        cfg.Movies.CSVURL,
	}
}

// Load downloads the CSV and parses it into a dataset. Any download or
// parse failure is fatal for the run; there is no partial result.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	resp, err := l.httpClient.Get(ctx, l.url)
	if err != nil {
		return nil, fmt.Errorf("download movies CSV: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download movies CSV: unexpected status code: %d", resp.StatusCode)
	}

	ds, err := ParseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse movies CSV: %w", err)
	}

	l.logger.WithFields(map[string]interface{}{
		"url":  l.url,
		"rows": len(ds.Records),
	}).Info("Loaded movies dataset")

	return ds, nil
}

// ParseCSV parses a movies CSV. The header row decides which recognized
// columns the dataset carries; unknown columns are ignored.
func ParseCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int)
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}

	ds := &Dataset{Columns: make(map[string]bool)}
	for _, col := range []string{ColTitle, ColGenre, ColStarRating, ColDuration} {
		if _, ok := idx[col]; ok {
			ds.Columns[col] = true
		}
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec := MovieRecord{}
		if i, ok := idx[ColTitle]; ok {
			rec.Title = row[i]
		}
		if i, ok := idx[ColGenre]; ok {
			rec.Genre = row[i]
		}
		if i, ok := idx[ColStarRating]; ok {
			rec.StarRating = parseOptionalFloat(row[i])
		}
		if i, ok := idx[ColDuration]; ok {
			rec.Duration = parseOptionalFloat(row[i])
		}

		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

// parseOptionalFloat returns nil for empty or non-numeric cells.
func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
