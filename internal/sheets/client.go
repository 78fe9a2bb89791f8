package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// Source identifies one externally hosted tabular dataset.
type Source struct {
	Name          string
	SpreadsheetID string
	Sheet         string
	Range         string
}

// URL builds the gviz query URL for this source. The timestamp parameter is a
// cache buster.
func (s Source) URL(baseURL string) string {
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:json&sheet=%s&range=%s&t=%d",
		baseURL, s.SpreadsheetID, url.QueryEscape(s.Sheet), url.QueryEscape(s.Range), time.Now().UnixMilli())
}

// Client retrieves raw gviz tables over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client against the given base URL (normally
// https://docs.google.com; tests point it at a local server).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// FetchTable retrieves one sheet and decodes it into an ordered sequence of
// raw rows. The whole table either decodes or the call fails; row order is
// the source order.
func (c *Client) FetchTable(ctx context.Context, src Source) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL(c.baseURL), nil)
	if err != nil {
		return nil, &TransportError{Source: src.Name, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Source: src.Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Source: src.Name, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Source: src.Name, Err: err}
	}

	rows, err := decodeEnvelope(src.Name, string(body))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("source", src.Name).
		Int("rows", len(rows)).
		Dur("latency", time.Since(start)).
		Msg("fetched sheet")

	return rows, nil
}
