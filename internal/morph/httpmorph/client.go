// Package httpmorph talks to a morphology HTTP service (for example a
// pymorphy2 or Natasha sidecar) that answers
//
//	GET {base}/parse?word=<word>
//	200 {"parses":[{"tag":"INFN","lemma":"полететь","score":0.9}]}
//	404 when the word is unknown
package httpmorph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RexarX/Contexto/internal/morph"
)

const retryDelay = 500 * time.Millisecond

// Client queries the morphology service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

var _ morph.Analyzer = (*Client)(nil)

// NewClient creates a Client for baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "httpmorph"),
	}
}

type parseResponse struct {
	Parses []morph.Parse `json:"parses"`
}

// Analyze fetches the parses for word. Returns nil, nil if the service
// does not know the word (HTTP 404).
func (c *Client) Analyze(ctx context.Context, word string) ([]morph.Parse, error) {
	reqURL := c.baseURL + "/parse?" + url.Values{"word": {word}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("httpmorph: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req, word)
	if err != nil {
		return nil, fmt.Errorf("httpmorph: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpmorph: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpmorph: read body: %w", err)
	}

	var out parseResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("httpmorph: decode json: %w", err)
	}

	c.log.DebugContext(ctx, "httpmorph response",
		slog.String("word", word),
		slog.Int("parses", len(out.Parses)),
	)

	return out.Parses, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry {
		return resp, nil
	}
	if ctx.Err() != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, ctx.Err()
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "httpmorph retry", slog.String("word", word), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return c.httpClient.Do(req)
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
