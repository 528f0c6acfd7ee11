// Package vatcomply consumes the vatcomply.com rates API
// (https://www.vatcomply.com/documentation) as the external rate provider.
package vatcomply

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ratehub/fx_rates_service/internal/apperrors"
	portssvc "github.com/ratehub/fx_rates_service/internal/core/ports/services"
)

const maxBodyBytes = 256 << 10

// Client fetches daily rate snapshots. Any transport failure or non-success
// response surfaces as apperrors.ErrProviderUnavailable; no retries are
// attempted here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ portssvc.RateProvider = (*Client)(nil)

// New creates a vatcomply client against the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchRates retrieves the snapshot of rates for the base currency on the
// given date.
func (c *Client) FetchRates(ctx context.Context, baseShortName string, date time.Time) (*portssvc.RateSnapshot, error) {
	u, err := url.Parse(c.baseURL + "/rates")
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	q := url.Values{}
	q.Set("base", strings.ToUpper(strings.TrimSpace(baseShortName)))
	q.Set("date", date.Format("2006-01-02"))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", apperrors.ErrProviderUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: vatcomply http %d: %s", apperrors.ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	var out portssvc.RateSnapshot
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", apperrors.ErrProviderUnavailable, err)
	}
	return &out, nil
}
