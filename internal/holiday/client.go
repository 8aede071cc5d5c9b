// Package holiday fetches national holidays for a year from a
// Calendarific-style API and exposes them as an in-memory per-year cache.
package holiday

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// BaseURL is the Calendarific API base URL.
	BaseURL = "https://calendarific.com/api/v2"

	// DefaultTimeout bounds every holiday request. The fetch runs in the
	// background, so a hung request must not leak for the session's
	// lifetime.
	DefaultTimeout = 15 * time.Second

	// nationalType is the only holiday classification retained; all other
	// types are discarded.
	nationalType = "National holiday"
)

// Date is a calendar day a holiday falls on.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Client is the holiday API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new holiday API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: BaseURL,
		apiKey:  apiKey,
	}
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Fetch returns the national holidays of one year keyed by date. Any
// transport error, non-2xx response, or API-reported error yields an empty
// map alongside the error; the caller proceeds with "no holidays known"
// rather than stale or partial data.
func (c *Client) Fetch(year int, countryCode string) (map[Date]string, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("country", countryCode)
	query.Set("year", strconv.Itoa(year))

	reqURL := c.baseURL + "/holidays?" + query.Encode()

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return map[Date]string{}, fmt.Errorf("holiday request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[Date]string{}, fmt.Errorf("failed to read holiday response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return map[Date]string{}, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var parsed holidaysResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return map[Date]string{}, fmt.Errorf("failed to decode holiday response: %w", err)
	}

	if parsed.Meta.ErrorType != "" || parsed.Meta.ErrorDetail != "" {
		return map[Date]string{}, fmt.Errorf("holiday API error: %s", parsed.Meta.ErrorDetail)
	}

	holidays := make(map[Date]string)
	for _, h := range parsed.Response.Holidays {
		if len(h.Type) == 0 || h.Type[0] != nationalType {
			continue
		}
		d, err := time.Parse("2006-01-02", h.Date.ISO)
		if err != nil {
			// Dates with a time component are not national holidays in
			// practice; skip anything that is not a plain ISO date.
			continue
		}
		holidays[Date{Year: d.Year(), Month: int(d.Month()), Day: d.Day()}] = h.Name
	}
	return holidays, nil
}
