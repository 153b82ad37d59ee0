// Package prayertimes looks up the day's prayer schedule from the Aladhan
// service. The lookup is best-effort: callers log failures and fall back to
// placeholder times, and nothing in the tracker depends on the result.
package prayertimes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// Timings holds the schedule entries shown on the dashboard.
type Timings struct {
	Imsak   string `json:"Imsak"`
	Fajr    string `json:"Fajr"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Placeholder is shown for a prayer time that could not be fetched.
const Placeholder = "..."

// PlaceholderTimings returns a schedule with every entry blanked out.
func PlaceholderTimings() Timings {
	return Timings{
		Imsak:   Placeholder,
		Fajr:    Placeholder,
		Dhuhr:   Placeholder,
		Asr:     Placeholder,
		Maghrib: Placeholder,
		Isha:    Placeholder,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings Timings `json:"timings"`
	} `json:"data"`
}

// FetchByCity returns the schedule for the given city and country on date.
// Method 20 is the Kemenag calculation used across Indonesia.
func (c *Client) FetchByCity(ctx context.Context, date time.Time, city, country string) (Timings, error) {
	endpoint := fmt.Sprintf("%s/timingsByCity/%02d-%02d-%d?city=%s&country=%s&method=20",
		c.baseURL, date.Day(), int(date.Month()), date.Year(),
		url.QueryEscape(city), url.QueryEscape(country))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Timings{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Timings{}, fmt.Errorf("failed to fetch prayer times: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Timings{}, fmt.Errorf("prayer time service returned %s", resp.Status)
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Timings{}, fmt.Errorf("failed to parse prayer times: %w", err)
	}
	return body.Data.Timings, nil
}
