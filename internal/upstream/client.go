package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rainman226/asa-bot-f1-service/internal"
)

// DefaultBaseURL points at the Jolpica mirror of the Ergast F1 API.
const DefaultBaseURL = "https://api.jolpi.ca/ergast/f1/"

// ErrUnavailable marks any failure to fetch or decode upstream data:
// network errors, non-2xx statuses, malformed JSON, or a payload missing
// the expected envelope keys. Callers translate it to a 502.
var ErrUnavailable = errors.New("upstream racing API unavailable")

// ScheduleSource is what the HTTP layer consumes, so tests can swap in
// fixtures without a live server.
type ScheduleSource interface {
	CurrentSchedule(ctx context.Context) ([]Race, error)
	LastRaceResults(ctx context.Context) ([]Race, error)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  internal.Logger
}

func NewClient(baseURL string, logger internal.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// CurrentSchedule fetches the current season's full race calendar.
func (c *Client) CurrentSchedule(ctx context.Context) ([]Race, error) {
	return c.fetchRaces(ctx, "current.json")
}

// LastRaceResults fetches the most recently completed race with its
// Results list. The returned race list may be empty before the first
// race of a season; that is not an error at this layer.
func (c *Client) LastRaceResults(ctx context.Context) ([]Race, error) {
	return c.fetchRaces(ctx, "current/last/results.json")
}

func (c *Client) fetchRaces(ctx context.Context, path string) ([]Race, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrUnavailable, url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Errorf("upstream fetch failed for %s: %v", url, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Errorf("upstream returned status %d for %s", resp.StatusCode, url)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Errorf("upstream JSON decode failed for %s: %v", url, err)
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	if env.MRData.RaceTable == nil {
		c.logger.Errorf("upstream payload for %s is missing RaceTable", url)
		return nil, fmt.Errorf("%w: payload missing RaceTable", ErrUnavailable)
	}

	return env.MRData.RaceTable.Races, nil
}

var _ ScheduleSource = (*Client)(nil)
