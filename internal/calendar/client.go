package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Event is the wire shape of an event returned by an external calendar
// service.
type Event struct {
	ExternalID  string `json:"externalId"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location"`
	URL         string `json:"url"`
}

// StartTime parses the event start timestamp.
func (e Event) StartTime() (time.Time, error) {
	return time.Parse(time.RFC3339, e.Start)
}

// EndTime parses the event end timestamp.
func (e Event) EndTime() (time.Time, error) {
	return time.Parse(time.RFC3339, e.End)
}

// Client fetches events from an external calendar service over HTTP with a
// bounded timeout. A failed fetch is reported, never retried.
type Client struct {
	HTTPClient *http.Client
	// Endpoint derives the events URL from a service name. Overridable in
	// tests.
	Endpoint func(serviceName string) string
}

// NewClient creates a client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		Endpoint:   defaultEndpoint,
	}
}

func defaultEndpoint(serviceName string) string {
	return fmt.Sprintf("https://%s.com/api/events", strings.ToLower(serviceName))
}

// FetchEvents retrieves the user's events from the named service using a
// bearer token.
func (c *Client) FetchEvents(ctx context.Context, serviceName, accessToken string) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(serviceName), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar service returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var events []Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("parse events: %w", err)
	}

	return events, nil
}
