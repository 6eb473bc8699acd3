package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		HTTPClient: server.Client(),
		Endpoint:   func(string) string { return server.URL },
	}
}

func TestClient_FetchEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"externalId": "ev-1",
				"summary": "Standup",
				"description": "Daily sync",
				"start": "2024-06-01T09:00:00Z",
				"end": "2024-06-01T09:15:00Z",
				"location": "Room 4",
				"url": "https://cal.example.com/ev-1"
			}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server)
	events, err := client.FetchEvents(context.Background(), "Google", "tok123")

	assert.NoError(t, err)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "ev-1", events[0].ExternalID)
		assert.Equal(t, "Standup", events[0].Summary)

		start, err := events[0].StartTime()
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), start)

		end, err := events[0].EndTime()
		assert.NoError(t, err)
		assert.True(t, start.Before(end))
	}
}

func TestClient_FetchEvents_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server)
	events, err := client.FetchEvents(context.Background(), "Google", "expired")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Nil(t, events)
}

func TestClient_FetchEvents_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	events, err := client.FetchEvents(context.Background(), "Google", "tok")

	assert.Error(t, err)
	assert.Nil(t, events)
}

func TestClient_FetchEvents_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := &Client{
		HTTPClient: &http.Client{Timeout: time.Second},
		Endpoint:   func(string) string { return server.URL },
	}
	events, err := client.FetchEvents(context.Background(), "Google", "tok")

	assert.Error(t, err)
	assert.Nil(t, events)
}

func TestDefaultEndpoint(t *testing.T) {
	assert.Equal(t, "https://google.com/api/events", defaultEndpoint("Google"))
	assert.Equal(t, "https://outlook.com/api/events", defaultEndpoint("Outlook"))
}
