package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agpt-coder/availability-checker/internal/calendar"
	"github.com/agpt-coder/availability-checker/internal/model"
	"github.com/agpt-coder/availability-checker/internal/repository"
)

var (
	// ErrUnsupportedProvider is returned when the provider is not on the
	// allow-list or the token is missing.
	ErrUnsupportedProvider = errors.New("failed to connect to the calendar service: check the service provider or authorization token")
	// ErrFetchFailed is returned when the external service could not be
	// reached or answered badly.
	ErrFetchFailed = errors.New("failed to fetch events from external service")
	// ErrNoEvents is returned when the fetch succeeded but held nothing to
	// synchronize.
	ErrNoEvents = errors.New("no new events to synchronize")
)

// serviceAccountIDs maps supported providers to their fixed service
// account identifiers. Membership is the provider allow-list.
var serviceAccountIDs = map[string]string{
	"Google":  "google-service-account-id",
	"Outlook": "outlook-service-account-id",
}

// EventFetcher retrieves external calendar events. Satisfied by
// *calendar.Client.
type EventFetcher interface {
	FetchEvents(ctx context.Context, serviceName, accessToken string) ([]calendar.Event, error)
}

// CalendarService handles provider connection and event synchronization.
type CalendarService interface {
	// ConnectCalendarService validates the provider and token, persists the
	// linkage and returns the provider's service account id. No OAuth
	// handshake is performed.
	ConnectCalendarService(ctx context.Context, userID uuid.UUID, provider, token string) (string, error)
	// SyncCalendarEvents fetches events best-effort and stores them keyed on
	// external id, returning the number synchronized.
	SyncCalendarEvents(ctx context.Context, userID uuid.UUID, serviceName, accessToken, refreshToken string) (int, error)
}

type calendarService struct {
	eventRepo      repository.CalendarEventRepository
	connectionRepo repository.CalendarConnectionRepository
	fetcher        EventFetcher
}

// NewCalendarService creates a new calendar service.
func NewCalendarService(eventRepo repository.CalendarEventRepository, connectionRepo repository.CalendarConnectionRepository, fetcher EventFetcher) CalendarService {
	return &calendarService{
		eventRepo:      eventRepo,
		connectionRepo: connectionRepo,
		fetcher:        fetcher,
	}
}

func (s *calendarService) ConnectCalendarService(ctx context.Context, userID uuid.UUID, provider, token string) (string, error) {
	accountID, ok := serviceAccountIDs[provider]
	if !ok || token == "" {
		return "", ErrUnsupportedProvider
	}

	conn := &model.CalendarConnection{
		UserID:           userID,
		Provider:         provider,
		ServiceAccountID: accountID,
		AccessToken:      token,
	}
	if err := s.connectionRepo.Upsert(ctx, conn); err != nil {
		return "", fmt.Errorf("store connection: %w", err)
	}

	return accountID, nil
}

func (s *calendarService) SyncCalendarEvents(ctx context.Context, userID uuid.UUID, serviceName, accessToken, refreshToken string) (int, error) {
	events, err := s.fetcher.FetchEvents(ctx, serviceName, accessToken)
	if err != nil {
		// Swallow the transport error; the caller only learns the fetch
		// failed.
		return 0, ErrFetchFailed
	}
	if len(events) == 0 {
		return 0, ErrNoEvents
	}

	count := 0
	for _, ev := range events {
		start, err := ev.StartTime()
		if err != nil {
			continue
		}
		end, err := ev.EndTime()
		if err != nil {
			continue
		}

		record := &model.CalendarEvent{
			UserID:      userID,
			ExternalID:  ev.ExternalID,
			Summary:     ev.Summary,
			Description: ev.Description,
			Start:       start,
			End:         end,
			Location:    ev.Location,
			URL:         ev.URL,
			SyncedAt:    time.Now(),
		}
		if err := s.eventRepo.Upsert(ctx, record); err != nil {
			return count, fmt.Errorf("store event %s: %w", ev.ExternalID, err)
		}
		count++
	}

	if count == 0 {
		return 0, ErrNoEvents
	}
	return count, nil
}
