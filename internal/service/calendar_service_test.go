package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/agpt-coder/availability-checker/internal/calendar"
	"github.com/agpt-coder/availability-checker/internal/model"
)

func TestCalendarService_ConnectCalendarService(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name              string
		provider          string
		token             string
		expectedAccountID string
		expectedError     error
	}{
		{
			name:              "google is supported",
			provider:          "Google",
			token:             "tok123",
			expectedAccountID: "google-service-account-id",
		},
		{
			name:              "outlook is supported",
			provider:          "Outlook",
			token:             "tok456",
			expectedAccountID: "outlook-service-account-id",
		},
		{
			name:          "unknown provider",
			provider:      "Yahoo",
			token:         "tok789",
			expectedError: ErrUnsupportedProvider,
		},
		{
			name:          "lowercase provider name is rejected",
			provider:      "google",
			token:         "tok123",
			expectedError: ErrUnsupportedProvider,
		},
		{
			name:          "empty token",
			provider:      "Google",
			token:         "",
			expectedError: ErrUnsupportedProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEvents := new(MockCalendarEventRepository)
			mockConns := new(MockCalendarConnectionRepository)
			if tt.expectedError == nil {
				mockConns.On("Upsert", mock.Anything, mock.MatchedBy(func(c *model.CalendarConnection) bool {
					return c.UserID == userID && c.Provider == tt.provider && c.AccessToken == tt.token
				})).Return(nil)
			}

			svc := NewCalendarService(mockEvents, mockConns, new(MockEventFetcher))
			accountID, err := svc.ConnectCalendarService(context.Background(), userID, tt.provider, tt.token)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accountID)
				mockConns.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAccountID, accountID)
			}
			mockConns.AssertExpectations(t)
		})
	}
}

func TestCalendarService_ConnectCalendarService_StoreFailure(t *testing.T) {
	mockEvents := new(MockCalendarEventRepository)
	mockConns := new(MockCalendarConnectionRepository)
	mockConns.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))

	svc := NewCalendarService(mockEvents, mockConns, new(MockEventFetcher))
	accountID, err := svc.ConnectCalendarService(context.Background(), uuid.New(), "Google", "tok")

	assert.Error(t, err)
	assert.Empty(t, accountID)
}

func TestCalendarService_SyncCalendarEvents(t *testing.T) {
	userID := uuid.New()

	wellFormed := func(id string) calendar.Event {
		return calendar.Event{
			ExternalID: id,
			Summary:    "Standup",
			Start:      "2024-06-01T09:00:00Z",
			End:        "2024-06-01T09:15:00Z",
		}
	}

	t.Run("fetch failure", func(t *testing.T) {
		mockEvents := new(MockCalendarEventRepository)
		mockConns := new(MockCalendarConnectionRepository)
		mockFetcher := new(MockEventFetcher)
		mockFetcher.On("FetchEvents", mock.Anything, "Google", "tok").Return(nil, errors.New("dial tcp: timeout"))

		svc := NewCalendarService(mockEvents, mockConns, mockFetcher)
		count, err := svc.SyncCalendarEvents(context.Background(), userID, "Google", "tok", "")

		assert.Equal(t, ErrFetchFailed, err)
		assert.Zero(t, count)
		mockEvents.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("nothing to synchronize", func(t *testing.T) {
		mockEvents := new(MockCalendarEventRepository)
		mockConns := new(MockCalendarConnectionRepository)
		mockFetcher := new(MockEventFetcher)
		mockFetcher.On("FetchEvents", mock.Anything, "Google", "tok").Return([]calendar.Event{}, nil)

		svc := NewCalendarService(mockEvents, mockConns, mockFetcher)
		count, err := svc.SyncCalendarEvents(context.Background(), userID, "Google", "tok", "")

		assert.Equal(t, ErrNoEvents, err)
		assert.Zero(t, count)
	})

	t.Run("stores every parseable event", func(t *testing.T) {
		mockEvents := new(MockCalendarEventRepository)
		mockConns := new(MockCalendarConnectionRepository)
		mockFetcher := new(MockEventFetcher)
		mockFetcher.On("FetchEvents", mock.Anything, "Google", "tok").Return([]calendar.Event{
			wellFormed("ev-1"),
			wellFormed("ev-2"),
		}, nil)
		mockEvents.On("Upsert", mock.Anything, mock.MatchedBy(func(e *model.CalendarEvent) bool {
			return e.UserID == userID && e.Summary == "Standup" && !e.SyncedAt.IsZero()
		})).Return(nil).Twice()

		svc := NewCalendarService(mockEvents, mockConns, mockFetcher)
		count, err := svc.SyncCalendarEvents(context.Background(), userID, "Google", "tok", "refresh")

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		mockEvents.AssertExpectations(t)
	})

	t.Run("skips events with malformed timestamps", func(t *testing.T) {
		mockEvents := new(MockCalendarEventRepository)
		mockConns := new(MockCalendarConnectionRepository)
		mockFetcher := new(MockEventFetcher)
		mockFetcher.On("FetchEvents", mock.Anything, "Google", "tok").Return([]calendar.Event{
			{ExternalID: "bad", Start: "yesterday", End: "tomorrow"},
			wellFormed("ev-1"),
		}, nil)
		mockEvents.On("Upsert", mock.Anything, mock.MatchedBy(func(e *model.CalendarEvent) bool {
			return e.ExternalID == "ev-1"
		})).Return(nil).Once()

		svc := NewCalendarService(mockEvents, mockConns, mockFetcher)
		count, err := svc.SyncCalendarEvents(context.Background(), userID, "Google", "tok", "")

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		mockEvents.AssertExpectations(t)
	})

	t.Run("only malformed events reports nothing to synchronize", func(t *testing.T) {
		mockEvents := new(MockCalendarEventRepository)
		mockConns := new(MockCalendarConnectionRepository)
		mockFetcher := new(MockEventFetcher)
		mockFetcher.On("FetchEvents", mock.Anything, "Google", "tok").Return([]calendar.Event{
			{ExternalID: "bad", Start: "not-a-time", End: "not-a-time"},
		}, nil)

		svc := NewCalendarService(mockEvents, mockConns, mockFetcher)
		count, err := svc.SyncCalendarEvents(context.Background(), userID, "Google", "tok", "")

		assert.Equal(t, ErrNoEvents, err)
		assert.Zero(t, count)
	})

	t.Run("store failure returns partial count", func(t *testing.T) {
		mockEvents := new(MockCalendarEventRepository)
		mockConns := new(MockCalendarConnectionRepository)
		mockFetcher := new(MockEventFetcher)
		mockFetcher.On("FetchEvents", mock.Anything, "Google", "tok").Return([]calendar.Event{
			wellFormed("ev-1"),
			wellFormed("ev-2"),
		}, nil)
		mockEvents.On("Upsert", mock.Anything, mock.MatchedBy(func(e *model.CalendarEvent) bool {
			return e.ExternalID == "ev-1"
		})).Return(nil).Once()
		mockEvents.On("Upsert", mock.Anything, mock.MatchedBy(func(e *model.CalendarEvent) bool {
			return e.ExternalID == "ev-2"
		})).Return(errors.New("disk full")).Once()

		svc := NewCalendarService(mockEvents, mockConns, mockFetcher)
		count, err := svc.SyncCalendarEvents(context.Background(), userID, "Google", "tok", "")

		assert.Error(t, err)
		assert.Equal(t, 1, count)
	})
}
