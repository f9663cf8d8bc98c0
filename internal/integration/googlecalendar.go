package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/thisuriee/peer-pulse/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type GoogleCalendarConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
}

// GoogleCalendar creates meet-enabled events for accepted sessions. With an
// empty config it stays disabled and every call is a no-op.
type GoogleCalendar struct {
	svc        *calendar.Service
	calendarID string
	logger     logger.Logger
}

func NewGoogleCalendar(ctx context.Context, cfg GoogleCalendarConfig, logger logger.Logger) (*GoogleCalendar, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		logger.Warn("google calendar credentials are empty, calendar sync disabled")
		return &GoogleCalendar{svc: nil, logger: logger}, nil
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	return &GoogleCalendar{svc: svc, calendarID: calendarID, logger: logger}, nil
}

func (g *GoogleCalendar) Enabled() bool {
	return g != nil && g.svc != nil
}

func (g *GoogleCalendar) CreateEvent(ctx context.Context, booking *domain.Booking, student, tutor *domain.User) (*ports.CalendarEvent, error) {
	if !g.Enabled() {
		return nil, nil
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Tutoring session: %s", booking.Subject),
		Description: booking.Description,
		Start: &calendar.EventDateTime{
			DateTime: booking.ScheduledAt.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: booking.EndTime().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Attendees: []*calendar.EventAttendee{
			{Email: student.Email},
			{Email: tutor.Email},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: fmt.Sprintf("booking-%s-%d", booking.ID, time.Now().UnixNano()),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).
		Context(ctx).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Do()
	if err != nil {
		return nil, fmt.Errorf("insert calendar event: %w", err)
	}

	g.logger.Info("calendar event created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", created.Id),
	)

	return &ports.CalendarEvent{ID: created.Id, MeetLink: created.HangoutLink}, nil
}

func (g *GoogleCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	if !g.Enabled() || eventID == "" {
		return nil
	}

	err := g.svc.Events.Delete(g.calendarID, eventID).
		Context(ctx).
		SendUpdates("all").
		Do()
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}

	g.logger.Info("calendar event deleted", logger.String("event_id", eventID))
	return nil
}
