package ports

import (
	"context"

	"github.com/thisuriee/peer-pulse/internal/domain"
)

type CalendarEvent struct {
	ID       string
	MeetLink string
}

// Calendar is the external calendar-sync sink. A nil event with a nil error
// means sync is disabled. Callers treat any error as best-effort: logged,
// never propagated.
type Calendar interface {
	CreateEvent(ctx context.Context, b *domain.Booking, student, tutor *domain.User) (*CalendarEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
