package ports

import (
	"context"
	"time"

	"github.com/thisuriee/peer-pulse/internal/domain"
)

type BookingRepo interface {
	// Create inserts the booking after re-checking for overlaps inside a
	// single transaction holding a per-tutor lock. Returns
	// domain.ErrBookingConflict when the window is already taken.
	Create(ctx context.Context, b *domain.Booking) error
	// Reschedule persists subject/description/notes/schedule changes for a
	// pending booking, re-running the overlap check (excluding the booking
	// itself) under the same per-tutor lock.
	Reschedule(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	// ListActiveOverlapping returns active bookings for the tutor whose
	// windows intersect [from, to).
	ListActiveOverlapping(ctx context.Context, tutorID string, from, to time.Time) ([]*domain.Booking, error)

	Accept(ctx context.Context, id, meetingLink, notes string) error
	Confirm(ctx context.Context, id, eventID, meetLink string) error
	Decline(ctx context.Context, id, reason, actorID string) error
	Cancel(ctx context.Context, id, reason, actorID string) error
	Complete(ctx context.Context, id string, completedAt time.Time) error

	// CancelStalePending cancels pending bookings whose start time has
	// passed and returns them.
	CancelStalePending(ctx context.Context) ([]*domain.Booking, error)
}
