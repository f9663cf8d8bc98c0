package ports

import (
	"context"
	"time"

	"github.com/thisuriee/peer-pulse/internal/domain"
)

type AvailabilityRepo interface {
	GetByTutor(ctx context.Context, tutorID string) (*domain.Availability, error)
	Create(ctx context.Context, a *domain.Availability) error
	Update(ctx context.Context, a *domain.Availability) error
}

// AvailabilityView is the schedule truth the booking manager consults.
type AvailabilityView interface {
	// IsOpenAt reports whether the tutor is open for the whole window
	// starting at start and lasting durationMin minutes.
	IsOpenAt(ctx context.Context, tutorID string, start time.Time, durationMin int) (bool, error)
	// WindowsOn resolves the candidate windows for one calendar date.
	// Missing or inactive availability yields no windows.
	WindowsOn(ctx context.Context, tutorID string, date time.Time) ([]domain.TimeSlot, error)
}
