package scheduler

import (
	"context"
	"time"

	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	CancelStalePending(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically cancels pending requests whose start time has
// passed without a tutor response.
type Scheduler struct {
	bookingService bookingSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelStalePending(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("pending booking expired",
			logger.String("booking_id", b.ID),
			logger.String("student_id", b.StudentID),
			logger.String("tutor_id", b.TutorID),
		)
	}
}
