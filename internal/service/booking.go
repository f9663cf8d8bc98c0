package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/thisuriee/peer-pulse/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	userRepo     ports.UserRepo
	availability ports.AvailabilityView
	calendar     ports.Calendar
	notifier     ports.BookingNotifier
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	availability ports.AvailabilityView,
	calendar ports.Calendar,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		availability: availability,
		calendar:     calendar,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *BookingService) Create(ctx context.Context, studentID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	tutor, err := s.userRepo.GetByID(ctx, input.TutorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrTutorNotFound
		}
		return nil, fmt.Errorf("resolve tutor: %w", err)
	}
	if !tutor.Role.CanTutor() {
		return nil, fmt.Errorf("%w: selected user is not a tutor", domain.ErrValidation)
	}

	if studentID == input.TutorID {
		return nil, fmt.Errorf("%w: you cannot book a session with yourself", domain.ErrValidation)
	}
	if err = validateWindow(input.ScheduledAt, input.Duration); err != nil {
		return nil, err
	}
	if input.Subject == "" {
		return nil, fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}

	open, err := s.availability.IsOpenAt(ctx, input.TutorID, input.ScheduledAt, input.Duration)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !open {
		return nil, domain.ErrSlotUnavailable
	}

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		StudentID:   studentID,
		TutorID:     input.TutorID,
		Subject:     input.Subject,
		Description: input.Description,
		Notes:       input.Notes,
		ScheduledAt: input.ScheduledAt.UTC(),
		Duration:    input.Duration,
		Status:      domain.BookingStatusPending,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("student_id", studentID),
		logger.String("tutor_id", input.TutorID),
		logger.String("scheduled_at", booking.ScheduledAt.Format(time.RFC3339)),
	)

	go s.notifier.NotifyBookingRequested(context.WithoutCancel(ctx), tutor, booking)

	return booking, nil
}

// Update lets the creating student change a still-pending request. Schedule
// changes re-run the availability and conflict checks.
func (s *BookingService) Update(ctx context.Context, bookingID, userID string, input domain.UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.StudentID != userID {
		return nil, fmt.Errorf("%w: only the requesting student can update a booking", domain.ErrForbidden)
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	if input.Subject != nil {
		booking.Subject = *input.Subject
	}
	if input.Description != nil {
		booking.Description = *input.Description
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	rescheduled := input.ScheduledAt != nil || input.Duration != nil
	if input.ScheduledAt != nil {
		booking.ScheduledAt = input.ScheduledAt.UTC()
	}
	if input.Duration != nil {
		booking.Duration = *input.Duration
	}

	if rescheduled {
		if err = validateWindow(booking.ScheduledAt, booking.Duration); err != nil {
			return nil, err
		}
		open, err := s.availability.IsOpenAt(ctx, booking.TutorID, booking.ScheduledAt, booking.Duration)
		if err != nil {
			return nil, fmt.Errorf("check availability: %w", err)
		}
		if !open {
			return nil, domain.ErrSlotUnavailable
		}
	}

	if err = s.bookingRepo.Reschedule(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", bookingID),
		logger.String("student_id", userID),
	)

	return booking, nil
}

// Accept moves a pending booking to accepted and then tries calendar sync.
// A successful sync confirms the booking and may supply an auto-generated
// meet link; a failed sync is logged and the booking stays accepted.
func (s *BookingService) Accept(ctx context.Context, bookingID, tutorID string, input domain.AcceptBookingInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.TutorID != tutorID {
		return nil, fmt.Errorf("%w: only the assigned tutor can accept this booking", domain.ErrForbidden)
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	if err = s.bookingRepo.Accept(ctx, bookingID, input.MeetingLink, input.Notes); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusAccepted
	if input.MeetingLink != "" {
		booking.MeetingLink = input.MeetingLink
	}
	if input.Notes != "" {
		booking.Notes = input.Notes
	}

	s.logger.Info("booking accepted",
		logger.String("booking_id", bookingID),
		logger.String("tutor_id", tutorID),
	)

	s.syncCalendar(ctx, booking)

	if student, err := s.userRepo.GetByID(ctx, booking.StudentID); err == nil {
		go s.notifier.NotifyBookingAccepted(context.WithoutCancel(ctx), student, booking)
	}

	return booking, nil
}

// syncCalendar is best-effort: every failure path only logs.
func (s *BookingService) syncCalendar(ctx context.Context, booking *domain.Booking) {
	student, err := s.userRepo.GetByID(ctx, booking.StudentID)
	if err != nil {
		s.logger.Error("calendar sync skipped: resolve student",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	tutor, err := s.userRepo.GetByID(ctx, booking.TutorID)
	if err != nil {
		s.logger.Error("calendar sync skipped: resolve tutor",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.calendar.CreateEvent(ctx, booking, student, tutor)
	if err != nil {
		s.logger.Error("calendar sync failed",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	if event == nil {
		// sync disabled
		return
	}

	if err = s.bookingRepo.Confirm(ctx, booking.ID, event.ID, event.MeetLink); err != nil {
		s.logger.Error("failed to confirm booking after calendar sync",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	booking.Status = domain.BookingStatusConfirmed
	booking.CalendarEventID = event.ID
	if event.MeetLink != "" {
		booking.MeetingLink = event.MeetLink
	}

	s.logger.Info("booking confirmed via calendar sync",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", event.ID),
	)
}

func (s *BookingService) Decline(ctx context.Context, bookingID, tutorID, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.TutorID != tutorID {
		return nil, fmt.Errorf("%w: only the assigned tutor can decline this booking", domain.ErrForbidden)
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	if err = s.bookingRepo.Decline(ctx, bookingID, reason, tutorID); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusDeclined
	booking.CancelReason = reason
	booking.CancelledBy = tutorID

	s.logger.Info("booking declined",
		logger.String("booking_id", bookingID),
		logger.String("tutor_id", tutorID),
	)

	if student, err := s.userRepo.GetByID(ctx, booking.StudentID); err == nil {
		go s.notifier.NotifyBookingDeclined(context.WithoutCancel(ctx), student, booking)
	}

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID, userID, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsParty(userID) {
		return nil, fmt.Errorf("%w: only a booking participant can cancel it", domain.ErrForbidden)
	}
	if !booking.Status.Active() {
		return nil, fmt.Errorf("%w: booking is already %s", domain.ErrInvalidTransition, booking.Status)
	}

	if booking.CalendarEventID != "" {
		if err = s.calendar.DeleteEvent(ctx, booking.CalendarEventID); err != nil {
			s.logger.Error("failed to delete calendar event",
				logger.String("booking_id", bookingID),
				logger.String("event_id", booking.CalendarEventID),
				logger.String("error", err.Error()),
			)
		}
	}

	if err = s.bookingRepo.Cancel(ctx, bookingID, reason, userID); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCancelled
	booking.CancelReason = reason
	booking.CancelledBy = userID

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("user_id", userID),
	)

	// уведомляем вторую сторону
	otherID := booking.StudentID
	if userID == booking.StudentID {
		otherID = booking.TutorID
	}
	if other, err := s.userRepo.GetByID(ctx, otherID); err == nil {
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), other, booking)
	}

	return booking, nil
}

func (s *BookingService) Complete(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsParty(userID) {
		return nil, fmt.Errorf("%w: only a booking participant can complete it", domain.ErrForbidden)
	}
	if booking.Status != domain.BookingStatusAccepted && booking.Status != domain.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, booking.Status)
	}
	if booking.ScheduledAt.After(time.Now()) {
		return nil, fmt.Errorf("%w: session has not started yet", domain.ErrValidation)
	}

	completedAt := time.Now().UTC()
	if err = s.bookingRepo.Complete(ctx, bookingID, completedAt); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCompleted
	booking.CompletedAt = &completedAt

	s.logger.Info("booking completed",
		logger.String("booking_id", bookingID),
		logger.String("user_id", userID),
	)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID, userID string, role domain.Role) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsParty(userID) && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: booking belongs to another user", domain.ErrForbidden)
	}
	return booking, nil
}

// List returns the caller's bookings: students see their requests, tutors
// their tutoring sessions, admins everything.
func (s *BookingService) List(ctx context.Context, userID string, role domain.Role, status domain.BookingStatus) ([]*domain.Booking, error) {
	filter := domain.BookingFilter{Status: status}
	switch role {
	case domain.RoleTutor:
		filter.TutorID = userID
	case domain.RoleAdmin:
	default:
		filter.StudentID = userID
	}
	return s.bookingRepo.List(ctx, filter)
}

// AvailableSlots walks the tutor's windows for one date in fixed strides,
// dropping sub-windows in the past or overlapping an active booking.
func (s *BookingService) AvailableSlots(ctx context.Context, tutorID string, date time.Time, durationMin int) ([]domain.SlotWindow, error) {
	if durationMin < domain.MinDurationMinutes || durationMin > domain.MaxDurationMinutes {
		return nil, fmt.Errorf(
			"%w: duration must be between %d and %d minutes",
			domain.ErrValidation, domain.MinDurationMinutes, domain.MaxDurationMinutes,
		)
	}

	if _, err := s.userRepo.GetByID(ctx, tutorID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrTutorNotFound
		}
		return nil, fmt.Errorf("resolve tutor: %w", err)
	}

	windows, err := s.availability.WindowsOn(ctx, tutorID, date)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []domain.SlotWindow{}, nil
	}

	dayStart := domain.DayStart(date)
	dayEnd := dayStart.Add(24 * time.Hour)
	booked, err := s.bookingRepo.ListActiveOverlapping(ctx, tutorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	slots := make([]domain.SlotWindow, 0)
	for _, window := range windows {
		winStart, winEnd, ok := window.Bounds()
		if !ok {
			continue
		}
		for stepMin := winStart; stepMin+durationMin <= winEnd; stepMin += domain.SlotStepMinutes {
			start := dayStart.Add(time.Duration(stepMin) * time.Minute)
			end := start.Add(time.Duration(durationMin) * time.Minute)

			if start.Before(now) {
				continue
			}
			if overlapsAny(start, end, booked) {
				continue
			}

			slots = append(slots, domain.SlotWindow{
				StartTime: start,
				EndTime:   end,
				Duration:  durationMin,
			})
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime.Before(slots[j].StartTime) })

	return slots, nil
}

// CancelStalePending sweeps pending requests whose start time has passed.
func (s *BookingService) CancelStalePending(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStalePending(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale pending bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		student, err := s.userRepo.GetByID(ctx, b.StudentID)
		if err != nil {
			s.logger.Error("failed to get student for cancel notification",
				logger.String("student_id", b.StudentID),
			)
			continue
		}
		s.notifier.NotifyBookingCancelled(ctx, student, b)
	}
}

func overlapsAny(start, end time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if domain.Overlap(start, end, b.ScheduledAt, b.EndTime()) {
			return true
		}
	}
	return false
}

func validateWindow(scheduledAt time.Time, durationMin int) error {
	if durationMin < domain.MinDurationMinutes || durationMin > domain.MaxDurationMinutes {
		return fmt.Errorf(
			"%w: duration must be between %d and %d minutes",
			domain.ErrValidation, domain.MinDurationMinutes, domain.MaxDurationMinutes,
		)
	}
	if !scheduledAt.After(time.Now()) {
		return fmt.Errorf("%w: scheduled time must be in the future", domain.ErrValidation)
	}
	return nil
}
