package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/thisuriee/peer-pulse/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	tutorsCacheKeyPrefix = "tutors:"
	tutorsCacheTTL       = time.Minute
)

var defaultSessionDurations = []int{30, 60}

type AvailabilityService struct {
	availRepo ports.AvailabilityRepo
	userRepo  ports.UserRepo
	cache     ports.Cache
	logger    logger.Logger

	// ключи выборок, записанные в кэш; сбрасываются при изменении расписания
	mu         sync.Mutex
	cachedKeys map[string]struct{}
}

func NewAvailabilityService(
	availRepo ports.AvailabilityRepo,
	userRepo ports.UserRepo,
	cache ports.Cache,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		availRepo:  availRepo,
		userRepo:   userRepo,
		cache:      cache,
		logger:     logger,
		cachedKeys: make(map[string]struct{}),
	}
}

// GetAvailability returns the tutor's record, lazily creating an inactive
// default seeded from the user's declared skills.
func (s *AvailabilityService) GetAvailability(ctx context.Context, tutorID string) (*domain.Availability, error) {
	availability, err := s.availRepo.GetByTutor(ctx, tutorID)
	if err == nil {
		return availability, nil
	}
	if !errors.Is(err, domain.ErrAvailabilityNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("resolve tutor: %w", err)
	}

	availability = &domain.Availability{
		ID:               uuid.New().String(),
		TutorID:          tutorID,
		Timezone:         "UTC",
		WeeklySchedule:   domain.WeeklySchedule{},
		DateOverrides:    []domain.DateOverride{},
		Subjects:         user.Skills,
		SessionDurations: defaultSessionDurations,
		IsActive:         false,
	}
	if err = s.availRepo.Create(ctx, availability); err != nil {
		return nil, fmt.Errorf("create default availability: %w", err)
	}

	s.logger.Info("default availability created",
		logger.String("tutor_id", tutorID),
	)

	return availability, nil
}

func (s *AvailabilityService) UpdateAvailability(ctx context.Context, tutorID string, input domain.UpdateAvailabilityInput) (*domain.Availability, error) {
	user, err := s.userRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("resolve tutor: %w", err)
	}
	if !user.Role.CanTutor() {
		return nil, fmt.Errorf("%w: only tutors can update availability settings", domain.ErrForbidden)
	}

	availability, err := s.GetAvailability(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	// Дни приходят по отдельности: заменяем только присланные
	for day, slots := range input.WeeklySchedule {
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("%w: invalid day of week %d", domain.ErrValidation, day)
		}
		if err = validateDaySlots(day, slots); err != nil {
			return nil, err
		}
		availability.WeeklySchedule[day] = slots
	}

	if input.Timezone != nil {
		availability.Timezone = *input.Timezone
	}
	if input.Subjects != nil {
		availability.Subjects = input.Subjects
	}
	if input.SessionDurations != nil {
		availability.SessionDurations = input.SessionDurations
	}
	if input.IsActive != nil {
		availability.IsActive = *input.IsActive
	}

	if err = s.availRepo.Update(ctx, availability); err != nil {
		return nil, err
	}

	s.invalidateTutors(ctx)
	s.logger.Info("availability updated",
		logger.String("tutor_id", tutorID),
	)

	return availability, nil
}

// validateDaySlots rejects malformed windows and overlaps within one day;
// the whole update aborts on the first offending day.
func validateDaySlots(day int, slots []domain.TimeSlot) error {
	for _, slot := range slots {
		if !slot.Valid() {
			return fmt.Errorf(
				"%w: invalid time slot for day %d: start time must be before end time",
				domain.ErrValidation, day,
			)
		}
	}

	sorted := make([]domain.TimeSlot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartTime < sorted[j].StartTime })
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].OverlapsSlot(sorted[i]) {
			return fmt.Errorf("%w: overlapping time slots for day %d", domain.ErrValidation, day)
		}
	}

	return nil
}

// AddDateOverride upserts the override for its calendar date.
func (s *AvailabilityService) AddDateOverride(ctx context.Context, tutorID string, override domain.DateOverride) (*domain.Availability, error) {
	date, err := time.Parse("2006-01-02", override.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid override date %q", domain.ErrValidation, override.Date)
	}
	override.Date = domain.DateKey(date)

	if override.Slots == nil {
		override.Slots = []domain.TimeSlot{}
	}
	for _, slot := range override.Slots {
		if !slot.Valid() {
			return nil, fmt.Errorf(
				"%w: invalid override slot %s-%s", domain.ErrValidation, slot.StartTime, slot.EndTime,
			)
		}
	}

	availability, err := s.GetAvailability(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, existing := range availability.DateOverrides {
		if existing.Date == override.Date {
			availability.DateOverrides[i] = override
			replaced = true
			break
		}
	}
	if !replaced {
		availability.DateOverrides = append(availability.DateOverrides, override)
	}

	if err = s.availRepo.Update(ctx, availability); err != nil {
		return nil, err
	}

	s.logger.Info("date override added",
		logger.String("tutor_id", tutorID),
		logger.String("date", override.Date),
	)

	return availability, nil
}

func (s *AvailabilityService) RemoveDateOverride(ctx context.Context, tutorID string, date time.Time) (*domain.Availability, error) {
	availability, err := s.GetAvailability(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	key := domain.DateKey(date)
	kept := availability.DateOverrides[:0]
	for _, o := range availability.DateOverrides {
		if o.Date != key {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(availability.DateOverrides) {
		return nil, domain.ErrOverrideNotFound
	}
	availability.DateOverrides = kept

	if err = s.availRepo.Update(ctx, availability); err != nil {
		return nil, err
	}

	s.logger.Info("date override removed",
		logger.String("tutor_id", tutorID),
		logger.String("date", key),
	)

	return availability, nil
}

// ListTutors lists tutor users annotated with an availability projection.
// Filtering on activeOnly happens after the join; the tutor cardinality is
// small enough for that.
func (s *AvailabilityService) ListTutors(ctx context.Context, filter domain.TutorFilter) ([]*domain.TutorWithAvailability, error) {
	cacheKey := fmt.Sprintf("%s%s:%t", tutorsCacheKeyPrefix, filter.Subject, filter.ActiveOnly)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, cacheKey); ok {
			var cached []*domain.TutorWithAvailability
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	tutors, err := s.userRepo.ListTutors(ctx, filter.Subject)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.TutorWithAvailability, 0, len(tutors))
	for _, tutor := range tutors {
		entry := &domain.TutorWithAvailability{User: tutor}

		availability, err := s.availRepo.GetByTutor(ctx, tutor.ID)
		switch {
		case err == nil:
			entry.Availability = &domain.AvailabilitySummary{
				Timezone:         availability.Timezone,
				Subjects:         availability.Subjects,
				SessionDurations: availability.SessionDurations,
				IsActive:         availability.IsActive,
			}
		case errors.Is(err, domain.ErrAvailabilityNotFound):
			// no record yet: annotated as null
		default:
			return nil, err
		}

		if filter.ActiveOnly && (entry.Availability == nil || !entry.Availability.IsActive) {
			continue
		}
		res = append(res, entry)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(res); err == nil {
			s.cache.Set(ctx, cacheKey, raw, tutorsCacheTTL)
			s.mu.Lock()
			s.cachedKeys[cacheKey] = struct{}{}
			s.mu.Unlock()
		}
	}

	return res, nil
}

// IsOpenAt implements ports.AvailabilityView. Matching happens on the UTC
// wall-clock fields of start; the stored timezone stays informational.
func (s *AvailabilityService) IsOpenAt(ctx context.Context, tutorID string, start time.Time, durationMin int) (bool, error) {
	availability, err := s.availRepo.GetByTutor(ctx, tutorID)
	if err != nil {
		if errors.Is(err, domain.ErrAvailabilityNotFound) {
			return false, nil
		}
		return false, err
	}
	if !availability.IsActive {
		return false, nil
	}

	startMin := domain.MinutesOfDay(start)
	endMin := startMin + durationMin
	if endMin > 24*60 {
		// window crosses midnight: never inside a single-day slot
		return false, nil
	}

	for _, slot := range availability.WindowsOn(start) {
		if slot.ContainsWindow(startMin, endMin) {
			return true, nil
		}
	}
	return false, nil
}

// WindowsOn implements ports.AvailabilityView.
func (s *AvailabilityService) WindowsOn(ctx context.Context, tutorID string, date time.Time) ([]domain.TimeSlot, error) {
	availability, err := s.availRepo.GetByTutor(ctx, tutorID)
	if err != nil {
		if errors.Is(err, domain.ErrAvailabilityNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !availability.IsActive {
		return nil, nil
	}
	return availability.WindowsOn(date), nil
}

func (s *AvailabilityService) invalidateTutors(ctx context.Context) {
	if s.cache == nil {
		return
	}

	s.mu.Lock()
	keys := make([]string, 0, len(s.cachedKeys))
	for key := range s.cachedKeys {
		keys = append(keys, key)
	}
	s.cachedKeys = make(map[string]struct{})
	s.mu.Unlock()

	for _, key := range keys {
		s.cache.Delete(ctx, key)
	}
}
