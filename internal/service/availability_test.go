package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/thisuriee/peer-pulse/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newAvailabilityService(t *testing.T) (*mocks.MockAvailabilityRepo, *mocks.MockUserRepo, *AvailabilityService) {
	t.Helper()
	availRepo := mocks.NewMockAvailabilityRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAvailabilityService(availRepo, userRepo, nil, newTestLogger(t))
	return availRepo, userRepo, svc
}

func TestAvailabilityService_GetAvailability_Existing(t *testing.T) {
	availRepo, _, svc := newAvailabilityService(t)

	existing := &domain.Availability{ID: "a1", TutorID: "t1", IsActive: true}
	availRepo.EXPECT().GetByTutor(mock.Anything, "t1").Return(existing, nil)

	got, err := svc.GetAvailability(context.Background(), "t1")

	require.NoError(t, err)
	assert.Same(t, existing, got)
}

func TestAvailabilityService_GetAvailability_LazyCreate(t *testing.T) {
	availRepo, userRepo, svc := newAvailabilityService(t)

	availRepo.EXPECT().GetByTutor(mock.Anything, "t1").Return(nil, domain.ErrAvailabilityNotFound)
	userRepo.EXPECT().GetByID(mock.Anything, "t1").
		Return(&domain.User{ID: "t1", Role: domain.RoleTutor, Skills: []string{"math", "physics"}}, nil)
	availRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.GetAvailability(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "t1", got.TutorID)
	assert.False(t, got.IsActive, "defaults start hidden from search")
	assert.Equal(t, "UTC", got.Timezone)
	assert.Equal(t, []string{"math", "physics"}, got.Subjects)
	assert.Equal(t, []int{30, 60}, got.SessionDurations)
	assert.Empty(t, got.WeeklySchedule)
	assert.NotEmpty(t, got.ID)
}

func TestAvailabilityService_GetAvailability_UserMissing(t *testing.T) {
	availRepo, userRepo, svc := newAvailabilityService(t)

	availRepo.EXPECT().GetByTutor(mock.Anything, "ghost").Return(nil, domain.ErrAvailabilityNotFound)
	userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetAvailability(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAvailabilityService_UpdateAvailability_Forbidden(t *testing.T) {
	_, userRepo, svc := newAvailabilityService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.User{ID: "s1", Role: domain.RoleStudent}, nil)

	_, err := svc.UpdateAvailability(context.Background(), "s1", domain.UpdateAvailabilityInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAvailabilityService_UpdateAvailability_MergesDays(t *testing.T) {
	availRepo, userRepo, svc := newAvailabilityService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").
		Return(&domain.User{ID: "t1", Role: domain.RoleTutor}, nil)

	existing := &domain.Availability{
		ID:      "a1",
		TutorID: "t1",
		WeeklySchedule: domain.WeeklySchedule{
			1: {{StartTime: "09:00", EndTime: "12:00"}},
			3: {{StartTime: "14:00", EndTime: "18:00"}},
		},
	}
	availRepo.EXPECT().GetByTutor(mock.Anything, "t1").Return(existing, nil)
	availRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	active := true
	got, err := svc.UpdateAvailability(context.Background(), "t1", domain.UpdateAvailabilityInput{
		WeeklySchedule: domain.WeeklySchedule{
			1: {{StartTime: "10:00", EndTime: "16:00"}},
		},
		IsActive: &active,
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{{StartTime: "10:00", EndTime: "16:00"}}, got.WeeklySchedule[1])
	assert.Equal(t, []domain.TimeSlot{{StartTime: "14:00", EndTime: "18:00"}}, got.WeeklySchedule[3],
		"days not present in the update stay untouched")
	assert.True(t, got.IsActive)
}

func TestAvailabilityService_UpdateAvailability_RejectsOverlaps(t *testing.T) {
	availRepo, userRepo, svc := newAvailabilityService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").
		Return(&domain.User{ID: "t1", Role: domain.RoleTutor}, nil)
	availRepo.EXPECT().GetByTutor(mock.Anything, "t1").
		Return(&domain.Availability{ID: "a1", TutorID: "t1", WeeklySchedule: domain.WeeklySchedule{}}, nil)

	_, err := svc.UpdateAvailability(context.Background(), "t1", domain.UpdateAvailabilityInput{
		WeeklySchedule: domain.WeeklySchedule{
			2: {
				{StartTime: "09:00", EndTime: "12:00"},
				{StartTime: "11:00", EndTime: "14:00"},
			},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_UpdateAvailability_RejectsBadDay(t *testing.T) {
	availRepo, userRepo, svc := newAvailabilityService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").
		Return(&domain.User{ID: "t1", Role: domain.RoleTutor}, nil)
	availRepo.EXPECT().GetByTutor(mock.Anything, "t1").
		Return(&domain.Availability{ID: "a1", TutorID: "t1", WeeklySchedule: domain.WeeklySchedule{}}, nil)

	_, err := svc.UpdateAvailability(context.Background(), "t1", domain.UpdateAvailabilityInput{
		WeeklySchedule: domain.WeeklySchedule{
			7: {{StartTime: "09:00", EndTime: "12:00"}},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_AddDateOverride_Upsert(t *testing.T) {
	availRepo, _, svc := newAvailabilityService(t)

	existing := &domain.Availability{
		ID:      "a1",
		TutorID: "t1",
		DateOverrides: []domain.DateOverride{
			{Date: "2025-06-09", Available: true, Slots: []domain.TimeSlot{{StartTime: "09:00", EndTime: "10:00"}}},
		},
	}
	availRepo.EXPECT().GetByTutor(mock.Anything, "t1").Return(existing, nil)
	availRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	got, err := svc.AddDateOverride(context.Background(), "t1", domain.DateOverride{
		Date:      "2025-06-09",
		Available: false,
	})

	require.NoError(t, err)
	require.Len(t, got.DateOverrides, 1, "same date replaces, not appends")
	assert.False(t, got.DateOverrides[0].Available)
}

func TestAvailabilityService_AddDateOverride_BadDate(t *testing.T) {
	_, _, svc := newAvailabilityService(t)

	_, err := svc.AddDateOverride(context.Background(), "t1", domain.DateOverride{Date: "06/09/2025"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_RemoveDateOverride_NotFound(t *testing.T) {
	availRepo, _, svc := newAvailabilityService(t)

	availRepo.EXPECT().GetByTutor(mock.Anything, "t1").
		Return(&domain.Availability{ID: "a1", TutorID: "t1"}, nil)

	_, err := svc.RemoveDateOverride(context.Background(), "t1", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverrideNotFound)
}

func TestAvailabilityService_ListTutors_CacheHit(t *testing.T) {
	availRepo := mocks.NewMockAvailabilityRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cache := mocks.NewMockCache(t)
	svc := NewAvailabilityService(availRepo, userRepo, cache, newTestLogger(t))

	cached := []*domain.TutorWithAvailability{
		{User: &domain.User{ID: "t1", Name: "Alice"}},
	}
	raw, _ := json.Marshal(cached)
	cache.EXPECT().Get(mock.Anything, "tutors:math:true").Return(raw, true)

	got, err := svc.ListTutors(context.Background(), domain.TutorFilter{Subject: "math", ActiveOnly: true})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].User.ID)
}

func TestAvailabilityService_UpdateAvailability_InvalidatesCachedListings(t *testing.T) {
	availRepo := mocks.NewMockAvailabilityRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cache := mocks.NewMockCache(t)
	svc := NewAvailabilityService(availRepo, userRepo, cache, newTestLogger(t))

	cache.EXPECT().Get(mock.Anything, "tutors:math:true").Return(nil, false)
	userRepo.EXPECT().ListTutors(mock.Anything, "math").Return([]*domain.User{}, nil)
	cache.EXPECT().Set(mock.Anything, "tutors:math:true", mock.Anything, tutorsCacheTTL).Return()

	_, err := svc.ListTutors(context.Background(), domain.TutorFilter{Subject: "math", ActiveOnly: true})
	require.NoError(t, err)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").
		Return(&domain.User{ID: "t1", Role: domain.RoleTutor}, nil)
	availRepo.EXPECT().GetByTutor(mock.Anything, "t1").
		Return(&domain.Availability{ID: "a1", TutorID: "t1", WeeklySchedule: domain.WeeklySchedule{}}, nil)
	availRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Delete(mock.Anything, "tutors:math:true").Return()

	active := true
	_, err = svc.UpdateAvailability(context.Background(), "t1", domain.UpdateAvailabilityInput{IsActive: &active})
	require.NoError(t, err)
}

func TestAvailabilityService_ListTutors_ActiveOnly(t *testing.T) {
	availRepo, userRepo, svc := newAvailabilityService(t)

	tutors := []*domain.User{
		{ID: "t1", Name: "Alice", Role: domain.RoleTutor},
		{ID: "t2", Name: "Bob", Role: domain.RoleTutor},
		{ID: "t3", Name: "Carol", Role: domain.RoleTutor},
	}
	userRepo.EXPECT().ListTutors(mock.Anything, "").Return(tutors, nil)

	availRepo.EXPECT().GetByTutor(mock.Anything, "t1").
		Return(&domain.Availability{TutorID: "t1", IsActive: true}, nil)
	availRepo.EXPECT().GetByTutor(mock.Anything, "t2").
		Return(&domain.Availability{TutorID: "t2", IsActive: false}, nil)
	availRepo.EXPECT().GetByTutor(mock.Anything, "t3").
		Return(nil, domain.ErrAvailabilityNotFound)

	got, err := svc.ListTutors(context.Background(), domain.TutorFilter{ActiveOnly: true})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].User.ID)
}

func TestAvailabilityService_IsOpenAt(t *testing.T) {
	monday10 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	active := &domain.Availability{
		TutorID:  "t1",
		IsActive: true,
		WeeklySchedule: domain.WeeklySchedule{
			1: {{StartTime: "09:00", EndTime: "17:00"}},
			5: {{StartTime: "23:00", EndTime: "23:59"}},
		},
	}

	t.Run("inside window", func(t *testing.T) {
		availRepo, _, svc := newAvailabilityService(t)
		availRepo.EXPECT().GetByTutor(mock.Anything, "t1").Return(active, nil)

		open, err := svc.IsOpenAt(context.Background(), "t1", monday10, 60)
		require.NoError(t, err)
		assert.True(t, open)
	})

	t.Run("ends past window", func(t *testing.T) {
		availRepo, _, svc := newAvailabilityService(t)
		availRepo.EXPECT().GetByTutor(mock.Anything, "t1").Return(active, nil)

		open, err := svc.IsOpenAt(context.Background(), "t1", monday10.Add(6*time.Hour+30*time.Minute), 60)
		require.NoError(t, err)
		assert.False(t, open)
	})

	t.Run("crosses midnight", func(t *testing.T) {
		availRepo, _, svc := newAvailabilityService(t)
		availRepo.EXPECT().GetByTutor(mock.Anything, "t1").Return(active, nil)

		friday2330 := time.Date(2025, 6, 6, 23, 30, 0, 0, time.UTC)
		open, err := svc.IsOpenAt(context.Background(), "t1", friday2330, 60)
		require.NoError(t, err)
		assert.False(t, open)
	})

	t.Run("inactive tutor", func(t *testing.T) {
		availRepo, _, svc := newAvailabilityService(t)
		availRepo.EXPECT().GetByTutor(mock.Anything, "t1").
			Return(&domain.Availability{TutorID: "t1", IsActive: false}, nil)

		open, err := svc.IsOpenAt(context.Background(), "t1", monday10, 60)
		require.NoError(t, err)
		assert.False(t, open)
	})

	t.Run("no record", func(t *testing.T) {
		availRepo, _, svc := newAvailabilityService(t)
		availRepo.EXPECT().GetByTutor(mock.Anything, "t1").
			Return(nil, domain.ErrAvailabilityNotFound)

		open, err := svc.IsOpenAt(context.Background(), "t1", monday10, 60)
		require.NoError(t, err)
		assert.False(t, open)
	})
}
