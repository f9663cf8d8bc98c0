package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/thisuriee/peer-pulse/internal/handler/dto"
	hmocks "github.com/thisuriee/peer-pulse/internal/handler/mocks"
	"github.com/thisuriee/peer-pulse/internal/middleware"
	"github.com/thisuriee/peer-pulse/internal/router"
)

var (
	studentID = uuid.New().String()
	tutorID   = uuid.New().String()
)

func setupRouter(t *testing.T) (*hmocks.MockAvailabilitySvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(availabilitySvc, bookingSvc)

	return availabilitySvc, bookingSvc, router.InitRouter("test", h)
}

// authedRequest sends a request carrying the gateway identity headers.
func authedRequest(r http.Handler, method, path string, body []byte, userID string, role domain.Role) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserIDHeader, userID)
	req.Header.Set(middleware.UserRoleHeader, string(role))
	r.ServeHTTP(w, req)
	return w
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	scheduledAt := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		StudentID:   studentID,
		TutorID:     tutorID,
		Subject:     "math",
		ScheduledAt: scheduledAt,
		Duration:    60,
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	bookingSvc.EXPECT().Create(mock.Anything, studentID, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		TutorID:     tutorID,
		Subject:     "math",
		ScheduledAt: scheduledAt.Format(time.RFC3339),
		Duration:    60,
	})

	w := authedRequest(r, http.MethodPost, "/api/v1/bookings", body, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateBooking_MissingIdentity(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateBooking_BadBody(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"tutorId":"not-a-uuid","subject":"math","scheduledAt":"2026-01-01T10:00:00Z","duration":60}`)

	w := authedRequest(r, http.MethodPost, "/api/v1/bookings", body, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_BadScheduledAt(t *testing.T) {
	_, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		TutorID:     tutorID,
		Subject:     "math",
		ScheduledAt: "tomorrow at noon",
		Duration:    60,
	})

	w := authedRequest(r, http.MethodPost, "/api/v1/bookings", body, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid scheduledAt format, expected RFC3339", resp.Error)
}

func TestHandler_CreateBooking_SlotTaken(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, studentID, mock.Anything).
		Return(nil, domain.ErrSlotUnavailable)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		TutorID:     tutorID,
		Subject:     "math",
		ScheduledAt: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		Duration:    60,
	})

	w := authedRequest(r, http.MethodPost, "/api/v1/bookings", body, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListBookings_UnknownStatus(t *testing.T) {
	_, _, r := setupRouter(t)

	w := authedRequest(r, http.MethodGet, "/api/v1/bookings?status=vanished", nil, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().List(mock.Anything, studentID, domain.RoleStudent, domain.BookingStatusPending).
		Return([]*domain.Booking{
			{ID: uuid.New().String(), StudentID: studentID, TutorID: tutorID, Status: domain.BookingStatusPending},
		}, nil)

	w := authedRequest(r, http.MethodGet, "/api/v1/bookings?status=pending", nil, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, studentID, resp[0].StudentID)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := authedRequest(r, http.MethodGet, "/api/v1/bookings/not-a-uuid", nil, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_Forbidden(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, bookingID, studentID, domain.RoleStudent).
		Return(nil, domain.ErrForbidden)

	w := authedRequest(r, http.MethodGet, "/api/v1/bookings/"+bookingID, nil, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, bookingID, studentID, domain.RoleStudent).
		Return(nil, domain.ErrBookingNotFound)

	w := authedRequest(r, http.MethodGet, "/api/v1/bookings/"+bookingID, nil, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_AcceptBooking_StudentBlocked(t *testing.T) {
	_, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	w := authedRequest(r, http.MethodPost, "/api/v1/bookings/"+bookingID+"/accept",
		[]byte(`{}`), studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_AcceptBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Accept(mock.Anything, bookingID, tutorID,
		domain.AcceptBookingInput{MeetingLink: "https://meet.example/abc"}).
		Return(&domain.Booking{
			ID: bookingID, StudentID: studentID, TutorID: tutorID,
			Status: domain.BookingStatusAccepted, MeetingLink: "https://meet.example/abc",
		}, nil)

	body, _ := json.Marshal(dto.AcceptBookingRequest{MeetingLink: "https://meet.example/abc"})

	w := authedRequest(r, http.MethodPost, "/api/v1/bookings/"+bookingID+"/accept",
		body, tutorID, domain.RoleTutor)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.Status)
	assert.Equal(t, "https://meet.example/abc", resp.MeetingLink)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, studentID, "cannot make it").
		Return(&domain.Booking{
			ID: bookingID, StudentID: studentID, TutorID: tutorID,
			Status: domain.BookingStatusCancelled, CancelReason: "cannot make it",
		}, nil)

	body, _ := json.Marshal(dto.CancelBookingRequest{Reason: "cannot make it"})

	w := authedRequest(r, http.MethodPost, "/api/v1/bookings/"+bookingID+"/cancel",
		body, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AvailableSlots(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, bookingSvc, r := setupRouter(t)

		date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
		bookingSvc.EXPECT().AvailableSlots(mock.Anything, tutorID, date, 30).
			Return([]domain.SlotWindow{
				{StartTime: date.Add(9 * time.Hour), EndTime: date.Add(9*time.Hour + 30*time.Minute), Duration: 30},
			}, nil)

		w := authedRequest(r, http.MethodGet,
			"/api/v1/bookings/available-slots?tutorId="+tutorID+"&date=2026-09-07&duration=30",
			nil, studentID, domain.RoleStudent)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []dto.SlotResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, 30, resp[0].Duration)
	})

	t.Run("default duration", func(t *testing.T) {
		_, bookingSvc, r := setupRouter(t)

		date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
		bookingSvc.EXPECT().AvailableSlots(mock.Anything, tutorID, date, 60).
			Return([]domain.SlotWindow{}, nil)

		w := authedRequest(r, http.MethodGet,
			"/api/v1/bookings/available-slots?tutorId="+tutorID+"&date=2026-09-07",
			nil, studentID, domain.RoleStudent)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad tutor id", func(t *testing.T) {
		_, _, r := setupRouter(t)

		w := authedRequest(r, http.MethodGet,
			"/api/v1/bookings/available-slots?tutorId=nope&date=2026-09-07",
			nil, studentID, domain.RoleStudent)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		_, _, r := setupRouter(t)

		w := authedRequest(r, http.MethodGet,
			"/api/v1/bookings/available-slots?tutorId="+tutorID+"&date=next-monday",
			nil, studentID, domain.RoleStudent)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// --- Availability ---

func TestHandler_GetAvailability_StudentBlocked(t *testing.T) {
	_, _, r := setupRouter(t)

	w := authedRequest(r, http.MethodGet, "/api/v1/availability", nil, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateAvailability_Success(t *testing.T) {
	availabilitySvc, _, r := setupRouter(t)

	expected := domain.UpdateAvailabilityInput{
		WeeklySchedule: domain.WeeklySchedule{
			1: {{StartTime: "09:00", EndTime: "17:00"}},
		},
	}
	availabilitySvc.EXPECT().UpdateAvailability(mock.Anything, tutorID, expected).
		Return(&domain.Availability{
			ID:      uuid.New().String(),
			TutorID: tutorID,
			WeeklySchedule: domain.WeeklySchedule{
				1: {{StartTime: "09:00", EndTime: "17:00"}},
			},
		}, nil)

	body := []byte(`{"weeklySchedule":{"1":[{"startTime":"09:00","endTime":"17:00"}]}}`)

	w := authedRequest(r, http.MethodPut, "/api/v1/availability", body, tutorID, domain.RoleTutor)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.WeeklySchedule, "1")
	assert.Equal(t, "09:00", resp.WeeklySchedule["1"][0].StartTime)
}

func TestHandler_UpdateAvailability_BadDayKey(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"weeklySchedule":{"monday":[{"startTime":"09:00","endTime":"17:00"}]}}`)

	w := authedRequest(r, http.MethodPut, "/api/v1/availability", body, tutorID, domain.RoleTutor)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "weeklySchedule keys must be day numbers 0-6", resp.Error)
}

func TestHandler_AddDateOverride_Success(t *testing.T) {
	availabilitySvc, _, r := setupRouter(t)

	availabilitySvc.EXPECT().AddDateOverride(mock.Anything, tutorID,
		domain.DateOverride{Date: "2026-09-07", Available: false, Slots: []domain.TimeSlot{}}).
		Return(&domain.Availability{
			ID:            uuid.New().String(),
			TutorID:       tutorID,
			DateOverrides: []domain.DateOverride{{Date: "2026-09-07", Available: false}},
		}, nil)

	body := []byte(`{"date":"2026-09-07","available":false}`)

	w := authedRequest(r, http.MethodPost, "/api/v1/availability/overrides", body, tutorID, domain.RoleTutor)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RemoveDateOverride_BadDate(t *testing.T) {
	_, _, r := setupRouter(t)

	w := authedRequest(r, http.MethodDelete, "/api/v1/availability/overrides/someday",
		nil, tutorID, domain.RoleTutor)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RemoveDateOverride_NotFound(t *testing.T) {
	availabilitySvc, _, r := setupRouter(t)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	availabilitySvc.EXPECT().RemoveDateOverride(mock.Anything, tutorID, date).
		Return(nil, domain.ErrOverrideNotFound)

	w := authedRequest(r, http.MethodDelete, "/api/v1/availability/overrides/2026-09-07",
		nil, tutorID, domain.RoleTutor)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Tutors ---

func TestHandler_ListTutors_Success(t *testing.T) {
	availabilitySvc, _, r := setupRouter(t)

	availabilitySvc.EXPECT().ListTutors(mock.Anything,
		domain.TutorFilter{Subject: "math", ActiveOnly: true}).
		Return([]*domain.TutorWithAvailability{
			{
				User: &domain.User{ID: tutorID, Name: "Alice", Email: "alice@x.io", Skills: []string{"math"}},
				Availability: &domain.AvailabilitySummary{
					Timezone: "UTC", Subjects: []string{"math"}, SessionDurations: []int{30, 60}, IsActive: true,
				},
			},
		}, nil)

	w := authedRequest(r, http.MethodGet, "/api/v1/tutors?subject=math&activeOnly=true",
		nil, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TutorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Alice", resp[0].Name)
	assert.True(t, resp[0].IsActive)
}

func TestHandler_ListTutors_InternalError(t *testing.T) {
	availabilitySvc, _, r := setupRouter(t)

	availabilitySvc.EXPECT().ListTutors(mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	w := authedRequest(r, http.MethodGet, "/api/v1/tutors", nil, studentID, domain.RoleStudent)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
