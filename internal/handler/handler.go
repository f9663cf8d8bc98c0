package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/thisuriee/peer-pulse/internal/handler/dto"
	"github.com/thisuriee/peer-pulse/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type AvailabilitySvc interface {
	GetAvailability(ctx context.Context, tutorID string) (*domain.Availability, error)
	UpdateAvailability(ctx context.Context, tutorID string, input domain.UpdateAvailabilityInput) (*domain.Availability, error)
	AddDateOverride(ctx context.Context, tutorID string, override domain.DateOverride) (*domain.Availability, error)
	RemoveDateOverride(ctx context.Context, tutorID string, date time.Time) (*domain.Availability, error)
	ListTutors(ctx context.Context, filter domain.TutorFilter) ([]*domain.TutorWithAvailability, error)
}

type BookingSvc interface {
	Create(ctx context.Context, studentID string, input domain.CreateBookingInput) (*domain.Booking, error)
	Update(ctx context.Context, bookingID, userID string, input domain.UpdateBookingInput) (*domain.Booking, error)
	Accept(ctx context.Context, bookingID, tutorID string, input domain.AcceptBookingInput) (*domain.Booking, error)
	Decline(ctx context.Context, bookingID, tutorID, reason string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, userID, reason string) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID, userID string) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID, userID string, role domain.Role) (*domain.Booking, error)
	List(ctx context.Context, userID string, role domain.Role, status domain.BookingStatus) ([]*domain.Booking, error)
	AvailableSlots(ctx context.Context, tutorID string, date time.Time, durationMin int) ([]domain.SlotWindow, error)
}

type Handler struct {
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
}

func NewHandler(availabilityService AvailabilitySvc, bookingService BookingSvc) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		bookingService:      bookingService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid scheduledAt format, expected RFC3339",
		})
		return
	}

	input := domain.CreateBookingInput{
		TutorID:     req.TutorID,
		Subject:     req.Subject,
		Description: req.Description,
		ScheduledAt: scheduledAt,
		Duration:    req.Duration,
		Notes:       req.Notes,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), callerID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	status := domain.BookingStatus(c.Query("status"))
	if status != "" && !status.Known() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown status filter"})
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), callerID(c), callerRole(c), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id, callerID(c), callerRole(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateBookingInput{
		Subject:     req.Subject,
		Description: req.Description,
		Notes:       req.Notes,
		Duration:    req.Duration,
	}
	if req.ScheduledAt != nil {
		scheduledAt, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid scheduledAt format, expected RFC3339",
			})
			return
		}
		input.ScheduledAt = &scheduledAt
	}

	booking, err := h.bookingService.Update(c.Request.Context(), id, callerID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) AcceptBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.AcceptBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.AcceptBookingInput{
		MeetingLink: req.MeetingLink,
		Notes:       req.Notes,
	}

	booking, err := h.bookingService.Accept(c.Request.Context(), id, callerID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeclineBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.DeclineBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Decline(c.Request.Context(), id, callerID(c), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, callerID(c), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Complete(c.Request.Context(), id, callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) AvailableSlots(c *ginext.Context) {
	tutorID := c.Query("tutorId")
	if _, err := uuid.Parse(tutorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tutorId"})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date, expected YYYY-MM-DD",
		})
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid duration"})
		return
	}

	slots, err := h.bookingService.AvailableSlots(c.Request.Context(), tutorID, date, duration)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	availability, err := h.availabilityService.GetAvailability(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) UpdateAvailability(c *ginext.Context) {
	var req dto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateAvailabilityInput{
		Timezone:         req.Timezone,
		Subjects:         req.Subjects,
		SessionDurations: req.SessionDurations,
		IsActive:         req.IsActive,
	}
	if req.WeeklySchedule != nil {
		schedule, ok := toWeeklySchedule(req.WeeklySchedule)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "weeklySchedule keys must be day numbers 0-6",
			})
			return
		}
		input.WeeklySchedule = schedule
	}

	availability, err := h.availabilityService.UpdateAvailability(c.Request.Context(), callerID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) AddDateOverride(c *ginext.Context) {
	var req dto.DateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	override := domain.DateOverride{
		Date:      req.Date,
		Available: *req.Available,
		Slots:     toTimeSlots(req.Slots),
	}

	availability, err := h.availabilityService.AddDateOverride(c.Request.Context(), callerID(c), override)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) RemoveDateOverride(c *ginext.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date, expected YYYY-MM-DD",
		})
		return
	}

	availability, err := h.availabilityService.RemoveDateOverride(c.Request.Context(), callerID(c), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

// Tutors

func (h *Handler) ListTutors(c *ginext.Context) {
	filter := domain.TutorFilter{
		Subject:    c.Query("subject"),
		ActiveOnly: c.Query("activeOnly") == "true",
	}

	tutors, err := h.availabilityService.ListTutors(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TutorResponse, 0, len(tutors))
	for _, t := range tutors {
		resp = append(resp, dto.ToTutorResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTutorNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrAvailabilityNotFound),
		errors.Is(err, domain.ErrOverrideNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingConflict),
		errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func callerID(c *ginext.Context) string {
	return c.GetString(middleware.UserIDKey)
}

func callerRole(c *ginext.Context) domain.Role {
	role, _ := domain.ParseRole(c.GetString(middleware.UserRoleKey))
	return role
}

func toWeeklySchedule(in map[string][]dto.TimeSlotDTO) (domain.WeeklySchedule, bool) {
	out := make(domain.WeeklySchedule, len(in))
	for key, slots := range in {
		day, err := strconv.Atoi(key)
		if err != nil {
			return nil, false
		}
		out[day] = toTimeSlots(slots)
	}
	return out, true
}

func toTimeSlots(in []dto.TimeSlotDTO) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(in))
	for _, s := range in {
		out = append(out, domain.TimeSlot{StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return out
}
