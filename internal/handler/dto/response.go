package dto

import (
	"strconv"
	"time"

	"github.com/thisuriee/peer-pulse/internal/domain"
)

type BookingResponse struct {
	ID              string `json:"id"`
	StudentID       string `json:"studentId"`
	TutorID         string `json:"tutorId"`
	Subject         string `json:"subject"`
	Description     string `json:"description,omitempty"`
	Notes           string `json:"notes,omitempty"`
	ScheduledAt     string `json:"scheduledAt"`
	Duration        int    `json:"duration"`
	Status          string `json:"status"`
	MeetingLink     string `json:"meetingLink,omitempty"`
	CalendarEventID string `json:"calendarEventId,omitempty"`
	CancelReason    string `json:"cancelReason,omitempty"`
	CancelledBy     string `json:"cancelledBy,omitempty"`
	CompletedAt     string `json:"completedAt,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

type AvailabilityResponse struct {
	ID               string                   `json:"id"`
	TutorID          string                   `json:"tutorId"`
	Timezone         string                   `json:"timezone"`
	WeeklySchedule   map[string][]TimeSlotDTO `json:"weeklySchedule"`
	DateOverrides    []DateOverrideResponse   `json:"dateOverrides"`
	Subjects         []string                 `json:"subjects"`
	SessionDurations []int                    `json:"sessionDurations"`
	IsActive         bool                     `json:"isActive"`
	UpdatedAt        string                   `json:"updatedAt"`
}

type DateOverrideResponse struct {
	Date      string        `json:"date"`
	Available bool          `json:"available"`
	Slots     []TimeSlotDTO `json:"slots"`
}

type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
}

type TutorResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Skills           []string `json:"skills"`
	Timezone         string   `json:"timezone,omitempty"`
	Subjects         []string `json:"subjects,omitempty"`
	SessionDurations []int    `json:"sessionDurations,omitempty"`
	IsActive         bool     `json:"isActive"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		StudentID:       b.StudentID,
		TutorID:         b.TutorID,
		Subject:         b.Subject,
		Description:     b.Description,
		Notes:           b.Notes,
		ScheduledAt:     b.ScheduledAt.Format(time.RFC3339),
		Duration:        b.Duration,
		Status:          string(b.Status),
		MeetingLink:     b.MeetingLink,
		CalendarEventID: b.CalendarEventID,
		CancelReason:    b.CancelReason,
		CancelledBy:     b.CancelledBy,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
	if b.CompletedAt != nil {
		resp.CompletedAt = b.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	schedule := make(map[string][]TimeSlotDTO, len(a.WeeklySchedule))
	for day, slots := range a.WeeklySchedule {
		schedule[strconv.Itoa(day)] = toSlotDTOs(slots)
	}

	overrides := make([]DateOverrideResponse, 0, len(a.DateOverrides))
	for _, o := range a.DateOverrides {
		overrides = append(overrides, DateOverrideResponse{
			Date:      o.Date,
			Available: o.Available,
			Slots:     toSlotDTOs(o.Slots),
		})
	}

	return AvailabilityResponse{
		ID:               a.ID,
		TutorID:          a.TutorID,
		Timezone:         a.Timezone,
		WeeklySchedule:   schedule,
		DateOverrides:    overrides,
		Subjects:         a.Subjects,
		SessionDurations: a.SessionDurations,
		IsActive:         a.IsActive,
		UpdatedAt:        a.UpdatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponse(s domain.SlotWindow) SlotResponse {
	return SlotResponse{
		StartTime: s.StartTime.Format(time.RFC3339),
		EndTime:   s.EndTime.Format(time.RFC3339),
		Duration:  s.Duration,
	}
}

func ToTutorResponse(t *domain.TutorWithAvailability) TutorResponse {
	resp := TutorResponse{
		ID:     t.User.ID,
		Name:   t.User.Name,
		Email:  t.User.Email,
		Skills: t.User.Skills,
	}
	if t.Availability != nil {
		resp.Timezone = t.Availability.Timezone
		resp.Subjects = t.Availability.Subjects
		resp.SessionDurations = t.Availability.SessionDurations
		resp.IsActive = t.Availability.IsActive
	}
	return resp
}

func toSlotDTOs(slots []domain.TimeSlot) []TimeSlotDTO {
	out := make([]TimeSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeSlotDTO{StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return out
}
