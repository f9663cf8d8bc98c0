package dto

type TimeSlotDTO struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type CreateBookingRequest struct {
	TutorID     string `json:"tutorId" binding:"required,uuid"`
	Subject     string `json:"subject" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	ScheduledAt string `json:"scheduledAt" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	Notes       string `json:"notes" binding:"max=1000"`
}

type UpdateBookingRequest struct {
	Subject     *string `json:"subject" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Notes       *string `json:"notes" binding:"omitempty,max=1000"`
	ScheduledAt *string `json:"scheduledAt"`
	Duration    *int    `json:"duration"`
}

type AcceptBookingRequest struct {
	MeetingLink string `json:"meetingLink" binding:"omitempty,url"`
	Notes       string `json:"notes" binding:"max=1000"`
}

type DeclineBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type UpdateAvailabilityRequest struct {
	Timezone         *string                  `json:"timezone"`
	WeeklySchedule   map[string][]TimeSlotDTO `json:"weeklySchedule"`
	Subjects         []string                 `json:"subjects"`
	SessionDurations []int                    `json:"sessionDurations"`
	IsActive         *bool                    `json:"isActive"`
}

type DateOverrideRequest struct {
	Date      string        `json:"date" binding:"required"`
	Available *bool         `json:"available" binding:"required"`
	Slots     []TimeSlotDTO `json:"slots"`
}
