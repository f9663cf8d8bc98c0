package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses that hold the tutor's time window.
// Two bookings for one tutor in these statuses must never overlap.
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusConfirmed,
}

var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusAccepted, BookingStatusDeclined, BookingStatusCancelled},
	BookingStatusAccepted:  {BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
}

func (s BookingStatus) Known() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusDeclined,
		BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) Active() bool {
	for _, st := range ActiveStatuses {
		if st == s {
			return true
		}
	}
	return false
}

const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 180

	// SlotStepMinutes is the stride used when enumerating bookable
	// sub-windows inside an availability window.
	SlotStepMinutes = 30

	MaxSubjectLen     = 100
	MaxDescriptionLen = 500
	MaxNotesLen       = 1000
	MaxReasonLen      = 500
)

type Booking struct {
	ID              string        `json:"id"`
	StudentID       string        `json:"student_id"`
	TutorID         string        `json:"tutor_id"`
	Subject         string        `json:"subject"`
	Description     string        `json:"description,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	Duration        int           `json:"duration"` // minutes
	Status          BookingStatus `json:"status"`
	MeetingLink     string        `json:"meeting_link,omitempty"`
	CalendarEventID string        `json:"calendar_event_id,omitempty"`
	CancelReason    string        `json:"cancel_reason,omitempty"`
	CancelledBy     string        `json:"cancelled_by,omitempty"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// EndTime is the exclusive end of the booking window.
func (b *Booking) EndTime() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.Duration) * time.Minute)
}

func (b *Booking) IsParty(userID string) bool {
	return b.StudentID == userID || b.TutorID == userID
}

type CreateBookingInput struct {
	TutorID     string
	Subject     string
	Description string
	ScheduledAt time.Time
	Duration    int
	Notes       string
}

type UpdateBookingInput struct {
	Subject     *string
	Description *string
	Notes       *string
	ScheduledAt *time.Time
	Duration    *int
}

type AcceptBookingInput struct {
	MeetingLink string
	Notes       string
}

type BookingFilter struct {
	StudentID string
	TutorID   string
	Status    BookingStatus
}

// SlotWindow is one bookable sub-window offered to a caller.
type SlotWindow struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  int       `json:"duration"`
}
