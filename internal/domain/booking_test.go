package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusPending, BookingStatusAccepted, true},
		{BookingStatusPending, BookingStatusDeclined, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusPending, BookingStatusConfirmed, false},

		{BookingStatusAccepted, BookingStatusConfirmed, true},
		{BookingStatusAccepted, BookingStatusCompleted, true},
		{BookingStatusAccepted, BookingStatusCancelled, true},
		{BookingStatusAccepted, BookingStatusDeclined, false},

		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusAccepted, false},

		{BookingStatusDeclined, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusAccepted.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
	assert.True(t, BookingStatusDeclined.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
}

func TestBookingStatus_Active(t *testing.T) {
	for _, s := range ActiveStatuses {
		assert.True(t, s.Active(), string(s))
	}
	assert.False(t, BookingStatusDeclined.Active())
	assert.False(t, BookingStatusCompleted.Active())
	assert.False(t, BookingStatusCancelled.Active())
}

func TestBooking_EndTime(t *testing.T) {
	b := Booking{
		ScheduledAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		Duration:    90,
	}
	assert.Equal(t, time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC), b.EndTime())
}

func TestBooking_IsParty(t *testing.T) {
	b := Booking{StudentID: "s1", TutorID: "t1"}
	assert.True(t, b.IsParty("s1"))
	assert.True(t, b.IsParty("t1"))
	assert.False(t, b.IsParty("someone-else"))
}
