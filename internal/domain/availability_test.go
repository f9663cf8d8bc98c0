package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailability_WindowsOn(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // weekday 1

	a := &Availability{
		WeeklySchedule: WeeklySchedule{
			1: {{StartTime: "09:00", EndTime: "17:00"}},
		},
		DateOverrides: []DateOverride{
			{Date: "2025-06-09", Available: false},
			{Date: "2025-06-16", Available: true, Slots: []TimeSlot{{StartTime: "10:00", EndTime: "12:00"}}},
			{Date: "2025-06-23", Available: true},
		},
	}

	t.Run("weekly schedule applies without override", func(t *testing.T) {
		windows := a.WindowsOn(monday)
		assert.Equal(t, []TimeSlot{{StartTime: "09:00", EndTime: "17:00"}}, windows)
	})

	t.Run("day without schedule is closed", func(t *testing.T) {
		tuesday := monday.AddDate(0, 0, 1)
		assert.Empty(t, a.WindowsOn(tuesday))
	})

	t.Run("closed override beats weekly schedule", func(t *testing.T) {
		assert.Empty(t, a.WindowsOn(monday.AddDate(0, 0, 7)))
	})

	t.Run("override slots replace weekly schedule", func(t *testing.T) {
		windows := a.WindowsOn(monday.AddDate(0, 0, 14))
		assert.Equal(t, []TimeSlot{{StartTime: "10:00", EndTime: "12:00"}}, windows)
	})

	t.Run("open override without slots frees the whole day", func(t *testing.T) {
		windows := a.WindowsOn(monday.AddDate(0, 0, 21))
		assert.Equal(t, []TimeSlot{FullDay}, windows)
	})
}

func TestAvailability_OverrideFor(t *testing.T) {
	a := &Availability{
		DateOverrides: []DateOverride{{Date: "2025-06-09", Available: false}},
	}

	o, ok := a.OverrideFor("2025-06-09")
	assert.True(t, ok)
	assert.False(t, o.Available)

	_, ok = a.OverrideFor("2025-06-10")
	assert.False(t, ok)
}
