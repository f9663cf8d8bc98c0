package domain

import "time"

// WeeklySchedule maps day-of-week (0=Sunday..6=Saturday) to the tutor's
// open windows on that day.
type WeeklySchedule map[int][]TimeSlot

// DateOverride replaces the weekly schedule entirely for one calendar date.
// Available=false closes the whole day. Available=true with slots restricts
// the day to those slots; with no slots the day is open end to end.
type DateOverride struct {
	Date      string     `json:"date"` // YYYY-MM-DD
	Available bool       `json:"available"`
	Slots     []TimeSlot `json:"slots"`
}

type Availability struct {
	ID               string         `json:"id"`
	TutorID          string         `json:"tutor_id"`
	Timezone         string         `json:"timezone"`
	WeeklySchedule   WeeklySchedule `json:"weekly_schedule"`
	DateOverrides    []DateOverride `json:"date_overrides"`
	Subjects         []string       `json:"subjects"`
	SessionDurations []int          `json:"session_durations"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// OverrideFor returns the override for the given date key, if any.
func (a *Availability) OverrideFor(date string) (DateOverride, bool) {
	for _, o := range a.DateOverrides {
		if o.Date == date {
			return o, true
		}
	}
	return DateOverride{}, false
}

// WindowsOn resolves the open windows for one calendar date: a date
// override wins over the weekly schedule, a closed override yields nothing.
func (a *Availability) WindowsOn(date time.Time) []TimeSlot {
	if override, ok := a.OverrideFor(DateKey(date)); ok {
		if !override.Available {
			return nil
		}
		if len(override.Slots) > 0 {
			return override.Slots
		}
		return []TimeSlot{FullDay}
	}
	return a.WeeklySchedule[int(date.UTC().Weekday())]
}

type UpdateAvailabilityInput struct {
	Timezone         *string
	WeeklySchedule   WeeklySchedule
	Subjects         []string
	SessionDurations []int
	IsActive         *bool
}

// AvailabilitySummary is the projection attached to tutor listings.
type AvailabilitySummary struct {
	Timezone         string   `json:"timezone"`
	Subjects         []string `json:"subjects"`
	SessionDurations []int    `json:"session_durations"`
	IsActive         bool     `json:"is_active"`
}

type TutorWithAvailability struct {
	User         *User
	Availability *AvailabilitySummary
}

type TutorFilter struct {
	Subject    string
	ActiveOnly bool
}
