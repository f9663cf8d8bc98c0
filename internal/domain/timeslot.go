package domain

import (
	"regexp"
	"time"
)

// TimeSlot is a contiguous wall-clock window [StartTime, EndTime) in
// zero-padded 24-hour "HH:mm" form.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FullDay marks a whole-day window; "24:00" is an internal end marker and
// is not accepted from callers.
var FullDay = TimeSlot{StartTime: "00:00", EndTime: "24:00"}

var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidClock reports whether s is a well-formed "HH:mm" value.
func ValidClock(s string) bool {
	return clockRe.MatchString(s)
}

// ParseClock converts "HH:mm" to minutes from midnight. "24:00" is allowed
// as an end-of-day marker.
func ParseClock(s string) (int, bool) {
	if s == "24:00" {
		return 24 * 60, true
	}
	if !ValidClock(s) {
		return 0, false
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h*60 + m, true
}

// Valid reports whether the slot is well-formed with a non-empty window.
func (s TimeSlot) Valid() bool {
	start, ok := ParseClock(s.StartTime)
	if !ok || s.StartTime == "24:00" {
		return false
	}
	end, ok := ParseClock(s.EndTime)
	if !ok {
		return false
	}
	return start < end
}

// Bounds returns the slot window in minutes from midnight.
func (s TimeSlot) Bounds() (start, end int, ok bool) {
	start, ok = ParseClock(s.StartTime)
	if !ok {
		return 0, 0, false
	}
	end, ok = ParseClock(s.EndTime)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// ContainsWindow reports whether [startMin, endMin) is fully inside the slot.
func (s TimeSlot) ContainsWindow(startMin, endMin int) bool {
	slotStart, slotEnd, ok := s.Bounds()
	if !ok {
		return false
	}
	return slotStart <= startMin && endMin <= slotEnd
}

// OverlapsSlot tests two half-open wall-clock windows for overlap.
func (s TimeSlot) OverlapsSlot(other TimeSlot) bool {
	aStart, aEnd, ok := s.Bounds()
	if !ok {
		return false
	}
	bStart, bEnd, ok := other.Bounds()
	if !ok {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// Overlap is the half-open interval overlap test on absolute instants:
// [aStart, aEnd) and [bStart, bEnd) intersect iff aStart < bEnd && bStart < aEnd.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// MinutesOfDay extracts the wall-clock offset of an instant's UTC fields.
func MinutesOfDay(t time.Time) int {
	t = t.UTC()
	return t.Hour()*60 + t.Minute()
}

// DateKey returns the UTC calendar date of an instant as "YYYY-MM-DD".
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DayStart returns midnight UTC of the instant's calendar date.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
