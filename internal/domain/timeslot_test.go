package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 1440, true},
		{"24:01", 0, false},
		{"9:30", 0, false},
		{"12:60", 0, false},
		{"", 0, false},
		{"noon", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseClock(tt.in)
		assert.Equal(t, tt.wantOK, ok, "ParseClock(%q) ok", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "ParseClock(%q)", tt.in)
		}
	}
}

func TestTimeSlot_Valid(t *testing.T) {
	tests := []struct {
		name string
		slot TimeSlot
		want bool
	}{
		{"normal window", TimeSlot{"09:00", "17:00"}, true},
		{"one minute", TimeSlot{"09:00", "09:01"}, true},
		{"whole day marker end", TimeSlot{"00:00", "24:00"}, true},
		{"empty window", TimeSlot{"09:00", "09:00"}, false},
		{"inverted", TimeSlot{"17:00", "09:00"}, false},
		{"start at day end", TimeSlot{"24:00", "24:00"}, false},
		{"garbage start", TimeSlot{"late", "17:00"}, false},
		{"garbage end", TimeSlot{"09:00", "early"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.Valid())
		})
	}
}

func TestTimeSlot_ContainsWindow(t *testing.T) {
	slot := TimeSlot{"09:00", "17:00"}

	assert.True(t, slot.ContainsWindow(9*60, 10*60))
	assert.True(t, slot.ContainsWindow(16*60, 17*60), "window ending exactly at slot end fits")
	assert.True(t, slot.ContainsWindow(9*60, 17*60), "full slot fits")
	assert.False(t, slot.ContainsWindow(8*60+30, 9*60+30))
	assert.False(t, slot.ContainsWindow(16*60+30, 17*60+30))
	assert.False(t, slot.ContainsWindow(7*60, 8*60))
}

func TestTimeSlot_OverlapsSlot(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{"disjoint", TimeSlot{"09:00", "10:00"}, TimeSlot{"11:00", "12:00"}, false},
		{"adjacent do not overlap", TimeSlot{"09:00", "10:00"}, TimeSlot{"10:00", "11:00"}, false},
		{"partial", TimeSlot{"09:00", "11:00"}, TimeSlot{"10:00", "12:00"}, true},
		{"contained", TimeSlot{"09:00", "17:00"}, TimeSlot{"12:00", "13:00"}, true},
		{"identical", TimeSlot{"09:00", "10:00"}, TimeSlot{"09:00", "10:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.OverlapsSlot(tt.b))
			assert.Equal(t, tt.want, tt.b.OverlapsSlot(tt.a), "overlap is symmetric")
		})
	}
}

func TestOverlap_HalfOpen(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h*60+m) * time.Minute) }

	// back to back sessions share an endpoint but not a minute
	assert.False(t, Overlap(at(10, 0), at(11, 0), at(11, 0), at(12, 0)))
	assert.False(t, Overlap(at(11, 0), at(12, 0), at(10, 0), at(11, 0)))

	assert.True(t, Overlap(at(10, 0), at(11, 0), at(10, 30), at(11, 30)))
	assert.True(t, Overlap(at(10, 0), at(12, 0), at(10, 30), at(11, 0)))
	assert.False(t, Overlap(at(8, 0), at(9, 0), at(9, 30), at(10, 0)))
}

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, MinutesOfDay(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 14*60+30, MinutesOfDay(time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)))

	// non-UTC instants are matched on their UTC fields
	msk := time.FixedZone("MSK", 3*3600)
	assert.Equal(t, 11*60+30, MinutesOfDay(time.Date(2025, 6, 2, 14, 30, 0, 0, msk)))
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2025-06-02", DateKey(time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC)))

	// 01:00 MSK is the previous day in UTC
	msk := time.FixedZone("MSK", 3*3600)
	assert.Equal(t, "2025-06-01", DateKey(time.Date(2025, 6, 2, 1, 0, 0, 0, msk)))
}
