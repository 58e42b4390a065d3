package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SlotIntervalMinutes is the grid step for candidate start times.
	// 15 is fine-grained enough for every treatment duration in the
	// catalog.
	SlotIntervalMinutes = 15

	// DefaultDurationMinutes is assumed when a treatment or a legacy
	// booking carries no duration.
	DefaultDurationMinutes = 60
)

// DayHours is one weekday's opening window, clock times as "HH:MM".
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeeklyHours maps a weekday to its opening window. A missing entry
// means the salon is closed that day. The value is built once at
// startup and injected where needed, never mutated.
type WeeklyHours map[time.Weekday]DayHours

// DefaultWeeklyHours returns the salon schedule: Mon-Fri 09:00-20:00,
// Sat 09:00-15:00, Sun closed.
func DefaultWeeklyHours() WeeklyHours {
	return WeeklyHours{
		time.Monday:    {Open: "09:00", Close: "20:00"},
		time.Tuesday:   {Open: "09:00", Close: "20:00"},
		time.Wednesday: {Open: "09:00", Close: "20:00"},
		time.Thursday:  {Open: "09:00", Close: "20:00"},
		time.Friday:    {Open: "09:00", Close: "20:00"},
		time.Saturday:  {Open: "09:00", Close: "15:00"},
	}
}

// For resolves the opening window for a date. ok is false on closed days.
func (w WeeklyHours) For(date time.Time) (DayHours, bool) {
	h, ok := w[date.Weekday()]
	return h, ok
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
func TimeToMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("schedule: invalid clock time %q", clock)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("schedule: invalid hour in %q", clock)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("schedule: invalid minute in %q", clock)
	}

	return h*60 + m, nil
}

// MinutesToTime converts minutes since midnight back to "HH:MM".
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// GenerateTimeSlots enumerates every candidate start "HH:MM" in
// [openMinutes, closeMinutes) stepped by intervalMinutes where the
// treatment still fits (start + duration <= close). Returns an empty
// slice when the treatment does not fit the window at all.
func GenerateTimeSlots(openMinutes, closeMinutes, durationMinutes, intervalMinutes int) []string {
	if intervalMinutes <= 0 {
		intervalMinutes = SlotIntervalMinutes
	}
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}

	slots := []string{}
	for m := openMinutes; m+durationMinutes <= closeMinutes; m += intervalMinutes {
		slots = append(slots, MinutesToTime(m))
	}
	return slots
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals (aEnd == bStart) do
// not overlap, so adjacent slots stay bookable. Zero-length intervals
// never overlap anything.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	if aEnd <= aStart || bEnd <= bStart {
		return false
	}
	return aStart < bEnd && aEnd > bStart
}
