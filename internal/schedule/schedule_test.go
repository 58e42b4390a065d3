package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	m, err := TimeToMinutes("09:00")
	require.NoError(t, err)
	assert.Equal(t, 540, m)

	m, err = TimeToMinutes("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	m, err = TimeToMinutes("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)
}

func TestTimeToMinutesInvalid(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "ab:cd", "12-30", "-1:00"} {
		_, err := TimeToMinutes(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "09:00", MinutesToTime(540))
	assert.Equal(t, "00:05", MinutesToTime(5))
	assert.Equal(t, "19:45", MinutesToTime(1185))
}

func TestGenerateTimeSlotsBoundary(t *testing.T) {
	// Open 09:00, close 10:00, 60-minute treatment: only 09:00 fits.
	slots := GenerateTimeSlots(540, 600, 60, 15)
	assert.Equal(t, []string{"09:00"}, slots)

	// One minute longer and nothing fits.
	slots = GenerateTimeSlots(540, 600, 61, 15)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlotsGrid(t *testing.T) {
	// Open 09:00, close 11:00, 30-minute treatment on the 15-minute grid.
	slots := GenerateTimeSlots(540, 660, 30, 15)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45", "10:00", "10:15", "10:30"}, slots)
}

func TestOverlapsAdjacency(t *testing.T) {
	// A=[60,120), B=[120,180): back-to-back, no overlap.
	assert.False(t, Overlaps(60, 120, 120, 180))
	// B'=[119,180): one minute of intersection.
	assert.True(t, Overlaps(60, 120, 119, 180))
}

func TestOverlapsSymmetry(t *testing.T) {
	cases := [][4]int{
		{60, 120, 120, 180},
		{60, 120, 119, 180},
		{600, 690, 630, 660},
		{600, 690, 690, 720},
		{0, 1440, 100, 101},
	}
	for _, c := range cases {
		assert.Equal(t,
			Overlaps(c[0], c[1], c[2], c[3]),
			Overlaps(c[2], c[3], c[0], c[1]),
			"intervals %v", c)
	}
}

func TestOverlapsContainment(t *testing.T) {
	// 10:00 for 90 minutes occupies [600,690); a 30-minute request at
	// 10:30 sits fully inside, at 11:30 it is exactly adjacent.
	assert.True(t, Overlaps(630, 660, 600, 690))
	assert.False(t, Overlaps(690, 720, 600, 690))
}

func TestOverlapsZeroLength(t *testing.T) {
	assert.False(t, Overlaps(60, 60, 0, 1440))
	assert.False(t, Overlaps(0, 1440, 60, 60))
}

func TestWeeklyHours(t *testing.T) {
	w := DefaultWeeklyHours()

	// 2026-03-01 is a Sunday.
	_, open := w.For(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, open)

	h, open := w.For(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.True(t, open)
	assert.Equal(t, DayHours{Open: "09:00", Close: "20:00"}, h)

	h, open = w.For(time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC))
	require.True(t, open)
	assert.Equal(t, "15:00", h.Close)
}
