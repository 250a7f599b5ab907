package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00:00", NewTimeOfDay(0, 0, 0)},
		{"09:30:15", NewTimeOfDay(9, 30, 15)},
		{"23:59:59", NewTimeOfDay(23, 59, 59)},
		{"17:45", NewTimeOfDay(17, 45, 0)},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, bad := range []string{"", "noon", "25:00:00", "10:61", "-1:00"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeOfDayStringRoundTrip(t *testing.T) {
	v := NewTimeOfDay(9, 5, 7)
	assert.Equal(t, "09:05:07", v.String())

	back, err := ParseTimeOfDay(v.String())
	require.NoError(t, err)
	assert.Equal(t, v, back)
}

func TestTimeOfDayFromUsesWallClock(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*3600)
	at := time.Date(2025, 6, 1, 14, 30, 0, 0, loc)
	assert.Equal(t, NewTimeOfDay(14, 30, 0), TimeOfDayFrom(at))
}

func TestTimeOfDayScan(t *testing.T) {
	var v TimeOfDay
	require.NoError(t, v.Scan([]byte("17:00:00")))
	assert.Equal(t, NewTimeOfDay(17, 0, 0), v)

	require.NoError(t, v.Scan("08:15:00"))
	assert.Equal(t, NewTimeOfDay(8, 15, 0), v)

	assert.Error(t, v.Scan(1700))
	assert.Error(t, v.Scan([]byte("bogus")))
}

func TestTimeOfDayValue(t *testing.T) {
	got, err := NewTimeOfDay(17, 0, 0).Value()
	require.NoError(t, err)
	assert.Equal(t, "17:00:00", got)
}
