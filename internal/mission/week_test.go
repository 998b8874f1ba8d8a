package mission

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestWindow(t *testing.T) {
	seoul := mustLoc(t, "Asia/Seoul")

	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "thursday",
			ref:       time.Date(2024, 10, 31, 15, 4, 5, 0, seoul),
			wantStart: time.Date(2024, 10, 27, 0, 0, 0, 0, seoul),
			wantEnd:   time.Date(2024, 11, 2, 23, 59, 59, 999999999, seoul),
		},
		{
			name:      "sunday starts its own week",
			ref:       time.Date(2024, 10, 27, 8, 0, 0, 0, seoul),
			wantStart: time.Date(2024, 10, 27, 0, 0, 0, 0, seoul),
			wantEnd:   time.Date(2024, 11, 2, 23, 59, 59, 999999999, seoul),
		},
		{
			name:      "sunday does not reach back to the previous week",
			ref:       time.Date(2024, 11, 3, 0, 0, 0, 0, seoul),
			wantStart: time.Date(2024, 11, 3, 0, 0, 0, 0, seoul),
			wantEnd:   time.Date(2024, 11, 9, 23, 59, 59, 999999999, seoul),
		},
		{
			name:      "saturday ends the week",
			ref:       time.Date(2024, 11, 2, 23, 30, 0, 0, seoul),
			wantStart: time.Date(2024, 10, 27, 0, 0, 0, 0, seoul),
			wantEnd:   time.Date(2024, 11, 2, 23, 59, 59, 999999999, seoul),
		},
		{
			name:      "across a year boundary",
			ref:       time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 4, 23, 59, 59, 999999999, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.ref)
			assert.True(t, tt.wantStart.Equal(start), "start = %s", start)
			assert.True(t, tt.wantEnd.Equal(end), "end = %s", end)
			assert.Equal(t, time.Sunday, start.Weekday())
			assert.Equal(t, time.Saturday, end.Weekday())
		})
	}
}

func TestBucket(t *testing.T) {
	tests := []struct {
		ts        time.Time
		wantKey   DayKey
		wantLabel string
	}{
		{time.Date(2024, 10, 27, 9, 0, 0, 0, time.UTC), Sunday, "2024-10-27, SUN"},
		{time.Date(2024, 10, 28, 9, 0, 0, 0, time.UTC), Monday, "2024-10-28, MON"},
		{time.Date(2024, 10, 29, 23, 59, 0, 0, time.UTC), Tuesday, "2024-10-29, TUE"},
		{time.Date(2024, 10, 30, 0, 0, 0, 0, time.UTC), Wednesday, "2024-10-30, WED"},
		{time.Date(2024, 10, 31, 12, 0, 0, 0, time.UTC), Thursday, "2024-10-31, THU"},
		{time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC), Friday, "2024-11-01, FRI"},
		{time.Date(2024, 11, 2, 12, 0, 0, 0, time.UTC), Saturday, "2024-11-02, SAT"},
	}
	for _, tt := range tests {
		t.Run(tt.wantLabel, func(t *testing.T) {
			key, label := Bucket(tt.ts)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestBucket_UsesTimestampLocation(t *testing.T) {
	seoul := mustLoc(t, "Asia/Seoul")
	// 2024-10-26 20:00 UTC is already Sunday in Seoul.
	ts := time.Date(2024, 10, 26, 20, 0, 0, 0, time.UTC)

	key, _ := Bucket(ts)
	assert.Equal(t, Saturday, key)

	key, label := Bucket(ts.In(seoul))
	assert.Equal(t, Sunday, key)
	assert.Equal(t, "2024-10-27, SUN", label)
}

func TestWeek_AddKeepsOrderWithoutDedup(t *testing.T) {
	w := NewWeek()
	assert.Len(t, w, 7)
	assert.Equal(t, 0, w.Len())

	day := time.Date(2024, 10, 29, 8, 0, 0, 0, time.UTC)
	w.Add(false, day)
	w.Add(true, day.Add(3*time.Hour))

	require.Len(t, w[Tuesday], 2)
	assert.Equal(t, Entry{IsComplement: false, Date: "2024-10-29, TUE"}, w[Tuesday][0])
	assert.Equal(t, Entry{IsComplement: true, Date: "2024-10-29, TUE"}, w[Tuesday][1])
	assert.Equal(t, 2, w.Len())
}

func TestWeek_MarshalJSON(t *testing.T) {
	w := NewWeek()
	w.Add(true, time.Date(2024, 10, 27, 8, 0, 0, 0, time.UTC))

	raw, err := json.Marshal(w)
	require.NoError(t, err)
	assert.Equal(t,
		`{"SUN":[{"is_complement":true,"date":"2024-10-27, SUN"}],"MON":[],"TUE":[],"WED":[],"THU":[],"FRI":[],"SAT":[]}`,
		string(raw))

	var empty Week
	raw, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, `{"SUN":[],"MON":[],"TUE":[],"WED":[],"THU":[],"FRI":[],"SAT":[]}`, string(raw))
}
