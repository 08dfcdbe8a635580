package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "09:30", want: "09:30"},
		{name: "with seconds", input: "17:45:00", want: "17:45"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "garbage", input: "nine", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := MustTimeString("17:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:15"), got)

	_, err = MustTimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrOutOfDay, "ending exactly at midnight leaves the day")

	_, err = MustTimeString("23:50").AddMinutes(45)
	assert.ErrorIs(t, err, ErrOutOfDay)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Compare(t *testing.T) {
	nine := MustTimeString("09:00")
	ten := MustTimeString("10:00")

	assert.True(t, nine.IsBefore(ten))
	assert.False(t, ten.IsBefore(nine))
	assert.True(t, ten.IsAfter(nine))
	assert.True(t, nine.Equal(MustTimeString("09:00:00")))
	assert.Equal(t, 540, nine.Minutes())
	assert.Equal(t, -1, TimeString("").Minutes())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_OnDate(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC), MustTimeString("16:30").OnDate(day))
}

func TestTimeRange_Overlaps(t *testing.T) {
	lunch := NewTimeRange("12:00", "13:00")

	tests := []struct {
		name string
		slot TimeRange
		want bool
	}{
		{name: "ends exactly at start", slot: NewTimeRange("11:30", "12:00"), want: false},
		{name: "starts exactly at end", slot: NewTimeRange("13:00", "13:30"), want: false},
		{name: "one minute over the start", slot: NewTimeRange("11:31", "12:01"), want: true},
		{name: "one minute over the end", slot: NewTimeRange("12:59", "13:29"), want: true},
		{name: "fully inside", slot: NewTimeRange("12:15", "12:45"), want: true},
		{name: "covers it", slot: NewTimeRange("11:00", "14:00"), want: true},
		{name: "far away", slot: NewTimeRange("09:00", "09:30"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.Overlaps(lunch))
			assert.Equal(t, tt.want, lunch.Overlaps(tt.slot), "overlap must be symmetric")
		})
	}
}

func TestTimeRange_ContainsAndValidity(t *testing.T) {
	hours := NewTimeRange("09:00", "18:00")

	assert.True(t, hours.Contains(NewTimeRange("09:00", "09:30")))
	assert.True(t, hours.Contains(NewTimeRange("17:30", "18:00")))
	assert.False(t, hours.Contains(NewTimeRange("17:45", "18:15")))
	assert.False(t, hours.Contains(NewTimeRange("08:45", "09:15")))

	assert.True(t, hours.IsValid())
	assert.False(t, NewTimeRange("18:00", "09:00").IsValid())
	assert.False(t, NewTimeRange("10:00", "10:00").IsValid())
	assert.Equal(t, 540, hours.DurationMinutes())
}
