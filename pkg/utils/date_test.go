package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthYear(t *testing.T) {
	assert.Equal(t, "2025-03", MonthYear(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", MonthYear(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func TestParseMonthYear(t *testing.T) {
	month, year, err := ParseMonthYear("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 3, month)
	assert.Equal(t, 2025, year)

	_, _, err = ParseMonthYear("03-2025")
	assert.Error(t, err)

	_, _, err = ParseMonthYear("")
	assert.Error(t, err)
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		start time.Time
		end   time.Time
	}{
		{
			name:  "31 day month",
			month: 3,
			year:  2025,
			start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "february in a leap year",
			month: 2,
			year:  2024,
			start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "december keeps the year",
			month: 12,
			year:  2025,
			start: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthWindow(tt.month, tt.year)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("14/03/2025")
	assert.Error(t, err)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())
}
