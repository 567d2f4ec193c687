package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// MonthYear formats a date as "YYYY-MM", the key used by monthly_data_entries.
func MonthYear(date time.Time) string {
	return fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))
}

// ParseMonthYear parses a "YYYY-MM" key back into its month and year.
func ParseMonthYear(monthYear string) (month int, year int, err error) {
	t, err := time.Parse("2006-01", monthYear)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month_year %q: %w", monthYear, err)
	}
	return int(t.Month()), t.Year(), nil
}

// MonthWindow returns the first and last day of one calendar month, the
// inclusive window used by date-range queries.
func MonthWindow(month, year int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
