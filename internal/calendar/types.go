package calendar

import "time"

// Event is a single named date on the academic calendar.
type Event struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Year int    `json:"year"`
}

// formatDate formats a date as YYYY-MM-DD
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// midnightUTC strips the time-of-day and location from t. Only the calendar
// day carries meaning anywhere in this package.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func addWeeks(t time.Time, weeks int) time.Time {
	return t.AddDate(0, 0, 7*weeks)
}
