package model

import "time"

// DateLayout is the calendar-day format used in persisted state.
const DateLayout = "2006-01-02"

// GameDate is a calendar day in the server's local clock, formatted
// YYYY-MM-DD. The zero value means the player has never played.
type GameDate string

// DateOf truncates a time to its calendar day.
func DateOf(t time.Time) GameDate {
	return GameDate(t.Format(DateLayout))
}

// AddDays returns the date shifted by the given number of calendar days.
func (d GameDate) AddDays(days int) GameDate {
	t, err := time.ParseInLocation(DateLayout, string(d), time.Local)
	if err != nil {
		return d
	}
	return DateOf(t.AddDate(0, 0, days))
}

// IsZero reports whether the date is unset.
func (d GameDate) IsZero() bool {
	return d == ""
}
