package util

import (
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

func StrToDate(str string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, str, time.UTC)
}

func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayWindow turns the inclusive date range [start, end] into the half-open
// instant range [from, to) covering both whole days.
func DayWindow(start, end time.Time) (from, to time.Time) {
	return StartOfDay(start), StartOfDay(end).AddDate(0, 0, 1)
}

// StartOfISOWeek returns the Monday that starts ISO week `week` of `year`.
func StartOfISOWeek(year, week int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	// Jan 4th is always in week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	offset := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, (week-1)*7)
}

// ISOWeekBounds returns Monday and Sunday of the ISO week containing t.
func ISOWeekBounds(t time.Time) (start, end time.Time) {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	start = day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, -1)
}

// WeeksInISOYear returns 52 or 53.
func WeeksInISOYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}
