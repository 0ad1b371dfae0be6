package models

import (
	"fmt"
	"time"
)

//CalendarDate is a plain calendar day without time-of-day or timezone.
//Arithmetic is done day-by-day so a window never skips or doubles a date
//the way 24h-duration math can around DST changes.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

const calendarLayout = "2006-01-02"

func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	//normalize through time.Date so Feb 30 etc. roll over
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func Today() CalendarDate {
	now := time.Now()
	return CalendarDate{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(calendarLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d CalendarDate) String() string {
	return d.asTime().Format(calendarLayout)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

//Next returns the following calendar day.
func (d CalendarDate) Next() CalendarDate {
	t := d.asTime().AddDate(0, 0, 1)
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.asTime().Before(other.asTime())
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.asTime().After(other.asTime())
}

func (d CalendarDate) Equal(other CalendarDate) bool {
	return d == other
}

//DaysUntil returns the number of whole days from d to other. Negative if
//other is earlier.
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.asTime().Sub(d.asTime()).Hours() / 24)
}

func (d CalendarDate) asTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = CalendarDate{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid calendar date %s", s)
	}
	s = s[1 : len(s)-1]
	//tolerate full timestamps, the storefront used to send ISO strings
	if len(s) > len(calendarLayout) {
		s = s[:len(calendarLayout)]
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
