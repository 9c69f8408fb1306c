package domain

import (
	"fmt"
	"time"
)

// FiscalStatus tells whether a fiscal year still accepts entries.
type FiscalStatus string

const (
	FiscalOpen   FiscalStatus = "open"
	FiscalClosed FiscalStatus = "closed"
)

// FiscalYear is an exercice comptable.
type FiscalYear struct {
	ID     string       `json:"id"`
	Code   string       `json:"code"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Status FiscalStatus `json:"status"`
}

// Closed reports whether the year is closed. Closed years are immutable.
func (y *FiscalYear) Closed() bool {
	return y.Status == FiscalClosed
}

// Period returns the date range of the year.
func (y *FiscalYear) Period() Period {
	return Period{Start: DateOf(y.Start), End: DateOf(y.End)}
}

// FiscalPeriod is a sub-period (usually a month) of a fiscal year.
type FiscalPeriod struct {
	ID           string    `json:"id"`
	FiscalYearID string    `json:"fiscal_year_id"`
	Code         string    `json:"code"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from -> to.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewPeriod builds a period, rejecting reversed bounds.
func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: DateOf(start), End: DateOf(end)}
	if p.End.Before(p.Start) {
		return Period{}, fmt.Errorf("%w: %s > %s", ErrInvalidPeriod, p.Start.Format(time.DateOnly), p.End.Format(time.DateOnly))
	}
	return p, nil
}

// Contains reports whether t falls on a date inside the period.
func (p Period) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(p.Start)) && !d.After(DateOf(p.End))
}

// Months enumerates every calendar month touched by the period.
func (p Period) Months() []Month {
	first := MonthOf(p.Start)
	last := MonthOf(p.End)

	var months []Month
	for m := first; !m.After(last); m = m.Next() {
		months = append(months, m)
	}
	return months
}

// Month is a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last day of the month.
func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

// Next returns the following month.
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// After reports whether m is strictly later than o.
func (m Month) After(o Month) bool {
	return m.First().After(o.First())
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MarshalText renders the month as YYYY-MM.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses YYYY-MM.
func (m *Month) UnmarshalText(b []byte) error {
	t, err := time.Parse("2006-01", string(b))
	if err != nil {
		return fmt.Errorf("%w: month %q", ErrMalformedRecord, string(b))
	}
	*m = MonthOf(t)
	return nil
}
