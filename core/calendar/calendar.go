package calendar

import (
	"sync"
	"time"
)

// DefaultWalkLimit caps how many calendar days a consecutive-absence walk
// examines, counting skipped weekends and holidays.
const DefaultWalkLimit = 30

// dateKey formats a day for ledger lookups.
const dateKey = "2006-01-02"

// Calendar answers working-day questions. Holiday sets are computed per
// year on first use and cached.
type Calendar struct {
	mu    sync.Mutex
	years map[int]map[monthDay]struct{}
}

// New creates a Calendar.
func New() *Calendar {
	return &Calendar{years: make(map[int]map[monthDay]struct{})}
}

// IsWeekend reports whether the day is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether the day is a recognized public holiday.
func (c *Calendar) IsHoliday(t time.Time) bool {
	c.mu.Lock()
	set, ok := c.years[t.Year()]
	if !ok {
		set = holidaysForYear(t.Year())
		c.years[t.Year()] = set
	}
	c.mu.Unlock()

	_, holiday := set[monthDay{t.Month(), t.Day()}]
	return holiday
}

// IsWorkingDay reports whether the day is neither a weekend day nor a
// holiday.
func (c *Calendar) IsWorkingDay(t time.Time) bool {
	return !IsWeekend(t) && !c.IsHoliday(t)
}

// Day is one absence booking as needed by the walker.
type Day struct {
	EmployeeCode int64
	Date         time.Time
	Quantity     float64
}

// Ledger indexes absence bookings by employee code and day for the walk.
// Only positive quantities are recorded.
type Ledger map[int64]map[string]struct{}

// BuildLedger indexes a bulk absence collection.
func BuildLedger(days []Day) Ledger {
	ledger := make(Ledger)
	for _, d := range days {
		if d.Quantity <= 0 {
			continue
		}
		byDay, ok := ledger[d.EmployeeCode]
		if !ok {
			byDay = make(map[string]struct{})
			ledger[d.EmployeeCode] = byDay
		}
		byDay[d.Date.Format(dateKey)] = struct{}{}
	}
	return ledger
}

// Has reports whether the employee has a positive-quantity booking on the
// given day.
func (l Ledger) Has(code int64, t time.Time) bool {
	byDay, ok := l[code]
	if !ok {
		return false
	}
	_, ok = byDay[t.Format(dateKey)]
	return ok
}

// Span is the result of a consecutive-absence walk.
type Span struct {
	// Count is the number of absent working days found, including the
	// reference day when it is one.
	Count int
	// LastDate is the last absent working day, zero when Count is zero.
	LastDate time.Time
}

// Remaining returns the days of the span still ahead of the reference day.
func (s Span) Remaining() int {
	if s.Count <= 0 {
		return 0
	}
	return s.Count - 1
}

// CountConsecutive walks forward from the reference day and counts the
// employee's continuous absent working days.
//
// Weekends and holidays are transparent: they are neither counted nor do
// they break the chain. The first working day without a booking stops the
// walk. The walk examines at most limit calendar days (DefaultWalkLimit
// when limit is not positive), so spans longer than the limit truncate.
func (c *Calendar) CountConsecutive(ledger Ledger, code int64, reference time.Time, limit int) Span {
	if limit <= 0 {
		limit = DefaultWalkLimit
	}

	current := reference
	span := Span{}

	for i := 0; i < limit; i++ {
		if !c.IsWorkingDay(current) {
			current = current.AddDate(0, 0, 1)
			continue
		}
		if !ledger.Has(code, current) {
			break
		}
		span.Count++
		span.LastDate = current
		current = current.AddDate(0, 0, 1)
	}

	return span
}
