package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, day(2024, time.March, 31)},
		{2025, day(2025, time.April, 20)},
		{2026, day(2026, time.April, 5)},
		{2027, day(2027, time.March, 28)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, easterSunday(tt.year), "easter %d", tt.year)
	}
}

func TestIsWorkingDay(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"ordinary wednesday", day(2026, time.July, 15), true},
		{"saturday", day(2026, time.July, 18), false},
		{"sunday", day(2026, time.July, 19), false},
		{"new year", day(2026, time.January, 1), false},
		{"may day", day(2026, time.May, 1), false},
		{"christmas", day(2026, time.December, 25), false},
		{"good friday 2026", day(2026, time.April, 3), false},
		{"easter monday 2026", day(2026, time.April, 6), false},
		{"ascension 2026", day(2026, time.May, 14), false},
		{"whit monday 2026", day(2026, time.May, 25), false},
		{"corpus christi 2026", day(2026, time.June, 4), false},
		{"day after whit monday", day(2026, time.May, 26), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsWorkingDay(tt.date))
		})
	}
}

func TestCountConsecutive_SimpleBreak(t *testing.T) {
	c := New()
	// Mon + Tue booked, Wed free, Fri booked again. The Wednesday gap must
	// stop the walk even though absence resumes later.
	ledger := BuildLedger([]Day{
		{EmployeeCode: 7, Date: day(2026, time.June, 1), Quantity: 1},
		{EmployeeCode: 7, Date: day(2026, time.June, 2), Quantity: 1},
		{EmployeeCode: 7, Date: day(2026, time.June, 5), Quantity: 1},
	})

	span := c.CountConsecutive(ledger, 7, day(2026, time.June, 1), 0)
	assert.Equal(t, 2, span.Count)
	assert.Equal(t, day(2026, time.June, 2), span.LastDate)
	assert.Equal(t, 1, span.Remaining())
}

func TestCountConsecutive_WeekendAndHolidayTransparent(t *testing.T) {
	c := New()
	// Thu + Fri booked, weekend, Whit Monday (2026-05-25) holiday, Tue +
	// Wed booked. Neither weekend nor holiday needs a booking or counts.
	ledger := BuildLedger([]Day{
		{EmployeeCode: 7, Date: day(2026, time.May, 21), Quantity: 1},
		{EmployeeCode: 7, Date: day(2026, time.May, 22), Quantity: 1},
		{EmployeeCode: 7, Date: day(2026, time.May, 26), Quantity: 1},
		{EmployeeCode: 7, Date: day(2026, time.May, 27), Quantity: 1},
	})

	span := c.CountConsecutive(ledger, 7, day(2026, time.May, 21), 0)
	assert.Equal(t, 4, span.Count)
	assert.Equal(t, day(2026, time.May, 27), span.LastDate)
	assert.Equal(t, 3, span.Remaining())
}

func TestCountConsecutive_SingleDay(t *testing.T) {
	c := New()
	ledger := BuildLedger([]Day{
		{EmployeeCode: 7, Date: day(2026, time.July, 15), Quantity: 1},
	})

	span := c.CountConsecutive(ledger, 7, day(2026, time.July, 15), 0)
	assert.Equal(t, 1, span.Count)
	assert.Equal(t, day(2026, time.July, 15), span.LastDate)
	assert.Equal(t, 0, span.Remaining())
}

func TestCountConsecutive_NoBookingToday(t *testing.T) {
	c := New()
	ledger := BuildLedger([]Day{
		{EmployeeCode: 7, Date: day(2026, time.July, 16), Quantity: 1},
	})

	span := c.CountConsecutive(ledger, 7, day(2026, time.July, 15), 0)
	assert.Equal(t, 0, span.Count)
	assert.True(t, span.LastDate.IsZero())
}

func TestCountConsecutive_ReferenceOnWeekend(t *testing.T) {
	c := New()
	// Reference on a Saturday; Whit Monday is a holiday; bookings on the
	// following Tue and Wed.
	ledger := BuildLedger([]Day{
		{EmployeeCode: 7, Date: day(2026, time.May, 26), Quantity: 1},
		{EmployeeCode: 7, Date: day(2026, time.May, 27), Quantity: 1},
	})

	span := c.CountConsecutive(ledger, 7, day(2026, time.May, 23), 0)
	assert.Equal(t, 2, span.Count)
	assert.Equal(t, day(2026, time.May, 27), span.LastDate)
}

func TestCountConsecutive_LimitTruncates(t *testing.T) {
	c := New()
	var days []Day
	start := day(2026, time.June, 29) // Monday
	for i := 0; i < 20; i++ {
		days = append(days, Day{EmployeeCode: 7, Date: start.AddDate(0, 0, i), Quantity: 1})
	}
	ledger := BuildLedger(days)

	// The limit counts examined calendar days, not absent days.
	span := c.CountConsecutive(ledger, 7, start, 5)
	assert.Equal(t, 5, span.Count)
	assert.Equal(t, day(2026, time.July, 3), span.LastDate)
}

func TestBuildLedger_IgnoresNonPositiveQuantities(t *testing.T) {
	ledger := BuildLedger([]Day{
		{EmployeeCode: 7, Date: day(2026, time.July, 15), Quantity: 0},
		{EmployeeCode: 8, Date: day(2026, time.July, 15), Quantity: 0.5},
	})
	assert.False(t, ledger.Has(7, day(2026, time.July, 15)))
	assert.True(t, ledger.Has(8, day(2026, time.July, 15)))
}
