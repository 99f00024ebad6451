package calendar

import "time"

// monthDay is a recurring fixed-date holiday.
type monthDay struct {
	Month time.Month
	Day   int
}

// fixedHolidays are the annual fixed-date public holidays.
var fixedHolidays = []monthDay{
	{time.January, 1},   // Neujahr
	{time.May, 1},       // Tag der Arbeit
	{time.October, 3},   // Tag der Deutschen Einheit
	{time.November, 1},  // Allerheiligen
	{time.December, 25}, // 1. Weihnachtstag
	{time.December, 26}, // 2. Weihnachtstag
}

// easterOffsets are the movable holidays as day offsets from Easter Sunday:
// Good Friday, Easter Monday, Ascension, Whit Monday, Corpus Christi.
var easterOffsets = []int{-2, 1, 39, 50, 60}

// easterSunday computes Easter Sunday for a year using the anonymous
// Gregorian algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// holidaysForYear builds the full holiday set of one year, keyed by
// month/day, combining the fixed dates with the computed movable ones.
func holidaysForYear(year int) map[monthDay]struct{} {
	set := make(map[monthDay]struct{}, len(fixedHolidays)+len(easterOffsets))
	for _, md := range fixedHolidays {
		set[md] = struct{}{}
	}
	easter := easterSunday(year)
	for _, offset := range easterOffsets {
		d := easter.AddDate(0, 0, offset)
		set[monthDay{d.Month(), d.Day()}] = struct{}{}
	}
	return set
}
