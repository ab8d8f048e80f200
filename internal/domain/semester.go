package domain

import (
	"strconv"
	"time"
)

// Semester is one calendar period of one year. There is at most one semester
// per (Year, Period) pair. Lists are ordered by year, then period id.
type Semester struct {
	ID        int64
	Year      int
	Period    CalendarPeriod
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlugSource returns the text the semester's slug is derived from,
// e.g. "2024-Fall".
func (s Semester) SlugSource() string {
	return strconv.Itoa(s.Year) + "-" + s.Period.Name
}

// String formats the semester for display, e.g. "2024 - Fall".
func (s Semester) String() string {
	return strconv.Itoa(s.Year) + " - " + s.Period.Name
}

// Links returns the slug-keyed endpoints for the semester.
func (s Semester) Links() Links {
	return linksFor("semesters", s.Slug)
}
