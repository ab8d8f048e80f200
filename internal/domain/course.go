package domain

import "time"

// Course is a catalogue entry. Number is unique ("CS 101"); the slug is
// derived from Name. Lists are ordered by Number.
type Course struct {
	ID        int64
	Number    string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlugSource returns the text the course's slug is derived from.
func (c Course) SlugSource() string {
	return c.Name
}

// String formats the course for display, e.g. "CS 101 - Data Structures".
func (c Course) String() string {
	return c.Number + " - " + c.Name
}

// Links returns the slug-keyed endpoints for the course.
func (c Course) Links() Links {
	return linksFor("courses", c.Slug)
}
