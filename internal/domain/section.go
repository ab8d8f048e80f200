package domain

import "time"

// Section is one offering of a course in a semester. Deleting either parent
// deletes the section. Instructors and students are linked through join
// tables and are listed separately.
//
// Semester and Course are populated by the repo with enough fields for
// display and linking; they are not full aggregates.
type Section struct {
	ID        int64
	Name      string
	Slug      string
	Semester  Semester
	Course    Course
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlugSource returns the text the section's slug is derived from.
func (s Section) SlugSource() string {
	return s.Name
}

// String formats the section, e.g. "CS 101 - 001 (2024 - Fall)".
func (s Section) String() string {
	return s.Course.Number + " - " + s.Name + " (" + s.Semester.String() + ")"
}

// Links returns the slug-keyed endpoints for the section.
func (s Section) Links() Links {
	return linksFor("sections", s.Slug)
}

// SectionFilter narrows a section listing. Empty fields do not filter.
// Each field is the slug of the related entity.
type SectionFilter struct {
	Semester   string
	Course     string
	Instructor string
	Student    string
}

// Roster is a section together with everyone attached to it, used for export.
type Roster struct {
	Section     Section
	Instructors []Instructor
	Students    []Student
}
