package domain

import "time"

// Instructor teaches zero or more sections.
// Lists are ordered by last name, then first name.
type Instructor struct {
	ID        int64
	FirstName string
	LastName  string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlugSource returns "Last--First"; the double hyphen collapses to one
// during normalization.
func (i Instructor) SlugSource() string {
	return nameSlugSource(i.LastName, i.FirstName)
}

// String formats the instructor as "Last, First".
func (i Instructor) String() string {
	return i.LastName + ", " + i.FirstName
}

// Links returns the slug-keyed endpoints for the instructor.
func (i Instructor) Links() Links {
	return linksFor("instructors", i.Slug)
}

// Student is enrolled in zero or more sections. NickName is optional.
// Lists are ordered by last name, then first name.
type Student struct {
	ID        int64
	FirstName string
	LastName  string
	NickName  string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlugSource returns "Last--First". The nick name does not take part.
func (s Student) SlugSource() string {
	return nameSlugSource(s.LastName, s.FirstName)
}

// String formats the student as "Last, First" or "Last, First (Nick)".
func (s Student) String() string {
	if s.NickName == "" {
		return s.LastName + ", " + s.FirstName
	}
	return s.LastName + ", " + s.FirstName + " (" + s.NickName + ")"
}

// Links returns the slug-keyed endpoints for the student.
func (s Student) Links() Links {
	return linksFor("students", s.Slug)
}

func nameSlugSource(last, first string) string {
	return last + "--" + first
}
