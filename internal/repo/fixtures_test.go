package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/repo"
	"github.com/pkordes/courseinfo/backend/testutil"
)

// repos bundles every repo over the same transaction so tests can build a
// full hierarchy (period → semester → section) that is rolled back at the end.
type repos struct {
	periods     repo.PeriodRepo
	semesters   repo.SemesterRepo
	courses     repo.CourseRepo
	instructors repo.InstructorRepo
	students    repo.StudentRepo
	sections    repo.SectionRepo
}

func newTestRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)

	return repos{
		periods:     repo.NewPeriodRepo(tx),
		semesters:   repo.NewSemesterRepo(tx),
		courses:     repo.NewCourseRepo(tx),
		instructors: repo.NewInstructorRepo(tx),
		students:    repo.NewStudentRepo(tx),
		sections:    repo.NewSectionRepo(tx),
	}
}

// uniqueSlug returns a slug that cannot collide with rows committed by other
// test runs against the same database.
func uniqueSlug(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// nextPeriodID hands out period ids well above anything a human would seed.
var nextPeriodID = 9000

func mustCreatePeriod(t *testing.T, r repos, name string) domain.CalendarPeriod {
	t.Helper()
	nextPeriodID++
	p, err := r.periods.Create(context.Background(), domain.CalendarPeriod{
		ID:   nextPeriodID,
		Name: name + " " + uuid.NewString()[:8],
	})
	require.NoError(t, err)
	return p
}

func mustCreateSemester(t *testing.T, r repos, year int, period domain.CalendarPeriod) domain.Semester {
	t.Helper()
	s, err := r.semesters.Create(context.Background(), domain.Semester{
		Year:   year,
		Period: period,
		Slug:   uniqueSlug("sem"),
	})
	require.NoError(t, err)
	return s
}

func mustCreateCourse(t *testing.T, r repos, name string) domain.Course {
	t.Helper()
	c, err := r.courses.Create(context.Background(), domain.Course{
		Number: "T" + uuid.NewString()[:8],
		Name:   name,
		Slug:   uniqueSlug("course"),
	})
	require.NoError(t, err)
	return c
}

func mustCreateInstructor(t *testing.T, r repos, first, last string) domain.Instructor {
	t.Helper()
	i, err := r.instructors.Create(context.Background(), domain.Instructor{
		FirstName: first,
		LastName:  last,
		Slug:      uniqueSlug("instructor"),
	})
	require.NoError(t, err)
	return i
}

func mustCreateStudent(t *testing.T, r repos, first, last string) domain.Student {
	t.Helper()
	s, err := r.students.Create(context.Background(), domain.Student{
		FirstName: first,
		LastName:  last,
		Slug:      uniqueSlug("student"),
	})
	require.NoError(t, err)
	return s
}

func mustCreateSection(t *testing.T, r repos, name string, sem domain.Semester, course domain.Course) domain.Section {
	t.Helper()
	s, err := r.sections.Create(context.Background(), domain.Section{
		Name:     name,
		Semester: sem,
		Course:   course,
		Slug:     uniqueSlug("section"),
	})
	require.NoError(t, err)
	return s
}
