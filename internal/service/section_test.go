package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/service"
)

var (
	fall2024 = domain.Semester{ID: 10, Year: 2024, Period: fall, Slug: "2024-fall"}
	cs101    = domain.Course{ID: 20, Number: "CS 101", Name: "Intro", Slug: "intro"}
	ada      = domain.Instructor{ID: 30, FirstName: "Ada", LastName: "Lovelace", Slug: "lovelace-ada"}
	bobby    = domain.Student{ID: 40, FirstName: "Robert", LastName: "Tables", NickName: "Bobby", Slug: "tables-robert"}
	sec001   = domain.Section{ID: 50, Name: "001", Slug: "001", Semester: fall2024, Course: cs101}
)

// sectionFixture wires a SectionService over mocks that know exactly one of
// each related entity. Tests override individual fields as needed.
type sectionFixture struct {
	sections    *mockSectionRepo
	semesters   *mockSemesterRepo
	courses     *mockCourseRepo
	instructors *mockInstructorRepo
	students    *mockStudentRepo
	taken       slugTable
}

func newSectionFixture() *sectionFixture {
	f := &sectionFixture{taken: slugTable{}}
	f.sections = &mockSectionRepo{
		slugExists: f.taken.exists,
		create: func(_ context.Context, s domain.Section) (domain.Section, error) {
			f.taken.add(s.Slug)
			return s, nil
		},
		update:    func(_ context.Context, s domain.Section) (domain.Section, error) { return s, nil },
		getBySlug: lookup(sec001.Slug, sec001),
	}
	f.semesters = &mockSemesterRepo{getBySlug: lookup(fall2024.Slug, fall2024)}
	f.courses = &mockCourseRepo{getBySlug: lookup(cs101.Slug, cs101)}
	f.instructors = &mockInstructorRepo{getBySlug: lookup(ada.Slug, ada)}
	f.students = &mockStudentRepo{getBySlug: lookup(bobby.Slug, bobby)}
	return f
}

func (f *sectionFixture) service() *service.SectionService {
	return service.NewSectionService(f.sections, f.semesters, f.courses, f.instructors, f.students)
}

// lookup returns a GetBySlug func that finds only v under key.
func lookup[T any](key string, v T) func(context.Context, string) (T, error) {
	return func(_ context.Context, slug string) (T, error) {
		if slug == key {
			return v, nil
		}
		var zero T
		return zero, domain.ErrNotFound
	}
}

func newSectionInput(name string) domain.Section {
	return domain.Section{
		Name:     name,
		Semester: domain.Semester{Slug: fall2024.Slug},
		Course:   domain.Course{Slug: cs101.Slug},
	}
}

// ---- Create / Update -------------------------------------------------------

func TestSectionService_Create_ResolvesParentsAndAssignsSlug(t *testing.T) {
	f := newSectionFixture()

	got, err := f.service().Create(context.Background(), newSectionInput(" 001 "))

	require.NoError(t, err)
	assert.Equal(t, "001", got.Slug)
	assert.Equal(t, fall2024.ID, got.Semester.ID)
	assert.Equal(t, cs101.ID, got.Course.ID)
	assert.Equal(t, "CS 101 - 001 (2024 - Fall)", got.String())
}

func TestSectionService_Create_SameNameInAnotherSemester(t *testing.T) {
	f := newSectionFixture()
	svc := f.service()
	ctx := context.Background()

	a, err := svc.Create(ctx, newSectionInput("001"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, newSectionInput("001"))
	require.NoError(t, err)

	assert.Equal(t, "001", a.Slug)
	assert.Equal(t, "001-1", b.Slug)
}

func TestSectionService_Create_UnknownParents(t *testing.T) {
	tests := []struct {
		name  string
		input domain.Section
		msg   string
	}{
		{
			"semester",
			domain.Section{Name: "001", Semester: domain.Semester{Slug: "1999-fall"}, Course: domain.Course{Slug: cs101.Slug}},
			"semester not found",
		},
		{
			"course",
			domain.Section{Name: "001", Semester: domain.Semester{Slug: fall2024.Slug}, Course: domain.Course{Slug: "nope"}},
			"course not found",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newSectionFixture().service().Create(context.Background(), tc.input)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestSectionService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.Section
		msg   string
	}{
		{"blank name", newSectionInput("  "), "name is required"},
		{"long name", newSectionInput("12345678901"), "name must be at most 10"},
		{"no semester", domain.Section{Name: "001", Course: domain.Course{Slug: "intro"}}, "semester is required"},
		{"no course", domain.Section{Name: "001", Semester: domain.Semester{Slug: "2024-fall"}}, "course is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newSectionFixture().service().Create(context.Background(), tc.input)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestSectionService_Update_KeepsSlug(t *testing.T) {
	f := newSectionFixture()
	in := newSectionInput("002")
	in.Slug = "001"

	got, err := f.service().Update(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "001", got.Slug)
	assert.Equal(t, "002", got.Name)
	assert.Empty(t, f.taken, "update never assigns a slug")
}

// ---- List ------------------------------------------------------------------

func TestSectionService_List_PassesFilter(t *testing.T) {
	f := newSectionFixture()
	var got domain.SectionFilter
	f.sections.list = func(_ context.Context, filter domain.SectionFilter, _ domain.PaginationParams) ([]domain.Section, int64, error) {
		got = filter
		return nil, 0, nil
	}
	want := domain.SectionFilter{Semester: "2024-fall", Course: "intro"}

	sections, _, err := f.service().List(context.Background(), want, domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NotNil(t, sections)
}

// ---- Instructors -----------------------------------------------------------

func TestSectionService_AddInstructor(t *testing.T) {
	f := newSectionFixture()
	var gotSection, gotInstructor int64
	f.sections.addInstructor = func(_ context.Context, sectionID, instructorID int64) error {
		gotSection, gotInstructor = sectionID, instructorID
		return nil
	}

	got, err := f.service().AddInstructor(context.Background(), sec001.Slug, ada.Slug)

	require.NoError(t, err)
	assert.Equal(t, ada, got)
	assert.Equal(t, sec001.ID, gotSection)
	assert.Equal(t, ada.ID, gotInstructor)
}

func TestSectionService_AddInstructor_Unknown(t *testing.T) {
	tests := []struct {
		name       string
		section    string
		instructor string
	}{
		{"section", "missing", ada.Slug},
		{"instructor", sec001.Slug, "missing"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newSectionFixture().service().AddInstructor(context.Background(), tc.section, tc.instructor)

			require.ErrorIs(t, err, domain.ErrNotFound)
			assert.Contains(t, err.Error(), tc.name+" not found")
		})
	}
}

func TestSectionService_RemoveInstructor_NotLinked(t *testing.T) {
	f := newSectionFixture()
	f.sections.removeInstructor = func(_ context.Context, _, _ int64) error { return domain.ErrNotFound }

	err := f.service().RemoveInstructor(context.Background(), sec001.Slug, ada.Slug)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSectionService_ListInstructors(t *testing.T) {
	f := newSectionFixture()
	f.sections.listInstructors = func(_ context.Context, sectionID int64) ([]domain.Instructor, error) {
		assert.Equal(t, sec001.ID, sectionID)
		return nil, nil
	}

	got, err := f.service().ListInstructors(context.Background(), sec001.Slug)

	require.NoError(t, err)
	assert.NotNil(t, got)
}

// ---- Students --------------------------------------------------------------

func TestSectionService_AddStudent(t *testing.T) {
	f := newSectionFixture()
	var gotStudent int64
	f.sections.addStudent = func(_ context.Context, _, studentID int64) error {
		gotStudent = studentID
		return nil
	}

	got, err := f.service().AddStudent(context.Background(), sec001.Slug, bobby.Slug)

	require.NoError(t, err)
	assert.Equal(t, bobby, got)
	assert.Equal(t, bobby.ID, gotStudent)
}

func TestSectionService_RemoveStudent(t *testing.T) {
	f := newSectionFixture()
	called := false
	f.sections.removeStudent = func(_ context.Context, sectionID, studentID int64) error {
		called = true
		assert.Equal(t, sec001.ID, sectionID)
		assert.Equal(t, bobby.ID, studentID)
		return nil
	}

	err := f.service().RemoveStudent(context.Background(), sec001.Slug, bobby.Slug)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestSectionService_ListStudents_UnknownSection(t *testing.T) {
	_, err := newSectionFixture().service().ListStudents(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
