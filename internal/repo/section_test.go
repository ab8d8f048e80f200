package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

func TestSectionRepo_Create_PopulatesParents(t *testing.T) {
	r := newTestRepos(t)
	p := mustCreatePeriod(t, r, "Fall")
	sem := mustCreateSemester(t, r, 2024, p)
	course := mustCreateCourse(t, r, "Compilers")

	got := mustCreateSection(t, r, "001", sem, course)

	assert.NotZero(t, got.ID)
	assert.Equal(t, "001", got.Name)
	assert.Equal(t, sem.Slug, got.Semester.Slug)
	assert.Equal(t, 2024, got.Semester.Year)
	assert.Equal(t, p.Name, got.Semester.Period.Name)
	assert.Equal(t, course.Number, got.Course.Number)
	assert.Equal(t, course.Slug, got.Course.Slug)
}

func TestSectionRepo_Create_MissingCourse(t *testing.T) {
	r := newTestRepos(t)
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))

	_, err := r.sections.Create(context.Background(), domain.Section{
		Name:     "001",
		Semester: sem,
		Course:   domain.Course{ID: -1},
		Slug:     uniqueSlug("section"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "course not found")
}

func TestSectionRepo_Update_MovesSemesterKeepsSlug(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	p := mustCreatePeriod(t, r, "Fall")
	sem1 := mustCreateSemester(t, r, 2024, p)
	sem2 := mustCreateSemester(t, r, 2025, p)
	sec := mustCreateSection(t, r, "001", sem1, mustCreateCourse(t, r, "Compilers"))

	sec.Semester = sem2
	sec.Name = "002"
	got, err := r.sections.Update(ctx, sec)

	require.NoError(t, err)
	assert.Equal(t, "002", got.Name)
	assert.Equal(t, sem2.Slug, got.Semester.Slug)
	assert.Equal(t, sec.Slug, got.Slug)
}

func TestSectionRepo_List_Filters(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	p := mustCreatePeriod(t, r, "Fall")
	sem1 := mustCreateSemester(t, r, 2024, p)
	sem2 := mustCreateSemester(t, r, 2025, p)
	algo := mustCreateCourse(t, r, "Algorithms")
	nets := mustCreateCourse(t, r, "Networks")

	s1 := mustCreateSection(t, r, "001", sem1, algo)
	s2 := mustCreateSection(t, r, "002", sem1, nets)
	s3 := mustCreateSection(t, r, "001", sem2, algo)

	knuth := mustCreateInstructor(t, r, "Donald", "Knuth")
	require.NoError(t, r.sections.AddInstructor(ctx, s1.ID, knuth.ID))
	require.NoError(t, r.sections.AddInstructor(ctx, s3.ID, knuth.ID))
	pupil := mustCreateStudent(t, r, "Ada", "Lovelace")
	require.NoError(t, r.sections.AddStudent(ctx, s2.ID, pupil.ID))

	all := domain.PaginationParams{Page: 1, Limit: 100}
	slugsOf := func(f domain.SectionFilter) ([]string, int64) {
		t.Helper()
		got, total, err := r.sections.List(ctx, f, all)
		require.NoError(t, err)
		out := []string{}
		for _, s := range got {
			out = append(out, s.Slug)
		}
		return out, total
	}

	got, total := slugsOf(domain.SectionFilter{Semester: sem1.Slug})
	assert.ElementsMatch(t, []string{s1.Slug, s2.Slug}, got)
	assert.Equal(t, int64(2), total)

	got, _ = slugsOf(domain.SectionFilter{Course: algo.Slug})
	assert.Equal(t, []string{s1.Slug, s3.Slug}, got, "same course orders by name, then semester year")

	got, _ = slugsOf(domain.SectionFilter{Instructor: knuth.Slug})
	assert.ElementsMatch(t, []string{s1.Slug, s3.Slug}, got)

	got, _ = slugsOf(domain.SectionFilter{Student: pupil.Slug})
	assert.Equal(t, []string{s2.Slug}, got)

	got, total = slugsOf(domain.SectionFilter{Semester: sem2.Slug, Course: nets.Slug})
	assert.Empty(t, got)
	assert.Equal(t, int64(0), total)
}

func TestSectionRepo_List_Paginates(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))
	course := mustCreateCourse(t, r, "Paging")
	for _, name := range []string{"001", "002", "003"} {
		mustCreateSection(t, r, name, sem, course)
	}
	f := domain.SectionFilter{Course: course.Slug}

	page1, total, err := r.sections.List(ctx, f, domain.PaginationParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	page2, _, err := r.sections.List(ctx, f, domain.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, page1, 2)
	require.Len(t, page2, 1)
	assert.Equal(t, "003", page2[0].Name)
}

func TestSectionRepo_Instructors(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))
	sec := mustCreateSection(t, r, "001", sem, mustCreateCourse(t, r, "Theory"))
	turing := mustCreateInstructor(t, r, "Alan", "Turing")
	church := mustCreateInstructor(t, r, "Alonzo", "Church")

	require.NoError(t, r.sections.AddInstructor(ctx, sec.ID, turing.ID))
	require.NoError(t, r.sections.AddInstructor(ctx, sec.ID, church.ID))
	require.NoError(t, r.sections.AddInstructor(ctx, sec.ID, church.ID), "adding twice is a no-op")

	got, err := r.sections.ListInstructors(ctx, sec.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Church", got[0].LastName)
	assert.Equal(t, "Turing", got[1].LastName)

	require.NoError(t, r.sections.RemoveInstructor(ctx, sec.ID, turing.ID))
	err = r.sections.RemoveInstructor(ctx, sec.ID, turing.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSectionRepo_Students(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))
	sec := mustCreateSection(t, r, "001", sem, mustCreateCourse(t, r, "Theory"))
	s := mustCreateStudent(t, r, "Ada", "Lovelace")

	require.NoError(t, r.sections.AddStudent(ctx, sec.ID, s.ID))
	got, err := r.sections.ListStudents(ctx, sec.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, s.Slug, got[0].Slug)

	require.NoError(t, r.sections.RemoveStudent(ctx, sec.ID, s.ID))
	got, err = r.sections.ListStudents(ctx, sec.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSectionRepo_AddStudent_MissingStudent(t *testing.T) {
	r := newTestRepos(t)
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))
	sec := mustCreateSection(t, r, "001", sem, mustCreateCourse(t, r, "Theory"))

	err := r.sections.AddStudent(context.Background(), sec.ID, -1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "student not found")
}

func TestSectionRepo_Delete_RemovesAssociationsOnly(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))
	sec := mustCreateSection(t, r, "001", sem, mustCreateCourse(t, r, "Theory"))
	i := mustCreateInstructor(t, r, "Alan", "Turing")
	require.NoError(t, r.sections.AddInstructor(ctx, sec.ID, i.ID))

	require.NoError(t, r.sections.Delete(ctx, sec.Slug))

	_, err := r.instructors.GetBySlug(ctx, i.Slug)
	assert.NoError(t, err, "instructor must survive section deletion")
	got, _, err := r.sections.List(ctx, domain.SectionFilter{Instructor: i.Slug}, domain.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, got)
}
