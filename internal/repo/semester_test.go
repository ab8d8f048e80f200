package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

func TestSemesterRepo_Create(t *testing.T) {
	r := newTestRepos(t)
	p := mustCreatePeriod(t, r, "Fall")

	got := mustCreateSemester(t, r, 2024, p)

	assert.NotZero(t, got.ID)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, p, got.Period, "period must be joined in")
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSemesterRepo_Create_DuplicateYearAndPeriod(t *testing.T) {
	r := newTestRepos(t)
	p := mustCreatePeriod(t, r, "Fall")
	mustCreateSemester(t, r, 2024, p)

	_, err := r.semesters.Create(context.Background(), domain.Semester{Year: 2024, Period: p, Slug: uniqueSlug("sem")})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorContains(t, err, "year and calendar period")
}

func TestSemesterRepo_Create_DuplicateSlug(t *testing.T) {
	r := newTestRepos(t)
	p := mustCreatePeriod(t, r, "Fall")
	first := mustCreateSemester(t, r, 2024, p)

	_, err := r.semesters.Create(context.Background(), domain.Semester{Year: 2025, Period: p, Slug: first.Slug})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSemesterRepo_Create_MissingPeriod(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.semesters.Create(context.Background(), domain.Semester{
		Year:   2024,
		Period: domain.CalendarPeriod{ID: -42},
		Slug:   uniqueSlug("sem"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSemesterRepo_SlugExists(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))

	exists, err := r.semesters.SlugExists(ctx, sem.Slug)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.semesters.SlugExists(ctx, uniqueSlug("nope"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSemesterRepo_Update_KeepsSlug(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	fall := mustCreatePeriod(t, r, "Fall")
	spring := mustCreatePeriod(t, r, "Spring")
	sem := mustCreateSemester(t, r, 2024, fall)

	sem.Year = 2025
	sem.Period = spring
	got, err := r.semesters.Update(ctx, sem)

	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, spring.Name, got.Period.Name)
	assert.Equal(t, sem.Slug, got.Slug)
}

func TestSemesterRepo_Update_NotFound(t *testing.T) {
	r := newTestRepos(t)
	p := mustCreatePeriod(t, r, "Fall")

	_, err := r.semesters.Update(context.Background(), domain.Semester{Year: 2024, Period: p, Slug: uniqueSlug("nope")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSemesterRepo_List_OrderedByYearThenPeriod(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	first := mustCreatePeriod(t, r, "Spring")
	second := mustCreatePeriod(t, r, "Fall")

	b := mustCreateSemester(t, r, 3001, second)
	a := mustCreateSemester(t, r, 3001, first)
	c := mustCreateSemester(t, r, 3000, second)

	got, _, err := r.semesters.List(ctx, domain.PaginationParams{Page: 1, Limit: 100})
	require.NoError(t, err)

	var order []string
	for _, s := range got {
		switch s.Slug {
		case a.Slug, b.Slug, c.Slug:
			order = append(order, s.Slug)
		}
	}
	assert.Equal(t, []string{c.Slug, a.Slug, b.Slug}, order)
}

func TestSemesterRepo_Delete_CascadesToSections(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))
	course := mustCreateCourse(t, r, "Operating Systems")
	sec := mustCreateSection(t, r, "001", sem, course)

	require.NoError(t, r.semesters.Delete(ctx, sem.Slug))

	_, err := r.sections.GetBySlug(ctx, sec.Slug)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.courses.GetBySlug(ctx, course.Slug)
	assert.NoError(t, err, "the course must survive")
}
