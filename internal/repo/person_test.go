package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

// ---- Instructors -----------------------------------------------------------

func TestInstructorRepo_CreateAndGet(t *testing.T) {
	r := newTestRepos(t)
	created := mustCreateInstructor(t, r, "Grace", "Hopper")

	got, err := r.instructors.GetBySlug(context.Background(), created.Slug)

	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, "Hopper", got.LastName)
}

func TestInstructorRepo_Update_KeepsSlug(t *testing.T) {
	r := newTestRepos(t)
	i := mustCreateInstructor(t, r, "Grace", "Hopper")

	i.LastName = "Murray"
	got, err := r.instructors.Update(context.Background(), i)

	require.NoError(t, err)
	assert.Equal(t, "Murray", got.LastName)
	assert.Equal(t, i.Slug, got.Slug)
}

func TestInstructorRepo_Delete_KeepsSections(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))
	sec := mustCreateSection(t, r, "001", sem, mustCreateCourse(t, r, "Databases"))
	i := mustCreateInstructor(t, r, "Edgar", "Codd")
	require.NoError(t, r.sections.AddInstructor(ctx, sec.ID, i.ID))

	require.NoError(t, r.instructors.Delete(ctx, i.Slug))

	_, err := r.sections.GetBySlug(ctx, sec.Slug)
	require.NoError(t, err, "section must survive instructor deletion")
	got, err := r.sections.ListInstructors(ctx, sec.ID)
	require.NoError(t, err)
	assert.Empty(t, got, "association row must be gone")
}

func TestInstructorRepo_List_OrderedByName(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	c := mustCreateInstructor(t, r, "Zed", "Zzyzx-Test")
	a := mustCreateInstructor(t, r, "Amy", "Aaab-Test")
	b := mustCreateInstructor(t, r, "Bob", "Aaab-Test")

	got, total, err := r.instructors.List(ctx, domain.PaginationParams{Page: 1, Limit: 100})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(3))

	var order []string
	for _, i := range got {
		switch i.Slug {
		case a.Slug, b.Slug, c.Slug:
			order = append(order, i.Slug)
		}
	}
	assert.Equal(t, []string{a.Slug, b.Slug, c.Slug}, order)
}

// ---- Students --------------------------------------------------------------

func TestStudentRepo_Create_NickNameDefaultsEmpty(t *testing.T) {
	r := newTestRepos(t)

	got := mustCreateStudent(t, r, "Ada", "Lovelace")

	assert.Equal(t, "", got.NickName)
	assert.NotZero(t, got.ID)
}

func TestStudentRepo_Update_KeepsSlug(t *testing.T) {
	r := newTestRepos(t)
	s := mustCreateStudent(t, r, "Augusta", "Lovelace")

	s.NickName = "Ada"
	s.FirstName = "Augusta Ada"
	got, err := r.students.Update(context.Background(), s)

	require.NoError(t, err)
	assert.Equal(t, "Ada", got.NickName)
	assert.Equal(t, s.Slug, got.Slug)
}

func TestStudentRepo_Delete_KeepsSections(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	sem := mustCreateSemester(t, r, 2024, mustCreatePeriod(t, r, "Fall"))
	sec := mustCreateSection(t, r, "001", sem, mustCreateCourse(t, r, "Logic"))
	s := mustCreateStudent(t, r, "Kurt", "Godel")
	require.NoError(t, r.sections.AddStudent(ctx, sec.ID, s.ID))

	require.NoError(t, r.students.Delete(ctx, s.Slug))

	_, err := r.sections.GetBySlug(ctx, sec.Slug)
	require.NoError(t, err, "section must survive student deletion")
	got, err := r.sections.ListStudents(ctx, sec.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStudentRepo_SlugExists(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	s := mustCreateStudent(t, r, "Alan", "Turing")

	exists, err := r.students.SlugExists(ctx, s.Slug)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.instructors.SlugExists(ctx, s.Slug)
	require.NoError(t, err)
	assert.False(t, exists, "slugs are scoped per entity type")
}
