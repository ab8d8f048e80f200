package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

func TestCreateInstructor_Returns201(t *testing.T) {
	h := newHTTPHandler(handler.Services{Instructors: &mockInstructorServicer{
		create: func(_ context.Context, i domain.Instructor) (domain.Instructor, error) {
			i.Slug = "lovelace-ada"
			return i, nil
		},
	}})

	rec := do(h, http.MethodPost, "/instructors", jsonBody(t, map[string]string{"first_name": "Ada", "last_name": "Lovelace"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode[gen.Instructor](t, rec)
	assert.Equal(t, "Lovelace, Ada", body.Display)
	assert.Equal(t, "/instructors/lovelace-ada", body.Links.Detail.Href)
}

func TestInstructor_HasNoNickName(t *testing.T) {
	var got domain.Instructor
	h := newHTTPHandler(handler.Services{Instructors: &mockInstructorServicer{
		create: func(_ context.Context, i domain.Instructor) (domain.Instructor, error) {
			got = i
			i.Slug = "hopper-grace"
			return i, nil
		},
	}})

	rec := do(h, http.MethodPost, "/instructors", jsonBody(t, map[string]string{
		"first_name": "Grace",
		"last_name":  "Hopper",
		"nick_name":  "Amazing",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.Instructor{FirstName: "Grace", LastName: "Hopper"}, got)
	assert.NotContains(t, rec.Body.String(), "nick_name")
	assert.NotContains(t, rec.Body.String(), "Amazing")
}

func TestListInstructorSections_PassesSlugAndPaging(t *testing.T) {
	var gotSlug string
	var gotPage domain.PaginationParams
	h := newHTTPHandler(handler.Services{Instructors: &mockInstructorServicer{
		listSections: func(_ context.Context, slug string, p domain.PaginationParams) ([]domain.Section, int64, error) {
			gotSlug, gotPage = slug, p
			return []domain.Section{sectionFixture()}, 1, nil
		},
	}})

	rec := do(h, http.MethodGet, "/instructors/lovelace-ada/sections?limit=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lovelace-ada", gotSlug)
	assert.Equal(t, 5, gotPage.Limit)
	body := decode[gen.SectionPage](t, rec)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "CS 101 - 001 (2024 - Fall)", body.Data[0].Display)
}

func TestListInstructorSections_UnknownInstructor_Returns404(t *testing.T) {
	h := newHTTPHandler(handler.Services{Instructors: &mockInstructorServicer{
		listSections: func(_ context.Context, _ string, _ domain.PaginationParams) ([]domain.Section, int64, error) {
			return nil, 0, domain.ErrNotFound
		},
	}})

	rec := do(h, http.MethodGet, "/instructors/ghost/sections", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "instructor not found", body.Error.Message)
}

func TestCreateStudent_NickNameInDisplay(t *testing.T) {
	var got domain.Student
	h := newHTTPHandler(handler.Services{Students: &mockStudentServicer{
		create: func(_ context.Context, s domain.Student) (domain.Student, error) {
			got = s
			s.Slug = "tables-robert"
			return s, nil
		},
	}})

	rec := do(h, http.MethodPost, "/students", jsonBody(t, map[string]string{
		"first_name": "Robert",
		"last_name":  "Tables",
		"nick_name":  "Bobby",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bobby", got.NickName)
	body := decode[gen.Student](t, rec)
	assert.Equal(t, "Tables, Robert (Bobby)", body.Display)
}

func TestUpdateStudent_UsesPathSlug(t *testing.T) {
	var got domain.Student
	h := newHTTPHandler(handler.Services{Students: &mockStudentServicer{
		update: func(_ context.Context, s domain.Student) (domain.Student, error) {
			got = s
			return s, nil
		},
	}})

	rec := do(h, http.MethodPut, "/students/tables-robert", jsonBody(t, map[string]string{
		"first_name": "Rob",
		"last_name":  "Tables",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tables-robert", got.Slug)
	assert.Equal(t, "Rob", got.FirstName)
	assert.Empty(t, got.NickName, "an omitted nick name clears it")
	body := decode[gen.Student](t, rec)
	assert.Equal(t, "Tables, Rob", body.Display)
}

func TestDeleteStudent_Returns204(t *testing.T) {
	h := newHTTPHandler(handler.Services{Students: &mockStudentServicer{
		delete: func(_ context.Context, _ string) error { return nil },
	}})

	rec := do(h, http.MethodDelete, "/students/tables-robert", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
