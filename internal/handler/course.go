package handler

import (
	"context"
	"errors"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

// CreateCourse handles POST /courses.
func (s *Server) CreateCourse(ctx context.Context, req gen.CreateCourseRequestObject) (gen.CreateCourseResponseObject, error) {
	created, err := s.courses.Create(ctx, domain.Course{Number: req.Body.Number, Name: req.Body.Name})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateCourse422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreateCourse409JSONResponse(conflictBody(err, "course already exists")), nil
		}
		return nil, err
	}
	return gen.CreateCourse201JSONResponse(courseToResponse(created)), nil
}

// ListCourses handles GET /courses.
func (s *Server) ListCourses(ctx context.Context, req gen.ListCoursesRequestObject) (gen.ListCoursesResponseObject, error) {
	p := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	courses, total, err := s.courses.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return gen.ListCourses200JSONResponse{
		Data:       convertAll(courses, courseToResponse),
		Pagination: paginationOf(p, total),
	}, nil
}

// GetCourse handles GET /courses/{slug}.
func (s *Server) GetCourse(ctx context.Context, req gen.GetCourseRequestObject) (gen.GetCourseResponseObject, error) {
	c, err := s.courses.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetCourse404JSONResponse(notFoundBody(err, "course not found")), nil
		}
		return nil, err
	}
	return gen.GetCourse200JSONResponse(courseToResponse(c)), nil
}

// UpdateCourse handles PUT /courses/{slug}. The slug never changes, even
// when the name does.
func (s *Server) UpdateCourse(ctx context.Context, req gen.UpdateCourseRequestObject) (gen.UpdateCourseResponseObject, error) {
	in := domain.Course{Slug: req.Slug, Number: req.Body.Number, Name: req.Body.Name}
	updated, err := s.courses.Update(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdateCourse404JSONResponse(notFoundBody(err, "course not found")), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdateCourse422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.UpdateCourse409JSONResponse(conflictBody(err, "course already exists")), nil
		}
		return nil, err
	}
	return gen.UpdateCourse200JSONResponse(courseToResponse(updated)), nil
}

// DeleteCourse handles DELETE /courses/{slug}.
func (s *Server) DeleteCourse(ctx context.Context, req gen.DeleteCourseRequestObject) (gen.DeleteCourseResponseObject, error) {
	if err := s.courses.Delete(ctx, req.Slug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteCourse404JSONResponse(notFoundBody(err, "course not found")), nil
		}
		return nil, err
	}
	return gen.DeleteCourse204Response{}, nil
}

// courseToResponse converts a domain.Course to the generated API response type.
func courseToResponse(c domain.Course) gen.Course {
	return gen.Course{
		Slug:      c.Slug,
		Number:    c.Number,
		Name:      c.Name,
		Display:   c.String(),
		Links:     linksToResponse(c.Links()),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
