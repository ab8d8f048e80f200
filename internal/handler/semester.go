package handler

import (
	"context"
	"errors"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

func semesterFromRequest(slug string, b gen.SemesterRequest) domain.Semester {
	return domain.Semester{
		Slug:   slug,
		Year:   b.Year,
		Period: domain.CalendarPeriod{ID: b.CalendarPeriodId},
	}
}

// CreateSemester handles POST /semesters.
// A missing calendar period is a validation error, not a 404.
func (s *Server) CreateSemester(ctx context.Context, req gen.CreateSemesterRequestObject) (gen.CreateSemesterResponseObject, error) {
	created, err := s.semesters.Create(ctx, semesterFromRequest("", *req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateSemester422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreateSemester409JSONResponse(conflictBody(err, "semester already exists")), nil
		}
		return nil, err
	}
	return gen.CreateSemester201JSONResponse(semesterToResponse(created)), nil
}

// ListSemesters handles GET /semesters.
func (s *Server) ListSemesters(ctx context.Context, req gen.ListSemestersRequestObject) (gen.ListSemestersResponseObject, error) {
	p := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	semesters, total, err := s.semesters.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return gen.ListSemesters200JSONResponse{
		Data:       convertAll(semesters, semesterToResponse),
		Pagination: paginationOf(p, total),
	}, nil
}

// GetSemester handles GET /semesters/{slug}.
func (s *Server) GetSemester(ctx context.Context, req gen.GetSemesterRequestObject) (gen.GetSemesterResponseObject, error) {
	sem, err := s.semesters.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetSemester404JSONResponse(notFoundBody(err, "semester not found")), nil
		}
		return nil, err
	}
	return gen.GetSemester200JSONResponse(semesterToResponse(sem)), nil
}

// UpdateSemester handles PUT /semesters/{slug}.
func (s *Server) UpdateSemester(ctx context.Context, req gen.UpdateSemesterRequestObject) (gen.UpdateSemesterResponseObject, error) {
	updated, err := s.semesters.Update(ctx, semesterFromRequest(req.Slug, *req.Body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdateSemester404JSONResponse(notFoundBody(err, "semester not found")), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdateSemester422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.UpdateSemester409JSONResponse(conflictBody(err, "semester already exists")), nil
		}
		return nil, err
	}
	return gen.UpdateSemester200JSONResponse(semesterToResponse(updated)), nil
}

// DeleteSemester handles DELETE /semesters/{slug}.
func (s *Server) DeleteSemester(ctx context.Context, req gen.DeleteSemesterRequestObject) (gen.DeleteSemesterResponseObject, error) {
	if err := s.semesters.Delete(ctx, req.Slug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteSemester404JSONResponse(notFoundBody(err, "semester not found")), nil
		}
		return nil, err
	}
	return gen.DeleteSemester204Response{}, nil
}

func semesterToResponse(s domain.Semester) gen.Semester {
	return gen.Semester{
		Slug:           s.Slug,
		Year:           s.Year,
		CalendarPeriod: periodToResponse(s.Period),
		Display:        s.String(),
		Links:          linksToResponse(s.Links()),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
