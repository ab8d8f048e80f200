package handler

import (
	"context"
	"errors"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

// CreatePeriod handles POST /periods.
func (s *Server) CreatePeriod(ctx context.Context, req gen.CreatePeriodRequestObject) (gen.CreatePeriodResponseObject, error) {
	created, err := s.periods.Create(ctx, domain.CalendarPeriod{ID: req.Body.Id, Name: req.Body.Name})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreatePeriod422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreatePeriod409JSONResponse(conflictBody(err, "calendar period already exists")), nil
		}
		return nil, err
	}
	return gen.CreatePeriod201JSONResponse(periodToResponse(created)), nil
}

// ListPeriods handles GET /periods.
func (s *Server) ListPeriods(ctx context.Context, req gen.ListPeriodsRequestObject) (gen.ListPeriodsResponseObject, error) {
	p := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	periods, total, err := s.periods.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return gen.ListPeriods200JSONResponse{
		Data:       convertAll(periods, periodToResponse),
		Pagination: paginationOf(p, total),
	}, nil
}

// GetPeriod handles GET /periods/{id}.
func (s *Server) GetPeriod(ctx context.Context, req gen.GetPeriodRequestObject) (gen.GetPeriodResponseObject, error) {
	period, err := s.periods.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetPeriod404JSONResponse(notFoundBody(err, "calendar period not found")), nil
		}
		return nil, err
	}
	return gen.GetPeriod200JSONResponse(periodToResponse(period)), nil
}

// UpdatePeriod handles PUT /periods/{id}. The id in the body is ignored;
// the path wins.
func (s *Server) UpdatePeriod(ctx context.Context, req gen.UpdatePeriodRequestObject) (gen.UpdatePeriodResponseObject, error) {
	updated, err := s.periods.Update(ctx, domain.CalendarPeriod{ID: req.Id, Name: req.Body.Name})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdatePeriod404JSONResponse(notFoundBody(err, "calendar period not found")), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdatePeriod422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.UpdatePeriod409JSONResponse(conflictBody(err, "calendar period already exists")), nil
		}
		return nil, err
	}
	return gen.UpdatePeriod200JSONResponse(periodToResponse(updated)), nil
}

// DeletePeriod handles DELETE /periods/{id}. Semesters of the period and
// their sections are deleted with it.
func (s *Server) DeletePeriod(ctx context.Context, req gen.DeletePeriodRequestObject) (gen.DeletePeriodResponseObject, error) {
	if err := s.periods.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeletePeriod404JSONResponse(notFoundBody(err, "calendar period not found")), nil
		}
		return nil, err
	}
	return gen.DeletePeriod204Response{}, nil
}

func periodToResponse(p domain.CalendarPeriod) gen.CalendarPeriod {
	return gen.CalendarPeriod{Id: p.ID, Name: p.Name, Display: p.String()}
}
