package handler

import (
	"context"
	"errors"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

// ---- Instructors -----------------------------------------------------------

// CreateInstructor handles POST /instructors.
func (s *Server) CreateInstructor(ctx context.Context, req gen.CreateInstructorRequestObject) (gen.CreateInstructorResponseObject, error) {
	in := domain.Instructor{FirstName: req.Body.FirstName, LastName: req.Body.LastName}
	created, err := s.instructors.Create(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateInstructor422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreateInstructor409JSONResponse(conflictBody(err, "instructor already exists")), nil
		}
		return nil, err
	}
	return gen.CreateInstructor201JSONResponse(instructorToResponse(created)), nil
}

// ListInstructors handles GET /instructors.
func (s *Server) ListInstructors(ctx context.Context, req gen.ListInstructorsRequestObject) (gen.ListInstructorsResponseObject, error) {
	p := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	instructors, total, err := s.instructors.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return gen.ListInstructors200JSONResponse{
		Data:       convertAll(instructors, instructorToResponse),
		Pagination: paginationOf(p, total),
	}, nil
}

// GetInstructor handles GET /instructors/{slug}.
func (s *Server) GetInstructor(ctx context.Context, req gen.GetInstructorRequestObject) (gen.GetInstructorResponseObject, error) {
	inst, err := s.instructors.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetInstructor404JSONResponse(notFoundBody(err, "instructor not found")), nil
		}
		return nil, err
	}
	return gen.GetInstructor200JSONResponse(instructorToResponse(inst)), nil
}

// UpdateInstructor handles PUT /instructors/{slug}.
func (s *Server) UpdateInstructor(ctx context.Context, req gen.UpdateInstructorRequestObject) (gen.UpdateInstructorResponseObject, error) {
	in := domain.Instructor{Slug: req.Slug, FirstName: req.Body.FirstName, LastName: req.Body.LastName}
	updated, err := s.instructors.Update(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateInstructor404JSONResponse(notFoundBody(err, "instructor not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateInstructor422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdateInstructor200JSONResponse(instructorToResponse(updated)), nil
}

// DeleteInstructor handles DELETE /instructors/{slug}.
func (s *Server) DeleteInstructor(ctx context.Context, req gen.DeleteInstructorRequestObject) (gen.DeleteInstructorResponseObject, error) {
	if err := s.instructors.Delete(ctx, req.Slug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteInstructor404JSONResponse(notFoundBody(err, "instructor not found")), nil
		}
		return nil, err
	}
	return gen.DeleteInstructor204Response{}, nil
}

// ListInstructorSections handles GET /instructors/{slug}/sections.
func (s *Server) ListInstructorSections(ctx context.Context, req gen.ListInstructorSectionsRequestObject) (gen.ListInstructorSectionsResponseObject, error) {
	p := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	sections, total, err := s.instructors.ListSections(ctx, req.Slug, p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListInstructorSections404JSONResponse(notFoundBody(err, "instructor not found")), nil
		}
		return nil, err
	}
	return gen.ListInstructorSections200JSONResponse{
		Data:       convertAll(sections, sectionToResponse),
		Pagination: paginationOf(p, total),
	}, nil
}

func instructorToResponse(i domain.Instructor) gen.Instructor {
	return gen.Instructor{
		Slug:      i.Slug,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Display:   i.String(),
		Links:     linksToResponse(i.Links()),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ---- Students --------------------------------------------------------------

func studentFromRequest(slug string, b gen.StudentRequest) domain.Student {
	return domain.Student{
		Slug:      slug,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		NickName:  derefString(b.NickName),
	}
}

// CreateStudent handles POST /students.
func (s *Server) CreateStudent(ctx context.Context, req gen.CreateStudentRequestObject) (gen.CreateStudentResponseObject, error) {
	created, err := s.students.Create(ctx, studentFromRequest("", *req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateStudent422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreateStudent409JSONResponse(conflictBody(err, "student already exists")), nil
		}
		return nil, err
	}
	return gen.CreateStudent201JSONResponse(studentToResponse(created)), nil
}

// ListStudents handles GET /students.
func (s *Server) ListStudents(ctx context.Context, req gen.ListStudentsRequestObject) (gen.ListStudentsResponseObject, error) {
	p := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	students, total, err := s.students.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return gen.ListStudents200JSONResponse{
		Data:       convertAll(students, studentToResponse),
		Pagination: paginationOf(p, total),
	}, nil
}

// GetStudent handles GET /students/{slug}.
func (s *Server) GetStudent(ctx context.Context, req gen.GetStudentRequestObject) (gen.GetStudentResponseObject, error) {
	st, err := s.students.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetStudent404JSONResponse(notFoundBody(err, "student not found")), nil
		}
		return nil, err
	}
	return gen.GetStudent200JSONResponse(studentToResponse(st)), nil
}

// UpdateStudent handles PUT /students/{slug}.
func (s *Server) UpdateStudent(ctx context.Context, req gen.UpdateStudentRequestObject) (gen.UpdateStudentResponseObject, error) {
	updated, err := s.students.Update(ctx, studentFromRequest(req.Slug, *req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateStudent404JSONResponse(notFoundBody(err, "student not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateStudent422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdateStudent200JSONResponse(studentToResponse(updated)), nil
}

// DeleteStudent handles DELETE /students/{slug}.
func (s *Server) DeleteStudent(ctx context.Context, req gen.DeleteStudentRequestObject) (gen.DeleteStudentResponseObject, error) {
	if err := s.students.Delete(ctx, req.Slug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteStudent404JSONResponse(notFoundBody(err, "student not found")), nil
		}
		return nil, err
	}
	return gen.DeleteStudent204Response{}, nil
}

// ListStudentSections handles GET /students/{slug}/sections.
func (s *Server) ListStudentSections(ctx context.Context, req gen.ListStudentSectionsRequestObject) (gen.ListStudentSectionsResponseObject, error) {
	p := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	sections, total, err := s.students.ListSections(ctx, req.Slug, p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListStudentSections404JSONResponse(notFoundBody(err, "student not found")), nil
		}
		return nil, err
	}
	return gen.ListStudentSections200JSONResponse{
		Data:       convertAll(sections, sectionToResponse),
		Pagination: paginationOf(p, total),
	}, nil
}

func studentToResponse(s domain.Student) gen.Student {
	return gen.Student{
		Slug:      s.Slug,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		NickName:  s.NickName,
		Display:   s.String(),
		Links:     linksToResponse(s.Links()),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
