package handler

import (
	"context"
	"errors"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

// sectionFromRequest builds the domain value for create and update. The
// semester and course are carried by slug; the service resolves them.
func sectionFromRequest(slug string, b gen.SectionRequest) domain.Section {
	return domain.Section{
		Slug:     slug,
		Name:     b.Name,
		Semester: domain.Semester{Slug: b.Semester},
		Course:   domain.Course{Slug: b.Course},
	}
}

// CreateSection handles POST /sections.
func (s *Server) CreateSection(ctx context.Context, req gen.CreateSectionRequestObject) (gen.CreateSectionResponseObject, error) {
	created, err := s.sections.Create(ctx, sectionFromRequest("", *req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateSection422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreateSection409JSONResponse(conflictBody(err, "section already exists")), nil
		}
		return nil, err
	}
	return gen.CreateSection201JSONResponse(sectionToResponse(created)), nil
}

// ListSections handles GET /sections.
// Optional ?semester=, ?course=, ?instructor= and ?student= slugs narrow the
// result; they combine with AND.
func (s *Server) ListSections(ctx context.Context, req gen.ListSectionsRequestObject) (gen.ListSectionsResponseObject, error) {
	p := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	f := domain.SectionFilter{
		Semester:   derefString(req.Params.Semester),
		Course:     derefString(req.Params.Course),
		Instructor: derefString(req.Params.Instructor),
		Student:    derefString(req.Params.Student),
	}

	sections, total, err := s.sections.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	return gen.ListSections200JSONResponse{
		Data:       convertAll(sections, sectionToResponse),
		Pagination: paginationOf(p, total),
	}, nil
}

// GetSection handles GET /sections/{slug}.
func (s *Server) GetSection(ctx context.Context, req gen.GetSectionRequestObject) (gen.GetSectionResponseObject, error) {
	sec, err := s.sections.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetSection404JSONResponse(notFoundBody(err, "section not found")), nil
		}
		return nil, err
	}
	return gen.GetSection200JSONResponse(sectionToResponse(sec)), nil
}

// UpdateSection handles PUT /sections/{slug}.
func (s *Server) UpdateSection(ctx context.Context, req gen.UpdateSectionRequestObject) (gen.UpdateSectionResponseObject, error) {
	updated, err := s.sections.Update(ctx, sectionFromRequest(req.Slug, *req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateSection404JSONResponse(notFoundBody(err, "section not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateSection422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdateSection200JSONResponse(sectionToResponse(updated)), nil
}

// DeleteSection handles DELETE /sections/{slug}.
func (s *Server) DeleteSection(ctx context.Context, req gen.DeleteSectionRequestObject) (gen.DeleteSectionResponseObject, error) {
	if err := s.sections.Delete(ctx, req.Slug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteSection404JSONResponse(notFoundBody(err, "section not found")), nil
		}
		return nil, err
	}
	return gen.DeleteSection204Response{}, nil
}

// ---- Instructors -----------------------------------------------------------

// ListSectionInstructors handles GET /sections/{slug}/instructors.
func (s *Server) ListSectionInstructors(ctx context.Context, req gen.ListSectionInstructorsRequestObject) (gen.ListSectionInstructorsResponseObject, error) {
	instructors, err := s.sections.ListInstructors(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListSectionInstructors404JSONResponse(notFoundBody(err, "section not found")), nil
		}
		return nil, err
	}
	return gen.ListSectionInstructors200JSONResponse{Data: convertAll(instructors, instructorToResponse)}, nil
}

// AddSectionInstructor handles PUT /sections/{slug}/instructors/{instructorSlug}.
// The call is idempotent and always answers 200 with the instructor.
func (s *Server) AddSectionInstructor(ctx context.Context, req gen.AddSectionInstructorRequestObject) (gen.AddSectionInstructorResponseObject, error) {
	inst, err := s.sections.AddInstructor(ctx, req.Slug, req.InstructorSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.AddSectionInstructor404JSONResponse(notFoundBody(err, "section or instructor not found")), nil
		}
		return nil, err
	}
	return gen.AddSectionInstructor200JSONResponse(instructorToResponse(inst)), nil
}

// RemoveSectionInstructor handles DELETE /sections/{slug}/instructors/{instructorSlug}.
func (s *Server) RemoveSectionInstructor(ctx context.Context, req gen.RemoveSectionInstructorRequestObject) (gen.RemoveSectionInstructorResponseObject, error) {
	if err := s.sections.RemoveInstructor(ctx, req.Slug, req.InstructorSlug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.RemoveSectionInstructor404JSONResponse(notFoundBody(err, "section instructor not found")), nil
		}
		return nil, err
	}
	return gen.RemoveSectionInstructor204Response{}, nil
}

// ---- Students --------------------------------------------------------------

// ListSectionStudents handles GET /sections/{slug}/students.
func (s *Server) ListSectionStudents(ctx context.Context, req gen.ListSectionStudentsRequestObject) (gen.ListSectionStudentsResponseObject, error) {
	students, err := s.sections.ListStudents(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListSectionStudents404JSONResponse(notFoundBody(err, "section not found")), nil
		}
		return nil, err
	}
	return gen.ListSectionStudents200JSONResponse{Data: convertAll(students, studentToResponse)}, nil
}

// AddSectionStudent handles PUT /sections/{slug}/students/{studentSlug}.
func (s *Server) AddSectionStudent(ctx context.Context, req gen.AddSectionStudentRequestObject) (gen.AddSectionStudentResponseObject, error) {
	st, err := s.sections.AddStudent(ctx, req.Slug, req.StudentSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.AddSectionStudent404JSONResponse(notFoundBody(err, "section or student not found")), nil
		}
		return nil, err
	}
	return gen.AddSectionStudent200JSONResponse(studentToResponse(st)), nil
}

// RemoveSectionStudent handles DELETE /sections/{slug}/students/{studentSlug}.
func (s *Server) RemoveSectionStudent(ctx context.Context, req gen.RemoveSectionStudentRequestObject) (gen.RemoveSectionStudentResponseObject, error) {
	if err := s.sections.RemoveStudent(ctx, req.Slug, req.StudentSlug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.RemoveSectionStudent404JSONResponse(notFoundBody(err, "section student not found")), nil
		}
		return nil, err
	}
	return gen.RemoveSectionStudent204Response{}, nil
}

func refToResponse(slug, display string, links domain.Links) gen.Ref {
	return gen.Ref{Slug: slug, Display: display, Links: linksToResponse(links)}
}

// sectionToResponse converts a domain.Section to the generated API response
// type. The semester and course are compact references.
func sectionToResponse(s domain.Section) gen.Section {
	return gen.Section{
		Slug:      s.Slug,
		Name:      s.Name,
		Semester:  refToResponse(s.Semester.Slug, s.Semester.String(), s.Semester.Links()),
		Course:    refToResponse(s.Course.Slug, s.Course.String(), s.Course.Links()),
		Display:   s.String(),
		Links:     linksToResponse(s.Links()),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
