package service

import (
	"context"
	"fmt"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/repo"
	"github.com/pkordes/courseinfo/backend/internal/slug"
)

// InstructorService implements business logic for Instructor operations.
// It holds the sections repo to answer "which sections does this person teach".
type InstructorService struct {
	instructors repo.InstructorRepo
	sections    repo.SectionRepo
}

// NewInstructorService constructs an InstructorService backed by the provided repos.
func NewInstructorService(instructors repo.InstructorRepo, sections repo.SectionRepo) *InstructorService {
	return &InstructorService{instructors: instructors, sections: sections}
}

// Create validates the instructor, assigns a slug from "last--first", then
// persists. Two instructors with the same name get slugs that differ only by
// a numeric suffix.
func (s *InstructorService) Create(ctx context.Context, i domain.Instructor) (domain.Instructor, error) {
	i.FirstName, i.LastName = trim(i.FirstName), trim(i.LastName)
	if err := validateName(i.FirstName, i.LastName); err != nil {
		return domain.Instructor{}, err
	}

	var err error
	i.Slug, err = slug.Assign(ctx, i.SlugSource(), s.instructors.SlugExists)
	if err != nil {
		return domain.Instructor{}, fmt.Errorf("service.InstructorService.Create: %w", err)
	}

	result, err := s.instructors.Create(ctx, i)
	if err != nil {
		return domain.Instructor{}, fmt.Errorf("service.InstructorService.Create: %w", err)
	}
	return result, nil
}

// GetBySlug returns a single instructor.
func (s *InstructorService) GetBySlug(ctx context.Context, slug string) (domain.Instructor, error) {
	result, err := s.instructors.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Instructor{}, fmt.Errorf("service.InstructorService.GetBySlug: %w", err)
	}
	return result, nil
}

// List returns one page of instructors ordered by last, then first name.
func (s *InstructorService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Instructor, int64, error) {
	instructors, total, err := s.instructors.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.InstructorService.List: %w", err)
	}
	return nonNil(instructors), total, nil
}

// Update changes the names. The slug keeps the name it was created with.
func (s *InstructorService) Update(ctx context.Context, i domain.Instructor) (domain.Instructor, error) {
	i.FirstName, i.LastName = trim(i.FirstName), trim(i.LastName)
	if err := validateName(i.FirstName, i.LastName); err != nil {
		return domain.Instructor{}, err
	}
	result, err := s.instructors.Update(ctx, i)
	if err != nil {
		return domain.Instructor{}, fmt.Errorf("service.InstructorService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an instructor. Their sections are kept.
func (s *InstructorService) Delete(ctx context.Context, slug string) error {
	if err := s.instructors.Delete(ctx, slug); err != nil {
		return fmt.Errorf("service.InstructorService.Delete: %w", err)
	}
	return nil
}

// ListSections returns one page of the sections the instructor teaches.
// Returns domain.ErrNotFound if the instructor does not exist.
func (s *InstructorService) ListSections(ctx context.Context, slug string, p domain.PaginationParams) ([]domain.Section, int64, error) {
	if _, err := s.instructors.GetBySlug(ctx, slug); err != nil {
		return nil, 0, fmt.Errorf("service.InstructorService.ListSections: %w", err)
	}
	sections, total, err := s.sections.List(ctx, domain.SectionFilter{Instructor: slug}, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.InstructorService.ListSections: %w", err)
	}
	return nonNil(sections), total, nil
}

// StudentService implements business logic for Student operations.
type StudentService struct {
	students repo.StudentRepo
	sections repo.SectionRepo
}

// NewStudentService constructs a StudentService backed by the provided repos.
func NewStudentService(students repo.StudentRepo, sections repo.SectionRepo) *StudentService {
	return &StudentService{students: students, sections: sections}
}

// Create validates the student, assigns a slug from "last--first", then
// persists. The nick name is not part of the slug.
func (s *StudentService) Create(ctx context.Context, st domain.Student) (domain.Student, error) {
	st.FirstName, st.LastName, st.NickName = trim(st.FirstName), trim(st.LastName), trim(st.NickName)
	if err := validateStudent(st); err != nil {
		return domain.Student{}, err
	}

	var err error
	st.Slug, err = slug.Assign(ctx, st.SlugSource(), s.students.SlugExists)
	if err != nil {
		return domain.Student{}, fmt.Errorf("service.StudentService.Create: %w", err)
	}

	result, err := s.students.Create(ctx, st)
	if err != nil {
		return domain.Student{}, fmt.Errorf("service.StudentService.Create: %w", err)
	}
	return result, nil
}

// GetBySlug returns a single student.
func (s *StudentService) GetBySlug(ctx context.Context, slug string) (domain.Student, error) {
	result, err := s.students.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Student{}, fmt.Errorf("service.StudentService.GetBySlug: %w", err)
	}
	return result, nil
}

// List returns one page of students ordered by last, then first name.
func (s *StudentService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Student, int64, error) {
	students, total, err := s.students.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.StudentService.List: %w", err)
	}
	return nonNil(students), total, nil
}

// Update changes the names. The slug keeps the name it was created with.
func (s *StudentService) Update(ctx context.Context, st domain.Student) (domain.Student, error) {
	st.FirstName, st.LastName, st.NickName = trim(st.FirstName), trim(st.LastName), trim(st.NickName)
	if err := validateStudent(st); err != nil {
		return domain.Student{}, err
	}
	result, err := s.students.Update(ctx, st)
	if err != nil {
		return domain.Student{}, fmt.Errorf("service.StudentService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a student. Their sections are kept.
func (s *StudentService) Delete(ctx context.Context, slug string) error {
	if err := s.students.Delete(ctx, slug); err != nil {
		return fmt.Errorf("service.StudentService.Delete: %w", err)
	}
	return nil
}

// ListSections returns one page of the sections the student is enrolled in.
// Returns domain.ErrNotFound if the student does not exist.
func (s *StudentService) ListSections(ctx context.Context, slug string, p domain.PaginationParams) ([]domain.Section, int64, error) {
	if _, err := s.students.GetBySlug(ctx, slug); err != nil {
		return nil, 0, fmt.Errorf("service.StudentService.ListSections: %w", err)
	}
	sections, total, err := s.sections.List(ctx, domain.SectionFilter{Student: slug}, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.StudentService.ListSections: %w", err)
	}
	return nonNil(sections), total, nil
}

func validateName(first, last string) error {
	return checkFields(
		field{"first_name", first, text(maxPersonName)},
		field{"last_name", last, text(maxPersonName)},
	)
}

func validateStudent(st domain.Student) error {
	if err := validateName(st.FirstName, st.LastName); err != nil {
		return err
	}
	return checkFields(field{"nick_name", st.NickName, fmt.Sprintf("max=%d", maxPersonName)})
}
