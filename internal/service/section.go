package service

import (
	"context"
	"fmt"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/repo"
	"github.com/pkordes/courseinfo/backend/internal/slug"
)

// SectionService implements business logic for Section operations and the
// section's instructor and student links. Callers refer to every related
// entity by slug; the service resolves slugs to ids before touching the
// section repo.
type SectionService struct {
	sections    repo.SectionRepo
	semesters   repo.SemesterRepo
	courses     repo.CourseRepo
	instructors repo.InstructorRepo
	students    repo.StudentRepo
}

// NewSectionService constructs a SectionService backed by the provided repos.
func NewSectionService(
	sections repo.SectionRepo,
	semesters repo.SemesterRepo,
	courses repo.CourseRepo,
	instructors repo.InstructorRepo,
	students repo.StudentRepo,
) *SectionService {
	return &SectionService{
		sections:    sections,
		semesters:   semesters,
		courses:     courses,
		instructors: instructors,
		students:    students,
	}
}

// Create validates the section, resolves sec.Semester.Slug and
// sec.Course.Slug, assigns a slug from the section name, then persists.
// Returns domain.ErrValidation if either parent does not exist.
func (s *SectionService) Create(ctx context.Context, sec domain.Section) (domain.Section, error) {
	const op = "service.SectionService.Create"

	sec.Name = trim(sec.Name)
	if err := validateSection(sec); err != nil {
		return domain.Section{}, err
	}
	sec, err := s.resolveParents(ctx, op, sec)
	if err != nil {
		return domain.Section{}, err
	}

	sec.Slug, err = slug.Assign(ctx, sec.SlugSource(), s.sections.SlugExists)
	if err != nil {
		return domain.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.sections.Create(ctx, sec)
	if err != nil {
		return domain.Section{}, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetBySlug returns a single section with its semester and course.
func (s *SectionService) GetBySlug(ctx context.Context, slug string) (domain.Section, error) {
	result, err := s.sections.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Section{}, fmt.Errorf("service.SectionService.GetBySlug: %w", err)
	}
	return result, nil
}

// List returns one page of sections matching f. Filtering on a slug that
// does not exist yields an empty page, not an error.
func (s *SectionService) List(ctx context.Context, f domain.SectionFilter, p domain.PaginationParams) ([]domain.Section, int64, error) {
	sections, total, err := s.sections.List(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.SectionService.List: %w", err)
	}
	return nonNil(sections), total, nil
}

// Update changes name, semester, and course of the section identified by
// sec.Slug. The slug is left untouched.
func (s *SectionService) Update(ctx context.Context, sec domain.Section) (domain.Section, error) {
	const op = "service.SectionService.Update"

	sec.Name = trim(sec.Name)
	if err := validateSection(sec); err != nil {
		return domain.Section{}, err
	}
	sec, err := s.resolveParents(ctx, op, sec)
	if err != nil {
		return domain.Section{}, err
	}

	result, err := s.sections.Update(ctx, sec)
	if err != nil {
		return domain.Section{}, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Delete removes a section and its instructor and student links.
func (s *SectionService) Delete(ctx context.Context, slug string) error {
	if err := s.sections.Delete(ctx, slug); err != nil {
		return fmt.Errorf("service.SectionService.Delete: %w", err)
	}
	return nil
}

// AddInstructor links the instructor to the section and returns the
// instructor. Linking twice is not an error.
func (s *SectionService) AddInstructor(ctx context.Context, sectionSlug, instructorSlug string) (domain.Instructor, error) {
	sec, inst, err := s.sectionAndInstructor(ctx, "service.SectionService.AddInstructor", sectionSlug, instructorSlug)
	if err != nil {
		return domain.Instructor{}, err
	}
	if err := s.sections.AddInstructor(ctx, sec.ID, inst.ID); err != nil {
		return domain.Instructor{}, fmt.Errorf("service.SectionService.AddInstructor: %w", err)
	}
	return inst, nil
}

// RemoveInstructor unlinks the instructor from the section.
// Returns domain.ErrNotFound if either is missing or they were not linked.
func (s *SectionService) RemoveInstructor(ctx context.Context, sectionSlug, instructorSlug string) error {
	sec, inst, err := s.sectionAndInstructor(ctx, "service.SectionService.RemoveInstructor", sectionSlug, instructorSlug)
	if err != nil {
		return err
	}
	if err := s.sections.RemoveInstructor(ctx, sec.ID, inst.ID); err != nil {
		return fmt.Errorf("service.SectionService.RemoveInstructor: %w", err)
	}
	return nil
}

// ListInstructors returns everyone teaching the section.
func (s *SectionService) ListInstructors(ctx context.Context, sectionSlug string) ([]domain.Instructor, error) {
	sec, err := s.sections.GetBySlug(ctx, sectionSlug)
	if err != nil {
		return nil, fmt.Errorf("service.SectionService.ListInstructors: %w", err)
	}
	instructors, err := s.sections.ListInstructors(ctx, sec.ID)
	if err != nil {
		return nil, fmt.Errorf("service.SectionService.ListInstructors: %w", err)
	}
	return nonNil(instructors), nil
}

// AddStudent enrols the student in the section and returns the student.
// Enrolling twice is not an error.
func (s *SectionService) AddStudent(ctx context.Context, sectionSlug, studentSlug string) (domain.Student, error) {
	sec, st, err := s.sectionAndStudent(ctx, "service.SectionService.AddStudent", sectionSlug, studentSlug)
	if err != nil {
		return domain.Student{}, err
	}
	if err := s.sections.AddStudent(ctx, sec.ID, st.ID); err != nil {
		return domain.Student{}, fmt.Errorf("service.SectionService.AddStudent: %w", err)
	}
	return st, nil
}

// RemoveStudent withdraws the student from the section.
// Returns domain.ErrNotFound if either is missing or they were not linked.
func (s *SectionService) RemoveStudent(ctx context.Context, sectionSlug, studentSlug string) error {
	sec, st, err := s.sectionAndStudent(ctx, "service.SectionService.RemoveStudent", sectionSlug, studentSlug)
	if err != nil {
		return err
	}
	if err := s.sections.RemoveStudent(ctx, sec.ID, st.ID); err != nil {
		return fmt.Errorf("service.SectionService.RemoveStudent: %w", err)
	}
	return nil
}

// ListStudents returns everyone enrolled in the section.
func (s *SectionService) ListStudents(ctx context.Context, sectionSlug string) ([]domain.Student, error) {
	sec, err := s.sections.GetBySlug(ctx, sectionSlug)
	if err != nil {
		return nil, fmt.Errorf("service.SectionService.ListStudents: %w", err)
	}
	students, err := s.sections.ListStudents(ctx, sec.ID)
	if err != nil {
		return nil, fmt.Errorf("service.SectionService.ListStudents: %w", err)
	}
	return nonNil(students), nil
}

// resolveParents replaces the slug-only Semester and Course on sec with the
// stored records so their ids can be written.
func (s *SectionService) resolveParents(ctx context.Context, op string, sec domain.Section) (domain.Section, error) {
	sem, err := s.semesters.GetBySlug(ctx, sec.Semester.Slug)
	if err != nil {
		return domain.Section{}, refError(op, "semester", err)
	}
	course, err := s.courses.GetBySlug(ctx, sec.Course.Slug)
	if err != nil {
		return domain.Section{}, refError(op, "course", err)
	}
	sec.Semester, sec.Course = sem, course
	return sec, nil
}

func (s *SectionService) sectionAndInstructor(ctx context.Context, op, sectionSlug, instructorSlug string) (domain.Section, domain.Instructor, error) {
	sec, err := s.sections.GetBySlug(ctx, sectionSlug)
	if err != nil {
		return domain.Section{}, domain.Instructor{}, notFound(op, "section", err)
	}
	inst, err := s.instructors.GetBySlug(ctx, instructorSlug)
	if err != nil {
		return domain.Section{}, domain.Instructor{}, notFound(op, "instructor", err)
	}
	return sec, inst, nil
}

func (s *SectionService) sectionAndStudent(ctx context.Context, op, sectionSlug, studentSlug string) (domain.Section, domain.Student, error) {
	sec, err := s.sections.GetBySlug(ctx, sectionSlug)
	if err != nil {
		return domain.Section{}, domain.Student{}, notFound(op, "section", err)
	}
	st, err := s.students.GetBySlug(ctx, studentSlug)
	if err != nil {
		return domain.Section{}, domain.Student{}, notFound(op, "student", err)
	}
	return sec, st, nil
}

func validateSection(sec domain.Section) error {
	return checkFields(
		field{"name", sec.Name, text(maxSectionName)},
		field{"semester", sec.Semester.Slug, "required"},
		field{"course", sec.Course.Slug, "required"},
	)
}
