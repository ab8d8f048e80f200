package service

import (
	"context"
	"fmt"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/repo"
	"github.com/pkordes/courseinfo/backend/internal/slug"
)

// CourseService implements business logic for Course operations.
type CourseService struct {
	courses repo.CourseRepo
}

// NewCourseService constructs a CourseService backed by the provided CourseRepo.
func NewCourseService(courses repo.CourseRepo) *CourseService {
	return &CourseService{courses: courses}
}

// Create validates the course, assigns a slug from its name, then persists.
// Returns domain.ErrConflict if the course number is already used.
func (s *CourseService) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	c.Number, c.Name = trim(c.Number), trim(c.Name)
	if err := validateCourse(c); err != nil {
		return domain.Course{}, err
	}

	var err error
	c.Slug, err = slug.Assign(ctx, c.SlugSource(), s.courses.SlugExists)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Create: %w", err)
	}

	result, err := s.courses.Create(ctx, c)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Create: %w", err)
	}
	return result, nil
}

// GetBySlug returns a single course.
func (s *CourseService) GetBySlug(ctx context.Context, slug string) (domain.Course, error) {
	result, err := s.courses.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.GetBySlug: %w", err)
	}
	return result, nil
}

// List returns one page of courses ordered by number.
func (s *CourseService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Course, int64, error) {
	courses, total, err := s.courses.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CourseService.List: %w", err)
	}
	return nonNil(courses), total, nil
}

// Update changes number and name. Renaming does not change the slug.
func (s *CourseService) Update(ctx context.Context, c domain.Course) (domain.Course, error) {
	c.Number, c.Name = trim(c.Number), trim(c.Name)
	if err := validateCourse(c); err != nil {
		return domain.Course{}, err
	}
	result, err := s.courses.Update(ctx, c)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a course and all of its sections.
func (s *CourseService) Delete(ctx context.Context, slug string) error {
	if err := s.courses.Delete(ctx, slug); err != nil {
		return fmt.Errorf("service.CourseService.Delete: %w", err)
	}
	return nil
}

func validateCourse(c domain.Course) error {
	return checkFields(
		field{"number", c.Number, text(maxCourseNum)},
		field{"name", c.Name, text(maxCourseName)},
	)
}
