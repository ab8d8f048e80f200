package service

import (
	"context"
	"fmt"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/repo"
	"github.com/pkordes/courseinfo/backend/internal/slug"
)

// SemesterService implements business logic for Semester operations.
// It holds the periods repo because a semester's slug and display name are
// built from its calendar period's name.
type SemesterService struct {
	semesters repo.SemesterRepo
	periods   repo.PeriodRepo
}

// NewSemesterService constructs a SemesterService backed by the provided repos.
func NewSemesterService(semesters repo.SemesterRepo, periods repo.PeriodRepo) *SemesterService {
	return &SemesterService{semesters: semesters, periods: periods}
}

// Create validates the semester, loads its calendar period, assigns a slug
// such as "2024-fall", then persists.
// Returns domain.ErrValidation if the period does not exist and
// domain.ErrConflict if the year already has a semester for that period.
func (s *SemesterService) Create(ctx context.Context, sem domain.Semester) (domain.Semester, error) {
	if err := validateSemester(sem); err != nil {
		return domain.Semester{}, err
	}
	period, err := s.periods.GetByID(ctx, sem.Period.ID)
	if err != nil {
		return domain.Semester{}, refError("service.SemesterService.Create", "calendar period", err)
	}
	sem.Period = period

	sem.Slug, err = slug.Assign(ctx, sem.SlugSource(), s.semesters.SlugExists)
	if err != nil {
		return domain.Semester{}, fmt.Errorf("service.SemesterService.Create: %w", err)
	}

	result, err := s.semesters.Create(ctx, sem)
	if err != nil {
		return domain.Semester{}, fmt.Errorf("service.SemesterService.Create: %w", err)
	}
	return result, nil
}

// GetBySlug returns a single semester.
func (s *SemesterService) GetBySlug(ctx context.Context, slug string) (domain.Semester, error) {
	result, err := s.semesters.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Semester{}, fmt.Errorf("service.SemesterService.GetBySlug: %w", err)
	}
	return result, nil
}

// List returns one page of semesters ordered by year, then period.
func (s *SemesterService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Semester, int64, error) {
	semesters, total, err := s.semesters.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.SemesterService.List: %w", err)
	}
	return nonNil(semesters), total, nil
}

// Update changes the year and period of the semester identified by sem.Slug.
// The slug itself stays as it was assigned at creation.
func (s *SemesterService) Update(ctx context.Context, sem domain.Semester) (domain.Semester, error) {
	if err := validateSemester(sem); err != nil {
		return domain.Semester{}, err
	}
	if _, err := s.periods.GetByID(ctx, sem.Period.ID); err != nil {
		return domain.Semester{}, refError("service.SemesterService.Update", "calendar period", err)
	}
	result, err := s.semesters.Update(ctx, sem)
	if err != nil {
		return domain.Semester{}, fmt.Errorf("service.SemesterService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a semester and all of its sections.
func (s *SemesterService) Delete(ctx context.Context, slug string) error {
	if err := s.semesters.Delete(ctx, slug); err != nil {
		return fmt.Errorf("service.SemesterService.Delete: %w", err)
	}
	return nil
}

func validateSemester(sem domain.Semester) error {
	return checkFields(
		field{"year", sem.Year, fmt.Sprintf("gte=%d,lte=%d", minYear, maxYear)},
		field{"calendar_period_id", sem.Period.ID, "gte=1"},
	)
}
