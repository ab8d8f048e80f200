package service

import (
	"context"
	"fmt"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/repo"
)

// PeriodService implements business logic for CalendarPeriod operations.
type PeriodService struct {
	periods repo.PeriodRepo
}

// NewPeriodService constructs a PeriodService backed by the provided PeriodRepo.
func NewPeriodService(periods repo.PeriodRepo) *PeriodService {
	return &PeriodService{periods: periods}
}

// Create validates and persists a new calendar period.
// The caller chooses the id; it also fixes the period's place in orderings.
func (s *PeriodService) Create(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) {
	p.Name = trim(p.Name)
	if err := validatePeriod(p); err != nil {
		return domain.CalendarPeriod{}, err
	}
	result, err := s.periods.Create(ctx, p)
	if err != nil {
		return domain.CalendarPeriod{}, fmt.Errorf("service.PeriodService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single period.
func (s *PeriodService) GetByID(ctx context.Context, id int) (domain.CalendarPeriod, error) {
	result, err := s.periods.GetByID(ctx, id)
	if err != nil {
		return domain.CalendarPeriod{}, fmt.Errorf("service.PeriodService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of periods ordered by id and the total count.
func (s *PeriodService) List(ctx context.Context, p domain.PaginationParams) ([]domain.CalendarPeriod, int64, error) {
	periods, total, err := s.periods.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.PeriodService.List: %w", err)
	}
	return nonNil(periods), total, nil
}

// Update renames an existing period.
func (s *PeriodService) Update(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) {
	p.Name = trim(p.Name)
	if err := validatePeriod(p); err != nil {
		return domain.CalendarPeriod{}, err
	}
	result, err := s.periods.Update(ctx, p)
	if err != nil {
		return domain.CalendarPeriod{}, fmt.Errorf("service.PeriodService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a period together with its semesters and their sections.
func (s *PeriodService) Delete(ctx context.Context, id int) error {
	if err := s.periods.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PeriodService.Delete: %w", err)
	}
	return nil
}

func validatePeriod(p domain.CalendarPeriod) error {
	return checkFields(
		field{"id", p.ID, "gte=1"},
		field{"name", p.Name, text(maxPeriodName)},
	)
}
