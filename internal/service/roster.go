package service

import (
	"context"
	"fmt"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/repo"
)

// RosterService assembles a section with its instructors and students for
// export.
type RosterService struct {
	sections repo.SectionRepo
}

// NewRosterService constructs a RosterService backed by the provided SectionRepo.
func NewRosterService(sections repo.SectionRepo) *RosterService {
	return &RosterService{sections: sections}
}

// Roster returns the section identified by slug with everyone attached to it.
// Instructors and Students are never nil.
func (s *RosterService) Roster(ctx context.Context, slug string) (domain.Roster, error) {
	sec, err := s.sections.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Roster{}, fmt.Errorf("service.RosterService.Roster: %w", err)
	}
	instructors, err := s.sections.ListInstructors(ctx, sec.ID)
	if err != nil {
		return domain.Roster{}, fmt.Errorf("service.RosterService.Roster: instructors: %w", err)
	}
	students, err := s.sections.ListStudents(ctx, sec.ID)
	if err != nil {
		return domain.Roster{}, fmt.Errorf("service.RosterService.Roster: students: %w", err)
	}
	return domain.Roster{
		Section:     sec,
		Instructors: nonNil(instructors),
		Students:    nonNil(students),
	}, nil
}
