package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

// SemesterRepo defines the persistence operations for Semesters.
type SemesterRepo interface {
	// Create inserts a semester whose Slug has already been assigned.
	// Returns domain.ErrConflict if (year, period) or the slug is taken,
	// domain.ErrNotFound if the calendar period does not exist.
	Create(ctx context.Context, s domain.Semester) (domain.Semester, error)

	// GetBySlug returns domain.ErrNotFound if no semester has that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Semester, error)

	// List returns one page ordered by year, then period id, plus the total.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Semester, int64, error)

	// Update overwrites year and period of the semester identified by s.Slug.
	// The slug column is never written.
	Update(ctx context.Context, s domain.Semester) (domain.Semester, error)

	// Delete removes a semester and, by cascade, its sections.
	Delete(ctx context.Context, slug string) error

	// SlugExists reports whether slug is used by any semester.
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type pgSemesterRepo struct {
	db db
}

// NewSemesterRepo constructs a SemesterRepo backed by the provided db connection.
func NewSemesterRepo(db db) SemesterRepo {
	return &pgSemesterRepo{db: db}
}

// semesterSelect joins the period so every returned semester can be displayed.
const semesterSelect = `
	SELECT s.id, s.year, p.id, p.name, s.slug, s.created_at, s.updated_at
	FROM semesters s
	JOIN calendar_periods p ON p.id = s.calendar_period_id`

func (r *pgSemesterRepo) Create(ctx context.Context, s domain.Semester) (domain.Semester, error) {
	const q = `
		WITH s AS (
			INSERT INTO semesters (year, calendar_period_id, slug)
			VALUES (@year, @period_id, @slug)
			RETURNING *
		)
		SELECT s.id, s.year, p.id, p.name, s.slug, s.created_at, s.updated_at
		FROM s
		JOIN calendar_periods p ON p.id = s.calendar_period_id`

	args := pgx.NamedArgs{
		"year":      s.Year,
		"period_id": s.Period.ID,
		"slug":      s.Slug,
	}
	result, err := scanSemester(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Semester{}, fmt.Errorf("repo.SemesterRepo.Create: %w", mapError(err))
	}
	return result, nil
}

func (r *pgSemesterRepo) GetBySlug(ctx context.Context, slug string) (domain.Semester, error) {
	q := semesterSelect + ` WHERE s.slug = @slug`

	result, err := scanSemester(r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}))
	if err != nil {
		return domain.Semester{}, fmt.Errorf("repo.SemesterRepo.GetBySlug: %w", mapError(err))
	}
	return result, nil
}

func (r *pgSemesterRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Semester, int64, error) {
	q := semesterSelect + `
		ORDER BY s.year, p.id
		LIMIT @limit OFFSET @offset`

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM semesters`)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SemesterRepo.List: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SemesterRepo.List: %w", err)
	}
	semesters, err := collect(rows, scanSemester)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SemesterRepo.List: %w", err)
	}
	return semesters, total, nil
}

func (r *pgSemesterRepo) Update(ctx context.Context, s domain.Semester) (domain.Semester, error) {
	const q = `
		WITH s AS (
			UPDATE semesters
			SET year               = @year,
			    calendar_period_id = @period_id,
			    updated_at         = now()
			WHERE slug = @slug
			RETURNING *
		)
		SELECT s.id, s.year, p.id, p.name, s.slug, s.created_at, s.updated_at
		FROM s
		JOIN calendar_periods p ON p.id = s.calendar_period_id`

	args := pgx.NamedArgs{
		"slug":      s.Slug,
		"year":      s.Year,
		"period_id": s.Period.ID,
	}
	result, err := scanSemester(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Semester{}, fmt.Errorf("repo.SemesterRepo.Update: %w", mapError(err))
	}
	return result, nil
}

func (r *pgSemesterRepo) Delete(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM semesters WHERE slug = @slug`, pgx.NamedArgs{"slug": slug})
	if err != nil {
		return fmt.Errorf("repo.SemesterRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SemesterRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgSemesterRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := slugExists(ctx, r.db, "semesters", slug)
	if err != nil {
		return false, fmt.Errorf("repo.SemesterRepo.SlugExists: %w", err)
	}
	return exists, nil
}

func scanSemester(s scanner) (domain.Semester, error) {
	var sem domain.Semester
	err := s.Scan(&sem.ID, &sem.Year, &sem.Period.ID, &sem.Period.Name, &sem.Slug, &sem.CreatedAt, &sem.UpdatedAt)
	if err != nil {
		return domain.Semester{}, err
	}
	return sem, nil
}
