package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

// PeriodRepo defines the persistence operations for CalendarPeriods.
// Periods are keyed by their caller-assigned integer id; they have no slug.
type PeriodRepo interface {
	// Create inserts a period with the id supplied by the caller.
	// Returns domain.ErrConflict if the id or name is already used.
	Create(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error)

	// GetByID returns domain.ErrNotFound if no period has that id.
	GetByID(ctx context.Context, id int) (domain.CalendarPeriod, error)

	// List returns one page of periods ordered by id, plus the total count.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.CalendarPeriod, int64, error)

	// Update renames a period. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error)

	// Delete removes a period and, by cascade, its semesters and their sections.
	Delete(ctx context.Context, id int) error
}

type pgPeriodRepo struct {
	db db
}

// NewPeriodRepo constructs a PeriodRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPeriodRepo(db db) PeriodRepo {
	return &pgPeriodRepo{db: db}
}

func (r *pgPeriodRepo) Create(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) {
	const q = `
		INSERT INTO calendar_periods (id, name)
		VALUES (@id, @name)
		RETURNING id, name`

	result, err := scanPeriod(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": p.ID, "name": p.Name}))
	if err != nil {
		return domain.CalendarPeriod{}, fmt.Errorf("repo.PeriodRepo.Create: %w", mapError(err))
	}
	return result, nil
}

func (r *pgPeriodRepo) GetByID(ctx context.Context, id int) (domain.CalendarPeriod, error) {
	const q = `SELECT id, name FROM calendar_periods WHERE id = @id`

	result, err := scanPeriod(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.CalendarPeriod{}, fmt.Errorf("repo.PeriodRepo.GetByID: %w", mapError(err))
	}
	return result, nil
}

func (r *pgPeriodRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.CalendarPeriod, int64, error) {
	const q = `
		SELECT id, name
		FROM calendar_periods
		ORDER BY id
		LIMIT @limit OFFSET @offset`

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM calendar_periods`)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.PeriodRepo.List: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.PeriodRepo.List: %w", err)
	}
	periods, err := collect(rows, scanPeriod)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.PeriodRepo.List: %w", err)
	}
	return periods, total, nil
}

func (r *pgPeriodRepo) Update(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) {
	const q = `
		UPDATE calendar_periods
		SET name = @name
		WHERE id = @id
		RETURNING id, name`

	result, err := scanPeriod(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": p.ID, "name": p.Name}))
	if err != nil {
		return domain.CalendarPeriod{}, fmt.Errorf("repo.PeriodRepo.Update: %w", mapError(err))
	}
	return result, nil
}

func (r *pgPeriodRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM calendar_periods WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PeriodRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PeriodRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanPeriod(s scanner) (domain.CalendarPeriod, error) {
	var p domain.CalendarPeriod
	if err := s.Scan(&p.ID, &p.Name); err != nil {
		return domain.CalendarPeriod{}, err
	}
	return p, nil
}
