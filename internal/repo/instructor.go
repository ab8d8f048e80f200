package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

// InstructorRepo defines the persistence operations for Instructors.
type InstructorRepo interface {
	// Create inserts an instructor whose Slug has already been assigned.
	Create(ctx context.Context, i domain.Instructor) (domain.Instructor, error)

	// GetBySlug returns domain.ErrNotFound if no instructor has that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Instructor, error)

	// List returns one page ordered by last name, first name, plus the total.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Instructor, int64, error)

	// Update overwrites the names of the instructor identified by i.Slug.
	Update(ctx context.Context, i domain.Instructor) (domain.Instructor, error)

	// Delete removes an instructor. Sections survive; only the
	// section_instructors rows go.
	Delete(ctx context.Context, slug string) error

	// SlugExists reports whether slug is used by any instructor.
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type pgInstructorRepo struct {
	db db
}

// NewInstructorRepo constructs an InstructorRepo backed by the provided db connection.
func NewInstructorRepo(db db) InstructorRepo {
	return &pgInstructorRepo{db: db}
}

func (r *pgInstructorRepo) Create(ctx context.Context, i domain.Instructor) (domain.Instructor, error) {
	const q = `
		INSERT INTO instructors (first_name, last_name, slug)
		VALUES (@first_name, @last_name, @slug)
		RETURNING id, first_name, last_name, slug, created_at, updated_at`

	args := pgx.NamedArgs{"first_name": i.FirstName, "last_name": i.LastName, "slug": i.Slug}
	result, err := scanInstructor(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Instructor{}, fmt.Errorf("repo.InstructorRepo.Create: %w", mapError(err))
	}
	return result, nil
}

func (r *pgInstructorRepo) GetBySlug(ctx context.Context, slug string) (domain.Instructor, error) {
	const q = `
		SELECT id, first_name, last_name, slug, created_at, updated_at
		FROM instructors
		WHERE slug = @slug`

	result, err := scanInstructor(r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}))
	if err != nil {
		return domain.Instructor{}, fmt.Errorf("repo.InstructorRepo.GetBySlug: %w", mapError(err))
	}
	return result, nil
}

func (r *pgInstructorRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Instructor, int64, error) {
	const q = `
		SELECT id, first_name, last_name, slug, created_at, updated_at
		FROM instructors
		ORDER BY last_name, first_name, id
		LIMIT @limit OFFSET @offset`

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM instructors`)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.InstructorRepo.List: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.InstructorRepo.List: %w", err)
	}
	instructors, err := collect(rows, scanInstructor)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.InstructorRepo.List: %w", err)
	}
	return instructors, total, nil
}

func (r *pgInstructorRepo) Update(ctx context.Context, i domain.Instructor) (domain.Instructor, error) {
	const q = `
		UPDATE instructors
		SET first_name = @first_name,
		    last_name  = @last_name,
		    updated_at = now()
		WHERE slug = @slug
		RETURNING id, first_name, last_name, slug, created_at, updated_at`

	args := pgx.NamedArgs{"slug": i.Slug, "first_name": i.FirstName, "last_name": i.LastName}
	result, err := scanInstructor(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Instructor{}, fmt.Errorf("repo.InstructorRepo.Update: %w", mapError(err))
	}
	return result, nil
}

func (r *pgInstructorRepo) Delete(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM instructors WHERE slug = @slug`, pgx.NamedArgs{"slug": slug})
	if err != nil {
		return fmt.Errorf("repo.InstructorRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.InstructorRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgInstructorRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := slugExists(ctx, r.db, "instructors", slug)
	if err != nil {
		return false, fmt.Errorf("repo.InstructorRepo.SlugExists: %w", err)
	}
	return exists, nil
}

func scanInstructor(s scanner) (domain.Instructor, error) {
	var i domain.Instructor
	if err := s.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Slug, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return domain.Instructor{}, err
	}
	return i, nil
}
