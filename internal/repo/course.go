package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

// CourseRepo defines the persistence operations for Courses.
type CourseRepo interface {
	// Create inserts a course whose Slug has already been assigned.
	// Returns domain.ErrConflict if the number or slug is taken.
	Create(ctx context.Context, c domain.Course) (domain.Course, error)

	// GetBySlug returns domain.ErrNotFound if no course has that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Course, error)

	// List returns one page ordered by course number, plus the total.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Course, int64, error)

	// Update overwrites number and name of the course identified by c.Slug.
	Update(ctx context.Context, c domain.Course) (domain.Course, error)

	// Delete removes a course and, by cascade, its sections.
	Delete(ctx context.Context, slug string) error

	// SlugExists reports whether slug is used by any course.
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type pgCourseRepo struct {
	db db
}

// NewCourseRepo constructs a CourseRepo backed by the provided db connection.
func NewCourseRepo(db db) CourseRepo {
	return &pgCourseRepo{db: db}
}

func (r *pgCourseRepo) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	const q = `
		INSERT INTO courses (number, name, slug)
		VALUES (@number, @name, @slug)
		RETURNING id, number, name, slug, created_at, updated_at`

	args := pgx.NamedArgs{"number": c.Number, "name": c.Name, "slug": c.Slug}
	result, err := scanCourse(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Course{}, fmt.Errorf("repo.CourseRepo.Create: %w", mapError(err))
	}
	return result, nil
}

func (r *pgCourseRepo) GetBySlug(ctx context.Context, slug string) (domain.Course, error) {
	const q = `
		SELECT id, number, name, slug, created_at, updated_at
		FROM courses
		WHERE slug = @slug`

	result, err := scanCourse(r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}))
	if err != nil {
		return domain.Course{}, fmt.Errorf("repo.CourseRepo.GetBySlug: %w", mapError(err))
	}
	return result, nil
}

func (r *pgCourseRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Course, int64, error) {
	const q = `
		SELECT id, number, name, slug, created_at, updated_at
		FROM courses
		ORDER BY number
		LIMIT @limit OFFSET @offset`

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM courses`)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CourseRepo.List: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CourseRepo.List: %w", err)
	}
	courses, err := collect(rows, scanCourse)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CourseRepo.List: %w", err)
	}
	return courses, total, nil
}

func (r *pgCourseRepo) Update(ctx context.Context, c domain.Course) (domain.Course, error) {
	const q = `
		UPDATE courses
		SET number     = @number,
		    name       = @name,
		    updated_at = now()
		WHERE slug = @slug
		RETURNING id, number, name, slug, created_at, updated_at`

	args := pgx.NamedArgs{"slug": c.Slug, "number": c.Number, "name": c.Name}
	result, err := scanCourse(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Course{}, fmt.Errorf("repo.CourseRepo.Update: %w", mapError(err))
	}
	return result, nil
}

func (r *pgCourseRepo) Delete(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE slug = @slug`, pgx.NamedArgs{"slug": slug})
	if err != nil {
		return fmt.Errorf("repo.CourseRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CourseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgCourseRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := slugExists(ctx, r.db, "courses", slug)
	if err != nil {
		return false, fmt.Errorf("repo.CourseRepo.SlugExists: %w", err)
	}
	return exists, nil
}

func scanCourse(s scanner) (domain.Course, error) {
	var c domain.Course
	if err := s.Scan(&c.ID, &c.Number, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Course{}, err
	}
	return c, nil
}
