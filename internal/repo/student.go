package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

// StudentRepo defines the persistence operations for Students.
type StudentRepo interface {
	// Create inserts a student whose Slug has already been assigned.
	Create(ctx context.Context, s domain.Student) (domain.Student, error)

	// GetBySlug returns domain.ErrNotFound if no student has that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Student, error)

	// List returns one page ordered by last name, first name, plus the total.
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Student, int64, error)

	// Update overwrites the names of the student identified by s.Slug.
	Update(ctx context.Context, s domain.Student) (domain.Student, error)

	// Delete removes a student. Sections survive; only the
	// section_students rows go.
	Delete(ctx context.Context, slug string) error

	// SlugExists reports whether slug is used by any student.
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type pgStudentRepo struct {
	db db
}

// NewStudentRepo constructs a StudentRepo backed by the provided db connection.
func NewStudentRepo(db db) StudentRepo {
	return &pgStudentRepo{db: db}
}

func (r *pgStudentRepo) Create(ctx context.Context, s domain.Student) (domain.Student, error) {
	const q = `
		INSERT INTO students (first_name, last_name, nick_name, slug)
		VALUES (@first_name, @last_name, @nick_name, @slug)
		RETURNING id, first_name, last_name, nick_name, slug, created_at, updated_at`

	args := pgx.NamedArgs{
		"first_name": s.FirstName,
		"last_name":  s.LastName,
		"nick_name":  s.NickName,
		"slug":       s.Slug,
	}
	result, err := scanStudent(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Student{}, fmt.Errorf("repo.StudentRepo.Create: %w", mapError(err))
	}
	return result, nil
}

func (r *pgStudentRepo) GetBySlug(ctx context.Context, slug string) (domain.Student, error) {
	const q = `
		SELECT id, first_name, last_name, nick_name, slug, created_at, updated_at
		FROM students
		WHERE slug = @slug`

	result, err := scanStudent(r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}))
	if err != nil {
		return domain.Student{}, fmt.Errorf("repo.StudentRepo.GetBySlug: %w", mapError(err))
	}
	return result, nil
}

func (r *pgStudentRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Student, int64, error) {
	const q = `
		SELECT id, first_name, last_name, nick_name, slug, created_at, updated_at
		FROM students
		ORDER BY last_name, first_name, id
		LIMIT @limit OFFSET @offset`

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM students`)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.StudentRepo.List: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.StudentRepo.List: %w", err)
	}
	students, err := collect(rows, scanStudent)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.StudentRepo.List: %w", err)
	}
	return students, total, nil
}

func (r *pgStudentRepo) Update(ctx context.Context, s domain.Student) (domain.Student, error) {
	const q = `
		UPDATE students
		SET first_name = @first_name,
		    last_name  = @last_name,
		    nick_name  = @nick_name,
		    updated_at = now()
		WHERE slug = @slug
		RETURNING id, first_name, last_name, nick_name, slug, created_at, updated_at`

	args := pgx.NamedArgs{
		"slug":       s.Slug,
		"first_name": s.FirstName,
		"last_name":  s.LastName,
		"nick_name":  s.NickName,
	}
	result, err := scanStudent(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Student{}, fmt.Errorf("repo.StudentRepo.Update: %w", mapError(err))
	}
	return result, nil
}

func (r *pgStudentRepo) Delete(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE slug = @slug`, pgx.NamedArgs{"slug": slug})
	if err != nil {
		return fmt.Errorf("repo.StudentRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StudentRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgStudentRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := slugExists(ctx, r.db, "students", slug)
	if err != nil {
		return false, fmt.Errorf("repo.StudentRepo.SlugExists: %w", err)
	}
	return exists, nil
}

func scanStudent(s scanner) (domain.Student, error) {
	var st domain.Student
	err := s.Scan(&st.ID, &st.FirstName, &st.LastName, &st.NickName, &st.Slug, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return domain.Student{}, err
	}
	return st, nil
}
