// Package repo contains all database access logic for the courseinfo API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// Postgres SQLSTATE codes the repos translate into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// conflictMessages maps unique constraint names to client-facing messages.
// Slug constraints only fire when two creates race for the same slug.
var conflictMessages = map[string]string{
	"calendar_periods_pkey":     "calendar period id already exists",
	"calendar_periods_name_key": "calendar period name already exists",
	"semesters_year_period_key": "a semester for this year and calendar period already exists",
	"courses_number_key":        "course number already exists",
	"semesters_slug_key":        "slug was taken by a concurrent request",
	"courses_slug_key":          "slug was taken by a concurrent request",
	"instructors_slug_key":      "slug was taken by a concurrent request",
	"students_slug_key":         "slug was taken by a concurrent request",
	"sections_slug_key":         "slug was taken by a concurrent request",
}

// missingParentMessages maps foreign key constraint names to the parent that
// was missing when the insert or update ran.
var missingParentMessages = map[string]string{
	"semesters_calendar_period_fkey":         "calendar period not found",
	"sections_semester_fkey":                 "semester not found",
	"sections_course_fkey":                   "course not found",
	"section_instructors_section_id_fkey":    "section not found",
	"section_instructors_instructor_id_fkey": "instructor not found",
	"section_students_section_id_fkey":       "section not found",
	"section_students_student_id_fkey":       "student not found",
}

// mapError translates driver errors into domain sentinels:
// no rows → ErrNotFound, unique violation → ErrConflict,
// foreign key violation → ErrNotFound. Other errors pass through.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		msg, ok := conflictMessages[pgErr.ConstraintName]
		if !ok {
			msg = "duplicate value"
		}
		return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
	case codeForeignKeyViolation:
		msg, ok := missingParentMessages[pgErr.ConstraintName]
		if !ok {
			msg = "related record not found"
		}
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	}
	return err
}

// slugExists reports whether any row in table already uses slug.
// table is always a package constant, never caller input.
func slugExists(ctx context.Context, db db, table, slug string) (bool, error) {
	q := `SELECT EXISTS (SELECT 1 FROM ` + table + ` WHERE slug = @slug)`

	var exists bool
	if err := db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// count runs a SELECT COUNT(*) query and returns the result.
func count(ctx context.Context, db db, q string, args ...any) (int64, error) {
	var n int64
	if err := db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// collect drains rows through scan into a non-nil slice.
func collect[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
