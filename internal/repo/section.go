package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/pkordes/courseinfo/backend/internal/domain"
)

// SectionRepo defines the persistence operations for Sections and the
// section_instructors and section_students join tables.
type SectionRepo interface {
	// Create inserts a section whose Slug has already been assigned.
	// Semester.ID and Course.ID must be set. Returns domain.ErrNotFound if
	// either parent vanished before the insert.
	Create(ctx context.Context, s domain.Section) (domain.Section, error)

	// GetBySlug returns domain.ErrNotFound if no section has that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Section, error)

	// List returns one page of sections matching f, ordered by course number,
	// section name, then semester, plus the total number of matches.
	List(ctx context.Context, f domain.SectionFilter, p domain.PaginationParams) ([]domain.Section, int64, error)

	// Update overwrites name, semester, and course of the section identified
	// by s.Slug. The slug column is never written.
	Update(ctx context.Context, s domain.Section) (domain.Section, error)

	// Delete removes a section and its join rows.
	Delete(ctx context.Context, slug string) error

	// SlugExists reports whether slug is used by any section.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// AddInstructor links an instructor to a section. Idempotent.
	AddInstructor(ctx context.Context, sectionID, instructorID int64) error

	// RemoveInstructor unlinks an instructor from a section.
	// Returns domain.ErrNotFound if they were not linked.
	RemoveInstructor(ctx context.Context, sectionID, instructorID int64) error

	// ListInstructors returns the section's instructors by last, first name.
	ListInstructors(ctx context.Context, sectionID int64) ([]domain.Instructor, error)

	// AddStudent links a student to a section. Idempotent.
	AddStudent(ctx context.Context, sectionID, studentID int64) error

	// RemoveStudent unlinks a student from a section.
	// Returns domain.ErrNotFound if they were not linked.
	RemoveStudent(ctx context.Context, sectionID, studentID int64) error

	// ListStudents returns the section's students by last, first name.
	ListStudents(ctx context.Context, sectionID int64) ([]domain.Student, error)
}

type pgSectionRepo struct {
	db db
}

// NewSectionRepo constructs a SectionRepo backed by the provided db connection.
func NewSectionRepo(db db) SectionRepo {
	return &pgSectionRepo{db: db}
}

// sectionColumns is shared by every query that returns a full section row.
// The order must match scanSection.
var sectionColumns = []string{
	"sec.id", "sec.name", "sec.slug", "sec.created_at", "sec.updated_at",
	"sem.id", "sem.year", "sem.slug", "p.id", "p.name",
	"c.id", "c.number", "c.name", "c.slug",
}

const sectionJoins = `
	JOIN semesters sem        ON sem.id = sec.semester_id
	JOIN calendar_periods p   ON p.id = sem.calendar_period_id
	JOIN courses c            ON c.id = sec.course_id`

// psql is the squirrel builder configured for Postgres $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *pgSectionRepo) Create(ctx context.Context, s domain.Section) (domain.Section, error) {
	const q = `
		WITH sec AS (
			INSERT INTO sections (name, semester_id, course_id, slug)
			VALUES (@name, @semester_id, @course_id, @slug)
			RETURNING *
		)
		SELECT sec.id, sec.name, sec.slug, sec.created_at, sec.updated_at,
		       sem.id, sem.year, sem.slug, p.id, p.name,
		       c.id, c.number, c.name, c.slug
		FROM sec` + sectionJoins

	args := pgx.NamedArgs{
		"name":        s.Name,
		"semester_id": s.Semester.ID,
		"course_id":   s.Course.ID,
		"slug":        s.Slug,
	}
	result, err := scanSection(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Section{}, fmt.Errorf("repo.SectionRepo.Create: %w", mapError(err))
	}
	return result, nil
}

func (r *pgSectionRepo) GetBySlug(ctx context.Context, slug string) (domain.Section, error) {
	q, args, err := psql.Select(sectionColumns...).
		From("sections sec " + sectionJoins).
		Where(sq.Eq{"sec.slug": slug}).
		ToSql()
	if err != nil {
		return domain.Section{}, fmt.Errorf("repo.SectionRepo.GetBySlug: build: %w", err)
	}

	result, err := scanSection(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return domain.Section{}, fmt.Errorf("repo.SectionRepo.GetBySlug: %w", mapError(err))
	}
	return result, nil
}

func (r *pgSectionRepo) List(ctx context.Context, f domain.SectionFilter, p domain.PaginationParams) ([]domain.Section, int64, error) {
	countQ, countArgs, err := filterSections(psql.Select("COUNT(*)").From("sections sec "+sectionJoins), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SectionRepo.List: build count: %w", err)
	}
	total, err := count(ctx, r.db, countQ, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SectionRepo.List: count: %w", err)
	}

	q, args, err := filterSections(psql.Select(sectionColumns...).From("sections sec "+sectionJoins), f).
		OrderBy("c.number", "sec.name", "sem.year", "p.id").
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SectionRepo.List: build: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SectionRepo.List: %w", err)
	}
	sections, err := collect(rows, scanSection)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SectionRepo.List: %w", err)
	}
	return sections, total, nil
}

// filterSections adds one WHERE clause per non-empty filter field.
func filterSections(b sq.SelectBuilder, f domain.SectionFilter) sq.SelectBuilder {
	if f.Semester != "" {
		b = b.Where(sq.Eq{"sem.slug": f.Semester})
	}
	if f.Course != "" {
		b = b.Where(sq.Eq{"c.slug": f.Course})
	}
	if f.Instructor != "" {
		b = b.Where(`EXISTS (
			SELECT 1 FROM section_instructors si
			JOIN instructors i ON i.id = si.instructor_id
			WHERE si.section_id = sec.id AND i.slug = ?)`, f.Instructor)
	}
	if f.Student != "" {
		b = b.Where(`EXISTS (
			SELECT 1 FROM section_students ss
			JOIN students st ON st.id = ss.student_id
			WHERE ss.section_id = sec.id AND st.slug = ?)`, f.Student)
	}
	return b
}

func (r *pgSectionRepo) Update(ctx context.Context, s domain.Section) (domain.Section, error) {
	const q = `
		WITH sec AS (
			UPDATE sections
			SET name        = @name,
			    semester_id = @semester_id,
			    course_id   = @course_id,
			    updated_at  = now()
			WHERE slug = @slug
			RETURNING *
		)
		SELECT sec.id, sec.name, sec.slug, sec.created_at, sec.updated_at,
		       sem.id, sem.year, sem.slug, p.id, p.name,
		       c.id, c.number, c.name, c.slug
		FROM sec` + sectionJoins

	args := pgx.NamedArgs{
		"slug":        s.Slug,
		"name":        s.Name,
		"semester_id": s.Semester.ID,
		"course_id":   s.Course.ID,
	}
	result, err := scanSection(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Section{}, fmt.Errorf("repo.SectionRepo.Update: %w", mapError(err))
	}
	return result, nil
}

func (r *pgSectionRepo) Delete(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE slug = @slug`, pgx.NamedArgs{"slug": slug})
	if err != nil {
		return fmt.Errorf("repo.SectionRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SectionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgSectionRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := slugExists(ctx, r.db, "sections", slug)
	if err != nil {
		return false, fmt.Errorf("repo.SectionRepo.SlugExists: %w", err)
	}
	return exists, nil
}

// AddInstructor is idempotent via ON CONFLICT DO NOTHING.
func (r *pgSectionRepo) AddInstructor(ctx context.Context, sectionID, instructorID int64) error {
	const q = `
		INSERT INTO section_instructors (section_id, instructor_id)
		VALUES (@section_id, @instructor_id)
		ON CONFLICT (section_id, instructor_id) DO NOTHING`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"section_id": sectionID, "instructor_id": instructorID})
	if err != nil {
		return fmt.Errorf("repo.SectionRepo.AddInstructor: %w", mapError(err))
	}
	return nil
}

func (r *pgSectionRepo) RemoveInstructor(ctx context.Context, sectionID, instructorID int64) error {
	const q = `
		DELETE FROM section_instructors
		WHERE section_id = @section_id AND instructor_id = @instructor_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"section_id": sectionID, "instructor_id": instructorID})
	if err != nil {
		return fmt.Errorf("repo.SectionRepo.RemoveInstructor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SectionRepo.RemoveInstructor: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgSectionRepo) ListInstructors(ctx context.Context, sectionID int64) ([]domain.Instructor, error) {
	const q = `
		SELECT i.id, i.first_name, i.last_name, i.slug, i.created_at, i.updated_at
		FROM instructors i
		JOIN section_instructors si ON si.instructor_id = i.id
		WHERE si.section_id = @section_id
		ORDER BY i.last_name, i.first_name, i.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"section_id": sectionID})
	if err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.ListInstructors: %w", err)
	}
	instructors, err := collect(rows, scanInstructor)
	if err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.ListInstructors: %w", err)
	}
	return instructors, nil
}

// AddStudent is idempotent via ON CONFLICT DO NOTHING.
func (r *pgSectionRepo) AddStudent(ctx context.Context, sectionID, studentID int64) error {
	const q = `
		INSERT INTO section_students (section_id, student_id)
		VALUES (@section_id, @student_id)
		ON CONFLICT (section_id, student_id) DO NOTHING`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"section_id": sectionID, "student_id": studentID})
	if err != nil {
		return fmt.Errorf("repo.SectionRepo.AddStudent: %w", mapError(err))
	}
	return nil
}

func (r *pgSectionRepo) RemoveStudent(ctx context.Context, sectionID, studentID int64) error {
	const q = `
		DELETE FROM section_students
		WHERE section_id = @section_id AND student_id = @student_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"section_id": sectionID, "student_id": studentID})
	if err != nil {
		return fmt.Errorf("repo.SectionRepo.RemoveStudent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SectionRepo.RemoveStudent: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgSectionRepo) ListStudents(ctx context.Context, sectionID int64) ([]domain.Student, error) {
	const q = `
		SELECT st.id, st.first_name, st.last_name, st.nick_name, st.slug, st.created_at, st.updated_at
		FROM students st
		JOIN section_students ss ON ss.student_id = st.id
		WHERE ss.section_id = @section_id
		ORDER BY st.last_name, st.first_name, st.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"section_id": sectionID})
	if err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.ListStudents: %w", err)
	}
	students, err := collect(rows, scanStudent)
	if err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.ListStudents: %w", err)
	}
	return students, nil
}

func scanSection(s scanner) (domain.Section, error) {
	var sec domain.Section
	err := s.Scan(
		&sec.ID, &sec.Name, &sec.Slug, &sec.CreatedAt, &sec.UpdatedAt,
		&sec.Semester.ID, &sec.Semester.Year, &sec.Semester.Slug, &sec.Semester.Period.ID, &sec.Semester.Period.Name,
		&sec.Course.ID, &sec.Course.Number, &sec.Course.Name, &sec.Course.Slug,
	)
	if err != nil {
		return domain.Section{}, err
	}
	return sec, nil
}
