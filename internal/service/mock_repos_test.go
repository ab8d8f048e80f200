package service_test

import (
	"context"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field; set only the ones your test needs.

// ---- PeriodRepo ------------------------------------------------------------

type mockPeriodRepo struct {
	create  func(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error)
	getByID func(ctx context.Context, id int) (domain.CalendarPeriod, error)
	list    func(ctx context.Context, p domain.PaginationParams) ([]domain.CalendarPeriod, int64, error)
	update  func(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error)
	delete  func(ctx context.Context, id int) error
}

func (m *mockPeriodRepo) Create(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) {
	return m.create(ctx, p)
}
func (m *mockPeriodRepo) GetByID(ctx context.Context, id int) (domain.CalendarPeriod, error) {
	return m.getByID(ctx, id)
}
func (m *mockPeriodRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.CalendarPeriod, int64, error) {
	return m.list(ctx, p)
}
func (m *mockPeriodRepo) Update(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) {
	return m.update(ctx, p)
}
func (m *mockPeriodRepo) Delete(ctx context.Context, id int) error {
	return m.delete(ctx, id)
}

// ---- SemesterRepo ----------------------------------------------------------

type mockSemesterRepo struct {
	create     func(ctx context.Context, s domain.Semester) (domain.Semester, error)
	getBySlug  func(ctx context.Context, slug string) (domain.Semester, error)
	list       func(ctx context.Context, p domain.PaginationParams) ([]domain.Semester, int64, error)
	update     func(ctx context.Context, s domain.Semester) (domain.Semester, error)
	delete     func(ctx context.Context, slug string) error
	slugExists func(ctx context.Context, slug string) (bool, error)
}

func (m *mockSemesterRepo) Create(ctx context.Context, s domain.Semester) (domain.Semester, error) {
	return m.create(ctx, s)
}
func (m *mockSemesterRepo) GetBySlug(ctx context.Context, slug string) (domain.Semester, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockSemesterRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Semester, int64, error) {
	return m.list(ctx, p)
}
func (m *mockSemesterRepo) Update(ctx context.Context, s domain.Semester) (domain.Semester, error) {
	return m.update(ctx, s)
}
func (m *mockSemesterRepo) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}
func (m *mockSemesterRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return m.slugExists(ctx, slug)
}

// ---- CourseRepo ------------------------------------------------------------

type mockCourseRepo struct {
	create     func(ctx context.Context, c domain.Course) (domain.Course, error)
	getBySlug  func(ctx context.Context, slug string) (domain.Course, error)
	list       func(ctx context.Context, p domain.PaginationParams) ([]domain.Course, int64, error)
	update     func(ctx context.Context, c domain.Course) (domain.Course, error)
	delete     func(ctx context.Context, slug string) error
	slugExists func(ctx context.Context, slug string) (bool, error)
}

func (m *mockCourseRepo) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	return m.create(ctx, c)
}
func (m *mockCourseRepo) GetBySlug(ctx context.Context, slug string) (domain.Course, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockCourseRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Course, int64, error) {
	return m.list(ctx, p)
}
func (m *mockCourseRepo) Update(ctx context.Context, c domain.Course) (domain.Course, error) {
	return m.update(ctx, c)
}
func (m *mockCourseRepo) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}
func (m *mockCourseRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return m.slugExists(ctx, slug)
}

// ---- InstructorRepo --------------------------------------------------------

type mockInstructorRepo struct {
	create     func(ctx context.Context, i domain.Instructor) (domain.Instructor, error)
	getBySlug  func(ctx context.Context, slug string) (domain.Instructor, error)
	list       func(ctx context.Context, p domain.PaginationParams) ([]domain.Instructor, int64, error)
	update     func(ctx context.Context, i domain.Instructor) (domain.Instructor, error)
	delete     func(ctx context.Context, slug string) error
	slugExists func(ctx context.Context, slug string) (bool, error)
}

func (m *mockInstructorRepo) Create(ctx context.Context, i domain.Instructor) (domain.Instructor, error) {
	return m.create(ctx, i)
}
func (m *mockInstructorRepo) GetBySlug(ctx context.Context, slug string) (domain.Instructor, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockInstructorRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Instructor, int64, error) {
	return m.list(ctx, p)
}
func (m *mockInstructorRepo) Update(ctx context.Context, i domain.Instructor) (domain.Instructor, error) {
	return m.update(ctx, i)
}
func (m *mockInstructorRepo) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}
func (m *mockInstructorRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return m.slugExists(ctx, slug)
}

// ---- StudentRepo -----------------------------------------------------------

type mockStudentRepo struct {
	create     func(ctx context.Context, s domain.Student) (domain.Student, error)
	getBySlug  func(ctx context.Context, slug string) (domain.Student, error)
	list       func(ctx context.Context, p domain.PaginationParams) ([]domain.Student, int64, error)
	update     func(ctx context.Context, s domain.Student) (domain.Student, error)
	delete     func(ctx context.Context, slug string) error
	slugExists func(ctx context.Context, slug string) (bool, error)
}

func (m *mockStudentRepo) Create(ctx context.Context, s domain.Student) (domain.Student, error) {
	return m.create(ctx, s)
}
func (m *mockStudentRepo) GetBySlug(ctx context.Context, slug string) (domain.Student, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockStudentRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.Student, int64, error) {
	return m.list(ctx, p)
}
func (m *mockStudentRepo) Update(ctx context.Context, s domain.Student) (domain.Student, error) {
	return m.update(ctx, s)
}
func (m *mockStudentRepo) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}
func (m *mockStudentRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return m.slugExists(ctx, slug)
}

// ---- SectionRepo -----------------------------------------------------------

type mockSectionRepo struct {
	create           func(ctx context.Context, s domain.Section) (domain.Section, error)
	getBySlug        func(ctx context.Context, slug string) (domain.Section, error)
	list             func(ctx context.Context, f domain.SectionFilter, p domain.PaginationParams) ([]domain.Section, int64, error)
	update           func(ctx context.Context, s domain.Section) (domain.Section, error)
	delete           func(ctx context.Context, slug string) error
	slugExists       func(ctx context.Context, slug string) (bool, error)
	addInstructor    func(ctx context.Context, sectionID, instructorID int64) error
	removeInstructor func(ctx context.Context, sectionID, instructorID int64) error
	listInstructors  func(ctx context.Context, sectionID int64) ([]domain.Instructor, error)
	addStudent       func(ctx context.Context, sectionID, studentID int64) error
	removeStudent    func(ctx context.Context, sectionID, studentID int64) error
	listStudents     func(ctx context.Context, sectionID int64) ([]domain.Student, error)
}

func (m *mockSectionRepo) Create(ctx context.Context, s domain.Section) (domain.Section, error) {
	return m.create(ctx, s)
}
func (m *mockSectionRepo) GetBySlug(ctx context.Context, slug string) (domain.Section, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockSectionRepo) List(ctx context.Context, f domain.SectionFilter, p domain.PaginationParams) ([]domain.Section, int64, error) {
	return m.list(ctx, f, p)
}
func (m *mockSectionRepo) Update(ctx context.Context, s domain.Section) (domain.Section, error) {
	return m.update(ctx, s)
}
func (m *mockSectionRepo) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}
func (m *mockSectionRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return m.slugExists(ctx, slug)
}
func (m *mockSectionRepo) AddInstructor(ctx context.Context, sectionID, instructorID int64) error {
	return m.addInstructor(ctx, sectionID, instructorID)
}
func (m *mockSectionRepo) RemoveInstructor(ctx context.Context, sectionID, instructorID int64) error {
	return m.removeInstructor(ctx, sectionID, instructorID)
}
func (m *mockSectionRepo) ListInstructors(ctx context.Context, sectionID int64) ([]domain.Instructor, error) {
	return m.listInstructors(ctx, sectionID)
}
func (m *mockSectionRepo) AddStudent(ctx context.Context, sectionID, studentID int64) error {
	return m.addStudent(ctx, sectionID, studentID)
}
func (m *mockSectionRepo) RemoveStudent(ctx context.Context, sectionID, studentID int64) error {
	return m.removeStudent(ctx, sectionID, studentID)
}
func (m *mockSectionRepo) ListStudents(ctx context.Context, sectionID int64) ([]domain.Student, error) {
	return m.listStudents(ctx, sectionID)
}

// compile-time checks
var (
	_ repo.PeriodRepo     = (*mockPeriodRepo)(nil)
	_ repo.SemesterRepo   = (*mockSemesterRepo)(nil)
	_ repo.CourseRepo     = (*mockCourseRepo)(nil)
	_ repo.InstructorRepo = (*mockInstructorRepo)(nil)
	_ repo.StudentRepo    = (*mockStudentRepo)(nil)
	_ repo.SectionRepo    = (*mockSectionRepo)(nil)
)

// slugTable is an in-memory stand-in for one table's slug column.
// Its exists method plugs into a mock's slugExists field and add records a
// slug the way a successful insert would.
type slugTable map[string]bool

func (t slugTable) exists(_ context.Context, slug string) (bool, error) {
	return t[slug], nil
}

func (t slugTable) add(slug string) {
	t[slug] = true
}
