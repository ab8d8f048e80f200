package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

// Test doubles for the handler servicer interfaces.
// Set only the method fields your test needs.

type mockPeriodServicer struct {
	create  func(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error)
	getByID func(ctx context.Context, id int) (domain.CalendarPeriod, error)
	list    func(ctx context.Context, p domain.PaginationParams) ([]domain.CalendarPeriod, int64, error)
	update  func(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error)
	delete  func(ctx context.Context, id int) error
}

func (m *mockPeriodServicer) Create(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) {
	return m.create(ctx, p)
}
func (m *mockPeriodServicer) GetByID(ctx context.Context, id int) (domain.CalendarPeriod, error) {
	return m.getByID(ctx, id)
}
func (m *mockPeriodServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.CalendarPeriod, int64, error) {
	return m.list(ctx, p)
}
func (m *mockPeriodServicer) Update(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) {
	return m.update(ctx, p)
}
func (m *mockPeriodServicer) Delete(ctx context.Context, id int) error {
	return m.delete(ctx, id)
}

type mockSemesterServicer struct {
	create    func(ctx context.Context, s domain.Semester) (domain.Semester, error)
	getBySlug func(ctx context.Context, slug string) (domain.Semester, error)
	list      func(ctx context.Context, p domain.PaginationParams) ([]domain.Semester, int64, error)
	update    func(ctx context.Context, s domain.Semester) (domain.Semester, error)
	delete    func(ctx context.Context, slug string) error
}

func (m *mockSemesterServicer) Create(ctx context.Context, s domain.Semester) (domain.Semester, error) {
	return m.create(ctx, s)
}
func (m *mockSemesterServicer) GetBySlug(ctx context.Context, slug string) (domain.Semester, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockSemesterServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Semester, int64, error) {
	return m.list(ctx, p)
}
func (m *mockSemesterServicer) Update(ctx context.Context, s domain.Semester) (domain.Semester, error) {
	return m.update(ctx, s)
}
func (m *mockSemesterServicer) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}

type mockCourseServicer struct {
	create    func(ctx context.Context, c domain.Course) (domain.Course, error)
	getBySlug func(ctx context.Context, slug string) (domain.Course, error)
	list      func(ctx context.Context, p domain.PaginationParams) ([]domain.Course, int64, error)
	update    func(ctx context.Context, c domain.Course) (domain.Course, error)
	delete    func(ctx context.Context, slug string) error
}

func (m *mockCourseServicer) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	return m.create(ctx, c)
}
func (m *mockCourseServicer) GetBySlug(ctx context.Context, slug string) (domain.Course, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockCourseServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Course, int64, error) {
	return m.list(ctx, p)
}
func (m *mockCourseServicer) Update(ctx context.Context, c domain.Course) (domain.Course, error) {
	return m.update(ctx, c)
}
func (m *mockCourseServicer) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}

type mockInstructorServicer struct {
	create       func(ctx context.Context, i domain.Instructor) (domain.Instructor, error)
	getBySlug    func(ctx context.Context, slug string) (domain.Instructor, error)
	list         func(ctx context.Context, p domain.PaginationParams) ([]domain.Instructor, int64, error)
	update       func(ctx context.Context, i domain.Instructor) (domain.Instructor, error)
	delete       func(ctx context.Context, slug string) error
	listSections func(ctx context.Context, slug string, p domain.PaginationParams) ([]domain.Section, int64, error)
}

func (m *mockInstructorServicer) Create(ctx context.Context, i domain.Instructor) (domain.Instructor, error) {
	return m.create(ctx, i)
}
func (m *mockInstructorServicer) GetBySlug(ctx context.Context, slug string) (domain.Instructor, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockInstructorServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Instructor, int64, error) {
	return m.list(ctx, p)
}
func (m *mockInstructorServicer) Update(ctx context.Context, i domain.Instructor) (domain.Instructor, error) {
	return m.update(ctx, i)
}
func (m *mockInstructorServicer) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}
func (m *mockInstructorServicer) ListSections(ctx context.Context, slug string, p domain.PaginationParams) ([]domain.Section, int64, error) {
	return m.listSections(ctx, slug, p)
}

type mockStudentServicer struct {
	create       func(ctx context.Context, s domain.Student) (domain.Student, error)
	getBySlug    func(ctx context.Context, slug string) (domain.Student, error)
	list         func(ctx context.Context, p domain.PaginationParams) ([]domain.Student, int64, error)
	update       func(ctx context.Context, s domain.Student) (domain.Student, error)
	delete       func(ctx context.Context, slug string) error
	listSections func(ctx context.Context, slug string, p domain.PaginationParams) ([]domain.Section, int64, error)
}

func (m *mockStudentServicer) Create(ctx context.Context, s domain.Student) (domain.Student, error) {
	return m.create(ctx, s)
}
func (m *mockStudentServicer) GetBySlug(ctx context.Context, slug string) (domain.Student, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockStudentServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Student, int64, error) {
	return m.list(ctx, p)
}
func (m *mockStudentServicer) Update(ctx context.Context, s domain.Student) (domain.Student, error) {
	return m.update(ctx, s)
}
func (m *mockStudentServicer) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}
func (m *mockStudentServicer) ListSections(ctx context.Context, slug string, p domain.PaginationParams) ([]domain.Section, int64, error) {
	return m.listSections(ctx, slug, p)
}

type mockSectionServicer struct {
	create           func(ctx context.Context, s domain.Section) (domain.Section, error)
	getBySlug        func(ctx context.Context, slug string) (domain.Section, error)
	list             func(ctx context.Context, f domain.SectionFilter, p domain.PaginationParams) ([]domain.Section, int64, error)
	update           func(ctx context.Context, s domain.Section) (domain.Section, error)
	delete           func(ctx context.Context, slug string) error
	addInstructor    func(ctx context.Context, sectionSlug, instructorSlug string) (domain.Instructor, error)
	removeInstructor func(ctx context.Context, sectionSlug, instructorSlug string) error
	listInstructors  func(ctx context.Context, sectionSlug string) ([]domain.Instructor, error)
	addStudent       func(ctx context.Context, sectionSlug, studentSlug string) (domain.Student, error)
	removeStudent    func(ctx context.Context, sectionSlug, studentSlug string) error
	listStudents     func(ctx context.Context, sectionSlug string) ([]domain.Student, error)
}

func (m *mockSectionServicer) Create(ctx context.Context, s domain.Section) (domain.Section, error) {
	return m.create(ctx, s)
}
func (m *mockSectionServicer) GetBySlug(ctx context.Context, slug string) (domain.Section, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockSectionServicer) List(ctx context.Context, f domain.SectionFilter, p domain.PaginationParams) ([]domain.Section, int64, error) {
	return m.list(ctx, f, p)
}
func (m *mockSectionServicer) Update(ctx context.Context, s domain.Section) (domain.Section, error) {
	return m.update(ctx, s)
}
func (m *mockSectionServicer) Delete(ctx context.Context, slug string) error {
	return m.delete(ctx, slug)
}
func (m *mockSectionServicer) AddInstructor(ctx context.Context, sectionSlug, instructorSlug string) (domain.Instructor, error) {
	return m.addInstructor(ctx, sectionSlug, instructorSlug)
}
func (m *mockSectionServicer) RemoveInstructor(ctx context.Context, sectionSlug, instructorSlug string) error {
	return m.removeInstructor(ctx, sectionSlug, instructorSlug)
}
func (m *mockSectionServicer) ListInstructors(ctx context.Context, sectionSlug string) ([]domain.Instructor, error) {
	return m.listInstructors(ctx, sectionSlug)
}
func (m *mockSectionServicer) AddStudent(ctx context.Context, sectionSlug, studentSlug string) (domain.Student, error) {
	return m.addStudent(ctx, sectionSlug, studentSlug)
}
func (m *mockSectionServicer) RemoveStudent(ctx context.Context, sectionSlug, studentSlug string) error {
	return m.removeStudent(ctx, sectionSlug, studentSlug)
}
func (m *mockSectionServicer) ListStudents(ctx context.Context, sectionSlug string) ([]domain.Student, error) {
	return m.listStudents(ctx, sectionSlug)
}

type mockRosterServicer struct {
	roster func(ctx context.Context, sectionSlug string) (domain.Roster, error)
}

func (m *mockRosterServicer) Roster(ctx context.Context, sectionSlug string) (domain.Roster, error) {
	return m.roster(ctx, sectionSlug)
}

// compile-time checks
var (
	_ handler.PeriodServicer     = (*mockPeriodServicer)(nil)
	_ handler.SemesterServicer   = (*mockSemesterServicer)(nil)
	_ handler.CourseServicer     = (*mockCourseServicer)(nil)
	_ handler.InstructorServicer = (*mockInstructorServicer)(nil)
	_ handler.StudentServicer    = (*mockStudentServicer)(nil)
	_ handler.SectionServicer    = (*mockSectionServicer)(nil)
	_ handler.RosterServicer     = (*mockRosterServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given services into the generated
// chi router. This mirrors exactly how main.go wires it in production.
func newHTTPHandler(svc handler.Services) http.Handler {
	srv := handler.NewServer(svc, []byte("openapi: 3.0.3\n"), nil)
	return gen.HandlerWithOptions(gen.NewStrictHandlerWithOptions(srv, nil, srv.StrictOptions()), srv.ChiOptions())
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// do sends one request through h and returns the recorder.
func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
