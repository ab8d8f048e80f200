// Package handler implements the HTTP handlers for the courseinfo API.
// Server implements gen.StrictServerInterface, which is generated from
// api/openapi.yaml. Methods are split into domain-specific files (health.go,
// course.go, etc.) but all share the same Server struct so they can access
// its dependencies.
package handler

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.0 --config=oapi-codegen.yaml ../../api/openapi.yaml

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

// The servicer interfaces below are defined here, in the consumer package,
// so handler tests can inject mocks without touching the database or the
// service layer.

// PeriodServicer defines the calendar period operations the handlers use.
type PeriodServicer interface {
	Create(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error)
	GetByID(ctx context.Context, id int) (domain.CalendarPeriod, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.CalendarPeriod, int64, error)
	Update(ctx context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error)
	Delete(ctx context.Context, id int) error
}

// SemesterServicer defines the semester operations the handlers use.
type SemesterServicer interface {
	Create(ctx context.Context, s domain.Semester) (domain.Semester, error)
	GetBySlug(ctx context.Context, slug string) (domain.Semester, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Semester, int64, error)
	Update(ctx context.Context, s domain.Semester) (domain.Semester, error)
	Delete(ctx context.Context, slug string) error
}

// CourseServicer defines the course operations the handlers use.
type CourseServicer interface {
	Create(ctx context.Context, c domain.Course) (domain.Course, error)
	GetBySlug(ctx context.Context, slug string) (domain.Course, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Course, int64, error)
	Update(ctx context.Context, c domain.Course) (domain.Course, error)
	Delete(ctx context.Context, slug string) error
}

// InstructorServicer defines the instructor operations the handlers use.
type InstructorServicer interface {
	Create(ctx context.Context, i domain.Instructor) (domain.Instructor, error)
	GetBySlug(ctx context.Context, slug string) (domain.Instructor, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Instructor, int64, error)
	Update(ctx context.Context, i domain.Instructor) (domain.Instructor, error)
	Delete(ctx context.Context, slug string) error
	ListSections(ctx context.Context, slug string, p domain.PaginationParams) ([]domain.Section, int64, error)
}

// StudentServicer defines the student operations the handlers use.
type StudentServicer interface {
	Create(ctx context.Context, s domain.Student) (domain.Student, error)
	GetBySlug(ctx context.Context, slug string) (domain.Student, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Student, int64, error)
	Update(ctx context.Context, s domain.Student) (domain.Student, error)
	Delete(ctx context.Context, slug string) error
	ListSections(ctx context.Context, slug string, p domain.PaginationParams) ([]domain.Section, int64, error)
}

// SectionServicer defines the section and section-membership operations the
// handlers use.
type SectionServicer interface {
	Create(ctx context.Context, s domain.Section) (domain.Section, error)
	GetBySlug(ctx context.Context, slug string) (domain.Section, error)
	List(ctx context.Context, f domain.SectionFilter, p domain.PaginationParams) ([]domain.Section, int64, error)
	Update(ctx context.Context, s domain.Section) (domain.Section, error)
	Delete(ctx context.Context, slug string) error

	AddInstructor(ctx context.Context, sectionSlug, instructorSlug string) (domain.Instructor, error)
	RemoveInstructor(ctx context.Context, sectionSlug, instructorSlug string) error
	ListInstructors(ctx context.Context, sectionSlug string) ([]domain.Instructor, error)

	AddStudent(ctx context.Context, sectionSlug, studentSlug string) (domain.Student, error)
	RemoveStudent(ctx context.Context, sectionSlug, studentSlug string) error
	ListStudents(ctx context.Context, sectionSlug string) ([]domain.Student, error)
}

// RosterServicer defines the roster export operation.
type RosterServicer interface {
	Roster(ctx context.Context, sectionSlug string) (domain.Roster, error)
}

// Services groups every servicer the Server depends on. The generated router
// registers every operation, so a nil field panics when its route is hit;
// tests leave unused fields nil and never call those routes.
type Services struct {
	Periods     PeriodServicer
	Semesters   SemesterServicer
	Courses     CourseServicer
	Instructors InstructorServicer
	Students    StudentServicer
	Sections    SectionServicer
	Rosters     RosterServicer
}

// Server holds the handler dependencies and implements gen.StrictServerInterface.
type Server struct {
	periods     PeriodServicer
	semesters   SemesterServicer
	courses     CourseServicer
	instructors InstructorServicer
	students    StudentServicer
	sections    SectionServicer
	rosters     RosterServicer
	openAPI     []byte
	log         *slog.Logger
}

// compile-time check: Server must satisfy the generated strict interface.
var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server. openAPI is served verbatim at
// /openapi.yaml; log receives one line per unexpected (500) error.
func NewServer(svc Services, openAPI []byte, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		periods:     svc.Periods,
		semesters:   svc.Semesters,
		courses:     svc.Courses,
		instructors: svc.Instructors,
		students:    svc.Students,
		sections:    svc.Sections,
		rosters:     svc.Rosters,
		openAPI:     openAPI,
		log:         log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Services{}, nil, nil)
}

// StrictOptions makes the generated strict handler answer undecodable
// bodies with a JSON 400 (or 413) and unexpected errors with a logged JSON 500.
func (s *Server) StrictOptions() gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.badRequest,
		ResponseErrorHandlerFunc: s.internalError,
	}
}

// ChiOptions returns router options for gen.HandlerWithOptions: a fresh base
// router with JSON 404 and 405 bodies, and a JSON 400 for parameters that
// fail to bind.
func (s *Server) ChiOptions() gen.ChiServerOptions {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errorBody("not_found", "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})
	return gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.badRequest,
	}
}

// convertAll applies convert to each item. List endpoints use it to turn
// domain values into generated response types.
func convertAll[D, T any](items []D, convert func(D) T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = convert(it)
	}
	return out
}

func paginationOf(p domain.PaginationParams, total int64) gen.Pagination {
	return gen.Pagination{Page: p.Page, Limit: p.Limit, Total: total}
}

func linksToResponse(l domain.Links) gen.Links {
	return gen.Links{
		Detail: gen.Link{Method: l.Detail.Method, Href: l.Detail.Href},
		Update: gen.Link{Method: l.Update.Method, Href: l.Update.Href},
		Delete: gen.Link{Method: l.Delete.Method, Href: l.Delete.Href},
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
