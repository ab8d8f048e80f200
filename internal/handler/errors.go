package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource. The message
// comes from the wrapped domain.ErrNotFound when the service supplied one,
// otherwise fallback (e.g. "course not found") is used.
func notFoundBody(err error, fallback string) gen.ErrorResponse {
	return errorBody("not_found", detail(err, domain.ErrNotFound, fallback))
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", detail(err, domain.ErrValidation, "invalid input"))
}

func conflictBody(err error, fallback string) gen.ErrorResponse {
	return errorBody("conflict", detail(err, domain.ErrConflict, fallback))
}

// requestBody returns an ErrorResponse for a request rejected before
// reaching the service layer.
func requestBody(message string) gen.ErrorResponse {
	return errorBody("bad_request", message)
}

// detail extracts the human-readable part that follows sentinel in err's
// message, e.g.
// "service.CourseService.Create: validation error: name is required" → "name is required".
// It returns fallback when nothing follows the sentinel.
func detail(err, sentinel error, fallback string) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	i := strings.LastIndex(msg, marker)
	if i < 0 {
		return fallback
	}
	if d := msg[i+len(marker):]; d != "" {
		return d
	}
	return fallback
}

// writeError sends body as JSON. It is used where the generated strict
// layer has no typed response to return: routing, parameter binding, body
// decoding, and unexpected service errors.
func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent; nothing useful to do on failure.
	json.NewEncoder(w).Encode(body)
}

// badRequest reports a parameter that failed to bind or a body that failed
// to decode. A body cut off by middleware.MaxBodySize is a 413.
func (s *Server) badRequest(w http.ResponseWriter, _ *http.Request, err error) {
	var (
		tooLarge *http.MaxBytesError
		param    *gen.InvalidParamFormatError
	)
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, errorBody("request_too_large", "request body too large"))
	case errors.As(err, &param):
		writeError(w, http.StatusBadRequest, requestBody("invalid "+param.ParamName+": "+param.Err.Error()))
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusBadRequest, requestBody("request body is required"))
	default:
		writeError(w, http.StatusBadRequest, requestBody(err.Error()))
	}
}

// internalError handles every error a StrictServerInterface method returns
// instead of a typed response. The cause is logged and hidden from the client.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
}
