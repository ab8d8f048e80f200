package handler

import (
	"bytes"
	"context"

	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetOpenAPI handles GET /openapi.yaml, serving the document embedded in
// the binary so the published contract always matches the running code.
func (s *Server) GetOpenAPI(_ context.Context, _ gen.GetOpenAPIRequestObject) (gen.GetOpenAPIResponseObject, error) {
	if len(s.openAPI) == 0 {
		return gen.GetOpenAPI404JSONResponse(errorBody("not_found", "no API document")), nil
	}
	return gen.GetOpenAPI200ApplicationyamlResponse{
		Body:          bytes.NewReader(s.openAPI),
		ContentLength: int64(len(s.openAPI)),
	}, nil
}
