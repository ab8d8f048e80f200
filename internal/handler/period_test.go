package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

func periodsHandler(m *mockPeriodServicer) http.Handler {
	return newHTTPHandler(handler.Services{Periods: m})
}

func TestCreatePeriod_Returns201(t *testing.T) {
	h := periodsHandler(&mockPeriodServicer{
		create: func(_ context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) { return p, nil },
	})

	rec := do(h, http.MethodPost, "/periods", jsonBody(t, map[string]any{"id": 3, "name": "Fall"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":3,"name":"Fall","display":"Fall"}`, rec.Body.String())
}

func TestGetPeriod_NonIntegerID_Returns400(t *testing.T) {
	rec := do(periodsHandler(&mockPeriodServicer{}), http.MethodGet, "/periods/fall", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[gen.ErrorResponse](t, rec)
	assert.Contains(t, body.Error.Message, "invalid id")
}

func TestGetPeriod_NotFound_Returns404(t *testing.T) {
	h := periodsHandler(&mockPeriodServicer{
		getByID: func(_ context.Context, _ int) (domain.CalendarPeriod, error) {
			return domain.CalendarPeriod{}, domain.ErrNotFound
		},
	})

	rec := do(h, http.MethodGet, "/periods/9", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[gen.ErrorResponse](t, rec)
	assert.Equal(t, "calendar period not found", body.Error.Message)
}

func TestUpdatePeriod_PathIDWins(t *testing.T) {
	var got domain.CalendarPeriod
	h := periodsHandler(&mockPeriodServicer{
		update: func(_ context.Context, p domain.CalendarPeriod) (domain.CalendarPeriod, error) {
			got = p
			return p, nil
		},
	})

	rec := do(h, http.MethodPut, "/periods/2", jsonBody(t, map[string]any{"id": 99, "name": "Summer"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CalendarPeriod{ID: 2, Name: "Summer"}, got)
}

func TestListPeriods_EmptyIsArray(t *testing.T) {
	h := periodsHandler(&mockPeriodServicer{
		list: func(_ context.Context, _ domain.PaginationParams) ([]domain.CalendarPeriod, int64, error) {
			return []domain.CalendarPeriod{}, 0, nil
		},
	})

	rec := do(h, http.MethodGet, "/periods", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestDeletePeriod_Returns204(t *testing.T) {
	var got int
	h := periodsHandler(&mockPeriodServicer{
		delete: func(_ context.Context, id int) error {
			got = id
			return nil
		},
	})

	rec := do(h, http.MethodDelete, "/periods/4", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 4, got)
}
