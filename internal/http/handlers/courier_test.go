package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsedghi/deliverino-sub000/internal/apperr"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
)

type stubCourierUsecase struct {
	getFn            func(ctx context.Context, id int64) (*domain.Courier, error)
	listFn           func(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	createFn         func(ctx context.Context, c *domain.Courier) (int64, error)
	updatePartialFn  func(ctx context.Context, u domain.PartialCourierUpdate) (bool, error)
	reportLocationFn func(ctx context.Context, id int64, loc domain.Coordinate) error
}

func (s *stubCourierUsecase) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourierUsecase) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubCourierUsecase) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	return s.createFn(ctx, c)
}

func (s *stubCourierUsecase) UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error) {
	return s.updatePartialFn(ctx, u)
}

func (s *stubCourierUsecase) ReportLocation(ctx context.Context, id int64, loc domain.Coordinate) error {
	return s.reportLocationFn(ctx, id, loc)
}

func TestCourierHandler_GetByID_OK(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.Courier, error) {
			require.Equal(t, int64(5), id)
			return &domain.Courier{
				ID: 5, Name: "walker", Phone: "+79998887766",
				Status: domain.CourierAvailable, TransportType: domain.TransportTypeFoot,
				Rating: 4.8,
			}, nil
		},
	}

	rr := httptest.NewRecorder()
	h := NewCourierHandler(nil, uc)
	h.GetByID(rr, requestWithID(http.MethodGet, "/couriers/5", "5", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
        "id": 5,
        "name": "walker",
        "phone": "+79998887766",
        "status": "available",
        "transport_type": "on_foot",
        "rating": 4.8
    }`, rr.Body.String())
}

func TestCourierHandler_GetByID_BadID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	h := NewCourierHandler(nil, &stubCourierUsecase{})
	h.GetByID(rr, requestWithID(http.MethodGet, "/couriers/abc", "abc", ""))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCourierHandler_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.Courier, error) {
			return nil, apperr.ErrNotFound
		},
	}

	rr := httptest.NewRecorder()
	h := NewCourierHandler(nil, uc)
	h.GetByID(rr, requestWithID(http.MethodGet, "/couriers/404", "404", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCourierHandler_List_InvalidLimit(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/couriers?limit=-1", nil)
	rr := httptest.NewRecorder()

	h := NewCourierHandler(nil, &stubCourierUsecase{})
	h.List(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCourierHandler_Create_OK(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		createFn: func(ctx context.Context, c *domain.Courier) (int64, error) {
			require.Equal(t, "walker", c.Name)
			return 12, nil
		},
	}

	body := `{"name":"walker","phone":"+79998887766","transport_type":"on_foot"}`
	req := httptest.NewRequest(http.MethodPost, "/couriers", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h := NewCourierHandler(nil, uc)
	h.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/couriers/12", rr.Header().Get("Location"))
	assert.JSONEq(t, `{"id":12}`, rr.Body.String())
}

func TestCourierHandler_Create_Conflict(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		createFn: func(ctx context.Context, c *domain.Courier) (int64, error) {
			return 0, apperr.ErrConflict
		},
	}

	body := `{"name":"walker","phone":"+79998887766"}`
	req := httptest.NewRequest(http.MethodPost, "/couriers", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h := NewCourierHandler(nil, uc)
	h.Create(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCourierHandler_Update_OK(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		updatePartialFn: func(ctx context.Context, u domain.PartialCourierUpdate) (bool, error) {
			require.Equal(t, int64(5), u.ID)
			require.NotNil(t, u.Status)
			return true, nil
		},
	}

	rr := httptest.NewRecorder()
	h := NewCourierHandler(nil, uc)
	h.Update(rr, requestWithID(http.MethodPatch, "/couriers/5", "5", `{"status":"busy"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCourierHandler_ReportLocation_OK(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		reportLocationFn: func(ctx context.Context, id int64, loc domain.Coordinate) error {
			require.Equal(t, int64(5), id)
			require.Equal(t, domain.Coordinate{Lat: 55.75, Lng: 37.61}, loc)
			return nil
		},
	}

	rr := httptest.NewRecorder()
	h := NewCourierHandler(nil, uc)
	h.ReportLocation(rr, requestWithID(http.MethodPut, "/couriers/5/location", "5", `{"lat":55.75,"lng":37.61}`))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCourierHandler_ReportLocation_Invalid(t *testing.T) {
	t.Parallel()

	uc := &stubCourierUsecase{
		reportLocationFn: func(ctx context.Context, id int64, loc domain.Coordinate) error {
			return apperr.ErrInvalid
		},
	}

	rr := httptest.NewRecorder()
	h := NewCourierHandler(nil, uc)
	h.ReportLocation(rr, requestWithID(http.MethodPut, "/couriers/5/location", "5", `{"lat":95,"lng":0}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
