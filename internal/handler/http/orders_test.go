package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/qa-demo-api/internal/service"
	"github.com/MKhiriev/qa-demo-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// withOrderID sets the chi URL parameter the way the router would.
func withOrderID(r *http.Request, orderID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(orderIDParam, orderID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetOrder_Found(t *testing.T) {
	h, m := newMockedHandler(t)
	m.orders.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(models.Order{ID: 1, Total: 99.5, Currency: "USD"}, nil)

	req := withOrderID(injectNopLogger(httptest.NewRequest(http.MethodGet, "/orders/1", nil)), "1")
	rec := httptest.NewRecorder()
	h.getOrder(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"total":99.5,"currency":"USD"}`, rec.Body.String())
}

func TestGetOrder_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", service.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.orders.EXPECT().GetOrder(gomock.Any(), int64(2)).Return(models.Order{}, tt.err)

			req := withOrderID(injectNopLogger(httptest.NewRequest(http.MethodGet, "/orders/2", nil)), "2")
			rec := httptest.NewRecorder()
			h.getOrder(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}

func TestGetOrder_NonIntegerID_Returns422(t *testing.T) {
	for _, raw := range []string{"abc", "1.5", "", "1e3"} {
		t.Run(raw, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			req := withOrderID(injectNopLogger(httptest.NewRequest(http.MethodGet, "/orders/x", nil)), raw)
			rec := httptest.NewRecorder()
			h.getOrder(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, decodeDetail(t, rec), orderIDParam)
		})
	}
}

func TestGetOrder_OutOfRangeID_Returns404(t *testing.T) {
	for _, raw := range []string{"99999999999999999999", "-99999999999999999999"} {
		t.Run(raw, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			req := withOrderID(injectNopLogger(httptest.NewRequest(http.MethodGet, "/orders/x", nil)), raw)
			rec := httptest.NewRecorder()
			h.getOrder(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Order not found", decodeDetail(t, rec))
		})
	}
}

func TestGetOrder_LogsCaller(t *testing.T) {
	h, m := newMockedHandler(t)
	m.orders.EXPECT().GetOrder(gomock.Any(), int64(2)).Return(models.Order{}, service.ErrOrderNotFound)

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/orders/2", nil)
	l := zerolog.New(&buf)
	req = withOrderID(authorized(req.WithContext(l.WithContext(req.Context()))), "2")

	rec := httptest.NewRecorder()
	h.getOrder(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"user":"alice"`)
}
