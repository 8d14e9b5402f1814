package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"car-service-booking/internal/auth"
	"car-service-booking/internal/http/middleware"
	"car-service-booking/internal/models"
)

func authedRequest(method, target, email string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := middleware.WithIdentity(req.Context(), auth.Identity{Email: email})
	return req.WithContext(ctx)
}

func TestListOrdersEmailMismatch(t *testing.T) {
	store := &stubOrders{}
	h := &ListOrdersHandler{Store: store, Log: zerolog.Nop()}

	req := authedRequest(http.MethodGet, "/orders?email=a@x.com", "b@y.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Forbidden"}`, rec.Body.String())
	assert.Zero(t, store.calls, "store must not be queried on identity mismatch")
}

func TestListOrdersMissingEmailParam(t *testing.T) {
	store := &stubOrders{}
	h := &ListOrdersHandler{Store: store, Log: zerolog.Nop()}

	req := authedRequest(http.MethodGet, "/orders", "a@x.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, store.calls)
}

func TestListOrdersNoIdentity(t *testing.T) {
	store := &stubOrders{}
	h := &ListOrdersHandler{Store: store, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/orders?email=a@x.com", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, store.calls)
}

func TestListOrdersMatch(t *testing.T) {
	store := &stubOrders{orders: []models.Order{
		{ID: bson.NewObjectID(), Email: "a@x.com", Service: "oil-change", Status: true},
	}}
	h := &ListOrdersHandler{Store: store, Log: zerolog.Nop()}

	req := authedRequest(http.MethodGet, "/orders?email=a@x.com", "a@x.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "oil-change")
	assert.Equal(t, 1, store.calls)
}

func TestCreateOrder(t *testing.T) {
	id := bson.NewObjectID()
	store := &stubOrders{insertedID: id}
	h := &CreateOrderHandler{Store: store, Log: zerolog.Nop()}

	body := `{"email":"a@x.com","service":"oil-change","status":false}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"insertedId":"`+id.Hex()+`"}`, rec.Body.String())
	assert.Equal(t, "a@x.com", store.lastInsert.Email)
	assert.Equal(t, "oil-change", store.lastInsert.Service)
	assert.False(t, store.lastInsert.Status)
}

func TestCreateOrderBadBody(t *testing.T) {
	store := &stubOrders{}
	h := &CreateOrderHandler{Store: store, Log: zerolog.Nop()}

	for name, body := range map[string]string{
		"malformed json":  `{`,
		"missing email":   `{"service":"oil-change"}`,
		"missing service": `{"email":"a@x.com"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
	assert.Zero(t, store.calls)
}

func TestUpdateOrderStatus(t *testing.T) {
	store := &stubOrders{matched: 1, modified: 1}
	h := &UpdateOrderStatusHandler{Store: store, Log: zerolog.Nop()}

	body := `{"id":"` + bson.NewObjectID().Hex() + `"}`
	req := httptest.NewRequest(http.MethodPut, "/orders/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matchedCount":1,"modifiedCount":1}`, rec.Body.String())
}

func TestUpdateOrderStatusUnknownID(t *testing.T) {
	store := &stubOrders{matched: 0, modified: 0}
	h := &UpdateOrderStatusHandler{Store: store, Log: zerolog.Nop()}

	body := `{"id":"` + bson.NewObjectID().Hex() + `"}`
	req := httptest.NewRequest(http.MethodPut, "/orders/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matchedCount":0,"modifiedCount":0}`, rec.Body.String())
}

func TestUpdateOrderStatusInvalidID(t *testing.T) {
	store := &stubOrders{}
	h := &UpdateOrderStatusHandler{Store: store, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodPut, "/orders/status", strings.NewReader(`{"id":"nope"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.calls)
}

func orderRouter(h *DeleteOrderHandler) http.Handler {
	r := chi.NewRouter()
	r.Delete("/orders/{id}", h.ServeHTTP)
	return r
}

func TestDeleteOrder(t *testing.T) {
	store := &stubOrders{deleted: 1}
	h := &DeleteOrderHandler{Store: store, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+bson.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	orderRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, rec.Body.String())
}

func TestDeleteOrderInvalidID(t *testing.T) {
	store := &stubOrders{}
	h := &DeleteOrderHandler{Store: store, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodDelete, "/orders/not-hex", nil)
	rec := httptest.NewRecorder()
	orderRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.calls)
}
