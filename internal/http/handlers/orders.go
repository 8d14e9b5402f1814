package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"car-service-booking/internal/http/middleware"
	"car-service-booking/internal/models"
)

// ListOrdersHandler returns the authenticated user's orders. The email query
// parameter must match the session identity; any mismatch is refused rather
// than silently filtered.
type ListOrdersHandler struct {
	Store OrdersStore
	Log   zerolog.Logger
}

func (h *ListOrdersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		// Auth middleware missing from the chain; never expose orders.
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	email := r.URL.Query().Get("email")
	if email != id.Email {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Forbidden"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	orders, err := h.Store.FindByEmail(ctx, email)
	if err != nil {
		h.Log.Error().Err(err).Msg("list orders failed")
		http.Error(w, "failed to load orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(orders)
}

// CreateOrderHandler inserts a new order document.
type CreateOrderHandler struct {
	Store OrdersStore
	Log   zerolog.Logger
}

type createOrderReq struct {
	Email     string `json:"email"`
	Service   string `json:"service"`
	ServiceID string `json:"serviceId"`
	Price     string `json:"price"`
	Date      string `json:"date"`
	Status    bool   `json:"status"`
}

type createOrderResp struct {
	InsertedID string `json:"insertedId"`
}

func (h *CreateOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Service == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	insertedID, err := h.Store.Insert(ctx, models.Order{
		Email:     req.Email,
		Service:   req.Service,
		ServiceID: req.ServiceID,
		Price:     req.Price,
		Date:      req.Date,
		Status:    req.Status,
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("insert order failed")
		http.Error(w, "failed to create order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(createOrderResp{InsertedID: insertedID.Hex()})
}

// UpdateOrderStatusHandler confirms an order: sets its status to true.
type UpdateOrderStatusHandler struct {
	Store OrdersStore
	Log   zerolog.Logger
}

type updateStatusReq struct {
	ID string `json:"id"`
}

type updateStatusResp struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func (h *UpdateOrderStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	id, err := bson.ObjectIDFromHex(req.ID)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	matched, modified, err := h.Store.SetStatus(ctx, id)
	if err != nil {
		h.Log.Error().Err(err).Str("id", id.Hex()).Msg("update order status failed")
		http.Error(w, "failed to update order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(updateStatusResp{MatchedCount: matched, ModifiedCount: modified})
}

// DeleteOrderHandler removes an order by its id path param.
type DeleteOrderHandler struct {
	Store OrdersStore
	Log   zerolog.Logger
}

type deleteOrderResp struct {
	DeletedCount int64 `json:"deletedCount"`
}

func (h *DeleteOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error().Err(err).Str("id", id.Hex()).Msg("delete order failed")
		http.Error(w, "failed to delete order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(deleteOrderResp{DeletedCount: deleted})
}
