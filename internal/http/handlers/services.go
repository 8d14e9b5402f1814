package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"car-service-booking/internal/models"
)

const storeTimeout = 5 * time.Second

// ListServicesHandler returns every service offering.
type ListServicesHandler struct {
	Store ServicesStore
	Log   zerolog.Logger
}

func (h *ListServicesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	services, err := h.Store.FindAll(ctx)
	if err != nil {
		h.Log.Error().Err(err).Msg("list services failed")
		http.Error(w, "failed to load services", http.StatusInternalServerError)
		return
	}
	if services == nil {
		services = []models.Service{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(services)
}

// GetServiceHandler returns one service by its id path param.
type GetServiceHandler struct {
	Store ServicesStore
	Log   zerolog.Logger
}

func (h *GetServiceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Reject malformed ids before they reach the store.
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	svc, err := h.Store.FindByID(ctx, id)
	if err != nil {
		h.Log.Error().Err(err).Str("id", id.Hex()).Msg("get service failed")
		http.Error(w, "failed to load service", http.StatusInternalServerError)
		return
	}
	if svc == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(svc)
}
