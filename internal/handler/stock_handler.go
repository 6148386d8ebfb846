package handler

import (
	"net/http"

	"inventory-tracker/internal/model"
	"inventory-tracker/internal/service"

	"github.com/rs/zerolog"
)

// StockHandler handles stock intake HTTP requests.
type StockHandler struct {
	service service.StockService
	logger  zerolog.Logger
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(service service.StockService, logger zerolog.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		logger:  logger.With().Str("handler", "stock").Logger(),
	}
}

// Create handles POST /api/stocks requests.
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.StockCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{Message: "Stock created successfully", ID: id})
}

// GetAll handles GET /api/stocks requests.
func (h *StockHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.service.GetAll(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stocks)
}

// GetByID handles GET /api/stocks/{id} requests.
func (h *StockHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	stock, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stock)
}

// Update handles PUT /api/stocks/{id} requests. Only keys present in the
// body are changed.
func (h *StockHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	var patch model.StockPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	if _, err := h.service.Update(r.Context(), id, &patch); err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Stock updated successfully"})
}

// Delete handles DELETE /api/stocks/{id} requests.
func (h *StockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Stock deleted successfully"})
}
