package handler

import (
	"net/http"

	"inventory-tracker/internal/model"
	"inventory-tracker/internal/service"

	"github.com/rs/zerolog"
)

// SaleHandler handles sale-related HTTP requests.
type SaleHandler struct {
	service service.SaleService
	logger  zerolog.Logger
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(service service.SaleService, logger zerolog.Logger) *SaleHandler {
	return &SaleHandler{
		service: service,
		logger:  logger.With().Str("handler", "sale").Logger(),
	}
}

// Create handles POST /api/sales requests.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.SaleCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{Message: "Sale created successfully", ID: id})
}

// GetAll handles GET /api/sales requests.
func (h *SaleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.GetAll(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sales)
}

// GetByID handles GET /api/sales/{id} requests.
func (h *SaleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	sale, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sale)
}

// Update handles PUT /api/sales/{id} requests.
func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	var patch model.SalePatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	if _, err := h.service.Update(r.Context(), id, &patch); err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Sale updated successfully"})
}

// Delete handles DELETE /api/sales/{id} requests.
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Sale deleted successfully"})
}
