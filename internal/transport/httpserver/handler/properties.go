package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	propertydomain "rentfolio-go/internal/domain/property"
	"rentfolio-go/pkg/patch"
)

type createPropertyRequest struct {
	Title         string   `json:"title"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	PropertyType  string   `json:"property_type"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *float64 `json:"bathrooms"`
	SquareFeet    *int     `json:"square_feet"`
	PurchasePrice *float64 `json:"purchase_price"`
	CurrentValue  *float64 `json:"current_value"`
	MonthlyRent   *float64 `json:"monthly_rent"`
	Status        *string  `json:"status"`
	Notes         *string  `json:"notes"`
}

type updatePropertyRequest struct {
	Title         patch.Field[string]  `json:"title"`
	Address       patch.Field[string]  `json:"address"`
	City          patch.Field[string]  `json:"city"`
	State         patch.Field[string]  `json:"state"`
	ZipCode       patch.Field[string]  `json:"zip_code"`
	PropertyType  patch.Field[string]  `json:"property_type"`
	Bedrooms      patch.Field[int]     `json:"bedrooms"`
	Bathrooms     patch.Field[float64] `json:"bathrooms"`
	SquareFeet    patch.Field[int]     `json:"square_feet"`
	PurchasePrice patch.Field[float64] `json:"purchase_price"`
	CurrentValue  patch.Field[float64] `json:"current_value"`
	MonthlyRent   patch.Field[float64] `json:"monthly_rent"`
	Status        patch.Field[string]  `json:"status"`
	Notes         patch.Field[string]  `json:"notes"`
}

type propertyResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	PropertyType  string    `json:"property_type"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *float64  `json:"bathrooms"`
	SquareFeet    *int      `json:"square_feet"`
	PurchasePrice *float64  `json:"purchase_price"`
	CurrentValue  *float64  `json:"current_value"`
	MonthlyRent   *float64  `json:"monthly_rent"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (h *Handlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	items, err := h.Properties.ListProperties(r.Context())
	if err != nil {
		h.log.InternalError("properties.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]propertyResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toPropertyResponse(item))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	item, err := h.Properties.GetProperty(r.Context(), id)
	if err != nil {
		if errors.Is(err, propertydomain.ErrPropertyNotFound) {
			h.log.BusinessError("properties.get: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "property_not_found", "property not found")
			return
		}
		h.log.InternalError("properties.get: get failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPropertyResponse(*item))
}

func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "address is required")
		return
	}

	status := ""
	if req.Status != nil {
		status = *req.Status
	}

	item, err := h.Properties.CreateProperty(r.Context(), propertydomain.CreateInput{
		Title:         req.Title,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		PropertyType:  req.PropertyType,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SquareFeet:    req.SquareFeet,
		PurchasePrice: req.PurchasePrice,
		CurrentValue:  req.CurrentValue,
		MonthlyRent:   req.MonthlyRent,
		Status:        status,
		Notes:         req.Notes,
	})
	if err != nil {
		h.log.InternalError("properties.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toPropertyResponse(*item))
}

func (h *Handlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req updatePropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	item, err := h.Properties.UpdateProperty(r.Context(), id, propertydomain.UpdateInput{
		Title:         req.Title,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		PropertyType:  req.PropertyType,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SquareFeet:    req.SquareFeet,
		PurchasePrice: req.PurchasePrice,
		CurrentValue:  req.CurrentValue,
		MonthlyRent:   req.MonthlyRent,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		if errors.Is(err, propertydomain.ErrPropertyNotFound) {
			h.log.BusinessError("properties.update: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "property_not_found", "property not found")
			return
		}
		h.log.InternalError("properties.update: update failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPropertyResponse(*item))
}

func (h *Handlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Properties.DeleteProperty(r.Context(), id); err != nil {
		if errors.Is(err, propertydomain.ErrPropertyNotFound) {
			h.log.BusinessError("properties.delete: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "property_not_found", "property not found")
			return
		}
		h.log.InternalError("properties.delete: delete failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPropertyResponse(item propertydomain.Property) propertyResponse {
	return propertyResponse{
		ID:            item.ID,
		Title:         item.Title,
		Address:       item.Address,
		City:          item.City,
		State:         item.State,
		ZipCode:       item.ZipCode,
		PropertyType:  item.PropertyType,
		Bedrooms:      item.Bedrooms,
		Bathrooms:     item.Bathrooms,
		SquareFeet:    item.SquareFeet,
		PurchasePrice: item.PurchasePrice,
		CurrentValue:  item.CurrentValue,
		MonthlyRent:   item.MonthlyRent,
		Status:        item.Status,
		Notes:         item.Notes,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
