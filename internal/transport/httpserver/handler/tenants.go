package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	tenantdomain "rentfolio-go/internal/domain/tenant"
	"rentfolio-go/pkg/patch"
)

type createTenantRequest struct {
	PropertyID    int64     `json:"property_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	LeaseStart    time.Time `json:"lease_start"`
	LeaseEnd      time.Time `json:"lease_end"`
	MonthlyRent   float64   `json:"monthly_rent"`
	DepositAmount *float64  `json:"deposit_amount"`
	Status        *string   `json:"status"`
	Notes         *string   `json:"notes"`
}

type updateTenantRequest struct {
	PropertyID    patch.Field[int64]     `json:"property_id"`
	FirstName     patch.Field[string]    `json:"first_name"`
	LastName      patch.Field[string]    `json:"last_name"`
	Email         patch.Field[string]    `json:"email"`
	Phone         patch.Field[string]    `json:"phone"`
	LeaseStart    patch.Field[time.Time] `json:"lease_start"`
	LeaseEnd      patch.Field[time.Time] `json:"lease_end"`
	MonthlyRent   patch.Field[float64]   `json:"monthly_rent"`
	DepositAmount patch.Field[float64]   `json:"deposit_amount"`
	Status        patch.Field[string]    `json:"status"`
	Notes         patch.Field[string]    `json:"notes"`
}

type tenantResponse struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"property_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	LeaseStart    time.Time `json:"lease_start"`
	LeaseEnd      time.Time `json:"lease_end"`
	MonthlyRent   float64   `json:"monthly_rent"`
	DepositAmount *float64  `json:"deposit_amount"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (h *Handlers) ListTenants(w http.ResponseWriter, r *http.Request) {
	propertyID, err := parseInt64Param(r.URL.Query().Get("property_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid property_id")
		return
	}

	items, err := h.Tenants.ListTenants(r.Context(), tenantdomain.ListFilter{PropertyID: propertyID})
	if err != nil {
		h.log.InternalError("tenants.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]tenantResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toTenantResponse(item))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetTenant(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	item, err := h.Tenants.GetTenant(r.Context(), id)
	if err != nil {
		if errors.Is(err, tenantdomain.ErrTenantNotFound) {
			h.log.BusinessError("tenants.get: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "tenant_not_found", "tenant not found")
			return
		}
		h.log.InternalError("tenants.get: get failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTenantResponse(*item))
}

func (h *Handlers) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.PropertyID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "property_id is required")
		return
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "first_name and last_name are required")
		return
	}

	status := ""
	if req.Status != nil {
		status = *req.Status
	}

	item, err := h.Tenants.CreateTenant(r.Context(), tenantdomain.CreateInput{
		PropertyID:    req.PropertyID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		LeaseStart:    req.LeaseStart,
		LeaseEnd:      req.LeaseEnd,
		MonthlyRent:   req.MonthlyRent,
		DepositAmount: req.DepositAmount,
		Status:        status,
		Notes:         req.Notes,
	})
	if err != nil {
		h.log.InternalError("tenants.create: create failed", err, "property_id", req.PropertyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toTenantResponse(*item))
}

func (h *Handlers) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req updateTenantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	item, err := h.Tenants.UpdateTenant(r.Context(), id, tenantdomain.UpdateInput{
		PropertyID:    req.PropertyID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		LeaseStart:    req.LeaseStart,
		LeaseEnd:      req.LeaseEnd,
		MonthlyRent:   req.MonthlyRent,
		DepositAmount: req.DepositAmount,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		if errors.Is(err, tenantdomain.ErrTenantNotFound) {
			h.log.BusinessError("tenants.update: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "tenant_not_found", "tenant not found")
			return
		}
		h.log.InternalError("tenants.update: update failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTenantResponse(*item))
}

func (h *Handlers) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Tenants.DeleteTenant(r.Context(), id); err != nil {
		if errors.Is(err, tenantdomain.ErrTenantNotFound) {
			h.log.BusinessError("tenants.delete: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "tenant_not_found", "tenant not found")
			return
		}
		h.log.InternalError("tenants.delete: delete failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTenantResponse(item tenantdomain.Tenant) tenantResponse {
	return tenantResponse{
		ID:            item.ID,
		PropertyID:    item.PropertyID,
		FirstName:     item.FirstName,
		LastName:      item.LastName,
		Email:         item.Email,
		Phone:         item.Phone,
		LeaseStart:    item.LeaseStart,
		LeaseEnd:      item.LeaseEnd,
		MonthlyRent:   item.MonthlyRent,
		DepositAmount: item.DepositAmount,
		Status:        item.Status,
		Notes:         item.Notes,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
