package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	maintenancedomain "rentfolio-go/internal/domain/maintenance"
	"rentfolio-go/pkg/patch"
)

type createMaintenanceRequest struct {
	PropertyID    int64      `json:"property_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Priority      *string    `json:"priority"`
	Status        *string    `json:"status"`
	Cost          *float64   `json:"cost"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Contractor    *string    `json:"contractor"`
	Notes         *string    `json:"notes"`
}

type updateMaintenanceRequest struct {
	Title         patch.Field[string]    `json:"title"`
	Description   patch.Field[string]    `json:"description"`
	Priority      patch.Field[string]    `json:"priority"`
	Status        patch.Field[string]    `json:"status"`
	Cost          patch.Field[float64]   `json:"cost"`
	ScheduledDate patch.Field[time.Time] `json:"scheduled_date"`
	CompletedDate patch.Field[time.Time] `json:"completed_date"`
	Contractor    patch.Field[string]    `json:"contractor"`
	Notes         patch.Field[string]    `json:"notes"`
}

type maintenanceResponse struct {
	ID            int64      `json:"id"`
	PropertyID    int64      `json:"property_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	Cost          *float64   `json:"cost"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	CompletedDate *time.Time `json:"completed_date"`
	Contractor    *string    `json:"contractor"`
	Notes         *string    `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (h *Handlers) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	propertyID, err := parseInt64Param(r.URL.Query().Get("property_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid property_id")
		return
	}

	items, err := h.Maintenance.ListRecords(r.Context(), maintenancedomain.ListFilter{PropertyID: propertyID})
	if err != nil {
		h.log.InternalError("maintenance.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]maintenanceResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMaintenanceResponse(item))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	item, err := h.Maintenance.GetRecord(r.Context(), id)
	if err != nil {
		if errors.Is(err, maintenancedomain.ErrRecordNotFound) {
			h.log.BusinessError("maintenance.get: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "maintenance_record_not_found", "maintenance record not found")
			return
		}
		h.log.InternalError("maintenance.get: get failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMaintenanceResponse(*item))
}

func (h *Handlers) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	var req createMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.PropertyID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "property_id is required")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}

	priority := ""
	if req.Priority != nil {
		priority = *req.Priority
	}
	status := ""
	if req.Status != nil {
		status = *req.Status
	}

	item, err := h.Maintenance.CreateRecord(r.Context(), maintenancedomain.CreateInput{
		PropertyID:    req.PropertyID,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      priority,
		Status:        status,
		Cost:          req.Cost,
		ScheduledDate: req.ScheduledDate,
		Contractor:    req.Contractor,
		Notes:         req.Notes,
	})
	if err != nil {
		h.log.InternalError("maintenance.create: create failed", err, "property_id", req.PropertyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toMaintenanceResponse(*item))
}

func (h *Handlers) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req updateMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	item, err := h.Maintenance.UpdateRecord(r.Context(), id, maintenancedomain.UpdateInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Status:        req.Status,
		Cost:          req.Cost,
		ScheduledDate: req.ScheduledDate,
		CompletedDate: req.CompletedDate,
		Contractor:    req.Contractor,
		Notes:         req.Notes,
	})
	if err != nil {
		if errors.Is(err, maintenancedomain.ErrRecordNotFound) {
			h.log.BusinessError("maintenance.update: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "maintenance_record_not_found", "maintenance record not found")
			return
		}
		h.log.InternalError("maintenance.update: update failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMaintenanceResponse(*item))
}

func (h *Handlers) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Maintenance.DeleteRecord(r.Context(), id); err != nil {
		if errors.Is(err, maintenancedomain.ErrRecordNotFound) {
			h.log.BusinessError("maintenance.delete: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "maintenance_record_not_found", "maintenance record not found")
			return
		}
		h.log.InternalError("maintenance.delete: delete failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMaintenanceResponse(item maintenancedomain.Record) maintenanceResponse {
	return maintenanceResponse{
		ID:            item.ID,
		PropertyID:    item.PropertyID,
		Title:         item.Title,
		Description:   item.Description,
		Priority:      item.Priority,
		Status:        item.Status,
		Cost:          item.Cost,
		ScheduledDate: item.ScheduledDate,
		CompletedDate: item.CompletedDate,
		Contractor:    item.Contractor,
		Notes:         item.Notes,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
