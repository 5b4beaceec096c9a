package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	eventdomain "rentfolio-go/internal/domain/event"
	"rentfolio-go/pkg/patch"
)

type createEventRequest struct {
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	EventType       *string    `json:"event_type"`
	PropertyID      *int64     `json:"property_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	ReminderMinutes *int       `json:"reminder_minutes"`
}

type updateEventRequest struct {
	Title           patch.Field[string]    `json:"title"`
	Description     patch.Field[string]    `json:"description"`
	EventType       patch.Field[string]    `json:"event_type"`
	PropertyID      patch.Field[int64]     `json:"property_id"`
	StartTime       patch.Field[time.Time] `json:"start_time"`
	EndTime         patch.Field[time.Time] `json:"end_time"`
	ReminderMinutes patch.Field[int]       `json:"reminder_minutes"`
	Completed       patch.Field[bool]      `json:"completed"`
}

type eventResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	EventType       string     `json:"event_type"`
	PropertyID      *int64     `json:"property_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	ReminderMinutes *int       `json:"reminder_minutes"`
	Completed       bool       `json:"completed"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	items, err := h.Events.ListEvents(r.Context())
	if err != nil {
		h.log.InternalError("events.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]eventResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toEventResponse(item))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	item, err := h.Events.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, eventdomain.ErrEventNotFound) {
			h.log.BusinessError("events.get: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "event_not_found", "event not found")
			return
		}
		h.log.InternalError("events.get: get failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(*item))
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}
	if req.StartTime.IsZero() {
		writeError(w, http.StatusBadRequest, "invalid_request", "start_time is required")
		return
	}

	eventType := ""
	if req.EventType != nil {
		eventType = *req.EventType
	}

	item, err := h.Events.CreateEvent(r.Context(), eventdomain.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		EventType:       eventType,
		PropertyID:      req.PropertyID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		ReminderMinutes: req.ReminderMinutes,
	})
	if err != nil {
		h.log.InternalError("events.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(*item))
}

func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req updateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	item, err := h.Events.UpdateEvent(r.Context(), id, eventdomain.UpdateInput{
		Title:           req.Title,
		Description:     req.Description,
		EventType:       req.EventType,
		PropertyID:      req.PropertyID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		ReminderMinutes: req.ReminderMinutes,
		Completed:       req.Completed,
	})
	if err != nil {
		if errors.Is(err, eventdomain.ErrEventNotFound) {
			h.log.BusinessError("events.update: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "event_not_found", "event not found")
			return
		}
		h.log.InternalError("events.update: update failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(*item))
}

func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Events.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, eventdomain.ErrEventNotFound) {
			h.log.BusinessError("events.delete: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "event_not_found", "event not found")
			return
		}
		h.log.InternalError("events.delete: delete failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEventResponse(item eventdomain.CalendarEvent) eventResponse {
	return eventResponse{
		ID:              item.ID,
		Title:           item.Title,
		Description:     item.Description,
		EventType:       item.EventType,
		PropertyID:      item.PropertyID,
		StartTime:       item.StartTime,
		EndTime:         item.EndTime,
		ReminderMinutes: item.ReminderMinutes,
		Completed:       item.Completed,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
