package httpx

import (
	"errors"
	"net/http"
	"time"

	"github.com/gymdesk/gym-ui-api/internal/data"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

// ActivityHandlers provides HTTP handlers for the class schedule.
type ActivityHandlers struct {
	Svc *service.ActivityService
}

const (
	maxActivityListLimit = 200 // Schedule views pull a wider window than admin tables
)

// Create handles HTTP requests to schedule a new activity.
func (h *ActivityHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateActivityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	activity, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrTrainerNotFound):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unknown_trainer", Err: err})
		case errors.Is(err, data.ErrActivityTrainerGone):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "unknown_trainer", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, activity)
}

// List handles HTTP requests to list activities with pagination and filters.
func (h *ActivityHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxActivityListLimit)

	opts := model.ActivitiesListOptions{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("trainer_id"); v != "" {
		opts.TrainerID = &v
	}
	if v := r.URL.Query().Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			WriteError(
				w,
				ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_from", Err: errors.New("from must be RFC 3339")},
			)
			return
		}
		opts.From = &from
	}

	activities, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"activities": activities,
		"limit":      limit,
		"offset":     offset,
	})
}

// GetByID handles HTTP requests to get an activity by ID.
func (h *ActivityHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("activity id is required")},
		)
		return
	}

	activity, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrActivityNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "activity_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, activity)
}

// Update handles HTTP requests to update an activity.
func (h *ActivityHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("activity id is required")},
		)
		return
	}

	var req model.UpdateActivityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	activity, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrActivityNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "activity_not_found", Err: err})
		case errors.Is(err, data.ErrTrainerNotFound):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unknown_trainer", Err: err})
		case errors.Is(err, data.ErrActivityTrainerGone):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "unknown_trainer", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, activity)
}

// Delete handles HTTP requests to take an activity off the schedule.
// Activities with live bookings are protected by a foreign key and report 409.
func (h *ActivityHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("activity id is required")},
		)
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrActivityHasBookings) {
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "activity_has_bookings", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}

	if !deleted {
		WriteError(
			w,
			ErrorParams{Code: http.StatusNotFound, ErrCode: "activity_not_found", Err: errors.New("activity not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
