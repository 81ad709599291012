package httpx

import (
	"errors"
	"net/http"

	"github.com/gymdesk/gym-ui-api/internal/data"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

// TrainerHandlers provides HTTP handlers for trainer-related operations.
type TrainerHandlers struct {
	Svc *service.TrainerService
}

const (
	maxTrainerListLimit = 100 // Maximum number of trainers that can be requested in one call
)

// Create handles HTTP requests to add a trainer to the roster.
func (h *TrainerHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTrainerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	trainer, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrTrainerEmailExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "email_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, trainer)
}

// List handles HTTP requests to list trainers with pagination.
func (h *TrainerHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxTrainerListLimit)

	trainers, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"trainers": trainers,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetByID handles HTTP requests to get a trainer by ID.
func (h *TrainerHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("trainer id is required")},
		)
		return
	}

	trainer, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrTrainerNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "trainer_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, trainer)
}

// Update handles HTTP requests to update a trainer.
//
//nolint:dupl // mirrors the member handler to share validation flow
func (h *TrainerHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("trainer id is required")},
		)
		return
	}

	var req model.UpdateTrainerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	trainer, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrTrainerNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "trainer_not_found", Err: err})
		case errors.Is(err, data.ErrTrainerEmailExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "email_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, trainer)
}

// Delete handles HTTP requests to remove a trainer from the roster.
func (h *TrainerHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("trainer id is required")},
		)
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}

	if !deleted {
		WriteError(
			w,
			ErrorParams{Code: http.StatusNotFound, ErrCode: "trainer_not_found", Err: errors.New("trainer not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
