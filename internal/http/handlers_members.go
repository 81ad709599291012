package httpx

import (
	"errors"
	"net/http"

	"github.com/gymdesk/gym-ui-api/internal/data"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

// MemberHandlers provides HTTP handlers for member-related operations.
type MemberHandlers struct {
	Svc *service.MemberService
}

const (
	maxMemberListLimit = 100 // Maximum number of members that can be requested in one call
)

// Create handles HTTP requests to register a new member.
func (h *MemberHandlers) Create(w http.ResponseWriter, r *http.Request) {
	// Decode into a value so a JSON `null` body becomes a zero request that
	// fails validation instead of a nil pointer.
	var req model.CreateMemberRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	member, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrMemberEmailExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "email_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, member)
}

// List handles HTTP requests to list members with pagination and filters.
func (h *MemberHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxMemberListLimit)

	opts := model.MembersListOptions{Limit: limit, Offset: offset}
	if q := r.URL.Query().Get("q"); q != "" {
		opts.Q = &q
	}
	if v := r.URL.Query().Get("active"); v != "" {
		active := v == "true" || v == "1"
		opts.Active = &active
	}
	if v := r.URL.Query().Get("plan"); v != "" {
		plan, ok := model.ParseMembershipPlan(v)
		if !ok {
			WriteError(
				w,
				ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_plan", Err: errors.New("invalid membership plan")},
			)
			return
		}
		opts.Plan = &plan
	}

	members, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"members": members,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetByID handles HTTP requests to get a member by ID.
func (h *MemberHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("member id is required")},
		)
		return
	}

	member, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrMemberNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "member_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, member)
}

// Update handles HTTP requests to update a member.
func (h *MemberHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("member id is required")},
		)
		return
	}

	var req model.UpdateMemberRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	member, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrMemberNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "member_not_found", Err: err})
		case errors.Is(err, data.ErrMemberEmailExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "email_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, member)
}

// Delete handles HTTP requests to delete a member.
func (h *MemberHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("member id is required")},
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
			ErrorParams{Code: http.StatusNotFound, ErrCode: "member_not_found", Err: errors.New("member not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
