package httpx

import (
	"errors"
	"net/http"

	"github.com/gymdesk/gym-ui-api/internal/data"
	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

// BookingHandlers provides HTTP handlers for class bookings. Member sessions
// are scoped to their own membership record; staff see everything.
type BookingHandlers struct {
	Svc     *service.BookingService
	Members *service.MemberService
}

const (
	maxBookingListLimit = 200
)

// scopedMemberID resolves the membership record a member session is limited
// to. Staff sessions return ("", nil): no scoping applies.
func (h *BookingHandlers) scopedMemberID(r *http.Request) (string, error) {
	session := GetSessionFromContext(r.Context())
	if session == nil || session.Role != domainauth.RoleMember {
		return "", nil
	}

	member, err := h.Members.GetByEmail(r.Context(), session.Email)
	if err != nil {
		if errors.Is(err, data.ErrMemberNotFound) {
			// A member login without a membership record cannot hold bookings.
			return "", service.ErrBookingNotAllowed
		}
		return "", err
	}
	return member.ID, nil
}

// Create handles HTTP requests to book a member into an activity.
func (h *BookingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	scope, err := h.scopedMemberID(r)
	if err != nil {
		writeBookingScopeError(w, err)
		return
	}
	if scope != "" && req.MemberID != scope {
		WriteError(
			w,
			ErrorParams{Code: http.StatusForbidden, ErrCode: "not_allowed", Err: service.ErrBookingNotAllowed},
		)
		return
	}

	booking, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityFull):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "activity_full", Err: err})
		case errors.Is(err, service.ErrMemberInactive):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "member_inactive", Err: err})
		case errors.Is(err, data.ErrBookingDuplicate):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "already_booked", Err: err})
		case errors.Is(err, data.ErrMemberNotFound):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unknown_member", Err: err})
		case errors.Is(err, data.ErrActivityNotFound):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unknown_activity", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, booking)
}

// List handles HTTP requests to list bookings with pagination and filters.
// Member sessions always see only their own bookings regardless of filters.
func (h *BookingHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxBookingListLimit)

	opts := model.BookingsListOptions{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("member_id"); v != "" {
		opts.MemberID = &v
	}
	if v := r.URL.Query().Get("activity_id"); v != "" {
		opts.ActivityID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := model.BookingStatus(v)
		if !status.Valid() {
			WriteError(
				w,
				ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_status", Err: errors.New("invalid booking status")},
			)
			return
		}
		opts.Status = &status
	}

	scope, err := h.scopedMemberID(r)
	if err != nil {
		writeBookingScopeError(w, err)
		return
	}
	if scope != "" {
		opts.MemberID = &scope
	}

	bookings, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"bookings": bookings,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetByID handles HTTP requests to get a booking by ID.
func (h *BookingHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.loadScopedBooking(w, r)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}

// Cancel handles HTTP requests to cancel a booking.
func (h *BookingHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.loadScopedBooking(w, r)
	if !ok {
		return
	}

	cancelled, err := h.Svc.Cancel(r.Context(), booking.ID)
	if err != nil {
		if errors.Is(err, data.ErrBookingNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "booking_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "cancel_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, cancelled)
}

// SetStatus handles HTTP requests to move a booking through its lifecycle,
// e.g. marking attendance. Routes restrict this to staff roles.
func (h *BookingHandlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("booking id is required")},
		)
		return
	}

	var req struct {
		Status model.BookingStatus `json:"status"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	booking, err := h.Svc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingBadStatus):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_status", Err: err})
		case errors.Is(err, data.ErrBookingNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "booking_not_found", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}

// loadScopedBooking fetches the booking from the path and enforces member
// ownership. It writes an error response and returns ok=false on any failure.
func (h *BookingHandlers) loadScopedBooking(w http.ResponseWriter, r *http.Request) (*model.Booking, bool) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("booking id is required")},
		)
		return nil, false
	}

	booking, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrBookingNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "booking_not_found", Err: err})
			return nil, false
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return nil, false
	}

	scope, err := h.scopedMemberID(r)
	if err != nil {
		writeBookingScopeError(w, err)
		return nil, false
	}
	if scope != "" && booking.MemberID != scope {
		// Report not-found rather than forbidden so booking IDs are not probeable.
		WriteError(
			w,
			ErrorParams{Code: http.StatusNotFound, ErrCode: "booking_not_found", Err: errors.New("booking not found")},
		)
		return nil, false
	}

	return booking, true
}

func writeBookingScopeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrBookingNotAllowed) {
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "not_allowed", Err: err})
		return
	}
	WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "scope_failed", Err: err})
}
