package httpx

import (
	"net/http"

	"github.com/gymdesk/gym-ui-api/internal/service"
)

// StatsHandlers serves the aggregate counters behind the admin dashboard.
type StatsHandlers struct {
	Svc *service.StatsService
}

// Dashboard handles HTTP requests for the dashboard counters.
func (h *StatsHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Dashboard(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "stats_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}
