package httpx

import (
	"net/http"
)

type healthBody struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// healthHandler answers liveness probes. It sits outside the session guard:
// the probe deciding whether this process is healthy must never need a login.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, healthBody{Status: "ok", Service: "gym-ui-api"})
}
