package handler

import (
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// VersionResponse reports the running build.
type VersionResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports readiness: the service can serve once the item
// database has loaded.
func HandleReadyz(db Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !db.Loaded() {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "item database not loaded",
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleVersion reports the service name and version.
func HandleVersion(service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{Service: service, Version: version})
	}
}
