package handler

import (
	"net/http"

	"github.com/bounty-bunny/DataSage/internal/api/response"
	"github.com/bounty-bunny/DataSage/internal/repository/sqlite"
)

// HealthCheck reports process liveness
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

// ReadyCheck reports whether the database is reachable
func ReadyCheck(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database not ready")
			return
		}
		response.OK(w, map[string]string{"status": "ready"})
	}
}
