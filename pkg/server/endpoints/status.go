package endpoints

import (
	"net/http"
	"os"

	"github.com/collectionshq/collections-in-go/pkg/server"
	"github.com/collectionshq/collections-in-go/pkg/server/store"
)

// StatusResponse represents the response from GET /
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// PingResponse represents the response from GET /ping
type PingResponse struct {
	Status string `json:"status"`
}

// RegisterStatusEndpoints registers the status and health endpoints. These
// routes are unauthenticated.
func RegisterStatusEndpoints(s *server.Server) {
	healthStore := s.Health

	// GET / - Status page (no auth required)
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")

	// GET /ping - Database health check (no auth required)
	s.Router.HandleFunc("/ping", handlePing(healthStore)).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("COLLECTIONS_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:  "ok",
			Version: version,
		})
	}
}

func handlePing(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, PingResponse{Status: "error"})
			return
		}

		respondWithJSON(w, http.StatusOK, PingResponse{Status: "ok"})
	}
}
