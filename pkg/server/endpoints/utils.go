package endpoints

import (
	"encoding/json"
	"net/http"
)

// respondWithError wraps payload in the {"error": ...} envelope the
// collections API uses for every non-2xx JSON response.
func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
