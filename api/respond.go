package api

import (
	"encoding/json"
	"net/http"

	"github.com/howaiconnects/seogate/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.Errorf("response encode failed: %v", err)
	}
}

// writeError emits the failure as {"detail": "<stage> failed: <message>"}
// with a status code from the error taxonomy.
func writeError(w http.ResponseWriter, err error) {
	logger.Log.Error(err.Error())
	writeJSON(w, statusFor(err), map[string]string{"detail": err.Error()})
}
