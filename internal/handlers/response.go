package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/users-service/internal/logger"
	"github.com/sbilibin2017/users-service/internal/models"
)

// Response messages.
const (
	msgPong             = "pong!"
	msgInvalidPayload   = "Invalid payload"
	msgEmailExists      = "Sorry. That email already exists."
	msgConflict         = "Invalid payload."
	msgParamIDError     = "Param id error"
	msgUserDoesNotExist = "User does not exist"
	msgInternalError    = "Internal server error"
	msgUserAddedFormat  = "%s was added!"
	contentTypeJSON     = "application/json"
	contentTypeHTML     = "text/html; charset=utf-8"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeFail(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, models.MessageResponse{Status: models.StatusFail, Message: message})
}
