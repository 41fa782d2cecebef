package handlers

import (
	"net/http"

	"github.com/sbilibin2017/users-service/internal/models"
)

// NewPingHandler returns the health check handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.MessageResponse "pong!"
// @Router /ping [get]
func NewPingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.MessageResponse{
			Status:  models.StatusSuccess,
			Message: msgPong,
		})
	}
}
