package handlers

//go:generate mockgen -source=list_users.go -destination=list_users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/users-service/internal/logger"
	"github.com/sbilibin2017/users-service/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} models.UserListResponse
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeFail(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		summaries := make([]models.UserSummary, 0, len(users))
		for _, u := range users {
			summaries = append(summaries, models.UserSummary{
				ID:       u.ID,
				Username: u.Username,
				Email:    u.Email,
			})
		}

		writeJSON(w, http.StatusOK, models.UserListResponse{
			Status: models.StatusSuccess,
			Data:   models.UserList{Users: summaries},
		})
	}
}
