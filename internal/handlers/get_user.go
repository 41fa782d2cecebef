package handlers

//go:generate mockgen -source=get_user.go -destination=get_user_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/users-service/internal/logger"
	"github.com/sbilibin2017/users-service/internal/models"
	"github.com/sbilibin2017/users-service/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*models.User, error)
}

// NewGetUserHandler returns an HTTP handler fetching a single user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.MessageResponse "Param id error"
// @Failure 404 {object} models.MessageResponse "User does not exist"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeFail(w, http.StatusBadRequest, msgParamIDError)
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeFail(w, http.StatusNotFound, msgUserDoesNotExist)
				return
			}
			logger.Log.Errorw("internal server error", "user_id", id, "err", err)
			writeFail(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, models.UserResponse{
			Status: models.StatusSuccess,
			Data: models.UserDetails{
				Username:  user.Username,
				Email:     user.Email,
				CreatedAt: user.CreatedAt,
			},
		})
	}
}
