package handlers

//go:generate mockgen -source=create_user.go -destination=create_user_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/sbilibin2017/users-service/internal/logger"
	"github.com/sbilibin2017/users-service/internal/models"
	"github.com/sbilibin2017/users-service/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, username, email string) (*models.User, error)
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Adds a user. The email must not be registered yet.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body models.CreateUserRequest true "User creation request"
// @Success 201 {object} models.MessageResponse "<email> was added!"
// @Failure 400 {object} models.MessageResponse "Invalid payload / email already exists"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req *models.CreateUserRequest

		if !isJSON(r) {
			writeFail(w, http.StatusBadRequest, msgInvalidPayload)
			return
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Valid() {
			writeFail(w, http.StatusBadRequest, msgInvalidPayload)
			return
		}

		user, err := svc.Create(r.Context(), *req.Username, *req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeFail(w, http.StatusBadRequest, msgEmailExists)
			case errors.Is(err, services.ErrUserConflict):
				writeFail(w, http.StatusBadRequest, msgConflict)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeFail(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.MessageResponse{
			Status:  models.StatusSuccess,
			Message: fmt.Sprintf(msgUserAddedFormat, user.Email),
		})
	}
}

// isJSON reports whether the request declares a JSON body
// (application/json or an application/*+json type).
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}
