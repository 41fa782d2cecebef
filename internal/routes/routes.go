package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sbilibin2017/users-service/internal/handlers"
	"github.com/sbilibin2017/users-service/internal/middlewares"
	"github.com/sbilibin2017/users-service/internal/models"
)

// UserService is everything the user routes need from the service layer.
type UserService interface {
	Create(ctx context.Context, username, email string) (*models.User, error)
	Add(ctx context.Context, username, email string) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListRecent(ctx context.Context) ([]models.User, error)
}

// NewRouter builds the HTTP router. storeMiddlewares wrap every route that
// touches the store, typically middlewares.TxMiddleware.
func NewRouter(svc UserService, storeMiddlewares ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/ping", handlers.NewPingHandler())

	r.Group(func(r chi.Router) {
		r.Use(storeMiddlewares...)

		r.Post("/users", handlers.NewCreateUserHandler(svc))
		r.Get("/users", handlers.NewListUsersHandler(svc))
		r.Get("/users/{id}", handlers.NewGetUserHandler(svc))

		r.Get("/", handlers.NewIndexHandler(svc))
		r.Post("/", handlers.NewAddUserFormHandler(svc))
	})

	return r
}
