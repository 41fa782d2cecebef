package handlers

//go:generate mockgen -source=index.go -destination=index_mock.go -package=handlers

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sbilibin2017/users-service/internal/logger"
	"github.com/sbilibin2017/users-service/internal/models"
)

//go:embed templates/*.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// RecentUserLister defines the interface that the service must implement.
type RecentUserLister interface {
	ListRecent(ctx context.Context) ([]models.User, error)
}

// UserAdder defines the interface that the service must implement.
type UserAdder interface {
	Add(ctx context.Context, username, email string) (*models.User, error)
}

type indexPage struct {
	Users []models.User
}

// NewIndexHandler renders the users page, newest users first.
func NewIndexHandler(svc RecentUserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListRecent(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, msgInternalError, http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := indexTemplate.Execute(&buf, indexPage{Users: users}); err != nil {
			logger.Log.Errorw("failed to render index page", "err", err)
			http.Error(w, msgInternalError, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

// NewAddUserFormHandler stores the user posted by the page form and
// redirects back to the page. Missing fields are stored as empty strings.
func NewAddUserFormHandler(svc UserAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var form models.UserForm
		if err := formDecoder.Decode(&form, r.PostForm); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if _, err := svc.Add(r.Context(), form.Username, form.Email); err != nil {
			logger.Log.Errorw("failed to add user from form", "email", form.Email, "err", err)
			http.Error(w, msgInternalError, http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
