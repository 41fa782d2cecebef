package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/users-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIndexHandler(t *testing.T) {
	tests := []struct {
		name        string
		users       []models.User
		contains    []string
		notContains []string
	}{
		{
			name:        "no users",
			contains:    []string{"No users!"},
			notContains: []string{"All Users"},
		},
		{
			name: "with users",
			users: []models.User{
				{ID: 2, Username: "qikqiak", Email: "qikqiak@gmail.com"},
				{ID: 1, Username: "cnych", Email: "icnych@gmail.com"},
			},
			contains:    []string{"All Users", "cnych", "qikqiak", "icnych@gmail.com"},
			notContains: []string{"No users!"},
		},
		{
			name:        "escapes user content",
			users:       []models.User{{ID: 1, Username: "<script>", Email: "x@qq.com"}},
			contains:    []string{"&lt;script&gt;"},
			notContains: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockRecentUserLister(ctrl)
			mockSvc.EXPECT().ListRecent(gomock.Any()).Return(tt.users, nil)

			rr := httptest.NewRecorder()
			NewIndexHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			body := rr.Body.String()
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestIndexHandler_Order(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockRecentUserLister(ctrl)
	mockSvc.EXPECT().ListRecent(gomock.Any()).Return([]models.User{
		{ID: 2, Username: "newer", Email: "newer@qq.com"},
		{ID: 1, Username: "older", Email: "older@qq.com"},
	}, nil)

	rr := httptest.NewRecorder()
	NewIndexHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rr.Body.String()
	assert.Less(t, strings.Index(body, "newer@qq.com"), strings.Index(body, "older@qq.com"))
}

func TestIndexHandler_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockRecentUserLister(ctrl)
	mockSvc.EXPECT().ListRecent(gomock.Any()).Return(nil, errors.New("db down"))

	rr := httptest.NewRecorder()
	NewIndexHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func newFormRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAddUserFormHandler(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		username string
		email    string
	}{
		{
			name:     "both fields",
			form:     url.Values{"username": {"cnych"}, "email": {"cnych@gmail.com"}},
			username: "cnych",
			email:    "cnych@gmail.com",
		},
		{
			name:     "missing email",
			form:     url.Values{"username": {"cnych"}},
			username: "cnych",
		},
		{
			name:     "unknown fields ignored",
			form:     url.Values{"username": {"a"}, "email": {"a@qq.com"}, "csrf": {"x"}},
			username: "a",
			email:    "a@qq.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserAdder(ctrl)
			mockSvc.EXPECT().Add(gomock.Any(), tt.username, tt.email).
				Return(&models.User{ID: 1, Username: tt.username, Email: tt.email}, nil)

			rr := httptest.NewRecorder()
			NewAddUserFormHandler(mockSvc)(rr, newFormRequest(tt.form))

			assert.Equal(t, http.StatusSeeOther, rr.Code)
			assert.Equal(t, "/", rr.Header().Get("Location"))
		})
	}
}

func TestAddUserFormHandler_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockUserAdder(ctrl)
	mockSvc.EXPECT().Add(gomock.Any(), "cnych", "cnych@gmail.com").Return(nil, errors.New("duplicate"))

	rr := httptest.NewRecorder()
	NewAddUserFormHandler(mockSvc)(rr, newFormRequest(url.Values{"username": {"cnych"}, "email": {"cnych@gmail.com"}}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
