package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/users-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListUsersHandler(t *testing.T) {
	tests := []struct {
		name         string
		users        []models.User
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name: "two users",
			users: []models.User{
				{ID: 1, Username: "cnych", Email: "123@qq.com"},
				{ID: 2, Username: "cnych1", Email: "1231@qq.com"},
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"success","data":{"users":[` +
				`{"id":1,"username":"cnych","email":"123@qq.com"},` +
				`{"id":2,"username":"cnych1","email":"1231@qq.com"}]}}`,
		},
		{
			name:         "no users",
			users:        nil,
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"success","data":{"users":[]}}`,
		},
		{
			name:         "storage failure",
			err:          errors.New("db down"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"status":"fail","message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserLister(ctrl)
			mockSvc.EXPECT().List(gomock.Any()).Return(tt.users, tt.err)

			rr := httptest.NewRecorder()
			NewListUsersHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
