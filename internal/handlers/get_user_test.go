package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/users-service/internal/models"
	"github.com/sbilibin2017/users-service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetUserHandler(t *testing.T) {
	createdAt := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockUserGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			id:   "1",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1)).
					Return(&models.User{ID: 1, Username: "cnych", Email: "123@qq.com", CreatedAt: createdAt}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"success","data":{"username":"cnych","email":"123@qq.com","created_at":"2024-05-06T07:08:09Z"}}`,
		},
		{
			name:         "non integer id",
			id:           "xxx",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"status":"fail","message":"Param id error"}`,
		},
		{
			name:         "fractional id",
			id:           "1.5",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"status":"fail","message":"Param id error"}`,
		},
		{
			name: "not found",
			id:   "-1",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), int64(-1)).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"status":"fail","message":"User does not exist"}`,
		},
		{
			name: "internal error",
			id:   "2",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"status":"fail","message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+tt.id, nil), "id", tt.id)
			rr := httptest.NewRecorder()

			NewGetUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGetUserHandler_CreatedAtRoundTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockUserGetter(ctrl)
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	mockSvc.EXPECT().Get(gomock.Any(), int64(9)).
		Return(&models.User{ID: 9, Username: "u", Email: "u@qq.com", CreatedAt: createdAt}, nil)

	rr := httptest.NewRecorder()
	NewGetUserHandler(mockSvc)(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/users/9", nil), "id", "9"))

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, createdAt.Equal(resp.Data.CreatedAt))
}
