package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/chess-openings/internal/middlewares"
	"github.com/sbilibin2017/chess-openings/internal/models"
	"github.com/sbilibin2017/chess-openings/internal/services"
)

// authedRequest builds a request carrying the given user id, the way the
// auth middleware would have left it.
func authedRequest(method, target string, body io.Reader, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := middlewares.SetUserIDToContext(req.Context(), userID)
	return req.WithContext(ctx)
}

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	displayName := "Alice"
	savedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		authed       bool
		mockSetup    func(m *MockProfileGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Success",
			authed: true,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					GetProfile(gomock.Any(), int64(42)).
					Return(&models.ProfileView{
						ID:            42,
						Username:      "alice",
						DisplayName:   &displayName,
						Favorites:     []string{"sicilian"},
						GamesCount:    3,
						LatestSavedAt: &savedAt,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"id": 42,
				"username": "alice",
				"email": null,
				"display_name": "Alice",
				"avatar_url": null,
				"bio": null,
				"favorites": ["sicilian"],
				"games_count": 3,
				"latest_saved_at": "2025-06-01T12:00:00Z"
			}`,
		},
		{
			name:         "Unauthorized",
			authed:       false,
			mockSetup:    func(m *MockProfileGetter) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Unauthorized"}`,
		},
		{
			name:   "UserNotFound",
			authed: true,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					GetProfile(gomock.Any(), int64(42)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"User not found"}`,
		},
		{
			name:   "InternalError",
			authed: true,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					GetProfile(gomock.Any(), int64(42)).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetProfileHandler(mockSvc)

			var req *http.Request
			if tt.authed {
				req = authedRequest(http.MethodGet, "/api/v1/me", nil, 42)
			} else {
				req = httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
