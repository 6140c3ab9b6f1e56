package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/chess-openings/internal/models"
	"github.com/sbilibin2017/chess-openings/internal/services"
)

func TestSaveGameHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	title := "Italian practice"
	savedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		authed       bool
		body         interface{}
		rawBody      string
		mockSetup    func(m *MockGameSaver)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Success",
			authed: true,
			body:   SaveGameRequest{Moves: []string{"e4", "e5", "Nf3"}, Title: &title},
			mockSetup: func(m *MockGameSaver) {
				m.EXPECT().
					Save(gomock.Any(), int64(42), []string{"e4", "e5", "Nf3"}, &title).
					Return(&models.GameDB{
						ID:         7,
						UserID:     42,
						Moves:      models.MoveList{"e4", "e5", "Nf3"},
						MovesCount: 3,
						Title:      &title,
						SavedAt:    savedAt,
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{
				"id": 7,
				"user_id": 42,
				"moves": ["e4","e5","Nf3"],
				"moves_count": 3,
				"title": "Italian practice",
				"saved_at": "2025-06-01T12:00:00Z"
			}`,
		},
		{
			name:   "EmptyMoves",
			authed: true,
			body:   SaveGameRequest{},
			mockSetup: func(m *MockGameSaver) {
				m.EXPECT().
					Save(gomock.Any(), int64(42), ([]string)(nil), (*string)(nil)).
					Return(&models.GameDB{
						ID:      8,
						UserID:  42,
						Moves:   models.MoveList{},
						SavedAt: savedAt,
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{
				"id": 8,
				"user_id": 42,
				"moves": [],
				"moves_count": 0,
				"title": null,
				"saved_at": "2025-06-01T12:00:00Z"
			}`,
		},
		{
			name:         "Unauthorized",
			authed:       false,
			body:         SaveGameRequest{Moves: []string{"e4"}},
			mockSetup:    func(m *MockGameSaver) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Unauthorized"}`,
		},
		{
			name:         "InvalidJSON",
			authed:       true,
			rawBody:      `{invalid json`,
			mockSetup:    func(m *MockGameSaver) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name:   "UserNotFound",
			authed: true,
			body:   SaveGameRequest{Moves: []string{"e4"}},
			mockSetup: func(m *MockGameSaver) {
				m.EXPECT().
					Save(gomock.Any(), int64(42), []string{"e4"}, (*string)(nil)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"User not found"}`,
		},
		{
			name:   "InternalError",
			authed: true,
			body:   SaveGameRequest{Moves: []string{"e4"}},
			mockSetup: func(m *MockGameSaver) {
				m.EXPECT().
					Save(gomock.Any(), int64(42), []string{"e4"}, (*string)(nil)).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGameSaver(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewSaveGameHandler(mockSvc)

			var bodyBytes []byte
			if tt.rawBody != "" {
				bodyBytes = []byte(tt.rawBody)
			} else {
				bodyBytes, _ = json.Marshal(tt.body)
			}

			var req *http.Request
			if tt.authed {
				req = authedRequest(http.MethodPost, "/api/v1/games", bytes.NewReader(bodyBytes), 42)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/api/v1/games", bytes.NewReader(bodyBytes))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
