package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/chess-openings/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := "alice@example.com"

	tests := []struct {
		name         string
		body         interface{}
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success",
			body: RegisterRequest{Username: "alice", Password: "secret123", Email: &email},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret123", &email).
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"token":"JWT_TOKEN"}`,
		},
		{
			name: "SuccessWithoutEmail",
			body: RegisterRequest{Username: "bob", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "secret123", (*string)(nil)).
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"token":"JWT_TOKEN"}`,
		},
		{
			name:         "InvalidJSON",
			rawBody:      `{invalid json`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name:         "MissingUsername",
			body:         RegisterRequest{Password: "secret123"},
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"username and password are required"}`,
		},
		{
			name:         "MissingPassword",
			body:         RegisterRequest{Username: "alice"},
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"username and password are required"}`,
		},
		{
			name: "UsernameTaken",
			body: RegisterRequest{Username: "alice", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret123", (*string)(nil)).
					Return("", services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Username already exists"}`,
		},
		{
			name: "InternalError",
			body: RegisterRequest{Username: "alice", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret123", (*string)(nil)).
					Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewRegisterHandler(mockSvc)

			var bodyBytes []byte
			if tt.rawBody != "" {
				bodyBytes = []byte(tt.rawBody)
			} else {
				bodyBytes, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
