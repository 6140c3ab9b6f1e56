package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/chess-openings/internal/models"
	"github.com/sbilibin2017/chess-openings/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens)

	email := "alice@example.com"

	tests := []struct {
		name         string
		username     string
		password     string
		email        *string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantToken    string
		wantErr      error
	}{
		{
			name:      "successful registration",
			username:  "alice",
			password:  "pass123",
			email:     &email,
			wantToken: "token123",
		},
		{
			name:         "username already exists",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.UserDB{ID: 7, Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Create(gomock.Any(), tt.username, gomock.Any(), tt.email).
					DoAndReturn(func(_ context.Context, username, passwordHash string, email *string) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						// the persisted hash must verify against the plaintext
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(tt.password)))
						return &models.UserDB{ID: 1, Username: username, Email: email}, nil
					})

				if tt.writerErr == nil {
					mockTokens.EXPECT().
						Generate(gomock.Any(), int64(1), tt.username).
						Return(tt.wantToken, nil)
				}
			}

			token, err := svc.Register(context.Background(), tt.username, tt.password, tt.email)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		tokenErr  error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: 42, Username: "alice", PasswordHash: string(hashed)},
			wantToken: "token123",
		},
		{
			name:      "unknown user",
			username:  "ghost",
			loginPass: password,
			wantErr:   services.ErrUserNotFound,
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "wrong",
			user:      &models.UserDB{ID: 42, Username: "alice", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token error",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: 42, Username: "alice", PasswordHash: string(hashed)},
			tokenErr:  errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockTokens.EXPECT().
					Generate(gomock.Any(), tt.user.ID, tt.user.Username).
					Return(tt.wantToken, tt.tokenErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
