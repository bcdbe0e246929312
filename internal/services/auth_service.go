package services

import (
	"context"
	"errors"

	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"
	"agenda_backend/internal/sessions"
	"agenda_backend/pkg/utils"
)

// ErrInvalidCredentials is returned on login when the username does not exist
// or the password does not match. The two cases are indistinguishable to the
// caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"senha" json:"senha" binding:"required"`
}

// AuthService defines the interface for login and logout.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (string, *models.User, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	userRepo     repositories.UserRepository
	sessionStore sessions.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, store sessions.Store) AuthService {
	return &authService{userRepo: userRepo, sessionStore: store}
}

// Login verifies the credentials and opens a server-side session. It returns
// the session ID to be handed to the client inside a signed cookie.
func (s *authService) Login(ctx context.Context, req LoginRequest) (string, *models.User, error) {
	user, hashedPassword, err := s.userRepo.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPassword(req.Password, hashedPassword) {
		return "", nil, ErrInvalidCredentials
	}

	sessionID, err := s.sessionStore.Create(ctx, sessions.Data{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		return "", nil, err
	}
	return sessionID, user, nil
}

// Logout discards the server-side session. Unknown session IDs are a no-op.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionStore.Delete(ctx, sessionID)
}
