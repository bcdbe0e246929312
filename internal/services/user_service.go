package services

import (
	"errors"

	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"
	"agenda_backend/pkg/utils"
)

// Service-specific errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already in use")
)

// CreateUserRequest carries the new-user form fields.
type CreateUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"senha" json:"senha" binding:"required"`
}

// UpdateUserRequest carries the edit-user form fields. Both fields are
// required: every edit sets a new password.
type UpdateUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"senha" json:"senha" binding:"required"`
}

// UserService defines the interface for staff-account business logic.
type UserService interface {
	CreateUser(req CreateUserRequest) (*models.User, error)
	GetUsers() ([]models.User, error)
	GetUserByID(id int64) (*models.User, error)
	UpdateUser(id int64, req UpdateUserRequest) error
	DeleteUser(id int64) error
}

type userService struct {
	userRepo repositories.UserRepository
	db       repositories.SQLExecutor
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, db repositories.SQLExecutor) UserService {
	return &userService{userRepo: repo, db: db}
}

// CreateUser registers a staff account. Usernames are unique; the lookup here
// gives a friendly early answer and the DB constraint backstops the race.
func (s *userService) CreateUser(req CreateUserRequest) (*models.User, error) {
	_, _, err := s.userRepo.FindUserByUsername(req.Username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: req.Username}
	userID, err := s.userRepo.CreateUser(s.db, user, hashedPassword)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	user.ID = userID
	return user, nil
}

func (s *userService) GetUsers() ([]models.User, error) {
	return s.userRepo.GetUsers()
}

func (s *userService) GetUserByID(id int64) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the username and password of an existing account.
func (s *userService) UpdateUser(id int64, req UpdateUserRequest) error {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	err = s.userRepo.UpdateUser(s.db, id, req.Username, hashedPassword)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrUsernameExists
		}
		return err
	}
	return nil
}

func (s *userService) DeleteUser(id int64) error {
	err := s.userRepo.DeleteUser(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
