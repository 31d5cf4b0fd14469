package service

import (
	"errors"
	"fmt"

	"job-board-backend/internal/models"
	"job-board-backend/internal/repository"
	"job-board-backend/pkg/utils"
)

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	List() ([]models.User, error)
}

type UserService struct {
	users UserStore
	audit AuditRecorder
}

func NewUserService(users UserStore, audit AuditRecorder) *UserService {
	return &UserService{
		users: users,
		audit: audit,
	}
}

// Register creates a new user account with a hashed password. The
// existence check is a fast path; the database unique constraint is what
// actually prevents duplicates under concurrent registration.
func (s *UserService) Register(username, email, fullName, password string) (*models.User, error) {
	_, err := s.users.FindByUsername(username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_ = s.audit.Record(&user.ID, "user_registration", fmt.Sprintf("User %s registered", username))

	return user, nil
}

// List returns all registered users
func (s *UserService) List() ([]models.User, error) {
	return s.users.List()
}
