package service_test

import (
	"testing"

	"job-board-backend/internal/models"
	"job-board-backend/internal/repository"
	"job-board-backend/internal/service"
	"job-board-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mock: UserStore
// =====================

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserStore) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) List() ([]models.User, error) {
	args := m.Called()
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func TestUserService_Register_Success(t *testing.T) {
	users := new(MockUserStore)
	audit := new(MockAuditRecorder)
	svc := service.NewUserService(users, audit)

	var created *models.User
	users.On("FindByUsername", "alice").Return(nil, repository.ErrUserNotFound)
	users.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.User)
	}).Return(nil)
	audit.On("Record", mock.Anything, "user_registration", mock.Anything).Return(nil)

	user, err := svc.Register("alice", "alice@example.com", "Alice Liddell", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)

	// The stored record carries a salted hash, never the plaintext.
	require.NotNil(t, created)
	assert.NotEqual(t, "Abcdef1!", created.PasswordHash)
	assert.True(t, utils.ComparePassword(created.PasswordHash, "Abcdef1!"))

	audit.AssertExpectations(t)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	users := new(MockUserStore)
	svc := service.NewUserService(users, new(MockAuditRecorder))

	users.On("FindByUsername", "alice").Return(&models.User{Username: "alice"}, nil)

	_, err := svc.Register("alice", "alice@example.com", "", "Abcdef1!")
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestUserService_Register_DuplicateUnderConcurrentRegistration(t *testing.T) {
	users := new(MockUserStore)
	svc := service.NewUserService(users, new(MockAuditRecorder))

	// The existence check passes but the unique constraint fires on insert.
	users.On("FindByUsername", "alice").Return(nil, repository.ErrUserNotFound)
	users.On("Create", mock.AnythingOfType("*models.User")).Return(repository.ErrDuplicateUser)

	_, err := svc.Register("alice", "alice@example.com", "", "Abcdef1!")
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestUserService_List(t *testing.T) {
	users := new(MockUserStore)
	svc := service.NewUserService(users, new(MockAuditRecorder))

	users.On("List").Return([]models.User{{Username: "alice"}, {Username: "bob"}}, nil)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
