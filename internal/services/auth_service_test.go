package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"blog/internal/models"
	"blog/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_secret")

	// First registered account becomes the admin
	var created *models.User
	mockRepo.On("GetByEmail", "first@example.com").Return(nil, nil).Once()
	mockRepo.On("Count").Return(int64(0), nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.User)
	}).Return(nil).Once()

	user, err := authService.Register("first@example.com", "First", "password123")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin())
	mockRepo.AssertExpectations(t)

	// The stored password is a bcrypt hash of the plaintext
	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))

	// Second account is a regular user
	mockRepo.On("GetByEmail", "second@example.com").Return(nil, nil).Once()
	mockRepo.On("Count").Return(int64(1), nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err = authService.Register("second@example.com", "Second", "password123")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.IsAdmin())
	mockRepo.AssertExpectations(t)

	// Registering an email that already has an account fails
	mockRepo.On("GetByEmail", "first@example.com").Return(&models.User{ID: 1}, nil).Once()

	_, err = authService.Register("first@example.com", "Impostor", "password123")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       1,
		Email:    "test@example.com",
		Name:     "Tester",
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	// Successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	got, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.Login("test@example.com", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown email yields the same generic error
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("user with email nobody@example.com: not found")).Once()
	_, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Sessions(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_secret")

	user := &models.User{ID: 7, Email: "test@example.com", Name: "Tester", Role: models.RoleUser}

	token, err := authService.IssueSession(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Resolving the token loads the user it identifies
	mockRepo.On("GetByID", uint(7)).Return(user, nil).Once()
	got, err := authService.ResolveSession(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)

	// Garbage tokens are rejected
	_, err = authService.ResolveSession("not.a.token")
	assert.Error(t, err)

	// Tokens signed with a different secret are rejected
	otherService := services.NewAuthService(mockRepo, "other_secret")
	foreignToken, err := otherService.IssueSession(user)
	assert.NoError(t, err)
	_, err = authService.ResolveSession(foreignToken)
	assert.Error(t, err)
}
