package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"blog/internal/models"
	"blog/internal/repositories"
)

// ErrEmailTaken is returned when registering with an email address that
// already belongs to an account.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so a login failure does not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration, login and session resolution.
// A session is an HS256 token carrying the user id, signed with the
// configured secret and stored by the handlers in an HTTP-only cookie.
type AuthService struct {
	userRepo   repositories.UserRepository
	secret     []byte
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, secret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		secret:     []byte(secret),
		sessionTTL: 7 * 24 * time.Hour,
	}
}

// SessionTTL returns how long an issued session token stays valid.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register creates a new account with a bcrypt-hashed password. The first
// account ever created is granted the admin role; every later account is a
// regular user.
func (s *AuthService) Register(email, name, password string) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	count, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		Email:    email,
		Name:     name,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies the supplied credentials and returns the matching user.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueSession creates a signed session token for the user.
func (s *AuthService) IssueSession(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.sessionTTL).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ResolveSession validates a session token and loads the user it
// identifies.
func (s *AuthService) ResolveSession(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid session token: missing user id")
	}

	user, err := s.userRepo.GetByID(uint(rawID))
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return user, nil
}
