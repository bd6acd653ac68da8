package services

import (
	"fmt"

	"ulasan/internal/models"
	"ulasan/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for registration and authentication.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates a new user with a hashed password and saves them to the
// database. The pre-checks give a friendly error for the common case; the
// unique indexes on the users table remain the guard under concurrent
// signups, so a racing duplicate fails on Create instead.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if existingUser, err := s.userRepo.GetByUsername(username); err == nil && existingUser != nil {
		return nil, ErrUsernameTaken
	}
	if existingUser, err := s.userRepo.GetByEmail(email); err == nil && existingUser != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Authenticate verifies an email/password pair and returns the matching
// user. An unknown email and a wrong password both return
// ErrInvalidCredentials so the response does not reveal which one was wrong.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
