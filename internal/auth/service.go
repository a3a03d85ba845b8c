package auth

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/badoux/checkmail"
	"github.com/sebuszqo/PersonalLedger/internal/user"
)

const minPasswordLength = 8

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrNameRequired       = errors.New("name is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Register(ctx context.Context, name, email, password string) (*user.User, string, error)
	Login(ctx context.Context, email, password string) (*user.User, string, error)
	ValidateCredentials(ctx context.Context, email, password string) (*user.User, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService   user.Service
	jwtManager    JWTManagerInterface
	authenticator Authenticator
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface, authenticator Authenticator) Service {
	return &service{
		userService:   userService,
		jwtManager:    jwtManager,
		authenticator: authenticator,
	}
}

// Register creates a new identity. A second registration with an email
// already present always fails with ErrEmailAlreadyExists and never creates
// a second user.
func (s *service) Register(ctx context.Context, name, email, password string) (*user.User, string, error) {
	if name == "" {
		return nil, "", ErrNameRequired
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, "", ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	existingUser, err := s.userService.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		log.Printf("Error checking existing user: %v", err)
		return nil, "", ErrInternalError
	}
	if existingUser != nil {
		return nil, "", ErrEmailAlreadyExists
	}

	passwordHash, err := s.authenticator.HashPassword(password)
	if err != nil {
		log.Printf("Error during hashing the password: %v", err)
		return nil, "", ErrInternalError
	}

	newUser, err := s.userService.CreateUser(ctx, name, email, passwordHash)
	if err != nil {
		log.Printf("Error during creating the user: %v", err)
		return nil, "", ErrInternalError
	}

	token, err := s.jwtManager.GenerateAccessJWT(newUser.ID, newUser.Email)
	if err != nil {
		log.Printf("Error during generating the token: %v", err)
		return nil, "", ErrInternalError
	}

	return newUser, token, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both come back as ErrInvalidCredentials, so the response never
// reveals which half of the pair was wrong.
func (s *service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	existingUser, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if existingUser == nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, existingUser.Email)
	if err != nil {
		log.Printf("Error during generating the token: %v", err)
		return nil, "", ErrInternalError
	}

	return existingUser, token, nil
}

// ValidateCredentials returns the matching user, or nil without an error when
// either the email is unknown or the password does not match.
func (s *service) ValidateCredentials(ctx context.Context, email, password string) (*user.User, error) {
	existingUser, err := s.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, nil
		}
		log.Printf("Error looking up user by email: %v", err)
		return nil, ErrInternalError
	}

	if !s.authenticator.ComparePassword(password, existingUser.PasswordHash) {
		return nil, nil
	}

	return existingUser, nil
}
