// internal/domain/user/service.go
package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

var (
	// ErrEmailTaken is returned when registering an already known email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrWeakPassword is returned when a password fails validation.
	ErrWeakPassword = errors.New("password rejected")
	// ErrNotFound is returned when no account has the requested id.
	ErrNotFound = errors.New("user not found")
)

// Service handles account business logic
type Service struct {
	users      *jsonstore.TypedCollection[User]
	jwtManager *auth.JWTManager
	passwords  *auth.PasswordManager
}

// NewService creates a new user service
func NewService(store *jsonstore.Store, cfg *config.Config) *Service {
	return &Service{
		users:      jsonstore.Collection[User](store, "users"),
		jwtManager: auth.NewJWTManager(cfg),
		passwords:  auth.NewPasswordManager(cfg),
	}
}

// Register creates a new account with a hashed password.
func (s *Service) Register(req *RegisterRequest) (*PublicUser, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.passwords.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeakPassword, err)
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var created User
	err = s.users.Update(func(items []User) ([]User, error) {
		for _, u := range items {
			if strings.EqualFold(u.Email, email) {
				return nil, ErrEmailTaken
			}
		}

		created = User{
			ID:           jsonstore.NextID(items),
			Email:        email,
			PasswordHash: hash,
			UserType:     req.UserType,
		}
		return append(items, created), nil
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	public := created.Public()
	return &public, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
func (s *Service) Login(req *LoginRequest) (*LoginResponse, error) {
	u, ok, err := s.users.Find(func(u User) bool {
		return strings.EqualFold(u.Email, req.Email)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := s.passwords.VerifyPassword(req.Password, u.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID, u.Email, u.IsAdmin())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &LoginResponse{
		User:         u.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetUser returns the public view of an account.
func (s *Service) GetUser(id int) (*PublicUser, error) {
	u, ok, err := s.users.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	public := u.Public()
	return &public, nil
}
