package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"prismtasks/internal/auth"
	apperrors "prismtasks/internal/errors"
	"prismtasks/internal/model"
	"prismtasks/internal/repository"
)

// RegisterParams carries the fields accepted at registration. The role is
// always forced to "user"; admins are created out of band.
type RegisterParams struct {
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Password    string
	PhoneNumber string
}

// AuthService handles registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password after enforcing the
// complexity policy. The plaintext never reaches the repository.
func (s *authService) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	if err := auth.ValidatePasswordPolicy(params.Password); err != nil {
		return nil, apperrors.NewValidationError("password", err.Error())
	}

	taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, params.Username, params.Email)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if taken {
		return nil, apperrors.ErrUserExists
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     params.Username,
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: hash,
		Role:         model.RoleUser,
		PhoneNumber:  params.PhoneNumber,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Unique index races surface here rather than in the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a signed access token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user.Username, user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}

	return token, user, nil
}
