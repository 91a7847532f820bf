package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/google/uuid"
	"github.com/leaddesk/leaddesk-api/internal/config"
	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	"github.com/leaddesk/leaddesk-api/internal/domain/repository"
	"github.com/leaddesk/leaddesk-api/pkg/apperror"
	"github.com/leaddesk/leaddesk-api/pkg/utils"
)

// AuthService handles login and staff account management. Two kinds of
// principals sign in: the configured bootstrap administrator (never a user
// row) and store-backed receptionists.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	admin      config.AdminConfig
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, admin config.AdminConfig) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		admin:      admin,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User        *entity.User `json:"user,omitempty"`
	Email       string       `json:"email"`
	Role        string       `json:"role"`
	AccessToken string       `json:"access_token"`
}

func (s *AuthService) isBootstrapAdmin(email, password string) bool {
	if s.admin.Email == "" || s.admin.Password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	return emailOK && passwordOK
}

// Login authenticates a principal and returns a bearer token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if s.isBootstrapAdmin(input.Email, input.Password) {
		token, err := s.jwtManager.GenerateAccessToken(uuid.Nil, s.admin.Email, entity.RoleAdmin)
		if err != nil {
			return nil, err
		}
		return &LoginOutput{
			Email:       s.admin.Email,
			Role:        entity.RoleAdmin,
			AccessToken: token,
		}, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:        user,
		Email:       user.Email,
		Role:        user.Role,
		AccessToken: token,
	}, nil
}

// CreateUserInput represents the staff account creation payload
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// CreateUser creates a receptionist account (admin only at the boundary)
func (s *AuthService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashed,
		Role:      entity.RoleReceptionist,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperror.NewConflictError("Email already registered")
		}
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a staff account by ID
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers returns all staff accounts
func (s *AuthService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}
