package service

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/apperr"
	"portfolio-api/internal/core/auth"
	"portfolio-api/internal/domain"
	"portfolio-api/pkg/utils"
)

// Login failures deliberately use one message so callers can't probe which
// part was wrong.
const badCredentials = "email or password is incorrect"

type UserService struct {
	users domain.UserRepository
	jwt   *auth.JWTer
}

func NewUserService(users domain.UserRepository, jwt *auth.JWTer) *UserService {
	return &UserService{users: users, jwt: jwt}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role // empty defaults to user
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, apperr.BadRequest("invalid role")
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Username:     strings.ToLower(strings.TrimSpace(in.Username)),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: utils.HashPassword(in.Password),
		Role:         role,
		Image:        domain.DefaultAvatar,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperr.Conflict("Username or email already exists")
		}
		return nil, apperr.Internal("could not create user", err)
	}
	return u, nil
}

type LoginResult struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Token    string      `json:"token"`
	Image    string      `json:"image"`
}

func (s *UserService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	u, err := s.users.FindByIdentifier(ctx, identifier)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound(badCredentials)
	}
	if err != nil {
		return nil, apperr.Internal("could not look up account", err)
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, apperr.BadRequest(badCredentials)
	}
	token, err := s.jwt.Issue(u.Username, u.Role)
	if err != nil {
		return nil, apperr.Internal("could not issue token", err)
	}
	return &LoginResult{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Token:    token,
		Image:    u.Image,
	}, nil
}
