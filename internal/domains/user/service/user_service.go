package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/moha528/quickpress-back/internal/domains/user"
	"github.com/moha528/quickpress-back/pkg/jwt"
)

const bcryptCost = 10

type userService struct {
	repo   user.Repository
	tokens *jwt.Manager
}

// NewUserService wires the credential store and the token manager.
func NewUserService(repo user.Repository, tokens *jwt.Manager) user.Service {
	return &userService{repo: repo, tokens: tokens}
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*user.DTO, string, error) {
	req := user.LoginRequest{Username: username, Password: password}
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, "", user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", user.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, u.Username, string(u.Role))
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	dto := u.DTO()
	return &dto, token, nil
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.DTO, string, error) {
	dto, err := s.Create(ctx, user.CreateRequest(req))
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(dto.ID, dto.Username, dto.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return dto, token, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*user.DTO, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := u.DTO()
	return &dto, nil
}

func (s *userService) List(ctx context.Context) ([]user.DTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]user.DTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].DTO())
	}
	return dtos, nil
}

func (s *userService) Create(ctx context.Context, req user.CreateRequest) (*user.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := user.RoleVisitor
	if req.Role != "" {
		parsed, ok := user.ParseRole(req.Role)
		if !ok {
			return nil, user.ErrInvalidRole
		}
		role = parsed
	}

	// Pre-check for a friendlier error; the unique index is the authority.
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, user.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if _, err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	dto := u.DTO()
	return &dto, nil
}

func (s *userService) Update(ctx context.Context, id int64, req user.UpdateRequest) (*user.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" && req.Username != u.Username {
		if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
			return nil, user.ErrUsernameTaken
		}
		u.Username = req.Username
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if req.Role != "" {
		role, ok := user.ParseRole(req.Role)
		if !ok {
			return nil, user.ErrInvalidRole
		}
		u.Role = role
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	dto := u.DTO()
	return &dto, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
