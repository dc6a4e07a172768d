package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vkarpovs/crudboard/internal/common"
	"github.com/vkarpovs/crudboard/internal/password"
	"github.com/vkarpovs/crudboard/internal/server/models"
	"github.com/vkarpovs/crudboard/internal/server/repositories/users"
	"github.com/vkarpovs/crudboard/internal/validation"
)

// UserService handles account registration and lookups. Credential-format
// validation happens here, before anything touches storage.
type UserService struct {
	users users.Repository
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(u users.Repository) *UserService {
	return &UserService{users: u}
}

// Register validates the nickname and password formats, checks email
// uniqueness, hashes the password, and persists the new user. The raw
// password never reaches the repository.
func (s *UserService) Register(ctx context.Context, nickname, email, rawPassword string) (*models.User, error) {
	if !validation.Nickname(nickname) {
		return nil, common.ErrInvalidNicknameFormat
	}

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if taken {
		return nil, common.ErrEmailAlreadyExists
	}

	if !validation.Password(rawPassword) {
		return nil, common.ErrInvalidPasswordFormat
	}

	hash, err := password.Hash(rawPassword)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.users.Create(ctx, &models.User{
		Nickname:     nickname,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// GetByID returns the user with the given id or common.ErrorNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// GetByEmail returns the user with the given email or common.ErrorNotFound.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
