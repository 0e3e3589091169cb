package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"restromart/internal/auth"
	"restromart/internal/cache"
	apperrors "restromart/internal/errors"
	"restromart/internal/model"
	"restromart/internal/policy"
	"restromart/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// LoginResult is the identity summary returned after a successful login.
type LoginResult struct {
	Token    string     `json:"token"`
	ID       uuid.UUID  `json:"_id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	MobileNo string     `json:"mobile_no"`
}

// ProfileUpdate carries the only fields the self-update path may touch.
// Role and password are unreachable here.
type ProfileUpdate struct {
	Name     string
	MobileNo string
}

// UserService handles registration, login, and user management.
type UserService interface {
	Register(ctx context.Context, name, email, password, mobileNo string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ListUsers(ctx context.Context, identity *auth.Identity) ([]model.User, error)
	GetProfile(ctx context.Context, identity *auth.Identity) (*model.User, error)
	UpdateProfile(ctx context.Context, identity *auth.Identity, targetID uuid.UUID, update ProfileUpdate) (*model.User, error)
	ChangePassword(ctx context.Context, identity *auth.Identity, oldPassword, newPassword string) error
	DeleteUser(ctx context.Context, identity *auth.Identity, targetID uuid.UUID) error
}

type userService struct {
	repo       repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) UserService {
	return &userService{repo: repo, jwtService: jwtService, cache: cache}
}

func profileCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:profile:%s", id)
}

// Register creates a new account with role user. Email matching is
// case-insensitive; a colliding email fails with ErrConflict and mutates
// nothing.
func (s *userService) Register(ctx context.Context, name, email, password, mobileNo string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrConflict
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		MobileNo:     mobileNo,
		Role:         model.RoleUser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token:    token,
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		MobileNo: user.MobileNo,
	}, nil
}

func (s *userService) ListUsers(ctx context.Context, identity *auth.Identity) ([]model.User, error) {
	if err := policy.Authorize(identity, policy.ActionListUsers, uuid.Nil); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *userService) GetProfile(ctx context.Context, identity *auth.Identity) (*model.User, error) {
	if identity == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := policy.Authorize(identity, policy.ActionGetProfile, identity.UserID); err != nil {
		return nil, err
	}

	if data, _ := s.cache.Get(ctx, profileCacheKey(identity.UserID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, profileCacheKey(user.ID), payload, profileCacheTTL)
	}
	return user, nil
}

// UpdateProfile mutates name and mobile only, and only for the caller's
// own record.
func (s *userService) UpdateProfile(ctx context.Context, identity *auth.Identity, targetID uuid.UUID, update ProfileUpdate) (*model.User, error) {
	if err := policy.Authorize(identity, policy.ActionUpdateProfile, targetID); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.MobileNo != "" {
		user.MobileNo = update.MobileNo
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, profileCacheKey(user.ID))
	return user, nil
}

// ChangePassword re-verifies the current password even though the caller
// is already authenticated: a stolen but unexpired token alone must not
// suffice to lock the owner out.
func (s *userService) ChangePassword(ctx context.Context, identity *auth.Identity, oldPassword, newPassword string) error {
	if identity == nil {
		return apperrors.ErrUnauthenticated
	}
	if err := policy.Authorize(identity, policy.ActionChangePassword, identity.UserID); err != nil {
		return err
	}

	user, err := s.repo.FindByID(ctx, identity.UserID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(oldPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, profileCacheKey(user.ID))
	return nil
}

// DeleteUser removes the record. Outstanding tokens for the subject die at
// the middleware's store lookup on their next use.
func (s *userService) DeleteUser(ctx context.Context, identity *auth.Identity, targetID uuid.UUID) error {
	if err := policy.Authorize(identity, policy.ActionDeleteUser, uuid.Nil); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, profileCacheKey(targetID))
	return nil
}
