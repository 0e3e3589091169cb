package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restromart/internal/auth"
	apperrors "restromart/internal/errors"
	"restromart/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", time.Hour, 0)
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "testuser@gmail.com",
			password: "Test@123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "testuser@gmail.com").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "email is lowercased before lookup",
			email:    "TestUser@Gmail.com",
			password: "Test@123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "testuser@gmail.com").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "email already exists",
			email:    "existing@gmail.com",
			password: "Test@123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@gmail.com").Return(&model.User{Email: "existing@gmail.com"}, nil)
			},
			expectedError: apperrors.ErrConflict,
		},
		{
			name:     "empty password rejected before any write",
			email:    "testuser@gmail.com",
			password: "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "testuser@gmail.com").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, newTestJWTService(), nil)
			user, err := svc.Register(context.Background(), "Test User", tt.email, tt.password, "9800000000")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	userID := uuid.New()
	hash, err := auth.HashPassword("Test@123")
	assert.NoError(t, err)

	stored := &model.User{
		ID:           userID,
		Name:         "Test User",
		Email:        "testuser@gmail.com",
		PasswordHash: hash,
		Role:         model.RoleUser,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "testuser@gmail.com",
			password: "Test@123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "testuser@gmail.com").Return(stored, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@gmail.com",
			password: "Test@123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@gmail.com").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "testuser@gmail.com",
			password: "WrongPass",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "testuser@gmail.com").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := newTestJWTService()
			svc := NewUserService(mockRepo, jwtService, nil)
			result, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				// Unknown email and wrong password are the same error.
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, userID, result.ID)
				assert.NotEmpty(t, result.Token)

				claims, err := jwtService.Validate(result.Token)
				assert.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, model.RoleUser, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	userID := uuid.New()
	oldHash, err := auth.HashPassword("Test@123")
	assert.NoError(t, err)

	identity := &auth.Identity{UserID: userID, Role: model.RoleUser}

	tests := []struct {
		name          string
		oldPassword   string
		newPassword   string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:        "successful change",
			oldPassword: "Test@123",
			newPassword: "NewPass@123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.User{
					ID:           userID,
					PasswordHash: oldHash,
					Role:         model.RoleUser,
				}, nil)
				m.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					// Old password must no longer verify, new one must.
					return !auth.CheckPassword("Test@123", u.PasswordHash) &&
						auth.CheckPassword("NewPass@123", u.PasswordHash)
				})).Return(nil)
			},
		},
		{
			name:        "wrong old password",
			oldPassword: "WrongPass",
			newPassword: "NewPass@123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.User{
					ID:           userID,
					PasswordHash: oldHash,
					Role:         model.RoleUser,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, newTestJWTService(), nil)
			err := svc.ChangePassword(context.Background(), identity, tt.oldPassword, tt.newPassword)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ChangePassword_Unauthenticated(t *testing.T) {
	svc := NewUserService(new(MockUserRepository), newTestJWTService(), nil)
	err := svc.ChangePassword(context.Background(), nil, "Test@123", "NewPass@123")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestUserService_ListUsers(t *testing.T) {
	adminIdentity := &auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}
	userIdentity := &auth.Identity{UserID: uuid.New(), Role: model.RoleUser}

	t.Run("admin allowed", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("List", mock.Anything).Return([]model.User{{Name: "Test User"}}, nil)

		svc := NewUserService(mockRepo, newTestJWTService(), nil)
		users, err := svc.ListUsers(context.Background(), adminIdentity)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-admin forbidden, store untouched", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, newTestJWTService(), nil)
		users, err := svc.ListUsers(context.Background(), userIdentity)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Nil(t, users)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	identity := &auth.Identity{UserID: userID, Role: model.RoleUser}

	t.Run("self update changes name and mobile only", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:           userID,
			Name:         "Test User",
			Email:        "testuser@gmail.com",
			PasswordHash: "hash",
			Role:         model.RoleUser,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Name == "Updated Test User" &&
				u.Role == model.RoleUser &&
				u.PasswordHash == "hash"
		})).Return(nil)

		svc := NewUserService(mockRepo, newTestJWTService(), nil)
		user, err := svc.UpdateProfile(context.Background(), identity, userID, ProfileUpdate{Name: "Updated Test User"})
		assert.NoError(t, err)
		assert.Equal(t, "Updated Test User", user.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("updating another user is forbidden", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, newTestJWTService(), nil)
		_, err := svc.UpdateProfile(context.Background(), identity, uuid.New(), ProfileUpdate{Name: "X"})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	adminIdentity := &auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}
	userIdentity := &auth.Identity{UserID: uuid.New(), Role: model.RoleUser}
	targetID := uuid.New()

	t.Run("admin deletes", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, targetID).Return(nil)

		svc := NewUserService(mockRepo, newTestJWTService(), nil)
		assert.NoError(t, svc.DeleteUser(context.Background(), adminIdentity, targetID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, newTestJWTService(), nil)
		err := svc.DeleteUser(context.Background(), userIdentity, targetID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing target", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, targetID).Return(apperrors.ErrNotFound)

		svc := NewUserService(mockRepo, newTestJWTService(), nil)
		err := svc.DeleteUser(context.Background(), adminIdentity, targetID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
