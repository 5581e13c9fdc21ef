package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/calldeck/calldeck/services/accounts/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:             "test-secret",
			Issuer:             "calldeck-test",
			Expiration:         24,
			RememberExpiration: 720,
		},
		OTP: models.OTPConfig{
			Length:     6,
			TTLMinutes: 10,
		},
	}
}

func TestSignup_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	req := &models.SignupRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "Str0ng#Pass",
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).
		Return(nil, fmt.Errorf("%w: user not found", models.ErrNotFound))
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = primitive.NewObjectID()
			return nil
		})

	// Act
	resp, err := uc.Signup(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Empty(t, resp.User.ReferralCode)
}

func TestSignup_ResellerGetsReferralCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	req := &models.SignupRequest{
		Name:     "Reseller One",
		Email:    "reseller@example.com",
		Password: "Str0ng#Pass",
		Role:     models.RoleReseller,
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).
		Return(nil, fmt.Errorf("%w: user not found", models.ErrNotFound))
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	resp, err := uc.Signup(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, resp.User.ReferralCode, utils.ReferralCodeLength)
	assert.Equal(t, resp.User.ReferralCode, resp.ReferralCode)
}

func TestSignup_WithReferralCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	req := &models.SignupRequest{
		Name:         "Referred User",
		Email:        "referred@example.com",
		Password:     "Str0ng#Pass",
		ReferralCode: "ab12cd34",
	}

	referrer := &models.User{
		ID:           primitive.NewObjectID(),
		Role:         models.RoleReseller,
		ReferralCode: "ab12cd34",
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).
		Return(nil, fmt.Errorf("%w: user not found", models.ErrNotFound))
	mockRepo.EXPECT().GetUserByReferralCode(gomock.Any(), "ab12cd34").Return(referrer, nil)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	resp, err := uc.Signup(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "ab12cd34", resp.User.ReferredBy)
}

func TestSignup_UnknownReferralCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	req := &models.SignupRequest{
		Name:         "Referred User",
		Email:        "referred@example.com",
		Password:     "Str0ng#Pass",
		ReferralCode: "nosuchcode",
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).
		Return(nil, fmt.Errorf("%w: user not found", models.ErrNotFound))
	mockRepo.EXPECT().GetUserByReferralCode(gomock.Any(), "nosuchcode").
		Return(nil, fmt.Errorf("%w: user not found", models.ErrNotFound))

	// Act
	_, err := uc.Signup(context.Background(), req)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	req := &models.SignupRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "Str0ng#Pass",
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).
		Return(&models.User{Email: req.Email}, nil)

	// Act
	_, err := uc.Signup(context.Background(), req)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrConflict))
}

func TestSignup_WeakPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	req := &models.SignupRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "alllowercase",
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).
		Return(nil, fmt.Errorf("%w: user not found", models.ErrNotFound))

	// Act
	_, err := uc.Signup(context.Background(), req)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	hash, err := utils.HashPassword("Str0ng#Pass", utils.HashCost)
	assert.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "asha@example.com",
		Password: hash,
		Role:     models.RoleUser,
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: "Str0ng#Pass",
	})

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	hash, err := utils.HashPassword("Str0ng#Pass", utils.HashCost)
	assert.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "asha@example.com",
		Password: hash,
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	// Act
	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: "Wr0ng#Pass",
	})

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnauthorized))
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, fmt.Errorf("%w: user not found", models.ErrNotFound))

	// Act
	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Str0ng#Pass",
	})

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
