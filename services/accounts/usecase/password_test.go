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

func TestForgotPassword_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	email := "asha@example.com"
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), email).
		Return(&models.User{Email: email}, nil)

	var issuedOTP string
	mockRepo.EXPECT().ReplacePasswordReset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reset *models.PasswordReset) error {
			issuedOTP = reset.OTP
			return nil
		})
	mockGW.EXPECT().SendPasswordResetOTP(email, gomock.Any()).
		DoAndReturn(func(_, otp string) error {
			assert.Equal(t, issuedOTP, otp)
			return nil
		})

	// Act
	err := uc.ForgotPassword(context.Background(), email)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, issuedOTP, 6)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, fmt.Errorf("%w: user not found", models.ErrNotFound))

	// Act
	err := uc.ForgotPassword(context.Background(), "nobody@example.com")

	// Assert: no OTP record and no mail on unknown accounts
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestResetPassword_RecordsOldHash(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "asha@example.com",
		Password: "$2a$11$oldhash",
	}

	req := &models.ResetPasswordRequest{
		Email:       user.Email,
		OTP:         "482913",
		NewPassword: "N3w#Secret",
	}

	mockRepo.EXPECT().GetActivePasswordReset(gomock.Any(), user.Email, "482913").
		Return(&models.PasswordReset{Email: user.Email, OTP: "482913"}, nil)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	mockRepo.EXPECT().AddUsedPassword(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.UsedPassword) error {
			assert.Equal(t, "$2a$11$oldhash", record.Password)
			return nil
		})
	mockRepo.EXPECT().SetPasswordByEmail(gomock.Any(), user.Email, gomock.Any()).Return(nil)

	// Act
	err := uc.ResetPassword(context.Background(), req)

	// Assert
	assert.NoError(t, err)
}

func TestResetPassword_ExpiredOTP(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	req := &models.ResetPasswordRequest{
		Email:       "asha@example.com",
		OTP:         "000000",
		NewPassword: "N3w#Secret",
	}

	mockRepo.EXPECT().GetActivePasswordReset(gomock.Any(), req.Email, "000000").
		Return(nil, fmt.Errorf("%w: invalid or expired OTP", models.ErrNotFound))

	// Act
	err := uc.ResetPassword(context.Background(), req)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestCheckUsedPassword_Reused(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	oldHash, err := utils.HashPassword("Old#Pass1", utils.HashCost)
	assert.NoError(t, err)

	mockRepo.EXPECT().ListUsedPasswords(gomock.Any(), "asha@example.com").
		Return([]models.UsedPassword{{Password: oldHash}}, nil)

	// Act
	err = uc.CheckUsedPassword(context.Background(), "asha@example.com", "Old#Pass1")

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrConflict))
}

func TestCheckUsedPassword_Fresh(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	oldHash, err := utils.HashPassword("Old#Pass1", utils.HashCost)
	assert.NoError(t, err)

	mockRepo.EXPECT().ListUsedPasswords(gomock.Any(), "asha@example.com").
		Return([]models.UsedPassword{{Password: oldHash}}, nil)

	// Act
	err = uc.CheckUsedPassword(context.Background(), "asha@example.com", "Br4nd#New1")

	// Assert
	assert.NoError(t, err)
}

func TestUpdateProfile_WrongOldPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	hash, err := utils.HashPassword("Real#Pass1", utils.HashCost)
	assert.NoError(t, err)

	actor := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "asha@example.com",
		Password: hash,
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), actor.ID.Hex()).Return(actor, nil)

	// Act
	err = uc.UpdateProfile(context.Background(), actor, &models.UpdateProfileRequest{
		OldPassword: "Wr0ng#Pass",
		NewPassword: "N3w#Secret",
	})

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnauthorized))
}

func TestUpdateProfile_SamePasswordRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	actor := &models.User{ID: primitive.NewObjectID()}

	// Act
	err := uc.UpdateProfile(context.Background(), actor, &models.UpdateProfileRequest{
		OldPassword: "Same#Pass1",
		NewPassword: "Same#Pass1",
	})

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestChangeUserPassword_ResellerOutOfScope(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	actor := &models.User{
		ID:           primitive.NewObjectID(),
		Role:         models.RoleReseller,
		ReferralCode: "rsl12345",
	}
	target := &models.User{
		ID:         primitive.NewObjectID(),
		ReferredBy: "otherrsl",
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), actor.ID.Hex()).Return(actor, nil)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), target.ID.Hex()).Return(target, nil)

	// Act
	err := uc.ChangeUserPassword(context.Background(), actor, target.ID.Hex(), "N3w#Secret")

	// Assert: out-of-scope reads as absent, not forbidden
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestChangeUserPassword_MemberForbidden(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	mockGW := mocks.NewMockMailGW(ctrl)
	uc := NewAccountUC(mockRepo, mockGW, testConfig())

	actor := &models.User{
		ID:   primitive.NewObjectID(),
		Role: models.RoleMember,
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), actor.ID.Hex()).Return(actor, nil)

	// Act
	err := uc.ChangeUserPassword(context.Background(), actor, primitive.NewObjectID().Hex(), "N3w#Secret")

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrPermission))
}
