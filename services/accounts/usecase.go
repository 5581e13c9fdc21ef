package accounts

import (
	"context"

	"github.com/calldeck/calldeck/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/calldeck/calldeck/services/accounts AccountUC

// AccountUC is the identity and hierarchy usecase interface
type AccountUC interface {
	// credentials
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserByIDAndEmail(ctx context.Context, id, email string) (*models.User, error)

	// password reset flow
	ForgotPassword(ctx context.Context, email string) error
	ValidateOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
	CheckUsedPassword(ctx context.Context, email, candidate string) error

	// self service
	GetProfile(ctx context.Context, actor *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, actor *models.User, req *models.UpdateProfileRequest) error

	// hierarchy
	CreateAccount(ctx context.Context, actor *models.User, req *models.CreateAccountRequest) (*models.User, error)
	ListUsers(ctx context.Context, actor *models.User) ([]models.UserView, error)
	ListMembers(ctx context.Context, actor *models.User) ([]models.UserView, error)
	UpdateUser(ctx context.Context, actor *models.User, targetID string, req *models.UpdateUserRequest) error
	ChangeUserPassword(ctx context.Context, actor *models.User, targetID, newPassword string) error
}
