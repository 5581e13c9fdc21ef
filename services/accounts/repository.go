package accounts

import (
	"context"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/calldeck/calldeck/services/accounts AccountRepo

// UserFilter narrows user listings to a visibility scope
type UserFilter struct {
	Roles      []string
	ReferredBy string
}

// AccountRepo is the identity store interface
type AccountRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByIDAndEmail(ctx context.Context, id, email string) (*models.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*models.User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]models.UserView, error)

	// UpdateUserFields applies name/role changes. A non-empty scopeReferredBy
	// restricts the match to that subtree; no match reports ErrNotFound.
	UpdateUserFields(ctx context.Context, id primitive.ObjectID, scopeReferredBy, name, role string) error
	UpdateUserPassword(ctx context.Context, id primitive.ObjectID, scopeReferredBy, passwordHash string) error
	SetPasswordByEmail(ctx context.Context, email, passwordHash string) error
	AssignReferralCode(ctx context.Context, id primitive.ObjectID, code string) error

	// password history
	ListUsedPasswords(ctx context.Context, email string) ([]models.UsedPassword, error)
	AddUsedPassword(ctx context.Context, record *models.UsedPassword) error

	// password reset OTPs, one active record per email
	ReplacePasswordReset(ctx context.Context, reset *models.PasswordReset) error
	GetActivePasswordReset(ctx context.Context, email, otp string) (*models.PasswordReset, error)

	// supervision index
	AddSupervisedMember(ctx context.Context, managerID, memberID primitive.ObjectID) error
}
