package usecase

import (
	"context"
	"fmt"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/calldeck/calldeck/services/accounts"
)

// ensureReferralCode returns the user's referral code, generating and
// persisting one on first use so downline accounts can attach to it.
func (u *AccountUC) ensureReferralCode(ctx context.Context, user *models.User) (string, error) {
	if user.ReferralCode != "" {
		return user.ReferralCode, nil
	}

	code := utils.GenerateReferralCode()
	if err := u.accountRepo.AssignReferralCode(ctx, user.ID, code); err != nil {
		return "", err
	}
	user.ReferralCode = code
	return code, nil
}

// CreateAccount creates a subordinate account on behalf of the actor. The
// creation lattice decides how the new account is linked into the hierarchy;
// pairs outside the lattice are permission violations.
func (u *AccountUC) CreateAccount(ctx context.Context, actor *models.User, req *models.CreateAccountRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", models.ErrValidation)
	}
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: invalid role", models.ErrValidation)
	}

	// Authority comes from the stored record, not the session snapshot
	fresh, err := u.accountRepo.GetUserByID(ctx, actor.ID.Hex())
	if err != nil {
		return nil, err
	}

	policy, ok := lookupCreationPolicy(fresh.Role, req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot create %s accounts", models.ErrPermission, fresh.Role, req.Role)
	}

	if _, err := u.accountRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: user already registered", models.ErrConflict)
	}

	if err := utils.ValidatePasswordPolicy(req.Password); err != nil {
		return nil, err
	}

	var referredBy string
	switch policy.referredBy {
	case refActorCode:
		referredBy, err = u.ensureReferralCode(ctx, fresh)
		if err != nil {
			return nil, err
		}
	case refActorParent:
		referredBy = fresh.ReferredBy
	case refNamedUserCode:
		if req.UnderUserID == "" {
			return nil, fmt.Errorf("%w: underUserId is required", models.ErrValidation)
		}
		under, err := u.accountRepo.GetUserByID(ctx, req.UnderUserID)
		if err != nil {
			return nil, err
		}
		// A reseller may only place accounts under its own direct users
		if fresh.Role == models.RoleReseller && under.ReferredBy != fresh.ReferralCode {
			return nil, fmt.Errorf("%w: user not found", models.ErrNotFound)
		}
		referredBy, err = u.ensureReferralCode(ctx, under)
		if err != nil {
			return nil, err
		}
	}

	var referralCode string
	if policy.referralCode == codeFresh {
		referralCode = utils.GenerateReferralCode()
	}

	hash, err := utils.HashPassword(req.Password, utils.AdminHashCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hash,
		Role:         req.Role,
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
	}

	if err := u.accountRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if policy.supervise {
		if err := u.accountRepo.AddSupervisedMember(ctx, fresh.ID, user.ID); err != nil {
			return nil, err
		}
	}

	logger.Info("Subordinate account created",
		logger.String("actor_id", fresh.ID.Hex()),
		logger.String("actor_role", fresh.Role),
		logger.String("user_id", user.ID.Hex()),
		logger.String("role", user.Role))

	return user, nil
}

// ListUsers returns the accounts visible to the actor. Super admins see all
// resellers and top-level users, resellers their direct downline, users the
// peers and staff under the same referrer.
func (u *AccountUC) ListUsers(ctx context.Context, actor *models.User) ([]models.UserView, error) {
	fresh, err := u.accountRepo.GetUserByID(ctx, actor.ID.Hex())
	if err != nil {
		return nil, err
	}

	var filter accounts.UserFilter
	switch fresh.Role {
	case models.RoleSuperAdmin:
		filter.Roles = []string{models.RoleUser, models.RoleReseller}
	case models.RoleReseller:
		if fresh.ReferralCode == "" {
			return []models.UserView{}, nil
		}
		filter.ReferredBy = fresh.ReferralCode
	case models.RoleUser:
		if fresh.ReferredBy == "" {
			return []models.UserView{}, nil
		}
		filter.ReferredBy = fresh.ReferredBy
		filter.Roles = []string{models.RoleUser, models.RoleManager, models.RoleMember}
	default:
		return nil, fmt.Errorf("%w: role cannot list users", models.ErrPermission)
	}

	return u.accountRepo.ListUsers(ctx, filter)
}

// ListMembers returns the accounts referred by the actor's own code
func (u *AccountUC) ListMembers(ctx context.Context, actor *models.User) ([]models.UserView, error) {
	fresh, err := u.accountRepo.GetUserByID(ctx, actor.ID.Hex())
	if err != nil {
		return nil, err
	}

	// No code yet means nobody can have joined under this account
	if fresh.ReferralCode == "" {
		return []models.UserView{}, nil
	}

	return u.accountRepo.ListUsers(ctx, accounts.UserFilter{ReferredBy: fresh.ReferralCode})
}

// UpdateUser edits a subordinate account. Super admins may change name and
// role anywhere; resellers may rename accounts in their own subtree; anyone
// may rename themselves.
func (u *AccountUC) UpdateUser(ctx context.Context, actor *models.User, targetID string, req *models.UpdateUserRequest) error {
	if req.Name == "" && req.Role == "" {
		return fmt.Errorf("%w: nothing to update", models.ErrValidation)
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		return fmt.Errorf("%w: invalid role", models.ErrValidation)
	}

	fresh, err := u.accountRepo.GetUserByID(ctx, actor.ID.Hex())
	if err != nil {
		return err
	}

	target, err := u.accountRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}

	switch {
	case fresh.Role == models.RoleSuperAdmin:
		return u.accountRepo.UpdateUserFields(ctx, target.ID, "", req.Name, req.Role)
	case fresh.Role == models.RoleReseller:
		if req.Role != "" {
			return fmt.Errorf("%w: resellers cannot change roles", models.ErrPermission)
		}
		return u.accountRepo.UpdateUserFields(ctx, target.ID, fresh.ReferralCode, req.Name, "")
	case fresh.ID == target.ID:
		if req.Role != "" {
			return fmt.Errorf("%w: cannot change own role", models.ErrPermission)
		}
		return u.accountRepo.UpdateUserFields(ctx, target.ID, "", req.Name, "")
	default:
		return fmt.Errorf("%w: cannot update this user", models.ErrPermission)
	}
}
