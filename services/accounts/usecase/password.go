package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
)

// ForgotPassword issues a one-time reset code for the email and hands it to
// the mail gateway. Any previously issued code for the email is discarded.
func (u *AccountUC) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", models.ErrValidation)
	}

	if _, err := u.accountRepo.GetUserByEmail(ctx, email); err != nil {
		return err
	}

	otp := utils.GenerateOTP(u.cfg.OTP.Length)
	reset := &models.PasswordReset{
		Email:     email,
		OTP:       otp,
		ExpiresAt: time.Now().Add(time.Duration(u.cfg.OTP.TTLMinutes) * time.Minute),
	}

	if err := u.accountRepo.ReplacePasswordReset(ctx, reset); err != nil {
		return err
	}

	if err := u.mailGW.SendPasswordResetOTP(email, otp); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	logger.Info("Password reset OTP issued", logger.String("email", email))
	return nil
}

// ValidateOTP checks that an unexpired reset code exists without consuming it
func (u *AccountUC) ValidateOTP(ctx context.Context, email, otp string) error {
	if email == "" || otp == "" {
		return fmt.Errorf("%w: email and otp are required", models.ErrValidation)
	}

	_, err := u.accountRepo.GetActivePasswordReset(ctx, email, otp)
	return err
}

// ResetPassword completes the OTP flow: the current hash moves into the
// password history and the new credential replaces it.
func (u *AccountUC) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		return fmt.Errorf("%w: email, otp and newPassword are required", models.ErrValidation)
	}

	if _, err := u.accountRepo.GetActivePasswordReset(ctx, req.Email, req.OTP); err != nil {
		return err
	}

	if err := utils.ValidatePasswordPolicy(req.NewPassword); err != nil {
		return err
	}

	user, err := u.accountRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if err := u.accountRepo.AddUsedPassword(ctx, &models.UsedPassword{
		UserID:   user.ID,
		Email:    user.Email,
		Password: user.Password,
	}); err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword, utils.AdminHashCost)
	if err != nil {
		return err
	}

	return u.accountRepo.SetPasswordByEmail(ctx, req.Email, hash)
}

// CheckUsedPassword compares the candidate against every historical hash for
// the email. A match is a policy violation; no record is written here.
func (u *AccountUC) CheckUsedPassword(ctx context.Context, email, candidate string) error {
	if email == "" || candidate == "" {
		return fmt.Errorf("%w: email and newPassword are required", models.ErrValidation)
	}

	records, err := u.accountRepo.ListUsedPasswords(ctx, email)
	if err != nil {
		return err
	}

	for _, record := range records {
		if utils.ComparePassword(record.Password, candidate) {
			return fmt.Errorf("%w: this password has been used before, please choose a different one", models.ErrConflict)
		}
	}

	return nil
}

// UpdateProfile changes the actor's own name and password. The old password
// must verify against the current hash, which then joins the history.
func (u *AccountUC) UpdateProfile(ctx context.Context, actor *models.User, req *models.UpdateProfileRequest) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return fmt.Errorf("%w: old password and new password are required", models.ErrValidation)
	}
	if req.OldPassword == req.NewPassword {
		return fmt.Errorf("%w: new password cannot be the same", models.ErrValidation)
	}

	// Re-fetch so the comparison runs against the current credential
	user, err := u.accountRepo.GetUserByID(ctx, actor.ID.Hex())
	if err != nil {
		return err
	}

	if !utils.ComparePassword(user.Password, req.OldPassword) {
		return fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	if err := utils.ValidatePasswordPolicy(req.NewPassword); err != nil {
		return err
	}

	if err := u.accountRepo.AddUsedPassword(ctx, &models.UsedPassword{
		UserID:   user.ID,
		Email:    user.Email,
		Password: user.Password,
	}); err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword, utils.HashCost)
	if err != nil {
		return err
	}

	if err := u.accountRepo.UpdateUserPassword(ctx, user.ID, "", hash); err != nil {
		return err
	}

	if req.Name != "" {
		if err := u.accountRepo.UpdateUserFields(ctx, user.ID, "", req.Name, ""); err != nil {
			return err
		}
	}

	return nil
}

// ChangeUserPassword sets a new password for a subordinate account.
// Authority is re-derived from the actor's stored role: super_admin reaches
// anyone, a reseller only its own subtree.
func (u *AccountUC) ChangeUserPassword(ctx context.Context, actor *models.User, targetID, newPassword string) error {
	if err := utils.ValidatePasswordPolicy(newPassword); err != nil {
		return err
	}

	fresh, err := u.accountRepo.GetUserByID(ctx, actor.ID.Hex())
	if err != nil {
		return err
	}

	var scope string
	switch fresh.Role {
	case models.RoleSuperAdmin:
		scope = ""
	case models.RoleReseller:
		scope = fresh.ReferralCode
	default:
		return fmt.Errorf("%w: only super admins and resellers can change passwords", models.ErrPermission)
	}

	target, err := u.accountRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if scope != "" && target.ReferredBy != scope {
		// Out-of-scope targets are reported as absent, not forbidden
		return fmt.Errorf("%w: user not found", models.ErrNotFound)
	}

	if err := u.accountRepo.AddUsedPassword(ctx, &models.UsedPassword{
		UserID:   target.ID,
		Email:    target.Email,
		Password: target.Password,
	}); err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword, utils.AdminHashCost)
	if err != nil {
		return err
	}

	return u.accountRepo.UpdateUserPassword(ctx, target.ID, scope, hash)
}
