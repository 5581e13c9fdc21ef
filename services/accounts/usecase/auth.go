package usecase

import (
	"context"
	"fmt"

	jwtpkg "github.com/calldeck/calldeck/internal/pkg/jwt"
	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
)

// Signup registers a self-service account and opens a session for it.
// A reseller signup receives a fresh referral code; a user signup may name
// an existing referral code to join that reseller's subtree.
func (u *AccountUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", models.ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: invalid role", models.ErrValidation)
	}

	if _, err := u.accountRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: user already registered", models.ErrConflict)
	}

	if err := utils.ValidatePasswordPolicy(req.Password); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password, utils.HashCost)
	if err != nil {
		return nil, err
	}

	var referredBy, referralCode string
	if role == models.RoleReseller {
		referralCode = utils.GenerateReferralCode()
	} else if role == models.RoleUser && req.ReferralCode != "" {
		if _, err := u.accountRepo.GetUserByReferralCode(ctx, req.ReferralCode); err != nil {
			return nil, fmt.Errorf("%w: invalid referral code", models.ErrValidation)
		}
		referredBy = req.ReferralCode
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hash,
		Role:         role,
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
	}

	if err := u.accountRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, false, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Account created",
		logger.String("user_id", user.ID.Hex()),
		logger.String("role", user.Role))

	return &models.AuthResponse{
		Token:        token,
		User:         user,
		ReferralCode: referralCode,
		ExpiresAt:    expiresAt,
	}, nil
}

// Login verifies credentials and opens a session. An unknown email reports
// not found; a wrong password reports unauthorized.
func (u *AccountUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := u.accountRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !utils.ComparePassword(user.Password, req.Password) {
		return nil, fmt.Errorf("%w: invalid password", models.ErrUnauthorized)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, req.RememberMe, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GetUserByIDAndEmail resolves a session back to its current account record
func (u *AccountUC) GetUserByIDAndEmail(ctx context.Context, id, email string) (*models.User, error) {
	return u.accountRepo.GetUserByIDAndEmail(ctx, id, email)
}

// GetProfile returns the actor's own profile view
func (u *AccountUC) GetProfile(ctx context.Context, actor *models.User) (*models.User, error) {
	return u.accountRepo.GetUserByID(ctx, actor.ID.Hex())
}
