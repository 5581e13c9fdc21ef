package models

// SignupRequest is the self-service registration payload
type SignupRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ReferralCode string `json:"referral_code,omitempty"`
}

// LoginRequest is the credential login payload
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// CreateAccountRequest is the payload used by superior actors creating
// accounts below themselves (resellers, users, managers, members).
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	// UnderUserID names the subordinate user a manager/member is created
	// under when the actor is elevated (super_admin, reseller).
	UnderUserID string `json:"underUserId,omitempty"`
}

// UpdateUserRequest is the profile update payload for the admin surface
type UpdateUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// ChangePasswordRequest carries a new password set by a superior actor
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// UpdateProfileRequest is the self-service profile update payload
type UpdateProfileRequest struct {
	Name        string `json:"name,omitempty"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ForgotPasswordRequest starts the OTP reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ValidateOTPRequest checks an OTP without consuming it
type ValidateOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest completes the OTP reset flow
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// CheckUsedPasswordRequest asks whether a candidate password was used before
type CheckUsedPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}
