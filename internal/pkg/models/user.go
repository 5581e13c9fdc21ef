package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values form the capability lattice:
// super_admin > reseller > user > {manager, member}.
const (
	RoleSuperAdmin = "super_admin"
	RoleReseller   = "reseller"
	RoleUser       = "user"
	RoleManager    = "manager"
	RoleMember     = "member"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleReseller, RoleUser, RoleManager, RoleMember:
		return true
	}
	return false
}

// User represents an account in the referral hierarchy. ReferredBy holds the
// creator's referral code; ReferralCode is assigned lazily, once the account
// first creates subordinates of its own.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	ReferralCode string             `bson:"referral_code,omitempty" json:"referral_code,omitempty"`
	ReferredBy   string             `bson:"referred_by,omitempty" json:"referred_by,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserView is the projection returned by listing endpoints
type UserView struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Role       string             `bson:"role" json:"role"`
	ReferredBy string             `bson:"referred_by,omitempty" json:"referred_by,omitempty"`
}

// UsedPassword is a historical credential hash, kept append-only so password
// reuse can be rejected.
type UsedPassword struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ManagerMember records which users a manager directly supervises
type ManagerMember struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Manager   primitive.ObjectID   `bson:"manager" json:"manager"`
	Members   []primitive.ObjectID `bson:"members" json:"members"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// AuthResponse is returned on successful signup/login
type AuthResponse struct {
	Token        string    `json:"-"`
	User         *User     `json:"user"`
	ReferralCode string    `json:"referral_code,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
