package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/services/accounts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateUser inserts a new user. A duplicate email reports ErrConflict.
func (r *AccountRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: user already registered", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// getUserByFilter is a helper to fetch a single user by an arbitrary filter
func (r *AccountRepo) getUserByFilter(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user not found", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by its hex id
func (r *AccountRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrValidation)
	}
	return r.getUserByFilter(ctx, bson.M{"_id": oid})
}

// GetUserByEmail retrieves a user by email
func (r *AccountRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByFilter(ctx, bson.M{"email": email})
}

// GetUserByIDAndEmail retrieves a user matching both id and email, used when
// resolving a session back to its current account record.
func (r *AccountRepo) GetUserByIDAndEmail(ctx context.Context, id, email string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrValidation)
	}
	return r.getUserByFilter(ctx, bson.M{"_id": oid, "email": email})
}

// GetUserByReferralCode retrieves the owner of a referral code
func (r *AccountRepo) GetUserByReferralCode(ctx context.Context, code string) (*models.User, error) {
	return r.getUserByFilter(ctx, bson.M{"referral_code": code})
}

// ListUsers returns the user projections matching the visibility filter
func (r *AccountRepo) ListUsers(ctx context.Context, filter accounts.UserFilter) ([]models.UserView, error) {
	query := bson.M{}
	if len(filter.Roles) > 0 {
		query["role"] = bson.M{"$in": filter.Roles}
	}
	if filter.ReferredBy != "" {
		query["referred_by"] = filter.ReferredBy
	}

	projection := bson.M{"name": 1, "email": 1, "role": 1, "referred_by": 1}
	cursor, err := r.users.Find(ctx, query, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.UserView
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// UpdateUserFields applies name/role changes within the given scope
func (r *AccountRepo) UpdateUserFields(ctx context.Context, id primitive.ObjectID, scopeReferredBy, name, role string) error {
	query := bson.M{"_id": id}
	if scopeReferredBy != "" {
		query["referred_by"] = scopeReferredBy
	}

	set := bson.M{"updatedAt": time.Now()}
	if name != "" {
		set["name"] = name
	}
	if role != "" {
		set["role"] = role
	}

	result, err := r.users.UpdateOne(ctx, query, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user not found", models.ErrNotFound)
	}

	return nil
}

// UpdateUserPassword replaces the credential hash within the given scope
func (r *AccountRepo) UpdateUserPassword(ctx context.Context, id primitive.ObjectID, scopeReferredBy, passwordHash string) error {
	query := bson.M{"_id": id}
	if scopeReferredBy != "" {
		query["referred_by"] = scopeReferredBy
	}

	result, err := r.users.UpdateOne(ctx, query, bson.M{"$set": bson.M{
		"password":  passwordHash,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user not found", models.ErrNotFound)
	}

	return nil
}

// SetPasswordByEmail replaces the credential hash for an email, used by the
// OTP reset flow where no session exists.
func (r *AccountRepo) SetPasswordByEmail(ctx context.Context, email, passwordHash string) error {
	result, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"password":  passwordHash,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user not found", models.ErrNotFound)
	}

	return nil
}

// AssignReferralCode persists a lazily generated referral code
func (r *AccountRepo) AssignReferralCode(ctx context.Context, id primitive.ObjectID, code string) error {
	result, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"referral_code": code,
		"updatedAt":     time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to assign referral code: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user not found", models.ErrNotFound)
	}

	return nil
}

// AddSupervisedMember records a member under its manager in the supervision
// index, creating the manager's document on first use.
func (r *AccountRepo) AddSupervisedMember(ctx context.Context, managerID, memberID primitive.ObjectID) error {
	now := time.Now()
	_, err := r.managerMembers.UpdateOne(ctx,
		bson.M{"manager": managerID},
		bson.M{
			"$addToSet": bson.M{"members": memberID},
			"$set":      bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{
				"manager":   managerID,
				"createdAt": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to record supervised member: %w", err)
	}

	return nil
}
