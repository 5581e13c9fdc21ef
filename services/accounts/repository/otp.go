package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReplacePasswordReset deletes any previous reset record for the email and
// stores the new one, keeping a single active OTP per email.
func (r *AccountRepo) ReplacePasswordReset(ctx context.Context, reset *models.PasswordReset) error {
	if _, err := r.passwordResets.DeleteOne(ctx, bson.M{"email": reset.Email}); err != nil {
		return fmt.Errorf("failed to delete previous password reset: %w", err)
	}

	reset.ID = primitive.NewObjectID()
	reset.CreatedAt = time.Now()

	if _, err := r.passwordResets.InsertOne(ctx, reset); err != nil {
		return fmt.Errorf("failed to insert password reset: %w", err)
	}

	return nil
}

// GetActivePasswordReset returns the unexpired reset record matching the
// email and OTP, or ErrNotFound.
func (r *AccountRepo) GetActivePasswordReset(ctx context.Context, email, otp string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.passwordResets.FindOne(ctx, bson.M{
		"email":     email,
		"otp":       otp,
		"expiresAt": bson.M{"$gt": time.Now()},
	}).Decode(&reset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: invalid or expired OTP", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get password reset: %w", err)
	}

	return &reset, nil
}

// ListUsedPasswords returns every historical credential hash for an email
func (r *AccountRepo) ListUsedPasswords(ctx context.Context, email string) ([]models.UsedPassword, error) {
	cursor, err := r.usedPasswords.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list used passwords: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.UsedPassword
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode used passwords: %w", err)
	}

	return records, nil
}

// AddUsedPassword appends a credential hash to the history
func (r *AccountRepo) AddUsedPassword(ctx context.Context, record *models.UsedPassword) error {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()

	if _, err := r.usedPasswords.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert used password: %w", err)
	}

	return nil
}
