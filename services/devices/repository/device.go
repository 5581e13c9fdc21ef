package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// liveStatusTTL bounds how long a device counts as online after its last push
const liveStatusTTL = 5 * time.Minute

func liveStatusKey(deviceID primitive.ObjectID) string {
	return fmt.Sprintf("device:live:%s", deviceID.Hex())
}

// CreateDevice inserts a device record. The caller reserves the ObjectID so
// the webhook URL can be derived before the write.
func (r *DeviceRepo) CreateDevice(ctx context.Context, device *models.Device) error {
	now := time.Now()
	device.CreatedAt = now
	device.UpdatedAt = now

	if _, err := r.devices.InsertOne(ctx, device); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: device already registered", models.ErrConflict)
		}
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

// GetDeviceByID returns a live (not soft deleted) device
func (r *DeviceRepo) GetDeviceByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error) {
	return r.getDeviceByFilter(ctx, bson.M{"_id": id, "deletedAt": nil})
}

// GetDeviceByName returns an owner's live device by its display name
func (r *DeviceRepo) GetDeviceByName(ctx context.Context, ownerID primitive.ObjectID, name string) (*models.Device, error) {
	return r.getDeviceByFilter(ctx, bson.M{
		"userId":     ownerID,
		"deviceName": name,
		"deletedAt":  nil,
	})
}

func (r *DeviceRepo) getDeviceByFilter(ctx context.Context, filter bson.M) (*models.Device, error) {
	var device models.Device
	err := r.devices.FindOne(ctx, filter).Decode(&device)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: device not found", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	return &device, nil
}

// ListDevicesByOwner returns the owner's live devices, newest first
func (r *DeviceRepo) ListDevicesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Device, error) {
	cursor, err := r.devices.Find(ctx,
		bson.M{"userId": ownerID, "deletedAt": nil},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer cursor.Close(ctx)

	var result []models.Device
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode devices: %w", err)
	}
	return result, nil
}

// SoftDeleteDevice marks the device deleted. A device owned by someone else
// does not match and reads as absent.
func (r *DeviceRepo) SoftDeleteDevice(ctx context.Context, ownerID, deviceID primitive.ObjectID) error {
	now := time.Now()
	result, err := r.devices.UpdateOne(ctx,
		bson.M{"_id": deviceID, "userId": ownerID, "deletedAt": nil},
		bson.M{"$set": bson.M{"deletedAt": now, "updatedAt": now}},
	)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: device not found", models.ErrNotFound)
	}

	if err := r.redis.Delete(ctx, liveStatusKey(deviceID)); err != nil {
		logger.Warn("Failed to clear device live status",
			logger.ErrorField(err),
			logger.String("device_id", deviceID.Hex()))
	}
	return nil
}

// MarkDeviceSeen records a webhook push: status goes online, lastPing moves,
// and the redis live-status key is refreshed.
func (r *DeviceRepo) MarkDeviceSeen(ctx context.Context, deviceID primitive.ObjectID, at time.Time) error {
	_, err := r.devices.UpdateOne(ctx,
		bson.M{"_id": deviceID, "deletedAt": nil},
		bson.M{"$set": bson.M{
			"status":    models.DeviceOnline,
			"lastPing":  at,
			"updatedAt": at,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update device ping: %w", err)
	}

	if err := r.redis.Set(ctx, liveStatusKey(deviceID), models.DeviceOnline, liveStatusTTL); err != nil {
		// The mongo record is authoritative; the cache is best effort
		logger.Warn("Failed to refresh device live status",
			logger.ErrorField(err),
			logger.String("device_id", deviceID.Hex()))
	}
	return nil
}
