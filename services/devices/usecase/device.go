package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// webhookPathPrefix is the route devices push call events to, keyed by the
// device's own ID.
const webhookPathPrefix = "/webhook/call-log/"

// RegisterDevice creates a device for the actor. The ObjectID is reserved up
// front so the webhook URL lands in the same insert as the rest of the record.
func (u *DeviceUC) RegisterDevice(ctx context.Context, actor *models.User, req *models.DeviceRegistration) (*models.Device, error) {
	if req.DeviceName == "" {
		return nil, fmt.Errorf("%w: device name is required", models.ErrValidation)
	}
	if !models.ValidSendInterval(req.SendInterval) {
		return nil, fmt.Errorf("%w: send interval must be daily, weekly or monthly", models.ErrValidation)
	}

	// Names are unique per owner, not globally
	if _, err := u.deviceRepo.GetDeviceByName(ctx, actor.ID, req.DeviceName); err == nil {
		return nil, fmt.Errorf("%w: device name already in use", models.ErrConflict)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	id := primitive.NewObjectID()
	device := &models.Device{
		ID:           id,
		UserID:       actor.ID,
		DeviceName:   req.DeviceName,
		WebhookURL:   webhookPathPrefix + id.Hex(),
		SendInterval: req.SendInterval,
		Status:       models.DeviceOffline,
	}

	if err := u.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, err
	}

	logger.Info("Device registered",
		logger.String("device_id", id.Hex()),
		logger.String("user_id", actor.ID.Hex()),
		logger.String("device_name", req.DeviceName))

	return device, nil
}

// ListDevices returns the actor's devices with their ledger counters. A
// device with no traffic still appears, with both counters at zero.
func (u *DeviceUC) ListDevices(ctx context.Context, actor *models.User) ([]models.DeviceView, error) {
	registered, err := u.deviceRepo.ListDevicesByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := todayWindow(time.Now())

	views := make([]models.DeviceView, 0, len(registered))
	for _, device := range registered {
		today, err := u.callLogRepo.CountByDevice(ctx, device.ID, &dayStart, &dayEnd)
		if err != nil {
			return nil, err
		}
		overall, err := u.callLogRepo.CountByDevice(ctx, device.ID, nil, nil)
		if err != nil {
			return nil, err
		}
		views = append(views, models.DeviceView{
			Device:            device,
			TodayTotalCalls:   today,
			OverallTotalCalls: overall,
		})
	}
	return views, nil
}

// DeleteDevice soft deletes the actor's device. Someone else's device reads
// as absent.
func (u *DeviceUC) DeleteDevice(ctx context.Context, actor *models.User, deviceID string) error {
	id, err := primitive.ObjectIDFromHex(deviceID)
	if err != nil {
		return fmt.Errorf("%w: invalid device ID", models.ErrValidation)
	}

	if err := u.deviceRepo.SoftDeleteDevice(ctx, actor.ID, id); err != nil {
		return err
	}

	logger.Info("Device deleted",
		logger.String("device_id", deviceID),
		logger.String("user_id", actor.ID.Hex()))
	return nil
}

// todayWindow returns local midnight through the last millisecond of the day
func todayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
