package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IngestCallLog appends a webhook push to the ledger. The device is resolved
// from the webhook path, attributed to its owner, and pinged online.
func (u *DeviceUC) IngestCallLog(ctx context.Context, deviceID string, push *models.CallLogPush) (*models.CallLog, error) {
	id, err := primitive.ObjectIDFromHex(deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid device ID", models.ErrValidation)
	}

	if push.Number == "" || push.Duration == "" || push.CallDate.IsZero() {
		return nil, fmt.Errorf("%w: number, callDate and duration are required", models.ErrValidation)
	}
	if !models.ValidCallType(push.Type) {
		return nil, fmt.Errorf("%w: unknown call type", models.ErrValidation)
	}
	if !models.ValidSimSlot(push.SimSlot) {
		return nil, fmt.Errorf("%w: unknown SIM slot", models.ErrValidation)
	}

	device, err := u.deviceRepo.GetDeviceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record := &models.CallLog{
		UserID:        device.UserID,
		DeviceID:      device.ID,
		Number:        push.Number,
		Type:          push.Type,
		SimSlot:       push.SimSlot,
		CallDate:      push.CallDate,
		Duration:      push.Duration,
		LastSmsSentAt: push.LastSmsSentAt,
	}

	if err := u.callLogRepo.InsertCallLog(ctx, record); err != nil {
		return nil, err
	}

	if err := u.deviceRepo.MarkDeviceSeen(ctx, device.ID, time.Now()); err != nil {
		// The ledger row is already in; the ping is only freshness metadata
		logger.Warn("Failed to mark device seen",
			logger.ErrorField(err),
			logger.String("device_id", device.ID.Hex()))
	}

	return record, nil
}

// DeviceCallLogs returns a device's ledger rows for its owner, newest first.
// A name owned by someone else reads as absent.
func (u *DeviceUC) DeviceCallLogs(ctx context.Context, actor *models.User, deviceName string) ([]models.CallLog, error) {
	if deviceName == "" {
		return nil, fmt.Errorf("%w: device name is required", models.ErrValidation)
	}

	device, err := u.deviceRepo.GetDeviceByName(ctx, actor.ID, deviceName)
	if err != nil {
		return nil, err
	}

	return u.callLogRepo.ListByDevice(ctx, device.ID)
}

// Analytics aggregates the actor's call counters over the requested window
func (u *DeviceUC) Analytics(ctx context.Context, actor *models.User, query *models.AnalyticsQuery) (*models.CallAnalytics, error) {
	from, to, err := resolveWindow(query, time.Now())
	if err != nil {
		return nil, err
	}

	return u.callLogRepo.Aggregate(ctx, actor.ID, from, to)
}

// SearchCallLogs pages through the actor's ledger with an optional free-text
// filter across number, type and device name.
func (u *DeviceUC) SearchCallLogs(ctx context.Context, actor *models.User, page, limit int64, search string) (*models.CallLogPage, error) {
	return u.callLogRepo.Search(ctx, actor.ID, page, limit, search)
}

// resolveWindow maps a window filter to concrete bounds. The N-day windows
// roll back from the current instant, preserving the time of day; today runs
// from local midnight to now.
func resolveWindow(query *models.AnalyticsQuery, now time.Time) (time.Time, time.Time, error) {
	switch query.Filter {
	case models.WindowToday, "":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, now, nil
	case models.Window7Days:
		return now.AddDate(0, 0, -7), now, nil
	case models.Window15Days:
		return now.AddDate(0, 0, -15), now, nil
	case models.Window30Days:
		return now.AddDate(0, 0, -30), now, nil
	case models.WindowCustom:
		if query.Start.IsZero() || query.End.IsZero() {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: custom window requires startDate and endDate", models.ErrValidation)
		}
		if query.End.Before(query.Start) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate is before startDate", models.ErrValidation)
		}
		return query.Start, query.End, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown analytics filter", models.ErrValidation)
	}
}
