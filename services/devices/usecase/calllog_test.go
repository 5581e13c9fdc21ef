package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/services/devices/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIngestCallLog_AttributesOwnerAndPings(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	ownerID := primitive.NewObjectID()
	device := &models.Device{ID: primitive.NewObjectID(), UserID: ownerID}

	push := &models.CallLogPush{
		Number:   "+919812345678",
		Type:     models.CallIncoming,
		SimSlot:  models.SimSlot1,
		CallDate: time.Now(),
		Duration: "42 seconds",
	}

	mockDevices.EXPECT().GetDeviceByID(gomock.Any(), device.ID).Return(device, nil)
	mockLedger.EXPECT().InsertCallLog(gomock.Any(), gomock.Any()).Return(nil)
	mockDevices.EXPECT().MarkDeviceSeen(gomock.Any(), device.ID, gomock.Any()).Return(nil)

	// Act
	record, err := uc.IngestCallLog(context.Background(), device.ID.Hex(), push)

	// Assert: ownership comes from the device, not the payload
	assert.NoError(t, err)
	assert.Equal(t, ownerID, record.UserID)
	assert.Equal(t, device.ID, record.DeviceID)
}

func TestIngestCallLog_UnknownCallType(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	push := &models.CallLogPush{
		Number:   "+919812345678",
		Type:     "Conference",
		SimSlot:  models.SimSlot1,
		CallDate: time.Now(),
		Duration: "42 seconds",
	}

	// Act
	_, err := uc.IngestCallLog(context.Background(), primitive.NewObjectID().Hex(), push)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestIngestCallLog_DeletedDevice(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	deviceID := primitive.NewObjectID()
	push := &models.CallLogPush{
		Number:   "+919812345678",
		Type:     models.CallMissed,
		SimSlot:  models.SimSlot2,
		CallDate: time.Now(),
		Duration: "0 seconds",
	}

	mockDevices.EXPECT().GetDeviceByID(gomock.Any(), deviceID).
		Return(nil, fmt.Errorf("%w: device not found", models.ErrNotFound))

	// Act
	_, err := uc.IngestCallLog(context.Background(), deviceID.Hex(), push)

	// Assert: soft deleted devices cannot push
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestDeviceCallLogs_ForeignNameReadsAsAbsent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID()}

	mockDevices.EXPECT().GetDeviceByName(gomock.Any(), actor.ID, "Someone Elses Phone").
		Return(nil, fmt.Errorf("%w: device not found", models.ErrNotFound))

	// Act
	_, err := uc.DeviceCallLogs(context.Background(), actor, "Someone Elses Phone")

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestResolveWindow_Relative(t *testing.T) {
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

	from, to, err := resolveWindow(&models.AnalyticsQuery{Filter: models.Window7Days}, now)

	// The window rolls back from now; it is not anchored to midnight
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC), from)
	assert.Equal(t, now, to)

	// A call from the evening seven days back is still covered
	evening := time.Date(2025, time.March, 7, 18, 0, 0, 0, time.UTC)
	assert.False(t, evening.Before(from))
	assert.False(t, evening.After(to))

	from, to, err = resolveWindow(&models.AnalyticsQuery{Filter: models.Window30Days}, now)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 12, 12, 0, 0, 0, time.UTC), from)
	assert.Equal(t, now, to)
}

func TestResolveWindow_Today(t *testing.T) {
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

	from, to, err := resolveWindow(&models.AnalyticsQuery{Filter: models.WindowToday}, now)

	// Midnight to now; a row stamped later today is not counted yet
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, now, to)
}

func TestResolveWindow_CustomRequiresBounds(t *testing.T) {
	now := time.Now()

	_, _, err := resolveWindow(&models.AnalyticsQuery{Filter: models.WindowCustom}, now)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestResolveWindow_CustomInverted(t *testing.T) {
	now := time.Now()

	_, _, err := resolveWindow(&models.AnalyticsQuery{
		Filter: models.WindowCustom,
		Start:  now,
		End:    now.Add(-time.Hour),
	}, now)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestAnalytics_EmptyWindowYieldsZeros(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID()}

	mockLedger.EXPECT().Aggregate(gomock.Any(), actor.ID, gomock.Any(), gomock.Any()).
		Return(&models.CallAnalytics{}, nil)

	// Act
	analytics, err := uc.Analytics(context.Background(), actor, &models.AnalyticsQuery{Filter: models.WindowToday})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(0), analytics.TotalCalls)
}
