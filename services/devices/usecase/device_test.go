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

func TestRegisterDevice_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID()}
	req := &models.DeviceRegistration{
		DeviceName:   "Office Phone",
		SendInterval: models.IntervalDaily,
	}

	mockDevices.EXPECT().GetDeviceByName(gomock.Any(), actor.ID, "Office Phone").
		Return(nil, fmt.Errorf("%w: device not found", models.ErrNotFound))
	mockDevices.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	device, err := uc.RegisterDevice(context.Background(), actor, req)

	// Assert: the webhook path carries the reserved ID
	assert.NoError(t, err)
	assert.False(t, device.ID.IsZero())
	assert.Equal(t, "/webhook/call-log/"+device.ID.Hex(), device.WebhookURL)
	assert.Equal(t, models.DeviceOffline, device.Status)
}

func TestRegisterDevice_DuplicateNameSameOwner(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID()}
	req := &models.DeviceRegistration{
		DeviceName:   "Office Phone",
		SendInterval: models.IntervalWeekly,
	}

	mockDevices.EXPECT().GetDeviceByName(gomock.Any(), actor.ID, "Office Phone").
		Return(&models.Device{DeviceName: "Office Phone"}, nil)

	// Act
	_, err := uc.RegisterDevice(context.Background(), actor, req)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrConflict))
}

func TestRegisterDevice_InvalidInterval(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID()}

	// Act
	_, err := uc.RegisterDevice(context.Background(), actor, &models.DeviceRegistration{
		DeviceName:   "Office Phone",
		SendInterval: "hourly",
	})

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestListDevices_ZeroCountersForQuietDevice(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID()}
	device := models.Device{ID: primitive.NewObjectID(), UserID: actor.ID, DeviceName: "Office Phone"}

	mockDevices.EXPECT().ListDevicesByOwner(gomock.Any(), actor.ID).
		Return([]models.Device{device}, nil)
	mockLedger.EXPECT().CountByDevice(gomock.Any(), device.ID, gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	mockLedger.EXPECT().CountByDevice(gomock.Any(), device.ID, nil, nil).
		Return(int64(0), nil)

	// Act
	views, err := uc.ListDevices(context.Background(), actor)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, int64(0), views[0].TodayTotalCalls)
	assert.Equal(t, int64(0), views[0].OverallTotalCalls)
}

func TestDeleteDevice_WrongOwnerReadsAsAbsent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDevices := mocks.NewMockDeviceRepo(ctrl)
	mockLedger := mocks.NewMockCallLogRepo(ctrl)
	uc := NewDeviceUC(mockDevices, mockLedger, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID()}
	deviceID := primitive.NewObjectID()

	mockDevices.EXPECT().SoftDeleteDevice(gomock.Any(), actor.ID, deviceID).
		Return(fmt.Errorf("%w: device not found", models.ErrNotFound))

	// Act
	err := uc.DeleteDevice(context.Background(), actor, deviceID.Hex())

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestTodayWindow_Boundaries(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

	start, end := todayWindow(now)

	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 14, 23, 59, 59, 999000000, time.UTC), end)
}
