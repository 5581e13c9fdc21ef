package usecase

import (
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/services/devices"
)

type DeviceUC struct {
	deviceRepo  devices.DeviceRepo
	callLogRepo devices.CallLogRepo
	cfg         *models.Config
}

// NewDeviceUC creates a new device usecase instance
func NewDeviceUC(
	deviceRepo devices.DeviceRepo,
	callLogRepo devices.CallLogRepo,
	cfg *models.Config,
) *DeviceUC {
	return &DeviceUC{
		deviceRepo:  deviceRepo,
		callLogRepo: callLogRepo,
		cfg:         cfg,
	}
}
