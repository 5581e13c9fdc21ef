package devices

import (
	"context"

	"github.com/calldeck/calldeck/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/calldeck/calldeck/services/devices DeviceUC

// DeviceUC is the device registry and call ledger usecase interface
type DeviceUC interface {
	// registry
	RegisterDevice(ctx context.Context, actor *models.User, req *models.DeviceRegistration) (*models.Device, error)
	ListDevices(ctx context.Context, actor *models.User) ([]models.DeviceView, error)
	DeleteDevice(ctx context.Context, actor *models.User, deviceID string) error

	// ledger
	IngestCallLog(ctx context.Context, deviceID string, push *models.CallLogPush) (*models.CallLog, error)
	DeviceCallLogs(ctx context.Context, actor *models.User, deviceName string) ([]models.CallLog, error)
	Analytics(ctx context.Context, actor *models.User, query *models.AnalyticsQuery) (*models.CallAnalytics, error)
	SearchCallLogs(ctx context.Context, actor *models.User, page, limit int64, search string) (*models.CallLogPage, error)
}
