package devices

import (
	"context"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/calldeck/calldeck/services/devices DeviceRepo,CallLogRepo

// DeviceRepo is the device registry store interface. All reads exclude soft
// deleted devices.
type DeviceRepo interface {
	CreateDevice(ctx context.Context, device *models.Device) error
	GetDeviceByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error)
	GetDeviceByName(ctx context.Context, ownerID primitive.ObjectID, name string) (*models.Device, error)
	ListDevicesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Device, error)
	SoftDeleteDevice(ctx context.Context, ownerID, deviceID primitive.ObjectID) error
	MarkDeviceSeen(ctx context.Context, deviceID primitive.ObjectID, at time.Time) error
}

// CallLogRepo is the append-only call ledger interface
type CallLogRepo interface {
	InsertCallLog(ctx context.Context, record *models.CallLog) error
	ListByDevice(ctx context.Context, deviceID primitive.ObjectID) ([]models.CallLog, error)
	CountByDevice(ctx context.Context, deviceID primitive.ObjectID, from, to *time.Time) (int64, error)
	Aggregate(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (*models.CallAnalytics, error)
	Search(ctx context.Context, userID primitive.ObjectID, page, limit int64, search string) (*models.CallLogPage, error)
}
