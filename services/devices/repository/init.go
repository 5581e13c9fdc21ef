package repository

import (
	"github.com/calldeck/calldeck/internal/pkg/database"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names owned by the devices service
const (
	devicesCollection  = "devices"
	callLogsCollection = "call_logs"
)

// DeviceRepo is the MongoDB device registry
type DeviceRepo struct {
	devices *mongo.Collection
	redis   *database.RedisClient
}

// NewDeviceRepo creates a new device repository instance
func NewDeviceRepo(db *database.MongoClient, redis *database.RedisClient) *DeviceRepo {
	return &DeviceRepo{
		devices: db.Collection(devicesCollection),
		redis:   redis,
	}
}

// CallLogRepo is the MongoDB call ledger
type CallLogRepo struct {
	callLogs *mongo.Collection
	devices  *mongo.Collection
}

// NewCallLogRepo creates a new call log repository instance
func NewCallLogRepo(db *database.MongoClient) *CallLogRepo {
	return &CallLogRepo{
		callLogs: db.Collection(callLogsCollection),
		devices:  db.Collection(devicesCollection),
	}
}
