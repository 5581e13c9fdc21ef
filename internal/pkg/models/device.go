package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Send interval values for device push schedules
const (
	IntervalDaily   = "daily"
	IntervalWeekly  = "weekly"
	IntervalMonthly = "monthly"
)

// Device status values
const (
	DeviceOffline = "offline"
	DeviceOnline  = "online"
)

// ValidSendInterval reports whether interval is one of the supported schedules.
func ValidSendInterval(interval string) bool {
	switch interval {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return true
	}
	return false
}

// Device is a registered mobile device that pushes call logs through its
// per-device webhook. Devices are soft deleted, never removed.
type Device struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	DeviceName   string             `bson:"deviceName" json:"deviceName"`
	WebhookURL   string             `bson:"webhookUrl" json:"webhookUrl"`
	SendInterval string             `bson:"sendInterval" json:"sendInterval"`
	LastPing     *time.Time         `bson:"lastPing,omitempty" json:"lastPing,omitempty"`
	Status       string             `bson:"status" json:"status"`
	DeletedAt    *time.Time         `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DeviceView is a device enriched with call counters from the ledger
type DeviceView struct {
	Device            `bson:",inline"`
	TodayTotalCalls   int64 `json:"today_total_calls"`
	OverallTotalCalls int64 `json:"overall_total_calls"`
}

// DeviceRegistration is the accepted payload for registering a device
type DeviceRegistration struct {
	DeviceName   string `json:"deviceName"`
	SendInterval string `json:"sendInterval"`
}
