package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Call types pushed by devices
const (
	CallIncoming = "Incoming"
	CallOutgoing = "Outgoing"
	CallMissed   = "Missed"
	CallRejected = "Rejected"
)

// SIM slot identifiers
const (
	SimSlot1 = "SIM1"
	SimSlot2 = "SIM2"
)

// UnansweredDuration is the literal duration devices report for outgoing
// calls that were never picked up.
const UnansweredDuration = "0 seconds"

// ValidCallType reports whether t is a known call type.
func ValidCallType(t string) bool {
	switch t {
	case CallIncoming, CallOutgoing, CallMissed, CallRejected:
		return true
	}
	return false
}

// ValidSimSlot reports whether s is a known SIM slot.
func ValidSimSlot(s string) bool {
	return s == SimSlot1 || s == SimSlot2
}

// CallLog is one phone event attributed to a user and device. Append-only.
type CallLog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	DeviceID      primitive.ObjectID `bson:"deviceId" json:"deviceId"`
	Number        string             `bson:"number" json:"number"`
	Type          string             `bson:"type" json:"type"`
	SimSlot       string             `bson:"simSlot" json:"simSlot"`
	CallDate      time.Time          `bson:"callDate" json:"callDate"`
	Duration      string             `bson:"duration" json:"duration"`
	LastSmsSentAt *time.Time         `bson:"lastSmsSentAt,omitempty" json:"lastSmsSentAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CallLogEntry is a ledger row joined to its owning device for search results
type CallLogEntry struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Number        string             `bson:"number" json:"number"`
	Type          string             `bson:"type" json:"type"`
	SimSlot       string             `bson:"simSlot" json:"simSlot"`
	CallDate      time.Time          `bson:"callDate" json:"callDate"`
	Duration      string             `bson:"duration" json:"duration"`
	DeviceName    string             `bson:"deviceName" json:"deviceName"`
	LastSmsSentAt *time.Time         `bson:"lastSmsSentAt,omitempty" json:"lastSmsSentAt,omitempty"`
}

// CallLogPage is one page of searched call logs
type CallLogPage struct {
	CallLogs    []CallLogEntry `json:"callLogs"`
	TotalPages  int64          `json:"totalPages"`
	CurrentPage int64          `json:"currentPage"`
}

// CallAnalytics holds the aggregated counters for an analytics window.
// An all-zero result is a valid answer, not an error.
type CallAnalytics struct {
	TotalCalls         int64 `bson:"total_calls" json:"total_calls"`
	IncomingCalls      int64 `bson:"incoming_calls" json:"incoming_calls"`
	MissedCalls        int64 `bson:"missed_calls" json:"missed_calls"`
	OutgoingCalls      int64 `bson:"outgoing_calls" json:"outgoing_calls"`
	UnansweredOutgoing int64 `bson:"unanswered_outgoing" json:"unanswered_outgoing"`
	AnsweredOutgoing   int64 `bson:"answered_outgoing" json:"answered_outgoing"`
}

// Analytics window filters
const (
	WindowToday  = "today"
	Window7Days  = "7days"
	Window15Days = "15days"
	Window30Days = "30days"
	WindowCustom = "custom"
)

// AnalyticsQuery selects the reporting window. Start and End are required
// only for the custom window.
type AnalyticsQuery struct {
	Filter string
	Start  time.Time
	End    time.Time
}

// CallLogPush is the webhook payload a device sends for one call event
type CallLogPush struct {
	Number        string     `json:"number"`
	Type          string     `json:"type"`
	SimSlot       string     `json:"simSlot"`
	CallDate      time.Time  `json:"callDate"`
	Duration      string     `json:"duration"`
	LastSmsSentAt *time.Time `json:"lastSmsSentAt,omitempty"`
}
