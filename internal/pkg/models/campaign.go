package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign status values
const (
	CampaignPending = "pending"
	CampaignStart   = "start"
	CampaignPause   = "pause"
	CampaignEnd     = "end"
)

// CampaignMaster is the named campaign record
type CampaignMaster struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	StartDate *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	UpdatedBy primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	DeletedAt *time.Time         `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ContactMaster is an imported contact, deduplicated globally by phone number
type ContactMaster struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName    string             `bson:"userName" json:"userName"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	UpdatedBy   primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	DeletedAt   *time.Time         `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Campaign links a master record to its contacts and member set
type Campaign struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CampaignMaster primitive.ObjectID   `bson:"campaignMaster" json:"campaignMaster"`
	ContactIDs     []primitive.ObjectID `bson:"contactId" json:"contactId"`
	Member         primitive.ObjectID   `bson:"member,omitempty" json:"member,omitempty"`
	CreatedBy      primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	DeletedAt      *time.Time           `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Member holds the user ids assigned to work a campaign
type Member struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserIDs        []primitive.ObjectID `bson:"userIds" json:"userIds"`
	CampaignMaster primitive.ObjectID   `bson:"campaignMaster" json:"campaignMaster"`
	Campaign       primitive.ObjectID   `bson:"campaign" json:"campaign"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// CampaignMemberRef is one de-duplicated {name, id} pair in a summary
type CampaignMemberRef struct {
	MemberName string              `bson:"memberName" json:"memberName"`
	MemberID   *primitive.ObjectID `bson:"memberId,omitempty" json:"memberId,omitempty"`
}

// CampaignSummary is the joined reporting view of one campaign
type CampaignSummary struct {
	ID               primitive.ObjectID  `bson:"_id" json:"id"`
	CampaignName     string              `bson:"campaignName" json:"campaignName"`
	CampaignStatus   string              `bson:"campaignStatus" json:"campaignStatus"`
	CampaignStart    *time.Time          `bson:"campaignStartDate,omitempty" json:"campaignStartDate,omitempty"`
	CreatorName      string              `bson:"creatorName" json:"creatorName"`
	CreatorRole      string              `bson:"creatorRole" json:"creatorRole"`
	CreatorID        primitive.ObjectID  `bson:"creatorId" json:"creatorId"`
	Members          []CampaignMemberRef `bson:"members" json:"members"`
}

// ContactRow is one parsed row of the contact import payload
type ContactRow struct {
	UserName    string
	Email       string
	PhoneNumber string
}

// CampaignCreate is the accepted payload for creating a campaign
type CampaignCreate struct {
	Name      string       `json:"name"`
	StartDate *time.Time   `json:"startDate,omitempty"`
	Members   []MemberRef  `json:"members"`
	CSVData   string       `json:"csvData"`
}

// MemberRef identifies a member user in a campaign create request
type MemberRef struct {
	ID primitive.ObjectID `json:"id"`
}
