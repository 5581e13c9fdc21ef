package repository

import (
	"github.com/calldeck/calldeck/internal/pkg/database"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names owned by the campaigns service
const (
	campaignMastersCollection = "campaign_masters"
	contactMastersCollection  = "contact_masters"
	campaignsCollection       = "campaigns"
	membersCollection         = "members"
	usersCollection           = "users"
)

// CampaignRepo is the MongoDB campaign store
type CampaignRepo struct {
	campaignMasters *mongo.Collection
	contactMasters  *mongo.Collection
	campaigns       *mongo.Collection
	members         *mongo.Collection
}

// NewCampaignRepo creates a new campaign repository instance
func NewCampaignRepo(db *database.MongoClient) *CampaignRepo {
	return &CampaignRepo{
		campaignMasters: db.Collection(campaignMastersCollection),
		contactMasters:  db.Collection(contactMastersCollection),
		campaigns:       db.Collection(campaignsCollection),
		members:         db.Collection(membersCollection),
	}
}
