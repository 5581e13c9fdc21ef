package campaigns

import (
	"context"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/calldeck/calldeck/services/campaigns CampaignRepo

// CampaignRepo is the campaign store interface
type CampaignRepo interface {
	CreateCampaignMaster(ctx context.Context, master *models.CampaignMaster) error

	// MatchOrCreateContacts resolves each row to a contact ID, matching on
	// phone number across all tenants and inserting rows with no match.
	MatchOrCreateContacts(ctx context.Context, rows []models.ContactRow, createdBy primitive.ObjectID) ([]primitive.ObjectID, error)

	CreateCampaign(ctx context.Context, campaign *models.Campaign) error
	CreateMember(ctx context.Context, member *models.Member) error
	LinkMember(ctx context.Context, campaignID, memberID primitive.ObjectID) error

	ListByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]models.CampaignSummary, error)
	ListAll(ctx context.Context) ([]models.CampaignSummary, error)
}
