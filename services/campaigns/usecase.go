package campaigns

import (
	"context"

	"github.com/calldeck/calldeck/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/calldeck/calldeck/services/campaigns CampaignUC

// CampaignUC is the campaign aggregator usecase interface
type CampaignUC interface {
	CreateCampaign(ctx context.Context, actor *models.User, req *models.CampaignCreate) error
	ListCampaigns(ctx context.Context, actor *models.User) ([]models.CampaignSummary, error)
	ListAllCampaigns(ctx context.Context, actor *models.User) ([]models.CampaignSummary, error)
}
