package usecase

import (
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/services/accounts"
	"github.com/calldeck/calldeck/services/campaigns"
)

type CampaignUC struct {
	campaignRepo campaigns.CampaignRepo
	accountRepo  accounts.AccountRepo
	cfg          *models.Config
}

// NewCampaignUC creates a new campaign usecase instance. The account
// repository is shared so role gates run against current records.
func NewCampaignUC(
	campaignRepo campaigns.CampaignRepo,
	accountRepo accounts.AccountRepo,
	cfg *models.Config,
) *CampaignUC {
	return &CampaignUC{
		campaignRepo: campaignRepo,
		accountRepo:  accountRepo,
		cfg:          cfg,
	}
}
