package usecase

import (
	"context"
	"fmt"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCampaign imports the contact payload and assembles the campaign
// record chain: master, contacts, campaign, member set, back-link. There is
// no transaction across the writes; a mid-sequence failure leaves the earlier
// records in place.
func (u *CampaignUC) CreateCampaign(ctx context.Context, actor *models.User, req *models.CampaignCreate) error {
	if req.Name == "" {
		return fmt.Errorf("%w: campaign name is required", models.ErrValidation)
	}
	if req.CSVData == "" {
		return fmt.Errorf("%w: contact data is required", models.ErrValidation)
	}

	fresh, err := u.accountRepo.GetUserByID(ctx, actor.ID.Hex())
	if err != nil {
		return err
	}
	if fresh.Role != models.RoleUser && fresh.Role != models.RoleManager {
		return fmt.Errorf("%w: only users and managers can create a campaign", models.ErrPermission)
	}

	rows, err := utils.ParseContactRows(req.CSVData)
	if err != nil {
		return err
	}

	master := &models.CampaignMaster{
		Name:      req.Name,
		StartDate: req.StartDate,
		CreatedBy: fresh.ID,
	}
	if err := u.campaignRepo.CreateCampaignMaster(ctx, master); err != nil {
		return err
	}

	contactIDs, err := u.campaignRepo.MatchOrCreateContacts(ctx, rows, fresh.ID)
	if err != nil {
		return err
	}

	campaign := &models.Campaign{
		CampaignMaster: master.ID,
		ContactIDs:     contactIDs,
		CreatedBy:      fresh.ID,
	}
	if err := u.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return err
	}

	memberIDs := make([]primitive.ObjectID, 0, len(req.Members))
	for _, ref := range req.Members {
		memberIDs = append(memberIDs, ref.ID)
	}

	member := &models.Member{
		UserIDs:        memberIDs,
		CampaignMaster: master.ID,
		Campaign:       campaign.ID,
	}
	if err := u.campaignRepo.CreateMember(ctx, member); err != nil {
		return err
	}

	if err := u.campaignRepo.LinkMember(ctx, campaign.ID, member.ID); err != nil {
		return err
	}

	logger.Info("Campaign created",
		logger.String("campaign_id", master.ID.Hex()),
		logger.String("user_id", fresh.ID.Hex()),
		logger.Int("contacts", len(contactIDs)),
		logger.Int("members", len(memberIDs)))

	return nil
}

// ListCampaigns returns the actor's own campaign summaries
func (u *CampaignUC) ListCampaigns(ctx context.Context, actor *models.User) ([]models.CampaignSummary, error) {
	return u.campaignRepo.ListByCreator(ctx, actor.ID)
}

// ListAllCampaigns returns every campaign. Super admin only.
func (u *CampaignUC) ListAllCampaigns(ctx context.Context, actor *models.User) ([]models.CampaignSummary, error) {
	fresh, err := u.accountRepo.GetUserByID(ctx, actor.ID.Hex())
	if err != nil {
		return nil, err
	}
	if fresh.Role != models.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: only super admins can list all campaigns", models.ErrPermission)
	}

	return u.campaignRepo.ListAll(ctx)
}
