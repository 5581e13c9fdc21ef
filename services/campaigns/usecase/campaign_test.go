package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/calldeck/calldeck/internal/pkg/models"
	accountmocks "github.com/calldeck/calldeck/services/accounts/mocks"
	"github.com/calldeck/calldeck/services/campaigns/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const campaignCSV = "userName,email,phoneNumber\n" +
	"Ravi,ravi@example.com,+919812345678\n" +
	"Mira,mira@example.com,+919812345679\n"

func TestCreateCampaign_LinksMatchedContacts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepo(ctrl)
	mockAccounts := accountmocks.NewMockAccountRepo(ctrl)
	uc := NewCampaignUC(mockCampaigns, mockAccounts, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}
	memberID := primitive.NewObjectID()
	contactIDs := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	req := &models.CampaignCreate{
		Name:    "Spring Outreach",
		Members: []models.MemberRef{{ID: memberID}},
		CSVData: campaignCSV,
	}

	mockAccounts.EXPECT().GetUserByID(gomock.Any(), actor.ID.Hex()).Return(actor, nil)
	mockCampaigns.EXPECT().CreateCampaignMaster(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, master *models.CampaignMaster) error {
			master.ID = primitive.NewObjectID()
			return nil
		})
	mockCampaigns.EXPECT().MatchOrCreateContacts(gomock.Any(), gomock.Len(2), actor.ID).
		Return(contactIDs, nil)
	mockCampaigns.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, campaign *models.Campaign) error {
			// The campaign carries exactly the resolved contact IDs
			assert.Equal(t, contactIDs, campaign.ContactIDs)
			campaign.ID = primitive.NewObjectID()
			return nil
		})
	mockCampaigns.EXPECT().CreateMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, member *models.Member) error {
			assert.Equal(t, []primitive.ObjectID{memberID}, member.UserIDs)
			member.ID = primitive.NewObjectID()
			return nil
		})
	mockCampaigns.EXPECT().LinkMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := uc.CreateCampaign(context.Background(), actor, req)

	// Assert
	assert.NoError(t, err)
}

func TestCreateCampaign_RoleGate(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepo(ctrl)
	mockAccounts := accountmocks.NewMockAccountRepo(ctrl)
	uc := NewCampaignUC(mockCampaigns, mockAccounts, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID(), Role: models.RoleReseller}

	mockAccounts.EXPECT().GetUserByID(gomock.Any(), actor.ID.Hex()).Return(actor, nil)

	// Act
	err := uc.CreateCampaign(context.Background(), actor, &models.CampaignCreate{
		Name:    "Spring Outreach",
		CSVData: campaignCSV,
	})

	// Assert: resellers cannot create campaigns
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrPermission))
}

func TestCreateCampaign_RoleFromStore(t *testing.T) {
	// A stale session role does not grant access; the stored role decides.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepo(ctrl)
	mockAccounts := accountmocks.NewMockAccountRepo(ctrl)
	uc := NewCampaignUC(mockCampaigns, mockAccounts, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}
	demoted := &models.User{ID: actor.ID, Role: models.RoleMember}

	mockAccounts.EXPECT().GetUserByID(gomock.Any(), actor.ID.Hex()).Return(demoted, nil)

	// Act
	err := uc.CreateCampaign(context.Background(), actor, &models.CampaignCreate{
		Name:    "Spring Outreach",
		CSVData: campaignCSV,
	})

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrPermission))
}

func TestCreateCampaign_BadContactHeader(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepo(ctrl)
	mockAccounts := accountmocks.NewMockAccountRepo(ctrl)
	uc := NewCampaignUC(mockCampaigns, mockAccounts, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID(), Role: models.RoleManager}

	mockAccounts.EXPECT().GetUserByID(gomock.Any(), actor.ID.Hex()).Return(actor, nil)

	// Act
	err := uc.CreateCampaign(context.Background(), actor, &models.CampaignCreate{
		Name:    "Spring Outreach",
		CSVData: "name,phone\nRavi,+919812345678\n",
	})

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestListAllCampaigns_SuperAdminOnly(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepo(ctrl)
	mockAccounts := accountmocks.NewMockAccountRepo(ctrl)
	uc := NewCampaignUC(mockCampaigns, mockAccounts, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}

	mockAccounts.EXPECT().GetUserByID(gomock.Any(), actor.ID.Hex()).Return(actor, nil)

	// Act
	_, err := uc.ListAllCampaigns(context.Background(), actor)

	// Assert
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrPermission))
}

func TestListCampaigns_Empty(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaigns := mocks.NewMockCampaignRepo(ctrl)
	mockAccounts := accountmocks.NewMockAccountRepo(ctrl)
	uc := NewCampaignUC(mockCampaigns, mockAccounts, &models.Config{})

	actor := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}

	mockCampaigns.EXPECT().ListByCreator(gomock.Any(), actor.ID).
		Return([]models.CampaignSummary{}, nil)

	// Act
	summaries, err := uc.ListCampaigns(context.Background(), actor)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, summaries)
}
