package http

import (
	"net/http"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/middleware"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/calldeck/calldeck/services/accounts"
	"github.com/calldeck/calldeck/services/campaigns"
	"github.com/labstack/echo/v4"
)

// CampaignHandler handles HTTP requests for campaigns and the member
// management endpoints that ride on the campaign surface.
type CampaignHandler struct {
	campaignUC campaigns.CampaignUC
	accountUC  accounts.AccountUC
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignUC campaigns.CampaignUC, accountUC accounts.AccountUC) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: campaignUC,
		accountUC:  accountUC,
	}
}

// CreateCampaign handles campaign creation requests
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CampaignCreate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.campaignUC.CreateCampaign(c.Request().Context(), actor, &req); err != nil {
		logger.Error("Failed to create campaign",
			logger.ErrorField(err),
			logger.String("user_id", actor.ID.Hex()),
			logger.String("campaign_name", req.Name),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Campaign created successfully", nil)
}

// ListCampaigns returns the actor's own campaign summaries
func (h *CampaignHandler) ListCampaigns(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summaries, err := h.campaignUC.ListCampaigns(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if len(summaries) == 0 {
		return utils.NoContentResponse(c, "No campaigns found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Campaigns retrieved successfully", summaries)
}

// ListAllCampaigns returns every campaign for the super admin dashboard
func (h *CampaignHandler) ListAllCampaigns(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summaries, err := h.campaignUC.ListAllCampaigns(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if len(summaries) == 0 {
		return utils.NoContentResponse(c, "No campaigns found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Campaigns retrieved successfully", summaries)
}

// ListMembers returns the accounts referred by the actor, for member pickers
func (h *CampaignHandler) ListMembers(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	members, err := h.accountUC.ListMembers(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Members fetched successfully", members)
}

// AddMemberOrManager creates a manager or member under the actor
func (h *CampaignHandler) AddMemberOrManager(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Role != models.RoleManager && req.Role != models.RoleMember {
		return utils.BadRequestResponse(c, "Invalid role")
	}

	user, err := h.accountUC.CreateAccount(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, req.Role+" created successfully", user)
}

// AddMemberByManager creates a member supervised by the acting manager
func (h *CampaignHandler) AddMemberByManager(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Role != models.RoleMember {
		return utils.BadRequestResponse(c, "Invalid role")
	}

	user, err := h.accountUC.CreateAccount(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Member created successfully", user)
}
