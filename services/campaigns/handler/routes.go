package handler

import (
	"github.com/calldeck/calldeck/services/campaigns/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the campaigns service
type Handler struct {
	campaignHandler *http.CampaignHandler
}

// NewHandler creates and initializes all campaigns handlers
func NewHandler(campaignHandler *http.CampaignHandler) *Handler {
	return &Handler{
		campaignHandler: campaignHandler,
	}
}

// RegisterRoutes registers the campaign routes, all session protected
func (h *Handler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	campaignGroup := e.Group("/campaign", session)
	campaignGroup.POST("/create", h.campaignHandler.CreateCampaign)
	campaignGroup.GET("/campaigns", h.campaignHandler.ListCampaigns)
	campaignGroup.GET("/super-admin-campaigns", h.campaignHandler.ListAllCampaigns)
	campaignGroup.GET("/members", h.campaignHandler.ListMembers)
	campaignGroup.POST("/add-member-manager", h.campaignHandler.AddMemberOrManager)
	campaignGroup.POST("/add-member", h.campaignHandler.AddMemberByManager)
}
