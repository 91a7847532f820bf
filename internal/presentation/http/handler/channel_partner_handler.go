package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/leaddesk/leaddesk-api/internal/application/service"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/dto/request"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/dto/response"
)

// ChannelPartnerHandler handles channel partner endpoints
type ChannelPartnerHandler struct {
	partnerService *service.ChannelPartnerService
}

// NewChannelPartnerHandler creates a new channel partner handler
func NewChannelPartnerHandler(partnerService *service.ChannelPartnerService) *ChannelPartnerHandler {
	return &ChannelPartnerHandler{partnerService: partnerService}
}

// CreateChannelPartner handles POST /api/v1/channel-partners
func (h *ChannelPartnerHandler) CreateChannelPartner(c *gin.Context) {
	var req request.CreateChannelPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	partner, err := h.partnerService.CreateChannelPartner(c.Request.Context(), &service.CreateChannelPartnerInput{
		Name:     req.Name,
		FirmName: req.FirmName,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Channel partner registered successfully", partner)
}

// ListChannelPartners handles GET /api/v1/channel-partners
func (h *ChannelPartnerHandler) ListChannelPartners(c *gin.Context) {
	partners, err := h.partnerService.ListChannelPartners(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Channel partners retrieved successfully", partners)
}
