package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leaddesk/leaddesk-api/internal/application/service"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/dto/request"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/dto/response"
)

// LeadHandler handles the receptionist-facing lead endpoints
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead handles POST /api/v1/leads
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req request.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), &service.CreateLeadInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		Email:              req.Email,
		Occupation:         req.Occupation,
		Address:            req.Address,
		City:               req.City,
		Pincode:            req.Pincode,
		Purpose:            req.Purpose,
		Configuration:      req.Configuration,
		Budget:             req.Budget,
		Possession:         req.Possession,
		Floor:              req.Floor,
		ViewPreference:     req.ViewPreference,
		SelectedSources:    req.SelectedSources,
		ShowChannelPartner: req.ShowChannelPartner,
		CPFirm:             req.CPFirm,
		CPExec:             req.CPExec,
		CPPhone:            req.CPPhone,
		Consent:            req.Consent,
		Signature:          req.Signature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lead created successfully", lead)
}

// GetLead handles GET /api/v1/leads/:friendlyId
func (h *LeadHandler) GetLead(c *gin.Context) {
	friendlyID := c.Param("friendlyId")

	lead, err := h.leadService.GetLead(c.Request.Context(), friendlyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", lead)
}

// Revisit handles POST /api/v1/leads/:friendlyId/revisit
func (h *LeadHandler) Revisit(c *gin.Context) {
	friendlyID := c.Param("friendlyId")

	lead, err := h.leadService.Revisit(c.Request.Context(), friendlyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead marked as revisit", lead)
}

// RecentLeads handles GET /api/v1/leads/recent
func (h *LeadHandler) RecentLeads(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	summaries, err := h.leadService.RecentLeads(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recent leads retrieved successfully", summaries)
}

// Stats handles GET /api/v1/leads/stats
func (h *LeadHandler) Stats(c *gin.Context) {
	stats, err := h.leadService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead stats retrieved successfully", stats)
}

// SearchLeads handles GET /api/v1/leads/search?q=
func (h *LeadHandler) SearchLeads(c *gin.Context) {
	rows, err := h.leadService.SearchLeads(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Search results retrieved successfully", rows)
}

// SaveFeedback handles POST /api/v1/leads/:friendlyId/feedback
func (h *LeadHandler) SaveFeedback(c *gin.Context) {
	friendlyID := c.Param("friendlyId")

	var req request.SaveFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	feedback, err := h.leadService.SaveFeedback(c.Request.Context(), friendlyID, &service.SaveFeedbackInput{
		Onboarding:    req.Onboarding,
		Staff:         req.Staff,
		ProjectShared: req.ProjectShared,
		Explanation:   req.Explanation,
		Overall:       req.Overall,
		Comment:       req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Feedback saved successfully", feedback)
}
