package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/leaddesk/leaddesk-api/internal/application/service"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/dto/request"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/dto/response"
	"github.com/leaddesk/leaddesk-api/pkg/pagination"
)

// AdminHandler handles the admin-only endpoints
type AdminHandler struct {
	leadService *service.LeadService
	authService *service.AuthService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(leadService *service.LeadService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{
		leadService: leadService,
		authService: authService,
	}
}

// ListLeads handles GET /api/v1/admin/leads. Without paging parameters the
// full list is returned; with ?page or ?per_page the result is paginated.
func (h *AdminHandler) ListLeads(c *gin.Context) {
	var params *pagination.PaginationParams
	if c.Query("page") != "" || c.Query("per_page") != "" {
		params = &pagination.PaginationParams{}
		if err := c.ShouldBindQuery(params); err != nil {
			response.BadRequest(c, "Invalid pagination parameters")
			return
		}
		params.Validate()
	}

	leads, total, err := h.leadService.ListLeads(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	if params == nil {
		response.OK(c, "Leads retrieved successfully", leads)
		return
	}

	result := pagination.NewPaginatedResult(leads, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

// GetLeadDetail handles GET /api/v1/admin/leads/:friendlyId
func (h *AdminHandler) GetLeadDetail(c *gin.Context) {
	friendlyID := c.Param("friendlyId")

	lead, err := h.leadService.GetLeadDetail(c.Request.Context(), friendlyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead detail retrieved successfully", lead)
}

// DeleteLead handles DELETE /api/v1/admin/leads/:friendlyId
func (h *AdminHandler) DeleteLead(c *gin.Context) {
	friendlyID := c.Param("friendlyId")

	if err := h.leadService.DeleteLead(c.Request.Context(), friendlyID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead deleted successfully", nil)
}

// CreateUser handles POST /api/v1/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.authService.CreateUser(c.Request.Context(), &service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", user)
}

// ListUsers handles GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", users)
}
