package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	"github.com/leaddesk/leaddesk-api/internal/domain/enum"
	"github.com/leaddesk/leaddesk-api/internal/domain/repository"
	"github.com/leaddesk/leaddesk-api/pkg/apperror"
	"github.com/leaddesk/leaddesk-api/pkg/pagination"
)

const (
	defaultRecentLimit = 20
	searchResultLimit  = 10

	revisitInteractionType    = "Revisit"
	revisitInteractionContent = "Customer returned for a repeat site visit"
)

// LeadService handles the lead lifecycle: intake, revisit, feedback,
// search, stats and admin deletion.
type LeadService struct {
	leadRepo repository.LeadRepository
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// CreateLeadInput represents the lead intake payload
type CreateLeadInput struct {
	FirstName          string
	LastName           string
	Phone              string
	Email              *string
	Occupation         *string
	Address            *string
	City               *string
	Pincode            *string
	Purpose            *string
	Configuration      *string
	Budget             *string
	Possession         *string
	Floor              *string
	ViewPreference     *string
	SelectedSources    []string
	ShowChannelPartner bool
	CPFirm             *string
	CPExec             *string
	CPPhone            *string
	Consent            *bool
	Signature          *string
}

var socialMediaLabels = map[string]bool{
	"Facebook":  true,
	"Instagram": true,
	"Youtube":   true,
	"Reels":     true,
}

var advertisementLabels = map[string]bool{
	"Newspaper Ads":    true,
	"Billboards":       true,
	"Station Hoarding": true,
	"Site Branding":    true,
	"Pole Branding":    true,
}

// classifySource maps the intake selection to a lead source. Rules are
// evaluated top to bottom, first match wins; only the first selected label
// is considered.
func classifySource(showChannelPartner bool, selected []string) enum.LeadSource {
	if showChannelPartner {
		return enum.LeadSourceChannelPartner
	}
	if len(selected) == 0 {
		return enum.LeadSourceWalkIn
	}

	label := selected[0]
	switch {
	case socialMediaLabels[label]:
		return enum.LeadSourceSocialMedia
	case label == "Google/Website":
		return enum.LeadSourceGoogle
	case label == "Property portal":
		return enum.LeadSourcePropertyPortal
	case advertisementLabels[label]:
		return enum.LeadSourceAdvertisement
	case label == "Reference":
		return enum.LeadSourceReferral
	default:
		return enum.LeadSourceOther
	}
}

// CreateLead registers a new lead. Fails with a conflict when the phone is
// already taken; the error message names the existing lead's friendly ID.
func (s *LeadService) CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	existing, err := s.leadRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError(fmt.Sprintf(
			"A lead with phone number %s already exists (ID: %s)", input.Phone, existing.FriendlyID))
	}

	customerName := strings.TrimSpace(strings.TrimSpace(input.FirstName) + " " + strings.TrimSpace(input.LastName))

	// Consent defaults to true when the intake form omits it (opt-out model).
	consent := true
	if input.Consent != nil {
		consent = *input.Consent
	}

	lead := &entity.Lead{
		Status:         enum.LeadStatusVisit,
		Source:         classifySource(input.ShowChannelPartner, input.SelectedSources),
		SourcesList:    strings.Join(input.SelectedSources, ", "),
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		CustomerName:   customerName,
		Phone:          input.Phone,
		Email:          input.Email,
		Occupation:     input.Occupation,
		Address:        input.Address,
		City:           input.City,
		Pincode:        input.Pincode,
		Purpose:        input.Purpose,
		Configuration:  input.Configuration,
		Budget:         input.Budget,
		Possession:     input.Possession,
		Floor:          input.Floor,
		ViewPreference: input.ViewPreference,
		Consent:        consent,
		Signature:      input.Signature,
		CPFirm:         input.CPFirm,
		CPExec:         input.CPExec,
		CPPhone:        input.CPPhone,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		// A racing create got the same friendly ID or phone first. The
		// client retries the whole create.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperror.NewConflictError(fmt.Sprintf(
				"A lead with phone number %s already exists", input.Phone))
		}
		return nil, err
	}

	return lead, nil
}

// GetLead retrieves a lead by friendly ID
func (s *LeadService) GetLead(ctx context.Context, friendlyID string) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByFriendlyID(ctx, friendlyID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// GetLeadDetail retrieves a lead with its feedbacks and interactions
func (s *LeadService) GetLeadDetail(ctx context.Context, friendlyID string) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetDetail(ctx, friendlyID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// Revisit moves the lead to REVISIT and logs an interaction. Not
// idempotent: a second call appends another interaction row.
func (s *LeadService) Revisit(ctx context.Context, friendlyID string) (*entity.Lead, error) {
	lead, err := s.leadRepo.MarkRevisit(ctx, friendlyID, revisitInteractionType, revisitInteractionContent)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// RecentLeads returns the most recently created leads, newest first
func (s *LeadService) RecentLeads(ctx context.Context, limit int) ([]repository.LeadSummary, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	summaries, err := s.leadRepo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []repository.LeadSummary{}
	}
	return summaries, nil
}

// ListLeads returns leads for the admin view. A nil params returns all.
func (s *LeadService) ListLeads(ctx context.Context, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	return s.leadRepo.List(ctx, params)
}

// Stats returns the receptionist dashboard counters
func (s *LeadService) Stats(ctx context.Context) (*repository.LeadStats, error) {
	return s.leadRepo.Stats(ctx)
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// SearchLeads matches the query against friendly ID, customer name and
// phone. An all-digit query is additionally matched against the friendly
// ID with the digits left-padded to 4, so "1" finds "LEAD-0001".
func (s *LeadService) SearchLeads(ctx context.Context, query string) ([]repository.LeadSearchRow, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []repository.LeadSearchRow{}, nil
	}

	paddedCode := ""
	if isAllDigits(query) {
		paddedCode = query
		if len(paddedCode) < 4 {
			paddedCode = strings.Repeat("0", 4-len(paddedCode)) + paddedCode
		}
	}

	rows, err := s.leadRepo.Search(ctx, query, paddedCode, searchResultLimit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.LeadSearchRow{}
	}
	return rows, nil
}

// SaveFeedbackInput represents a feedback submission
type SaveFeedbackInput struct {
	Onboarding    int
	Staff         int
	ProjectShared int
	Explanation   int
	Overall       int
	Comment       string
}

// SaveFeedback attaches one feedback row to the lead. Rating ranges are
// not validated here; the form boundary owns that.
func (s *LeadService) SaveFeedback(ctx context.Context, friendlyID string, input *SaveFeedbackInput) (*entity.Feedback, error) {
	lead, err := s.leadRepo.GetByFriendlyID(ctx, friendlyID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	feedback := &entity.Feedback{
		LeadID:        lead.ID,
		Onboarding:    input.Onboarding,
		Staff:         input.Staff,
		ProjectShared: input.ProjectShared,
		Explanation:   input.Explanation,
		Overall:       input.Overall,
		Comment:       input.Comment,
	}
	if err := s.leadRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

// DeleteLead removes the lead and all of its feedbacks and interactions
// as one atomic unit
func (s *LeadService) DeleteLead(ctx context.Context, friendlyID string) error {
	lead, err := s.leadRepo.GetByFriendlyID(ctx, friendlyID)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}
	return s.leadRepo.DeleteCascade(ctx, lead.ID)
}
