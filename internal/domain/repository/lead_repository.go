package repository

import (
	"context"
	"errors"
	"time"

	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	"github.com/leaddesk/leaddesk-api/internal/domain/enum"
	"github.com/leaddesk/leaddesk-api/pkg/pagination"
)

// ErrDuplicateKey is returned by repositories when an insert violates a
// unique constraint (phone or friendly_id). It lets the service layer keep
// its conflict handling storage-agnostic.
var ErrDuplicateKey = errors.New("duplicate key")

// LeadSummary is the projection returned by the recent-leads query
type LeadSummary struct {
	FriendlyID   string          `json:"friendly_id"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Source       enum.LeadSource `json:"source"`
	SourcesList  string          `json:"sources_list"`
	Purpose      *string         `json:"purpose,omitempty"`
	Status       enum.LeadStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// LeadSearchRow is a single search hit
type LeadSearchRow struct {
	FriendlyID   string `json:"friendly_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	HasFeedback  bool   `json:"has_feedback"`
}

// LeadStats holds the receptionist dashboard counters
type LeadStats struct {
	VisitCount          int64 `json:"visit_count"`
	RevisitCount        int64 `json:"revisit_count"`
	TotalVisitsRevisits int64 `json:"total_visits_revisits"`
	AssignedCount       int64 `json:"assigned_count"`
	PendingCount        int64 `json:"pending_count"`
}

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	// Create persists a new lead, assigning its friendly ID from the current
	// maximum primary key inside the same transaction.
	Create(ctx context.Context, lead *entity.Lead) error
	GetByFriendlyID(ctx context.Context, friendlyID string) (*entity.Lead, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Lead, error)
	// GetDetail returns a lead with its feedbacks and interactions preloaded.
	GetDetail(ctx context.Context, friendlyID string) (*entity.Lead, error)
	// MarkRevisit sets the status to REVISIT and appends one interaction row
	// in the same transaction. Returns nil, nil when the lead does not exist.
	MarkRevisit(ctx context.Context, friendlyID, interactionType, content string) (*entity.Lead, error)
	Recent(ctx context.Context, limit int) ([]LeadSummary, error)
	// List returns leads ordered by creation time descending. A nil params
	// returns the full set.
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Lead, int64, error)
	// Search matches query against friendly_id, customer_name and phone;
	// paddedCode, when non-empty, is additionally matched against friendly_id.
	Search(ctx context.Context, query, paddedCode string, limit int) ([]LeadSearchRow, error)
	Stats(ctx context.Context) (*LeadStats, error)
	CreateFeedback(ctx context.Context, feedback *entity.Feedback) error
	// DeleteCascade removes the lead and all of its feedbacks and
	// interactions as one transaction.
	DeleteCascade(ctx context.Context, leadID uint) error
}
