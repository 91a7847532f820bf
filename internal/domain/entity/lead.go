package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/leaddesk/leaddesk-api/internal/domain/enum"
)

// Lead is the central enquiry record of the front desk. FriendlyID is the
// human-facing code derived from the primary key (LEAD-0001 style) and is
// never reassigned or reused. Phone is unique across all leads.
type Lead struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	FriendlyID  string          `gorm:"size:20;uniqueIndex;not null" json:"friendly_id"`
	Status      enum.LeadStatus `gorm:"not null;default:0" json:"status"`
	Source      enum.LeadSource `gorm:"not null;default:0" json:"source"`
	SourcesList string          `gorm:"size:255" json:"sources_list"`

	FirstName    string  `gorm:"size:100;not null" json:"first_name"`
	LastName     string  `gorm:"size:100" json:"last_name"`
	CustomerName string  `gorm:"size:255;not null" json:"customer_name"`
	Phone        string  `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email        *string `gorm:"size:255" json:"email,omitempty"`
	Occupation   *string `gorm:"size:255" json:"occupation,omitempty"`
	Address      *string `gorm:"type:text" json:"address,omitempty"`
	City         *string `gorm:"size:100" json:"city,omitempty"`
	Pincode      *string `gorm:"size:10" json:"pincode,omitempty"`

	Purpose        *string `gorm:"size:100" json:"purpose,omitempty"`
	Configuration  *string `gorm:"size:100" json:"configuration,omitempty"`
	Budget         *string `gorm:"size:100" json:"budget,omitempty"`
	Possession     *string `gorm:"size:100" json:"possession,omitempty"`
	Floor          *string `gorm:"size:100" json:"floor,omitempty"`
	ViewPreference *string `gorm:"size:100" json:"view_preference,omitempty"`

	Consent   bool    `gorm:"not null;default:true" json:"consent"`
	Signature *string `gorm:"type:text" json:"signature,omitempty"`

	// Channel partner sourcing fields are free text on purpose: a walk-in
	// lead can name a partner that was never registered.
	CPFirm  *string `gorm:"size:255" json:"cp_firm,omitempty"`
	CPExec  *string `gorm:"size:255" json:"cp_exec,omitempty"`
	CPPhone *string `gorm:"size:20" json:"cp_phone,omitempty"`

	// Reserved for sales-executive routing; no write path sets it yet.
	AssignedTo *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Feedbacks    []Feedback    `gorm:"foreignKey:LeadID" json:"feedbacks,omitempty"`
	Interactions []Interaction `gorm:"foreignKey:LeadID" json:"interactions,omitempty"`
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}
