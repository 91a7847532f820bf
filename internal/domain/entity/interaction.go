package entity

import "time"

// Interaction is an append-only audit entry on a lead. Rows are never
// updated and only ever removed with the parent lead.
type Interaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LeadID    uint      `gorm:"not null;index" json:"lead_id"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the Interaction model
func (Interaction) TableName() string {
	return "interactions"
}
