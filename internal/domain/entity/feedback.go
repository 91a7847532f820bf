package entity

import "time"

// Feedback is a post-visit satisfaction survey attached to a lead. Rows are
// created once per submission and only ever removed with the parent lead.
type Feedback struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	LeadID        uint      `gorm:"not null;index" json:"lead_id"`
	Onboarding    int       `json:"onboarding"`
	Staff         int       `json:"staff"`
	ProjectShared int       `json:"project_shared"`
	Explanation   int       `json:"explanation"`
	Overall       int       `json:"overall"`
	Comment       string    `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName returns the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedbacks"
}
