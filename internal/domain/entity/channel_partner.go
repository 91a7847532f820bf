package entity

import "time"

// ChannelPartner is an independent broker/referral firm record. Its phone
// uniqueness is a separate domain from Lead.Phone, and leads reference
// partners only through free-text fields.
type ChannelPartner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	FirmName  string    `gorm:"size:255;not null" json:"firm_name"`
	Phone     string    `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the ChannelPartner model
func (ChannelPartner) TableName() string {
	return "channel_partners"
}
