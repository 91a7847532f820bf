package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles carried in JWT claims. The bootstrap administrator is configured,
// not stored, so the user table only ever holds receptionists.
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
)

// User represents a staff account that can sign in at the front desk
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"size:255;not null" json:"first_name"`
	LastName  string    `gorm:"size:255" json:"last_name"`
	Email     string    `gorm:"size:255;unique;not null" json:"email"`
	Password  string    `gorm:"size:255" json:"-"`
	Role      string    `gorm:"size:50;not null;default:'receptionist'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
