package request

// CreateChannelPartnerRequest represents the partner registration payload
type CreateChannelPartnerRequest struct {
	Name     string  `json:"name" binding:"required,max=150"`
	FirmName string  `json:"firm_name" binding:"required,max=150"`
	Phone    string  `json:"phone" binding:"required,min=7,max=20"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}
