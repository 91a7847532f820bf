package request

// CreateLeadRequest represents the lead intake form payload
type CreateLeadRequest struct {
	FirstName          string   `json:"first_name" binding:"required,max=100"`
	LastName           string   `json:"last_name" binding:"required,max=100"`
	Phone              string   `json:"phone" binding:"required,min=7,max=20"`
	Email              *string  `json:"email,omitempty" binding:"omitempty,email"`
	Occupation         *string  `json:"occupation,omitempty"`
	Address            *string  `json:"address,omitempty"`
	City               *string  `json:"city,omitempty"`
	Pincode            *string  `json:"pincode,omitempty"`
	Purpose            *string  `json:"purpose,omitempty"`
	Configuration      *string  `json:"configuration,omitempty"`
	Budget             *string  `json:"budget,omitempty"`
	Possession         *string  `json:"possession,omitempty"`
	Floor              *string  `json:"floor,omitempty"`
	ViewPreference     *string  `json:"view_preference,omitempty"`
	SelectedSources    []string `json:"selected_sources,omitempty"`
	ShowChannelPartner bool     `json:"show_channel_partner"`
	CPFirm             *string  `json:"cp_firm,omitempty"`
	CPExec             *string  `json:"cp_exec,omitempty"`
	CPPhone            *string  `json:"cp_phone,omitempty"`
	Consent            *bool    `json:"consent,omitempty"`
	Signature          *string  `json:"signature,omitempty"`
}

// SaveFeedbackRequest represents a visitor feedback submission
type SaveFeedbackRequest struct {
	Onboarding    int    `json:"onboarding"`
	Staff         int    `json:"staff"`
	ProjectShared int    `json:"project_shared"`
	Explanation   int    `json:"explanation"`
	Overall       int    `json:"overall"`
	Comment       string `json:"comment"`
}
