package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LeadSource represents the acquisition channel of a lead, fixed at creation
type LeadSource int

const (
	LeadSourceWalkIn LeadSource = iota
	LeadSourceChannelPartner
	LeadSourceSocialMedia
	LeadSourceGoogle
	LeadSourcePropertyPortal
	LeadSourceAdvertisement
	LeadSourceReferral
	LeadSourceOther
)

var leadSourceNames = [...]string{
	"WALK_IN",
	"CHANNEL_PARTNER",
	"SOCIAL_MEDIA",
	"GOOGLE",
	"PROPERTY_PORTAL",
	"ADVERTISEMENT",
	"REFERRAL",
	"OTHER",
}

func (s LeadSource) String() string {
	if s < LeadSourceWalkIn || int(s) >= len(leadSourceNames) {
		return "OTHER"
	}
	return leadSourceNames[s]
}

func (s LeadSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LeadSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = LeadSource(i)
		return nil
	}
	for i, name := range leadSourceNames {
		if name == str {
			*s = LeadSource(i)
			return nil
		}
	}
	*s = LeadSourceOther
	return nil
}

func (s LeadSource) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *LeadSource) Scan(value interface{}) error {
	if value == nil {
		*s = LeadSourceWalkIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = LeadSource(v)
	case int:
		*s = LeadSource(v)
	}
	return nil
}
