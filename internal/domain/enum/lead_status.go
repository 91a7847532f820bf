package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LeadStatus represents the lifecycle state of a lead
type LeadStatus int

const (
	LeadStatusVisit   LeadStatus = 0
	LeadStatusRevisit LeadStatus = 1
)

func (s LeadStatus) String() string {
	return [...]string{"VISIT", "REVISIT"}[s]
}

func (s LeadStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LeadStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = LeadStatus(i)
		return nil
	}
	switch str {
	case "VISIT":
		*s = LeadStatusVisit
	case "REVISIT":
		*s = LeadStatusRevisit
	}
	return nil
}

func (s LeadStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *LeadStatus) Scan(value interface{}) error {
	if value == nil {
		*s = LeadStatusVisit
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = LeadStatus(v)
	case int:
		*s = LeadStatus(v)
	}
	return nil
}
