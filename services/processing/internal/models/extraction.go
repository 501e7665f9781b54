package models

import (
	"encoding/json"
)

type Area string

const (
	AreaDataScience Area = "data-science"
	AreaWebDev      Area = "web-dev"
	AreaMobile      Area = "mobile"
	AreaSystems     Area = "systems"
	AreaCyber       Area = "cyber"
	AreaGeneral     Area = "general"
)

// Areas lists the classifiable areas in tie-break order. AreaGeneral is the
// fallback and is not part of the list.
var Areas = []Area{AreaDataScience, AreaWebDev, AreaMobile, AreaSystems, AreaCyber}

func (a Area) Valid() bool {
	if a == AreaGeneral {
		return true
	}
	for _, known := range Areas {
		if a == known {
			return true
		}
	}
	return false
}

// RawText is one post as delivered by the OCR producer.
type RawText struct {
	OCRText string `json:"ocr_text"`
	Caption string `json:"caption"`
}

type ContactInfo struct {
	Name                    *string  `json:"name"`
	Position                *string  `json:"position"`
	Emails                  []string `json:"emails"`
	Phone                   *string  `json:"phone"`
	Websites                []string `json:"websites"`
	ApplicationInstructions *string  `json:"application_instructions"`
}

// ExtractionResult field names and Area values are a stable contract shared
// with downstream consumers.
type ExtractionResult struct {
	Company  *string     `json:"company"`
	Title    *string     `json:"title"`
	Area     Area        `json:"area"`
	Skills   []string    `json:"skills"`
	Benefits []string    `json:"benefits"`
	Deadline *string     `json:"deadline"`
	IsOpen   bool        `json:"is_open"`
	Contact  ContactInfo `json:"contact"`
}

func NewExtractionResult() ExtractionResult {
	return ExtractionResult{
		Area:     AreaGeneral,
		Skills:   []string{},
		Benefits: []string{},
		IsOpen:   true,
		Contact:  ContactInfo{Emails: []string{}, Websites: []string{}},
	}
}

func (r ExtractionResult) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

func (r *ExtractionResult) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, r)
}

// StringPtr returns nil for the empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
