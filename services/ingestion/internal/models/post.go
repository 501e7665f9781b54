package models

import (
	"encoding/json"
	"time"
)

// RawPost is one post as served by the OCR feed and published on the posts
// subject. The processing service decodes the same shape.
type RawPost struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	SourceURL string    `json:"source_url"`
	Caption   string    `json:"caption"`
	OCRText   string    `json:"ocr_text"`
	PostedAt  time.Time `json:"posted_at"`
}

func (p RawPost) MarshalBinary() ([]byte, error) {
	return json.Marshal(p)
}

func (p *RawPost) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}

// Empty reports whether the post carries no text to extract from.
func (p RawPost) Empty() bool {
	return p.Caption == "" && p.OCRText == ""
}

type PostIDs []string

func (ids PostIDs) MarshalBinary() ([]byte, error) {
	return json.Marshal(ids)
}

func (ids *PostIDs) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, ids)
}
