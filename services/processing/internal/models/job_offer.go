package models

import (
	"time"
)

// RawPost is the message published on the posts subject by the ingestion
// service.
type RawPost struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	SourceURL string    `json:"source_url"`
	Caption   string    `json:"caption"`
	OCRText   string    `json:"ocr_text"`
	PostedAt  time.Time `json:"posted_at"`
}

func (p RawPost) Text() RawText {
	return RawText{OCRText: p.OCRText, Caption: p.Caption}
}

type JobOffer struct {
	ID              string
	Source          string
	SourceURL       string
	PostedAt        time.Time
	Result          ExtractionResult
	SkillCategories map[string][]string
	Caption         string
	OCRText         string
	CreatedAt       time.Time
}
