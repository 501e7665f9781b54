package httpapi

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"jobocr/common/errors"
	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/parser"
	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/processor"
)

// Extraction is the part of the processor the API serves.
type Extraction interface {
	Extract(ctx context.Context, text models.RawText) models.ExtractionResult
	SkillCategories(text models.RawText) map[string][]string
	Stats() processor.Stats
}

type BatchExtraction interface {
	ExtractAll(ctx context.Context, texts []models.RawText) ([]models.ExtractionResult, error)
}

type Handler struct {
	extraction   Extraction
	batch        BatchExtraction
	maxBatchSize int
}

func NewHandler(extraction Extraction, batch BatchExtraction, maxBatchSize int) *Handler {
	return &Handler{extraction: extraction, batch: batch, maxBatchSize: maxBatchSize}
}

type batchRequest struct {
	Posts []models.RawText `json:"posts"`
}

type skillsRequest struct {
	models.RawText
	Limit int `json:"limit"`
}

type skillsResponse struct {
	Categories map[string][]string `json:"categories"`
	TopSkills  []string            `json:"top_skills"`
}

type healthResponse struct {
	Status       string `json:"status"`
	RulesVersion string `json:"rules_version"`
	Processed    int64  `json:"processed"`
	CacheHits    int64  `json:"cache_hits"`
	ExtractAvgMS int64  `json:"extract_avg_ms"`
}

// Extract handles POST /v1/extract
func (h *Handler) Extract(c *gin.Context) {
	var req models.RawText
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid request body", err))
		return
	}
	respondOK(c, h.extraction.Extract(c.Request.Context(), req))
}

// ExtractBatch handles POST /v1/extract/batch
func (h *Handler) ExtractBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid request body", err))
		return
	}
	if h.maxBatchSize > 0 && len(req.Posts) > h.maxBatchSize {
		respondError(c, errors.InvalidInput(fmt.Sprintf("batch exceeds %d posts", h.maxBatchSize), nil))
		return
	}

	results, err := h.batch.ExtractAll(c.Request.Context(), req.Posts)
	if err != nil {
		respondError(c, errors.Unavailable("batch extraction interrupted", err))
		return
	}
	respondOK(c, results)
}

// Skills handles POST /v1/skills
func (h *Handler) Skills(c *gin.Context) {
	var req skillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid request body", err))
		return
	}
	categories := h.extraction.SkillCategories(req.RawText)
	respondOK(c, skillsResponse{
		Categories: categories,
		TopSkills:  parser.TopSkills(categories, req.Limit),
	})
}

// Health handles GET /healthz
func (h *Handler) Health(c *gin.Context) {
	stats := h.extraction.Stats()
	respondOK(c, healthResponse{
		Status:       "ok",
		RulesVersion: patterns.Version,
		Processed:    stats.Processed,
		CacheHits:    stats.CacheHits,
		ExtractAvgMS: stats.ExtractAvg.Milliseconds(),
	})
}
