package store

import (
	"context"
	"fmt"

	"jobocr/common/telemetry"
	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const insertOfferQuery = `
	INSERT INTO job_offers (
		id, source, source_url, posted_at, company, title, area,
		skills, benefits, deadline, is_open, contact_name,
		contact_position, contact_emails, contact_phone,
		contact_websites, application_instructions, skill_categories,
		caption, ocr_text, rules_version, created_at
	) VALUES (
		?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
	)
`

// Execer is the subset of clickhouse.Conn the store needs.
type Execer interface {
	Exec(ctx context.Context, query string, args ...any) error
}

// ClickHouseStore writes job offers to the job_offers table. Rows are keyed by
// offer id and deduplicated by the ReplacingMergeTree engine.
type ClickHouseStore struct {
	db     Execer
	logger *zap.Logger
	tracer trace.Tracer
}

func NewClickHouseStore(db Execer, logger *zap.Logger) *ClickHouseStore {
	return &ClickHouseStore{
		db:     db,
		logger: logger,
		tracer: telemetry.GetTracer("jobocr/processing/store"),
	}
}

func (s *ClickHouseStore) SaveOffer(ctx context.Context, offer models.JobOffer) error {
	ctx, span := s.tracer.Start(ctx, "SaveOffer")
	defer span.End()
	span.SetAttributes(telemetry.String("offer.id", offer.ID))

	if err := s.db.Exec(ctx, insertOfferQuery, offerRow(offer)...); err != nil {
		telemetry.RecordError(span, err)
		return fmt.Errorf("insert job offer: %w", err)
	}

	s.logger.Debug("Stored job offer", zap.String("offer_id", offer.ID))
	return nil
}

// offerRow returns the insert arguments in column order.
func offerRow(offer models.JobOffer) []any {
	r := offer.Result
	categories := offer.SkillCategories
	if categories == nil {
		categories = map[string][]string{}
	}
	return []any{
		offer.ID,
		offer.Source,
		offer.SourceURL,
		offer.PostedAt,
		r.Company,
		r.Title,
		string(r.Area),
		nonNil(r.Skills),
		nonNil(r.Benefits),
		r.Deadline,
		r.IsOpen,
		r.Contact.Name,
		r.Contact.Position,
		nonNil(r.Contact.Emails),
		r.Contact.Phone,
		nonNil(r.Contact.Websites),
		r.Contact.ApplicationInstructions,
		categories,
		offer.Caption,
		offer.OCRText,
		patterns.Version,
		offer.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
