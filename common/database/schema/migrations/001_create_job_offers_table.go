package migrations

import "jobocr/common/database/schema"

var CreateJobOffersTable = schema.Migration{
	Version:     1,
	Description: "Create job_offers table",
	Up: `
		CREATE TABLE IF NOT EXISTS job_offers (
			id UUID,
			source LowCardinality(String),
			source_url String,
			posted_at DateTime,
			company Nullable(String),
			title Nullable(String),
			area LowCardinality(String),
			skills Array(String),
			benefits Array(String),
			deadline Nullable(String),
			is_open Bool,
			contact_name Nullable(String),
			contact_position Nullable(String),
			contact_emails Array(String),
			contact_phone Nullable(String),
			contact_websites Array(String),
			application_instructions Nullable(String),
			skill_categories Map(String, Array(String)),
			caption String,
			ocr_text String,
			rules_version String,
			created_at DateTime
		) ENGINE = ReplacingMergeTree(created_at)
		PARTITION BY toYYYYMM(posted_at)
		ORDER BY (id)
		SETTINGS index_granularity = 8192
	`,
	Down: `DROP TABLE IF EXISTS job_offers`,
}

// All lists every migration in version order.
var All = []schema.Migration{
	CreateJobOffersTable,
}
