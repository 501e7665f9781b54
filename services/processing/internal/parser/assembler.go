package parser

import (
	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/textnorm"
)

// Assembler runs the whole extraction for one post.
type Assembler struct {
	normalizer *textnorm.Normalizer
	detector   *Detector
	fields     *FieldExtractor
	areas      *AreaClassifier
	status     *StatusResolver
	contact    *ContactExtractor
}

func NewAssembler(lib *patterns.Library, normalizer *textnorm.Normalizer) *Assembler {
	return &Assembler{
		normalizer: normalizer,
		detector:   NewDetector(lib),
		fields:     NewFieldExtractor(lib),
		areas:      NewAreaClassifier(lib),
		status:     NewStatusResolver(lib),
		contact:    NewContactExtractor(lib),
	}
}

func combine(post models.RawText) string {
	return post.Caption + "\n" + post.OCRText
}

// Assemble normalizes caption and OCR text once and merges every component's
// output. The detector's company guess is used only when no company rule
// matched and the guess is a real name.
func (a *Assembler) Assemble(post models.RawText) models.ExtractionResult {
	combined := combine(post)
	normalized := a.normalizer.Normalize(combined)

	_, guess := a.detector.Detect(normalized)

	res := a.fields.Extract(normalized)
	if res.Company == nil && guess != "" && guess != UnknownCompany {
		res.Company = models.StringPtr(titleCase(guess))
	}
	res.Area = a.areas.Classify(normalized)
	res.IsOpen = a.status.Resolve(normalized)
	res.Contact = a.contact.Extract(combined)
	return res
}
