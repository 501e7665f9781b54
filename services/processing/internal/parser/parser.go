// Package parser turns OCR text and captions into structured job offers.
//
// Every component is a pure function of its input and a read-only
// patterns.Library, so one Pipeline can serve any number of goroutines.
package parser

import (
	"github.com/google/uuid"

	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/textnorm"
)

var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// OfferID derives a stable offer ID from the source post ID.
func OfferID(postID string) string {
	return uuid.NewSHA1(idNamespace, []byte(postID)).String()
}

// ContentKey identifies a post by its text and the rule set version, so cached
// results are dropped when the rules change.
func ContentKey(post models.RawText) string {
	return uuid.NewSHA1(idNamespace, []byte(patterns.Version+"\x00"+combine(post))).String()
}

type Pipeline struct {
	normalizer *textnorm.Normalizer
	assembler  *Assembler
	skills     *SkillExtractor
}

// NewNormalizer builds a normalizer whose consonant fixes leave the library's
// vocabulary intact, so keywords and rule literals still match after
// normalization.
func NewNormalizer(lib *patterns.Library, opts textnorm.Options) *textnorm.Normalizer {
	protected := make([]string, 0, len(opts.Protected)+len(lib.Vocabulary()))
	protected = append(protected, opts.Protected...)
	opts.Protected = append(protected, lib.Vocabulary()...)
	return textnorm.New(opts)
}

func NewPipeline(lib *patterns.Library, opts textnorm.Options) *Pipeline {
	normalizer := NewNormalizer(lib, opts)
	return &Pipeline{
		normalizer: normalizer,
		assembler:  NewAssembler(lib, normalizer),
		skills:     NewSkillExtractor(lib),
	}
}

func (p *Pipeline) Extract(post models.RawText) models.ExtractionResult {
	return p.assembler.Assemble(post)
}

// SkillCategories runs the section-aware skill extraction on the normalized
// post.
func (p *Pipeline) SkillCategories(post models.RawText) map[string][]string {
	return p.skills.Extract(p.normalizer.Normalize(combine(post)))
}

func (p *Pipeline) Normalize(text string) string {
	return p.normalizer.Normalize(text)
}
