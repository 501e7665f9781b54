package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/textnorm"
)

const (
	MaxSkills   = 10
	MaxBenefits = 8
)

// lengthBounds is an inclusive rune-count range; max 0 means unbounded.
type lengthBounds struct {
	min, max int
}

func (b lengthBounds) accepts(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= b.min && (b.max == 0 || n <= b.max)
}

var (
	companyBounds  = lengthBounds{min: 3, max: 99}
	titleBounds    = lengthBounds{min: 4, max: 149}
	deadlineBounds = lengthBounds{min: 4}
	skillBounds    = lengthBounds{min: 3, max: 49}
	benefitBounds  = lengthBounds{min: 4, max: 99}
)

var fragmentSplitRe = regexp.MustCompile(`[,;\n•·▪●*]|\s+[-–—]\s+`)

const fragmentCutset = " \t-–—.:"

// FieldExtractor pulls company, title, deadline, skills and benefits out of
// normalized text.
type FieldExtractor struct {
	lib *patterns.Library
}

func NewFieldExtractor(lib *patterns.Library) *FieldExtractor {
	return &FieldExtractor{lib: lib}
}

// Extract fills the field-derived part of a result. Area, status and contact
// keep their defaults.
func (e *FieldExtractor) Extract(text string) models.ExtractionResult {
	res := models.NewExtractionResult()

	if company, ok := e.single(patterns.FieldCompany, text, companyBounds); ok {
		res.Company = models.StringPtr(titleCase(company))
	}
	if title, ok := e.single(patterns.FieldTitle, text, titleBounds); ok {
		res.Title = models.StringPtr(titleCase(title))
	}
	if deadline, ok := e.single(patterns.FieldDeadline, text, deadlineBounds); ok {
		res.Deadline = models.StringPtr(deadline)
	}

	res.Skills = e.Skills(text)
	res.Benefits = e.Benefits(text)
	return res
}

// Skills returns up to MaxSkills skills: fragments of every skills rule
// first, then whitelisted technology names found anywhere in the text.
func (e *FieldExtractor) Skills(text string) []string {
	set := newOrderedSet(MaxSkills)
	e.multi(patterns.FieldSkills, text, skillBounds, set)

	folded := textnorm.Fold(text)
	for _, term := range e.lib.TechWhitelist() {
		if set.full() {
			break
		}
		if strings.Contains(folded, term.Needle()) {
			set.add(term.Name)
		}
	}
	return set.items
}

func (e *FieldExtractor) Benefits(text string) []string {
	set := newOrderedSet(MaxBenefits)
	e.multi(patterns.FieldBenefits, text, benefitBounds, set)
	return set.items
}

// single returns the first capture accepted by bounds. A rejected capture
// moves on to the next rule.
func (e *FieldExtractor) single(field patterns.Field, text string, bounds lengthBounds) (string, bool) {
	for _, rule := range e.lib.Rules(field) {
		value, ok := rule.Capture(text)
		if !ok || !bounds.accepts(value) {
			continue
		}
		return value, true
	}
	return "", false
}

func (e *FieldExtractor) multi(field patterns.Field, text string, bounds lengthBounds, set *orderedSet) {
	for _, rule := range e.lib.Rules(field) {
		for _, capture := range rule.CaptureAll(text) {
			for _, fragment := range splitFragments(capture) {
				if set.full() {
					return
				}
				if !bounds.accepts(fragment) {
					continue
				}
				if name, ok := e.lib.SymbolName(fragment); ok {
					set.add(name)
					continue
				}
				set.add(titleCase(fragment))
			}
		}
	}
}

func splitFragments(s string) []string {
	parts := fragmentSplitRe.Split(s, -1)
	out := parts[:0]
	for _, p := range parts {
		p = strings.Trim(p, fragmentCutset)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest. A Caser is not safe for concurrent use, so each call builds its own.
func titleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// orderedSet keeps first-seen order and compares case-insensitively.
type orderedSet struct {
	limit int
	seen  map[string]struct{}
	items []string
}

func newOrderedSet(limit int) *orderedSet {
	return &orderedSet{limit: limit, seen: make(map[string]struct{}), items: []string{}}
}

func (s *orderedSet) full() bool {
	return s.limit > 0 && len(s.items) >= s.limit
}

func (s *orderedSet) add(v string) bool {
	if s.full() {
		return false
	}
	key := strings.ToLower(v)
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, v)
	return true
}
