package parser

import (
	"sort"
	"strings"

	"jobocr/services/processing/internal/patterns"
	"jobocr/services/processing/internal/textnorm"
)

const DefaultTopSkills = 10

// SkillExtractor maps a text onto the categorized skill catalog. It looks at
// labeled requirement sections when the text has any and at the whole text
// otherwise.
type SkillExtractor struct {
	lib *patterns.Library
}

func NewSkillExtractor(lib *patterns.Library) *SkillExtractor {
	return &SkillExtractor{lib: lib}
}

// Extract returns category → sorted skills. Categories without a match are
// omitted.
func (s *SkillExtractor) Extract(text string) map[string][]string {
	scope := s.sections(text)
	if scope == "" {
		scope = textnorm.Fold(text)
	}

	found := make(map[string]map[string]struct{})
	for _, skill := range s.lib.SkillCatalog() {
		if !skill.Re.MatchString(scope) {
			continue
		}
		if found[skill.Category] == nil {
			found[skill.Category] = make(map[string]struct{})
		}
		found[skill.Category][skill.Name] = struct{}{}
	}

	out := make(map[string][]string, len(found))
	for category, names := range found {
		list := make([]string, 0, len(names))
		for name := range names {
			list = append(list, name)
		}
		sort.Strings(list)
		out[category] = list
	}
	return out
}

// sections joins the bodies of every labeled requirement section, folded.
func (s *SkillExtractor) sections(text string) string {
	var bodies []string
	for _, rule := range s.lib.Rules(patterns.FieldSection) {
		for _, body := range rule.CaptureAll(text) {
			if body != "" {
				bodies = append(bodies, body)
			}
		}
	}
	return textnorm.Fold(strings.Join(bodies, "\n"))
}

// TopSkills flattens the categories, removes duplicates and keeps the first
// limit skills in alphabetical order. limit <= 0 means DefaultTopSkills.
func TopSkills(byCategory map[string][]string, limit int) []string {
	if limit <= 0 {
		limit = DefaultTopSkills
	}
	seen := make(map[string]struct{})
	all := []string{}
	for _, skills := range byCategory {
		for _, skill := range skills {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			all = append(all, skill)
		}
	}
	sort.Strings(all)
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}
