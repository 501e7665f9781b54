package parser

import (
	"regexp"
	"strings"

	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/patterns"
)

var (
	emailAtRe  = regexp.MustCompile(`(?i)\s*(?:\(at\)|\[at\]|@)\s*`)
	emailDotRe = regexp.MustCompile(`(?i)\s*(?:\(dot\)|\[dot\]|\.)\s*`)
)

// ContactExtractor reads the contact block of a post. It expects the raw
// combined text because URLs and obfuscated e-mail addresses do not survive
// normalization.
type ContactExtractor struct {
	lib *patterns.Library
}

func NewContactExtractor(lib *patterns.Library) *ContactExtractor {
	return &ContactExtractor{lib: lib}
}

func (c *ContactExtractor) Extract(text string) models.ContactInfo {
	info := models.ContactInfo{Emails: []string{}, Websites: []string{}}

	info.Name = models.StringPtr(c.first(patterns.FieldContactName, text, nil))
	info.Position = models.StringPtr(c.first(patterns.FieldContactPosition, text, nil))
	info.Phone = models.StringPtr(c.first(patterns.FieldPhone, text, NormalizePhone))
	info.ApplicationInstructions = models.StringPtr(c.first(patterns.FieldInstructions, text, nil))

	info.Emails = c.all(patterns.FieldEmail, text, cleanEmail, nil)
	info.Websites = c.all(patterns.FieldWebsite, text, cleanWebsite, notPartOfEmail)
	return info
}

// first returns the first non-empty capture, after clean, over the ordered rules.
func (c *ContactExtractor) first(field patterns.Field, text string, clean func(string) string) string {
	for _, rule := range c.lib.Rules(field) {
		value, ok := rule.Capture(text)
		if !ok {
			continue
		}
		if clean != nil {
			value = clean(value)
		}
		if value != "" {
			return value
		}
	}
	return ""
}

// all returns every match of the first rule that yields at least one accepted
// match.
func (c *ContactExtractor) all(field patterns.Field, text string, clean func(string) string, accept func(text string, start, end int) bool) []string {
	for _, rule := range c.lib.Rules(field) {
		set := newOrderedSet(0)
		for _, span := range rule.CaptureAllIndex(text) {
			if accept != nil && !accept(text, span[0], span[1]) {
				continue
			}
			if value := clean(text[span[0]:span[1]]); value != "" {
				set.add(value)
			}
		}
		if len(set.items) > 0 {
			return set.items
		}
	}
	return []string{}
}

// NormalizePhone keeps a leading '+' and drops every other non-digit.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	if strings.HasPrefix(raw, "+") {
		b.WriteByte('+')
		raw = raw[1:]
	}
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 || b.String() == "+" {
		return ""
	}
	return b.String()
}

func cleanEmail(raw string) string {
	email := emailAtRe.ReplaceAllString(strings.TrimSpace(raw), "@")
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return ""
	}
	domain := emailDotRe.ReplaceAllString(email[at+1:], ".")
	return strings.ToLower(email[:at] + "@" + strings.Trim(domain, "."))
}

func cleanWebsite(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), ".,;:)!?")
}

// notPartOfEmail rejects domain matches that belong to an e-mail address.
func notPartOfEmail(text string, start, end int) bool {
	if start > 0 {
		if prev := text[start-1]; prev == '@' || prev == '.' {
			return false
		}
	}
	return end >= len(text) || text[end] != '@'
}
