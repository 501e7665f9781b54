// Package textnorm rewrites noisy OCR text into a canonical form before any
// pattern matching happens.
//
// Normalize is total and idempotent: it accepts any string, never panics, and
// Normalize(Normalize(s)) == Normalize(s).
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxPasses bounds the fixed-point loop. Every rewrite either shortens a word
// or maps it to a stable canonical spelling, so two or three passes suffice in
// practice.
const maxPasses = 6

// Options selects the optional rewrites of a Normalizer.
type Options struct {
	// ConsonantFixes enables the rn→m, cl→d, li→h and ii→n corrections. They
	// undo frequent OCR letter merges but also damage legitimate words such as
	// "cliente" or "analista".
	ConsonantFixes bool
	// Protected lists words the consonant fixes leave alone. Entries may hold
	// several words and are compared case- and accent-insensitively.
	Protected []string
}

// DefaultOptions enables the consonant fixes and protects nothing.
func DefaultOptions() Options {
	return Options{ConsonantFixes: true}
}

// Normalizer is immutable after New and safe for concurrent use.
type Normalizer struct {
	opts      Options
	protected map[string]struct{}
}

// New builds a Normalizer. The Protected entries are split into words and
// folded once here.
func New(opts Options) *Normalizer {
	n := &Normalizer{opts: opts, protected: make(map[string]struct{})}
	for _, entry := range opts.Protected {
		for _, word := range wordRe.FindAllString(Fold(entry), -1) {
			n.protected[word] = struct{}{}
		}
	}
	return n
}

var (
	wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

	iaStandaloneRe = regexp.MustCompile(`\bIA\b`)
	iaLowerRe      = regexp.MustCompile(`IA([a-z])`)
	upperIALowerRe = regexp.MustCompile(`([A-Z])IA([a-z])`)
	lowerIAEndRe   = regexp.MustCompile(`([a-z])IA\b`)

	disallowedRe   = regexp.MustCompile(`[^\w\s.,;:()\-+@áéíóúÁÉÍÓÚñÑüÜ]`)
	inlineSpaceRe  = regexp.MustCompile(`[ \t\f\r]+`)
	lineBreakRunRe = regexp.MustCompile(`\s*\n\s*`)

	csharpRe     = regexp.MustCompile(`(?i)\bc[ \t]?#`)
	ciCDRe       = regexp.MustCompile(`(?i)\bci[ \t]*/[ \t]*cd\b`)
	digitSlashRe = regexp.MustCompile(`\d+(?:/\d+)+`)
)

// Normalize applies the rewrite pass until the text stops changing.
func (n *Normalizer) Normalize(text string) string {
	out := n.pass(text)
	for i := 1; i < maxPasses; i++ {
		next := n.pass(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func (n *Normalizer) pass(s string) string {
	if s == "" {
		return ""
	}
	s = foldUnicode(s)
	s = Canonical(s)
	s = fixIA(s)
	s = wordRe.ReplaceAllStringFunc(s, restoreAccents)
	if n.opts.ConsonantFixes {
		s = wordRe.ReplaceAllStringFunc(s, n.fixConsonants)
	}
	s = wordRe.ReplaceAllStringFunc(s, restoreSuffixAccent)
	s = wordRe.ReplaceAllStringFunc(s, fixTechTerm)
	s = wordRe.ReplaceAllStringFunc(s, fixAbilitySuffix)
	s = wordRe.ReplaceAllStringFunc(s, fixProperNoun)
	return clean(s)
}

// Canonical spells the terms that contain characters dropped by the cleanup
// step in a form that survives it: "C#" becomes "CSharp", "CI/CD" becomes
// "CI-CD" and slashes between digits become hyphens.
func Canonical(s string) string {
	s = csharpRe.ReplaceAllString(s, "CSharp")
	s = ciCDRe.ReplaceAllString(s, "CI-CD")
	return digitSlashRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, "/", "-")
	})
}

// Fold lowercases s and strips its accents. Keyword tables are folded the
// same way as the text they are searched in.
func Fold(s string) string {
	return strings.ToLower(stripMarks(s))
}

// foldUnicode decomposes the text, drops combining marks and replaces every
// rune that has no ASCII form with a space.
func foldUnicode(s string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if r >= utf8.RuneSelf {
				return ' '
			}
			return r
		}),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return asciiOnly(s)
	}
	return out
}

func asciiOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= utf8.RuneSelf {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripMarks removes accents but keeps every other rune.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func fixIA(s string) string {
	s = iaStandaloneRe.ReplaceAllString(s, "ia")
	s = iaLowerRe.ReplaceAllString(s, "ia${1}")
	s = upperIALowerRe.ReplaceAllString(s, "${1}ia${2}")
	return lowerIAEndRe.ReplaceAllString(s, "${1}ia")
}

func restoreAccents(word string) string {
	accented, ok := accentWords[strings.ToLower(word)]
	if !ok {
		return word
	}
	return matchCase(word, accented)
}

func (n *Normalizer) fixConsonants(word string) string {
	if _, ok := n.protected[Fold(word)]; ok {
		return word
	}
	fixed := word
	for _, fix := range consonantFixes {
		fixed = strings.ReplaceAll(fixed, fix.from, fix.to)
	}
	if fixed == word || utf8.RuneCountInString(fixed) < 3 {
		return word
	}
	return fixed
}

func restoreSuffixAccent(word string) string {
	for _, sfx := range suffixAccents {
		if len(word) > len(sfx.from) && strings.HasSuffix(word, sfx.from) {
			return strings.TrimSuffix(word, sfx.from) + sfx.to
		}
	}
	return word
}

func fixTechTerm(word string) string {
	term, ok := techTerms[strings.ToLower(stripMarks(word))]
	if !ok {
		return word
	}
	if term == strings.ToLower(term) {
		return matchCase(word, term)
	}
	return term
}

func fixAbilitySuffix(word string) string {
	lower := strings.ToLower(word)
	if len(lower) != len(word) {
		return word
	}
	for _, sfx := range abilitySuffixes {
		if !strings.HasSuffix(lower, sfx.from) {
			continue
		}
		stem := word[:len(word)-len(sfx.from)]
		if isUpper(word) {
			return stem + strings.ToUpper(sfx.to)
		}
		return stem + sfx.to
	}
	return word
}

func fixProperNoun(word string) string {
	first, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) {
		return word
	}
	if noun, ok := properNouns[strings.ToLower(stripMarks(word))]; ok {
		return noun
	}
	return word
}

func clean(s string) string {
	s = disallowedRe.ReplaceAllString(s, " ")
	s = inlineSpaceRe.ReplaceAllString(s, " ")
	s = lineBreakRunRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// matchCase copies the capitalization of original onto replacement: all-caps
// words stay all-caps, a capitalized first letter stays capitalized.
func matchCase(original, replacement string) string {
	if isUpper(original) && utf8.RuneCountInString(original) > 1 {
		return strings.ToUpper(replacement)
	}
	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(replacement)
		return string(unicode.ToUpper(r)) + replacement[size:]
	}
	return replacement
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
