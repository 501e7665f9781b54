// Package patterns holds the versioned rule tables used by the extraction
// pipeline. A Library is compiled once per process and is read-only
// afterwards, so a single instance can be shared by any number of goroutines.
package patterns

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"jobocr/services/processing/internal/models"
	"jobocr/services/processing/internal/textnorm"
)

// Version identifies the rule set. Bump it whenever a rule or keyword table
// changes observable output.
const Version = "2.4.0"

type Field string

const (
	FieldJobTrigger      Field = "job_trigger"
	FieldCompany         Field = "company"
	FieldTitle           Field = "title"
	FieldDeadline        Field = "deadline"
	FieldSkills          Field = "skills"
	FieldBenefits        Field = "benefits"
	FieldSection         Field = "section"
	FieldContactName     Field = "contact_name"
	FieldContactPosition Field = "contact_position"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldWebsite         Field = "website"
	FieldInstructions    Field = "application_instructions"
)

type Language string

const (
	LangAny Language = "any"
	LangES  Language = "es"
	LangEN  Language = "en"
)

// RuleDef is the uncompiled form of a Rule. Group 0 selects the whole match;
// for job triggers it also means the rule captures no company.
type RuleDef struct {
	Name  string
	Field Field
	Lang  Language
	Group int
	Expr  string
}

// Rule is a compiled RuleDef.
type Rule struct {
	Name  string
	Field Field
	Lang  Language
	Group int
	Re    *regexp.Regexp
}

// Capture returns the trimmed text of the rule's group in the first match.
func (r Rule) Capture(text string) (string, bool) {
	m := r.Re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[r.Group]), true
}

// CaptureAll returns the trimmed group text of every non-overlapping match.
func (r Rule) CaptureAll(text string) []string {
	matches := r.Re.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSpace(m[r.Group]))
	}
	return out
}

// CaptureAllIndex is CaptureAll with the byte offsets of each captured group.
func (r Rule) CaptureAllIndex(text string) [][2]int {
	matches := r.Re.FindAllStringSubmatchIndex(text, -1)
	out := make([][2]int, 0, len(matches))
	for _, m := range matches {
		start, end := m[2*r.Group], m[2*r.Group+1]
		if start < 0 {
			continue
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

// TechTerm is a whitelisted technology. Name is what extraction reports.
type TechTerm struct {
	Name   string
	needle string
}

// Needle is the folded, canonical spelling searched for in folded text.
func (t TechTerm) Needle() string { return t.needle }

type AreaKeywords struct {
	Area     models.Area
	Keywords []string
}

type SkillCategory struct {
	Name   string
	Skills []string
}

// CatalogSkill is one skill of the categorized catalog with its
// word-boundary matcher. Matchers expect lowercased input and accept the
// accented and unaccented spelling of each vowel.
type CatalogSkill struct {
	Category string
	Name     string
	Re       *regexp.Regexp
}

// Tables groups the keyword data that is not expressed as regex rules.
// Vocabulary lists words that rules spell out literally.
type Tables struct {
	TechWhitelist     []string
	AreaKeywords      []AreaKeywords
	ClosureIndicators []string
	SkillCatalog      []SkillCategory
	Vocabulary        []string
}

// Library is the compiled rule set plus its keyword tables. Keywords,
// indicators and needles are stored folded with textnorm.Fold, so callers
// fold the text before searching it.
type Library struct {
	version    string
	rules      map[Field][]Rule
	tech       []TechTerm
	symbols    map[string]string
	areas      []AreaKeywords
	closures   []string
	catalog    []CatalogSkill
	vocabulary []string
}

// foldKey is the form every table entry is searched under.
func foldKey(s string) string {
	return textnorm.Fold(textnorm.Canonical(s))
}

var accentClasses = strings.NewReplacer(
	"a", "[aá]", "e", "[eé]", "i", "[ií]", "o", "[oó]", "u", "[uúü]", "n", "[nñ]",
)

// Build compiles defs and tables. Rule order within a field is preserved: it
// is the order in which extractors try them.
func Build(defs []RuleDef, tables Tables) (*Library, error) {
	lib := &Library{
		version: Version,
		rules:   make(map[Field][]Rule),
		symbols: make(map[string]string),
	}
	vocabulary := make(map[string]struct{})
	remember := func(words ...string) {
		for _, w := range words {
			vocabulary[w] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("rule for field %q has no name", def.Field)
		}
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("duplicate rule name %q", def.Name)
		}
		seen[def.Name] = struct{}{}

		re, err := regexp.Compile(def.Expr)
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", def.Name, err)
		}
		if def.Group < 0 || def.Group > re.NumSubexp() {
			return nil, fmt.Errorf("rule %q: group %d out of range (pattern has %d)", def.Name, def.Group, re.NumSubexp())
		}
		lang := def.Lang
		if lang == "" {
			lang = LangAny
		}
		lib.rules[def.Field] = append(lib.rules[def.Field], Rule{
			Name:  def.Name,
			Field: def.Field,
			Lang:  lang,
			Group: def.Group,
			Re:    re,
		})
	}

	for _, name := range tables.TechWhitelist {
		needle := foldKey(name)
		lib.tech = append(lib.tech, TechTerm{Name: name, needle: needle})
		if needle != textnorm.Fold(name) {
			lib.symbols[needle] = name
		}
		remember(name)
	}

	for _, area := range tables.AreaKeywords {
		if !area.Area.Valid() || area.Area == models.AreaGeneral {
			return nil, fmt.Errorf("area %q cannot carry keywords", area.Area)
		}
		keywords := make([]string, 0, len(area.Keywords))
		for _, kw := range area.Keywords {
			keywords = append(keywords, foldKey(kw))
		}
		remember(area.Keywords...)
		lib.areas = append(lib.areas, AreaKeywords{Area: area.Area, Keywords: keywords})
	}

	for _, indicator := range tables.ClosureIndicators {
		lib.closures = append(lib.closures, foldKey(indicator))
	}
	remember(tables.ClosureIndicators...)

	for _, category := range tables.SkillCatalog {
		for _, skill := range category.Skills {
			name := strings.ToLower(skill)
			expr := accentClasses.Replace(regexp.QuoteMeta(foldKey(skill)))
			re, err := regexp.Compile(`(?:^|[^\p{L}\p{N}_])` + expr + `(?:[^\p{L}\p{N}_]|$)`)
			if err != nil {
				return nil, fmt.Errorf("compile skill %q: %w", skill, err)
			}
			lib.catalog = append(lib.catalog, CatalogSkill{Category: category.Name, Name: name, Re: re})
			remember(skill)
		}
	}

	remember(tables.Vocabulary...)
	lib.vocabulary = make([]string, 0, len(vocabulary))
	for w := range vocabulary {
		lib.vocabulary = append(lib.vocabulary, w)
	}
	sort.Strings(lib.vocabulary)

	return lib, nil
}

// MustBuild is Build for static tables; a broken rule is a programming error.
func MustBuild(defs []RuleDef, tables Tables) *Library {
	lib, err := Build(defs, tables)
	if err != nil {
		panic(fmt.Sprintf("patterns: %v", err))
	}
	return lib
}

// Default returns the process-wide library built from the bundled tables.
var Default = sync.OnceValue(func() *Library {
	return MustBuild(DefaultRules(), DefaultTables())
})

func (l *Library) Version() string { return l.version }

// Rules returns the ordered rules of a field. The slice must not be modified.
func (l *Library) Rules(field Field) []Rule { return l.rules[field] }

// RulesFor narrows Rules to one language; LangAny rules always match.
func (l *Library) RulesFor(field Field, lang Language) []Rule {
	var out []Rule
	for _, r := range l.rules[field] {
		if r.Lang == lang || r.Lang == LangAny || lang == LangAny {
			out = append(out, r)
		}
	}
	return out
}

func (l *Library) TechWhitelist() []TechTerm { return l.tech }

// SymbolName returns the whitelist spelling of a term that normalization
// rewrites, such as "CSharp" for "C#".
func (l *Library) SymbolName(fragment string) (string, bool) {
	name, ok := l.symbols[textnorm.Fold(strings.TrimSpace(fragment))]
	return name, ok
}

// Areas returns the keyword sets in tie-break order.
func (l *Library) Areas() []AreaKeywords { return l.areas }

func (l *Library) ClosureIndicators() []string { return l.closures }

func (l *Library) SkillCatalog() []CatalogSkill { return l.catalog }

// Vocabulary returns every table entry and rule literal, sorted. A normalizer
// should leave these words intact.
func (l *Library) Vocabulary() []string { return l.vocabulary }
