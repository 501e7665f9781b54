package patterns

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobocr/services/processing/internal/models"
)

func TestDefaultLibraryBuilds(t *testing.T) {
	lib, err := Build(DefaultRules(), DefaultTables())
	require.NoError(t, err)

	assert.Equal(t, Version, lib.Version())
	for _, field := range []Field{
		FieldJobTrigger, FieldCompany, FieldTitle, FieldDeadline, FieldSkills, FieldBenefits,
		FieldSection, FieldContactName, FieldContactPosition, FieldEmail, FieldPhone,
		FieldWebsite, FieldInstructions,
	} {
		assert.NotEmpty(t, lib.Rules(field), "field %s has no rules", field)
	}
	assert.NotEmpty(t, lib.TechWhitelist())
	assert.NotEmpty(t, lib.ClosureIndicators())
	assert.NotEmpty(t, lib.SkillCatalog())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestBuildRejectsBrokenRules(t *testing.T) {
	tests := []struct {
		name string
		defs []RuleDef
	}{
		{name: "bad regex", defs: []RuleDef{{Name: "x", Field: FieldCompany, Expr: `(unclosed`}}},
		{name: "group out of range", defs: []RuleDef{{Name: "x", Field: FieldCompany, Group: 2, Expr: `(a)`}}},
		{name: "missing name", defs: []RuleDef{{Field: FieldCompany, Expr: `a`}}},
		{name: "duplicate name", defs: []RuleDef{
			{Name: "x", Field: FieldCompany, Expr: `a`},
			{Name: "x", Field: FieldTitle, Expr: `b`},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.defs, Tables{})
			assert.Error(t, err)
			assert.Panics(t, func() { MustBuild(tt.defs, Tables{}) })
		})
	}
}

func TestBuildRejectsGeneralAreaKeywords(t *testing.T) {
	_, err := Build(nil, Tables{AreaKeywords: []AreaKeywords{
		{Area: models.AreaGeneral, Keywords: []string{"x"}},
	}})
	assert.Error(t, err)
}

func TestBuildKeepsRuleOrder(t *testing.T) {
	lib, err := Build([]RuleDef{
		{Name: "first", Field: FieldTitle, Expr: `a`},
		{Name: "other", Field: FieldCompany, Expr: `b`},
		{Name: "second", Field: FieldTitle, Lang: LangES, Expr: `c`},
		{Name: "third", Field: FieldTitle, Lang: LangEN, Expr: `d`},
	}, Tables{})
	require.NoError(t, err)

	var names []string
	for _, r := range lib.Rules(FieldTitle) {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)

	names = nil
	for _, r := range lib.RulesFor(FieldTitle, LangEN) {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"first", "third"}, names)
	assert.Equal(t, LangAny, lib.Rules(FieldTitle)[0].Lang)
}

func TestBuildLowercasesTables(t *testing.T) {
	lib, err := Build(nil, Tables{
		TechWhitelist:     []string{"Node.js"},
		AreaKeywords:      []AreaKeywords{{Area: models.AreaWebDev, Keywords: []string{"React"}}},
		ClosureIndicators: []string{"CERRADO"},
		SkillCatalog:      []SkillCategory{{Name: "web", Skills: []string{"C++"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Node.js", lib.TechWhitelist()[0].Name)
	assert.Equal(t, "node.js", lib.TechWhitelist()[0].Needle())
	assert.Equal(t, []string{"react"}, lib.Areas()[0].Keywords)
	assert.Equal(t, []string{"cerrado"}, lib.ClosureIndicators())

	skill := lib.SkillCatalog()[0]
	assert.Equal(t, "c++", skill.Name)
	assert.True(t, skill.Re.MatchString("manejo de c++ y java"))
	assert.False(t, skill.Re.MatchString("abc++"))
}

func TestBuildFoldsAndCanonicalizesTables(t *testing.T) {
	lib, err := Build(nil, Tables{
		TechWhitelist:     []string{"C#", "Python"},
		AreaKeywords:      []AreaKeywords{{Area: models.AreaCyber, Keywords: []string{"hacking ético"}}},
		ClosureIndicators: []string{"Posición cubierta"},
		SkillCatalog: []SkillCategory{
			{Name: "devops", Skills: []string{"ci/cd"}},
			{Name: "security", Skills: []string{"criptografía"}},
		},
		Vocabulary: []string{"julio"},
	})
	require.NoError(t, err)

	assert.Equal(t, "csharp", lib.TechWhitelist()[0].Needle())
	assert.Equal(t, []string{"hacking etico"}, lib.Areas()[0].Keywords)
	assert.Equal(t, []string{"posicion cubierta"}, lib.ClosureIndicators())

	cicd := lib.SkillCatalog()[0]
	assert.Equal(t, "ci/cd", cicd.Name)
	assert.True(t, cicd.Re.MatchString("pipelines de ci-cd"))

	crypto := lib.SkillCatalog()[1]
	assert.True(t, crypto.Re.MatchString("criptografia aplicada"))
	assert.True(t, crypto.Re.MatchString("criptografía aplicada"))

	name, ok := lib.SymbolName(" CSharp ")
	assert.True(t, ok)
	assert.Equal(t, "C#", name)
	_, ok = lib.SymbolName("Python")
	assert.False(t, ok)

	assert.Equal(t, []string{
		"C#", "Posición cubierta", "Python", "ci/cd", "criptografía", "hacking ético", "julio",
	}, lib.Vocabulary())
}

func TestDefaultVocabularyCoversRuleLiterals(t *testing.T) {
	vocabulary := Default().Vocabulary()
	for _, word := range []string{"internship", "solicita", "aplicación", "Kotlin", "closed", "liderazgo"} {
		assert.Contains(t, vocabulary, word)
	}
}

func TestRuleCapture(t *testing.T) {
	lib := Default()
	rule := lib.Rules(FieldJobTrigger)[0]

	got, ok := rule.Capture("Vacante ofrecida por Microsoft")
	assert.True(t, ok)
	assert.Equal(t, "Microsoft", got)

	_, ok = rule.Capture("nothing here")
	assert.False(t, ok)
}

func TestRuleCaptureAll(t *testing.T) {
	rule := Rule{Group: 1, Re: mustCompile(t, `k=(\w+)`)}

	assert.Equal(t, []string{"a", "b"}, rule.CaptureAll("k=a k=b"))
	assert.Equal(t, [][2]int{{2, 3}, {6, 7}}, rule.CaptureAllIndex("k=a k=b"))
	assert.Empty(t, rule.CaptureAll("none"))
}

func mustCompile(t *testing.T, expr string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(expr)
	require.NoError(t, err)
	return re
}
