package patterns

// DefaultRules returns the bundled rule set. Order matters: extractors stop at
// the first rule that yields an accepted value for single-value fields.
func DefaultRules() []RuleDef {
	var defs []RuleDef
	defs = append(defs, jobTriggerRules...)
	defs = append(defs, companyRules...)
	defs = append(defs, titleRules...)
	defs = append(defs, deadlineRules...)
	defs = append(defs, skillRules...)
	defs = append(defs, benefitRules...)
	defs = append(defs, sectionRules...)
	defs = append(defs, contactRules...)
	return defs
}

// ruleVocabulary holds the rule literals that OCR consonant fixes would
// otherwise rewrite before the rules see them.
var ruleVocabulary = []string{
	"internship", "internships", "solicita", "solicitamos", "solicitan",
	"aplica", "aplicar", "aplicación", "aplicaciones", "válido", "válida",
	"deadline", "closing", "qualifications", "julio",
}

// companyStop ends a company capture at sentence punctuation or a line break.
const companyStop = `[^\n.,;:!?]`

var jobTriggerRules = []RuleDef{
	{Name: "trigger.vacante_ofrecida_por", Field: FieldJobTrigger, Lang: LangES, Group: 1,
		Expr: `(?i)vacante\s+ofrecida\s+por\s+(` + companyStop + `+)`},
	{Name: "trigger.oferta_trabajo_en", Field: FieldJobTrigger, Lang: LangES, Group: 1,
		Expr: `(?i)oferta\s+de\s+(?:trabajo|empleo)\s+en\s+(` + companyStop + `+)`},
	{Name: "trigger.se_busca_para_en", Field: FieldJobTrigger, Lang: LangES, Group: 1,
		Expr: `(?i)se\s+busca\s+[^\n]*?\s+para\s+[^\n]*?\s+en\s+(` + companyStop + `+)`},
	{Name: "trigger.empresa_busca", Field: FieldJobTrigger, Lang: LangES, Group: 1,
		Expr: `(?i)(?:la\s+)?empresa\s+(` + companyStop + `{2,60}?)\s+(?:busca|solicita|requiere|contrata)\b`},
	{Name: "trigger.job_offer_at", Field: FieldJobTrigger, Lang: LangEN, Group: 1,
		Expr: `(?i)job\s+(?:offer|opening|opportunity)\s+at\s+(` + companyStop + `+)`},
	{Name: "trigger.is_hiring", Field: FieldJobTrigger, Lang: LangEN, Group: 1,
		Expr: `(?im)^[ \t]*(` + companyStop + `{2,60}?)\s+is\s+hiring\b`},
	{Name: "trigger.join_team_at", Field: FieldJobTrigger, Lang: LangEN, Group: 1,
		Expr: `(?i)join\s+(?:our|the)\s+team\s+at\s+(` + companyStop + `+)`},
	{Name: "trigger.oferta_laboral", Field: FieldJobTrigger, Lang: LangES,
		Expr: `(?i)\boferta\s+(?:laboral|de\s+empleo|de\s+trabajo)\b`},
	{Name: "trigger.vacante", Field: FieldJobTrigger, Lang: LangES,
		Expr: `(?i)\bvacantes?\b`},
	{Name: "trigger.se_busca", Field: FieldJobTrigger, Lang: LangES,
		Expr: `(?i)\b(?:se\s+busca|buscamos|estamos\s+buscando|se\s+solicita|solicitamos|estamos\s+contratando)\b`},
	{Name: "trigger.pasantia", Field: FieldJobTrigger, Lang: LangES,
		Expr: `(?i)\bpasant(?:i|í)as?\b`},
	{Name: "trigger.convocatoria", Field: FieldJobTrigger, Lang: LangES,
		Expr: `(?i)\b(?:empleo|convocatoria|oportunidad\s+laboral|puesto\s+disponible)\b`},
	{Name: "trigger.hiring", Field: FieldJobTrigger, Lang: LangEN,
		Expr: `(?i)\b(?:we\s*(?:'|’)?\s*re\s+hiring|we\s+are\s+hiring|now\s+hiring|job\s+(?:offer|opening|opportunity)|internship|join\s+our\s+team)\b`},
}

var companyRules = []RuleDef{
	{Name: "company.labeled", Field: FieldCompany, Lang: LangAny, Group: 1,
		Expr: `(?im)^[ \t]*(?:empresa|compañía|compania|company|organización|organizacion|institución|institucion|employer|empleador)[ \t]*[:\-][ \t]*([^\n]+?)[ \t]*$`},
	{Name: "company.vacante_ofrecida_por", Field: FieldCompany, Lang: LangES, Group: 1,
		Expr: `(?i)vacante\s+ofrecida\s+por\s+(` + companyStop + `+)`},
	{Name: "company.empresa_busca", Field: FieldCompany, Lang: LangES, Group: 1,
		Expr: `(?i)(?:la\s+)?empresa\s+(` + companyStop + `{2,60}?)\s+(?:busca|solicita|requiere|contrata)\b`},
	{Name: "company.position_at", Field: FieldCompany, Lang: LangEN, Group: 1,
		Expr: `(?i)(?:job\s+(?:offer|opening)|position|vacancy)\s+at\s+(` + companyStop + `+)`},
}

// titleStop ends a title capture before a trailing "para/en/con ..." clause.
const titleStop = `(?:\s+(?:para|en|con|in|at|to|with)\s|[\n.,;:!?]|$)`

var titleRules = []RuleDef{
	{Name: "title.labeled", Field: FieldTitle, Lang: LangAny, Group: 1,
		Expr: `(?im)^[ \t]*(?:puesto|cargo|posición|posicion|vacante|plaza|position|role|job\s+title|title|rol)[ \t]*[:\-][ \t]*([^\n]+?)[ \t]*$`},
	{Name: "title.se_busca", Field: FieldTitle, Lang: LangAny, Group: 1,
		Expr: `(?i)(?:se\s+busca|buscamos|estamos\s+buscando|se\s+solicita|solicitamos|se\s+requiere|we\s+are\s+looking\s+for|looking\s+for|we\s+are\s+hiring|hiring)[ \t]+(?:(?:un|una|a|an)[ \t]+)?([^\n.,;:!?]+?)` + titleStop},
	{Name: "title.vacante_de", Field: FieldTitle, Lang: LangES, Group: 1,
		Expr: `(?i)vacante[ \t]+(?:de|para)[ \t]+([^\n.,;:!?]+?)` + titleStop},
	{Name: "title.internship", Field: FieldTitle, Lang: LangAny, Group: 1,
		Expr: `(?i)\b((?:pasant(?:i|í)a|internship|pr(?:a|á)ctica\s+profesional)\s+(?:en|de|in)\s+[^\n.,;:!?]+)`},
}

const spanishMonths = `(?:enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre)`

var deadlineRules = []RuleDef{
	{Name: "deadline.labeled", Field: FieldDeadline, Lang: LangAny, Group: 1,
		Expr: `(?i)(?:fecha\s+l(?:i|í)mite(?:\s+de\s+(?:aplicaci(?:o|ó)n|postulaci(?:o|ó)n|env(?:i|í)o))?|fecha\s+de\s+cierre|cierre\s+de\s+(?:la\s+)?convocatoria|deadline|closing\s+date|apply\s+by|apply\s+before)[ \t]*[:\-]?[ \t]*([^\n]+)`},
	{Name: "deadline.plazo", Field: FieldDeadline, Lang: LangES, Group: 1,
		Expr: `(?i)plazo(?:\s+de\s+(?:aplicaci(?:o|ó)n|postulaci(?:o|ó)n))?[ \t]*:[ \t]*([^\n]+)`},
	{Name: "deadline.antes_del", Field: FieldDeadline, Lang: LangES, Group: 1,
		Expr: `(?i)(?:aplica|aplicar|postula|post(?:u|ú)late|env(?:i|í)a\s+tu\s+cv)\s+(?:antes\s+del?|hasta\s+el)\s+([^\n.;]+)`},
	{Name: "deadline.valido_hasta", Field: FieldDeadline, Lang: LangES, Group: 1,
		Expr: `(?i)(?:v(?:a|á)lid[oa]|disponible|recibimos\s+cv|se\s+reciben\s+cv)\s+hasta\s+(?:el\s+)?([^\n.;]+)`},
	{Name: "deadline.spanish_date", Field: FieldDeadline, Lang: LangES, Group: 1,
		Expr: `(?i)\b(\d{1,2}\s+de\s+` + spanishMonths + `(?:\s+(?:del?\s+)?\d{4})?)\b`},
	{Name: "deadline.numeric_date", Field: FieldDeadline, Lang: LangAny, Group: 1,
		Expr: `\b(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})\b`},
}

const skillHeaders = `(?:requisitos|requerimientos|conocimientos(?:\s+en)?|habilidades(?:\s+t(?:e|é)cnicas)?|skills|requirements|tecnolog(?:i|í)as|tech\s+stack|stack\s+tecnol(?:o|ó)gico|herramientas|manejo\s+de|dominio\s+de|experiencia\s+(?:en|con)|experience\s+(?:with|in)|knowledge\s+of)`

const benefitHeaders = `(?:beneficios|benefits|te\s+ofrecemos|ofrecemos|we\s+offer|perks|prestaciones)`

// bulletBlock captures consecutive dash or bullet lines.
const bulletBlock = `((?:[ \t]*[-*•·▪][^\n]*(?:\n|$))+)`

var skillRules = []RuleDef{
	{Name: "skills.labeled_line", Field: FieldSkills, Lang: LangAny, Group: 1,
		Expr: `(?i)` + skillHeaders + `[ \t]*[:\-]?[ \t]*([^\n]+)`},
	{Name: "skills.bullet_block", Field: FieldSkills, Lang: LangAny, Group: 1,
		Expr: `(?i)` + skillHeaders + `[ \t]*:?[ \t]*\n` + bulletBlock},
}

var benefitRules = []RuleDef{
	{Name: "benefits.labeled_line", Field: FieldBenefits, Lang: LangAny, Group: 1,
		Expr: `(?i)` + benefitHeaders + `[ \t]*[:\-]?[ \t]*([^\n]+)`},
	{Name: "benefits.bullet_block", Field: FieldBenefits, Lang: LangAny, Group: 1,
		Expr: `(?i)` + benefitHeaders + `[ \t]*:?[ \t]*\n` + bulletBlock},
	{Name: "benefits.known_phrases", Field: FieldBenefits, Lang: LangAny, Group: 1,
		Expr: `(?i)\b((?:trabajo|modalidad)\s+(?:remoto|h(?:i|í)brido|desde\s+casa)|home\s+office|horario\s+flexible|seguro\s+m(?:e|é)dico(?:\s+privado)?|remote\s+work|flexible\s+(?:hours|schedule)|health\s+insurance|capacitaci(?:o|ó)n\s+continua|d(?:e|é)cimo\s+tercer\s+mes|vacaciones\s+pagadas|paid\s+time\s+off)\b`},
}

// sectionEnd stops a section at a blank line, the next "Label:" line or the
// end of the text.
const sectionEnd = `(?:\n[ \t]*\n|\n[^\n:]{2,40}:|\z)`

var sectionRules = []RuleDef{
	{Name: "section.es", Field: FieldSection, Lang: LangES, Group: 1,
		Expr: `(?is)(?:requisitos|requerimientos|conocimientos|habilidades|perfil\s+requerido|competencias)\s*:\s*(.+?)` + sectionEnd},
	{Name: "section.en", Field: FieldSection, Lang: LangEN, Group: 1,
		Expr: `(?is)(?:requirements|qualifications|skills|what\s+you\s*(?:'|’)?\s*ll\s+need|tech\s+stack|must\s+have)\s*:\s*(.+?)` + sectionEnd},
}

const (
	capitalWord = `[A-ZÁÉÍÓÚÑ][\p{L}'.]+`
	honorific   = `(?:Lic|Licda|Ing|Dr|Dra|Sr|Sra|Srta|Mgtr|Mr|Ms|Mrs)`
	hrUnit      = `(?:recursos\s+humanos|rrhh|talento\s+humano|gesti(?:o|ó)n\s+humana|reclutamiento|selecci(?:o|ó)n|human\s+resources|hr|talent\s+acquisition|people|recruitment)`
)

var contactRules = []RuleDef{
	{Name: "contact.name.labeled", Field: FieldContactName, Lang: LangAny, Group: 1,
		Expr: `(?m)(?i:persona\s+de\s+contacto|contacto|contact\s+person|contact|nombre|name|reclutadora?|recruiter|atenci(?:o|ó)n|attn)[ \t]*[:\-][ \t]*((?:` + honorific + `\.?[ \t]+)?` + capitalWord + `(?:[ \t]+` + capitalWord + `){0,4})`},
	{Name: "contact.name.honorific", Field: FieldContactName, Lang: LangES, Group: 1,
		Expr: `\b((?:Lic|Licda|Ing|Dr|Dra|Mgtr)\.[ \t]*[A-ZÁÉÍÓÚÑ]\p{L}+(?:[ \t]+[A-ZÁÉÍÓÚÑ]\p{L}+){0,3})`},

	{Name: "contact.position.labeled", Field: FieldContactPosition, Lang: LangAny, Group: 1,
		Expr: `(?im)(?:cargo\s+del?\s+contacto|contact\s+position|posici(?:o|ó)n\s+del\s+contacto)[ \t]*[:\-][ \t]*([^\n]+)`},
	{Name: "contact.position.hr_role", Field: FieldContactPosition, Lang: LangAny, Group: 1,
		Expr: `(?i)\b((?:gerente|directora?|jefa?|jefe|coordinadora?|analista|especialista|generalista|manager|head|lead|business\s+partner)\s+(?:de\s+|of\s+)?` + hrUnit + `)\b`},
	{Name: "contact.position.hr_department", Field: FieldContactPosition, Lang: LangES, Group: 1,
		Expr: `(?i)\b((?:departamento|depto\.?|(?:a|á)rea)\s+de\s+` + hrUnit + `)\b`},

	{Name: "contact.email.plain", Field: FieldEmail, Lang: LangAny, Group: 0,
		Expr: `[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`},
	{Name: "contact.email.spaced", Field: FieldEmail, Lang: LangAny, Group: 0,
		Expr: `(?i)[a-z0-9._%+\-]+[ \t]*(?:@|\(at\)|\[at\])[ \t]*[a-z0-9\-]+(?:[ \t]*(?:\.|\(dot\)|\[dot\])[ \t]*[a-z]{2,})+`},

	{Name: "contact.phone.labeled", Field: FieldPhone, Lang: LangAny, Group: 1,
		Expr: `(?i)\b(?:tel(?:e|é)fono|tel(?:e|é)f|tel|cel(?:ular)?|m(?:o|ó)vil|whatsapp|wsp|phone|mobile|ll(?:a|á)manos\s+al|llamar\s+al)[ \t]*\.?[ \t]*[:\-]?[ \t]*(\+?\d[\d \t\-().]{5,18}\d)`},
	{Name: "contact.phone.international", Field: FieldPhone, Lang: LangAny, Group: 1,
		Expr: `(\+\d{1,3}[ \t\-.]?\(?\d{1,4}\)?(?:[ \t\-.]?\d{2,4}){2,4})`},
	{Name: "contact.phone.local", Field: FieldPhone, Lang: LangAny, Group: 1,
		Expr: `\b(\d{3,4}[\-. ]\d{4})\b`},

	{Name: "contact.website.url", Field: FieldWebsite, Lang: LangAny, Group: 1,
		Expr: `(?i)\b((?:https?://|www\.)[^\s<>"',;]+)`},
	{Name: "contact.website.domain", Field: FieldWebsite, Lang: LangAny, Group: 1,
		Expr: `(?i)\b((?:[a-z0-9\-]+\.)+(?:com|org|net|edu|gob|gov|io|co|info|biz|pa|es|mx|ar|cl|pe|us)\b(?:\.[a-z]{2}\b)?(?:/[^\s<>"',;]*)?)`},

	{Name: "contact.instructions.send_cv", Field: FieldInstructions, Lang: LangES, Group: 1,
		Expr: `(?i)((?:env(?:i|í)a|enviar|env(?:i|í)e|manda|mandar|remite|remitir|hacer\s+llegar)\s+(?:(?:tu|su|el)\s+)?(?:cv|c\.v\.|hoja\s+de\s+vida|curr(?:i|í)cul[ou]m(?:\s+vitae)?)[^\n]*)`},
	{Name: "contact.instructions.send_resume", Field: FieldInstructions, Lang: LangEN, Group: 1,
		Expr: `(?i)((?:send|submit|email)\s+(?:your\s+)?(?:cv|resume|résumé|application)[^\n]*)`},
	{Name: "contact.instructions.how_to_apply", Field: FieldInstructions, Lang: LangAny, Group: 1,
		Expr: `(?i)((?:interesad[oa]s|para\s+aplicar|para\s+postularte|c(?:o|ó)mo\s+aplicar|to\s+apply|how\s+to\s+apply|aplica\s+en|apply\s+(?:at|via|through|here))[^\n]*)`},
}
