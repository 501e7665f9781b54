package textnorm

type rewrite struct {
	from string
	to   string
}

// accentWords maps the unaccented lowercase spelling of a word to its correct
// spelling.
var accentWords = map[string]string{
	"ultimo":       "último",
	"ultima":       "última",
	"practica":     "práctica",
	"practicas":    "prácticas",
	"tecnico":      "técnico",
	"tecnica":      "técnica",
	"tecnicos":     "técnicos",
	"tecnicas":     "técnicas",
	"tecnologia":   "tecnología",
	"tecnologias":  "tecnologías",
	"ingenieria":   "ingeniería",
	"informatica":  "informática",
	"estadistica":  "estadística",
	"matematica":   "matemática",
	"matematicas":  "matemáticas",
	"analisis":     "análisis",
	"basico":       "básico",
	"basica":       "básica",
	"basicos":      "básicos",
	"academico":    "académico",
	"academica":    "académica",
	"medico":       "médico",
	"medica":       "médica",
	"numero":       "número",
	"telefono":     "teléfono",
	"electronico":  "electrónico",
	"electronica":  "electrónica",
	"area":         "área",
	"areas":        "áreas",
	"dias":         "días",
	"tambien":      "también",
	"pagina":       "página",
	"metodologia":  "metodología",
	"metodologias": "metodologías",
	"logistica":    "logística",
	"economia":     "economía",
	"quimica":      "química",
	"mecanica":     "mecánica",
	"electrica":    "eléctrica",
	"mecatronica":  "mecatrónica",
	"publico":      "público",
	"publica":      "pública",
	"codigo":       "código",
	"pasantia":     "pasantía",
	"pasantias":    "pasantías",
	"compania":     "compañía",
	"companias":    "compañías",
	"linea":        "línea",
	"ingles":       "inglés",
	"espanol":      "español",
	"credito":      "crédito",
	"minimo":       "mínimo",
	"maximo":       "máximo",
	"graficos":     "gráficos",
	"diseno":       "diseño",
	"anos":         "años",
	"ano":          "año",
	"aplicalo":     "aplícalo",
	"postulate":    "postúlate",
	"unete":        "únete",
	"limite":       "límite",
	"proposito":    "propósito",
	"optimo":       "óptimo",
	"dinamico":     "dinámico",
	"dinamica":     "dinámica",
	"energia":      "energía",
	"biologia":     "biología",
	"psicologia":   "psicología",
}

// consonantFixes are applied in order inside every word.
var consonantFixes = []rewrite{
	{from: "rn", to: "m"},
	{from: "cl", to: "d"},
	{from: "li", to: "h"},
	{from: "ii", to: "n"},
}

var suffixAccents = []rewrite{
	{from: "cion", to: "ción"},
	{from: "sion", to: "sión"},
	{from: "CION", to: "CIÓN"},
	{from: "SION", to: "SIÓN"},
}

// techTerms maps unaccented lowercase OCR misreads of technical vocabulary to
// the canonical term. Lowercase targets take the capitalization of the
// misread. Some entries repair damage done by the consonant fixes.
var techTerms = map[string]string{
	"s3l":        "SQL",
	"5ql":        "SQL",
	"sqi":        "SQL",
	"mysqi":      "MySQL",
	"postgresqi": "PostgreSQL",
	"simuhnk":    "SIMULINK",
	"simuiink":   "SIMULINK",
	"simunnk":    "SIMULINK",
	"matiab":     "MATLAB",
	"matlah":     "MATLAB",
	"pyth0n":     "Python",
	"pythom":     "Python",
	"javascrlpt": "JavaScript",
	"javascnpt":  "JavaScript",
	"autocao":    "AutoCAD",
	"excei":      "Excel",
	"hnux":       "Linux",
	"mongodh":    "MongoDB",
	"leaming":    "learning",
	"onhne":      "online",
	"anahsis":    "análisis",
	"anahsta":    "analista",
	"anahstas":   "analistas",
}

var abilitySuffixes = []rewrite{
	{from: "bihdades", to: "bilidades"},
	{from: "bihdad", to: "bilidad"},
}

// properNouns is keyed by the unaccented lowercase spelling and only applies
// to capitalized words.
var properNouns = map[string]string{
	"panama":      "Panamá",
	"panamena":    "Panameña",
	"panamenas":   "Panameñas",
	"panameno":    "Panameño",
	"panamenos":   "Panameños",
	"aviacion":    "Aviación",
	"chiriqui":    "Chiriquí",
	"colon":       "Colón",
	"cocle":       "Coclé",
	"tecnologica": "Tecnológica",
	"bogota":      "Bogotá",
	"mexico":      "México",
	"peru":        "Perú",
	"espana":      "España",
}
