package patterns

import "jobocr/services/processing/internal/models"

// DefaultTables returns the bundled keyword tables.
//
// Entries are matched as case-insensitive substrings, so short tokens that
// occur inside common Spanish words ("excel" in "excelente", "git" in
// "digital", "ios" in "servicios") are left out on purpose.
func DefaultTables() Tables {
	return Tables{
		TechWhitelist:     techWhitelist,
		AreaKeywords:      areaKeywords,
		ClosureIndicators: closureIndicators,
		SkillCatalog:      skillCatalog,
		Vocabulary:        ruleVocabulary,
	}
}

var techWhitelist = []string{
	"Python", "JavaScript", "TypeScript", "React", "Angular", "Vue", "Node.js",
	"Django", "Flask", "Spring Boot", "Laravel", "PHP", "HTML", "CSS",
	"MySQL", "PostgreSQL", "SQL", "MongoDB", "Redis", "Docker", "Kubernetes",
	"AWS", "Azure", "Google Cloud", "Linux", "Power BI", "Tableau", "MATLAB",
	"SIMULINK", "AutoCAD", "SAP", "Kotlin", "Swift", "Flutter", "TensorFlow",
	"Pandas", "C++", "C#", "Terraform", "Jenkins", "Figma",
}

// areaKeywords is listed in tie-break order.
var areaKeywords = []AreaKeywords{
	{Area: models.AreaDataScience, Keywords: []string{
		"python", "pandas", "numpy", "machine learning", "aprendizaje automatico",
		"aprendizaje automático", "deep learning", "data science", "ciencia de datos",
		"cientifico de datos", "científico de datos", "data analyst", "analista de datos",
		"estadística", "estadistica", "power bi", "tableau", "tensorflow", "pytorch",
		"scikit", "big data", "inteligencia artificial", "modelos predictivos",
	}},
	{Area: models.AreaWebDev, Keywords: []string{
		"javascript", "typescript", "react", "angular", "vue", "node.js", "nodejs",
		"html", "css", "frontend", "front-end", "backend", "back-end", "full stack",
		"fullstack", "desarrollo web", "web developer", "desarrollador web", "django",
		"laravel", "php", "wordpress",
	}},
	{Area: models.AreaMobile, Keywords: []string{
		"android", "kotlin", "swift", "flutter", "react native", "xamarin",
		"aplicaciones móviles", "aplicaciones moviles", "app móvil", "app movil",
		"mobile developer", "desarrollo móvil", "desarrollo movil",
	}},
	{Area: models.AreaSystems, Keywords: []string{
		"linux", "windows server", "soporte técnico", "soporte tecnico", "infraestructura",
		"servidores", "sysadmin", "administrador de sistemas", "devops", "docker",
		"kubernetes", "aws", "azure", "cloud", "networking", "cisco", "active directory",
		"help desk", "mesa de ayuda", "sap",
	}},
	{Area: models.AreaCyber, Keywords: []string{
		"ciberseguridad", "cybersecurity", "seguridad informática", "seguridad informatica",
		"seguridad de la información", "seguridad de la informacion", "pentesting",
		"pentester", "ethical hacking", "hacking ético", "firewall", "soc analyst",
		"vulnerabilidades", "iso 27001", "malware", "forense digital",
	}},
}

var closureIndicators = []string{
	"cerrado", "cerrada", "closed", "filled", "vacante cubierta", "posición cubierta",
	"posicion cubierta", "plaza cubierta", "ya no disponible", "no disponible",
	"expired", "expirado", "expirada", "finalizado", "finalizada",
	"no longer available", "no longer accepting", "position filled", "convocatoria cerrada",
}

var skillCatalog = []SkillCategory{
	{Name: "programming_languages", Skills: []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "go", "golang",
		"rust", "php", "ruby", "kotlin", "swift", "scala", "matlab", "bash",
	}},
	{Name: "web", Skills: []string{
		"html", "css", "react", "angular", "vue", "node.js", "express", "django",
		"flask", "spring boot", "laravel", "next.js", "tailwind", "bootstrap", "rest", "graphql",
	}},
	{Name: "databases", Skills: []string{
		"sql", "mysql", "postgresql", "mongodb", "redis", "oracle", "sql server",
		"sqlite", "elasticsearch", "cassandra", "firebase",
	}},
	{Name: "cloud", Skills: []string{
		"aws", "azure", "google cloud", "gcp", "heroku", "digitalocean", "cloudflare",
	}},
	{Name: "data_science", Skills: []string{
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
		"machine learning", "deep learning", "power bi", "tableau", "spark", "hadoop",
		"excel", "estadística", "jupyter",
	}},
	{Name: "devops", Skills: []string{
		"docker", "kubernetes", "terraform", "jenkins", "ansible", "git", "github",
		"gitlab", "ci/cd", "linux", "nginx",
	}},
	{Name: "mobile", Skills: []string{
		"android", "ios", "flutter", "react native", "xamarin", "swiftui",
	}},
	{Name: "security", Skills: []string{
		"ciberseguridad", "cybersecurity", "pentesting", "firewall", "siem",
		"owasp", "iso 27001", "criptografía",
	}},
	{Name: "methodologies", Skills: []string{
		"scrum", "agile", "kanban", "devops", "itil", "lean", "design thinking",
	}},
	{Name: "soft_skills", Skills: []string{
		"liderazgo", "trabajo en equipo", "comunicación", "proactividad",
		"resolución de problemas", "leadership", "teamwork", "communication",
		"problem solving", "inglés",
	}},
}
