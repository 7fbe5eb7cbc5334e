package resume

// The profession taxonomy and skill vocabulary are process-wide constants
// built once at init. They are unexported so nothing can mutate them at
// runtime; matching code receives them through the package functions below.

type professionEntry struct {
	name     string
	keywords []string
}

// Declaration order matters: classification ties are resolved by the first
// profession in this list.
var professionTaxonomy = []professionEntry{
	{
		name: "teacher",
		keywords: []string{
			"teacher", "teaching", "education", "classroom", "curriculum", "lesson", "student",
			"professor", "instructor", "faculty", "school", "university", "college", "tutor",
			"educational", "academic", "pedagogy", "lecturer",
		},
	},
	{
		name: "software engineer",
		keywords: []string{
			"software", "developer", "programming", "coder", "engineer", "web developer",
			"full stack", "frontend", "backend", "devops", "software architect", "coding",
		},
	},
	{
		name: "data scientist",
		keywords: []string{
			"data scientist", "data analyst", "machine learning", "ai", "artificial intelligence",
			"statistics", "statistical", "analytics", "big data", "data mining", "data science",
		},
	},
	{
		name: "healthcare",
		keywords: []string{
			"doctor", "nurse", "physician", "medical", "healthcare", "clinical", "hospital",
			"patient", "medicine", "nursing", "health care", "practitioner", "therapist",
		},
	},
	{
		name: "finance",
		keywords: []string{
			"finance", "financial", "accountant", "accounting", "banker", "investment",
			"analyst", "economics", "banking", "auditor", "budget", "fiscal",
		},
	},
	{
		name: "marketing",
		keywords: []string{
			"marketing", "advertiser", "advertising", "brand", "market research", "seo",
			"social media", "content", "digital marketing", "campaign", "public relations",
		},
	},
	{
		name: "sales",
		keywords: []string{
			"sales", "selling", "account manager", "business development", "customer",
			"client", "revenue", "salesperson", "sales representative",
		},
	},
	{
		name: "human resources",
		keywords: []string{
			"hr", "human resources", "recruiter", "recruitment", "talent", "hiring",
			"personnel", "workforce", "employee", "staff", "training", "development",
		},
	},
	{
		name: "legal",
		keywords: []string{
			"lawyer", "attorney", "legal", "law", "counsel", "paralegal", "judicial",
			"litigation", "compliance", "regulatory", "contract",
		},
	},
	{
		name: "design",
		keywords: []string{
			"designer", "design", "graphic", "ui", "ux", "user interface", "user experience",
			"creative", "artist", "illustrator", "visual", "product design",
		},
	},
}

type skillCategory struct {
	name   string
	skills []string
}

// Extraction walks categories and their terms in this order, so output
// order is stable. A term may repeat across categories; duplicates are
// deliberately kept (presence per category, not a set).
var skillVocabulary = []skillCategory{
	{
		name: "technical",
		skills: []string{
			"javascript", "react", "node", "python", "java", "c++", "c#",
			"html", "css", "sql", "nosql", "mongodb", "firebase", "aws",
			"azure", "docker", "kubernetes", "git", "agile", "scrum",
			"typescript", "angular", "vue", "express", "django", "flask",
			"spring", "hibernate", "rest", "graphql", "api", "microservices",
		},
	},
	{
		name: "education",
		skills: []string{
			"curriculum development", "lesson planning", "classroom management",
			"student assessment", "educational technology", "differentiated instruction",
			"special education", "early childhood education", "literacy", "stem",
			"ib program", "montessori", "common core", "distance learning",
		},
	},
	{
		name: "healthcare",
		skills: []string{
			"patient care", "medical records", "clinical research", "diagnostics",
			"treatment planning", "medical coding", "healthcare management",
			"patient assessment", "vital signs", "medical terminology",
		},
	},
	{
		name: "finance",
		skills: []string{
			"financial analysis", "budgeting", "forecasting", "accounting",
			"financial reporting", "tax preparation", "risk assessment",
			"investment management", "portfolio management", "financial planning",
		},
	},
	{
		name: "marketing",
		skills: []string{
			"digital marketing", "content strategy", "seo", "social media marketing",
			"brand management", "market research", "campaign management",
			"email marketing", "analytics", "customer acquisition",
		},
	},
	{
		name: "general",
		skills: []string{
			"communication", "leadership", "project management", "time management",
			"problem solving", "critical thinking", "teamwork", "collaboration",
			"customer service", "presentation", "research", "analysis",
			"organization", "attention to detail", "creativity", "innovation",
		},
	},
}

// Professions returns the taxonomy names in declaration order.
func Professions() []string {
	out := make([]string, len(professionTaxonomy))
	for i, p := range professionTaxonomy {
		out[i] = p.name
	}
	return out
}

// SkillCategories returns the vocabulary category names in declaration order.
func SkillCategories() []string {
	out := make([]string, len(skillVocabulary))
	for i, c := range skillVocabulary {
		out[i] = c.name
	}
	return out
}
