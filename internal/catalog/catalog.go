package catalog

// Item represents one entry in the service catalog. Lower priority means
// more important; titles are unique within the catalog.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Priority    int    `json:"priority"`
}

// Technology is a technology shown on the public site.
type Technology struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// TeamMember is a public team bio.
type TeamMember struct {
	Name    string            `json:"name"`
	Role    string            `json:"role"`
	Bio     string            `json:"bio"`
	Avatar  *string           `json:"avatar,omitempty"`
	Socials map[string]string `json:"socials"`
}

// CaseStudy is a public case study entry.
type CaseStudy struct {
	Client        string         `json:"client"`
	Industry      string         `json:"industry"`
	Challenge     string         `json:"challenge"`
	Solution      string         `json:"solution"`
	ImpactMetrics map[string]any `json:"impact_metrics"`
}

// Canonical service titles. The recommendation rules reference catalog
// entries by these.
const (
	TitleCustomerService = "AI-driven Customer Service"
	TitleMarketing       = "Marketing Automation"
	TitleML              = "ML Applications"
	TitleRPA             = "RPA & Integrations"
	TitleAnalytics       = "Analytics & Dashboards"
)

func defaultServices() []Item {
	return []Item{
		{Title: TitleCustomerService, Description: "Virtuele agents, intent-herkenning en self-service flows.", Icon: "Headset", Priority: 1},
		{Title: TitleMarketing, Description: "Personalisatie, lead scoring en lifecycle journeys.", Icon: "Sparkles", Priority: 2},
		{Title: TitleML, Description: "Voorspellende modellen, aanbevelers en detectie.", Icon: "BrainCircuit", Priority: 2},
		{Title: TitleRPA, Description: "Robotica voor repetitieve taken en systeemkoppelingen.", Icon: "Workflow", Priority: 3},
		{Title: TitleAnalytics, Description: "Realtime KPI’s met datamodellering en visualisatie.", Icon: "BarChart3", Priority: 3},
	}
}

func defaultTechnologies() []Technology {
	return []Technology{
		{Name: "Machine Learning", Icon: "Brain"},
		{Name: "NLP", Icon: "MessageSquare"},
		{Name: "RPA", Icon: "Workflow"},
		{Name: "Computer Vision", Icon: "Scan"},
		{Name: "Data Engineering", Icon: "Database"},
		{Name: "MLOps", Icon: "Settings"},
	}
}

func defaultTeam() []TeamMember {
	return []TeamMember{
		{Name: "Ava van Rijn", Role: "Head of AI Strategy", Bio: "Ontwerpt schaalbare AI-roadmaps voor impact.", Avatar: ptrString("/avatars/ava.png"), Socials: map[string]string{"linkedin": "#"}},
		{Name: "Milan de Groot", Role: "Lead ML Engineer", Bio: "Production-grade ML met focus op betrouwbaarheid.", Avatar: ptrString("/avatars/milan.png"), Socials: map[string]string{"linkedin": "#"}},
		{Name: "Noa Janssen", Role: "Automation Architect", Bio: "RPA en integraties die processen laten stromen.", Avatar: ptrString("/avatars/noa.png"), Socials: map[string]string{"linkedin": "#"}},
	}
}

func defaultCaseStudies() []CaseStudy {
	return []CaseStudy{
		{
			Client:        "Nova Retail",
			Industry:      "E-commerce",
			Challenge:     "Hoge workload bij customer support en trage responstijden.",
			Solution:      "NLP-gedreven virtuele agent en auto-triage met RPA.",
			ImpactMetrics: map[string]any{"CSAT": "+18%", "First Response": "-62%", "Hours Saved/mo": 450},
		},
		{
			Client:        "FinOptima",
			Industry:      "Financieel",
			Challenge:     "Handmatige rapportage en compliance processen.",
			Solution:      "Automatische document parsing en ML-anomalie detectie.",
			ImpactMetrics: map[string]any{"Reporting Time": "-70%", "Accuracy": "+2.3%"},
		},
	}
}

func ptrString(s string) *string { return &s }
