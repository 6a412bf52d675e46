package chatbot

// Message is the chat payload posted by the frontend. Context is accepted
// for forward compatibility but not used by the current logic.
type Message struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// Reply is the canned chatbot response.
type Reply struct {
	Reply       string   `json:"reply"`
	Intent      string   `json:"intent"`
	Suggestions []string `json:"suggestions"`
}

// Intent tags form a closed set.
const (
	IntentPricing          = "pricing"
	IntentProcess          = "process"
	IntentServiceSupport   = "service-support"
	IntentServiceMarketing = "service-marketing"
	IntentServiceML        = "service-ml"
	IntentGeneral          = "general"
)

// bucket is one keyword-triggered response rule.
type bucket struct {
	intent      string
	keywords    []string
	reply       string
	suggestions []string
}

// buckets are checked in order; the first bucket with any keyword contained
// in the message wins. The order is load-bearing: "Wat kost een
// implementatie?" must resolve to pricing, not process.
var buckets = []bucket{
	{
		intent:      IntentPricing,
		// "kost" also catches conjugations like "wat kost een pilot?"
		keywords:    []string{"prijs", "kost", "kosten", "tarief", "offerte", "pricing", "price"},
		reply:       "Onze trajecten starten doorgaans vanaf €8.000 voor een pilot. Voor langdurige implementaties werken we met vaste sprints of een retainer. Zal ik een korte intake van 15 min inplannen?",
		suggestions: []string{"Plan een intake", "Stuur prijslijst", "Meer over pakketten"},
	},
	{
		intent:      IntentProcess,
		keywords:    []string{"implement", "implementatie", "hoe werkt", "proces", "stappen"},
		reply:       "We starten met een AI Discovery (1-2 weken), vervolgens een pilot (4-6 weken) en daarna schaalvergroting. Alles is meetbaar met KPI’s en dashboards.",
		suggestions: []string{"Start Discovery", "Bekijk voorbeelden", "Meetbare KPI’s"},
	},
	{
		intent:      IntentServiceSupport,
		keywords:    []string{"support", "klantenservice", "customer service", "helpdesk"},
		reply:       "Voor support automatisering combineren we NLP met workflow-automatisering (RPA). Gemiddeld reduceren we responstijden met 50-70%.",
		suggestions: []string{"Plan demo virtuele agent", "Zie case retail", "Integraties"},
	},
	{
		intent:      IntentServiceMarketing,
		keywords:    []string{"marketing", "lead", "campagne", "growth"},
		reply:       "We bouwen scoring-modellen, personalisatie en journey-automatisering. Dit leidt vaak tot +10-25% conversie uplift.",
		suggestions: []string{"Plan marketing audit", "Voorbeeldflows", "CDP integratie"},
	},
	{
		intent:      IntentServiceML,
		keywords:    []string{"ml", "machine learning", "model", "ai"},
		reply:       "We ontwikkelen productierijpe ML met MLOps best practices: monitoring, retraining en CI/CD voor modellen.",
		suggestions: []string{"Architectuur voorbeelden", "Security & compliance", "Roadmap sessie"},
	},
}

// generalBucket answers when no keyword matches, including empty messages.
var generalBucket = bucket{
	intent:      IntentGeneral,
	reply:       "Hi! Ik ben je AI-assistent. Stel me een vraag over onze diensten, implementatie of prijzen, of vraag om een intake.",
	suggestions: []string{"Wat kost een pilot?", "Hoe ziet het proces eruit?", "Welke cases hebben jullie?"},
}
