package recommend

import (
	"sort"
	"strings"

	"agency-backend/internal/catalog"
)

// Service maps quiz answers to catalog recommendations.
type Service struct {
	repo catalog.Repository
}

func NewService(repo catalog.Repository) *Service {
	return &Service{repo: repo}
}

// Recommend returns a deduplicated selection from the service catalog sorted
// ascending by priority. Ties keep first-match order (the order a title first
// entered the result), so the output is deterministic for a given input.
func (s *Service) Recommend(in QuizInput) []catalog.Item {
	industry := strings.ToLower(in.Industry)
	size := strings.ToLower(in.CompanySize)
	goal := strings.ToLower(in.PrimaryGoal)

	titles := make([]string, 0, len(rules))
	for _, r := range rules {
		v := goal
		switch r.field {
		case fieldIndustry:
			v = industry
		case fieldSize:
			v = size
		}
		if matchesAny(v, r.keywords) {
			titles = append(titles, r.title)
		}
	}

	if len(titles) == 0 {
		titles = append(titles, fallbackTitles...)
	}

	// dedup by title: last write wins for the value, first occurrence fixes
	// the position used for the sort tie-break
	order := make([]string, 0, len(titles))
	byTitle := make(map[string]catalog.Item, len(titles))
	for _, t := range titles {
		item, err := s.repo.ServiceByTitle(t)
		if err != nil {
			continue
		}
		if _, seen := byTitle[t]; !seen {
			order = append(order, t)
		}
		byTitle[t] = item
	}

	out := make([]catalog.Item, 0, len(order))
	for _, t := range order {
		out = append(out, byTitle[t])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

func matchesAny(v string, keywords []string) bool {
	for _, k := range keywords {
		if v == k {
			return true
		}
	}
	return false
}
