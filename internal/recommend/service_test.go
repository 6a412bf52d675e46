package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-backend/internal/catalog"
)

func newTestService() *Service {
	return NewService(catalog.NewInMemoryRepository())
}

func titlesOf(items []catalog.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestRecommend_Matching(t *testing.T) {
	tests := []struct {
		name   string
		input  QuizInput
		titles []string
	}{
		{
			name:   "support goal puts customer service first",
			input:  QuizInput{Industry: "saas", CompanySize: "startup", PrimaryGoal: "support"},
			titles: []string{catalog.TitleCustomerService},
		},
		{
			name:   "ecommerce industry alone",
			input:  QuizInput{Industry: "ecommerce", CompanySize: "startup", PrimaryGoal: "unknown"},
			titles: []string{catalog.TitleML},
		},
		{
			name:   "support goal with finance industry sorts by priority",
			input:  QuizInput{Industry: "finance", CompanySize: "smb", PrimaryGoal: "support"},
			titles: []string{catalog.TitleCustomerService, catalog.TitleML},
		},
		{
			name:   "enterprise size and operations goal dedup to one rpa entry",
			input:  QuizInput{Industry: "saas", CompanySize: "enterprise", PrimaryGoal: "operations"},
			titles: []string{catalog.TitleRPA},
		},
		{
			name:   "priority tie broken by first-match order",
			input:  QuizInput{Industry: "saas", CompanySize: "enterprise", PrimaryGoal: "analytics"},
			titles: []string{catalog.TitleAnalytics, catalog.TitleRPA},
		},
		{
			name:   "matching is case-insensitive",
			input:  QuizInput{Industry: "E-Commerce", CompanySize: "Enterprise", PrimaryGoal: "SUPPORT"},
			titles: []string{catalog.TitleCustomerService, catalog.TitleML, catalog.TitleRPA},
		},
		{
			name:   "no match falls back to the default trio",
			input:  QuizInput{Industry: "none", CompanySize: "none", PrimaryGoal: "none"},
			titles: []string{catalog.TitleCustomerService, catalog.TitleML, catalog.TitleAnalytics},
		},
		{
			name:   "empty input falls back to the default trio",
			input:  QuizInput{},
			titles: []string{catalog.TitleCustomerService, catalog.TitleML, catalog.TitleAnalytics},
		},
	}

	s := newTestService()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Recommend(tc.input)
			assert.Equal(t, tc.titles, titlesOf(got))
		})
	}
}

func TestRecommend_SupportGoalFirstItem(t *testing.T) {
	got := newTestService().Recommend(QuizInput{Industry: "finance", CompanySize: "enterprise", PrimaryGoal: "support"})
	require.NotEmpty(t, got)
	assert.Equal(t, catalog.TitleCustomerService, got[0].Title)
	assert.Equal(t, 1, got[0].Priority)
}

func TestRecommend_Guarantees(t *testing.T) {
	inputs := []QuizInput{
		{},
		{Industry: "ecommerce", CompanySize: "enterprise", PrimaryGoal: "support"},
		{Industry: "fintech", CompanySize: "midmarket", PrimaryGoal: "marketing"},
		{Industry: "healthcare", CompanySize: "smb", PrimaryGoal: "reporting"},
		{Industry: "garbage", CompanySize: "garbage", PrimaryGoal: "garbage"},
	}

	s := newTestService()
	for _, in := range inputs {
		got := s.Recommend(in)

		require.NotEmpty(t, got, "result must never be empty for %+v", in)
		assert.LessOrEqual(t, len(got), 5)

		seen := map[string]bool{}
		for i, item := range got {
			assert.False(t, seen[item.Title], "duplicate title %q for %+v", item.Title, in)
			seen[item.Title] = true
			if i > 0 {
				assert.GreaterOrEqual(t, item.Priority, got[i-1].Priority, "priorities must be non-decreasing for %+v", in)
			}
		}
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	s := newTestService()
	in := QuizInput{Industry: "ecommerce", CompanySize: "enterprise", PrimaryGoal: "support"}
	assert.Equal(t, s.Recommend(in), s.Recommend(in))
}
