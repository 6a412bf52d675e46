package recommend

import (
	"agency-backend/internal/catalog"
)

// QuizInput is the quiz payload posted by the frontend.
// All three fields are free text; matching is case-insensitive.
type QuizInput struct {
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`
	PrimaryGoal string `json:"primary_goal"`
}

type field int

const (
	fieldGoal field = iota
	fieldIndustry
	fieldSize
)

// rule appends one catalog item when the selected quiz field equals any of
// the keywords. Several rules may append the same item; dedup happens later.
type rule struct {
	field    field
	keywords []string
	title    string
}

// rules are evaluated in order against the lower-cased quiz fields.
var rules = []rule{
	{fieldGoal, []string{"support", "customer support", "cs"}, catalog.TitleCustomerService},
	{fieldGoal, []string{"lead-gen", "marketing", "growth", "revenue"}, catalog.TitleMarketing},
	{fieldGoal, []string{"analytics", "insights", "reporting"}, catalog.TitleAnalytics},
	{fieldGoal, []string{"operations", "efficiency", "process"}, catalog.TitleRPA},
	{fieldIndustry, []string{"ecommerce", "e-commerce"}, catalog.TitleML},
	{fieldIndustry, []string{"finance", "fintech", "financial"}, catalog.TitleML},
	{fieldSize, []string{"enterprise", "midmarket"}, catalog.TitleRPA},
}

// fallbackTitles is used when no rule matches so the result is never empty.
var fallbackTitles = []string{catalog.TitleML, catalog.TitleCustomerService, catalog.TitleAnalytics}
