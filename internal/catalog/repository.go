package catalog

import (
	"errors"
)

var (
	ErrNotFound = errors.New("catalog item not found")
)

// Repository provides read access to the static reference catalog.
type Repository interface {
	Services() []Item
	ServiceByTitle(title string) (Item, error)
	Technologies() []Technology
	Team() []TeamMember
	CaseStudies() []CaseStudy
}

// InMemoryRepository holds the catalog in memory. It is seeded once at
// construction and never mutated afterwards, so reads need no locking.
type InMemoryRepository struct {
	services     []Item
	technologies []Technology
	team         []TeamMember
	caseStudies  []CaseStudy
	byTitle      map[string]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	r := &InMemoryRepository{
		services:     defaultServices(),
		technologies: defaultTechnologies(),
		team:         defaultTeam(),
		caseStudies:  defaultCaseStudies(),
	}
	r.byTitle = make(map[string]Item, len(r.services))
	for _, item := range r.services {
		r.byTitle[item.Title] = item
	}
	return r
}

func (r *InMemoryRepository) Services() []Item {
	out := make([]Item, len(r.services))
	copy(out, r.services)
	return out
}

func (r *InMemoryRepository) ServiceByTitle(title string) (Item, error) {
	item, ok := r.byTitle[title]
	if !ok {
		return Item{}, ErrNotFound
	}
	return item, nil
}

func (r *InMemoryRepository) Technologies() []Technology {
	out := make([]Technology, len(r.technologies))
	copy(out, r.technologies)
	return out
}

func (r *InMemoryRepository) Team() []TeamMember {
	out := make([]TeamMember, len(r.team))
	copy(out, r.team)
	return out
}

func (r *InMemoryRepository) CaseStudies() []CaseStudy {
	out := make([]CaseStudy, len(r.caseStudies))
	copy(out, r.caseStudies)
	return out
}
