package catalog

// Service provides read access to the public content lists.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Technologies() []Technology {
	return s.repo.Technologies()
}

func (s *Service) Team() []TeamMember {
	return s.repo.Team()
}

func (s *Service) CaseStudies() []CaseStudy {
	return s.repo.CaseStudies()
}
