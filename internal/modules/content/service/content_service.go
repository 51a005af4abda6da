package service

import (
	"pomo/internal/modules/content/domain"
)

type ContentService struct {
	catalog domain.Catalog
	picker  domain.Picker
}

func NewContentService(picker domain.Picker) *ContentService {
	return &ContentService{catalog: domain.DefaultCatalog(), picker: picker}
}

// ApplyQuotes replaces the quote tables with the non-empty blocks of set.
func (s *ContentService) ApplyQuotes(set domain.QuoteSet) {
	s.catalog.Override(domain.CategoryWorkQuotes, set.Work)
	s.catalog.Override(domain.CategoryBreakQuotes, set.Break)
}

func (s *ContentService) Pick(category domain.Category) string {
	return s.catalog.Pick(category, s.picker)
}

func (s *ContentService) Entries(category domain.Category) []string {
	return s.catalog.Entries(category)
}
