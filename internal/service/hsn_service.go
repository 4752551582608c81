package service

import (
	"context"
	"fmt"
	"strings"

	"customsduty/internal/domain"
	"customsduty/internal/port"
)

// HSNService provides HSN master code search.
type HSNService interface {
	Search(ctx context.Context, code string) ([]domain.HSNCode, error)
}

type hsnService struct {
	searcher port.HSNSearcher
}

// NewHSNService creates a new HSNService implementation.
func NewHSNService(searcher port.HSNSearcher) HSNService {
	return &hsnService{searcher: searcher}
}

func (s *hsnService) Search(ctx context.Context, code string) ([]domain.HSNCode, error) {
	code = strings.TrimSpace(code)
	if !hsnCodePattern.MatchString(code) {
		return nil, fmt.Errorf("%q: %w", code, domain.ErrInvalidHSNCode)
	}
	rows, err := s.searcher.Search(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("searching hsn %s: %w", code, err)
	}
	return rows, nil
}
