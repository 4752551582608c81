package port

import (
	"context"

	"customsduty/internal/domain"
)

// HSNSearcher defines the contract for HSN master code search.
type HSNSearcher interface {
	Search(ctx context.Context, code string) ([]domain.HSNCode, error)
}
