package port

import (
	"context"

	"customsduty/internal/domain"
	"customsduty/internal/duty"
)

// TariffSource defines the contract for fetching raw tariff data for one
// classification code and resolved country ("CODE,NAME").
type TariffSource interface {
	// FetchDutyPayloads returns the tariff, effective and notification views.
	// Individual endpoint failures yield empty payloads; only cancellation is an error.
	FetchDutyPayloads(ctx context.Context, cth, country string) (duty.Payloads, error)
	FetchTariffItems(ctx context.Context, cth, country string) ([]domain.TariffItem, error)
	FetchCCR(ctx context.Context, cth, country string) ([]domain.CCRRecord, error)
	FetchSwiftPGA(ctx context.Context, cth, country string) ([]domain.SwiftPGARecord, error)
}
