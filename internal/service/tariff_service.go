package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"customsduty/internal/config"
	"customsduty/internal/domain"
	"customsduty/internal/duty"
	"customsduty/internal/port"
)

var hsnCodePattern = regexp.MustCompile(`^\d{2,8}$`)

// LookupRequest is a batch of codes sharing one country and valuation.
type LookupRequest struct {
	HSNCodes        []string
	Country         string
	AssessableValue float64
	Quantity        float64
	Notification    string
	Serial          string
}

// CodeReport holds everything fetched and computed for one code. Error is set
// when the duty payloads could not be interpreted; the rest of the batch is
// unaffected.
type CodeReport struct {
	CTH                string                  `json:"cth_code"`
	Country            string                  `json:"country"`
	TariffData         []domain.TariffItem     `json:"tariff_data"`
	CCRData            []domain.CCRRecord      `json:"ccr_data"`
	SwiftPGAFilingData []domain.SwiftPGARecord `json:"swift_pga_filing_data"`
	Duties             *duty.Result            `json:"duties"`
	Error              string                  `json:"error,omitempty"`
}

// TariffService provides tariff lookups and duty computation.
type TariffService interface {
	Lookup(ctx context.Context, req LookupRequest) ([]CodeReport, error)
	Compute(ctx context.Context, in duty.Input) (*duty.Result, error)
	Countries() []string
	ResolveCountry(q string) string
}

type tariffService struct {
	source    port.TariffSource
	countries []string
	cfg       config.LookupConfig
	log       *zap.Logger
}

// NewTariffService creates a new TariffService implementation.
func NewTariffService(source port.TariffSource, countries []string, cfg config.LookupConfig, log *zap.Logger) TariffService {
	if len(countries) == 0 {
		countries = duty.ReferenceCountries
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &tariffService{source: source, countries: countries, cfg: cfg, log: log}
}

func (s *tariffService) Countries() []string {
	return append([]string(nil), s.countries...)
}

func (s *tariffService) ResolveCountry(q string) string {
	return duty.ResolveCountry(q, s.countries)
}

// Compute runs the engine on caller-supplied payloads. The country is
// normalized against the reference list first.
func (s *tariffService) Compute(_ context.Context, in duty.Input) (*duty.Result, error) {
	in.Country = s.ResolveCountry(in.Country)
	res, err := duty.Compute(in)
	if err != nil {
		return nil, fmt.Errorf("computing duties for %s: %w", in.CTH, err)
	}
	return res, nil
}

// Lookup fetches and computes each code in parallel, bounded by the configured
// concurrency. Reports are returned in request order with duplicates removed.
func (s *tariffService) Lookup(ctx context.Context, req LookupRequest) ([]CodeReport, error) {
	codes, err := s.normalizeCodes(req.HSNCodes)
	if err != nil {
		return nil, err
	}

	country := s.ResolveCountry(req.Country)
	reports := make([]CodeReport, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for i, code := range codes {
		g.Go(func() error {
			report, err := s.lookupOne(gctx, code, country, req)
			if err != nil {
				return err
			}
			reports[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("tariffService: lookup complete",
		zap.Int("codes", len(codes)), zap.String("country", country))
	return reports, nil
}

func (s *tariffService) lookupOne(ctx context.Context, code, country string, req LookupRequest) (*CodeReport, error) {
	report := &CodeReport{
		CTH:                code,
		Country:            country,
		TariffData:         []domain.TariffItem{},
		CCRData:            []domain.CCRRecord{},
		SwiftPGAFilingData: []domain.SwiftPGARecord{},
	}

	if items, err := s.source.FetchTariffItems(ctx, code, country); err != nil {
		s.warnFetch("tariff items", code, err)
	} else {
		report.TariffData = items
	}
	if ccr, err := s.source.FetchCCR(ctx, code, country); err != nil {
		s.warnFetch("ccr", code, err)
	} else {
		report.CCRData = ccr
	}
	if pga, err := s.source.FetchSwiftPGA(ctx, code, country); err != nil {
		s.warnFetch("swift pga", code, err)
	} else {
		report.SwiftPGAFilingData = pga
	}

	payloads, err := s.source.FetchDutyPayloads(ctx, code, country)
	if err != nil {
		return nil, fmt.Errorf("fetching duty payloads for %s: %w", code, err)
	}

	res, err := duty.Compute(duty.Input{
		CTH:             code,
		Country:         country,
		AssessableValue: req.AssessableValue,
		Quantity:        req.Quantity,
		Notification:    req.Notification,
		Serial:          req.Serial,
		Payloads:        payloads,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidPayload) {
			return nil, fmt.Errorf("computing duties for %s: %w", code, err)
		}
		s.log.Warn("tariffService: duty payload rejected", zap.String("cth", code), zap.Error(err))
		report.Error = err.Error()
		return report, nil
	}
	report.Duties = res
	return report, nil
}

func (s *tariffService) warnFetch(what, code string, err error) {
	s.log.Warn("tariffService: "+what+" unavailable", zap.String("cth", code), zap.Error(err))
}

func (s *tariffService) normalizeCodes(raw []string) ([]string, error) {
	seen := make(map[string]bool, len(raw))
	codes := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		if !hsnCodePattern.MatchString(c) {
			return nil, fmt.Errorf("%q: %w", c, domain.ErrInvalidHSNCode)
		}
		seen[c] = true
		codes = append(codes, c)
	}
	if len(codes) == 0 {
		return nil, domain.ErrNoHSNCodes
	}
	if s.cfg.MaxCodes > 0 && len(codes) > s.cfg.MaxCodes {
		return nil, fmt.Errorf("%d codes, limit %d: %w", len(codes), s.cfg.MaxCodes, domain.ErrTooManyHSNCodes)
	}
	return codes, nil
}
