// Package icegate fetches tariff, duty and compliance data from the ICEGATE
// trade guide. It returns upstream payloads as received; all duty arithmetic
// lives in package duty.
package icegate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"customsduty/internal/config"
	"customsduty/internal/domain"
	"customsduty/internal/duty"
)

const (
	pathTariffView       = "/Webappl/DueFee1"
	pathEffectiveView    = "/Webappl/DueFee111"
	pathNotificationView = "/Webappl/DueFee11"
	pathDescription      = "/Webappl/Desc_details"
	pathCompliance       = "/Webappl/CDC_Desc"
)

// Client implements port.TariffSource against ICEGATE.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	log       *zap.Logger
}

// NewClient creates an ICEGATE client from config.
func NewClient(cfg *config.ICEGateConfig, log *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: timeout},
		log:       log,
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling icegate %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading icegate %s response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamStatusError{Service: "icegate", Endpoint: path, StatusCode: resp.StatusCode}
	}
	return body, nil
}

func dutyParams(cth, country string) url.Values {
	return url.Values{"cth_val": {cth}, "cntrycd": {country}}
}

// FetchDutyPayloads fetches the three duty views concurrently. An endpoint that
// fails or returns something other than JSON contributes an empty payload so
// the computation still runs on whatever did arrive.
func (c *Client) FetchDutyPayloads(ctx context.Context, cth, country string) (duty.Payloads, error) {
	paths := [3]string{pathTariffView, pathEffectiveView, pathNotificationView}
	var bodies [3]json.RawMessage

	var wg sync.WaitGroup
	wg.Add(len(paths))
	for i, path := range paths {
		go func() {
			defer wg.Done()
			body, err := c.get(ctx, path, dutyParams(cth, country))
			if err != nil {
				c.log.Warn("icegate.Client: duty payload unavailable",
					zap.String("endpoint", path), zap.String("cth", cth), zap.Error(err))
				return
			}
			if !json.Valid(body) {
				c.log.Warn("icegate.Client: duty payload is not JSON",
					zap.String("endpoint", path), zap.String("cth", cth))
				return
			}
			bodies[i] = body
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return duty.Payloads{}, fmt.Errorf("fetching duty payloads for %s: %w", cth, err)
	}
	return duty.Payloads{Tariff: bodies[0], Effective: bodies[1], Notification: bodies[2]}, nil
}

// FetchTariffItems returns the tariff lines whose item code equals cth exactly.
func (c *Client) FetchTariffItems(ctx context.Context, cth, country string) ([]domain.TariffItem, error) {
	params := url.Values{"cth": {cth}, "item_desc": {""}, "cntrycd": {country}}
	body, err := c.get(ctx, pathDescription, params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Items []map[string]any `json:"rsAllCth"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding tariff items: %w", err)
	}

	items := make([]domain.TariffItem, 0, len(resp.Items))
	for _, it := range resp.Items {
		if str(it["itc_code"]) != cth {
			continue
		}
		items = append(items, domain.TariffItem{
			TariffItem:   str(it["itc_code"]),
			Description:  str(it["itc_desc"]),
			Unit:         str(it["uqc"]),
			RateOfDuty:   str(it["rta"]),
			ImportPolicy: str(it["itchs_policy"]),
		})
	}
	return items, nil
}

// FetchCCR returns the compulsory compliance requirement rows unchanged.
func (c *Client) FetchCCR(ctx context.Context, cth, country string) ([]domain.CCRRecord, error) {
	body, err := c.get(ctx, pathCompliance, dutyParams(cth, country))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Records []domain.CCRRecord `json:"rs_rmsccr_new"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding ccr data: %w", err)
	}
	if resp.Records == nil {
		return []domain.CCRRecord{}, nil
	}
	return resp.Records, nil
}

// FetchSwiftPGA returns the country-wise SWIFT PGA filing requirements.
func (c *Client) FetchSwiftPGA(ctx context.Context, cth, country string) ([]domain.SwiftPGARecord, error) {
	body, err := c.get(ctx, pathCompliance, dutyParams(cth, country))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Records []map[string]any `json:"rs_swiftpga_new"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding swift pga data: %w", err)
	}

	records := make([]domain.SwiftPGARecord, 0, len(resp.Records))
	for _, r := range resp.Records {
		records = append(records, domain.SwiftPGARecord{
			PGACode:   str(r["agency_cd"]),
			PGAName:   str(r["agency_nm"]),
			InfoCode:  str(r["info_type_cd"]),
			InfoDesc:  str(r["info_type_desc"]),
			QFRCode:   str(r["code"]),
			QFRDesc:   str(r["info_qfr_desc"]),
			Required:  str(r["req"]),
			Mandatory: str(r["man_opt"]),
		})
	}
	return records, nil
}

func str(v any) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}
