// Package hsnsearch looks up HSN master codes, descriptions and GST rates.
package hsnsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"customsduty/internal/config"
	"customsduty/internal/domain"
)

// Client implements port.HSNSearcher.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	session   *Session
	log       *zap.Logger
}

// NewClient creates a search client with its own credential session.
func NewClient(cfg *config.HSNSearchConfig, log *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client:    httpClient,
		session: NewSession(&tokenEndpoint{
			url:       cfg.TokenURL,
			userAgent: cfg.UserAgent,
			client:    httpClient,
		}),
		log: log,
	}
}

// Search returns the head row for code followed by its sub-codes. A code the
// upstream knows nothing about yields a single "no data" row.
func (c *Client) Search(ctx context.Context, code string) ([]domain.HSNCode, error) {
	body, err := c.fetch(ctx, code)
	if err != nil {
		return nil, err
	}
	return parseSearchResponse(code, body)
}

func (c *Client) fetch(ctx context.Context, code string) ([]byte, error) {
	endpoint := c.baseURL + "?" + url.Values{"search": {code}}.Encode()

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json, text/plain, */*")
		if err := c.session.Authorize(req); err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("calling hsn search: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading hsn search response: %w", err)
		}

		if resp.StatusCode == http.StatusUnauthorized && attempt == 0 {
			c.log.Info("hsnsearch.Client: token rejected, refreshing", zap.String("code", code))
			c.session.Invalidate()
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &domain.UpstreamStatusError{Service: "hsnsearch", Endpoint: "search", StatusCode: resp.StatusCode}
		}
		return body, nil
	}
}

type searchGroup struct {
	Desc  string              `json:"desc"`
	GST   any                 `json:"gst"`
	Codes []map[string]string `json:"codes"`
}

func parseSearchResponse(code string, body []byte) ([]domain.HSNCode, error) {
	var resp struct {
		Search any                     `json:"search"`
		Result map[string]*searchGroup `json:"result"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding hsn search response: %w", err)
	}

	search := code
	if resp.Search != nil {
		search = cast.ToString(resp.Search)
	}

	grp := resp.Result[search]
	if grp == nil || len(grp.Codes) == 0 {
		return []domain.HSNCode{{MainHSNCode: search, HSNCode: search, Description: "no data"}}, nil
	}

	gst := gstRate(grp.GST)
	rows := []domain.HSNCode{{
		MainHSNCode: search,
		HSNCode:     search,
		Description: strings.TrimSpace(grp.Desc),
		GSTRate:     gst,
	}}
	for _, entry := range grp.Codes {
		keys := make([]string, 0, len(entry))
		for k := range entry {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, domain.HSNCode{
				MainHSNCode: search,
				HSNCode:     k,
				Description: strings.TrimSpace(entry[k]),
				GSTRate:     gst,
			})
		}
	}
	return rows, nil
}

func gstRate(v any) *int {
	s := strings.TrimSuffix(strings.TrimSpace(cast.ToString(v)), "%")
	if s == "" {
		return nil
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return nil
	}
	rate := int(f)
	return &rate
}
