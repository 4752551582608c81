package hsnsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/oauth2"

	"customsduty/internal/domain"
)

// Session owns the credentials for one client. Tokens are fetched lazily,
// reused until the API rejects them, and never shared across clients.
type Session struct {
	mu     sync.Mutex
	source oauth2.TokenSource
	cached oauth2.TokenSource
}

// NewSession wraps source so its token is reused until Invalidate is called.
func NewSession(source oauth2.TokenSource) *Session {
	return &Session{source: source, cached: oauth2.ReuseTokenSource(nil, source)}
}

// Authorize sets the authorization header on req.
func (s *Session) Authorize(req *http.Request) error {
	s.mu.Lock()
	src := s.cached
	s.mu.Unlock()

	tok, err := src.Token()
	if err != nil {
		return fmt.Errorf("obtaining access token: %w", err)
	}
	tok.SetAuthHeader(req)
	return nil
}

// Invalidate drops the cached token so the next Authorize fetches a new one.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = oauth2.ReuseTokenSource(nil, s.source)
}

// tokenEndpoint fetches "Token <t>" credentials from the access-token URL.
type tokenEndpoint struct {
	url       string
	userAgent string
	client    *http.Client
}

func (e *tokenEndpoint) Token() (*oauth2.Token, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, e.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling token endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamStatusError{Service: "hsnsearch", Endpoint: "token", StatusCode: resp.StatusCode}
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if out.Token == "" {
		return nil, fmt.Errorf("token endpoint returned an empty token: %w", domain.ErrUnauthorized)
	}
	return &oauth2.Token{AccessToken: out.Token, TokenType: "Token"}, nil
}
