package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/config"
	"golang.org/x/oauth2/clientcredentials"
)

// HTTPSource pulls identities from a SCIM-style HTTP endpoint secured with
// the OAuth2 client-credentials flow, the common shape for IdP admin APIs.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource builds a source whose HTTP client transparently acquires and
// refreshes machine-to-machine tokens.
func NewHTTPSource(cfg config.DiscoveryConfig) *HTTPSource {
	oauthCfg := &clientcredentials.Config{
		ClientID:     cfg.HTTPClientID,
		ClientSecret: cfg.HTTPClientSecret,
		TokenURL:     cfg.HTTPTokenURL,
		Scopes:       cfg.HTTPScopes,
	}

	client := oauthCfg.Client(context.Background())
	client.Timeout = cfg.Timeout

	return &HTTPSource{
		baseURL:    strings.TrimRight(cfg.HTTPBaseURL, "/"),
		httpClient: client,
	}
}

// Name implements Source.
func (s *HTTPSource) Name() string { return "http" }

type wirePrincipal struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"display_name"`
	Reference    string    `json:"reference"`
	DiscoveredAt time.Time `json:"discovered_at"`
	Entitlements []struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"entitlements"`
}

// Identities implements Source.
func (s *HTTPSource) Identities(ctx context.Context) ([]Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/identities", nil)
	if err != nil {
		return nil, fmt.Errorf("build identities request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch identities: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch identities: unexpected status %d", resp.StatusCode)
	}

	var wire []wirePrincipal
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode identities: %w", err)
	}

	principals := make([]Principal, 0, len(wire))
	for _, w := range wire {
		p := Principal{
			ID:           w.ID,
			DisplayName:  w.DisplayName,
			Reference:    w.Reference,
			DiscoveredAt: w.DiscoveredAt,
		}
		for _, e := range w.Entitlements {
			p.Entitlements = append(p.Entitlements, Entitlement{ID: e.ID, DisplayName: e.DisplayName})
		}
		principals = append(principals, p)
	}
	return principals, nil
}
