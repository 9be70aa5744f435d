package identity

import (
	"context"
	"time"
)

// StaticSource serves a fixed identity snapshot. Used for offline demos,
// seeding, and tests.
type StaticSource struct {
	principals []Principal
}

// NewStaticSource returns a source over the given principals. With no
// arguments it serves the built-in demo fixture.
func NewStaticSource(principals ...Principal) *StaticSource {
	if len(principals) == 0 {
		principals = demoPrincipals()
	}
	return &StaticSource{principals: principals}
}

// Name implements Source.
func (s *StaticSource) Name() string { return "static" }

// Identities implements Source.
func (s *StaticSource) Identities(_ context.Context) ([]Principal, error) {
	out := make([]Principal, len(s.principals))
	copy(out, s.principals)
	return out, nil
}

func demoPrincipals() []Principal {
	now := time.Now().UTC()
	return []Principal{
		{
			ID:           "DEMO-USER-1",
			DisplayName:  "alice@example.com",
			Reference:    "arn:aws:iam::123456789012:user/alice",
			DiscoveredAt: now,
			Entitlements: []Entitlement{
				{ID: "arn:aws:iam::aws:policy/ReadOnlyAccess", DisplayName: "ReadOnlyAccess"},
				{ID: "arn:aws:iam::aws:policy/PowerUserAccess", DisplayName: "PowerUserAccess"},
			},
		},
		{
			ID:           "DEMO-USER-2",
			DisplayName:  "bob@example.com",
			Reference:    "arn:aws:iam::123456789012:user/bob",
			DiscoveredAt: now,
			Entitlements: []Entitlement{
				{ID: "arn:aws:iam::aws:policy/AdministratorAccess", DisplayName: "AdministratorAccess"},
			},
		},
	}
}
