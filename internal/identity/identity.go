// Package identity defines the ingestion boundary: sources that yield the
// current principals and the entitlements attached to them. The engine does
// not care whether a source is a live cloud API, a SCIM-style HTTP endpoint,
// or a static fixture.
package identity

import (
	"context"
	"time"
)

// Entitlement is one permission set attached to a principal, as seen by the
// identity provider.
type Entitlement struct {
	ID          string
	DisplayName string
}

// Principal is one identity with its currently attached entitlements.
type Principal struct {
	ID           string
	DisplayName  string
	Reference    string
	DiscoveredAt time.Time
	Entitlements []Entitlement
}

// Source yields the current (principal, entitlements) snapshot.
type Source interface {
	// Name identifies the source in logs and audit entries.
	Name() string
	// Identities returns the full current snapshot. Implementations must
	// honour ctx cancellation and apply their own bounded timeouts on
	// network calls.
	Identities(ctx context.Context) ([]Principal, error)
}
