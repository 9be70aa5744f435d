// Package revoke defines the destructive boundary: detaching an entitlement
// from a principal in the identity provider. The remediation executor is the
// only caller, and only after the full safety gate has passed.
package revoke

import "context"

// Revoker detaches one entitlement from one principal. Implementations must
// be safe to call at most once per finalized review and must honour ctx
// deadlines.
type Revoker interface {
	Revoke(ctx context.Context, principalRef, entitlementRef string) error
}

// Noop is the inert revoker used whenever live remediation is not fully
// configured. The executor never reaches a Revoke call in dry-run or
// disabled mode, but wiring Noop keeps the failure mode explicit if it ever
// did.
type Noop struct{}

// Revoke implements Revoker as a no-op.
func (Noop) Revoke(context.Context, string, string) error { return nil }
