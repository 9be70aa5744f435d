// Package policy defines the immutable safety policy evaluated before any
// remediation action. A policy value is constructed once from configuration
// and passed to the executor; there is no ambient global state to flip.
package policy

import (
	"fmt"
	"strings"
)

// Remediation is the layered safety policy for the remediation executor.
//
// A live revoke call requires DryRun=false AND Enabled=true AND ShouldAct
// allowing the entitlement. Every other combination is a logged no-op.
type Remediation struct {
	DryRun    bool
	Enabled   bool
	denylist  []string
	allowlist []string
}

// NewRemediation builds a policy value. List entries are lowercased and
// blank entries dropped; matching is case-insensitive substring matching.
func NewRemediation(dryRun, enabled bool, denylist, allowlist []string) Remediation {
	return Remediation{
		DryRun:    dryRun,
		Enabled:   enabled,
		denylist:  normalize(denylist),
		allowlist: normalize(allowlist),
	}
}

// Denylist returns a copy of the active denylist.
func (p Remediation) Denylist() []string {
	return append([]string(nil), p.denylist...)
}

// Allowlist returns a copy of the active allowlist.
func (p Remediation) Allowlist() []string {
	return append([]string(nil), p.allowlist...)
}

// LiveMode reports whether both opt-ins for destructive calls are set.
func (p Remediation) LiveMode() bool {
	return !p.DryRun && p.Enabled
}

// Disabled returns a copy of the policy with remediation switched off. Used
// when a live configuration cannot be honoured (missing credentials) and the
// pass must degrade explicitly instead of guessing.
func (p Remediation) Disabled() Remediation {
	p.Enabled = false
	return p
}

// ShouldAct decides whether the named entitlement may be detached. The
// denylist is evaluated first and unconditionally; the allowlist can never
// override it. An empty allowlist means no additional restriction.
func (p Remediation) ShouldAct(entitlementName string) (bool, string) {
	name := strings.ToLower(entitlementName)
	for _, deny := range p.denylist {
		if strings.Contains(name, deny) {
			return false, fmt.Sprintf("denied by denylist (%s)", strings.Join(p.denylist, ","))
		}
	}
	if len(p.allowlist) > 0 {
		matched := false
		for _, allow := range p.allowlist {
			if strings.Contains(name, allow) {
				matched = true
				break
			}
		}
		if !matched {
			return false, "skipped: not in remediation allowlist"
		}
	}
	return true, "allowed"
}

func normalize(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
