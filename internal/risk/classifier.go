// Package risk classifies entitlements into tiers using a fixed, ordered
// rule list. Classification is pure and deterministic: the display name is
// the only input, first match wins, and every input maps to exactly one tier.
package risk

import "strings"

// Tier is an entitlement risk tier.
type Tier string

// Risk tiers, lowest to highest.
const (
	TierLow    Tier = "LOW"
	TierMedium Tier = "MEDIUM"
	TierHigh   Tier = "HIGH"
)

// Classify maps an entitlement display name to its risk tier. Matching is
// case-insensitive substring matching; names matching no rule default to LOW.
func Classify(displayName string) Tier {
	name := strings.ToLower(displayName)
	switch {
	case strings.Contains(name, "administratoraccess"), strings.Contains(name, "fullaccess"):
		return TierHigh
	case strings.Contains(name, "poweruser"), strings.Contains(name, "write"):
		return TierMedium
	case strings.Contains(name, "readonly"):
		return TierLow
	default:
		return TierLow
	}
}
