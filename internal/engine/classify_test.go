package engine

import (
	"testing"

	ententitlement "github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReclassifyAll(t *testing.T) {
	eng, client := newTestEngine(t)

	_, err := eng.DiscoverySync(t.Context())
	require.NoError(t, err)

	report, err := eng.ReclassifyAll(t.Context())
	require.NoError(t, err)
	// ReadOnlyAccess already sits at the LOW default, so only two change.
	assert.Equal(t, 2, report.Succeeded())
	assert.Zero(t, report.Failed)

	want := map[string]ententitlement.RiskTier{
		adminPolicy:    ententitlement.RiskTierHIGH,
		powerPolicy:    ententitlement.RiskTierMEDIUM,
		readOnlyPolicy: ententitlement.RiskTierLOW,
	}
	for id, tier := range want {
		ement, err := client.Entitlement.Get(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, tier, ement.RiskTier, id)
	}
}

func TestReclassifyAllStableOnRerun(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.DiscoverySync(t.Context())
	require.NoError(t, err)

	_, err = eng.ReclassifyAll(t.Context())
	require.NoError(t, err)

	report, err := eng.ReclassifyAll(t.Context())
	require.NoError(t, err)
	assert.Zero(t, report.Succeeded())
	assert.Equal(t, 3, report.Skipped)
}
