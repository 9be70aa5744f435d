package engine

import (
	"testing"

	ententitlement "github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverySyncIdempotent(t *testing.T) {
	eng, client := newTestEngine(t)

	report, err := eng.DiscoverySync(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Succeeded())
	assert.Zero(t, report.Failed)

	report, err = eng.DiscoverySync(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Succeeded())

	principals, err := client.Principal.Query().Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, principals)

	entitlements, err := client.Entitlement.Query().Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, entitlements)

	grants, err := client.Grant.Query().Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, grants)
}

func TestDiscoverySyncPreservesRiskTier(t *testing.T) {
	eng, client := newTestEngine(t)

	_, err := eng.DiscoverySync(t.Context())
	require.NoError(t, err)

	err = client.Entitlement.UpdateOneID(adminPolicy).
		SetRiskTier(ententitlement.RiskTierHIGH).
		Exec(t.Context())
	require.NoError(t, err)

	_, err = eng.DiscoverySync(t.Context())
	require.NoError(t, err)

	ement, err := client.Entitlement.Get(t.Context(), adminPolicy)
	require.NoError(t, err)
	assert.Equal(t, ententitlement.RiskTierHIGH, ement.RiskTier)
}
