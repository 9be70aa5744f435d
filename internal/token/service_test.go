package token

import (
	"testing"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.TokenConfig {
	return config.TokenConfig{
		Secret:   "test-secret-please-rotate",
		Issuer:   "https://governor.test",
		Audience: "governor",
		TTL:      time.Hour,
	}
}

func TestMintAndParse(t *testing.T) {
	svc, err := NewService(testConfig())
	require.NoError(t, err)

	signed, exp, err := svc.Mint("reviewer-1", "reviewer@example.com", []string{ScopeDecide})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := svc.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "reviewer-1", claims.Subject)
	assert.Equal(t, "reviewer@example.com", claims.Email)
	assert.True(t, claims.HasScope(ScopeDecide))
	assert.False(t, claims.HasScope("reviews:admin"))
}

func TestParseRejectsForeignSecret(t *testing.T) {
	svc, err := NewService(testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.Secret = "a-different-secret"
	otherSvc, err := NewService(other)
	require.NoError(t, err)

	signed, _, err := otherSvc.Mint("reviewer-1", "", nil)
	require.NoError(t, err)

	_, err = svc.Parse(signed)
	require.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	issuerA := testConfig()
	svcA, err := NewService(issuerA)
	require.NoError(t, err)

	issuerB := testConfig()
	issuerB.Issuer = "https://elsewhere.test"
	svcB, err := NewService(issuerB)
	require.NoError(t, err)

	signed, _, err := svcB.Mint("reviewer-1", "", nil)
	require.NoError(t, err)

	_, err = svcA.Parse(signed)
	require.Error(t, err)
}

func TestNewServiceRequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Secret = ""
	_, err := NewService(cfg)
	require.Error(t, err)
}
