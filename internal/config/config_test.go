package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSafetyDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	// Both remediation opt-ins must default to the inert side.
	assert.True(t, cfg.Remediation.DryRun)
	assert.False(t, cfg.Remediation.Enabled)
	assert.Equal(t, []string{"administratoraccess", "breakglass", "break-glass"}, cfg.Remediation.Denylist)
	assert.Empty(t, cfg.Remediation.Allowlist)
}

func TestLoadDenylistNeverEmpty(t *testing.T) {
	t.Setenv("GOV_REMEDIATION_DENYLIST", "  ,  ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultDenylist, cfg.Remediation.Denylist)
}

func TestLoadNormalizesLists(t *testing.T) {
	t.Setenv("GOV_REMEDIATION_DENYLIST", " AdministratorAccess , Break-Glass ")
	t.Setenv("GOV_REMEDIATION_ALLOWLIST", "ReadOnly, ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"administratoraccess", "break-glass"}, cfg.Remediation.Denylist)
	assert.Equal(t, []string{"readonly"}, cfg.Remediation.Allowlist)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("GOV_DB_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownDiscoverySource(t *testing.T) {
	t.Setenv("GOV_DISCOVERY_SOURCE", "ldap")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadHTTPDiscoveryRequiresCredentials(t *testing.T) {
	t.Setenv("GOV_DISCOVERY_SOURCE", "http")
	t.Setenv("GOV_DISCOVERY_HTTP_BASE_URL", "https://idp.example.com")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("GOV_DISCOVERY_HTTP_TOKEN_URL", "https://idp.example.com/oauth/token")
	t.Setenv("GOV_DISCOVERY_HTTP_CLIENT_ID", "governor")
	t.Setenv("GOV_DISCOVERY_HTTP_CLIENT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Discovery.Source)
}
