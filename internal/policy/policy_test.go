package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldActDenylist(t *testing.T) {
	p := NewRemediation(false, true, []string{"administratoraccess", "breakglass"}, nil)

	allowed, reason := p.ShouldAct("AdministratorAccess")
	assert.False(t, allowed)
	assert.Contains(t, reason, "denylist")

	allowed, _ = p.ShouldAct("BreakGlass-Emergency")
	assert.False(t, allowed)

	allowed, reason = p.ShouldAct("ReadOnlyAccess")
	assert.True(t, allowed)
	assert.Equal(t, "allowed", reason)
}

func TestShouldActDenylistPrecedence(t *testing.T) {
	// An entitlement matching both lists is never allowed.
	p := NewRemediation(false, true, []string{"admin"}, []string{"admin"})

	allowed, reason := p.ShouldAct("AdminAccess")
	assert.False(t, allowed)
	assert.Contains(t, reason, "denylist")
}

func TestShouldActAllowlist(t *testing.T) {
	p := NewRemediation(false, true, []string{"breakglass"}, []string{"readonly"})

	allowed, _ := p.ShouldAct("ReadOnlyAccess")
	assert.True(t, allowed)

	allowed, reason := p.ShouldAct("PowerUserAccess")
	assert.False(t, allowed)
	assert.Equal(t, "skipped: not in remediation allowlist", reason)
}

func TestShouldActEmptyAllowlistMeansNoRestriction(t *testing.T) {
	p := NewRemediation(false, true, []string{"breakglass"}, nil)

	allowed, _ := p.ShouldAct("AnythingAtAll")
	assert.True(t, allowed)
}

func TestLiveModeRequiresBothOptIns(t *testing.T) {
	assert.False(t, NewRemediation(true, false, nil, nil).LiveMode())
	assert.False(t, NewRemediation(true, true, nil, nil).LiveMode())
	assert.False(t, NewRemediation(false, false, nil, nil).LiveMode())
	assert.True(t, NewRemediation(false, true, nil, nil).LiveMode())
}

func TestDisabled(t *testing.T) {
	p := NewRemediation(false, true, nil, nil)
	assert.True(t, p.LiveMode())
	assert.False(t, p.Disabled().LiveMode())
	// original value untouched
	assert.True(t, p.LiveMode())
}

func TestNormalization(t *testing.T) {
	p := NewRemediation(false, true, []string{" AdministratorAccess ", "", "BreakGlass"}, nil)
	assert.Equal(t, []string{"administratoraccess", "breakglass"}, p.Denylist())
}
