package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainHighRiskAnnotates(t *testing.T) {
	eng, client := newTestEngine(t, withExplainer(&fakeExplainer{text: "Admin access on a standard account; revoke unless justified."}))
	seedReviews(t, eng)
	_, err := eng.ReclassifyAll(t.Context())
	require.NoError(t, err)

	report, err := eng.ExplainHighRisk(t.Context())
	require.NoError(t, err)
	// Only bob's AdministratorAccess review is HIGH tier.
	assert.Equal(t, 1, report.Succeeded())

	review := reviewFor(t, client, adminPolicy)
	require.NotNil(t, review.RiskExplanation)
	assert.Equal(t, "Admin access on a standard account; revoke unless justified.", *review.RiskExplanation)

	// Already-annotated reviews are not re-queried.
	report, err = eng.ExplainHighRisk(t.Context())
	require.NoError(t, err)
	assert.Zero(t, report.Succeeded())
}

func TestExplainHighRiskFallsBack(t *testing.T) {
	eng, client := newTestEngine(t, withExplainer(&fakeExplainer{err: errors.New("api down")}))
	seedReviews(t, eng)
	_, err := eng.ReclassifyAll(t.Context())
	require.NoError(t, err)

	report, err := eng.ExplainHighRisk(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded())

	review := reviewFor(t, client, adminPolicy)
	require.NotNil(t, review.RiskExplanation)
	assert.Equal(t, FallbackExplanation, *review.RiskExplanation)
}

func TestExplainHighRiskDisabledWithoutExplainer(t *testing.T) {
	eng, _ := newTestEngine(t)
	seedReviews(t, eng)
	_, err := eng.ReclassifyAll(t.Context())
	require.NoError(t, err)

	report, err := eng.ExplainHighRisk(t.Context())
	require.NoError(t, err)
	assert.Empty(t, report.Items)
}
