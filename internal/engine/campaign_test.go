package engine

import (
	"testing"

	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCampaignIdempotent(t *testing.T) {
	eng, client := newTestEngine(t)

	_, err := eng.DiscoverySync(t.Context())
	require.NoError(t, err)

	first, err := eng.GenerateCampaign(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, first.ReviewsCreated)
	assert.Zero(t, first.Skipped)

	second, err := eng.GenerateCampaign(t.Context())
	require.NoError(t, err)
	assert.Zero(t, second.ReviewsCreated)
	assert.Equal(t, 3, second.Skipped)
	assert.NotEqual(t, first.CampaignID, second.CampaignID)

	pending, err := client.Review.Query().
		Where(entreview.StatusEQ(entreview.StatusPENDING)).
		Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, pending)

	campaigns, err := client.Campaign.Query().Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, campaigns)
}

func TestGenerateCampaignReopensDecidedPairs(t *testing.T) {
	eng, client := newTestEngine(t)
	seedReviews(t, eng)

	review := reviewFor(t, client, adminPolicy)
	err := eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: DecisionApproved})
	require.NoError(t, err)

	summary, err := eng.GenerateCampaign(t.Context())
	require.NoError(t, err)
	// The approved pair gets a fresh pending review; the other two still
	// have open ones and are skipped.
	assert.Equal(t, 1, summary.ReviewsCreated)
	assert.Equal(t, 2, summary.Skipped)

	pending, err := client.Review.Query().
		Where(
			entreview.EntitlementID(adminPolicy),
			entreview.StatusEQ(entreview.StatusPENDING),
		).
		Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}
