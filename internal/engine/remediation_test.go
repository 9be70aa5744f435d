package engine

import (
	"errors"
	"testing"

	"github.com/Prachet0806/iam-access-certification-engine/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func livePolicy(denylist, allowlist []string) policy.Remediation {
	return policy.NewRemediation(false, true, denylist, allowlist)
}

func TestRemediationDefaultsNeverCallRevoker(t *testing.T) {
	rev := &fakeRevoker{}
	eng, client := newTestEngine(t, withRevoker(rev))
	seedReviews(t, eng)

	review := reviewFor(t, client, readOnlyPolicy)
	require.NoError(t, eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: DecisionRevoked}))

	summary, err := eng.RemediationScan(t.Context())
	require.NoError(t, err)
	assert.False(t, summary.LiveMode)
	assert.Equal(t, 1, summary.Candidates)
	assert.Equal(t, 1, summary.Skipped)
	assert.Empty(t, rev.calls)

	// Dry-run still finalizes the review, so the next scan finds nothing.
	got, err := client.Review.Get(t.Context(), review.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.RemediatedAt)

	summary, err = eng.RemediationScan(t.Context())
	require.NoError(t, err)
	assert.Zero(t, summary.Candidates)
}

func TestRemediationDenylistBlocksLiveMode(t *testing.T) {
	rev := &fakeRevoker{}
	eng, client := newTestEngine(t,
		withRevoker(rev),
		withPolicy(livePolicy([]string{"administratoraccess"}, []string{"administratoraccess"})),
	)
	seedReviews(t, eng)

	review := reviewFor(t, client, adminPolicy)
	require.NoError(t, eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: DecisionRevoked}))

	summary, err := eng.RemediationScan(t.Context())
	require.NoError(t, err)
	assert.True(t, summary.LiveMode)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.Executed)
	assert.Empty(t, rev.calls)

	got, err := client.Review.Get(t.Context(), review.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.RemediatedAt)
}

func TestRemediationAllowlistRestricts(t *testing.T) {
	rev := &fakeRevoker{}
	eng, client := newTestEngine(t,
		withRevoker(rev),
		withPolicy(livePolicy(nil, []string{"readonly"})),
	)
	seedReviews(t, eng)

	review := reviewFor(t, client, powerPolicy)
	require.NoError(t, eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: DecisionRevoked}))

	summary, err := eng.RemediationScan(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Empty(t, rev.calls)
}

func TestRemediationExecutesExactlyOnce(t *testing.T) {
	rev := &fakeRevoker{}
	eng, client := newTestEngine(t, withRevoker(rev), withPolicy(livePolicy(nil, nil)))
	seedReviews(t, eng)

	review := reviewFor(t, client, readOnlyPolicy)
	require.NoError(t, eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: DecisionRevoked}))

	summary, err := eng.RemediationScan(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Executed)
	require.Len(t, rev.calls, 1)
	assert.Equal(t, "arn:aws:iam::123456789012:user/alice|"+readOnlyPolicy, rev.calls[0])

	summary, err = eng.RemediationScan(t.Context())
	require.NoError(t, err)
	assert.Zero(t, summary.Candidates)
	assert.Len(t, rev.calls, 1)
}

func TestRemediationFailureLeavesRetryable(t *testing.T) {
	rev := &fakeRevoker{err: errors.New("iam unavailable")}
	eng, client := newTestEngine(t, withRevoker(rev), withPolicy(livePolicy(nil, nil)))
	seedReviews(t, eng)

	review := reviewFor(t, client, readOnlyPolicy)
	require.NoError(t, eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: DecisionRevoked}))

	summary, err := eng.RemediationScan(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Zero(t, summary.Executed)

	got, err := client.Review.Get(t.Context(), review.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RemediatedAt)

	rev.err = nil
	summary, err = eng.RemediationScan(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Executed)
	assert.Len(t, rev.calls, 2)
}
