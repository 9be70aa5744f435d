package engine

import (
	"testing"

	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideApproves(t *testing.T) {
	eng, client := newTestEngine(t)
	seedReviews(t, eng)

	review := reviewFor(t, client, readOnlyPolicy)
	err := eng.Decide(t.Context(), DecideInput{
		ReviewID:  review.ID,
		Decision:  DecisionApproved,
		Comment:   "standing access, verified with manager",
		DecidedBy: "reviewer@example.com",
	})
	require.NoError(t, err)

	got, err := client.Review.Get(t.Context(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, entreview.StatusAPPROVED, got.Status)
	require.NotNil(t, got.DecidedAt)
	require.NotNil(t, got.DecisionComment)
	assert.Equal(t, "standing access, verified with manager", *got.DecisionComment)
	assert.Nil(t, got.RemediatedAt)
}

func TestDecideRevokes(t *testing.T) {
	eng, client := newTestEngine(t)
	seedReviews(t, eng)

	review := reviewFor(t, client, adminPolicy)
	err := eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: DecisionRevoked})
	require.NoError(t, err)

	got, err := client.Review.Get(t.Context(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, entreview.StatusREVOKED, got.Status)
}

func TestDecideRejectsDoubleDecision(t *testing.T) {
	eng, client := newTestEngine(t)
	seedReviews(t, eng)

	review := reviewFor(t, client, powerPolicy)
	err := eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: DecisionApproved})
	require.NoError(t, err)

	err = eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: DecisionRevoked})
	require.ErrorIs(t, err, ErrInvalidTransition)

	got, err := client.Review.Get(t.Context(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, entreview.StatusAPPROVED, got.Status)
}

func TestDecideUnknownReview(t *testing.T) {
	eng, _ := newTestEngine(t)
	seedReviews(t, eng)

	err := eng.Decide(t.Context(), DecideInput{ReviewID: uuid.New(), Decision: DecisionApproved})
	require.ErrorIs(t, err, ErrReviewNotFound)
}

func TestDecideRejectsUnknownVerdict(t *testing.T) {
	eng, client := newTestEngine(t)
	seedReviews(t, eng)

	review := reviewFor(t, client, powerPolicy)
	err := eng.Decide(t.Context(), DecideInput{ReviewID: review.ID, Decision: Decision("MAYBE")})
	require.ErrorIs(t, err, ErrInvalidDecision)
}
