package engine

import (
	"context"
	"testing"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	"github.com/Prachet0806/iam-access-certification-engine/internal/database"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/Prachet0806/iam-access-certification-engine/internal/explain"
	"github.com/Prachet0806/iam-access-certification-engine/internal/identity"
	"github.com/Prachet0806/iam-access-certification-engine/internal/metrics"
	"github.com/Prachet0806/iam-access-certification-engine/internal/policy"
	"github.com/Prachet0806/iam-access-certification-engine/internal/revoke"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminPolicy    = "arn:aws:iam::aws:policy/AdministratorAccess"
	powerPolicy    = "arn:aws:iam::aws:policy/PowerUserAccess"
	readOnlyPolicy = "arn:aws:iam::aws:policy/ReadOnlyAccess"
)

type fakeRevoker struct {
	calls []string
	err   error
}

func (f *fakeRevoker) Revoke(_ context.Context, principalRef, entitlementRef string) error {
	f.calls = append(f.calls, principalRef+"|"+entitlementRef)
	return f.err
}

type fakeExplainer struct {
	text string
	err  error
}

func (f *fakeExplainer) Explain(context.Context, explain.PrincipalContext, explain.EntitlementContext) (string, error) {
	return f.text, f.err
}

type testOption func(*Dependencies)

func withPolicy(p policy.Remediation) testOption {
	return func(d *Dependencies) { d.Policy = p }
}

func withRevoker(r revoke.Revoker) testOption {
	return func(d *Dependencies) { d.Revoker = r }
}

func withExplainer(x explain.Explainer) testOption {
	return func(d *Dependencies) { d.Explainer = x }
}

func newTestEngine(t *testing.T, opts ...testOption) (*Engine, *ent.Client) {
	t.Helper()

	client := database.OpenTest(t)
	logger := zap.NewNop()

	deps := Dependencies{
		Client:  client,
		Auditor: audit.New(client, logger),
		Logger:  logger,
		Metrics: metrics.New(prometheus.NewRegistry()),
		Source:  identity.NewStaticSource(),
		Revoker: revoke.Noop{},
		Policy:  policy.NewRemediation(true, false, nil, nil),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	return New(deps), client
}

// seedReviews runs discovery and campaign generation so tests start from a
// store with pending reviews for the demo fixture.
func seedReviews(t *testing.T, eng *Engine) {
	t.Helper()

	report, err := eng.DiscoverySync(t.Context())
	require.NoError(t, err)
	require.Zero(t, report.Failed)

	summary, err := eng.GenerateCampaign(t.Context())
	require.NoError(t, err)
	require.Zero(t, summary.Failed)
}

func reviewFor(t *testing.T, client *ent.Client, entitlementID string) *ent.Review {
	t.Helper()

	r, err := client.Review.Query().
		Where(entreview.EntitlementID(entitlementID)).
		Only(t.Context())
	require.NoError(t, err)
	return r
}
