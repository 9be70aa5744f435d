package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	"github.com/Prachet0806/iam-access-certification-engine/internal/database"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/Prachet0806/iam-access-certification-engine/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captureUploader struct {
	names  []string
	hashes []string
}

func (c *captureUploader) Upload(_ context.Context, name string, _ []byte, sha string) error {
	c.names = append(c.names, name)
	c.hashes = append(c.hashes, sha)
	return nil
}

func newTestBuilder(t *testing.T, dir string, uploader Uploader) (*Builder, *ent.Client) {
	t.Helper()

	client := database.OpenTest(t)
	logger := zap.NewNop()
	m := metrics.New(prometheus.NewRegistry())
	return NewBuilder(client, audit.New(client, logger), logger, m, dir, uploader), client
}

func seedLedger(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := t.Context()

	require.NoError(t, client.Principal.Create().
		SetID("U1").
		SetDisplayName("alice@example.com").
		SetReference("arn:aws:iam::123456789012:user/alice").
		SetDiscoveredAt(time.Now().UTC()).
		Exec(ctx))
	require.NoError(t, client.Entitlement.Create().
		SetID("E1").
		SetDisplayName("AdministratorAccess").
		Exec(ctx))

	campaign, err := client.Campaign.Create().SetName("Q3 Campaign").Save(ctx)
	require.NoError(t, err)

	review, err := client.Review.Create().
		SetCampaignID(campaign.ID).
		SetPrincipalID("U1").
		SetEntitlementID("E1").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Review.UpdateOne(review).
		SetStatus(entreview.StatusAPPROVED).
		SetDecidedAt(time.Now().UTC()).
		SetDecisionComment("verified").
		Exec(ctx))
}

func TestBuildRefusesEmptyLedger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	builder, _ := newTestBuilder(t, dir, nil)

	_, err := builder.Build(t.Context())
	require.ErrorIs(t, err, ErrEmptyLedger)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "no files should be written on refusal")
}

func TestBuildWritesVerifiableArtifacts(t *testing.T) {
	dir := t.TempDir()
	builder, client := newTestBuilder(t, dir, nil)
	seedLedger(t, client)

	artifact, err := builder.Build(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, artifact.Records)
	assert.Equal(t, map[string]int{"APPROVED": 1}, artifact.StatusCounts)

	csvBytes, err := os.ReadFile(artifact.CSVPath)
	require.NoError(t, err)
	assert.Equal(t, SHA256Hex(csvBytes), artifact.CSVSHA256)
	assert.True(t, strings.HasPrefix(string(csvBytes), "review_id,campaign_id,"))
	assert.Contains(t, string(csvBytes), "alice@example.com")

	jsonBytes, err := os.ReadFile(artifact.JSONPath)
	require.NoError(t, err)
	assert.Equal(t, SHA256Hex(jsonBytes), artifact.JSONSHA256)
}

func TestBuildDigestsAreReproducible(t *testing.T) {
	builder, client := newTestBuilder(t, t.TempDir(), nil)
	seedLedger(t, client)

	first, err := builder.Build(t.Context())
	require.NoError(t, err)
	second, err := builder.Build(t.Context())
	require.NoError(t, err)

	assert.Equal(t, first.CSVSHA256, second.CSVSHA256)
	assert.Equal(t, first.JSONSHA256, second.JSONSHA256)
}

func TestBuildDeliversToUploader(t *testing.T) {
	uploader := &captureUploader{}
	builder, client := newTestBuilder(t, t.TempDir(), uploader)
	seedLedger(t, client)

	artifact, err := builder.Build(t.Context())
	require.NoError(t, err)

	require.Len(t, uploader.names, 2)
	assert.Equal(t, filepath.Base(artifact.CSVPath), uploader.names[0])
	assert.Equal(t, filepath.Base(artifact.JSONPath), uploader.names[1])
	assert.Equal(t, []string{artifact.CSVSHA256, artifact.JSONSHA256}, uploader.hashes)
}
