package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	"github.com/Prachet0806/iam-access-certification-engine/internal/config"
	"github.com/Prachet0806/iam-access-certification-engine/internal/database"
	"github.com/Prachet0806/iam-access-certification-engine/internal/engine"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/Prachet0806/iam-access-certification-engine/internal/httpapi"
	"github.com/Prachet0806/iam-access-certification-engine/internal/httpapi/middleware"
	"github.com/Prachet0806/iam-access-certification-engine/internal/identity"
	"github.com/Prachet0806/iam-access-certification-engine/internal/metrics"
	"github.com/Prachet0806/iam-access-certification-engine/internal/policy"
	"github.com/Prachet0806/iam-access-certification-engine/internal/revoke"
	"github.com/Prachet0806/iam-access-certification-engine/internal/token"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	handler http.Handler
	client  *ent.Client
	engine  *engine.Engine
	tokens  *token.Service
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	client := database.OpenTest(t)
	logger := zap.NewNop()
	auditor := audit.New(client, logger)

	eng := engine.New(engine.Dependencies{
		Client:  client,
		Auditor: auditor,
		Logger:  logger,
		Metrics: metrics.New(prometheus.NewRegistry()),
		Source:  identity.NewStaticSource(),
		Revoker: revoke.Noop{},
		Policy:  policy.NewRemediation(true, false, nil, nil),
	})

	tokens, err := token.NewService(config.TokenConfig{
		Secret:   "handler-test-secret",
		Issuer:   "https://governor.test",
		Audience: "governor",
		TTL:      time.Hour,
	})
	require.NoError(t, err)

	h := NewGovernanceHandler(client, eng, auditor, logger)
	auth := middleware.NewAuth(tokens)
	router := httpapi.NewRouter(httpapi.RouterDeps{
		HealthHandler: Health,
		Governance: httpapi.GovernanceHandlers{
			ListReviews:   h.ListReviews,
			Decide:        h.Decide,
			ListCampaigns: h.ListCampaigns,
			ListAudit:     h.ListAudit,
		},
		RequireAuthHandler: auth.RequireAuth,
		RequireDecideScope: auth.RequireScope(token.ScopeDecide),
	})

	return &testAPI{handler: router, client: client, engine: eng, tokens: tokens}
}

func (a *testAPI) seed(t *testing.T) {
	t.Helper()
	_, err := a.engine.DiscoverySync(t.Context())
	require.NoError(t, err)
	_, err = a.engine.GenerateCampaign(t.Context())
	require.NoError(t, err)
}

func (a *testAPI) do(t *testing.T, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func TestListReviewsFiltersByStatus(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t)

	rec := api.do(t, http.MethodGet, "/api/v1/reviews?status=PENDING", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count   int `json:"count"`
		Reviews []struct {
			Status string `json:"status"`
		} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	for _, r := range body.Reviews {
		assert.Equal(t, "PENDING", r.Status)
	}

	rec = api.do(t, http.MethodGet, "/api/v1/reviews?status=BOGUS", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecideRequiresAuth(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t)

	review, err := api.client.Review.Query().First(t.Context())
	require.NoError(t, err)

	path := "/api/v1/reviews/" + review.ID.String() + "/decision"
	payload := `{"decision":"APPROVED"}`

	rec := api.do(t, http.MethodPost, path, payload, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	noScope, _, err := api.tokens.Mint("reviewer-1", "", nil)
	require.NoError(t, err)
	rec = api.do(t, http.MethodPost, path, payload, noScope)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDecideLifecycleOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t)

	review, err := api.client.Review.Query().First(t.Context())
	require.NoError(t, err)

	bearer, _, err := api.tokens.Mint("reviewer-1", "reviewer@example.com", []string{token.ScopeDecide})
	require.NoError(t, err)

	path := "/api/v1/reviews/" + review.ID.String() + "/decision"

	rec := api.do(t, http.MethodPost, path, `{"decision":"REVOKED","comment":"excess access"}`, bearer)
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := api.client.Review.Get(t.Context(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, entreview.StatusREVOKED, got.Status)

	// Second decision on the same review conflicts.
	rec = api.do(t, http.MethodPost, path, `{"decision":"APPROVED"}`, bearer)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown verdicts are rejected outright.
	other := "/api/v1/reviews/" + review.ID.String() + "/decision"
	rec = api.do(t, http.MethodPost, other, `{"decision":"MAYBE"}`, bearer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuditTrailExposed(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t)

	rec := api.do(t, http.MethodGet, "/api/v1/audit", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Greater(t, body.Count, 0)
}
