// Package export builds compliance artifacts from the review ledger: a CSV
// and a JSON rendition of every review on record, each with a SHA-256 digest
// recorded alongside so evidence handed to auditors can be verified later.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/Prachet0806/iam-access-certification-engine/internal/metrics"
	"go.uber.org/zap"
)

// ErrEmptyLedger blocks export when no reviews exist. An empty evidence file
// is worse than no file: it looks like a completed campaign with zero scope.
var ErrEmptyLedger = errors.New("no access reviews on record; refusing to build an empty export")

// Record is one review row in an export artifact. Timestamps are RFC3339
// strings so the serialized bytes, and therefore the digests, are stable
// across rebuilds of the same ledger.
type Record struct {
	ReviewID        string `json:"review_id"`
	CampaignID      string `json:"campaign_id"`
	PrincipalID     string `json:"principal_id"`
	PrincipalName   string `json:"principal_name"`
	EntitlementID   string `json:"entitlement_id"`
	EntitlementName string `json:"entitlement_name"`
	RiskTier        string `json:"risk_tier"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	DecidedAt       string `json:"decided_at,omitempty"`
	DecisionComment string `json:"decision_comment,omitempty"`
	RemediatedAt    string `json:"remediated_at,omitempty"`
	RiskExplanation string `json:"risk_explanation,omitempty"`
}

// Artifact describes one completed export.
type Artifact struct {
	Date         string
	CSVPath      string
	JSONPath     string
	CSVSHA256    string
	JSONSHA256   string
	Records      int
	StatusCounts map[string]int
}

// Builder assembles and delivers export artifacts.
type Builder struct {
	client   *ent.Client
	auditor  *audit.Recorder
	logger   *zap.Logger
	metrics  *metrics.Metrics
	dir      string
	uploader Uploader
}

// NewBuilder constructs a Builder. uploader may be nil for local-only mode.
func NewBuilder(client *ent.Client, auditor *audit.Recorder, logger *zap.Logger, m *metrics.Metrics, dir string, uploader Uploader) *Builder {
	return &Builder{
		client:   client,
		auditor:  auditor,
		logger:   logger,
		metrics:  m,
		dir:      dir,
		uploader: uploader,
	}
}

// Build snapshots the full review ledger into CSV and JSON files named by
// the current date, records both digests, and delivers the artifacts to the
// configured destination. An empty ledger aborts before any file is written.
func (b *Builder) Build(ctx context.Context) (*Artifact, error) {
	b.auditor.Record(ctx, audit.Entry{
		Action:  "export_certifications",
		Status:  "start",
		Message: "Starting certification export",
	})

	reviews, err := b.client.Review.Query().
		WithCampaign().
		WithPrincipal().
		WithEntitlement().
		Order(ent.Desc(entreview.FieldCreatedAt), ent.Asc(entreview.FieldID)).
		All(ctx)
	if err != nil {
		b.recordError(ctx, fmt.Sprintf("Listing reviews failed: %v", err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if len(reviews) == 0 {
		b.recordError(ctx, ErrEmptyLedger.Error())
		return nil, ErrEmptyLedger
	}

	records := make([]Record, 0, len(reviews))
	statusCounts := make(map[string]int)
	for _, review := range reviews {
		rec := Record{
			ReviewID:      review.ID.String(),
			CampaignID:    review.CampaignID.String(),
			PrincipalID:   review.PrincipalID,
			EntitlementID: review.EntitlementID,
			Status:        string(review.Status),
			CreatedAt:     review.CreatedAt.UTC().Format(time.RFC3339),
		}
		if p := review.Edges.Principal; p != nil {
			rec.PrincipalName = p.DisplayName
		}
		if e := review.Edges.Entitlement; e != nil {
			rec.EntitlementName = e.DisplayName
			rec.RiskTier = string(e.RiskTier)
		}
		if review.DecidedAt != nil {
			rec.DecidedAt = review.DecidedAt.UTC().Format(time.RFC3339)
		}
		if review.DecisionComment != nil {
			rec.DecisionComment = *review.DecisionComment
		}
		if review.RemediatedAt != nil {
			rec.RemediatedAt = review.RemediatedAt.UTC().Format(time.RFC3339)
		}
		if review.RiskExplanation != nil {
			rec.RiskExplanation = *review.RiskExplanation
		}
		statusCounts[rec.Status]++
		records = append(records, rec)
	}

	csvBytes, err := renderCSV(records)
	if err != nil {
		b.recordError(ctx, fmt.Sprintf("Rendering CSV failed: %v", err))
		return nil, fmt.Errorf("render csv: %w", err)
	}
	jsonBytes, err := renderJSON(records, statusCounts)
	if err != nil {
		b.recordError(ctx, fmt.Sprintf("Rendering JSON failed: %v", err))
		return nil, fmt.Errorf("render json: %w", err)
	}

	date := time.Now().UTC().Format("2006-01-02")
	artifact := &Artifact{
		Date:         date,
		CSVSHA256:    SHA256Hex(csvBytes),
		JSONSHA256:   SHA256Hex(jsonBytes),
		Records:      len(records),
		StatusCounts: statusCounts,
	}

	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		b.recordError(ctx, fmt.Sprintf("Creating export dir failed: %v", err))
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	artifact.CSVPath = filepath.Join(b.dir, fmt.Sprintf("access_certification_%s.csv", date))
	artifact.JSONPath = filepath.Join(b.dir, fmt.Sprintf("access_certification_%s.json", date))
	if err := os.WriteFile(artifact.CSVPath, csvBytes, 0o644); err != nil {
		b.recordError(ctx, fmt.Sprintf("Writing CSV failed: %v", err))
		return nil, fmt.Errorf("write csv: %w", err)
	}
	if err := os.WriteFile(artifact.JSONPath, jsonBytes, 0o644); err != nil {
		b.recordError(ctx, fmt.Sprintf("Writing JSON failed: %v", err))
		return nil, fmt.Errorf("write json: %w", err)
	}

	if b.uploader != nil {
		if err := b.uploader.Upload(ctx, filepath.Base(artifact.CSVPath), csvBytes, artifact.CSVSHA256); err != nil {
			b.recordError(ctx, fmt.Sprintf("Uploading CSV failed: %v", err))
			return nil, fmt.Errorf("upload csv: %w", err)
		}
		if err := b.uploader.Upload(ctx, filepath.Base(artifact.JSONPath), jsonBytes, artifact.JSONSHA256); err != nil {
			b.recordError(ctx, fmt.Sprintf("Uploading JSON failed: %v", err))
			return nil, fmt.Errorf("upload json: %w", err)
		}
	}

	b.metrics.ExportsBuilt.Inc()
	b.auditor.Record(ctx, audit.Entry{
		Action:  "export_certifications",
		Status:  "success",
		Message: fmt.Sprintf("Export built with %d records", artifact.Records),
		Details: map[string]any{
			"records":       artifact.Records,
			"status_counts": statusCounts,
			"csv_sha256":    artifact.CSVSHA256,
			"json_sha256":   artifact.JSONSHA256,
			"csv_path":      artifact.CSVPath,
			"json_path":     artifact.JSONPath,
		},
	})
	b.logger.Info("export complete",
		zap.Int("records", artifact.Records),
		zap.String("csv_sha256", artifact.CSVSHA256),
		zap.String("json_sha256", artifact.JSONSHA256),
	)
	return artifact, nil
}

func (b *Builder) recordError(ctx context.Context, message string) {
	b.auditor.Record(ctx, audit.Entry{
		Level:   audit.LevelError,
		Action:  "export_certifications",
		Status:  "error",
		Message: message,
	})
}

var csvHeader = []string{
	"review_id", "campaign_id", "principal_id", "principal_name",
	"entitlement_id", "entitlement_name", "risk_tier", "status",
	"created_at", "decided_at", "decision_comment", "remediated_at",
	"risk_explanation",
}

func renderCSV(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := []string{
			rec.ReviewID, rec.CampaignID, rec.PrincipalID, rec.PrincipalName,
			rec.EntitlementID, rec.EntitlementName, rec.RiskTier, rec.Status,
			rec.CreatedAt, rec.DecidedAt, rec.DecisionComment, rec.RemediatedAt,
			rec.RiskExplanation,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// renderJSON deliberately carries no build timestamp: the same ledger must
// serialize to the same bytes so digests are reproducible.
func renderJSON(records []Record, statusCounts map[string]int) ([]byte, error) {
	payload := struct {
		RecordCount  int            `json:"record_count"`
		StatusCounts map[string]int `json:"status_counts"`
		Records      []Record       `json:"records"`
	}{
		RecordCount:  len(records),
		StatusCounts: statusCounts,
		Records:      records,
	}
	return json.MarshalIndent(payload, "", "  ")
}
