// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "level", Type: field.TypeString, Default: "INFO"},
		{Name: "action", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString, Nullable: true},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3]},
			},
		},
	}
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
	}
	// EntitlementsColumns holds the columns for the "entitlements" table.
	EntitlementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "risk_tier", Type: field.TypeEnum, Enums: []string{"LOW", "MEDIUM", "HIGH"}, Default: "LOW"},
	}
	// EntitlementsTable holds the schema information for the "entitlements" table.
	EntitlementsTable = &schema.Table{
		Name:       "entitlements",
		Columns:    EntitlementsColumns,
		PrimaryKey: []*schema.Column{EntitlementsColumns[0]},
	}
	// GrantsColumns holds the columns for the "grants" table.
	GrantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "discovered_at", Type: field.TypeTime},
		{Name: "entitlement_id", Type: field.TypeString},
		{Name: "principal_id", Type: field.TypeString},
	}
	// GrantsTable holds the schema information for the "grants" table.
	GrantsTable = &schema.Table{
		Name:       "grants",
		Columns:    GrantsColumns,
		PrimaryKey: []*schema.Column{GrantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "grants_entitlements_grants",
				Columns:    []*schema.Column{GrantsColumns[2]},
				RefColumns: []*schema.Column{EntitlementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "grants_principals_grants",
				Columns:    []*schema.Column{GrantsColumns[3]},
				RefColumns: []*schema.Column{PrincipalsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "grant_principal_id_entitlement_id",
				Unique:  true,
				Columns: []*schema.Column{GrantsColumns[3], GrantsColumns[2]},
			},
		},
	}
	// PrincipalsColumns holds the columns for the "principals" table.
	PrincipalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "reference", Type: field.TypeString},
		{Name: "discovered_at", Type: field.TypeTime},
	}
	// PrincipalsTable holds the schema information for the "principals" table.
	PrincipalsTable = &schema.Table{
		Name:       "principals",
		Columns:    PrincipalsColumns,
		PrimaryKey: []*schema.Column{PrincipalsColumns[0]},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "APPROVED", "REVOKED"}, Default: "PENDING"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "decision_comment", Type: field.TypeString, Nullable: true},
		{Name: "remediated_at", Type: field.TypeTime, Nullable: true},
		{Name: "risk_explanation", Type: field.TypeString, Nullable: true},
		{Name: "campaign_id", Type: field.TypeUUID},
		{Name: "entitlement_id", Type: field.TypeString},
		{Name: "principal_id", Type: field.TypeString},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_campaigns_reviews",
				Columns:    []*schema.Column{ReviewsColumns[7]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "reviews_entitlements_reviews",
				Columns:    []*schema.Column{ReviewsColumns[8]},
				RefColumns: []*schema.Column{EntitlementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "reviews_principals_reviews",
				Columns:    []*schema.Column{ReviewsColumns[9]},
				RefColumns: []*schema.Column{PrincipalsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_principal_id_entitlement_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewsColumns[9], ReviewsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'PENDING'",
				},
			},
			{
				Name:    "review_status",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[1]},
			},
			{
				Name:    "review_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[2]},
			},
		},
	}
	// SchemaRevisionsColumns holds the columns for the "schema_revisions" table.
	SchemaRevisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "version", Type: field.TypeString, Unique: true},
		{Name: "applied_at", Type: field.TypeTime},
	}
	// SchemaRevisionsTable holds the schema information for the "schema_revisions" table.
	SchemaRevisionsTable = &schema.Table{
		Name:       "schema_revisions",
		Columns:    SchemaRevisionsColumns,
		PrimaryKey: []*schema.Column{SchemaRevisionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CampaignsTable,
		EntitlementsTable,
		GrantsTable,
		PrincipalsTable,
		ReviewsTable,
		SchemaRevisionsTable,
	}
)

func init() {
	GrantsTable.ForeignKeys[0].RefTable = EntitlementsTable
	GrantsTable.ForeignKeys[1].RefTable = PrincipalsTable
	ReviewsTable.ForeignKeys[0].RefTable = CampaignsTable
	ReviewsTable.ForeignKeys[1].RefTable = EntitlementsTable
	ReviewsTable.ForeignKeys[2].RefTable = PrincipalsTable
}
