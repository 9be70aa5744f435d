// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/auditlog"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/campaign"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/grant"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/schema"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/schemarevision"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescTimestamp is the schema descriptor for timestamp field.
	auditlogDescTimestamp := auditlogFields[1].Descriptor()
	// auditlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditlog.DefaultTimestamp = auditlogDescTimestamp.Default.(func() time.Time)
	// auditlogDescLevel is the schema descriptor for level field.
	auditlogDescLevel := auditlogFields[2].Descriptor()
	// auditlog.DefaultLevel holds the default value on creation for the level field.
	auditlog.DefaultLevel = auditlogDescLevel.Default.(string)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[3].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescStatus is the schema descriptor for status field.
	auditlogDescStatus := auditlogFields[4].Descriptor()
	// auditlog.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	auditlog.StatusValidator = auditlogDescStatus.Validators[0].(func(string) error)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescName is the schema descriptor for name field.
	campaignDescName := campaignFields[1].Descriptor()
	// campaign.NameValidator is a validator for the "name" field. It is called by the builders before save.
	campaign.NameValidator = campaignDescName.Validators[0].(func(string) error)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[2].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescID is the schema descriptor for id field.
	campaignDescID := campaignFields[0].Descriptor()
	// campaign.DefaultID holds the default value on creation for the id field.
	campaign.DefaultID = campaignDescID.Default.(func() uuid.UUID)
	entitlementFields := schema.Entitlement{}.Fields()
	_ = entitlementFields
	// entitlementDescDisplayName is the schema descriptor for display_name field.
	entitlementDescDisplayName := entitlementFields[1].Descriptor()
	// entitlement.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	entitlement.DisplayNameValidator = entitlementDescDisplayName.Validators[0].(func(string) error)
	// entitlementDescID is the schema descriptor for id field.
	entitlementDescID := entitlementFields[0].Descriptor()
	// entitlement.IDValidator is a validator for the "id" field. It is called by the builders before save.
	entitlement.IDValidator = entitlementDescID.Validators[0].(func(string) error)
	grantFields := schema.Grant{}.Fields()
	_ = grantFields
	// grantDescPrincipalID is the schema descriptor for principal_id field.
	grantDescPrincipalID := grantFields[1].Descriptor()
	// grant.PrincipalIDValidator is a validator for the "principal_id" field. It is called by the builders before save.
	grant.PrincipalIDValidator = grantDescPrincipalID.Validators[0].(func(string) error)
	// grantDescEntitlementID is the schema descriptor for entitlement_id field.
	grantDescEntitlementID := grantFields[2].Descriptor()
	// grant.EntitlementIDValidator is a validator for the "entitlement_id" field. It is called by the builders before save.
	grant.EntitlementIDValidator = grantDescEntitlementID.Validators[0].(func(string) error)
	// grantDescDiscoveredAt is the schema descriptor for discovered_at field.
	grantDescDiscoveredAt := grantFields[3].Descriptor()
	// grant.DefaultDiscoveredAt holds the default value on creation for the discovered_at field.
	grant.DefaultDiscoveredAt = grantDescDiscoveredAt.Default.(func() time.Time)
	// grantDescID is the schema descriptor for id field.
	grantDescID := grantFields[0].Descriptor()
	// grant.DefaultID holds the default value on creation for the id field.
	grant.DefaultID = grantDescID.Default.(func() uuid.UUID)
	principalFields := schema.Principal{}.Fields()
	_ = principalFields
	// principalDescDisplayName is the schema descriptor for display_name field.
	principalDescDisplayName := principalFields[1].Descriptor()
	// principal.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	principal.DisplayNameValidator = principalDescDisplayName.Validators[0].(func(string) error)
	// principalDescReference is the schema descriptor for reference field.
	principalDescReference := principalFields[2].Descriptor()
	// principal.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	principal.ReferenceValidator = principalDescReference.Validators[0].(func(string) error)
	// principalDescDiscoveredAt is the schema descriptor for discovered_at field.
	principalDescDiscoveredAt := principalFields[3].Descriptor()
	// principal.DefaultDiscoveredAt holds the default value on creation for the discovered_at field.
	principal.DefaultDiscoveredAt = principalDescDiscoveredAt.Default.(func() time.Time)
	// principalDescID is the schema descriptor for id field.
	principalDescID := principalFields[0].Descriptor()
	// principal.IDValidator is a validator for the "id" field. It is called by the builders before save.
	principal.IDValidator = principalDescID.Validators[0].(func(string) error)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescPrincipalID is the schema descriptor for principal_id field.
	reviewDescPrincipalID := reviewFields[2].Descriptor()
	// review.PrincipalIDValidator is a validator for the "principal_id" field. It is called by the builders before save.
	review.PrincipalIDValidator = reviewDescPrincipalID.Validators[0].(func(string) error)
	// reviewDescEntitlementID is the schema descriptor for entitlement_id field.
	reviewDescEntitlementID := reviewFields[3].Descriptor()
	// review.EntitlementIDValidator is a validator for the "entitlement_id" field. It is called by the builders before save.
	review.EntitlementIDValidator = reviewDescEntitlementID.Validators[0].(func(string) error)
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewFields[5].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	// reviewDescID is the schema descriptor for id field.
	reviewDescID := reviewFields[0].Descriptor()
	// review.DefaultID holds the default value on creation for the id field.
	review.DefaultID = reviewDescID.Default.(func() uuid.UUID)
	schemarevisionFields := schema.SchemaRevision{}.Fields()
	_ = schemarevisionFields
	// schemarevisionDescVersion is the schema descriptor for version field.
	schemarevisionDescVersion := schemarevisionFields[0].Descriptor()
	// schemarevision.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	schemarevision.VersionValidator = schemarevisionDescVersion.Validators[0].(func(string) error)
	// schemarevisionDescAppliedAt is the schema descriptor for applied_at field.
	schemarevisionDescAppliedAt := schemarevisionFields[1].Descriptor()
	// schemarevision.DefaultAppliedAt holds the default value on creation for the applied_at field.
	schemarevision.DefaultAppliedAt = schemarevisionDescAppliedAt.Default.(func() time.Time)
	// schemarevision.UpdateDefaultAppliedAt holds the default value on update for the applied_at field.
	schemarevision.UpdateDefaultAppliedAt = schemarevisionDescAppliedAt.UpdateDefault.(func() time.Time)
}
