// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// Entitlement is the predicate function for entitlement builders.
type Entitlement func(*sql.Selector)

// Grant is the predicate function for grant builders.
type Grant func(*sql.Selector)

// Principal is the predicate function for principal builders.
type Principal func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// SchemaRevision is the predicate function for schemarevision builders.
type SchemaRevision func(*sql.Selector)
