// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/grant"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/predicate"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
	"github.com/google/uuid"
)

// GrantQuery is the builder for querying Grant entities.
type GrantQuery struct {
	config
	ctx             *QueryContext
	order           []grant.OrderOption
	inters          []Interceptor
	predicates      []predicate.Grant
	withPrincipal   *PrincipalQuery
	withEntitlement *EntitlementQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GrantQuery builder.
func (_q *GrantQuery) Where(ps ...predicate.Grant) *GrantQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *GrantQuery) Limit(limit int) *GrantQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *GrantQuery) Offset(offset int) *GrantQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *GrantQuery) Unique(unique bool) *GrantQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *GrantQuery) Order(o ...grant.OrderOption) *GrantQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPrincipal chains the current query on the "principal" edge.
func (_q *GrantQuery) QueryPrincipal() *PrincipalQuery {
	query := (&PrincipalClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(grant.Table, grant.FieldID, selector),
			sqlgraph.To(principal.Table, principal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grant.PrincipalTable, grant.PrincipalColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEntitlement chains the current query on the "entitlement" edge.
func (_q *GrantQuery) QueryEntitlement() *EntitlementQuery {
	query := (&EntitlementClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(grant.Table, grant.FieldID, selector),
			sqlgraph.To(entitlement.Table, entitlement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grant.EntitlementTable, grant.EntitlementColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Grant entity from the query.
// Returns a *NotFoundError when no Grant was found.
func (_q *GrantQuery) First(ctx context.Context) (*Grant, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{grant.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *GrantQuery) FirstX(ctx context.Context) *Grant {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Grant ID from the query.
// Returns a *NotFoundError when no Grant ID was found.
func (_q *GrantQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{grant.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *GrantQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Grant entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Grant entity is found.
// Returns a *NotFoundError when no Grant entities are found.
func (_q *GrantQuery) Only(ctx context.Context) (*Grant, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{grant.Label}
	default:
		return nil, &NotSingularError{grant.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *GrantQuery) OnlyX(ctx context.Context) *Grant {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Grant ID in the query.
// Returns a *NotSingularError when more than one Grant ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *GrantQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{grant.Label}
	default:
		err = &NotSingularError{grant.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *GrantQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Grants.
func (_q *GrantQuery) All(ctx context.Context) ([]*Grant, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Grant, *GrantQuery]()
	return withInterceptors[[]*Grant](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *GrantQuery) AllX(ctx context.Context) []*Grant {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Grant IDs.
func (_q *GrantQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(grant.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *GrantQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *GrantQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*GrantQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *GrantQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *GrantQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *GrantQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GrantQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *GrantQuery) Clone() *GrantQuery {
	if _q == nil {
		return nil
	}
	return &GrantQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]grant.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Grant{}, _q.predicates...),
		withPrincipal:   _q.withPrincipal.Clone(),
		withEntitlement: _q.withEntitlement.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPrincipal tells the query-builder to eager-load the nodes that are connected to
// the "principal" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GrantQuery) WithPrincipal(opts ...func(*PrincipalQuery)) *GrantQuery {
	query := (&PrincipalClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPrincipal = query
	return _q
}

// WithEntitlement tells the query-builder to eager-load the nodes that are connected to
// the "entitlement" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GrantQuery) WithEntitlement(opts ...func(*EntitlementQuery)) *GrantQuery {
	query := (&EntitlementClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEntitlement = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PrincipalID string `json:"principal_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Grant.Query().
//		GroupBy(grant.FieldPrincipalID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *GrantQuery) GroupBy(field string, fields ...string) *GrantGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GrantGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = grant.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PrincipalID string `json:"principal_id,omitempty"`
//	}
//
//	client.Grant.Query().
//		Select(grant.FieldPrincipalID).
//		Scan(ctx, &v)
func (_q *GrantQuery) Select(fields ...string) *GrantSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &GrantSelect{GrantQuery: _q}
	sbuild.label = grant.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GrantSelect configured with the given aggregations.
func (_q *GrantQuery) Aggregate(fns ...AggregateFunc) *GrantSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *GrantQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !grant.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *GrantQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Grant, error) {
	var (
		nodes       = []*Grant{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPrincipal != nil,
			_q.withEntitlement != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Grant).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Grant{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPrincipal; query != nil {
		if err := _q.loadPrincipal(ctx, query, nodes, nil,
			func(n *Grant, e *Principal) { n.Edges.Principal = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEntitlement; query != nil {
		if err := _q.loadEntitlement(ctx, query, nodes, nil,
			func(n *Grant, e *Entitlement) { n.Edges.Entitlement = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *GrantQuery) loadPrincipal(ctx context.Context, query *PrincipalQuery, nodes []*Grant, init func(*Grant), assign func(*Grant, *Principal)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Grant)
	for i := range nodes {
		fk := nodes[i].PrincipalID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(principal.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "principal_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *GrantQuery) loadEntitlement(ctx context.Context, query *EntitlementQuery, nodes []*Grant, init func(*Grant), assign func(*Grant, *Entitlement)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Grant)
	for i := range nodes {
		fk := nodes[i].EntitlementID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(entitlement.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "entitlement_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *GrantQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *GrantQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(grant.Table, grant.Columns, sqlgraph.NewFieldSpec(grant.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grant.FieldID)
		for i := range fields {
			if fields[i] != grant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPrincipal != nil {
			_spec.Node.AddColumnOnce(grant.FieldPrincipalID)
		}
		if _q.withEntitlement != nil {
			_spec.Node.AddColumnOnce(grant.FieldEntitlementID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *GrantQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(grant.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = grant.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// GrantGroupBy is the group-by builder for Grant entities.
type GrantGroupBy struct {
	selector
	build *GrantQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *GrantGroupBy) Aggregate(fns ...AggregateFunc) *GrantGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *GrantGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GrantQuery, *GrantGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *GrantGroupBy) sqlScan(ctx context.Context, root *GrantQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GrantSelect is the builder for selecting fields of Grant entities.
type GrantSelect struct {
	*GrantQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *GrantSelect) Aggregate(fns ...AggregateFunc) *GrantSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *GrantSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GrantQuery, *GrantSelect](ctx, _s.GrantQuery, _s, _s.inters, v)
}

func (_s *GrantSelect) sqlScan(ctx context.Context, root *GrantQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
