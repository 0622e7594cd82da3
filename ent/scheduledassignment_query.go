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
	"github.com/knockbase/knockbase/ent/predicate"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
)

// ScheduledAssignmentQuery is the builder for querying ScheduledAssignment entities.
type ScheduledAssignmentQuery struct {
	config
	ctx            *QueryContext
	order          []scheduledassignment.OrderOption
	inters         []Interceptor
	predicates     []predicate.ScheduledAssignment
	withZone       *ZoneQuery
	withAgent      *UserQuery
	withTeam       *TeamQuery
	withAssignedBy *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScheduledAssignmentQuery builder.
func (_q *ScheduledAssignmentQuery) Where(ps ...predicate.ScheduledAssignment) *ScheduledAssignmentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ScheduledAssignmentQuery) Limit(limit int) *ScheduledAssignmentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ScheduledAssignmentQuery) Offset(offset int) *ScheduledAssignmentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ScheduledAssignmentQuery) Unique(unique bool) *ScheduledAssignmentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ScheduledAssignmentQuery) Order(o ...scheduledassignment.OrderOption) *ScheduledAssignmentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryZone chains the current query on the "zone" edge.
func (_q *ScheduledAssignmentQuery) QueryZone() *ZoneQuery {
	query := (&ZoneClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledassignment.Table, scheduledassignment.FieldID, selector),
			sqlgraph.To(zone.Table, zone.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scheduledassignment.ZoneTable, scheduledassignment.ZoneColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgent chains the current query on the "agent" edge.
func (_q *ScheduledAssignmentQuery) QueryAgent() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledassignment.Table, scheduledassignment.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scheduledassignment.AgentTable, scheduledassignment.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTeam chains the current query on the "team" edge.
func (_q *ScheduledAssignmentQuery) QueryTeam() *TeamQuery {
	query := (&TeamClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledassignment.Table, scheduledassignment.FieldID, selector),
			sqlgraph.To(team.Table, team.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scheduledassignment.TeamTable, scheduledassignment.TeamColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignedBy chains the current query on the "assigned_by" edge.
func (_q *ScheduledAssignmentQuery) QueryAssignedBy() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledassignment.Table, scheduledassignment.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scheduledassignment.AssignedByTable, scheduledassignment.AssignedByColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ScheduledAssignment entity from the query.
// Returns a *NotFoundError when no ScheduledAssignment was found.
func (_q *ScheduledAssignmentQuery) First(ctx context.Context) (*ScheduledAssignment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{scheduledassignment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ScheduledAssignmentQuery) FirstX(ctx context.Context) *ScheduledAssignment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ScheduledAssignment ID from the query.
// Returns a *NotFoundError when no ScheduledAssignment ID was found.
func (_q *ScheduledAssignmentQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{scheduledassignment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ScheduledAssignmentQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ScheduledAssignment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ScheduledAssignment entity is found.
// Returns a *NotFoundError when no ScheduledAssignment entities are found.
func (_q *ScheduledAssignmentQuery) Only(ctx context.Context) (*ScheduledAssignment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{scheduledassignment.Label}
	default:
		return nil, &NotSingularError{scheduledassignment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ScheduledAssignmentQuery) OnlyX(ctx context.Context) *ScheduledAssignment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ScheduledAssignment ID in the query.
// Returns a *NotSingularError when more than one ScheduledAssignment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ScheduledAssignmentQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{scheduledassignment.Label}
	default:
		err = &NotSingularError{scheduledassignment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ScheduledAssignmentQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ScheduledAssignments.
func (_q *ScheduledAssignmentQuery) All(ctx context.Context) ([]*ScheduledAssignment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ScheduledAssignment, *ScheduledAssignmentQuery]()
	return withInterceptors[[]*ScheduledAssignment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ScheduledAssignmentQuery) AllX(ctx context.Context) []*ScheduledAssignment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ScheduledAssignment IDs.
func (_q *ScheduledAssignmentQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(scheduledassignment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ScheduledAssignmentQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ScheduledAssignmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ScheduledAssignmentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ScheduledAssignmentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ScheduledAssignmentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ScheduledAssignmentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScheduledAssignmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ScheduledAssignmentQuery) Clone() *ScheduledAssignmentQuery {
	if _q == nil {
		return nil
	}
	return &ScheduledAssignmentQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]scheduledassignment.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.ScheduledAssignment{}, _q.predicates...),
		withZone:       _q.withZone.Clone(),
		withAgent:      _q.withAgent.Clone(),
		withTeam:       _q.withTeam.Clone(),
		withAssignedBy: _q.withAssignedBy.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithZone tells the query-builder to eager-load the nodes that are connected to
// the "zone" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScheduledAssignmentQuery) WithZone(opts ...func(*ZoneQuery)) *ScheduledAssignmentQuery {
	query := (&ZoneClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withZone = query
	return _q
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScheduledAssignmentQuery) WithAgent(opts ...func(*UserQuery)) *ScheduledAssignmentQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgent = query
	return _q
}

// WithTeam tells the query-builder to eager-load the nodes that are connected to
// the "team" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScheduledAssignmentQuery) WithTeam(opts ...func(*TeamQuery)) *ScheduledAssignmentQuery {
	query := (&TeamClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTeam = query
	return _q
}

// WithAssignedBy tells the query-builder to eager-load the nodes that are connected to
// the "assigned_by" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScheduledAssignmentQuery) WithAssignedBy(opts ...func(*UserQuery)) *ScheduledAssignmentQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignedBy = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ZoneID int `json:"zone_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ScheduledAssignment.Query().
//		GroupBy(scheduledassignment.FieldZoneID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ScheduledAssignmentQuery) GroupBy(field string, fields ...string) *ScheduledAssignmentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScheduledAssignmentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = scheduledassignment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ZoneID int `json:"zone_id,omitempty"`
//	}
//
//	client.ScheduledAssignment.Query().
//		Select(scheduledassignment.FieldZoneID).
//		Scan(ctx, &v)
func (_q *ScheduledAssignmentQuery) Select(fields ...string) *ScheduledAssignmentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ScheduledAssignmentSelect{ScheduledAssignmentQuery: _q}
	sbuild.label = scheduledassignment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScheduledAssignmentSelect configured with the given aggregations.
func (_q *ScheduledAssignmentQuery) Aggregate(fns ...AggregateFunc) *ScheduledAssignmentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ScheduledAssignmentQuery) prepareQuery(ctx context.Context) error {
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
		if !scheduledassignment.ValidColumn(f) {
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

func (_q *ScheduledAssignmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ScheduledAssignment, error) {
	var (
		nodes       = []*ScheduledAssignment{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withZone != nil,
			_q.withAgent != nil,
			_q.withTeam != nil,
			_q.withAssignedBy != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ScheduledAssignment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ScheduledAssignment{config: _q.config}
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
	if query := _q.withZone; query != nil {
		if err := _q.loadZone(ctx, query, nodes, nil,
			func(n *ScheduledAssignment, e *Zone) { n.Edges.Zone = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAgent; query != nil {
		if err := _q.loadAgent(ctx, query, nodes, nil,
			func(n *ScheduledAssignment, e *User) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTeam; query != nil {
		if err := _q.loadTeam(ctx, query, nodes, nil,
			func(n *ScheduledAssignment, e *Team) { n.Edges.Team = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignedBy; query != nil {
		if err := _q.loadAssignedBy(ctx, query, nodes, nil,
			func(n *ScheduledAssignment, e *User) { n.Edges.AssignedBy = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ScheduledAssignmentQuery) loadZone(ctx context.Context, query *ZoneQuery, nodes []*ScheduledAssignment, init func(*ScheduledAssignment), assign func(*ScheduledAssignment, *Zone)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ScheduledAssignment)
	for i := range nodes {
		fk := nodes[i].ZoneID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(zone.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "zone_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ScheduledAssignmentQuery) loadAgent(ctx context.Context, query *UserQuery, nodes []*ScheduledAssignment, init func(*ScheduledAssignment), assign func(*ScheduledAssignment, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ScheduledAssignment)
	for i := range nodes {
		if nodes[i].AgentID == nil {
			continue
		}
		fk := *nodes[i].AgentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ScheduledAssignmentQuery) loadTeam(ctx context.Context, query *TeamQuery, nodes []*ScheduledAssignment, init func(*ScheduledAssignment), assign func(*ScheduledAssignment, *Team)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ScheduledAssignment)
	for i := range nodes {
		if nodes[i].TeamID == nil {
			continue
		}
		fk := *nodes[i].TeamID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(team.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "team_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ScheduledAssignmentQuery) loadAssignedBy(ctx context.Context, query *UserQuery, nodes []*ScheduledAssignment, init func(*ScheduledAssignment), assign func(*ScheduledAssignment, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ScheduledAssignment)
	for i := range nodes {
		if nodes[i].AssignedByUserID == nil {
			continue
		}
		fk := *nodes[i].AssignedByUserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "assigned_by_user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ScheduledAssignmentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ScheduledAssignmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(scheduledassignment.Table, scheduledassignment.Columns, sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledassignment.FieldID)
		for i := range fields {
			if fields[i] != scheduledassignment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withZone != nil {
			_spec.Node.AddColumnOnce(scheduledassignment.FieldZoneID)
		}
		if _q.withAgent != nil {
			_spec.Node.AddColumnOnce(scheduledassignment.FieldAgentID)
		}
		if _q.withTeam != nil {
			_spec.Node.AddColumnOnce(scheduledassignment.FieldTeamID)
		}
		if _q.withAssignedBy != nil {
			_spec.Node.AddColumnOnce(scheduledassignment.FieldAssignedByUserID)
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

func (_q *ScheduledAssignmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(scheduledassignment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = scheduledassignment.Columns
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

// ScheduledAssignmentGroupBy is the group-by builder for ScheduledAssignment entities.
type ScheduledAssignmentGroupBy struct {
	selector
	build *ScheduledAssignmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ScheduledAssignmentGroupBy) Aggregate(fns ...AggregateFunc) *ScheduledAssignmentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ScheduledAssignmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScheduledAssignmentQuery, *ScheduledAssignmentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ScheduledAssignmentGroupBy) sqlScan(ctx context.Context, root *ScheduledAssignmentQuery, v any) error {
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

// ScheduledAssignmentSelect is the builder for selecting fields of ScheduledAssignment entities.
type ScheduledAssignmentSelect struct {
	*ScheduledAssignmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ScheduledAssignmentSelect) Aggregate(fns ...AggregateFunc) *ScheduledAssignmentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ScheduledAssignmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScheduledAssignmentQuery, *ScheduledAssignmentSelect](ctx, _s.ScheduledAssignmentQuery, _s, _s.inters, v)
}

func (_s *ScheduledAssignmentSelect) sqlScan(ctx context.Context, root *ScheduledAssignmentQuery, v any) error {
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
