// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/knockbase/knockbase/ent/activity"
	"github.com/knockbase/knockbase/ent/lead"
	"github.com/knockbase/knockbase/ent/predicate"
	"github.com/knockbase/knockbase/ent/resident"
	"github.com/knockbase/knockbase/ent/route"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/ent/zoneassignment"
)

// ZoneQuery is the builder for querying Zone entities.
type ZoneQuery struct {
	config
	ctx                      *QueryContext
	order                    []zone.OrderOption
	inters                   []Interceptor
	predicates               []predicate.Zone
	withCreatedBy            *UserQuery
	withAssignedAgent        *UserQuery
	withTeam                 *TeamQuery
	withAssignments          *ZoneAssignmentQuery
	withScheduledAssignments *ScheduledAssignmentQuery
	withResidents            *ResidentQuery
	withLeads                *LeadQuery
	withActivities           *ActivityQuery
	withRoutes               *RouteQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ZoneQuery builder.
func (_q *ZoneQuery) Where(ps ...predicate.Zone) *ZoneQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ZoneQuery) Limit(limit int) *ZoneQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ZoneQuery) Offset(offset int) *ZoneQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ZoneQuery) Unique(unique bool) *ZoneQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ZoneQuery) Order(o ...zone.OrderOption) *ZoneQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCreatedBy chains the current query on the "created_by" edge.
func (_q *ZoneQuery) QueryCreatedBy() *UserQuery {
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
			sqlgraph.From(zone.Table, zone.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, zone.CreatedByTable, zone.CreatedByColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignedAgent chains the current query on the "assigned_agent" edge.
func (_q *ZoneQuery) QueryAssignedAgent() *UserQuery {
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
			sqlgraph.From(zone.Table, zone.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, zone.AssignedAgentTable, zone.AssignedAgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTeam chains the current query on the "team" edge.
func (_q *ZoneQuery) QueryTeam() *TeamQuery {
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
			sqlgraph.From(zone.Table, zone.FieldID, selector),
			sqlgraph.To(team.Table, team.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, zone.TeamTable, zone.TeamColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignments chains the current query on the "assignments" edge.
func (_q *ZoneQuery) QueryAssignments() *ZoneAssignmentQuery {
	query := (&ZoneAssignmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(zone.Table, zone.FieldID, selector),
			sqlgraph.To(zoneassignment.Table, zoneassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, zone.AssignmentsTable, zone.AssignmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryScheduledAssignments chains the current query on the "scheduled_assignments" edge.
func (_q *ZoneQuery) QueryScheduledAssignments() *ScheduledAssignmentQuery {
	query := (&ScheduledAssignmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(zone.Table, zone.FieldID, selector),
			sqlgraph.To(scheduledassignment.Table, scheduledassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, zone.ScheduledAssignmentsTable, zone.ScheduledAssignmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResidents chains the current query on the "residents" edge.
func (_q *ZoneQuery) QueryResidents() *ResidentQuery {
	query := (&ResidentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(zone.Table, zone.FieldID, selector),
			sqlgraph.To(resident.Table, resident.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, zone.ResidentsTable, zone.ResidentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLeads chains the current query on the "leads" edge.
func (_q *ZoneQuery) QueryLeads() *LeadQuery {
	query := (&LeadClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(zone.Table, zone.FieldID, selector),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, zone.LeadsTable, zone.LeadsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryActivities chains the current query on the "activities" edge.
func (_q *ZoneQuery) QueryActivities() *ActivityQuery {
	query := (&ActivityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(zone.Table, zone.FieldID, selector),
			sqlgraph.To(activity.Table, activity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, zone.ActivitiesTable, zone.ActivitiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRoutes chains the current query on the "routes" edge.
func (_q *ZoneQuery) QueryRoutes() *RouteQuery {
	query := (&RouteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(zone.Table, zone.FieldID, selector),
			sqlgraph.To(route.Table, route.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, zone.RoutesTable, zone.RoutesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Zone entity from the query.
// Returns a *NotFoundError when no Zone was found.
func (_q *ZoneQuery) First(ctx context.Context) (*Zone, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{zone.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ZoneQuery) FirstX(ctx context.Context) *Zone {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Zone ID from the query.
// Returns a *NotFoundError when no Zone ID was found.
func (_q *ZoneQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{zone.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ZoneQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Zone entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Zone entity is found.
// Returns a *NotFoundError when no Zone entities are found.
func (_q *ZoneQuery) Only(ctx context.Context) (*Zone, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{zone.Label}
	default:
		return nil, &NotSingularError{zone.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ZoneQuery) OnlyX(ctx context.Context) *Zone {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Zone ID in the query.
// Returns a *NotSingularError when more than one Zone ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ZoneQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{zone.Label}
	default:
		err = &NotSingularError{zone.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ZoneQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Zones.
func (_q *ZoneQuery) All(ctx context.Context) ([]*Zone, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Zone, *ZoneQuery]()
	return withInterceptors[[]*Zone](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ZoneQuery) AllX(ctx context.Context) []*Zone {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Zone IDs.
func (_q *ZoneQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(zone.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ZoneQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ZoneQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ZoneQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ZoneQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ZoneQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ZoneQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ZoneQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ZoneQuery) Clone() *ZoneQuery {
	if _q == nil {
		return nil
	}
	return &ZoneQuery{
		config:                   _q.config,
		ctx:                      _q.ctx.Clone(),
		order:                    append([]zone.OrderOption{}, _q.order...),
		inters:                   append([]Interceptor{}, _q.inters...),
		predicates:               append([]predicate.Zone{}, _q.predicates...),
		withCreatedBy:            _q.withCreatedBy.Clone(),
		withAssignedAgent:        _q.withAssignedAgent.Clone(),
		withTeam:                 _q.withTeam.Clone(),
		withAssignments:          _q.withAssignments.Clone(),
		withScheduledAssignments: _q.withScheduledAssignments.Clone(),
		withResidents:            _q.withResidents.Clone(),
		withLeads:                _q.withLeads.Clone(),
		withActivities:           _q.withActivities.Clone(),
		withRoutes:               _q.withRoutes.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCreatedBy tells the query-builder to eager-load the nodes that are connected to
// the "created_by" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ZoneQuery) WithCreatedBy(opts ...func(*UserQuery)) *ZoneQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCreatedBy = query
	return _q
}

// WithAssignedAgent tells the query-builder to eager-load the nodes that are connected to
// the "assigned_agent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ZoneQuery) WithAssignedAgent(opts ...func(*UserQuery)) *ZoneQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignedAgent = query
	return _q
}

// WithTeam tells the query-builder to eager-load the nodes that are connected to
// the "team" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ZoneQuery) WithTeam(opts ...func(*TeamQuery)) *ZoneQuery {
	query := (&TeamClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTeam = query
	return _q
}

// WithAssignments tells the query-builder to eager-load the nodes that are connected to
// the "assignments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ZoneQuery) WithAssignments(opts ...func(*ZoneAssignmentQuery)) *ZoneQuery {
	query := (&ZoneAssignmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignments = query
	return _q
}

// WithScheduledAssignments tells the query-builder to eager-load the nodes that are connected to
// the "scheduled_assignments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ZoneQuery) WithScheduledAssignments(opts ...func(*ScheduledAssignmentQuery)) *ZoneQuery {
	query := (&ScheduledAssignmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withScheduledAssignments = query
	return _q
}

// WithResidents tells the query-builder to eager-load the nodes that are connected to
// the "residents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ZoneQuery) WithResidents(opts ...func(*ResidentQuery)) *ZoneQuery {
	query := (&ResidentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResidents = query
	return _q
}

// WithLeads tells the query-builder to eager-load the nodes that are connected to
// the "leads" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ZoneQuery) WithLeads(opts ...func(*LeadQuery)) *ZoneQuery {
	query := (&LeadClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLeads = query
	return _q
}

// WithActivities tells the query-builder to eager-load the nodes that are connected to
// the "activities" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ZoneQuery) WithActivities(opts ...func(*ActivityQuery)) *ZoneQuery {
	query := (&ActivityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withActivities = query
	return _q
}

// WithRoutes tells the query-builder to eager-load the nodes that are connected to
// the "routes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ZoneQuery) WithRoutes(opts ...func(*RouteQuery)) *ZoneQuery {
	query := (&RouteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRoutes = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Zone.Query().
//		GroupBy(zone.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ZoneQuery) GroupBy(field string, fields ...string) *ZoneGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ZoneGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = zone.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Zone.Query().
//		Select(zone.FieldName).
//		Scan(ctx, &v)
func (_q *ZoneQuery) Select(fields ...string) *ZoneSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ZoneSelect{ZoneQuery: _q}
	sbuild.label = zone.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ZoneSelect configured with the given aggregations.
func (_q *ZoneQuery) Aggregate(fns ...AggregateFunc) *ZoneSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ZoneQuery) prepareQuery(ctx context.Context) error {
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
		if !zone.ValidColumn(f) {
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

func (_q *ZoneQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Zone, error) {
	var (
		nodes       = []*Zone{}
		_spec       = _q.querySpec()
		loadedTypes = [9]bool{
			_q.withCreatedBy != nil,
			_q.withAssignedAgent != nil,
			_q.withTeam != nil,
			_q.withAssignments != nil,
			_q.withScheduledAssignments != nil,
			_q.withResidents != nil,
			_q.withLeads != nil,
			_q.withActivities != nil,
			_q.withRoutes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Zone).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Zone{config: _q.config}
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
	if query := _q.withCreatedBy; query != nil {
		if err := _q.loadCreatedBy(ctx, query, nodes, nil,
			func(n *Zone, e *User) { n.Edges.CreatedBy = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignedAgent; query != nil {
		if err := _q.loadAssignedAgent(ctx, query, nodes, nil,
			func(n *Zone, e *User) { n.Edges.AssignedAgent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTeam; query != nil {
		if err := _q.loadTeam(ctx, query, nodes, nil,
			func(n *Zone, e *Team) { n.Edges.Team = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignments; query != nil {
		if err := _q.loadAssignments(ctx, query, nodes,
			func(n *Zone) { n.Edges.Assignments = []*ZoneAssignment{} },
			func(n *Zone, e *ZoneAssignment) { n.Edges.Assignments = append(n.Edges.Assignments, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withScheduledAssignments; query != nil {
		if err := _q.loadScheduledAssignments(ctx, query, nodes,
			func(n *Zone) { n.Edges.ScheduledAssignments = []*ScheduledAssignment{} },
			func(n *Zone, e *ScheduledAssignment) {
				n.Edges.ScheduledAssignments = append(n.Edges.ScheduledAssignments, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withResidents; query != nil {
		if err := _q.loadResidents(ctx, query, nodes,
			func(n *Zone) { n.Edges.Residents = []*Resident{} },
			func(n *Zone, e *Resident) { n.Edges.Residents = append(n.Edges.Residents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLeads; query != nil {
		if err := _q.loadLeads(ctx, query, nodes,
			func(n *Zone) { n.Edges.Leads = []*Lead{} },
			func(n *Zone, e *Lead) { n.Edges.Leads = append(n.Edges.Leads, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withActivities; query != nil {
		if err := _q.loadActivities(ctx, query, nodes,
			func(n *Zone) { n.Edges.Activities = []*Activity{} },
			func(n *Zone, e *Activity) { n.Edges.Activities = append(n.Edges.Activities, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRoutes; query != nil {
		if err := _q.loadRoutes(ctx, query, nodes,
			func(n *Zone) { n.Edges.Routes = []*Route{} },
			func(n *Zone, e *Route) { n.Edges.Routes = append(n.Edges.Routes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ZoneQuery) loadCreatedBy(ctx context.Context, query *UserQuery, nodes []*Zone, init func(*Zone), assign func(*Zone, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Zone)
	for i := range nodes {
		fk := nodes[i].CreatedByUserID
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
			return fmt.Errorf(`unexpected foreign-key "created_by_user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ZoneQuery) loadAssignedAgent(ctx context.Context, query *UserQuery, nodes []*Zone, init func(*Zone), assign func(*Zone, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Zone)
	for i := range nodes {
		if nodes[i].AssignedAgentID == nil {
			continue
		}
		fk := *nodes[i].AssignedAgentID
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
			return fmt.Errorf(`unexpected foreign-key "assigned_agent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ZoneQuery) loadTeam(ctx context.Context, query *TeamQuery, nodes []*Zone, init func(*Zone), assign func(*Zone, *Team)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Zone)
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
func (_q *ZoneQuery) loadAssignments(ctx context.Context, query *ZoneAssignmentQuery, nodes []*Zone, init func(*Zone), assign func(*Zone, *ZoneAssignment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Zone)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(zoneassignment.FieldZoneID)
	}
	query.Where(predicate.ZoneAssignment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(zone.AssignmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ZoneID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "zone_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ZoneQuery) loadScheduledAssignments(ctx context.Context, query *ScheduledAssignmentQuery, nodes []*Zone, init func(*Zone), assign func(*Zone, *ScheduledAssignment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Zone)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(scheduledassignment.FieldZoneID)
	}
	query.Where(predicate.ScheduledAssignment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(zone.ScheduledAssignmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ZoneID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "zone_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ZoneQuery) loadResidents(ctx context.Context, query *ResidentQuery, nodes []*Zone, init func(*Zone), assign func(*Zone, *Resident)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Zone)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(resident.FieldZoneID)
	}
	query.Where(predicate.Resident(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(zone.ResidentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ZoneID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "zone_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ZoneQuery) loadLeads(ctx context.Context, query *LeadQuery, nodes []*Zone, init func(*Zone), assign func(*Zone, *Lead)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Zone)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(lead.FieldZoneID)
	}
	query.Where(predicate.Lead(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(zone.LeadsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ZoneID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "zone_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ZoneQuery) loadActivities(ctx context.Context, query *ActivityQuery, nodes []*Zone, init func(*Zone), assign func(*Zone, *Activity)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Zone)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(activity.FieldZoneID)
	}
	query.Where(predicate.Activity(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(zone.ActivitiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ZoneID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "zone_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ZoneQuery) loadRoutes(ctx context.Context, query *RouteQuery, nodes []*Zone, init func(*Zone), assign func(*Zone, *Route)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Zone)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(route.FieldZoneID)
	}
	query.Where(predicate.Route(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(zone.RoutesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ZoneID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "zone_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ZoneQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ZoneQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(zone.Table, zone.Columns, sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, zone.FieldID)
		for i := range fields {
			if fields[i] != zone.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCreatedBy != nil {
			_spec.Node.AddColumnOnce(zone.FieldCreatedByUserID)
		}
		if _q.withAssignedAgent != nil {
			_spec.Node.AddColumnOnce(zone.FieldAssignedAgentID)
		}
		if _q.withTeam != nil {
			_spec.Node.AddColumnOnce(zone.FieldTeamID)
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

func (_q *ZoneQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(zone.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = zone.Columns
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

// ZoneGroupBy is the group-by builder for Zone entities.
type ZoneGroupBy struct {
	selector
	build *ZoneQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ZoneGroupBy) Aggregate(fns ...AggregateFunc) *ZoneGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ZoneGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ZoneQuery, *ZoneGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ZoneGroupBy) sqlScan(ctx context.Context, root *ZoneQuery, v any) error {
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

// ZoneSelect is the builder for selecting fields of Zone entities.
type ZoneSelect struct {
	*ZoneQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ZoneSelect) Aggregate(fns ...AggregateFunc) *ZoneSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ZoneSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ZoneQuery, *ZoneSelect](ctx, _s.ZoneQuery, _s, _s.inters, v)
}

func (_s *ZoneSelect) sqlScan(ctx context.Context, root *ZoneQuery, v any) error {
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
