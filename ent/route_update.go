// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/knockbase/knockbase/ent/predicate"
	"github.com/knockbase/knockbase/ent/route"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
)

// RouteUpdate is the builder for updating Route entities.
type RouteUpdate struct {
	config
	hooks    []Hook
	mutation *RouteMutation
}

// Where appends a list predicates to the RouteUpdate builder.
func (_u *RouteUpdate) Where(ps ...predicate.Route) *RouteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetZoneID sets the "zone_id" field.
func (_u *RouteUpdate) SetZoneID(v int) *RouteUpdate {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *RouteUpdate) SetNillableZoneID(v *int) *RouteUpdate {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *RouteUpdate) SetAgentID(v int) *RouteUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *RouteUpdate) SetNillableAgentID(v *int) *RouteUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *RouteUpdate) ClearAgentID() *RouteUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetName sets the "name" field.
func (_u *RouteUpdate) SetName(v string) *RouteUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RouteUpdate) SetNillableName(v *string) *RouteUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWaypoints sets the "waypoints" field.
func (_u *RouteUpdate) SetWaypoints(v [][]float64) *RouteUpdate {
	_u.mutation.SetWaypoints(v)
	return _u
}

// AppendWaypoints appends value to the "waypoints" field.
func (_u *RouteUpdate) AppendWaypoints(v [][]float64) *RouteUpdate {
	_u.mutation.AppendWaypoints(v)
	return _u
}

// ClearWaypoints clears the value of the "waypoints" field.
func (_u *RouteUpdate) ClearWaypoints() *RouteUpdate {
	_u.mutation.ClearWaypoints()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RouteUpdate) SetUpdatedAt(v time.Time) *RouteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *RouteUpdate) SetZone(v *Zone) *RouteUpdate {
	return _u.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_u *RouteUpdate) SetAgent(v *User) *RouteUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the RouteMutation object of the builder.
func (_u *RouteUpdate) Mutation() *RouteMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *RouteUpdate) ClearZone() *RouteUpdate {
	_u.mutation.ClearZone()
	return _u
}

// ClearAgent clears the "agent" edge to the User entity.
func (_u *RouteUpdate) ClearAgent() *RouteUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RouteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RouteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RouteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RouteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RouteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := route.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RouteUpdate) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := route.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "Route.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := route.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Route.name": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Route.zone"`)
	}
	return nil
}

func (_u *RouteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(route.Table, route.Columns, sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(route.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Waypoints(); ok {
		_spec.SetField(route.FieldWaypoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWaypoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, route.FieldWaypoints, value)
		})
	}
	if _u.mutation.WaypointsCleared() {
		_spec.ClearField(route.FieldWaypoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(route.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ZoneCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   route.ZoneTable,
			Columns: []string{route.ZoneColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZoneIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   route.ZoneTable,
			Columns: []string{route.ZoneColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   route.AgentTable,
			Columns: []string{route.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   route.AgentTable,
			Columns: []string{route.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{route.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RouteUpdateOne is the builder for updating a single Route entity.
type RouteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RouteMutation
}

// SetZoneID sets the "zone_id" field.
func (_u *RouteUpdateOne) SetZoneID(v int) *RouteUpdateOne {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *RouteUpdateOne) SetNillableZoneID(v *int) *RouteUpdateOne {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *RouteUpdateOne) SetAgentID(v int) *RouteUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *RouteUpdateOne) SetNillableAgentID(v *int) *RouteUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *RouteUpdateOne) ClearAgentID() *RouteUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetName sets the "name" field.
func (_u *RouteUpdateOne) SetName(v string) *RouteUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RouteUpdateOne) SetNillableName(v *string) *RouteUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWaypoints sets the "waypoints" field.
func (_u *RouteUpdateOne) SetWaypoints(v [][]float64) *RouteUpdateOne {
	_u.mutation.SetWaypoints(v)
	return _u
}

// AppendWaypoints appends value to the "waypoints" field.
func (_u *RouteUpdateOne) AppendWaypoints(v [][]float64) *RouteUpdateOne {
	_u.mutation.AppendWaypoints(v)
	return _u
}

// ClearWaypoints clears the value of the "waypoints" field.
func (_u *RouteUpdateOne) ClearWaypoints() *RouteUpdateOne {
	_u.mutation.ClearWaypoints()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RouteUpdateOne) SetUpdatedAt(v time.Time) *RouteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *RouteUpdateOne) SetZone(v *Zone) *RouteUpdateOne {
	return _u.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_u *RouteUpdateOne) SetAgent(v *User) *RouteUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the RouteMutation object of the builder.
func (_u *RouteUpdateOne) Mutation() *RouteMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *RouteUpdateOne) ClearZone() *RouteUpdateOne {
	_u.mutation.ClearZone()
	return _u
}

// ClearAgent clears the "agent" edge to the User entity.
func (_u *RouteUpdateOne) ClearAgent() *RouteUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the RouteUpdate builder.
func (_u *RouteUpdateOne) Where(ps ...predicate.Route) *RouteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RouteUpdateOne) Select(field string, fields ...string) *RouteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Route entity.
func (_u *RouteUpdateOne) Save(ctx context.Context) (*Route, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RouteUpdateOne) SaveX(ctx context.Context) *Route {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RouteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RouteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RouteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := route.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RouteUpdateOne) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := route.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "Route.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := route.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Route.name": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Route.zone"`)
	}
	return nil
}

func (_u *RouteUpdateOne) sqlSave(ctx context.Context) (_node *Route, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(route.Table, route.Columns, sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Route.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, route.FieldID)
		for _, f := range fields {
			if !route.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != route.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(route.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Waypoints(); ok {
		_spec.SetField(route.FieldWaypoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWaypoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, route.FieldWaypoints, value)
		})
	}
	if _u.mutation.WaypointsCleared() {
		_spec.ClearField(route.FieldWaypoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(route.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ZoneCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   route.ZoneTable,
			Columns: []string{route.ZoneColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZoneIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   route.ZoneTable,
			Columns: []string{route.ZoneColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   route.AgentTable,
			Columns: []string{route.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   route.AgentTable,
			Columns: []string{route.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Route{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{route.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
