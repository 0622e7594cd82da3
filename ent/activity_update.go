// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/knockbase/knockbase/ent/activity"
	"github.com/knockbase/knockbase/ent/predicate"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
)

// ActivityUpdate is the builder for updating Activity entities.
type ActivityUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityMutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdate) Where(ps ...predicate.Activity) *ActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetZoneID sets the "zone_id" field.
func (_u *ActivityUpdate) SetZoneID(v int) *ActivityUpdate {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableZoneID(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ActivityUpdate) SetAgentID(v int) *ActivityUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableAgentID(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityUpdate) SetActivityType(v activity.ActivityType) *ActivityUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableActivityType(v *activity.ActivityType) *ActivityUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *ActivityUpdate) SetDetails(v string) *ActivityUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDetails(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ActivityUpdate) ClearDetails() *ActivityUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ActivityUpdate) SetOccurredAt(v time.Time) *ActivityUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableOccurredAt(v *time.Time) *ActivityUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *ActivityUpdate) SetZone(v *Zone) *ActivityUpdate {
	return _u.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_u *ActivityUpdate) SetAgent(v *User) *ActivityUpdate {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdate) Mutation() *ActivityMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *ActivityUpdate) ClearZone() *ActivityUpdate {
	_u.mutation.ClearZone()
	return _u
}

// ClearAgent clears the "agent" edge to the User entity.
func (_u *ActivityUpdate) ClearAgent() *ActivityUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdate) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := activity.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "Activity.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgentID(); ok {
		if err := activity.AgentIDValidator(v); err != nil {
			return &ValidationError{Name: "agent_id", err: fmt.Errorf(`ent: validator failed for field "Activity.agent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activity.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "Activity.activity_type": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Activity.zone"`)
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Activity.agent"`)
	}
	return nil
}

func (_u *ActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activity.FieldActivityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(activity.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(activity.FieldDetails, field.TypeString)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(activity.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.ZoneCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.ZoneTable,
			Columns: []string{activity.ZoneColumn},
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
			Table:   activity.ZoneTable,
			Columns: []string{activity.ZoneColumn},
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
			Table:   activity.AgentTable,
			Columns: []string{activity.AgentColumn},
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
			Table:   activity.AgentTable,
			Columns: []string{activity.AgentColumn},
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
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityUpdateOne is the builder for updating a single Activity entity.
type ActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityMutation
}

// SetZoneID sets the "zone_id" field.
func (_u *ActivityUpdateOne) SetZoneID(v int) *ActivityUpdateOne {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableZoneID(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ActivityUpdateOne) SetAgentID(v int) *ActivityUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableAgentID(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityUpdateOne) SetActivityType(v activity.ActivityType) *ActivityUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableActivityType(v *activity.ActivityType) *ActivityUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *ActivityUpdateOne) SetDetails(v string) *ActivityUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDetails(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ActivityUpdateOne) ClearDetails() *ActivityUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ActivityUpdateOne) SetOccurredAt(v time.Time) *ActivityUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableOccurredAt(v *time.Time) *ActivityUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *ActivityUpdateOne) SetZone(v *Zone) *ActivityUpdateOne {
	return _u.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_u *ActivityUpdateOne) SetAgent(v *User) *ActivityUpdateOne {
	return _u.SetAgentID(v.ID)
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdateOne) Mutation() *ActivityMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *ActivityUpdateOne) ClearZone() *ActivityUpdateOne {
	_u.mutation.ClearZone()
	return _u
}

// ClearAgent clears the "agent" edge to the User entity.
func (_u *ActivityUpdateOne) ClearAgent() *ActivityUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdateOne) Where(ps ...predicate.Activity) *ActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityUpdateOne) Select(field string, fields ...string) *ActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Activity entity.
func (_u *ActivityUpdateOne) Save(ctx context.Context) (*Activity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdateOne) SaveX(ctx context.Context) *Activity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdateOne) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := activity.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "Activity.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgentID(); ok {
		if err := activity.AgentIDValidator(v); err != nil {
			return &ValidationError{Name: "agent_id", err: fmt.Errorf(`ent: validator failed for field "Activity.agent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activity.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "Activity.activity_type": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Activity.zone"`)
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Activity.agent"`)
	}
	return nil
}

func (_u *ActivityUpdateOne) sqlSave(ctx context.Context) (_node *Activity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Activity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activity.FieldID)
		for _, f := range fields {
			if !activity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activity.FieldID {
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
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activity.FieldActivityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(activity.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(activity.FieldDetails, field.TypeString)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(activity.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.ZoneCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.ZoneTable,
			Columns: []string{activity.ZoneColumn},
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
			Table:   activity.ZoneTable,
			Columns: []string{activity.ZoneColumn},
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
			Table:   activity.AgentTable,
			Columns: []string{activity.AgentColumn},
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
			Table:   activity.AgentTable,
			Columns: []string{activity.AgentColumn},
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
	_node = &Activity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
