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
	"github.com/knockbase/knockbase/ent/predicate"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/ent/zoneassignment"
)

// ZoneAssignmentUpdate is the builder for updating ZoneAssignment entities.
type ZoneAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *ZoneAssignmentMutation
}

// Where appends a list predicates to the ZoneAssignmentUpdate builder.
func (_u *ZoneAssignmentUpdate) Where(ps ...predicate.ZoneAssignment) *ZoneAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetZoneID sets the "zone_id" field.
func (_u *ZoneAssignmentUpdate) SetZoneID(v int) *ZoneAssignmentUpdate {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *ZoneAssignmentUpdate) SetNillableZoneID(v *int) *ZoneAssignmentUpdate {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ZoneAssignmentUpdate) SetAgentID(v int) *ZoneAssignmentUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ZoneAssignmentUpdate) SetNillableAgentID(v *int) *ZoneAssignmentUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ZoneAssignmentUpdate) ClearAgentID() *ZoneAssignmentUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ZoneAssignmentUpdate) SetTeamID(v int) *ZoneAssignmentUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ZoneAssignmentUpdate) SetNillableTeamID(v *int) *ZoneAssignmentUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *ZoneAssignmentUpdate) ClearTeamID() *ZoneAssignmentUpdate {
	_u.mutation.ClearTeamID()
	return _u
}

// SetAssignedByUserID sets the "assigned_by_user_id" field.
func (_u *ZoneAssignmentUpdate) SetAssignedByUserID(v int) *ZoneAssignmentUpdate {
	_u.mutation.SetAssignedByUserID(v)
	return _u
}

// SetNillableAssignedByUserID sets the "assigned_by_user_id" field if the given value is not nil.
func (_u *ZoneAssignmentUpdate) SetNillableAssignedByUserID(v *int) *ZoneAssignmentUpdate {
	if v != nil {
		_u.SetAssignedByUserID(*v)
	}
	return _u
}

// ClearAssignedByUserID clears the value of the "assigned_by_user_id" field.
func (_u *ZoneAssignmentUpdate) ClearAssignedByUserID() *ZoneAssignmentUpdate {
	_u.mutation.ClearAssignedByUserID()
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *ZoneAssignmentUpdate) SetEffectiveFrom(v time.Time) *ZoneAssignmentUpdate {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *ZoneAssignmentUpdate) SetNillableEffectiveFrom(v *time.Time) *ZoneAssignmentUpdate {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// SetEffectiveTo sets the "effective_to" field.
func (_u *ZoneAssignmentUpdate) SetEffectiveTo(v time.Time) *ZoneAssignmentUpdate {
	_u.mutation.SetEffectiveTo(v)
	return _u
}

// SetNillableEffectiveTo sets the "effective_to" field if the given value is not nil.
func (_u *ZoneAssignmentUpdate) SetNillableEffectiveTo(v *time.Time) *ZoneAssignmentUpdate {
	if v != nil {
		_u.SetEffectiveTo(*v)
	}
	return _u
}

// ClearEffectiveTo clears the value of the "effective_to" field.
func (_u *ZoneAssignmentUpdate) ClearEffectiveTo() *ZoneAssignmentUpdate {
	_u.mutation.ClearEffectiveTo()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ZoneAssignmentUpdate) SetStatus(v zoneassignment.Status) *ZoneAssignmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ZoneAssignmentUpdate) SetNillableStatus(v *zoneassignment.Status) *ZoneAssignmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *ZoneAssignmentUpdate) SetZone(v *Zone) *ZoneAssignmentUpdate {
	return _u.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_u *ZoneAssignmentUpdate) SetAgent(v *User) *ZoneAssignmentUpdate {
	return _u.SetAgentID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ZoneAssignmentUpdate) SetTeam(v *Team) *ZoneAssignmentUpdate {
	return _u.SetTeamID(v.ID)
}

// SetAssignedByID sets the "assigned_by" edge to the User entity by ID.
func (_u *ZoneAssignmentUpdate) SetAssignedByID(id int) *ZoneAssignmentUpdate {
	_u.mutation.SetAssignedByID(id)
	return _u
}

// SetNillableAssignedByID sets the "assigned_by" edge to the User entity by ID if the given value is not nil.
func (_u *ZoneAssignmentUpdate) SetNillableAssignedByID(id *int) *ZoneAssignmentUpdate {
	if id != nil {
		_u = _u.SetAssignedByID(*id)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" edge to the User entity.
func (_u *ZoneAssignmentUpdate) SetAssignedBy(v *User) *ZoneAssignmentUpdate {
	return _u.SetAssignedByID(v.ID)
}

// Mutation returns the ZoneAssignmentMutation object of the builder.
func (_u *ZoneAssignmentUpdate) Mutation() *ZoneAssignmentMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *ZoneAssignmentUpdate) ClearZone() *ZoneAssignmentUpdate {
	_u.mutation.ClearZone()
	return _u
}

// ClearAgent clears the "agent" edge to the User entity.
func (_u *ZoneAssignmentUpdate) ClearAgent() *ZoneAssignmentUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ZoneAssignmentUpdate) ClearTeam() *ZoneAssignmentUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// ClearAssignedBy clears the "assigned_by" edge to the User entity.
func (_u *ZoneAssignmentUpdate) ClearAssignedBy() *ZoneAssignmentUpdate {
	_u.mutation.ClearAssignedBy()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ZoneAssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ZoneAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ZoneAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ZoneAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ZoneAssignmentUpdate) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := zoneassignment.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "ZoneAssignment.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := zoneassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ZoneAssignment.status": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ZoneAssignment.zone"`)
	}
	return nil
}

func (_u *ZoneAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(zoneassignment.Table, zoneassignment.Columns, sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(zoneassignment.FieldEffectiveFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EffectiveTo(); ok {
		_spec.SetField(zoneassignment.FieldEffectiveTo, field.TypeTime, value)
	}
	if _u.mutation.EffectiveToCleared() {
		_spec.ClearField(zoneassignment.FieldEffectiveTo, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(zoneassignment.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ZoneCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.ZoneTable,
			Columns: []string{zoneassignment.ZoneColumn},
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
			Table:   zoneassignment.ZoneTable,
			Columns: []string{zoneassignment.ZoneColumn},
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
			Table:   zoneassignment.AgentTable,
			Columns: []string{zoneassignment.AgentColumn},
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
			Table:   zoneassignment.AgentTable,
			Columns: []string{zoneassignment.AgentColumn},
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
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.TeamTable,
			Columns: []string{zoneassignment.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.TeamTable,
			Columns: []string{zoneassignment.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.AssignedByTable,
			Columns: []string{zoneassignment.AssignedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.AssignedByTable,
			Columns: []string{zoneassignment.AssignedByColumn},
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
			err = &NotFoundError{zoneassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ZoneAssignmentUpdateOne is the builder for updating a single ZoneAssignment entity.
type ZoneAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ZoneAssignmentMutation
}

// SetZoneID sets the "zone_id" field.
func (_u *ZoneAssignmentUpdateOne) SetZoneID(v int) *ZoneAssignmentUpdateOne {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *ZoneAssignmentUpdateOne) SetNillableZoneID(v *int) *ZoneAssignmentUpdateOne {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ZoneAssignmentUpdateOne) SetAgentID(v int) *ZoneAssignmentUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ZoneAssignmentUpdateOne) SetNillableAgentID(v *int) *ZoneAssignmentUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ZoneAssignmentUpdateOne) ClearAgentID() *ZoneAssignmentUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ZoneAssignmentUpdateOne) SetTeamID(v int) *ZoneAssignmentUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ZoneAssignmentUpdateOne) SetNillableTeamID(v *int) *ZoneAssignmentUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *ZoneAssignmentUpdateOne) ClearTeamID() *ZoneAssignmentUpdateOne {
	_u.mutation.ClearTeamID()
	return _u
}

// SetAssignedByUserID sets the "assigned_by_user_id" field.
func (_u *ZoneAssignmentUpdateOne) SetAssignedByUserID(v int) *ZoneAssignmentUpdateOne {
	_u.mutation.SetAssignedByUserID(v)
	return _u
}

// SetNillableAssignedByUserID sets the "assigned_by_user_id" field if the given value is not nil.
func (_u *ZoneAssignmentUpdateOne) SetNillableAssignedByUserID(v *int) *ZoneAssignmentUpdateOne {
	if v != nil {
		_u.SetAssignedByUserID(*v)
	}
	return _u
}

// ClearAssignedByUserID clears the value of the "assigned_by_user_id" field.
func (_u *ZoneAssignmentUpdateOne) ClearAssignedByUserID() *ZoneAssignmentUpdateOne {
	_u.mutation.ClearAssignedByUserID()
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *ZoneAssignmentUpdateOne) SetEffectiveFrom(v time.Time) *ZoneAssignmentUpdateOne {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *ZoneAssignmentUpdateOne) SetNillableEffectiveFrom(v *time.Time) *ZoneAssignmentUpdateOne {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// SetEffectiveTo sets the "effective_to" field.
func (_u *ZoneAssignmentUpdateOne) SetEffectiveTo(v time.Time) *ZoneAssignmentUpdateOne {
	_u.mutation.SetEffectiveTo(v)
	return _u
}

// SetNillableEffectiveTo sets the "effective_to" field if the given value is not nil.
func (_u *ZoneAssignmentUpdateOne) SetNillableEffectiveTo(v *time.Time) *ZoneAssignmentUpdateOne {
	if v != nil {
		_u.SetEffectiveTo(*v)
	}
	return _u
}

// ClearEffectiveTo clears the value of the "effective_to" field.
func (_u *ZoneAssignmentUpdateOne) ClearEffectiveTo() *ZoneAssignmentUpdateOne {
	_u.mutation.ClearEffectiveTo()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ZoneAssignmentUpdateOne) SetStatus(v zoneassignment.Status) *ZoneAssignmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ZoneAssignmentUpdateOne) SetNillableStatus(v *zoneassignment.Status) *ZoneAssignmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *ZoneAssignmentUpdateOne) SetZone(v *Zone) *ZoneAssignmentUpdateOne {
	return _u.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_u *ZoneAssignmentUpdateOne) SetAgent(v *User) *ZoneAssignmentUpdateOne {
	return _u.SetAgentID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ZoneAssignmentUpdateOne) SetTeam(v *Team) *ZoneAssignmentUpdateOne {
	return _u.SetTeamID(v.ID)
}

// SetAssignedByID sets the "assigned_by" edge to the User entity by ID.
func (_u *ZoneAssignmentUpdateOne) SetAssignedByID(id int) *ZoneAssignmentUpdateOne {
	_u.mutation.SetAssignedByID(id)
	return _u
}

// SetNillableAssignedByID sets the "assigned_by" edge to the User entity by ID if the given value is not nil.
func (_u *ZoneAssignmentUpdateOne) SetNillableAssignedByID(id *int) *ZoneAssignmentUpdateOne {
	if id != nil {
		_u = _u.SetAssignedByID(*id)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" edge to the User entity.
func (_u *ZoneAssignmentUpdateOne) SetAssignedBy(v *User) *ZoneAssignmentUpdateOne {
	return _u.SetAssignedByID(v.ID)
}

// Mutation returns the ZoneAssignmentMutation object of the builder.
func (_u *ZoneAssignmentUpdateOne) Mutation() *ZoneAssignmentMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *ZoneAssignmentUpdateOne) ClearZone() *ZoneAssignmentUpdateOne {
	_u.mutation.ClearZone()
	return _u
}

// ClearAgent clears the "agent" edge to the User entity.
func (_u *ZoneAssignmentUpdateOne) ClearAgent() *ZoneAssignmentUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ZoneAssignmentUpdateOne) ClearTeam() *ZoneAssignmentUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// ClearAssignedBy clears the "assigned_by" edge to the User entity.
func (_u *ZoneAssignmentUpdateOne) ClearAssignedBy() *ZoneAssignmentUpdateOne {
	_u.mutation.ClearAssignedBy()
	return _u
}

// Where appends a list predicates to the ZoneAssignmentUpdate builder.
func (_u *ZoneAssignmentUpdateOne) Where(ps ...predicate.ZoneAssignment) *ZoneAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ZoneAssignmentUpdateOne) Select(field string, fields ...string) *ZoneAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ZoneAssignment entity.
func (_u *ZoneAssignmentUpdateOne) Save(ctx context.Context) (*ZoneAssignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ZoneAssignmentUpdateOne) SaveX(ctx context.Context) *ZoneAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ZoneAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ZoneAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ZoneAssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := zoneassignment.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "ZoneAssignment.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := zoneassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ZoneAssignment.status": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ZoneAssignment.zone"`)
	}
	return nil
}

func (_u *ZoneAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *ZoneAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(zoneassignment.Table, zoneassignment.Columns, sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ZoneAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, zoneassignment.FieldID)
		for _, f := range fields {
			if !zoneassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != zoneassignment.FieldID {
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
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(zoneassignment.FieldEffectiveFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EffectiveTo(); ok {
		_spec.SetField(zoneassignment.FieldEffectiveTo, field.TypeTime, value)
	}
	if _u.mutation.EffectiveToCleared() {
		_spec.ClearField(zoneassignment.FieldEffectiveTo, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(zoneassignment.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ZoneCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.ZoneTable,
			Columns: []string{zoneassignment.ZoneColumn},
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
			Table:   zoneassignment.ZoneTable,
			Columns: []string{zoneassignment.ZoneColumn},
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
			Table:   zoneassignment.AgentTable,
			Columns: []string{zoneassignment.AgentColumn},
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
			Table:   zoneassignment.AgentTable,
			Columns: []string{zoneassignment.AgentColumn},
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
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.TeamTable,
			Columns: []string{zoneassignment.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.TeamTable,
			Columns: []string{zoneassignment.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.AssignedByTable,
			Columns: []string{zoneassignment.AssignedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zoneassignment.AssignedByTable,
			Columns: []string{zoneassignment.AssignedByColumn},
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
	_node = &ZoneAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{zoneassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
