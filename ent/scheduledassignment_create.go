// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
)

// ScheduledAssignmentCreate is the builder for creating a ScheduledAssignment entity.
type ScheduledAssignmentCreate struct {
	config
	mutation *ScheduledAssignmentMutation
	hooks    []Hook
}

// SetZoneID sets the "zone_id" field.
func (_c *ScheduledAssignmentCreate) SetZoneID(v int) *ScheduledAssignmentCreate {
	_c.mutation.SetZoneID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ScheduledAssignmentCreate) SetAgentID(v int) *ScheduledAssignmentCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *ScheduledAssignmentCreate) SetNillableAgentID(v *int) *ScheduledAssignmentCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *ScheduledAssignmentCreate) SetTeamID(v int) *ScheduledAssignmentCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_c *ScheduledAssignmentCreate) SetNillableTeamID(v *int) *ScheduledAssignmentCreate {
	if v != nil {
		_c.SetTeamID(*v)
	}
	return _c
}

// SetAssignedByUserID sets the "assigned_by_user_id" field.
func (_c *ScheduledAssignmentCreate) SetAssignedByUserID(v int) *ScheduledAssignmentCreate {
	_c.mutation.SetAssignedByUserID(v)
	return _c
}

// SetNillableAssignedByUserID sets the "assigned_by_user_id" field if the given value is not nil.
func (_c *ScheduledAssignmentCreate) SetNillableAssignedByUserID(v *int) *ScheduledAssignmentCreate {
	if v != nil {
		_c.SetAssignedByUserID(*v)
	}
	return _c
}

// SetEffectiveFrom sets the "effective_from" field.
func (_c *ScheduledAssignmentCreate) SetEffectiveFrom(v time.Time) *ScheduledAssignmentCreate {
	_c.mutation.SetEffectiveFrom(v)
	return _c
}

// SetScheduledDate sets the "scheduled_date" field.
func (_c *ScheduledAssignmentCreate) SetScheduledDate(v time.Time) *ScheduledAssignmentCreate {
	_c.mutation.SetScheduledDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledAssignmentCreate) SetStatus(v scheduledassignment.Status) *ScheduledAssignmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledAssignmentCreate) SetNillableStatus(v *scheduledassignment.Status) *ScheduledAssignmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetActivatedAt sets the "activated_at" field.
func (_c *ScheduledAssignmentCreate) SetActivatedAt(v time.Time) *ScheduledAssignmentCreate {
	_c.mutation.SetActivatedAt(v)
	return _c
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_c *ScheduledAssignmentCreate) SetNillableActivatedAt(v *time.Time) *ScheduledAssignmentCreate {
	if v != nil {
		_c.SetActivatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledAssignmentCreate) SetCreatedAt(v time.Time) *ScheduledAssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledAssignmentCreate) SetNillableCreatedAt(v *time.Time) *ScheduledAssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetZone sets the "zone" edge to the Zone entity.
func (_c *ScheduledAssignmentCreate) SetZone(v *Zone) *ScheduledAssignmentCreate {
	return _c.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_c *ScheduledAssignmentCreate) SetAgent(v *User) *ScheduledAssignmentCreate {
	return _c.SetAgentID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_c *ScheduledAssignmentCreate) SetTeam(v *Team) *ScheduledAssignmentCreate {
	return _c.SetTeamID(v.ID)
}

// SetAssignedByID sets the "assigned_by" edge to the User entity by ID.
func (_c *ScheduledAssignmentCreate) SetAssignedByID(id int) *ScheduledAssignmentCreate {
	_c.mutation.SetAssignedByID(id)
	return _c
}

// SetNillableAssignedByID sets the "assigned_by" edge to the User entity by ID if the given value is not nil.
func (_c *ScheduledAssignmentCreate) SetNillableAssignedByID(id *int) *ScheduledAssignmentCreate {
	if id != nil {
		_c = _c.SetAssignedByID(*id)
	}
	return _c
}

// SetAssignedBy sets the "assigned_by" edge to the User entity.
func (_c *ScheduledAssignmentCreate) SetAssignedBy(v *User) *ScheduledAssignmentCreate {
	return _c.SetAssignedByID(v.ID)
}

// Mutation returns the ScheduledAssignmentMutation object of the builder.
func (_c *ScheduledAssignmentCreate) Mutation() *ScheduledAssignmentMutation {
	return _c.mutation
}

// Save creates the ScheduledAssignment in the database.
func (_c *ScheduledAssignmentCreate) Save(ctx context.Context) (*ScheduledAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledAssignmentCreate) SaveX(ctx context.Context) *ScheduledAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledAssignmentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledassignment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledassignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledAssignmentCreate) check() error {
	if _, ok := _c.mutation.ZoneID(); !ok {
		return &ValidationError{Name: "zone_id", err: errors.New(`ent: missing required field "ScheduledAssignment.zone_id"`)}
	}
	if v, ok := _c.mutation.ZoneID(); ok {
		if err := scheduledassignment.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledAssignment.zone_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EffectiveFrom(); !ok {
		return &ValidationError{Name: "effective_from", err: errors.New(`ent: missing required field "ScheduledAssignment.effective_from"`)}
	}
	if _, ok := _c.mutation.ScheduledDate(); !ok {
		return &ValidationError{Name: "scheduled_date", err: errors.New(`ent: missing required field "ScheduledAssignment.scheduled_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledAssignment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledAssignment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledAssignment.created_at"`)}
	}
	if len(_c.mutation.ZoneIDs()) == 0 {
		return &ValidationError{Name: "zone", err: errors.New(`ent: missing required edge "ScheduledAssignment.zone"`)}
	}
	return nil
}

func (_c *ScheduledAssignmentCreate) sqlSave(ctx context.Context) (*ScheduledAssignment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledAssignmentCreate) createSpec() (*ScheduledAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledassignment.Table, sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EffectiveFrom(); ok {
		_spec.SetField(scheduledassignment.FieldEffectiveFrom, field.TypeTime, value)
		_node.EffectiveFrom = value
	}
	if value, ok := _c.mutation.ScheduledDate(); ok {
		_spec.SetField(scheduledassignment.FieldScheduledDate, field.TypeTime, value)
		_node.ScheduledDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledassignment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ActivatedAt(); ok {
		_spec.SetField(scheduledassignment.FieldActivatedAt, field.TypeTime, value)
		_node.ActivatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledassignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ZoneIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.ZoneTable,
			Columns: []string{scheduledassignment.ZoneColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ZoneID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AgentTable,
			Columns: []string{scheduledassignment.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.TeamTable,
			Columns: []string{scheduledassignment.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TeamID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledassignment.AssignedByTable,
			Columns: []string{scheduledassignment.AssignedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssignedByUserID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduledAssignmentCreateBulk is the builder for creating many ScheduledAssignment entities in bulk.
type ScheduledAssignmentCreateBulk struct {
	config
	err      error
	builders []*ScheduledAssignmentCreate
}

// Save creates the ScheduledAssignment entities in the database.
func (_c *ScheduledAssignmentCreateBulk) Save(ctx context.Context) ([]*ScheduledAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledAssignmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduledAssignmentCreateBulk) SaveX(ctx context.Context) []*ScheduledAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
