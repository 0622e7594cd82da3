// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/ent/zoneassignment"
)

// ZoneAssignmentCreate is the builder for creating a ZoneAssignment entity.
type ZoneAssignmentCreate struct {
	config
	mutation *ZoneAssignmentMutation
	hooks    []Hook
}

// SetZoneID sets the "zone_id" field.
func (_c *ZoneAssignmentCreate) SetZoneID(v int) *ZoneAssignmentCreate {
	_c.mutation.SetZoneID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ZoneAssignmentCreate) SetAgentID(v int) *ZoneAssignmentCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *ZoneAssignmentCreate) SetNillableAgentID(v *int) *ZoneAssignmentCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *ZoneAssignmentCreate) SetTeamID(v int) *ZoneAssignmentCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_c *ZoneAssignmentCreate) SetNillableTeamID(v *int) *ZoneAssignmentCreate {
	if v != nil {
		_c.SetTeamID(*v)
	}
	return _c
}

// SetAssignedByUserID sets the "assigned_by_user_id" field.
func (_c *ZoneAssignmentCreate) SetAssignedByUserID(v int) *ZoneAssignmentCreate {
	_c.mutation.SetAssignedByUserID(v)
	return _c
}

// SetNillableAssignedByUserID sets the "assigned_by_user_id" field if the given value is not nil.
func (_c *ZoneAssignmentCreate) SetNillableAssignedByUserID(v *int) *ZoneAssignmentCreate {
	if v != nil {
		_c.SetAssignedByUserID(*v)
	}
	return _c
}

// SetEffectiveFrom sets the "effective_from" field.
func (_c *ZoneAssignmentCreate) SetEffectiveFrom(v time.Time) *ZoneAssignmentCreate {
	_c.mutation.SetEffectiveFrom(v)
	return _c
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_c *ZoneAssignmentCreate) SetNillableEffectiveFrom(v *time.Time) *ZoneAssignmentCreate {
	if v != nil {
		_c.SetEffectiveFrom(*v)
	}
	return _c
}

// SetEffectiveTo sets the "effective_to" field.
func (_c *ZoneAssignmentCreate) SetEffectiveTo(v time.Time) *ZoneAssignmentCreate {
	_c.mutation.SetEffectiveTo(v)
	return _c
}

// SetNillableEffectiveTo sets the "effective_to" field if the given value is not nil.
func (_c *ZoneAssignmentCreate) SetNillableEffectiveTo(v *time.Time) *ZoneAssignmentCreate {
	if v != nil {
		_c.SetEffectiveTo(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ZoneAssignmentCreate) SetStatus(v zoneassignment.Status) *ZoneAssignmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ZoneAssignmentCreate) SetNillableStatus(v *zoneassignment.Status) *ZoneAssignmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ZoneAssignmentCreate) SetCreatedAt(v time.Time) *ZoneAssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ZoneAssignmentCreate) SetNillableCreatedAt(v *time.Time) *ZoneAssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetZone sets the "zone" edge to the Zone entity.
func (_c *ZoneAssignmentCreate) SetZone(v *Zone) *ZoneAssignmentCreate {
	return _c.SetZoneID(v.ID)
}

// SetAgent sets the "agent" edge to the User entity.
func (_c *ZoneAssignmentCreate) SetAgent(v *User) *ZoneAssignmentCreate {
	return _c.SetAgentID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_c *ZoneAssignmentCreate) SetTeam(v *Team) *ZoneAssignmentCreate {
	return _c.SetTeamID(v.ID)
}

// SetAssignedByID sets the "assigned_by" edge to the User entity by ID.
func (_c *ZoneAssignmentCreate) SetAssignedByID(id int) *ZoneAssignmentCreate {
	_c.mutation.SetAssignedByID(id)
	return _c
}

// SetNillableAssignedByID sets the "assigned_by" edge to the User entity by ID if the given value is not nil.
func (_c *ZoneAssignmentCreate) SetNillableAssignedByID(id *int) *ZoneAssignmentCreate {
	if id != nil {
		_c = _c.SetAssignedByID(*id)
	}
	return _c
}

// SetAssignedBy sets the "assigned_by" edge to the User entity.
func (_c *ZoneAssignmentCreate) SetAssignedBy(v *User) *ZoneAssignmentCreate {
	return _c.SetAssignedByID(v.ID)
}

// Mutation returns the ZoneAssignmentMutation object of the builder.
func (_c *ZoneAssignmentCreate) Mutation() *ZoneAssignmentMutation {
	return _c.mutation
}

// Save creates the ZoneAssignment in the database.
func (_c *ZoneAssignmentCreate) Save(ctx context.Context) (*ZoneAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ZoneAssignmentCreate) SaveX(ctx context.Context) *ZoneAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ZoneAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ZoneAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ZoneAssignmentCreate) defaults() {
	if _, ok := _c.mutation.EffectiveFrom(); !ok {
		v := zoneassignment.DefaultEffectiveFrom()
		_c.mutation.SetEffectiveFrom(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := zoneassignment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := zoneassignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ZoneAssignmentCreate) check() error {
	if _, ok := _c.mutation.ZoneID(); !ok {
		return &ValidationError{Name: "zone_id", err: errors.New(`ent: missing required field "ZoneAssignment.zone_id"`)}
	}
	if v, ok := _c.mutation.ZoneID(); ok {
		if err := zoneassignment.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "ZoneAssignment.zone_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EffectiveFrom(); !ok {
		return &ValidationError{Name: "effective_from", err: errors.New(`ent: missing required field "ZoneAssignment.effective_from"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ZoneAssignment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := zoneassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ZoneAssignment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ZoneAssignment.created_at"`)}
	}
	if len(_c.mutation.ZoneIDs()) == 0 {
		return &ValidationError{Name: "zone", err: errors.New(`ent: missing required edge "ZoneAssignment.zone"`)}
	}
	return nil
}

func (_c *ZoneAssignmentCreate) sqlSave(ctx context.Context) (*ZoneAssignment, error) {
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

func (_c *ZoneAssignmentCreate) createSpec() (*ZoneAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &ZoneAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(zoneassignment.Table, sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EffectiveFrom(); ok {
		_spec.SetField(zoneassignment.FieldEffectiveFrom, field.TypeTime, value)
		_node.EffectiveFrom = value
	}
	if value, ok := _c.mutation.EffectiveTo(); ok {
		_spec.SetField(zoneassignment.FieldEffectiveTo, field.TypeTime, value)
		_node.EffectiveTo = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(zoneassignment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(zoneassignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ZoneIDs(); len(nodes) > 0 {
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
		_node.ZoneID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TeamIDs(); len(nodes) > 0 {
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
		_node.TeamID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignedByIDs(); len(nodes) > 0 {
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
		_node.AssignedByUserID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ZoneAssignmentCreateBulk is the builder for creating many ZoneAssignment entities in bulk.
type ZoneAssignmentCreateBulk struct {
	config
	err      error
	builders []*ZoneAssignmentCreate
}

// Save creates the ZoneAssignment entities in the database.
func (_c *ZoneAssignmentCreateBulk) Save(ctx context.Context) ([]*ZoneAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ZoneAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ZoneAssignmentMutation)
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
func (_c *ZoneAssignmentCreateBulk) SaveX(ctx context.Context) []*ZoneAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ZoneAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ZoneAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
