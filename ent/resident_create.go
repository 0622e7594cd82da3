// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/knockbase/knockbase/ent/lead"
	"github.com/knockbase/knockbase/ent/resident"
	"github.com/knockbase/knockbase/ent/zone"
)

// ResidentCreate is the builder for creating a Resident entity.
type ResidentCreate struct {
	config
	mutation *ResidentMutation
	hooks    []Hook
}

// SetZoneID sets the "zone_id" field.
func (_c *ResidentCreate) SetZoneID(v int) *ResidentCreate {
	_c.mutation.SetZoneID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ResidentCreate) SetName(v string) *ResidentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableName(v *string) *ResidentCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ResidentCreate) SetAddress(v string) *ResidentCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ResidentCreate) SetPhone(v string) *ResidentCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ResidentCreate) SetNillablePhone(v *string) *ResidentCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetVisitStatus sets the "visit_status" field.
func (_c *ResidentCreate) SetVisitStatus(v resident.VisitStatus) *ResidentCreate {
	_c.mutation.SetVisitStatus(v)
	return _c
}

// SetNillableVisitStatus sets the "visit_status" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableVisitStatus(v *resident.VisitStatus) *ResidentCreate {
	if v != nil {
		_c.SetVisitStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ResidentCreate) SetNotes(v string) *ResidentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableNotes(v *string) *ResidentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResidentCreate) SetCreatedAt(v time.Time) *ResidentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableCreatedAt(v *time.Time) *ResidentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResidentCreate) SetUpdatedAt(v time.Time) *ResidentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableUpdatedAt(v *time.Time) *ResidentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetZone sets the "zone" edge to the Zone entity.
func (_c *ResidentCreate) SetZone(v *Zone) *ResidentCreate {
	return _c.SetZoneID(v.ID)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_c *ResidentCreate) AddLeadIDs(ids ...int) *ResidentCreate {
	_c.mutation.AddLeadIDs(ids...)
	return _c
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_c *ResidentCreate) AddLeads(v ...*Lead) *ResidentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLeadIDs(ids...)
}

// Mutation returns the ResidentMutation object of the builder.
func (_c *ResidentCreate) Mutation() *ResidentMutation {
	return _c.mutation
}

// Save creates the Resident in the database.
func (_c *ResidentCreate) Save(ctx context.Context) (*Resident, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResidentCreate) SaveX(ctx context.Context) *Resident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResidentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResidentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResidentCreate) defaults() {
	if _, ok := _c.mutation.VisitStatus(); !ok {
		v := resident.DefaultVisitStatus
		_c.mutation.SetVisitStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resident.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := resident.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResidentCreate) check() error {
	if _, ok := _c.mutation.ZoneID(); !ok {
		return &ValidationError{Name: "zone_id", err: errors.New(`ent: missing required field "Resident.zone_id"`)}
	}
	if v, ok := _c.mutation.ZoneID(); ok {
		if err := resident.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "Resident.zone_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "Resident.address"`)}
	}
	if v, ok := _c.mutation.Address(); ok {
		if err := resident.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Resident.address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VisitStatus(); !ok {
		return &ValidationError{Name: "visit_status", err: errors.New(`ent: missing required field "Resident.visit_status"`)}
	}
	if v, ok := _c.mutation.VisitStatus(); ok {
		if err := resident.VisitStatusValidator(v); err != nil {
			return &ValidationError{Name: "visit_status", err: fmt.Errorf(`ent: validator failed for field "Resident.visit_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Resident.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Resident.updated_at"`)}
	}
	if len(_c.mutation.ZoneIDs()) == 0 {
		return &ValidationError{Name: "zone", err: errors.New(`ent: missing required edge "Resident.zone"`)}
	}
	return nil
}

func (_c *ResidentCreate) sqlSave(ctx context.Context) (*Resident, error) {
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

func (_c *ResidentCreate) createSpec() (*Resident, *sqlgraph.CreateSpec) {
	var (
		_node = &Resident{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resident.Table, sqlgraph.NewFieldSpec(resident.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(resident.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(resident.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(resident.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.VisitStatus(); ok {
		_spec.SetField(resident.FieldVisitStatus, field.TypeEnum, value)
		_node.VisitStatus = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(resident.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resident.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(resident.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ZoneIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   resident.ZoneTable,
			Columns: []string{resident.ZoneColumn},
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
	if nodes := _c.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resident.LeadsTable,
			Columns: []string{resident.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResidentCreateBulk is the builder for creating many Resident entities in bulk.
type ResidentCreateBulk struct {
	config
	err      error
	builders []*ResidentCreate
}

// Save creates the Resident entities in the database.
func (_c *ResidentCreateBulk) Save(ctx context.Context) ([]*Resident, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Resident, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResidentMutation)
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
func (_c *ResidentCreateBulk) SaveX(ctx context.Context) []*Resident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResidentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResidentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
