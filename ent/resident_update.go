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
	"github.com/knockbase/knockbase/ent/lead"
	"github.com/knockbase/knockbase/ent/predicate"
	"github.com/knockbase/knockbase/ent/resident"
	"github.com/knockbase/knockbase/ent/zone"
)

// ResidentUpdate is the builder for updating Resident entities.
type ResidentUpdate struct {
	config
	hooks    []Hook
	mutation *ResidentMutation
}

// Where appends a list predicates to the ResidentUpdate builder.
func (_u *ResidentUpdate) Where(ps ...predicate.Resident) *ResidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetZoneID sets the "zone_id" field.
func (_u *ResidentUpdate) SetZoneID(v int) *ResidentUpdate {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableZoneID(v *int) *ResidentUpdate {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ResidentUpdate) SetName(v string) *ResidentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableName(v *string) *ResidentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ResidentUpdate) ClearName() *ResidentUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ResidentUpdate) SetAddress(v string) *ResidentUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableAddress(v *string) *ResidentUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ResidentUpdate) SetPhone(v string) *ResidentUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillablePhone(v *string) *ResidentUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ResidentUpdate) ClearPhone() *ResidentUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetVisitStatus sets the "visit_status" field.
func (_u *ResidentUpdate) SetVisitStatus(v resident.VisitStatus) *ResidentUpdate {
	_u.mutation.SetVisitStatus(v)
	return _u
}

// SetNillableVisitStatus sets the "visit_status" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableVisitStatus(v *resident.VisitStatus) *ResidentUpdate {
	if v != nil {
		_u.SetVisitStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ResidentUpdate) SetNotes(v string) *ResidentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableNotes(v *string) *ResidentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ResidentUpdate) ClearNotes() *ResidentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResidentUpdate) SetUpdatedAt(v time.Time) *ResidentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *ResidentUpdate) SetZone(v *Zone) *ResidentUpdate {
	return _u.SetZoneID(v.ID)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *ResidentUpdate) AddLeadIDs(ids ...int) *ResidentUpdate {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *ResidentUpdate) AddLeads(v ...*Lead) *ResidentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// Mutation returns the ResidentMutation object of the builder.
func (_u *ResidentUpdate) Mutation() *ResidentMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *ResidentUpdate) ClearZone() *ResidentUpdate {
	_u.mutation.ClearZone()
	return _u
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *ResidentUpdate) ClearLeads() *ResidentUpdate {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *ResidentUpdate) RemoveLeadIDs(ids ...int) *ResidentUpdate {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *ResidentUpdate) RemoveLeads(v ...*Lead) *ResidentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResidentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResidentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResidentUpdate) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := resident.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "Resident.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := resident.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Resident.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitStatus(); ok {
		if err := resident.VisitStatusValidator(v); err != nil {
			return &ValidationError{Name: "visit_status", err: fmt.Errorf(`ent: validator failed for field "Resident.visit_status": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Resident.zone"`)
	}
	return nil
}

func (_u *ResidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resident.Table, resident.Columns, sqlgraph.NewFieldSpec(resident.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(resident.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(resident.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(resident.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(resident.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(resident.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.VisitStatus(); ok {
		_spec.SetField(resident.FieldVisitStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(resident.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(resident.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(resident.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ZoneCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZoneIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResidentUpdateOne is the builder for updating a single Resident entity.
type ResidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResidentMutation
}

// SetZoneID sets the "zone_id" field.
func (_u *ResidentUpdateOne) SetZoneID(v int) *ResidentUpdateOne {
	_u.mutation.SetZoneID(v)
	return _u
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableZoneID(v *int) *ResidentUpdateOne {
	if v != nil {
		_u.SetZoneID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ResidentUpdateOne) SetName(v string) *ResidentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableName(v *string) *ResidentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ResidentUpdateOne) ClearName() *ResidentUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ResidentUpdateOne) SetAddress(v string) *ResidentUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableAddress(v *string) *ResidentUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ResidentUpdateOne) SetPhone(v string) *ResidentUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillablePhone(v *string) *ResidentUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ResidentUpdateOne) ClearPhone() *ResidentUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetVisitStatus sets the "visit_status" field.
func (_u *ResidentUpdateOne) SetVisitStatus(v resident.VisitStatus) *ResidentUpdateOne {
	_u.mutation.SetVisitStatus(v)
	return _u
}

// SetNillableVisitStatus sets the "visit_status" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableVisitStatus(v *resident.VisitStatus) *ResidentUpdateOne {
	if v != nil {
		_u.SetVisitStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ResidentUpdateOne) SetNotes(v string) *ResidentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableNotes(v *string) *ResidentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ResidentUpdateOne) ClearNotes() *ResidentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResidentUpdateOne) SetUpdatedAt(v time.Time) *ResidentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetZone sets the "zone" edge to the Zone entity.
func (_u *ResidentUpdateOne) SetZone(v *Zone) *ResidentUpdateOne {
	return _u.SetZoneID(v.ID)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *ResidentUpdateOne) AddLeadIDs(ids ...int) *ResidentUpdateOne {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *ResidentUpdateOne) AddLeads(v ...*Lead) *ResidentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// Mutation returns the ResidentMutation object of the builder.
func (_u *ResidentUpdateOne) Mutation() *ResidentMutation {
	return _u.mutation
}

// ClearZone clears the "zone" edge to the Zone entity.
func (_u *ResidentUpdateOne) ClearZone() *ResidentUpdateOne {
	_u.mutation.ClearZone()
	return _u
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *ResidentUpdateOne) ClearLeads() *ResidentUpdateOne {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *ResidentUpdateOne) RemoveLeadIDs(ids ...int) *ResidentUpdateOne {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *ResidentUpdateOne) RemoveLeads(v ...*Lead) *ResidentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// Where appends a list predicates to the ResidentUpdate builder.
func (_u *ResidentUpdateOne) Where(ps ...predicate.Resident) *ResidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResidentUpdateOne) Select(field string, fields ...string) *ResidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Resident entity.
func (_u *ResidentUpdateOne) Save(ctx context.Context) (*Resident, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResidentUpdateOne) SaveX(ctx context.Context) *Resident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResidentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResidentUpdateOne) check() error {
	if v, ok := _u.mutation.ZoneID(); ok {
		if err := resident.ZoneIDValidator(v); err != nil {
			return &ValidationError{Name: "zone_id", err: fmt.Errorf(`ent: validator failed for field "Resident.zone_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := resident.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Resident.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitStatus(); ok {
		if err := resident.VisitStatusValidator(v); err != nil {
			return &ValidationError{Name: "visit_status", err: fmt.Errorf(`ent: validator failed for field "Resident.visit_status": %w`, err)}
		}
	}
	if _u.mutation.ZoneCleared() && len(_u.mutation.ZoneIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Resident.zone"`)
	}
	return nil
}

func (_u *ResidentUpdateOne) sqlSave(ctx context.Context) (_node *Resident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resident.Table, resident.Columns, sqlgraph.NewFieldSpec(resident.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Resident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resident.FieldID)
		for _, f := range fields {
			if !resident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resident.FieldID {
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
		_spec.SetField(resident.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(resident.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(resident.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(resident.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(resident.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.VisitStatus(); ok {
		_spec.SetField(resident.FieldVisitStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(resident.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(resident.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(resident.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ZoneCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ZoneIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Resident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
