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

// ZoneUpdate is the builder for updating Zone entities.
type ZoneUpdate struct {
	config
	hooks    []Hook
	mutation *ZoneMutation
}

// Where appends a list predicates to the ZoneUpdate builder.
func (_u *ZoneUpdate) Where(ps ...predicate.Zone) *ZoneUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ZoneUpdate) SetName(v string) *ZoneUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ZoneUpdate) SetNillableName(v *string) *ZoneUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ZoneUpdate) SetDescription(v string) *ZoneUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ZoneUpdate) SetNillableDescription(v *string) *ZoneUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ZoneUpdate) ClearDescription() *ZoneUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetBoundary sets the "boundary" field.
func (_u *ZoneUpdate) SetBoundary(v [][]float64) *ZoneUpdate {
	_u.mutation.SetBoundary(v)
	return _u
}

// AppendBoundary appends value to the "boundary" field.
func (_u *ZoneUpdate) AppendBoundary(v [][]float64) *ZoneUpdate {
	_u.mutation.AppendBoundary(v)
	return _u
}

// ClearBoundary clears the value of the "boundary" field.
func (_u *ZoneUpdate) ClearBoundary() *ZoneUpdate {
	_u.mutation.ClearBoundary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ZoneUpdate) SetStatus(v zone.Status) *ZoneUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ZoneUpdate) SetNillableStatus(v *zone.Status) *ZoneUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *ZoneUpdate) SetAssignedAgentID(v int) *ZoneUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *ZoneUpdate) SetNillableAssignedAgentID(v *int) *ZoneUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *ZoneUpdate) ClearAssignedAgentID() *ZoneUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ZoneUpdate) SetTeamID(v int) *ZoneUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ZoneUpdate) SetNillableTeamID(v *int) *ZoneUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *ZoneUpdate) ClearTeamID() *ZoneUpdate {
	_u.mutation.ClearTeamID()
	return _u
}

// SetCreatedByUserID sets the "created_by_user_id" field.
func (_u *ZoneUpdate) SetCreatedByUserID(v int) *ZoneUpdate {
	_u.mutation.SetCreatedByUserID(v)
	return _u
}

// SetNillableCreatedByUserID sets the "created_by_user_id" field if the given value is not nil.
func (_u *ZoneUpdate) SetNillableCreatedByUserID(v *int) *ZoneUpdate {
	if v != nil {
		_u.SetCreatedByUserID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ZoneUpdate) SetUpdatedAt(v time.Time) *ZoneUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedByID sets the "created_by" edge to the User entity by ID.
func (_u *ZoneUpdate) SetCreatedByID(id int) *ZoneUpdate {
	_u.mutation.SetCreatedByID(id)
	return _u
}

// SetCreatedBy sets the "created_by" edge to the User entity.
func (_u *ZoneUpdate) SetCreatedBy(v *User) *ZoneUpdate {
	return _u.SetCreatedByID(v.ID)
}

// SetAssignedAgent sets the "assigned_agent" edge to the User entity.
func (_u *ZoneUpdate) SetAssignedAgent(v *User) *ZoneUpdate {
	return _u.SetAssignedAgentID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ZoneUpdate) SetTeam(v *Team) *ZoneUpdate {
	return _u.SetTeamID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the ZoneAssignment entity by IDs.
func (_u *ZoneUpdate) AddAssignmentIDs(ids ...int) *ZoneUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the ZoneAssignment entity.
func (_u *ZoneUpdate) AddAssignments(v ...*ZoneAssignment) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddScheduledAssignmentIDs adds the "scheduled_assignments" edge to the ScheduledAssignment entity by IDs.
func (_u *ZoneUpdate) AddScheduledAssignmentIDs(ids ...int) *ZoneUpdate {
	_u.mutation.AddScheduledAssignmentIDs(ids...)
	return _u
}

// AddScheduledAssignments adds the "scheduled_assignments" edges to the ScheduledAssignment entity.
func (_u *ZoneUpdate) AddScheduledAssignments(v ...*ScheduledAssignment) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledAssignmentIDs(ids...)
}

// AddResidentIDs adds the "residents" edge to the Resident entity by IDs.
func (_u *ZoneUpdate) AddResidentIDs(ids ...int) *ZoneUpdate {
	_u.mutation.AddResidentIDs(ids...)
	return _u
}

// AddResidents adds the "residents" edges to the Resident entity.
func (_u *ZoneUpdate) AddResidents(v ...*Resident) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResidentIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *ZoneUpdate) AddLeadIDs(ids ...int) *ZoneUpdate {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *ZoneUpdate) AddLeads(v ...*Lead) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *ZoneUpdate) AddActivityIDs(ids ...int) *ZoneUpdate {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *ZoneUpdate) AddActivities(v ...*Activity) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddRouteIDs adds the "routes" edge to the Route entity by IDs.
func (_u *ZoneUpdate) AddRouteIDs(ids ...int) *ZoneUpdate {
	_u.mutation.AddRouteIDs(ids...)
	return _u
}

// AddRoutes adds the "routes" edges to the Route entity.
func (_u *ZoneUpdate) AddRoutes(v ...*Route) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRouteIDs(ids...)
}

// Mutation returns the ZoneMutation object of the builder.
func (_u *ZoneUpdate) Mutation() *ZoneMutation {
	return _u.mutation
}

// ClearCreatedBy clears the "created_by" edge to the User entity.
func (_u *ZoneUpdate) ClearCreatedBy() *ZoneUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// ClearAssignedAgent clears the "assigned_agent" edge to the User entity.
func (_u *ZoneUpdate) ClearAssignedAgent() *ZoneUpdate {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ZoneUpdate) ClearTeam() *ZoneUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// ClearAssignments clears all "assignments" edges to the ZoneAssignment entity.
func (_u *ZoneUpdate) ClearAssignments() *ZoneUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to ZoneAssignment entities by IDs.
func (_u *ZoneUpdate) RemoveAssignmentIDs(ids ...int) *ZoneUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to ZoneAssignment entities.
func (_u *ZoneUpdate) RemoveAssignments(v ...*ZoneAssignment) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearScheduledAssignments clears all "scheduled_assignments" edges to the ScheduledAssignment entity.
func (_u *ZoneUpdate) ClearScheduledAssignments() *ZoneUpdate {
	_u.mutation.ClearScheduledAssignments()
	return _u
}

// RemoveScheduledAssignmentIDs removes the "scheduled_assignments" edge to ScheduledAssignment entities by IDs.
func (_u *ZoneUpdate) RemoveScheduledAssignmentIDs(ids ...int) *ZoneUpdate {
	_u.mutation.RemoveScheduledAssignmentIDs(ids...)
	return _u
}

// RemoveScheduledAssignments removes "scheduled_assignments" edges to ScheduledAssignment entities.
func (_u *ZoneUpdate) RemoveScheduledAssignments(v ...*ScheduledAssignment) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledAssignmentIDs(ids...)
}

// ClearResidents clears all "residents" edges to the Resident entity.
func (_u *ZoneUpdate) ClearResidents() *ZoneUpdate {
	_u.mutation.ClearResidents()
	return _u
}

// RemoveResidentIDs removes the "residents" edge to Resident entities by IDs.
func (_u *ZoneUpdate) RemoveResidentIDs(ids ...int) *ZoneUpdate {
	_u.mutation.RemoveResidentIDs(ids...)
	return _u
}

// RemoveResidents removes "residents" edges to Resident entities.
func (_u *ZoneUpdate) RemoveResidents(v ...*Resident) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResidentIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *ZoneUpdate) ClearLeads() *ZoneUpdate {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *ZoneUpdate) RemoveLeadIDs(ids ...int) *ZoneUpdate {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *ZoneUpdate) RemoveLeads(v ...*Lead) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *ZoneUpdate) ClearActivities() *ZoneUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *ZoneUpdate) RemoveActivityIDs(ids ...int) *ZoneUpdate {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *ZoneUpdate) RemoveActivities(v ...*Activity) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearRoutes clears all "routes" edges to the Route entity.
func (_u *ZoneUpdate) ClearRoutes() *ZoneUpdate {
	_u.mutation.ClearRoutes()
	return _u
}

// RemoveRouteIDs removes the "routes" edge to Route entities by IDs.
func (_u *ZoneUpdate) RemoveRouteIDs(ids ...int) *ZoneUpdate {
	_u.mutation.RemoveRouteIDs(ids...)
	return _u
}

// RemoveRoutes removes "routes" edges to Route entities.
func (_u *ZoneUpdate) RemoveRoutes(v ...*Route) *ZoneUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRouteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ZoneUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ZoneUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ZoneUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ZoneUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ZoneUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := zone.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ZoneUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := zone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Zone.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := zone.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Zone.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedByUserID(); ok {
		if err := zone.CreatedByUserIDValidator(v); err != nil {
			return &ValidationError{Name: "created_by_user_id", err: fmt.Errorf(`ent: validator failed for field "Zone.created_by_user_id": %w`, err)}
		}
	}
	if _u.mutation.CreatedByCleared() && len(_u.mutation.CreatedByIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Zone.created_by"`)
	}
	return nil
}

func (_u *ZoneUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(zone.Table, zone.Columns, sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(zone.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(zone.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(zone.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Boundary(); ok {
		_spec.SetField(zone.FieldBoundary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBoundary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, zone.FieldBoundary, value)
		})
	}
	if _u.mutation.BoundaryCleared() {
		_spec.ClearField(zone.FieldBoundary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(zone.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(zone.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CreatedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zone.CreatedByTable,
			Columns: []string{zone.CreatedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zone.CreatedByTable,
			Columns: []string{zone.CreatedByColumn},
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
	if _u.mutation.AssignedAgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zone.AssignedAgentTable,
			Columns: []string{zone.AssignedAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedAgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zone.AssignedAgentTable,
			Columns: []string{zone.AssignedAgentColumn},
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
			Table:   zone.TeamTable,
			Columns: []string{zone.TeamColumn},
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
			Table:   zone.TeamTable,
			Columns: []string{zone.TeamColumn},
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
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.AssignmentsTable,
			Columns: []string{zone.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.AssignmentsTable,
			Columns: []string{zone.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.AssignmentsTable,
			Columns: []string{zone.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ScheduledAssignmentsTable,
			Columns: []string{zone.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ScheduledAssignmentsTable,
			Columns: []string{zone.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledAssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ScheduledAssignmentsTable,
			Columns: []string{zone.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResidentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ResidentsTable,
			Columns: []string{zone.ResidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resident.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResidentsIDs(); len(nodes) > 0 && !_u.mutation.ResidentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ResidentsTable,
			Columns: []string{zone.ResidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resident.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResidentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ResidentsTable,
			Columns: []string{zone.ResidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resident.FieldID, field.TypeInt),
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
			Table:   zone.LeadsTable,
			Columns: []string{zone.LeadsColumn},
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
			Table:   zone.LeadsTable,
			Columns: []string{zone.LeadsColumn},
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
			Table:   zone.LeadsTable,
			Columns: []string{zone.LeadsColumn},
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
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ActivitiesTable,
			Columns: []string{zone.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ActivitiesTable,
			Columns: []string{zone.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ActivitiesTable,
			Columns: []string{zone.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.RoutesTable,
			Columns: []string{zone.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoutesIDs(); len(nodes) > 0 && !_u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.RoutesTable,
			Columns: []string{zone.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.RoutesTable,
			Columns: []string{zone.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{zone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ZoneUpdateOne is the builder for updating a single Zone entity.
type ZoneUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ZoneMutation
}

// SetName sets the "name" field.
func (_u *ZoneUpdateOne) SetName(v string) *ZoneUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ZoneUpdateOne) SetNillableName(v *string) *ZoneUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ZoneUpdateOne) SetDescription(v string) *ZoneUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ZoneUpdateOne) SetNillableDescription(v *string) *ZoneUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ZoneUpdateOne) ClearDescription() *ZoneUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetBoundary sets the "boundary" field.
func (_u *ZoneUpdateOne) SetBoundary(v [][]float64) *ZoneUpdateOne {
	_u.mutation.SetBoundary(v)
	return _u
}

// AppendBoundary appends value to the "boundary" field.
func (_u *ZoneUpdateOne) AppendBoundary(v [][]float64) *ZoneUpdateOne {
	_u.mutation.AppendBoundary(v)
	return _u
}

// ClearBoundary clears the value of the "boundary" field.
func (_u *ZoneUpdateOne) ClearBoundary() *ZoneUpdateOne {
	_u.mutation.ClearBoundary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ZoneUpdateOne) SetStatus(v zone.Status) *ZoneUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ZoneUpdateOne) SetNillableStatus(v *zone.Status) *ZoneUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *ZoneUpdateOne) SetAssignedAgentID(v int) *ZoneUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *ZoneUpdateOne) SetNillableAssignedAgentID(v *int) *ZoneUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *ZoneUpdateOne) ClearAssignedAgentID() *ZoneUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ZoneUpdateOne) SetTeamID(v int) *ZoneUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ZoneUpdateOne) SetNillableTeamID(v *int) *ZoneUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *ZoneUpdateOne) ClearTeamID() *ZoneUpdateOne {
	_u.mutation.ClearTeamID()
	return _u
}

// SetCreatedByUserID sets the "created_by_user_id" field.
func (_u *ZoneUpdateOne) SetCreatedByUserID(v int) *ZoneUpdateOne {
	_u.mutation.SetCreatedByUserID(v)
	return _u
}

// SetNillableCreatedByUserID sets the "created_by_user_id" field if the given value is not nil.
func (_u *ZoneUpdateOne) SetNillableCreatedByUserID(v *int) *ZoneUpdateOne {
	if v != nil {
		_u.SetCreatedByUserID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ZoneUpdateOne) SetUpdatedAt(v time.Time) *ZoneUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedByID sets the "created_by" edge to the User entity by ID.
func (_u *ZoneUpdateOne) SetCreatedByID(id int) *ZoneUpdateOne {
	_u.mutation.SetCreatedByID(id)
	return _u
}

// SetCreatedBy sets the "created_by" edge to the User entity.
func (_u *ZoneUpdateOne) SetCreatedBy(v *User) *ZoneUpdateOne {
	return _u.SetCreatedByID(v.ID)
}

// SetAssignedAgent sets the "assigned_agent" edge to the User entity.
func (_u *ZoneUpdateOne) SetAssignedAgent(v *User) *ZoneUpdateOne {
	return _u.SetAssignedAgentID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ZoneUpdateOne) SetTeam(v *Team) *ZoneUpdateOne {
	return _u.SetTeamID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the ZoneAssignment entity by IDs.
func (_u *ZoneUpdateOne) AddAssignmentIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the ZoneAssignment entity.
func (_u *ZoneUpdateOne) AddAssignments(v ...*ZoneAssignment) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddScheduledAssignmentIDs adds the "scheduled_assignments" edge to the ScheduledAssignment entity by IDs.
func (_u *ZoneUpdateOne) AddScheduledAssignmentIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.AddScheduledAssignmentIDs(ids...)
	return _u
}

// AddScheduledAssignments adds the "scheduled_assignments" edges to the ScheduledAssignment entity.
func (_u *ZoneUpdateOne) AddScheduledAssignments(v ...*ScheduledAssignment) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledAssignmentIDs(ids...)
}

// AddResidentIDs adds the "residents" edge to the Resident entity by IDs.
func (_u *ZoneUpdateOne) AddResidentIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.AddResidentIDs(ids...)
	return _u
}

// AddResidents adds the "residents" edges to the Resident entity.
func (_u *ZoneUpdateOne) AddResidents(v ...*Resident) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResidentIDs(ids...)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *ZoneUpdateOne) AddLeadIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *ZoneUpdateOne) AddLeads(v ...*Lead) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *ZoneUpdateOne) AddActivityIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *ZoneUpdateOne) AddActivities(v ...*Activity) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddRouteIDs adds the "routes" edge to the Route entity by IDs.
func (_u *ZoneUpdateOne) AddRouteIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.AddRouteIDs(ids...)
	return _u
}

// AddRoutes adds the "routes" edges to the Route entity.
func (_u *ZoneUpdateOne) AddRoutes(v ...*Route) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRouteIDs(ids...)
}

// Mutation returns the ZoneMutation object of the builder.
func (_u *ZoneUpdateOne) Mutation() *ZoneMutation {
	return _u.mutation
}

// ClearCreatedBy clears the "created_by" edge to the User entity.
func (_u *ZoneUpdateOne) ClearCreatedBy() *ZoneUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// ClearAssignedAgent clears the "assigned_agent" edge to the User entity.
func (_u *ZoneUpdateOne) ClearAssignedAgent() *ZoneUpdateOne {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ZoneUpdateOne) ClearTeam() *ZoneUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// ClearAssignments clears all "assignments" edges to the ZoneAssignment entity.
func (_u *ZoneUpdateOne) ClearAssignments() *ZoneUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to ZoneAssignment entities by IDs.
func (_u *ZoneUpdateOne) RemoveAssignmentIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to ZoneAssignment entities.
func (_u *ZoneUpdateOne) RemoveAssignments(v ...*ZoneAssignment) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearScheduledAssignments clears all "scheduled_assignments" edges to the ScheduledAssignment entity.
func (_u *ZoneUpdateOne) ClearScheduledAssignments() *ZoneUpdateOne {
	_u.mutation.ClearScheduledAssignments()
	return _u
}

// RemoveScheduledAssignmentIDs removes the "scheduled_assignments" edge to ScheduledAssignment entities by IDs.
func (_u *ZoneUpdateOne) RemoveScheduledAssignmentIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.RemoveScheduledAssignmentIDs(ids...)
	return _u
}

// RemoveScheduledAssignments removes "scheduled_assignments" edges to ScheduledAssignment entities.
func (_u *ZoneUpdateOne) RemoveScheduledAssignments(v ...*ScheduledAssignment) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledAssignmentIDs(ids...)
}

// ClearResidents clears all "residents" edges to the Resident entity.
func (_u *ZoneUpdateOne) ClearResidents() *ZoneUpdateOne {
	_u.mutation.ClearResidents()
	return _u
}

// RemoveResidentIDs removes the "residents" edge to Resident entities by IDs.
func (_u *ZoneUpdateOne) RemoveResidentIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.RemoveResidentIDs(ids...)
	return _u
}

// RemoveResidents removes "residents" edges to Resident entities.
func (_u *ZoneUpdateOne) RemoveResidents(v ...*Resident) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResidentIDs(ids...)
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *ZoneUpdateOne) ClearLeads() *ZoneUpdateOne {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *ZoneUpdateOne) RemoveLeadIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *ZoneUpdateOne) RemoveLeads(v ...*Lead) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *ZoneUpdateOne) ClearActivities() *ZoneUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *ZoneUpdateOne) RemoveActivityIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *ZoneUpdateOne) RemoveActivities(v ...*Activity) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearRoutes clears all "routes" edges to the Route entity.
func (_u *ZoneUpdateOne) ClearRoutes() *ZoneUpdateOne {
	_u.mutation.ClearRoutes()
	return _u
}

// RemoveRouteIDs removes the "routes" edge to Route entities by IDs.
func (_u *ZoneUpdateOne) RemoveRouteIDs(ids ...int) *ZoneUpdateOne {
	_u.mutation.RemoveRouteIDs(ids...)
	return _u
}

// RemoveRoutes removes "routes" edges to Route entities.
func (_u *ZoneUpdateOne) RemoveRoutes(v ...*Route) *ZoneUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRouteIDs(ids...)
}

// Where appends a list predicates to the ZoneUpdate builder.
func (_u *ZoneUpdateOne) Where(ps ...predicate.Zone) *ZoneUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ZoneUpdateOne) Select(field string, fields ...string) *ZoneUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Zone entity.
func (_u *ZoneUpdateOne) Save(ctx context.Context) (*Zone, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ZoneUpdateOne) SaveX(ctx context.Context) *Zone {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ZoneUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ZoneUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ZoneUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := zone.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ZoneUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := zone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Zone.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := zone.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Zone.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedByUserID(); ok {
		if err := zone.CreatedByUserIDValidator(v); err != nil {
			return &ValidationError{Name: "created_by_user_id", err: fmt.Errorf(`ent: validator failed for field "Zone.created_by_user_id": %w`, err)}
		}
	}
	if _u.mutation.CreatedByCleared() && len(_u.mutation.CreatedByIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Zone.created_by"`)
	}
	return nil
}

func (_u *ZoneUpdateOne) sqlSave(ctx context.Context) (_node *Zone, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(zone.Table, zone.Columns, sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Zone.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, zone.FieldID)
		for _, f := range fields {
			if !zone.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != zone.FieldID {
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
		_spec.SetField(zone.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(zone.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(zone.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Boundary(); ok {
		_spec.SetField(zone.FieldBoundary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBoundary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, zone.FieldBoundary, value)
		})
	}
	if _u.mutation.BoundaryCleared() {
		_spec.ClearField(zone.FieldBoundary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(zone.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(zone.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CreatedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zone.CreatedByTable,
			Columns: []string{zone.CreatedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zone.CreatedByTable,
			Columns: []string{zone.CreatedByColumn},
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
	if _u.mutation.AssignedAgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zone.AssignedAgentTable,
			Columns: []string{zone.AssignedAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedAgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   zone.AssignedAgentTable,
			Columns: []string{zone.AssignedAgentColumn},
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
			Table:   zone.TeamTable,
			Columns: []string{zone.TeamColumn},
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
			Table:   zone.TeamTable,
			Columns: []string{zone.TeamColumn},
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
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.AssignmentsTable,
			Columns: []string{zone.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.AssignmentsTable,
			Columns: []string{zone.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.AssignmentsTable,
			Columns: []string{zone.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(zoneassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ScheduledAssignmentsTable,
			Columns: []string{zone.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledAssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ScheduledAssignmentsTable,
			Columns: []string{zone.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledAssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ScheduledAssignmentsTable,
			Columns: []string{zone.ScheduledAssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResidentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ResidentsTable,
			Columns: []string{zone.ResidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resident.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResidentsIDs(); len(nodes) > 0 && !_u.mutation.ResidentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ResidentsTable,
			Columns: []string{zone.ResidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resident.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResidentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ResidentsTable,
			Columns: []string{zone.ResidentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resident.FieldID, field.TypeInt),
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
			Table:   zone.LeadsTable,
			Columns: []string{zone.LeadsColumn},
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
			Table:   zone.LeadsTable,
			Columns: []string{zone.LeadsColumn},
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
			Table:   zone.LeadsTable,
			Columns: []string{zone.LeadsColumn},
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
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ActivitiesTable,
			Columns: []string{zone.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ActivitiesTable,
			Columns: []string{zone.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.ActivitiesTable,
			Columns: []string{zone.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.RoutesTable,
			Columns: []string{zone.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoutesIDs(); len(nodes) > 0 && !_u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.RoutesTable,
			Columns: []string{zone.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   zone.RoutesTable,
			Columns: []string{zone.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Zone{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{zone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
