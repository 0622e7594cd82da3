// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/knockbase/knockbase/ent/activity"
	"github.com/knockbase/knockbase/ent/auditlog"
	"github.com/knockbase/knockbase/ent/lead"
	"github.com/knockbase/knockbase/ent/predicate"
	"github.com/knockbase/knockbase/ent/resident"
	"github.com/knockbase/knockbase/ent/route"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/teammember"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/ent/zoneassignment"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivity            = "Activity"
	TypeAuditLog            = "AuditLog"
	TypeLead                = "Lead"
	TypeResident            = "Resident"
	TypeRoute               = "Route"
	TypeScheduledAssignment = "ScheduledAssignment"
	TypeTeam                = "Team"
	TypeTeamMember          = "TeamMember"
	TypeUser                = "User"
	TypeZone                = "Zone"
	TypeZoneAssignment      = "ZoneAssignment"
)

// ActivityMutation represents an operation that mutates the Activity nodes in the graph.
type ActivityMutation struct {
	config
	op            Op
	typ           string
	id            *int
	activity_type *activity.ActivityType
	details       *string
	occurred_at   *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	zone          *int
	clearedzone   bool
	agent         *int
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*Activity, error)
	predicates    []predicate.Activity
}

var _ ent.Mutation = (*ActivityMutation)(nil)

// activityOption allows management of the mutation configuration using functional options.
type activityOption func(*ActivityMutation)

// newActivityMutation creates new mutation for the Activity entity.
func newActivityMutation(c config, op Op, opts ...activityOption) *ActivityMutation {
	m := &ActivityMutation{
		config:        c,
		op:            op,
		typ:           TypeActivity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityID sets the ID field of the mutation.
func withActivityID(id int) activityOption {
	return func(m *ActivityMutation) {
		var (
			err   error
			once  sync.Once
			value *Activity
		)
		m.oldValue = func(ctx context.Context) (*Activity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Activity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivity sets the old Activity of the mutation.
func withActivity(node *Activity) activityOption {
	return func(m *ActivityMutation) {
		m.oldValue = func(context.Context) (*Activity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Activity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetZoneID sets the "zone_id" field.
func (m *ActivityMutation) SetZoneID(i int) {
	m.zone = &i
}

// ZoneID returns the value of the "zone_id" field in the mutation.
func (m *ActivityMutation) ZoneID() (r int, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneID returns the old "zone_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldZoneID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneID: %w", err)
	}
	return oldValue.ZoneID, nil
}

// ResetZoneID resets all changes to the "zone_id" field.
func (m *ActivityMutation) ResetZoneID() {
	m.zone = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ActivityMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ActivityMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ActivityMutation) ResetAgentID() {
	m.agent = nil
}

// SetActivityType sets the "activity_type" field.
func (m *ActivityMutation) SetActivityType(at activity.ActivityType) {
	m.activity_type = &at
}

// ActivityType returns the value of the "activity_type" field in the mutation.
func (m *ActivityMutation) ActivityType() (r activity.ActivityType, exists bool) {
	v := m.activity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityType returns the old "activity_type" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldActivityType(ctx context.Context) (v activity.ActivityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityType: %w", err)
	}
	return oldValue.ActivityType, nil
}

// ResetActivityType resets all changes to the "activity_type" field.
func (m *ActivityMutation) ResetActivityType() {
	m.activity_type = nil
}

// SetDetails sets the "details" field.
func (m *ActivityMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *ActivityMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ActivityMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[activity.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ActivityMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[activity.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ActivityMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, activity.FieldDetails)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *ActivityMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *ActivityMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *ActivityMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearZone clears the "zone" edge to the Zone entity.
func (m *ActivityMutation) ClearZone() {
	m.clearedzone = true
	m.clearedFields[activity.FieldZoneID] = struct{}{}
}

// ZoneCleared reports if the "zone" edge to the Zone entity was cleared.
func (m *ActivityMutation) ZoneCleared() bool {
	return m.clearedzone
}

// ZoneIDs returns the "zone" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ZoneID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) ZoneIDs() (ids []int) {
	if id := m.zone; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetZone resets all changes to the "zone" edge.
func (m *ActivityMutation) ResetZone() {
	m.zone = nil
	m.clearedzone = false
}

// ClearAgent clears the "agent" edge to the User entity.
func (m *ActivityMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[activity.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the User entity was cleared.
func (m *ActivityMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *ActivityMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the ActivityMutation builder.
func (m *ActivityMutation) Where(ps ...predicate.Activity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Activity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Activity).
func (m *ActivityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.zone != nil {
		fields = append(fields, activity.FieldZoneID)
	}
	if m.agent != nil {
		fields = append(fields, activity.FieldAgentID)
	}
	if m.activity_type != nil {
		fields = append(fields, activity.FieldActivityType)
	}
	if m.details != nil {
		fields = append(fields, activity.FieldDetails)
	}
	if m.occurred_at != nil {
		fields = append(fields, activity.FieldOccurredAt)
	}
	if m.created_at != nil {
		fields = append(fields, activity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activity.FieldZoneID:
		return m.ZoneID()
	case activity.FieldAgentID:
		return m.AgentID()
	case activity.FieldActivityType:
		return m.ActivityType()
	case activity.FieldDetails:
		return m.Details()
	case activity.FieldOccurredAt:
		return m.OccurredAt()
	case activity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activity.FieldZoneID:
		return m.OldZoneID(ctx)
	case activity.FieldAgentID:
		return m.OldAgentID(ctx)
	case activity.FieldActivityType:
		return m.OldActivityType(ctx)
	case activity.FieldDetails:
		return m.OldDetails(ctx)
	case activity.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case activity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Activity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activity.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneID(v)
		return nil
	case activity.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case activity.FieldActivityType:
		v, ok := value.(activity.ActivityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityType(v)
		return nil
	case activity.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case activity.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case activity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Activity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activity.FieldDetails) {
		fields = append(fields, activity.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityMutation) ClearField(name string) error {
	switch name {
	case activity.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown Activity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityMutation) ResetField(name string) error {
	switch name {
	case activity.FieldZoneID:
		m.ResetZoneID()
		return nil
	case activity.FieldAgentID:
		m.ResetAgentID()
		return nil
	case activity.FieldActivityType:
		m.ResetActivityType()
		return nil
	case activity.FieldDetails:
		m.ResetDetails()
		return nil
	case activity.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case activity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.zone != nil {
		edges = append(edges, activity.EdgeZone)
	}
	if m.agent != nil {
		edges = append(edges, activity.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case activity.EdgeZone:
		if id := m.zone; id != nil {
			return []ent.Value{*id}
		}
	case activity.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedzone {
		edges = append(edges, activity.EdgeZone)
	}
	if m.clearedagent {
		edges = append(edges, activity.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityMutation) EdgeCleared(name string) bool {
	switch name {
	case activity.EdgeZone:
		return m.clearedzone
	case activity.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityMutation) ClearEdge(name string) error {
	switch name {
	case activity.EdgeZone:
		m.ClearZone()
		return nil
	case activity.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Activity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityMutation) ResetEdge(name string) error {
	switch name {
	case activity.EdgeZone:
		m.ResetZone()
		return nil
	case activity.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Activity edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	action        *auditlog.Action
	resource_type *string
	resource_id   *string
	ip_address    *string
	user_agent    *string
	metadata      *map[string]interface{}
	severity      *auditlog.Severity
	description   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id int) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AuditLogMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditLogMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *AuditLogMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[auditlog.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *AuditLogMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditLogMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, auditlog.FieldUserID)
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(a auditlog.Action) {
	m.action = &a
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r auditlog.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v auditlog.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *AuditLogMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[auditlog.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, auditlog.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *AuditLogMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[auditlog.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, auditlog.FieldResourceID)
}

// SetIPAddress sets the "ip_address" field.
func (m *AuditLogMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *AuditLogMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *AuditLogMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[auditlog.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *AuditLogMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *AuditLogMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, auditlog.FieldIPAddress)
}

// SetUserAgent sets the "user_agent" field.
func (m *AuditLogMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *AuditLogMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *AuditLogMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[auditlog.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *AuditLogMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *AuditLogMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, auditlog.FieldUserAgent)
}

// SetMetadata sets the "metadata" field.
func (m *AuditLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AuditLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AuditLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[auditlog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AuditLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AuditLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, auditlog.FieldMetadata)
}

// SetSeverity sets the "severity" field.
func (m *AuditLogMutation) SetSeverity(a auditlog.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AuditLogMutation) Severity() (r auditlog.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldSeverity(ctx context.Context) (v auditlog.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AuditLogMutation) ResetSeverity() {
	m.severity = nil
}

// SetDescription sets the "description" field.
func (m *AuditLogMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AuditLogMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AuditLogMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[auditlog.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AuditLogMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AuditLogMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, auditlog.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *AuditLogMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[auditlog.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AuditLogMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AuditLogMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AuditLogMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user != nil {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.ip_address != nil {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	if m.user_agent != nil {
		fields = append(fields, auditlog.FieldUserAgent)
	}
	if m.metadata != nil {
		fields = append(fields, auditlog.FieldMetadata)
	}
	if m.severity != nil {
		fields = append(fields, auditlog.FieldSeverity)
	}
	if m.description != nil {
		fields = append(fields, auditlog.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldUserID:
		return m.UserID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldIPAddress:
		return m.IPAddress()
	case auditlog.FieldUserAgent:
		return m.UserAgent()
	case auditlog.FieldMetadata:
		return m.Metadata()
	case auditlog.FieldSeverity:
		return m.Severity()
	case auditlog.FieldDescription:
		return m.Description()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldUserID:
		return m.OldUserID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case auditlog.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case auditlog.FieldMetadata:
		return m.OldMetadata(ctx)
	case auditlog.FieldSeverity:
		return m.OldSeverity(ctx)
	case auditlog.FieldDescription:
		return m.OldDescription(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(auditlog.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case auditlog.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case auditlog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case auditlog.FieldSeverity:
		v, ok := value.(auditlog.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case auditlog.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldUserID) {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.FieldCleared(auditlog.FieldResourceType) {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.FieldCleared(auditlog.FieldResourceID) {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.FieldCleared(auditlog.FieldIPAddress) {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	if m.FieldCleared(auditlog.FieldUserAgent) {
		fields = append(fields, auditlog.FieldUserAgent)
	}
	if m.FieldCleared(auditlog.FieldMetadata) {
		fields = append(fields, auditlog.FieldMetadata)
	}
	if m.FieldCleared(auditlog.FieldDescription) {
		fields = append(fields, auditlog.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldUserID:
		m.ClearUserID()
		return nil
	case auditlog.FieldResourceType:
		m.ClearResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ClearResourceID()
		return nil
	case auditlog.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case auditlog.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case auditlog.FieldMetadata:
		m.ClearMetadata()
		return nil
	case auditlog.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldUserID:
		m.ResetUserID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case auditlog.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case auditlog.FieldMetadata:
		m.ResetMetadata()
		return nil
	case auditlog.FieldSeverity:
		m.ResetSeverity()
		return nil
	case auditlog.FieldDescription:
		m.ResetDescription()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, auditlog.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlog.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, auditlog.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlog.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	switch name {
	case auditlog.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	switch name {
	case auditlog.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op              Op
	typ             string
	id              *int
	status          *lead.Status
	notes           *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	zone            *int
	clearedzone     bool
	resident        *int
	clearedresident bool
	agent           *int
	clearedagent    bool
	done            bool
	oldValue        func(context.Context) (*Lead, error)
	predicates      []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetZoneID sets the "zone_id" field.
func (m *LeadMutation) SetZoneID(i int) {
	m.zone = &i
}

// ZoneID returns the value of the "zone_id" field in the mutation.
func (m *LeadMutation) ZoneID() (r int, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneID returns the old "zone_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldZoneID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneID: %w", err)
	}
	return oldValue.ZoneID, nil
}

// ResetZoneID resets all changes to the "zone_id" field.
func (m *LeadMutation) ResetZoneID() {
	m.zone = nil
}

// SetResidentID sets the "resident_id" field.
func (m *LeadMutation) SetResidentID(i int) {
	m.resident = &i
}

// ResidentID returns the value of the "resident_id" field in the mutation.
func (m *LeadMutation) ResidentID() (r int, exists bool) {
	v := m.resident
	if v == nil {
		return
	}
	return *v, true
}

// OldResidentID returns the old "resident_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldResidentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResidentID: %w", err)
	}
	return oldValue.ResidentID, nil
}

// ClearResidentID clears the value of the "resident_id" field.
func (m *LeadMutation) ClearResidentID() {
	m.resident = nil
	m.clearedFields[lead.FieldResidentID] = struct{}{}
}

// ResidentIDCleared returns if the "resident_id" field was cleared in this mutation.
func (m *LeadMutation) ResidentIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldResidentID]
	return ok
}

// ResetResidentID resets all changes to the "resident_id" field.
func (m *LeadMutation) ResetResidentID() {
	m.resident = nil
	delete(m.clearedFields, lead.FieldResidentID)
}

// SetAgentID sets the "agent_id" field.
func (m *LeadMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *LeadMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *LeadMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[lead.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *LeadMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *LeadMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, lead.FieldAgentID)
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *LeadMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *LeadMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *LeadMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[lead.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *LeadMutation) NotesCleared() bool {
	_, ok := m.clearedFields[lead.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *LeadMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, lead.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearZone clears the "zone" edge to the Zone entity.
func (m *LeadMutation) ClearZone() {
	m.clearedzone = true
	m.clearedFields[lead.FieldZoneID] = struct{}{}
}

// ZoneCleared reports if the "zone" edge to the Zone entity was cleared.
func (m *LeadMutation) ZoneCleared() bool {
	return m.clearedzone
}

// ZoneIDs returns the "zone" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ZoneID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) ZoneIDs() (ids []int) {
	if id := m.zone; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetZone resets all changes to the "zone" edge.
func (m *LeadMutation) ResetZone() {
	m.zone = nil
	m.clearedzone = false
}

// ClearResident clears the "resident" edge to the Resident entity.
func (m *LeadMutation) ClearResident() {
	m.clearedresident = true
	m.clearedFields[lead.FieldResidentID] = struct{}{}
}

// ResidentCleared reports if the "resident" edge to the Resident entity was cleared.
func (m *LeadMutation) ResidentCleared() bool {
	return m.ResidentIDCleared() || m.clearedresident
}

// ResidentIDs returns the "resident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResidentID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) ResidentIDs() (ids []int) {
	if id := m.resident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResident resets all changes to the "resident" edge.
func (m *LeadMutation) ResetResident() {
	m.resident = nil
	m.clearedresident = false
}

// ClearAgent clears the "agent" edge to the User entity.
func (m *LeadMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[lead.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the User entity was cleared.
func (m *LeadMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *LeadMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.zone != nil {
		fields = append(fields, lead.FieldZoneID)
	}
	if m.resident != nil {
		fields = append(fields, lead.FieldResidentID)
	}
	if m.agent != nil {
		fields = append(fields, lead.FieldAgentID)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, lead.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldZoneID:
		return m.ZoneID()
	case lead.FieldResidentID:
		return m.ResidentID()
	case lead.FieldAgentID:
		return m.AgentID()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldNotes:
		return m.Notes()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldZoneID:
		return m.OldZoneID(ctx)
	case lead.FieldResidentID:
		return m.OldResidentID(ctx)
	case lead.FieldAgentID:
		return m.OldAgentID(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldNotes:
		return m.OldNotes(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneID(v)
		return nil
	case lead.FieldResidentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResidentID(v)
		return nil
	case lead.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldResidentID) {
		fields = append(fields, lead.FieldResidentID)
	}
	if m.FieldCleared(lead.FieldAgentID) {
		fields = append(fields, lead.FieldAgentID)
	}
	if m.FieldCleared(lead.FieldNotes) {
		fields = append(fields, lead.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldResidentID:
		m.ClearResidentID()
		return nil
	case lead.FieldAgentID:
		m.ClearAgentID()
		return nil
	case lead.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldZoneID:
		m.ResetZoneID()
		return nil
	case lead.FieldResidentID:
		m.ResetResidentID()
		return nil
	case lead.FieldAgentID:
		m.ResetAgentID()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldNotes:
		m.ResetNotes()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.zone != nil {
		edges = append(edges, lead.EdgeZone)
	}
	if m.resident != nil {
		edges = append(edges, lead.EdgeResident)
	}
	if m.agent != nil {
		edges = append(edges, lead.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeZone:
		if id := m.zone; id != nil {
			return []ent.Value{*id}
		}
	case lead.EdgeResident:
		if id := m.resident; id != nil {
			return []ent.Value{*id}
		}
	case lead.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedzone {
		edges = append(edges, lead.EdgeZone)
	}
	if m.clearedresident {
		edges = append(edges, lead.EdgeResident)
	}
	if m.clearedagent {
		edges = append(edges, lead.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeZone:
		return m.clearedzone
	case lead.EdgeResident:
		return m.clearedresident
	case lead.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	case lead.EdgeZone:
		m.ClearZone()
		return nil
	case lead.EdgeResident:
		m.ClearResident()
		return nil
	case lead.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeZone:
		m.ResetZone()
		return nil
	case lead.EdgeResident:
		m.ResetResident()
		return nil
	case lead.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// ResidentMutation represents an operation that mutates the Resident nodes in the graph.
type ResidentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	address       *string
	phone         *string
	visit_status  *resident.VisitStatus
	notes         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	zone          *int
	clearedzone   bool
	leads         map[int]struct{}
	removedleads  map[int]struct{}
	clearedleads  bool
	done          bool
	oldValue      func(context.Context) (*Resident, error)
	predicates    []predicate.Resident
}

var _ ent.Mutation = (*ResidentMutation)(nil)

// residentOption allows management of the mutation configuration using functional options.
type residentOption func(*ResidentMutation)

// newResidentMutation creates new mutation for the Resident entity.
func newResidentMutation(c config, op Op, opts ...residentOption) *ResidentMutation {
	m := &ResidentMutation{
		config:        c,
		op:            op,
		typ:           TypeResident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResidentID sets the ID field of the mutation.
func withResidentID(id int) residentOption {
	return func(m *ResidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Resident
		)
		m.oldValue = func(ctx context.Context) (*Resident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Resident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResident sets the old Resident of the mutation.
func withResident(node *Resident) residentOption {
	return func(m *ResidentMutation) {
		m.oldValue = func(context.Context) (*Resident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResidentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResidentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Resident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetZoneID sets the "zone_id" field.
func (m *ResidentMutation) SetZoneID(i int) {
	m.zone = &i
}

// ZoneID returns the value of the "zone_id" field in the mutation.
func (m *ResidentMutation) ZoneID() (r int, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneID returns the old "zone_id" field's value of the Resident entity.
// If the Resident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResidentMutation) OldZoneID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneID: %w", err)
	}
	return oldValue.ZoneID, nil
}

// ResetZoneID resets all changes to the "zone_id" field.
func (m *ResidentMutation) ResetZoneID() {
	m.zone = nil
}

// SetName sets the "name" field.
func (m *ResidentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ResidentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Resident entity.
// If the Resident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResidentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *ResidentMutation) ClearName() {
	m.name = nil
	m.clearedFields[resident.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ResidentMutation) NameCleared() bool {
	_, ok := m.clearedFields[resident.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ResidentMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, resident.FieldName)
}

// SetAddress sets the "address" field.
func (m *ResidentMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ResidentMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Resident entity.
// If the Resident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResidentMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *ResidentMutation) ResetAddress() {
	m.address = nil
}

// SetPhone sets the "phone" field.
func (m *ResidentMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ResidentMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Resident entity.
// If the Resident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResidentMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ResidentMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[resident.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ResidentMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[resident.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ResidentMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, resident.FieldPhone)
}

// SetVisitStatus sets the "visit_status" field.
func (m *ResidentMutation) SetVisitStatus(rs resident.VisitStatus) {
	m.visit_status = &rs
}

// VisitStatus returns the value of the "visit_status" field in the mutation.
func (m *ResidentMutation) VisitStatus() (r resident.VisitStatus, exists bool) {
	v := m.visit_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitStatus returns the old "visit_status" field's value of the Resident entity.
// If the Resident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResidentMutation) OldVisitStatus(ctx context.Context) (v resident.VisitStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitStatus: %w", err)
	}
	return oldValue.VisitStatus, nil
}

// ResetVisitStatus resets all changes to the "visit_status" field.
func (m *ResidentMutation) ResetVisitStatus() {
	m.visit_status = nil
}

// SetNotes sets the "notes" field.
func (m *ResidentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ResidentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Resident entity.
// If the Resident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResidentMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ResidentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[resident.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ResidentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[resident.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ResidentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, resident.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResidentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResidentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Resident entity.
// If the Resident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResidentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResidentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ResidentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ResidentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Resident entity.
// If the Resident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResidentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ResidentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearZone clears the "zone" edge to the Zone entity.
func (m *ResidentMutation) ClearZone() {
	m.clearedzone = true
	m.clearedFields[resident.FieldZoneID] = struct{}{}
}

// ZoneCleared reports if the "zone" edge to the Zone entity was cleared.
func (m *ResidentMutation) ZoneCleared() bool {
	return m.clearedzone
}

// ZoneIDs returns the "zone" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ZoneID instead. It exists only for internal usage by the builders.
func (m *ResidentMutation) ZoneIDs() (ids []int) {
	if id := m.zone; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetZone resets all changes to the "zone" edge.
func (m *ResidentMutation) ResetZone() {
	m.zone = nil
	m.clearedzone = false
}

// AddLeadIDs adds the "leads" edge to the Lead entity by ids.
func (m *ResidentMutation) AddLeadIDs(ids ...int) {
	if m.leads == nil {
		m.leads = make(map[int]struct{})
	}
	for i := range ids {
		m.leads[ids[i]] = struct{}{}
	}
}

// ClearLeads clears the "leads" edge to the Lead entity.
func (m *ResidentMutation) ClearLeads() {
	m.clearedleads = true
}

// LeadsCleared reports if the "leads" edge to the Lead entity was cleared.
func (m *ResidentMutation) LeadsCleared() bool {
	return m.clearedleads
}

// RemoveLeadIDs removes the "leads" edge to the Lead entity by IDs.
func (m *ResidentMutation) RemoveLeadIDs(ids ...int) {
	if m.removedleads == nil {
		m.removedleads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.leads, ids[i])
		m.removedleads[ids[i]] = struct{}{}
	}
}

// RemovedLeads returns the removed IDs of the "leads" edge to the Lead entity.
func (m *ResidentMutation) RemovedLeadsIDs() (ids []int) {
	for id := range m.removedleads {
		ids = append(ids, id)
	}
	return
}

// LeadsIDs returns the "leads" edge IDs in the mutation.
func (m *ResidentMutation) LeadsIDs() (ids []int) {
	for id := range m.leads {
		ids = append(ids, id)
	}
	return
}

// ResetLeads resets all changes to the "leads" edge.
func (m *ResidentMutation) ResetLeads() {
	m.leads = nil
	m.clearedleads = false
	m.removedleads = nil
}

// Where appends a list predicates to the ResidentMutation builder.
func (m *ResidentMutation) Where(ps ...predicate.Resident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Resident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Resident).
func (m *ResidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResidentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.zone != nil {
		fields = append(fields, resident.FieldZoneID)
	}
	if m.name != nil {
		fields = append(fields, resident.FieldName)
	}
	if m.address != nil {
		fields = append(fields, resident.FieldAddress)
	}
	if m.phone != nil {
		fields = append(fields, resident.FieldPhone)
	}
	if m.visit_status != nil {
		fields = append(fields, resident.FieldVisitStatus)
	}
	if m.notes != nil {
		fields = append(fields, resident.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, resident.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, resident.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resident.FieldZoneID:
		return m.ZoneID()
	case resident.FieldName:
		return m.Name()
	case resident.FieldAddress:
		return m.Address()
	case resident.FieldPhone:
		return m.Phone()
	case resident.FieldVisitStatus:
		return m.VisitStatus()
	case resident.FieldNotes:
		return m.Notes()
	case resident.FieldCreatedAt:
		return m.CreatedAt()
	case resident.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resident.FieldZoneID:
		return m.OldZoneID(ctx)
	case resident.FieldName:
		return m.OldName(ctx)
	case resident.FieldAddress:
		return m.OldAddress(ctx)
	case resident.FieldPhone:
		return m.OldPhone(ctx)
	case resident.FieldVisitStatus:
		return m.OldVisitStatus(ctx)
	case resident.FieldNotes:
		return m.OldNotes(ctx)
	case resident.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case resident.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Resident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resident.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneID(v)
		return nil
	case resident.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case resident.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case resident.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case resident.FieldVisitStatus:
		v, ok := value.(resident.VisitStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitStatus(v)
		return nil
	case resident.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case resident.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case resident.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Resident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResidentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResidentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Resident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resident.FieldName) {
		fields = append(fields, resident.FieldName)
	}
	if m.FieldCleared(resident.FieldPhone) {
		fields = append(fields, resident.FieldPhone)
	}
	if m.FieldCleared(resident.FieldNotes) {
		fields = append(fields, resident.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResidentMutation) ClearField(name string) error {
	switch name {
	case resident.FieldName:
		m.ClearName()
		return nil
	case resident.FieldPhone:
		m.ClearPhone()
		return nil
	case resident.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Resident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResidentMutation) ResetField(name string) error {
	switch name {
	case resident.FieldZoneID:
		m.ResetZoneID()
		return nil
	case resident.FieldName:
		m.ResetName()
		return nil
	case resident.FieldAddress:
		m.ResetAddress()
		return nil
	case resident.FieldPhone:
		m.ResetPhone()
		return nil
	case resident.FieldVisitStatus:
		m.ResetVisitStatus()
		return nil
	case resident.FieldNotes:
		m.ResetNotes()
		return nil
	case resident.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case resident.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Resident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.zone != nil {
		edges = append(edges, resident.EdgeZone)
	}
	if m.leads != nil {
		edges = append(edges, resident.EdgeLeads)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResidentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case resident.EdgeZone:
		if id := m.zone; id != nil {
			return []ent.Value{*id}
		}
	case resident.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.leads))
		for id := range m.leads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedleads != nil {
		edges = append(edges, resident.EdgeLeads)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResidentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case resident.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.removedleads))
		for id := range m.removedleads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedzone {
		edges = append(edges, resident.EdgeZone)
	}
	if m.clearedleads {
		edges = append(edges, resident.EdgeLeads)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResidentMutation) EdgeCleared(name string) bool {
	switch name {
	case resident.EdgeZone:
		return m.clearedzone
	case resident.EdgeLeads:
		return m.clearedleads
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResidentMutation) ClearEdge(name string) error {
	switch name {
	case resident.EdgeZone:
		m.ClearZone()
		return nil
	}
	return fmt.Errorf("unknown Resident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResidentMutation) ResetEdge(name string) error {
	switch name {
	case resident.EdgeZone:
		m.ResetZone()
		return nil
	case resident.EdgeLeads:
		m.ResetLeads()
		return nil
	}
	return fmt.Errorf("unknown Resident edge %s", name)
}

// RouteMutation represents an operation that mutates the Route nodes in the graph.
type RouteMutation struct {
	config
	op              Op
	typ             string
	id              *int
	name            *string
	waypoints       *[][]float64
	appendwaypoints [][]float64
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	zone            *int
	clearedzone     bool
	agent           *int
	clearedagent    bool
	done            bool
	oldValue        func(context.Context) (*Route, error)
	predicates      []predicate.Route
}

var _ ent.Mutation = (*RouteMutation)(nil)

// routeOption allows management of the mutation configuration using functional options.
type routeOption func(*RouteMutation)

// newRouteMutation creates new mutation for the Route entity.
func newRouteMutation(c config, op Op, opts ...routeOption) *RouteMutation {
	m := &RouteMutation{
		config:        c,
		op:            op,
		typ:           TypeRoute,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRouteID sets the ID field of the mutation.
func withRouteID(id int) routeOption {
	return func(m *RouteMutation) {
		var (
			err   error
			once  sync.Once
			value *Route
		)
		m.oldValue = func(ctx context.Context) (*Route, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Route.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoute sets the old Route of the mutation.
func withRoute(node *Route) routeOption {
	return func(m *RouteMutation) {
		m.oldValue = func(context.Context) (*Route, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RouteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RouteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RouteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RouteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Route.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetZoneID sets the "zone_id" field.
func (m *RouteMutation) SetZoneID(i int) {
	m.zone = &i
}

// ZoneID returns the value of the "zone_id" field in the mutation.
func (m *RouteMutation) ZoneID() (r int, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneID returns the old "zone_id" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldZoneID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneID: %w", err)
	}
	return oldValue.ZoneID, nil
}

// ResetZoneID resets all changes to the "zone_id" field.
func (m *RouteMutation) ResetZoneID() {
	m.zone = nil
}

// SetAgentID sets the "agent_id" field.
func (m *RouteMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *RouteMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *RouteMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[route.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *RouteMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[route.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *RouteMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, route.FieldAgentID)
}

// SetName sets the "name" field.
func (m *RouteMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RouteMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RouteMutation) ResetName() {
	m.name = nil
}

// SetWaypoints sets the "waypoints" field.
func (m *RouteMutation) SetWaypoints(f [][]float64) {
	m.waypoints = &f
	m.appendwaypoints = nil
}

// Waypoints returns the value of the "waypoints" field in the mutation.
func (m *RouteMutation) Waypoints() (r [][]float64, exists bool) {
	v := m.waypoints
	if v == nil {
		return
	}
	return *v, true
}

// OldWaypoints returns the old "waypoints" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldWaypoints(ctx context.Context) (v [][]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaypoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaypoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaypoints: %w", err)
	}
	return oldValue.Waypoints, nil
}

// AppendWaypoints adds f to the "waypoints" field.
func (m *RouteMutation) AppendWaypoints(f [][]float64) {
	m.appendwaypoints = append(m.appendwaypoints, f...)
}

// AppendedWaypoints returns the list of values that were appended to the "waypoints" field in this mutation.
func (m *RouteMutation) AppendedWaypoints() ([][]float64, bool) {
	if len(m.appendwaypoints) == 0 {
		return nil, false
	}
	return m.appendwaypoints, true
}

// ClearWaypoints clears the value of the "waypoints" field.
func (m *RouteMutation) ClearWaypoints() {
	m.waypoints = nil
	m.appendwaypoints = nil
	m.clearedFields[route.FieldWaypoints] = struct{}{}
}

// WaypointsCleared returns if the "waypoints" field was cleared in this mutation.
func (m *RouteMutation) WaypointsCleared() bool {
	_, ok := m.clearedFields[route.FieldWaypoints]
	return ok
}

// ResetWaypoints resets all changes to the "waypoints" field.
func (m *RouteMutation) ResetWaypoints() {
	m.waypoints = nil
	m.appendwaypoints = nil
	delete(m.clearedFields, route.FieldWaypoints)
}

// SetCreatedAt sets the "created_at" field.
func (m *RouteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RouteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RouteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RouteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RouteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RouteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearZone clears the "zone" edge to the Zone entity.
func (m *RouteMutation) ClearZone() {
	m.clearedzone = true
	m.clearedFields[route.FieldZoneID] = struct{}{}
}

// ZoneCleared reports if the "zone" edge to the Zone entity was cleared.
func (m *RouteMutation) ZoneCleared() bool {
	return m.clearedzone
}

// ZoneIDs returns the "zone" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ZoneID instead. It exists only for internal usage by the builders.
func (m *RouteMutation) ZoneIDs() (ids []int) {
	if id := m.zone; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetZone resets all changes to the "zone" edge.
func (m *RouteMutation) ResetZone() {
	m.zone = nil
	m.clearedzone = false
}

// ClearAgent clears the "agent" edge to the User entity.
func (m *RouteMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[route.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the User entity was cleared.
func (m *RouteMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *RouteMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *RouteMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the RouteMutation builder.
func (m *RouteMutation) Where(ps ...predicate.Route) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RouteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RouteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Route, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RouteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RouteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Route).
func (m *RouteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RouteMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.zone != nil {
		fields = append(fields, route.FieldZoneID)
	}
	if m.agent != nil {
		fields = append(fields, route.FieldAgentID)
	}
	if m.name != nil {
		fields = append(fields, route.FieldName)
	}
	if m.waypoints != nil {
		fields = append(fields, route.FieldWaypoints)
	}
	if m.created_at != nil {
		fields = append(fields, route.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, route.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RouteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case route.FieldZoneID:
		return m.ZoneID()
	case route.FieldAgentID:
		return m.AgentID()
	case route.FieldName:
		return m.Name()
	case route.FieldWaypoints:
		return m.Waypoints()
	case route.FieldCreatedAt:
		return m.CreatedAt()
	case route.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RouteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case route.FieldZoneID:
		return m.OldZoneID(ctx)
	case route.FieldAgentID:
		return m.OldAgentID(ctx)
	case route.FieldName:
		return m.OldName(ctx)
	case route.FieldWaypoints:
		return m.OldWaypoints(ctx)
	case route.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case route.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Route field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RouteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case route.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneID(v)
		return nil
	case route.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case route.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case route.FieldWaypoints:
		v, ok := value.([][]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaypoints(v)
		return nil
	case route.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case route.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Route field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RouteMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RouteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RouteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Route numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RouteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(route.FieldAgentID) {
		fields = append(fields, route.FieldAgentID)
	}
	if m.FieldCleared(route.FieldWaypoints) {
		fields = append(fields, route.FieldWaypoints)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RouteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RouteMutation) ClearField(name string) error {
	switch name {
	case route.FieldAgentID:
		m.ClearAgentID()
		return nil
	case route.FieldWaypoints:
		m.ClearWaypoints()
		return nil
	}
	return fmt.Errorf("unknown Route nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RouteMutation) ResetField(name string) error {
	switch name {
	case route.FieldZoneID:
		m.ResetZoneID()
		return nil
	case route.FieldAgentID:
		m.ResetAgentID()
		return nil
	case route.FieldName:
		m.ResetName()
		return nil
	case route.FieldWaypoints:
		m.ResetWaypoints()
		return nil
	case route.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case route.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Route field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RouteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.zone != nil {
		edges = append(edges, route.EdgeZone)
	}
	if m.agent != nil {
		edges = append(edges, route.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RouteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case route.EdgeZone:
		if id := m.zone; id != nil {
			return []ent.Value{*id}
		}
	case route.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RouteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RouteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RouteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedzone {
		edges = append(edges, route.EdgeZone)
	}
	if m.clearedagent {
		edges = append(edges, route.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RouteMutation) EdgeCleared(name string) bool {
	switch name {
	case route.EdgeZone:
		return m.clearedzone
	case route.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RouteMutation) ClearEdge(name string) error {
	switch name {
	case route.EdgeZone:
		m.ClearZone()
		return nil
	case route.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Route unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RouteMutation) ResetEdge(name string) error {
	switch name {
	case route.EdgeZone:
		m.ResetZone()
		return nil
	case route.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Route edge %s", name)
}

// ScheduledAssignmentMutation represents an operation that mutates the ScheduledAssignment nodes in the graph.
type ScheduledAssignmentMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	effective_from     *time.Time
	scheduled_date     *time.Time
	status             *scheduledassignment.Status
	activated_at       *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	zone               *int
	clearedzone        bool
	agent              *int
	clearedagent       bool
	team               *int
	clearedteam        bool
	assigned_by        *int
	clearedassigned_by bool
	done               bool
	oldValue           func(context.Context) (*ScheduledAssignment, error)
	predicates         []predicate.ScheduledAssignment
}

var _ ent.Mutation = (*ScheduledAssignmentMutation)(nil)

// scheduledassignmentOption allows management of the mutation configuration using functional options.
type scheduledassignmentOption func(*ScheduledAssignmentMutation)

// newScheduledAssignmentMutation creates new mutation for the ScheduledAssignment entity.
func newScheduledAssignmentMutation(c config, op Op, opts ...scheduledassignmentOption) *ScheduledAssignmentMutation {
	m := &ScheduledAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledAssignmentID sets the ID field of the mutation.
func withScheduledAssignmentID(id int) scheduledassignmentOption {
	return func(m *ScheduledAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledAssignment
		)
		m.oldValue = func(ctx context.Context) (*ScheduledAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledAssignment sets the old ScheduledAssignment of the mutation.
func withScheduledAssignment(node *ScheduledAssignment) scheduledassignmentOption {
	return func(m *ScheduledAssignmentMutation) {
		m.oldValue = func(context.Context) (*ScheduledAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledAssignmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledAssignmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetZoneID sets the "zone_id" field.
func (m *ScheduledAssignmentMutation) SetZoneID(i int) {
	m.zone = &i
}

// ZoneID returns the value of the "zone_id" field in the mutation.
func (m *ScheduledAssignmentMutation) ZoneID() (r int, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneID returns the old "zone_id" field's value of the ScheduledAssignment entity.
// If the ScheduledAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledAssignmentMutation) OldZoneID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneID: %w", err)
	}
	return oldValue.ZoneID, nil
}

// ResetZoneID resets all changes to the "zone_id" field.
func (m *ScheduledAssignmentMutation) ResetZoneID() {
	m.zone = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ScheduledAssignmentMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ScheduledAssignmentMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ScheduledAssignment entity.
// If the ScheduledAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledAssignmentMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *ScheduledAssignmentMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[scheduledassignment.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *ScheduledAssignmentMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[scheduledassignment.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ScheduledAssignmentMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, scheduledassignment.FieldAgentID)
}

// SetTeamID sets the "team_id" field.
func (m *ScheduledAssignmentMutation) SetTeamID(i int) {
	m.team = &i
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *ScheduledAssignmentMutation) TeamID() (r int, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the ScheduledAssignment entity.
// If the ScheduledAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledAssignmentMutation) OldTeamID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ClearTeamID clears the value of the "team_id" field.
func (m *ScheduledAssignmentMutation) ClearTeamID() {
	m.team = nil
	m.clearedFields[scheduledassignment.FieldTeamID] = struct{}{}
}

// TeamIDCleared returns if the "team_id" field was cleared in this mutation.
func (m *ScheduledAssignmentMutation) TeamIDCleared() bool {
	_, ok := m.clearedFields[scheduledassignment.FieldTeamID]
	return ok
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *ScheduledAssignmentMutation) ResetTeamID() {
	m.team = nil
	delete(m.clearedFields, scheduledassignment.FieldTeamID)
}

// SetAssignedByUserID sets the "assigned_by_user_id" field.
func (m *ScheduledAssignmentMutation) SetAssignedByUserID(i int) {
	m.assigned_by = &i
}

// AssignedByUserID returns the value of the "assigned_by_user_id" field in the mutation.
func (m *ScheduledAssignmentMutation) AssignedByUserID() (r int, exists bool) {
	v := m.assigned_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedByUserID returns the old "assigned_by_user_id" field's value of the ScheduledAssignment entity.
// If the ScheduledAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledAssignmentMutation) OldAssignedByUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedByUserID: %w", err)
	}
	return oldValue.AssignedByUserID, nil
}

// ClearAssignedByUserID clears the value of the "assigned_by_user_id" field.
func (m *ScheduledAssignmentMutation) ClearAssignedByUserID() {
	m.assigned_by = nil
	m.clearedFields[scheduledassignment.FieldAssignedByUserID] = struct{}{}
}

// AssignedByUserIDCleared returns if the "assigned_by_user_id" field was cleared in this mutation.
func (m *ScheduledAssignmentMutation) AssignedByUserIDCleared() bool {
	_, ok := m.clearedFields[scheduledassignment.FieldAssignedByUserID]
	return ok
}

// ResetAssignedByUserID resets all changes to the "assigned_by_user_id" field.
func (m *ScheduledAssignmentMutation) ResetAssignedByUserID() {
	m.assigned_by = nil
	delete(m.clearedFields, scheduledassignment.FieldAssignedByUserID)
}

// SetEffectiveFrom sets the "effective_from" field.
func (m *ScheduledAssignmentMutation) SetEffectiveFrom(t time.Time) {
	m.effective_from = &t
}

// EffectiveFrom returns the value of the "effective_from" field in the mutation.
func (m *ScheduledAssignmentMutation) EffectiveFrom() (r time.Time, exists bool) {
	v := m.effective_from
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveFrom returns the old "effective_from" field's value of the ScheduledAssignment entity.
// If the ScheduledAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledAssignmentMutation) OldEffectiveFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveFrom: %w", err)
	}
	return oldValue.EffectiveFrom, nil
}

// ResetEffectiveFrom resets all changes to the "effective_from" field.
func (m *ScheduledAssignmentMutation) ResetEffectiveFrom() {
	m.effective_from = nil
}

// SetScheduledDate sets the "scheduled_date" field.
func (m *ScheduledAssignmentMutation) SetScheduledDate(t time.Time) {
	m.scheduled_date = &t
}

// ScheduledDate returns the value of the "scheduled_date" field in the mutation.
func (m *ScheduledAssignmentMutation) ScheduledDate() (r time.Time, exists bool) {
	v := m.scheduled_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledDate returns the old "scheduled_date" field's value of the ScheduledAssignment entity.
// If the ScheduledAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledAssignmentMutation) OldScheduledDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledDate: %w", err)
	}
	return oldValue.ScheduledDate, nil
}

// ResetScheduledDate resets all changes to the "scheduled_date" field.
func (m *ScheduledAssignmentMutation) ResetScheduledDate() {
	m.scheduled_date = nil
}

// SetStatus sets the "status" field.
func (m *ScheduledAssignmentMutation) SetStatus(s scheduledassignment.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledAssignmentMutation) Status() (r scheduledassignment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledAssignment entity.
// If the ScheduledAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledAssignmentMutation) OldStatus(ctx context.Context) (v scheduledassignment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledAssignmentMutation) ResetStatus() {
	m.status = nil
}

// SetActivatedAt sets the "activated_at" field.
func (m *ScheduledAssignmentMutation) SetActivatedAt(t time.Time) {
	m.activated_at = &t
}

// ActivatedAt returns the value of the "activated_at" field in the mutation.
func (m *ScheduledAssignmentMutation) ActivatedAt() (r time.Time, exists bool) {
	v := m.activated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldActivatedAt returns the old "activated_at" field's value of the ScheduledAssignment entity.
// If the ScheduledAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledAssignmentMutation) OldActivatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivatedAt: %w", err)
	}
	return oldValue.ActivatedAt, nil
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (m *ScheduledAssignmentMutation) ClearActivatedAt() {
	m.activated_at = nil
	m.clearedFields[scheduledassignment.FieldActivatedAt] = struct{}{}
}

// ActivatedAtCleared returns if the "activated_at" field was cleared in this mutation.
func (m *ScheduledAssignmentMutation) ActivatedAtCleared() bool {
	_, ok := m.clearedFields[scheduledassignment.FieldActivatedAt]
	return ok
}

// ResetActivatedAt resets all changes to the "activated_at" field.
func (m *ScheduledAssignmentMutation) ResetActivatedAt() {
	m.activated_at = nil
	delete(m.clearedFields, scheduledassignment.FieldActivatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledAssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledAssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledAssignment entity.
// If the ScheduledAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledAssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledAssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearZone clears the "zone" edge to the Zone entity.
func (m *ScheduledAssignmentMutation) ClearZone() {
	m.clearedzone = true
	m.clearedFields[scheduledassignment.FieldZoneID] = struct{}{}
}

// ZoneCleared reports if the "zone" edge to the Zone entity was cleared.
func (m *ScheduledAssignmentMutation) ZoneCleared() bool {
	return m.clearedzone
}

// ZoneIDs returns the "zone" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ZoneID instead. It exists only for internal usage by the builders.
func (m *ScheduledAssignmentMutation) ZoneIDs() (ids []int) {
	if id := m.zone; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetZone resets all changes to the "zone" edge.
func (m *ScheduledAssignmentMutation) ResetZone() {
	m.zone = nil
	m.clearedzone = false
}

// ClearAgent clears the "agent" edge to the User entity.
func (m *ScheduledAssignmentMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[scheduledassignment.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the User entity was cleared.
func (m *ScheduledAssignmentMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *ScheduledAssignmentMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *ScheduledAssignmentMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearTeam clears the "team" edge to the Team entity.
func (m *ScheduledAssignmentMutation) ClearTeam() {
	m.clearedteam = true
	m.clearedFields[scheduledassignment.FieldTeamID] = struct{}{}
}

// TeamCleared reports if the "team" edge to the Team entity was cleared.
func (m *ScheduledAssignmentMutation) TeamCleared() bool {
	return m.TeamIDCleared() || m.clearedteam
}

// TeamIDs returns the "team" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TeamID instead. It exists only for internal usage by the builders.
func (m *ScheduledAssignmentMutation) TeamIDs() (ids []int) {
	if id := m.team; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTeam resets all changes to the "team" edge.
func (m *ScheduledAssignmentMutation) ResetTeam() {
	m.team = nil
	m.clearedteam = false
}

// SetAssignedByID sets the "assigned_by" edge to the User entity by id.
func (m *ScheduledAssignmentMutation) SetAssignedByID(id int) {
	m.assigned_by = &id
}

// ClearAssignedBy clears the "assigned_by" edge to the User entity.
func (m *ScheduledAssignmentMutation) ClearAssignedBy() {
	m.clearedassigned_by = true
	m.clearedFields[scheduledassignment.FieldAssignedByUserID] = struct{}{}
}

// AssignedByCleared reports if the "assigned_by" edge to the User entity was cleared.
func (m *ScheduledAssignmentMutation) AssignedByCleared() bool {
	return m.AssignedByUserIDCleared() || m.clearedassigned_by
}

// AssignedByID returns the "assigned_by" edge ID in the mutation.
func (m *ScheduledAssignmentMutation) AssignedByID() (id int, exists bool) {
	if m.assigned_by != nil {
		return *m.assigned_by, true
	}
	return
}

// AssignedByIDs returns the "assigned_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignedByID instead. It exists only for internal usage by the builders.
func (m *ScheduledAssignmentMutation) AssignedByIDs() (ids []int) {
	if id := m.assigned_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignedBy resets all changes to the "assigned_by" edge.
func (m *ScheduledAssignmentMutation) ResetAssignedBy() {
	m.assigned_by = nil
	m.clearedassigned_by = false
}

// Where appends a list predicates to the ScheduledAssignmentMutation builder.
func (m *ScheduledAssignmentMutation) Where(ps ...predicate.ScheduledAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledAssignment).
func (m *ScheduledAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.zone != nil {
		fields = append(fields, scheduledassignment.FieldZoneID)
	}
	if m.agent != nil {
		fields = append(fields, scheduledassignment.FieldAgentID)
	}
	if m.team != nil {
		fields = append(fields, scheduledassignment.FieldTeamID)
	}
	if m.assigned_by != nil {
		fields = append(fields, scheduledassignment.FieldAssignedByUserID)
	}
	if m.effective_from != nil {
		fields = append(fields, scheduledassignment.FieldEffectiveFrom)
	}
	if m.scheduled_date != nil {
		fields = append(fields, scheduledassignment.FieldScheduledDate)
	}
	if m.status != nil {
		fields = append(fields, scheduledassignment.FieldStatus)
	}
	if m.activated_at != nil {
		fields = append(fields, scheduledassignment.FieldActivatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledassignment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledassignment.FieldZoneID:
		return m.ZoneID()
	case scheduledassignment.FieldAgentID:
		return m.AgentID()
	case scheduledassignment.FieldTeamID:
		return m.TeamID()
	case scheduledassignment.FieldAssignedByUserID:
		return m.AssignedByUserID()
	case scheduledassignment.FieldEffectiveFrom:
		return m.EffectiveFrom()
	case scheduledassignment.FieldScheduledDate:
		return m.ScheduledDate()
	case scheduledassignment.FieldStatus:
		return m.Status()
	case scheduledassignment.FieldActivatedAt:
		return m.ActivatedAt()
	case scheduledassignment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledassignment.FieldZoneID:
		return m.OldZoneID(ctx)
	case scheduledassignment.FieldAgentID:
		return m.OldAgentID(ctx)
	case scheduledassignment.FieldTeamID:
		return m.OldTeamID(ctx)
	case scheduledassignment.FieldAssignedByUserID:
		return m.OldAssignedByUserID(ctx)
	case scheduledassignment.FieldEffectiveFrom:
		return m.OldEffectiveFrom(ctx)
	case scheduledassignment.FieldScheduledDate:
		return m.OldScheduledDate(ctx)
	case scheduledassignment.FieldStatus:
		return m.OldStatus(ctx)
	case scheduledassignment.FieldActivatedAt:
		return m.OldActivatedAt(ctx)
	case scheduledassignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledassignment.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneID(v)
		return nil
	case scheduledassignment.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case scheduledassignment.FieldTeamID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case scheduledassignment.FieldAssignedByUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedByUserID(v)
		return nil
	case scheduledassignment.FieldEffectiveFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveFrom(v)
		return nil
	case scheduledassignment.FieldScheduledDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledDate(v)
		return nil
	case scheduledassignment.FieldStatus:
		v, ok := value.(scheduledassignment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduledassignment.FieldActivatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivatedAt(v)
		return nil
	case scheduledassignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledAssignmentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduledAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledAssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledassignment.FieldAgentID) {
		fields = append(fields, scheduledassignment.FieldAgentID)
	}
	if m.FieldCleared(scheduledassignment.FieldTeamID) {
		fields = append(fields, scheduledassignment.FieldTeamID)
	}
	if m.FieldCleared(scheduledassignment.FieldAssignedByUserID) {
		fields = append(fields, scheduledassignment.FieldAssignedByUserID)
	}
	if m.FieldCleared(scheduledassignment.FieldActivatedAt) {
		fields = append(fields, scheduledassignment.FieldActivatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledAssignmentMutation) ClearField(name string) error {
	switch name {
	case scheduledassignment.FieldAgentID:
		m.ClearAgentID()
		return nil
	case scheduledassignment.FieldTeamID:
		m.ClearTeamID()
		return nil
	case scheduledassignment.FieldAssignedByUserID:
		m.ClearAssignedByUserID()
		return nil
	case scheduledassignment.FieldActivatedAt:
		m.ClearActivatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledAssignmentMutation) ResetField(name string) error {
	switch name {
	case scheduledassignment.FieldZoneID:
		m.ResetZoneID()
		return nil
	case scheduledassignment.FieldAgentID:
		m.ResetAgentID()
		return nil
	case scheduledassignment.FieldTeamID:
		m.ResetTeamID()
		return nil
	case scheduledassignment.FieldAssignedByUserID:
		m.ResetAssignedByUserID()
		return nil
	case scheduledassignment.FieldEffectiveFrom:
		m.ResetEffectiveFrom()
		return nil
	case scheduledassignment.FieldScheduledDate:
		m.ResetScheduledDate()
		return nil
	case scheduledassignment.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduledassignment.FieldActivatedAt:
		m.ResetActivatedAt()
		return nil
	case scheduledassignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.zone != nil {
		edges = append(edges, scheduledassignment.EdgeZone)
	}
	if m.agent != nil {
		edges = append(edges, scheduledassignment.EdgeAgent)
	}
	if m.team != nil {
		edges = append(edges, scheduledassignment.EdgeTeam)
	}
	if m.assigned_by != nil {
		edges = append(edges, scheduledassignment.EdgeAssignedBy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheduledassignment.EdgeZone:
		if id := m.zone; id != nil {
			return []ent.Value{*id}
		}
	case scheduledassignment.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case scheduledassignment.EdgeTeam:
		if id := m.team; id != nil {
			return []ent.Value{*id}
		}
	case scheduledassignment.EdgeAssignedBy:
		if id := m.assigned_by; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedzone {
		edges = append(edges, scheduledassignment.EdgeZone)
	}
	if m.clearedagent {
		edges = append(edges, scheduledassignment.EdgeAgent)
	}
	if m.clearedteam {
		edges = append(edges, scheduledassignment.EdgeTeam)
	}
	if m.clearedassigned_by {
		edges = append(edges, scheduledassignment.EdgeAssignedBy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case scheduledassignment.EdgeZone:
		return m.clearedzone
	case scheduledassignment.EdgeAgent:
		return m.clearedagent
	case scheduledassignment.EdgeTeam:
		return m.clearedteam
	case scheduledassignment.EdgeAssignedBy:
		return m.clearedassigned_by
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case scheduledassignment.EdgeZone:
		m.ClearZone()
		return nil
	case scheduledassignment.EdgeAgent:
		m.ClearAgent()
		return nil
	case scheduledassignment.EdgeTeam:
		m.ClearTeam()
		return nil
	case scheduledassignment.EdgeAssignedBy:
		m.ClearAssignedBy()
		return nil
	}
	return fmt.Errorf("unknown ScheduledAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case scheduledassignment.EdgeZone:
		m.ResetZone()
		return nil
	case scheduledassignment.EdgeAgent:
		m.ResetAgent()
		return nil
	case scheduledassignment.EdgeTeam:
		m.ResetTeam()
		return nil
	case scheduledassignment.EdgeAssignedBy:
		m.ResetAssignedBy()
		return nil
	}
	return fmt.Errorf("unknown ScheduledAssignment edge %s", name)
}

// TeamMutation represents an operation that mutates the Team nodes in the graph.
type TeamMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	name                         *string
	description                  *string
	status                       *team.Status
	assignment_status            *team.AssignmentStatus
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	leader                       *int
	clearedleader                bool
	created_by                   *int
	clearedcreated_by            bool
	members                      map[int]struct{}
	removedmembers               map[int]struct{}
	clearedmembers               bool
	zones                        map[int]struct{}
	removedzones                 map[int]struct{}
	clearedzones                 bool
	assignments                  map[int]struct{}
	removedassignments           map[int]struct{}
	clearedassignments           bool
	scheduled_assignments        map[int]struct{}
	removedscheduled_assignments map[int]struct{}
	clearedscheduled_assignments bool
	done                         bool
	oldValue                     func(context.Context) (*Team, error)
	predicates                   []predicate.Team
}

var _ ent.Mutation = (*TeamMutation)(nil)

// teamOption allows management of the mutation configuration using functional options.
type teamOption func(*TeamMutation)

// newTeamMutation creates new mutation for the Team entity.
func newTeamMutation(c config, op Op, opts ...teamOption) *TeamMutation {
	m := &TeamMutation{
		config:        c,
		op:            op,
		typ:           TypeTeam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamID sets the ID field of the mutation.
func withTeamID(id int) teamOption {
	return func(m *TeamMutation) {
		var (
			err   error
			once  sync.Once
			value *Team
		)
		m.oldValue = func(ctx context.Context) (*Team, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Team.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeam sets the old Team of the mutation.
func withTeam(node *Team) teamOption {
	return func(m *TeamMutation) {
		m.oldValue = func(context.Context) (*Team, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Team.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TeamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TeamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TeamMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TeamMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TeamMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TeamMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[team.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TeamMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[team.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TeamMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, team.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *TeamMutation) SetStatus(t team.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TeamMutation) Status() (r team.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldStatus(ctx context.Context) (v team.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TeamMutation) ResetStatus() {
	m.status = nil
}

// SetAssignmentStatus sets the "assignment_status" field.
func (m *TeamMutation) SetAssignmentStatus(ts team.AssignmentStatus) {
	m.assignment_status = &ts
}

// AssignmentStatus returns the value of the "assignment_status" field in the mutation.
func (m *TeamMutation) AssignmentStatus() (r team.AssignmentStatus, exists bool) {
	v := m.assignment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentStatus returns the old "assignment_status" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldAssignmentStatus(ctx context.Context) (v team.AssignmentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentStatus: %w", err)
	}
	return oldValue.AssignmentStatus, nil
}

// ResetAssignmentStatus resets all changes to the "assignment_status" field.
func (m *TeamMutation) ResetAssignmentStatus() {
	m.assignment_status = nil
}

// SetLeaderUserID sets the "leader_user_id" field.
func (m *TeamMutation) SetLeaderUserID(i int) {
	m.leader = &i
}

// LeaderUserID returns the value of the "leader_user_id" field in the mutation.
func (m *TeamMutation) LeaderUserID() (r int, exists bool) {
	v := m.leader
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaderUserID returns the old "leader_user_id" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldLeaderUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaderUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaderUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaderUserID: %w", err)
	}
	return oldValue.LeaderUserID, nil
}

// ResetLeaderUserID resets all changes to the "leader_user_id" field.
func (m *TeamMutation) ResetLeaderUserID() {
	m.leader = nil
}

// SetCreatedByUserID sets the "created_by_user_id" field.
func (m *TeamMutation) SetCreatedByUserID(i int) {
	m.created_by = &i
}

// CreatedByUserID returns the value of the "created_by_user_id" field in the mutation.
func (m *TeamMutation) CreatedByUserID() (r int, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByUserID returns the old "created_by_user_id" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldCreatedByUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByUserID: %w", err)
	}
	return oldValue.CreatedByUserID, nil
}

// ResetCreatedByUserID resets all changes to the "created_by_user_id" field.
func (m *TeamMutation) ResetCreatedByUserID() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TeamMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TeamMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TeamMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLeaderID sets the "leader" edge to the User entity by id.
func (m *TeamMutation) SetLeaderID(id int) {
	m.leader = &id
}

// ClearLeader clears the "leader" edge to the User entity.
func (m *TeamMutation) ClearLeader() {
	m.clearedleader = true
	m.clearedFields[team.FieldLeaderUserID] = struct{}{}
}

// LeaderCleared reports if the "leader" edge to the User entity was cleared.
func (m *TeamMutation) LeaderCleared() bool {
	return m.clearedleader
}

// LeaderID returns the "leader" edge ID in the mutation.
func (m *TeamMutation) LeaderID() (id int, exists bool) {
	if m.leader != nil {
		return *m.leader, true
	}
	return
}

// LeaderIDs returns the "leader" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeaderID instead. It exists only for internal usage by the builders.
func (m *TeamMutation) LeaderIDs() (ids []int) {
	if id := m.leader; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLeader resets all changes to the "leader" edge.
func (m *TeamMutation) ResetLeader() {
	m.leader = nil
	m.clearedleader = false
}

// SetCreatedByID sets the "created_by" edge to the User entity by id.
func (m *TeamMutation) SetCreatedByID(id int) {
	m.created_by = &id
}

// ClearCreatedBy clears the "created_by" edge to the User entity.
func (m *TeamMutation) ClearCreatedBy() {
	m.clearedcreated_by = true
	m.clearedFields[team.FieldCreatedByUserID] = struct{}{}
}

// CreatedByCleared reports if the "created_by" edge to the User entity was cleared.
func (m *TeamMutation) CreatedByCleared() bool {
	return m.clearedcreated_by
}

// CreatedByID returns the "created_by" edge ID in the mutation.
func (m *TeamMutation) CreatedByID() (id int, exists bool) {
	if m.created_by != nil {
		return *m.created_by, true
	}
	return
}

// CreatedByIDs returns the "created_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreatedByID instead. It exists only for internal usage by the builders.
func (m *TeamMutation) CreatedByIDs() (ids []int) {
	if id := m.created_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreatedBy resets all changes to the "created_by" edge.
func (m *TeamMutation) ResetCreatedBy() {
	m.created_by = nil
	m.clearedcreated_by = false
}

// AddMemberIDs adds the "members" edge to the TeamMember entity by ids.
func (m *TeamMutation) AddMemberIDs(ids ...int) {
	if m.members == nil {
		m.members = make(map[int]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the TeamMember entity.
func (m *TeamMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the TeamMember entity was cleared.
func (m *TeamMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the TeamMember entity by IDs.
func (m *TeamMutation) RemoveMemberIDs(ids ...int) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the TeamMember entity.
func (m *TeamMutation) RemovedMembersIDs() (ids []int) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *TeamMutation) MembersIDs() (ids []int) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *TeamMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// AddZoneIDs adds the "zones" edge to the Zone entity by ids.
func (m *TeamMutation) AddZoneIDs(ids ...int) {
	if m.zones == nil {
		m.zones = make(map[int]struct{})
	}
	for i := range ids {
		m.zones[ids[i]] = struct{}{}
	}
}

// ClearZones clears the "zones" edge to the Zone entity.
func (m *TeamMutation) ClearZones() {
	m.clearedzones = true
}

// ZonesCleared reports if the "zones" edge to the Zone entity was cleared.
func (m *TeamMutation) ZonesCleared() bool {
	return m.clearedzones
}

// RemoveZoneIDs removes the "zones" edge to the Zone entity by IDs.
func (m *TeamMutation) RemoveZoneIDs(ids ...int) {
	if m.removedzones == nil {
		m.removedzones = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.zones, ids[i])
		m.removedzones[ids[i]] = struct{}{}
	}
}

// RemovedZones returns the removed IDs of the "zones" edge to the Zone entity.
func (m *TeamMutation) RemovedZonesIDs() (ids []int) {
	for id := range m.removedzones {
		ids = append(ids, id)
	}
	return
}

// ZonesIDs returns the "zones" edge IDs in the mutation.
func (m *TeamMutation) ZonesIDs() (ids []int) {
	for id := range m.zones {
		ids = append(ids, id)
	}
	return
}

// ResetZones resets all changes to the "zones" edge.
func (m *TeamMutation) ResetZones() {
	m.zones = nil
	m.clearedzones = false
	m.removedzones = nil
}

// AddAssignmentIDs adds the "assignments" edge to the ZoneAssignment entity by ids.
func (m *TeamMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the ZoneAssignment entity.
func (m *TeamMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the ZoneAssignment entity was cleared.
func (m *TeamMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the ZoneAssignment entity by IDs.
func (m *TeamMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the ZoneAssignment entity.
func (m *TeamMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *TeamMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *TeamMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddScheduledAssignmentIDs adds the "scheduled_assignments" edge to the ScheduledAssignment entity by ids.
func (m *TeamMutation) AddScheduledAssignmentIDs(ids ...int) {
	if m.scheduled_assignments == nil {
		m.scheduled_assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.scheduled_assignments[ids[i]] = struct{}{}
	}
}

// ClearScheduledAssignments clears the "scheduled_assignments" edge to the ScheduledAssignment entity.
func (m *TeamMutation) ClearScheduledAssignments() {
	m.clearedscheduled_assignments = true
}

// ScheduledAssignmentsCleared reports if the "scheduled_assignments" edge to the ScheduledAssignment entity was cleared.
func (m *TeamMutation) ScheduledAssignmentsCleared() bool {
	return m.clearedscheduled_assignments
}

// RemoveScheduledAssignmentIDs removes the "scheduled_assignments" edge to the ScheduledAssignment entity by IDs.
func (m *TeamMutation) RemoveScheduledAssignmentIDs(ids ...int) {
	if m.removedscheduled_assignments == nil {
		m.removedscheduled_assignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.scheduled_assignments, ids[i])
		m.removedscheduled_assignments[ids[i]] = struct{}{}
	}
}

// RemovedScheduledAssignments returns the removed IDs of the "scheduled_assignments" edge to the ScheduledAssignment entity.
func (m *TeamMutation) RemovedScheduledAssignmentsIDs() (ids []int) {
	for id := range m.removedscheduled_assignments {
		ids = append(ids, id)
	}
	return
}

// ScheduledAssignmentsIDs returns the "scheduled_assignments" edge IDs in the mutation.
func (m *TeamMutation) ScheduledAssignmentsIDs() (ids []int) {
	for id := range m.scheduled_assignments {
		ids = append(ids, id)
	}
	return
}

// ResetScheduledAssignments resets all changes to the "scheduled_assignments" edge.
func (m *TeamMutation) ResetScheduledAssignments() {
	m.scheduled_assignments = nil
	m.clearedscheduled_assignments = false
	m.removedscheduled_assignments = nil
}

// Where appends a list predicates to the TeamMutation builder.
func (m *TeamMutation) Where(ps ...predicate.Team) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Team, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Team).
func (m *TeamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, team.FieldName)
	}
	if m.description != nil {
		fields = append(fields, team.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, team.FieldStatus)
	}
	if m.assignment_status != nil {
		fields = append(fields, team.FieldAssignmentStatus)
	}
	if m.leader != nil {
		fields = append(fields, team.FieldLeaderUserID)
	}
	if m.created_by != nil {
		fields = append(fields, team.FieldCreatedByUserID)
	}
	if m.created_at != nil {
		fields = append(fields, team.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, team.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case team.FieldName:
		return m.Name()
	case team.FieldDescription:
		return m.Description()
	case team.FieldStatus:
		return m.Status()
	case team.FieldAssignmentStatus:
		return m.AssignmentStatus()
	case team.FieldLeaderUserID:
		return m.LeaderUserID()
	case team.FieldCreatedByUserID:
		return m.CreatedByUserID()
	case team.FieldCreatedAt:
		return m.CreatedAt()
	case team.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case team.FieldName:
		return m.OldName(ctx)
	case team.FieldDescription:
		return m.OldDescription(ctx)
	case team.FieldStatus:
		return m.OldStatus(ctx)
	case team.FieldAssignmentStatus:
		return m.OldAssignmentStatus(ctx)
	case team.FieldLeaderUserID:
		return m.OldLeaderUserID(ctx)
	case team.FieldCreatedByUserID:
		return m.OldCreatedByUserID(ctx)
	case team.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case team.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Team field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case team.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case team.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case team.FieldStatus:
		v, ok := value.(team.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case team.FieldAssignmentStatus:
		v, ok := value.(team.AssignmentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentStatus(v)
		return nil
	case team.FieldLeaderUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaderUserID(v)
		return nil
	case team.FieldCreatedByUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByUserID(v)
		return nil
	case team.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case team.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Team numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(team.FieldDescription) {
		fields = append(fields, team.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamMutation) ClearField(name string) error {
	switch name {
	case team.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Team nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamMutation) ResetField(name string) error {
	switch name {
	case team.FieldName:
		m.ResetName()
		return nil
	case team.FieldDescription:
		m.ResetDescription()
		return nil
	case team.FieldStatus:
		m.ResetStatus()
		return nil
	case team.FieldAssignmentStatus:
		m.ResetAssignmentStatus()
		return nil
	case team.FieldLeaderUserID:
		m.ResetLeaderUserID()
		return nil
	case team.FieldCreatedByUserID:
		m.ResetCreatedByUserID()
		return nil
	case team.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case team.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.leader != nil {
		edges = append(edges, team.EdgeLeader)
	}
	if m.created_by != nil {
		edges = append(edges, team.EdgeCreatedBy)
	}
	if m.members != nil {
		edges = append(edges, team.EdgeMembers)
	}
	if m.zones != nil {
		edges = append(edges, team.EdgeZones)
	}
	if m.assignments != nil {
		edges = append(edges, team.EdgeAssignments)
	}
	if m.scheduled_assignments != nil {
		edges = append(edges, team.EdgeScheduledAssignments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeLeader:
		if id := m.leader; id != nil {
			return []ent.Value{*id}
		}
	case team.EdgeCreatedBy:
		if id := m.created_by; id != nil {
			return []ent.Value{*id}
		}
	case team.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	case team.EdgeZones:
		ids := make([]ent.Value, 0, len(m.zones))
		for id := range m.zones {
			ids = append(ids, id)
		}
		return ids
	case team.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case team.EdgeScheduledAssignments:
		ids := make([]ent.Value, 0, len(m.scheduled_assignments))
		for id := range m.scheduled_assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedmembers != nil {
		edges = append(edges, team.EdgeMembers)
	}
	if m.removedzones != nil {
		edges = append(edges, team.EdgeZones)
	}
	if m.removedassignments != nil {
		edges = append(edges, team.EdgeAssignments)
	}
	if m.removedscheduled_assignments != nil {
		edges = append(edges, team.EdgeScheduledAssignments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	case team.EdgeZones:
		ids := make([]ent.Value, 0, len(m.removedzones))
		for id := range m.removedzones {
			ids = append(ids, id)
		}
		return ids
	case team.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case team.EdgeScheduledAssignments:
		ids := make([]ent.Value, 0, len(m.removedscheduled_assignments))
		for id := range m.removedscheduled_assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedleader {
		edges = append(edges, team.EdgeLeader)
	}
	if m.clearedcreated_by {
		edges = append(edges, team.EdgeCreatedBy)
	}
	if m.clearedmembers {
		edges = append(edges, team.EdgeMembers)
	}
	if m.clearedzones {
		edges = append(edges, team.EdgeZones)
	}
	if m.clearedassignments {
		edges = append(edges, team.EdgeAssignments)
	}
	if m.clearedscheduled_assignments {
		edges = append(edges, team.EdgeScheduledAssignments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamMutation) EdgeCleared(name string) bool {
	switch name {
	case team.EdgeLeader:
		return m.clearedleader
	case team.EdgeCreatedBy:
		return m.clearedcreated_by
	case team.EdgeMembers:
		return m.clearedmembers
	case team.EdgeZones:
		return m.clearedzones
	case team.EdgeAssignments:
		return m.clearedassignments
	case team.EdgeScheduledAssignments:
		return m.clearedscheduled_assignments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamMutation) ClearEdge(name string) error {
	switch name {
	case team.EdgeLeader:
		m.ClearLeader()
		return nil
	case team.EdgeCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Team unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamMutation) ResetEdge(name string) error {
	switch name {
	case team.EdgeLeader:
		m.ResetLeader()
		return nil
	case team.EdgeCreatedBy:
		m.ResetCreatedBy()
		return nil
	case team.EdgeMembers:
		m.ResetMembers()
		return nil
	case team.EdgeZones:
		m.ResetZones()
		return nil
	case team.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case team.EdgeScheduledAssignments:
		m.ResetScheduledAssignments()
		return nil
	}
	return fmt.Errorf("unknown Team edge %s", name)
}

// TeamMemberMutation represents an operation that mutates the TeamMember nodes in the graph.
type TeamMemberMutation struct {
	config
	op              Op
	typ             string
	id              *int
	joined_at       *time.Time
	clearedFields   map[string]struct{}
	team            *int
	clearedteam     bool
	user            *int
	cleareduser     bool
	added_by        *int
	clearedadded_by bool
	done            bool
	oldValue        func(context.Context) (*TeamMember, error)
	predicates      []predicate.TeamMember
}

var _ ent.Mutation = (*TeamMemberMutation)(nil)

// teammemberOption allows management of the mutation configuration using functional options.
type teammemberOption func(*TeamMemberMutation)

// newTeamMemberMutation creates new mutation for the TeamMember entity.
func newTeamMemberMutation(c config, op Op, opts ...teammemberOption) *TeamMemberMutation {
	m := &TeamMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeTeamMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamMemberID sets the ID field of the mutation.
func withTeamMemberID(id int) teammemberOption {
	return func(m *TeamMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *TeamMember
		)
		m.oldValue = func(ctx context.Context) (*TeamMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TeamMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeamMember sets the old TeamMember of the mutation.
func withTeamMember(node *TeamMember) teammemberOption {
	return func(m *TeamMemberMutation) {
		m.oldValue = func(context.Context) (*TeamMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamMemberMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamMemberMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TeamMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTeamID sets the "team_id" field.
func (m *TeamMemberMutation) SetTeamID(i int) {
	m.team = &i
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *TeamMemberMutation) TeamID() (r int, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the TeamMember entity.
// If the TeamMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMemberMutation) OldTeamID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *TeamMemberMutation) ResetTeamID() {
	m.team = nil
}

// SetUserID sets the "user_id" field.
func (m *TeamMemberMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TeamMemberMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TeamMember entity.
// If the TeamMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMemberMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TeamMemberMutation) ResetUserID() {
	m.user = nil
}

// SetAddedByUserID sets the "added_by_user_id" field.
func (m *TeamMemberMutation) SetAddedByUserID(i int) {
	m.added_by = &i
}

// AddedByUserID returns the value of the "added_by_user_id" field in the mutation.
func (m *TeamMemberMutation) AddedByUserID() (r int, exists bool) {
	v := m.added_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAddedByUserID returns the old "added_by_user_id" field's value of the TeamMember entity.
// If the TeamMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMemberMutation) OldAddedByUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddedByUserID: %w", err)
	}
	return oldValue.AddedByUserID, nil
}

// ResetAddedByUserID resets all changes to the "added_by_user_id" field.
func (m *TeamMemberMutation) ResetAddedByUserID() {
	m.added_by = nil
}

// SetJoinedAt sets the "joined_at" field.
func (m *TeamMemberMutation) SetJoinedAt(t time.Time) {
	m.joined_at = &t
}

// JoinedAt returns the value of the "joined_at" field in the mutation.
func (m *TeamMemberMutation) JoinedAt() (r time.Time, exists bool) {
	v := m.joined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinedAt returns the old "joined_at" field's value of the TeamMember entity.
// If the TeamMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMemberMutation) OldJoinedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinedAt: %w", err)
	}
	return oldValue.JoinedAt, nil
}

// ResetJoinedAt resets all changes to the "joined_at" field.
func (m *TeamMemberMutation) ResetJoinedAt() {
	m.joined_at = nil
}

// ClearTeam clears the "team" edge to the Team entity.
func (m *TeamMemberMutation) ClearTeam() {
	m.clearedteam = true
	m.clearedFields[teammember.FieldTeamID] = struct{}{}
}

// TeamCleared reports if the "team" edge to the Team entity was cleared.
func (m *TeamMemberMutation) TeamCleared() bool {
	return m.clearedteam
}

// TeamIDs returns the "team" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TeamID instead. It exists only for internal usage by the builders.
func (m *TeamMemberMutation) TeamIDs() (ids []int) {
	if id := m.team; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTeam resets all changes to the "team" edge.
func (m *TeamMemberMutation) ResetTeam() {
	m.team = nil
	m.clearedteam = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *TeamMemberMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[teammember.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *TeamMemberMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *TeamMemberMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *TeamMemberMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// SetAddedByID sets the "added_by" edge to the User entity by id.
func (m *TeamMemberMutation) SetAddedByID(id int) {
	m.added_by = &id
}

// ClearAddedBy clears the "added_by" edge to the User entity.
func (m *TeamMemberMutation) ClearAddedBy() {
	m.clearedadded_by = true
	m.clearedFields[teammember.FieldAddedByUserID] = struct{}{}
}

// AddedByCleared reports if the "added_by" edge to the User entity was cleared.
func (m *TeamMemberMutation) AddedByCleared() bool {
	return m.clearedadded_by
}

// AddedByID returns the "added_by" edge ID in the mutation.
func (m *TeamMemberMutation) AddedByID() (id int, exists bool) {
	if m.added_by != nil {
		return *m.added_by, true
	}
	return
}

// AddedByIDs returns the "added_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AddedByID instead. It exists only for internal usage by the builders.
func (m *TeamMemberMutation) AddedByIDs() (ids []int) {
	if id := m.added_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAddedBy resets all changes to the "added_by" edge.
func (m *TeamMemberMutation) ResetAddedBy() {
	m.added_by = nil
	m.clearedadded_by = false
}

// Where appends a list predicates to the TeamMemberMutation builder.
func (m *TeamMemberMutation) Where(ps ...predicate.TeamMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TeamMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TeamMember).
func (m *TeamMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamMemberMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.team != nil {
		fields = append(fields, teammember.FieldTeamID)
	}
	if m.user != nil {
		fields = append(fields, teammember.FieldUserID)
	}
	if m.added_by != nil {
		fields = append(fields, teammember.FieldAddedByUserID)
	}
	if m.joined_at != nil {
		fields = append(fields, teammember.FieldJoinedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case teammember.FieldTeamID:
		return m.TeamID()
	case teammember.FieldUserID:
		return m.UserID()
	case teammember.FieldAddedByUserID:
		return m.AddedByUserID()
	case teammember.FieldJoinedAt:
		return m.JoinedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case teammember.FieldTeamID:
		return m.OldTeamID(ctx)
	case teammember.FieldUserID:
		return m.OldUserID(ctx)
	case teammember.FieldAddedByUserID:
		return m.OldAddedByUserID(ctx)
	case teammember.FieldJoinedAt:
		return m.OldJoinedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TeamMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case teammember.FieldTeamID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case teammember.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case teammember.FieldAddedByUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddedByUserID(v)
		return nil
	case teammember.FieldJoinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TeamMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamMemberMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamMemberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TeamMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamMemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamMemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TeamMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamMemberMutation) ResetField(name string) error {
	switch name {
	case teammember.FieldTeamID:
		m.ResetTeamID()
		return nil
	case teammember.FieldUserID:
		m.ResetUserID()
		return nil
	case teammember.FieldAddedByUserID:
		m.ResetAddedByUserID()
		return nil
	case teammember.FieldJoinedAt:
		m.ResetJoinedAt()
		return nil
	}
	return fmt.Errorf("unknown TeamMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.team != nil {
		edges = append(edges, teammember.EdgeTeam)
	}
	if m.user != nil {
		edges = append(edges, teammember.EdgeUser)
	}
	if m.added_by != nil {
		edges = append(edges, teammember.EdgeAddedBy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case teammember.EdgeTeam:
		if id := m.team; id != nil {
			return []ent.Value{*id}
		}
	case teammember.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case teammember.EdgeAddedBy:
		if id := m.added_by; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedteam {
		edges = append(edges, teammember.EdgeTeam)
	}
	if m.cleareduser {
		edges = append(edges, teammember.EdgeUser)
	}
	if m.clearedadded_by {
		edges = append(edges, teammember.EdgeAddedBy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case teammember.EdgeTeam:
		return m.clearedteam
	case teammember.EdgeUser:
		return m.cleareduser
	case teammember.EdgeAddedBy:
		return m.clearedadded_by
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamMemberMutation) ClearEdge(name string) error {
	switch name {
	case teammember.EdgeTeam:
		m.ClearTeam()
		return nil
	case teammember.EdgeUser:
		m.ClearUser()
		return nil
	case teammember.EdgeAddedBy:
		m.ClearAddedBy()
		return nil
	}
	return fmt.Errorf("unknown TeamMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamMemberMutation) ResetEdge(name string) error {
	switch name {
	case teammember.EdgeTeam:
		m.ResetTeam()
		return nil
	case teammember.EdgeUser:
		m.ResetUser()
		return nil
	case teammember.EdgeAddedBy:
		m.ResetAddedBy()
		return nil
	}
	return fmt.Errorf("unknown TeamMember edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                                Op
	typ                               string
	id                                *int
	email                             *string
	password_hash                     *string
	name                              *string
	phone                             *string
	role                              *user.Role
	status                            *user.Status
	assignment_status                 *user.AssignmentStatus
	primary_zone_id                   *int
	addprimary_zone_id                *int
	zone_ids                          *[]int
	appendzone_ids                    []int
	last_login_at                     *time.Time
	created_at                        *time.Time
	updated_at                        *time.Time
	deleted_at                        *time.Time
	clearedFields                     map[string]struct{}
	teams_created                     map[int]struct{}
	removedteams_created              map[int]struct{}
	clearedteams_created              bool
	teams_led                         map[int]struct{}
	removedteams_led                  map[int]struct{}
	clearedteams_led                  bool
	team_memberships                  map[int]struct{}
	removedteam_memberships           map[int]struct{}
	clearedteam_memberships           bool
	team_members_added                map[int]struct{}
	removedteam_members_added         map[int]struct{}
	clearedteam_members_added         bool
	zones_created                     map[int]struct{}
	removedzones_created              map[int]struct{}
	clearedzones_created              bool
	zones_assigned                    map[int]struct{}
	removedzones_assigned             map[int]struct{}
	clearedzones_assigned             bool
	assignments                       map[int]struct{}
	removedassignments                map[int]struct{}
	clearedassignments                bool
	assignments_made                  map[int]struct{}
	removedassignments_made           map[int]struct{}
	clearedassignments_made           bool
	scheduled_assignments             map[int]struct{}
	removedscheduled_assignments      map[int]struct{}
	clearedscheduled_assignments      bool
	scheduled_assignments_made        map[int]struct{}
	removedscheduled_assignments_made map[int]struct{}
	clearedscheduled_assignments_made bool
	leads                             map[int]struct{}
	removedleads                      map[int]struct{}
	clearedleads                      bool
	activities                        map[int]struct{}
	removedactivities                 map[int]struct{}
	clearedactivities                 bool
	routes                            map[int]struct{}
	removedroutes                     map[int]struct{}
	clearedroutes                     bool
	audit_logs                        map[int]struct{}
	removedaudit_logs                 map[int]struct{}
	clearedaudit_logs                 bool
	done                              bool
	oldValue                          func(context.Context) (*User, error)
	predicates                        []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetAssignmentStatus sets the "assignment_status" field.
func (m *UserMutation) SetAssignmentStatus(us user.AssignmentStatus) {
	m.assignment_status = &us
}

// AssignmentStatus returns the value of the "assignment_status" field in the mutation.
func (m *UserMutation) AssignmentStatus() (r user.AssignmentStatus, exists bool) {
	v := m.assignment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentStatus returns the old "assignment_status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAssignmentStatus(ctx context.Context) (v user.AssignmentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentStatus: %w", err)
	}
	return oldValue.AssignmentStatus, nil
}

// ResetAssignmentStatus resets all changes to the "assignment_status" field.
func (m *UserMutation) ResetAssignmentStatus() {
	m.assignment_status = nil
}

// SetPrimaryZoneID sets the "primary_zone_id" field.
func (m *UserMutation) SetPrimaryZoneID(i int) {
	m.primary_zone_id = &i
	m.addprimary_zone_id = nil
}

// PrimaryZoneID returns the value of the "primary_zone_id" field in the mutation.
func (m *UserMutation) PrimaryZoneID() (r int, exists bool) {
	v := m.primary_zone_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryZoneID returns the old "primary_zone_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPrimaryZoneID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryZoneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryZoneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryZoneID: %w", err)
	}
	return oldValue.PrimaryZoneID, nil
}

// AddPrimaryZoneID adds i to the "primary_zone_id" field.
func (m *UserMutation) AddPrimaryZoneID(i int) {
	if m.addprimary_zone_id != nil {
		*m.addprimary_zone_id += i
	} else {
		m.addprimary_zone_id = &i
	}
}

// AddedPrimaryZoneID returns the value that was added to the "primary_zone_id" field in this mutation.
func (m *UserMutation) AddedPrimaryZoneID() (r int, exists bool) {
	v := m.addprimary_zone_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrimaryZoneID clears the value of the "primary_zone_id" field.
func (m *UserMutation) ClearPrimaryZoneID() {
	m.primary_zone_id = nil
	m.addprimary_zone_id = nil
	m.clearedFields[user.FieldPrimaryZoneID] = struct{}{}
}

// PrimaryZoneIDCleared returns if the "primary_zone_id" field was cleared in this mutation.
func (m *UserMutation) PrimaryZoneIDCleared() bool {
	_, ok := m.clearedFields[user.FieldPrimaryZoneID]
	return ok
}

// ResetPrimaryZoneID resets all changes to the "primary_zone_id" field.
func (m *UserMutation) ResetPrimaryZoneID() {
	m.primary_zone_id = nil
	m.addprimary_zone_id = nil
	delete(m.clearedFields, user.FieldPrimaryZoneID)
}

// SetZoneIds sets the "zone_ids" field.
func (m *UserMutation) SetZoneIds(i []int) {
	m.zone_ids = &i
	m.appendzone_ids = nil
}

// ZoneIds returns the value of the "zone_ids" field in the mutation.
func (m *UserMutation) ZoneIds() (r []int, exists bool) {
	v := m.zone_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneIds returns the old "zone_ids" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldZoneIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneIds: %w", err)
	}
	return oldValue.ZoneIds, nil
}

// AppendZoneIds adds i to the "zone_ids" field.
func (m *UserMutation) AppendZoneIds(i []int) {
	m.appendzone_ids = append(m.appendzone_ids, i...)
}

// AppendedZoneIds returns the list of values that were appended to the "zone_ids" field in this mutation.
func (m *UserMutation) AppendedZoneIds() ([]int, bool) {
	if len(m.appendzone_ids) == 0 {
		return nil, false
	}
	return m.appendzone_ids, true
}

// ClearZoneIds clears the value of the "zone_ids" field.
func (m *UserMutation) ClearZoneIds() {
	m.zone_ids = nil
	m.appendzone_ids = nil
	m.clearedFields[user.FieldZoneIds] = struct{}{}
}

// ZoneIdsCleared returns if the "zone_ids" field was cleared in this mutation.
func (m *UserMutation) ZoneIdsCleared() bool {
	_, ok := m.clearedFields[user.FieldZoneIds]
	return ok
}

// ResetZoneIds resets all changes to the "zone_ids" field.
func (m *UserMutation) ResetZoneIds() {
	m.zone_ids = nil
	m.appendzone_ids = nil
	delete(m.clearedFields, user.FieldZoneIds)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// AddTeamsCreatedIDs adds the "teams_created" edge to the Team entity by ids.
func (m *UserMutation) AddTeamsCreatedIDs(ids ...int) {
	if m.teams_created == nil {
		m.teams_created = make(map[int]struct{})
	}
	for i := range ids {
		m.teams_created[ids[i]] = struct{}{}
	}
}

// ClearTeamsCreated clears the "teams_created" edge to the Team entity.
func (m *UserMutation) ClearTeamsCreated() {
	m.clearedteams_created = true
}

// TeamsCreatedCleared reports if the "teams_created" edge to the Team entity was cleared.
func (m *UserMutation) TeamsCreatedCleared() bool {
	return m.clearedteams_created
}

// RemoveTeamsCreatedIDs removes the "teams_created" edge to the Team entity by IDs.
func (m *UserMutation) RemoveTeamsCreatedIDs(ids ...int) {
	if m.removedteams_created == nil {
		m.removedteams_created = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.teams_created, ids[i])
		m.removedteams_created[ids[i]] = struct{}{}
	}
}

// RemovedTeamsCreated returns the removed IDs of the "teams_created" edge to the Team entity.
func (m *UserMutation) RemovedTeamsCreatedIDs() (ids []int) {
	for id := range m.removedteams_created {
		ids = append(ids, id)
	}
	return
}

// TeamsCreatedIDs returns the "teams_created" edge IDs in the mutation.
func (m *UserMutation) TeamsCreatedIDs() (ids []int) {
	for id := range m.teams_created {
		ids = append(ids, id)
	}
	return
}

// ResetTeamsCreated resets all changes to the "teams_created" edge.
func (m *UserMutation) ResetTeamsCreated() {
	m.teams_created = nil
	m.clearedteams_created = false
	m.removedteams_created = nil
}

// AddTeamsLedIDs adds the "teams_led" edge to the Team entity by ids.
func (m *UserMutation) AddTeamsLedIDs(ids ...int) {
	if m.teams_led == nil {
		m.teams_led = make(map[int]struct{})
	}
	for i := range ids {
		m.teams_led[ids[i]] = struct{}{}
	}
}

// ClearTeamsLed clears the "teams_led" edge to the Team entity.
func (m *UserMutation) ClearTeamsLed() {
	m.clearedteams_led = true
}

// TeamsLedCleared reports if the "teams_led" edge to the Team entity was cleared.
func (m *UserMutation) TeamsLedCleared() bool {
	return m.clearedteams_led
}

// RemoveTeamsLedIDs removes the "teams_led" edge to the Team entity by IDs.
func (m *UserMutation) RemoveTeamsLedIDs(ids ...int) {
	if m.removedteams_led == nil {
		m.removedteams_led = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.teams_led, ids[i])
		m.removedteams_led[ids[i]] = struct{}{}
	}
}

// RemovedTeamsLed returns the removed IDs of the "teams_led" edge to the Team entity.
func (m *UserMutation) RemovedTeamsLedIDs() (ids []int) {
	for id := range m.removedteams_led {
		ids = append(ids, id)
	}
	return
}

// TeamsLedIDs returns the "teams_led" edge IDs in the mutation.
func (m *UserMutation) TeamsLedIDs() (ids []int) {
	for id := range m.teams_led {
		ids = append(ids, id)
	}
	return
}

// ResetTeamsLed resets all changes to the "teams_led" edge.
func (m *UserMutation) ResetTeamsLed() {
	m.teams_led = nil
	m.clearedteams_led = false
	m.removedteams_led = nil
}

// AddTeamMembershipIDs adds the "team_memberships" edge to the TeamMember entity by ids.
func (m *UserMutation) AddTeamMembershipIDs(ids ...int) {
	if m.team_memberships == nil {
		m.team_memberships = make(map[int]struct{})
	}
	for i := range ids {
		m.team_memberships[ids[i]] = struct{}{}
	}
}

// ClearTeamMemberships clears the "team_memberships" edge to the TeamMember entity.
func (m *UserMutation) ClearTeamMemberships() {
	m.clearedteam_memberships = true
}

// TeamMembershipsCleared reports if the "team_memberships" edge to the TeamMember entity was cleared.
func (m *UserMutation) TeamMembershipsCleared() bool {
	return m.clearedteam_memberships
}

// RemoveTeamMembershipIDs removes the "team_memberships" edge to the TeamMember entity by IDs.
func (m *UserMutation) RemoveTeamMembershipIDs(ids ...int) {
	if m.removedteam_memberships == nil {
		m.removedteam_memberships = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.team_memberships, ids[i])
		m.removedteam_memberships[ids[i]] = struct{}{}
	}
}

// RemovedTeamMemberships returns the removed IDs of the "team_memberships" edge to the TeamMember entity.
func (m *UserMutation) RemovedTeamMembershipsIDs() (ids []int) {
	for id := range m.removedteam_memberships {
		ids = append(ids, id)
	}
	return
}

// TeamMembershipsIDs returns the "team_memberships" edge IDs in the mutation.
func (m *UserMutation) TeamMembershipsIDs() (ids []int) {
	for id := range m.team_memberships {
		ids = append(ids, id)
	}
	return
}

// ResetTeamMemberships resets all changes to the "team_memberships" edge.
func (m *UserMutation) ResetTeamMemberships() {
	m.team_memberships = nil
	m.clearedteam_memberships = false
	m.removedteam_memberships = nil
}

// AddTeamMembersAddedIDs adds the "team_members_added" edge to the TeamMember entity by ids.
func (m *UserMutation) AddTeamMembersAddedIDs(ids ...int) {
	if m.team_members_added == nil {
		m.team_members_added = make(map[int]struct{})
	}
	for i := range ids {
		m.team_members_added[ids[i]] = struct{}{}
	}
}

// ClearTeamMembersAdded clears the "team_members_added" edge to the TeamMember entity.
func (m *UserMutation) ClearTeamMembersAdded() {
	m.clearedteam_members_added = true
}

// TeamMembersAddedCleared reports if the "team_members_added" edge to the TeamMember entity was cleared.
func (m *UserMutation) TeamMembersAddedCleared() bool {
	return m.clearedteam_members_added
}

// RemoveTeamMembersAddedIDs removes the "team_members_added" edge to the TeamMember entity by IDs.
func (m *UserMutation) RemoveTeamMembersAddedIDs(ids ...int) {
	if m.removedteam_members_added == nil {
		m.removedteam_members_added = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.team_members_added, ids[i])
		m.removedteam_members_added[ids[i]] = struct{}{}
	}
}

// RemovedTeamMembersAdded returns the removed IDs of the "team_members_added" edge to the TeamMember entity.
func (m *UserMutation) RemovedTeamMembersAddedIDs() (ids []int) {
	for id := range m.removedteam_members_added {
		ids = append(ids, id)
	}
	return
}

// TeamMembersAddedIDs returns the "team_members_added" edge IDs in the mutation.
func (m *UserMutation) TeamMembersAddedIDs() (ids []int) {
	for id := range m.team_members_added {
		ids = append(ids, id)
	}
	return
}

// ResetTeamMembersAdded resets all changes to the "team_members_added" edge.
func (m *UserMutation) ResetTeamMembersAdded() {
	m.team_members_added = nil
	m.clearedteam_members_added = false
	m.removedteam_members_added = nil
}

// AddZonesCreatedIDs adds the "zones_created" edge to the Zone entity by ids.
func (m *UserMutation) AddZonesCreatedIDs(ids ...int) {
	if m.zones_created == nil {
		m.zones_created = make(map[int]struct{})
	}
	for i := range ids {
		m.zones_created[ids[i]] = struct{}{}
	}
}

// ClearZonesCreated clears the "zones_created" edge to the Zone entity.
func (m *UserMutation) ClearZonesCreated() {
	m.clearedzones_created = true
}

// ZonesCreatedCleared reports if the "zones_created" edge to the Zone entity was cleared.
func (m *UserMutation) ZonesCreatedCleared() bool {
	return m.clearedzones_created
}

// RemoveZonesCreatedIDs removes the "zones_created" edge to the Zone entity by IDs.
func (m *UserMutation) RemoveZonesCreatedIDs(ids ...int) {
	if m.removedzones_created == nil {
		m.removedzones_created = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.zones_created, ids[i])
		m.removedzones_created[ids[i]] = struct{}{}
	}
}

// RemovedZonesCreated returns the removed IDs of the "zones_created" edge to the Zone entity.
func (m *UserMutation) RemovedZonesCreatedIDs() (ids []int) {
	for id := range m.removedzones_created {
		ids = append(ids, id)
	}
	return
}

// ZonesCreatedIDs returns the "zones_created" edge IDs in the mutation.
func (m *UserMutation) ZonesCreatedIDs() (ids []int) {
	for id := range m.zones_created {
		ids = append(ids, id)
	}
	return
}

// ResetZonesCreated resets all changes to the "zones_created" edge.
func (m *UserMutation) ResetZonesCreated() {
	m.zones_created = nil
	m.clearedzones_created = false
	m.removedzones_created = nil
}

// AddZonesAssignedIDs adds the "zones_assigned" edge to the Zone entity by ids.
func (m *UserMutation) AddZonesAssignedIDs(ids ...int) {
	if m.zones_assigned == nil {
		m.zones_assigned = make(map[int]struct{})
	}
	for i := range ids {
		m.zones_assigned[ids[i]] = struct{}{}
	}
}

// ClearZonesAssigned clears the "zones_assigned" edge to the Zone entity.
func (m *UserMutation) ClearZonesAssigned() {
	m.clearedzones_assigned = true
}

// ZonesAssignedCleared reports if the "zones_assigned" edge to the Zone entity was cleared.
func (m *UserMutation) ZonesAssignedCleared() bool {
	return m.clearedzones_assigned
}

// RemoveZonesAssignedIDs removes the "zones_assigned" edge to the Zone entity by IDs.
func (m *UserMutation) RemoveZonesAssignedIDs(ids ...int) {
	if m.removedzones_assigned == nil {
		m.removedzones_assigned = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.zones_assigned, ids[i])
		m.removedzones_assigned[ids[i]] = struct{}{}
	}
}

// RemovedZonesAssigned returns the removed IDs of the "zones_assigned" edge to the Zone entity.
func (m *UserMutation) RemovedZonesAssignedIDs() (ids []int) {
	for id := range m.removedzones_assigned {
		ids = append(ids, id)
	}
	return
}

// ZonesAssignedIDs returns the "zones_assigned" edge IDs in the mutation.
func (m *UserMutation) ZonesAssignedIDs() (ids []int) {
	for id := range m.zones_assigned {
		ids = append(ids, id)
	}
	return
}

// ResetZonesAssigned resets all changes to the "zones_assigned" edge.
func (m *UserMutation) ResetZonesAssigned() {
	m.zones_assigned = nil
	m.clearedzones_assigned = false
	m.removedzones_assigned = nil
}

// AddAssignmentIDs adds the "assignments" edge to the ZoneAssignment entity by ids.
func (m *UserMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the ZoneAssignment entity.
func (m *UserMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the ZoneAssignment entity was cleared.
func (m *UserMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the ZoneAssignment entity by IDs.
func (m *UserMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the ZoneAssignment entity.
func (m *UserMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *UserMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *UserMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddAssignmentsMadeIDs adds the "assignments_made" edge to the ZoneAssignment entity by ids.
func (m *UserMutation) AddAssignmentsMadeIDs(ids ...int) {
	if m.assignments_made == nil {
		m.assignments_made = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments_made[ids[i]] = struct{}{}
	}
}

// ClearAssignmentsMade clears the "assignments_made" edge to the ZoneAssignment entity.
func (m *UserMutation) ClearAssignmentsMade() {
	m.clearedassignments_made = true
}

// AssignmentsMadeCleared reports if the "assignments_made" edge to the ZoneAssignment entity was cleared.
func (m *UserMutation) AssignmentsMadeCleared() bool {
	return m.clearedassignments_made
}

// RemoveAssignmentsMadeIDs removes the "assignments_made" edge to the ZoneAssignment entity by IDs.
func (m *UserMutation) RemoveAssignmentsMadeIDs(ids ...int) {
	if m.removedassignments_made == nil {
		m.removedassignments_made = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments_made, ids[i])
		m.removedassignments_made[ids[i]] = struct{}{}
	}
}

// RemovedAssignmentsMade returns the removed IDs of the "assignments_made" edge to the ZoneAssignment entity.
func (m *UserMutation) RemovedAssignmentsMadeIDs() (ids []int) {
	for id := range m.removedassignments_made {
		ids = append(ids, id)
	}
	return
}

// AssignmentsMadeIDs returns the "assignments_made" edge IDs in the mutation.
func (m *UserMutation) AssignmentsMadeIDs() (ids []int) {
	for id := range m.assignments_made {
		ids = append(ids, id)
	}
	return
}

// ResetAssignmentsMade resets all changes to the "assignments_made" edge.
func (m *UserMutation) ResetAssignmentsMade() {
	m.assignments_made = nil
	m.clearedassignments_made = false
	m.removedassignments_made = nil
}

// AddScheduledAssignmentIDs adds the "scheduled_assignments" edge to the ScheduledAssignment entity by ids.
func (m *UserMutation) AddScheduledAssignmentIDs(ids ...int) {
	if m.scheduled_assignments == nil {
		m.scheduled_assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.scheduled_assignments[ids[i]] = struct{}{}
	}
}

// ClearScheduledAssignments clears the "scheduled_assignments" edge to the ScheduledAssignment entity.
func (m *UserMutation) ClearScheduledAssignments() {
	m.clearedscheduled_assignments = true
}

// ScheduledAssignmentsCleared reports if the "scheduled_assignments" edge to the ScheduledAssignment entity was cleared.
func (m *UserMutation) ScheduledAssignmentsCleared() bool {
	return m.clearedscheduled_assignments
}

// RemoveScheduledAssignmentIDs removes the "scheduled_assignments" edge to the ScheduledAssignment entity by IDs.
func (m *UserMutation) RemoveScheduledAssignmentIDs(ids ...int) {
	if m.removedscheduled_assignments == nil {
		m.removedscheduled_assignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.scheduled_assignments, ids[i])
		m.removedscheduled_assignments[ids[i]] = struct{}{}
	}
}

// RemovedScheduledAssignments returns the removed IDs of the "scheduled_assignments" edge to the ScheduledAssignment entity.
func (m *UserMutation) RemovedScheduledAssignmentsIDs() (ids []int) {
	for id := range m.removedscheduled_assignments {
		ids = append(ids, id)
	}
	return
}

// ScheduledAssignmentsIDs returns the "scheduled_assignments" edge IDs in the mutation.
func (m *UserMutation) ScheduledAssignmentsIDs() (ids []int) {
	for id := range m.scheduled_assignments {
		ids = append(ids, id)
	}
	return
}

// ResetScheduledAssignments resets all changes to the "scheduled_assignments" edge.
func (m *UserMutation) ResetScheduledAssignments() {
	m.scheduled_assignments = nil
	m.clearedscheduled_assignments = false
	m.removedscheduled_assignments = nil
}

// AddScheduledAssignmentsMadeIDs adds the "scheduled_assignments_made" edge to the ScheduledAssignment entity by ids.
func (m *UserMutation) AddScheduledAssignmentsMadeIDs(ids ...int) {
	if m.scheduled_assignments_made == nil {
		m.scheduled_assignments_made = make(map[int]struct{})
	}
	for i := range ids {
		m.scheduled_assignments_made[ids[i]] = struct{}{}
	}
}

// ClearScheduledAssignmentsMade clears the "scheduled_assignments_made" edge to the ScheduledAssignment entity.
func (m *UserMutation) ClearScheduledAssignmentsMade() {
	m.clearedscheduled_assignments_made = true
}

// ScheduledAssignmentsMadeCleared reports if the "scheduled_assignments_made" edge to the ScheduledAssignment entity was cleared.
func (m *UserMutation) ScheduledAssignmentsMadeCleared() bool {
	return m.clearedscheduled_assignments_made
}

// RemoveScheduledAssignmentsMadeIDs removes the "scheduled_assignments_made" edge to the ScheduledAssignment entity by IDs.
func (m *UserMutation) RemoveScheduledAssignmentsMadeIDs(ids ...int) {
	if m.removedscheduled_assignments_made == nil {
		m.removedscheduled_assignments_made = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.scheduled_assignments_made, ids[i])
		m.removedscheduled_assignments_made[ids[i]] = struct{}{}
	}
}

// RemovedScheduledAssignmentsMade returns the removed IDs of the "scheduled_assignments_made" edge to the ScheduledAssignment entity.
func (m *UserMutation) RemovedScheduledAssignmentsMadeIDs() (ids []int) {
	for id := range m.removedscheduled_assignments_made {
		ids = append(ids, id)
	}
	return
}

// ScheduledAssignmentsMadeIDs returns the "scheduled_assignments_made" edge IDs in the mutation.
func (m *UserMutation) ScheduledAssignmentsMadeIDs() (ids []int) {
	for id := range m.scheduled_assignments_made {
		ids = append(ids, id)
	}
	return
}

// ResetScheduledAssignmentsMade resets all changes to the "scheduled_assignments_made" edge.
func (m *UserMutation) ResetScheduledAssignmentsMade() {
	m.scheduled_assignments_made = nil
	m.clearedscheduled_assignments_made = false
	m.removedscheduled_assignments_made = nil
}

// AddLeadIDs adds the "leads" edge to the Lead entity by ids.
func (m *UserMutation) AddLeadIDs(ids ...int) {
	if m.leads == nil {
		m.leads = make(map[int]struct{})
	}
	for i := range ids {
		m.leads[ids[i]] = struct{}{}
	}
}

// ClearLeads clears the "leads" edge to the Lead entity.
func (m *UserMutation) ClearLeads() {
	m.clearedleads = true
}

// LeadsCleared reports if the "leads" edge to the Lead entity was cleared.
func (m *UserMutation) LeadsCleared() bool {
	return m.clearedleads
}

// RemoveLeadIDs removes the "leads" edge to the Lead entity by IDs.
func (m *UserMutation) RemoveLeadIDs(ids ...int) {
	if m.removedleads == nil {
		m.removedleads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.leads, ids[i])
		m.removedleads[ids[i]] = struct{}{}
	}
}

// RemovedLeads returns the removed IDs of the "leads" edge to the Lead entity.
func (m *UserMutation) RemovedLeadsIDs() (ids []int) {
	for id := range m.removedleads {
		ids = append(ids, id)
	}
	return
}

// LeadsIDs returns the "leads" edge IDs in the mutation.
func (m *UserMutation) LeadsIDs() (ids []int) {
	for id := range m.leads {
		ids = append(ids, id)
	}
	return
}

// ResetLeads resets all changes to the "leads" edge.
func (m *UserMutation) ResetLeads() {
	m.leads = nil
	m.clearedleads = false
	m.removedleads = nil
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *UserMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *UserMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *UserMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *UserMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *UserMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *UserMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *UserMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// AddRouteIDs adds the "routes" edge to the Route entity by ids.
func (m *UserMutation) AddRouteIDs(ids ...int) {
	if m.routes == nil {
		m.routes = make(map[int]struct{})
	}
	for i := range ids {
		m.routes[ids[i]] = struct{}{}
	}
}

// ClearRoutes clears the "routes" edge to the Route entity.
func (m *UserMutation) ClearRoutes() {
	m.clearedroutes = true
}

// RoutesCleared reports if the "routes" edge to the Route entity was cleared.
func (m *UserMutation) RoutesCleared() bool {
	return m.clearedroutes
}

// RemoveRouteIDs removes the "routes" edge to the Route entity by IDs.
func (m *UserMutation) RemoveRouteIDs(ids ...int) {
	if m.removedroutes == nil {
		m.removedroutes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.routes, ids[i])
		m.removedroutes[ids[i]] = struct{}{}
	}
}

// RemovedRoutes returns the removed IDs of the "routes" edge to the Route entity.
func (m *UserMutation) RemovedRoutesIDs() (ids []int) {
	for id := range m.removedroutes {
		ids = append(ids, id)
	}
	return
}

// RoutesIDs returns the "routes" edge IDs in the mutation.
func (m *UserMutation) RoutesIDs() (ids []int) {
	for id := range m.routes {
		ids = append(ids, id)
	}
	return
}

// ResetRoutes resets all changes to the "routes" edge.
func (m *UserMutation) ResetRoutes() {
	m.routes = nil
	m.clearedroutes = false
	m.removedroutes = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by ids.
func (m *UserMutation) AddAuditLogIDs(ids ...int) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[int]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the AuditLog entity.
func (m *UserMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the AuditLog entity was cleared.
func (m *UserMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the AuditLog entity by IDs.
func (m *UserMutation) RemoveAuditLogIDs(ids ...int) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the AuditLog entity.
func (m *UserMutation) RemovedAuditLogsIDs() (ids []int) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *UserMutation) AuditLogsIDs() (ids []int) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *UserMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.assignment_status != nil {
		fields = append(fields, user.FieldAssignmentStatus)
	}
	if m.primary_zone_id != nil {
		fields = append(fields, user.FieldPrimaryZoneID)
	}
	if m.zone_ids != nil {
		fields = append(fields, user.FieldZoneIds)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldName:
		return m.Name()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldRole:
		return m.Role()
	case user.FieldStatus:
		return m.Status()
	case user.FieldAssignmentStatus:
		return m.AssignmentStatus()
	case user.FieldPrimaryZoneID:
		return m.PrimaryZoneID()
	case user.FieldZoneIds:
		return m.ZoneIds()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldAssignmentStatus:
		return m.OldAssignmentStatus(ctx)
	case user.FieldPrimaryZoneID:
		return m.OldPrimaryZoneID(ctx)
	case user.FieldZoneIds:
		return m.OldZoneIds(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldAssignmentStatus:
		v, ok := value.(user.AssignmentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentStatus(v)
		return nil
	case user.FieldPrimaryZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryZoneID(v)
		return nil
	case user.FieldZoneIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneIds(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addprimary_zone_id != nil {
		fields = append(fields, user.FieldPrimaryZoneID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldPrimaryZoneID:
		return m.AddedPrimaryZoneID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldPrimaryZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrimaryZoneID(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldPrimaryZoneID) {
		fields = append(fields, user.FieldPrimaryZoneID)
	}
	if m.FieldCleared(user.FieldZoneIds) {
		fields = append(fields, user.FieldZoneIds)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldPrimaryZoneID:
		m.ClearPrimaryZoneID()
		return nil
	case user.FieldZoneIds:
		m.ClearZoneIds()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldAssignmentStatus:
		m.ResetAssignmentStatus()
		return nil
	case user.FieldPrimaryZoneID:
		m.ResetPrimaryZoneID()
		return nil
	case user.FieldZoneIds:
		m.ResetZoneIds()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 14)
	if m.teams_created != nil {
		edges = append(edges, user.EdgeTeamsCreated)
	}
	if m.teams_led != nil {
		edges = append(edges, user.EdgeTeamsLed)
	}
	if m.team_memberships != nil {
		edges = append(edges, user.EdgeTeamMemberships)
	}
	if m.team_members_added != nil {
		edges = append(edges, user.EdgeTeamMembersAdded)
	}
	if m.zones_created != nil {
		edges = append(edges, user.EdgeZonesCreated)
	}
	if m.zones_assigned != nil {
		edges = append(edges, user.EdgeZonesAssigned)
	}
	if m.assignments != nil {
		edges = append(edges, user.EdgeAssignments)
	}
	if m.assignments_made != nil {
		edges = append(edges, user.EdgeAssignmentsMade)
	}
	if m.scheduled_assignments != nil {
		edges = append(edges, user.EdgeScheduledAssignments)
	}
	if m.scheduled_assignments_made != nil {
		edges = append(edges, user.EdgeScheduledAssignmentsMade)
	}
	if m.leads != nil {
		edges = append(edges, user.EdgeLeads)
	}
	if m.activities != nil {
		edges = append(edges, user.EdgeActivities)
	}
	if m.routes != nil {
		edges = append(edges, user.EdgeRoutes)
	}
	if m.audit_logs != nil {
		edges = append(edges, user.EdgeAuditLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTeamsCreated:
		ids := make([]ent.Value, 0, len(m.teams_created))
		for id := range m.teams_created {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTeamsLed:
		ids := make([]ent.Value, 0, len(m.teams_led))
		for id := range m.teams_led {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTeamMemberships:
		ids := make([]ent.Value, 0, len(m.team_memberships))
		for id := range m.team_memberships {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTeamMembersAdded:
		ids := make([]ent.Value, 0, len(m.team_members_added))
		for id := range m.team_members_added {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeZonesCreated:
		ids := make([]ent.Value, 0, len(m.zones_created))
		for id := range m.zones_created {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeZonesAssigned:
		ids := make([]ent.Value, 0, len(m.zones_assigned))
		for id := range m.zones_assigned {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAssignmentsMade:
		ids := make([]ent.Value, 0, len(m.assignments_made))
		for id := range m.assignments_made {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeScheduledAssignments:
		ids := make([]ent.Value, 0, len(m.scheduled_assignments))
		for id := range m.scheduled_assignments {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeScheduledAssignmentsMade:
		ids := make([]ent.Value, 0, len(m.scheduled_assignments_made))
		for id := range m.scheduled_assignments_made {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.leads))
		for id := range m.leads {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeRoutes:
		ids := make([]ent.Value, 0, len(m.routes))
		for id := range m.routes {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 14)
	if m.removedteams_created != nil {
		edges = append(edges, user.EdgeTeamsCreated)
	}
	if m.removedteams_led != nil {
		edges = append(edges, user.EdgeTeamsLed)
	}
	if m.removedteam_memberships != nil {
		edges = append(edges, user.EdgeTeamMemberships)
	}
	if m.removedteam_members_added != nil {
		edges = append(edges, user.EdgeTeamMembersAdded)
	}
	if m.removedzones_created != nil {
		edges = append(edges, user.EdgeZonesCreated)
	}
	if m.removedzones_assigned != nil {
		edges = append(edges, user.EdgeZonesAssigned)
	}
	if m.removedassignments != nil {
		edges = append(edges, user.EdgeAssignments)
	}
	if m.removedassignments_made != nil {
		edges = append(edges, user.EdgeAssignmentsMade)
	}
	if m.removedscheduled_assignments != nil {
		edges = append(edges, user.EdgeScheduledAssignments)
	}
	if m.removedscheduled_assignments_made != nil {
		edges = append(edges, user.EdgeScheduledAssignmentsMade)
	}
	if m.removedleads != nil {
		edges = append(edges, user.EdgeLeads)
	}
	if m.removedactivities != nil {
		edges = append(edges, user.EdgeActivities)
	}
	if m.removedroutes != nil {
		edges = append(edges, user.EdgeRoutes)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, user.EdgeAuditLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTeamsCreated:
		ids := make([]ent.Value, 0, len(m.removedteams_created))
		for id := range m.removedteams_created {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTeamsLed:
		ids := make([]ent.Value, 0, len(m.removedteams_led))
		for id := range m.removedteams_led {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTeamMemberships:
		ids := make([]ent.Value, 0, len(m.removedteam_memberships))
		for id := range m.removedteam_memberships {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTeamMembersAdded:
		ids := make([]ent.Value, 0, len(m.removedteam_members_added))
		for id := range m.removedteam_members_added {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeZonesCreated:
		ids := make([]ent.Value, 0, len(m.removedzones_created))
		for id := range m.removedzones_created {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeZonesAssigned:
		ids := make([]ent.Value, 0, len(m.removedzones_assigned))
		for id := range m.removedzones_assigned {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAssignmentsMade:
		ids := make([]ent.Value, 0, len(m.removedassignments_made))
		for id := range m.removedassignments_made {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeScheduledAssignments:
		ids := make([]ent.Value, 0, len(m.removedscheduled_assignments))
		for id := range m.removedscheduled_assignments {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeScheduledAssignmentsMade:
		ids := make([]ent.Value, 0, len(m.removedscheduled_assignments_made))
		for id := range m.removedscheduled_assignments_made {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.removedleads))
		for id := range m.removedleads {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeRoutes:
		ids := make([]ent.Value, 0, len(m.removedroutes))
		for id := range m.removedroutes {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 14)
	if m.clearedteams_created {
		edges = append(edges, user.EdgeTeamsCreated)
	}
	if m.clearedteams_led {
		edges = append(edges, user.EdgeTeamsLed)
	}
	if m.clearedteam_memberships {
		edges = append(edges, user.EdgeTeamMemberships)
	}
	if m.clearedteam_members_added {
		edges = append(edges, user.EdgeTeamMembersAdded)
	}
	if m.clearedzones_created {
		edges = append(edges, user.EdgeZonesCreated)
	}
	if m.clearedzones_assigned {
		edges = append(edges, user.EdgeZonesAssigned)
	}
	if m.clearedassignments {
		edges = append(edges, user.EdgeAssignments)
	}
	if m.clearedassignments_made {
		edges = append(edges, user.EdgeAssignmentsMade)
	}
	if m.clearedscheduled_assignments {
		edges = append(edges, user.EdgeScheduledAssignments)
	}
	if m.clearedscheduled_assignments_made {
		edges = append(edges, user.EdgeScheduledAssignmentsMade)
	}
	if m.clearedleads {
		edges = append(edges, user.EdgeLeads)
	}
	if m.clearedactivities {
		edges = append(edges, user.EdgeActivities)
	}
	if m.clearedroutes {
		edges = append(edges, user.EdgeRoutes)
	}
	if m.clearedaudit_logs {
		edges = append(edges, user.EdgeAuditLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeTeamsCreated:
		return m.clearedteams_created
	case user.EdgeTeamsLed:
		return m.clearedteams_led
	case user.EdgeTeamMemberships:
		return m.clearedteam_memberships
	case user.EdgeTeamMembersAdded:
		return m.clearedteam_members_added
	case user.EdgeZonesCreated:
		return m.clearedzones_created
	case user.EdgeZonesAssigned:
		return m.clearedzones_assigned
	case user.EdgeAssignments:
		return m.clearedassignments
	case user.EdgeAssignmentsMade:
		return m.clearedassignments_made
	case user.EdgeScheduledAssignments:
		return m.clearedscheduled_assignments
	case user.EdgeScheduledAssignmentsMade:
		return m.clearedscheduled_assignments_made
	case user.EdgeLeads:
		return m.clearedleads
	case user.EdgeActivities:
		return m.clearedactivities
	case user.EdgeRoutes:
		return m.clearedroutes
	case user.EdgeAuditLogs:
		return m.clearedaudit_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeTeamsCreated:
		m.ResetTeamsCreated()
		return nil
	case user.EdgeTeamsLed:
		m.ResetTeamsLed()
		return nil
	case user.EdgeTeamMemberships:
		m.ResetTeamMemberships()
		return nil
	case user.EdgeTeamMembersAdded:
		m.ResetTeamMembersAdded()
		return nil
	case user.EdgeZonesCreated:
		m.ResetZonesCreated()
		return nil
	case user.EdgeZonesAssigned:
		m.ResetZonesAssigned()
		return nil
	case user.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case user.EdgeAssignmentsMade:
		m.ResetAssignmentsMade()
		return nil
	case user.EdgeScheduledAssignments:
		m.ResetScheduledAssignments()
		return nil
	case user.EdgeScheduledAssignmentsMade:
		m.ResetScheduledAssignmentsMade()
		return nil
	case user.EdgeLeads:
		m.ResetLeads()
		return nil
	case user.EdgeActivities:
		m.ResetActivities()
		return nil
	case user.EdgeRoutes:
		m.ResetRoutes()
		return nil
	case user.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// ZoneMutation represents an operation that mutates the Zone nodes in the graph.
type ZoneMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	name                         *string
	description                  *string
	boundary                     *[][]float64
	appendboundary               [][]float64
	status                       *zone.Status
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	created_by                   *int
	clearedcreated_by            bool
	assigned_agent               *int
	clearedassigned_agent        bool
	team                         *int
	clearedteam                  bool
	assignments                  map[int]struct{}
	removedassignments           map[int]struct{}
	clearedassignments           bool
	scheduled_assignments        map[int]struct{}
	removedscheduled_assignments map[int]struct{}
	clearedscheduled_assignments bool
	residents                    map[int]struct{}
	removedresidents             map[int]struct{}
	clearedresidents             bool
	leads                        map[int]struct{}
	removedleads                 map[int]struct{}
	clearedleads                 bool
	activities                   map[int]struct{}
	removedactivities            map[int]struct{}
	clearedactivities            bool
	routes                       map[int]struct{}
	removedroutes                map[int]struct{}
	clearedroutes                bool
	done                         bool
	oldValue                     func(context.Context) (*Zone, error)
	predicates                   []predicate.Zone
}

var _ ent.Mutation = (*ZoneMutation)(nil)

// zoneOption allows management of the mutation configuration using functional options.
type zoneOption func(*ZoneMutation)

// newZoneMutation creates new mutation for the Zone entity.
func newZoneMutation(c config, op Op, opts ...zoneOption) *ZoneMutation {
	m := &ZoneMutation{
		config:        c,
		op:            op,
		typ:           TypeZone,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withZoneID sets the ID field of the mutation.
func withZoneID(id int) zoneOption {
	return func(m *ZoneMutation) {
		var (
			err   error
			once  sync.Once
			value *Zone
		)
		m.oldValue = func(ctx context.Context) (*Zone, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Zone.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withZone sets the old Zone of the mutation.
func withZone(node *Zone) zoneOption {
	return func(m *ZoneMutation) {
		m.oldValue = func(context.Context) (*Zone, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ZoneMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ZoneMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ZoneMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ZoneMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Zone.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ZoneMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ZoneMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ZoneMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ZoneMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ZoneMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ZoneMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[zone.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ZoneMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[zone.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ZoneMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, zone.FieldDescription)
}

// SetBoundary sets the "boundary" field.
func (m *ZoneMutation) SetBoundary(f [][]float64) {
	m.boundary = &f
	m.appendboundary = nil
}

// Boundary returns the value of the "boundary" field in the mutation.
func (m *ZoneMutation) Boundary() (r [][]float64, exists bool) {
	v := m.boundary
	if v == nil {
		return
	}
	return *v, true
}

// OldBoundary returns the old "boundary" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldBoundary(ctx context.Context) (v [][]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoundary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoundary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoundary: %w", err)
	}
	return oldValue.Boundary, nil
}

// AppendBoundary adds f to the "boundary" field.
func (m *ZoneMutation) AppendBoundary(f [][]float64) {
	m.appendboundary = append(m.appendboundary, f...)
}

// AppendedBoundary returns the list of values that were appended to the "boundary" field in this mutation.
func (m *ZoneMutation) AppendedBoundary() ([][]float64, bool) {
	if len(m.appendboundary) == 0 {
		return nil, false
	}
	return m.appendboundary, true
}

// ClearBoundary clears the value of the "boundary" field.
func (m *ZoneMutation) ClearBoundary() {
	m.boundary = nil
	m.appendboundary = nil
	m.clearedFields[zone.FieldBoundary] = struct{}{}
}

// BoundaryCleared returns if the "boundary" field was cleared in this mutation.
func (m *ZoneMutation) BoundaryCleared() bool {
	_, ok := m.clearedFields[zone.FieldBoundary]
	return ok
}

// ResetBoundary resets all changes to the "boundary" field.
func (m *ZoneMutation) ResetBoundary() {
	m.boundary = nil
	m.appendboundary = nil
	delete(m.clearedFields, zone.FieldBoundary)
}

// SetStatus sets the "status" field.
func (m *ZoneMutation) SetStatus(z zone.Status) {
	m.status = &z
}

// Status returns the value of the "status" field in the mutation.
func (m *ZoneMutation) Status() (r zone.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldStatus(ctx context.Context) (v zone.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ZoneMutation) ResetStatus() {
	m.status = nil
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *ZoneMutation) SetAssignedAgentID(i int) {
	m.assigned_agent = &i
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *ZoneMutation) AssignedAgentID() (r int, exists bool) {
	v := m.assigned_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldAssignedAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *ZoneMutation) ClearAssignedAgentID() {
	m.assigned_agent = nil
	m.clearedFields[zone.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *ZoneMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[zone.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *ZoneMutation) ResetAssignedAgentID() {
	m.assigned_agent = nil
	delete(m.clearedFields, zone.FieldAssignedAgentID)
}

// SetTeamID sets the "team_id" field.
func (m *ZoneMutation) SetTeamID(i int) {
	m.team = &i
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *ZoneMutation) TeamID() (r int, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldTeamID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ClearTeamID clears the value of the "team_id" field.
func (m *ZoneMutation) ClearTeamID() {
	m.team = nil
	m.clearedFields[zone.FieldTeamID] = struct{}{}
}

// TeamIDCleared returns if the "team_id" field was cleared in this mutation.
func (m *ZoneMutation) TeamIDCleared() bool {
	_, ok := m.clearedFields[zone.FieldTeamID]
	return ok
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *ZoneMutation) ResetTeamID() {
	m.team = nil
	delete(m.clearedFields, zone.FieldTeamID)
}

// SetCreatedByUserID sets the "created_by_user_id" field.
func (m *ZoneMutation) SetCreatedByUserID(i int) {
	m.created_by = &i
}

// CreatedByUserID returns the value of the "created_by_user_id" field in the mutation.
func (m *ZoneMutation) CreatedByUserID() (r int, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByUserID returns the old "created_by_user_id" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldCreatedByUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByUserID: %w", err)
	}
	return oldValue.CreatedByUserID, nil
}

// ResetCreatedByUserID resets all changes to the "created_by_user_id" field.
func (m *ZoneMutation) ResetCreatedByUserID() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ZoneMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ZoneMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ZoneMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ZoneMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ZoneMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ZoneMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedByID sets the "created_by" edge to the User entity by id.
func (m *ZoneMutation) SetCreatedByID(id int) {
	m.created_by = &id
}

// ClearCreatedBy clears the "created_by" edge to the User entity.
func (m *ZoneMutation) ClearCreatedBy() {
	m.clearedcreated_by = true
	m.clearedFields[zone.FieldCreatedByUserID] = struct{}{}
}

// CreatedByCleared reports if the "created_by" edge to the User entity was cleared.
func (m *ZoneMutation) CreatedByCleared() bool {
	return m.clearedcreated_by
}

// CreatedByID returns the "created_by" edge ID in the mutation.
func (m *ZoneMutation) CreatedByID() (id int, exists bool) {
	if m.created_by != nil {
		return *m.created_by, true
	}
	return
}

// CreatedByIDs returns the "created_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreatedByID instead. It exists only for internal usage by the builders.
func (m *ZoneMutation) CreatedByIDs() (ids []int) {
	if id := m.created_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreatedBy resets all changes to the "created_by" edge.
func (m *ZoneMutation) ResetCreatedBy() {
	m.created_by = nil
	m.clearedcreated_by = false
}

// ClearAssignedAgent clears the "assigned_agent" edge to the User entity.
func (m *ZoneMutation) ClearAssignedAgent() {
	m.clearedassigned_agent = true
	m.clearedFields[zone.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentCleared reports if the "assigned_agent" edge to the User entity was cleared.
func (m *ZoneMutation) AssignedAgentCleared() bool {
	return m.AssignedAgentIDCleared() || m.clearedassigned_agent
}

// AssignedAgentIDs returns the "assigned_agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignedAgentID instead. It exists only for internal usage by the builders.
func (m *ZoneMutation) AssignedAgentIDs() (ids []int) {
	if id := m.assigned_agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignedAgent resets all changes to the "assigned_agent" edge.
func (m *ZoneMutation) ResetAssignedAgent() {
	m.assigned_agent = nil
	m.clearedassigned_agent = false
}

// ClearTeam clears the "team" edge to the Team entity.
func (m *ZoneMutation) ClearTeam() {
	m.clearedteam = true
	m.clearedFields[zone.FieldTeamID] = struct{}{}
}

// TeamCleared reports if the "team" edge to the Team entity was cleared.
func (m *ZoneMutation) TeamCleared() bool {
	return m.TeamIDCleared() || m.clearedteam
}

// TeamIDs returns the "team" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TeamID instead. It exists only for internal usage by the builders.
func (m *ZoneMutation) TeamIDs() (ids []int) {
	if id := m.team; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTeam resets all changes to the "team" edge.
func (m *ZoneMutation) ResetTeam() {
	m.team = nil
	m.clearedteam = false
}

// AddAssignmentIDs adds the "assignments" edge to the ZoneAssignment entity by ids.
func (m *ZoneMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the ZoneAssignment entity.
func (m *ZoneMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the ZoneAssignment entity was cleared.
func (m *ZoneMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the ZoneAssignment entity by IDs.
func (m *ZoneMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the ZoneAssignment entity.
func (m *ZoneMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *ZoneMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *ZoneMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddScheduledAssignmentIDs adds the "scheduled_assignments" edge to the ScheduledAssignment entity by ids.
func (m *ZoneMutation) AddScheduledAssignmentIDs(ids ...int) {
	if m.scheduled_assignments == nil {
		m.scheduled_assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.scheduled_assignments[ids[i]] = struct{}{}
	}
}

// ClearScheduledAssignments clears the "scheduled_assignments" edge to the ScheduledAssignment entity.
func (m *ZoneMutation) ClearScheduledAssignments() {
	m.clearedscheduled_assignments = true
}

// ScheduledAssignmentsCleared reports if the "scheduled_assignments" edge to the ScheduledAssignment entity was cleared.
func (m *ZoneMutation) ScheduledAssignmentsCleared() bool {
	return m.clearedscheduled_assignments
}

// RemoveScheduledAssignmentIDs removes the "scheduled_assignments" edge to the ScheduledAssignment entity by IDs.
func (m *ZoneMutation) RemoveScheduledAssignmentIDs(ids ...int) {
	if m.removedscheduled_assignments == nil {
		m.removedscheduled_assignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.scheduled_assignments, ids[i])
		m.removedscheduled_assignments[ids[i]] = struct{}{}
	}
}

// RemovedScheduledAssignments returns the removed IDs of the "scheduled_assignments" edge to the ScheduledAssignment entity.
func (m *ZoneMutation) RemovedScheduledAssignmentsIDs() (ids []int) {
	for id := range m.removedscheduled_assignments {
		ids = append(ids, id)
	}
	return
}

// ScheduledAssignmentsIDs returns the "scheduled_assignments" edge IDs in the mutation.
func (m *ZoneMutation) ScheduledAssignmentsIDs() (ids []int) {
	for id := range m.scheduled_assignments {
		ids = append(ids, id)
	}
	return
}

// ResetScheduledAssignments resets all changes to the "scheduled_assignments" edge.
func (m *ZoneMutation) ResetScheduledAssignments() {
	m.scheduled_assignments = nil
	m.clearedscheduled_assignments = false
	m.removedscheduled_assignments = nil
}

// AddResidentIDs adds the "residents" edge to the Resident entity by ids.
func (m *ZoneMutation) AddResidentIDs(ids ...int) {
	if m.residents == nil {
		m.residents = make(map[int]struct{})
	}
	for i := range ids {
		m.residents[ids[i]] = struct{}{}
	}
}

// ClearResidents clears the "residents" edge to the Resident entity.
func (m *ZoneMutation) ClearResidents() {
	m.clearedresidents = true
}

// ResidentsCleared reports if the "residents" edge to the Resident entity was cleared.
func (m *ZoneMutation) ResidentsCleared() bool {
	return m.clearedresidents
}

// RemoveResidentIDs removes the "residents" edge to the Resident entity by IDs.
func (m *ZoneMutation) RemoveResidentIDs(ids ...int) {
	if m.removedresidents == nil {
		m.removedresidents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.residents, ids[i])
		m.removedresidents[ids[i]] = struct{}{}
	}
}

// RemovedResidents returns the removed IDs of the "residents" edge to the Resident entity.
func (m *ZoneMutation) RemovedResidentsIDs() (ids []int) {
	for id := range m.removedresidents {
		ids = append(ids, id)
	}
	return
}

// ResidentsIDs returns the "residents" edge IDs in the mutation.
func (m *ZoneMutation) ResidentsIDs() (ids []int) {
	for id := range m.residents {
		ids = append(ids, id)
	}
	return
}

// ResetResidents resets all changes to the "residents" edge.
func (m *ZoneMutation) ResetResidents() {
	m.residents = nil
	m.clearedresidents = false
	m.removedresidents = nil
}

// AddLeadIDs adds the "leads" edge to the Lead entity by ids.
func (m *ZoneMutation) AddLeadIDs(ids ...int) {
	if m.leads == nil {
		m.leads = make(map[int]struct{})
	}
	for i := range ids {
		m.leads[ids[i]] = struct{}{}
	}
}

// ClearLeads clears the "leads" edge to the Lead entity.
func (m *ZoneMutation) ClearLeads() {
	m.clearedleads = true
}

// LeadsCleared reports if the "leads" edge to the Lead entity was cleared.
func (m *ZoneMutation) LeadsCleared() bool {
	return m.clearedleads
}

// RemoveLeadIDs removes the "leads" edge to the Lead entity by IDs.
func (m *ZoneMutation) RemoveLeadIDs(ids ...int) {
	if m.removedleads == nil {
		m.removedleads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.leads, ids[i])
		m.removedleads[ids[i]] = struct{}{}
	}
}

// RemovedLeads returns the removed IDs of the "leads" edge to the Lead entity.
func (m *ZoneMutation) RemovedLeadsIDs() (ids []int) {
	for id := range m.removedleads {
		ids = append(ids, id)
	}
	return
}

// LeadsIDs returns the "leads" edge IDs in the mutation.
func (m *ZoneMutation) LeadsIDs() (ids []int) {
	for id := range m.leads {
		ids = append(ids, id)
	}
	return
}

// ResetLeads resets all changes to the "leads" edge.
func (m *ZoneMutation) ResetLeads() {
	m.leads = nil
	m.clearedleads = false
	m.removedleads = nil
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *ZoneMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *ZoneMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *ZoneMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *ZoneMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *ZoneMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *ZoneMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *ZoneMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// AddRouteIDs adds the "routes" edge to the Route entity by ids.
func (m *ZoneMutation) AddRouteIDs(ids ...int) {
	if m.routes == nil {
		m.routes = make(map[int]struct{})
	}
	for i := range ids {
		m.routes[ids[i]] = struct{}{}
	}
}

// ClearRoutes clears the "routes" edge to the Route entity.
func (m *ZoneMutation) ClearRoutes() {
	m.clearedroutes = true
}

// RoutesCleared reports if the "routes" edge to the Route entity was cleared.
func (m *ZoneMutation) RoutesCleared() bool {
	return m.clearedroutes
}

// RemoveRouteIDs removes the "routes" edge to the Route entity by IDs.
func (m *ZoneMutation) RemoveRouteIDs(ids ...int) {
	if m.removedroutes == nil {
		m.removedroutes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.routes, ids[i])
		m.removedroutes[ids[i]] = struct{}{}
	}
}

// RemovedRoutes returns the removed IDs of the "routes" edge to the Route entity.
func (m *ZoneMutation) RemovedRoutesIDs() (ids []int) {
	for id := range m.removedroutes {
		ids = append(ids, id)
	}
	return
}

// RoutesIDs returns the "routes" edge IDs in the mutation.
func (m *ZoneMutation) RoutesIDs() (ids []int) {
	for id := range m.routes {
		ids = append(ids, id)
	}
	return
}

// ResetRoutes resets all changes to the "routes" edge.
func (m *ZoneMutation) ResetRoutes() {
	m.routes = nil
	m.clearedroutes = false
	m.removedroutes = nil
}

// Where appends a list predicates to the ZoneMutation builder.
func (m *ZoneMutation) Where(ps ...predicate.Zone) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ZoneMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ZoneMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Zone, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ZoneMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ZoneMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Zone).
func (m *ZoneMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ZoneMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, zone.FieldName)
	}
	if m.description != nil {
		fields = append(fields, zone.FieldDescription)
	}
	if m.boundary != nil {
		fields = append(fields, zone.FieldBoundary)
	}
	if m.status != nil {
		fields = append(fields, zone.FieldStatus)
	}
	if m.assigned_agent != nil {
		fields = append(fields, zone.FieldAssignedAgentID)
	}
	if m.team != nil {
		fields = append(fields, zone.FieldTeamID)
	}
	if m.created_by != nil {
		fields = append(fields, zone.FieldCreatedByUserID)
	}
	if m.created_at != nil {
		fields = append(fields, zone.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, zone.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ZoneMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case zone.FieldName:
		return m.Name()
	case zone.FieldDescription:
		return m.Description()
	case zone.FieldBoundary:
		return m.Boundary()
	case zone.FieldStatus:
		return m.Status()
	case zone.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case zone.FieldTeamID:
		return m.TeamID()
	case zone.FieldCreatedByUserID:
		return m.CreatedByUserID()
	case zone.FieldCreatedAt:
		return m.CreatedAt()
	case zone.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ZoneMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case zone.FieldName:
		return m.OldName(ctx)
	case zone.FieldDescription:
		return m.OldDescription(ctx)
	case zone.FieldBoundary:
		return m.OldBoundary(ctx)
	case zone.FieldStatus:
		return m.OldStatus(ctx)
	case zone.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case zone.FieldTeamID:
		return m.OldTeamID(ctx)
	case zone.FieldCreatedByUserID:
		return m.OldCreatedByUserID(ctx)
	case zone.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case zone.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Zone field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZoneMutation) SetField(name string, value ent.Value) error {
	switch name {
	case zone.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case zone.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case zone.FieldBoundary:
		v, ok := value.([][]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoundary(v)
		return nil
	case zone.FieldStatus:
		v, ok := value.(zone.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case zone.FieldAssignedAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case zone.FieldTeamID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case zone.FieldCreatedByUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByUserID(v)
		return nil
	case zone.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case zone.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Zone field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ZoneMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ZoneMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZoneMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Zone numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ZoneMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(zone.FieldDescription) {
		fields = append(fields, zone.FieldDescription)
	}
	if m.FieldCleared(zone.FieldBoundary) {
		fields = append(fields, zone.FieldBoundary)
	}
	if m.FieldCleared(zone.FieldAssignedAgentID) {
		fields = append(fields, zone.FieldAssignedAgentID)
	}
	if m.FieldCleared(zone.FieldTeamID) {
		fields = append(fields, zone.FieldTeamID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ZoneMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ZoneMutation) ClearField(name string) error {
	switch name {
	case zone.FieldDescription:
		m.ClearDescription()
		return nil
	case zone.FieldBoundary:
		m.ClearBoundary()
		return nil
	case zone.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	case zone.FieldTeamID:
		m.ClearTeamID()
		return nil
	}
	return fmt.Errorf("unknown Zone nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ZoneMutation) ResetField(name string) error {
	switch name {
	case zone.FieldName:
		m.ResetName()
		return nil
	case zone.FieldDescription:
		m.ResetDescription()
		return nil
	case zone.FieldBoundary:
		m.ResetBoundary()
		return nil
	case zone.FieldStatus:
		m.ResetStatus()
		return nil
	case zone.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case zone.FieldTeamID:
		m.ResetTeamID()
		return nil
	case zone.FieldCreatedByUserID:
		m.ResetCreatedByUserID()
		return nil
	case zone.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case zone.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Zone field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ZoneMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.created_by != nil {
		edges = append(edges, zone.EdgeCreatedBy)
	}
	if m.assigned_agent != nil {
		edges = append(edges, zone.EdgeAssignedAgent)
	}
	if m.team != nil {
		edges = append(edges, zone.EdgeTeam)
	}
	if m.assignments != nil {
		edges = append(edges, zone.EdgeAssignments)
	}
	if m.scheduled_assignments != nil {
		edges = append(edges, zone.EdgeScheduledAssignments)
	}
	if m.residents != nil {
		edges = append(edges, zone.EdgeResidents)
	}
	if m.leads != nil {
		edges = append(edges, zone.EdgeLeads)
	}
	if m.activities != nil {
		edges = append(edges, zone.EdgeActivities)
	}
	if m.routes != nil {
		edges = append(edges, zone.EdgeRoutes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ZoneMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case zone.EdgeCreatedBy:
		if id := m.created_by; id != nil {
			return []ent.Value{*id}
		}
	case zone.EdgeAssignedAgent:
		if id := m.assigned_agent; id != nil {
			return []ent.Value{*id}
		}
	case zone.EdgeTeam:
		if id := m.team; id != nil {
			return []ent.Value{*id}
		}
	case zone.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeScheduledAssignments:
		ids := make([]ent.Value, 0, len(m.scheduled_assignments))
		for id := range m.scheduled_assignments {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeResidents:
		ids := make([]ent.Value, 0, len(m.residents))
		for id := range m.residents {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.leads))
		for id := range m.leads {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeRoutes:
		ids := make([]ent.Value, 0, len(m.routes))
		for id := range m.routes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ZoneMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedassignments != nil {
		edges = append(edges, zone.EdgeAssignments)
	}
	if m.removedscheduled_assignments != nil {
		edges = append(edges, zone.EdgeScheduledAssignments)
	}
	if m.removedresidents != nil {
		edges = append(edges, zone.EdgeResidents)
	}
	if m.removedleads != nil {
		edges = append(edges, zone.EdgeLeads)
	}
	if m.removedactivities != nil {
		edges = append(edges, zone.EdgeActivities)
	}
	if m.removedroutes != nil {
		edges = append(edges, zone.EdgeRoutes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ZoneMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case zone.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeScheduledAssignments:
		ids := make([]ent.Value, 0, len(m.removedscheduled_assignments))
		for id := range m.removedscheduled_assignments {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeResidents:
		ids := make([]ent.Value, 0, len(m.removedresidents))
		for id := range m.removedresidents {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.removedleads))
		for id := range m.removedleads {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	case zone.EdgeRoutes:
		ids := make([]ent.Value, 0, len(m.removedroutes))
		for id := range m.removedroutes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ZoneMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedcreated_by {
		edges = append(edges, zone.EdgeCreatedBy)
	}
	if m.clearedassigned_agent {
		edges = append(edges, zone.EdgeAssignedAgent)
	}
	if m.clearedteam {
		edges = append(edges, zone.EdgeTeam)
	}
	if m.clearedassignments {
		edges = append(edges, zone.EdgeAssignments)
	}
	if m.clearedscheduled_assignments {
		edges = append(edges, zone.EdgeScheduledAssignments)
	}
	if m.clearedresidents {
		edges = append(edges, zone.EdgeResidents)
	}
	if m.clearedleads {
		edges = append(edges, zone.EdgeLeads)
	}
	if m.clearedactivities {
		edges = append(edges, zone.EdgeActivities)
	}
	if m.clearedroutes {
		edges = append(edges, zone.EdgeRoutes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ZoneMutation) EdgeCleared(name string) bool {
	switch name {
	case zone.EdgeCreatedBy:
		return m.clearedcreated_by
	case zone.EdgeAssignedAgent:
		return m.clearedassigned_agent
	case zone.EdgeTeam:
		return m.clearedteam
	case zone.EdgeAssignments:
		return m.clearedassignments
	case zone.EdgeScheduledAssignments:
		return m.clearedscheduled_assignments
	case zone.EdgeResidents:
		return m.clearedresidents
	case zone.EdgeLeads:
		return m.clearedleads
	case zone.EdgeActivities:
		return m.clearedactivities
	case zone.EdgeRoutes:
		return m.clearedroutes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ZoneMutation) ClearEdge(name string) error {
	switch name {
	case zone.EdgeCreatedBy:
		m.ClearCreatedBy()
		return nil
	case zone.EdgeAssignedAgent:
		m.ClearAssignedAgent()
		return nil
	case zone.EdgeTeam:
		m.ClearTeam()
		return nil
	}
	return fmt.Errorf("unknown Zone unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ZoneMutation) ResetEdge(name string) error {
	switch name {
	case zone.EdgeCreatedBy:
		m.ResetCreatedBy()
		return nil
	case zone.EdgeAssignedAgent:
		m.ResetAssignedAgent()
		return nil
	case zone.EdgeTeam:
		m.ResetTeam()
		return nil
	case zone.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case zone.EdgeScheduledAssignments:
		m.ResetScheduledAssignments()
		return nil
	case zone.EdgeResidents:
		m.ResetResidents()
		return nil
	case zone.EdgeLeads:
		m.ResetLeads()
		return nil
	case zone.EdgeActivities:
		m.ResetActivities()
		return nil
	case zone.EdgeRoutes:
		m.ResetRoutes()
		return nil
	}
	return fmt.Errorf("unknown Zone edge %s", name)
}

// ZoneAssignmentMutation represents an operation that mutates the ZoneAssignment nodes in the graph.
type ZoneAssignmentMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	effective_from     *time.Time
	effective_to       *time.Time
	status             *zoneassignment.Status
	created_at         *time.Time
	clearedFields      map[string]struct{}
	zone               *int
	clearedzone        bool
	agent              *int
	clearedagent       bool
	team               *int
	clearedteam        bool
	assigned_by        *int
	clearedassigned_by bool
	done               bool
	oldValue           func(context.Context) (*ZoneAssignment, error)
	predicates         []predicate.ZoneAssignment
}

var _ ent.Mutation = (*ZoneAssignmentMutation)(nil)

// zoneassignmentOption allows management of the mutation configuration using functional options.
type zoneassignmentOption func(*ZoneAssignmentMutation)

// newZoneAssignmentMutation creates new mutation for the ZoneAssignment entity.
func newZoneAssignmentMutation(c config, op Op, opts ...zoneassignmentOption) *ZoneAssignmentMutation {
	m := &ZoneAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeZoneAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withZoneAssignmentID sets the ID field of the mutation.
func withZoneAssignmentID(id int) zoneassignmentOption {
	return func(m *ZoneAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *ZoneAssignment
		)
		m.oldValue = func(ctx context.Context) (*ZoneAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ZoneAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withZoneAssignment sets the old ZoneAssignment of the mutation.
func withZoneAssignment(node *ZoneAssignment) zoneassignmentOption {
	return func(m *ZoneAssignmentMutation) {
		m.oldValue = func(context.Context) (*ZoneAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ZoneAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ZoneAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ZoneAssignmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ZoneAssignmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ZoneAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetZoneID sets the "zone_id" field.
func (m *ZoneAssignmentMutation) SetZoneID(i int) {
	m.zone = &i
}

// ZoneID returns the value of the "zone_id" field in the mutation.
func (m *ZoneAssignmentMutation) ZoneID() (r int, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneID returns the old "zone_id" field's value of the ZoneAssignment entity.
// If the ZoneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneAssignmentMutation) OldZoneID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneID: %w", err)
	}
	return oldValue.ZoneID, nil
}

// ResetZoneID resets all changes to the "zone_id" field.
func (m *ZoneAssignmentMutation) ResetZoneID() {
	m.zone = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ZoneAssignmentMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ZoneAssignmentMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ZoneAssignment entity.
// If the ZoneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneAssignmentMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *ZoneAssignmentMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[zoneassignment.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *ZoneAssignmentMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[zoneassignment.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ZoneAssignmentMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, zoneassignment.FieldAgentID)
}

// SetTeamID sets the "team_id" field.
func (m *ZoneAssignmentMutation) SetTeamID(i int) {
	m.team = &i
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *ZoneAssignmentMutation) TeamID() (r int, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the ZoneAssignment entity.
// If the ZoneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneAssignmentMutation) OldTeamID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ClearTeamID clears the value of the "team_id" field.
func (m *ZoneAssignmentMutation) ClearTeamID() {
	m.team = nil
	m.clearedFields[zoneassignment.FieldTeamID] = struct{}{}
}

// TeamIDCleared returns if the "team_id" field was cleared in this mutation.
func (m *ZoneAssignmentMutation) TeamIDCleared() bool {
	_, ok := m.clearedFields[zoneassignment.FieldTeamID]
	return ok
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *ZoneAssignmentMutation) ResetTeamID() {
	m.team = nil
	delete(m.clearedFields, zoneassignment.FieldTeamID)
}

// SetAssignedByUserID sets the "assigned_by_user_id" field.
func (m *ZoneAssignmentMutation) SetAssignedByUserID(i int) {
	m.assigned_by = &i
}

// AssignedByUserID returns the value of the "assigned_by_user_id" field in the mutation.
func (m *ZoneAssignmentMutation) AssignedByUserID() (r int, exists bool) {
	v := m.assigned_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedByUserID returns the old "assigned_by_user_id" field's value of the ZoneAssignment entity.
// If the ZoneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneAssignmentMutation) OldAssignedByUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedByUserID: %w", err)
	}
	return oldValue.AssignedByUserID, nil
}

// ClearAssignedByUserID clears the value of the "assigned_by_user_id" field.
func (m *ZoneAssignmentMutation) ClearAssignedByUserID() {
	m.assigned_by = nil
	m.clearedFields[zoneassignment.FieldAssignedByUserID] = struct{}{}
}

// AssignedByUserIDCleared returns if the "assigned_by_user_id" field was cleared in this mutation.
func (m *ZoneAssignmentMutation) AssignedByUserIDCleared() bool {
	_, ok := m.clearedFields[zoneassignment.FieldAssignedByUserID]
	return ok
}

// ResetAssignedByUserID resets all changes to the "assigned_by_user_id" field.
func (m *ZoneAssignmentMutation) ResetAssignedByUserID() {
	m.assigned_by = nil
	delete(m.clearedFields, zoneassignment.FieldAssignedByUserID)
}

// SetEffectiveFrom sets the "effective_from" field.
func (m *ZoneAssignmentMutation) SetEffectiveFrom(t time.Time) {
	m.effective_from = &t
}

// EffectiveFrom returns the value of the "effective_from" field in the mutation.
func (m *ZoneAssignmentMutation) EffectiveFrom() (r time.Time, exists bool) {
	v := m.effective_from
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveFrom returns the old "effective_from" field's value of the ZoneAssignment entity.
// If the ZoneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneAssignmentMutation) OldEffectiveFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveFrom: %w", err)
	}
	return oldValue.EffectiveFrom, nil
}

// ResetEffectiveFrom resets all changes to the "effective_from" field.
func (m *ZoneAssignmentMutation) ResetEffectiveFrom() {
	m.effective_from = nil
}

// SetEffectiveTo sets the "effective_to" field.
func (m *ZoneAssignmentMutation) SetEffectiveTo(t time.Time) {
	m.effective_to = &t
}

// EffectiveTo returns the value of the "effective_to" field in the mutation.
func (m *ZoneAssignmentMutation) EffectiveTo() (r time.Time, exists bool) {
	v := m.effective_to
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveTo returns the old "effective_to" field's value of the ZoneAssignment entity.
// If the ZoneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneAssignmentMutation) OldEffectiveTo(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveTo: %w", err)
	}
	return oldValue.EffectiveTo, nil
}

// ClearEffectiveTo clears the value of the "effective_to" field.
func (m *ZoneAssignmentMutation) ClearEffectiveTo() {
	m.effective_to = nil
	m.clearedFields[zoneassignment.FieldEffectiveTo] = struct{}{}
}

// EffectiveToCleared returns if the "effective_to" field was cleared in this mutation.
func (m *ZoneAssignmentMutation) EffectiveToCleared() bool {
	_, ok := m.clearedFields[zoneassignment.FieldEffectiveTo]
	return ok
}

// ResetEffectiveTo resets all changes to the "effective_to" field.
func (m *ZoneAssignmentMutation) ResetEffectiveTo() {
	m.effective_to = nil
	delete(m.clearedFields, zoneassignment.FieldEffectiveTo)
}

// SetStatus sets the "status" field.
func (m *ZoneAssignmentMutation) SetStatus(z zoneassignment.Status) {
	m.status = &z
}

// Status returns the value of the "status" field in the mutation.
func (m *ZoneAssignmentMutation) Status() (r zoneassignment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ZoneAssignment entity.
// If the ZoneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneAssignmentMutation) OldStatus(ctx context.Context) (v zoneassignment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ZoneAssignmentMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ZoneAssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ZoneAssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ZoneAssignment entity.
// If the ZoneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneAssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ZoneAssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearZone clears the "zone" edge to the Zone entity.
func (m *ZoneAssignmentMutation) ClearZone() {
	m.clearedzone = true
	m.clearedFields[zoneassignment.FieldZoneID] = struct{}{}
}

// ZoneCleared reports if the "zone" edge to the Zone entity was cleared.
func (m *ZoneAssignmentMutation) ZoneCleared() bool {
	return m.clearedzone
}

// ZoneIDs returns the "zone" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ZoneID instead. It exists only for internal usage by the builders.
func (m *ZoneAssignmentMutation) ZoneIDs() (ids []int) {
	if id := m.zone; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetZone resets all changes to the "zone" edge.
func (m *ZoneAssignmentMutation) ResetZone() {
	m.zone = nil
	m.clearedzone = false
}

// ClearAgent clears the "agent" edge to the User entity.
func (m *ZoneAssignmentMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[zoneassignment.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the User entity was cleared.
func (m *ZoneAssignmentMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *ZoneAssignmentMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *ZoneAssignmentMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearTeam clears the "team" edge to the Team entity.
func (m *ZoneAssignmentMutation) ClearTeam() {
	m.clearedteam = true
	m.clearedFields[zoneassignment.FieldTeamID] = struct{}{}
}

// TeamCleared reports if the "team" edge to the Team entity was cleared.
func (m *ZoneAssignmentMutation) TeamCleared() bool {
	return m.TeamIDCleared() || m.clearedteam
}

// TeamIDs returns the "team" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TeamID instead. It exists only for internal usage by the builders.
func (m *ZoneAssignmentMutation) TeamIDs() (ids []int) {
	if id := m.team; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTeam resets all changes to the "team" edge.
func (m *ZoneAssignmentMutation) ResetTeam() {
	m.team = nil
	m.clearedteam = false
}

// SetAssignedByID sets the "assigned_by" edge to the User entity by id.
func (m *ZoneAssignmentMutation) SetAssignedByID(id int) {
	m.assigned_by = &id
}

// ClearAssignedBy clears the "assigned_by" edge to the User entity.
func (m *ZoneAssignmentMutation) ClearAssignedBy() {
	m.clearedassigned_by = true
	m.clearedFields[zoneassignment.FieldAssignedByUserID] = struct{}{}
}

// AssignedByCleared reports if the "assigned_by" edge to the User entity was cleared.
func (m *ZoneAssignmentMutation) AssignedByCleared() bool {
	return m.AssignedByUserIDCleared() || m.clearedassigned_by
}

// AssignedByID returns the "assigned_by" edge ID in the mutation.
func (m *ZoneAssignmentMutation) AssignedByID() (id int, exists bool) {
	if m.assigned_by != nil {
		return *m.assigned_by, true
	}
	return
}

// AssignedByIDs returns the "assigned_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignedByID instead. It exists only for internal usage by the builders.
func (m *ZoneAssignmentMutation) AssignedByIDs() (ids []int) {
	if id := m.assigned_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignedBy resets all changes to the "assigned_by" edge.
func (m *ZoneAssignmentMutation) ResetAssignedBy() {
	m.assigned_by = nil
	m.clearedassigned_by = false
}

// Where appends a list predicates to the ZoneAssignmentMutation builder.
func (m *ZoneAssignmentMutation) Where(ps ...predicate.ZoneAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ZoneAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ZoneAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ZoneAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ZoneAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ZoneAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ZoneAssignment).
func (m *ZoneAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ZoneAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.zone != nil {
		fields = append(fields, zoneassignment.FieldZoneID)
	}
	if m.agent != nil {
		fields = append(fields, zoneassignment.FieldAgentID)
	}
	if m.team != nil {
		fields = append(fields, zoneassignment.FieldTeamID)
	}
	if m.assigned_by != nil {
		fields = append(fields, zoneassignment.FieldAssignedByUserID)
	}
	if m.effective_from != nil {
		fields = append(fields, zoneassignment.FieldEffectiveFrom)
	}
	if m.effective_to != nil {
		fields = append(fields, zoneassignment.FieldEffectiveTo)
	}
	if m.status != nil {
		fields = append(fields, zoneassignment.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, zoneassignment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ZoneAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case zoneassignment.FieldZoneID:
		return m.ZoneID()
	case zoneassignment.FieldAgentID:
		return m.AgentID()
	case zoneassignment.FieldTeamID:
		return m.TeamID()
	case zoneassignment.FieldAssignedByUserID:
		return m.AssignedByUserID()
	case zoneassignment.FieldEffectiveFrom:
		return m.EffectiveFrom()
	case zoneassignment.FieldEffectiveTo:
		return m.EffectiveTo()
	case zoneassignment.FieldStatus:
		return m.Status()
	case zoneassignment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ZoneAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case zoneassignment.FieldZoneID:
		return m.OldZoneID(ctx)
	case zoneassignment.FieldAgentID:
		return m.OldAgentID(ctx)
	case zoneassignment.FieldTeamID:
		return m.OldTeamID(ctx)
	case zoneassignment.FieldAssignedByUserID:
		return m.OldAssignedByUserID(ctx)
	case zoneassignment.FieldEffectiveFrom:
		return m.OldEffectiveFrom(ctx)
	case zoneassignment.FieldEffectiveTo:
		return m.OldEffectiveTo(ctx)
	case zoneassignment.FieldStatus:
		return m.OldStatus(ctx)
	case zoneassignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ZoneAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZoneAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case zoneassignment.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneID(v)
		return nil
	case zoneassignment.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case zoneassignment.FieldTeamID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case zoneassignment.FieldAssignedByUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedByUserID(v)
		return nil
	case zoneassignment.FieldEffectiveFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveFrom(v)
		return nil
	case zoneassignment.FieldEffectiveTo:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveTo(v)
		return nil
	case zoneassignment.FieldStatus:
		v, ok := value.(zoneassignment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case zoneassignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ZoneAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ZoneAssignmentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ZoneAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZoneAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ZoneAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ZoneAssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(zoneassignment.FieldAgentID) {
		fields = append(fields, zoneassignment.FieldAgentID)
	}
	if m.FieldCleared(zoneassignment.FieldTeamID) {
		fields = append(fields, zoneassignment.FieldTeamID)
	}
	if m.FieldCleared(zoneassignment.FieldAssignedByUserID) {
		fields = append(fields, zoneassignment.FieldAssignedByUserID)
	}
	if m.FieldCleared(zoneassignment.FieldEffectiveTo) {
		fields = append(fields, zoneassignment.FieldEffectiveTo)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ZoneAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ZoneAssignmentMutation) ClearField(name string) error {
	switch name {
	case zoneassignment.FieldAgentID:
		m.ClearAgentID()
		return nil
	case zoneassignment.FieldTeamID:
		m.ClearTeamID()
		return nil
	case zoneassignment.FieldAssignedByUserID:
		m.ClearAssignedByUserID()
		return nil
	case zoneassignment.FieldEffectiveTo:
		m.ClearEffectiveTo()
		return nil
	}
	return fmt.Errorf("unknown ZoneAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ZoneAssignmentMutation) ResetField(name string) error {
	switch name {
	case zoneassignment.FieldZoneID:
		m.ResetZoneID()
		return nil
	case zoneassignment.FieldAgentID:
		m.ResetAgentID()
		return nil
	case zoneassignment.FieldTeamID:
		m.ResetTeamID()
		return nil
	case zoneassignment.FieldAssignedByUserID:
		m.ResetAssignedByUserID()
		return nil
	case zoneassignment.FieldEffectiveFrom:
		m.ResetEffectiveFrom()
		return nil
	case zoneassignment.FieldEffectiveTo:
		m.ResetEffectiveTo()
		return nil
	case zoneassignment.FieldStatus:
		m.ResetStatus()
		return nil
	case zoneassignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ZoneAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ZoneAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.zone != nil {
		edges = append(edges, zoneassignment.EdgeZone)
	}
	if m.agent != nil {
		edges = append(edges, zoneassignment.EdgeAgent)
	}
	if m.team != nil {
		edges = append(edges, zoneassignment.EdgeTeam)
	}
	if m.assigned_by != nil {
		edges = append(edges, zoneassignment.EdgeAssignedBy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ZoneAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case zoneassignment.EdgeZone:
		if id := m.zone; id != nil {
			return []ent.Value{*id}
		}
	case zoneassignment.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case zoneassignment.EdgeTeam:
		if id := m.team; id != nil {
			return []ent.Value{*id}
		}
	case zoneassignment.EdgeAssignedBy:
		if id := m.assigned_by; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ZoneAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ZoneAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ZoneAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedzone {
		edges = append(edges, zoneassignment.EdgeZone)
	}
	if m.clearedagent {
		edges = append(edges, zoneassignment.EdgeAgent)
	}
	if m.clearedteam {
		edges = append(edges, zoneassignment.EdgeTeam)
	}
	if m.clearedassigned_by {
		edges = append(edges, zoneassignment.EdgeAssignedBy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ZoneAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case zoneassignment.EdgeZone:
		return m.clearedzone
	case zoneassignment.EdgeAgent:
		return m.clearedagent
	case zoneassignment.EdgeTeam:
		return m.clearedteam
	case zoneassignment.EdgeAssignedBy:
		return m.clearedassigned_by
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ZoneAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case zoneassignment.EdgeZone:
		m.ClearZone()
		return nil
	case zoneassignment.EdgeAgent:
		m.ClearAgent()
		return nil
	case zoneassignment.EdgeTeam:
		m.ClearTeam()
		return nil
	case zoneassignment.EdgeAssignedBy:
		m.ClearAssignedBy()
		return nil
	}
	return fmt.Errorf("unknown ZoneAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ZoneAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case zoneassignment.EdgeZone:
		m.ResetZone()
		return nil
	case zoneassignment.EdgeAgent:
		m.ResetAgent()
		return nil
	case zoneassignment.EdgeTeam:
		m.ResetTeam()
		return nil
	case zoneassignment.EdgeAssignedBy:
		m.ResetAssignedBy()
		return nil
	}
	return fmt.Errorf("unknown ZoneAssignment edge %s", name)
}
