package reconcile

import (
	"context"
	"log"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/activity"
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
	"github.com/knockbase/knockbase/pkg/domain"
	"github.com/knockbase/knockbase/pkg/ledger"
	"github.com/knockbase/knockbase/pkg/metrics"
	"github.com/knockbase/knockbase/pkg/notify"
	"github.com/knockbase/knockbase/pkg/status"
)

// Engine orchestrates multi-entity updates around the assignment ledgers.
// Ledger mutations for one operation run in a single transaction; the
// status propagation that follows is per-entity and log-and-continue, so a
// downstream failure never rolls back the primary assignment. Entities a
// propagation step missed are corrected by the next sweep or resync.
type Engine struct {
	client   *ent.Client
	ledger   *ledger.Service
	status   *status.Service
	notifier notify.Notifier
	metrics  *metrics.Metrics
	logger   *log.Logger
}

// NewEngine creates a new reconciliation engine. notifier and m may be nil.
func NewEngine(client *ent.Client, notifier notify.Notifier, m *metrics.Metrics, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	ledgerSvc := ledger.NewService(client)
	return &Engine{
		client:   client,
		ledger:   ledgerSvc,
		status:   status.NewService(client, ledgerSvc),
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Ledger exposes the engine's ledger service for read paths.
func (e *Engine) Ledger() *ledger.Service {
	return e.ledger
}

// Status exposes the engine's status derivation service.
func (e *Engine) Status() *status.Service {
	return e.status
}

// Result describes the outcome of a reconciliation: the zone as stored after
// the operation and every agent/team whose derived state was recomputed.
// Partial holds downstream propagation failures that were logged and skipped.
type Result struct {
	Zone    *ent.Zone   `json:"zone,omitempty"`
	Agents  []*ent.User `json:"agents"`
	Teams   []*ent.Team `json:"teams"`
	Partial []string    `json:"partial_failures,omitempty"`
}

// tracker accumulates affected entity IDs during a reconciliation.
type tracker struct {
	agents  map[int]struct{}
	teams   map[int]struct{}
	partial []string
}

func newTracker() *tracker {
	return &tracker{agents: make(map[int]struct{}), teams: make(map[int]struct{})}
}

// AssignZone switches the zone's assigned party to the given target. A future
// effectiveFrom creates a pending scheduled assignment instead of an
// immediate one. The previous party's claims are terminated first, then
// detached; the new party is attached and re-derived last.
func (e *Engine) AssignZone(ctx context.Context, zoneID int, target ledger.Target, effectiveFrom time.Time, assignedBy *int) (*Result, error) {
	z, err := e.client.Zone.Get(ctx, zoneID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("zone")
		}
		return nil, domain.NewInternalError(err)
	}

	if err := e.validateTarget(ctx, target); err != nil {
		return nil, err
	}

	now := time.Now()
	if effectiveFrom.IsZero() {
		effectiveFrom = now
	}
	future := effectiveFrom.After(now)

	prev := previousTarget(z)

	// Ledger mutation: terminate the zone's previous claims, create the new
	// row, and move the zone, all in one transaction.
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	terminated, err := e.ledger.TerminateForZone(ctx, tx, zoneID, now)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(err)
	}

	if future {
		if _, err := e.ledger.CreateScheduled(ctx, tx, zoneID, target, effectiveFrom, effectiveFrom, assignedBy); err != nil {
			tx.Rollback()
			return nil, domain.NewInternalError(err)
		}
	} else {
		if _, err := e.ledger.CreateImmediate(ctx, tx, zoneID, target, effectiveFrom, assignedBy); err != nil {
			tx.Rollback()
			return nil, domain.NewInternalError(err)
		}
	}

	zoneUpdate := tx.Zone.UpdateOneID(zoneID)
	if future {
		zoneUpdate.SetStatus(zone.StatusScheduled)
	} else {
		zoneUpdate.SetStatus(zone.StatusActive)
	}
	if target.IsAgent() {
		zoneUpdate.SetAssignedAgentID(target.ID()).ClearTeamID()
	} else {
		zoneUpdate.SetTeamID(target.ID()).ClearAssignedAgentID()
	}
	if err := zoneUpdate.Exec(ctx); err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.NewInternalError(err)
	}

	if e.metrics != nil {
		kind := "immediate"
		if future {
			kind = "scheduled"
		}
		e.metrics.RecordAssignmentCreated(string(target.Kind()), kind)
		for i := 0; i < terminated; i++ {
			e.metrics.RecordAssignmentTerminated()
		}
	}

	// Everything below is convergent propagation: failures are logged and
	// collected, never returned, because the assignment itself committed.
	tr := newTracker()

	e.detachPrevious(ctx, tr, zoneID, prev, target)
	e.attach(ctx, tr, zoneID, target)

	// Idempotency guard: re-derive the old party once more after the attach.
	// Derivation scans the whole ledger, so a party still holding an
	// unrelated zone keeps its assigned status.
	e.cleanupParty(ctx, tr, prev, target)

	if e.notifier != nil {
		if future {
			e.notifier.NotifyScheduled(ctx, target, zoneID, effectiveFrom)
		} else {
			e.notifier.NotifyAssignment(ctx, target, zoneID, effectiveFrom)
		}
	}

	return e.buildResult(ctx, zoneID, tr), nil
}

// RemoveZoneAssignment detaches whatever party currently holds the zone and
// reverts the zone to draft.
func (e *Engine) RemoveZoneAssignment(ctx context.Context, zoneID int) (*Result, error) {
	z, err := e.client.Zone.Get(ctx, zoneID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("zone")
		}
		return nil, domain.NewInternalError(err)
	}

	prev := previousTarget(z)
	now := time.Now()

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	terminated, err := e.ledger.TerminateForZone(ctx, tx, zoneID, now)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(err)
	}

	if err := tx.Zone.UpdateOneID(zoneID).
		SetStatus(zone.StatusDraft).
		ClearAssignedAgentID().
		ClearTeamID().
		Exec(ctx); err != nil {
		tx.Rollback()
		return nil, domain.NewInternalError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.NewInternalError(err)
	}

	if e.metrics != nil {
		for i := 0; i < terminated; i++ {
			e.metrics.RecordAssignmentTerminated()
		}
	}

	tr := newTracker()
	e.detachPrevious(ctx, tr, zoneID, prev, ledger.Target{})
	e.cleanupParty(ctx, tr, prev, ledger.Target{})

	return e.buildResult(ctx, zoneID, tr), nil
}

// DeleteZone removes the zone, all of its ledger rows, and all zone-scoped
// child data, then re-derives every party that ever held the zone.
func (e *Engine) DeleteZone(ctx context.Context, zoneID int) (*Result, error) {
	exists, err := e.client.Zone.Query().Where(zone.ID(zoneID)).Exist(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("zone")
	}

	// Collect affected parties before the rows disappear.
	agentIDs, teamIDs, err := e.ledger.HistoricalPartiesForZone(ctx, zoneID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	for _, del := range []func() error{
		func() error {
			_, err := tx.Lead.Delete().Where(lead.ZoneID(zoneID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.Resident.Delete().Where(resident.ZoneID(zoneID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.Activity.Delete().Where(activity.ZoneID(zoneID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.Route.Delete().Where(route.ZoneID(zoneID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.ZoneAssignment.Delete().Where(zoneassignment.ZoneID(zoneID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.ScheduledAssignment.Delete().Where(scheduledassignment.ZoneID(zoneID)).Exec(ctx)
			return err
		},
		func() error { return tx.Zone.DeleteOneID(zoneID).Exec(ctx) },
	} {
		if err := del(); err != nil {
			tx.Rollback()
			return nil, domain.NewInternalError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.NewInternalError(err)
	}

	tr := newTracker()
	for _, agentID := range agentIDs {
		e.syncAgent(ctx, tr, agentID)
	}
	for _, teamID := range teamIDs {
		e.syncTeam(ctx, tr, teamID)
	}

	result := e.buildResult(ctx, 0, tr)
	return result, nil
}

// AddTeamMember adds an agent to a team. The new member immediately inherits
// the team's current zones through derivation.
func (e *Engine) AddTeamMember(ctx context.Context, teamID, agentID, addedBy int) (*Result, error) {
	if err := e.validateTarget(ctx, ledger.TeamTarget(teamID)); err != nil {
		return nil, err
	}
	if err := e.validateTarget(ctx, ledger.AgentTarget(agentID)); err != nil {
		return nil, err
	}

	already, err := e.client.TeamMember.Query().
		Where(teammemberMatch(teamID, agentID)...).
		Exist(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if already {
		return nil, domain.NewConflictError("agent is already a member of this team")
	}

	if _, err := e.client.TeamMember.Create().
		SetTeamID(teamID).
		SetUserID(agentID).
		SetAddedByUserID(addedBy).
		Save(ctx); err != nil {
		return nil, domain.NewInternalError(err)
	}

	tr := newTracker()
	e.syncAgent(ctx, tr, agentID)
	e.syncTeam(ctx, tr, teamID)

	return e.buildResult(ctx, 0, tr), nil
}

// RemoveTeamMember removes an agent from a team. The member's ledger rows are
// left untouched; re-derivation naturally drops zones reachable only through
// the team.
func (e *Engine) RemoveTeamMember(ctx context.Context, teamID, agentID int) (*Result, error) {
	deleted, err := e.client.TeamMember.Delete().
		Where(teammemberMatch(teamID, agentID)...).
		Exec(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if deleted == 0 {
		return nil, domain.NewNotFoundError("team member")
	}

	tr := newTracker()
	e.syncAgent(ctx, tr, agentID)
	e.syncTeam(ctx, tr, teamID)

	return e.buildResult(ctx, 0, tr), nil
}

// ResyncReport summarizes a full resync pass.
type ResyncReport struct {
	AgentsChecked   int `json:"agents_checked"`
	TeamsChecked    int `json:"teams_checked"`
	DriftsCorrected int `json:"drifts_corrected"`
	Failures        int `json:"failures"`
}

// ResyncAll unconditionally recomputes derived state for every agent and
// every team in scope, overwriting stored statuses that diverged. This is
// the only path that downgrades an active agent. scopeOwnerID restricts the
// team scan to teams created by that administrator; zero means everything.
func (e *Engine) ResyncAll(ctx context.Context, scopeOwnerID int) (*ResyncReport, error) {
	report := &ResyncReport{}

	agents, err := e.client.User.Query().
		Where(user.RoleEQ(user.RoleAgent), user.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	for _, a := range agents {
		report.AgentsChecked++
		changed, err := e.status.ResyncAgent(ctx, a.ID)
		if err != nil {
			report.Failures++
			e.logger.Printf("⚠️  Resync failed for agent %d: %v", a.ID, err)
			continue
		}
		if changed {
			report.DriftsCorrected++
			if e.metrics != nil {
				e.metrics.RecordDriftCorrection()
			}
		}
	}

	teamQuery := e.client.Team.Query()
	if scopeOwnerID > 0 {
		teamQuery = teamQuery.Where(team.CreatedByUserID(scopeOwnerID))
	}
	teams, err := teamQuery.All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	for _, t := range teams {
		report.TeamsChecked++
		changed, err := e.status.SyncTeam(ctx, t.ID)
		if err != nil {
			report.Failures++
			e.logger.Printf("⚠️  Resync failed for team %d: %v", t.ID, err)
			continue
		}
		if changed {
			report.DriftsCorrected++
			if e.metrics != nil {
				e.metrics.RecordDriftCorrection()
			}
		}
	}

	return report, nil
}

// AttachActivated applies the post-activation propagation for a scheduled
// assignment the sweeper just promoted: primary zone, zone sets, and derived
// statuses for the target party.
func (e *Engine) AttachActivated(ctx context.Context, zoneID int, target ledger.Target) *Result {
	tr := newTracker()
	e.attach(ctx, tr, zoneID, target)
	return e.buildResult(ctx, zoneID, tr)
}

// --- internal steps ---

func teammemberMatch(teamID, userID int) []predicate.TeamMember {
	return []predicate.TeamMember{
		teammember.TeamID(teamID),
		teammember.UserID(userID),
	}
}

func previousTarget(z *ent.Zone) ledger.Target {
	if z.AssignedAgentID != nil {
		return ledger.AgentTarget(*z.AssignedAgentID)
	}
	if z.TeamID != nil {
		return ledger.TeamTarget(*z.TeamID)
	}
	return ledger.Target{}
}

func (e *Engine) validateTarget(ctx context.Context, target ledger.Target) error {
	switch {
	case target.IsAgent():
		exists, err := e.client.User.Query().
			Where(user.ID(target.ID()), user.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return domain.NewInternalError(err)
		}
		if !exists {
			return domain.NewNotFoundError("agent")
		}
	case target.IsTeam():
		exists, err := e.client.Team.Query().Where(team.ID(target.ID())).Exist(ctx)
		if err != nil {
			return domain.NewInternalError(err)
		}
		if !exists {
			return domain.NewNotFoundError("team")
		}
	default:
		return domain.NewValidationError("assignment target is required")
	}
	return nil
}

// detachPrevious re-derives the party the zone is being taken from. For a
// team, every member other than the incoming individual target is touched;
// for an individual agent, the agent plus each of their teams.
func (e *Engine) detachPrevious(ctx context.Context, tr *tracker, zoneID int, prev, next ledger.Target) {
	if prev.IsZero() || prev == next {
		return
	}

	switch {
	case prev.IsTeam():
		memberIDs, err := e.ledger.MemberIDsForTeam(ctx, prev.ID())
		if err != nil {
			e.recordPartial(tr, "team", prev.ID(), err)
			return
		}
		for _, memberID := range memberIDs {
			if next.IsAgent() && memberID == next.ID() {
				// The incoming individual target keeps the zone; attach
				// re-derives them.
				continue
			}
			e.syncAgent(ctx, tr, memberID)
		}
		e.syncTeam(ctx, tr, prev.ID())

	case prev.IsAgent():
		e.syncAgent(ctx, tr, prev.ID())
		teamIDs, err := e.ledger.TeamIDsForAgent(ctx, prev.ID())
		if err != nil {
			e.recordPartial(tr, "agent", prev.ID(), err)
			return
		}
		for _, teamID := range teamIDs {
			e.syncTeam(ctx, tr, teamID)
		}
	}
}

// attach updates the new party: most-recent-assignment-wins primary zone for
// the agent (or every current team member), then full re-derivation.
func (e *Engine) attach(ctx context.Context, tr *tracker, zoneID int, target ledger.Target) {
	switch {
	case target.IsAgent():
		e.setPrimaryZone(ctx, tr, target.ID(), zoneID)
		e.syncAgent(ctx, tr, target.ID())

	case target.IsTeam():
		memberIDs, err := e.ledger.MemberIDsForTeam(ctx, target.ID())
		if err != nil {
			e.recordPartial(tr, "team", target.ID(), err)
			return
		}
		for _, memberID := range memberIDs {
			e.setPrimaryZone(ctx, tr, memberID, zoneID)
			e.syncAgent(ctx, tr, memberID)
		}
		e.syncTeam(ctx, tr, target.ID())
	}
}

// cleanupParty re-derives the displaced party after the attach so its
// assignment status reflects whatever work remains across all zones.
func (e *Engine) cleanupParty(ctx context.Context, tr *tracker, prev, next ledger.Target) {
	if prev.IsZero() || prev == next {
		return
	}
	switch {
	case prev.IsAgent():
		e.syncAgent(ctx, tr, prev.ID())
	case prev.IsTeam():
		e.syncTeam(ctx, tr, prev.ID())
	}
}

func (e *Engine) setPrimaryZone(ctx context.Context, tr *tracker, agentID, zoneID int) {
	if err := e.client.User.UpdateOneID(agentID).
		SetPrimaryZoneID(zoneID).
		Exec(ctx); err != nil {
		e.recordPartial(tr, "agent", agentID, err)
	}
}

func (e *Engine) syncAgent(ctx context.Context, tr *tracker, agentID int) {
	if _, err := e.status.SyncAgent(ctx, agentID); err != nil {
		e.recordPartial(tr, "agent", agentID, err)
		return
	}
	tr.agents[agentID] = struct{}{}
}

func (e *Engine) syncTeam(ctx context.Context, tr *tracker, teamID int) {
	if _, err := e.status.SyncTeam(ctx, teamID); err != nil {
		e.recordPartial(tr, "team", teamID, err)
		return
	}
	tr.teams[teamID] = struct{}{}
}

func (e *Engine) recordPartial(tr *tracker, entity string, id int, err error) {
	perr := domain.NewPartialReconciliationError(entity, err)
	e.logger.Printf("⚠️  %v (id=%d)", perr, id)
	tr.partial = append(tr.partial, perr.Error())
	if e.metrics != nil {
		e.metrics.RecordReconciliationFailure(entity)
	}
}

// buildResult reloads the affected entities so callers see post-propagation
// state. Load failures are tolerated; the IDs were already synced.
func (e *Engine) buildResult(ctx context.Context, zoneID int, tr *tracker) *Result {
	result := &Result{
		Agents:  []*ent.User{},
		Teams:   []*ent.Team{},
		Partial: tr.partial,
	}

	if zoneID > 0 {
		if z, err := e.client.Zone.Get(ctx, zoneID); err == nil {
			result.Zone = z
		}
	}

	for agentID := range tr.agents {
		if a, err := e.client.User.Get(ctx, agentID); err == nil {
			result.Agents = append(result.Agents, a)
		}
	}
	for teamID := range tr.teams {
		if t, err := e.client.Team.Get(ctx, teamID); err == nil {
			result.Teams = append(result.Teams, t)
		}
	}

	return result
}
