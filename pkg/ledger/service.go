package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/teammember"
	"github.com/knockbase/knockbase/ent/zoneassignment"
)

// Service provides the assignment ledger operations: queries and mutations on
// the immediate (ZoneAssignment) and scheduled (ScheduledAssignment) stores.
// A row is "non-terminal" when its status is neither completed nor cancelled
// and effective_to is still null; at most one non-terminal immediate row may
// exist per zone, enforced by TerminateForZone running before every create.
type Service struct {
	client *ent.Client
}

// NewService creates a new ledger service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// nonTerminalImmediate restricts a query to open-ended, non-terminal rows.
func nonTerminalImmediate(q *ent.ZoneAssignmentQuery) *ent.ZoneAssignmentQuery {
	return q.Where(
		zoneassignment.StatusNotIn(zoneassignment.StatusCompleted, zoneassignment.StatusCancelled),
		zoneassignment.EffectiveToIsNil(),
	)
}

// NonTerminalForZone returns the zone's open immediate assignments.
// A consistent ledger has at most one, but the query tolerates drift.
func (s *Service) NonTerminalForZone(ctx context.Context, zoneID int) ([]*ent.ZoneAssignment, error) {
	rows, err := nonTerminalImmediate(
		s.client.ZoneAssignment.Query().Where(zoneassignment.ZoneID(zoneID)),
	).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone assignments: %w", err)
	}
	return rows, nil
}

// PendingForZone returns the zone's pending scheduled assignments.
func (s *Service) PendingForZone(ctx context.Context, zoneID int) ([]*ent.ScheduledAssignment, error) {
	rows, err := s.client.ScheduledAssignment.Query().
		Where(
			scheduledassignment.ZoneID(zoneID),
			scheduledassignment.StatusEQ(scheduledassignment.StatusPending),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled assignments: %w", err)
	}
	return rows, nil
}

// TerminateForZone closes out the zone's previous claims: every non-terminal
// immediate row becomes inactive with effective_to set, and every pending
// scheduled row is cancelled. Runs inside the caller's transaction so the
// subsequent create observes a clean ledger. Returns the number of rows touched.
func (s *Service) TerminateForZone(ctx context.Context, tx *ent.Tx, zoneID int, now time.Time) (int, error) {
	terminated, err := tx.ZoneAssignment.Update().
		Where(
			zoneassignment.ZoneID(zoneID),
			zoneassignment.StatusNotIn(zoneassignment.StatusCompleted, zoneassignment.StatusCancelled),
			zoneassignment.EffectiveToIsNil(),
		).
		SetStatus(zoneassignment.StatusInactive).
		SetEffectiveTo(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to terminate immediate assignments: %w", err)
	}

	cancelled, err := tx.ScheduledAssignment.Update().
		Where(
			scheduledassignment.ZoneID(zoneID),
			scheduledassignment.StatusEQ(scheduledassignment.StatusPending),
		).
		SetStatus(scheduledassignment.StatusCancelled).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel scheduled assignments: %w", err)
	}

	return terminated + cancelled, nil
}

// CreateImmediate creates an active immediate assignment for the target.
func (s *Service) CreateImmediate(ctx context.Context, tx *ent.Tx, zoneID int, target Target, effectiveFrom time.Time, assignedBy *int) (*ent.ZoneAssignment, error) {
	if target.IsZero() {
		return nil, fmt.Errorf("assignment target is required")
	}

	builder := tx.ZoneAssignment.Create().
		SetZoneID(zoneID).
		SetEffectiveFrom(effectiveFrom).
		SetStatus(zoneassignment.StatusActive)

	if target.IsAgent() {
		builder.SetAgentID(target.ID())
	} else {
		builder.SetTeamID(target.ID())
	}
	if assignedBy != nil {
		builder.SetAssignedByUserID(*assignedBy)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create immediate assignment: %w", err)
	}
	return row, nil
}

// CreateScheduled creates a pending scheduled assignment for the target.
func (s *Service) CreateScheduled(ctx context.Context, tx *ent.Tx, zoneID int, target Target, effectiveFrom, scheduledDate time.Time, assignedBy *int) (*ent.ScheduledAssignment, error) {
	if target.IsZero() {
		return nil, fmt.Errorf("assignment target is required")
	}

	builder := tx.ScheduledAssignment.Create().
		SetZoneID(zoneID).
		SetEffectiveFrom(effectiveFrom).
		SetScheduledDate(scheduledDate).
		SetStatus(scheduledassignment.StatusPending)

	if target.IsAgent() {
		builder.SetAgentID(target.ID())
	} else {
		builder.SetTeamID(target.ID())
	}
	if assignedBy != nil {
		builder.SetAssignedByUserID(*assignedBy)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduled assignment: %w", err)
	}
	return row, nil
}

// TeamIDsForAgent returns the IDs of all teams the agent belongs to.
func (s *Service) TeamIDsForAgent(ctx context.Context, agentID int) ([]int, error) {
	members, err := s.client.TeamMember.Query().
		Where(teammember.UserID(agentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query team memberships: %w", err)
	}

	teamIDs := make([]int, len(members))
	for i, m := range members {
		teamIDs[i] = m.TeamID
	}
	return teamIDs, nil
}

// MemberIDsForTeam returns the IDs of all current members of the team.
func (s *Service) MemberIDsForTeam(ctx context.Context, teamID int) ([]int, error) {
	members, err := s.client.TeamMember.Query().
		Where(teammember.TeamID(teamID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}

	userIDs := make([]int, len(members))
	for i, m := range members {
		userIDs[i] = m.UserID
	}
	return userIDs, nil
}

// ZoneIDsForAgent computes the full set of zones reachable by the agent:
// the union of (a) the agent's own non-terminal immediate assignments,
// (b) non-terminal immediate assignments of any team the agent belongs to,
// (c) the agent's own pending scheduled assignments, and (d) pending
// scheduled assignments of the agent's teams. The result is deduplicated
// and sorted; callers replace the stored set wholesale with it.
func (s *Service) ZoneIDsForAgent(ctx context.Context, agentID int) ([]int, error) {
	teamIDs, err := s.TeamIDsForAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})

	own, err := nonTerminalImmediate(
		s.client.ZoneAssignment.Query().Where(zoneassignment.AgentID(agentID)),
	).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query agent assignments: %w", err)
	}
	for _, a := range own {
		seen[a.ZoneID] = struct{}{}
	}

	if len(teamIDs) > 0 {
		viaTeams, err := nonTerminalImmediate(
			s.client.ZoneAssignment.Query().Where(zoneassignment.TeamIDIn(teamIDs...)),
		).All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query team assignments: %w", err)
		}
		for _, a := range viaTeams {
			seen[a.ZoneID] = struct{}{}
		}
	}

	pendingOwn, err := s.client.ScheduledAssignment.Query().
		Where(
			scheduledassignment.AgentID(agentID),
			scheduledassignment.StatusEQ(scheduledassignment.StatusPending),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending assignments: %w", err)
	}
	for _, a := range pendingOwn {
		seen[a.ZoneID] = struct{}{}
	}

	if len(teamIDs) > 0 {
		pendingViaTeams, err := s.client.ScheduledAssignment.Query().
			Where(
				scheduledassignment.TeamIDIn(teamIDs...),
				scheduledassignment.StatusEQ(scheduledassignment.StatusPending),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query team pending assignments: %w", err)
		}
		for _, a := range pendingViaTeams {
			seen[a.ZoneID] = struct{}{}
		}
	}

	zoneIDs := make([]int, 0, len(seen))
	for id := range seen {
		zoneIDs = append(zoneIDs, id)
	}
	sort.Ints(zoneIDs)

	return zoneIDs, nil
}

// AgentHasWork reports whether the agent holds any non-terminal immediate
// assignment (individual or via team) or any pending scheduled assignment.
func (s *Service) AgentHasWork(ctx context.Context, agentID int) (bool, error) {
	zoneIDs, err := s.ZoneIDsForAgent(ctx, agentID)
	if err != nil {
		return false, err
	}
	return len(zoneIDs) > 0, nil
}

// TeamHasWork reports whether the team holds any non-terminal immediate
// assignment or any pending scheduled assignment of its own.
func (s *Service) TeamHasWork(ctx context.Context, teamID int) (bool, error) {
	count, err := nonTerminalImmediate(
		s.client.ZoneAssignment.Query().Where(zoneassignment.TeamID(teamID)),
	).Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count team assignments: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	pending, err := s.client.ScheduledAssignment.Query().
		Where(
			scheduledassignment.TeamID(teamID),
			scheduledassignment.StatusEQ(scheduledassignment.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count team pending assignments: %w", err)
	}
	return pending > 0, nil
}

// DuePending returns pending scheduled assignments whose scheduled date has
// passed, ordered oldest first so activations replay in request order.
func (s *Service) DuePending(ctx context.Context, now time.Time) ([]*ent.ScheduledAssignment, error) {
	rows, err := s.client.ScheduledAssignment.Query().
		Where(
			scheduledassignment.StatusEQ(scheduledassignment.StatusPending),
			scheduledassignment.ScheduledDateLTE(now),
		).
		Order(ent.Asc(scheduledassignment.FieldScheduledDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due assignments: %w", err)
	}
	return rows, nil
}

// HistoricalPartiesForZone collects every agent and team that ever appeared
// on the zone's ledgers, in any status. Used before zone deletion so all
// affected parties can be re-derived after the rows are gone.
func (s *Service) HistoricalPartiesForZone(ctx context.Context, zoneID int) (agentIDs, teamIDs []int, err error) {
	immediate, err := s.client.ZoneAssignment.Query().
		Where(zoneassignment.ZoneID(zoneID)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query assignment history: %w", err)
	}

	scheduled, err := s.client.ScheduledAssignment.Query().
		Where(scheduledassignment.ZoneID(zoneID)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query scheduled history: %w", err)
	}

	agents := make(map[int]struct{})
	teams := make(map[int]struct{})
	for _, a := range immediate {
		if a.AgentID != nil {
			agents[*a.AgentID] = struct{}{}
		}
		if a.TeamID != nil {
			teams[*a.TeamID] = struct{}{}
		}
	}
	for _, a := range scheduled {
		if a.AgentID != nil {
			agents[*a.AgentID] = struct{}{}
		}
		if a.TeamID != nil {
			teams[*a.TeamID] = struct{}{}
		}
	}

	for id := range agents {
		agentIDs = append(agentIDs, id)
	}
	for id := range teams {
		teamIDs = append(teamIDs, id)
	}
	sort.Ints(agentIDs)
	sort.Ints(teamIDs)

	return agentIDs, teamIDs, nil
}

// HistoryForZone returns the zone's full immediate assignment history,
// newest first.
func (s *Service) HistoryForZone(ctx context.Context, zoneID int) ([]*ent.ZoneAssignment, error) {
	rows, err := s.client.ZoneAssignment.Query().
		Where(zoneassignment.ZoneID(zoneID)).
		Order(ent.Desc(zoneassignment.FieldEffectiveFrom)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment history: %w", err)
	}
	return rows, nil
}

// TargetOf extracts the tagged target from an immediate assignment row.
func TargetOf(a *ent.ZoneAssignment) Target {
	if a.AgentID != nil {
		return AgentTarget(*a.AgentID)
	}
	if a.TeamID != nil {
		return TeamTarget(*a.TeamID)
	}
	return Target{}
}

// TargetOfScheduled extracts the tagged target from a scheduled assignment row.
func TargetOfScheduled(a *ent.ScheduledAssignment) Target {
	if a.AgentID != nil {
		return AgentTarget(*a.AgentID)
	}
	if a.TeamID != nil {
		return TeamTarget(*a.TeamID)
	}
	return Target{}
}
