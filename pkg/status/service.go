package status

import (
	"context"
	"fmt"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/pkg/ledger"
)

// Service derives operational and assignment status for agents and teams
// from the assignment ledgers, and persists the results. Derivation always
// recomputes the zone set from the ledger union instead of patching it
// incrementally, so repeated runs converge on the same state.
type Service struct {
	client *ent.Client
	ledger *ledger.Service
}

// NewService creates a new status derivation service.
func NewService(client *ent.Client, ledgerSvc *ledger.Service) *Service {
	return &Service{client: client, ledger: ledgerSvc}
}

// AgentDerived is the derived status pair for an agent.
type AgentDerived struct {
	Operational user.Status
	Assignment  user.AssignmentStatus
	ZoneIDs     []int
}

// TeamDerived is the derived status pair for a team.
type TeamDerived struct {
	Operational team.Status
	Assignment  team.AssignmentStatus
}

// DeriveAgentStatus computes the agent's status through the normal
// reconciliation path. Activation is monotonic here: an agent whose stored
// operational status is already active stays active even when the ledger is
// empty. Only ResyncAgent may downgrade an active agent.
func (s *Service) DeriveAgentStatus(ctx context.Context, agentID int) (AgentDerived, error) {
	return s.deriveAgent(ctx, agentID, true)
}

// DeriveAgentStatusStrict computes the agent's status from the ledger alone,
// ignoring the stored status and any stale zone bookkeeping. Used by resync.
func (s *Service) DeriveAgentStatusStrict(ctx context.Context, agentID int) (AgentDerived, error) {
	return s.deriveAgent(ctx, agentID, false)
}

func (s *Service) deriveAgent(ctx context.Context, agentID int, sticky bool) (AgentDerived, error) {
	agent, err := s.client.User.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return AgentDerived{}, fmt.Errorf("agent not found")
		}
		return AgentDerived{}, fmt.Errorf("failed to fetch agent: %w", err)
	}

	zoneIDs, err := s.ledger.ZoneIDsForAgent(ctx, agentID)
	if err != nil {
		return AgentDerived{}, err
	}

	derived := AgentDerived{
		Operational: user.StatusInactive,
		Assignment:  user.AssignmentStatusUnassigned,
		ZoneIDs:     zoneIDs,
	}

	if len(zoneIDs) > 0 {
		derived.Assignment = user.AssignmentStatusAssigned
		derived.Operational = user.StatusActive
	}

	if sticky && derived.Operational != user.StatusActive {
		// The normal path never deactivates: stale stored zone bookkeeping or
		// an already-active flag keeps the agent operational until a resync.
		if len(agent.ZoneIds) > 0 || agent.PrimaryZoneID != nil || agent.Status == user.StatusActive {
			derived.Operational = user.StatusActive
		}
	}

	return derived, nil
}

// DeriveTeamStatus computes the team's status from its own non-terminal
// immediate and pending scheduled assignments. Teams get no sticky-active
// exception; both fields are fully recomputed on every call.
func (s *Service) DeriveTeamStatus(ctx context.Context, teamID int) (TeamDerived, error) {
	hasWork, err := s.ledger.TeamHasWork(ctx, teamID)
	if err != nil {
		return TeamDerived{}, err
	}

	if hasWork {
		return TeamDerived{
			Operational: team.StatusActive,
			Assignment:  team.AssignmentStatusAssigned,
		}, nil
	}
	return TeamDerived{
		Operational: team.StatusInactive,
		Assignment:  team.AssignmentStatusUnassigned,
	}, nil
}

// SyncAgentZoneIDs recomputes the agent's zone set from the ledger union and
// overwrites the stored set wholesale. Returns the new set.
func (s *Service) SyncAgentZoneIDs(ctx context.Context, agentID int) ([]int, error) {
	zoneIDs, err := s.ledger.ZoneIDsForAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	if err := s.client.User.UpdateOneID(agentID).
		SetZoneIds(zoneIDs).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update agent zones: %w", err)
	}

	return zoneIDs, nil
}

// SyncAgent recomputes and persists the agent's zone set and status through
// the normal (monotonic) path. Returns true when anything stored changed.
func (s *Service) SyncAgent(ctx context.Context, agentID int) (bool, error) {
	return s.syncAgent(ctx, agentID, true)
}

// ResyncAgent recomputes and persists the agent's zone set and status from
// scratch, downgrading the operational status when the ledger is empty.
// Returns true when anything stored changed, i.e. drift was corrected.
func (s *Service) ResyncAgent(ctx context.Context, agentID int) (bool, error) {
	return s.syncAgent(ctx, agentID, false)
}

func (s *Service) syncAgent(ctx context.Context, agentID int, sticky bool) (bool, error) {
	agent, err := s.client.User.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, fmt.Errorf("agent not found")
		}
		return false, fmt.Errorf("failed to fetch agent: %w", err)
	}

	derived, err := s.deriveAgent(ctx, agentID, sticky)
	if err != nil {
		return false, err
	}

	changed := agent.Status != derived.Operational ||
		agent.AssignmentStatus != derived.Assignment ||
		!equalIntSets(agent.ZoneIds, derived.ZoneIDs)

	if !changed {
		return false, nil
	}

	if err := s.client.User.UpdateOneID(agentID).
		SetStatus(derived.Operational).
		SetAssignmentStatus(derived.Assignment).
		SetZoneIds(derived.ZoneIDs).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to persist agent status: %w", err)
	}

	return true, nil
}

// SyncTeam recomputes and persists the team's status.
// Returns true when anything stored changed.
func (s *Service) SyncTeam(ctx context.Context, teamID int) (bool, error) {
	t, err := s.client.Team.Get(ctx, teamID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, fmt.Errorf("team not found")
		}
		return false, fmt.Errorf("failed to fetch team: %w", err)
	}

	derived, err := s.DeriveTeamStatus(ctx, teamID)
	if err != nil {
		return false, err
	}

	if t.Status == derived.Operational && t.AssignmentStatus == derived.Assignment {
		return false, nil
	}

	if err := s.client.Team.UpdateOneID(teamID).
		SetStatus(derived.Operational).
		SetAssignmentStatus(derived.Assignment).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to persist team status: %w", err)
	}

	return true, nil
}

func equalIntSets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
