package ledger

import "fmt"

// TargetKind distinguishes the two parties an assignment can point at.
type TargetKind string

const (
	// TargetAgent is an individual agent assignment.
	TargetAgent TargetKind = "agent"
	// TargetTeam is a team assignment.
	TargetTeam TargetKind = "team"
)

// Target identifies the party a zone is assigned to: exactly one agent or
// exactly one team. Using a single value instead of two nullable IDs makes
// the "never both" rule structural.
type Target struct {
	kind TargetKind
	id   int
}

// AgentTarget returns a Target pointing at an individual agent.
func AgentTarget(agentID int) Target {
	return Target{kind: TargetAgent, id: agentID}
}

// TeamTarget returns a Target pointing at a team.
func TeamTarget(teamID int) Target {
	return Target{kind: TargetTeam, id: teamID}
}

// Kind returns the target kind.
func (t Target) Kind() TargetKind {
	return t.kind
}

// ID returns the agent or team ID.
func (t Target) ID() int {
	return t.id
}

// IsAgent reports whether the target is an individual agent.
func (t Target) IsAgent() bool {
	return t.kind == TargetAgent
}

// IsTeam reports whether the target is a team.
func (t Target) IsTeam() bool {
	return t.kind == TargetTeam
}

// IsZero reports whether the target is unset.
func (t Target) IsZero() bool {
	return t.kind == "" || t.id == 0
}

func (t Target) String() string {
	if t.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%s:%d", t.kind, t.id)
}
