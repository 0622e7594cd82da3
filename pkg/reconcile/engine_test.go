package reconcile

import (
	"testing"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/enttest"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/pkg/domain"
	"github.com/knockbase/knockbase/pkg/ledger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngineTestDB(t *testing.T) (*ent.Client, *Engine) {
	client := enttest.Open(t, "sqlite3", "file:engine_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)
	return client, NewEngine(client, nil, nil, nil)
}

func createEngineTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("hashed").
		SetName("Agent " + email).
		Save(t.Context())
	require.NoError(t, err)
	return u
}

func createEngineTestTeam(t *testing.T, client *ent.Client, engine *Engine, leader *ent.User, memberIDs ...int) *ent.Team {
	tm, err := client.Team.Create().
		SetName("Crew of " + leader.Name).
		SetLeaderUserID(leader.ID).
		SetCreatedByUserID(leader.ID).
		Save(t.Context())
	require.NoError(t, err)
	for _, memberID := range memberIDs {
		_, err := engine.AddTeamMember(t.Context(), tm.ID, memberID, leader.ID)
		require.NoError(t, err)
	}
	return tm
}

func createEngineTestZone(t *testing.T, client *ent.Client, creator *ent.User, name string) *ent.Zone {
	z, err := client.Zone.Create().
		SetName(name).
		SetCreatedByUserID(creator.ID).
		Save(t.Context())
	require.NoError(t, err)
	return z
}

func getUser(t *testing.T, client *ent.Client, id int) *ent.User {
	u, err := client.User.Get(t.Context(), id)
	require.NoError(t, err)
	return u
}

func getTeam(t *testing.T, client *ent.Client, id int) *ent.Team {
	tm, err := client.Team.Get(t.Context(), id)
	require.NoError(t, err)
	return tm
}

func getZone(t *testing.T, client *ent.Client, id int) *ent.Zone {
	z, err := client.Zone.Get(t.Context(), id)
	require.NoError(t, err)
	return z
}

func TestAssignZone_ImmediateToAgent(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	agent := createEngineTestUser(t, client, "agent@knockbase.io")
	z := createEngineTestZone(t, client, admin, "Maple Heights North")

	result, err := engine.AssignZone(ctx, z.ID, ledger.AgentTarget(agent.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Zone)
	assert.Empty(t, result.Partial)

	assert.Equal(t, zone.StatusActive, result.Zone.Status)
	require.NotNil(t, result.Zone.AssignedAgentID)
	assert.Equal(t, agent.ID, *result.Zone.AssignedAgentID)
	assert.Nil(t, result.Zone.TeamID)

	got := getUser(t, client, agent.ID)
	assert.Equal(t, user.StatusActive, got.Status)
	assert.Equal(t, user.AssignmentStatusAssigned, got.AssignmentStatus)
	require.NotNil(t, got.PrimaryZoneID)
	assert.Equal(t, z.ID, *got.PrimaryZoneID)
	assert.Equal(t, []int{z.ID}, got.ZoneIds)

	open, err := engine.Ledger().NonTerminalForZone(ctx, z.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, ledger.AgentTarget(agent.ID), ledger.TargetOf(open[0]))
}

func TestAssignZone_ReassignAgentToTeam(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	agentA := createEngineTestUser(t, client, "a@knockbase.io")
	agentB := createEngineTestUser(t, client, "b@knockbase.io")
	agentC := createEngineTestUser(t, client, "c@knockbase.io")
	tm := createEngineTestTeam(t, client, engine, admin, agentB.ID, agentC.ID)
	z := createEngineTestZone(t, client, admin, "Downtown Grid 4")

	_, err := engine.AssignZone(ctx, z.ID, ledger.AgentTarget(agentA.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)

	result, err := engine.AssignZone(ctx, z.ID, ledger.TeamTarget(tm.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Partial)

	// At most one open claim per zone, now held by the team
	open, err := engine.Ledger().NonTerminalForZone(ctx, z.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, ledger.TeamTarget(tm.ID), ledger.TargetOf(open[0]))

	// The displaced agent lost the zone but keeps sticky operational status
	gotA := getUser(t, client, agentA.ID)
	assert.Empty(t, gotA.ZoneIds)
	assert.Equal(t, user.AssignmentStatusUnassigned, gotA.AssignmentStatus)
	assert.Equal(t, user.StatusActive, gotA.Status)

	// Every member inherited the zone and the team went active
	for _, memberID := range []int{agentB.ID, agentC.ID} {
		got := getUser(t, client, memberID)
		assert.Equal(t, []int{z.ID}, got.ZoneIds)
		assert.Equal(t, user.AssignmentStatusAssigned, got.AssignmentStatus)
		require.NotNil(t, got.PrimaryZoneID)
		assert.Equal(t, z.ID, *got.PrimaryZoneID)
	}
	assert.Equal(t, team.StatusActive, getTeam(t, client, tm.ID).Status)

	gotZone := getZone(t, client, z.ID)
	require.NotNil(t, gotZone.TeamID)
	assert.Equal(t, tm.ID, *gotZone.TeamID)
	assert.Nil(t, gotZone.AssignedAgentID)
}

func TestAssignZone_ReassignTeamToMemberAgent(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	agentA := createEngineTestUser(t, client, "a@knockbase.io")
	agentB := createEngineTestUser(t, client, "b@knockbase.io")
	tm := createEngineTestTeam(t, client, engine, admin, agentA.ID, agentB.ID)
	z := createEngineTestZone(t, client, admin, "Promoted Grid")

	_, err := engine.AssignZone(ctx, z.ID, ledger.TeamTarget(tm.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)

	// Promote one member of the holding team to individual assignee
	result, err := engine.AssignZone(ctx, z.ID, ledger.AgentTarget(agentA.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Partial)

	// One open claim, now the agent's own
	open, err := engine.Ledger().NonTerminalForZone(ctx, z.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, ledger.AgentTarget(agentA.ID), ledger.TargetOf(open[0]))

	gotZone := getZone(t, client, z.ID)
	require.NotNil(t, gotZone.AssignedAgentID)
	assert.Equal(t, agentA.ID, *gotZone.AssignedAgentID)
	assert.Nil(t, gotZone.TeamID)

	// The promoted member keeps the zone through their own claim
	gotA := getUser(t, client, agentA.ID)
	assert.Equal(t, []int{z.ID}, gotA.ZoneIds)
	assert.Equal(t, user.AssignmentStatusAssigned, gotA.AssignmentStatus)
	require.NotNil(t, gotA.PrimaryZoneID)
	assert.Equal(t, z.ID, *gotA.PrimaryZoneID)

	// The other member lost the zone with the team claim
	gotB := getUser(t, client, agentB.ID)
	assert.Empty(t, gotB.ZoneIds)
	assert.Equal(t, user.AssignmentStatusUnassigned, gotB.AssignmentStatus)

	// The team itself was recomputed off the zone
	gotTeam := getTeam(t, client, tm.ID)
	assert.Equal(t, team.AssignmentStatusUnassigned, gotTeam.AssignmentStatus)
	assert.Equal(t, team.StatusInactive, gotTeam.Status)
}

func TestAssignZone_FutureDateSchedules(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	agent := createEngineTestUser(t, client, "agent@knockbase.io")
	z := createEngineTestZone(t, client, admin, "Lakeside Blocks")

	effectiveFrom := time.Now().Add(72 * time.Hour)
	result, err := engine.AssignZone(ctx, z.ID, ledger.AgentTarget(agent.ID), effectiveFrom, &admin.ID)
	require.NoError(t, err)

	assert.Equal(t, zone.StatusScheduled, result.Zone.Status)
	require.NotNil(t, result.Zone.AssignedAgentID)
	assert.Equal(t, agent.ID, *result.Zone.AssignedAgentID)

	// No immediate row yet, one pending scheduled row
	open, err := engine.Ledger().NonTerminalForZone(ctx, z.ID)
	require.NoError(t, err)
	assert.Empty(t, open)

	pending, err := engine.Ledger().PendingForZone(ctx, z.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, scheduledassignment.StatusPending, pending[0].Status)

	// A pending claim already counts toward the agent's derived state
	got := getUser(t, client, agent.ID)
	assert.Equal(t, user.StatusActive, got.Status)
	assert.Equal(t, user.AssignmentStatusAssigned, got.AssignmentStatus)
	assert.Equal(t, []int{z.ID}, got.ZoneIds)
}

func TestAssignZone_ReplacesPendingScheduled(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	agentA := createEngineTestUser(t, client, "a@knockbase.io")
	agentB := createEngineTestUser(t, client, "b@knockbase.io")
	z := createEngineTestZone(t, client, admin, "Hilltop Run")

	_, err := engine.AssignZone(ctx, z.ID, ledger.AgentTarget(agentA.ID), time.Now().Add(48*time.Hour), &admin.ID)
	require.NoError(t, err)

	_, err = engine.AssignZone(ctx, z.ID, ledger.AgentTarget(agentB.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)

	// The first agent's pending claim was cancelled, not left to activate later
	rows, err := client.ScheduledAssignment.Query().
		Where(scheduledassignment.ZoneID(z.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, scheduledassignment.StatusCancelled, rows[0].Status)

	gotA := getUser(t, client, agentA.ID)
	assert.Empty(t, gotA.ZoneIds)
	assert.Equal(t, user.AssignmentStatusUnassigned, gotA.AssignmentStatus)

	gotB := getUser(t, client, agentB.ID)
	assert.Equal(t, []int{z.ID}, gotB.ZoneIds)
}

func TestAssignZone_TargetValidation(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	z := createEngineTestZone(t, client, admin, "Ghost Zone")

	t.Run("missing zone", func(t *testing.T) {
		_, err := engine.AssignZone(ctx, 9999, ledger.AgentTarget(admin.ID), time.Time{}, nil)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("missing agent", func(t *testing.T) {
		_, err := engine.AssignZone(ctx, z.ID, ledger.AgentTarget(9999), time.Time{}, nil)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("missing team", func(t *testing.T) {
		_, err := engine.AssignZone(ctx, z.ID, ledger.TeamTarget(9999), time.Time{}, nil)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("empty target", func(t *testing.T) {
		_, err := engine.AssignZone(ctx, z.ID, ledger.Target{}, time.Time{}, nil)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestRemoveZoneAssignment(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	agent := createEngineTestUser(t, client, "agent@knockbase.io")
	z := createEngineTestZone(t, client, admin, "Retired Grid")

	_, err := engine.AssignZone(ctx, z.ID, ledger.AgentTarget(agent.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)

	result, err := engine.RemoveZoneAssignment(ctx, z.ID)
	require.NoError(t, err)

	assert.Equal(t, zone.StatusDraft, result.Zone.Status)
	assert.Nil(t, result.Zone.AssignedAgentID)
	assert.Nil(t, result.Zone.TeamID)

	open, err := engine.Ledger().NonTerminalForZone(ctx, z.ID)
	require.NoError(t, err)
	assert.Empty(t, open)

	got := getUser(t, client, agent.ID)
	assert.Empty(t, got.ZoneIds)
	assert.Equal(t, user.AssignmentStatusUnassigned, got.AssignmentStatus)
}

func TestDeleteZone_ResyncsHistoricalParties(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	agent := createEngineTestUser(t, client, "agent@knockbase.io")
	z := createEngineTestZone(t, client, admin, "Doomed Zone")

	_, err := engine.AssignZone(ctx, z.ID, ledger.AgentTarget(agent.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)

	// Zone-scoped child data must go with the zone
	_, err = client.Resident.Create().
		SetZoneID(z.ID).
		SetAddress("12 Maple St").
		Save(ctx)
	require.NoError(t, err)

	result, err := engine.DeleteZone(ctx, z.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Partial)

	_, err = client.Zone.Get(ctx, z.ID)
	assert.True(t, ent.IsNotFound(err))

	count, err := client.Resident.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = client.ZoneAssignment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// The agent's zone set no longer references the deleted zone
	got := getUser(t, client, agent.ID)
	assert.Empty(t, got.ZoneIds)
	assert.Equal(t, user.AssignmentStatusUnassigned, got.AssignmentStatus)
}

func TestTeamMembership(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	agentA := createEngineTestUser(t, client, "a@knockbase.io")
	agentB := createEngineTestUser(t, client, "b@knockbase.io")
	tm := createEngineTestTeam(t, client, engine, admin, agentA.ID)
	z := createEngineTestZone(t, client, admin, "Shared Grid")

	_, err := engine.AssignZone(ctx, z.ID, ledger.TeamTarget(tm.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)

	t.Run("new member inherits team zones", func(t *testing.T) {
		_, err := engine.AddTeamMember(ctx, tm.ID, agentB.ID, admin.ID)
		require.NoError(t, err)

		got := getUser(t, client, agentB.ID)
		assert.Equal(t, []int{z.ID}, got.ZoneIds)
		assert.Equal(t, user.AssignmentStatusAssigned, got.AssignmentStatus)
		assert.Equal(t, user.StatusActive, got.Status)
	})

	t.Run("duplicate membership is rejected", func(t *testing.T) {
		_, err := engine.AddTeamMember(ctx, tm.ID, agentB.ID, admin.ID)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("removed member loses team zones", func(t *testing.T) {
		_, err := engine.RemoveTeamMember(ctx, tm.ID, agentB.ID)
		require.NoError(t, err)

		got := getUser(t, client, agentB.ID)
		assert.Empty(t, got.ZoneIds)
		assert.Equal(t, user.AssignmentStatusUnassigned, got.AssignmentStatus)
		// Operational status stays up until a resync
		assert.Equal(t, user.StatusActive, got.Status)
	})

	t.Run("removing a non-member fails", func(t *testing.T) {
		_, err := engine.RemoveTeamMember(ctx, tm.ID, agentB.ID)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestResyncAll(t *testing.T) {
	client, engine := setupEngineTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createEngineTestUser(t, client, "admin@knockbase.io")
	holder := createEngineTestUser(t, client, "holder@knockbase.io")
	drifted := createEngineTestUser(t, client, "drifted@knockbase.io")
	z := createEngineTestZone(t, client, admin, "Stable Grid")

	_, err := engine.AssignZone(ctx, z.ID, ledger.AgentTarget(holder.ID), time.Time{}, &admin.ID)
	require.NoError(t, err)

	// Simulate drift: an active flag with no backing ledger rows
	_, err = client.User.UpdateOneID(drifted.ID).
		SetStatus(user.StatusActive).
		SetAssignmentStatus(user.AssignmentStatusAssigned).
		SetZoneIds([]int{z.ID}).
		Save(ctx)
	require.NoError(t, err)

	report, err := engine.ResyncAll(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, report.AgentsChecked)
	assert.Equal(t, 1, report.DriftsCorrected)
	assert.Zero(t, report.Failures)

	// Drift corrected: resync downgraded the phantom holder
	got := getUser(t, client, drifted.ID)
	assert.Equal(t, user.StatusInactive, got.Status)
	assert.Empty(t, got.ZoneIds)

	// The legitimate holder was untouched
	gotHolder := getUser(t, client, holder.ID)
	assert.Equal(t, user.StatusActive, gotHolder.Status)
	assert.Equal(t, []int{z.ID}, gotHolder.ZoneIds)

	t.Run("second resync reports no drift", func(t *testing.T) {
		report, err := engine.ResyncAll(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, report.DriftsCorrected)
	})
}
