package ledger

import (
	"testing"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/enttest"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/zoneassignment"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLedgerTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ledger_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)
	return client
}

func createLedgerTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("hashed").
		SetName("Agent " + email).
		Save(t.Context())
	require.NoError(t, err)
	return u
}

func createLedgerTestTeam(t *testing.T, client *ent.Client, leader *ent.User, name string) *ent.Team {
	team, err := client.Team.Create().
		SetName(name).
		SetLeaderUserID(leader.ID).
		SetCreatedByUserID(leader.ID).
		Save(t.Context())
	require.NoError(t, err)
	return team
}

func createLedgerTestZone(t *testing.T, client *ent.Client, creator *ent.User, name string) *ent.Zone {
	zone, err := client.Zone.Create().
		SetName(name).
		SetCreatedByUserID(creator.ID).
		Save(t.Context())
	require.NoError(t, err)
	return zone
}

func addLedgerTestMember(t *testing.T, client *ent.Client, teamID, userID int) {
	_, err := client.TeamMember.Create().
		SetTeamID(teamID).
		SetUserID(userID).
		SetAddedByUserID(userID).
		Save(t.Context())
	require.NoError(t, err)
}

func inTx(t *testing.T, client *ent.Client, fn func(tx *ent.Tx) error) {
	tx, err := client.Tx(t.Context())
	require.NoError(t, err)
	require.NoError(t, fn(tx))
	require.NoError(t, tx.Commit())
}

func TestTerminateForZone(t *testing.T) {
	client := setupLedgerTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createLedgerTestUser(t, client, "admin@knockbase.io")
	agent := createLedgerTestUser(t, client, "agent@knockbase.io")
	zone := createLedgerTestZone(t, client, admin, "North Grid")

	svc := NewService(client)
	now := time.Now()

	inTx(t, client, func(tx *ent.Tx) error {
		_, err := svc.CreateImmediate(ctx, tx, zone.ID, AgentTarget(agent.ID), now, &admin.ID)
		if err != nil {
			return err
		}
		_, err = svc.CreateScheduled(ctx, tx, zone.ID, AgentTarget(agent.ID), now.Add(48*time.Hour), now.Add(48*time.Hour), &admin.ID)
		return err
	})

	t.Run("closes immediate and cancels pending", func(t *testing.T) {
		var count int
		inTx(t, client, func(tx *ent.Tx) error {
			var err error
			count, err = svc.TerminateForZone(ctx, tx, zone.ID, time.Now())
			return err
		})
		assert.Equal(t, 2, count)

		open, err := svc.NonTerminalForZone(ctx, zone.ID)
		require.NoError(t, err)
		assert.Empty(t, open)

		pending, err := svc.PendingForZone(ctx, zone.ID)
		require.NoError(t, err)
		assert.Empty(t, pending)

		// Rows remain for history: closed, not deleted
		rows, err := client.ZoneAssignment.Query().Where(zoneassignment.ZoneID(zone.ID)).All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, zoneassignment.StatusInactive, rows[0].Status)
		assert.NotNil(t, rows[0].EffectiveTo)
	})

	t.Run("terminal rows are untouched", func(t *testing.T) {
		var count int
		inTx(t, client, func(tx *ent.Tx) error {
			var err error
			count, err = svc.TerminateForZone(ctx, tx, zone.ID, time.Now())
			return err
		})
		assert.Equal(t, 0, count)
	})
}

func TestZoneIDsForAgent_Union(t *testing.T) {
	client := setupLedgerTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createLedgerTestUser(t, client, "admin@knockbase.io")
	agent := createLedgerTestUser(t, client, "agent@knockbase.io")
	team := createLedgerTestTeam(t, client, admin, "East Crew")
	addLedgerTestMember(t, client, team.ID, agent.ID)

	zoneOwn := createLedgerTestZone(t, client, admin, "Own Zone")
	zoneTeam := createLedgerTestZone(t, client, admin, "Team Zone")
	zonePendingOwn := createLedgerTestZone(t, client, admin, "Pending Own")
	zonePendingTeam := createLedgerTestZone(t, client, admin, "Pending Team")
	zoneClosed := createLedgerTestZone(t, client, admin, "Closed Zone")

	svc := NewService(client)
	now := time.Now()
	future := now.Add(72 * time.Hour)

	inTx(t, client, func(tx *ent.Tx) error {
		if _, err := svc.CreateImmediate(ctx, tx, zoneOwn.ID, AgentTarget(agent.ID), now, nil); err != nil {
			return err
		}
		if _, err := svc.CreateImmediate(ctx, tx, zoneTeam.ID, TeamTarget(team.ID), now, nil); err != nil {
			return err
		}
		if _, err := svc.CreateScheduled(ctx, tx, zonePendingOwn.ID, AgentTarget(agent.ID), future, future, nil); err != nil {
			return err
		}
		if _, err := svc.CreateScheduled(ctx, tx, zonePendingTeam.ID, TeamTarget(team.ID), future, future, nil); err != nil {
			return err
		}
		// A terminated claim must not appear in the union
		if _, err := svc.CreateImmediate(ctx, tx, zoneClosed.ID, AgentTarget(agent.ID), now, nil); err != nil {
			return err
		}
		_, err := svc.TerminateForZone(ctx, tx, zoneClosed.ID, now)
		return err
	})

	zoneIDs, err := svc.ZoneIDsForAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{zoneOwn.ID, zoneTeam.ID, zonePendingOwn.ID, zonePendingTeam.ID}, zoneIDs)
	assert.IsIncreasing(t, zoneIDs)

	t.Run("has work", func(t *testing.T) {
		hasWork, err := svc.AgentHasWork(ctx, agent.ID)
		require.NoError(t, err)
		assert.True(t, hasWork)

		hasWork, err = svc.TeamHasWork(ctx, team.ID)
		require.NoError(t, err)
		assert.True(t, hasWork)
	})

	t.Run("empty for uninvolved agent", func(t *testing.T) {
		other := createLedgerTestUser(t, client, "other@knockbase.io")
		zoneIDs, err := svc.ZoneIDsForAgent(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, zoneIDs)
	})
}

func TestDuePending_OrderAndCutoff(t *testing.T) {
	client := setupLedgerTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createLedgerTestUser(t, client, "admin@knockbase.io")
	agent := createLedgerTestUser(t, client, "agent@knockbase.io")
	zoneA := createLedgerTestZone(t, client, admin, "Zone A")
	zoneB := createLedgerTestZone(t, client, admin, "Zone B")
	zoneC := createLedgerTestZone(t, client, admin, "Zone C")

	svc := NewService(client)
	now := time.Now()

	inTx(t, client, func(tx *ent.Tx) error {
		if _, err := svc.CreateScheduled(ctx, tx, zoneB.ID, AgentTarget(agent.ID), now.Add(-time.Hour), now.Add(-time.Hour), nil); err != nil {
			return err
		}
		if _, err := svc.CreateScheduled(ctx, tx, zoneA.ID, AgentTarget(agent.ID), now.Add(-2*time.Hour), now.Add(-2*time.Hour), nil); err != nil {
			return err
		}
		_, err := svc.CreateScheduled(ctx, tx, zoneC.ID, AgentTarget(agent.ID), now.Add(time.Hour), now.Add(time.Hour), nil)
		return err
	})

	due, err := svc.DuePending(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	// Oldest first
	assert.Equal(t, zoneA.ID, due[0].ZoneID)
	assert.Equal(t, zoneB.ID, due[1].ZoneID)

	t.Run("cancelled rows are not due", func(t *testing.T) {
		_, err := client.ScheduledAssignment.Update().
			Where(scheduledassignment.ZoneID(zoneA.ID)).
			SetStatus(scheduledassignment.StatusCancelled).
			Save(ctx)
		require.NoError(t, err)

		due, err := svc.DuePending(ctx, now)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, zoneB.ID, due[0].ZoneID)
	})
}

func TestHistoricalPartiesForZone(t *testing.T) {
	client := setupLedgerTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createLedgerTestUser(t, client, "admin@knockbase.io")
	agentA := createLedgerTestUser(t, client, "a@knockbase.io")
	agentB := createLedgerTestUser(t, client, "b@knockbase.io")
	team := createLedgerTestTeam(t, client, admin, "West Crew")
	zone := createLedgerTestZone(t, client, admin, "Churned Zone")

	svc := NewService(client)
	now := time.Now()

	inTx(t, client, func(tx *ent.Tx) error {
		if _, err := svc.CreateImmediate(ctx, tx, zone.ID, AgentTarget(agentA.ID), now, nil); err != nil {
			return err
		}
		if _, err := svc.TerminateForZone(ctx, tx, zone.ID, now); err != nil {
			return err
		}
		if _, err := svc.CreateImmediate(ctx, tx, zone.ID, TeamTarget(team.ID), now, nil); err != nil {
			return err
		}
		if _, err := svc.TerminateForZone(ctx, tx, zone.ID, now); err != nil {
			return err
		}
		_, err := svc.CreateScheduled(ctx, tx, zone.ID, AgentTarget(agentB.ID), now.Add(time.Hour), now.Add(time.Hour), nil)
		return err
	})

	agentIDs, teamIDs, err := svc.HistoricalPartiesForZone(ctx, zone.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{agentA.ID, agentB.ID}, agentIDs)
	assert.ElementsMatch(t, []int{team.ID}, teamIDs)
}

func TestTargetOf(t *testing.T) {
	agentID := 7
	teamID := 9

	assert.Equal(t, AgentTarget(7), TargetOf(&ent.ZoneAssignment{AgentID: &agentID}))
	assert.Equal(t, TeamTarget(9), TargetOf(&ent.ZoneAssignment{TeamID: &teamID}))
	assert.True(t, TargetOf(&ent.ZoneAssignment{}).IsZero())
}
