package status

import (
	"testing"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/enttest"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/pkg/ledger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStatusTestDB(t *testing.T) (*ent.Client, *Service, *ledger.Service) {
	client := enttest.Open(t, "sqlite3", "file:status_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)
	ledgerSvc := ledger.NewService(client)
	return client, NewService(client, ledgerSvc), ledgerSvc
}

func createStatusTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("hashed").
		SetName("Agent " + email).
		Save(t.Context())
	require.NoError(t, err)
	return u
}

func createStatusTestZone(t *testing.T, client *ent.Client, creator *ent.User, name string) *ent.Zone {
	z, err := client.Zone.Create().
		SetName(name).
		SetCreatedByUserID(creator.ID).
		Save(t.Context())
	require.NoError(t, err)
	return z
}

func grantImmediate(t *testing.T, client *ent.Client, ledgerSvc *ledger.Service, zoneID int, target ledger.Target) {
	tx, err := client.Tx(t.Context())
	require.NoError(t, err)
	_, err = ledgerSvc.CreateImmediate(t.Context(), tx, zoneID, target, time.Now(), nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
}

func TestSyncAgent_ActivatesOnWork(t *testing.T) {
	client, svc, ledgerSvc := setupStatusTestDB(t)
	defer client.Close()
	ctx := t.Context()

	agent := createStatusTestUser(t, client, "agent@knockbase.io")
	zone := createStatusTestZone(t, client, agent, "Grid 1")
	grantImmediate(t, client, ledgerSvc, zone.ID, ledger.AgentTarget(agent.ID))

	changed, err := svc.SyncAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := client.User.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, user.StatusActive, got.Status)
	assert.Equal(t, user.AssignmentStatusAssigned, got.AssignmentStatus)
	assert.Equal(t, []int{zone.ID}, got.ZoneIds)

	t.Run("second sync is a no-op", func(t *testing.T) {
		changed, err := svc.SyncAgent(ctx, agent.ID)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestSyncAgent_StickyActive(t *testing.T) {
	client, svc, _ := setupStatusTestDB(t)
	defer client.Close()
	ctx := t.Context()

	// An agent already active with no remaining ledger rows stays active
	// through the normal path. Assignment status still drops to unassigned.
	agent := createStatusTestUser(t, client, "veteran@knockbase.io")
	_, err := client.User.UpdateOneID(agent.ID).
		SetStatus(user.StatusActive).
		SetAssignmentStatus(user.AssignmentStatusAssigned).
		SetZoneIds([]int{}).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.SyncAgent(ctx, agent.ID)
	require.NoError(t, err)

	got, err := client.User.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, user.StatusActive, got.Status)
	assert.Equal(t, user.AssignmentStatusUnassigned, got.AssignmentStatus)
}

func TestSyncAgent_StaleZoneBookkeepingKeepsActive(t *testing.T) {
	client, svc, _ := setupStatusTestDB(t)
	defer client.Close()
	ctx := t.Context()

	agent := createStatusTestUser(t, client, "stale@knockbase.io")
	_, err := client.User.UpdateOneID(agent.ID).
		SetZoneIds([]int{999}).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.SyncAgent(ctx, agent.ID)
	require.NoError(t, err)

	got, err := client.User.Get(ctx, agent.ID)
	require.NoError(t, err)
	// Stale stored zones kept the operational flag up, but the zone set
	// itself was rebuilt from the ledger.
	assert.Equal(t, user.StatusActive, got.Status)
	assert.Empty(t, got.ZoneIds)
}

func TestResyncAgent_DowngradesActive(t *testing.T) {
	client, svc, _ := setupStatusTestDB(t)
	defer client.Close()
	ctx := t.Context()

	agent := createStatusTestUser(t, client, "drifted@knockbase.io")
	primaryZone := 42
	_, err := client.User.UpdateOneID(agent.ID).
		SetStatus(user.StatusActive).
		SetAssignmentStatus(user.AssignmentStatusAssigned).
		SetZoneIds([]int{42}).
		SetPrimaryZoneID(primaryZone).
		Save(ctx)
	require.NoError(t, err)

	changed, err := svc.ResyncAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := client.User.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, user.StatusInactive, got.Status)
	assert.Equal(t, user.AssignmentStatusUnassigned, got.AssignmentStatus)
	assert.Empty(t, got.ZoneIds)

	t.Run("resync is idempotent", func(t *testing.T) {
		changed, err := svc.ResyncAgent(ctx, agent.ID)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestSyncTeam_FullRecompute(t *testing.T) {
	client, svc, ledgerSvc := setupStatusTestDB(t)
	defer client.Close()
	ctx := t.Context()

	leader := createStatusTestUser(t, client, "leader@knockbase.io")
	tm, err := client.Team.Create().
		SetName("North Crew").
		SetLeaderUserID(leader.ID).
		SetCreatedByUserID(leader.ID).
		Save(ctx)
	require.NoError(t, err)

	zone := createStatusTestZone(t, client, leader, "Team Grid")
	grantImmediate(t, client, ledgerSvc, zone.ID, ledger.TeamTarget(tm.ID))

	changed, err := svc.SyncTeam(ctx, tm.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := client.Team.Get(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, team.StatusActive, got.Status)
	assert.Equal(t, team.AssignmentStatusAssigned, got.AssignmentStatus)

	t.Run("no sticky exception for teams", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		_, err = ledgerSvc.TerminateForZone(ctx, tx, zone.ID, time.Now())
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		changed, err := svc.SyncTeam(ctx, tm.ID)
		require.NoError(t, err)
		assert.True(t, changed)

		got, err := client.Team.Get(ctx, tm.ID)
		require.NoError(t, err)
		assert.Equal(t, team.StatusInactive, got.Status)
		assert.Equal(t, team.AssignmentStatusUnassigned, got.AssignmentStatus)
	})
}

func TestSyncAgentZoneIDs_ReplacesWholesale(t *testing.T) {
	client, svc, ledgerSvc := setupStatusTestDB(t)
	defer client.Close()
	ctx := t.Context()

	agent := createStatusTestUser(t, client, "replace@knockbase.io")
	_, err := client.User.UpdateOneID(agent.ID).
		SetZoneIds([]int{1, 2, 3}).
		Save(ctx)
	require.NoError(t, err)

	zone := createStatusTestZone(t, client, agent, "Real Zone")
	grantImmediate(t, client, ledgerSvc, zone.ID, ledger.AgentTarget(agent.ID))

	zoneIDs, err := svc.SyncAgentZoneIDs(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{zone.ID}, zoneIDs)

	got, err := client.User.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{zone.ID}, got.ZoneIds)
}
