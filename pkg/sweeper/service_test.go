package sweeper

import (
	"testing"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/enttest"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/pkg/ledger"
	"github.com/knockbase/knockbase/pkg/reconcile"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSweeperTestDB(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:sweeper_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)
	engine := reconcile.NewEngine(client, nil, nil, nil)
	return client, NewService(client, engine, nil, nil, nil)
}

func createSweeperTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("hashed").
		SetName("Agent " + email).
		Save(t.Context())
	require.NoError(t, err)
	return u
}

func createSweeperTestZone(t *testing.T, client *ent.Client, creator *ent.User, name string) *ent.Zone {
	z, err := client.Zone.Create().
		SetName(name).
		SetCreatedByUserID(creator.ID).
		SetStatus(zone.StatusScheduled).
		Save(t.Context())
	require.NoError(t, err)
	return z
}

func scheduleRow(t *testing.T, client *ent.Client, svc *Service, zoneID int, target ledger.Target, when time.Time, by *int) *ent.ScheduledAssignment {
	tx, err := client.Tx(t.Context())
	require.NoError(t, err)
	row, err := svc.ledger.CreateScheduled(t.Context(), tx, zoneID, target, when, when, by)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return row
}

func TestRunActivationSweep(t *testing.T) {
	client, svc := setupSweeperTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createSweeperTestUser(t, client, "admin@knockbase.io")
	agent := createSweeperTestUser(t, client, "agent@knockbase.io")
	zDue := createSweeperTestZone(t, client, admin, "Due Zone")
	zFuture := createSweeperTestZone(t, client, admin, "Future Zone")

	effectiveFrom := time.Now().Add(-time.Hour)
	dueRow := scheduleRow(t, client, svc, zDue.ID, ledger.AgentTarget(agent.ID), effectiveFrom, &admin.ID)
	scheduleRow(t, client, svc, zFuture.ID, ledger.AgentTarget(agent.ID), time.Now().Add(24*time.Hour), &admin.ID)

	report, err := svc.RunActivationSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Due)
	assert.Equal(t, 1, report.Activated)
	assert.Zero(t, report.Failed)

	// The scheduled row was marked activated with a timestamp
	gotRow, err := client.ScheduledAssignment.Get(ctx, dueRow.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledassignment.StatusActivated, gotRow.Status)
	assert.NotNil(t, gotRow.ActivatedAt)

	// An immediate claim now exists, carrying the scheduled effective date
	// and the original assigner
	open, err := svc.ledger.NonTerminalForZone(ctx, zDue.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, ledger.AgentTarget(agent.ID), ledger.TargetOf(open[0]))
	assert.WithinDuration(t, effectiveFrom, open[0].EffectiveFrom, time.Second)
	require.NotNil(t, open[0].AssignedByUserID)
	assert.Equal(t, admin.ID, *open[0].AssignedByUserID)

	gotZone, err := client.Zone.Get(ctx, zDue.ID)
	require.NoError(t, err)
	assert.Equal(t, zone.StatusActive, gotZone.Status)
	require.NotNil(t, gotZone.AssignedAgentID)
	assert.Equal(t, agent.ID, *gotZone.AssignedAgentID)

	// Propagation reached the agent
	gotAgent, err := client.User.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, user.StatusActive, gotAgent.Status)
	assert.Equal(t, user.AssignmentStatusAssigned, gotAgent.AssignmentStatus)
	require.NotNil(t, gotAgent.PrimaryZoneID)
	assert.Equal(t, zDue.ID, *gotAgent.PrimaryZoneID)
	assert.ElementsMatch(t, []int{zDue.ID, zFuture.ID}, gotAgent.ZoneIds)

	// The future row stayed pending and its zone untouched
	pending, err := svc.ledger.PendingForZone(ctx, zFuture.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	gotFuture, err := client.Zone.Get(ctx, zFuture.ID)
	require.NoError(t, err)
	assert.Equal(t, zone.StatusScheduled, gotFuture.Status)

	t.Run("second sweep finds nothing", func(t *testing.T) {
		report, err := svc.RunActivationSweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, report.Due)
	})
}

func TestRunActivationSweep_CancelledRowSkipped(t *testing.T) {
	client, svc := setupSweeperTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createSweeperTestUser(t, client, "admin@knockbase.io")
	agent := createSweeperTestUser(t, client, "agent@knockbase.io")
	z := createSweeperTestZone(t, client, admin, "Flipped Zone")

	row := scheduleRow(t, client, svc, z.ID, ledger.AgentTarget(agent.ID), time.Now().Add(-time.Hour), &admin.ID)

	// Cancellation lands after the batch was read: the conditional flip must
	// see it and skip the row without error.
	_, err := client.ScheduledAssignment.UpdateOneID(row.ID).
		SetStatus(scheduledassignment.StatusCancelled).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.activate(ctx, row))

	open, err := svc.ledger.NonTerminalForZone(ctx, z.ID)
	require.NoError(t, err)
	assert.Empty(t, open)

	gotZone, err := client.Zone.Get(ctx, z.ID)
	require.NoError(t, err)
	assert.Equal(t, zone.StatusScheduled, gotZone.Status)
}

func TestRunActivationSweep_RepairsLingeringClaim(t *testing.T) {
	client, svc := setupSweeperTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createSweeperTestUser(t, client, "admin@knockbase.io")
	oldAgent := createSweeperTestUser(t, client, "old@knockbase.io")
	newAgent := createSweeperTestUser(t, client, "new@knockbase.io")
	z := createSweeperTestZone(t, client, admin, "Drifted Zone")

	// A stray open claim that should have been terminated when the schedule
	// was created
	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	_, err = svc.ledger.CreateImmediate(ctx, tx, z.ID, ledger.AgentTarget(oldAgent.ID), time.Now().Add(-48*time.Hour), nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	scheduleRow(t, client, svc, z.ID, ledger.AgentTarget(newAgent.ID), time.Now().Add(-time.Hour), &admin.ID)

	report, err := svc.RunActivationSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Activated)

	// The stray claim was closed inside the activation transaction
	open, err := svc.ledger.NonTerminalForZone(ctx, z.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, ledger.AgentTarget(newAgent.ID), ledger.TargetOf(open[0]))
}
