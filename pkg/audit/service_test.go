package audit

import (
	"testing"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/auditlog"
	"github.com/knockbase/knockbase/ent/enttest"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuditTestDB(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:audit_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)
	return client, NewService(client)
}

func createAuditTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("hashed").
		SetName("User " + email).
		Save(t.Context())
	require.NoError(t, err)
	return u
}

func TestLogAndQuery(t *testing.T) {
	client, svc := setupAuditTestDB(t)
	defer client.Close()
	ctx := t.Context()

	admin := createAuditTestUser(t, client, "admin@knockbase.io")
	other := createAuditTestUser(t, client, "other@knockbase.io")

	require.NoError(t, svc.LogUserLogin(ctx, admin.ID, "203.0.113.7", "curl/8.0"))
	require.NoError(t, svc.LogZoneAssignment(ctx, admin.ID, 42, auditlog.ActionZoneAssignAgent, map[string]interface{}{
		"agent_id": other.ID,
	}))
	require.NoError(t, svc.LogUserRegister(ctx, other.ID, "203.0.113.8", "curl/8.0"))

	t.Run("user logs are scoped and newest first", func(t *testing.T) {
		logs, err := svc.GetUserLogs(ctx, admin.ID, 10)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, auditlog.ActionZoneAssignAgent, logs[0].Action)
		assert.Equal(t, auditlog.ActionUserLogin, logs[1].Action)
	})

	t.Run("recent logs cover all users", func(t *testing.T) {
		logs, err := svc.GetRecentLogs(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, logs, 3)
	})

	t.Run("filter by action", func(t *testing.T) {
		logs, err := svc.GetLogsByAction(ctx, auditlog.ActionZoneAssignAgent, 10)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "42", logs[0].ResourceID)
		assert.Equal(t, float64(other.ID), logs[0].Metadata["agent_id"])
	})

	t.Run("limit is respected", func(t *testing.T) {
		logs, err := svc.GetRecentLogs(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})
}

func TestLog_SystemActionWithoutUser(t *testing.T) {
	client, svc := setupAuditTestDB(t)
	defer client.Close()
	ctx := t.Context()

	require.NoError(t, svc.LogAssignmentActivated(ctx, 7, map[string]interface{}{
		"target_kind": "agent",
		"target_id":   3,
	}))

	logs, err := svc.GetLogsByAction(ctx, auditlog.ActionAssignmentActivated, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Nil(t, logs[0].UserID)
	assert.Equal(t, auditlog.SeverityInfo, logs[0].Severity)
}
