package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/enttest"
	"github.com/knockbase/knockbase/pkg/cache"
	"github.com/knockbase/knockbase/pkg/ledger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotifyTest(t *testing.T) (*ent.Client, *cache.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:notify_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	svc := NewService(client, cacheClient, "noreply@knockbase.io", "KnockBase", "")
	return client, cacheClient, svc
}

func subscribe(t *testing.T, cacheClient *cache.Client) *redis.PubSub {
	sub := cacheClient.Redis.Subscribe(context.Background(), Channel)
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { sub.Close() })
	return sub
}

func receiveEvent(t *testing.T, sub *redis.PubSub) Event {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
	return event
}

func TestNotifyAssignment_PublishesEvent(t *testing.T) {
	client, cacheClient, svc := setupNotifyTest(t)
	defer client.Close()
	ctx := t.Context()

	agent, err := client.User.Create().
		SetEmail("agent@knockbase.io").
		SetPasswordHash("hashed").
		SetName("Agent One").
		Save(ctx)
	require.NoError(t, err)

	sub := subscribe(t, cacheClient)

	effectiveFrom := time.Now().Truncate(time.Second)
	svc.NotifyAssignment(ctx, ledger.AgentTarget(agent.ID), 42, effectiveFrom)

	event := receiveEvent(t, sub)
	assert.Equal(t, EventAssigned, event.Event)
	assert.Equal(t, 42, event.ZoneID)
	assert.Equal(t, "agent", event.TargetKind)
	assert.Equal(t, agent.ID, event.TargetID)
	assert.True(t, event.EffectiveFrom.Equal(effectiveFrom))
	assert.NotZero(t, event.Timestamp)
}

func TestNotifyScheduledAndActivated_EventTypes(t *testing.T) {
	client, cacheClient, svc := setupNotifyTest(t)
	defer client.Close()
	ctx := t.Context()

	leader, err := client.User.Create().
		SetEmail("leader@knockbase.io").
		SetPasswordHash("hashed").
		SetName("Leader").
		Save(ctx)
	require.NoError(t, err)

	tm, err := client.Team.Create().
		SetName("South Crew").
		SetLeaderUserID(leader.ID).
		SetCreatedByUserID(leader.ID).
		Save(ctx)
	require.NoError(t, err)

	sub := subscribe(t, cacheClient)
	when := time.Now().Add(24 * time.Hour)

	svc.NotifyScheduled(ctx, ledger.TeamTarget(tm.ID), 7, when)
	event := receiveEvent(t, sub)
	assert.Equal(t, EventScheduled, event.Event)
	assert.Equal(t, "team", event.TargetKind)
	assert.Equal(t, tm.ID, event.TargetID)

	svc.NotifyActivated(ctx, ledger.TeamTarget(tm.ID), 7, when)
	event = receiveEvent(t, sub)
	assert.Equal(t, EventActivated, event.Event)
}

func TestNotify_NilCacheDoesNotPanic(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:notify_nilcache_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)
	defer client.Close()

	svc := NewService(client, nil, "noreply@knockbase.io", "KnockBase", "")

	// Console-only mode with no cache: nothing to publish, nothing to send,
	// and unresolvable targets are logged and skipped.
	svc.NotifyAssignment(t.Context(), ledger.AgentTarget(999), 1, time.Now())
	svc.NotifyAssignment(t.Context(), ledger.Target{}, 1, time.Now())
}
