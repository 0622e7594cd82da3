package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/enttest"
	"github.com/knockbase/knockbase/ent/resident"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/pkg/audit"
	"github.com/knockbase/knockbase/pkg/export"
	"github.com/knockbase/knockbase/pkg/geo"
	"github.com/knockbase/knockbase/pkg/models"
	"github.com/knockbase/knockbase/pkg/reconcile"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupZoneHandlerTest(t *testing.T) (*ent.Client, *ZoneHandler, *echo.Echo, *ent.User) {
	client := enttest.Open(t, "sqlite3", "file:zone_handler_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)

	engine := reconcile.NewEngine(client, nil, nil, nil)
	exporter := export.NewService(client, engine.Ledger(), t.TempDir())

	h := NewZoneHandler(client, engine, geo.NewService(client), exporter, audit.NewService(client))

	admin, err := client.User.Create().
		SetEmail(gofakeit.Email()).
		SetPasswordHash("hashed").
		SetName("Admin").
		Save(t.Context())
	require.NoError(t, err)

	return client, h, echo.New(), admin
}

func asAdmin(c echo.Context, admin *ent.User) {
	c.Set("user_id", admin.ID)
}

func zonePathContext(e *echo.Echo, admin *ent.User, method, body string, zoneID int) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := doJSON(e, method, "/api/v1/zones", body)
	asAdmin(c, admin)
	if zoneID > 0 {
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(zoneID))
	}
	return c, rec
}

func TestZoneCreate(t *testing.T) {
	client, h, e, admin := setupZoneHandlerTest(t)
	defer client.Close()

	t.Run("creates zone with boundary", func(t *testing.T) {
		body := `{"name":"Maple Heights","description":"North side","boundary":[[0,0],[1,0],[1,1],[0,1]]}`
		c, rec := zonePathContext(e, admin, http.MethodPost, body, 0)

		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp models.ZoneResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Maple Heights", resp.Name)
		assert.Equal(t, "draft", resp.Status)
		assert.Len(t, resp.Boundary, 4)
	})

	t.Run("overlapping boundary is rejected", func(t *testing.T) {
		body := `{"name":"Maple Overlap","boundary":[[0.5,0.5],[2,0.5],[2,2],[0.5,2]]}`
		c, rec := zonePathContext(e, admin, http.MethodPost, body, 0)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("degenerate boundary is rejected", func(t *testing.T) {
		body := `{"name":"Line Zone","boundary":[[5,5],[6,6]]}`
		c, rec := zonePathContext(e, admin, http.MethodPost, body, 0)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("name is required", func(t *testing.T) {
		c, rec := zonePathContext(e, admin, http.MethodPost, `{"description":"nameless"}`, 0)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestZoneAssign(t *testing.T) {
	client, h, e, admin := setupZoneHandlerTest(t)
	defer client.Close()
	ctx := t.Context()

	agent, err := client.User.Create().
		SetEmail(gofakeit.Email()).
		SetPasswordHash("hashed").
		SetName("Agent").
		Save(ctx)
	require.NoError(t, err)

	z, err := client.Zone.Create().
		SetName("Assignable Zone").
		SetCreatedByUserID(admin.ID).
		Save(ctx)
	require.NoError(t, err)

	t.Run("both targets set is rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"agent_id":%d,"team_id":1}`, agent.ID)
		c, rec := zonePathContext(e, admin, http.MethodPost, body, z.ID)

		require.NoError(t, h.Assign(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no target is rejected", func(t *testing.T) {
		c, rec := zonePathContext(e, admin, http.MethodPost, `{}`, z.ID)
		require.NoError(t, h.Assign(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("assigns to agent", func(t *testing.T) {
		body := fmt.Sprintf(`{"agent_id":%d}`, agent.ID)
		c, rec := zonePathContext(e, admin, http.MethodPost, body, z.ID)

		require.NoError(t, h.Assign(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var result reconcile.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.NotNil(t, result.Zone)
		assert.Equal(t, "active", result.Zone.Status.String())
	})

	t.Run("unknown agent returns 404", func(t *testing.T) {
		c, rec := zonePathContext(e, admin, http.MethodPost, `{"agent_id":9999}`, z.ID)
		require.NoError(t, h.Assign(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown zone returns 404", func(t *testing.T) {
		body := fmt.Sprintf(`{"agent_id":%d}`, agent.ID)
		c, rec := zonePathContext(e, admin, http.MethodPost, body, 9999)
		require.NoError(t, h.Assign(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestZoneHistoryAndUnassign(t *testing.T) {
	client, h, e, admin := setupZoneHandlerTest(t)
	defer client.Close()
	ctx := t.Context()

	agentA, err := client.User.Create().
		SetEmail(gofakeit.Email()).
		SetPasswordHash("hashed").
		SetName("Agent A").
		Save(ctx)
	require.NoError(t, err)
	agentB, err := client.User.Create().
		SetEmail(gofakeit.Email()).
		SetPasswordHash("hashed").
		SetName("Agent B").
		Save(ctx)
	require.NoError(t, err)

	z, err := client.Zone.Create().
		SetName("History Zone").
		SetCreatedByUserID(admin.ID).
		Save(ctx)
	require.NoError(t, err)

	assign := func(agentID int) {
		body := fmt.Sprintf(`{"agent_id":%d}`, agentID)
		c, rec := zonePathContext(e, admin, http.MethodPost, body, z.ID)
		require.NoError(t, h.Assign(c))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assign(agentA.ID)
	assign(agentB.ID)

	t.Run("history lists both claims newest first", func(t *testing.T) {
		c, rec := zonePathContext(e, admin, http.MethodGet, "", z.ID)
		require.NoError(t, h.History(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var records []models.AssignmentRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		require.Len(t, records, 2)
		require.NotNil(t, records[0].AgentID)
		assert.Equal(t, agentB.ID, *records[0].AgentID)
		assert.Equal(t, "active", records[0].Status)
		require.NotNil(t, records[1].AgentID)
		assert.Equal(t, agentA.ID, *records[1].AgentID)
		assert.NotEmpty(t, records[1].EffectiveTo)
	})

	t.Run("unassign reverts to draft", func(t *testing.T) {
		c, rec := zonePathContext(e, admin, http.MethodDelete, "", z.ID)
		require.NoError(t, h.Unassign(c))
		require.Equal(t, http.StatusOK, rec.Code)

		got, err := client.Zone.Get(ctx, z.ID)
		require.NoError(t, err)
		assert.Equal(t, "draft", got.Status.String())
	})

	t.Run("history of unknown zone returns 404", func(t *testing.T) {
		c, rec := zonePathContext(e, admin, http.MethodGet, "", 9999)
		require.NoError(t, h.History(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestZoneDeleteViaHandler(t *testing.T) {
	client, h, e, admin := setupZoneHandlerTest(t)
	defer client.Close()
	ctx := t.Context()

	z, err := client.Zone.Create().
		SetName("Handler Delete Zone").
		SetCreatedByUserID(admin.ID).
		Save(ctx)
	require.NoError(t, err)

	c, rec := zonePathContext(e, admin, http.MethodDelete, "", z.ID)
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)

	_, err = client.Zone.Get(ctx, z.ID)
	assert.True(t, ent.IsNotFound(err))

	t.Run("deleting again returns 404", func(t *testing.T) {
		c, rec := zonePathContext(e, admin, http.MethodDelete, "", z.ID)
		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestZoneGet_DerivedCompletion(t *testing.T) {
	client, h, e, admin := setupZoneHandlerTest(t)
	defer client.Close()
	ctx := t.Context()

	z, err := client.Zone.Create().
		SetName("Walked Zone").
		SetCreatedByUserID(admin.ID).
		SetStatus(zone.StatusActive).
		Save(ctx)
	require.NoError(t, err)

	addResident := func(status resident.VisitStatus) *ent.Resident {
		r, err := client.Resident.Create().
			SetZoneID(z.ID).
			SetAddress(gofakeit.Street()).
			SetVisitStatus(status).
			Save(ctx)
		require.NoError(t, err)
		return r
	}

	getStatus := func() string {
		c, rec := zonePathContext(e, admin, http.MethodGet, "", z.ID)
		require.NoError(t, h.Get(c))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.ZoneResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.Status
	}

	t.Run("no residents stays active", func(t *testing.T) {
		assert.Equal(t, "active", getStatus())
	})

	addResident(resident.VisitStatusVisited)
	pending := addResident(resident.VisitStatusNotHome)

	t.Run("unvisited resident keeps zone active", func(t *testing.T) {
		assert.Equal(t, "active", getStatus())
	})

	t.Run("all residents visited reads as completed", func(t *testing.T) {
		_, err := client.Resident.UpdateOneID(pending.ID).
			SetVisitStatus(resident.VisitStatusVisited).
			Save(ctx)
		require.NoError(t, err)

		assert.Equal(t, "completed", getStatus())

		// The stored status is untouched by the read
		got, err := client.Zone.Get(ctx, z.ID)
		require.NoError(t, err)
		assert.Equal(t, zone.StatusActive, got.Status)
	})

	t.Run("list derives the same view", func(t *testing.T) {
		c, rec := zonePathContext(e, admin, http.MethodGet, "", 0)
		require.NoError(t, h.List(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resps []*models.ZoneResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resps))
		for _, resp := range resps {
			if resp.ID == z.ID {
				assert.Equal(t, "completed", resp.Status)
			}
		}
	})

	t.Run("draft zone never reads as completed", func(t *testing.T) {
		draft, err := client.Zone.Create().
			SetName("Unstarted Zone").
			SetCreatedByUserID(admin.ID).
			Save(ctx)
		require.NoError(t, err)

		c, rec := zonePathContext(e, admin, http.MethodGet, "", draft.ID)
		require.NoError(t, h.Get(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ZoneResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "draft", resp.Status)
	})
}

// scheduled assignments land as pending rows and flip the zone to scheduled
func TestZoneAssign_Scheduled(t *testing.T) {
	client, h, e, admin := setupZoneHandlerTest(t)
	defer client.Close()
	ctx := t.Context()

	agent, err := client.User.Create().
		SetEmail(gofakeit.Email()).
		SetPasswordHash("hashed").
		SetName("Agent").
		Save(ctx)
	require.NoError(t, err)

	z, err := client.Zone.Create().
		SetName("Scheduled Zone").
		SetCreatedByUserID(admin.ID).
		Save(ctx)
	require.NoError(t, err)

	effectiveFrom := time.Now().Add(48 * time.Hour).UTC()
	body := fmt.Sprintf(`{"agent_id":%d,"effective_from":%q}`, agent.ID, effectiveFrom.Format(time.RFC3339))
	c, rec := zonePathContext(e, admin, http.MethodPost, body, z.ID)

	require.NoError(t, h.Assign(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result reconcile.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.Zone)
	assert.Equal(t, "scheduled", result.Zone.Status.String())

	pending, err := h.engine.Ledger().PendingForZone(ctx, z.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
