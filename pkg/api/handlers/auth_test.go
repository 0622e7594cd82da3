package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/knockbase/knockbase/config"
	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/enttest"
	"github.com/knockbase/knockbase/pkg/audit"
	"github.com/knockbase/knockbase/pkg/auth"
	"github.com/knockbase/knockbase/pkg/models"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret-key-for-tests-only",
		JWTExpirationHours: 24,
	}
}

func setupAuthHandlerTest(t *testing.T) (*ent.Client, *AuthHandler, *echo.Echo) {
	client := enttest.Open(t, "sqlite3", "file:auth_handler_test?mode=memory&cache=shared&_fk=1",
		enttest.WithOptions(ent.Log(t.Log)),
	)
	h := NewAuthHandler(client, testConfig(), audit.NewService(client))
	return client, h, echo.New()
}

func registerBody() (models.RegisterRequest, string) {
	req := models.RegisterRequest{
		Email:    gofakeit.Email(),
		Password: "s3cure-pass-123",
		Name:     gofakeit.Name(),
	}
	body, _ := json.Marshal(req)
	return req, string(body)
}

func doJSON(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister(t *testing.T) {
	client, h, e := setupAuthHandlerTest(t)
	defer client.Close()

	t.Run("creates agent and returns token", func(t *testing.T) {
		reqData, body := registerBody()
		c, rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", body)

		require.NoError(t, h.Register(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, reqData.Email, resp.User.Email)
		assert.Equal(t, "agent", resp.User.Role)
		assert.Equal(t, "inactive", resp.User.Status)
		assert.Equal(t, "unassigned", resp.User.AssignmentStatus)
		assert.Equal(t, []int{}, resp.User.ZoneIDs)

		claims, err := auth.ValidateJWT(resp.Token, testConfig().JWTSecret)
		require.NoError(t, err)
		assert.Equal(t, reqData.Email, claims.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, body := registerBody()
		c, rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", body)
		require.NoError(t, h.Register(c))
		require.Equal(t, http.StatusOK, rec.Code)

		c, rec = doJSON(e, http.MethodPost, "/api/v1/auth/register", body)
		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation failures", func(t *testing.T) {
		for name, body := range map[string]string{
			"bad email":      `{"email":"not-an-email","password":"s3cure-pass-123","name":"Agent"}`,
			"short password": fmt.Sprintf(`{"email":%q,"password":"short","name":"Agent"}`, gofakeit.Email()),
			"missing name":   fmt.Sprintf(`{"email":%q,"password":"s3cure-pass-123"}`, gofakeit.Email()),
		} {
			t.Run(name, func(t *testing.T) {
				c, rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", body)
				require.NoError(t, h.Register(c))
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})

	t.Run("phone is normalized to E.164", func(t *testing.T) {
		body := fmt.Sprintf(`{"email":%q,"password":"s3cure-pass-123","name":"Agent","phone":"(415) 555-2671","region":"US"}`, gofakeit.Email())
		c, rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", body)
		require.NoError(t, h.Register(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "+14155552671", resp.User.Phone)
	})

	t.Run("bogus phone is rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"email":%q,"password":"s3cure-pass-123","name":"Agent","phone":"123","region":"US"}`, gofakeit.Email())
		c, rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", body)
		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	client, h, e := setupAuthHandlerTest(t)
	defer client.Close()

	reqData, body := registerBody()
	c, rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", body)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("valid credentials", func(t *testing.T) {
		loginBody := fmt.Sprintf(`{"email":%q,"password":%q}`, reqData.Email, reqData.Password)
		c, rec := doJSON(e, http.MethodPost, "/api/v1/auth/login", loginBody)
		require.NoError(t, h.Login(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, reqData.Email, resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		loginBody := fmt.Sprintf(`{"email":%q,"password":"wrong-password"}`, reqData.Email)
		c, rec := doJSON(e, http.MethodPost, "/api/v1/auth/login", loginBody)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		c, rec := doJSON(e, http.MethodPost, "/api/v1/auth/login", `{"email":"ghost@knockbase.io","password":"whatever1"}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMe(t *testing.T) {
	client, h, e := setupAuthHandlerTest(t)
	defer client.Close()

	u, err := client.User.Create().
		SetEmail(gofakeit.Email()).
		SetPasswordHash("hashed").
		SetName(gofakeit.Name()).
		Save(t.Context())
	require.NoError(t, err)

	t.Run("returns current user", func(t *testing.T) {
		c, rec := doJSON(e, http.MethodGet, "/api/v1/auth/me", "")
		c.Set("user_id", u.ID)

		require.NoError(t, h.Me(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.UserInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, u.ID, resp.ID)
		assert.Equal(t, u.Email, resp.Email)
	})

	t.Run("missing auth context", func(t *testing.T) {
		c, rec := doJSON(e, http.MethodGet, "/api/v1/auth/me", "")
		require.NoError(t, h.Me(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
