package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	echo := func(c *gin.Context) {
		ident := middleware.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"role": ident.Role, "entityId": ident.EntityID})
	}
	r.GET("/admin-only", middleware.RequireRole(models.RoleAdmin), echo)
	r.GET("/dispatch", middleware.RequireRole(models.RoleDispatcher), echo)
	r.GET("/any", middleware.RequireRole(models.RoleRider), echo)
	r.GET("/self/:id", middleware.SelfOrRole(models.RoleAdmin), echo)
	return r
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, role models.Role, entityID string) string {
	t.Helper()
	token, err := middleware.GenerateToken("u1", role, entityID)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestMissingOrMalformedHeader(t *testing.T) {
	r := newAuthTestRouter()

	assert.Equal(t, http.StatusUnauthorized, get(r, "/any", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/any", "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/any", "Bearer not-a-token").Code)
}

func TestRoleHierarchy(t *testing.T) {
	r := newAuthTestRouter()

	cases := []struct {
		role       models.Role
		path       string
		wantStatus int
	}{
		{models.RoleAdmin, "/admin-only", http.StatusOK},
		{models.RoleDispatcher, "/admin-only", http.StatusForbidden},
		{models.RoleDriver, "/admin-only", http.StatusForbidden},
		{models.RoleRider, "/admin-only", http.StatusForbidden},
		{models.RoleAdmin, "/dispatch", http.StatusOK},
		{models.RoleDispatcher, "/dispatch", http.StatusOK},
		{models.RoleDriver, "/dispatch", http.StatusForbidden},
		{models.RoleAdmin, "/any", http.StatusOK},
		{models.RoleDispatcher, "/any", http.StatusOK},
		{models.RoleDriver, "/any", http.StatusOK},
		{models.RoleRider, "/any", http.StatusOK},
	}
	for _, tc := range cases {
		w := get(r, tc.path, bearer(t, tc.role, ""))
		assert.Equal(t, tc.wantStatus, w.Code, "%s on %s", tc.role, tc.path)
	}
}

func TestSelfAccess(t *testing.T) {
	r := newAuthTestRouter()

	// below the minimum role but matching entity id passes
	w := get(r, "/self/rider-1", bearer(t, models.RoleRider, "rider-1"))
	assert.Equal(t, http.StatusOK, w.Code)

	// mismatched entity id fails
	w = get(r, "/self/rider-1", bearer(t, models.RoleRider, "rider-2"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// empty entity id never matches
	w = get(r, "/self/", bearer(t, models.RoleRider, ""))
	assert.NotEqual(t, http.StatusOK, w.Code)

	// the minimum role passes regardless of entity id
	w = get(r, "/self/rider-1", bearer(t, models.RoleAdmin, ""))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRoleClaimRejected(t *testing.T) {
	r := newAuthTestRouter()

	token, err := middleware.GenerateToken("u1", models.Role("Superuser"), "")
	require.NoError(t, err)
	w := get(r, "/any", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestErrorEnvelopeShape(t *testing.T) {
	r := newAuthTestRouter()

	w := get(r, "/admin-only", bearer(t, models.RoleRider, ""))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"err":"insufficient permissions"}`, w.Body.String())
}
