package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Dwain-Anderson/carriage-web/internal/config"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
	"github.com/Dwain-Anderson/carriage-web/internal/routes"
)

// setupRouter gives each test a fresh in-memory database and a fully wired
// engine.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.InitTestDB()
	return routes.SetupRouter()
}

func tokenFor(t *testing.T, role models.Role, entityID string) string {
	t.Helper()
	token, err := middleware.GenerateToken("user-"+string(role), role, entityID)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional bearer token and JSON body,
// returning the recorder and the decoded response object.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func dataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}

func dataListOf(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	require.True(t, ok, "response has no data list: %v", resp)
	return data
}

func createLocation(t *testing.T, r *gin.Engine, name, address, tag string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/locations", tokenFor(t, models.RoleDispatcher, ""), gin.H{
		"name":    name,
		"address": address,
		"tag":     tag,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return dataOf(t, resp)["id"].(string)
}
