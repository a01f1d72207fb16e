package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

func TestLocationActiveFilter(t *testing.T) {
	r := setupRouter(t)
	user := tokenFor(t, models.RoleRider, "")

	createLocation(t, r, "North Stop", "101 North Ave", "north")
	createLocation(t, r, "West Stop", "202 West St", "west")
	createLocation(t, r, "Old Stop", "303 Gone Rd", "inactive")
	createLocation(t, r, "One Off", "404 Custom Way", "custom")

	w, resp := doJSON(t, r, http.MethodGet, "/api/locations", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataListOf(t, resp), 4)

	w, resp = doJSON(t, r, http.MethodGet, "/api/locations?active=true", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	active := dataListOf(t, resp)
	require.Len(t, active, 2)
	for _, l := range active {
		tag := l.(map[string]any)["tag"]
		assert.NotEqual(t, "inactive", tag)
		assert.NotEqual(t, "custom", tag)
	}

	w, resp = doJSON(t, r, http.MethodGet, "/api/locations?active=false", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	inactive := dataListOf(t, resp)
	require.Len(t, inactive, 1)
	assert.Equal(t, "inactive", inactive[0].(map[string]any)["tag"])
}

func TestLocationAddressNormalized(t *testing.T) {
	r := setupRouter(t)
	dispatcher := tokenFor(t, models.RoleDispatcher, "")

	w, resp := doJSON(t, r, http.MethodPost, "/api/locations", dispatcher, gin.H{
		"name":    "Colonial",
		"address": "36  colonial ln,  ithaca, ny 14850",
		"tag":     "west",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "36 Colonial Ln, Ithaca, NY 14850", dataOf(t, resp)["address"])
}

func TestLocationWriteRequiresDispatcher(t *testing.T) {
	r := setupRouter(t)

	body := gin.H{"name": "Stop", "address": "1 Main St", "tag": "north"}
	for _, role := range []models.Role{models.RoleDriver, models.RoleRider} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/locations", tokenFor(t, role, ""), body)
		assert.Equal(t, http.StatusForbidden, w.Code, "role %s", role)
	}

	// admin outranks dispatcher
	w, _ := doJSON(t, r, http.MethodPost, "/api/locations", tokenFor(t, models.RoleAdmin, ""), body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLocationInvalidTag(t *testing.T) {
	r := setupRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/locations", tokenFor(t, models.RoleDispatcher, ""), gin.H{
		"name":    "Bad",
		"address": "1 Main St",
		"tag":     "south-by-southwest",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, resp, "err")
}
