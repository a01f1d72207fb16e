package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

func TestVehicleUpdatePatch(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin, "")

	w, resp := doJSON(t, r, http.MethodPost, "/api/vehicles", admin, gin.H{
		"name":                 "Van 1",
		"capacity":             6,
		"wheelchairAccessible": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := dataOf(t, resp)["id"].(string)

	w, resp = doJSON(t, r, http.MethodPut, "/api/vehicles/"+id, admin, gin.H{"capacity": 8})
	require.Equal(t, http.StatusOK, w.Code)
	updated := dataOf(t, resp)
	assert.EqualValues(t, 8, updated["capacity"])
	assert.Equal(t, "Van 1", updated["name"])
	assert.Equal(t, true, updated["wheelchairAccessible"])

	// riders can read but not write
	rider := tokenFor(t, models.RoleRider, "")
	w, _ = doJSON(t, r, http.MethodGet, "/api/vehicles/"+id, rider, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodPut, "/api/vehicles/"+id, rider, gin.H{"capacity": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/vehicles/"+id, admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, "/api/vehicles/"+id, rider, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
