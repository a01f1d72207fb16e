package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Dwain-Anderson/carriage-web/internal/apperr"
	"github.com/Dwain-Anderson/carriage-web/internal/config"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
	"github.com/Dwain-Anderson/carriage-web/internal/store"
)

func newAdmin(first string) models.Admin {
	return models.Admin{
		ID:          uuid.NewString(),
		FirstName:   first,
		LastName:    "Testing",
		PhoneNumber: "1234567890",
		Email:       first + "@test.com",
	}
}

func TestCreateThenGetByID(t *testing.T) {
	db := config.InitTestDB()

	admin := newAdmin("Alpha")
	require.NoError(t, store.Create(db, &admin))

	got, err := store.GetByID[models.Admin](db, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.Equal(t, "Alpha", got.FirstName)
	assert.Equal(t, admin.Email, got.Email)
}

func TestGetByIDNotFound(t *testing.T) {
	db := config.InitTestDB()

	_, err := store.GetByID[models.Admin](db, "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetAllNewestFirst(t *testing.T) {
	db := config.InitTestDB()

	first := newAdmin("First")
	first.CreatedAt = time.Now().Add(-time.Hour)
	second := newAdmin("Second")
	require.NoError(t, store.Create(db, &first))
	require.NoError(t, store.Create(db, &second))

	all, err := store.GetAll[models.Admin](db)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].FirstName)
	assert.Equal(t, "First", all[1].FirstName)
}

func TestScanCondition(t *testing.T) {
	db := config.InitTestDB()

	for _, tag := range []models.Tag{models.TagNorth, models.TagInactive, models.TagCustom} {
		loc := models.Location{
			ID:      uuid.NewString(),
			Name:    "Stop " + string(tag),
			Address: "1 Main St",
			Tag:     tag,
		}
		require.NoError(t, store.Create(db, &loc))
	}

	active, err := store.Scan[models.Location](db, func(q *gorm.DB) *gorm.DB {
		return q.Where("tag <> ?", models.TagInactive).Where("tag <> ?", models.TagCustom)
	})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, models.TagNorth, active[0].Tag)
}

func TestUpdatePatchesOnlySuppliedColumns(t *testing.T) {
	db := config.InitTestDB()

	admin := newAdmin("Patch")
	require.NoError(t, store.Create(db, &admin))

	updated, err := store.Update[models.Admin](db, admin.ID, map[string]any{"first_name": "NewName"})
	require.NoError(t, err)
	assert.Equal(t, "NewName", updated.FirstName)
	assert.Equal(t, "Testing", updated.LastName)
	assert.Equal(t, admin.Email, updated.Email)
}

func TestUpdateMissingKeyNotFound(t *testing.T) {
	db := config.InitTestDB()

	_, err := store.Update[models.Admin](db, "missing", map[string]any{"first_name": "X"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateEmptyPatchKeepsRecord(t *testing.T) {
	db := config.InitTestDB()

	admin := newAdmin("Same")
	require.NoError(t, store.Create(db, &admin))

	updated, err := store.Update[models.Admin](db, admin.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Same", updated.FirstName)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	db := config.InitTestDB()

	admin := newAdmin("Gone")
	require.NoError(t, store.Create(db, &admin))
	require.NoError(t, store.DeleteByID[models.Admin](db, admin.ID))

	_, err := store.GetByID[models.Admin](db, admin.ID)
	assert.True(t, apperr.IsNotFound(err))

	err = store.DeleteByID[models.Admin](db, admin.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateDuplicateIDConflict(t *testing.T) {
	db := config.InitTestDB()

	admin := newAdmin("Dup")
	require.NoError(t, store.Create(db, &admin))

	dup := admin
	dup.Email = "other@test.com"
	err := store.Create(db, &dup)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
