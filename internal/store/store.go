// Package store is the table-agnostic data-access layer. Each operation is
// parameterized by an entity type, delegates to gorm, and funnels storage
// errors into apperr kinds so handlers never branch on driver errors.
package store

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Dwain-Anderson/carriage-web/internal/apperr"
)

// Condition narrows a query before it runs; chain gorm clauses inside.
type Condition func(*gorm.DB) *gorm.DB

// GetByID fetches one record by primary key.
func GetByID[T any](db *gorm.DB, id string) (*T, error) {
	var rec T
	if err := db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// GetAll fetches every record in the entity's table, newest first.
func GetAll[T any](db *gorm.DB) ([]T, error) {
	recs := []T{}
	if err := db.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	return recs, nil
}

// Scan fetches the records matching cond, newest first.
func Scan[T any](db *gorm.DB, cond Condition) ([]T, error) {
	recs := []T{}
	if err := cond(db).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	return recs, nil
}

// Create persists a new record. The caller assigns the id first.
func Create[T any](db *gorm.DB, rec *T) error {
	if err := db.Create(rec).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update merges patch into the record with the given id and returns the
// merged record. Columns absent from patch keep their stored values.
func Update[T any](db *gorm.DB, id string, patch map[string]any) (*T, error) {
	if _, err := GetByID[T](db, id); err != nil {
		return nil, err
	}
	if len(patch) > 0 {
		if err := db.Model(new(T)).Where("id = ?", id).Updates(patch).Error; err != nil {
			return nil, translate(err)
		}
	}
	return GetByID[T](db, id)
}

// DeleteByID removes the record with the given id; NotFound when absent.
func DeleteByID[T any](db *gorm.DB, id string) error {
	res := db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("record not found")
	}
	return nil
}

func translate(err error) error {
	var pqErr *pq.Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.KindNotFound, "record not found", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Wrap(apperr.KindConflict, "record already exists", err)
	case errors.As(err, &pqErr) && pqErr.Code == "23505":
		return apperr.Wrap(apperr.KindConflict, "record already exists", err)
	default:
		return apperr.Wrap(apperr.KindInternal, "storage error", err)
	}
}
