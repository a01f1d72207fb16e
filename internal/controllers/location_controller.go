package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Dwain-Anderson/carriage-web/internal/apperr"
	"github.com/Dwain-Anderson/carriage-web/internal/config"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
	"github.com/Dwain-Anderson/carriage-web/internal/store"
	"github.com/Dwain-Anderson/carriage-web/internal/util"
)

type createLocationInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Tag     string `json:"tag"`
	Info    string `json:"info"`
}

type updateLocationInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Tag     *string `json:"tag"`
	Info    *string `json:"info"`
}

// ListLocations returns all locations, or filters by lifecycle when the
// active query parameter is present: active=true excludes inactive and
// custom tags, active=false returns only inactive ones.
func ListLocations(c *gin.Context) {
	var (
		locations []models.Location
		err       error
	)

	switch c.Query("active") {
	case "":
		locations, err = store.GetAll[models.Location](config.DB)
	case "true":
		locations, err = store.Scan[models.Location](config.DB, func(q *gorm.DB) *gorm.DB {
			return q.Where("tag <> ?", models.TagInactive).Where("tag <> ?", models.TagCustom)
		})
	default:
		locations, err = store.Scan[models.Location](config.DB, func(q *gorm.DB) *gorm.DB {
			return q.Where("tag = ?", models.TagInactive)
		})
	}
	if err != nil {
		logrus.WithError(err).Error("ListLocations: could not fetch locations")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, locations)
}

func GetLocation(c *gin.Context) {
	location, err := store.GetByID[models.Location](config.DB, c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, location)
}

// CreateLocation stores a new location with its address normalized.
func CreateLocation(c *gin.Context) {
	var input createLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	tag := models.TagCustom
	if input.Tag != "" {
		var err error
		if tag, err = models.ParseTag(input.Tag); err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}
	}

	location := models.Location{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Address: util.FormatAddress(input.Address),
		Tag:     tag,
		Info:    input.Info,
	}
	if err := store.Create(config.DB, &location); err != nil {
		logrus.WithError(err).Error("CreateLocation: could not create location")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusCreated, location)
}

func UpdateLocation(c *gin.Context) {
	var input updateLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	patch := map[string]any{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Address != nil {
		patch["address"] = util.FormatAddress(*input.Address)
	}
	if input.Tag != nil {
		tag, err := models.ParseTag(*input.Tag)
		if err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}
		patch["tag"] = tag
	}
	if input.Info != nil {
		patch["info"] = *input.Info
	}

	location, err := store.Update[models.Location](config.DB, c.Param("id"), patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, location)
}

func DeleteLocation(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteByID[models.Location](config.DB, id); err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"id": id})
}
