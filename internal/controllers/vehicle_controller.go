package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"

	"github.com/Dwain-Anderson/carriage-web/internal/apperr"
	"github.com/Dwain-Anderson/carriage-web/internal/config"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
	"github.com/Dwain-Anderson/carriage-web/internal/store"
)

// updateVehicleInput lists the fields a client may patch. Pointers keep
// absent fields distinguishable from zero values.
type updateVehicleInput struct {
	Name                 *string `json:"name"`
	Capacity             *int    `json:"capacity"`
	WheelchairAccessible *bool   `json:"wheelchairAccessible"`
}

func ListVehicles(c *gin.Context) {
	vehicles, err := store.GetAll[models.Vehicle](config.DB)
	if err != nil {
		logrus.WithError(err).Error("ListVehicles: could not fetch vehicles")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, vehicles)
}

func GetVehicle(c *gin.Context) {
	vehicle, err := store.GetByID[models.Vehicle](config.DB, c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, vehicle)
}

func CreateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	vehicle.ID = uuid.NewString()
	if err := store.Create(config.DB, &vehicle); err != nil {
		logrus.WithError(err).Error("CreateVehicle: could not create vehicle")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusCreated, vehicle)
}

func UpdateVehicle(c *gin.Context) {
	var input updateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	patch := map[string]any{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Capacity != nil {
		patch["capacity"] = *input.Capacity
	}
	if input.WheelchairAccessible != nil {
		patch["wheelchair_accessible"] = *input.WheelchairAccessible
	}

	vehicle, err := store.Update[models.Vehicle](config.DB, c.Param("id"), patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, vehicle)
}

func DeleteVehicle(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteByID[models.Vehicle](config.DB, id); err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"id": id})
}
