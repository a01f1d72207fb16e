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
	"github.com/Dwain-Anderson/carriage-web/internal/util"
)

type updateDriverInput struct {
	FirstName    *string              `json:"firstName"`
	LastName     *string              `json:"lastName"`
	PhoneNumber  *string              `json:"phoneNumber"`
	Email        *string              `json:"email"`
	StartDate    *string              `json:"startDate"`
	Admin        *bool                `json:"admin"`
	Availability *models.Availability `json:"availability"`
	VehicleID    *string              `json:"vehicleId"`
}

func ListDrivers(c *gin.Context) {
	drivers, err := store.GetAll[models.Driver](config.DB)
	if err != nil {
		logrus.WithError(err).Error("ListDrivers: could not fetch drivers")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, drivers)
}

func GetDriver(c *gin.Context) {
	driver, err := getDriverWithVehicle(c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, driver)
}

// GetDriverProfile returns the contact subset of a driver record.
func GetDriverProfile(c *gin.Context) {
	driver, err := store.GetByID[models.Driver](config.DB, c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"firstName":   driver.FirstName,
		"lastName":    driver.LastName,
		"phoneNumber": driver.PhoneNumber,
		"email":       driver.Email,
		"startDate":   driver.StartDate,
	})
}

func CreateDriver(c *gin.Context) {
	var driver models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	if driver.VehicleID != "" {
		if _, err := store.GetByID[models.Vehicle](config.DB, driver.VehicleID); err != nil {
			apperr.Abort(c, err)
			return
		}
	}

	driver.ID = uuid.NewString()
	driver.Vehicle = nil
	driver.PhoneNumber = util.FormatPhone(driver.PhoneNumber)
	if err := store.Create(config.DB, &driver); err != nil {
		logrus.WithError(err).Error("CreateDriver: could not create driver")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusCreated, driver)
}

func UpdateDriver(c *gin.Context) {
	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	patch := map[string]any{}
	if input.FirstName != nil {
		patch["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		patch["last_name"] = *input.LastName
	}
	if input.PhoneNumber != nil {
		patch["phone_number"] = util.FormatPhone(*input.PhoneNumber)
	}
	if input.Email != nil {
		patch["email"] = *input.Email
	}
	if input.StartDate != nil {
		patch["start_date"] = *input.StartDate
	}
	if input.Admin != nil {
		patch["admin"] = *input.Admin
	}
	if input.Availability != nil {
		patch["availability"] = *input.Availability
	}
	if input.VehicleID != nil {
		if *input.VehicleID != "" {
			if _, err := store.GetByID[models.Vehicle](config.DB, *input.VehicleID); err != nil {
				apperr.Abort(c, err)
				return
			}
		}
		patch["vehicle_id"] = *input.VehicleID
	}

	if _, err := store.Update[models.Driver](config.DB, c.Param("id"), patch); err != nil {
		apperr.Abort(c, err)
		return
	}
	driver, err := getDriverWithVehicle(c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, driver)
}

func DeleteDriver(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteByID[models.Driver](config.DB, id); err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"id": id})
}

func getDriverWithVehicle(id string) (*models.Driver, error) {
	var driver models.Driver
	query := config.DB.Preload("Vehicle")
	if err := query.First(&driver, "id = ?", id).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, "driver not found", err)
	}
	return &driver, nil
}
