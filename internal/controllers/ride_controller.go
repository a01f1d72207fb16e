package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Dwain-Anderson/carriage-web/internal/apperr"
	"github.com/Dwain-Anderson/carriage-web/internal/config"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
	"github.com/Dwain-Anderson/carriage-web/internal/store"
)

type updateRideInput struct {
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DriverID        *string    `json:"driverId"`
	StartLocationID *string    `json:"startLocationId"`
	EndLocationID   *string    `json:"endLocationId"`
	Status          *string    `json:"status"`
}

// ListRides returns rides newest first, narrowed by any of the status,
// rider, driver and date (YYYY-MM-DD, on start time) query parameters.
func ListRides(c *gin.Context) {
	cond := func(q *gorm.DB) *gorm.DB { return q }

	if s := c.Query("status"); s != "" {
		status, err := models.ParseRideStatus(s)
		if err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}
		prev := cond
		cond = func(q *gorm.DB) *gorm.DB { return prev(q).Where("status = ?", status) }
	}
	if riderID := c.Query("rider"); riderID != "" {
		prev := cond
		cond = func(q *gorm.DB) *gorm.DB { return prev(q).Where("rider_id = ?", riderID) }
	}
	if driverID := c.Query("driver"); driverID != "" {
		prev := cond
		cond = func(q *gorm.DB) *gorm.DB { return prev(q).Where("driver_id = ?", driverID) }
	}
	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			apperr.Abort(c, apperr.Validation("invalid date, want YYYY-MM-DD"))
			return
		}
		next := day.AddDate(0, 0, 1)
		prev := cond
		cond = func(q *gorm.DB) *gorm.DB {
			return prev(q).Where("start_time >= ? AND start_time < ?", day, next)
		}
	}

	rides, err := store.Scan[models.Ride](config.DB, cond)
	if err != nil {
		logrus.WithError(err).Error("ListRides: could not fetch rides")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, rides)
}

func GetRide(c *gin.Context) {
	ride, err := getRideWithRefs(c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, ride)
}

// CreateRide requests a new ride. Riders may only book for themselves;
// elevated roles book on any rider's behalf.
func CreateRide(c *gin.Context) {
	var ride models.Ride
	if err := c.ShouldBindJSON(&ride); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}
	if !ride.EndTime.After(ride.StartTime) {
		apperr.Abort(c, apperr.Validation("endTime must be after startTime"))
		return
	}

	ident := middleware.GetIdentity(c)
	if ident.Role == models.RoleRider {
		ride.RiderID = ident.EntityID
	}
	if ride.RiderID == "" {
		apperr.Abort(c, apperr.Validation("riderId is required"))
		return
	}

	if _, err := store.GetByID[models.Rider](config.DB, ride.RiderID); err != nil {
		apperr.Abort(c, err)
		return
	}
	for _, locID := range []string{ride.StartLocationID, ride.EndLocationID} {
		if _, err := store.GetByID[models.Location](config.DB, locID); err != nil {
			apperr.Abort(c, err)
			return
		}
	}

	ride.ID = uuid.NewString()
	ride.Rider, ride.Driver, ride.StartLocation, ride.EndLocation = nil, nil, nil, nil
	ride.Status = models.RideUnscheduled
	if ride.DriverID != "" {
		if _, err := store.GetByID[models.Driver](config.DB, ride.DriverID); err != nil {
			apperr.Abort(c, err)
			return
		}
		ride.Status = models.RideScheduled
	}

	if err := store.Create(config.DB, &ride); err != nil {
		logrus.WithError(err).Error("CreateRide: could not create ride")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusCreated, ride)
}

// UpdateRide patches a ride. Dispatchers and admins may touch any ride;
// a rider only their own. Assigning a driver to an unscheduled ride moves
// it to scheduled.
func UpdateRide(c *gin.Context) {
	ride, err := store.GetByID[models.Ride](config.DB, c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	ident := middleware.GetIdentity(c)
	if !ident.Role.AtLeast(models.RoleDispatcher) && ride.RiderID != ident.EntityID {
		apperr.Abort(c, apperr.Forbidden("insufficient permissions"))
		return
	}

	var input updateRideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	patch := map[string]any{}
	if input.StartTime != nil {
		patch["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		patch["end_time"] = *input.EndTime
	}
	if input.StartLocationID != nil {
		if _, err := store.GetByID[models.Location](config.DB, *input.StartLocationID); err != nil {
			apperr.Abort(c, err)
			return
		}
		patch["start_location_id"] = *input.StartLocationID
	}
	if input.EndLocationID != nil {
		if _, err := store.GetByID[models.Location](config.DB, *input.EndLocationID); err != nil {
			apperr.Abort(c, err)
			return
		}
		patch["end_location_id"] = *input.EndLocationID
	}
	if input.DriverID != nil {
		if *input.DriverID != "" {
			if _, err := store.GetByID[models.Driver](config.DB, *input.DriverID); err != nil {
				apperr.Abort(c, err)
				return
			}
			if ride.Status == models.RideUnscheduled && input.Status == nil {
				patch["status"] = models.RideScheduled
			}
		}
		patch["driver_id"] = *input.DriverID
	}
	if input.Status != nil {
		status, err := models.ParseRideStatus(*input.Status)
		if err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}
		patch["status"] = status
	}

	updated, err := store.Update[models.Ride](config.DB, ride.ID, patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

func DeleteRide(c *gin.Context) {
	ride, err := store.GetByID[models.Ride](config.DB, c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	ident := middleware.GetIdentity(c)
	if !ident.Role.AtLeast(models.RoleDispatcher) && ride.RiderID != ident.EntityID {
		apperr.Abort(c, apperr.Forbidden("insufficient permissions"))
		return
	}

	if err := store.DeleteByID[models.Ride](config.DB, ride.ID); err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"id": ride.ID})
}

func getRideWithRefs(id string) (*models.Ride, error) {
	var ride models.Ride
	err := config.DB.
		Preload("Rider").Preload("Driver").
		Preload("StartLocation").Preload("EndLocation").
		First(&ride, "id = ?", id).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, "ride not found", err)
	}
	return &ride, nil
}
