package controllers

import (
	"errors"
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

type updateRiderInput struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	PhoneNumber   *string `json:"phoneNumber"`
	Email         *string `json:"email"`
	Pronouns      *string `json:"pronouns"`
	Accessibility *string `json:"accessibility"`
	Description   *string `json:"description"`
	JoinDate      *string `json:"joinDate"`
	EndDate       *string `json:"endDate"`
	Address       *string `json:"address"`
	Organization  *string `json:"organization"`
	PhotoLink     *string `json:"photoLink"`
	Active        *bool   `json:"active"`
}

func ListRiders(c *gin.Context) {
	riders, err := store.GetAll[models.Rider](config.DB)
	if err != nil {
		logrus.WithError(err).Error("ListRiders: could not fetch riders")
		apperr.Abort(c, err)
		return
	}
	for i := range riders {
		if err := loadFavoriteIDs(&riders[i]); err != nil {
			apperr.Abort(c, err)
			return
		}
	}
	respondData(c, http.StatusOK, riders)
}

func GetRider(c *gin.Context) {
	rider, err := store.GetByID[models.Rider](config.DB, c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := loadFavoriteIDs(rider); err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, rider)
}

// GetRiderProfile returns the contact subset shown on the rider portal.
func GetRiderProfile(c *gin.Context) {
	rider, err := store.GetByID[models.Rider](config.DB, c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"email":       rider.Email,
		"phoneNumber": rider.PhoneNumber,
		"firstName":   rider.FirstName,
		"lastName":    rider.LastName,
		"pronouns":    rider.Pronouns,
		"joinDate":    rider.JoinDate,
		"endDate":     rider.EndDate,
	})
}

// GetRiderOrganization returns the sponsoring program subset.
func GetRiderOrganization(c *gin.Context) {
	rider, err := store.GetByID[models.Rider](config.DB, c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"organization": rider.Organization,
		"description":  rider.Description,
	})
}

// GetRiderAccessibility returns the accessibility subset.
func GetRiderAccessibility(c *gin.Context) {
	rider, err := store.GetByID[models.Rider](config.DB, c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accessibility": rider.Accessibility,
		"description":   rider.Description,
	})
}

// GetRiderFavorites returns the rider's favorite locations in the order
// they were added.
func GetRiderFavorites(c *gin.Context) {
	riderID := c.Param("id")
	if _, err := store.GetByID[models.Rider](config.DB, riderID); err != nil {
		apperr.Abort(c, err)
		return
	}

	locations := []models.Location{}
	err := config.DB.
		Joins("JOIN favorite_locations ON favorite_locations.location_id = locations.id").
		Where("favorite_locations.rider_id = ?", riderID).
		Order("favorite_locations.position ASC").
		Find(&locations).Error
	if err != nil {
		logrus.WithError(err).Error("GetRiderFavorites: could not fetch favorites")
		apperr.Abort(c, apperr.Wrap(apperr.KindInternal, "could not fetch favorites", err))
		return
	}
	respondData(c, http.StatusOK, locations)
}

// AddRiderFavorite marks a location as one of the rider's favorites.
// Adding the same location twice is a no-op, not an error.
func AddRiderFavorite(c *gin.Context) {
	riderID := c.Param("id")

	var body struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	if _, err := store.GetByID[models.Rider](config.DB, riderID); err != nil {
		apperr.Abort(c, err)
		return
	}
	location, err := store.GetByID[models.Location](config.DB, body.ID)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.FavoriteLocation
		err := tx.Where("rider_id = ? AND location_id = ?", riderID, location.ID).
			First(&existing).Error
		if err == nil {
			return nil // already a favorite
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var count int64
		if err := tx.Model(&models.FavoriteLocation{}).
			Where("rider_id = ?", riderID).Count(&count).Error; err != nil {
			return err
		}
		return tx.Create(&models.FavoriteLocation{
			RiderID:    riderID,
			LocationID: location.ID,
			Position:   int(count),
		}).Error
	})
	if err != nil {
		logrus.WithError(err).Error("AddRiderFavorite: could not save favorite")
		apperr.Abort(c, apperr.Wrap(apperr.KindInternal, "could not save favorite", err))
		return
	}
	respondData(c, http.StatusOK, location)
}

func CreateRider(c *gin.Context) {
	var rider models.Rider
	if err := c.ShouldBindJSON(&rider); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}
	if rider.Organization != "" {
		org, err := models.ParseOrganization(string(rider.Organization))
		if err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}
		rider.Organization = org
	}

	rider.ID = uuid.NewString()
	rider.PhoneNumber = util.FormatPhone(rider.PhoneNumber)
	favorites := rider.FavoriteLocations
	rider.FavoriteLocations = nil

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rider).Error; err != nil {
			return err
		}
		for i, locID := range favorites {
			fav := models.FavoriteLocation{RiderID: rider.ID, LocationID: locID, Position: i}
			if err := tx.Create(&fav).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("CreateRider: could not create rider")
		apperr.Abort(c, apperr.Wrap(apperr.KindInternal, "could not create rider", err))
		return
	}

	rider.FavoriteLocations = favorites
	if rider.FavoriteLocations == nil {
		rider.FavoriteLocations = []string{}
	}
	respondData(c, http.StatusCreated, rider)
}

func UpdateRider(c *gin.Context) {
	var input updateRiderInput
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
	if input.Pronouns != nil {
		patch["pronouns"] = *input.Pronouns
	}
	if input.Accessibility != nil {
		patch["accessibility"] = *input.Accessibility
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}
	if input.JoinDate != nil {
		patch["join_date"] = *input.JoinDate
	}
	if input.EndDate != nil {
		patch["end_date"] = *input.EndDate
	}
	if input.Address != nil {
		patch["address"] = util.FormatAddress(*input.Address)
	}
	if input.Organization != nil {
		org, err := models.ParseOrganization(*input.Organization)
		if err != nil {
			apperr.Abort(c, apperr.Validation(err.Error()))
			return
		}
		patch["organization"] = org
	}
	if input.PhotoLink != nil {
		patch["photo_link"] = *input.PhotoLink
	}
	if input.Active != nil {
		patch["active"] = *input.Active
	}

	rider, err := store.Update[models.Rider](config.DB, c.Param("id"), patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := loadFavoriteIDs(rider); err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, rider)
}

func DeleteRider(c *gin.Context) {
	id := c.Param("id")
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rider_id = ?", id).Delete(&models.FavoriteLocation{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Rider{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("record not found")
		}
		return nil
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"id": id})
}

// loadFavoriteIDs fills the rider's FavoriteLocations field from the join
// table, in insertion order.
func loadFavoriteIDs(rider *models.Rider) error {
	var favs []models.FavoriteLocation
	err := config.DB.Where("rider_id = ?", rider.ID).
		Order("position ASC").Find(&favs).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "could not fetch favorites", err)
	}
	rider.FavoriteLocations = make([]string, 0, len(favs))
	for _, f := range favs {
		rider.FavoriteLocations = append(rider.FavoriteLocations, f.LocationID)
	}
	return nil
}
