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

// ListAdmins returns every admin, newest first.
func ListAdmins(c *gin.Context) {
	admins, err := store.GetAll[models.Admin](config.DB)
	if err != nil {
		logrus.WithError(err).Error("ListAdmins: could not fetch admins")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, admins)
}

// CreateAdmin registers a new admin record with a server-assigned id.
func CreateAdmin(c *gin.Context) {
	var admin models.Admin
	if err := c.ShouldBindJSON(&admin); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	admin.ID = uuid.NewString()
	admin.PhoneNumber = util.FormatPhone(admin.PhoneNumber)
	if err := store.Create(config.DB, &admin); err != nil {
		logrus.WithError(err).Error("CreateAdmin: could not create admin")
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusCreated, admin)
}

// DeleteAdmin removes an admin by id.
func DeleteAdmin(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteByID[models.Admin](config.DB, id); err != nil {
		apperr.Abort(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"id": id})
}
