package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Dwain-Anderson/carriage-web/internal/apperr"
	"github.com/Dwain-Anderson/carriage-web/internal/config"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
	"github.com/Dwain-Anderson/carriage-web/internal/util"
)

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`

	// Entity fields, used when the role owns a roster record.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignupUser registers a login identity and, for Admin/Driver/Rider roles,
// the matching roster record in one transaction.
func SignupUser(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	role, err := models.ParseRole(input.Role)
	if err != nil {
		apperr.Abort(c, apperr.Validation("invalid role"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.KindInternal, "could not hash password", err))
		return
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    input.Email,
		Password: string(hash),
		Name:     input.Name,
		Phone:    util.FormatPhone(input.Phone),
		Role:     role,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		entityID, err := createEntityRecord(tx, &user, input)
		if err != nil {
			return err
		}
		user.EntityID = entityID
		return tx.Create(&user).Error
	})
	if err != nil {
		if errIsDuplicate(err) {
			apperr.Abort(c, apperr.Conflict("email already in use"))
			return
		}
		logrus.WithError(err).Error("SignupUser: could not create user")
		apperr.Abort(c, apperr.Wrap(apperr.KindInternal, "could not create user", err))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role, user.EntityID)
	if err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.KindInternal, "could not generate token", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// LoginUser exchanges email + password for a bearer token.
func LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apperr.Abort(c, apperr.Validation(err.Error()))
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		apperr.Abort(c, apperr.Unauthorized("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		apperr.Abort(c, apperr.Unauthorized("invalid credentials"))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role, user.EntityID)
	if err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.KindInternal, "could not generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// createEntityRecord gives Admin/Driver/Rider signups a roster record so
// self-access routes can match the token against a record id. Dispatchers
// carry no roster record.
func createEntityRecord(tx *gorm.DB, user *models.User, input signupInput) (string, error) {
	first, last := input.FirstName, input.LastName
	if first == "" {
		first = input.Name
	}

	switch user.Role {
	case models.RoleAdmin:
		admin := models.Admin{
			ID:          uuid.NewString(),
			FirstName:   first,
			LastName:    last,
			PhoneNumber: util.FormatPhone(input.Phone),
			Email:       input.Email,
		}
		return admin.ID, tx.Create(&admin).Error
	case models.RoleDriver:
		driver := models.Driver{
			ID:          uuid.NewString(),
			FirstName:   first,
			LastName:    last,
			PhoneNumber: util.FormatPhone(input.Phone),
			Email:       input.Email,
		}
		return driver.ID, tx.Create(&driver).Error
	case models.RoleRider:
		rider := models.Rider{
			ID:          uuid.NewString(),
			FirstName:   first,
			LastName:    last,
			PhoneNumber: util.FormatPhone(input.Phone),
			Email:       input.Email,
			Active:      true,
		}
		return rider.ID, tx.Create(&rider).Error
	}
	return "", nil
}
