package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Dwain-Anderson/carriage-web/internal/apperr"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// Identity is what a validated bearer token resolves to. EntityID is the id
// of the user's row in the Admins/Drivers/Riders table, empty for
// dispatchers.
type Identity struct {
	UserID   string
	Role     models.Role
	EntityID string
}

const identityKey = "identity"

// GenerateToken mints an HS256 bearer token for a user.
func GenerateToken(userID string, role models.Role, entityID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   userID,
		"role":      string(role),
		"entity_id": entityID,
		"exp":       time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GetIdentity returns the identity a passing auth middleware attached.
func GetIdentity(c *gin.Context) Identity {
	return c.MustGet(identityKey).(Identity)
}

func resolveIdentity(c *gin.Context) (Identity, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return Identity{}, apperr.Unauthorized("missing or invalid Authorization header")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, apperr.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, apperr.Unauthorized("invalid token claims")
	}

	userID, _ := claims["user_id"].(string)
	roleStr, _ := claims["role"].(string)
	entityID, _ := claims["entity_id"].(string)

	role := models.Role(roleStr)
	if userID == "" || !role.Valid() {
		return Identity{}, apperr.Unauthorized("invalid token claims")
	}
	return Identity{UserID: userID, Role: role, EntityID: entityID}, nil
}

// RequireRole validates the bearer token and admits roles at or above min.
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := resolveIdentity(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}
		if !ident.Role.AtLeast(min) {
			apperr.Abort(c, apperr.Forbidden("insufficient permissions"))
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// SelfOrRole admits roles at or above min, or any authenticated user whose
// entity id matches the :id route parameter. Lets a rider reach their own
// profile without an elevated role.
func SelfOrRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := resolveIdentity(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}
		if !ident.Role.AtLeast(min) && (ident.EntityID == "" || ident.EntityID != c.Param("id")) {
			apperr.Abort(c, apperr.Forbidden("insufficient permissions"))
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}
