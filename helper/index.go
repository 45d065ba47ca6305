package helper

import (
	"errors"
	"fmt"
	"time"

	"pms_server/config"
	"pms_server/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func JwtSecret() []byte {
	return []byte(config.ConfigOr("JWT_SECRET", "dev-only-secret"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func GetUserByEmail(db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	if err := db.Where(&model.User{Email: email}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(user *model.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = user.ID
	claims["role"] = user.Role
	claims["exp"] = time.Now().Add(7 * 24 * time.Hour).Unix()

	return token.SignedString(JwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})
}

// GetTokenClaim reads the authenticated identity stashed by middleware.Protected.
func GetTokenClaim(c *fiber.Ctx) model.TokenClaim {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}
	}

	claim := model.TokenClaim{}
	if id, ok := claims["userId"].(float64); ok {
		claim.UserId = uint(id)
	}
	if role, ok := claims["role"].(string); ok {
		claim.Role = role
	}
	return claim
}

// GetPropertyRole loads the caller's role on a property. Returns "" when the
// user is not linked to the property.
func GetPropertyRole(db *gorm.DB, userId, propertyId uint) (string, error) {
	var link model.UserProperty
	err := db.Where("user_ref = ? AND property_ref = ?", userId, propertyId).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return link.Role, nil
}
