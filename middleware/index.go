package middleware

import (
	"strconv"
	"strings"

	"pms_server/constants"
	"pms_server/helper"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Protected reads the JWT from the access_token cookie or the
// Authorization header and stashes the parsed token in locals.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.Fail(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED)
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.Fail(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED)
		}

		c.Locals("user", jwtToken)
		claim := helper.GetTokenClaim(c)
		c.Locals("userId", claim.UserId)
		c.Locals("role", claim.Role)
		return c.Next()
	}
}

// WithUserRole refreshes the caller's global role from the database so a
// demoted token cannot keep elevated access for its whole lifetime.
func WithUserRole(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userId, _ := c.Locals("userId").(uint)
		if userId == 0 {
			return utils.Fail(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED)
		}

		var user model.User
		if err := db.First(&user, userId).Error; err != nil {
			return utils.Fail(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED)
		}

		c.Locals("role", user.Role)
		return c.Next()
	}
}

func propertyIdFromPath(c *fiber.Ctx) uint {
	raw := c.Params("propertyId")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0
	}
	return uint(id)
}

// VerifyPropertyAccess lets through super admins, bots and any user linked
// to the property in the path. The resolved property id lands in locals.
func VerifyPropertyAccess(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		propertyId := propertyIdFromPath(c)
		if propertyId == 0 {
			return utils.Fail(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}
		c.Locals("propertyId", propertyId)

		if role == constants.ROLE_SUPER_ADMIN || role == constants.ROLE_BOT {
			return c.Next()
		}

		userId, _ := c.Locals("userId").(uint)
		propertyRole, err := helper.GetPropertyRole(db, userId, propertyId)
		if err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if propertyRole == "" {
			return utils.Fail(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED)
		}

		c.Locals("propertyRole", propertyRole)
		return c.Next()
	}
}

// VerifyAdminAccess requires the property ADMIN role. Super admins and
// bots pass without a property link.
func VerifyAdminAccess(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == constants.ROLE_SUPER_ADMIN || role == constants.ROLE_BOT {
			if c.Locals("propertyId") == nil {
				if id := propertyIdFromPath(c); id > 0 {
					c.Locals("propertyId", id)
				}
			}
			return c.Next()
		}

		propertyId, _ := c.Locals("propertyId").(uint)
		if propertyId == 0 {
			propertyId = propertyIdFromPath(c)
			if propertyId == 0 {
				return utils.Fail(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
			}
			c.Locals("propertyId", propertyId)
		}

		userId, _ := c.Locals("userId").(uint)
		propertyRole, err := helper.GetPropertyRole(db, userId, propertyId)
		if err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		if propertyRole != constants.PROPERTY_ROLE_ADMIN {
			return utils.Fail(c, fiber.StatusUnauthorized, constants.NOT_ADMIN)
		}

		c.Locals("propertyRole", propertyRole)
		return c.Next()
	}
}
