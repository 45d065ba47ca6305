package validate

import (
	"errors"

	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RoomBody parses the room payload and checks the referenced room type
// belongs to the property in the path.
func RoomBody(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RoomInput
		if err := parseAndValidate(c, &input); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		}

		propertyId, _ := c.Locals("propertyId").(uint)
		var roomType model.RoomType
		err := db.Where("id = ? AND property_ref = ?", input.RoomTypeRef, propertyId).First(&roomType).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail(c, fiber.StatusBadRequest, "Room type does not exist on this property")
		}
		if err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
		}

		c.Locals("roomInput", input)
		return c.Next()
	}
}
