package handler

import (
	"errors"

	"pms_server/constants"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type RoomTypeHandler struct {
	DB *gorm.DB
}

func NewRoomTypeHandler(db *gorm.DB) *RoomTypeHandler {
	return &RoomTypeHandler{DB: db}
}

func (h *RoomTypeHandler) CreateRoomType(c *fiber.Ctx) error {
	input, ok := c.Locals("roomTypeInput").(model.RoomTypeInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)

	var count int64
	if err := h.DB.Model(&model.RoomType{}).
		Where("property_ref = ? AND code = ?", propertyId, input.Code).
		Count(&count).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if count > 0 {
		return utils.Fail(c, fiber.StatusConflict, constants.DUPLICATE_ENTRY)
	}

	roomType := model.RoomType{PropertyRef: propertyId}
	if err := copier.Copy(&roomType, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	roomType.PropertyRef = propertyId

	if err := h.DB.Create(&roomType).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "Room type created successfully", roomType)
}

func (h *RoomTypeHandler) GetRoomTypes(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	var roomTypes []model.RoomType
	if err := h.DB.Where("property_ref = ?", propertyId).Order("id").Find(&roomTypes).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, roomTypes)
}

func (h *RoomTypeHandler) GetRoomTypeById(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	roomTypeId, _ := c.Locals("roomTypeId").(uint)

	var roomType model.RoomType
	err := h.DB.Where("id = ? AND property_ref = ?", roomTypeId, propertyId).First(&roomType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Room type not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, roomType)
}

func (h *RoomTypeHandler) UpdateRoomType(c *fiber.Ctx) error {
	input, ok := c.Locals("roomTypeInput").(model.RoomTypeInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	roomTypeId, _ := c.Locals("roomTypeId").(uint)

	var roomType model.RoomType
	err := h.DB.Where("id = ? AND property_ref = ?", roomTypeId, propertyId).First(&roomType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Room type not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if err := copier.Copy(&roomType, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := h.DB.Save(&roomType).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Room type updated successfully", roomType)
}

// DeleteRoomType soft-deletes; rooms still pointing at the type block the
// delete.
func (h *RoomTypeHandler) DeleteRoomType(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	roomTypeId, _ := c.Locals("roomTypeId").(uint)

	var roomCount int64
	if err := h.DB.Model(&model.Room{}).
		Where("room_type_ref = ? AND property_ref = ?", roomTypeId, propertyId).
		Count(&roomCount).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if roomCount > 0 {
		return utils.Fail(c, fiber.StatusConflict, "Room type has rooms attached")
	}

	result := h.DB.Where("id = ? AND property_ref = ?", roomTypeId, propertyId).Delete(&model.RoomType{})
	if result.Error != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Room type not found")
	}

	return utils.Success(c, fiber.StatusOK, "Room type deleted successfully", nil)
}
