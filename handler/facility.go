package handler

import (
	"errors"

	"pms_server/constants"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FacilityHandler struct {
	DB *gorm.DB
}

func NewFacilityHandler(db *gorm.DB) *FacilityHandler {
	return &FacilityHandler{DB: db}
}

func (h *FacilityHandler) CreateFacility(c *fiber.Ctx) error {
	input, ok := c.Locals("facilityInput").(model.FacilityInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	userId, _ := c.Locals("userId").(uint)

	facility := model.PropertyFacility{
		Name:        input.Name,
		IsPublished: true,
		PropertyRef: propertyId,
		CreatedBy:   userId,
	}
	if input.IsPublished != nil {
		facility.IsPublished = *input.IsPublished
	}

	if err := h.DB.Create(&facility).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "Facility created successfully", facility)
}

// GetFacilities lists facilities; published=true limits to guest-visible
// ones.
func (h *FacilityHandler) GetFacilities(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	query := h.DB.Where("property_ref = ?", propertyId)
	if c.Query("published") == "true" {
		query = query.Where("is_published = ?", true)
	}

	var facilities []model.PropertyFacility
	if err := query.Order("id").Find(&facilities).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, facilities)
}

func (h *FacilityHandler) UpdateFacility(c *fiber.Ctx) error {
	input, ok := c.Locals("facilityInput").(model.FacilityInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	facilityId, _ := c.Locals("facilityId").(uint)

	var facility model.PropertyFacility
	err := h.DB.Where("id = ? AND property_ref = ?", facilityId, propertyId).First(&facility).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Facility not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	facility.Name = input.Name
	if input.IsPublished != nil {
		facility.IsPublished = *input.IsPublished
	}
	if err := h.DB.Save(&facility).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Facility updated successfully", facility)
}

func (h *FacilityHandler) DeleteFacility(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	facilityId, _ := c.Locals("facilityId").(uint)

	result := h.DB.Where("id = ? AND property_ref = ?", facilityId, propertyId).Delete(&model.PropertyFacility{})
	if result.Error != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Facility not found")
	}

	return utils.Success(c, fiber.StatusOK, "Facility deleted successfully", nil)
}
