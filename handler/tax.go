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

type TaxHandler struct {
	DB *gorm.DB
}

func NewTaxHandler(db *gorm.DB) *TaxHandler {
	return &TaxHandler{DB: db}
}

func (h *TaxHandler) CreateTax(c *fiber.Ctx) error {
	input, ok := c.Locals("taxInput").(model.TaxInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	userId, _ := c.Locals("userId").(uint)

	tax := model.Tax{}
	if err := copier.Copy(&tax, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	tax.PropertyRef = propertyId
	tax.CreatedBy = userId

	if err := h.DB.Create(&tax).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "Tax created successfully", tax)
}

func (h *TaxHandler) GetTaxes(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	var taxes []model.Tax
	if err := h.DB.Where("property_ref = ?", propertyId).Order("id").Find(&taxes).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, taxes)
}

func (h *TaxHandler) UpdateTax(c *fiber.Ctx) error {
	input, ok := c.Locals("taxInput").(model.TaxInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	taxId, _ := c.Locals("taxId").(uint)

	var tax model.Tax
	err := h.DB.Where("id = ? AND property_ref = ?", taxId, propertyId).First(&tax).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Tax not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if err := copier.Copy(&tax, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := h.DB.Save(&tax).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Tax updated successfully", tax)
}

func (h *TaxHandler) DeleteTax(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	taxId, _ := c.Locals("taxId").(uint)

	result := h.DB.Where("id = ? AND property_ref = ?", taxId, propertyId).Delete(&model.Tax{})
	if result.Error != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Tax not found")
	}

	return utils.Success(c, fiber.StatusOK, "Tax deleted successfully", nil)
}
