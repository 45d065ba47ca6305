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

type MealPlanHandler struct {
	DB *gorm.DB
}

func NewMealPlanHandler(db *gorm.DB) *MealPlanHandler {
	return &MealPlanHandler{DB: db}
}

func (h *MealPlanHandler) CreateMealPlan(c *fiber.Ctx) error {
	input, ok := c.Locals("mealPlanInput").(model.MealPlanInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var count int64
	if err := h.DB.Model(&model.MealPlan{}).
		Where("property_ref = ? AND code = ?", propertyId, input.Code).
		Count(&count).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if count > 0 {
		return utils.Fail(c, fiber.StatusConflict, constants.DUPLICATE_ENTRY)
	}

	plan := model.MealPlan{}
	if err := copier.Copy(&plan, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	plan.PropertyRef = propertyId
	plan.CreatedBy = userId

	if err := h.DB.Create(&plan).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "Meal plan created successfully", plan)
}

func (h *MealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	var plans []model.MealPlan
	if err := h.DB.Where("property_ref = ?", propertyId).Order("id").Find(&plans).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, plans)
}

func (h *MealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	input, ok := c.Locals("mealPlanInput").(model.MealPlanInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	mealPlanId, _ := c.Locals("mealPlanId").(uint)

	var plan model.MealPlan
	err := h.DB.Where("id = ? AND property_ref = ?", mealPlanId, propertyId).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Meal plan not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if err := copier.Copy(&plan, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if err := h.DB.Save(&plan).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Meal plan updated successfully", plan)
}

func (h *MealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	mealPlanId, _ := c.Locals("mealPlanId").(uint)

	result := h.DB.Where("id = ? AND property_ref = ?", mealPlanId, propertyId).Delete(&model.MealPlan{})
	if result.Error != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, fiber.StatusNotFound, "Meal plan not found")
	}

	return utils.Success(c, fiber.StatusOK, "Meal plan deleted successfully", nil)
}
