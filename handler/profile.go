package handler

import (
	"errors"
	"strings"

	"pms_server/constants"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	DB *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{DB: db}
}

func (h *ProfileHandler) CreateIndividualProfile(c *fiber.Ctx) error {
	input, ok := c.Locals("individualProfileInput").(model.IndividualProfileInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	userId, _ := c.Locals("userId").(uint)

	profile := model.IndividualProfile{}
	if err := copier.Copy(&profile, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	profile.Email = strings.ToLower(input.Email)
	profile.PropertyRef = propertyId
	profile.CreatedBy = userId
	if input.DateOfBirth != "" {
		if dob, err := utils.ParseDate(input.DateOfBirth); err == nil {
			profile.DateOfBirth = &dob
		}
	}

	if err := h.DB.Create(&profile).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "Profile created successfully", profile)
}

func (h *ProfileHandler) CreateCompanyProfile(c *fiber.Ctx) error {
	input, ok := c.Locals("companyProfileInput").(model.CompanyProfileInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	userId, _ := c.Locals("userId").(uint)

	profile := model.CompanyProfile{}
	if err := copier.Copy(&profile, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	profile.ContactEmail = strings.ToLower(input.ContactEmail)
	profile.PropertyRef = propertyId
	profile.CreatedBy = userId

	if err := h.DB.Create(&profile).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "Profile created successfully", profile)
}

// GetIndividualProfiles lists guest profiles, optionally filtered by a
// search term over name, email and phone.
func (h *ProfileHandler) GetIndividualProfiles(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	query := h.DB.Model(&model.IndividualProfile{}).Where("property_ref = ?", propertyId)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone_number LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var profiles []model.IndividualProfile
	if err := query.Order("id DESC").Find(&profiles).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, profiles)
}

func (h *ProfileHandler) GetCompanyProfiles(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	query := h.DB.Model(&model.CompanyProfile{}).Where("property_ref = ?", propertyId)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(company_name) LIKE ? OR LOWER(contact_email) LIKE ?", pattern, pattern)
	}

	var profiles []model.CompanyProfile
	if err := query.Order("id DESC").Find(&profiles).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, profiles)
}

func (h *ProfileHandler) GetIndividualProfileById(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	profileId, _ := c.Locals("profileId").(uint)

	var profile model.IndividualProfile
	err := h.DB.Where("id = ? AND property_ref = ?", profileId, propertyId).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Profile not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, profile)
}

func (h *ProfileHandler) GetCompanyProfileById(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	profileId, _ := c.Locals("profileId").(uint)

	var profile model.CompanyProfile
	err := h.DB.Where("id = ? AND property_ref = ?", profileId, propertyId).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Profile not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, profile)
}

func (h *ProfileHandler) UpdateIndividualProfile(c *fiber.Ctx) error {
	input, ok := c.Locals("individualProfileInput").(model.IndividualProfileInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	profileId, _ := c.Locals("profileId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var profile model.IndividualProfile
	err := h.DB.Where("id = ? AND property_ref = ?", profileId, propertyId).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Profile not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if err := copier.Copy(&profile, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	profile.Email = strings.ToLower(input.Email)
	profile.UpdatedBy = &userId
	if input.DateOfBirth != "" {
		if dob, err := utils.ParseDate(input.DateOfBirth); err == nil {
			profile.DateOfBirth = &dob
		}
	}

	if err := h.DB.Save(&profile).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Profile updated successfully", profile)
}

func (h *ProfileHandler) UpdateCompanyProfile(c *fiber.Ctx) error {
	input, ok := c.Locals("companyProfileInput").(model.CompanyProfileInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	propertyId, _ := c.Locals("propertyId").(uint)
	profileId, _ := c.Locals("profileId").(uint)
	userId, _ := c.Locals("userId").(uint)

	var profile model.CompanyProfile
	err := h.DB.Where("id = ? AND property_ref = ?", profileId, propertyId).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "Profile not found")
	}
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	if err := copier.Copy(&profile, &input); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	profile.ContactEmail = strings.ToLower(input.ContactEmail)
	profile.UpdatedBy = &userId

	if err := h.DB.Save(&profile).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Profile updated successfully", profile)
}
