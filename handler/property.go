package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"pms_server/config"
	"pms_server/constants"
	"pms_server/helper"
	"pms_server/model"
	"pms_server/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type PropertyHandler struct {
	DB  *gorm.DB
	Cld *cloudinary.Cloudinary
}

func NewPropertyHandler(db *gorm.DB, cld *cloudinary.Cloudinary) *PropertyHandler {
	return &PropertyHandler{DB: db, Cld: cld}
}

// CreateProperty creates the property and links the creator as its admin.
// Both writes happen in one transaction so a failed link never leaves an
// orphan property behind.
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	input, ok := c.Locals("propertyInput").(model.CreatePropertyInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}
	userId, _ := c.Locals("userId").(uint)

	slug, err := helper.GenerateUniquePropertySlug(h.DB, input.Name)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	property := model.Property{
		Name:  input.Name,
		Email: strings.ToLower(input.Email),
		Slug:  slug,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		link := model.UserProperty{
			UserRef:     userId,
			PropertyRef: property.ID,
			Role:        constants.PROPERTY_ROLE_ADMIN,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Fail(c, fiber.StatusConflict, constants.DUPLICATE_ENTRY)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "Property created successfully", property)
}

// GetMyProperties lists every property the caller is linked to. Super
// admins see all properties.
func (h *PropertyHandler) GetMyProperties(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	var properties []model.Property
	query := h.DB.Model(&model.Property{})
	if role != constants.ROLE_SUPER_ADMIN {
		query = query.
			Joins("JOIN user_properties ON user_properties.property_ref = properties.id").
			Where("user_properties.user_ref = ? AND user_properties.deleted_at IS NULL", userId)
	}
	if err := query.Order("properties.id").Find(&properties).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, properties)
}

func (h *PropertyHandler) GetPropertyById(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	var property model.Property
	if err := h.DB.First(&property, propertyId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail(c, fiber.StatusNotFound, "Property not found")
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, property)
}

// UpdateProperty patches the mutable details. The slug is regenerated only
// when the name changes.
func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)

	var property model.Property
	if err := h.DB.First(&property, propertyId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail(c, fiber.StatusNotFound, "Property not found")
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	var patch model.Property
	if err := c.BodyParser(&patch); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}

	nameChanged := patch.Name != "" && patch.Name != property.Name
	if err := copier.CopyWithOption(&property, &patch, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	property.ID = propertyId
	if nameChanged {
		slug, err := helper.GenerateUniquePropertySlug(h.DB, property.Name)
		if err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		property.Slug = slug
	}

	if err := h.DB.Save(&property).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Property updated successfully", property)
}

// UploadPropertyImage uploads a form file to cloudinary and appends the
// URL to the property's image list.
func (h *PropertyHandler) UploadPropertyImage(c *fiber.Ctx) error {
	propertyId, _ := c.Locals("propertyId").(uint)
	if h.Cld == nil {
		return utils.Fail(c, fiber.StatusServiceUnavailable, "Image uploads are not configured")
	}

	var property model.Property
	if err := h.DB.First(&property, propertyId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail(c, fiber.StatusNotFound, "Property not found")
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Image file is required")
	}

	folder := fmt.Sprintf("properties/%d", propertyId)
	url, err := helper.UploadPropertyImage(c.Context(), h.Cld, file, folder)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Image upload failed")
	}

	property.Images = append(property.Images, url)
	if err := h.DB.Model(&property).Update("images", property.Images).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusOK, "Image uploaded successfully", fiber.Map{"url": url})
}

// GenerateSignature signs direct-upload params so browsers can push files
// to cloudinary without the API secret.
func (h *PropertyHandler) GenerateSignature(c *fiber.Ctx) error {
	type sigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params sigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}

	timestamp := time.Now().Unix()
	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	h1 := sha1.New()
	h1.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h1.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}
