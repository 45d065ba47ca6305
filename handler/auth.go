package handler

import (
	"errors"
	"strings"
	"time"

	"pms_server/constants"
	"pms_server/helper"
	"pms_server/model"
	"pms_server/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	input, ok := c.Locals("registerInput").(model.RegisterInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	user := model.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		PhoneNumber: input.PhoneNumber,
		Password:    hash,
		Role:        constants.ROLE_REGULAR_USER,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Fail(c, fiber.StatusConflict, constants.DUPLICATE_ENTRY)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "User registered successfully", user)
}

// RegisterTeamMember lets a super admin provision accounts with an explicit
// global role, bot accounts included.
func (h *AuthHandler) RegisterTeamMember(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != constants.ROLE_SUPER_ADMIN {
		return utils.Fail(c, fiber.StatusUnauthorized, constants.NOT_ADMIN)
	}

	input, ok := c.Locals("teamRegisterInput").(model.TeamRegisterInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	user := model.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		PhoneNumber: input.PhoneNumber,
		Password:    hash,
		Role:        input.Role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Fail(c, fiber.StatusConflict, constants.DUPLICATE_ENTRY)
		}
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	return utils.Success(c, fiber.StatusCreated, "Team member registered successfully", user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input, ok := c.Locals("loginInput").(model.LoginInput)
	if !ok {
		return utils.Fail(c, fiber.StatusBadRequest, constants.ERROR_INPUT)
	}

	user, err := helper.GetUserByEmail(h.DB, strings.ToLower(input.Email))
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	if user == nil || !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.Fail(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := helper.GenerateAccessToken(user)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return utils.Success(c, fiber.StatusOK, "Logged in successfully", fiber.Map{
		"accessToken": token,
		"user":        user,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return utils.Success(c, fiber.StatusOK, "Logged out successfully", nil)
}

// ValidateToken returns the account behind the presented token.
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	var user model.User
	if err := h.DB.First(&user, userId).Error; err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED)
	}

	return utils.Success(c, fiber.StatusOK, constants.FETCH_SUCCESS, user)
}
