package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamoodahalabed/book-network/internal/auth/dto"
	"github.com/hamoodahalabed/book-network/internal/auth/service"
	"github.com/hamoodahalabed/book-network/internal/common"
)

type AuthHandler struct {
	authService  *service.AuthService
	tokenService service.TokenGenerator
}

func NewAuthHandler(authService *service.AuthService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{authService: authService, tokenService: tokenService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if messages := common.ValidateStruct(input); messages != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"validationErrors": messages,
		})
	}

	if _, err := h.authService.Register(c.UserContext(), input); err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.SendStatus(fiber.StatusAccepted)
}

func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var input dto.AuthenticateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if messages := common.ValidateStruct(input); messages != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"validationErrors": messages,
		})
	}

	resp, err := h.authService.Authenticate(c.UserContext(), input)
	if err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) ActivateAccount(c *fiber.Ctx) error {
	code := c.Query("token")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing activation token",
		})
	}

	if err := h.authService.ActivateAccount(c.UserContext(), code); err != nil {
		return common.ErrorJSON(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
