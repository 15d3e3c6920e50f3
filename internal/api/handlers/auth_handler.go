package handlers

import (
	"Inventory-API/domain"
	"Inventory-API/internal/api/presenters"
	"Inventory-API/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Signup(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		DeleteAccount(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *authHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignup, err)
	}

	res, err := h.authService.Signup(c.Context(), *req)
	if err != nil {
		return handleServiceError(c, err, domain.MessageFailedSignup)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "ok")
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.authService.Login(c.Context(), *req)
	if err != nil {
		return handleServiceError(c, err, domain.MessageFailedLogin)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "ok")
}

func (h *authHandler) DeleteAccount(c *fiber.Ctx) error {
	phoneNumber := c.Locals("phone_number").(string)

	res, err := h.authService.DeleteAccount(c.Context(), phoneNumber)
	if err != nil {
		return handleServiceError(c, err, domain.MessageFailedDeleteAccount)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "ok")
}
