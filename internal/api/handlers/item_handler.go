package handlers

import (
	"Inventory-API/domain"
	"Inventory-API/internal/api/presenters"
	"Inventory-API/pkg/item"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ItemHandler interface {
		InsertItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		GetItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		AttachImage(c *fiber.Ctx) error
	}

	itemHandler struct {
		itemService item.ItemService
		validator   *validator.Validate
	}
)

func NewItemHandler(itemService item.ItemService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		itemService: itemService,
		validator:   validator,
	}
}

func parseSeq(c *fiber.Ctx) (uint, error) {
	seq, err := strconv.ParseUint(c.Params("seq"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(seq), nil
}

func (h *itemHandler) InsertItem(c *fiber.Ctx) error {
	phoneNumber := c.Locals("phone_number").(string)
	req := new(domain.InsertItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInsertItem, err)
	}

	res, err := h.itemService.InsertItem(c.Context(), *req, phoneNumber)
	if err != nil {
		return handleServiceError(c, err, domain.MessageFailedInsertItem)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "ok")
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	phoneNumber := c.Locals("phone_number").(string)
	seq, err := parseSeq(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	res, err := h.itemService.DeleteItem(c.Context(), phoneNumber, seq)
	if err != nil {
		return handleServiceError(c, err, domain.MessageFailedDeleteItem)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "ok")
}

func (h *itemHandler) GetItem(c *fiber.Ctx) error {
	phoneNumber := c.Locals("phone_number").(string)
	seq, err := parseSeq(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItem, err)
	}

	res, err := h.itemService.GetItem(c.Context(), phoneNumber, seq)
	if err != nil {
		return handleServiceError(c, err, domain.MessageFailedGetItem)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "ok")
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	phoneNumber := c.Locals("phone_number").(string)
	seq, err := parseSeq(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	req := new(domain.UpdateItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.itemService.UpdateItem(c.Context(), phoneNumber, seq, *req)
	if err != nil {
		return handleServiceError(c, err, domain.MessageFailedUpdateItem)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "ok")
}

// GetItems serves both plain listing and keyword search: an absent keyword
// means a listing, anything else a dual-mode prefix search.
func (h *itemHandler) GetItems(c *fiber.Ctx) error {
	phoneNumber := c.Locals("phone_number").(string)

	page, err := strconv.Atoi(c.Query("page_number", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	keyword := c.Query("keyword")

	var res []domain.ItemResponse
	if keyword == "" {
		res, err = h.itemService.ListItems(c.Context(), phoneNumber, page)
	} else {
		res, err = h.itemService.SearchItems(c.Context(), phoneNumber, keyword, page)
	}
	if err != nil {
		return handleServiceError(c, err, domain.MessageFailedGetItems)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "ok")
}

func (h *itemHandler) AttachImage(c *fiber.Ctx) error {
	phoneNumber := c.Locals("phone_number").(string)
	seq, err := parseSeq(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAttachImage, err)
	}

	req := new(domain.AttachImageRequest)
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAttachImage, err)
	}

	res, err := h.itemService.AttachImage(c.Context(), phoneNumber, seq, req.Image)
	if err != nil {
		return handleServiceError(c, err, domain.MessageFailedAttachImage)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "ok")
}
