package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// Every response is wrapped in the same envelope; error detail only ever
// appears in meta.error, never in data.
type (
	Meta struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error,omitempty"`
	}

	Response struct {
		Meta Meta `json:"meta"`
		Data any  `json:"data"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Meta: Meta{Code: code, Message: message},
		Data: data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	meta := Meta{Code: code, Message: message}
	if err != nil {
		meta.Error = err.Error()
	}
	return c.Status(code).JSON(Response{Meta: meta, Data: nil})
}
