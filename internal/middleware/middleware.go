package middleware

import (
	"Inventory-API/domain"
	"Inventory-API/internal/api/presenters"
	"Inventory-API/pkg/jwt"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, user",
	})
}

// AuthMiddleware runs current-user verification before any protected
// handler: the user header carries the claimed phone number and the
// authorization header the bearer token. A missing or malformed token is a
// client error; an expired token or an identity mismatch means the caller
// holds a credential that does not authorize this request.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claimedIdentity := c.Get("user")
		token := strings.TrimPrefix(c.Get("authorization"), "Bearer ")

		if err := jwtService.VerifyToken(claimedIdentity, token); err != nil {
			if errors.Is(err, domain.ErrTokenExpired) || errors.Is(err, domain.ErrTokenMismatch) {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedAuth, err)
			}
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAuth, err)
		}

		c.Locals("phone_number", claimedIdentity)
		return c.Next()
	}
}
