package config

import (
	"Inventory-API/domain"
	"Inventory-API/internal/api/handlers"
	"Inventory-API/internal/api/presenters"
	"Inventory-API/internal/api/routes"
	"Inventory-API/internal/middleware"
	"Inventory-API/internal/utils"
	"Inventory-API/internal/utils/storage"
	"Inventory-API/pkg/auth"
	"Inventory-API/pkg/cipher"
	"Inventory-API/pkg/item"
	"Inventory-API/pkg/jwt"
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return presenters.ErrorResponse(c, fiberErr.Code, fiberErr.Message, nil)
			}
			log.Errorf("unhandled error: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageUnknownFailure, nil)
		},
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	authRepository := auth.NewAuthRepository(db)
	itemRepository := item.NewItemRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	cipherService := cipher.NewCipherService(utils.GetConfig("AES_KEY"))
	authService := auth.NewAuthService(authRepository, cipherService, jwtService)
	itemService := item.NewItemService(itemRepository, s3)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		AuthHandler: authHandler,
		ItemHandler: itemHandler,
		Middleware:  middlewares,
		JWTService:  jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
