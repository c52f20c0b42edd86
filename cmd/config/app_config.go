package config

import (
	"Homestock-Backend/internal/api/handlers"
	"Homestock-Backend/internal/api/routes"
	"Homestock-Backend/internal/middleware"
	"Homestock-Backend/internal/utils"
	"Homestock-Backend/internal/utils/storage"
	"Homestock-Backend/pkg/jwt"
	"Homestock-Backend/pkg/notification"
	"Homestock-Backend/pkg/product"
	"Homestock-Backend/pkg/report"
	"Homestock-Backend/pkg/shoppinglist"
	"Homestock-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
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
		TimeZone:   "Europe/Warsaw",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)
	reportRepository := report.NewReportRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	productService := product.NewProductService(productRepository, s3)
	notificationService := notification.NewNotificationService(
		notificationRepository,
		userRepository,
		notification.DefaultRules(notification.ThresholdsFromConfig()),
	)
	shoppingListService := shoppinglist.NewShoppingListService(
		shoppingListRepository,
		productRepository,
		notificationRepository,
	)
	reportService := report.NewReportService(
		reportRepository,
		productRepository,
		shoppingListRepository,
		notificationService,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	reportHandler := handlers.NewReportHandler(reportService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ProductHandler:      productHandler,
		ReportHandler:       reportHandler,
		NotificationHandler: notificationHandler,
		ShoppingListHandler: shoppingListHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
