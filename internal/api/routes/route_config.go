package routes

import (
	"Homestock-Backend/internal/api/handlers"
	"Homestock-Backend/internal/middleware"
	"Homestock-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ProductHandler      handlers.ProductHandler
	ReportHandler       handlers.ReportHandler
	NotificationHandler handlers.NotificationHandler
	ShoppingListHandler handlers.ShoppingListHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Products()
	c.Categories()
	c.ShoppingLists()
	c.Reports()
	c.Trends()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/login", c.UserHandler.LoginPrompt)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetProfile)
		user.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
	}

	friends := c.App.Group("/api/v1/friends", c.Middleware.AuthMiddleware(c.JWTService))
	{
		friends.Get("", c.UserHandler.GetFriends)
		friends.Post("", c.UserHandler.SendFriendRequest)
		friends.Post("/requests/:id/accept", c.UserHandler.AcceptFriendRequest)
		friends.Post("/requests/:id/reject", c.UserHandler.RejectFriendRequest)
		friends.Delete("/:id", c.UserHandler.RemoveFriend)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))

	products.Post("", c.ProductHandler.AddProduct)
	products.Get("", c.ProductHandler.GetProducts)
	products.Get("/:id", c.ProductHandler.GetProductDetails)
	products.Put("/:id", c.ProductHandler.UpdateProduct)
	products.Delete("/:id", c.ProductHandler.DeleteProduct)

	products.Post("/image", c.ProductHandler.UploadProductImage)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories", c.Middleware.AuthMiddleware(c.JWTService))

	categories.Post("", c.ProductHandler.AddCategory)
	categories.Get("", c.ProductHandler.GetCategories)
	categories.Put("/:id", c.ProductHandler.UpdateCategory)
	categories.Delete("/:id", c.ProductHandler.DeleteCategory)
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/api/v1/shopping-lists", c.Middleware.AuthMiddleware(c.JWTService))

	lists.Post("", c.ShoppingListHandler.CreateList)
	lists.Get("", c.ShoppingListHandler.GetLists)
	lists.Get("/:id", c.ShoppingListHandler.GetListDetails)
	lists.Delete("/:id", c.ShoppingListHandler.DeleteList)

	lists.Post("/:id/items", c.ShoppingListHandler.AddItem)
	lists.Delete("/:id/items/:itemId", c.ShoppingListHandler.RemoveItem)
	lists.Post("/:id/items/:itemId/toggle", c.ShoppingListHandler.ToggleItem)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))

	reports.Get("/dashboard", c.ReportHandler.GetDashboard)

	reports.Post("/consumption", c.ReportHandler.AddConsumption)
	reports.Post("/expenses", c.ReportHandler.AddExpense)
	reports.Post("/wastage", c.ReportHandler.AddWastage)

	reports.Get("/consumption", c.ReportHandler.GetConsumptionReport)
	reports.Get("/expenses", c.ReportHandler.GetExpenseReport)
	reports.Get("/wastage", c.ReportHandler.GetWastageReport)

	reports.Get("/export/:kind/:format", c.ReportHandler.ExportReport)
}

// Trends answers the chart widgets, outside the /v1 report group.
func (c *Config) Trends() {
	api := c.App.Group("/api", c.Middleware.AuthMiddleware(c.JWTService))

	api.Get("/consumption-trends", c.ReportHandler.GetConsumptionTrends)
	api.Get("/expense-trends", c.ReportHandler.GetExpenseTrends)
	api.Get("/wastage-trends", c.ReportHandler.GetWastageTrends)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Get("/unread-count", c.NotificationHandler.UnreadCount)
	notifications.Post("/refresh", c.NotificationHandler.Refresh)
	notifications.Post("/digest", c.NotificationHandler.SendDigest)
	notifications.Post("/read-all", c.NotificationHandler.MarkAllRead)
	notifications.Post("/:id/read", c.NotificationHandler.MarkRead)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
