// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/company"
	"github.com/your-org/storefront-backend/internal/domain/inventory"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// SetupRoutes wires all services and registers every route under /api.
// The inventory service is built first: the product service reports stock
// changes to it, and the order service records exits through it.
func SetupRoutes(api *gin.RouterGroup, store *jsonstore.Store, redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) {
	inventoryService := inventory.NewService(store, log)
	productService := product.NewService(store, inventoryService, log)
	orderService := order.NewService(store, inventoryService, log)
	cartService := cart.NewService(redisClient, productService, cfg)
	catalogService := catalog.NewService(store)
	companyService := company.NewService(store)
	userService := user.NewService(store, cfg)
	pdfService := pdf.NewService(cfg)

	authHandler := handlers.NewAuthHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	orderHandler := handlers.NewOrderHandler(orderService, pdfService)
	cartHandler := handlers.NewCartHandler(cartService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	companyHandler := handlers.NewCompanyHandler(companyService)

	requireAuth := middleware.AuthMiddleware(cfg)
	optionalAuth := middleware.OptionalAuthMiddleware(cfg)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/profile", requireAuth, authHandler.GetProfile)
	}

	products := api.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", requireAuth, productHandler.CreateProduct)
		products.PUT("/:id", requireAuth, productHandler.UpdateProduct)
		products.DELETE("/:id", requireAuth, productHandler.DeleteProduct)
	}

	api.GET("/my-products/:ownerId", requireAuth, productHandler.GetMyProducts)

	movements := api.Group("/inventory-movements")
	movements.Use(requireAuth)
	{
		movements.POST("", inventoryHandler.RecordMovement)
		movements.PUT("/:id", inventoryHandler.UpdateMovement)
		movements.GET("/:productId", inventoryHandler.GetMovements)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", optionalAuth, orderHandler.PlaceOrder)
		orders.GET("", requireAuth, middleware.AdminMiddleware(), orderHandler.GetOrders)
		orders.GET("/:id", requireAuth, orderHandler.GetOrder)
		orders.GET("/:id/invoice", requireAuth, orderHandler.GetInvoice)
	}

	cartRoutes := api.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PUT("/items/:productId", cartHandler.UpdateItem)
		cartRoutes.DELETE("/items/:productId", cartHandler.RemoveItem)
	}

	brands := api.Group("/brands")
	{
		brands.GET("", catalogHandler.GetBrands)
		brands.POST("", requireAuth, catalogHandler.CreateBrand)
		brands.PUT("/:id", requireAuth, catalogHandler.UpdateBrand)
		brands.DELETE("/:id", requireAuth, catalogHandler.DeleteBrand)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", catalogHandler.GetCategories)
		categories.POST("", requireAuth, catalogHandler.CreateCategory)
		categories.PUT("/:id", requireAuth, catalogHandler.UpdateCategory)
		categories.DELETE("/:id", requireAuth, catalogHandler.DeleteCategory)
	}

	api.GET("/business-activities", catalogHandler.GetBusinessActivities)

	companyRoutes := api.Group("/company")
	companyRoutes.Use(requireAuth)
	{
		companyRoutes.GET("/:userId", companyHandler.GetCompany)
		companyRoutes.PUT("/:userId", companyHandler.UpdateCompany)
	}
}
