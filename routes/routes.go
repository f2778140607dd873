package routes

import (
	"bike-shop/controllers"
	"bike-shop/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Items      *controllers.ItemController
	Auth       *controllers.AuthController
	Storefront *controllers.StorefrontController
	Contact    *controllers.ContactController
	Health     gin.HandlerFunc
	Validator  middleware.TokenValidator
	UploadDir  string
}

// NewRouter builds the engine with the shared middleware stack.
func NewRouter(originURL string, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORSMiddleware(originURL))

	SetupRoutes(router, h)
	return router
}

func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Health != nil {
		router.GET("/health", h.Health)
	}

	router.GET("/", h.Storefront.Index)
	if h.Contact != nil {
		router.POST("/contact", h.Contact.Submit)
	}

	router.POST("/auth/login", h.Auth.Login)
	router.GET("/items", h.Items.GetAllItems)
	router.GET("/items/:id", h.Items.GetItemByID)
	router.GET("/api/items", h.Items.GetAllItems)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.Validator), middleware.AdminMiddleware())
	{
		admin.POST("/items", h.Items.CreateItem)
		admin.PATCH("/items/:id", h.Items.UpdateItem)
		admin.DELETE("/items/:id", h.Items.DeleteItem)
		admin.POST("/items/:id/image", h.Items.UploadItemImage)
	}

	if h.UploadDir != "" {
		router.Static("/uploads", h.UploadDir)
	}
}
