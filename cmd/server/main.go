package main

import (
	"fmt"
	"log"
	"net/http"

	"piecon/backend/internal/auth"
	"piecon/backend/internal/config"
	"piecon/backend/internal/database"
	"piecon/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "piecon/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           PieCon API
// @version         1.0
// @description     This is the API for the PieCon convention site.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// Account routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.PUT("/me/password", handler.ChangePassword)
			userRoutes.PUT("/me/email", handler.ChangeEmail)
		}

		// The current convention is public.
		apiV1.GET("/conventions/current", handler.GetCurrentConvention)

		// Pie routes: the list is public (with optional auth so the
		// viewer's own entries are marked), everything else needs a login.
		pieRoutes := apiV1.Group("/pies")
		{
			pieRoutes.GET("", auth.OptionalAuthMiddleware(), handler.ListPies)

			protected := pieRoutes.Group("")
			protected.Use(auth.AuthMiddleware())
			{
				protected.POST("", handler.CreatePie)
				protected.GET("/:id", handler.GetPie)
				protected.PUT("/:id", handler.UpdatePie)
			}
		}

		// Game routes, same shape as pies.
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", auth.OptionalAuthMiddleware(), handler.ListGames)

			protected := gameRoutes.Group("")
			protected.Use(auth.AuthMiddleware())
			{
				protected.POST("", handler.CreateGame)
				protected.GET("/:id", handler.GetGame)
				protected.PUT("/:id", handler.UpdateGame)
			}
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Conventions CRUD
			conventions := adminRoutes.Group("/conventions")
			{
				conventions.GET("", handler.ListConventions)
				conventions.POST("", handler.CreateConvention)
				conventions.PUT("/:id", handler.UpdateConvention)
				conventions.DELETE("/:id", handler.DeleteConvention)
			}

			// Suppress toggle for games
			adminRoutes.PUT("/games/:id/suppress", handler.SuppressGame)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
