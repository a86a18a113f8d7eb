package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appconfig "github.com/boska/laundry-dash-api/config"
	"github.com/boska/laundry-dash-api/controllers"
	"github.com/boska/laundry-dash-api/middleware"
	"github.com/boska/laundry-dash-api/models"
	"github.com/boska/laundry-dash-api/services"
	"github.com/boska/laundry-dash-api/store"
)

func main() {
	log.Println("Starting Laundry Dash API server...")

	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := appconfig.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := appconfig.GetDB()
	if err := db.AutoMigrate(&models.User{}, &models.Preference{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if cfg.HasS3() {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitPhotoService(s3Service)
		log.Printf("Photo storage: S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		log.Printf("Photo storage: local directory %s", cfg.UploadDir)
	}

	appStore := store.New(db)
	router := setupRouter(cfg, db, appStore)

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires the services, controllers and routes over the given
// store
func setupRouter(cfg *appconfig.Config, db *gorm.DB, appStore *store.Store) *gin.Engine {
	simulator := services.NewSimulatorService(appStore.Order)
	responder := services.NewKeywordResponder(services.DefaultKeywordReplies, services.DefaultReply)
	chatService := services.NewChatService(appStore.Chat, responder)
	authService := services.NewAuthService(db, appStore.Preferences)
	githubService := services.NewGitHubService(cfg.GitHubAPIURL)

	authController := controllers.NewAuthController(authService)
	cartController := controllers.NewCartController(appStore.Cart)
	orderController := controllers.NewOrderController(appStore.Cart, appStore.Order, simulator)
	chatController := controllers.NewChatController(appStore.Chat, chatService)
	feedController := controllers.NewFeedController(githubService)
	settingsController := controllers.NewSettingsController(appStore.Preferences)

	router := gin.Default()

	// The app runs in a browser or webview on another origin
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authController.Signup)
			auth.POST("/login", authController.Login)
			auth.POST("/verify-phone", authController.VerifyPhone)
			auth.POST("/logout", authController.Logout)
		}

		// The feed is reachable without a session, same as in the app
		v1.GET("/feed/:owner/:repo/commits", feedController.GetCommits)

		session := v1.Group("")
		session.Use(middleware.RequireSession(appStore.Preferences))
		{
			session.GET("/cart", cartController.GetCart)
			session.POST("/cart/items", cartController.AddItem)
			session.PUT("/cart/items", cartController.SetQuantity)
			session.DELETE("/cart/items", cartController.RemoveItem)
			session.DELETE("/cart", cartController.ClearCart)

			session.POST("/orders", orderController.CreateOrder)
			session.GET("/orders/current", orderController.GetCurrentOrder)
			session.PUT("/orders/current/status", orderController.AdvanceStatus)
			session.DELETE("/orders/current", orderController.ClearOrder)

			session.GET("/chatroom/messages", chatController.ListMessages)
			session.POST("/chatroom/messages", chatController.SendMessage)
			session.DELETE("/chatroom/messages", chatController.ClearMessages)
			session.PUT("/chatroom/input", chatController.SetInput)

			session.GET("/settings", settingsController.GetSettings)
			session.PUT("/settings/theme", settingsController.SetTheme)
			session.PUT("/settings/language", settingsController.SetLanguage)

			session.POST("/uploads", controllers.UploadPhoto)
			session.GET("/uploads/:filename", controllers.GetUploadedPhoto)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Laundry Dash API is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(c *gin.Context) {
	db := appconfig.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Migrator works for both sqlite and Postgres
	tables, err := db.Migrator().GetTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
