package main

import (
	"fmt"
	"net/http"
	"os"

	"money/internal/config"
	"money/internal/database"
	"money/internal/handlers"
	"money/internal/logger"
	"money/internal/middleware"
	"money/internal/services"
	"money/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "money/internal/docs" // Import swagger docs
)

// @title           Money API
// @version         1.0
// @description     Backend for the household grocery budget tracker: a singleton budget, product categories, and purchased items with spending statistics.

// @host      localhost:3000
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager; an unreachable store aborts startup
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Seed default categories and the zero-value budget before serving
	if err := dbManager.Seed(); err != nil {
		return fmt.Errorf("failed to seed default data: %w", err)
	}

	// Register custom validation rules
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	budgetService := services.NewBudgetService(db)
	categoryService := services.NewCategoryService(db)
	itemService := services.NewItemService(db)

	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	itemHandler := handlers.NewItemHandler(itemService)
	statsHandler := handlers.NewStatsHandler(budgetService, itemService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API group
	api := router.Group("/api")

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Budget routes
	api.GET("/budget", budgetHandler.GetBudget)
	api.PUT("/budget", budgetHandler.SetBudget)

	// Category routes
	api.GET("/categories", categoryHandler.GetCategories)
	api.POST("/categories", categoryHandler.CreateCategory)

	// Item routes
	api.GET("/items", itemHandler.GetItems)
	api.POST("/items", itemHandler.CreateItem)
	api.DELETE("/items/:id", itemHandler.DeleteItem)

	// Statistics
	api.GET("/statistics", statsHandler.GetStatistics)

	log.Infof("Starting money backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
