package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"paisa/internal/config"
	"paisa/internal/drive"
	"paisa/internal/handlers"
	"paisa/internal/logger"
	"paisa/internal/middleware"
	"paisa/internal/storage"
	"paisa/internal/store"
	"paisa/internal/sync"
	"paisa/internal/validator"
)

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

	// Open the durable key-value store
	db, err := storage.Open(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer db.Close()

	// Wire the sync engine against the Google Drive backend
	authorizer := drive.NewOAuthAuthorizer(
		appConfig.OAuthClientID,
		appConfig.OAuthClientSecret,
		appConfig.OAuthRedirectURL,
	)
	newRemote := func(ctx context.Context, ts oauth2.TokenSource) (drive.ObjectStore, error) {
		return drive.NewClient(ctx, ts)
	}
	engine := sync.NewEngine(authorizer, newRemote, db, appConfig.DriveFolderName)

	// Load the tracker from disk
	tracker := store.New(db, engine)

	// Register custom request validators
	validator.Register()

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(tracker)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(tracker)
	reminderHandler := handlers.NewReminderHandler(tracker)
	dashboardHandler := handlers.NewDashboardHandler(tracker)
	dataHandler := handlers.NewDataHandler(tracker)
	syncHandler := handlers.NewSyncHandler(engine, tracker)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Payment method routes
	methods := v1.Group("/payment-methods")
	methods.POST("", paymentMethodHandler.CreatePaymentMethod)
	methods.GET("", paymentMethodHandler.ListPaymentMethods)
	methods.PUT("/:id/default", paymentMethodHandler.SetDefaultPaymentMethod)
	methods.DELETE("/:id", paymentMethodHandler.DeletePaymentMethod)

	// Reminder routes
	reminders := v1.Group("/reminders")
	reminders.POST("", reminderHandler.CreateReminder)
	reminders.GET("", reminderHandler.ListReminders)
	reminders.GET("/upcoming", reminderHandler.UpcomingReminders)
	reminders.POST("/:id/paid", reminderHandler.MarkReminderPaid)
	reminders.DELETE("/:id", reminderHandler.DeleteReminder)

	// Dashboard routes
	dashboard := v1.Group("/dashboard")
	dashboard.GET("", dashboardHandler.GetDashboard)
	dashboard.GET("/expenses", dashboardHandler.GetMonthlyExpenses)

	// Data export/import routes
	data := v1.Group("/data")
	data.GET("/export", dataHandler.ExportData)
	data.POST("/import", dataHandler.ImportData)
	data.DELETE("", dataHandler.ClearData)

	// Sync routes
	syncRoutes := v1.Group("/sync")
	syncRoutes.GET("/status", syncHandler.GetStatus)
	syncRoutes.POST("/connect", syncHandler.Connect)
	syncRoutes.GET("/callback", syncHandler.Callback)
	syncRoutes.POST("/disconnect", syncHandler.Disconnect)
	syncRoutes.POST("/now", syncHandler.SyncNow)

	log.Infof("Starting expense tracker server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
