// @title Task Tracker API
// @version 1.0
// @description Tasks, their todos and a dashboard of aggregate counts
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/xyz-asif/tasktracker/docs"
	"github.com/xyz-asif/tasktracker/internal/config"
	"github.com/xyz-asif/tasktracker/internal/database"
	"github.com/xyz-asif/tasktracker/internal/database/memory"
	"github.com/xyz-asif/tasktracker/internal/features/tasks"
	"github.com/xyz-asif/tasktracker/internal/features/todos"
	"github.com/xyz-asif/tasktracker/internal/middleware"
	"github.com/xyz-asif/tasktracker/internal/pkg/logger"
	"github.com/xyz-asif/tasktracker/internal/pkg/ratelimit"
	"github.com/xyz-asif/tasktracker/internal/routes"
)

func main() {
	cfg := config.Load()
	logger.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/api"

	stores, closeStores := openStores(cfg)
	defer closeStores()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	if cfg.RateLimitPerMinute > 0 {
		limiter := ratelimit.New(cfg.RateLimitPerMinute, time.Minute)
		limiter.StartCleanup(5*time.Minute, stopCleanup)
		router.Use(ratelimit.Middleware(limiter))
	}

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
		),
	)

	routes.SetupRoutes(router, stores)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting on port %s (store=%s)", cfg.Port, cfg.Store)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// openStores picks the backing store from config. The returned func releases it.
func openStores(cfg *config.Config) (routes.Stores, func()) {
	if cfg.Store == config.StoreMemory {
		logger.Warn("Using in-memory store; data is lost on restart")
		store := memory.New()
		return routes.Stores{
			Tasks:  store.Tasks(),
			Todos:  store.Todos(),
			Health: store.HealthCheck,
		}, func() {}
	}

	dbCfg := database.DefaultConfig()
	dbCfg.URI = cfg.MongoURI
	dbCfg.DBName = cfg.MongoDB
	dbCfg.Timeout = cfg.MongoTimeout

	db, err := database.Connect(dbCfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	logger.Info("Connected to MongoDB database %s", cfg.MongoDB)

	taskRepo := tasks.NewRepository(db.Database)
	todoRepo := todos.NewRepository(db.Database)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	defer cancel()
	if err := taskRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("Failed to create task indexes: %v", err)
	}
	if err := todoRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("Failed to create todo indexes: %v", err)
	}

	stores := routes.Stores{
		Tasks:  taskRepo,
		Todos:  todoRepo,
		Health: db.HealthCheck,
	}
	if cfg.MongoTransactions {
		stores.Tx = db
	}

	return stores, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Disconnect(ctx); err != nil {
			logger.Error("Failed to disconnect from MongoDB: %v", err)
		}
	}
}
