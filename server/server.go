package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dinerozz/screen-time-backend/config"
	"github.com/dinerozz/screen-time-backend/docs"
	authHandler "github.com/dinerozz/screen-time-backend/internal/handler/auth"
	importerHandler "github.com/dinerozz/screen-time-backend/internal/handler/importer"
	timelineHandler "github.com/dinerozz/screen-time-backend/internal/handler/timeline"
	usageEventHandler "github.com/dinerozz/screen-time-backend/internal/handler/usage_event"
	"github.com/dinerozz/screen-time-backend/internal/repository"
	importerService "github.com/dinerozz/screen-time-backend/internal/service/importer"
	timelineService "github.com/dinerozz/screen-time-backend/internal/service/timeline"
	usageEventService "github.com/dinerozz/screen-time-backend/internal/service/usage_event"
	"github.com/dinerozz/screen-time-backend/middleware"
	"github.com/dinerozz/screen-time-backend/pkg/displayname"
	"github.com/dinerozz/screen-time-backend/pkg/utils"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterHandler struct {
	authHandler       *authHandler.AuthHandler
	timelineHandler   *timelineHandler.TimelineHandler
	usageEventHandler *usageEventHandler.UsageEventHandler
	importerHandler   *importerHandler.ImporterHandler
}

func RunServer(cfg *config.Config) {
	env := cfg.Env
	switch env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	case "dev", "development":
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode (default)")
	}

	utils.SetJWTSecret(cfg.Auth.JWTSecret)

	db, err := repository.NewRepository(cfg.Store)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer db.Close()

	eventRepo := repository.NewUsageEventRepository(db)
	names := displayname.NewResolver(cfg.DisplayNames)

	eventSrv := usageEventService.NewUsageEventService(eventRepo)
	timelineSrv := timelineService.NewTimelineService(eventRepo, &cfg.Engine, names, cfg.Location)

	routerHandler := &RouterHandler{
		authHandler:       authHandler.NewAuthHandler(cfg.Auth),
		timelineHandler:   timelineHandler.NewTimelineHandler(timelineSrv),
		usageEventHandler: usageEventHandler.NewUsageEventHandler(eventSrv),
	}

	// The Screen Time database only exists on macOS hosts; import routes are
	// registered when it can be opened.
	knowledgeDB, err := repository.NewKnowledgeDB(cfg.Store.KnowledgePath)
	if err != nil {
		log.Printf("⚠️ Knowledge database unavailable, import API disabled: %v", err)
	} else {
		defer knowledgeDB.Close()
		knowledgeRepo := repository.NewKnowledgeRepository(knowledgeDB)
		importerSrv := importerService.NewImporterService(eventRepo, knowledgeRepo, cfg.Location)
		routerHandler.importerHandler = importerHandler.NewImporterHandler(importerSrv)
	}

	r := setupRouter(routerHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	select {
	case <-ctx.Done():
		log.Println("⚠️ Server shutdown timeout exceeded")
	default:
		log.Println("✅ Server gracefully stopped")
	}
}

func setupRouter(routerHandler *RouterHandler) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "screen-time-backend",
		})
	})

	docs.SwaggerInfo.Host = "127.0.0.1:8080"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "Screen Time API"
	docs.SwaggerInfo.Description = "Screen Time usage timeline API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api/v1"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	publicRoutes := r.Group("/api/v1")
	{
		publicRoutes.POST("/auth", routerHandler.authHandler.Login)

		publicRoutes.GET("/timeline", routerHandler.timelineHandler.GetTimeline)
		publicRoutes.GET("/timeline/stats", routerHandler.timelineHandler.GetStats)
		publicRoutes.GET("/timeline/dates", routerHandler.timelineHandler.GetDates)
	}

	privateRoutes := r.Group("/api/v1")
	privateRoutes.Use(middleware.AuthenticationMiddleware())
	{
		privateRoutes.POST("/events", routerHandler.usageEventHandler.CreateEvent)
		privateRoutes.POST("/events/batch", routerHandler.usageEventHandler.BatchCreateEvents)
		privateRoutes.GET("/events", routerHandler.usageEventHandler.GetEvents)
		privateRoutes.DELETE("/events/:id", routerHandler.usageEventHandler.DeleteEvent)

		if routerHandler.importerHandler != nil {
			privateRoutes.POST("/import/:date", routerHandler.importerHandler.ImportDay)
			privateRoutes.GET("/import/dates", routerHandler.importerHandler.GetKnowledgeDates)
		}
	}

	return r
}
