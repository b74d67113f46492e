package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zaywreck/warehouse_backend/config"
	"github.com/zaywreck/warehouse_backend/middlewares"
	"github.com/zaywreck/warehouse_backend/models"
	"gorm.io/gorm"
)

// application bundles the dependencies the handlers need. Everything is
// constructed in main and passed down; no package-level mutable state.
type application struct {
	cfg    *config.Config
	logger *logrus.Logger
	db     *gorm.DB
}

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	// Shutdown coordination. Cloud Run sends SIGTERM on revision
	// shutdown; handle it for graceful drain.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	app := &application{cfg: cfg, logger: logger}

	// Start the HTTP server ASAP so startup probes pass. Until the
	// database is ready, app endpoints answer 503.
	r := app.newRouter()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	// Connect dependencies after the port is open.
	app.db = config.ConnectDatabaseWithRetry(cfg)
	sqlDB, _ := app.db.DB()
	defer func() {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}()

	models.MigrateTable(app.db)

	logger.WithFields(logrus.Fields{
		"info": "Connection Established",
	}).Info("listening on http://localhost:", cfg.Port)
	log.Println("Server started successfully")

	// Block until shutdown or server error.
	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	// Drain HTTP requests.
	shutdownTimeout := 30 * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}
}

// newRouter assembles the gin engine and all routes.
func (app *application) newRouter() *gin.Engine {
	if app.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Correlation IDs: generate once per request and attach as a response
	// header so log lines and client reports can be matched up.
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Header("x-correlation-id", cid)
		c.Next()
	})

	r.Use(func(c *gin.Context) {
		// Always allow the startup probe.
		if c.Request.URL.Path == "/healthz" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		// Gate app endpoints on database readiness.
		if app.db == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	// In production, require an explicit allowlist; elsewhere allow all
	// for developer convenience.
	if app.cfg.IsProduction() {
		if len(app.cfg.CORSAllowedOrigins) == 0 {
			// Safer default: deny all if not configured in production.
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = app.cfg.CORSAllowedOrigins
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("api-key", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length")
	corsConfig.AllowCredentials = true

	r.Use(cors.New(corsConfig))
	r.Use(customErrorLogger(app.logger))
	r.Use(gin.Recovery())

	auth := r.Group("/auth")
	{
		auth.POST("/register", app.registerHandler())
		auth.POST("/login", app.loginHandler())
		auth.POST("/logout", app.logoutHandler())
		auth.GET("/me", middlewares.AuthMiddleware([]byte(app.cfg.JWTSecret)), app.meHandler())
	}

	products := r.Group("/products")
	{
		products.GET("", app.listProductsHandler())
		products.GET("/:product_code", app.getProductHandler())
		products.POST("", app.createProductHandler())
		products.PUT("/:product_code", app.updateProductHandler())
		products.DELETE("/:product_code", app.deleteProductHandler())
		products.POST("/upload", app.uploadProductsHandler())
	}

	regions := r.Group("/regions")
	{
		regions.GET("", app.listRegionsHandler())
		regions.GET("/:region_code", app.getRegionHandler())
		regions.POST("", app.createRegionHandler())
		regions.PUT("/:region_code", app.updateRegionHandler())
		regions.DELETE("/:region_code", app.deleteRegionHandler())
	}

	r.GET("/cities", app.listCitiesHandler())

	warehouses := r.Group("/warehouses")
	{
		warehouses.GET("", app.listWarehousesHandler())
		warehouses.GET("/:warehouse_code", app.getWarehouseHandler())
		warehouses.POST("", app.createWarehouseHandler())
		warehouses.PUT("/:warehouse_code", app.updateWarehouseHandler())
		warehouses.DELETE("/:warehouse_code", app.deleteWarehouseHandler())
	}

	inventory := r.Group("/inventory")
	{
		inventory.POST("/upload", app.uploadInventoryHandler())
		inventory.GET("/:warehouse_code", app.getWarehouseInventoryHandler())
	}

	r.GET("/joined/inventory", app.getJoinedInventoryHandler())

	consumption := r.Group("/average_consumption")
	{
		consumption.GET("", app.listConsumptionHandler())
		consumption.GET("/:id", app.getConsumptionHandler())
		consumption.POST("", app.createConsumptionHandler())
		consumption.PUT("/:id", app.updateConsumptionHandler())
		consumption.DELETE("/:id", app.deleteConsumptionHandler())
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}

// customErrorLogger logs only requests that recorded errors.
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}
