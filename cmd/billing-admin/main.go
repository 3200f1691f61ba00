package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/billing-admin-service/internal/api"
	"github.com/hypernova-labs/billing-admin-service/internal/config"
	"github.com/hypernova-labs/billing-admin-service/internal/database"
	"github.com/hypernova-labs/billing-admin-service/internal/email"
	"github.com/hypernova-labs/billing-admin-service/internal/services"
	"github.com/hypernova-labs/billing-admin-service/internal/workflows"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Configurar logging
	logger := setupLogger(cfg)
	logger.Info("Starting Billing Admin Service...")

	// Configurar modo de Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar a la base de datos
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	// Conectar a Redis
	redis, err := database.ConnectRedis(cfg)
	if err != nil {
		logger.Warnf("Error connecting to Redis: %v", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	// Inicializar cliente de almacenamiento
	var storageClient *database.StorageClient
	if cfg.Storage.Endpoint != "" && cfg.Storage.AccessKeyID != "" && cfg.Storage.SecretAccessKey != "" {
		storageClient, err = database.NewStorageClient(&cfg.Storage, logger)
		if err != nil {
			logger.Warnf("Error initializing storage client: %v", err)
			storageClient = nil
		} else {
			if err := storageClient.HealthCheck(); err != nil {
				logger.Warnf("Storage health check failed: %v", err)
			} else {
				logger.Info("Storage connection healthy")
			}
		}
	} else {
		logger.Warn("Storage credentials not provided, file uploads will not be available")
	}

	// Inicializar servicio de Resend
	var resendService *email.ResendService
	if cfg.Email.ResendAPIKey != "" {
		resendService = email.NewResendService(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Server.BaseURL, logger)
		logger.Info("Resend service initialized successfully")
	} else {
		logger.Warn("Resend API key not provided, email service will not be available")
	}

	// Inicializar cliente de Inngest
	inngestClient, err := workflows.NewInngestClient(cfg, logger)
	if err != nil {
		logger.Warnf("Error initializing Inngest client: %v", err)
		inngestClient = nil
	}

	// Inicializar servicios
	vendorService := services.NewVendorService(db, redis, cfg.Redis.SearchCacheTTL, logger)
	contactService := services.NewContactService(db, logger)
	formService := services.NewVendorFormService(db, logger)
	supplierService := services.NewSupplierService(db, logger)
	billingService := services.NewBillingService(db, storageClient, resendService, inngestClient, logger)

	// Inicializar API
	apiHandler := api.NewAPI(
		vendorService,
		contactService,
		formService,
		supplierService,
		billingService,
		logger,
	)

	// Configurar router
	router := setupRouter(apiHandler, cfg)

	// Crear servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Canal para señales de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Iniciar servidor en goroutine
	go func() {
		logger.Infof("Server starting on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	// Esperar señal de terminación
	<-quit
	logger.Info("Shutting down server...")

	// Contexto con timeout para shutdown graceful
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown graceful del servidor
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	// Configurar nivel de log
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configurar formato
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// setupRouter configura el router principal
func setupRouter(apiHandler *api.API, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware global
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(api.RequestID())

	// Middleware de CORS para desarrollo
	if cfg.IsDevelopment() {
		router.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}

			c.Next()
		})
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "billing-admin-service",
			"version":   "1.0.0",
		})
	})

	// API v1
	v1 := router.Group("/v1")
	{
		// Vendors
		vendors := v1.Group("/vendors")
		{
			vendors.GET("", apiHandler.ListVendors)
			vendors.POST("", apiHandler.CreateVendor)
			vendors.GET("/search", apiHandler.SearchVendors)
			vendors.PUT("/invoice-status", apiHandler.BulkUpdateVendorStatus)
			vendors.GET("/:id", apiHandler.GetVendor)
			vendors.PUT("/:id", apiHandler.UpdateVendor)
		}

		// Vendor contacts
		contacts := v1.Group("/vendor-contacts")
		{
			contacts.GET("", apiHandler.ListContacts)
			contacts.POST("", apiHandler.CreateContact)
			contacts.PUT("", apiHandler.UpdateContact)
			contacts.PUT("/status", apiHandler.BulkUpdateContactStatus)
			contacts.GET("/:id", apiHandler.GetContact)
			contacts.PUT("/:id", apiHandler.UpdateContact)
		}

		// Vendor forms
		forms := v1.Group("/vendor-forms")
		{
			forms.GET("", apiHandler.ListVendorForms)
			forms.POST("", apiHandler.CreateVendorForm)
			forms.GET("/:id", apiHandler.GetVendorForm)
			forms.PUT("/:id", apiHandler.UpdateVendorForm)
		}

		// Supplier info
		supplier := v1.Group("/supplier-info")
		{
			supplier.GET("", apiHandler.GetSupplierInfo)
			supplier.PUT("", apiHandler.SaveSupplierInfo)
		}

		// Billing invoices
		billing := v1.Group("/billing-invoices")
		{
			billing.GET("", apiHandler.ListBillingInvoices)
			billing.POST("", apiHandler.CreateBillingInvoice)
			billing.GET("/:id", apiHandler.GetBillingInvoice)
			billing.POST("/:id/send", apiHandler.SendBillingInvoice)
			billing.GET("/:id/logs", apiHandler.GetBillingLogs)
			billing.GET("/:id/files", apiHandler.ListInvoiceFiles)
			billing.POST("/:id/files", apiHandler.UploadInvoiceFile)
		}

		// Descarga de archivos
		files := v1.Group("/files")
		{
			files.GET("/:fileId", apiHandler.DownloadInvoiceFile)
		}
	}

	return router
}
