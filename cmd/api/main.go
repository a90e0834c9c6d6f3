package main

import (
	"fmt"
	"net/http"
	"os"

	"biomass-report/internal/api/handlers"
	"biomass-report/internal/api/middleware"
	"biomass-report/internal/config"
	"biomass-report/internal/data"
	"biomass-report/internal/metrics"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to read .env")
	}

	production := os.Getenv("API_ENV") == "production"
	if production {
		log.SetHandler(json.New(os.Stderr))
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.SetHandler(text.New(os.Stderr))
	}

	cfg := config.Default()
	if path := os.Getenv("REPORT_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Fatal("failed to load config")
		}
		cfg = loaded
	}
	// API_PORT overrides the config file.
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}

	var results *data.ResultsClient
	if url := os.Getenv("RESULTS_URL"); url != "" {
		results = data.NewResultsClient(url, os.Getenv("RESULTS_API_KEY"))
		log.WithField("url", url).Info("results service configured")
	}
	cache := data.CacheFromEnv()
	if cache != nil {
		log.Warn("workbook cache enabled")
	}

	metrics.Register()

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	reportHandler := handlers.NewReportHandler(cfg.Report, results, cache)
	referenceHandler := handlers.NewReferenceHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/report", reportHandler.Report)
		api.POST("/summary", reportHandler.Summary)

		api.GET("/treatments", referenceHandler.ListTreatments)
		api.GET("/assumptions", referenceHandler.ListAssumptions)
		api.GET("/presets/:model", referenceHandler.GetPreset)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.WithFields(log.Fields{
		"addr":         addr,
		"years_to_run": cfg.Report.YearsToRun,
		"file_name":    cfg.Report.FileName,
	}).Info("starting API server")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
