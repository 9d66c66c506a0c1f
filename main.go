package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/geosearch/backend/analyzer"
	"github.com/geosearch/backend/config"
	"github.com/geosearch/backend/logging"
	"github.com/geosearch/backend/metrics"
	"github.com/geosearch/backend/middleware"
	"github.com/geosearch/backend/service"
	"github.com/geosearch/backend/stats"
)

func loadEnv(log *logrus.Logger) {
	// Try .env.development first (for local development), then .env.
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Info("no .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	log := logging.New()
	loadEnv(log)
	setupGinMode()

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	statsStorage, err := stats.NewStorage(cfg.DataDir)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize stats storage")
	}
	defer statsStorage.Shutdown()

	collectors := metrics.New()

	svc, err := service.New(analyzer.DefaultScoringConfig(), cfg.CacheSize, statsStorage, collectors, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize analysis service")
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := gin.New()
	r.Use(middleware.ErrorHandler(log))
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/analyze", analyzeURL(svc, cfg, log))

		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, statsStorage.GetCurrentStats())
		})
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(collectors.Registry, promhttp.HandlerOpts{})))

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}

func analyzeURL(svc *service.Service, cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			URL string `json:"url" binding:"required,url"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid URL provided",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.AnalysisTimeout)
		defer cancel()

		report, err := svc.Analyze(ctx, request.URL)
		if err != nil {
			log.WithError(err).WithField("url", request.URL).Error("analysis failed")
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to analyze URL: " + err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, report)
	}
}
