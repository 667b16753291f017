package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"real-estate-intelligence/internal/analysis"
	"real-estate-intelligence/internal/config"
	"real-estate-intelligence/internal/database"
	"real-estate-intelligence/internal/enrich"
	"real-estate-intelligence/internal/handlers"
	"real-estate-intelligence/internal/history"
	"real-estate-intelligence/internal/ratelimit"
	"real-estate-intelligence/internal/scheduler"
	"real-estate-intelligence/internal/search"
	"real-estate-intelligence/internal/valuation"
	"real-estate-intelligence/internal/workbench"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := getEnv("CONFIG_PATH", "config/api_config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	// Initialize database based on configuration. An empty type runs the
	// service without persistence.
	var store database.Store
	switch appConfig.Database.Type {
	case "mysql":
		log.Println("Using MySQL with GORM")
		mysqlCfg := appConfig.Database.MySQL
		gormStore, err := database.NewGormStore(
			getEnvOrConfig(mysqlCfg.Host, "DB_HOST", "mysql"),
			portOrDefault(mysqlCfg.Port, 3306),
			getEnvOrConfig(mysqlCfg.User, "DB_USER", "intelligence_user"),
			getEnvOrConfig(mysqlCfg.Password, "DB_PASSWORD", "intelligence_pass"),
			getEnvOrConfig(mysqlCfg.Database, "DB_NAME", "intelligence_db"),
		)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		defer gormStore.Close()

		if err := gormStore.InitSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		store = gormStore
	case "postgres":
		log.Println("Using PostgreSQL")
		pgCfg := appConfig.Database.Postgres
		pgStore, err := database.NewPostgresStore(
			getEnvOrConfig(pgCfg.Host, "DB_HOST", "db"),
			portOrDefault(pgCfg.Port, 5432),
			getEnvOrConfig(pgCfg.User, "DB_USER", "intelligence_user"),
			getEnvOrConfig(pgCfg.Password, "DB_PASSWORD", "intelligence_pass"),
			getEnvOrConfig(pgCfg.Database, "DB_NAME", "intelligence_db"),
			pgCfg.SSLMode,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pgStore.Close()

		if err := pgStore.InitSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		store = pgStore
	default:
		log.Println("No database configured, running without persistence")
	}

	// Initialize Meilisearch
	var searchClient *search.SearchClient
	if appConfig.Search.Enabled {
		meilisearchHost := getEnvOrConfig(appConfig.Search.Meilisearch.Host, "MEILISEARCH_HOST", "http://meilisearch:7700")
		meilisearchKey := getEnvOrConfig(appConfig.Search.Meilisearch.APIKey, "MEILISEARCH_KEY", "masterKey123")

		searchClient = search.NewSearchClient(meilisearchHost, meilisearchKey)
		if err := searchClient.InitIndex(); err != nil {
			log.Printf("Warning: Failed to initialize search index: %v", err)
		}
	}

	// Deterministic pipeline. The random source is shared by the engine and
	// assembler across concurrent requests, so it must be the locked one.
	rng := valuation.NewLockedRand(time.Now().UnixNano())
	engine := valuation.NewEngine(rng, appConfig.Analysis.VarianceEnabled)
	assembler := analysis.NewAssembler(engine, rng, appConfig.Analysis.ComparableCount)

	// Optional enrichment. A missing API key degrades to unenriched output.
	var enricher *enrich.Adapter
	if appConfig.Enrichment.Enabled {
		advisor, err := enrich.NewAnthropicAdvisorFromEnv(appConfig.Enrichment.Model)
		if err != nil {
			log.Printf("Enrichment disabled: %v", err)
		} else {
			breaker := enrich.NewCircuitBreaker(
				appConfig.Enrichment.BreakerFailures,
				appConfig.Enrichment.GetBreakerReset(),
			)
			enricher = enrich.NewAdapter(advisor, appConfig.Enrichment.GetTimeout(), breaker)
			log.Printf("Enrichment enabled (model: %s)", appConfig.Enrichment.Model)
		}
	}

	// History over the store
	var historyService *history.Service
	if store != nil {
		historyService = history.NewService(store)
	}

	// Rate limiter for the analysis endpoints
	rateLimiter := ratelimit.NewRateLimiter(
		appConfig.RateLimit.RequestsPerMinute,
		appConfig.RateLimit.RequestsPerHour,
		appConfig.RateLimit.Enabled,
	)
	log.Printf("Rate limiter initialized: %d req/min, %d req/hour (enabled: %v)",
		appConfig.RateLimit.RequestsPerMinute,
		appConfig.RateLimit.RequestsPerHour,
		appConfig.RateLimit.Enabled,
	)

	// Daily maintenance scheduler
	var appScheduler *scheduler.Scheduler
	if store != nil {
		appScheduler = scheduler.NewScheduler(store, searchClient, appConfig)
		if err := appScheduler.Start(); err != nil {
			log.Printf("Warning: Failed to start scheduler: %v", err)
		}
		defer appScheduler.Stop()
	}

	// Workbench stores
	feedbackLog := workbench.NewFeedbackLog()
	approvals := workbench.NewApprovalWorkflow()

	analysisHandler := handlers.NewAnalysisHandler(assembler, enricher, historyService, searchClient, rateLimiter, appConfig)
	workbenchHandler := handlers.NewWorkbenchHandler(feedbackLog, approvals)

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// Routes
	r.GET("/", analysisHandler.Root)
	r.GET("/health", analysisHandler.Health)
	r.GET("/info", analysisHandler.Info)

	api := r.Group("/api")
	{
		api.POST("/analyze", analysisHandler.Analyze)
		api.POST("/sample-analyze", analysisHandler.SampleAnalyze)
		api.GET("/analyses/history", analysisHandler.History)

		api.GET("/search", analysisHandler.Search)
		api.POST("/search/reindex", analysisHandler.Reindex)

		api.GET("/ratelimit/stats", analysisHandler.RateLimitStats)
	}

	wb := r.Group("/api/workbench")
	{
		wb.POST("/feedback", workbenchHandler.SubmitFeedback)
		wb.GET("/feedback", workbenchHandler.GetFeedback)
		wb.GET("/feedback/summary", workbenchHandler.FeedbackSummary)
		wb.POST("/feedback/apply", workbenchHandler.ApplyFeedback)
		wb.DELETE("/feedback", workbenchHandler.ClearFeedback)

		wb.POST("/validate", workbenchHandler.ValidateAnalysis)

		wb.POST("/approvals", workbenchHandler.CreateApproval)
		wb.GET("/approvals", workbenchHandler.PendingApprovals)
		wb.GET("/approvals/stats", workbenchHandler.ApprovalStats)
		wb.DELETE("/approvals", workbenchHandler.ClearApprovals)
		wb.GET("/approvals/:id", workbenchHandler.ApprovalStatus)
		wb.POST("/approvals/:id/review", workbenchHandler.SubmitForReview)
		wb.POST("/approvals/:id/approve", workbenchHandler.Approve)
		wb.POST("/approvals/:id/reject", workbenchHandler.Reject)
		wb.POST("/approvals/:id/revisions", workbenchHandler.RequestRevisions)
	}

	// Admin API routes (requires authentication in production)
	if store != nil {
		adminHandler := handlers.NewAdminHandler(store, appScheduler, appConfig)

		admin := r.Group("/api/admin")
		{
			admin.GET("/stats", adminHandler.GetStats)
			admin.POST("/cleanup/run", adminHandler.RunCleanup)
			admin.GET("/cleanup/logs", adminHandler.GetDeleteLogs)
			admin.POST("/maintenance/trigger", adminHandler.TriggerMaintenance)
		}

		log.Println("Admin API routes registered at /api/admin/*")
	}

	port := getEnv("PORT", fmt.Sprintf("%d", appConfig.Server.Port))
	log.Printf("Server starting on port %s", port)
	if err := r.Run(appConfig.Server.Host + ":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrConfig returns config value if set, otherwise falls back to
// environment variable, then default
func getEnvOrConfig(configValue, envKey, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, defaultValue)
}

func portOrDefault(port, fallback int) int {
	if port > 0 {
		return port
	}
	return fallback
}
