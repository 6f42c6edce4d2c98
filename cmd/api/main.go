package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"cybertcm/internal/catalog"
	"cybertcm/internal/config"
	"cybertcm/internal/db"
	apihttp "cybertcm/internal/http"
	"cybertcm/internal/repository"
	"cybertcm/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	resultRepo := repository.NewPgResultRepository(pool)
	credRepo := repository.NewPgAdminCredentialRepository(pool)

	loader := &catalog.ExcelLoader{
		EightfoldPath: cfg.CatalogPath,
		NinefoldPath:  cfg.WJWCatalogPath,
		Logger:        logger,
	}
	catalogs := catalog.NewCache(loader, logger)
	if err := catalogs.Reload(); err != nil {
		logger.Fatal("catalog load", zap.Error(err))
	}

	var (
		tokenStore  service.RefreshTokenStore
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
			redisClient = nil
		} else {
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, tokenStore)
	adminSvc := service.NewAdminService(credRepo, jwtSvc, logger)
	if err := adminSvc.EnsureDefault(ctx, cfg.AdminPassphrase); err != nil {
		logger.Fatal("admin seed", zap.Error(err))
	}

	scoringSvc := service.NewScoringService(catalogs, userRepo, resultRepo, logger)
	statsSvc := service.NewStatsService(resultRepo, redisClient, cfg.StatsCacheTTL, logger)
	exportSvc := service.NewExportService(resultRepo, userRepo)

	quizHandler := apihttp.NewQuestionnaireHandler(logger, scoringSvc, catalogs)
	adminHandler := apihttp.NewAdminHandler(logger, adminSvc, statsSvc, exportSvc, userRepo, catalogs)
	router := apihttp.NewRouter(logger, jwtSvc, quizHandler, adminHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
