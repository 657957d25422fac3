package di

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"mf_backend/internal/app/router"
	authadapters "mf_backend/internal/feature/auth/adapters"
	authhandler "mf_backend/internal/feature/auth/transport/handler"
	authusecase "mf_backend/internal/feature/auth/usecase"
	fundshandler "mf_backend/internal/feature/funds/transport/handler"
	fundsusecase "mf_backend/internal/feature/funds/usecase"
	savedfundsadapters "mf_backend/internal/feature/savedfunds/adapters"
	savedfundshandler "mf_backend/internal/feature/savedfunds/transport/handler"
	savedfundsusecase "mf_backend/internal/feature/savedfunds/usecase"
	"mf_backend/internal/platform/config"
	infradb "mf_backend/internal/platform/db"
	platformhandler "mf_backend/internal/platform/http/handler"
	"mf_backend/internal/platform/http/validation"
	jwtmw "mf_backend/internal/platform/jwt"
	infraredis "mf_backend/internal/platform/redis"
)

// App holds the wired HTTP engine and the resources it owns.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

// Close releases the database pool and the Redis client.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close db: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// NewApp reads the environment and wires every feature behind the router.
// It fails when JWT_SECRET is missing or the database is unreachable;
// Redis is optional.
func NewApp(ctx context.Context) (*App, error) {
	jwtCfg, err := jwtmw.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("jwt config: %w", err)
	}
	var authCfg authusecase.Config
	if err := config.ParseEnv(&authCfg); err != nil {
		return nil, err
	}
	var routerCfg router.Config
	if err := config.ParseEnv(&routerCfg); err != nil {
		return nil, err
	}
	if err := validation.Register(); err != nil {
		return nil, err
	}

	dbCfg, err := infradb.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	db, err := infradb.Open(dbCfg)
	if err != nil {
		return nil, err
	}
	app := &App{DB: db}

	redisCfg, err := infraredis.LoadConfig()
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	rdb, err := infraredis.NewRedisClient(ctx, redisCfg)
	if err != nil {
		slog.Warn("redis unavailable, continuing without it", "error", err)
		rdb = nil
	}
	app.Redis = rdb

	provider, err := NewSchemeProvider()
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	throttle, err := NewAuthThrottle(rdb)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	savedRepo := savedfundsadapters.NewSavedFundRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo,
		jwtmw.NewGenerator(jwtCfg.Secret, jwtCfg.Expiration),
		jwtmw.NewVerifier(jwtCfg.Secret),
		authCfg.HashCost,
	)
	savedUC := savedfundsusecase.NewSavedFundsUsecase(savedRepo)
	fundsUC := fundsusecase.NewFundsUsecase(provider)

	engine, err := router.NewRouter(router.Deps{
		Config:       routerCfg,
		Auth:         authhandler.NewAuthHandler(authUC),
		SavedFunds:   savedfundshandler.NewSavedFundsHandler(savedUC),
		Funds:        fundshandler.NewFundsHandler(fundsUC),
		Verifier:     authUC,
		AuthThrottle: throttle,
		HealthChecks: healthChecks(db, rdb),
	})
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Router = engine
	return app, nil
}

func healthChecks(db *gorm.DB, rdb *redis.Client) []platformhandler.Check {
	checks := []platformhandler.Check{{
		Name: "database",
		Run: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}
	if rdb != nil {
		checks = append(checks, platformhandler.Check{
			Name: "redis",
			Run:  func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	return checks
}
