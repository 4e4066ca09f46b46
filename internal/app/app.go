package app

import (
	"context"
	"fmt"
	"net/http"

	"kittens-api/internal/auth"
	"kittens-api/internal/config"
	"kittens-api/internal/db"
	breedsdomain "kittens-api/internal/domain/breeds"
	kittensdomain "kittens-api/internal/domain/kittens"
	ratingsdomain "kittens-api/internal/domain/ratings"
	userdomain "kittens-api/internal/domain/user"
	breedsrepo "kittens-api/internal/repository/postgres/breeds"
	kittensrepo "kittens-api/internal/repository/postgres/kittens"
	ratingsrepo "kittens-api/internal/repository/postgres/ratings"
	userrepo "kittens-api/internal/repository/postgres/user"
	"kittens-api/internal/transport/httpserver"
	"kittens-api/internal/transport/httpserver/handler"
	"kittens-api/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	application := &App{cfg: cfg, db: dbConn}

	if cfg.DB.AutoMigrate {
		log.Info("app: applying migrations")
		if err := db.Migrate(dbConn, log); err != nil {
			_ = application.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	breeds := breedsdomain.NewService(breedsrepo.NewPostgres(dbConn))
	kittens := kittensdomain.NewService(kittensrepo.NewPostgres(dbConn))
	ratings := ratingsdomain.NewService(ratingsrepo.NewPostgres(dbConn))
	users := userdomain.NewService(userrepo.NewPostgres(dbConn), auth.NewBcryptHasher(bcrypt.DefaultCost))
	tokens := auth.NewTokens(cfg.Auth)

	if len(cfg.BreedsSeed) > 0 {
		created, err := breeds.EnsureNames(ctx, cfg.BreedsSeed)
		if err != nil {
			_ = application.Close()
			return nil, fmt.Errorf("seed breeds: %w", err)
		}
		log.Info("app: breeds seeded", "created", created, "requested", len(cfg.BreedsSeed))
	}

	log.Info("app: initializing router")
	handlers := handler.New(breeds, kittens, ratings, users, tokens, log)
	router := httpserver.NewRouter(cfg, handlers, users, log)

	log.Info("app: initializing http server")
	application.httpServer = httpserver.New(cfg, router)

	return application, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
