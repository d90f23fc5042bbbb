package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/secureform/signupd/internal/credential"
	"github.com/secureform/signupd/internal/handler"
	"github.com/secureform/signupd/internal/storage/mongodb"
	"github.com/secureform/signupd/internal/user"
	"github.com/secureform/signupd/pkg/config"
	"github.com/secureform/signupd/pkg/httpserver"
	"github.com/secureform/signupd/pkg/logger"
	"github.com/secureform/signupd/pkg/mongo"
)

type appConfig struct {
	Log        logger.Config
	HTTP       httpserver.Config
	Mongo      mongo.Config
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(cfg.Log, logger.WithService("signupd"))

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("service stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	db, err := mongo.NewDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	store := mongodb.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		return err
	}

	svc := user.NewService(store,
		user.WithHasher(credential.NewHasher(cfg.BcryptCost)),
		user.WithLogger(log),
	)

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, handler.New(svc, log).Router())
}
