package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// enabling dependencies
	var repo *repository.Repository
	if cfg.BlacklistBackend == "redis" {
		repo = repository.NewRepositoryWithRedisBlacklist(db.DB, newRedisClient(cfg))
	} else {
		repo = repository.NewRepository(db.DB)
	}

	services := service.NewService(repo, cfg)

	return db, repo, services
}

func newRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	return client
}
