package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ger123348/NgopiBareng/configs"
	"github.com/ger123348/NgopiBareng/pkg/storage"
	"github.com/ger123348/NgopiBareng/routes"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()

	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}
	if err := configs.SeedCampuses(); err != nil {
		log.Fatal().Err(err).Msg("seed campuses failed")
	}

	// blob store สำหรับรูป
	var blobs storage.ObjectStore
	var err error
	switch cfg.StorageBackend {
	case "minio":
		blobs, err = storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	default:
		blobs, err = storage.NewDiskStore(cfg.StoragePath)
	}
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("init blob store failed")
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, blobs)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
