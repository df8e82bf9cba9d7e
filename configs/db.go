package configs

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/ger123348/NgopiBareng/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	gormCfg := &gorm.Config{
		Logger:         glogger.Default.LogMode(glogger.Warn),
		TranslateError: true, // ให้ unique violation กลายเป็น gorm.ErrDuplicatedKey
	}

	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), gormCfg)
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), gormCfg)
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect database")
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(45 * time.Minute)
	}

	db = database
}

func SetupDatabase() {
	// Migrate the schema
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Campus{}, &entity.Cafe{},
		&entity.CafeImage{}, &entity.CafeMenuItem{},
		&entity.Review{},
		&entity.Notification{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto migrate failed")
	}
}
