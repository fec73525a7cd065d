package config

import (
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"online-canteen-api/models"
)

// LoadEnv pulls a local .env file into the environment when present.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database and migrates the schema. The NowFunc
// is the clock every entity timestamp goes through; main passes time.Now,
// tests pass a fixed clock.
func InitDB(now func() time.Time) *gorm.DB {
	if now == nil {
		now = time.Now
	}

	path := GetEnv("DB_PATH", "online_canteen.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: now,
	})
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to connect to database")
	}

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	log.Info().Str("path", path).Msg("database connected and migrated")
	return db
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.CanteenOrder{},
	)
}
