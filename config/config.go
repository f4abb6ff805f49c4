package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lanchonete-app/backend/utils"
)

// InitDB opens the database described by the environment. DB_DRIVER selects
// mysql (default) or sqlite for local development.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}

	switch driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			envOrDefault("DB_HOST", "127.0.0.1"),
			envOrDefault("DB_PORT", "3306"),
			os.Getenv("DB_NAME"),
		)
		utils.InfoLogger.Printf("Connecting to mysql database %s@%s", os.Getenv("DB_NAME"), os.Getenv("DB_HOST"))
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		path := envOrDefault("DB_PATH", "lanchonete.db")
		utils.InfoLogger.Printf("Connecting to sqlite database %s", path)
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
