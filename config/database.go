package config

import (
	"log"
	"os"

	"github.com/braylark/ingyn-frontend-sub000/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func GetR2Config() *R2Config {
	return &R2Config{
		AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("CLOUDFLARE_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("CLOUDFLARE_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("CLOUDFLARE_BUCKET_NAME"),
		PublicURL:       os.Getenv("CLOUDFLARE_PUBLIC_URL"),
		Region:          "auto",
	}
}

// InitDB opens the session store. The default DSN is an in-memory SQLite
// database: nothing survives a restart, which is the intended lifecycle for
// session state here.
func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}

	// Auto Migrate models
	db.AutoMigrate(
		&models.Session{},
		&models.Account{},
		&models.AmbassadorProfile{},
		&models.Post{},
		&models.Gate{},
		&models.Notification{},
		&models.ConnectedAccount{},
	)

	return db
}
