package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"purefarm/src/models"
)

type App struct {
	// DB
	DatabaseDSN string `envconfig:"DATABASE_DSN" required:"true"`
	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`
	// Payment gateway
	PaymentKeyID   string `envconfig:"PAYMENT_KEY_ID" required:"true"`
	PaymentSecret  string `envconfig:"PAYMENT_KEY_SECRET" required:"true"`
	PaymentBaseURL string `envconfig:"PAYMENT_BASE_URL" default:"https://api.razorpay.com/v1"`
	// SMTP
	SMTPHost  string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort  int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser  string `envconfig:"SMTP_USER"`
	SMTPPass  string `envconfig:"SMTP_PASS"`
	EmailFrom string `envconfig:"EMAIL_FROM" default:"PureFarm Market <orders@purefarm.local>"`
	// Uploads
	UploadDir string `envconfig:"UPLOAD_DIR" default:"./uploads"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

//ConnectDB opens the Postgres pool and migrates the storefront tables.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.UserProfile{},
		&models.UserRole{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.Delivery{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
