package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/blog-platform-backend/api"
	"github.com/rpupo63/blog-platform-backend/auth"
	"github.com/rpupo63/blog-platform-backend/config"
	"github.com/rpupo63/blog-platform-backend/database"
	"github.com/rpupo63/blog-platform-backend/models"
	"github.com/rpupo63/blog-platform-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(c, "DB_HOST", "localhost"),
		config.GetString(c, "DB_USER", "postgres"),
		config.GetString(c, "DB_PASSWORD", ""),
		config.GetString(c, "DB_NAME", "blog"),
		config.GetString(c, "DB_PORT", "5432"),
		config.GetString(c, "DB_SSLMODE", "disable"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Blog{},
	); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	jwtSecret := config.GetString(c, "JWT_SECRET", "")
	if jwtSecret == "" {
		fmt.Println("JWT_SECRET is required. Exiting...")
		os.Exit(1)
	}
	tokenTTL := time.Duration(config.GetInt(c, "JWT_TTL_HOURS", 24*7)) * time.Hour
	j, err := auth.NewJWT(jwtSecret, tokenTTL)
	if err != nil {
		fmt.Printf("Error initializing JWT signer: %v\n", err)
		os.Exit(1)
	}

	var photos services.PhotoStore = services.RowPhotoStore{}
	if config.GetString(c, "PHOTO_STORE", "") == "s3" {
		s3Store, err := services.NewS3PhotoStore(context.Background(), services.S3Config{
			Region:          config.GetString(c, "S3_REGION", "us-east-1"),
			Bucket:          config.GetString(c, "S3_BUCKET", ""),
			Endpoint:        config.GetString(c, "S3_ENDPOINT", ""),
			AccessKeyID:     config.GetString(c, "S3_ACCESS_KEY", ""),
			SecretAccessKey: config.GetString(c, "S3_SECRET_KEY", ""),
			UsePathStyle:    config.GetBool(c, "S3_PATH_STYLE", false),
		})
		if err != nil {
			fmt.Printf("Error initializing S3 photo store: %v\n", err)
			os.Exit(1)
		}
		photos = s3Store
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, j, photos)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
