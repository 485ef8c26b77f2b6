package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"

	"studybot/internal/app"
)

const devPassword = "devpassword"

// Runs the study bot against a throwaway ClickHouse container with the
// generations schema already applied, so a local run only needs the
// Telegram and Gemini credentials in the environment.
func main() {
	ctx := context.Background()

	log.Println("Starting disposable ClickHouse for the study bot...")

	container, err := clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:latest",
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(devPassword),
		clickhouse.WithDatabase("default"),
	)
	if err != nil {
		log.Fatalf("Failed to start ClickHouse container: %v", err)
	}

	defer func() {
		log.Println("Stopping ClickHouse container...")
		if err := container.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate container: %v", err)
		}
	}()

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "9000/tcp")
	if err != nil {
		log.Fatalf("Failed to get container port: %v", err)
	}

	log.Printf("ClickHouse started at %s:%s", host, port.Port())

	if err := createGenerationsTable(host, port.Port()); err != nil {
		log.Fatalf("Failed to create generations table: %v", err)
	}
	log.Println("Generations table ready")

	applyEnv(containerEnv(host, port.Port()))
	warnMissingCredentials()

	log.Println("Starting the study bot with the ClickHouse backend...")
	fmt.Println()

	application, err := app.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- application.Run()
	}()

	select {
	case <-sigChan:
		log.Println("Received shutdown signal")
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Application error: %v", err)
		}
	}
}

// containerEnv maps the container's coordinates onto the variables the
// bot's config layer reads
func containerEnv(host, port string) map[string]string {
	return map[string]string{
		"CLICKHOUSE_HOST":     host,
		"CLICKHOUSE_PORT":     port,
		"CLICKHOUSE_DATABASE": "default",
		"CLICKHOUSE_USER":     "default",
		"CLICKHOUSE_PASSWORD": devPassword,
		"CLICKHOUSE_USE_TLS":  "false",
		"USE_MOCK_DB":         "false",
		"WEBHOOK_MODE":        "false",
	}
}

func applyEnv(vars map[string]string) {
	for key, value := range vars {
		os.Setenv(key, value)
	}
	if os.Getenv("PORT") == "" {
		os.Setenv("PORT", "8080")
	}
}

// createGenerationsTable applies the same table the migrations create,
// directly, since the disposable container starts empty
func createGenerationsTable(host, port string) error {
	dsn := fmt.Sprintf("clickhouse://default:%s@%s:%s/default?dial_timeout=10s", devPassword, host, port)
	db, err := sql.Open("clickhouse", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS generations (
			user_id Int64,
			task String,
			raw_text String,
			result_text String,
			created_at DateTime
		) ENGINE = MergeTree()
		ORDER BY (created_at, user_id)
	`)
	return err
}

func warnMissingCredentials() {
	if os.Getenv("TELEGRAM_BOT_TOKEN") == "" {
		log.Println("⚠️  TELEGRAM_BOT_TOKEN not set. Please set it in your .env file or environment.")
		log.Println("   The bot will fail to start without a valid token.")
	}
	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Println("⚠️  GEMINI_API_KEY not set. Please set it in your .env file or environment.")
		log.Println("   The bot will fail to start without a Gemini key.")
	}
	if os.Getenv("OCR_SPACE_API_KEY") == "" {
		log.Println("OCR_SPACE_API_KEY not set. Image messages will be rejected; text and PDFs still work.")
	}
}
