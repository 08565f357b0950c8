package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"message-summary-etl/internal/config"
	"message-summary-etl/internal/database"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Seeds the MySQL source database with sample organizations, users and
// messages so the pipeline can be exercised locally:
//
//	go run ./scripts/seed_source.go
//
// Fixture file: scripts/seed_data/source_data.yaml

type OrganizationData struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type UserData struct {
	ID             int    `yaml:"id"`
	OrganizationID int    `yaml:"organization_id"`
	Name           string `yaml:"name"`
}

type MessageData struct {
	OrganizationID int    `yaml:"organization_id"`
	UserID         int    `yaml:"user_id"`
	Status         string `yaml:"status"`
	CreatedAt      string `yaml:"created_at"` // RFC 3339; empty seeds a NULL
}

type SeedData struct {
	Organizations []OrganizationData `yaml:"organizations"`
	Users         []UserData         `yaml:"users"`
	Messages      []MessageData      `yaml:"messages"`
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS organizations (
		id INT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INT PRIMARY KEY,
		organization_id INT NOT NULL,
		name VARCHAR(100) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (organization_id) REFERENCES organizations(id)
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		organization_id INT NOT NULL,
		user_id INT NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (organization_id) REFERENCES organizations(id),
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.OpenSource(cfg.SourceDSN())
	if err != nil {
		log.Fatal("Failed to open source database:", err)
	}
	defer db.Close()

	data, err := loadSeedData("scripts/seed_data/source_data.yaml")
	if err != nil {
		log.Fatal("Failed to load seed data:", err)
	}

	if err := seed(db, data); err != nil {
		log.Fatal("Failed to seed source database:", err)
	}

	log.Printf("Seeded %d organizations, %d users, %d messages",
		len(data.Organizations), len(data.Users), len(data.Messages))
}

func loadSeedData(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &data, nil
}

func seed(db *sql.DB, data *SeedData) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	for _, org := range data.Organizations {
		if _, err := db.Exec(
			"INSERT INTO organizations (id, name) VALUES (?, ?) ON DUPLICATE KEY UPDATE name = VALUES(name)",
			org.ID, org.Name,
		); err != nil {
			return fmt.Errorf("insert organization %d: %w", org.ID, err)
		}
	}

	for _, user := range data.Users {
		if _, err := db.Exec(
			"INSERT INTO users (id, organization_id, name) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE name = VALUES(name)",
			user.ID, user.OrganizationID, user.Name,
		); err != nil {
			return fmt.Errorf("insert user %d: %w", user.ID, err)
		}
	}

	for i, msg := range data.Messages {
		var createdAt interface{}
		if msg.CreatedAt != "" {
			t, err := time.Parse(time.RFC3339, msg.CreatedAt)
			if err != nil {
				return fmt.Errorf("message %d: bad created_at %q: %w", i, msg.CreatedAt, err)
			}
			createdAt = t
		}
		if _, err := db.Exec(
			"INSERT INTO messages (organization_id, user_id, status, created_at) VALUES (?, ?, ?, ?)",
			msg.OrganizationID, msg.UserID, msg.Status, createdAt,
		); err != nil {
			return fmt.Errorf("insert message %d: %w", i, err)
		}
	}

	return nil
}
