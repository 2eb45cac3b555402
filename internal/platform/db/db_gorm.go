package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	articleentity "blog_backend/internal/feature/articles/domain/entity"
	commententity "blog_backend/internal/feature/comments/domain/entity"
	messageentity "blog_backend/internal/feature/messages/domain/entity"
	userentity "blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/platform/config"
)

// Opener opens a gorm connection for the given DSN. It exists so the
// retry loop can be tested without a real database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps opening the connection until it succeeds or the
// timeout passes. Cloud environments often bring the database up after
// the application container.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to MySQL using the configured DSN and optionally runs
// the schema migrations.
func OpenDB(cfg *config.Config) *gorm.DB {
	db, err := ConnectWithRetry(cfg.DSN(), 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		log.Fatal(err)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Article, Comment, Message）
		if err := db.AutoMigrate(
			&userentity.User{},
			&articleentity.Article{},
			&commententity.Comment{},
			&messageentity.Message{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
