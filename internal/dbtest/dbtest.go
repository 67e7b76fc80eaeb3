// Package dbtest opens migrated sqlite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Nascian/socialnetwork-backend/models"
	"github.com/Nascian/socialnetwork-backend/pkg/database"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a fresh database in t's temp dir with all tables migrated.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateUser inserts a user whose password is "password".
func CreateUser(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    "First " + username,
		LastName:     "Last " + username,
		BirthDate:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Alias:        username + ".alias",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// CreatePost inserts a post with an explicit creation time.
func CreatePost(t testing.TB, db *gorm.DB, author *models.User, message string, at time.Time) *models.Post {
	t.Helper()

	p := &models.Post{UserID: author.ID, Message: message, CreatedAt: at}
	if err := db.Omit("User", "Likes").Create(p).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}
