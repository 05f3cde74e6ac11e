package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tsainez/bobchat/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory SQLite database so store-level
// properties (unique pairs, cascades, ranking) run against real constraints.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Den{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createDen(t *testing.T, db *gorm.DB, name string, author models.User) models.Den {
	t.Helper()
	den := models.Den{Name: name, AuthorID: author.ID}
	require.NoError(t, db.Create(&den).Error)
	return den
}

func createPost(t *testing.T, db *gorm.DB, den models.Den, author models.User, title string, createdAt time.Time) models.Post {
	t.Helper()
	post := models.Post{
		DenID:     den.ID,
		AuthorID:  author.ID,
		Title:     title,
		Body:      "body of " + title,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func likePost(t *testing.T, db *gorm.DB, post models.Post, user models.User) {
	t.Helper()
	require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error)
}
