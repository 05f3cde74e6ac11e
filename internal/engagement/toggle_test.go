package engagement

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/tsainez/bobchat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func seedPost(t *testing.T, db *gorm.DB) (author models.User, post models.Post) {
	t.Helper()

	author = models.User{Username: "bob", Password: "x"}
	require.NoError(t, db.Create(&author).Error)

	den := models.Den{Name: "rockets", AuthorID: author.ID}
	require.NoError(t, db.Create(&den).Error)

	post = models.Post{DenID: den.ID, AuthorID: author.ID, Title: "Launch day"}
	require.NoError(t, db.Create(&post).Error)
	return author, post
}

func TestToggle_FlipsStateEachCall(t *testing.T) {
	db := setupTestDB(t)
	user, post := seedPost(t, db)
	toggler := NewToggler(db, LikeRelation())
	ctx := context.Background()

	state, err := toggler.Toggle(ctx, post.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, StateOn, state)

	state, err = toggler.Toggle(ctx, post.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, StateOff, state)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestToggle_ParityOverManyCalls(t *testing.T) {
	db := setupTestDB(t)
	user, post := seedPost(t, db)
	toggler := NewToggler(db, LikeRelation())
	ctx := context.Background()

	// An even number of calls returns to the original state; an odd number
	// flips it.
	for i := 1; i <= 7; i++ {
		state, err := toggler.Toggle(ctx, post.ID, user.ID)
		require.NoError(t, err)
		if i%2 == 1 {
			assert.Equal(t, StateOn, state, "call %d", i)
		} else {
			assert.Equal(t, StateOff, state, "call %d", i)
		}
	}

	on, err := toggler.IsOn(ctx, post.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestToggle_ActorsAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	_, post := seedPost(t, db)
	toggler := NewToggler(db, LikeRelation())
	ctx := context.Background()

	alice := models.User{Username: "alice", Password: "x"}
	require.NoError(t, db.Create(&alice).Error)
	carol := models.User{Username: "carol", Password: "x"}
	require.NoError(t, db.Create(&carol).Error)

	_, err := toggler.Toggle(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	_, err = toggler.Toggle(ctx, post.ID, carol.ID)
	require.NoError(t, err)

	// Carol toggling off does not disturb Alice's like.
	state, err := toggler.Toggle(ctx, post.ID, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, StateOff, state)

	on, err := toggler.IsOn(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestToggle_FollowRelation(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedPost(t, db)
	toggler := NewToggler(db, FollowRelation())
	ctx := context.Background()

	var den models.Den
	require.NoError(t, db.First(&den).Error)

	state, err := toggler.Toggle(ctx, den.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, StateOn, state)

	state, err = toggler.Toggle(ctx, den.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, StateOff, state)
}

func TestToggle_MissingSubjectOrActor(t *testing.T) {
	db := setupTestDB(t)
	user, post := seedPost(t, db)
	toggler := NewToggler(db, LikeRelation())
	ctx := context.Background()

	_, err := toggler.Toggle(ctx, 9999, user.ID)
	assert.True(t, models.IsNotFound(err))

	_, err = toggler.Toggle(ctx, post.ID, 9999)
	assert.True(t, models.IsNotFound(err))

	// A failed toggle writes nothing.
	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
