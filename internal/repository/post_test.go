package repository

import (
	"context"
	"testing"
	"time"

	"github.com/tsainez/bobchat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListByDen_RankedByLikes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	bob := createUser(t, db, "bob")
	alice := createUser(t, db, "alice")
	carol := createUser(t, db, "carol")
	den := createDen(t, db, "rockets", bob)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	popular := createPost(t, db, den, bob, "Launch day", base)
	middling := createPost(t, db, den, alice, "Engine test", base.Add(time.Hour))
	ignored := createPost(t, db, den, alice, "Paperwork", base.Add(2*time.Hour))

	likePost(t, db, popular, bob)
	likePost(t, db, popular, alice)
	likePost(t, db, popular, carol)
	likePost(t, db, middling, carol)

	posts, err := repo.ListByDen(ctx, den.ID, "")
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// Ordered by like count descending; the zero-like post is present with 0,
	// not dropped.
	assert.Equal(t, popular.ID, posts[0].PostID)
	assert.Equal(t, int64(3), posts[0].Likes)
	assert.Equal(t, middling.ID, posts[1].PostID)
	assert.Equal(t, int64(1), posts[1].Likes)
	assert.Equal(t, ignored.ID, posts[2].PostID)
	assert.Equal(t, int64(0), posts[2].Likes)

	for i := 1; i < len(posts); i++ {
		assert.GreaterOrEqual(t, posts[i-1].Likes, posts[i].Likes)
	}

	assert.Equal(t, "rockets", posts[0].DenName)
	assert.Equal(t, "bob", posts[0].Username)
}

func TestPostRepository_ListByDen_TiesBreakOnRecency(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	bob := createUser(t, db, "bob")
	den := createDen(t, db, "rockets", bob)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	older := createPost(t, db, den, bob, "older", base)
	newer := createPost(t, db, den, bob, "newer", base.Add(time.Hour))

	posts, err := repo.ListByDen(ctx, den.ID, "")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].PostID)
	assert.Equal(t, older.ID, posts[1].PostID)
}

func TestPostRepository_ListByDen_TitleFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	bob := createUser(t, db, "bob")
	den := createDen(t, db, "rockets", bob)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	createPost(t, db, den, bob, "Launch day", base)
	createPost(t, db, den, bob, "Engine test", base.Add(time.Minute))

	posts, err := repo.ListByDen(ctx, den.ID, "Launch")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Launch day", posts[0].Title)

	// A filter term matching nothing yields an empty listing, while an empty
	// term yields everything.
	posts, err = repo.ListByDen(ctx, den.ID, "zzz")
	require.NoError(t, err)
	assert.Empty(t, posts)

	posts, err = repo.ListByDen(ctx, den.ID, "")
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostRepository_Recent_NewestFirstWithLimit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	bob := createUser(t, db, "bob")
	den := createDen(t, db, "rockets", bob)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		createPost(t, db, den, bob, "post", base.Add(time.Duration(i)*time.Hour))
	}

	posts, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, posts, DefaultRecentLimit)

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].CreatedAt.Before(posts[i].CreatedAt))
	}
}

func TestPostRepository_Feed_FollowedDensOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	rockets := createDen(t, db, "rockets", alice)
	trains := createDen(t, db, "trains", alice)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	launch := createPost(t, db, rockets, bob, "Launch day", base)
	createPost(t, db, trains, bob, "Timetables", base.Add(time.Hour))

	require.NoError(t, db.Create(&models.Follow{DenID: rockets.ID, UserID: alice.ID}).Error)

	feed, err := repo.Feed(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, launch.ID, feed[0].PostID)
	assert.Equal(t, "Launch day", feed[0].Title)
	assert.Equal(t, "rockets", feed[0].DenName)
	assert.Equal(t, "bob", feed[0].Username)

	// Unfollowing removes the den's posts from the feed.
	require.NoError(t, db.Where("den_id = ? AND user_id = ?", rockets.ID, alice.ID).
		Delete(&models.Follow{}).Error)

	feed, err = repo.Feed(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestPostRepository_Summary_LikeCountTracksToggles(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	bob := createUser(t, db, "bob")
	den := createDen(t, db, "rockets", bob)
	post := createPost(t, db, den, bob, "Launch day", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	likePost(t, db, post, bob)
	summary, err := repo.Summary(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Likes)

	require.NoError(t, db.Where("post_id = ? AND user_id = ?", post.ID, bob.ID).
		Delete(&models.Like{}).Error)

	summary, err = repo.Summary(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Likes)

	count, err := repo.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPostRepository_Delete_RemovesChildren(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	bob := createUser(t, db, "bob")
	den := createDen(t, db, "rockets", bob)
	post := createPost(t, db, den, bob, "Launch day", time.Now().UTC())

	likePost(t, db, post, bob)
	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, AuthorID: bob.ID, Body: "nice"}).Error)

	require.NoError(t, repo.Delete(ctx, post.ID))

	var likes, comments int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likes).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Zero(t, likes)
	assert.Zero(t, comments)

	_, err := repo.GetByID(ctx, post.ID)
	assert.True(t, models.IsNotFound(err))
}

func TestPostRepository_Summary_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.Summary(context.Background(), 12345)
	assert.True(t, models.IsNotFound(err))
}
