package repository

import (
	"context"
	"errors"

	"github.com/tsainez/bobchat/internal/models"

	"gorm.io/gorm"
)

// DefaultRecentLimit caps the site-wide recent listing shown on the landing page.
const DefaultRecentLimit = 5

// PostRepository defines the interface for post data operations, including
// the ranked and personalized listings.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Summary(ctx context.Context, id uint) (*models.PostSummary, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	ListByDen(ctx context.Context, denID uint, term string) ([]models.PostSummary, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]models.PostSummary, error)
	Recent(ctx context.Context, limit int) ([]models.PostSummary, error)
	Feed(ctx context.Context, userID uint) ([]models.PostSummary, error)
	LikeCount(ctx context.Context, postID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Author").Preload("Den").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Summary(ctx context.Context, id uint) (*models.PostSummary, error) {
	var summary models.PostSummary
	res := r.summarySelect(ctx).Where("posts.id = ?", id).Scan(&summary)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Post", id)
	}
	return &summary, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes the post along with its likes and comments in one
// transaction.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Post", id)
		}
		return nil
	})
}

// summarySelect builds the annotated post projection. The like count is a
// correlated subquery so posts with zero likes surface 0 instead of being
// dropped; ranking depends on that.
func (r *postRepository) summarySelect(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id AS post_id, posts.den_id, dens.name AS den_name, " +
			"posts.author_id, users.username, posts.title, posts.body, posts.created_at, " +
			"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes").
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("JOIN dens ON dens.id = posts.den_id")
}

// ListByDen returns the den's posts ranked by like count descending. Ties
// break on creation time descending. An optional term filters titles by
// parameter-bound substring match; empty term means no filter.
func (r *postRepository) ListByDen(ctx context.Context, denID uint, term string) ([]models.PostSummary, error) {
	q := r.summarySelect(ctx).Where("posts.den_id = ?", denID)
	if term != "" {
		q = q.Where("posts.title LIKE ?", "%"+term+"%")
	}

	var posts []models.PostSummary
	err := q.Order("likes DESC, posts.created_at DESC").Scan(&posts).Error
	return posts, err
}

// ListByAuthor returns one user's posts across all dens, ranked by like count.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.PostSummary, error) {
	var posts []models.PostSummary
	err := r.summarySelect(ctx).
		Where("posts.author_id = ?", authorID).
		Order("likes DESC, posts.created_at DESC").
		Scan(&posts).Error
	return posts, err
}

// Recent returns the newest posts site-wide, independent of viewer identity.
func (r *postRepository) Recent(ctx context.Context, limit int) ([]models.PostSummary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	var posts []models.PostSummary
	err := r.summarySelect(ctx).
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&posts).Error
	return posts, err
}

// Feed returns posts from every den the user follows, newest first.
func (r *postRepository) Feed(ctx context.Context, userID uint) ([]models.PostSummary, error) {
	followed := r.db.Table("follows").Select("den_id").Where("user_id = ?", userID)

	var posts []models.PostSummary
	err := r.summarySelect(ctx).
		Where("posts.den_id IN (?)", followed).
		Order("posts.created_at DESC").
		Scan(&posts).Error
	return posts, err
}

func (r *postRepository) LikeCount(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
