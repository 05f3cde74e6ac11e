package repository

import (
	"context"
	"errors"

	"github.com/tsainez/bobchat/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Delete(ctx context.Context, id uint) error
	ListByPost(ctx context.Context, postID uint) ([]models.CommentSummary, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Comment", id)
	}
	return nil
}

// ListByPost returns the post's comments newest first, annotated with the
// author's username.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]models.CommentSummary, error) {
	var comments []models.CommentSummary
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id AS comment_id, comments.post_id, comments.author_id, users.username, comments.body, comments.created_at").
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at DESC").
		Scan(&comments).Error
	return comments, err
}
