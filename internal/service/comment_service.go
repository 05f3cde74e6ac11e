package service

import (
	"context"

	"github.com/tsainez/bobchat/internal/authz"
	"github.com/tsainez/bobchat/internal/models"
	"github.com/tsainez/bobchat/internal/repository"
)

const maxCommentLen = 10000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID uint
	PostID uint
	Body   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Body) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		AuthorID: in.UserID,
		Body:     in.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the post's comments newest first. A missing post is
// NotFound, not an empty list.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.CommentSummary, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if err := requireOwner(in.UserID, comment, authz.ActionDelete); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, in.CommentID)
}
