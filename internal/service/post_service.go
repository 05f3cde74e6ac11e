package service

import (
	"context"

	"github.com/tsainez/bobchat/internal/authz"
	"github.com/tsainez/bobchat/internal/cache"
	"github.com/tsainez/bobchat/internal/engagement"
	"github.com/tsainez/bobchat/internal/models"
	"github.com/tsainez/bobchat/internal/repository"
	"github.com/tsainez/bobchat/internal/validation"
)

type PostService struct {
	postRepo repository.PostRepository
	denRepo  repository.DenRepository
	likes    *engagement.Toggler
}

type CreatePostInput struct {
	UserID uint
	DenID  uint
	Title  string
	Body   string
}

type UpdatePostInput struct {
	UserID uint
	PostID uint
	Title  string
	Body   string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, denRepo repository.DenRepository, likes *engagement.Toggler) *PostService {
	return &PostService{postRepo: postRepo, denRepo: denRepo, likes: likes}
}

// CreatePost publishes a post into a den. The den must exist; a dangling den
// id is NotFound, not a silent insert.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if _, err := s.denRepo.GetByID(ctx, in.DenID); err != nil {
		return nil, err
	}

	post := &models.Post{
		DenID:    in.DenID,
		AuthorID: in.UserID,
		Title:    in.Title,
		Body:     in.Body,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	cache.InvalidateDen(ctx, in.DenID)
	cache.InvalidateStats(ctx)
	return post, nil
}

// GetPost returns the annotated post summary including its live like count.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.PostSummary, error) {
	return s.postRepo.Summary(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(in.UserID, post, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validation.ValidatePostTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post.Title = in.Title
	post.Body = in.Body
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	cache.InvalidatePost(ctx, post.ID, post.DenID)
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if err := requireOwner(in.UserID, post, authz.ActionDelete); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, in.PostID); err != nil {
		return err
	}

	cache.InvalidatePost(ctx, post.ID, post.DenID)
	cache.InvalidateStats(ctx)
	return nil
}

// ListDenPosts returns a den's posts ranked by like count. The den's
// existence is checked first so a bad id reads as NotFound rather than an
// empty listing.
func (s *PostService) ListDenPosts(ctx context.Context, denID uint, term string) ([]models.PostSummary, error) {
	if _, err := s.denRepo.GetByID(ctx, denID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByDen(ctx, denID, term)
}

// ToggleLike flips the (post, user) like pair and returns the resulting
// state along with the post's updated like count.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID uint) (engagement.State, int64, error) {
	state, err := s.likes.Toggle(ctx, postID, userID)
	if err != nil {
		return "", 0, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err == nil {
		cache.InvalidatePost(ctx, postID, post.DenID)
	}

	count, err := s.postRepo.LikeCount(ctx, postID)
	if err != nil {
		return state, 0, err
	}
	return state, count, nil
}
