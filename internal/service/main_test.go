package service

import (
	"context"
	"testing"

	"github.com/tsainez/bobchat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, models.IsValidation(err), "expected validation error, got %v", err)
}

func assertPermissionDenied(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, models.IsPermissionDenied(err), "expected permission denied, got %v", err)
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint) (*models.Post, error)
	summaryFn      func(context.Context, uint) (*models.PostSummary, error)
	updateFn       func(context.Context, *models.Post) error
	deleteFn       func(context.Context, uint) error
	listByDenFn    func(context.Context, uint, string) ([]models.PostSummary, error)
	listByAuthorFn func(context.Context, uint) ([]models.PostSummary, error)
	recentFn       func(context.Context, int) ([]models.PostSummary, error)
	feedFn         func(context.Context, uint) ([]models.PostSummary, error)
	likeCountFn    func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Summary(ctx context.Context, id uint) (*models.PostSummary, error) {
	return s.summaryFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) ListByDen(ctx context.Context, denID uint, term string) ([]models.PostSummary, error) {
	return s.listByDenFn(ctx, denID, term)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint) ([]models.PostSummary, error) {
	return s.listByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) Recent(ctx context.Context, limit int) ([]models.PostSummary, error) {
	return s.recentFn(ctx, limit)
}
func (s *postRepoStub) Feed(ctx context.Context, userID uint) ([]models.PostSummary, error) {
	return s.feedFn(ctx, userID)
}
func (s *postRepoStub) LikeCount(ctx context.Context, postID uint) (int64, error) {
	return s.likeCountFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		summaryFn: func(_ context.Context, id uint) (*models.PostSummary, error) {
			return &models.PostSummary{PostID: id}, nil
		},
		updateFn: func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		listByDenFn: func(_ context.Context, _ uint, _ string) ([]models.PostSummary, error) {
			return nil, nil
		},
		listByAuthorFn: func(_ context.Context, _ uint) ([]models.PostSummary, error) { return nil, nil },
		recentFn:       func(_ context.Context, _ int) ([]models.PostSummary, error) { return nil, nil },
		feedFn:         func(_ context.Context, _ uint) ([]models.PostSummary, error) { return nil, nil },
		likeCountFn:    func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// denRepoStub is a stub for repository.DenRepository.
type denRepoStub struct {
	createFn  func(context.Context, *models.Den) error
	getByIDFn func(context.Context, uint) (*models.Den, error)
	updateFn  func(context.Context, *models.Den) error
	deleteFn  func(context.Context, uint) error
	listFn    func(context.Context, string) ([]models.DenSummary, error)
}

func (s *denRepoStub) Create(ctx context.Context, den *models.Den) error {
	return s.createFn(ctx, den)
}
func (s *denRepoStub) GetByID(ctx context.Context, id uint) (*models.Den, error) {
	return s.getByIDFn(ctx, id)
}
func (s *denRepoStub) Update(ctx context.Context, den *models.Den) error {
	return s.updateFn(ctx, den)
}
func (s *denRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *denRepoStub) List(ctx context.Context, term string) ([]models.DenSummary, error) {
	return s.listFn(ctx, term)
}

func noopDenRepo() *denRepoStub {
	return &denRepoStub{
		createFn:  func(_ context.Context, _ *models.Den) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Den, error) { return &models.Den{ID: id}, nil },
		updateFn:  func(_ context.Context, _ *models.Den) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
		listFn:    func(_ context.Context, _ string) ([]models.DenSummary, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	deleteFn     func(context.Context, uint) error
	listByPostFn func(context.Context, uint) ([]models.CommentSummary, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.CommentSummary, error) {
	return s.listByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		listByPostFn: func(_ context.Context, _ uint) ([]models.CommentSummary, error) { return nil, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	searchFn        func(context.Context, string) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Search(ctx context.Context, term string) ([]models.User, error) {
	return s.searchFn(ctx, term)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:  func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username}, nil
		},
		searchFn: func(_ context.Context, _ string) ([]models.User, error) { return nil, nil },
	}
}

// statsRepoStub is a stub for repository.StatsRepository.
type statsRepoStub struct {
	statsFn func(context.Context) (models.SiteStats, error)
}

func (s *statsRepoStub) Stats(ctx context.Context) (models.SiteStats, error) {
	return s.statsFn(ctx)
}
