package service

import (
	"context"

	"github.com/tsainez/bobchat/internal/cache"
	"github.com/tsainez/bobchat/internal/models"
	"github.com/tsainez/bobchat/internal/repository"
)

type FeedService struct {
	postRepo  repository.PostRepository
	statsRepo repository.StatsRepository
}

// HomePage is the anonymous landing payload: newest posts plus site counters.
type HomePage struct {
	RecentPosts []models.PostSummary `json:"recent_posts"`
	Stats       models.SiteStats     `json:"stats"`
}

func NewFeedService(postRepo repository.PostRepository, statsRepo repository.StatsRepository) *FeedService {
	return &FeedService{postRepo: postRepo, statsRepo: statsRepo}
}

// Home builds the landing page for visitors without a session. Both halves
// are cache-aside; the cache going away only costs a database round trip.
func (s *FeedService) Home(ctx context.Context) (*HomePage, error) {
	page := &HomePage{}

	err := cache.CacheAside(ctx, cache.RecentPostsKey, &page.RecentPosts, cache.RecentPostsTTL, func() error {
		posts, err := s.postRepo.Recent(ctx, repository.DefaultRecentLimit)
		if err != nil {
			return err
		}
		page.RecentPosts = posts
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = cache.CacheAside(ctx, cache.StatsKey, &page.Stats, cache.StatsTTL, func() error {
		stats, err := s.statsRepo.Stats(ctx)
		if err != nil {
			return err
		}
		page.Stats = stats
		return nil
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// Feed returns posts from every den the user follows, newest first. A user
// following nothing gets an empty feed, not an error.
func (s *FeedService) Feed(ctx context.Context, userID uint) ([]models.PostSummary, error) {
	return s.postRepo.Feed(ctx, userID)
}

// Stats returns the site-wide user and post counters.
func (s *FeedService) Stats(ctx context.Context) (models.SiteStats, error) {
	return s.statsRepo.Stats(ctx)
}
