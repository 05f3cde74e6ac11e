package repository

import (
	"context"

	"github.com/tsainez/bobchat/internal/models"

	"gorm.io/gorm"
)

// StatsRepository exposes the site-wide counters shown to anonymous visitors.
type StatsRepository interface {
	Stats(ctx context.Context) (models.SiteStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Stats(ctx context.Context) (models.SiteStats, error) {
	var stats models.SiteStats
	err := r.db.WithContext(ctx).
		Raw("SELECT (SELECT COUNT(*) FROM users) AS users, (SELECT COUNT(*) FROM posts) AS posts").
		Scan(&stats).Error
	return stats, err
}
