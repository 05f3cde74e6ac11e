package repository

import (
	"context"
	"errors"

	"github.com/tsainez/bobchat/internal/models"

	"gorm.io/gorm"
)

// DenRepository defines the interface for den data operations.
type DenRepository interface {
	Create(ctx context.Context, den *models.Den) error
	GetByID(ctx context.Context, id uint) (*models.Den, error)
	Update(ctx context.Context, den *models.Den) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, term string) ([]models.DenSummary, error)
}

type denRepository struct {
	db *gorm.DB
}

// NewDenRepository creates a new den repository.
func NewDenRepository(db *gorm.DB) DenRepository {
	return &denRepository{db: db}
}

func (r *denRepository) Create(ctx context.Context, den *models.Den) error {
	if err := r.db.WithContext(ctx).Create(den).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("a den with that name already exists")
		}
		return err
	}
	return nil
}

func (r *denRepository) GetByID(ctx context.Context, id uint) (*models.Den, error) {
	var den models.Den
	if err := r.db.WithContext(ctx).Preload("Author").First(&den, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Den", id)
		}
		return nil, err
	}
	return &den, nil
}

func (r *denRepository) Update(ctx context.Context, den *models.Den) error {
	if err := r.db.WithContext(ctx).Save(den).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("a den with that name already exists")
		}
		return err
	}
	return nil
}

// Delete removes the den and everything hanging off it: likes and comments of
// its posts, the posts themselves, and follow rows. One transaction so a
// failed step leaves no dangling children.
func (r *denRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		postIDs := func() *gorm.DB {
			return tx.Table("posts").Select("id").Where("den_id = ?", id)
		}

		if err := tx.Where("post_id IN (?)", postIDs()).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN (?)", postIDs()).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("den_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("den_id = ?", id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Den{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Den", id)
		}
		return nil
	})
}

func (r *denRepository) List(ctx context.Context, term string) ([]models.DenSummary, error) {
	q := r.db.WithContext(ctx).
		Table("dens").
		Select("dens.id AS den_id, dens.name, dens.description, dens.author_id, users.username, dens.created_at").
		Joins("JOIN users ON users.id = dens.author_id").
		Order("dens.created_at DESC")
	if term != "" {
		q = q.Where("dens.name LIKE ?", "%"+term+"%")
	}

	var dens []models.DenSummary
	err := q.Scan(&dens).Error
	return dens, err
}
