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

type DenService struct {
	denRepo repository.DenRepository
	follows *engagement.Toggler
}

type CreateDenInput struct {
	UserID      uint
	Name        string
	Description string
}

type UpdateDenInput struct {
	UserID      uint
	DenID       uint
	Name        string
	Description string
}

type DeleteDenInput struct {
	UserID uint
	DenID  uint
}

func NewDenService(denRepo repository.DenRepository, follows *engagement.Toggler) *DenService {
	return &DenService{denRepo: denRepo, follows: follows}
}

func (s *DenService) CreateDen(ctx context.Context, in CreateDenInput) (*models.Den, error) {
	if err := validation.ValidateDenName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	den := &models.Den{
		Name:        in.Name,
		Description: in.Description,
		AuthorID:    in.UserID,
	}
	if err := s.denRepo.Create(ctx, den); err != nil {
		return nil, err
	}
	return den, nil
}

func (s *DenService) GetDen(ctx context.Context, id uint) (*models.Den, error) {
	return s.denRepo.GetByID(ctx, id)
}

// ListDens returns all dens, optionally filtered by a name substring.
func (s *DenService) ListDens(ctx context.Context, term string) ([]models.DenSummary, error) {
	return s.denRepo.List(ctx, term)
}

func (s *DenService) UpdateDen(ctx context.Context, in UpdateDenInput) (*models.Den, error) {
	den, err := s.denRepo.GetByID(ctx, in.DenID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(in.UserID, den, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validation.ValidateDenName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	den.Name = in.Name
	den.Description = in.Description
	if err := s.denRepo.Update(ctx, den); err != nil {
		return nil, err
	}

	cache.InvalidateDen(ctx, den.ID)
	return den, nil
}

// DeleteDen removes the den and all content inside it. Only the creator may
// delete.
func (s *DenService) DeleteDen(ctx context.Context, in DeleteDenInput) error {
	den, err := s.denRepo.GetByID(ctx, in.DenID)
	if err != nil {
		return err
	}
	if err := requireOwner(in.UserID, den, authz.ActionDelete); err != nil {
		return err
	}

	if err := s.denRepo.Delete(ctx, in.DenID); err != nil {
		return err
	}

	cache.InvalidateDen(ctx, in.DenID)
	cache.InvalidateStats(ctx)
	return nil
}

// ToggleFollow flips the (den, user) follow pair: following if absent,
// unfollowing if present.
func (s *DenService) ToggleFollow(ctx context.Context, denID, userID uint) (engagement.State, error) {
	return s.follows.Toggle(ctx, denID, userID)
}

// IsFollowing reports whether the user currently follows the den.
func (s *DenService) IsFollowing(ctx context.Context, denID, userID uint) (bool, error) {
	return s.follows.IsOn(ctx, denID, userID)
}
