package service

import (
	"context"
	"strings"
	"testing"

	"github.com/tsainez/bobchat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenService_CreateDen(t *testing.T) {
	t.Parallel()

	t.Run("blank name is invalid", func(t *testing.T) {
		t.Parallel()
		svc := NewDenService(noopDenRepo(), nil)
		_, err := svc.CreateDen(context.Background(), CreateDenInput{UserID: 1, Name: "   "})
		assertValidationError(t, err)
	})

	t.Run("overlong name is invalid", func(t *testing.T) {
		t.Parallel()
		svc := NewDenService(noopDenRepo(), nil)
		_, err := svc.CreateDen(context.Background(), CreateDenInput{UserID: 1, Name: strings.Repeat("n", 121)})
		assertValidationError(t, err)
	})

	t.Run("duplicate name surfaces as conflict", func(t *testing.T) {
		t.Parallel()
		denRepo := noopDenRepo()
		denRepo.createFn = func(_ context.Context, _ *models.Den) error {
			return models.NewConflictError("a den with that name already exists")
		}
		svc := NewDenService(denRepo, nil)
		_, err := svc.CreateDen(context.Background(), CreateDenInput{UserID: 1, Name: "rockets"})
		assert.True(t, models.IsConflict(err))
	})

	t.Run("success records the creator", func(t *testing.T) {
		t.Parallel()
		denRepo := noopDenRepo()
		denRepo.createFn = func(_ context.Context, d *models.Den) error {
			d.ID = 3
			return nil
		}
		svc := NewDenService(denRepo, nil)
		den, err := svc.CreateDen(context.Background(), CreateDenInput{
			UserID: 7, Name: "rockets", Description: "model rocketry",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(3), den.ID)
		assert.Equal(t, uint(7), den.AuthorID)
	})
}

func TestDenService_UpdateDen_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("non-creator cannot update", func(t *testing.T) {
		t.Parallel()
		denRepo := noopDenRepo()
		denRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Den, error) {
			return &models.Den{ID: 1, AuthorID: 10}, nil
		}
		svc := NewDenService(denRepo, nil)
		_, err := svc.UpdateDen(context.Background(), UpdateDenInput{UserID: 1, DenID: 1, Name: "new"})
		assertPermissionDenied(t, err)
	})

	t.Run("creator can rename", func(t *testing.T) {
		t.Parallel()
		denRepo := noopDenRepo()
		denRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Den, error) {
			return &models.Den{ID: 1, AuthorID: 1, Name: "old"}, nil
		}
		svc := NewDenService(denRepo, nil)
		den, err := svc.UpdateDen(context.Background(), UpdateDenInput{
			UserID: 1, DenID: 1, Name: "renamed", Description: "d",
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed", den.Name)
	})
}

func TestDenService_DeleteDen_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("non-creator is rejected and nothing is deleted", func(t *testing.T) {
		t.Parallel()
		denRepo := noopDenRepo()
		denRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Den, error) {
			return &models.Den{ID: 1, AuthorID: 10}, nil
		}
		deleted := false
		denRepo.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		svc := NewDenService(denRepo, nil)
		err := svc.DeleteDen(context.Background(), DeleteDenInput{UserID: 1, DenID: 1})
		assertPermissionDenied(t, err)
		assert.False(t, deleted)
	})

	t.Run("creator can delete", func(t *testing.T) {
		t.Parallel()
		denRepo := noopDenRepo()
		denRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Den, error) {
			return &models.Den{ID: 1, AuthorID: 1}, nil
		}
		svc := NewDenService(denRepo, nil)
		err := svc.DeleteDen(context.Background(), DeleteDenInput{UserID: 1, DenID: 1})
		assert.NoError(t, err)
	})
}
