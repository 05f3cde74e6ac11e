package service

import (
	"context"

	"github.com/tsainez/bobchat/internal/models"
	"github.com/tsainez/bobchat/internal/repository"
	"github.com/tsainez/bobchat/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Major     string
}

// Profile bundles a user with their posts ranked by like count.
type Profile struct {
	User  *models.User         `json:"user"`
	Posts []models.PostSummary `json:"posts"`
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{userRepo: userRepo, postRepo: postRepo}
}

// Register creates an account with a bcrypt-hashed password. A taken username
// surfaces as a conflict error.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:  in.Username,
		Password:  string(hashed),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Major:     in.Major,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. An unknown username and a
// wrong password both return the same permission error so the response does
// not leak which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewPermissionDeniedError("Invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewPermissionDeniedError("Invalid username or password")
	}
	return user, nil
}

// GetProfile returns the user along with their posts ranked by like count.
func (s *UserService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Posts: posts}, nil
}

// Search returns users whose username contains term, alphabetically.
func (s *UserService) Search(ctx context.Context, term string) ([]models.User, error) {
	return s.userRepo.Search(ctx, term)
}
