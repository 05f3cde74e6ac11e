// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tsainez/bobchat/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// pastTime spreads timestamps over the last maxDays so listings have a
// realistic ordering to exercise.
func (f *Factory) pastTime(maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 90
	}
	return time.Now().
		Add(-time.Duration(f.rand.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(f.rand.Intn(24)) * time.Hour).
		Add(-time.Duration(f.rand.Intn(60)) * time.Minute)
}

// CreateUser constructs and persists a sample user. All seeded accounts share
// the password "password123" so any of them can be used to log in.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Password:  string(hashed),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Major:     gofakeit.JobTitle(),
		CreatedAt: f.pastTime(365),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateDen constructs and persists a den owned by the given user.
func (f *Factory) CreateDen(author *models.User, overrides ...func(*models.Den)) (*models.Den, error) {
	den := &models.Den{
		Name:        fmt.Sprintf("%s-%d", gofakeit.BuzzWord(), gofakeit.Number(10, 9999)),
		Description: gofakeit.Sentence(12),
		AuthorID:    author.ID,
		CreatedAt:   f.pastTime(180),
	}
	for _, override := range overrides {
		override(den)
	}

	if err := f.db.Create(den).Error; err != nil {
		return nil, err
	}
	return den, nil
}

// CreatePost constructs and persists a post by author inside den.
func (f *Factory) CreatePost(den *models.Den, author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		DenID:     den.ID,
		AuthorID:  author.ID,
		Title:     gofakeit.Sentence(5),
		Body:      gofakeit.Paragraph(1, 3, 8, "\n"),
		CreatedAt: f.pastTime(90),
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a comment on post.
func (f *Factory) CreateComment(post *models.Post, author *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    post.ID,
		AuthorID:  author.ID,
		Body:      gofakeit.Sentence(f.rand.Intn(20) + 3),
		CreatedAt: f.pastTime(30),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// LikePost records a like; an already-liked pair is absorbed silently so the
// caller can sample randomly without tracking pairs.
func (f *Factory) LikePost(post *models.Post, user *models.User) error {
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error
}

// FollowDen records a follow with the same duplicate absorption as LikePost.
func (f *Factory) FollowDen(den *models.Den, user *models.User) error {
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Follow{DenID: den.ID, UserID: user.ID}).Error
}
