package seed

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/tsainez/bobchat/internal/models"

	"gorm.io/gorm"
)

// Options controls how much demo data Run generates.
type Options struct {
	Users          int
	Dens           int
	PostsPerDen    int
	CommentsPerDen int
}

// DefaultOptions is a dataset big enough to make every listing interesting
// without taking minutes to generate.
func DefaultOptions() Options {
	return Options{
		Users:          25,
		Dens:           8,
		PostsPerDen:    12,
		CommentsPerDen: 30,
	}
}

// Run populates the database with a connected mesh of users, dens, posts,
// comments, likes and follows.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return fmt.Errorf("seeding requires at least one user")
	}

	pick := func() *models.User {
		return users[rand.Intn(len(users))]
	}

	for i := 0; i < opts.Dens; i++ {
		den, err := f.CreateDen(pick())
		if err != nil {
			return fmt.Errorf("seeding dens: %w", err)
		}

		posts := make([]*models.Post, 0, opts.PostsPerDen)
		for j := 0; j < opts.PostsPerDen; j++ {
			post, err := f.CreatePost(den, pick())
			if err != nil {
				return fmt.Errorf("seeding posts: %w", err)
			}
			posts = append(posts, post)

			// Skewed like counts so rankings have spread, including posts
			// nobody liked.
			for k := rand.Intn(len(users)); k > 0; k-- {
				if err := f.LikePost(post, pick()); err != nil {
					return fmt.Errorf("seeding likes: %w", err)
				}
			}
		}

		for j := 0; j < opts.CommentsPerDen; j++ {
			if _, err := f.CreateComment(posts[rand.Intn(len(posts))], pick()); err != nil {
				return fmt.Errorf("seeding comments: %w", err)
			}
		}

		// Roughly a third of users follow each den.
		for _, user := range users {
			if rand.Intn(3) == 0 {
				if err := f.FollowDen(den, user); err != nil {
					return fmt.Errorf("seeding follows: %w", err)
				}
			}
		}
	}

	log.Printf("Seed complete: %d users, %d dens, ~%d posts",
		opts.Users, opts.Dens, opts.Dens*opts.PostsPerDen)
	return nil
}
