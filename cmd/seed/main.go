// Command seed populates a development database with demo data.
package main

import (
	"flag"
	"log"

	"github.com/tsainez/bobchat/internal/config"
	"github.com/tsainez/bobchat/internal/database"
	"github.com/tsainez/bobchat/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.Dens, "dens", opts.Dens, "number of dens to create")
	flag.IntVar(&opts.PostsPerDen, "posts", opts.PostsPerDen, "posts per den")
	flag.IntVar(&opts.CommentsPerDen, "comments", opts.CommentsPerDen, "comments per den")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
