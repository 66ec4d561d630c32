// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"bloglist/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumBlogs    int
	ShouldClean bool
}

// SeedPassword is the plaintext password every seeded user gets, so
// development logins work without looking anything up.
const SeedPassword = "salainen"

// Seed populates the database with fake development data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d blogs...", opts.NumUsers, opts.NumBlogs)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	blogs, err := createBlogs(db, users, opts.NumBlogs)
	if err != nil {
		return fmt.Errorf("failed to create blogs: %w", err)
	}
	log.Printf("✓ %d blogs created", len(blogs))

	numComments, err := createComments(db, blogs)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", numComments)

	log.Println("🌱 Seeding complete")
	return nil
}

// clearData removes existing rows in FK order.
func clearData(db *gorm.DB) error {
	for _, table := range []string{"comments", "blogs", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	// One hash for every seeded user; hashing is the slow part.
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := models.User{
			Username:     fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Name:         gofakeit.Name(),
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createBlogs(db *gorm.DB, users []models.User, count int) ([]models.Blog, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("cannot create blogs without users")
	}

	// A small author pool so the stats endpoints have ties and repeats
	// to chew on.
	authors := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		authors = append(authors, gofakeit.Name())
	}

	blogs := make([]models.Blog, 0, count)
	for i := 0; i < count; i++ {
		owner := users[gofakeit.Number(0, len(users)-1)]
		blog := models.Blog{
			Title:  gofakeit.Sentence(gofakeit.Number(3, 7)),
			Author: authors[gofakeit.Number(0, len(authors)-1)],
			URL:    gofakeit.URL(),
			Likes:  gofakeit.Number(0, 50),
			UserID: owner.ID,
		}
		if err := db.Create(&blog).Error; err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, nil
}

func createComments(db *gorm.DB, blogs []models.Blog) (int, error) {
	total := 0
	for _, blog := range blogs {
		for i := 0; i < gofakeit.Number(0, 3); i++ {
			comment := models.Comment{
				Content: gofakeit.Sentence(gofakeit.Number(4, 12)),
				BlogID:  blog.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
