package repository

import (
	"context"
	"errors"

	"bloglist/internal/cache"
	"bloglist/internal/models"

	"gorm.io/gorm"
)

// BlogRepository defines persistence operations for blogs and their comments.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	ReplaceComments(ctx context.Context, blogID uint, contents []string) error
	AddComment(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a new BlogRepository implementation.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create inserts the blog inside a transaction that first asserts the owner
// row exists, so the blog and its owner linkage commit as one unit.
func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.Select("id").First(&owner, blog.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("user not found")
			}
			return models.NewInternalError(err)
		}
		if err := tx.Create(blog).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cache.InvalidateBlog(ctx, blog.ID)
	cache.InvalidateUser(ctx, blog.UserID)
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog

	err := cache.Aside(ctx, cache.BlogKey(id), &blog, cache.BlogTTL, func() error {
		fetchErr := r.db.WithContext(ctx).
			Preload("User").
			Preload("Comments", func(db *gorm.DB) *gorm.DB {
				return db.Order("comments.id ASC")
			}).
			First(&blog, id).Error
		if fetchErr != nil {
			if errors.Is(fetchErr, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("invalid blog")
			}
			return models.NewInternalError(fetchErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// List returns all blogs in creation order. The ordering is part of the
// contract: stats tie-breaks depend on a stable input order.
func (r *blogRepository) List(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog

	err := cache.Aside(ctx, cache.BlogsListKey, &blogs, cache.ListTTL, func() error {
		fetchErr := r.db.WithContext(ctx).
			Preload("User").
			Preload("Comments", func(db *gorm.DB) *gorm.DB {
				return db.Order("comments.id ASC")
			}).
			Order("blogs.id ASC").
			Find(&blogs).Error
		if fetchErr != nil {
			return models.NewInternalError(fetchErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Omit("Comments", "User").Save(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlog(ctx, blog.ID)
	return nil
}

// ReplaceComments swaps the full comment set of a blog in one transaction.
func (r *blogRepository) ReplaceComments(ctx context.Context, blogID uint, contents []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", blogID).Delete(&models.Comment{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		for i := range contents {
			comment := models.Comment{Content: contents[i], BlogID: blogID}
			if err := tx.Create(&comment).Error; err != nil {
				return models.NewInternalError(err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	cache.InvalidateBlog(ctx, blogID)
	return nil
}

func (r *blogRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlog(ctx, comment.BlogID)
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Blog{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlog(ctx, id)
	return nil
}
