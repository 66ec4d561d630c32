// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"strings"

	"bloglist/internal/cache"
	"bloglist/internal/models"
	"bloglist/internal/repository"
	"bloglist/internal/stats"
)

// PrincipalResolver turns a bearer token into the user ID it was issued for.
type PrincipalResolver interface {
	ResolvePrincipal(token string) (uint, error)
}

type BlogService struct {
	blogRepo repository.BlogRepository
	resolver PrincipalResolver
}

type CreateBlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// UpdateBlogInput carries a partial update. Nil fields are left untouched,
// a non-nil Comments pointer replaces the full comment set.
type UpdateBlogInput struct {
	Title    *string   `json:"title"`
	Author   *string   `json:"author"`
	URL      *string   `json:"url"`
	Likes    *int      `json:"likes"`
	Comments *[]string `json:"comments"`
}

// StatsSummary is the aggregate view computed over the whole blog list.
type StatsSummary struct {
	TotalBlogs   int                `json:"totalBlogs"`
	TotalLikes   int                `json:"totalLikes"`
	FavoriteBlog *models.Blog       `json:"favoriteBlog"`
	MostBlogs    *stats.AuthorBlogs `json:"mostBlogs"`
	MostLikes    *stats.AuthorLikes `json:"mostLikes"`
}

func NewBlogService(blogRepo repository.BlogRepository, resolver PrincipalResolver) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		resolver: resolver,
	}
}

const maxTitleLen = 300

func (s *BlogService) CreateBlog(ctx context.Context, userID uint, in CreateBlogInput) (*models.Blog, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("title too long (max 300 characters)")
	}
	if strings.TrimSpace(in.URL) == "" {
		return nil, models.NewValidationError("url is required")
	}

	likes := 0
	if in.Likes != nil {
		if *in.Likes < 0 {
			return nil, models.NewValidationError("likes must not be negative")
		}
		likes = *in.Likes
	}

	blog := &models.Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  likes,
		UserID: userID,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return s.blogRepo.GetByID(ctx, blog.ID)
}

func (s *BlogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.List(ctx)
}

func (s *BlogService) GetBlog(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

// DeleteBlog resolves the token itself because deletion is the one operation
// whose authorization depends on blog ownership, not just a valid principal.
func (s *BlogService) DeleteBlog(ctx context.Context, token string, blogID uint) error {
	userID, err := s.resolver.ResolvePrincipal(token)
	if err != nil {
		return err
	}

	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}

	if blog.UserID != userID {
		return models.NewForbiddenError("invalid user")
	}

	return s.blogRepo.Delete(ctx, blogID)
}

// UpdateBlog applies a partial update without requiring authentication.
// Anyone may bump likes or edit fields, matching the open like-button flow.
func (s *BlogService) UpdateBlog(ctx context.Context, blogID uint, in UpdateBlogInput) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, models.NewValidationError("title is required")
		}
		if len(*in.Title) > maxTitleLen {
			return nil, models.NewValidationError("title too long (max 300 characters)")
		}
		blog.Title = *in.Title
	}
	if in.Author != nil {
		blog.Author = *in.Author
	}
	if in.URL != nil {
		if strings.TrimSpace(*in.URL) == "" {
			return nil, models.NewValidationError("url is required")
		}
		blog.URL = *in.URL
	}
	if in.Likes != nil {
		if *in.Likes < 0 {
			return nil, models.NewValidationError("likes must not be negative")
		}
		blog.Likes = *in.Likes
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}

	if in.Comments != nil {
		if err := s.blogRepo.ReplaceComments(ctx, blogID, *in.Comments); err != nil {
			return nil, err
		}
	}

	return s.blogRepo.GetByID(ctx, blogID)
}

// AddComment appends an anonymous comment to an existing blog and returns
// the blog with its full comment list.
func (s *BlogService) AddComment(ctx context.Context, blogID uint, content string) (*models.Blog, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("comment content is required")
	}

	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return nil, err
	}

	comment := &models.Comment{Content: content, BlogID: blogID}
	if err := s.blogRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.blogRepo.GetByID(ctx, blogID)
}

// Stats aggregates the full blog list. The summary is cached briefly since
// every field derives from the same snapshot.
func (s *BlogService) Stats(ctx context.Context) (*StatsSummary, error) {
	var summary StatsSummary

	err := cache.Aside(ctx, cache.BlogsStatsKey, &summary, cache.StatsTTL, func() error {
		blogs, fetchErr := s.blogRepo.List(ctx)
		if fetchErr != nil {
			return fetchErr
		}
		summary = StatsSummary{
			TotalBlogs:   len(blogs),
			TotalLikes:   stats.TotalLikes(blogs),
			FavoriteBlog: stats.FavoriteBlog(blogs),
			MostBlogs:    stats.MostBlogs(blogs),
			MostLikes:    stats.MostLikes(blogs),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
