// Package stats provides pure aggregation functions over a blog collection.
// All functions are total and never mutate their input, so they are safe for
// unrestricted concurrent use.
package stats

import (
	"bloglist/internal/models"
)

// AuthorBlogs pairs an author with the number of blogs they wrote.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes pairs an author with the total likes across their blogs.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums likes over all blogs. An empty slice yields 0.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// slice. Ties resolve to the first blog in input order.
func FavoriteBlog(blogs []models.Blog) *models.Blog {
	if len(blogs) == 0 {
		return nil
	}

	favorite := &blogs[0]
	for i := 1; i < len(blogs); i++ {
		if blogs[i].Likes > favorite.Likes {
			favorite = &blogs[i]
		}
	}
	return favorite
}

// groupByAuthor accumulates a per-author value while recording the order in
// which authors are first seen. Author keys compare by exact string
// equality; "A" and "a" are distinct groups. The explicit order slice is
// what makes the tie-break rules below deterministic: map iteration order
// would not be.
func groupByAuthor(blogs []models.Blog, value func(models.Blog) int) ([]string, map[string]int) {
	order := make([]string, 0, len(blogs))
	totals := make(map[string]int, len(blogs))
	for _, blog := range blogs {
		if _, seen := totals[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		totals[blog.Author] += value(blog)
	}
	return order, totals
}

// MostBlogs returns the author with the most blogs and that count, or nil
// for an empty slice. Ties resolve to the author first seen in input order.
func MostBlogs(blogs []models.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}

	order, counts := groupByAuthor(blogs, func(models.Blog) int { return 1 })
	top := &AuthorBlogs{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > top.Blogs {
			top = &AuthorBlogs{Author: author, Blogs: counts[author]}
		}
	}
	return top
}

// MostLikes returns the author with the largest summed likes, or nil for an
// empty slice. Ties resolve to the author first seen in input order.
func MostLikes(blogs []models.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	order, likes := groupByAuthor(blogs, func(b models.Blog) int { return b.Likes })
	top := &AuthorLikes{Author: order[0], Likes: likes[order[0]]}
	for _, author := range order[1:] {
		if likes[author] > top.Likes {
			top = &AuthorLikes{Author: author, Likes: likes[author]}
		}
	}
	return top
}
