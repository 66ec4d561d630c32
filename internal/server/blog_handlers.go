package server

import (
	"bloglist/internal/middleware"
	"bloglist/internal/models"
	"bloglist/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBlogs handles GET /api/blogs
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	blogs, err := s.blogService.ListBlogs(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(blogs)
}

// CreateBlog handles POST /api/blogs. AuthRequired runs first and stores
// the principal in locals.
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req service.CreateBlogInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.CreateBlog(c.Context(), userID, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

// UpdateBlog handles PUT /api/blogs/:id. Deliberately unauthenticated: the
// like button works for anonymous readers.
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	blogID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req service.UpdateBlogInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.UpdateBlog(c.Context(), blogID, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(blog)
}

// DeleteBlog handles DELETE /api/blogs/:id. The raw bearer token goes to
// the service, which resolves the principal and checks ownership itself.
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	blogID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.blogService.DeleteBlog(c.Context(), middleware.BearerToken(c), blogID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBlogStats handles GET /api/blogs/stats
func (s *Server) GetBlogStats(c *fiber.Ctx) error {
	summary, err := s.blogService.Stats(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summary)
}
