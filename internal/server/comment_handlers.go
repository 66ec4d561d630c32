package server

import (
	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /api/blogs/:id/comments. Comments are anonymous.
func (s *Server) AddComment(c *fiber.Ctx) error {
	blogID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.AddComment(c.Context(), blogID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}
