package server

import (
	"github.com/tsainez/bobchat/internal/models"
	"github.com/tsainez/bobchat/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		if models.IsNotFound(err) {
			return respondRedirectError(c, err, "/api/home")
		}
		return respondError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID: currentUserID(c),
		PostID: id,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: currentUserID(c),
		PostID: id,
	}); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	state, likes, err := s.postService.ToggleLike(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"post_id": id,
		"state":   state,
		"likes":   likes,
	})
}

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	comments, err := s.commentService.ListComments(c.Context(), id)
	if err != nil {
		if models.IsNotFound(err) {
			return respondRedirectError(c, err, "/api/home")
		}
		return respondError(c, err)
	}

	return c.JSON(comments)
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID: currentUserID(c),
		PostID: id,
		Body:   req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
