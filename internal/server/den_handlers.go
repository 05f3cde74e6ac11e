package server

import (
	"github.com/tsainez/bobchat/internal/models"
	"github.com/tsainez/bobchat/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetDens handles GET /api/dens?q=...
func (s *Server) GetDens(c *fiber.Ctx) error {
	dens, err := s.denService.ListDens(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dens)
}

// GetDen handles GET /api/dens/:id
func (s *Server) GetDen(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	den, err := s.denService.GetDen(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	// Annotate with the viewer's follow state when a session is present.
	following := false
	if userID, authed := s.optionalUserID(c); authed {
		following, err = s.denService.IsFollowing(c.Context(), id, userID)
		if err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"den":       den,
		"following": following,
	})
}

// CreateDen handles POST /api/dens
func (s *Server) CreateDen(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	den, err := s.denService.CreateDen(c.Context(), service.CreateDenInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(den)
}

// UpdateDen handles PUT /api/dens/:id
func (s *Server) UpdateDen(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	den, err := s.denService.UpdateDen(c.Context(), service.UpdateDenInput{
		UserID:      currentUserID(c),
		DenID:       id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(den)
}

// DeleteDen handles DELETE /api/dens/:id
func (s *Server) DeleteDen(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	if err := s.denService.DeleteDen(c.Context(), service.DeleteDenInput{
		UserID: currentUserID(c),
		DenID:  id,
	}); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetDenPosts handles GET /api/dens/:id/posts?q=...
func (s *Server) GetDenPosts(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	posts, err := s.postService.ListDenPosts(c.Context(), id, c.Query("q"))
	if err != nil {
		// A deleted den's listing sends the client back to the den index.
		if models.IsNotFound(err) {
			return respondRedirectError(c, err, "/api/dens")
		}
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// CreateDenPost handles POST /api/dens/:id/posts
func (s *Server) CreateDenPost(c *fiber.Ctx) error {
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

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID: currentUserID(c),
		DenID:  id,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// ToggleFollow handles POST /api/dens/:id/follow
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	state, err := s.denService.ToggleFollow(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"den_id": id,
		"state":  state,
	})
}
