package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users?q=...
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:username
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	profile, err := s.userService.GetProfile(c.Context(), username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
