package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetHome handles GET /api/home. An authenticated visitor gets their
// personalized feed; everyone else gets the newest posts plus site counters.
func (s *Server) GetHome(c *fiber.Ctx) error {
	if userID, authed := s.optionalUserID(c); authed {
		feed, err := s.feedService.Feed(c.Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"feed": feed})
	}

	page, err := s.feedService.Home(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.Feed(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}
