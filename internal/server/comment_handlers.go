package server

import (
	"github.com/tsainez/bobchat/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, ok, errResp := parseID(c, "id")
	if !ok {
		return errResp
	}

	if err := s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    currentUserID(c),
		CommentID: id,
	}); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
