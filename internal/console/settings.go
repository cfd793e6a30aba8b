package console

import (
	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/middleware"
)

// Settings shows the signed-in account and session controls.
func (p *Pages) Settings(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	return p.render(c, "settings", fiber.Map{
		"Title":     "Settings",
		"Active":    "settings",
		"Session":   sess,
		"SignedIn":  sess.CreatedAt,
		"ExpiresAt": sess.ExpiresAt,
	})
}
