package handlers

import (
	"ulasan/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// render executes a page template with the shared view data every page
// needs: the current viewer and the CSRF token the forms must echo back.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["Viewer"]; !ok {
		if viewer := middleware.ViewerFromCtx(c); viewer != nil {
			data["Viewer"] = viewer
		}
	}
	token, _ := c.Locals("csrf").(string)
	data["CSRFToken"] = token
	return c.Render(name, data)
}
