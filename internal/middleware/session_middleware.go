package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// ViewerKey is the Locals key under which the resolved viewer is stored.
const ViewerKey = "viewer"

// Session keys for the authenticated user's identity.
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionEmail    = "email"
)

// Viewer is the identity resolved from the request's session. It is attached
// to the request context so handlers and templates never touch the session
// store directly.
type Viewer struct {
	UserID   string
	Username string
	Email    string
}

// LoadViewer resolves the session cookie into a Viewer and stores it in the
// request Locals. Requests without a valid session simply carry no viewer.
func LoadViewer(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Printf("Failed to load session: %v", err)
			return c.Next()
		}

		userID, _ := sess.Get(SessionUserID).(string)
		if userID != "" {
			username, _ := sess.Get(SessionUsername).(string)
			email, _ := sess.Get(SessionEmail).(string)
			c.Locals(ViewerKey, &Viewer{
				UserID:   userID,
				Username: username,
				Email:    email,
			})
		}

		return c.Next()
	}
}

// AuthRequired is a Fiber middleware that redirects unauthenticated requests
// to the login page. Protected pages are never cached.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")

		if ViewerFromCtx(c) == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// ViewerFromCtx returns the viewer attached by LoadViewer, or nil when the
// request is unauthenticated.
func ViewerFromCtx(c *fiber.Ctx) *Viewer {
	viewer, _ := c.Locals(ViewerKey).(*Viewer)
	return viewer
}
