package handlers

import (
	"errors"
	"log"

	"ulasan/internal/middleware"
	"ulasan/internal/models"
	"ulasan/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthHandler handles signup, login, and logout pages.
type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Store
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/signup", h.HandleSignupForm)
	router.Post("/signup", h.HandleSignup)
	router.Get("/login", h.HandleLoginForm)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
}

// SignupForm represents the signup form fields.
type SignupForm struct {
	Username        string `form:"username" validate:"required"`
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginForm represents the login form fields.
type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// HandleSignupForm renders the signup page.
func (h *AuthHandler) HandleSignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Title": "Sign up"})
}

// HandleSignup handles new user registration. Each failure re-renders the
// signup form with a specific message and preserves no partial state.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var form SignupForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing signup form: %v", err)
		return h.renderSignupError(c, "Invalid form submission")
	}

	if err := h.validate.Struct(form); err != nil {
		return h.renderSignupError(c, signupErrorMessage(err.(validator.ValidationErrors)))
	}

	user, err := h.authService.Register(form.Username, form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return h.renderSignupError(c, "That username is already taken")
		case errors.Is(err, services.ErrEmailTaken):
			return h.renderSignupError(c, "That email is already registered")
		default:
			log.Printf("Error registering user: %v", err)
			return h.renderSignupError(c, "Could not create your account, please try again")
		}
	}

	if err := h.establishSession(c, user); err != nil {
		log.Printf("Failed to create session for user %s: %v", user.ID, err)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleLoginForm renders the login page.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Title": "Log in"})
}

// HandleLogin authenticates a user and establishes a session. Unknown email
// and wrong password share one generic message.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var form LoginForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing login form: %v", err)
		return h.renderLoginError(c, "Invalid form submission")
	}

	if err := h.validate.Struct(form); err != nil {
		return h.renderLoginError(c, loginErrorMessage(err.(validator.ValidationErrors)))
	}

	user, err := h.authService.Authenticate(form.Email, form.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("Error during login for email %s: %v", form.Email, err)
		}
		return h.renderLoginError(c, "Invalid email or password")
	}

	if err := h.establishSession(c, user); err != nil {
		log.Printf("Failed to create session for user %s: %v", user.ID, err)
		return h.renderLoginError(c, "Could not log you in, please try again")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleLogout destroys the session and clears the cookie. Destruction is
// best-effort: the redirect to the login page happens regardless.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			log.Printf("Failed to destroy session: %v", err)
		}
	} else {
		log.Printf("Failed to load session on logout: %v", err)
	}

	return c.Redirect("/login", fiber.StatusSeeOther)
}

// establishSession regenerates the session and stores the user's identity
// in it.
func (h *AuthHandler) establishSession(c *fiber.Ctx, user *models.User) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	// Fresh session ID on every login so a pre-login cookie cannot be fixed.
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionUsername, user.Username)
	sess.Set(middleware.SessionEmail, user.Email)
	return sess.Save()
}

func (h *AuthHandler) renderSignupError(c *fiber.Ctx, message string) error {
	return render(c, "signup", fiber.Map{
		"Title": "Sign up",
		"Error": message,
	})
}

func (h *AuthHandler) renderLoginError(c *fiber.Ctx, message string) error {
	return render(c, "login", fiber.Map{
		"Title": "Log in",
		"Error": message,
	})
}

// signupErrorMessage maps the first validation failure to a user-facing
// message.
func signupErrorMessage(errs validator.ValidationErrors) string {
	e := errs[0]
	switch e.Field() {
	case "Username":
		return "Username is required"
	case "Email":
		return "Email is required"
	case "Password":
		return "Password is required"
	case "ConfirmPassword":
		if e.Tag() == "eqfield" {
			return "Passwords do not match"
		}
		return "Password confirmation is required"
	}
	return "Invalid form submission"
}

func loginErrorMessage(errs validator.ValidationErrors) string {
	switch errs[0].Field() {
	case "Email":
		return "Email is required"
	case "Password":
		return "Password is required"
	}
	return "Invalid form submission"
}
