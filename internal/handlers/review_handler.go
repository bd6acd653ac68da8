package handlers

import (
	"errors"
	"log"

	"ulasan/internal/middleware"
	"ulasan/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles the review feed, compose, and detail pages.
type ReviewHandler struct {
	reviewService *services.ReviewService
	validate      *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app. The compose
// routes sit behind the auth gate; /reviews/new is registered before
// /reviews/:id so it wins the match.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/", h.HandleFeed)
	router.Get("/reviews/new", authRequired, h.HandleComposeForm)
	router.Post("/reviews/new", authRequired, h.HandleSubmit)
	router.Get("/reviews/:id", h.HandleDetail)
}

// ReviewForm represents the compose form fields.
type ReviewForm struct {
	Rating  int    `form:"rating" validate:"required,min=1,max=5"`
	Comment string `form:"comment" validate:"required"`
}

// HandleFeed renders the review feed, newest first. A store failure renders
// a generic message in place of the list.
func (h *ReviewHandler) HandleFeed(c *fiber.Ctx) error {
	reviews, err := h.reviewService.List()
	if err != nil {
		log.Printf("Error loading review feed: %v", err)
		return render(c, "index", fiber.Map{
			"Title": "Reviews",
			"Error": "Could not load reviews, please try again later",
		})
	}

	return render(c, "index", fiber.Map{
		"Title":   "Reviews",
		"Reviews": reviews,
	})
}

// HandleComposeForm renders the compose page. Reached only through the auth
// gate.
func (h *ReviewHandler) HandleComposeForm(c *fiber.Ctx) error {
	return render(c, "review_new", fiber.Map{"Title": "Write a review"})
}

// HandleSubmit validates and persists a new review owned by the current
// viewer. Validation and store failures re-render the compose form and
// persist nothing.
func (h *ReviewHandler) HandleSubmit(c *fiber.Ctx) error {
	viewer := middleware.ViewerFromCtx(c)

	var form ReviewForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing review form: %v", err)
		return h.renderComposeError(c, form, "Invalid form submission")
	}

	if err := h.validate.Struct(form); err != nil {
		return h.renderComposeError(c, form, reviewErrorMessage(err.(validator.ValidationErrors)))
	}

	if _, err := h.reviewService.Create(viewer.UserID, form.Rating, form.Comment); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			return h.renderComposeError(c, form, "Rating must be between 1 and 5")
		case errors.Is(err, services.ErrEmptyComment):
			return h.renderComposeError(c, form, "Comment is required")
		default:
			log.Printf("Error creating review for user %s: %v", viewer.UserID, err)
			return h.renderComposeError(c, form, "Could not save your review, please try again")
		}
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleDetail renders a single review with its author. An unknown ID
// renders a not-found message, not an HTTP error page.
func (h *ReviewHandler) HandleDetail(c *fiber.Ctx) error {
	id := c.Params("id")

	review, err := h.reviewService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			return render(c, "review_detail", fiber.Map{
				"Title":    "Review not found",
				"NotFound": true,
			})
		}
		log.Printf("Error loading review %s: %v", id, err)
		return render(c, "review_detail", fiber.Map{
			"Title": "Review",
			"Error": "Could not load the review, please try again later",
		})
	}

	return render(c, "review_detail", fiber.Map{
		"Title":  "Review",
		"Review": review,
	})
}

// renderComposeError re-renders the compose form, keeping what the viewer
// typed.
func (h *ReviewHandler) renderComposeError(c *fiber.Ctx, form ReviewForm, message string) error {
	return render(c, "review_new", fiber.Map{
		"Title": "Write a review",
		"Error": message,
		"Form":  form,
	})
}

// reviewErrorMessage maps the first validation failure to a user-facing
// message.
func reviewErrorMessage(errs validator.ValidationErrors) string {
	switch errs[0].Field() {
	case "Rating":
		return "Rating must be between 1 and 5"
	case "Comment":
		return "Comment is required"
	}
	return "Invalid form submission"
}
