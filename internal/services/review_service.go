package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"ulasan/internal/models"
	"ulasan/internal/repositories"
)

// ReviewEventPublisher publishes review lifecycle events to the message
// broker. A nil publisher disables event publication.
type ReviewEventPublisher interface {
	PublishReviewCreated(payload map[string]interface{}) error
}

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	publisher  ReviewEventPublisher
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, publisher ReviewEventPublisher) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		publisher:  publisher,
	}
}

// Create validates and persists a new review owned by the given user. The
// comment is trimmed of surrounding whitespace before validation, so a
// whitespace-only comment is rejected as empty.
func (s *ReviewService) Create(userID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrEmptyComment
	}

	review := &models.Review{
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// Publish a review.created event. Publication is best-effort: a broker
	// failure never fails the request that created the review.
	if s.publisher != nil {
		payload := map[string]interface{}{
			"reviewID": review.ID,
			"userID":   review.UserID,
			"rating":   review.Rating,
		}
		if err := s.publisher.PublishReviewCreated(payload); err != nil {
			log.Printf("Warning: failed to publish review created event for review %s: %v", review.ID, err)
		}
	}

	return review, nil
}

// List retrieves all reviews with their authors, newest first.
func (s *ReviewService) List() ([]models.Review, error) {
	return s.reviewRepo.GetAll()
}

// Get retrieves a single review with its author by its ID.
func (s *ReviewService) Get(id string) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}
