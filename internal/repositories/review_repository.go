package repositories

import "ulasan/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	// GetAll returns every review with its author resolved, newest first.
	GetAll() ([]models.Review, error)
	// GetByID returns a single review with its author resolved.
	GetByID(id string) (*models.Review, error)
}
