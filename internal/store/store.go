package store

import (
	"context"
	"errors"

	"github.com/RenoBuildCo/reno-marketplace/internal/models"
)

// ErrNotFound is returned by every read when the entity does not exist.
// Adapters translate their own absence signal into it so handlers never
// depend on backend error types.
var ErrNotFound = errors.New("not_found")

// Store is the single choke point for entity reads and writes. Handlers
// and usecases depend on it, never on a concrete backend, so the backing
// store is selected at startup (postgres or in-memory).
type Store interface {
	// -------- Users --------
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error

	// -------- Contractors --------
	GetContractor(ctx context.Context, id uint) (*models.Contractor, error)
	ListContractors(ctx context.Context) ([]models.Contractor, error)
	ListContractorsBySpecialty(ctx context.Context, specialty string) ([]models.Contractor, error)
	SearchContractors(ctx context.Context, query string) ([]models.Contractor, error)
	CreateContractor(ctx context.Context, c *models.Contractor) error
	UpdateContractorRating(ctx context.Context, id uint, rating float64, reviewCount int) error

	// -------- Projects --------
	GetProject(ctx context.Context, id uint) (*models.Project, error)
	ListProjectsByUser(ctx context.Context, userID uint) ([]models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) error
	UpdateProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id uint) error

	// -------- Quotes --------
	GetQuote(ctx context.Context, id uint) (*models.Quote, error)
	ListQuotesByProject(ctx context.Context, projectID uint) ([]models.Quote, error)
	ListQuotesByContractor(ctx context.Context, contractorID uint) ([]models.Quote, error)
	ListQuotesForUser(ctx context.Context, userID uint) ([]models.Quote, error)
	CreateQuote(ctx context.Context, q *models.Quote) error
	UpdateQuote(ctx context.Context, q *models.Quote) error

	// -------- Reviews --------
	ListReviewsByContractor(ctx context.Context, contractorID uint) ([]models.Review, error)
	ListReviewsByUser(ctx context.Context, userID uint) ([]models.Review, error)
	CreateReview(ctx context.Context, r *models.Review) error

	// -------- Design inspirations --------
	GetDesignInspiration(ctx context.Context, id uint) (*models.DesignInspiration, error)
	ListDesignInspirationsByUser(ctx context.Context, userID uint) ([]models.DesignInspiration, error)
	CreateDesignInspiration(ctx context.Context, d *models.DesignInspiration) error
}
