package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/RenoBuildCo/reno-marketplace/internal/models"
)

// GormStore is the relational adapter backed by postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

// --------------------------------------------------
// Contractors
// --------------------------------------------------

func (s *GormStore) GetContractor(ctx context.Context, id uint) (*models.Contractor, error) {
	var c models.Contractor
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &c, nil
}

func (s *GormStore) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	var cs []models.Contractor
	if err := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *GormStore) ListContractorsBySpecialty(ctx context.Context, specialty string) ([]models.Contractor, error) {
	var cs []models.Contractor
	if err := s.db.WithContext(ctx).
		Where("? = ANY(specialties)", specialty).
		Order("id ASC").
		Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *GormStore) SearchContractors(ctx context.Context, query string) ([]models.Contractor, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var cs []models.Contractor
	if err := s.db.WithContext(ctx).
		Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(specialty) LIKE ? OR LOWER(location) LIKE ? OR LOWER(ARRAY_TO_STRING(specialties, ' ')) LIKE ?",
			like, like, like, like, like,
		).
		Order("id ASC").
		Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *GormStore) CreateContractor(ctx context.Context, c *models.Contractor) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *GormStore) UpdateContractorRating(ctx context.Context, id uint, rating float64, reviewCount int) error {
	return s.db.WithContext(ctx).
		Model(&models.Contractor{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       rating,
			"review_count": reviewCount,
		}).Error
}

// --------------------------------------------------
// Projects
// --------------------------------------------------

func (s *GormStore) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &p, nil
}

func (s *GormStore) ListProjectsByUser(ctx context.Context, userID uint) ([]models.Project, error) {
	var ps []models.Project
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *GormStore) CreateProject(ctx context.Context, p *models.Project) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *GormStore) UpdateProject(ctx context.Context, p *models.Project) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *GormStore) DeleteProject(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Quotes
// --------------------------------------------------

func (s *GormStore) GetQuote(ctx context.Context, id uint) (*models.Quote, error) {
	var q models.Quote
	if err := s.db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &q, nil
}

func (s *GormStore) ListQuotesByProject(ctx context.Context, projectID uint) ([]models.Quote, error) {
	var qs []models.Quote
	if err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&qs).Error; err != nil {
		return nil, err
	}
	return qs, nil
}

func (s *GormStore) ListQuotesByContractor(ctx context.Context, contractorID uint) ([]models.Quote, error) {
	var qs []models.Quote
	if err := s.db.WithContext(ctx).
		Where("contractor_id = ?", contractorID).
		Order("created_at DESC").
		Find(&qs).Error; err != nil {
		return nil, err
	}
	return qs, nil
}

func (s *GormStore) ListQuotesForUser(ctx context.Context, userID uint) ([]models.Quote, error) {
	var qs []models.Quote
	if err := s.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = quotes.project_id").
		Where("projects.user_id = ?", userID).
		Order("quotes.created_at DESC").
		Find(&qs).Error; err != nil {
		return nil, err
	}
	return qs, nil
}

func (s *GormStore) CreateQuote(ctx context.Context, q *models.Quote) error {
	return s.db.WithContext(ctx).Create(q).Error
}

func (s *GormStore) UpdateQuote(ctx context.Context, q *models.Quote) error {
	return s.db.WithContext(ctx).Save(q).Error
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (s *GormStore) ListReviewsByContractor(ctx context.Context, contractorID uint) ([]models.Review, error) {
	var rs []models.Review
	if err := s.db.WithContext(ctx).
		Where("contractor_id = ?", contractorID).
		Order("created_at DESC").
		Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *GormStore) ListReviewsByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	var rs []models.Review
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *GormStore) CreateReview(ctx context.Context, r *models.Review) error {
	return s.db.WithContext(ctx).Create(r).Error
}

// --------------------------------------------------
// Design inspirations
// --------------------------------------------------

func (s *GormStore) GetDesignInspiration(ctx context.Context, id uint) (*models.DesignInspiration, error) {
	var d models.DesignInspiration
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &d, nil
}

func (s *GormStore) ListDesignInspirationsByUser(ctx context.Context, userID uint) ([]models.DesignInspiration, error) {
	var ds []models.DesignInspiration
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ds).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

func (s *GormStore) CreateDesignInspiration(ctx context.Context, d *models.DesignInspiration) error {
	return s.db.WithContext(ctx).Create(d).Error
}

// Compile-time check
var _ Store = (*GormStore)(nil)
