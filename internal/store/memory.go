package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/RenoBuildCo/reno-marketplace/internal/models"
)

// MemoryStore is the document-style adapter: plain maps guarded by one
// RWMutex, ids handed out from per-collection counters. Nothing survives
// a restart. Referential existence is not enforced here; handlers and
// usecases check it before writing.
type MemoryStore struct {
	mu sync.RWMutex

	users        map[uint]models.User
	contractors  map[uint]models.Contractor
	projects     map[uint]models.Project
	quotes       map[uint]models.Quote
	reviews      map[uint]models.Review
	inspirations map[uint]models.DesignInspiration

	nextUser        uint
	nextContractor  uint
	nextProject     uint
	nextQuote       uint
	nextReview      uint
	nextInspiration uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[uint]models.User),
		contractors:  make(map[uint]models.Contractor),
		projects:     make(map[uint]models.Project),
		quotes:       make(map[uint]models.Quote),
		reviews:      make(map[uint]models.Review),
		inspirations: make(map[uint]models.DesignInspiration),

		nextUser:        1,
		nextContractor:  1,
		nextProject:     1,
		nextQuote:       1,
		nextReview:      1,
		nextInspiration: 1,
	}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *MemoryStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	u.ID = s.nextUser
	s.nextUser++
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = *u
	return nil
}

// --------------------------------------------------
// Contractors
// --------------------------------------------------

func (s *MemoryStore) GetContractor(ctx context.Context, id uint) (*models.Contractor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contractors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cs := make([]models.Contractor, 0, len(s.contractors))
	for _, c := range s.contractors {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
	return cs, nil
}

func (s *MemoryStore) ListContractorsBySpecialty(ctx context.Context, specialty string) ([]models.Contractor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cs []models.Contractor
	for _, c := range s.contractors {
		for _, sp := range c.Specialties {
			if sp == specialty {
				cs = append(cs, c)
				break
			}
		}
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
	return cs, nil
}

func (s *MemoryStore) SearchContractors(ctx context.Context, query string) ([]models.Contractor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))

	var cs []models.Contractor
	for _, c := range s.contractors {
		if contractorMatches(c, q) {
			cs = append(cs, c)
		}
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
	return cs, nil
}

func contractorMatches(c models.Contractor, q string) bool {
	if strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Description), q) ||
		strings.Contains(strings.ToLower(c.Specialty), q) ||
		strings.Contains(strings.ToLower(c.Location), q) {
		return true
	}
	for _, sp := range c.Specialties {
		if strings.Contains(strings.ToLower(sp), q) {
			return true
		}
	}
	return false
}

func (s *MemoryStore) CreateContractor(ctx context.Context, c *models.Contractor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c.ID = s.nextContractor
	s.nextContractor++
	c.CreatedAt = now
	c.UpdatedAt = now
	s.contractors[c.ID] = *c
	return nil
}

func (s *MemoryStore) UpdateContractorRating(ctx context.Context, id uint, rating float64, reviewCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contractors[id]
	if !ok {
		return ErrNotFound
	}
	c.Rating = rating
	c.ReviewCount = reviewCount
	c.UpdatedAt = time.Now()
	s.contractors[id] = c
	return nil
}

// --------------------------------------------------
// Projects
// --------------------------------------------------

func (s *MemoryStore) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) ListProjectsByUser(ctx context.Context, userID uint) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ps []models.Project
	for _, p := range s.projects {
		if p.UserID == userID {
			ps = append(ps, p)
		}
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
	return ps, nil
}

func (s *MemoryStore) CreateProject(ctx context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p.ID = s.nextProject
	s.nextProject++
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = "planning"
	}
	s.projects[p.ID] = *p
	return nil
}

func (s *MemoryStore) UpdateProject(ctx context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now()
	s.projects[p.ID] = *p
	return nil
}

func (s *MemoryStore) DeleteProject(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

// --------------------------------------------------
// Quotes
// --------------------------------------------------

func (s *MemoryStore) GetQuote(ctx context.Context, id uint) (*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &q, nil
}

func (s *MemoryStore) ListQuotesByProject(ctx context.Context, projectID uint) ([]models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var qs []models.Quote
	for _, q := range s.quotes {
		if q.ProjectID == projectID {
			qs = append(qs, q)
		}
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	return qs, nil
}

func (s *MemoryStore) ListQuotesByContractor(ctx context.Context, contractorID uint) ([]models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var qs []models.Quote
	for _, q := range s.quotes {
		if q.ContractorID == contractorID {
			qs = append(qs, q)
		}
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	return qs, nil
}

func (s *MemoryStore) ListQuotesForUser(ctx context.Context, userID uint) ([]models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make(map[uint]bool)
	for _, p := range s.projects {
		if p.UserID == userID {
			owned[p.ID] = true
		}
	}

	var qs []models.Quote
	for _, q := range s.quotes {
		if owned[q.ProjectID] {
			qs = append(qs, q)
		}
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	return qs, nil
}

func (s *MemoryStore) CreateQuote(ctx context.Context, q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	q.ID = s.nextQuote
	s.nextQuote++
	q.CreatedAt = now
	q.UpdatedAt = now
	if q.Status == "" {
		q.Status = "pending"
	}
	s.quotes[q.ID] = *q
	return nil
}

func (s *MemoryStore) UpdateQuote(ctx context.Context, q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotes[q.ID]; !ok {
		return ErrNotFound
	}
	q.UpdatedAt = time.Now()
	s.quotes[q.ID] = *q
	return nil
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (s *MemoryStore) ListReviewsByContractor(ctx context.Context, contractorID uint) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rs []models.Review
	for _, r := range s.reviews {
		if r.ContractorID == contractorID {
			rs = append(rs, r)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
	return rs, nil
}

func (s *MemoryStore) ListReviewsByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rs []models.Review
	for _, r := range s.reviews {
		if r.UserID == userID {
			rs = append(rs, r)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
	return rs, nil
}

func (s *MemoryStore) CreateReview(ctx context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextReview
	s.nextReview++
	r.CreatedAt = time.Now()
	s.reviews[r.ID] = *r
	return nil
}

// --------------------------------------------------
// Design inspirations
// --------------------------------------------------

func (s *MemoryStore) GetDesignInspiration(ctx context.Context, id uint) (*models.DesignInspiration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.inspirations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (s *MemoryStore) ListDesignInspirationsByUser(ctx context.Context, userID uint) ([]models.DesignInspiration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ds []models.DesignInspiration
	for _, d := range s.inspirations {
		if d.UserID == userID {
			ds = append(ds, d)
		}
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].ID < ds[j].ID })
	return ds, nil
}

func (s *MemoryStore) CreateDesignInspiration(ctx context.Context, d *models.DesignInspiration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = s.nextInspiration
	s.nextInspiration++
	d.CreatedAt = time.Now()
	s.inspirations[d.ID] = *d
	return nil
}

// Compile-time check
var _ Store = (*MemoryStore)(nil)
