package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/arcpay/internal/pkg/models"
)

// MemoryStore implements the payment, user and assessment repositories in process.
// Every method holds one mutex, so a status update is atomic per record.
type MemoryStore struct {
	mu          sync.Mutex
	payments    map[string]*models.Payment
	order       []string
	users       map[string]*models.User
	assessments []*models.RiskAssessment
	now         func() time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		payments: make(map[string]*models.Payment),
		users:    make(map[string]*models.User),
		now:      time.Now,
	}
}

func clonePayment(p *models.Payment) *models.Payment {
	c := *p
	models.PaymentUpdate{
		ScheduledTimestamp: p.ScheduledTimestamp,
		TransactionID:      p.TransactionID,
		LastExecutedAt:     p.LastExecutedAt,
		FailureReason:      p.FailureReason,
	}.Apply(&c)
	return &c
}

// SaveUser stores a copy of u
func (s *MemoryStore) SaveUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *u
	s.users[u.UserID] = &c
	return nil
}

// GetUser returns (nil, nil) for unknown users
func (s *MemoryStore) GetUser(_ context.Context, userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

// List returns copies in insertion order. An empty userID lists every payment.
func (s *MemoryStore) List(_ context.Context, userID string) ([]*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Payment, 0, len(s.order))
	for _, id := range s.order {
		p := s.payments[id]
		if userID != "" && p.UserID != userID {
			continue
		}
		out = append(out, clonePayment(p))
	}
	return out, nil
}

// Get returns a copy of the payment or models.ErrPaymentNotFound
func (s *MemoryStore) Get(_ context.Context, paymentID string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, models.ErrPaymentNotFound
	}
	return clonePayment(p), nil
}

// Upsert stores a copy of p, replacing any record with the same id
func (s *MemoryStore) Upsert(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if _, ok := s.payments[p.PaymentID]; !ok {
		s.order = append(s.order, p.PaymentID)
	}
	s.payments[p.PaymentID] = clonePayment(p)
	return nil
}

// UpdateStatus applies the transition guard and update under the store lock
func (s *MemoryStore) UpdateStatus(_ context.Context, paymentID string, status models.PaymentStatus, update models.PaymentUpdate) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, models.ErrPaymentNotFound
	}
	if !models.CanTransition(p.Status, status) {
		return nil, fmt.Errorf("payment %s from %s to %s: %w", paymentID, p.Status, status, models.ErrIllegalTransition)
	}
	p.Status = status
	update.Apply(p)
	p.UpdatedAt = s.now().UTC()
	return clonePayment(p), nil
}

// Append records an assessment
func (s *MemoryStore) Append(_ context.Context, a *models.RiskAssessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now().UTC()
	}
	c := *a
	s.assessments = append(s.assessments, &c)
	return nil
}

// ListAssessments returns every assessment ordered by creation time
func (s *MemoryStore) ListAssessments(_ context.Context) ([]*models.RiskAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.RiskAssessment, len(s.assessments))
	for i, a := range s.assessments {
		c := *a
		out[i] = &c
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Assessments adapts the store to the RiskAssessmentRepo interface,
// whose List would otherwise collide with the payment List.
func (s *MemoryStore) Assessments() *MemoryAssessments {
	return &MemoryAssessments{store: s}
}

// MemoryAssessments is the assessment view of a MemoryStore
type MemoryAssessments struct {
	store *MemoryStore
}

// Append records an assessment
func (a *MemoryAssessments) Append(ctx context.Context, assessment *models.RiskAssessment) error {
	return a.store.Append(ctx, assessment)
}

// List returns every assessment
func (a *MemoryAssessments) List(ctx context.Context) ([]*models.RiskAssessment, error) {
	return a.store.ListAssessments(ctx)
}
