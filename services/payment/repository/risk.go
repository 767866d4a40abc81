package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/arcpay/internal/pkg/models"
)

// RiskAssessmentRepo appends guardian assessments to postgres
type RiskAssessmentRepo struct {
	db *sqlx.DB
}

// NewRiskAssessmentRepository creates a postgres assessment log
func NewRiskAssessmentRepository(db *sqlx.DB) *RiskAssessmentRepo {
	return &RiskAssessmentRepo{db: db}
}

// Append inserts the assessment. Records are never updated.
func (r *RiskAssessmentRepo) Append(ctx context.Context, a *models.RiskAssessment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO risk_assessments (id, user_id, payment_id, request, features, model, verification, confirmed, created_at)
		VALUES (:id, :user_id, :payment_id, :request, :features, :model, :verification, :confirmed, :created_at)`, a)
	if err != nil {
		return fmt.Errorf("failed to append risk assessment: %w", err)
	}
	return nil
}

// List returns every assessment in insertion order
func (r *RiskAssessmentRepo) List(ctx context.Context) ([]*models.RiskAssessment, error) {
	var out []*models.RiskAssessment
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, user_id, payment_id, request, features, model, verification, confirmed, created_at
		FROM risk_assessments ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk assessments: %w", err)
	}
	return out, nil
}
