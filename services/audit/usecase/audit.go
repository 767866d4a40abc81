package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/audit"
	"github.com/piresc/arcpay/services/payment"
)

const syncIssueSubject = "ArcPay sync issue"

type auditUC struct {
	payments    payment.PaymentRepo
	assessments payment.RiskAssessmentRepo
	notifier    payment.Notifier
}

// NewAuditUC creates the sync validator
func NewAuditUC(payments payment.PaymentRepo, assessments payment.RiskAssessmentRepo, notifier payment.Notifier) audit.AuditUC {
	return &auditUC{
		payments:    payments,
		assessments: assessments,
		notifier:    notifier,
	}
}

// Validate reports approved or executed payments with no assessment, and executed
// payments whose latest assessment did not allow execution. Any issue is sent to the admin.
func (uc *auditUC) Validate(ctx context.Context) ([]string, error) {
	assessments, err := uc.assessments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk assessments: %w", err)
	}
	payments, err := uc.payments.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	latest := make(map[string]*models.RiskAssessment, len(assessments))
	for _, a := range assessments {
		if a.PaymentID == "" {
			continue
		}
		if prev, ok := latest[a.PaymentID]; !ok || !a.CreatedAt.Before(prev.CreatedAt) {
			latest[a.PaymentID] = a
		}
	}

	var issues []string
	for _, p := range payments {
		if p.Status != models.PaymentStatusApproved && p.Status != models.PaymentStatusExecuted {
			continue
		}
		a, ok := latest[p.PaymentID]
		if !ok {
			issues = append(issues, fmt.Sprintf("Payment %s lacks risk assessment entry", p.PaymentID))
			continue
		}
		decision := a.Model.Decision
		if p.Status == models.PaymentStatusExecuted &&
			decision != models.DecisionApprove && decision != models.DecisionFlagForReview {
			issues = append(issues, fmt.Sprintf("Payment %s executed despite decision %s", p.PaymentID, decision))
		}
	}

	if len(issues) == 0 {
		logger.InfoCtx(ctx, "Sync validation passed", logger.Int("payments", len(payments)))
		return issues, nil
	}

	body := strings.Join(issues, "\n")
	logger.ErrorCtx(ctx, "Sync validation found issues", logger.Strings("issues", issues))
	if err := uc.notifier.NotifyAdmin(ctx, syncIssueSubject, body); err != nil {
		logger.WarnCtx(ctx, "Failed to notify admin", logger.Err(err))
	}
	return issues, nil
}
