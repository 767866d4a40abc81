package audit

import "context"

// AuditUC cross-checks payments against the risk assessment log
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/arcpay/services/audit AuditUC
type AuditUC interface {
	Validate(ctx context.Context) ([]string, error)
}
