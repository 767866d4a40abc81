package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/arcpay/internal/utils"
	"github.com/piresc/arcpay/services/audit"
)

// ValidationResponse is the body of POST /v1/system/validate
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// AuditHandler exposes the sync validator
type AuditHandler struct {
	auditUC audit.AuditUC
}

// NewAuditHandler creates the audit handler
func NewAuditHandler(auditUC audit.AuditUC) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// Validate serves POST /v1/system/validate
func (h *AuditHandler) Validate(c echo.Context) error {
	issues, err := h.auditUC.Validate(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if issues == nil {
		issues = []string{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "", ValidationResponse{Valid: len(issues) == 0, Issues: issues})
}

// RegisterRoutes mounts the audit endpoints on g
func (h *AuditHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/system/validate", h.Validate)
}
