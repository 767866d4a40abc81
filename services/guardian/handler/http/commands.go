package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/middleware"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/internal/utils"
	"github.com/piresc/arcpay/services/guardian"
	"github.com/piresc/arcpay/services/intent"
	"github.com/piresc/arcpay/services/query"
)

const stockUnsupported = "Stock purchases are not supported"

// CommandRequest is the body of POST /v1/commands. Entities override what the classifier extracted.
type CommandRequest struct {
	UserID   string                `json:"userId"`
	Text     string                `json:"text"`
	Confirm  bool                  `json:"confirm"`
	Entities *models.PaymentIntent `json:"entities,omitempty"`
}

// CommandResponse carries the classified command and the outcome of its route
type CommandResponse struct {
	Command  *models.Command          `json:"command"`
	Decision *models.GuardianDecision `json:"decision,omitempty"`
	Answer   *models.QueryAnswer      `json:"answer,omitempty"`
	Analysis *models.AnalysisResult   `json:"analysis,omitempty"`
}

// CommandHandler classifies free-text commands and routes them
type CommandHandler struct {
	intentUC   intent.IntentUC
	guardianUC guardian.GuardianUC
	queryUC    query.QueryUC
}

// NewCommandHandler creates the command handler
func NewCommandHandler(intentUC intent.IntentUC, guardianUC guardian.GuardianUC, queryUC query.QueryUC) *CommandHandler {
	return &CommandHandler{
		intentUC:   intentUC,
		guardianUC: guardianUC,
		queryUC:    queryUC,
	}
}

// HandleCommand serves POST /v1/commands
func (h *CommandHandler) HandleCommand(c echo.Context) error {
	var req CommandRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		return utils.BadRequestResponse(c, "userId is required")
	}
	middleware.SetUserID(c, req.UserID)

	ctx := c.Request().Context()
	cmd, err := h.intentUC.Classify(ctx, req.UserID, req.Text)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to classify command", logger.String("user_id", req.UserID), logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	resp := CommandResponse{Command: cmd}
	switch {
	case cmd.Payment != nil:
		mergeEntities(cmd.Payment, req.Entities)
		cmd.Payment.Confirmed = req.Confirm

		decision, err := h.guardianUC.Evaluate(ctx, &models.GuardianRequest{
			UserID:   req.UserID,
			Intent:   cmd.Kind,
			Entities: *cmd.Payment,
			RawText:  cmd.RawText,
		})
		if err != nil {
			logger.WarnCtx(ctx, "Payment evaluation failed", logger.String("user_id", req.UserID), logger.Err(err))
			return utils.DomainErrorResponse(c, err)
		}
		if decision.PaymentID != "" {
			middleware.SetPaymentID(c, decision.PaymentID)
		}
		resp.Decision = decision
		return utils.SuccessResponse(c, http.StatusOK, decision.Reason, resp)

	case cmd.Analysis != nil:
		result, err := h.queryUC.Analyze(ctx, req.UserID, cmd.RawText, cmd.Analysis.Count)
		if err != nil {
			return utils.DomainErrorResponse(c, err)
		}
		resp.Analysis = result
		return utils.SuccessResponse(c, http.StatusOK, "Analysis complete", resp)

	case cmd.Stock != nil:
		return utils.SuccessResponse(c, http.StatusOK, stockUnsupported, resp)

	default:
		answer, err := h.queryUC.Answer(ctx, req.UserID, cmd.RawText)
		if err != nil {
			return utils.DomainErrorResponse(c, err)
		}
		resp.Answer = answer
		return utils.SuccessResponse(c, http.StatusOK, "Answered", resp)
	}
}

// mergeEntities copies the non-empty override fields onto pi
func mergeEntities(pi *models.PaymentIntent, override *models.PaymentIntent) {
	if override == nil {
		return
	}
	if override.Amount != nil {
		pi.Amount = override.Amount
	}
	if override.Currency != "" {
		pi.Currency = override.Currency
	}
	if override.RecipientID != "" {
		pi.RecipientID = override.RecipientID
	}
	if override.RecipientName != "" {
		pi.RecipientName = override.RecipientName
	}
	if override.RecipientAddress != "" {
		pi.RecipientAddress = override.RecipientAddress
	}
	if override.Schedule != nil {
		pi.Schedule = override.Schedule
	}
	if override.ScheduledTimestamp != nil {
		pi.ScheduledTimestamp = override.ScheduledTimestamp
	}
	if override.PaymentID != "" {
		pi.PaymentID = override.PaymentID
	}
}
