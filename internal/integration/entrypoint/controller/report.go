package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookmate/backend/internal/application/usecase/report"
	domainerror "github.com/bookmate/backend/internal/domain/error"
	"github.com/bookmate/backend/internal/integration/entrypoint/dto"
	"github.com/bookmate/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles profit and loss report endpoints.
type ReportController struct {
	profitLossUseCase  *report.GetProfitLossUseCase
	emailReportUseCase *report.EmailReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	profitLossUseCase *report.GetProfitLossUseCase,
	emailReportUseCase *report.EmailReportUseCase,
) *ReportController {
	return &ReportController{
		profitLossUseCase:  profitLossUseCase,
		emailReportUseCase: emailReportUseCase,
	}
}

// ProfitLoss handles GET /reports/pnl requests.
func (c *ReportController) ProfitLoss(ctx *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
		})
		return
	}

	year, month, err := monthFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.profitLossUseCase.Execute(ctx.Request.Context(), report.ProfitLossInput{
		OwnerID: ownerID,
		Year:    year,
		Month:   month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build profit and loss report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitLossResponse(output))
}

// Email handles POST /reports/pnl/email requests.
func (c *ReportController) Email(ctx *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
		})
		return
	}

	year, month, err := monthFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	var req dto.EmailReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.emailReportUseCase.Execute(ctx.Request.Context(), report.EmailReportInput{
		OwnerID: ownerID,
		Year:    year,
		Month:   month,
		To:      req.To,
	})
	if err != nil {
		c.handleEmailError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EmailReportResponse{
		ProviderID: output.ProviderID,
	})
}

// handleEmailError maps email delivery errors to HTTP responses.
func (c *ReportController) handleEmailError(ctx *gin.Context, err error) {
	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		statusCode := http.StatusBadGateway
		if emailErr.IsPermanent() {
			statusCode = http.StatusUnprocessableEntity
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: emailErr.Message,
			Code:  string(emailErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to send report email",
	})
}
