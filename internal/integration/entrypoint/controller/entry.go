package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookmate/backend/internal/application/usecase/entry"
	domainerror "github.com/bookmate/backend/internal/domain/error"
	"github.com/bookmate/backend/internal/integration/entrypoint/dto"
	"github.com/bookmate/backend/internal/integration/entrypoint/middleware"
)

// EntryController handles ledger entry endpoints.
type EntryController struct {
	createUseCase *entry.CreateEntryUseCase
	listUseCase   *entry.ListEntriesUseCase
	deleteUseCase *entry.DeleteEntryUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	createUseCase *entry.CreateEntryUseCase,
	listUseCase *entry.ListEntriesUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
) *EntryController {
	return &EntryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
		})
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEntryMissingFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeEntryInvalidDate),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), entry.CreateEntryInput{
		OwnerID:         ownerID,
		Date:            date,
		Property:        req.Property,
		TypeOfOperation: req.TypeOfOperation,
		TypeOfPayment:   req.TypeOfPayment,
		Detail:          req.Detail,
		Ref:             req.Ref,
		Debit:           decimal.NewFromFloat(req.Debit),
		Credit:          decimal.NewFromFloat(req.Credit),
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// List handles GET /entries requests. Year and month default to the current
// month when not supplied.
func (c *EntryController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), entry.ListEntriesInput{
		OwnerID: ownerID,
		Year:    year,
		Month:   month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{
		EntryID: entryID,
		OwnerID: ownerID,
	}); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleEntryError maps entry errors to HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(statusCodeForEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}
	if errors.Is(err, domainerror.ErrEntryNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Entry not found",
			Code:  string(domainerror.ErrCodeEntryNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForEntryError maps entry error codes to HTTP status codes.
func statusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryInvalidAmount,
		domainerror.ErrCodeEntryMissingFields,
		domainerror.ErrCodeEntryInvalidDate:
		return http.StatusBadRequest
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedEntry:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// monthFromQuery reads year/month query parameters, defaulting to the
// current calendar month.
func monthFromQuery(ctx *gin.Context) (int, time.Month, error) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 1900 || parsed > 9999 {
			return 0, 0, errors.New("invalid year")
		}
		year = parsed
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, errors.New("invalid month")
		}
		month = time.Month(parsed)
	}
	return year, month, nil
}
