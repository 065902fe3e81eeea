package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookmate/backend/internal/application/usecase/quickentry"
	"github.com/bookmate/backend/internal/integration/entrypoint/dto"
	"github.com/bookmate/backend/internal/integration/entrypoint/middleware"
)

// QuickEntryController handles the quick-entry parsing endpoint.
type QuickEntryController struct {
	parseUseCase *quickentry.ParseCommandUseCase
}

// NewQuickEntryController creates a new quick-entry controller instance.
func NewQuickEntryController(parseUseCase *quickentry.ParseCommandUseCase) *QuickEntryController {
	return &QuickEntryController{
		parseUseCase: parseUseCase,
	}
}

// Parse handles POST /quick-entry/parse requests. It turns one line of free
// text into a structured entry draft for the user to confirm.
func (c *QuickEntryController) Parse(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
		})
		return
	}

	var req dto.ParseCommandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.parseUseCase.Execute(ctx.Request.Context(), quickentry.ParseCommandInput{
		Line: req.Line,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to parse entry line",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParseCommandResponse(output))
}
