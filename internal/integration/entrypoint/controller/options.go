package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookmate/backend/internal/application/usecase/options"
	"github.com/bookmate/backend/internal/domain/entity"
	domainerror "github.com/bookmate/backend/internal/domain/error"
	"github.com/bookmate/backend/internal/integration/entrypoint/dto"
)

// OptionsController handles option catalog endpoints.
type OptionsController struct {
	listUseCase   *options.ListOptionsUseCase
	updateUseCase *options.UpdateOptionsUseCase
}

// NewOptionsController creates a new options controller instance.
func NewOptionsController(
	listUseCase *options.ListOptionsUseCase,
	updateUseCase *options.UpdateOptionsUseCase,
) *OptionsController {
	return &OptionsController{
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /options requests.
func (c *OptionsController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve options",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOptionsResponse(output.Sets))
}

// Update handles PUT /options/:field requests.
func (c *OptionsController) Update(ctx *gin.Context) {
	field := entity.OptionField(ctx.Param("field"))

	var req dto.UpdateOptionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeOptionValuesEmpty),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), options.UpdateOptionsInput{
		Field:    field,
		Values:   req.Values,
		Keywords: req.Keywords,
	})
	if err != nil {
		c.handleOptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOptionSetResponse(output.Set))
}

// handleOptionError maps option catalog errors to HTTP responses.
func (c *OptionsController) handleOptionError(ctx *gin.Context, err error) {
	var optionErr *domainerror.OptionError
	if errors.As(err, &optionErr) {
		statusCode := http.StatusBadRequest
		if optionErr.Code == domainerror.ErrCodeOptionSetNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: optionErr.Message,
			Code:  string(optionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
