package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookmate/backend/internal/application/usecase/options"
	"github.com/bookmate/backend/internal/application/usecase/quickentry"
	"github.com/bookmate/backend/internal/domain/entity"
	domainerror "github.com/bookmate/backend/internal/domain/error"
	"github.com/bookmate/backend/internal/integration/entrypoint/dto"
	"github.com/bookmate/backend/internal/integration/entrypoint/middleware"
)

// emptyOptionRepo forces every catalog onto the built-in defaults.
type emptyOptionRepo struct{}

func (emptyOptionRepo) FindByField(context.Context, entity.OptionField) (*entity.OptionSet, error) {
	return nil, domainerror.ErrOptionSetNotFound
}

func (emptyOptionRepo) FindAll(context.Context) ([]*entity.OptionSet, error) { return nil, nil }

func (emptyOptionRepo) Replace(context.Context, *entity.OptionSet) error { return nil }

func (emptyOptionRepo) EnsureDefaults(context.Context) error { return nil }

// newParseTestEngine wires the parse endpoint behind a middleware stub that
// injects an authenticated user unless anonymous is set.
func newParseTestEngine(anonymous bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	getOptions := options.NewGetOptionsUseCase(emptyOptionRepo{}, nil)
	parseUseCase := quickentry.NewParseCommandUseCase(getOptions, nil)
	quickEntryController := NewQuickEntryController(parseUseCase)

	engine := gin.New()
	engine.POST("/quick-entry/parse", func(ctx *gin.Context) {
		if !anonymous {
			ctx.Set(string(middleware.UserIDKey), uuid.New())
		}
		quickEntryController.Parse(ctx)
	})
	return engine
}

func performParse(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/quick-entry/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestQuickEntryControllerParse(t *testing.T) {
	engine := newParseTestEngine(false)

	recorder := performParse(t, engine, `{"line": "alesia - 2000 - debit - cash - landscaping"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp dto.ParseCommandResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.True(t, resp.OK)
	assert.False(t, resp.UsedAI)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Alesia House", resp.Data.Property)
	assert.Equal(t, "Cash", resp.Data.TypeOfPayment)
	assert.Equal(t, float64(2000), resp.Data.Debit)
	assert.Equal(t, "landscaping", resp.Data.Detail)
}

func TestQuickEntryControllerRejectsEmptyLine(t *testing.T) {
	engine := newParseTestEngine(false)

	recorder := performParse(t, engine, `{"line": ""}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestQuickEntryControllerRejectsMalformedBody(t *testing.T) {
	engine := newParseTestEngine(false)

	recorder := performParse(t, engine, `{"line": `)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestQuickEntryControllerRequiresAuthentication(t *testing.T) {
	engine := newParseTestEngine(true)

	recorder := performParse(t, engine, `{"line": "coffee 50"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
