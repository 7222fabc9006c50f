package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/interfaces/http/response"
	"refgate.backend/internal/usecases"
)

type attributionService interface {
	Bind(ctx context.Context, input *entities.BindAttributionInput) (*entities.BindAttributionResult, error)
}

// AttributionHandler handles referee→referrer binding
type AttributionHandler struct {
	attributionUsecase attributionService
}

// NewAttributionHandler creates a new attribution handler
func NewAttributionHandler(attributionUsecase *usecases.AttributionUsecase) *AttributionHandler {
	return &AttributionHandler{attributionUsecase: attributionUsecase}
}

// Bind binds the activated referee to the affiliate whose link it used
// POST /api/v1/referrals/bind
func (h *AttributionHandler) Bind(c *gin.Context) {
	var input entities.BindAttributionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.attributionUsecase.Bind(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, mapDomainError(err))
		return
	}

	status := http.StatusCreated
	if result.AlreadyBound {
		status = http.StatusOK
	}
	response.Success(c, status, result)
}
