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

type activationService interface {
	IssueNonce(ctx context.Context) (*entities.Nonce, error)
	Activate(ctx context.Context, input *entities.ActivationInput) (string, error)
}

// ActivationHandler handles nonce issuance and wallet activation
type ActivationHandler struct {
	activationUsecase activationService
}

// NewActivationHandler creates a new activation handler
func NewActivationHandler(activationUsecase *usecases.ActivationUsecase) *ActivationHandler {
	return &ActivationHandler{activationUsecase: activationUsecase}
}

// RequestNonce issues a fresh single-use challenge nonce
// POST /api/v1/auth/nonce
func (h *ActivationHandler) RequestNonce(c *gin.Context) {
	nonce, err := h.activationUsecase.IssueNonce(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nonce)
}

// Activate verifies a signed challenge and marks the wallet activated
// POST /api/v1/auth/activate
func (h *ActivationHandler) Activate(c *gin.Context) {
	var input entities.ActivationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wallet, err := h.activationUsecase.Activate(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, mapDomainError(err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"wallet":    wallet,
		"activated": true,
	})
}
