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

type affiliateService interface {
	IssueLink(ctx context.Context, input *entities.IssueAffiliateLinkInput) (*entities.AffiliateLinkResult, error)
}

// AffiliateHandler handles referral link issuance
type AffiliateHandler struct {
	affiliateUsecase affiliateService
}

// NewAffiliateHandler creates a new affiliate handler
func NewAffiliateHandler(affiliateUsecase *usecases.AffiliateUsecase) *AffiliateHandler {
	return &AffiliateHandler{affiliateUsecase: affiliateUsecase}
}

// IssueLink issues (or re-reads) the caller's referral link. The body
// carries a fresh activation proof; there is no session to rely on.
// POST /api/v1/affiliate/link
func (h *AffiliateHandler) IssueLink(c *gin.Context) {
	var input entities.IssueAffiliateLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.affiliateUsecase.IssueLink(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, mapDomainError(err))
		return
	}

	status := http.StatusCreated
	if result.AlreadyIssued {
		status = http.StatusOK
	}
	response.Success(c, status, result)
}
