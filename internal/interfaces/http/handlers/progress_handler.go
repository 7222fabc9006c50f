package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"refgate.backend/internal/domain/entities"
	"refgate.backend/internal/interfaces/http/response"
	"refgate.backend/internal/usecases"
	"refgate.backend/pkg/utils"
)

type progressService interface {
	GetProgress(ctx context.Context, wallet string) (*entities.ReferralProgress, error)
	ListConversions(ctx context.Context, wallet string, page, limit int) ([]*entities.ConversionRecord, utils.PaginationMeta, error)
}

// ProgressHandler serves read-only referral state
type ProgressHandler struct {
	progressUsecase progressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressUsecase *usecases.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{progressUsecase: progressUsecase}
}

// GetProgress returns completed-referral count and multiplier
// GET /api/v1/referrals/progress/:wallet
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	progress, err := h.progressUsecase.GetProgress(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		response.Error(c, mapDomainError(err))
		return
	}

	response.Success(c, http.StatusOK, progress)
}

// ListConversions returns the referrer's conversion audit trail
// GET /api/v1/referrals/conversions/:wallet
func (h *ProgressHandler) ListConversions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, meta, err := h.progressUsecase.ListConversions(c.Request.Context(), c.Param("wallet"), page, limit)
	if err != nil {
		response.Error(c, mapDomainError(err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"conversions": records,
		"pagination":  meta,
	})
}
