package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/domain/repositories"
	"refgate.backend/pkg/logger"
	"refgate.backend/pkg/metrics"
)

// Event types delivered by the external confirmation source.
const (
	EventReferralCompleted = "referral.completed"
	EventReferralCreated   = "referral.created"
)

// CompletionUsecase consumes completion events from the external
// confirmation source. It is the single source of truth for "did a
// referral convert"; nothing the client sends can move a count.
type CompletionUsecase struct {
	affiliateRepo  repositories.AffiliateRepository
	conversionRepo repositories.ConversionRepository
	eligibility    EligibilityChecker
	uow            repositories.UnitOfWork
}

// NewCompletionUsecase creates a new completion usecase
func NewCompletionUsecase(
	affiliateRepo repositories.AffiliateRepository,
	conversionRepo repositories.ConversionRepository,
	eligibility EligibilityChecker,
	uow repositories.UnitOfWork,
) *CompletionUsecase {
	return &CompletionUsecase{
		affiliateRepo:  affiliateRepo,
		conversionRepo: conversionRepo,
		eligibility:    eligibility,
		uow:            uow,
	}
}

type completionPayload struct {
	ReferralID     string `json:"referralId"`
	AffiliateID    string `json:"affiliateId"`
	ReferredWallet string `json:"referredWallet"`
	ConvertedAt    int64  `json:"convertedAt"`
}

// ProcessWebhook routes one delivery by event type. It never returns an
// error for outcomes that are the source's fault or nobody's fault; the
// transport layer ACKs regardless, the true outcome lives in the logs
// and metrics.
func (u *CompletionUsecase) ProcessWebhook(ctx context.Context, eventType string, data json.RawMessage) {
	switch eventType {
	case EventReferralCompleted:
		var payload completionPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			logger.Warn(ctx, "Malformed completion event payload", zap.Error(err))
			metrics.CompletionEvents.WithLabelValues("malformed").Inc()
			return
		}

		event := &entities.CompletionEvent{
			EventType:      eventType,
			ReferralID:     payload.ReferralID,
			AffiliateID:    payload.AffiliateID,
			ReferredWallet: payload.ReferredWallet,
			ConvertedAt:    time.Unix(payload.ConvertedAt, 0),
		}

		result, err := u.Process(ctx, event)
		if err != nil {
			switch {
			case errors.Is(err, domainerrors.ErrMalformedEvent):
				logger.Warn(ctx, "Completion event missing identifiers",
					zap.String("referral_id", payload.ReferralID),
					zap.String("affiliate_id", payload.AffiliateID))
				metrics.CompletionEvents.WithLabelValues("malformed").Inc()
			case errors.Is(err, domainerrors.ErrUnknownAffiliate):
				logger.Warn(ctx, "Completion event for unknown affiliate",
					zap.String("affiliate_id", payload.AffiliateID))
				metrics.CompletionEvents.WithLabelValues("unknown_affiliate").Inc()
			default:
				// Durably received but not yet fully processed. Swallowed
				// here so the source does not retry forever.
				logger.Error(ctx, "Completion event processing failed",
					zap.String("referral_id", payload.ReferralID), zap.Error(err))
				metrics.CompletionEvents.WithLabelValues("error").Inc()
			}
			return
		}

		logger.Info(ctx, "Completion event processed",
			zap.String("referral_id", event.ReferralID),
			zap.String("outcome", string(result.Outcome)),
			zap.String("referrer", result.ReferrerWallet))

	case EventReferralCreated:
		// Recognized but not processed; attribution happens on the
		// referee's own bind call, not on link click.
		logger.Info(ctx, "Referral created event received", zap.String("event_type", eventType))
		metrics.CompletionEvents.WithLabelValues("ignored_recognized").Inc()

	default:
		metrics.CompletionEvents.WithLabelValues("ignored").Inc()
	}
}

// Process handles one completion event end to end: idempotency check,
// affiliate resolution, eligibility gate, cap check, durable insert.
// Safe under concurrent delivery of the same referral id; the unique
// constraint on referral_id breaks any tie.
func (u *CompletionUsecase) Process(ctx context.Context, event *entities.CompletionEvent) (*entities.CompletionResult, error) {
	if event.ReferralID == "" || event.AffiliateID == "" {
		return nil, domainerrors.ErrMalformedEvent
	}

	if existing, err := u.conversionRepo.GetByReferralID(ctx, event.ReferralID); err == nil {
		metrics.CompletionEvents.WithLabelValues("already_processed").Inc()
		return &entities.CompletionResult{
			Outcome:        entities.CompletionAlreadyProcessed,
			ReferrerWallet: existing.ReferrerWallet,
		}, nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	binding, err := u.affiliateRepo.GetByAffiliateID(ctx, event.AffiliateID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnknownAffiliate
		}
		return nil, err
	}
	referrer := binding.WalletAddress

	eligible, err := u.eligibility.IsEligible(ctx, event.ReferredWallet)
	if err != nil {
		// Fail closed: uncertain eligibility never grants a referral.
		logger.Warn(ctx, "Eligibility check failed, treating as ineligible",
			zap.String("wallet", event.ReferredWallet), zap.Error(err))
		eligible = false
	}

	now := time.Now()
	record := &entities.ConversionRecord{
		ReferralID:     event.ReferralID,
		ReferrerWallet: referrer,
		AffiliateID:    event.AffiliateID,
		ConvertedAt:    event.ConvertedAt,
		ProcessedAt:    now,
	}

	if !eligible {
		// Recorded for idempotency and audit, never counted.
		record.Status = entities.ConversionStatusIneligible
		record.Reason = null.StringFrom("referred wallet below qualifying balance")
		if err := u.conversionRepo.Create(ctx, record); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				metrics.CompletionEvents.WithLabelValues("already_processed").Inc()
				return &entities.CompletionResult{
					Outcome:        entities.CompletionAlreadyProcessed,
					ReferrerWallet: referrer,
				}, nil
			}
			return nil, err
		}
		metrics.CompletionEvents.WithLabelValues("ineligible").Inc()
		return &entities.CompletionResult{
			Outcome:        entities.CompletionIneligible,
			ReferrerWallet: referrer,
		}, nil
	}

	outcome := entities.CompletionProcessed
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		count, err := u.conversionRepo.CountCompletedByReferrer(txCtx, referrer)
		if err != nil {
			return err
		}
		if count >= MaxBonusReferrals {
			record.Status = entities.ConversionStatusCapped
			outcome = entities.CompletionCapped
		} else {
			record.Status = entities.ConversionStatusCounted
		}
		return u.conversionRepo.Create(txCtx, record)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			metrics.CompletionEvents.WithLabelValues("already_processed").Inc()
			return &entities.CompletionResult{
				Outcome:        entities.CompletionAlreadyProcessed,
				ReferrerWallet: referrer,
			}, nil
		}
		return nil, err
	}

	if outcome == entities.CompletionCapped {
		metrics.CompletionEvents.WithLabelValues("capped").Inc()
	} else {
		metrics.CompletionEvents.WithLabelValues("processed").Inc()
	}
	return &entities.CompletionResult{
		Outcome:        outcome,
		ReferrerWallet: referrer,
	}, nil
}
