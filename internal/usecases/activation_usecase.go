package usecases

import (
	"context"
	"time"

	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/domain/repositories"
	"refgate.backend/pkg/crypto"
	"refgate.backend/pkg/metrics"
)

// ActivationUsecase is the single ownership gate: issue a challenge
// nonce, then verify a signature over it. Every privileged operation
// runs Activate inline with its own request; activation status is never
// cached across requests, there is no session token of any kind.
type ActivationUsecase struct {
	nonceRepo      repositories.NonceRepository
	activationRepo repositories.ActivationRepository
}

// NewActivationUsecase creates a new activation usecase
func NewActivationUsecase(
	nonceRepo repositories.NonceRepository,
	activationRepo repositories.ActivationRepository,
) *ActivationUsecase {
	return &ActivationUsecase{
		nonceRepo:      nonceRepo,
		activationRepo: activationRepo,
	}
}

// IssueNonce creates and persists a fresh single-use challenge nonce
func (u *ActivationUsecase) IssueNonce(ctx context.Context) (*entities.Nonce, error) {
	value, err := crypto.GenerateNonceToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	nonce := &entities.Nonce{
		Value:     value,
		IssuedAt:  now,
		ExpiresAt: now.Add(entities.NonceTTL),
	}

	if err := u.nonceRepo.Create(ctx, nonce); err != nil {
		return nil, err
	}

	metrics.NoncesIssued.Inc()
	return nonce, nil
}

// Activate proves wallet ownership for this request. Returns the
// normalized wallet address on success.
//
// The nonce is consumed before anything else is checked: once looked up
// it is gone, whether or not the signature verifies, so a failed attempt
// can never be retried with a validated-but-stale nonce.
func (u *ActivationUsecase) Activate(ctx context.Context, input *entities.ActivationInput) (string, error) {
	wallet, ok := crypto.NormalizeAddress(input.Wallet)
	if !ok {
		metrics.Activations.WithLabelValues("signature_invalid").Inc()
		return "", domainerrors.ErrSignatureInvalid
	}

	if _, err := u.nonceRepo.Consume(ctx, input.Nonce); err != nil {
		metrics.Activations.WithLabelValues("nonce_rejected").Inc()
		return "", err
	}

	now := time.Now()
	signedAt := time.Unix(input.Timestamp, 0)
	if signedAt.After(now) || now.Sub(signedAt) > SignatureMaxAge {
		metrics.Activations.WithLabelValues("signature_expired").Inc()
		return "", domainerrors.ErrSignatureExpired
	}

	message := crypto.BuildChallengeMessage(input.Wallet, input.Nonce, input.Timestamp)
	if !crypto.VerifyPersonalSignature(message, input.Signature, input.Wallet) {
		metrics.Activations.WithLabelValues("signature_invalid").Inc()
		return "", domainerrors.ErrSignatureInvalid
	}

	if err := u.activationRepo.Upsert(ctx, &entities.ActivationRecord{
		WalletAddress: wallet,
		ActivatedAt:   now,
	}); err != nil {
		return "", err
	}

	metrics.Activations.WithLabelValues("activated").Inc()
	return wallet, nil
}
