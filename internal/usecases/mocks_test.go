package usecases_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"refgate.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock NonceRepository
type MockNonceRepository struct {
	mock.Mock
}

func (m *MockNonceRepository) Create(ctx context.Context, nonce *entities.Nonce) error {
	args := m.Called(ctx, nonce)
	return args.Error(0)
}

func (m *MockNonceRepository) Consume(ctx context.Context, value string) (*entities.Nonce, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Nonce), args.Error(1)
}

func (m *MockNonceRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ActivationRepository
type MockActivationRepository struct {
	mock.Mock
}

func (m *MockActivationRepository) Upsert(ctx context.Context, record *entities.ActivationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockActivationRepository) GetByWallet(ctx context.Context, wallet string) (*entities.ActivationRecord, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ActivationRecord), args.Error(1)
}

// Mock AffiliateRepository
type MockAffiliateRepository struct {
	mock.Mock
}

func (m *MockAffiliateRepository) Create(ctx context.Context, binding *entities.AffiliateBinding) error {
	args := m.Called(ctx, binding)
	return args.Error(0)
}

func (m *MockAffiliateRepository) GetByWallet(ctx context.Context, wallet string) (*entities.AffiliateBinding, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AffiliateBinding), args.Error(1)
}

func (m *MockAffiliateRepository) GetByAffiliateID(ctx context.Context, affiliateID string) (*entities.AffiliateBinding, error) {
	args := m.Called(ctx, affiliateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AffiliateBinding), args.Error(1)
}

// Mock AttributionRepository
type MockAttributionRepository struct {
	mock.Mock
}

func (m *MockAttributionRepository) Create(ctx context.Context, record *entities.AttributionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttributionRepository) GetByReferee(ctx context.Context, refereeWallet string) (*entities.AttributionRecord, error) {
	args := m.Called(ctx, refereeWallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AttributionRecord), args.Error(1)
}

// Mock ConversionRepository
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) Create(ctx context.Context, record *entities.ConversionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockConversionRepository) GetByReferralID(ctx context.Context, referralID string) (*entities.ConversionRecord, error) {
	args := m.Called(ctx, referralID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConversionRecord), args.Error(1)
}

func (m *MockConversionRepository) CountCompletedByReferrer(ctx context.Context, referrerWallet string) (int64, error) {
	args := m.Called(ctx, referrerWallet)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConversionRepository) ListByReferrer(ctx context.Context, referrerWallet string, offset, limit int) ([]*entities.ConversionRecord, int64, error) {
	args := m.Called(ctx, referrerWallet, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.ConversionRecord), args.Get(1).(int64), args.Error(2)
}

// Mock AffiliateProvisioner
type MockAffiliateProvisioner struct {
	mock.Mock
}

func (m *MockAffiliateProvisioner) Provision(ctx context.Context, wallet string) (string, string, error) {
	args := m.Called(ctx, wallet)
	return args.String(0), args.String(1), args.Error(2)
}

// Mock EligibilityChecker
type MockEligibilityChecker struct {
	mock.Mock
}

func (m *MockEligibilityChecker) IsEligible(ctx context.Context, wallet string) (bool, error) {
	args := m.Called(ctx, wallet)
	return args.Bool(0), args.Error(1)
}
