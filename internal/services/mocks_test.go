package services

import (
	"context"
	"time"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAccessTokenRepository struct {
	mock.Mock
}

func (m *MockAccessTokenRepository) Create(ctx context.Context, token *models.CustomerAccessToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAccessTokenRepository) GetByToken(ctx context.Context, token string) (*models.CustomerAccessToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomerAccessToken), args.Error(1)
}

func (m *MockAccessTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type MockQRCodeRepository struct {
	mock.Mock
}

func (m *MockQRCodeRepository) Create(ctx context.Context, qr *models.QRCode) error {
	return m.Called(ctx, qr).Error(0)
}

func (m *MockQRCodeRepository) ListByCustomerEmail(ctx context.Context, email string) ([]models.QRCode, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QRCode), args.Error(1)
}

func (m *MockQRCodeRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockQRImageStore struct {
	mock.Mock
}

func (m *MockQRImageStore) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	args := m.Called(ctx, objectKey)
	return args.String(0), args.Error(1)
}

func (m *MockQRImageStore) EnsureBucketExists(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockQRImageStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) error {
	return m.Called(ctx, id, name, email).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockDistributorRepository struct {
	mock.Mock
}

func (m *MockDistributorRepository) Create(ctx context.Context, d *models.Distributor) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDistributorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Distributor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Distributor), args.Error(1)
}

func (m *MockDistributorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Distributor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Distributor), args.Error(1)
}

func (m *MockDistributorRepository) Update(ctx context.Context, d *models.Distributor) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDistributorRepository) List(ctx context.Context, filter repositories.DistributorListFilter) ([]*models.DistributorSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DistributorSummary), args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Create(ctx context.Context, l *models.Location) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Location, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *models.Location) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLocationRepository) ListByDistributor(ctx context.Context, distributorID uuid.UUID) ([]*models.LocationDetails, error) {
	args := m.Called(ctx, distributorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LocationDetails), args.Error(1)
}

type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) Create(ctx context.Context, s *models.Seller) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Seller, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerRepository) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]models.Seller, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Seller), args.Error(1)
}

func (m *MockSellerRepository) UpsertConfig(ctx context.Context, cfg *models.SellerConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockSellerRepository) GetConfig(ctx context.Context, sellerID uuid.UUID) (*models.SellerConfig, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SellerConfig), args.Error(1)
}

// passthroughTx runs fn directly; transaction semantics are covered by repository tests.
type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
