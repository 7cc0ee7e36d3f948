package handlers

import (
	"context"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"
	"elocalpass/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockActivationService struct {
	mock.Mock
}

func (m *MockActivationService) AncestorsOf(ctx context.Context, kind models.EntityKind, id uuid.UUID) ([]models.Node, error) {
	args := m.Called(ctx, kind, id)
	nodes, _ := args.Get(0).([]models.Node)
	return nodes, args.Error(1)
}

func (m *MockActivationService) EvaluateActivationPrecondition(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*services.ActivationDecision, error) {
	args := m.Called(ctx, kind, id)
	decision, _ := args.Get(0).(*services.ActivationDecision)
	return decision, args.Error(1)
}

func (m *MockActivationService) RequestToggle(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*services.ToggleResult, error) {
	args := m.Called(ctx, kind, id)
	result, _ := args.Get(0).(*services.ToggleResult)
	return result, args.Error(1)
}

func (m *MockActivationService) CanActivateUnder(ctx context.Context, parentKind models.EntityKind, parentID uuid.UUID) (bool, error) {
	args := m.Called(ctx, parentKind, parentID)
	return args.Bool(0), args.Error(1)
}

type MockCustomerAccessService struct {
	mock.Mock
}

func (m *MockCustomerAccessService) Redeem(ctx context.Context, token string) (*services.CustomerAccess, error) {
	args := m.Called(ctx, token)
	access, _ := args.Get(0).(*services.CustomerAccess)
	return access, args.Error(1)
}

type MockDistributorService struct {
	mock.Mock
}

func (m *MockDistributorService) Create(ctx context.Context, in services.AccountInput) (*models.Distributor, error) {
	args := m.Called(ctx, in)
	d, _ := args.Get(0).(*models.Distributor)
	return d, args.Error(1)
}

func (m *MockDistributorService) Update(ctx context.Context, id uuid.UUID, in services.AccountInput) (*models.Distributor, error) {
	args := m.Called(ctx, id, in)
	d, _ := args.Get(0).(*models.Distributor)
	return d, args.Error(1)
}

func (m *MockDistributorService) List(ctx context.Context, filter repositories.DistributorListFilter) ([]*models.DistributorSummary, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*models.DistributorSummary)
	return list, args.Error(1)
}

func (m *MockDistributorService) Details(ctx context.Context, id uuid.UUID) (*models.DistributorDetails, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.DistributorDetails)
	return d, args.Error(1)
}

func (m *MockDistributorService) LocationsForUser(ctx context.Context, userID uuid.UUID) ([]*models.LocationDetails, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*models.LocationDetails)
	return list, args.Error(1)
}

type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Create(ctx context.Context, in services.LocationInput) (*models.Location, error) {
	args := m.Called(ctx, in)
	l, _ := args.Get(0).(*models.Location)
	return l, args.Error(1)
}

func (m *MockLocationService) Update(ctx context.Context, id uuid.UUID, in services.AccountInput) (*models.Location, error) {
	args := m.Called(ctx, id, in)
	l, _ := args.Get(0).(*models.Location)
	return l, args.Error(1)
}

func (m *MockLocationService) SellersForUser(ctx context.Context, userID uuid.UUID) ([]models.Seller, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]models.Seller)
	return list, args.Error(1)
}

type MockSellerService struct {
	mock.Mock
}

func (m *MockSellerService) Create(ctx context.Context, in services.SellerInput) (*models.Seller, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*models.Seller)
	return s, args.Error(1)
}

func (m *MockSellerService) ConfigForUser(ctx context.Context, userID uuid.UUID) (*models.SellerConfig, error) {
	args := m.Called(ctx, userID)
	cfg, _ := args.Get(0).(*models.SellerConfig)
	return cfg, args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	args := m.Called(ctx, email, password)
	t, _ := args.Get(0).(*models.TokenResponse)
	return t, args.Error(1)
}

func (m *MockAuthService) IssueToken(user *models.User) (*models.TokenResponse, error) {
	args := m.Called(user)
	t, _ := args.Get(0).(*models.TokenResponse)
	return t, args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }
