package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// memoryHierarchy is an in-memory HierarchyRepository with the same conditional-write semantics as postgres.
type memoryHierarchy struct {
	mu     sync.Mutex
	nodes  map[models.EntityRef]models.Node
	writes int
}

func newMemoryHierarchy() *memoryHierarchy {
	return &memoryHierarchy{nodes: map[models.EntityRef]models.Node{}}
}

func (m *memoryHierarchy) add(kind models.EntityKind, parent *uuid.UUID, active bool) uuid.UUID {
	id := uuid.New()
	ref := models.EntityRef{Kind: kind, ID: id}
	m.nodes[ref] = models.Node{Ref: ref, ParentID: parent, Name: string(kind), Active: active}
	return id
}

func (m *memoryHierarchy) active(kind models.EntityKind, id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nodes[models.EntityRef{Kind: kind, ID: id}].Active
}

func (m *memoryHierarchy) GetNode(_ context.Context, kind models.EntityKind, id uuid.UUID) (*models.Node, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nodes[models.EntityRef{Kind: kind, ID: id}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &n, nil
}

func (m *memoryHierarchy) SetActive(_ context.Context, kind models.EntityKind, id uuid.UUID, expected, next bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ref := models.EntityRef{Kind: kind, ID: id}
	n, ok := m.nodes[ref]
	if !ok || n.Active != expected {
		return repositories.ErrStaleWrite
	}
	n.Active = next
	m.nodes[ref] = n
	m.writes++
	return nil
}

type MockHierarchyRepository struct {
	mock.Mock
}

func (m *MockHierarchyRepository) GetNode(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*models.Node, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Node), args.Error(1)
}

func (m *MockHierarchyRepository) SetActive(ctx context.Context, kind models.EntityKind, id uuid.UUID, expected, next bool) error {
	args := m.Called(ctx, kind, id, expected, next)
	return args.Error(0)
}

type ActivationServiceTestSuite struct {
	suite.Suite
	store   *memoryHierarchy
	service ActivationService
	ctx     context.Context
}

func (suite *ActivationServiceTestSuite) SetupTest() {
	suite.store = newMemoryHierarchy()
	suite.service = NewActivationService(suite.store, zap.NewNop())
	suite.ctx = context.Background()
}

func TestActivationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivationServiceTestSuite))
}

// tree builds distributor -> location -> seller with the given flags.
func (suite *ActivationServiceTestSuite) tree(d, l, s bool) (uuid.UUID, uuid.UUID, uuid.UUID) {
	dID := suite.store.add(models.KindDistributor, nil, d)
	lID := suite.store.add(models.KindLocation, &dID, l)
	sID := suite.store.add(models.KindSeller, &lID, s)
	return dID, lID, sID
}

func (suite *ActivationServiceTestSuite) TestToggleTwiceRestoresState() {
	dID, lID, sID := suite.tree(true, true, true)

	for _, ref := range []models.EntityRef{
		{Kind: models.KindSeller, ID: sID},
		{Kind: models.KindLocation, ID: lID},
		{Kind: models.KindDistributor, ID: dID},
	} {
		first, err := suite.service.RequestToggle(suite.ctx, ref.Kind, ref.ID)
		require.NoError(suite.T(), err)
		assert.False(suite.T(), first.IsActive)

		second, err := suite.service.RequestToggle(suite.ctx, ref.Kind, ref.ID)
		require.NoError(suite.T(), err)
		assert.True(suite.T(), second.IsActive)
		assert.True(suite.T(), suite.store.active(ref.Kind, ref.ID))
	}
}

func (suite *ActivationServiceTestSuite) TestLocationBlockedByInactiveDistributor() {
	dID, lID, _ := suite.tree(false, false, false)

	_, err := suite.service.RequestToggle(suite.ctx, models.KindLocation, lID)

	var blocked *BlockedError
	require.True(suite.T(), errors.As(err, &blocked))
	assert.Equal(suite.T(), models.EntityRef{Kind: models.KindDistributor, ID: dID}, blocked.Blocker)
	assert.Equal(suite.T(), "Cannot activate location: distributor must be active first", blocked.Error())
	assert.False(suite.T(), suite.store.active(models.KindLocation, lID))
	assert.Zero(suite.T(), suite.store.writes)
}

func (suite *ActivationServiceTestSuite) TestSellerBlockedByNearestInactiveAncestor() {
	_, lID, sID := suite.tree(false, false, false)

	_, err := suite.service.RequestToggle(suite.ctx, models.KindSeller, sID)

	var blocked *BlockedError
	require.True(suite.T(), errors.As(err, &blocked))
	assert.Equal(suite.T(), models.EntityRef{Kind: models.KindLocation, ID: lID}, blocked.Blocker)
	assert.Equal(suite.T(), "Cannot activate seller: location must be active first", blocked.Error())
	assert.False(suite.T(), suite.store.active(models.KindSeller, sID))
}

func (suite *ActivationServiceTestSuite) TestSellerBlockedByDistributorWhenLocationActive() {
	dID, _, sID := suite.tree(false, true, false)

	_, err := suite.service.RequestToggle(suite.ctx, models.KindSeller, sID)

	var blocked *BlockedError
	require.True(suite.T(), errors.As(err, &blocked))
	assert.Equal(suite.T(), models.EntityRef{Kind: models.KindDistributor, ID: dID}, blocked.Blocker)
	assert.Equal(suite.T(), "Cannot activate seller: distributor must be active first", blocked.Error())
}

func (suite *ActivationServiceTestSuite) TestDeactivationAlwaysPermitted() {
	_, lID, sID := suite.tree(false, true, true)

	result, err := suite.service.RequestToggle(suite.ctx, models.KindSeller, sID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.IsActive)

	result, err = suite.service.RequestToggle(suite.ctx, models.KindLocation, lID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.IsActive)
}

func (suite *ActivationServiceTestSuite) TestDistributorToggleDoesNotCascade() {
	dID, lID, sID := suite.tree(true, true, true)

	result, err := suite.service.RequestToggle(suite.ctx, models.KindDistributor, dID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.IsActive)
	assert.True(suite.T(), suite.store.active(models.KindLocation, lID))
	assert.True(suite.T(), suite.store.active(models.KindSeller, sID))
	assert.Equal(suite.T(), 1, suite.store.writes)

	result, err = suite.service.RequestToggle(suite.ctx, models.KindDistributor, dID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.IsActive)
	assert.True(suite.T(), suite.store.active(models.KindLocation, lID))
}

func (suite *ActivationServiceTestSuite) TestInactiveDistributorActivatesUnconditionally() {
	dID, lID, sID := suite.tree(false, false, false)

	result, err := suite.service.RequestToggle(suite.ctx, models.KindDistributor, dID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.IsActive)
	assert.False(suite.T(), suite.store.active(models.KindLocation, lID))
	assert.False(suite.T(), suite.store.active(models.KindSeller, sID))
}

func (suite *ActivationServiceTestSuite) TestUnknownEntity() {
	_, err := suite.service.RequestToggle(suite.ctx, models.KindLocation, uuid.New())
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *ActivationServiceTestSuite) TestAncestorsOfNearestFirst() {
	dID, lID, sID := suite.tree(true, true, true)

	chain, err := suite.service.AncestorsOf(suite.ctx, models.KindSeller, sID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), chain, 2)
	assert.Equal(suite.T(), lID, chain[0].Ref.ID)
	assert.Equal(suite.T(), dID, chain[1].Ref.ID)

	chain, err = suite.service.AncestorsOf(suite.ctx, models.KindDistributor, dID)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), chain)
}

func (suite *ActivationServiceTestSuite) TestEvaluateDoesNotWrite() {
	_, lID, _ := suite.tree(false, false, false)

	decision, err := suite.service.EvaluateActivationPrecondition(suite.ctx, models.KindLocation, lID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), decision.Permitted())
	assert.True(suite.T(), decision.Requested)
	assert.Zero(suite.T(), suite.store.writes)
}

func (suite *ActivationServiceTestSuite) TestCanActivateUnder() {
	dID, lID, _ := suite.tree(true, false, false)

	ok, err := suite.service.CanActivateUnder(suite.ctx, models.KindDistributor, dID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), ok)

	ok, err = suite.service.CanActivateUnder(suite.ctx, models.KindLocation, lID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), ok)

	inactiveD, activeL, _ := suite.tree(false, true, true)
	ok, err = suite.service.CanActivateUnder(suite.ctx, models.KindLocation, activeL)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), ok, "distributor %s is inactive", inactiveD)
}

func (suite *ActivationServiceTestSuite) TestConcurrentTogglesApplyOnce() {
	dID := suite.store.add(models.KindDistributor, nil, true)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := suite.service.RequestToggle(suite.ctx, models.KindDistributor, dID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrConflict):
				conflicts++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(suite.T(), workers, succeeded+conflicts)
	assert.Equal(suite.T(), succeeded, suite.store.writes)
	assert.Equal(suite.T(), succeeded%2 == 0, suite.store.active(models.KindDistributor, dID))
}

func TestRequestToggle_StaleWriteIsConflict(t *testing.T) {
	store := &MockHierarchyRepository{}
	service := NewActivationService(store, zap.NewNop())
	ctx := context.Background()
	id := uuid.New()

	node := &models.Node{Ref: models.EntityRef{Kind: models.KindDistributor, ID: id}, Active: true}
	store.On("GetNode", ctx, models.KindDistributor, id).Return(node, nil)
	store.On("SetActive", ctx, models.KindDistributor, id, true, false).Return(repositories.ErrStaleWrite)

	_, err := service.RequestToggle(ctx, models.KindDistributor, id)
	assert.ErrorIs(t, err, ErrConflict)
	store.AssertExpectations(t)
}

func TestRequestToggle_StoreFailureIsInternal(t *testing.T) {
	store := &MockHierarchyRepository{}
	service := NewActivationService(store, zap.NewNop())
	ctx := context.Background()
	id := uuid.New()
	boom := errors.New("connection refused")

	store.On("GetNode", ctx, models.KindSeller, id).Return(nil, boom)

	_, err := service.RequestToggle(ctx, models.KindSeller, id)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRequestToggle_InvalidKind(t *testing.T) {
	service := NewActivationService(&MockHierarchyRepository{}, zap.NewNop())

	_, err := service.RequestToggle(context.Background(), models.EntityKind("region"), uuid.New())

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}
