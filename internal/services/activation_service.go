package services

import (
	"context"
	"errors"
	"fmt"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ActivationDecision is the outcome of evaluating a toggle without applying it.
type ActivationDecision struct {
	Target    models.EntityRef `json:"target"`
	Current   bool             `json:"current"`
	Requested bool             `json:"requested"`
	// Blocker is the nearest inactive ancestor, set only when activation is refused.
	Blocker *models.EntityRef `json:"blocker,omitempty"`
}

func (d *ActivationDecision) Permitted() bool {
	return d.Blocker == nil
}

type ToggleResult struct {
	Target   models.EntityRef `json:"-"`
	IsActive bool             `json:"isActive"`
}

// ActivationService enforces the rule that a node may only become active while every ancestor is active.
type ActivationService interface {
	// AncestorsOf returns the ancestors of the node, nearest first. The node itself is not included.
	AncestorsOf(ctx context.Context, kind models.EntityKind, id uuid.UUID) ([]models.Node, error)
	EvaluateActivationPrecondition(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*ActivationDecision, error)
	RequestToggle(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*ToggleResult, error)
	// CanActivateUnder reports whether a new child of the given parent may start active.
	CanActivateUnder(ctx context.Context, parentKind models.EntityKind, parentID uuid.UUID) (bool, error)
}

type activationService struct {
	store  repositories.HierarchyRepository
	logger *zap.Logger
}

func NewActivationService(store repositories.HierarchyRepository, logger *zap.Logger) ActivationService {
	return &activationService{store: store, logger: logger}
}

func (s *activationService) node(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*models.Node, error) {
	if !kind.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"kind": "must be distributor, location or seller"}}
	}
	n, err := s.store.GetNode(ctx, kind, id)
	if err != nil {
		return nil, translate(err, kind.String())
	}
	return n, nil
}

func (s *activationService) ancestors(ctx context.Context, n *models.Node) ([]models.Node, error) {
	var chain []models.Node
	current := n
	for {
		parentKind, ok := current.Ref.Kind.Parent()
		if !ok {
			return chain, nil
		}
		if current.ParentID == nil {
			return nil, fmt.Errorf("%s has no %s", current.Ref, parentKind)
		}

		parent, err := s.store.GetNode(ctx, parentKind, *current.ParentID)
		if err != nil {
			// A dangling parent reference is an integrity failure, not a client error.
			return nil, fmt.Errorf("load %s of %s: %w", parentKind, current.Ref, err)
		}
		chain = append(chain, *parent)
		current = parent
	}
}

func (s *activationService) AncestorsOf(ctx context.Context, kind models.EntityKind, id uuid.UUID) ([]models.Node, error) {
	n, err := s.node(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return s.ancestors(ctx, n)
}

func (s *activationService) evaluate(ctx context.Context, n *models.Node) (*ActivationDecision, error) {
	decision := &ActivationDecision{
		Target:    n.Ref,
		Current:   n.Active,
		Requested: !n.Active,
	}
	if !decision.Requested {
		return decision, nil
	}

	chain, err := s.ancestors(ctx, n)
	if err != nil {
		return nil, err
	}
	for _, a := range chain {
		if !a.Active {
			blocker := a.Ref
			decision.Blocker = &blocker
			break
		}
	}
	return decision, nil
}

func (s *activationService) EvaluateActivationPrecondition(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*ActivationDecision, error) {
	n, err := s.node(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return s.evaluate(ctx, n)
}

func (s *activationService) RequestToggle(ctx context.Context, kind models.EntityKind, id uuid.UUID) (*ToggleResult, error) {
	n, err := s.node(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	decision, err := s.evaluate(ctx, n)
	if err != nil {
		return nil, err
	}
	if !decision.Permitted() {
		s.logger.Info("activation blocked",
			zap.Stringer("target", decision.Target),
			zap.Stringer("blocker", decision.Blocker),
		)
		return nil, &BlockedError{Target: decision.Target, Blocker: *decision.Blocker}
	}

	if err := s.store.SetActive(ctx, kind, id, decision.Current, decision.Requested); err != nil {
		if errors.Is(err, repositories.ErrStaleWrite) {
			s.logger.Warn("toggle lost race", zap.Stringer("target", decision.Target))
		}
		return nil, translate(err, kind.String())
	}

	s.logger.Info("status toggled",
		zap.Stringer("target", decision.Target),
		zap.Bool("is_active", decision.Requested),
	)
	return &ToggleResult{Target: decision.Target, IsActive: decision.Requested}, nil
}

func (s *activationService) CanActivateUnder(ctx context.Context, parentKind models.EntityKind, parentID uuid.UUID) (bool, error) {
	parent, err := s.node(ctx, parentKind, parentID)
	if err != nil {
		return false, err
	}
	if !parent.Active {
		return false, nil
	}

	chain, err := s.ancestors(ctx, parent)
	if err != nil {
		return false, err
	}
	for _, a := range chain {
		if !a.Active {
			return false, nil
		}
	}
	return true, nil
}
