package services

import (
	"context"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LocationInput struct {
	AccountInput
	DistributorID uuid.UUID `json:"distributorId"`
}

type LocationService interface {
	Create(ctx context.Context, in LocationInput) (*models.Location, error)
	Update(ctx context.Context, id uuid.UUID, in AccountInput) (*models.Location, error)
	// SellersForUser lists the sellers of the location the user logs in as.
	SellersForUser(ctx context.Context, userID uuid.UUID) ([]models.Seller, error)
}

type locationService struct {
	tx         repositories.TxManager
	users      repositories.UserRepository
	locations  repositories.LocationRepository
	sellers    repositories.SellerRepository
	activation ActivationService
	logger     *zap.Logger
}

func NewLocationService(
	tx repositories.TxManager,
	users repositories.UserRepository,
	locations repositories.LocationRepository,
	sellers repositories.SellerRepository,
	activation ActivationService,
	logger *zap.Logger,
) LocationService {
	return &locationService{
		tx:         tx,
		users:      users,
		locations:  locations,
		sellers:    sellers,
		activation: activation,
		logger:     logger,
	}
}

func (s *locationService) Create(ctx context.Context, in LocationInput) (*models.Location, error) {
	in.normalize()
	var v validator
	in.validate(&v, true)
	v.check(in.DistributorID != uuid.Nil, "distributorId", "is required")
	if err := v.Err(); err != nil {
		return nil, err
	}

	location := &models.Location{
		ID:            uuid.New(),
		DistributorID: in.DistributorID,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         &in.Email,
		Telephone:     in.Telephone,
		Notes:         in.Notes,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		active, err := s.activation.CanActivateUnder(ctx, models.KindDistributor, in.DistributorID)
		if err != nil {
			return parentRefError(err, "distributorId")
		}
		location.IsActive = active

		user, err := createOwner(ctx, s.users, &in.AccountInput, models.RoleLocation)
		if err != nil {
			return err
		}
		location.UserID = user.ID
		return translate(parentRefError(s.locations.Create(ctx, location), "distributorId"), "location")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("location created",
		zap.String("location_id", location.ID.String()),
		zap.String("distributor_id", location.DistributorID.String()),
		zap.Bool("is_active", location.IsActive),
	)
	return location, nil
}

func (s *locationService) Update(ctx context.Context, id uuid.UUID, in AccountInput) (*models.Location, error) {
	in.normalize()
	var v validator
	in.validate(&v, false)
	if err := v.Err(); err != nil {
		return nil, err
	}

	var location *models.Location
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.locations.GetByID(ctx, id)
		if err != nil {
			return translate(err, "location")
		}

		current.Name = in.Name
		current.ContactPerson = in.ContactPerson
		current.Email = &in.Email
		current.Telephone = in.Telephone
		current.Notes = in.Notes
		if err := s.locations.Update(ctx, current); err != nil {
			return translate(err, "location")
		}
		location = current
		return updateOwner(ctx, s.users, current.UserID, &in)
	})
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) SellersForUser(ctx context.Context, userID uuid.UUID) ([]models.Seller, error) {
	location, err := s.locations.GetByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "location")
	}
	sellers, err := s.sellers.ListByLocation(ctx, location.ID)
	if err != nil {
		return nil, translate(err, "sellers")
	}
	return sellers, nil
}
