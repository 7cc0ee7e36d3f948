package services

import (
	"context"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DistributorService interface {
	Create(ctx context.Context, in AccountInput) (*models.Distributor, error)
	Update(ctx context.Context, id uuid.UUID, in AccountInput) (*models.Distributor, error)
	List(ctx context.Context, filter repositories.DistributorListFilter) ([]*models.DistributorSummary, error)
	// Details returns the distributor with its locations, their sellers and seller configs.
	Details(ctx context.Context, id uuid.UUID) (*models.DistributorDetails, error)
	// LocationsForUser lists the locations owned by the distributor the user logs in as.
	LocationsForUser(ctx context.Context, userID uuid.UUID) ([]*models.LocationDetails, error)
}

type distributorService struct {
	tx           repositories.TxManager
	users        repositories.UserRepository
	distributors repositories.DistributorRepository
	locations    repositories.LocationRepository
	sellers      repositories.SellerRepository
	logger       *zap.Logger
}

func NewDistributorService(
	tx repositories.TxManager,
	users repositories.UserRepository,
	distributors repositories.DistributorRepository,
	locations repositories.LocationRepository,
	sellers repositories.SellerRepository,
	logger *zap.Logger,
) DistributorService {
	return &distributorService{
		tx:           tx,
		users:        users,
		distributors: distributors,
		locations:    locations,
		sellers:      sellers,
		logger:       logger,
	}
}

func (s *distributorService) Create(ctx context.Context, in AccountInput) (*models.Distributor, error) {
	in.normalize()
	var v validator
	in.validate(&v, true)
	if err := v.Err(); err != nil {
		return nil, err
	}

	distributor := &models.Distributor{
		ID:            uuid.New(),
		Name:          in.Name,
		IsActive:      true,
		ContactPerson: in.ContactPerson,
		Email:         &in.Email,
		Telephone:     in.Telephone,
		Notes:         in.Notes,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := createOwner(ctx, s.users, &in, models.RoleDistributor)
		if err != nil {
			return err
		}
		distributor.UserID = user.ID
		return translate(s.distributors.Create(ctx, distributor), "distributor")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("distributor created", zap.String("distributor_id", distributor.ID.String()))
	return distributor, nil
}

func (s *distributorService) Update(ctx context.Context, id uuid.UUID, in AccountInput) (*models.Distributor, error) {
	in.normalize()
	var v validator
	in.validate(&v, false)
	if err := v.Err(); err != nil {
		return nil, err
	}

	var distributor *models.Distributor
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.distributors.GetByID(ctx, id)
		if err != nil {
			return translate(err, "distributor")
		}

		current.Name = in.Name
		current.ContactPerson = in.ContactPerson
		current.Email = &in.Email
		current.Telephone = in.Telephone
		current.Notes = in.Notes
		if err := s.distributors.Update(ctx, current); err != nil {
			return translate(err, "distributor")
		}
		distributor = current
		return updateOwner(ctx, s.users, current.UserID, &in)
	})
	if err != nil {
		return nil, err
	}
	return distributor, nil
}

func (s *distributorService) List(ctx context.Context, filter repositories.DistributorListFilter) ([]*models.DistributorSummary, error) {
	list, err := s.distributors.List(ctx, filter)
	if err != nil {
		return nil, translate(err, "distributors")
	}
	if list == nil {
		list = []*models.DistributorSummary{}
	}
	return list, nil
}

func (s *distributorService) Details(ctx context.Context, id uuid.UUID) (*models.DistributorDetails, error) {
	distributor, err := s.distributors.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "distributor")
	}
	owner, err := s.users.GetByID(ctx, distributor.UserID)
	if err != nil {
		return nil, translate(err, "distributor owner")
	}

	locations, err := s.locationsWithSellers(ctx, distributor.ID)
	if err != nil {
		return nil, err
	}

	details := &models.DistributorDetails{
		Distributor: *distributor,
		User:        owner.Summary(),
		Locations:   make([]models.LocationDetails, 0, len(locations)),
	}
	for _, l := range locations {
		details.Locations = append(details.Locations, *l)
	}
	return details, nil
}

func (s *distributorService) LocationsForUser(ctx context.Context, userID uuid.UUID) ([]*models.LocationDetails, error) {
	distributor, err := s.distributors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "distributor")
	}
	return s.locationsWithSellers(ctx, distributor.ID)
}

func (s *distributorService) locationsWithSellers(ctx context.Context, distributorID uuid.UUID) ([]*models.LocationDetails, error) {
	locations, err := s.locations.ListByDistributor(ctx, distributorID)
	if err != nil {
		return nil, translate(err, "locations")
	}
	for _, l := range locations {
		sellers, err := s.sellers.ListByLocation(ctx, l.ID)
		if err != nil {
			return nil, translate(err, "sellers")
		}
		l.Sellers = sellers
	}
	if locations == nil {
		locations = []*models.LocationDetails{}
	}
	return locations, nil
}
