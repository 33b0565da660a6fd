package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/service/ports"
)

type LocationService struct {
	repo   ports.LocationRepo
	logger logger.Logger
}

func NewLocationService(repo ports.LocationRepo, logger logger.Logger) *LocationService {
	return &LocationService{repo: repo, logger: logger}
}

func (s *LocationService) Create(ctx context.Context, in domain.CreateLocationInput) (*domain.Location, error) {
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.Country = strings.TrimSpace(in.Country)

	if in.Address == "" || in.City == "" || in.Country == "" {
		return nil, fmt.Errorf("%w: address, city and country are required", domain.ErrValidation)
	}

	location := &domain.Location{
		ID:      uuid.New().String(),
		Address: in.Address,
		City:    in.City,
		Country: in.Country,
	}

	if err := s.repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	s.logger.Info("location created",
		logger.String("location_id", location.ID),
		logger.String("city", location.City),
	)

	return location, nil
}

func (s *LocationService) Get(ctx context.Context, id string) (*domain.Location, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *LocationService) List(ctx context.Context) ([]*domain.Location, error) {
	return s.repo.List(ctx)
}

func (s *LocationService) Update(ctx context.Context, id string, in domain.UpdateLocationInput) (*domain.Location, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if in.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}

	for _, f := range []*string{in.Address, in.City, in.Country} {
		if f != nil && strings.TrimSpace(*f) == "" {
			return nil, fmt.Errorf("%w: fields cannot be blank", domain.ErrValidation)
		}
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("location deleted", logger.String("location_id", id))
	return nil
}
