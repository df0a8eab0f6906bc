package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

// CatalogPolicy controls how the catalog behaves when storage has nothing to
// show.
type CatalogPolicy struct {
	// EmptyCatalogFallback serves the seed bikes when the table is empty or
	// cannot be read.
	EmptyCatalogFallback bool
}

type BikeService struct {
	bikeRepo ports.BikeRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	metrics  ports.MetricsPort
	policy   CatalogPolicy
}

func NewBikeService(
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	metrics ports.MetricsPort,
	policy CatalogPolicy,
) *BikeService {
	return &BikeService{
		bikeRepo: bikeRepo,
		logger:   logger,
		validate: validate,
		metrics:  metrics,
		policy:   policy,
	}
}

func (s *BikeService) ListBikes(ctx context.Context) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.ListBikes(ctx)
	if err != nil {
		if !s.policy.EmptyCatalogFallback {
			s.logger.Error("Failed to list bikes", map[string]interface{}{
				"error": err.Error(),
			})
			return nil, storageError(err)
		}
		return s.fallback("storage_error", err), nil
	}

	if len(bikes) == 0 && s.policy.EmptyCatalogFallback {
		return s.fallback("empty", nil), nil
	}
	return bikes, nil
}

func (s *BikeService) fallback(reason string, cause error) []*domain.Bike {
	fields := map[string]interface{}{
		"reason": reason,
	}
	if cause != nil {
		fields["error"] = cause.Error()
	}
	s.logger.Warn("Serving fallback catalog", fields)
	s.metrics.CatalogFallback(reason)
	return FallbackBikes()
}

func (s *BikeService) GetBike(ctx context.Context, id int64) (*domain.Bike, error) {
	bike, err := s.bikeRepo.GetBikeByID(ctx, id)
	if err == nil {
		return bike, nil
	}

	if errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if s.policy.EmptyCatalogFallback {
		if seed, ok := fallbackBike(id); ok {
			s.logger.Warn("Serving fallback bike", map[string]interface{}{
				"bike_id": id,
				"error":   err.Error(),
			})
			s.metrics.CatalogFallback("storage_error")
			return seed, nil
		}
	}

	s.logger.Error("Failed to get bike", map[string]interface{}{
		"bike_id": id,
		"error":   err.Error(),
	})
	return nil, storageError(err)
}

func (s *BikeService) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if err := s.check(bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	createdBike, err := s.bikeRepo.CreateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error": err.Error(),
			"name":  bike.Name,
		})
		return nil, err
	}

	s.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id": createdBike.ID,
		"name":    createdBike.Name,
	})
	return createdBike, nil
}

// UpdateBike overwrites the stored bike. A missing id is not reported.
func (s *BikeService) UpdateBike(ctx context.Context, bike *domain.Bike) error {
	if err := s.check(bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"bike_id": bike.ID,
			"error":   err.Error(),
		})
		return err
	}

	if err := s.bikeRepo.UpdateBike(ctx, bike); err != nil {
		s.logger.Error("Failed to update bike", map[string]interface{}{
			"bike_id": bike.ID,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": bike.ID,
	})
	return nil
}

// DeleteBike removes the bike whether or not it exists. Orders and test
// drives pointing at it are left in place.
func (s *BikeService) DeleteBike(ctx context.Context, id int64) error {
	if err := s.bikeRepo.DeleteBike(ctx, id); err != nil {
		s.logger.Error("Failed to delete bike", map[string]interface{}{
			"bike_id": id,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": id,
	})
	return nil
}

func (s *BikeService) check(bike *domain.Bike) error {
	if err := s.validate.Struct(bike); err != nil {
		return validationError(err)
	}
	return nil
}

func storageError(err error) error {
	if errors.Is(err, domain.ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}
