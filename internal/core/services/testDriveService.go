package services

import (
	"context"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type TestDriveService struct {
	testDriveRepo ports.TestDriveRepository
	logger        ports.LoggerPort
	validate      *validator.Validate
}

func NewTestDriveService(
	testDriveRepo ports.TestDriveRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *TestDriveService {
	return &TestDriveService{
		testDriveRepo: testDriveRepo,
		logger:        logger,
		validate:      validate,
	}
}

func (s *TestDriveService) CreateTestDrive(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error) {
	td.Status = domain.TestDrivePending
	if td.Message != nil && *td.Message == "" {
		td.Message = nil
	}

	if err := s.validate.Struct(td); err != nil {
		err = validationError(err)
		s.logger.Error("Test drive validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	created, err := s.testDriveRepo.CreateTestDrive(ctx, td)
	if err != nil {
		s.logger.Error("Failed to create test drive", map[string]interface{}{
			"bike_id": td.BikeID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Test drive requested", map[string]interface{}{
		"test_drive_id":  created.ID,
		"bike_id":        created.BikeID,
		"preferred_date": created.PreferredDate,
	})
	return created, nil
}

func (s *TestDriveService) ListTestDrives(ctx context.Context) ([]*domain.TestDrive, error) {
	drives, err := s.testDriveRepo.ListTestDrives(ctx)
	if err != nil {
		s.logger.Error("Failed to list test drives", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return drives, nil
}
