package ports

import (
	"context"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
)

type TestDriveRepository interface {
	CreateTestDrive(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error)
	ListTestDrives(ctx context.Context) ([]*domain.TestDrive, error)
}

type TestDriveService interface {
	CreateTestDrive(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error)
	ListTestDrives(ctx context.Context) ([]*domain.TestDrive, error)
}
