package ports

import (
	"context"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
)

type BikeRepository interface {
	ListBikes(ctx context.Context) ([]*domain.Bike, error)
	GetBikeByID(ctx context.Context, id int64) (*domain.Bike, error)
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) error
	DeleteBike(ctx context.Context, id int64) error
}

type BikeService interface {
	ListBikes(ctx context.Context) ([]*domain.Bike, error)
	GetBike(ctx context.Context, id int64) (*domain.Bike, error)
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) error
	DeleteBike(ctx context.Context, id int64) error
}
