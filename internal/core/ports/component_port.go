package ports

import (
	"context"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
)

type ComponentService interface {
	ListComponents(ctx context.Context, category string) ([]*domain.Component, error)
	GetComponent(ctx context.Context, id string) (*domain.Component, error)
}
