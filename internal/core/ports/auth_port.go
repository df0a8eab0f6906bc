package ports

import "github.com/riftbikes/rift_storefront/internal/core/domain"

type TokenService interface {
	VerifyToken(token string) (*domain.TokenPayload, error)
}
