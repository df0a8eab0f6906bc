package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/shopspring/decimal"
)

func component(id, name, brand string, category domain.ComponentCategory, price int64, description string) *domain.Component {
	return &domain.Component{
		ID:          id,
		Name:        name,
		Brand:       brand,
		Category:    category,
		Price:       decimal.NewFromInt(price),
		LogoPath:    "/logos/partners/" + strings.ToLower(brand) + ".svg",
		Description: description,
	}
}

// UK prices, approximate.
var componentCatalog = []*domain.Component{
	component("dura-ace-r9200", "Dura Ace R9200", "Shimano", domain.Groupset, 2800, "Top-tier professional groupset with Di2 electronic shifting"),
	component("ultegra-r8100", "Ultegra R8100", "Shimano", domain.Groupset, 2200, "Professional groupset with Di2 electronic shifting"),
	component("105-r7100", "105 R7100", "Shimano", domain.Groupset, 1200, "Performance groupset with Di2 electronic shifting"),
	component("dura-ace-mechanical", "Dura Ace Mechanical", "Shimano", domain.Groupset, 2000, "Top-tier mechanical groupset"),
	component("ultegra-mechanical", "Ultegra Mechanical", "Shimano", domain.Groupset, 1500, "Professional mechanical groupset"),
	component("105-mechanical", "105 Mechanical", "Shimano", domain.Groupset, 800, "Performance mechanical groupset"),
	component("deore-m6100", "Deore M6100", "Shimano", domain.Groupset, 600, "Mountain bike groupset 12-speed"),
	component("maxxis-pursuer", "Maxxis Pursuer", "Maxxis", domain.Other, 80, "High-performance road tire 700x28C"),
	component("rockshox-recon", "RockShox Recon", "RockShox", domain.Other, 450, "Air suspension fork 150mm travel"),
	component("jagwire-cables", "JAGWIRE Cables", "JAGWIRE", domain.Other, 50, "Premium cable and housing set"),
	component("bafang-m820", "Bafang M820", "Bafang", domain.Other, 1200, "Mid-drive motor system 36V/48V 250W"),
	component("tektro-m535", "Tektro M535", "Tektro", domain.Brakes, 180, "4-piston hydraulic disc brakes 203mm"),
}

// ComponentService serves the read-only catalog of upgrade parts.
type ComponentService struct {
	logger ports.LoggerPort
}

func NewComponentService(logger ports.LoggerPort) *ComponentService {
	return &ComponentService{
		logger: logger,
	}
}

// ListComponents returns every component, or only those in category when it
// is not empty.
func (s *ComponentService) ListComponents(ctx context.Context, category string) ([]*domain.Component, error) {
	if category != "" && !domain.ComponentCategory(category).Valid() {
		s.logger.Warn("Unknown component category", map[string]interface{}{
			"category": category,
		})
		return nil, fmt.Errorf("%w: unknown component category %q", domain.ErrValidation, category)
	}

	out := []*domain.Component{}
	for _, c := range componentCatalog {
		if category == "" || c.Category == domain.ComponentCategory(category) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *ComponentService) GetComponent(ctx context.Context, id string) (*domain.Component, error) {
	for _, c := range componentCatalog {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("component %q: %w", id, domain.ErrNotFound)
}
