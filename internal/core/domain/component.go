package domain

import (
	"github.com/shopspring/decimal"
)

type ComponentCategory string

const (
	Groupset ComponentCategory = "groupset"
	Brakes   ComponentCategory = "brakes"
	Wheels   ComponentCategory = "wheels"
	Frame    ComponentCategory = "frame"
	Other    ComponentCategory = "other"
)

func (c ComponentCategory) Valid() bool {
	switch c {
	case Groupset, Brakes, Wheels, Frame, Other:
		return true
	}
	return false
}

// Component is a branded part fitted to, or offered as an upgrade on, a bike.
type Component struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Brand       string            `json:"brand"`
	Category    ComponentCategory `json:"category"`
	Price       decimal.Decimal   `json:"price"`
	LogoPath    string            `json:"logoPath"`
	Description string            `json:"description,omitempty"`
}
