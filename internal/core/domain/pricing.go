package domain

import "github.com/shopspring/decimal"

// AddOn is an optional paid customization offered on the order page.
type AddOn struct {
	Key       string          `json:"key"`
	Label     string          `json:"label"`
	Surcharge decimal.Decimal `json:"surcharge"`
}

const (
	AddOnHolographicPaint = "holographicPaint"
	AddOnUpgradedGears    = "upgradedGears"
)

var addOns = []AddOn{
	{Key: AddOnHolographicPaint, Label: "Holographic paint", Surcharge: decimal.NewFromInt(500)},
	{Key: AddOnUpgradedGears, Label: "Upgraded gears", Surcharge: decimal.NewFromInt(300)},
}

// AddOns lists every add-on the storefront sells.
func AddOns() []AddOn {
	out := make([]AddOn, len(addOns))
	copy(out, addOns)
	return out
}

// SelectedAddOns returns the add-ons switched on in a customization document.
func SelectedAddOns(customization Document) []AddOn {
	selected := []AddOn{}
	for _, a := range addOns {
		if customization.Bool(a.Key) {
			selected = append(selected, a)
		}
	}
	return selected
}

// PriceWithAddOns is the base price plus the surcharge of every selected add-on.
func PriceWithAddOns(base decimal.Decimal, customization Document) decimal.Decimal {
	total := base
	for _, a := range SelectedAddOns(customization) {
		total = total.Add(a.Surcharge)
	}
	return total
}

// Quote is a price breakdown for a bike before an order is placed.
type Quote struct {
	BikeID           int64           `json:"bikeId"`
	BasePrice        decimal.Decimal `json:"basePrice"`
	AddOns           []AddOn         `json:"addOns"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	Deposit          decimal.Decimal `json:"deposit"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}
