package services

import (
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string {
	return &s
}

// seedBikes is what the storefront shows when the catalog table is empty or
// unreadable. Never hand these out directly; use FallbackBikes.
var seedBikes = []*domain.Bike{
	{
		ID:          9,
		Name:        "RIFT Rapid",
		Description: "High-performance road bike with aerodynamic design. Features Shimano 105 Di2 electronic shifting and carbon frame construction.",
		BasePrice:   decimal.NewFromInt(4700),
		ImageURL:    strPtr("/bikes/CYCLONE-3rd/image-1.jpg"),
		VideoURL:    strPtr("/bikes/CYCLONE-3rd/videos/rift-aero-pro.mp4"),
		Specifications: domain.Document{
			"model":             "CYCLONE-3rd",
			"specFile":          "/home/tau/RIFT/new_bikes_extract/CYCLONE-3rd (105 big)-Specifications.xlsx",
			"images": []interface{}{
				"/bikes/CYCLONE-3rd/image-1.jpg",
				"/bikes/CYCLONE-3rd/image-2.jpg",
				"/bikes/CYCLONE-3rd/image-3.jpg",
			},
			"Bike Model":        "CYCLONE-3rd (105 big)",
			"Wheel Size":        "700C",
			"Frame Height":      "43.5cm / 46cm / 48cm / 50cm / 52cm / 54cm",
			"Net Weight":        "8.3KG",
			"Frame":             "CYCLONE-3rd (Disc&thru-axle 12×142), high modulus Carbon fiber,Aero, Inner-Cables",
			"Fork":              "CYCLONE-3rd (Disc&thru-axle 12×100), high modulus Carbon fiber, 700C",
			"Derailleur Handle": "SHIMANO 105/R7170 - 2*12S, DI2",
			"Rear Derailleur":   "SHIMANO 105/R7150 - 12S, DI2",
			"Cranksets":         "SHIMANO 105/R7100, 34-50T",
			"Cassettes":         "SHIMANO 105/R7100-12S, 11-34T",
			"Brake":             "SHIMANO 105/R7170 Hydr.disc,160/160",
			"Rim":               "RS, high modulus Carbon fiber&Wave,W28×H50mm",
			"Tyre":              "MAXXIS-PURSUER, Foldable &LighWeight, 700*28C, Black",
			"Cables":            "JAGWIRE",
		},
		Category:  strPtr("Performance"),
		CreatedAt: time.Date(2026, time.January, 23, 13, 47, 58, 0, time.UTC),
	},
	{
		ID:          10,
		Name:        "RIFT Climb",
		Description: "Full-suspension electric mountain bike with 140mm travel. Features Bafang M820 mid-drive motor, RockShox suspension, and Shimano Deore 12-speed drivetrain.",
		BasePrice:   decimal.NewFromInt(4499),
		ImageURL:    strPtr("/bikes/EM19/image-1.jpg"),
		VideoURL:    strPtr("/bikes/EM19/videos/rift-em19.mp4"),
		Specifications: domain.Document{
			"model":           "EM19",
			"specFile":        "/home/tau/RIFT/new_bikes_extract/EM19-Specifications.xlsx",
			"images": []interface{}{
				"/bikes/EM19/image-1.jpg",
				"/bikes/EM19/image-2.jpg",
				"/bikes/EM19/image-3.jpg",
			},
			"Bike Model":      "EM19",
			"Net Weight":      "21.9KG",
			"Frame":           "CYCTRAC, EM19, AM, High modulus Carbon fiber,Inner cables,Thru-axle12*148 Boost, UDH,145mm Travel, DNM air rear shox200*55",
			"Fork":            "ROCKSHOX-35S, Air, Manual,160,Thru-axle 15*110",
			"Rear Derailleur": "SHIMANO  DEORE/M6100-12S",
			"Cassettes":       "SUNSHINE-12S,11-50T",
			"Brake":           "TEKTRO-M535,  4-piston hydraulic disc, 203/203mm",
			"Tire":            "MAXXIS,  29/27.5×2.4\"",
			"Motor System":    "Bafang Mid, M820, 36V250W(48V250W)",
			"Max Torque":      "85 Nm",
			"Battery":         "Samsung 21700 Li-ion, 720Wh, 36V20A(48V15A)",
			"Endurance":       "Max 130-150KM (pedal assist)",
			"Max Load":        "140 KG",
		},
		Category:  strPtr("E-Mountain"),
		CreatedAt: time.Date(2026, time.January, 23, 13, 47, 59, 0, time.UTC),
	},
}

// FallbackBikes returns a fresh copy of the seed catalog, newest first.
func FallbackBikes() []*domain.Bike {
	out := make([]*domain.Bike, 0, len(seedBikes))
	for i := len(seedBikes) - 1; i >= 0; i-- {
		out = append(out, seedBikes[i].Clone())
	}
	return out
}

func fallbackBike(id int64) (*domain.Bike, bool) {
	for _, b := range seedBikes {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return nil, false
}
