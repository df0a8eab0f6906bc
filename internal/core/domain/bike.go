package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// swagger:model domain.Bike
type Bike struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name" validate:"required,max=200"`
	Description    string          `json:"description" validate:"required"`
	BasePrice      decimal.Decimal `json:"basePrice" validate:"gte=0"`
	ImageURL       *string         `json:"imageUrl" validate:"omitempty,max=2048"`
	VideoURL       *string         `json:"videoUrl" validate:"omitempty,max=2048"`
	Specifications Document        `json:"specifications"`
	Category       *string         `json:"category" validate:"omitempty,max=100"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Clone returns a copy that shares no mutable state with b.
func (b *Bike) Clone() *Bike {
	c := *b
	c.ImageURL = cloneString(b.ImageURL)
	c.VideoURL = cloneString(b.VideoURL)
	c.Category = cloneString(b.Category)
	c.Specifications = b.Specifications.Clone()
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
