package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// BikeRef is a bike identifier as sent by the storefront forms, which post it
// either as a number or as the string value of a <select>.
type BikeRef int64

func (r *BikeRef) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*r = 0
		return nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("bikeId must be an integer: %w", err)
	}
	*r = BikeRef(id)
	return nil
}

func (r BikeRef) Int64() int64 {
	return int64(r)
}
