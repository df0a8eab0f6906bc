package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Document is a free-form key/value record (bike specifications, order
// customization, customer details) stored as JSON text. Specifications may
// nest arrays and objects; customization and customer details are checked
// with Validate.
type Document map[string]interface{}

func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]interface{}(d))
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return string(raw), nil
}

func (d *Document) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case string:
		return d.decode([]byte(v))
	case []byte:
		return d.decode(v)
	default:
		return fmt.Errorf("document: unsupported source type %T", src)
	}
}

// UnmarshalJSON accepts either an object or a string holding an encoded
// object, which is how exported catalog rows carry their specifications.
func (d *Document) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*d = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		return d.decode([]byte(s))
	}
	return d.decode(trimmed)
}

func (d *Document) decode(raw []byte) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		*d = nil
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	*d = m
	return nil
}

// Validate rejects nested objects and arrays. Pricing and notifications read
// customization and customerInfo as flat records.
func (d Document) Validate() error {
	for key, value := range d {
		switch value.(type) {
		case nil, string, bool, float64, float32, int, int64, json.Number:
		default:
			return fmt.Errorf("%w: field %q must be a string, number, boolean or null", ErrValidation, key)
		}
	}
	return nil
}

// String returns the value under key when it is a string.
func (d Document) String(key string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return ""
}

// Bool reports whether the value under key is boolean true.
func (d Document) Bool(key string) bool {
	b, ok := d[key].(bool)
	return ok && b
}

// Clone copies d, including nested arrays and objects.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	c := make(Document, len(d))
	for k, v := range d {
		c[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, inner := range t {
			m[k] = cloneValue(inner)
		}
		return m
	case Document:
		return t.Clone()
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, inner := range t {
			s[i] = cloneValue(inner)
		}
		return s
	default:
		return v
	}
}
