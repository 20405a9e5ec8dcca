// Package model contains core data types for the project.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownCardType is returned when a category label is not one of the known card types.
var ErrUnknownCardType = errors.New("unknown card type")

// CardType identifies the dashboard card a group of metrics belongs to.
type CardType string

const (
	PerformanceService CardType = "PERFORMANCE_SERVICE" // PerformanceService groups service latency metrics.
	DeleteService      CardType = "DELETE_SERVICE"      // DeleteService groups deletion job metrics.
	Default            CardType = "DEFAULT"             // Default is the label for ungrouped metrics.
)

// CardTypes returns every known card type in enumeration order.
func CardTypes() []CardType {
	return []CardType{PerformanceService, DeleteService, Default}
}

// ParseCardType validates s against the known card types.
func ParseCardType(s string) (CardType, error) {
	for _, ct := range CardTypes() {
		if string(ct) == s {
			return ct, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCardType, s)
}

// RawMetric is a single measurement as returned by the backend.
type RawMetric struct {
	Name  string `json:"name"`           // Metric name.
	Value any    `json:"value"`          // Any JSON value.
	Type  string `json:"type,omitempty"` // Optional metric subtype.
}

// Card is the canonical shape every retrieval converges to.
// Metrics keeps the backend's array elements verbatim, whatever their JSON type.
type Card struct {
	TypeCarte string            `json:"typeCarte"`
	Metrics   []json.RawMessage `json:"metrics"`
}

// MarshalJSON encodes an absent metrics sequence as an empty array.
func (c Card) MarshalJSON() ([]byte, error) {
	type plain Card
	if c.Metrics == nil {
		c.Metrics = []json.RawMessage{}
	}
	return json.Marshal(plain(c))
}

// RawMetrics views every metrics element as a RawMetric.
// Elements that are not JSON objects yield a zero RawMetric.
func (c Card) RawMetrics() []RawMetric {
	out := make([]RawMetric, 0, len(c.Metrics))
	for _, raw := range c.Metrics {
		m, _ := DecodeRawMetric(raw)
		out = append(out, m)
	}
	return out
}

// DecodeRawMetric reads name, value and type from a JSON object.
// Fields of an unexpected JSON type are left zero; ok is false when raw is not an object.
func DecodeRawMetric(raw json.RawMessage) (m RawMetric, ok bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return RawMetric{}, false
	}
	if v, found := fields["name"]; found {
		_ = json.Unmarshal(v, &m.Name)
	}
	if v, found := fields["value"]; found {
		_ = json.Unmarshal(v, &m.Value)
	}
	if v, found := fields["type"]; found {
		_ = json.Unmarshal(v, &m.Type)
	}
	return m, true
}
