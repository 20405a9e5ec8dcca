package style

import (
	"encoding/json"

	"github.com/and161185/metrics-dashboard/model"
)

// StyledMetric is a metric with its resolved display attributes.
type StyledMetric struct {
	Name     string          `json:"name"`
	Value    json.RawMessage `json:"value"`
	Type     string          `json:"type,omitempty"`
	Style    MetricStyle     `json:"style"`
	Severity Severity        `json:"severity"`
}

// StyledCard is a card ready for the UI: service badge plus styled metrics.
type StyledCard struct {
	TypeCarte string         `json:"typeCarte"`
	Severity  Severity       `json:"severity"`
	Metrics   []StyledMetric `json:"metrics"`
}

// DecorateCard resolves styles for a card and each of its metrics.
// Elements that are not JSON objects keep their raw value under an empty name.
func DecorateCard(card model.Card) StyledCard {
	out := StyledCard{
		TypeCarte: card.TypeCarte,
		Severity:  ResolveServiceBadgeSeverity(card.TypeCarte),
		Metrics:   make([]StyledMetric, 0, len(card.Metrics)),
	}
	for _, raw := range card.Metrics {
		out.Metrics = append(out.Metrics, decorateMetric(raw))
	}
	return out
}

func decorateMetric(raw json.RawMessage) StyledMetric {
	m, ok := model.DecodeRawMetric(raw)
	sm := StyledMetric{
		Name:     m.Name,
		Type:     m.Type,
		Style:    ResolveMetricStyle(m.Name),
		Severity: ResolveBadgeSeverity(m.Type),
	}
	if !ok {
		sm.Value = raw
		return sm
	}
	var fields map[string]json.RawMessage
	_ = json.Unmarshal(raw, &fields)
	sm.Value = fields["value"]
	return sm
}

// DecorateCards applies DecorateCard to each card in order.
func DecorateCards(cards []model.Card) []StyledCard {
	out := make([]StyledCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, DecorateCard(c))
	}
	return out
}
