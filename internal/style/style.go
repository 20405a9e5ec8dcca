// Package style maps metric names and card types to the display attributes
// the dashboard UI components expect.
package style

import "strings"

// MetricStyle is the icon, background gradient and shadow colour of a metric tile.
type MetricStyle struct {
	Icon       string `json:"icon"`
	Background string `json:"background"`
	Shadow     string `json:"shadow"`
}

// Severity is a badge severity understood by the UI component library.
type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Warning Severity = "warning"
	Danger  Severity = "danger"
)

type styleRule struct {
	aliases []string
	style   MetricStyle
}

// ordered; the first rule with a matching alias wins
var metricStyles = []styleRule{
	{[]string{"number"}, MetricStyle{
		Icon:       "pi pi-hashtag",
		Background: "linear-gradient(135deg, #3b82f6 0%, #2563eb 100%)",
		Shadow:     "rgba(59, 130, 246, 0.25)",
	}},
	{[]string{"average", "avg"}, MetricStyle{
		Icon:       "pi pi-chart-line",
		Background: "linear-gradient(135deg, #10b981 0%, #059669 100%)",
		Shadow:     "rgba(16, 185, 129, 0.25)",
	}},
	{[]string{"max", "maximum"}, MetricStyle{
		Icon:       "pi pi-arrow-up",
		Background: "linear-gradient(135deg, #ef4444 0%, #dc2626 100%)",
		Shadow:     "rgba(239, 68, 68, 0.25)",
	}},
	{[]string{"min", "minimum"}, MetricStyle{
		Icon:       "pi pi-arrow-down",
		Background: "linear-gradient(135deg, #f59e0b 0%, #d97706 100%)",
		Shadow:     "rgba(245, 158, 11, 0.25)",
	}},
	{[]string{"count", "counter"}, MetricStyle{
		Icon:       "pi pi-calculator",
		Background: "linear-gradient(135deg, #8b5cf6 0%, #7c3aed 100%)",
		Shadow:     "rgba(139, 92, 246, 0.25)",
	}},
	{[]string{"sum", "total"}, MetricStyle{
		Icon:       "pi pi-plus-circle",
		Background: "linear-gradient(135deg, #06b6d4 0%, #0891b2 100%)",
		Shadow:     "rgba(6, 182, 212, 0.25)",
	}},
	{[]string{"rate", "ratio"}, MetricStyle{
		Icon:       "pi pi-percentage",
		Background: "linear-gradient(135deg, #ec4899 0%, #db2777 100%)",
		Shadow:     "rgba(236, 72, 153, 0.25)",
	}},
	{[]string{"time", "duration"}, MetricStyle{
		Icon:       "pi pi-clock",
		Background: "linear-gradient(135deg, #84cc16 0%, #65a30d 100%)",
		Shadow:     "rgba(132, 204, 22, 0.25)",
	}},
	{[]string{"size", "bytes", "memory"}, MetricStyle{
		Icon:       "pi pi-database",
		Background: "linear-gradient(135deg, #f97316 0%, #ea580c 100%)",
		Shadow:     "rgba(249, 115, 22, 0.25)",
	}},
	{[]string{"error", "exception"}, MetricStyle{
		Icon:       "pi pi-exclamation-triangle",
		Background: "linear-gradient(135deg, #dc2626 0%, #b91c1c 100%)",
		Shadow:     "rgba(220, 38, 38, 0.25)",
	}},
}

// DefaultMetricStyle applies to names that match no alias.
var DefaultMetricStyle = MetricStyle{
	Icon:       "pi pi-chart-bar",
	Background: "linear-gradient(135deg, #64748b 0%, #475569 100%)",
	Shadow:     "rgba(100, 116, 139, 0.25)",
}

// ResolveMetricStyle returns the tile style for a metric name.
// Matching is exact on the lower-cased, trimmed name.
func ResolveMetricStyle(name string) MetricStyle {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, rule := range metricStyles {
		for _, alias := range rule.aliases {
			if key == alias {
				return rule.style
			}
		}
	}
	return DefaultMetricStyle
}

// ResolveBadgeSeverity grades a metric type by case-insensitive substring.
func ResolveBadgeSeverity(metricType string) Severity {
	t := strings.ToLower(metricType)
	switch {
	case strings.Contains(t, "error"):
		return Danger
	case strings.Contains(t, "delete"):
		return Warning
	case strings.Contains(t, "fast"), strings.Contains(t, "performance"):
		return Success
	default:
		return Info
	}
}

// ResolveServiceBadgeSeverity grades a card type. Matching is case-sensitive.
func ResolveServiceBadgeSeverity(serviceName string) Severity {
	switch {
	case strings.Contains(serviceName, "PERFORMANCE"):
		return Success
	case strings.Contains(serviceName, "DELETE"):
		return Warning
	default:
		return Info
	}
}
