package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/and161185/metrics-dashboard/internal/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	cardBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Padding(0, 1)

	iconText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(28)

	mutedText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

func printCards(cmd *cobra.Command, cards []style.StyledCard) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	}

	if len(cards) == 0 {
		fmt.Fprintln(out, mutedText.Render("no cards"))
		return nil
	}
	for _, c := range cards {
		fmt.Fprintln(out, renderCard(c))
	}
	return nil
}

func renderCard(c style.StyledCard) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Bold(true).Foreground(c.Severity.Color()).Render(c.TypeCarte),
		" ",
		c.Severity.BadgeStyle().Render("["+string(c.Severity)+"]"),
	)

	lines := []string{header}
	if len(c.Metrics) == 0 {
		lines = append(lines, mutedText.Render("(no metrics)"))
	}
	for _, m := range c.Metrics {
		lines = append(lines, renderMetric(m))
	}
	return cardBox.Render(strings.Join(lines, "\n"))
}

func renderMetric(m style.StyledMetric) string {
	name := m.Name
	if name == "" {
		name = "-"
	}
	value := string(m.Value)
	if value == "" {
		value = "null"
	}
	line := iconText.Render(m.Style.Icon) +
		lipgloss.NewStyle().Foreground(m.Style.AccentColor()).Bold(true).Render(name) +
		" = " + value
	if m.Type != "" {
		line += " " + m.Severity.BadgeStyle().Render(m.Type)
	}
	return line
}
