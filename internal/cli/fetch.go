package cli

import (
	"github.com/and161185/metrics-dashboard/internal/style"
	"github.com/and161185/metrics-dashboard/model"
	"github.com/spf13/cobra"
)

func allCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show every card",
		Long: `Fetch all cards. The bulk endpoint is tried first; when it fails or is
disabled (empty --all-url) each card type is requested separately and
failed types are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cards := a.client.FetchAllMetrics(cmd.Context())
			return printCards(cmd, style.DecorateCards(cards))
		},
	}
}

func typeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "type CARD_TYPE",
		Short:     "Show the card of one category",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.PerformanceService), string(model.DeleteService), string(model.Default)},
		RunE: func(cmd *cobra.Command, args []string) error {
			typeCarte, err := model.ParseCardType(args[0])
			if err != nil {
				return err
			}
			card, err := a.client.FetchMetricsByType(cmd.Context(), typeCarte)
			if err != nil {
				return err
			}
			return printCards(cmd, []style.StyledCard{style.DecorateCard(card)})
		},
	}
}

func legacyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "legacy",
		Short: "Show the PERFORMANCE_SERVICE card, falling back to the legacy endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := a.client.FetchMetrics(cmd.Context())
			if err != nil {
				return err
			}
			return printCards(cmd, []style.StyledCard{style.DecorateCard(card)})
		},
	}
}
