package command

import (
	"myGreenReco/pkg/config"
	"myGreenReco/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type options struct {
	cfg          *config.Config
	source       string
	fixturePath  string
	printMetrics bool
}

// NewRootCmd wires every subcommand. Flag defaults come from cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{cfg: cfg}

	root := &cobra.Command{
		Use:           "reco",
		Short:         "Collaborative filtering product recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.printMetrics {
				return nil
			}
			return metrics.WriteText(cmd.OutOrStdout(), prometheus.DefaultGatherer)
		},
	}
	root.PersistentFlags().StringVar(&opts.source, "source", cfg.Recommend.Source, "interaction source: fixture|postgres")
	root.PersistentFlags().StringVar(&opts.fixturePath, "fixture", cfg.Recommend.FixturePath, "fixture file (.json, .yaml, .yml)")
	root.PersistentFlags().BoolVar(&opts.printMetrics, "metrics", false, "print metrics in text format on exit")

	root.AddCommand(newRecommendCmd(opts))
	root.AddCommand(newSimilarityCmd(opts))
	root.AddCommand(newProductsCmd(opts))
	root.AddCommand(newUsersCmd(opts))
	root.AddCommand(newDemoCmd())
	return root
}
