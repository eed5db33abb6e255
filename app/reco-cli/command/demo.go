package command

import (
	"fmt"
	"myGreenReco/business/recommendation"
	"myGreenReco/domain"

	"github.com/spf13/cobra"
)

var demoPurchases = []domain.Interaction{
	{UserID: "user1", ProductID: "productA"},
	{UserID: "user1", ProductID: "productB"},
	{UserID: "user2", ProductID: "productB"},
	{UserID: "user2", ProductID: "productC"},
	{UserID: "user3", ProductID: "productA"},
	{UserID: "user3", ProductID: "productD"},
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the three user walkthrough in memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := newApp()
			for _, p := range demoPurchases {
				app.Graph.AddInteraction(p.UserID, p.ProductID)
			}

			out := cmd.OutOrStdout()
			for _, u := range app.Graph.AllUsers() {
				_, _ = fmt.Fprintf(out, "%s products: %v\n", u, app.Graph.ProductsOf(u).Sorted())
			}

			recs, err := app.Engine.Recommend(cmd.Context(), "user1", recommendation.DefaultK)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "Top recommendations for user1: %v\n", recs)
			return nil
		},
	}
}
