package command

import (
	"fmt"
	"myGreenReco/domain"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newRecommendCmd(opts *options) *cobra.Command {
	var (
		k          int
		withScores bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <user>",
		Short: "Recommend products a user has not bought yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := RecommendRequest{UserID: args[0], K: k}
			if err := validateRequest(req); err != nil {
				return err
			}

			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}

			recs, err := app.Engine.RecommendScored(cmd.Context(), domain.UserID(req.UserID), req.K)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if withScores {
					return enc.Encode(recs)
				}
				return enc.Encode(productIDs(recs))
			case len(recs) == 0:
				_, _ = fmt.Fprintf(out, "no recommendations for %s\n", req.UserID)
			case withScores:
				for _, r := range recs {
					_, _ = fmt.Fprintf(out, "%s\t%d\n", r.ProductID, r.Score)
				}
			default:
				for _, r := range recs {
					_, _ = fmt.Fprintln(out, r.ProductID)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", opts.cfg.Recommend.DefaultK, "maximum number of recommendations")
	cmd.Flags().BoolVar(&withScores, "scores", false, "print the aggregated score next to each product")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as json")
	return cmd
}

func productIDs(recs []domain.Recommendation) []domain.ProductID {
	ids := make([]domain.ProductID, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ProductID)
	}
	return ids
}
