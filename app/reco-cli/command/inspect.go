package command

import (
	"fmt"
	"myGreenReco/domain"

	"github.com/spf13/cobra"
)

func newSimilarityCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <userA> <userB>",
		Short: "Print the number of products two users share",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := SimilarityRequest{UserA: args[0], UserB: args[1]}
			if err := validateRequest(req); err != nil {
				return err
			}

			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}

			score := app.Engine.Similarity(domain.UserID(req.UserA), domain.UserID(req.UserB))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), score)
			return nil
		},
	}
}

func newProductsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "products <user>",
		Short: "List the products a user has bought",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := UserRequest{UserID: args[0]}
			if err := validateRequest(req); err != nil {
				return err
			}

			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}

			for _, p := range app.Graph.ProductsOf(domain.UserID(req.UserID)).Sorted() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newUsersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List known users with their product counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}

			for _, u := range app.Graph.AllUsers() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", u, app.Graph.ProductsOf(u).Len())
			}
			return nil
		},
	}
}
