package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <slug>",
		Short: "Print the perfumes most similar to one perfume",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecommend,
	}
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	ref, recs, err := a.engine.RecommendBySlug(args[0])
	if err != nil {
		return fmt.Errorf("recommend %q: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(out, recs)
	}

	fmt.Fprintf(out, "Similar to %s by %s:\n", ref.DisplayName(), ref.Brand)
	if len(recs) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, p := range recs {
		printPerfumeLine(out, p)
	}
	return nil
}
