package main

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/KurtErsin/perfume/internal/filter"
	"github.com/KurtErsin/perfume/pkg/models"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter the catalog and print the grouped result",
		RunE:  runQuery,
	}
	cmd.Flags().String("search", "", "case-insensitive search over name, brand and notes")
	cmd.Flags().String("gender", "", "male, female or unisex")
	cmd.Flags().StringSlice("note", nil, "required note (repeatable)")
	cmd.Flags().String("brand", "", "exact brand")
	cmd.Flags().Bool("niche", false, "niche perfumes only")
	cmd.Flags().Bool("size100ml", false, "only perfumes available in 100ml")
	cmd.Flags().Bool("new", false, "new arrivals only")
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

// queryValues turns the query flags into URL values so the API and the CLI
// share one parser.
func queryValues(cmd *cobra.Command) url.Values {
	v := url.Values{}
	for _, name := range []string{filter.ParamSearch, filter.ParamGender, filter.ParamBrand} {
		if s, _ := cmd.Flags().GetString(name); s != "" {
			v.Set(name, s)
		}
	}
	notes, _ := cmd.Flags().GetStringSlice(filter.ParamNote)
	for _, n := range notes {
		v.Add(filter.ParamNote, n)
	}
	for _, name := range []string{filter.ParamNiche, filter.ParamSize100ml, filter.ParamNew} {
		if on, _ := cmd.Flags().GetBool(name); on {
			v.Set(name, strconv.FormatBool(on))
		}
	}
	return v
}

func runQuery(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	state, err := filter.FromValues(queryValues(cmd))
	if err != nil {
		return err
	}
	res, err := a.engine.Query(state)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(out, res)
	}

	fmt.Fprintln(out, res.Summary())
	for _, g := range res.Groups {
		fmt.Fprintf(out, "\n%s (%d)\n", g.Brand, len(g.Perfumes))
		for _, p := range g.Perfumes {
			printPerfumeLine(out, p)
		}
	}
	return nil
}

func printPerfumeLine(w io.Writer, p models.Perfume) {
	fmt.Fprintf(w, "  %-40s %-8s %s\n", p.DisplayName(), p.Gender, p.Slug)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
