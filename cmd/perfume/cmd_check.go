package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration, the catalog and the shop links",
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	brands, err := a.catalog.Brands()
	if err != nil {
		return err
	}
	shop, err := a.shop()
	if err != nil {
		return err
	}
	for _, id := range shopIDs(a) {
		if _, err := a.catalog.ByID(id); err != nil {
			return fmt.Errorf("shop link for unknown perfume id %q", id)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d perfumes, %d brands, %d shop links\n",
		a.catalog.Len(), len(brands), shop.Len())
	return nil
}

func shopIDs(a *app) []string {
	var ids []string
	for id := range a.settings.Shop.Links {
		ids = append(ids, id)
	}
	for id := range a.settings.Shop.Handles {
		ids = append(ids, id)
	}
	return ids
}
