package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vinayak/database/seeders"
	"github.com/shashiranjanraj/vinayak/pkg/database"
)

// vinayak seed — insert the starter catalog.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the starter catalog into MongoDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		deps, err := mongoDeps(ctx)
		if err != nil {
			return err
		}
		defer database.Disconnect(context.Background()) //nolint:errcheck

		if err := seeders.Run(ctx, deps.Products); err != nil {
			return err
		}
		fmt.Printf("Seeded %d products.\n", seeders.Count())
		return nil
	},
}
