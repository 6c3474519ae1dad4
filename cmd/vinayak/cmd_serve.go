package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/app/routes"
	"github.com/shashiranjanraj/vinayak/app/services"
	"github.com/shashiranjanraj/vinayak/config"
	"github.com/shashiranjanraj/vinayak/internal/server"
	"github.com/shashiranjanraj/vinayak/pkg/cache"
	"github.com/shashiranjanraj/vinayak/pkg/database"
	"github.com/shashiranjanraj/vinayak/pkg/logger"
	"github.com/shashiranjanraj/vinayak/pkg/router"
)

// mongoDeps connects the document store and returns production repositories.
// Mongo is required; Redis is best-effort.
func mongoDeps(ctx context.Context) (routes.Deps, error) {
	if err := config.Load(); err != nil {
		return routes.Deps{}, err
	}
	if err := database.Connect(ctx); err != nil {
		return routes.Deps{}, err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, serving without cache", "error", err)
	}

	db := database.DB()
	return routes.Deps{
		Products: repositories.NewMongoProductRepository(db),
		Orders:   repositories.NewMongoOrderRepository(db),
		Users:    repositories.NewMongoUserRepository(db),
	}, nil
}

// vinayak serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		deps, err := mongoDeps(ctx)
		if err != nil {
			return err
		}
		defer database.Disconnect(context.Background()) //nolint:errcheck

		snapshot := services.NewStatsSnapshot(deps.Products, deps.Orders)
		if err := snapshot.Start(); err != nil {
			return err
		}
		defer snapshot.Stop()

		return server.Run(server.Build(deps).Handler())
	},
}

// vinayak route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		routes.RegisterAPI(r, routes.Deps{
			Products: repositories.NewMemoryProductRepository(),
			Orders:   repositories.NewMemoryOrderRepository(),
			Users:    repositories.NewMemoryUserRepository(),
		})

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
