package cli

import (
	"context"
	"fmt"

	"github.com/reomoon/memo/internal/buildinfo"
	"github.com/reomoon/memo/internal/client/config"
	"github.com/reomoon/memo/internal/logging"
	"github.com/spf13/cobra"
)

// appFactory builds the App for a command; replaced in tests.
type appFactory func(ctx context.Context) (*App, error)

// NewRootCommand returns the memo command tree. Without a subcommand it
// starts the REPL.
func NewRootCommand(cfg *config.Config, logger logging.Logger) *cobra.Command {
	return newRootCommand(func(ctx context.Context) (*App, error) {
		return NewApp(ctx, cfg, logger)
	})
}

func newRootCommand(newApp appFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "memo",
		Short:         "Personal memos with AI titles and categories",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			app.Run(cmd.Context())
			return nil
		},
	}

	root.AddCommand(listCmd(newApp))
	root.AddCommand(categoriesCmd(newApp))
	root.AddCommand(versionCmd())
	return root
}

func listCmd(newApp appFactory) *cobra.Command {
	var (
		page     int
		category string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of memos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()
			app.out = cmd.OutOrStdout()

			if category != "" {
				app.controller.FilterByCategory(&category)
			}
			if page != 1 && !app.controller.GoToPage(page) {
				return fmt.Errorf("no such page: %d", page)
			}
			return app.List(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVar(&category, "category", "", "only this category")
	return cmd
}

func categoriesCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the categories in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()
			app.out = cmd.OutOrStdout()
			return app.Categories(cmd.Context())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}
