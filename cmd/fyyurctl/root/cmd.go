// Package rootcmd wires the root cobra.Command for fyyurctl.
package rootcmd

import (
	"github.com/spf13/cobra"

	migratecmd "github.com/pkordes/fyyur/cmd/fyyurctl/migrate"
	seedcmd "github.com/pkordes/fyyur/cmd/fyyurctl/seed"
	"github.com/pkordes/fyyur/cmd/fyyurctl/shared"
)

// New creates and returns the root cobra.Command for fyyurctl.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "fyyurctl",
		Short:         "Fyyur database administration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().StringVar(
		&ctx.DatabaseURL, "database-url", "",
		"Postgres connection string (default: $DATABASE_URL, then .env)",
	)

	root.AddCommand(
		migratecmd.New(ctx).Cmd(),
		seedcmd.New(ctx).Cmd(),
	)

	return root
}
