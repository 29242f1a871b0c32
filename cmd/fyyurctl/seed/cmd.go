// Package seedcmd implements `fyyurctl seed`.
package seedcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/fyyur/cmd/fyyurctl/shared"
	"github.com/pkordes/fyyur/internal/repo"
	"github.com/pkordes/fyyur/internal/seed"
)

// Command implements `fyyurctl seed`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the seed command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample venues, artists and shows",
		Long:  "Insert the sample venues, artists and shows in one transaction. Run migrate up first.",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	pool, err := c.ctx.OpenPool(cmd.Context())
	if err != nil {
		return err
	}
	defer pool.Close()

	sum, err := seed.Run(cmd.Context(), repo.NewTxManager(pool))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d venues, %d artists, %d shows\n", sum.Venues, sum.Artists, sum.Shows)
	return nil
}
