// Package migratecmd implements `fyyurctl migrate`.
package migratecmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/fyyur/cmd/fyyurctl/shared"
	"github.com/pkordes/fyyur/migrations"
)

// Command implements `fyyurctl migrate`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the migrate command and its up/down/status subcommands.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database schema migrations",
		RunE:  func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	c.cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  c.withProvider(up),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE:  c.withProvider(down),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE:  c.withProvider(status),
		},
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

type action func(ctx context.Context, p *goose.Provider, out io.Writer) error

func (c *Command) withProvider(fn action) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		db, err := c.ctx.OpenSQL(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		p, err := migrations.NewProvider(db)
		if err != nil {
			return fmt.Errorf("load migrations: %w", err)
		}
		return fn(cmd.Context(), p, cmd.OutOrStdout())
	}
}

func up(ctx context.Context, p *goose.Provider, out io.Writer) error {
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "No pending migrations")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(out, "Applied %s (%s)\n", r.Source.Path, r.Duration)
	}
	return nil
}

func down(ctx context.Context, p *goose.Provider, out io.Writer) error {
	r, err := p.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	fmt.Fprintf(out, "Rolled back %s (%s)\n", r.Source.Path, r.Duration)
	return nil
}

func status(ctx context.Context, p *goose.Provider, out io.Writer) error {
	statuses, err := p.Status(ctx)
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		applied := "-"
		if s.State == goose.StateApplied {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}
