// Command migrate applies or inspects the embedded database migrations.
//
//	migrate up        apply all pending migrations
//	migrate down      roll back the latest migration
//	migrate status    list migrations and their state
//
// The connection string comes from --dsn or DATABASE_DSN.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/jvedigdev/ai-job-ace/internal/adapter/postgres"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string (env DATABASE_DSN)")

	provider := func() (*goose.Provider, error) {
		if dsn == "" {
			return nil, errors.New("no DSN: set --dsn or DATABASE_DSN")
		}
		return postgres.NewMigrator(dsn)
	}

	cmd.AddCommand(
		newUpCommand(provider),
		newDownCommand(provider),
		newStatusCommand(provider),
	)
	return cmd
}

type providerFunc func() (*goose.Provider, error)

func newUpCommand(open providerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open()
			if err != nil {
				return err
			}
			defer p.Close()

			results, err := p.Up(cmd.Context())
			if err != nil {
				return fmt.Errorf("up: %w", err)
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				return nil
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond))
			}
			return nil
		},
	}
}

func newDownCommand(open providerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open()
			if err != nil {
				return err
			}
			defer p.Close()

			r, err := p.Down(cmd.Context())
			if errors.Is(err, goose.ErrNoNextVersion) {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to roll back")
				return nil
			}
			if err != nil {
				return fmt.Errorf("down: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d %s\n", r.Source.Version, r.Source.Path)
			return nil
		},
	}
}

func newStatusCommand(open providerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of every migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := open()
			if err != nil {
				return err
			}
			defer p.Close()

			statuses, err := p.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
			for _, s := range statuses {
				applied := "-"
				if !s.AppliedAt.IsZero() {
					applied = s.AppliedAt.UTC().Format(time.RFC3339)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
			}
			return tw.Flush()
		},
	}
}
