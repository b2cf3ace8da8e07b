package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"points-rewards/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

type options struct {
	dir      string
	atlasBin string
	baseline string
	dryRun   bool
	timeout  time.Duration
}

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply the points-rewards schema migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dir, "dir", "file://migrations", "migration directory URL")
	root.PersistentFlags().StringVar(&opts.atlasBin, "atlas", "atlas", "atlas binary")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall timeout")

	apply := &cobra.Command{
		Use:   "apply",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd.Context(), opts)
		},
	}
	apply.Flags().StringVar(&opts.baseline, "baseline", "", "baseline version for databases created before migrations were tracked")
	apply.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print pending statements without executing them")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the migration status of the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd.Context(), opts)
		},
	}

	root.AddCommand(apply, status)

	if err := root.ExecuteContext(context.Background()); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func databaseURL() (string, error) {
	var cfg config.DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return "", fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg.BuildDSN(), nil
}

func newClient(opts *options) (*atlasexec.Client, string, error) {
	url, err := databaseURL()
	if err != nil {
		return nil, "", err
	}
	client, err := atlasexec.NewClient(".", opts.atlasBin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create atlas client: %w", err)
	}
	return client, url, nil
}

func runApply(ctx context.Context, opts *options) error {
	client, url, err := newClient(opts)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:             url,
		DirURL:          opts.dir,
		BaselineVersion: opts.baseline,
		DryRun:          opts.dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, f := range res.Applied {
		slog.Info("applied migration", "version", f.Version, "name", f.Name)
	}
	slog.Info("migrations complete",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", opts.dryRun)
	return nil
}

func runStatus(ctx context.Context, opts *options) error {
	client, url, err := newClient(opts)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
		URL:    url,
		DirURL: opts.dir,
	})
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	slog.Info("migration status",
		"status", res.Status,
		"current", res.Current,
		"next", res.Next,
		"pending", len(res.Pending))
	return nil
}
