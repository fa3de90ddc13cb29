package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"newsletter-delivery/internal/handler/middleware"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned migrations and atlas.sum")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	logger := middleware.NewLogger(config.LogConfig{
		Level:      "info",
		TimeZone:   "UTC",
		TimeFormat: time.RFC3339,
	}).GetSlogLogger()

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := apply(ctx, logger, *dir, *atlasBin, dbCfg.BuildDSN(), *dryRun); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

func apply(ctx context.Context, logger *slog.Logger, dir, atlasBin, dsn string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return errs.Wrap(err, "prepare atlas working dir")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "migrate apply")
	}

	for _, f := range res.Applied {
		logger.Info("マイグレーション適用", "version", f.Version, "name", f.Name)
	}
	logger.Info("マイグレーション完了",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", dryRun)
	return nil
}
