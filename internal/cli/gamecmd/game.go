package gamecmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	common "github.com/gameshelf/gameshelf/internal/cli/common"
	"github.com/gameshelf/gameshelf/internal/dataset"
	gamesrepo "github.com/gameshelf/gameshelf/internal/repo/gorm/games"
	gamehttp "github.com/gameshelf/gameshelf/internal/server/gamehttp"
	gamesvc "github.com/gameshelf/gameshelf/internal/service/games"
	"github.com/gameshelf/gameshelf/internal/storage"
)

// New returns the `gameshelf game-service` command.
func New() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "game-service",
		Short: "Run the GameShelf game catalog service",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := common.LoadServiceViper("GAMESHELF_GAME", cfgFile, "game_service")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			v.SetDefault("http_addr", ":5001")
			v.SetDefault("dataset", "data/games.csv")

			common.SetupLogger(common.LogSettingsFromViper(v))
			if err := common.ValidateGameConfig(v, false); err != nil {
				return fmt.Errorf("config invalid: %w", err)
			}

			db, err := storage.Open(v.GetString("db"), "data/games.db")
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			if err := gamesrepo.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			repo := gamesrepo.NewRepo(db)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			dsPath := v.GetString("dataset")
			n, err := repo.Count(ctx)
			if err != nil {
				return fmt.Errorf("count games: %w", err)
			}
			if n == 0 {
				rows, err := dataset.Load(dsPath)
				if err != nil {
					return fmt.Errorf("seed catalog: %w", err)
				}
				if err := repo.Seed(ctx, rows); err != nil {
					return fmt.Errorf("seed catalog: %w", err)
				}
				slog.Info("catalog seeded", "rows", len(rows))
			}
			// Replace the catalog when the dataset file changes on disk.
			if err := dataset.Watch(ctx, dsPath, func() {
				rows, err := dataset.Load(dsPath)
				if err != nil {
					slog.Error("dataset reload failed", "path", dsPath, "err", err)
					return
				}
				if err := repo.Reseed(context.Background(), rows); err != nil {
					slog.Error("catalog reseed failed", "err", err)
					return
				}
				slog.Info("catalog reseeded", "rows", len(rows))
			}); err != nil {
				slog.Warn("dataset watch unavailable", "err", err)
			}

			srv := gamehttp.New(gamesvc.NewService(repo))
			addr := v.GetString("http_addr")
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start(addr) }()
			slog.Info("game service listening", "addr", addr)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				slog.Info("shutting down")
				return srv.Shutdown(context.Background())
			}
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file path")
	return cmd
}
