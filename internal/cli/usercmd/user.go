package usercmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	common "github.com/gameshelf/gameshelf/internal/cli/common"
	usersrepo "github.com/gameshelf/gameshelf/internal/repo/gorm/users"
	userhttp "github.com/gameshelf/gameshelf/internal/server/userhttp"
	usersvc "github.com/gameshelf/gameshelf/internal/service/users"
	"github.com/gameshelf/gameshelf/internal/storage"
)

// New returns the `gameshelf user-service` command.
func New() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "user-service",
		Short: "Run the GameShelf user/favorites service",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := common.LoadServiceViper("GAMESHELF_USER", cfgFile, "user_service")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			v.SetDefault("http_addr", ":5002")

			common.SetupLogger(common.LogSettingsFromViper(v))
			if err := common.ValidateUserConfig(v, false); err != nil {
				return fmt.Errorf("config invalid: %w", err)
			}

			db, err := storage.Open(v.GetString("db"), "data/users.db")
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			if err := usersrepo.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := userhttp.New(usersvc.NewService(usersrepo.NewRepo(db)))
			addr := v.GetString("http_addr")
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start(addr) }()
			slog.Info("user service listening", "addr", addr)

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
