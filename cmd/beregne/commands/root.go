package commands

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"beregne/internal/config"
	"beregne/internal/logging"
)

var (
	cfgPath string
	cfg     *config.Config
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "beregne",
		Short:        "Beregne 2.0 marketing site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cfgPath)
			if c == nil {
				return err
			}
			cfg = c

			l := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			slog.SetDefault(l)

			if errors.Is(err, fs.ErrNotExist) {
				slog.Warn("config.missing", "path", cfgPath, "note", "running with defaults and environment overrides")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "path to config file")

	root.AddCommand(serveCmd(), renderCmd())
	return root
}
