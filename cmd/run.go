package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"firestige.xyz/gensource/internal/config"
	"firestige.xyz/gensource/internal/host"
	"firestige.xyz/gensource/internal/log"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load the configured plugin and run the capture loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log.Init(cfg.Logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return host.NewDriver(cfg.Source, cfg.Driver).Run(ctx)
	},
}
