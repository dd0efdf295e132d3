package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rudransh-shrivastava/peer-conn/internal/config"
	"github.com/rudransh-shrivastava/peer-conn/internal/logger"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "peerconn",
	Short: "peer connections manager",
	Long: `peerconn runs a connection hub and talks to it: it lists the peers you are
connected to, the rooms you are in and the peers you could connect to, and
lets you act on them.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.peerconn/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "overrides log_level from the config")

	rootCmd.AddCommand(hubCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(connCmd)
	rootCmd.AddCommand(inviteCmd)
	rootCmd.AddCommand(roomCmd)
	rootCmd.AddCommand(bluetoothCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(nukeCmd)
}

// setup loads the config and builds the logger every subcommand uses.
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return cfg, logger.New(level), nil
}
