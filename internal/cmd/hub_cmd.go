package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rudransh-shrivastava/peer-conn/internal/db"
	"github.com/rudransh-shrivastava/peer-conn/internal/hub"
	"github.com/rudransh-shrivastava/peer-conn/internal/store"
)

var hubCmd = &cobra.Command{
	Use:   "hub",
	Short: "runs the connection hub",
	Long:  `runs the hub that keeps the connection pool, the staging area and the remembered peers, and serves them to clients over QUIC`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(cfg.Hub.Database), 0755); err != nil {
			return err
		}
		gdb, err := db.Open(cfg.Hub.Database)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close(gdb) }()

		state := hub.NewState(cfg.Hub, hub.Stores{
			Peers:    store.NewPeerStore(gdb),
			Settings: store.NewSettingStore(gdb),
			Invites:  store.NewInviteStore(gdb),
		}, log)
		if err := state.Restore(cmd.Context()); err != nil {
			return err
		}

		srv, err := hub.NewServer(cfg.Hub, state, log)
		if err != nil {
			return err
		}
		defer func() { _ = srv.Shutdown() }()

		if err := srv.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
