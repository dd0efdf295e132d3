package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rudransh-shrivastava/peer-conn/internal/animlist"
	"github.com/rudransh-shrivastava/peer-conn/internal/bridge"
	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/config"
	"github.com/rudransh-shrivastava/peer-conn/internal/db"
	"github.com/rudransh-shrivastava/peer-conn/internal/hub"
	"github.com/rudransh-shrivastava/peer-conn/internal/reconcile"
	"github.com/rudransh-shrivastava/peer-conn/internal/store"
	"github.com/rudransh-shrivastava/peer-conn/internal/view"
)

const clearScreen = "\033[H\033[2J"

var createIdentity bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "shows live connections",
	Long:  `waits for the hub identity, starts connections and keeps redrawing the list of rooms, connected peers and staged peers`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		c, err := openClient(cfg, log)
		if err != nil {
			return err
		}
		defer c.close()

		commands := make(chan command.Command, 8)
		g, ctx := errgroup.WithContext(cmd.Context())

		g.Go(func() error {
			return c.bridge.Run(ctx, commands)
		})
		g.Go(func() error {
			if createIdentity {
				commands <- command.Simple(command.IdentityCreate)
			}
			if err := awaitIdentity(ctx, c.bridge); err != nil {
				return nil
			}

			started := c.bridge.ConnStarted.Subscribe(ctx)
			commands <- command.Simple(command.ConnStart)
			go func() {
				if _, ok := <-started; ok {
					log.Info("Connections started")
				}
			}()

			return watch(ctx, cmd.OutOrStdout(), c.bridge, cfg.Client.AnimationDuration)
		})

		if err := g.Wait(); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&createIdentity, "create", false, "create an identity if the hub has none")
}

// client bundles what talking to the hub through a bridge needs.
type client struct {
	hub    *hub.Client
	bridge *bridge.Bridge
	close  func()
}

func openClient(cfg *config.Config, log *logrus.Logger) (*client, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Client.Notes), 0755); err != nil {
		return nil, err
	}
	gdb, err := db.Open(cfg.Client.Notes)
	if err != nil {
		return nil, err
	}

	hc := hub.NewClient(cfg.Client.Hub, cfg.Client.Listen, log)
	b := bridge.New(bridge.Config{
		Signaler:    hc,
		Dialer:      hc,
		Logger:      log,
		Notes:       store.NewNoteStore(gdb),
		Resubscribe: cfg.Client.Resubscribe,
	})
	return &client{
		hub:    hc,
		bridge: b,
		close: func() {
			_ = hc.Close()
			_ = db.Close(gdb)
		},
	}, nil
}

// awaitIdentity shows a spinner until the hub reports an identity.
func awaitIdentity(ctx context.Context, b *bridge.Bridge) error {
	if b.IdentityReady() {
		return nil
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("waiting for identity"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()

	done := make(chan error, 1)
	go func() { done <- b.AwaitIdentity(ctx) }()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case err := <-done:
			return err
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}

// watch redraws the list on every change and on a steady tick so that
// transitions and relative times move.
func watch(ctx context.Context, w io.Writer, b *bridge.Bridge, d time.Duration) error {
	list := animlist.New(view.RowKey, animlist.Options{Duration: d})
	go list.Run(ctx)
	rec := reconcile.NewReconciler()

	peers := b.Peers.Subscribe(ctx)
	rooms := b.Rooms.Subscribe(ctx)
	staged := b.Staged.Subscribe(ctx)

	ticker := time.NewTicker(d / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-peers:
		case <-rooms:
		case <-staged:
		case <-ticker.C:
		}

		p, _ := b.Peers.Latest()
		r, _ := b.Rooms.Latest()
		s, _ := b.Staged.Latest()
		out, _ := rec.Update(p, r, s)

		now := time.Now()
		list.Update(view.Rows(out, now))

		flags, _ := b.Flags.Latest()
		fmt.Fprint(w, clearScreen)
		finished, err := view.Render(w, list.Entries(), flags, now, list.Duration())
		if err != nil {
			return err
		}
		for _, key := range finished {
			list.Complete(key)
		}
	}
}
