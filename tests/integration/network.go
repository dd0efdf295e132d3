package integration

import (
	"context"
	"testing"
	"time"

	"github.com/rudransh-shrivastava/peer-conn/internal/bridge"
	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/config"
	"github.com/rudransh-shrivastava/peer-conn/internal/db"
	"github.com/rudransh-shrivastava/peer-conn/internal/hub"
	"github.com/rudransh-shrivastava/peer-conn/internal/logger"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/store"
)

// Network is a hub listening on loopback plus the bridges talking to it.
type Network struct {
	hub     *hub.Server
	state   *hub.State
	clients []*hub.Client
	cancel  context.CancelFunc
	ctx     context.Context
	t       *testing.T
}

func NewNetwork(t *testing.T, seeds ...peer.StagedPeer) *Network {
	t.Helper()

	gdb, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open hub db: %v", err)
	}

	cfg := config.Default().Hub
	cfg.Listen = "127.0.0.1:0"
	cfg.Seeds = seeds

	log := logger.Discard()
	state := hub.NewState(cfg, hub.Stores{
		Peers:    store.NewPeerStore(gdb),
		Settings: store.NewSettingStore(gdb),
		Invites:  store.NewInviteStore(gdb),
	}, log)

	srv, err := hub.NewServer(cfg, state, log)
	if err != nil {
		t.Fatalf("Failed to create hub: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	go func() {
		_ = srv.Start(ctx)
	}()

	n := &Network{
		hub:    srv,
		state:  state,
		cancel: cancel,
		ctx:    ctx,
		t:      t,
	}
	t.Cleanup(func() {
		n.Close()
		_ = db.Close(gdb)
	})
	return n
}

// NewBridge starts a bridge against the hub and returns the channel that
// feeds it commands.
func (n *Network) NewBridge() (*bridge.Bridge, chan<- command.Command) {
	n.t.Helper()
	b, commands, _ := n.RunBridge(n.ctx)
	return b, commands
}

// RunBridge is NewBridge with its own context. done closes once Run
// returned.
func (n *Network) RunBridge(ctx context.Context) (*bridge.Bridge, chan<- command.Command, <-chan struct{}) {
	n.t.Helper()

	log := logger.Discard()
	client := hub.NewClient(n.hub.Addr(), "127.0.0.1:0", log)
	n.clients = append(n.clients, client)

	b := bridge.New(bridge.Config{
		Signaler: client,
		Dialer:   client,
		Logger:   log,
		Resubscribe: config.BackoffConfig{
			Initial:    20 * time.Millisecond,
			Multiplier: 2,
			Max:        200 * time.Millisecond,
		},
	})

	commands := make(chan command.Command, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = b.Run(ctx, commands)
	}()
	return b, commands, done
}

func (n *Network) Context() context.Context {
	return n.ctx
}

func (n *Network) Close() {
	n.cancel()
	for _, c := range n.clients {
		_ = c.Close()
	}
	_ = n.hub.Shutdown()
}

// until reads from ch until ok accepts a value or the network times out.
func until[T any](t *testing.T, ch <-chan T, ok func(T) bool) T {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case v, open := <-ch:
			if !open {
				t.Fatal("feed closed")
			}
			if ok(v) {
				return v
			}
		case <-deadline:
			t.Fatal("timeout waiting for update")
		}
	}
}
