package integration

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/rudransh-shrivastava/peer-conn/internal/bridge"
	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/menu"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/reconcile"
	"github.com/rudransh-shrivastava/peer-conn/internal/view"
)

const seedAddress = "net:10.0.0.7:8008~shs:lanpeer"

func hasStaged(address string) func([]peer.StagedPeer) bool {
	return func(staged []peer.StagedPeer) bool {
		return slices.ContainsFunc(staged, func(sp peer.StagedPeer) bool { return sp.Address == address })
	}
}

func connected(address string) func([]peer.Peer) bool {
	return func(peers []peer.Peer) bool {
		return slices.ContainsFunc(peers, func(p peer.Peer) bool {
			return p.Address == address && p.State == peer.StateConnected
		})
	}
}

func TestBridgeIdentityAndStart(t *testing.T) {
	net := NewNetwork(t)
	b, commands := net.NewBridge()

	if b.IdentityReady() {
		t.Fatal("expected no identity before bootstrap")
	}
	start(t, b, commands)
	if !b.IdentityReady() {
		t.Error("expected identity after bootstrap")
	}
}

func TestBridgeConnectFlowsToRows(t *testing.T) {
	net := NewNetwork(t, peer.StagedPeer{
		Hints:   peer.Hints{Type: "lan"},
		Address: seedAddress,
		Key:     "@lanpeer.ed25519",
		Name:    "laptop",
	})
	ctx := net.Context()
	b, commands := net.NewBridge()

	staged := b.Staged.Subscribe(ctx)
	peers := b.Peers.Subscribe(ctx)

	start(t, b, commands)

	until(t, staged, hasStaged(seedAddress))

	commands <- command.Connect(seedAddress, command.HubData{Type: "lan"})
	pool := until(t, peers, connected(seedAddress))
	remaining := until(t, staged, func(s []peer.StagedPeer) bool { return !hasStaged(seedAddress)(s) })

	rows := view.Rows(reconcile.Reconcile(pool, nil, remaining), time.Now())
	row, ok := findRow(rows, seedAddress)
	if !ok {
		t.Fatalf("expected a row for %s, got %+v", seedAddress, rows)
	}
	if row.Context != menu.ContextConnected {
		t.Errorf("expected connected context, got %v", row.Context)
	}

	commands <- command.DisconnectForget(seedAddress)
	until(t, peers, func(p []peer.Peer) bool { return !connected(seedAddress)(p) })
}

func TestBridgeRoomClaim(t *testing.T) {
	net := NewNetwork(t)
	ctx := net.Context()
	b, commands := net.NewBridge()

	responses := b.AcceptInviteResponse.Subscribe(ctx)
	rooms := b.Rooms.Subscribe(ctx)

	start(t, b, commands)

	commands <- command.ClaimInvite("https://room.example/join?invite=abc")
	if res := until(t, responses, func(command.Result) bool { return true }); res.OK {
		t.Error("expected a claim without an address to be rejected")
	}

	room := "net:room.example:8008~shs:roomkey"
	commands <- command.ClaimInvite("https://room.example/join?invite=abc&multiserverAddress=" + room)
	if res := until(t, responses, func(command.Result) bool { return true }); !res.OK {
		t.Fatalf("expected claim to succeed, got %q", res.Err)
	}

	got := until(t, rooms, func(r []peer.Room) bool { return len(r) == 1 })
	if got[0].Address != room {
		t.Errorf("expected room %s, got %+v", room, got[0])
	}
}

func TestBridgeInvalidCommandResponds(t *testing.T) {
	net := NewNetwork(t)
	ctx := net.Context()
	b, _ := net.NewBridge()

	responses := b.AcceptDHTInviteResponse.Subscribe(ctx)
	b.Dispatch(ctx, command.AcceptDHTInvite(""))

	res := until(t, responses, func(command.Result) bool { return true })
	if res.OK {
		t.Error("expected an empty invite to be refused")
	}
}

func TestBridgeRunReturnsOnCancel(t *testing.T) {
	net := NewNetwork(t)
	ctx, cancel := context.WithCancel(net.Context())
	defer cancel()
	b, commands, done := net.RunBridge(ctx)

	start(t, b, commands)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("expected Run to return after its context ended")
	}
}

func TestTwoBridgesBootstrapTogether(t *testing.T) {
	net := NewNetwork(t)
	a, aCommands := net.NewBridge()
	b, bCommands := net.NewBridge()

	aCommands <- command.Simple(command.IdentityCreate)
	bCommands <- command.Simple(command.IdentityCreate)

	ctx, cancel := context.WithTimeout(net.Context(), 5*time.Second)
	defer cancel()
	for _, br := range []*bridge.Bridge{a, b} {
		if err := br.AwaitIdentity(ctx); err != nil {
			t.Fatalf("AwaitIdentity failed: %v", err)
		}
	}
}

func TestTwoBridgesSeeTheSamePool(t *testing.T) {
	net := NewNetwork(t, peer.StagedPeer{Hints: peer.Hints{Type: "lan"}, Address: seedAddress})
	ctx := net.Context()
	a, aCommands := net.NewBridge()
	b, _ := net.NewBridge()
	watched := b.Peers.Subscribe(ctx)

	start(t, a, aCommands)
	aCommands <- command.Connect(seedAddress, command.HubData{Type: "lan"})

	until(t, watched, connected(seedAddress))
}

// start creates an identity and starts connections, waiting for both.
func start(t *testing.T, b *bridge.Bridge, commands chan<- command.Command) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	started := b.ConnStarted.Subscribe(ctx)
	commands <- command.Simple(command.IdentityCreate)
	if err := b.AwaitIdentity(ctx); err != nil {
		t.Fatalf("AwaitIdentity failed: %v", err)
	}

	commands <- command.Simple(command.ConnStart)
	res := until(t, started, func(command.Result) bool { return true })
	if !res.OK {
		t.Fatalf("conn.start failed: %s", res.Err)
	}
}

func findRow(rows []view.Row, address string) (view.Row, bool) {
	for _, r := range rows {
		if r.Address == address {
			return r, true
		}
	}
	return view.Row{}, false
}
