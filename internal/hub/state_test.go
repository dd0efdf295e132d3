package hub

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/config"
	"github.com/rudransh-shrivastava/peer-conn/internal/db"
	"github.com/rudransh-shrivastava/peer-conn/internal/logger"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/reconcile"
	"github.com/rudransh-shrivastava/peer-conn/internal/store"
)

func setupState(t *testing.T, mutate func(*config.HubConfig)) *State {
	t.Helper()
	gdb, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	cfg := config.Default().Hub
	if mutate != nil {
		mutate(&cfg)
	}
	stores := Stores{
		Peers:    store.NewPeerStore(gdb),
		Settings: store.NewSettingStore(gdb),
		Invites:  store.NewInviteStore(gdb),
	}
	return NewState(cfg, stores, logger.Discard())
}

func readyState(t *testing.T, mutate func(*config.HubConfig)) *State {
	t.Helper()
	s := setupState(t, mutate)
	if res := s.Execute(context.Background(), command.Simple(command.IdentityCreate)); !res.OK {
		t.Fatalf("identity.create failed: %s", res.Err)
	}
	return s
}

func mustOK(t *testing.T, res command.Result) command.Result {
	t.Helper()
	if !res.OK {
		t.Fatalf("expected success, got %q", res.Err)
	}
	return res
}

func latestPeers(s *State) map[string]peer.Peer {
	peers, _ := s.Peers.Latest()
	out := make(map[string]peer.Peer, len(peers))
	for _, p := range peers {
		out[p.Address] = p
	}
	return out
}

func latestStaged(s *State) map[string]peer.StagedPeer {
	staged, _ := s.Staged.Latest()
	out := make(map[string]peer.StagedPeer, len(staged))
	for _, sp := range staged {
		out[sp.Address] = sp
	}
	return out
}

func TestState_RequiresIdentity(t *testing.T) {
	s := setupState(t, nil)
	res := s.Execute(context.Background(), command.Connect("net:a:1~shs:a", command.HubData{}))
	if res.OK || res.Err != ErrNoIdentity.Error() {
		t.Errorf("expected no identity failure, got %+v", res)
	}
}

func TestState_IdentityLifecycle(t *testing.T) {
	s := setupState(t, nil)
	ctx := context.Background()

	if ready, _ := s.Identity.Latest(); ready {
		t.Fatal("expected no identity at start")
	}
	mustOK(t, s.Execute(ctx, command.Simple(command.IdentityCreate)))
	if ready, _ := s.Identity.Latest(); !ready {
		t.Error("expected identity to be ready")
	}
	id := s.HubID()
	if id == "" {
		t.Fatal("expected a hub id")
	}

	res := s.Execute(ctx, command.Simple(command.IdentityUse))
	if res.OK || res.Err != ErrIdentityExists.Error() {
		t.Errorf("expected duplicate identity to fail, got %+v", res)
	}

	mustOK(t, s.Execute(ctx, command.Simple(command.IdentityClear)))
	if s.HasIdentity() {
		t.Error("expected identity cleared")
	}
	mustOK(t, s.Execute(ctx, command.Simple(command.IdentityUse)))
	if s.HubID() != id {
		t.Errorf("expected hub id %s to survive a clear, got %s", id, s.HubID())
	}
}

func TestState_RestoreIdentity(t *testing.T) {
	s := readyState(t, nil)
	id := s.HubID()

	restored := NewState(s.cfg, s.stores, logger.Discard())
	if err := restored.Restore(context.Background()); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if !restored.HasIdentity() || restored.HubID() != id {
		t.Errorf("expected restored identity %s, got %s", id, restored.HubID())
	}
}

func TestState_ConnectAndDisconnect(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()
	addr := "net:10.0.0.2:8008~shs:bob"

	mustOK(t, s.Execute(ctx, command.Connect(addr, command.HubData{Type: "lan", Name: "bob"})))
	p, ok := latestPeers(s)[addr]
	if !ok {
		t.Fatal("expected peer in pool")
	}
	if p.State != peer.StateConnected || p.Type != "lan" || p.Name != "bob" {
		t.Errorf("unexpected peer %+v", p)
	}
	if p.IsInDB {
		t.Error("plain connect must not remember")
	}
	if p.HubBirth == 0 || p.HubUpdated < p.HubBirth {
		t.Errorf("unexpected timestamps %d %d", p.HubBirth, p.HubUpdated)
	}

	mustOK(t, s.Execute(ctx, command.Disconnect(addr)))
	if _, ok := latestPeers(s)[addr]; ok {
		t.Error("expected peer gone after disconnect")
	}
}

func TestState_ConnectUnstages(t *testing.T) {
	addr := "net:192.168.1.4:8008~shs:laptop"
	s := readyState(t, func(c *config.HubConfig) {
		c.Seeds = []peer.StagedPeer{{Address: addr, Hints: peer.Hints{Type: "lan"}, Name: "laptop", Key: "@laptop"}}
	})
	ctx := context.Background()

	mustOK(t, s.Execute(ctx, command.Simple(command.ConnStart)))
	if _, ok := latestStaged(s)[addr]; !ok {
		t.Fatal("expected seed to be staged")
	}

	mustOK(t, s.Execute(ctx, command.Connect(addr, command.HubData{})))
	if _, ok := latestStaged(s)[addr]; ok {
		t.Error("expected connect to unstage")
	}
	p := latestPeers(s)[addr]
	if p.Name != "laptop" || p.Key != "@laptop" || p.Type != "lan" {
		t.Errorf("expected staged metadata to carry over, got %+v", p)
	}
}

func TestState_RememberConnectAndForget(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()
	addr := "net:pub.example:8008~shs:pub"

	mustOK(t, s.Execute(ctx, command.RememberConnect(addr, command.HubData{Type: "pub"})))
	if !latestPeers(s)[addr].IsInDB {
		t.Error("expected remembered peer to be marked IsInDB")
	}

	mustOK(t, s.Execute(ctx, command.DisconnectForget(addr)))
	if _, ok := latestPeers(s)[addr]; ok {
		t.Error("expected peer gone")
	}
	if ok, _ := s.stores.Peers.IsRemembered(ctx, addr); ok {
		t.Error("expected peer forgotten")
	}
}

func TestState_StartReconnectsRemembered(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()
	addr := "net:pub.example:8008~shs:pub"

	if err := s.stores.Peers.Remember(ctx, addr, command.HubData{Type: "pub", Name: "Pub"}); err != nil {
		t.Fatalf("Remember failed: %v", err)
	}
	mustOK(t, s.Execute(ctx, command.Simple(command.ConnStart)))

	p, ok := latestPeers(s)[addr]
	if !ok || !p.IsInDB || p.Name != "Pub" {
		t.Errorf("expected remembered peer reconnected, got %+v", p)
	}
}

func TestState_RebootKeepsHostedInvites(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()

	invite := mustOK(t, s.Execute(ctx, command.Simple(command.DHTInviteCreate))).Value
	mustOK(t, s.Execute(ctx, command.Connect("net:a:1~shs:a", command.HubData{})))
	mustOK(t, s.Execute(ctx, command.Simple(command.ConnReboot)))

	if len(latestPeers(s)) != 0 {
		t.Error("expected pool to be cleared by reboot")
	}
	if sp, ok := latestStaged(s)[invite]; !ok || sp.Role != roleServer {
		t.Errorf("expected hosted invite staged after reboot, got %+v", sp)
	}
}

func TestState_DHTInvites(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()

	invite := mustOK(t, s.Execute(ctx, command.Simple(command.DHTInviteCreate))).Value
	if !strings.HasPrefix(invite, "dht:") || !strings.HasSuffix(invite, ":"+s.HubID()) {
		t.Fatalf("unexpected invite %q", invite)
	}
	sp, ok := latestStaged(s)[invite]
	if !ok || sp.Role != roleServer || sp.Category() != peer.CategoryDHT {
		t.Errorf("expected staged server invite, got %+v", sp)
	}

	if res := s.Execute(ctx, command.AcceptDHTInvite(invite)); res.OK {
		t.Error("expected own invite to be rejected")
	}

	mustOK(t, s.Execute(ctx, command.RemoveDHTInvite(invite)))
	if _, ok := latestStaged(s)[invite]; ok {
		t.Error("expected invite unstaged")
	}
	if res := s.Execute(ctx, command.RemoveDHTInvite(invite)); res.OK {
		t.Error("expected second removal to fail")
	}

	remote := "dht:abc:other-hub"
	mustOK(t, s.Execute(ctx, command.AcceptDHTInvite(remote)))
	if p := latestPeers(s)[remote]; p.Category() != peer.CategoryDHT || !p.IsInDB {
		t.Errorf("expected remembered dht peer, got %+v", p)
	}
}

func TestState_AcceptInvite(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()

	mustOK(t, s.Execute(ctx, command.AcceptInvite("pub.example:8008:@pubkey.ed25519~seedseed")))
	p, ok := latestPeers(s)["net:pub.example:8008~shs:pubkey"]
	if !ok || p.Key != "@pubkey.ed25519" || p.Category() != peer.CategoryPub {
		t.Errorf("expected pub peer, got %+v", p)
	}

	if res := s.Execute(ctx, command.AcceptInvite("garbage")); res.OK {
		t.Error("expected malformed invite to fail")
	}
}

func TestState_ClaimInvite(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()

	res := s.Execute(ctx, command.ClaimInvite("https://room.example/join?invite=abc"))
	if res.OK || res.Err != ErrRoomRejected.Error() {
		t.Errorf("expected rejection without address, got %+v", res)
	}

	room := "net:room.example:8008~shs:roomkey"
	mustOK(t, s.Execute(ctx, command.ClaimInvite("https://room.example/join?invite=abc&multiserverAddress="+room)))
	p, ok := latestPeers(s)[room]
	if !ok || p.Category() != peer.CategoryRoom || p.Key != "@roomkey" || !p.IsInDB {
		t.Errorf("expected remembered room, got %+v", p)
	}
	want := peer.RoomTraits{OpenInvites: true, SupportsHTTPAuth: true, SupportsAliases: true, Membership: true}
	if p.RoomTraits != want {
		t.Errorf("expected claimed room to carry %+v, got %+v", want, p.RoomTraits)
	}

	mustOK(t, s.Execute(ctx, command.Simple(command.ConnReboot)))
	if got := latestPeers(s)[room].RoomTraits; got != want {
		t.Errorf("expected traits restored after reboot, got %+v", got)
	}
}

func TestState_SignIn(t *testing.T) {
	s := readyState(t, nil)
	room := "net:room.example:8008~shs:roomkey"

	mustOK(t, s.Execute(context.Background(), command.SignIn("ssb:experimental?action=start-http-auth&sid=x&multiserverAddress="+room)))
	p := latestPeers(s)[room]
	if p.Category() != peer.CategoryRoom {
		t.Errorf("expected room peer, got %+v", p)
	}
	if !p.SupportsHTTPAuth || !p.Membership || p.OpenInvites {
		t.Errorf("unexpected traits after sign in %+v", p.RoomTraits)
	}
}

func TestState_ConsumeAlias(t *testing.T) {
	s := readyState(t, nil)
	room := "net:room.example:8008~shs:roomkey"
	uri := "https://alice.room.example/?alias=alice&roomId=@roomkey&userId=@alice&multiserverAddress=" + room

	res := mustOK(t, s.Execute(context.Background(), command.ConsumeAlias(uri)))
	if res.Value != "@alice" {
		t.Errorf("expected rpc id @alice, got %q", res.Value)
	}

	var tunnel peer.Peer
	for _, p := range latestPeers(s) {
		if strings.HasPrefix(p.Address, "tunnel:") {
			tunnel = p
		}
	}
	roomKey, ok := reconcile.ParseTunnel(tunnel.Address, tunnel.Key)
	if !ok || roomKey != "@roomkey" {
		t.Errorf("expected tunnel through @roomkey, got %q from %+v", roomKey, tunnel)
	}

	if !latestPeers(s)[room].SupportsAliases {
		t.Error("expected alias room to support aliases")
	}

	if res := s.Execute(context.Background(), command.ConsumeAlias("https://x.example/?multiserverAddress="+room)); res.OK {
		t.Error("expected alias without ids to fail")
	}
}

func TestState_ReconnectKeepsRoomTraits(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()
	room := "net:room.example:8008~shs:roomkey"

	mustOK(t, s.Execute(ctx, command.SignIn("ssb:experimental?action=start-http-auth&sid=x&multiserverAddress="+room)))
	mustOK(t, s.Execute(ctx, command.Connect(room, command.HubData{Type: "room"})))

	if p := latestPeers(s)[room]; !p.Membership || !p.SupportsHTTPAuth {
		t.Errorf("expected plain reconnect to keep traits, got %+v", p.RoomTraits)
	}
}

func TestState_ConcurrentChangesPublishFinalPool(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addr := fmt.Sprintf("net:10.0.0.%d:8008~shs:k%d", i, i)
			s.Execute(ctx, command.Connect(addr, command.HubData{Type: "lan"}))
			if i%2 == 0 {
				s.Execute(ctx, command.Disconnect(addr))
			}
		}()
	}
	wg.Wait()

	s.mu.Lock()
	pool := maps.Clone(s.pool)
	s.mu.Unlock()
	got := latestPeers(s)
	if len(pool) != 16 || len(got) != len(pool) {
		t.Fatalf("expected the last publication to hold all 16 pool peers, got %d of %d", len(got), len(pool))
	}
	for addr := range got {
		if _, ok := pool[addr]; !ok {
			t.Errorf("published %s which is not in the pool", addr)
		}
	}
}

func TestState_BluetoothSearch(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()

	res := s.Execute(ctx, command.SearchBluetooth(1000))
	if res.OK || res.Err != ErrBluetoothOff.Error() {
		t.Errorf("expected disabled bluetooth failure, got %+v", res)
	}

	on := readyState(t, func(c *config.HubConfig) { c.Connectivity.Bluetooth = true })
	on.now = func() time.Time { return time.UnixMilli(5000) }
	mustOK(t, on.Execute(ctx, command.SearchBluetooth(1000)))
	flags, _ := on.Flags.Latest()
	if flags.BluetoothLastScanned != 5000 {
		t.Errorf("expected scan stamp 5000, got %d", flags.BluetoothLastScanned)
	}
}

func TestState_Settings(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()

	mustOK(t, s.Execute(ctx, command.SetHops(3)))
	mustOK(t, s.Execute(ctx, command.SetShowFollows(true)))

	all, err := s.stores.Settings.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if all["settings.hops"] != "3" || all["settings.showFollows"] != "true" {
		t.Errorf("unexpected settings %v", all)
	}
}

func TestState_Nuke(t *testing.T) {
	s := readyState(t, nil)
	ctx := context.Background()

	mustOK(t, s.Execute(ctx, command.RememberConnect("net:a:1~shs:a", command.HubData{})))
	mustOK(t, s.Execute(ctx, command.Simple(command.DHTInviteCreate)))
	mustOK(t, s.Execute(ctx, command.Simple(command.Nuke)))

	if s.HasIdentity() || s.HubID() != "" {
		t.Error("expected identity wiped")
	}
	if rs, _ := s.stores.Peers.Remembered(ctx); len(rs) != 0 {
		t.Errorf("expected no remembered peers, got %d", len(rs))
	}
	if hs, _ := s.stores.Invites.Hosted(ctx); len(hs) != 0 {
		t.Errorf("expected no hosted invites, got %d", len(hs))
	}
	if len(latestPeers(s)) != 0 || len(latestStaged(s)) != 0 {
		t.Error("expected empty pool and staging")
	}

	restored := NewState(s.cfg, s.stores, logger.Discard())
	_ = restored.Restore(ctx)
	if restored.HasIdentity() {
		t.Error("expected no identity to restore after nuke")
	}
}

func TestState_RunRepublishes(t *testing.T) {
	s := readyState(t, func(c *config.HubConfig) {
		c.Refresh = config.BackoffConfig{Initial: 10 * time.Millisecond, Multiplier: 1, Max: 10 * time.Millisecond}
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := s.Peers.Subscribe(ctx)
	go s.Run(ctx)

	for i := 0; i < 3; i++ {
		select {
		case <-updates:
		case <-time.After(2 * time.Second):
			t.Fatalf("expected refresh %d", i)
		}
	}
}

func TestParseDHTInvite(t *testing.T) {
	tests := []struct {
		invite string
		ok     bool
	}{
		{"dht:seed:hub", true},
		{"dht:seed", false},
		{"dht::hub", false},
		{"dht:seed:", false},
		{"dht:a:b:c", false},
		{"net:a:b", false},
	}
	for _, tt := range tests {
		_, _, err := parseDHTInvite(tt.invite)
		if (err == nil) != tt.ok {
			t.Errorf("parseDHTInvite(%q) err=%v, want ok=%v", tt.invite, err, tt.ok)
		}
		if err != nil && !errors.Is(err, ErrInvalidInvite) {
			t.Errorf("parseDHTInvite(%q) should wrap ErrInvalidInvite", tt.invite)
		}
	}
}
