package reconcile

import (
	"testing"

	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

func TestParseTunnel(t *testing.T) {
	roomKey, ok := ParseTunnel("tunnel:R1:P1", "P1")
	if !ok || roomKey != "R1" {
		t.Errorf("expected R1, got %q ok=%v", roomKey, ok)
	}
}

func TestParseTunnel_Malformed(t *testing.T) {
	cases := []struct {
		address, key string
	}{
		{"tunnel:P1", "P1"},
		{"tunnel:R1:P1", ""},
		{"net:R1:P1", "P1"},
		{"tunnel::P1", "P1"},
		{"tunnel:R1:P2", "P1"},
		{"", ""},
	}
	for _, c := range cases {
		if roomKey, ok := ParseTunnel(c.address, c.key); ok {
			t.Errorf("ParseTunnel(%q, %q) = %q, expected failure", c.address, c.key, roomKey)
		}
	}
}

func TestReconcile_TunnelPeerJoinsRoom(t *testing.T) {
	rooms := []peer.Room{{Key: "R1", Address: "addrR1"}}
	peers := []peer.Peer{{Address: "tunnel:R1:P1", Key: "P1", Hints: peer.Hints{InferredType: "tunnel"}}}

	out := Reconcile(peers, rooms, nil)
	if len(out.Peers) != 0 {
		t.Fatalf("expected no standalone peers, got %d", len(out.Peers))
	}
	if len(out.Rooms) != 1 || len(out.Rooms[0].Members) != 2 {
		t.Fatalf("expected one room with two members, got %+v", out.Rooms)
	}
	member := out.Rooms[0].Members[1]
	if member.Kind != MemberConnected || member.Peer.Pool != peer.PoolHub {
		t.Errorf("expected a hub pool member, got %+v", member)
	}
}

func TestReconcile_MalformedTunnelStaysStandalone(t *testing.T) {
	rooms := []peer.Room{{Key: "R1", Address: "addrR1"}}
	peers := []peer.Peer{
		{Address: "tunnel:P1", Key: "P1", Hints: peer.Hints{InferredType: "tunnel"}},
		{Address: "tunnel:R1:P2", Hints: peer.Hints{InferredType: "tunnel"}},
		{Address: "tunnel:R9:P3", Key: "P3", Hints: peer.Hints{InferredType: "tunnel"}},
	}

	out := Reconcile(peers, rooms, nil)
	if len(out.Peers) != 3 {
		t.Errorf("expected 3 standalone peers, got %d", len(out.Peers))
	}
	if len(out.Rooms[0].Members) != 1 {
		t.Errorf("expected the room alone in its group, got %d members", len(out.Rooms[0].Members))
	}
}

func TestReconcile_DedupAcrossLists(t *testing.T) {
	rooms := []peer.Room{{Key: "R", Address: "addrR"}}
	peers := []peer.Peer{{Address: "addrR", Key: "R", Hints: peer.Hints{Type: "room"}}}
	staged := []peer.StagedPeer{{Address: "addrS", Hints: peer.Hints{Type: "lan"}}}

	out := Reconcile(peers, rooms, staged)

	count := 0
	for _, p := range out.Peers {
		if p.Address == "addrR" {
			count++
		}
	}
	for _, g := range out.Rooms {
		for _, m := range g.Members {
			if m.Address == "addrR" {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("expected addrR exactly once, got %d", count)
	}
	if len(out.Staged) != 1 || out.Staged[0].Address != "addrS" {
		t.Errorf("expected addrS staged, got %+v", out.Staged)
	}
}

func TestReconcile_StagedDuplicateOfPeerDropped(t *testing.T) {
	peers := []peer.Peer{{Address: "addrA", Hints: peer.Hints{Type: "lan"}}}
	staged := []peer.StagedPeer{{Address: "addrA", Hints: peer.Hints{Type: "lan"}}}

	out := Reconcile(peers, nil, staged)
	if len(out.Peers) != 1 || len(out.Staged) != 0 {
		t.Errorf("expected peer to win over staged, got %d peers %d staged", len(out.Peers), len(out.Staged))
	}
}

func TestReconcile_OnlineCount(t *testing.T) {
	rooms := []peer.Room{{Key: "R", Address: "addrR"}}
	peers := []peer.Peer{{Address: "tunnel:R:P", Key: "P", Hints: peer.Hints{InferredType: "tunnel"}}}
	staged := []peer.StagedPeer{{Address: "tunnel:R:Q", Key: "Q", Room: "R", Hints: peer.Hints{Type: "room-attendant"}}}

	out := Reconcile(peers, rooms, staged)
	if len(out.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(out.Rooms))
	}
	g := out.Rooms[0]
	if g.Room.OnlineCount != 3 {
		t.Errorf("expected onlineCount 3, got %d", g.Room.OnlineCount)
	}
	if g.Members[0].Room.OnlineCount != 3 {
		t.Errorf("expected room entry to carry onlineCount 3, got %d", g.Members[0].Room.OnlineCount)
	}
	if g.OnlineElsewhere() != 2 {
		t.Errorf("expected 2 others online, got %d", g.OnlineElsewhere())
	}
}

func TestReconcile_MemberOrder(t *testing.T) {
	rooms := []peer.Room{{Key: "R", Address: "zzz-room"}}
	peers := []peer.Peer{
		{Address: "yyy", Room: "R", Hints: peer.Hints{Type: "room-attendant"}},
		{Address: "tunnel:R:P", Key: "P", Hints: peer.Hints{InferredType: "tunnel"}},
	}
	staged := []peer.StagedPeer{{Address: "aaa", Room: "R", Hints: peer.Hints{Type: "room-endpoint"}}}

	out := Reconcile(peers, rooms, staged)
	members := out.Rooms[0].Members
	want := []struct {
		kind    MemberKind
		address string
	}{
		{MemberRoom, "zzz-room"},
		{MemberConnected, "tunnel:R:P"},
		{MemberConnected, "yyy"},
		{MemberStaged, "aaa"},
	}
	if len(members) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(members))
	}
	for i, w := range want {
		if members[i].Kind != w.kind || members[i].Address != w.address {
			t.Errorf("member %d: expected %v %s, got %v %s", i, w.kind, w.address, members[i].Kind, members[i].Address)
		}
	}
}

func TestReconcile_SortsGroupsAndStandalone(t *testing.T) {
	rooms := []peer.Room{{Key: "R2", Address: "r2"}, {Key: "R1", Address: "r1"}}
	peers := []peer.Peer{
		{Address: "p-late", HubBirth: 2000},
		{Address: "p-early", HubBirth: 1000},
	}
	staged := []peer.StagedPeer{{Address: "s2"}, {Address: "s1"}}

	out := Reconcile(peers, rooms, staged)
	if out.Rooms[0].Key != "R1" || out.Rooms[1].Key != "R2" {
		t.Errorf("expected rooms sorted by key, got %s %s", out.Rooms[0].Key, out.Rooms[1].Key)
	}
	if out.Peers[0].Address != "p-early" {
		t.Errorf("expected earliest hubBirth first, got %s", out.Peers[0].Address)
	}
	if out.Staged[0].Address != "s1" {
		t.Errorf("expected staged sorted by address, got %s", out.Staged[0].Address)
	}
}

func TestReconcile_EndToEnd(t *testing.T) {
	rooms := []peer.Room{{Key: "R", Address: "addrR"}}
	peers := []peer.Peer{{Address: "tunnel:R:P", Key: "P", Hints: peer.Hints{InferredType: "tunnel"}}}

	out := Reconcile(peers, rooms, nil)
	if len(out.Rooms) != 1 || out.Rooms[0].Key != "R" {
		t.Fatalf("expected room group R, got %+v", out.Rooms)
	}
	if len(out.Rooms[0].Members) != 2 {
		t.Errorf("expected 2 members, got %d", len(out.Rooms[0].Members))
	}
	if out.Rooms[0].Room.OnlineCount != 2 {
		t.Errorf("expected onlineCount 2, got %d", out.Rooms[0].Room.OnlineCount)
	}
	if len(out.Peers) != 0 {
		t.Errorf("expected no standalone peers, got %d", len(out.Peers))
	}
}

func TestReconciler_SkipsIdenticalContent(t *testing.T) {
	r := NewReconciler()
	peers := []peer.Peer{{Address: "a", State: peer.StateConnected}}

	if _, changed := r.Update(peers, nil, nil); !changed {
		t.Fatal("expected first update to compute")
	}

	again := []peer.Peer{{Address: "a", State: peer.StateConnected, HubUpdated: 99}}
	if _, changed := r.Update(again, nil, nil); changed {
		t.Error("expected identical content to be skipped")
	}

	moved := []peer.Peer{{Address: "a", State: peer.StateDisconnecting}}
	if _, changed := r.Update(moved, nil, nil); !changed {
		t.Error("expected a state change to recompute")
	}
}

func TestReconciler_RecomputesOnRowFields(t *testing.T) {
	base := peer.Peer{Address: "a", State: peer.StateConnected, HubBirth: 1000}
	cases := map[string]func(*peer.Peer){
		"reconnect": func(p *peer.Peer) { p.HubBirth = 2000 },
		"remember":  func(p *peer.Peer) { p.IsInDB = true },
		"note":      func(p *peer.Peer) { p.Note = "met at the cafe" },
		"traits":    func(p *peer.Peer) { p.Membership = true },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewReconciler()
			r.Update([]peer.Peer{base}, nil, nil)

			next := base
			mutate(&next)
			out, changed := r.Update([]peer.Peer{next}, nil, nil)
			if !changed {
				t.Fatal("expected a recompute")
			}
			if out.Peers[0] != next {
				t.Errorf("expected output to carry the new record, got %+v", out.Peers[0])
			}
		})
	}
}

func TestReconciler_OrderInsensitive(t *testing.T) {
	r := NewReconciler()
	a := peer.Peer{Address: "a"}
	b := peer.Peer{Address: "b"}

	r.Update([]peer.Peer{a, b}, nil, nil)
	if _, changed := r.Update([]peer.Peer{b, a}, nil, nil); changed {
		t.Error("expected reordered input to be skipped")
	}
}

func TestDedupeNewest(t *testing.T) {
	type rec struct {
		key string
		at  int64
	}
	in := []rec{{"x", 1}, {"y", 5}, {"x", 3}, {"", 0}, {"", 0}}
	out := DedupeNewest(in, func(r rec) string { return r.key }, func(r rec) int64 { return r.at })

	if len(out) != 4 {
		t.Fatalf("expected 4 records, got %d", len(out))
	}
	if out[0].key != "x" || out[0].at != 3 {
		t.Errorf("expected newest x first, got %+v", out[0])
	}
}
