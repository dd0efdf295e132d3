package view

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/rudransh-shrivastava/peer-conn/internal/animlist"
	"github.com/rudransh-shrivastava/peer-conn/internal/menu"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/reconcile"
)

func sampleOutput() reconcile.Output {
	roomPeer := peer.Peer{Address: "net:room~shs:r", Key: "@r", Name: "Hall", Hints: peer.Hints{Type: "room"}, State: peer.StateConnected}
	attendant := peer.Peer{
		Address:  "tunnel:@r:@alice~shs:alice",
		Key:      "@alice",
		Name:     "alice",
		Hints:    peer.Hints{InferredType: "tunnel"},
		State:    peer.StateConnected,
		HubBirth: 1000,
	}
	lan := peer.Peer{Address: "net:10.0.0.2:8008~shs:bob", Key: "@bob", Hints: peer.Hints{Type: "lan"}, Name: "bob", State: peer.StateConnected, HubBirth: 2000, IsInDB: true}
	invite := peer.StagedPeer{Address: "dht:seed:hub", Hints: peer.Hints{Type: "dht"}, Role: "server", Note: "for carol"}

	peers := []peer.Peer{roomPeer, attendant, lan}
	return reconcile.Reconcile(peers, peer.RoomsOf(peers), []peer.StagedPeer{invite})
}

func TestRows_OrderAndContexts(t *testing.T) {
	rows := Rows(sampleOutput(), time.UnixMilli(62000))
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d: %+v", len(rows), rows)
	}

	wantContexts := []menu.Context{menu.ContextRoom, menu.ContextConnected, menu.ContextConnected, menu.ContextInvite}
	for i, want := range wantContexts {
		if rows[i].Context != want {
			t.Errorf("row %d: expected context %d, got %d", i, want, rows[i].Context)
		}
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Key >= rows[i].Key {
			t.Errorf("row keys not in display order: %q >= %q", rows[i-1].Key, rows[i].Key)
		}
	}

	if !strings.Contains(rows[0].Text, "(1 online)") {
		t.Errorf("expected room to show one other attendant, got %q", rows[0].Text)
	}
	if !strings.HasPrefix(rows[1].Text, "  └ alice") {
		t.Errorf("expected indented attendant, got %q", rows[1].Text)
	}
	if !strings.Contains(rows[2].Text, "Local network") || !strings.Contains(rows[2].Text, "1 minute ago") {
		t.Errorf("unexpected lan row %q", rows[2].Text)
	}
	if !rows[2].Target.IsInDB {
		t.Error("expected remembered lan peer to carry IsInDB")
	}
	if !strings.HasPrefix(rows[3].Text, "for carol") {
		t.Errorf("expected unnamed invite to show its note, got %q", rows[3].Text)
	}
}

func TestRender_PhasesAndFinished(t *testing.T) {
	now := time.Unix(100, 0)
	d := 250 * time.Millisecond
	entries := []animlist.Entry[string, Row]{
		{Key: "a", Item: Row{Text: "new"}, EnteredAt: now},
		{Key: "b", Item: Row{Text: "steady"}, EnteredAt: now.Add(-time.Second)},
		{Key: "c", Item: Row{Text: "leaving"}, EnteredAt: now.Add(-time.Second), RemovedAt: now.Add(-100 * time.Millisecond)},
		{Key: "d", Item: Row{Text: "gone"}, EnteredAt: now.Add(-time.Second), RemovedAt: now.Add(-time.Second)},
	}

	var buf bytes.Buffer
	finished, err := Render(&buf, entries, peer.Flags{LANEnabled: true}, now, d)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"+ new", "  steady", "- leaving", "- gone", "lan on"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if len(finished) != 1 || finished[0] != "d" {
		t.Errorf("expected only d finished, got %v", finished)
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Render(&buf, nil, peer.Flags{}, time.Now(), time.Second); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "no connections") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestLabel_FallsBackToKey(t *testing.T) {
	if got := Label("connections.peers.types.lan"); got != "Local network" {
		t.Errorf("unexpected label %q", got)
	}
	if got := Label("nope"); got != "nope" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestRows_SameBirthPeersStayDistinct(t *testing.T) {
	peers := []peer.Peer{
		{Address: "net:10.0.0.2:8008~shs:a", Key: "@a", Hints: peer.Hints{Type: "lan"}, State: peer.StateConnected, HubBirth: 1700000000000},
		{Address: "net:10.0.0.3:8008~shs:b", Key: "@b", Hints: peer.Hints{Type: "lan"}, State: peer.StateConnected, HubBirth: 1700000000000},
	}
	rows := Rows(reconcile.Reconcile(peers, nil, nil), time.UnixMilli(1700000060000))
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Key == rows[1].Key {
		t.Fatalf("expected distinct keys, both are %q", rows[0].Key)
	}

	list := animlist.New(RowKey, animlist.Options{})
	list.Update(rows)
	if list.Len() != 2 {
		t.Errorf("expected both peers listed, got %d entries", list.Len())
	}
}

func TestRows_RoomOffersAdvertisedActions(t *testing.T) {
	room := peer.Peer{
		Address:    "net:room~shs:r",
		Key:        "@r",
		Name:       "Hall",
		Hints:      peer.Hints{Type: "room"},
		State:      peer.StateConnected,
		RoomTraits: peer.RoomTraits{OpenInvites: true, SupportsHTTPAuth: true, SupportsAliases: true, Membership: true},
	}
	peers := []peer.Peer{room}
	rows := Rows(reconcile.Reconcile(peers, peer.RoomsOf(peers), nil), time.Now())
	if len(rows) != 1 || rows[0].Context != menu.ContextRoom {
		t.Fatalf("expected a single room row, got %+v", rows)
	}

	var got []menu.Action
	for _, o := range menu.New(Label).For(rows[0].Context, rows[0].Target) {
		got = append(got, o.Action)
	}
	for _, want := range []menu.Action{menu.ActionRoomShareInvite, menu.ActionRoomSignIn, menu.ActionManageAliases} {
		if !slices.Contains(got, want) {
			t.Errorf("expected %s in room menu, got %v", want, got)
		}
	}
}
