package menu

import (
	"testing"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
)

func actions(opts []Option) []Action {
	out := make([]Action, len(opts))
	for i, o := range opts {
		out[i] = o.Action
	}
	return out
}

func equalActions(a, b []Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFor_ConnectedRequiresIsInDBForForget(t *testing.T) {
	o := New(nil)

	got := actions(o.For(ContextConnected, Target{}))
	if !equalActions(got, []Action{ActionOpenProfile, ActionDisconnect}) {
		t.Errorf("unexpected actions %v", got)
	}

	got = actions(o.For(ContextConnected, Target{IsInDB: true}))
	if !equalActions(got, []Action{ActionOpenProfile, ActionDisconnect, ActionDisconnectForget}) {
		t.Errorf("unexpected actions %v", got)
	}
}

func TestFor_RoomTraits(t *testing.T) {
	o := New(nil)

	got := actions(o.For(ContextRoom, Target{}))
	if !equalActions(got, []Action{ActionDisconnect, ActionDisconnectForget}) {
		t.Errorf("unexpected bare room actions %v", got)
	}

	full := Target{OpenInvites: true, SupportsHTTPAuth: true, SupportsAliases: true, Membership: true, Name: "room"}
	got = actions(o.For(ContextRoom, full))
	want := []Action{ActionRoomShareInvite, ActionRoomSignIn, ActionManageAliases, ActionDisconnect, ActionDisconnectForget}
	if !equalActions(got, want) {
		t.Errorf("unexpected room actions %v", got)
	}

	full.Name = ""
	got = actions(o.For(ContextRoom, full))
	for _, a := range got {
		if a == ActionManageAliases {
			t.Error("aliases need a room name")
		}
	}
}

func TestFor_StaticMenusComputedOnce(t *testing.T) {
	calls := 0
	o := New(func(key string) string {
		calls++
		return "label:" + key
	})
	initial := calls

	o.For(ContextStaging, Target{})
	o.For(ContextStagedRoom, Target{})
	o.For(ContextInvite, Target{})
	if calls != initial {
		t.Errorf("expected static menus not to be relabelled, got %d extra calls", calls-initial)
	}

	invite := o.For(ContextInvite, Target{})
	if len(invite) != 4 || invite[3].Label != "label:connections.menu.invite-delete.label" {
		t.Errorf("unexpected invite menu %+v", invite)
	}
}

func TestAction_Command(t *testing.T) {
	c, ok := ActionDisconnectForget.Command("addr")
	if !ok || c.Kind != command.ConnDisconnectForget || c.Address != "addr" {
		t.Errorf("unexpected command %+v", c)
	}
	c, ok = ActionInviteDelete.Command("dht:seed:key")
	if !ok || c.Kind != command.DHTInviteRemove || c.Invite != "dht:seed:key" {
		t.Errorf("unexpected command %+v", c)
	}
	if _, ok := ActionOpenProfile.Command("addr"); ok {
		t.Error("open-profile should not produce a command")
	}
}
