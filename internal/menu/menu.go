// Package menu builds the action lists offered for a selected peer.
package menu

import "github.com/rudransh-shrivastava/peer-conn/internal/command"

type Action uint8

const (
	ActionOpenProfile Action = iota + 1
	ActionConnect
	ActionDisconnect
	ActionDisconnectForget
	ActionForget
	ActionManageAliases
	ActionRoomSignIn
	ActionRoomShareInvite
	ActionInviteInfo
	ActionInviteNote
	ActionInviteShare
	ActionInviteDelete
)

func (a Action) String() string {
	switch a {
	case ActionOpenProfile:
		return "open-profile"
	case ActionConnect:
		return "connect"
	case ActionDisconnect:
		return "disconnect"
	case ActionDisconnectForget:
		return "disconnect-forget"
	case ActionForget:
		return "forget"
	case ActionManageAliases:
		return "manage-aliases"
	case ActionRoomSignIn:
		return "room-sign-in"
	case ActionRoomShareInvite:
		return "room-share-invite"
	case ActionInviteInfo:
		return "invite-info"
	case ActionInviteNote:
		return "invite-note"
	case ActionInviteShare:
		return "invite-share"
	case ActionInviteDelete:
		return "invite-delete"
	default:
		return "unknown"
	}
}

// Command maps the actions that talk to the hub onto a command for address.
// Actions handled by the presentation layer report false.
func (a Action) Command(address string) (command.Command, bool) {
	switch a {
	case ActionConnect:
		return command.Connect(address, command.HubData{}), true
	case ActionDisconnect:
		return command.Disconnect(address), true
	case ActionDisconnectForget:
		return command.DisconnectForget(address), true
	case ActionForget:
		return command.Forget(address), true
	case ActionInviteDelete:
		return command.RemoveDHTInvite(address), true
	default:
		return command.Command{}, false
	}
}

type Context uint8

const (
	ContextConnected Context = iota
	ContextRoom
	ContextStaging
	ContextStagedRoom
	ContextInvite
)

type Option struct {
	Action Action
	Label  string
}

// Target carries what the dynamic menus need to know about the selection.
type Target struct {
	IsInDB           bool
	Name             string
	OpenInvites      bool
	SupportsHTTPAuth bool
	SupportsAliases  bool
	Membership       bool
}

// Labeler turns a label key into display text. It must only be called once
// the translations are loaded.
type Labeler func(key string) string

// Options holds the static menus, computed once at startup, and the labeler
// used for the menus that depend on the target.
type Options struct {
	label      Labeler
	staging    []Option
	stagedRoom []Option
	invite     []Option
}

func New(label Labeler) *Options {
	if label == nil {
		label = func(key string) string { return key }
	}
	o := &Options{label: label}
	o.staging = o.build(ActionOpenProfile, ActionConnect)
	o.stagedRoom = o.build(ActionRoomShareInvite, ActionConnect, ActionForget)
	o.invite = o.build(ActionInviteInfo, ActionInviteNote, ActionInviteShare, ActionInviteDelete)
	return o
}

func (o *Options) build(actions ...Action) []Option {
	opts := make([]Option, 0, len(actions))
	for _, a := range actions {
		opts = append(opts, Option{Action: a, Label: o.label("connections.menu." + a.String() + ".label")})
	}
	return opts
}

// For returns the options offered in ctx. Static menus are shared and must
// not be modified by the caller.
func (o *Options) For(ctx Context, target Target) []Option {
	switch ctx {
	case ContextConnected:
		actions := []Action{ActionOpenProfile, ActionDisconnect}
		if target.IsInDB {
			actions = append(actions, ActionDisconnectForget)
		}
		return o.build(actions...)
	case ContextRoom:
		var actions []Action
		if target.OpenInvites {
			actions = append(actions, ActionRoomShareInvite)
		}
		if target.SupportsHTTPAuth {
			actions = append(actions, ActionRoomSignIn)
		}
		if target.Membership && target.Name != "" && target.SupportsAliases {
			actions = append(actions, ActionManageAliases)
		}
		actions = append(actions, ActionDisconnect, ActionDisconnectForget)
		return o.build(actions...)
	case ContextStaging:
		return o.staging
	case ContextStagedRoom:
		return o.stagedRoom
	case ContextInvite:
		return o.invite
	default:
		return nil
	}
}
