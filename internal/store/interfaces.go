package store

import (
	"context"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/db"
)

// PeerRepository keeps the addresses the hub should reconnect to.
type PeerRepository interface {
	Remember(ctx context.Context, address string, data command.HubData) error
	Forget(ctx context.Context, address string) error
	IsRemembered(ctx context.Context, address string) (bool, error)
	Remembered(ctx context.Context) ([]db.RememberedPeer, error)
}

// SettingRepository stores user settings as name/value pairs.
type SettingRepository interface {
	Set(ctx context.Context, name, value string) error
	Get(ctx context.Context, name string) (string, bool, error)
	All(ctx context.Context) (map[string]string, error)
}

// InviteRepository tracks the DHT invites hosted by this hub.
type InviteRepository interface {
	Host(ctx context.Context, seed, invite string) (db.HostedInvite, error)
	Remove(ctx context.Context, invite string) (bool, error)
	Hosted(ctx context.Context) ([]db.HostedInvite, error)
}

// NoteRepository keeps the notes a user attached to invites.
type NoteRepository interface {
	SetNote(ctx context.Context, invite, note string) error
	Note(ctx context.Context, invite string) (string, error)
	Notes(ctx context.Context) (map[string]string, error)
}
