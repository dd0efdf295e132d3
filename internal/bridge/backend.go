package bridge

import (
	"context"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

// Signaler is the bootstrap side channel to the backend. It works before an
// identity exists and is the only way to create one.
type Signaler interface {
	// IdentityEvents streams true when an identity becomes ready and false
	// when it is cleared. The channel closes when ctx ends or the backend
	// goes away.
	IdentityEvents(ctx context.Context) (<-chan bool, error)
	Bootstrap(ctx context.Context, kind command.Kind) error
}

type Dialer interface {
	Dial(ctx context.Context) (Session, error)
}

// Session is the single shared connection to the backend. Streams close
// when the backend stops them or ctx ends.
type Session interface {
	Call(ctx context.Context, cmd command.Command) (command.Result, error)
	Peers(ctx context.Context) (<-chan []peer.Peer, error)
	Staged(ctx context.Context) (<-chan []peer.StagedPeer, error)
	Flags(ctx context.Context) (<-chan peer.Flags, error)
	Close() error
}

// NoteSource supplies the notes a user attached to hosted invites, keyed by
// invite address.
type NoteSource interface {
	Notes(ctx context.Context) (map[string]string, error)
}
