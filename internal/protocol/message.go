package protocol

import (
	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

type Message interface {
	Type() MessageType
	marshal() ([]byte, error)
	unmarshal(b []byte) error
}

// Call asks the hub to run one command. RequestID only serves log
// correlation, each call travels on its own stream.
type Call struct {
	Command   command.Command
	RequestID string
}

func (Call) Type() MessageType { return MsgCall }

type Error struct {
	Code    ErrorCode
	Message string
}

func (Error) Type() MessageType { return MsgError }

func (e *Error) Error() string { return e.Message }

type Flags struct {
	Flags peer.Flags
}

func (Flags) Type() MessageType { return MsgFlags }

type Identity struct {
	Ready bool
}

func (Identity) Type() MessageType { return MsgIdentity }

type Peers struct {
	Peers []peer.Peer
}

func (Peers) Type() MessageType { return MsgPeers }

type Ping struct{}

func (Ping) Type() MessageType { return MsgPing }

type Pong struct{}

func (Pong) Type() MessageType { return MsgPong }

type Reply struct {
	RequestID string
	Result    command.Result
}

func (Reply) Type() MessageType { return MsgReply }

type Staged struct {
	Staged []peer.StagedPeer
}

func (Staged) Type() MessageType { return MsgStaged }

// Subscribe turns the stream it is sent on into a feed of Topic updates.
type Subscribe struct {
	RequestID string
	Topic     Topic
}

func (Subscribe) Type() MessageType { return MsgSubscribe }

func newMessage(t MessageType) Message {
	switch t {
	case MsgCall:
		return &Call{}
	case MsgError:
		return &Error{}
	case MsgFlags:
		return &Flags{}
	case MsgIdentity:
		return &Identity{}
	case MsgPeers:
		return &Peers{}
	case MsgPing:
		return &Ping{}
	case MsgPong:
		return &Pong{}
	case MsgReply:
		return &Reply{}
	case MsgStaged:
		return &Staged{}
	case MsgSubscribe:
		return &Subscribe{}
	default:
		return nil
	}
}
