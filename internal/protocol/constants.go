package protocol

const (
	// MaxFrameSize bounds a single encoded message. Peer lists are the largest
	// payloads and stay far below it.
	MaxFrameSize = 4 * 1024 * 1024
)

type MessageType uint16

const (
	MsgCall      MessageType = 0x0010
	MsgError     MessageType = 0x00FF
	MsgFlags     MessageType = 0x0023
	MsgIdentity  MessageType = 0x0020
	MsgPeers     MessageType = 0x0021
	MsgPing      MessageType = 0x0001
	MsgPong      MessageType = 0x0002
	MsgReply     MessageType = 0x0011
	MsgStaged    MessageType = 0x0022
	MsgSubscribe MessageType = 0x0030
)

func (t MessageType) String() string {
	switch t {
	case MsgCall:
		return "CALL"
	case MsgError:
		return "ERROR"
	case MsgFlags:
		return "FLAGS"
	case MsgIdentity:
		return "IDENTITY"
	case MsgPeers:
		return "PEERS"
	case MsgPing:
		return "PING"
	case MsgPong:
		return "PONG"
	case MsgReply:
		return "REPLY"
	case MsgStaged:
		return "STAGED"
	case MsgSubscribe:
		return "SUBSCRIBE"
	default:
		return "UNKNOWN"
	}
}

type Topic string

const (
	TopicFlags    Topic = "flags"
	TopicIdentity Topic = "identity"
	TopicPeers    Topic = "peers"
	TopicStaged   Topic = "staged"
)

type ErrorCode uint16

const (
	ErrUnknown      ErrorCode = 0x0000
	ErrInvalidMsg   ErrorCode = 0x0001
	ErrUnknownTopic ErrorCode = 0x0002
	ErrNoIdentity   ErrorCode = 0x0003
	ErrInternal     ErrorCode = 0x00FF
)
