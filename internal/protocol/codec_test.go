package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"google.golang.org/protobuf/proto"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/protocol/wirepb"
)

func TestCodecCall(t *testing.T) {
	codec := NewCodec()
	var buf bytes.Buffer

	call := &Call{
		RequestID: "req-1",
		Command: command.Command{
			Kind:    command.ConnRememberConnect,
			Address: "net:room.example:8008~shs:abc",
			Data: command.HubData{
				RoomTraits: peer.RoomTraits{SupportsAliases: true},
				Type:       "room",
				Key:        "@abc",
			},
		},
	}
	if err := codec.Encode(&buf, call); err != nil {
		t.Fatalf("Encode Call failed: %v", err)
	}

	decoded, err := codec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode Call failed: %v", err)
	}

	got, ok := decoded.(*Call)
	if !ok {
		t.Fatalf("Expected *Call, got %T", decoded)
	}
	if got.RequestID != "req-1" {
		t.Errorf("Expected request id 'req-1', got '%s'", got.RequestID)
	}
	if got.Command != call.Command {
		t.Errorf("Command mismatch: %+v vs %+v", got.Command, call.Command)
	}
}

func TestCodecNegativeNumbers(t *testing.T) {
	codec := NewCodec()

	data, err := codec.EncodeToBytes(&Call{Command: command.SetHops(-3)})
	if err != nil {
		t.Fatalf("EncodeToBytes failed: %v", err)
	}
	decoded, err := codec.DecodeFromBytes(data)
	if err != nil {
		t.Fatalf("DecodeFromBytes failed: %v", err)
	}
	if n := decoded.(*Call).Command.Number; n != -3 {
		t.Errorf("Expected -3, got %d", n)
	}
}

func TestCodecPeers(t *testing.T) {
	codec := NewCodec()
	var buf bytes.Buffer

	msg := &Peers{Peers: []peer.Peer{
		{
			Address:  "tunnel:R:P",
			Key:      "P",
			Name:     "alice",
			State:    peer.StateConnected,
			Hints:    peer.Hints{InferredType: "tunnel"},
			HubBirth: 1700000000000,
			IsInDB:   true,
		},
		{Address: "net:lan:8008", Hints: peer.Hints{Type: "lan", Source: "local"}},
		{
			Address:    "net:room:8008~shs:r",
			Hints:      peer.Hints{Type: "room"},
			RoomTraits: peer.RoomTraits{OpenInvites: true, SupportsHTTPAuth: true, Membership: true},
		},
	}}
	if err := codec.Encode(&buf, msg); err != nil {
		t.Fatalf("Encode Peers failed: %v", err)
	}

	decoded, err := codec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode Peers failed: %v", err)
	}
	got, ok := decoded.(*Peers)
	if !ok {
		t.Fatalf("Expected *Peers, got %T", decoded)
	}
	if len(got.Peers) != 3 {
		t.Fatalf("Expected 3 peers, got %d", len(got.Peers))
	}
	if got.Peers[0] != msg.Peers[0] {
		t.Errorf("Peer mismatch: %+v vs %+v", got.Peers[0], msg.Peers[0])
	}
	if got.Peers[1].Source != "local" {
		t.Errorf("Expected source 'local', got '%s'", got.Peers[1].Source)
	}
	if got.Peers[2] != msg.Peers[2] {
		t.Errorf("Room traits lost: %+v vs %+v", got.Peers[2].RoomTraits, msg.Peers[2].RoomTraits)
	}
}

func TestCodecEmptyPeers(t *testing.T) {
	codec := NewCodec()

	data, err := codec.EncodeToBytes(&Peers{})
	if err != nil {
		t.Fatalf("EncodeToBytes failed: %v", err)
	}
	decoded, err := codec.DecodeFromBytes(data)
	if err != nil {
		t.Fatalf("DecodeFromBytes failed: %v", err)
	}
	if len(decoded.(*Peers).Peers) != 0 {
		t.Error("Expected no peers")
	}
}

func TestCodecStaged(t *testing.T) {
	codec := NewCodec()

	msg := &Staged{Staged: []peer.StagedPeer{{
		Address:        "dht:seed:self",
		Key:            "seed",
		Role:           "server",
		Hints:          peer.Hints{Type: "dht"},
		StagingUpdated: 42,
	}}}
	data, err := codec.EncodeToBytes(msg)
	if err != nil {
		t.Fatalf("EncodeToBytes failed: %v", err)
	}
	decoded, err := codec.DecodeFromBytes(data)
	if err != nil {
		t.Fatalf("DecodeFromBytes failed: %v", err)
	}
	got := decoded.(*Staged)
	if len(got.Staged) != 1 || got.Staged[0] != msg.Staged[0] {
		t.Errorf("Staged mismatch: %+v", got.Staged)
	}
}

func TestCodecFlagsAndIdentity(t *testing.T) {
	codec := NewCodec()
	var buf bytes.Buffer

	flags := &Flags{Flags: peer.Flags{BluetoothEnabled: true, BluetoothLastScanned: 123, InternetEnabled: true}}
	if err := codec.Encode(&buf, flags); err != nil {
		t.Fatalf("Encode Flags failed: %v", err)
	}
	if err := codec.Encode(&buf, &Identity{Ready: true}); err != nil {
		t.Fatalf("Encode Identity failed: %v", err)
	}

	first, err := codec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode Flags failed: %v", err)
	}
	if first.(*Flags).Flags != flags.Flags {
		t.Errorf("Flags mismatch: %+v", first)
	}

	second, err := codec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode Identity failed: %v", err)
	}
	if !second.(*Identity).Ready {
		t.Error("Expected identity ready")
	}
}

func TestCodecReplyAndError(t *testing.T) {
	codec := NewCodec()

	data, err := codec.EncodeToBytes(&Reply{RequestID: "r", Result: command.Failure("room rejected invite claim")})
	if err != nil {
		t.Fatalf("EncodeToBytes failed: %v", err)
	}
	decoded, err := codec.DecodeFromBytes(data)
	if err != nil {
		t.Fatalf("DecodeFromBytes failed: %v", err)
	}
	reply := decoded.(*Reply)
	if reply.Result.OK || reply.Result.Err != "room rejected invite claim" {
		t.Errorf("Unexpected result %+v", reply.Result)
	}

	data, err = codec.EncodeToBytes(&Error{Code: ErrUnknownTopic, Message: "no such topic"})
	if err != nil {
		t.Fatalf("EncodeToBytes failed: %v", err)
	}
	decoded, err = codec.DecodeFromBytes(data)
	if err != nil {
		t.Fatalf("DecodeFromBytes failed: %v", err)
	}
	e := decoded.(*Error)
	if e.Code != ErrUnknownTopic || e.Error() != "no such topic" {
		t.Errorf("Unexpected error message %+v", e)
	}
}

func TestCodecPingPong(t *testing.T) {
	codec := NewCodec()
	var buf bytes.Buffer

	if err := codec.Encode(&buf, &Ping{}); err != nil {
		t.Fatalf("Encode Ping failed: %v", err)
	}
	if err := codec.Encode(&buf, &Pong{}); err != nil {
		t.Fatalf("Encode Pong failed: %v", err)
	}

	decoded, err := codec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode Ping failed: %v", err)
	}
	if _, ok := decoded.(*Ping); !ok {
		t.Errorf("Expected *Ping, got %T", decoded)
	}
	decoded, err = codec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode Pong failed: %v", err)
	}
	if _, ok := decoded.(*Pong); !ok {
		t.Errorf("Expected *Pong, got %T", decoded)
	}
}

func TestCodecRejectsOversizedFrame(t *testing.T) {
	codec := NewCodec()

	var header [4]byte
	binary.BigEndian.PutUint32(header[:], MaxFrameSize+1)
	_, err := codec.DecodeFromBytes(header[:])
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Expected ErrFrameTooLarge, got %v", err)
	}
}

func TestCodecRejectsUnknownType(t *testing.T) {
	codec := NewCodec()

	env, err := proto.Marshal(&wirepb.Envelope{Type: 0x7777})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	frame := make([]byte, 4)
	binary.BigEndian.PutUint32(frame, uint32(len(env)))
	frame = append(frame, env...)

	_, err = codec.DecodeFromBytes(frame)
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("Expected ErrUnknownType, got %v", err)
	}
}

func TestCodecTruncatedFrame(t *testing.T) {
	codec := NewCodec()

	data, err := codec.EncodeToBytes(&Subscribe{Topic: TopicPeers})
	if err != nil {
		t.Fatalf("EncodeToBytes failed: %v", err)
	}
	if _, err := codec.DecodeFromBytes(data[:len(data)-1]); err == nil {
		t.Error("Expected error for truncated frame")
	}
}

func TestMessageTypeString(t *testing.T) {
	tests := []struct {
		msgType  MessageType
		expected string
	}{
		{MsgCall, "CALL"},
		{MsgReply, "REPLY"},
		{MsgSubscribe, "SUBSCRIBE"},
		{MsgPeers, "PEERS"},
		{MessageType(0x9999), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.msgType.String(); got != tt.expected {
			t.Errorf("MessageType(%d).String() = %s, expected %s", tt.msgType, got, tt.expected)
		}
	}
}
