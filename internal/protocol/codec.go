package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"

	"github.com/rudransh-shrivastava/peer-conn/internal/protocol/wirepb"
)

var (
	ErrFrameTooLarge = errors.New("frame exceeds maximum size")
	ErrUnknownType   = errors.New("unknown message type")
)

// Codec writes each message as a 4 byte big endian length followed by a
// protobuf envelope holding the message type and its encoded body.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

func (c *Codec) Encode(w io.Writer, msg Message) error {
	data, err := c.EncodeToBytes(msg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (c *Codec) Decode(r io.Reader) (Message, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	size := binary.BigEndian.Uint32(header[:])
	if size > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, size)
	}

	frame := make([]byte, size)
	if _, err := io.ReadFull(r, frame); err != nil {
		return nil, fmt.Errorf("reading frame: %w", err)
	}
	return decodeEnvelope(frame)
}

func (c *Codec) EncodeToBytes(msg Message) ([]byte, error) {
	body, err := msg.marshal()
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", msg.Type(), err)
	}
	env, err := proto.Marshal(&wirepb.Envelope{Type: uint32(msg.Type()), Body: body})
	if err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}
	if len(env) > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(env))
	}

	out := make([]byte, 4, 4+len(env))
	binary.BigEndian.PutUint32(out, uint32(len(env)))
	return append(out, env...), nil
}

func (c *Codec) DecodeFromBytes(data []byte) (Message, error) {
	return c.Decode(bytes.NewReader(data))
}

func decodeEnvelope(frame []byte) (Message, error) {
	var env wirepb.Envelope
	if err := proto.Unmarshal(frame, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}

	typ := MessageType(env.GetType())
	msg := newMessage(typ)
	if msg == nil {
		return nil, fmt.Errorf("%w: 0x%04x", ErrUnknownType, env.GetType())
	}
	if err := msg.unmarshal(env.GetBody()); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", typ, err)
	}
	return msg, nil
}
