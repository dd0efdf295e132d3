package transport

import (
	"context"
	"sync"

	"github.com/quic-go/quic-go"
	"github.com/rudransh-shrivastava/peer-conn/internal/protocol"
)

// Link is one QUIC connection. Every request travels on its own Stream, so
// a slow subscription never holds up a call.
type Link struct {
	codec  *protocol.Codec
	conn   *quic.Conn
	closed bool
	mu     sync.Mutex
}

func NewLink(conn *quic.Conn) *Link {
	return &Link{
		codec: protocol.NewCodec(),
		conn:  conn,
	}
}

func (l *Link) AcceptStream(ctx context.Context) (*Stream, error) {
	s, err := l.conn.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return &Stream{codec: l.codec, stream: s}, nil
}

func (l *Link) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.conn.CloseWithError(0, "")
}

// Done is closed once the connection is gone, for whatever reason.
func (l *Link) Done() <-chan struct{} {
	return l.conn.Context().Done()
}

func (l *Link) OpenStream(ctx context.Context) (*Stream, error) {
	s, err := l.conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &Stream{codec: l.codec, stream: s}, nil
}

func (l *Link) RemoteAddr() string {
	return l.conn.RemoteAddr().String()
}

// Stream is a bidirectional QUIC stream speaking protocol messages.
type Stream struct {
	codec  *protocol.Codec
	stream *quic.Stream
}

// Cancel aborts both directions, unblocking a pending Receive.
func (s *Stream) Cancel() {
	s.stream.CancelRead(0)
	s.stream.CancelWrite(0)
}

// Close finishes the write direction. The peer sees io.EOF once it has read
// everything sent so far.
func (s *Stream) Close() error {
	return s.stream.Close()
}

func (s *Stream) Receive() (protocol.Message, error) {
	return s.codec.Decode(s.stream)
}

func (s *Stream) Send(msg protocol.Message) error {
	return s.codec.Encode(s.stream, msg)
}

// Exchange sends req and waits for a single reply.
func (s *Stream) Exchange(req protocol.Message) (protocol.Message, error) {
	if err := s.Send(req); err != nil {
		return nil, err
	}
	return s.Receive()
}

// CancelOnDone cancels the stream when ctx ends. The returned function stops
// the watch.
func (s *Stream) CancelOnDone(ctx context.Context) (stop func()) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			s.Cancel()
		case <-done:
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
