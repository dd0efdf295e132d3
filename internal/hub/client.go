package hub

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/rudransh-shrivastava/peer-conn/internal/bridge"
	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/logger"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/protocol"
	"github.com/rudransh-shrivastava/peer-conn/internal/transport"
)

var (
	ErrUnexpectedMessage = errors.New("unexpected message from hub")
	ErrClientClosed      = errors.New("hub client is closed")
)

// Client reaches a hub over QUIC. It signals identity changes on a link of
// its own and hands out sessions for everything else.
type Client struct {
	hubAddr string
	listen  string
	log     *logrus.Logger

	signaling singleflight.Group

	mu        sync.Mutex
	closed    bool
	transport *transport.Transport
	signal    *transport.Link
}

var (
	_ bridge.Signaler = (*Client)(nil)
	_ bridge.Dialer   = (*Client)(nil)
	_ bridge.Session  = (*Session)(nil)
)

func NewClient(hubAddr, listen string, log *logrus.Logger) *Client {
	if log == nil {
		log = logger.New("info")
	}
	if listen == "" {
		listen = "127.0.0.1:0"
	}
	return &Client{hubAddr: hubAddr, listen: listen, log: log}
}

func (c *Client) dial(ctx context.Context) (*transport.Link, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClientClosed
	}
	if c.transport == nil {
		tr, err := transport.NewTransport(c.listen)
		if err != nil {
			c.mu.Unlock()
			return nil, err
		}
		c.transport = tr
	}
	tr := c.transport
	c.mu.Unlock()

	return tr.Dial(ctx, c.hubAddr)
}

// signalLink returns the shared signaling link, redialling if it dropped.
// Concurrent callers share one dial and one link.
func (c *Client) signalLink(ctx context.Context) (*transport.Link, error) {
	if link := c.liveSignal(); link != nil {
		return link, nil
	}

	v, err, _ := c.signaling.Do("signal", func() (any, error) {
		if link := c.liveSignal(); link != nil {
			return link, nil
		}
		link, err := c.dial(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			_ = link.Close()
			return nil, ErrClientClosed
		}
		c.signal = link
		return link, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*transport.Link), nil
}

// liveSignal returns the signaling link unless it is missing or dropped.
func (c *Client) liveSignal() *transport.Link {
	c.mu.Lock()
	link := c.signal
	c.mu.Unlock()

	if link == nil {
		return nil
	}
	select {
	case <-link.Done():
		return nil
	default:
		return link
	}
}

func (c *Client) IdentityEvents(ctx context.Context) (<-chan bool, error) {
	link, err := c.signalLink(ctx)
	if err != nil {
		return nil, err
	}
	return subscribe(ctx, link, c.log, protocol.TopicIdentity, func(msg protocol.Message) (bool, bool) {
		m, ok := msg.(*protocol.Identity)
		if !ok {
			return false, false
		}
		return m.Ready, true
	})
}

func (c *Client) Bootstrap(ctx context.Context, kind command.Kind) error {
	link, err := c.signalLink(ctx)
	if err != nil {
		return err
	}
	res, err := call(ctx, link, c.log, command.Simple(kind))
	if err != nil {
		return err
	}
	if !res.OK {
		return fmt.Errorf("%s: %s", kind, res.Err)
	}
	return nil
}

func (c *Client) Dial(ctx context.Context) (bridge.Session, error) {
	link, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	c.log.WithField("hub", c.hubAddr).Debug("Session established")
	return &Session{link: link, log: c.log}, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.signal != nil {
		_ = c.signal.Close()
		c.signal = nil
	}
	if c.transport == nil {
		return nil
	}
	err := c.transport.Close()
	c.transport = nil
	return err
}

// Session is one link to the hub shared by every call and subscription.
type Session struct {
	link *transport.Link
	log  *logrus.Logger
}

func (s *Session) Call(ctx context.Context, cmd command.Command) (command.Result, error) {
	return call(ctx, s.link, s.log, cmd)
}

func (s *Session) Peers(ctx context.Context) (<-chan []peer.Peer, error) {
	return subscribe(ctx, s.link, s.log, protocol.TopicPeers, func(msg protocol.Message) ([]peer.Peer, bool) {
		m, ok := msg.(*protocol.Peers)
		if !ok {
			return nil, false
		}
		return m.Peers, true
	})
}

func (s *Session) Staged(ctx context.Context) (<-chan []peer.StagedPeer, error) {
	return subscribe(ctx, s.link, s.log, protocol.TopicStaged, func(msg protocol.Message) ([]peer.StagedPeer, bool) {
		m, ok := msg.(*protocol.Staged)
		if !ok {
			return nil, false
		}
		return m.Staged, true
	})
}

func (s *Session) Flags(ctx context.Context) (<-chan peer.Flags, error) {
	return subscribe(ctx, s.link, s.log, protocol.TopicFlags, func(msg protocol.Message) (peer.Flags, bool) {
		m, ok := msg.(*protocol.Flags)
		if !ok {
			return peer.Flags{}, false
		}
		return m.Flags, true
	})
}

func (s *Session) Close() error {
	return s.link.Close()
}

// call runs cmd on its own stream and waits for the reply.
func call(ctx context.Context, link *transport.Link, log *logrus.Logger, cmd command.Command) (command.Result, error) {
	st, err := link.OpenStream(ctx)
	if err != nil {
		return command.Result{}, err
	}
	stop := st.CancelOnDone(ctx)
	defer stop()

	id := uuid.NewString()
	log.WithFields(logrus.Fields{"request": id, "command": cmd.String()}).Debug("Calling hub")

	msg, err := st.Exchange(&protocol.Call{Command: cmd, RequestID: id})
	if err != nil {
		if ctx.Err() != nil {
			return command.Result{}, ctx.Err()
		}
		return command.Result{}, err
	}
	_ = st.Close()

	switch m := msg.(type) {
	case *protocol.Reply:
		return m.Result, nil
	case *protocol.Error:
		return command.Result{}, m
	}
	return command.Result{}, fmt.Errorf("%w: %s", ErrUnexpectedMessage, msg.Type())
}

// subscribe opens a stream for topic and forwards every update extract
// accepts. The channel closes when the stream ends or ctx is done.
func subscribe[T any](ctx context.Context, link *transport.Link, log *logrus.Logger, topic protocol.Topic, extract func(protocol.Message) (T, bool)) (<-chan T, error) {
	st, err := link.OpenStream(ctx)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	if err := st.Send(&protocol.Subscribe{RequestID: id, Topic: topic}); err != nil {
		st.Cancel()
		return nil, err
	}

	out := make(chan T)
	go func() {
		defer close(out)
		stop := st.CancelOnDone(ctx)
		defer func() {
			stop()
			st.Cancel()
		}()

		for {
			msg, err := st.Receive()
			if err != nil {
				if ctx.Err() == nil {
					log.WithError(err).WithField("topic", string(topic)).Debug("Subscription closed")
				}
				return
			}
			if e, ok := msg.(*protocol.Error); ok {
				log.WithError(e).WithField("topic", string(topic)).Warn("Hub refused subscription")
				return
			}
			v, ok := extract(msg)
			if !ok {
				log.WithField("type", msg.Type().String()).Warn("Ignoring unexpected update")
				continue
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
