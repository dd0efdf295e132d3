package hub

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rudransh-shrivastava/peer-conn/internal/config"
	"github.com/rudransh-shrivastava/peer-conn/internal/feed"
	"github.com/rudransh-shrivastava/peer-conn/internal/logger"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/protocol"
	"github.com/rudransh-shrivastava/peer-conn/internal/transport"
)

type Server struct {
	config    config.HubConfig
	logger    *logrus.Logger
	state     *State
	transport *transport.Transport
}

func NewServer(cfg config.HubConfig, state *State, log *logrus.Logger) (*Server, error) {
	tr, err := transport.NewTransport(cfg.Listen)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.New("info")
	}

	return &Server{
		config:    cfg,
		logger:    log,
		state:     state,
		transport: tr,
	}, nil
}

func (s *Server) Addr() string {
	return s.transport.LocalAddr().String()
}

func (s *Server) Shutdown() error {
	s.logger.Info("Shutting down hub")
	return s.transport.Close()
}

// Start serves clients until ctx ends.
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("addr", s.Addr()).Info("Hub started")
	go s.state.Run(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			link, err := s.transport.Accept(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logger.WithError(err).Error("Failed to accept connection")
				continue
			}

			go s.handleLink(ctx, link)
		}
	}
}

func (s *Server) handleLink(ctx context.Context, link *transport.Link) {
	remoteAddr := link.RemoteAddr()
	log := s.logger.WithField("client", remoteAddr)
	log.Info("Client connected")

	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		_ = link.Close()
		log.Info("Client disconnected")
	}()
	go func() {
		select {
		case <-link.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		st, err := link.AcceptStream(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.WithError(err).Debug("Failed to accept stream")
			}
			return
		}
		go s.handleStream(ctx, log, st)
	}
}

// handleStream serves the single request carried by st.
func (s *Server) handleStream(ctx context.Context, log *logrus.Entry, st *transport.Stream) {
	msg, err := st.Receive()
	if err != nil {
		log.WithError(err).Debug("Failed to receive request")
		st.Cancel()
		return
	}

	switch m := msg.(type) {
	case *protocol.Ping:
		log.Debug("Received Ping, sending Pong")
		s.reply(log, st, &protocol.Pong{})
	case *protocol.Call:
		log.WithFields(logrus.Fields{
			"request": m.RequestID,
			"command": m.Command.String(),
		}).Debug("Call")
		res := s.state.Execute(ctx, m.Command)
		s.reply(log, st, &protocol.Reply{RequestID: m.RequestID, Result: res})
	case *protocol.Subscribe:
		log.WithFields(logrus.Fields{
			"request": m.RequestID,
			"topic":   string(m.Topic),
		}).Debug("Subscribe")
		s.serveTopic(ctx, log, st, m.Topic)
	default:
		log.WithField("type", msg.Type().String()).Warn("Unhandled message type")
		s.reply(log, st, &protocol.Error{Code: protocol.ErrInvalidMsg, Message: "unexpected " + msg.Type().String()})
	}
}

func (s *Server) reply(log *logrus.Entry, st *transport.Stream, msg protocol.Message) {
	if err := st.Send(msg); err != nil {
		log.WithError(err).Debug("Failed to send reply")
		st.Cancel()
		return
	}
	_ = st.Close()
}

// serveTopic streams a feed until the client goes away.
func (s *Server) serveTopic(ctx context.Context, log *logrus.Entry, st *transport.Stream, topic protocol.Topic) {
	switch topic {
	case protocol.TopicIdentity, protocol.TopicPeers, protocol.TopicStaged, protocol.TopicFlags:
	default:
		s.reply(log, st, &protocol.Error{Code: protocol.ErrUnknownTopic, Message: "unknown topic " + string(topic)})
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		st.Cancel()
	}()
	go func() {
		_, _ = st.Receive()
		cancel()
	}()

	var err error
	switch topic {
	case protocol.TopicIdentity:
		err = forward(ctx, st, s.state.Identity, func(v bool) protocol.Message {
			return &protocol.Identity{Ready: v}
		})
	case protocol.TopicPeers:
		err = forward(ctx, st, s.state.Peers, func(v []peer.Peer) protocol.Message {
			return &protocol.Peers{Peers: v}
		})
	case protocol.TopicStaged:
		err = forward(ctx, st, s.state.Staged, func(v []peer.StagedPeer) protocol.Message {
			return &protocol.Staged{Staged: v}
		})
	case protocol.TopicFlags:
		err = forward(ctx, st, s.state.Flags, func(v peer.Flags) protocol.Message {
			return &protocol.Flags{Flags: v}
		})
	}
	if err != nil && ctx.Err() == nil {
		log.WithError(err).WithField("topic", string(topic)).Debug("Subscription ended")
	}
}

func forward[T any](ctx context.Context, st *transport.Stream, f *feed.Feed[T], wrap func(T) protocol.Message) error {
	for v := range f.Subscribe(ctx) {
		if err := st.Send(wrap(v)); err != nil {
			return err
		}
	}
	return nil
}
