// Package bridge turns a backend's calls and streams into replayable feeds
// and carries commands back to it.
package bridge

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/config"
	"github.com/rudransh-shrivastava/peer-conn/internal/feed"
	"github.com/rudransh-shrivastava/peer-conn/internal/logger"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

var (
	ErrNotConnected   = errors.New("backend session is not available")
	ErrUpstreamClosed = errors.New("backend stream ended")
)

// responseBuffer is how many unread results a response subscriber may have
// before the oldest is dropped.
const responseBuffer = 16

type Config struct {
	Dialer      Dialer
	Logger      *logrus.Logger
	Notes       NoteSource
	Resubscribe config.BackoffConfig
	Signaler    Signaler
}

type Bridge struct {
	cfg Config
	log *logrus.Logger

	identity     *feed.Feed[bool]
	identityHeld atomic.Bool

	mu   sync.Mutex
	conn *shared

	handlers sync.WaitGroup

	Peers                   *feed.Feed[[]peer.Peer]
	Staged                  *feed.Feed[[]peer.StagedPeer]
	Rooms                   *feed.Feed[[]peer.Room]
	Flags                   *feed.Feed[peer.Flags]
	AcceptInviteResponse    *feed.Feed[command.Result]
	AcceptDHTInviteResponse *feed.Feed[command.Result]
	ConsumeAliasResponse    *feed.Feed[command.Result]
	ConnStarted             *feed.Feed[command.Result]
}

// shared is one attempt at the backend session. Everyone asking for the
// session while it is being dialled waits on ready and gets the same result.
type shared struct {
	ready   chan struct{}
	dialing bool
	sess    Session
	err     error
	ctx     context.Context
	cancel  context.CancelFunc
}

func newShared() *shared {
	ctx, cancel := context.WithCancel(context.Background())
	return &shared{ready: make(chan struct{}), ctx: ctx, cancel: cancel}
}

func (s *shared) wait(ctx context.Context) (Session, error) {
	select {
	case <-s.ready:
		return s.sess, s.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func New(cfg Config) *Bridge {
	log := cfg.Logger
	if log == nil {
		log = logger.New("info")
	}
	if cfg.Resubscribe.Initial <= 0 {
		cfg.Resubscribe = config.Default().Client.Resubscribe
	}

	return &Bridge{
		cfg:                     cfg,
		log:                     log,
		identity:                feed.New[bool](),
		conn:                    newShared(),
		Peers:                   feed.New[[]peer.Peer](),
		Staged:                  feed.New[[]peer.StagedPeer](),
		Rooms:                   feed.New[[]peer.Room](),
		Flags:                   feed.New[peer.Flags](),
		AcceptInviteResponse:    feed.New[command.Result](feed.WithoutReplay(), feed.WithBuffer(responseBuffer)),
		AcceptDHTInviteResponse: feed.New[command.Result](feed.WithoutReplay(), feed.WithBuffer(responseBuffer)),
		ConsumeAliasResponse:    feed.New[command.Result](feed.WithoutReplay(), feed.WithBuffer(responseBuffer)),
		ConnStarted:             feed.New[command.Result](feed.WithoutReplay(), feed.WithBuffer(responseBuffer)),
	}
}

// Run drives the bridge until ctx ends: it follows the identity signal,
// keeps the session and its feeds up while an identity exists, and handles
// every command received on commands.
func (b *Bridge) Run(ctx context.Context, commands <-chan command.Command) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.watchIdentity(ctx)
		return nil
	})
	g.Go(func() error {
		b.lifecycle(ctx)
		return nil
	})
	g.Go(func() error {
		b.consume(ctx, commands)
		return nil
	})

	err := g.Wait()
	b.handlers.Wait()
	b.reset()
	return err
}

// IdentityReady reports the last identity signal seen.
func (b *Bridge) IdentityReady() bool {
	ready, _ := b.identity.Latest()
	return ready
}

// AwaitIdentity blocks until the backend reports a ready identity.
func (b *Bridge) AwaitIdentity(ctx context.Context) error {
	sub, cancel := context.WithCancel(ctx)
	defer cancel()

	for ready := range b.identity.Subscribe(sub) {
		if ready {
			return nil
		}
	}
	return ctx.Err()
}

func (b *Bridge) awaitCleared(ctx context.Context) {
	sub, cancel := context.WithCancel(ctx)
	defer cancel()

	for ready := range b.identity.Subscribe(sub) {
		if !ready {
			return
		}
	}
}

// Connect opens the backend session, or joins the attempt already under way.
// A failed attempt is kept: feeds stay empty and commands fail until the
// identity is cleared and established again.
func (b *Bridge) Connect(ctx context.Context) (Session, error) {
	s, err := b.connect(ctx)
	if err != nil {
		return nil, err
	}
	return s.sess, nil
}

func (b *Bridge) connect(ctx context.Context) (*shared, error) {
	b.mu.Lock()
	s := b.conn
	if s.dialing {
		b.mu.Unlock()
		if _, err := s.wait(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	s.dialing = true
	b.mu.Unlock()

	sess, err := b.cfg.Dialer.Dial(ctx)

	// reset cancels under mu, so either it sees ready closed and closes the
	// session itself, or the cancellation is visible here.
	b.mu.Lock()
	stale := err == nil && s.ctx.Err() != nil
	if stale {
		s.err = ErrNotConnected
	} else {
		s.sess, s.err = sess, err
	}
	close(s.ready)
	b.mu.Unlock()

	if stale {
		_ = sess.Close()
		return nil, ErrNotConnected
	}
	if err != nil {
		b.log.WithError(err).Error("Failed to connect to backend")
		return nil, err
	}
	b.log.Info("Connected to backend")
	return s, nil
}

// session waits for the current session attempt to resolve.
func (b *Bridge) session(ctx context.Context) (Session, error) {
	b.mu.Lock()
	s := b.conn
	b.mu.Unlock()

	sess, err := s.wait(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotConnected
	}
	return sess, nil
}

// reset drops the current session and prepares a fresh attempt.
func (b *Bridge) reset() {
	b.mu.Lock()
	old := b.conn
	b.conn = newShared()
	old.cancel()
	b.mu.Unlock()

	select {
	case <-old.ready:
		if old.sess != nil {
			if err := old.sess.Close(); err != nil {
				b.log.WithError(err).Debug("Closing backend session")
			}
		}
	default:
	}
}

func (b *Bridge) watchIdentity(ctx context.Context) {
	bo := b.backoff(ctx)
	for {
		events, err := b.cfg.Signaler.IdentityEvents(ctx)
		if err == nil {
			for ready := range events {
				bo.Reset()
				b.identityHeld.Store(ready)
				if !ready && b.IdentityReady() {
					b.log.Info("Identity cleared")
					b.identity.Publish(false)
					b.reset()
					continue
				}
				if ready {
					b.log.Info("Identity ready")
				}
				b.identity.Publish(ready)
			}
			err = ErrUpstreamClosed
		}
		if ctx.Err() != nil {
			return
		}
		b.log.WithError(err).Warn("Identity signal lost")
		if !b.sleep(ctx, bo) {
			return
		}
	}
}

func (b *Bridge) lifecycle(ctx context.Context) {
	for {
		if err := b.AwaitIdentity(ctx); err != nil {
			return
		}

		if s, err := b.connect(ctx); err == nil {
			stop := context.AfterFunc(ctx, b.reset)
			b.runFeeds(s)
			stop()
		}
		b.awaitCleared(ctx)
		if ctx.Err() != nil {
			return
		}
	}
}

func (b *Bridge) consume(ctx context.Context, commands <-chan command.Command) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-commands:
			if !ok {
				return
			}
			b.handlers.Add(1)
			go func() {
				defer b.handlers.Done()
				b.Dispatch(ctx, cmd)
			}()
		}
	}
}

func (b *Bridge) backoff(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = b.cfg.Resubscribe.Initial
	bo.Multiplier = b.cfg.Resubscribe.Multiplier
	bo.MaxInterval = b.cfg.Resubscribe.Max
	bo.MaxElapsedTime = 0
	return backoff.WithContext(bo, ctx)
}

// sleep waits for the next backoff interval and reports false when ctx
// ended first.
func (b *Bridge) sleep(ctx context.Context, bo backoff.BackOff) bool {
	d := bo.NextBackOff()
	if d == backoff.Stop {
		return false
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
