package bridge

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/reconcile"
)

// runFeeds keeps the peer, staged and flag streams of s flowing into the
// public feeds until s is dropped.
func (b *Bridge) runFeeds(s *shared) {
	var g errgroup.Group

	g.Go(func() error {
		pump(s.ctx, b, "peers", s.sess.Peers, b.publishPeers)
		return nil
	})
	g.Go(func() error {
		pump(s.ctx, b, "staged", s.sess.Staged, func(staged []peer.StagedPeer) {
			b.publishStaged(s.ctx, staged)
		})
		return nil
	})
	g.Go(func() error {
		pump(s.ctx, b, "flags", s.sess.Flags, b.Flags.Publish)
		return nil
	})

	_ = g.Wait()
}

// pump subscribes to one backend stream and forwards every value. When the
// stream fails it publishes the zero value, then subscribes again on the
// backoff schedule.
func pump[T any](ctx context.Context, b *Bridge, name string, open func(context.Context) (<-chan T, error), publish func(T)) {
	log := b.log.WithField("feed", name)
	bo := b.backoff(ctx)

	for {
		values, err := open(ctx)
		if err == nil {
			for v := range values {
				bo.Reset()
				publish(v)
			}
			err = ErrUpstreamClosed
		}
		if ctx.Err() != nil {
			return
		}

		log.WithError(err).Warn("Feed stream failed, resubscribing")
		var zero T
		publish(zero)

		if !b.sleep(ctx, bo) {
			return
		}
	}
}

func (b *Bridge) publishPeers(peers []peer.Peer) {
	peers = reconcile.DedupeNewest(peers,
		func(p peer.Peer) string { return p.Key },
		func(p peer.Peer) int64 { return p.HubUpdated },
	)
	b.Peers.Publish(peers)
	b.Rooms.Publish(peer.RoomsOf(peers))
}

func (b *Bridge) publishStaged(ctx context.Context, staged []peer.StagedPeer) {
	staged = reconcile.DedupeNewest(staged,
		func(s peer.StagedPeer) string { return s.Key },
		func(s peer.StagedPeer) int64 { return s.StagingUpdated },
	)
	b.attachNotes(ctx, staged)
	b.Staged.Publish(staged)
}

// attachNotes fills in the local note of every hosted invite the backend
// reports without one.
func (b *Bridge) attachNotes(ctx context.Context, staged []peer.StagedPeer) {
	if b.cfg.Notes == nil {
		return
	}

	var hosted bool
	for _, s := range staged {
		if s.Category() == peer.CategoryDHT && s.Note == "" {
			hosted = true
			break
		}
	}
	if !hosted {
		return
	}

	notes, err := b.cfg.Notes.Notes(ctx)
	if err != nil {
		b.log.WithError(err).Warn("Failed to load invite notes")
		return
	}
	for i := range staged {
		if staged[i].Note != "" {
			continue
		}
		if note, ok := notes[staged[i].Address]; ok {
			staged[i].Note = note
			b.log.WithFields(logrus.Fields{"address": staged[i].Address}).Debug("Attached invite note")
		}
	}
}
