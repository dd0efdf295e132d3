package bridge

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/feed"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

// Dispatch carries out one command. Identity commands go straight to the
// signaler; everything else waits for the shared session. Commands with a
// response feed publish exactly one result there, whatever happens.
func (b *Bridge) Dispatch(ctx context.Context, cmd command.Command) {
	log := b.log.WithField("command", cmd.String())
	respond := b.responseFeed(cmd)

	if err := cmd.Validate(); err != nil {
		log.WithError(err).Error("Rejected command")
		if respond != nil {
			respond.Publish(command.Failure(err.Error()))
		}
		return
	}

	if cmd.Kind.IsIdentity() {
		b.bootstrap(ctx, log, cmd.Kind)
		return
	}

	sess, err := b.session(ctx)
	if err != nil {
		log.WithError(err).Error("Command has no backend session")
		if respond != nil {
			respond.Publish(command.Failure(err.Error()))
		}
		return
	}

	if cmd.Kind == command.Nuke {
		b.nuke(ctx, log, sess)
		return
	}

	res := b.call(ctx, sess, cmd)
	if respond != nil {
		respond.Publish(res)
	}
	if !res.OK {
		log.WithField("reason", res.Err).Error("Command failed")
		return
	}
	log.Debug("Command done")

	if cmd.Kind == command.ConnStart {
		b.ConnStarted.Publish(res)
	}
}

// CreateDHTInvite asks the backend for a new hosted invite and returns it.
func (b *Bridge) CreateDHTInvite(ctx context.Context) (string, error) {
	sess, err := b.session(ctx)
	if err != nil {
		return "", err
	}
	res := b.call(ctx, sess, command.Simple(command.DHTInviteCreate))
	if !res.OK {
		return "", fmt.Errorf("creating dht invite: %s", res.Err)
	}
	return res.Value, nil
}

// responseFeed returns the feed cmd reports its outcome on, or nil.
func (b *Bridge) responseFeed(cmd command.Command) *feed.Feed[command.Result] {
	switch cmd.Kind {
	case command.InviteAccept, command.HTTPInviteClaim:
		return b.AcceptInviteResponse
	case command.DHTInviteAccept:
		return b.AcceptDHTInviteResponse
	case command.RoomConsumeAlias:
		return b.ConsumeAliasResponse
	case command.ConnRememberConnect:
		if peer.Classify(peer.Hints{Type: cmd.Data.Type}) == peer.CategoryRoom {
			return b.AcceptInviteResponse
		}
	}
	return nil
}

// call turns transport errors into failed results.
func (b *Bridge) call(ctx context.Context, sess Session, cmd command.Command) command.Result {
	res, err := sess.Call(ctx, cmd)
	if err != nil {
		return command.Failure(err.Error())
	}
	return res
}

// bootstrap forwards an identity command unless an identity is already
// held. A failed attempt releases the guard so the user can try again.
func (b *Bridge) bootstrap(ctx context.Context, log *logrus.Entry, kind command.Kind) {
	if kind == command.IdentityClear {
		if err := b.cfg.Signaler.Bootstrap(ctx, kind); err != nil {
			log.WithError(err).Error("Failed to clear identity")
			return
		}
		b.identityHeld.Store(false)
		return
	}

	if !b.identityHeld.CompareAndSwap(false, true) {
		log.Debug("Identity already available, ignoring")
		return
	}
	if err := b.cfg.Signaler.Bootstrap(ctx, kind); err != nil {
		log.WithError(err).Error("Identity bootstrap failed")
		b.identityHeld.Store(false)
	}
}

// nuke wipes the backend, drops the session and clears the identity so the
// next bootstrap can proceed.
func (b *Bridge) nuke(ctx context.Context, log *logrus.Entry, sess Session) {
	res := b.call(ctx, sess, command.Simple(command.Nuke))
	if !res.OK {
		log.WithField("reason", res.Err).Error("Nuke failed")
		return
	}

	b.identity.Publish(false)
	b.reset()
	b.bootstrap(ctx, log, command.IdentityClear)
	log.Info("Backend wiped")
}
