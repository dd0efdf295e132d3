package hub

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

const (
	dhtPrefix    = "dht:"
	netPrefix    = "net:"
	tunnelPrefix = "tunnel:"
	shsSeparator = "~shs:"

	typeDHT  = "dht"
	typePub  = "pub"
	typeRoom = "room"
)

var ErrRoomRejected = errors.New("room rejected invite claim")

func dhtAddress(seed, hubID string) string {
	return dhtPrefix + seed + ":" + hubID
}

func hostedInvite(invite string, stamp int64) peer.StagedPeer {
	return peer.StagedPeer{
		Hints:          peer.Hints{Type: typeDHT},
		Address:        invite,
		Role:           roleServer,
		StagingUpdated: stamp,
	}
}

// parseDHTInvite splits dht:<seed>:<hubID>.
func parseDHTInvite(invite string) (seed, hubID string, err error) {
	rest, ok := strings.CutPrefix(invite, dhtPrefix)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidInvite, invite)
	}
	seed, hubID, ok = strings.Cut(rest, ":")
	if !ok || seed == "" || hubID == "" || strings.Contains(hubID, ":") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidInvite, invite)
	}
	return seed, hubID, nil
}

// parsePubInvite accepts host:port:@key~seed and returns the multiserver
// address and key of the pub it points to.
func parsePubInvite(invite string) (address, key string, err error) {
	target, _, _ := strings.Cut(invite, "~")
	i := strings.LastIndex(target, ":")
	if i <= 0 || i == len(target)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidInvite, invite)
	}
	hostPort, key := target[:i], target[i+1:]
	if !strings.HasPrefix(key, "@") || !strings.Contains(hostPort, ":") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidInvite, invite)
	}
	return netPrefix + hostPort + shsSeparator + shsKey(key), key, nil
}

// shsKey strips the sigil and suffix from a feed id.
func shsKey(id string) string {
	return strings.TrimSuffix(strings.TrimPrefix(id, "@"), ".ed25519")
}

// keyOf returns the feed id embedded in a multiserver address.
func keyOf(address string) string {
	_, k, ok := strings.Cut(address, shsSeparator)
	if !ok || k == "" {
		return ""
	}
	return "@" + k
}

func tunnelAddress(roomKey, userID string) string {
	return tunnelPrefix + roomKey + ":" + userID + shsSeparator + shsKey(userID)
}

// roomQuery parses a room URI and returns its query together with the
// room's multiserver address.
func roomQuery(uri string) (url.Values, string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %q: %w", uri, err)
	}
	q := u.Query()
	address := q.Get("multiserverAddress")
	if address == "" {
		return q, "", fmt.Errorf("%q has no multiserverAddress", uri)
	}
	return q, address, nil
}

func (s *State) createDHTInvite(ctx context.Context) (string, error) {
	hubID := s.HubID()
	seed := strings.ReplaceAll(uuid.NewString(), "-", "")
	invite := dhtAddress(seed, hubID)

	if _, err := s.stores.Invites.Host(ctx, seed, invite); err != nil {
		return "", fmt.Errorf("hosting invite: %w", err)
	}
	s.stage(hostedInvite(invite, 0))

	s.log.WithField("invite", invite).Info("Hosting DHT invite")
	return invite, nil
}

func (s *State) acceptDHTInvite(ctx context.Context, invite string) error {
	_, hubID, err := parseDHTInvite(invite)
	if err != nil {
		return err
	}
	if hubID == s.HubID() {
		return fmt.Errorf("%w: cannot accept own invite", ErrInvalidInvite)
	}
	return s.rememberConnect(ctx, invite, command.HubData{Type: typeDHT})
}

func (s *State) removeDHTInvite(ctx context.Context, invite string) error {
	removed, err := s.stores.Invites.Remove(ctx, invite)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %s", ErrUnknownInvite, invite)
	}
	s.unstage(invite)
	return nil
}

func (s *State) acceptInvite(ctx context.Context, invite string) error {
	address, key, err := parsePubInvite(invite)
	if err != nil {
		return err
	}
	return s.rememberConnect(ctx, address, command.HubData{Type: typePub, Key: key})
}

func (s *State) claimInvite(ctx context.Context, uri string) error {
	q, address, err := roomQuery(uri)
	if err != nil || q.Get("invite") == "" {
		s.log.WithFields(logrus.Fields{"uri": uri}).WithError(err).Debug("Invite claim rejected")
		return ErrRoomRejected
	}
	data := command.HubData{
		RoomTraits: peer.RoomTraits{OpenInvites: true, SupportsHTTPAuth: true, SupportsAliases: true, Membership: true},
		Type:       typeRoom,
		Key:        keyOf(address),
	}
	return s.rememberConnect(ctx, address, data)
}

func (s *State) signIn(ctx context.Context, uri string) error {
	_, address, err := roomQuery(uri)
	if err != nil {
		return err
	}
	data := command.HubData{
		RoomTraits: peer.RoomTraits{SupportsHTTPAuth: true, SupportsAliases: true, Membership: true},
		Type:       typeRoom,
		Key:        keyOf(address),
	}
	return s.rememberConnect(ctx, address, data)
}

// consumeAlias joins the alias's room and opens a tunnel to the aliased
// user. It returns the user's id.
func (s *State) consumeAlias(ctx context.Context, uri string) (string, error) {
	q, address, err := roomQuery(uri)
	if err != nil {
		return "", err
	}
	roomID, userID := q.Get("roomId"), q.Get("userId")
	if roomID == "" || userID == "" {
		return "", fmt.Errorf("%q is missing roomId or userId", uri)
	}

	s.connect(ctx, address, command.HubData{
		RoomTraits: peer.RoomTraits{SupportsAliases: true},
		Type:       typeRoom,
		Key:        roomID,
	})
	s.connect(ctx, tunnelAddress(roomID, userID), command.HubData{Key: userID, Name: q.Get("alias")})
	return userID, nil
}
