// Package hub is the reference backend: it keeps the connection pool, the
// staging area and the persisted peer data, and serves them over QUIC.
package hub

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/config"
	"github.com/rudransh-shrivastava/peer-conn/internal/db"
	"github.com/rudransh-shrivastava/peer-conn/internal/feed"
	"github.com/rudransh-shrivastava/peer-conn/internal/logger"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/store"
)

var (
	ErrNoIdentity     = errors.New("no identity")
	ErrIdentityExists = errors.New("identity already exists")
	ErrBluetoothOff   = errors.New("bluetooth is disabled")
	ErrUnknownInvite  = errors.New("unknown invite")
	ErrInvalidInvite  = errors.New("invalid invite")
	ErrNotImplemented = errors.New("command not supported by hub")
)

const (
	settingHubID = "hubID"
	settingAbout = "about"

	roleServer = "server"
)

type Stores struct {
	Peers    store.PeerRepository
	Settings store.SettingRepository
	Invites  store.InviteRepository
}

type State struct {
	cfg    config.HubConfig
	log    *logrus.Logger
	stores Stores
	now    func() time.Time

	// publishMu keeps each snapshot and its publication together, so a
	// stale snapshot never overwrites a newer one.
	publishMu sync.Mutex

	mu       sync.Mutex
	identity bool
	hubID    string
	pool     map[string]peer.Peer
	staging  map[string]peer.StagedPeer
	flags    peer.Flags

	Identity *feed.Feed[bool]
	Peers    *feed.Feed[[]peer.Peer]
	Staged   *feed.Feed[[]peer.StagedPeer]
	Flags    *feed.Feed[peer.Flags]
}

func NewState(cfg config.HubConfig, stores Stores, log *logrus.Logger) *State {
	if log == nil {
		log = logger.New("info")
	}
	if cfg.Refresh.Initial <= 0 {
		cfg.Refresh = config.Default().Hub.Refresh
	}

	s := &State{
		cfg:      cfg,
		log:      log,
		stores:   stores,
		now:      time.Now,
		pool:     make(map[string]peer.Peer),
		staging:  make(map[string]peer.StagedPeer),
		Identity: feed.New[bool](),
		Peers:    feed.New[[]peer.Peer](),
		Staged:   feed.New[[]peer.StagedPeer](),
		Flags:    feed.New[peer.Flags](),
	}
	s.flags = peer.Flags{
		BluetoothEnabled: cfg.Connectivity.Bluetooth,
		LANEnabled:       cfg.Connectivity.LAN,
		InternetEnabled:  cfg.Connectivity.Internet,
	}
	s.Identity.Publish(false)
	s.Flags.Publish(s.flags)
	return s
}

// Restore picks up an identity persisted by an earlier run.
func (s *State) Restore(ctx context.Context) error {
	id, ok, err := s.stores.Settings.Get(ctx, settingHubID)
	if err != nil {
		return fmt.Errorf("loading hub id: %w", err)
	}
	if !ok || id == "" {
		return nil
	}

	s.mu.Lock()
	s.identity = true
	s.hubID = id
	s.mu.Unlock()

	s.log.WithField("hub_id", id).Info("Restored identity")
	s.Identity.Publish(true)
	return nil
}

func (s *State) HubID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hubID
}

func (s *State) HasIdentity() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Run re-publishes the pool on the refresh schedule until ctx ends. The
// schedule restarts whenever the pool changes.
func (s *State) Run(ctx context.Context) {
	sub, cancel := context.WithCancel(ctx)
	defer cancel()
	changes := s.Peers.Subscribe(sub)

	bo := newRefreshBackOff(s.cfg.Refresh)
	timer := time.NewTimer(bo.NextBackOff())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			bo.Reset()
		case <-timer.C:
			s.log.Debug("Refreshing peers")
			s.publishPeers(ctx)
			<-changes
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(bo.NextBackOff())
	}
}

// Execute runs one command against the hub and reports its outcome.
func (s *State) Execute(ctx context.Context, cmd command.Command) command.Result {
	if err := cmd.Validate(); err != nil {
		return command.Failure(err.Error())
	}
	if !cmd.Kind.IsIdentity() && !s.HasIdentity() {
		return command.Failure(ErrNoIdentity.Error())
	}

	log := s.log.WithField("command", cmd.String())
	value, err := s.execute(ctx, cmd)
	if err != nil {
		log.WithError(err).Warn("Command failed")
		return command.Failure(err.Error())
	}
	log.Debug("Command done")
	return command.Success(value)
}

func (s *State) execute(ctx context.Context, cmd command.Command) (string, error) {
	switch cmd.Kind {
	case command.IdentityCreate, command.IdentityUse, command.IdentityMigrate:
		return "", s.establish(ctx, cmd.Kind)
	case command.IdentityClear:
		s.clearIdentity()
		return "", nil
	case command.Publish:
		return uuid.NewString(), nil
	case command.PublishAbout:
		return "", s.stores.Settings.Set(ctx, settingAbout, cmd.Content)
	case command.ConnStart:
		return "", s.start(ctx)
	case command.ConnReboot:
		s.stop()
		return "", s.start(ctx)
	case command.ConnConnect:
		s.connect(ctx, cmd.Address, cmd.Data)
		return "", nil
	case command.ConnRememberConnect:
		return "", s.rememberConnect(ctx, cmd.Address, cmd.Data)
	case command.ConnDisconnect:
		s.disconnect(ctx, cmd.Address)
		return "", nil
	case command.ConnDisconnectForget:
		if err := s.forget(ctx, cmd.Address); err != nil {
			return "", err
		}
		s.disconnect(ctx, cmd.Address)
		return "", nil
	case command.ConnForget:
		return "", s.forget(ctx, cmd.Address)
	case command.BluetoothSearch:
		return "", s.searchBluetooth(cmd.Interval)
	case command.DHTInviteCreate:
		return s.createDHTInvite(ctx)
	case command.DHTInviteAccept:
		return "", s.acceptDHTInvite(ctx, cmd.Invite)
	case command.DHTInviteRemove:
		return "", s.removeDHTInvite(ctx, cmd.Invite)
	case command.InviteAccept:
		return "", s.acceptInvite(ctx, cmd.Invite)
	case command.HTTPInviteClaim:
		return "", s.claimInvite(ctx, cmd.URI)
	case command.HTTPAuthSignIn:
		return "", s.signIn(ctx, cmd.URI)
	case command.RoomConsumeAlias:
		return s.consumeAlias(ctx, cmd.URI)
	case command.SettingsHops, command.SettingsBlobsPurge:
		return "", s.stores.Settings.Set(ctx, cmd.Kind.String(), strconv.FormatInt(cmd.Number, 10))
	case command.SettingsShowFollows, command.SettingsDetailedLogs, command.SettingsAllowCheckingNewVersion:
		return "", s.stores.Settings.Set(ctx, cmd.Kind.String(), strconv.FormatBool(cmd.Enabled))
	case command.Nuke:
		return "", s.nuke(ctx)
	}
	return "", fmt.Errorf("%w: %s", ErrNotImplemented, cmd.Kind)
}

func (s *State) establish(ctx context.Context, kind command.Kind) error {
	s.mu.Lock()
	if s.identity {
		s.mu.Unlock()
		return ErrIdentityExists
	}
	id := s.hubID
	if id == "" {
		id = uuid.NewString()
	}
	s.mu.Unlock()

	if err := s.stores.Settings.Set(ctx, settingHubID, id); err != nil {
		return fmt.Errorf("saving hub id: %w", err)
	}

	s.mu.Lock()
	s.identity = true
	s.hubID = id
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"hub_id": id, "via": kind.String()}).Info("Identity ready")
	s.Identity.Publish(true)
	return nil
}

func (s *State) clearIdentity() {
	s.mu.Lock()
	was := s.identity
	s.identity = false
	s.mu.Unlock()

	if was {
		s.log.Info("Identity cleared")
	}
	s.Identity.Publish(false)
}

// start stages the configured seeds and hosted invites, then reconnects to
// every remembered peer.
func (s *State) start(ctx context.Context) error {
	remembered, err := s.stores.Peers.Remembered(ctx)
	if err != nil {
		return fmt.Errorf("loading remembered peers: %w", err)
	}
	hosted, err := s.stores.Invites.Hosted(ctx)
	if err != nil {
		return fmt.Errorf("loading hosted invites: %w", err)
	}

	s.mu.Lock()
	stamp := s.now().UnixMilli()
	for _, seed := range s.cfg.Seeds {
		seed.StagingUpdated = stamp
		s.staging[seed.Address] = seed
	}
	for _, inv := range hosted {
		s.staging[inv.Invite] = hostedInvite(inv.Invite, stamp)
	}
	for _, r := range remembered {
		delete(s.staging, r.Address)
		s.pool[r.Address] = s.poolPeer(r.Address, rememberedData(r))
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"seeds":      len(s.cfg.Seeds),
		"hosted":     len(hosted),
		"remembered": len(remembered),
	}).Info("Connections started")

	s.publishPeers(ctx)
	s.publishStaged()
	return nil
}

func (s *State) stop() {
	s.mu.Lock()
	clear(s.pool)
	clear(s.staging)
	s.mu.Unlock()

	s.log.Info("Connections stopped")
	s.Peers.Publish(nil)
	s.Staged.Publish(nil)
}

// poolPeer builds a fresh pool entry. The caller holds mu.
func (s *State) poolPeer(address string, data command.HubData) peer.Peer {
	now := s.now().UnixMilli()
	birth := now
	traits := data.RoomTraits
	if existing, ok := s.pool[address]; ok {
		birth = existing.HubBirth
		traits = unionTraits(traits, existing.RoomTraits)
	}
	hints := peer.Hints{Type: data.Type}
	if strings.HasPrefix(address, tunnelPrefix) {
		hints.InferredType = "tunnel"
	}
	return peer.Peer{
		Hints:      hints,
		RoomTraits: traits,
		Address:    address,
		Key:        data.Key,
		Name:       data.Name,
		Room:       data.Room,
		State:      peer.StateConnected,
		HubBirth:   birth,
		HubUpdated: now,
	}
}

func (s *State) connect(ctx context.Context, address string, data command.HubData) {
	s.mu.Lock()
	if staged, ok := s.staging[address]; ok {
		data = mergeStaged(data, staged)
		delete(s.staging, address)
	}
	s.pool[address] = s.poolPeer(address, data)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"address": address, "type": data.Type}).Info("Peer connected")
	s.publishPeers(ctx)
	s.publishStaged()
}

func (s *State) rememberConnect(ctx context.Context, address string, data command.HubData) error {
	if err := s.stores.Peers.Remember(ctx, address, data); err != nil {
		return fmt.Errorf("connecting to %s failed: %w", address, err)
	}
	s.connect(ctx, address, data)
	return nil
}

func (s *State) disconnect(ctx context.Context, address string) {
	s.mu.Lock()
	_, ok := s.pool[address]
	delete(s.pool, address)
	s.mu.Unlock()

	if !ok {
		return
	}
	s.log.WithField("address", address).Info("Peer disconnected")
	s.publishPeers(ctx)
}

func (s *State) forget(ctx context.Context, address string) error {
	s.unstage(address)
	if err := s.stores.Peers.Forget(ctx, address); err != nil {
		return fmt.Errorf("forgetting %s: %w", address, err)
	}
	s.publishPeers(ctx)
	return nil
}

func (s *State) stage(sp peer.StagedPeer) {
	s.mu.Lock()
	sp.StagingUpdated = s.now().UnixMilli()
	s.staging[sp.Address] = sp
	s.mu.Unlock()
	s.publishStaged()
}

func (s *State) unstage(address string) {
	s.mu.Lock()
	_, ok := s.staging[address]
	delete(s.staging, address)
	s.mu.Unlock()

	if ok {
		s.publishStaged()
	}
}

func (s *State) searchBluetooth(interval int64) error {
	s.mu.Lock()
	if !s.flags.BluetoothEnabled {
		s.mu.Unlock()
		return ErrBluetoothOff
	}
	s.flags.BluetoothLastScanned = s.now().UnixMilli()
	flags := s.flags
	s.mu.Unlock()

	s.log.WithField("interval_ms", interval).Info("Bluetooth scan")
	s.Flags.Publish(flags)
	return nil
}

func (s *State) nuke(ctx context.Context) error {
	remembered, err := s.stores.Peers.Remembered(ctx)
	if err != nil {
		return err
	}
	for _, r := range remembered {
		if err := s.stores.Peers.Forget(ctx, r.Address); err != nil {
			return err
		}
	}
	hosted, err := s.stores.Invites.Hosted(ctx)
	if err != nil {
		return err
	}
	for _, inv := range hosted {
		if _, err := s.stores.Invites.Remove(ctx, inv.Invite); err != nil {
			return err
		}
	}
	if err := s.stores.Settings.Set(ctx, settingHubID, ""); err != nil {
		return err
	}

	s.stop()
	s.mu.Lock()
	s.hubID = ""
	s.mu.Unlock()
	s.clearIdentity()

	s.log.Warn("Hub wiped")
	return nil
}

// publishPeers emits the pool sorted by address, marking which peers are
// remembered.
func (s *State) publishPeers(ctx context.Context) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	peers := slices.Collect(maps.Values(s.pool))
	s.mu.Unlock()

	remembered := make(map[string]bool)
	if rs, err := s.stores.Peers.Remembered(ctx); err != nil {
		s.log.WithError(err).Warn("Failed to load remembered peers")
	} else {
		for _, r := range rs {
			remembered[r.Address] = true
		}
	}

	for i := range peers {
		peers[i].IsInDB = remembered[peers[i].Address]
	}
	slices.SortFunc(peers, func(a, b peer.Peer) int {
		return cmp.Compare(a.Address, b.Address)
	})
	s.Peers.Publish(peers)
}

func (s *State) publishStaged() {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	staged := slices.Collect(maps.Values(s.staging))
	s.mu.Unlock()

	slices.SortFunc(staged, func(a, b peer.StagedPeer) int {
		return cmp.Compare(a.Address, b.Address)
	})
	s.Staged.Publish(staged)
}

func rememberedData(r db.RememberedPeer) command.HubData {
	return command.HubData{
		RoomTraits: peer.RoomTraits{
			OpenInvites:      r.OpenInvites,
			SupportsHTTPAuth: r.SupportsHTTPAuth,
			SupportsAliases:  r.SupportsAliases,
			Membership:       r.Membership,
		},
		Type: r.Type,
		Key:  r.Key,
		Name: r.Name,
		Room: r.Room,
	}
}

// unionTraits keeps every capability either side has seen. A reconnect
// never forgets what the room already advertised.
func unionTraits(a, b peer.RoomTraits) peer.RoomTraits {
	return peer.RoomTraits{
		OpenInvites:      a.OpenInvites || b.OpenInvites,
		SupportsHTTPAuth: a.SupportsHTTPAuth || b.SupportsHTTPAuth,
		SupportsAliases:  a.SupportsAliases || b.SupportsAliases,
		Membership:       a.Membership || b.Membership,
	}
}

// mergeStaged fills the gaps in data from what staging knew about the peer.
func mergeStaged(data command.HubData, sp peer.StagedPeer) command.HubData {
	if data.Type == "" {
		data.Type = sp.Type
	}
	if data.Key == "" {
		data.Key = sp.Key
	}
	if data.Name == "" {
		data.Name = sp.Name
	}
	if data.Room == "" {
		data.Room = sp.Room
	}
	return data
}
