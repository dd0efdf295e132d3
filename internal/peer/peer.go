// Package peer holds the records reported by the hub and the rules used to
// classify them.
package peer

import "time"

type State string

const (
	StateConnecting    State = "connecting"
	StateConnected     State = "connected"
	StateDisconnecting State = "disconnecting"
)

// PoolHub marks a peer that was moved out of the standalone list into a room
// group while still being part of the connection pool.
const PoolHub = "hub"

// Hints are the classification fields a record may carry. They overlap and
// any of them may be empty.
type Hints struct {
	Type         string `yaml:"type,omitempty"`
	Source       string `yaml:"source,omitempty"`
	InferredType string `yaml:"inferred_type,omitempty"`
}

// RoomTraits are the capabilities a room server advertised when it was
// joined. They are zero for every other kind of peer.
type RoomTraits struct {
	OpenInvites      bool `yaml:"open_invites,omitempty"`
	SupportsHTTPAuth bool `yaml:"supports_http_auth,omitempty"`
	SupportsAliases  bool `yaml:"supports_aliases,omitempty"`
	Membership       bool `yaml:"membership,omitempty"`
}

// Peer is a peer in the connection pool.
type Peer struct {
	Hints      `yaml:",inline"`
	RoomTraits `yaml:",inline"`

	Address    string `yaml:"address"`
	Key        string `yaml:"key,omitempty"`
	Name       string `yaml:"name,omitempty"`
	ImageURL   string `yaml:"image_url,omitempty"`
	Note       string `yaml:"note,omitempty"`
	State      State  `yaml:"state,omitempty"`
	HubBirth   int64  `yaml:"hub_birth,omitempty"`
	HubUpdated int64  `yaml:"hub_updated,omitempty"`
	Pool       string `yaml:"pool,omitempty"`
	IsInDB     bool   `yaml:"is_in_db,omitempty"`
	Room       string `yaml:"room,omitempty"`
	RoomName   string `yaml:"room_name,omitempty"`
}

// StagedPeer is a peer that was discovered but is not connected.
type StagedPeer struct {
	Hints `yaml:",inline"`

	Address        string `yaml:"address"`
	Key            string `yaml:"key,omitempty"`
	Name           string `yaml:"name,omitempty"`
	Note           string `yaml:"note,omitempty"`
	Role           string `yaml:"role,omitempty"`
	Room           string `yaml:"room,omitempty"`
	StagingUpdated int64  `yaml:"-"`
}

type Room struct {
	RoomTraits

	Address     string
	Key         string
	State       State
	Name        string
	OnlineCount int
}

const recentScanWindow = 15 * time.Second

// Flags describes which connectivity modes are currently usable.
type Flags struct {
	BluetoothEnabled     bool
	BluetoothLastScanned int64
	LANEnabled           bool
	InternetEnabled      bool
}

// RecentlyScanned reports whether a bluetooth scan finished within the last
// 15 seconds.
func (f Flags) RecentlyScanned(now time.Time) bool {
	if f.BluetoothLastScanned == 0 {
		return false
	}
	last := time.UnixMilli(f.BluetoothLastScanned)
	return now.Sub(last) < recentScanWindow
}

func (p Peer) Category() Category {
	return Classify(p.Hints)
}

func (s StagedPeer) Category() Category {
	return Classify(s.Hints)
}

// RoomsOf returns a Room for every pool peer that classifies as a room server.
func RoomsOf(peers []Peer) []Room {
	var rooms []Room
	for _, p := range peers {
		if p.Category() != CategoryRoom {
			continue
		}
		rooms = append(rooms, Room{
			RoomTraits: p.RoomTraits,
			Address:    p.Address,
			Key:        p.Key,
			State:      p.State,
			Name:       p.Name,
		})
	}
	return rooms
}
