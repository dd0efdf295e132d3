// Package reconcile merges the pool, room and staging snapshots reported by
// the hub into one deduplicated, grouped and ordered structure.
package reconcile

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

type MemberKind uint8

const (
	MemberRoom MemberKind = iota
	MemberConnected
	MemberStaged
)

func (k MemberKind) prefix() string {
	switch k {
	case MemberRoom:
		return "a"
	case MemberConnected:
		return "b"
	default:
		return "c"
	}
}

// Member is one entry of a room group. Exactly one of Room, Peer and Staged
// is set, matching Kind.
type Member struct {
	Kind    MemberKind
	Address string
	Room    *peer.Room
	Peer    *peer.Peer
	Staged  *peer.StagedPeer
}

func (m Member) SortKey() string {
	return m.Kind.prefix() + m.Address
}

type RoomGroup struct {
	Key     string
	Room    peer.Room
	Members []Member
}

type Output struct {
	Peers  []peer.Peer
	Rooms  []RoomGroup
	Staged []peer.StagedPeer
}

// Reconcile builds the display structure from three full snapshots. Rooms
// claim their address first, then pool peers, then staged peers. A later
// record with an address already taken is dropped.
func Reconcile(peers []peer.Peer, rooms []peer.Room, staged []peer.StagedPeer) Output {
	seen := make(map[string]struct{})
	groups := make(map[string]*RoomGroup)
	var order []string

	for _, r := range rooms {
		if _, dup := seen[r.Address]; dup {
			continue
		}
		if _, dup := groups[r.Key]; dup {
			continue
		}
		seen[r.Address] = struct{}{}
		room := r
		groups[r.Key] = &RoomGroup{
			Key:     r.Key,
			Room:    r,
			Members: []Member{{Kind: MemberRoom, Address: r.Address, Room: &room}},
		}
		order = append(order, r.Key)
	}

	var out Output

	for _, p := range peers {
		if _, dup := seen[p.Address]; dup {
			continue
		}
		seen[p.Address] = struct{}{}

		if g := groupOfPeer(p, groups); g != nil {
			p.Pool = peer.PoolHub
			member := p
			g.Members = append(g.Members, Member{Kind: MemberConnected, Address: p.Address, Peer: &member})
			continue
		}
		out.Peers = append(out.Peers, p)
	}

	for _, s := range staged {
		if _, dup := seen[s.Address]; dup {
			continue
		}
		seen[s.Address] = struct{}{}

		if g := groupOfStaged(s, groups); g != nil {
			member := s
			g.Members = append(g.Members, Member{Kind: MemberStaged, Address: s.Address, Staged: &member})
			continue
		}
		out.Staged = append(out.Staged, s)
	}

	slices.Sort(order)
	for _, key := range order {
		g := groups[key]
		g.Room.OnlineCount = len(g.Members)
		g.Members[0].Room.OnlineCount = g.Room.OnlineCount
		slices.SortStableFunc(g.Members, func(a, b Member) int {
			if c := cmp.Compare(a.SortKey(), b.SortKey()); c != 0 {
				return c
			}
			return cmp.Compare(a.Address, b.Address)
		})
		out.Rooms = append(out.Rooms, *g)
	}

	slices.SortStableFunc(out.Peers, func(a, b peer.Peer) int {
		return cmp.Compare(peerSortKey(a), peerSortKey(b))
	})
	slices.SortStableFunc(out.Staged, func(a, b peer.StagedPeer) int {
		return cmp.Compare(a.Address, b.Address)
	})
	return out
}

func peerSortKey(p peer.Peer) string {
	if p.HubBirth != 0 {
		return strconv.FormatInt(p.HubBirth, 10)
	}
	return p.Address
}

func groupOfPeer(p peer.Peer, groups map[string]*RoomGroup) *RoomGroup {
	if p.IsRoomAttendant() && p.Room != "" {
		if g, ok := groups[p.Room]; ok {
			return g
		}
	}
	if p.InferredType == "tunnel" {
		if roomKey, ok := ParseTunnel(p.Address, p.Key); ok {
			return groups[roomKey]
		}
	}
	return nil
}

func groupOfStaged(s peer.StagedPeer, groups map[string]*RoomGroup) *RoomGroup {
	if !s.IsRoomAttendant() {
		return nil
	}
	roomKey := s.Room
	if roomKey == "" {
		roomKey = s.Key
	}
	return groups[roomKey]
}

// OnlineElsewhere is how many attendants other than yourself a room has.
func (g RoomGroup) OnlineElsewhere() int {
	return max(g.Room.OnlineCount-1, 0)
}
