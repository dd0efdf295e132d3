package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rudransh-shrivastava/peer-conn/internal/menu"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/reconcile"
)

// Row is one line of the connections list. Keys sort in display order:
// room groups first, then pool peers by age, then staged peers.
type Row struct {
	Key     string
	Address string
	Text    string
	Context menu.Context
	Target  menu.Target
}

func RowKey(r Row) string { return r.Key }

// Rows flattens out into display rows.
func Rows(out reconcile.Output, now time.Time) []Row {
	var rows []Row

	for _, g := range out.Rooms {
		for i, m := range g.Members {
			key := "1" + g.Key + "\x00" + m.SortKey()
			if i == 0 && m.Kind == reconcile.MemberRoom {
				rows = append(rows, roomRow(key, g))
				continue
			}
			rows = append(rows, memberRow(key, m, now))
		}
	}

	for _, p := range out.Peers {
		rows = append(rows, Row{
			Key:     "2" + birthKey(p),
			Address: p.Address,
			Text:    peerText(p, now),
			Context: menu.ContextConnected,
			Target:  menu.Target{IsInDB: p.IsInDB, Name: p.Name},
		})
	}

	for _, s := range out.Staged {
		rows = append(rows, stagedRow("3"+s.Address, s))
	}
	return rows
}

func roomRow(key string, g reconcile.RoomGroup) Row {
	name := g.Room.Name
	if name == "" {
		name = g.Room.Address
	}
	return Row{
		Key:     key,
		Address: g.Room.Address,
		Text:    fmt.Sprintf("%s  %s  (%d online)  %s", name, Label(peer.CategoryRoom.Description()), g.OnlineElsewhere(), g.Room.State),
		Context: menu.ContextRoom,
		Target: menu.Target{
			Name:             g.Room.Name,
			OpenInvites:      g.Room.OpenInvites,
			SupportsHTTPAuth: g.Room.SupportsHTTPAuth,
			SupportsAliases:  g.Room.SupportsAliases,
			Membership:       g.Room.Membership,
		},
	}
}

func memberRow(key string, m reconcile.Member, now time.Time) Row {
	switch m.Kind {
	case reconcile.MemberConnected:
		return Row{
			Key:     key,
			Address: m.Address,
			Text:    "  └ " + peerText(*m.Peer, now),
			Context: menu.ContextConnected,
			Target:  menu.Target{IsInDB: m.Peer.IsInDB, Name: m.Peer.Name},
		}
	default:
		r := stagedRow(key, *m.Staged)
		r.Text = "  └ " + r.Text
		return r
	}
}

func stagedRow(key string, s peer.StagedPeer) Row {
	c := s.Category()
	ctx := menu.ContextStaging
	switch {
	case c == peer.CategoryDHT && s.Role == "server":
		ctx = menu.ContextInvite
	case c == peer.CategoryRoom:
		ctx = menu.ContextStagedRoom
	}

	text := fmt.Sprintf("%s  %s", peer.DisplayName(s.Address, s), Label(peer.StagedDescription(c, s.Role)))
	if s.Note != "" && s.Name != "" {
		text += "  (" + s.Note + ")"
	}
	return Row{
		Key:     key,
		Address: s.Address,
		Text:    text,
		Context: ctx,
		Target:  menu.Target{Name: s.Name},
	}
}

func peerText(p peer.Peer, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s", peer.DisplayName(p.Address, p), Label(p.Category().Description()), p.State)
	if p.HubBirth > 0 {
		fmt.Fprintf(&b, "  since %s", humanize.RelTime(time.UnixMilli(p.HubBirth), now, "ago", "from now"))
	}
	return b.String()
}

// birthKey orders pool peers by age. Peers born in the same millisecond
// fall back to their address.
func birthKey(p peer.Peer) string {
	if p.HubBirth != 0 {
		return fmt.Sprintf("%020d\x00%s", p.HubBirth, p.Address)
	}
	return "~" + p.Address
}
