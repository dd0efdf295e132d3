// Package view renders the reconciled peer list for a terminal.
package view

var english = map[string]string{
	"connections.peers.types.bluetooth":      "Bluetooth",
	"connections.peers.types.lan":            "Local network",
	"connections.peers.types.dht":            "Internet P2P",
	"connections.peers.types.dht.client":     "Internet P2P: looking for invite host",
	"connections.peers.types.dht.server":     "Internet P2P: waiting for invite guest",
	"connections.peers.types.dht.searching":  "Internet P2P: searching",
	"connections.peers.types.pub":            "Internet server",
	"connections.peers.types.room.server":    "Room server",
	"connections.peers.types.room.attendant": "Room attendant",
	"connections.peers.types.unknown":        "Unknown",

	"connections.menu.open-profile.label":      "Open profile",
	"connections.menu.connect.label":           "Connect",
	"connections.menu.disconnect.label":        "Disconnect",
	"connections.menu.disconnect-forget.label": "Disconnect and forget",
	"connections.menu.forget.label":            "Forget",
	"connections.menu.manage-aliases.label":    "Manage aliases",
	"connections.menu.room-sign-in.label":      "Sign in to room",
	"connections.menu.room-share-invite.label": "Share room invite",
	"connections.menu.invite-info.label":       "About this invite",
	"connections.menu.invite-note.label":       "Add note",
	"connections.menu.invite-share.label":      "Share invite",
	"connections.menu.invite-delete.label":     "Delete invite",
}

// Label returns the English text for key, or key itself when unknown.
func Label(key string) string {
	if s, ok := english[key]; ok {
		return s
	}
	return key
}
