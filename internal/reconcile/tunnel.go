package reconcile

import "strings"

const tunnelPrefix = "tunnel:"

// ParseTunnel extracts the room key from a tunnel address of the form
// tunnel:<roomKey>:<peerKey>. It reports false for any address that does
// not follow that shape, including a missing peer key.
func ParseTunnel(address, peerKey string) (string, bool) {
	if peerKey == "" || !strings.HasPrefix(address, tunnelPrefix) {
		return "", false
	}
	end := strings.Index(address, ":"+peerKey)
	if end < len(tunnelPrefix) {
		return "", false
	}
	roomKey := address[len(tunnelPrefix):end]
	if roomKey == "" {
		return "", false
	}
	return roomKey, true
}
