package peer

type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryBluetooth
	CategoryLAN
	CategoryDHT
	CategoryInternet
	CategoryPub
	CategoryRoom
	CategoryRoomAttendant
)

func (c Category) String() string {
	switch c {
	case CategoryBluetooth:
		return "bt"
	case CategoryLAN:
		return "lan"
	case CategoryDHT:
		return "dht"
	case CategoryInternet:
		return "internet"
	case CategoryPub:
		return "pub"
	case CategoryRoom:
		return "room"
	case CategoryRoomAttendant:
		return "room-attendant"
	default:
		return "unknown"
	}
}

var typeOrder = []struct {
	value    string
	category Category
}{
	{"bt", CategoryBluetooth},
	{"lan", CategoryLAN},
	{"internet", CategoryInternet},
	{"dht", CategoryDHT},
	{"pub", CategoryPub},
	{"room", CategoryRoom},
	{"room-endpoint", CategoryRoomAttendant},
	{"room-attendant", CategoryRoomAttendant},
}

var sourceOrder = []struct {
	value    string
	category Category
}{
	{"local", CategoryLAN},
	{"pub", CategoryPub},
	{"internet", CategoryInternet},
	{"dht", CategoryDHT},
}

var inferredOrder = []struct {
	value    string
	category Category
}{
	{"bt", CategoryBluetooth},
	{"lan", CategoryLAN},
	{"tunnel", CategoryRoomAttendant},
	{"dht", CategoryDHT},
	{"internet", CategoryInternet},
}

// Classify picks a category from the hints. An explicit type beats the
// source, which beats the inferred type. Anything else is CategoryUnknown.
func Classify(h Hints) Category {
	for _, t := range typeOrder {
		if h.Type == t.value {
			return t.category
		}
	}
	for _, s := range sourceOrder {
		if h.Source == s.value {
			return s.category
		}
	}
	for _, i := range inferredOrder {
		if h.InferredType == i.value {
			return i.category
		}
	}
	return CategoryUnknown
}

// IsRoomAttendant reports whether the record's explicit type says it is
// reached through a room.
func (h Hints) IsRoomAttendant() bool {
	return h.Type == "room-attendant" || h.Type == "room-endpoint"
}

func (c Category) Icon() string {
	switch c {
	case CategoryBluetooth:
		return "bluetooth"
	case CategoryLAN:
		return "wifi"
	case CategoryDHT, CategoryRoomAttendant:
		return "account-network"
	case CategoryInternet, CategoryPub, CategoryRoom:
		return "server-network"
	default:
		return "help-network"
	}
}

// Description returns the lookup key for the category's human readable text.
func (c Category) Description() string {
	switch c {
	case CategoryBluetooth:
		return "connections.peers.types.bluetooth"
	case CategoryLAN:
		return "connections.peers.types.lan"
	case CategoryDHT:
		return "connections.peers.types.dht"
	case CategoryInternet, CategoryPub:
		return "connections.peers.types.pub"
	case CategoryRoom:
		return "connections.peers.types.room.server"
	case CategoryRoomAttendant:
		return "connections.peers.types.room.attendant"
	default:
		return "connections.peers.types.unknown"
	}
}

// StagedDescription is Description for staged peers, where DHT peers are
// described by the side of the invite they are on.
func StagedDescription(c Category, role string) string {
	if c != CategoryDHT {
		return c.Description()
	}
	switch role {
	case "client":
		return "connections.peers.types.dht.client"
	case "server":
		return "connections.peers.types.dht.server"
	default:
		return "connections.peers.types.dht.searching"
	}
}

// Named is anything DisplayName can draw a label from.
type Named interface {
	Category() Category
	Label() (name, note, key string)
}

func (p Peer) Label() (string, string, string) {
	return p.Name, p.Note, p.Key
}

func (s StagedPeer) Label() (string, string, string) {
	return s.Name, s.Note, s.Key
}

// DisplayName prefers the record's name. Peers without a name fall back to
// their note or key when the category makes the address meaningless to a
// person, and to the raw address otherwise.
func DisplayName(address string, rec Named) string {
	name, note, key := rec.Label()
	if name != "" {
		return name
	}
	switch rec.Category() {
	case CategoryBluetooth, CategoryLAN, CategoryDHT, CategoryRoomAttendant:
		if note != "" {
			return note
		}
		if key != "" {
			return key
		}
	}
	return address
}
