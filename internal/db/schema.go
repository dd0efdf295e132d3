package db

// RememberedPeer is an address the hub reconnects to across restarts.
type RememberedPeer struct {
	ID      uint   `gorm:"primaryKey"`
	Address string `gorm:"uniqueIndex;not null"`
	Key     string
	Type    string
	Name    string
	Room    string

	// Room traits, only set for room servers.
	OpenInvites      bool
	SupportsHTTPAuth bool
	SupportsAliases  bool
	Membership       bool

	CreatedAt int64
	UpdatedAt int64
}

type Setting struct {
	Name      string `gorm:"primaryKey"`
	Value     string
	UpdatedAt int64
}

// HostedInvite is a DHT invite this hub created and is waiting on.
type HostedInvite struct {
	ID        uint   `gorm:"primaryKey"`
	Seed      string `gorm:"uniqueIndex;not null"`
	Invite    string `gorm:"uniqueIndex;not null"`
	Claimed   bool
	CreatedAt int64
}

// InviteNote is the client side reminder of who an invite was made for.
type InviteNote struct {
	Invite    string `gorm:"primaryKey"`
	Note      string
	UpdatedAt int64
}
