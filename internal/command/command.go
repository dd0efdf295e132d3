// Package command defines the closed set of requests a client can send to
// the hub.
package command

import (
	"errors"
	"fmt"

	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

var (
	ErrUnknownKind   = errors.New("unknown command kind")
	ErrMissingField  = errors.New("command is missing a required field")
	ErrInvalidNumber = errors.New("command carries an invalid number")
)

type Kind uint16

const (
	KindUnknown Kind = iota
	IdentityCreate
	IdentityUse
	IdentityMigrate
	IdentityClear
	Publish
	PublishAbout
	InviteAccept
	ConnStart
	ConnConnect
	ConnRememberConnect
	ConnDisconnect
	ConnDisconnectForget
	ConnForget
	ConnReboot
	BluetoothSearch
	DHTInviteCreate
	DHTInviteAccept
	DHTInviteRemove
	HTTPInviteClaim
	HTTPAuthSignIn
	RoomConsumeAlias
	SettingsHops
	SettingsBlobsPurge
	SettingsShowFollows
	SettingsDetailedLogs
	SettingsAllowCheckingNewVersion
	Nuke
)

var kindNames = map[Kind]string{
	IdentityCreate:                  "identity.create",
	IdentityUse:                     "identity.use",
	IdentityMigrate:                 "identity.migrate",
	IdentityClear:                   "identity.clear",
	Publish:                         "publish",
	PublishAbout:                    "publishAbout",
	InviteAccept:                    "invite.accept",
	ConnStart:                       "conn.start",
	ConnConnect:                     "conn.connect",
	ConnRememberConnect:             "conn.rememberConnect",
	ConnDisconnect:                  "conn.disconnect",
	ConnDisconnectForget:            "conn.disconnectForget",
	ConnForget:                      "conn.forget",
	ConnReboot:                      "connReboot",
	BluetoothSearch:                 "bluetooth.search",
	DHTInviteCreate:                 "dhtInvite.create",
	DHTInviteAccept:                 "dhtInvite.accept",
	DHTInviteRemove:                 "dhtInvite.remove",
	HTTPInviteClaim:                 "httpInviteClient.claim",
	HTTPAuthSignIn:                  "httpAuthClient.signIn",
	RoomConsumeAlias:                "roomClient.consumeAliasUri",
	SettingsHops:                    "settings.hops",
	SettingsBlobsPurge:              "settings.blobsPurge",
	SettingsShowFollows:             "settings.showFollows",
	SettingsDetailedLogs:            "settings.detailedLogs",
	SettingsAllowCheckingNewVersion: "settings.allowCheckingNewVersion",
	Nuke:                            "nuke",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[name]
	if !ok {
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// IsIdentity reports whether k bootstraps or clears the local identity.
// These never wait for the shared hub session.
func (k Kind) IsIdentity() bool {
	switch k {
	case IdentityCreate, IdentityUse, IdentityMigrate, IdentityClear:
		return true
	}
	return false
}

// HubData is the metadata remembered alongside an address. The room traits
// only apply when the address is a room server.
type HubData struct {
	peer.RoomTraits

	Type string
	Key  string
	Name string
	Room string
}

// Command is one request. Only the fields used by Kind are meaningful.
type Command struct {
	Kind     Kind
	Address  string
	URI      string
	Invite   string
	Content  string
	Data     HubData
	Interval int64
	Number   int64
	Enabled  bool
}

func (c Command) String() string {
	switch {
	case c.Address != "":
		return fmt.Sprintf("%s(%s)", c.Kind, c.Address)
	case c.URI != "":
		return fmt.Sprintf("%s(%s)", c.Kind, c.URI)
	case c.Invite != "":
		return fmt.Sprintf("%s(%s)", c.Kind, c.Invite)
	default:
		return c.Kind.String()
	}
}

// Validate checks that c carries the fields its kind needs.
func (c Command) Validate() error {
	switch c.Kind {
	case KindUnknown:
		return ErrUnknownKind
	case ConnConnect, ConnRememberConnect, ConnDisconnect, ConnDisconnectForget, ConnForget:
		if c.Address == "" {
			return fmt.Errorf("%w: %s needs an address", ErrMissingField, c.Kind)
		}
	case InviteAccept, DHTInviteAccept, DHTInviteRemove:
		if c.Invite == "" {
			return fmt.Errorf("%w: %s needs an invite", ErrMissingField, c.Kind)
		}
	case HTTPInviteClaim, HTTPAuthSignIn, RoomConsumeAlias:
		if c.URI == "" {
			return fmt.Errorf("%w: %s needs a uri", ErrMissingField, c.Kind)
		}
	case Publish, PublishAbout:
		if c.Content == "" {
			return fmt.Errorf("%w: %s needs content", ErrMissingField, c.Kind)
		}
	case BluetoothSearch:
		if c.Interval <= 0 {
			return fmt.Errorf("%w: %s interval %d", ErrInvalidNumber, c.Kind, c.Interval)
		}
	case SettingsHops, SettingsBlobsPurge:
		if c.Number < 0 {
			return fmt.Errorf("%w: %s value %d", ErrInvalidNumber, c.Kind, c.Number)
		}
	default:
		if _, ok := kindNames[c.Kind]; !ok {
			return ErrUnknownKind
		}
	}
	return nil
}

// Result is the outcome published on a response feed. Value carries an
// identifier for operations that produce one, such as a consumed alias.
type Result struct {
	OK    bool
	Value string
	Err   string
}

func Success(value string) Result {
	return Result{OK: true, Value: value}
}

func Failure(msg string) Result {
	return Result{Err: msg}
}
