package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
)

var hubDataFlags command.HubData

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "creates, restores or clears the hub identity",
}

var connCmd = &cobra.Command{
	Use:   "conn",
	Short: "manages connections in the hub's pool",
}

var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "accepts, creates and removes invites",
}

var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "talks to room servers",
}

var bluetoothCmd = &cobra.Command{
	Use:   "bluetooth",
	Short: "searches for bluetooth peers",
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "changes hub settings",
}

var publishCmd = &cobra.Command{
	Use:   "publish text",
	Short: "publishes a message",
	Args:  cobra.ExactArgs(1),
	RunE: sendFunc(func(args []string) (command.Command, error) {
		return command.Command{Kind: command.Publish, Content: args[0]}, nil
	}),
}

var nukeCmd = &cobra.Command{
	Use:   "nuke",
	Short: "wipes the hub: identity, remembered peers and hosted invites",
	Args:  cobra.NoArgs,
	RunE:  simple(command.Nuke),
}

func init() {
	identityCmd.AddCommand(
		&cobra.Command{Use: "create", Short: "creates a new identity", Args: cobra.NoArgs, RunE: simple(command.IdentityCreate)},
		&cobra.Command{Use: "use", Short: "uses the existing identity", Args: cobra.NoArgs, RunE: simple(command.IdentityUse)},
		&cobra.Command{Use: "migrate", Short: "migrates the identity from an older hub", Args: cobra.NoArgs, RunE: simple(command.IdentityMigrate)},
		&cobra.Command{Use: "clear", Short: "forgets the current identity", Args: cobra.NoArgs, RunE: simple(command.IdentityClear)},
		&cobra.Command{
			Use:   "about name",
			Short: "publishes the name peers see",
			Args:  cobra.ExactArgs(1),
			RunE: sendFunc(func(args []string) (command.Command, error) {
				return command.Command{Kind: command.PublishAbout, Content: args[0]}, nil
			}),
		},
	)

	connectCmd := &cobra.Command{
		Use:   "connect address",
		Short: "connects to a peer",
		Args:  cobra.ExactArgs(1),
		RunE: sendFunc(func(args []string) (command.Command, error) {
			return command.Connect(args[0], hubDataFlags), nil
		}),
	}
	rememberCmd := &cobra.Command{
		Use:   "remember address",
		Short: "remembers a peer and connects to it",
		Args:  cobra.ExactArgs(1),
		RunE: sendFunc(func(args []string) (command.Command, error) {
			return command.RememberConnect(args[0], hubDataFlags), nil
		}),
	}
	for _, c := range []*cobra.Command{connectCmd, rememberCmd} {
		c.Flags().StringVar(&hubDataFlags.Type, "type", "", "peer type, e.g. lan, pub, room")
		c.Flags().StringVar(&hubDataFlags.Key, "key", "", "peer feed id")
		c.Flags().StringVar(&hubDataFlags.Name, "name", "", "display name")
		c.Flags().StringVar(&hubDataFlags.Room, "room", "", "key of the room the peer is reached through")
		c.Flags().BoolVar(&hubDataFlags.OpenInvites, "open-invites", false, "room lets members share invites")
		c.Flags().BoolVar(&hubDataFlags.SupportsHTTPAuth, "http-auth", false, "room supports signing in over HTTP")
		c.Flags().BoolVar(&hubDataFlags.SupportsAliases, "aliases", false, "room supports aliases")
		c.Flags().BoolVar(&hubDataFlags.Membership, "member", false, "we are a member of the room")
	}

	connCmd.AddCommand(
		&cobra.Command{Use: "start", Short: "starts connections", Args: cobra.NoArgs, RunE: simple(command.ConnStart)},
		&cobra.Command{Use: "reboot", Short: "stops and restarts connections", Args: cobra.NoArgs, RunE: simple(command.ConnReboot)},
		connectCmd,
		rememberCmd,
		addressCmd("disconnect", "disconnects from a peer", command.Disconnect),
		addressCmd("disconnect-forget", "disconnects from and forgets a peer", command.DisconnectForget),
		addressCmd("forget", "forgets a peer", command.Forget),
	)

	inviteCmd.AddCommand(
		&cobra.Command{
			Use:   "accept invite",
			Short: "accepts a pub invite",
			Args:  cobra.ExactArgs(1),
			RunE: sendFunc(func(args []string) (command.Command, error) {
				return command.AcceptInvite(args[0]), nil
			}),
		},
		&cobra.Command{Use: "create", Short: "hosts a new internet P2P invite", Args: cobra.NoArgs, RunE: simple(command.DHTInviteCreate)},
		&cobra.Command{
			Use:   "accept-dht invite",
			Short: "accepts an internet P2P invite",
			Args:  cobra.ExactArgs(1),
			RunE: sendFunc(func(args []string) (command.Command, error) {
				return command.AcceptDHTInvite(args[0]), nil
			}),
		},
		&cobra.Command{
			Use:   "remove invite",
			Short: "stops hosting an internet P2P invite",
			Args:  cobra.ExactArgs(1),
			RunE: sendFunc(func(args []string) (command.Command, error) {
				return command.RemoveDHTInvite(args[0]), nil
			}),
		},
	)

	roomCmd.AddCommand(
		uriCmd("claim", "claims a room invite link", command.ClaimInvite),
		uriCmd("sign-in", "signs in to a room", command.SignIn),
		uriCmd("alias", "connects to the owner of a room alias", command.ConsumeAlias),
	)

	var interval int64
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "scans for bluetooth peers",
		Args:  cobra.NoArgs,
		RunE: sendFunc(func([]string) (command.Command, error) {
			return command.SearchBluetooth(interval), nil
		}),
	}
	searchCmd.Flags().Int64Var(&interval, "interval", 20000, "scan duration in milliseconds")
	bluetoothCmd.AddCommand(searchCmd)

	settingsCmd.AddCommand(
		numberSetting("hops", command.SetHops),
		numberSetting("blobs-purge", command.SetBlobsPurge),
		boolSetting("show-follows", command.SetShowFollows),
		boolSetting("detailed-logs", command.SetDetailedLogs),
		boolSetting("check-new-version", command.SetAllowCheckingNewVersion),
	)
}

func addressCmd(use, short string, build func(string) command.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use + " address",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: sendFunc(func(args []string) (command.Command, error) {
			return build(args[0]), nil
		}),
	}
}

func uriCmd(use, short string, build func(string) command.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use + " uri",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: sendFunc(func(args []string) (command.Command, error) {
			return build(strings.TrimSpace(args[0])), nil
		}),
	}
}

func numberSetting(use string, build func(int64) command.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use + " value",
		Short: "sets " + use,
		Args:  cobra.ExactArgs(1),
		RunE: sendFunc(func(args []string) (command.Command, error) {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return command.Command{}, err
			}
			return build(n), nil
		}),
	}
}

func boolSetting(use string, build func(bool) command.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use + " on|off",
		Short: "turns " + use + " on or off",
		Args:  cobra.ExactArgs(1),
		RunE: sendFunc(func(args []string) (command.Command, error) {
			v, err := parseBool(args[0])
			if err != nil {
				return command.Command{}, err
			}
			return build(v), nil
		}),
	}
}
