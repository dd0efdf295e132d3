package command

func Connect(address string, data HubData) Command {
	return Command{Kind: ConnConnect, Address: address, Data: data}
}

func RememberConnect(address string, data HubData) Command {
	return Command{Kind: ConnRememberConnect, Address: address, Data: data}
}

func Disconnect(address string) Command {
	return Command{Kind: ConnDisconnect, Address: address}
}

func DisconnectForget(address string) Command {
	return Command{Kind: ConnDisconnectForget, Address: address}
}

func Forget(address string) Command {
	return Command{Kind: ConnForget, Address: address}
}

func AcceptInvite(invite string) Command {
	return Command{Kind: InviteAccept, Invite: invite}
}

func AcceptDHTInvite(invite string) Command {
	return Command{Kind: DHTInviteAccept, Invite: invite}
}

func RemoveDHTInvite(invite string) Command {
	return Command{Kind: DHTInviteRemove, Invite: invite}
}

func ClaimInvite(uri string) Command {
	return Command{Kind: HTTPInviteClaim, URI: uri}
}

func SignIn(uri string) Command {
	return Command{Kind: HTTPAuthSignIn, URI: uri}
}

func ConsumeAlias(uri string) Command {
	return Command{Kind: RoomConsumeAlias, URI: uri}
}

// SearchBluetooth makes the device discoverable for interval milliseconds.
func SearchBluetooth(interval int64) Command {
	return Command{Kind: BluetoothSearch, Interval: interval}
}

func SetHops(hops int64) Command {
	return Command{Kind: SettingsHops, Number: hops}
}

func SetBlobsPurge(storageLimit int64) Command {
	return Command{Kind: SettingsBlobsPurge, Number: storageLimit}
}

func SetShowFollows(v bool) Command {
	return Command{Kind: SettingsShowFollows, Enabled: v}
}

func SetDetailedLogs(v bool) Command {
	return Command{Kind: SettingsDetailedLogs, Enabled: v}
}

func SetAllowCheckingNewVersion(v bool) Command {
	return Command{Kind: SettingsAllowCheckingNewVersion, Enabled: v}
}

func Simple(kind Kind) Command {
	return Command{Kind: kind}
}
