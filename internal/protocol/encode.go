package protocol

import (
	"google.golang.org/protobuf/proto"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
	"github.com/rudransh-shrivastava/peer-conn/internal/protocol/wirepb"
)

func (m *Call) marshal() ([]byte, error) {
	return proto.Marshal(&wirepb.Call{RequestId: m.RequestID, Command: commandToWire(m.Command)})
}

func (m *Call) unmarshal(b []byte) error {
	var w wirepb.Call
	if err := proto.Unmarshal(b, &w); err != nil {
		return err
	}
	m.RequestID = w.GetRequestId()
	m.Command = commandFromWire(w.GetCommand())
	return nil
}

func (m *Error) marshal() ([]byte, error) {
	return proto.Marshal(&wirepb.Error{Code: uint32(m.Code), Message: m.Message})
}

func (m *Error) unmarshal(b []byte) error {
	var w wirepb.Error
	if err := proto.Unmarshal(b, &w); err != nil {
		return err
	}
	m.Code = ErrorCode(w.GetCode())
	m.Message = w.GetMessage()
	return nil
}

func (m *Flags) marshal() ([]byte, error) {
	return proto.Marshal(&wirepb.Flags{
		BluetoothEnabled:     m.Flags.BluetoothEnabled,
		BluetoothLastScanned: m.Flags.BluetoothLastScanned,
		LanEnabled:           m.Flags.LANEnabled,
		InternetEnabled:      m.Flags.InternetEnabled,
	})
}

func (m *Flags) unmarshal(b []byte) error {
	var w wirepb.Flags
	if err := proto.Unmarshal(b, &w); err != nil {
		return err
	}
	m.Flags = peer.Flags{
		BluetoothEnabled:     w.GetBluetoothEnabled(),
		BluetoothLastScanned: w.GetBluetoothLastScanned(),
		LANEnabled:           w.GetLanEnabled(),
		InternetEnabled:      w.GetInternetEnabled(),
	}
	return nil
}

func (m *Identity) marshal() ([]byte, error) {
	return proto.Marshal(&wirepb.Identity{Ready: m.Ready})
}

func (m *Identity) unmarshal(b []byte) error {
	var w wirepb.Identity
	if err := proto.Unmarshal(b, &w); err != nil {
		return err
	}
	m.Ready = w.GetReady()
	return nil
}

func (m *Peers) marshal() ([]byte, error) {
	w := &wirepb.PeerList{Peers: make([]*wirepb.Peer, 0, len(m.Peers))}
	for _, p := range m.Peers {
		w.Peers = append(w.Peers, peerToWire(p))
	}
	return proto.Marshal(w)
}

func (m *Peers) unmarshal(b []byte) error {
	var w wirepb.PeerList
	if err := proto.Unmarshal(b, &w); err != nil {
		return err
	}
	for _, p := range w.GetPeers() {
		m.Peers = append(m.Peers, peerFromWire(p))
	}
	return nil
}

func (m *Ping) marshal() ([]byte, error) { return proto.Marshal(&wirepb.Ping{}) }

func (m *Ping) unmarshal(b []byte) error { return proto.Unmarshal(b, &wirepb.Ping{}) }

func (m *Pong) marshal() ([]byte, error) { return proto.Marshal(&wirepb.Pong{}) }

func (m *Pong) unmarshal(b []byte) error { return proto.Unmarshal(b, &wirepb.Pong{}) }

func (m *Reply) marshal() ([]byte, error) {
	return proto.Marshal(&wirepb.Reply{
		RequestId: m.RequestID,
		Ok:        m.Result.OK,
		Value:     m.Result.Value,
		Err:       m.Result.Err,
	})
}

func (m *Reply) unmarshal(b []byte) error {
	var w wirepb.Reply
	if err := proto.Unmarshal(b, &w); err != nil {
		return err
	}
	m.RequestID = w.GetRequestId()
	m.Result = command.Result{OK: w.GetOk(), Value: w.GetValue(), Err: w.GetErr()}
	return nil
}

func (m *Staged) marshal() ([]byte, error) {
	w := &wirepb.StagedList{Staged: make([]*wirepb.StagedPeer, 0, len(m.Staged))}
	for _, s := range m.Staged {
		w.Staged = append(w.Staged, stagedToWire(s))
	}
	return proto.Marshal(w)
}

func (m *Staged) unmarshal(b []byte) error {
	var w wirepb.StagedList
	if err := proto.Unmarshal(b, &w); err != nil {
		return err
	}
	for _, s := range w.GetStaged() {
		m.Staged = append(m.Staged, stagedFromWire(s))
	}
	return nil
}

func (m *Subscribe) marshal() ([]byte, error) {
	return proto.Marshal(&wirepb.Subscribe{RequestId: m.RequestID, Topic: string(m.Topic)})
}

func (m *Subscribe) unmarshal(b []byte) error {
	var w wirepb.Subscribe
	if err := proto.Unmarshal(b, &w); err != nil {
		return err
	}
	m.RequestID = w.GetRequestId()
	m.Topic = Topic(w.GetTopic())
	return nil
}

func hintsToWire(h peer.Hints) *wirepb.Hints {
	if h == (peer.Hints{}) {
		return nil
	}
	return &wirepb.Hints{Type: h.Type, Source: h.Source, InferredType: h.InferredType}
}

func hintsFromWire(w *wirepb.Hints) peer.Hints {
	return peer.Hints{Type: w.GetType(), Source: w.GetSource(), InferredType: w.GetInferredType()}
}

func traitsToWire(t peer.RoomTraits) *wirepb.RoomTraits {
	if t == (peer.RoomTraits{}) {
		return nil
	}
	return &wirepb.RoomTraits{
		OpenInvites:      t.OpenInvites,
		SupportsHttpAuth: t.SupportsHTTPAuth,
		SupportsAliases:  t.SupportsAliases,
		Membership:       t.Membership,
	}
}

func traitsFromWire(w *wirepb.RoomTraits) peer.RoomTraits {
	return peer.RoomTraits{
		OpenInvites:      w.GetOpenInvites(),
		SupportsHTTPAuth: w.GetSupportsHttpAuth(),
		SupportsAliases:  w.GetSupportsAliases(),
		Membership:       w.GetMembership(),
	}
}

func peerToWire(p peer.Peer) *wirepb.Peer {
	return &wirepb.Peer{
		Address:    p.Address,
		Key:        p.Key,
		Name:       p.Name,
		ImageUrl:   p.ImageURL,
		Note:       p.Note,
		State:      string(p.State),
		Hints:      hintsToWire(p.Hints),
		HubBirth:   p.HubBirth,
		HubUpdated: p.HubUpdated,
		Pool:       p.Pool,
		IsInDb:     p.IsInDB,
		Room:       p.Room,
		RoomName:   p.RoomName,
		Traits:     traitsToWire(p.RoomTraits),
	}
}

func peerFromWire(w *wirepb.Peer) peer.Peer {
	return peer.Peer{
		Hints:      hintsFromWire(w.GetHints()),
		RoomTraits: traitsFromWire(w.GetTraits()),
		Address:    w.GetAddress(),
		Key:        w.GetKey(),
		Name:       w.GetName(),
		ImageURL:   w.GetImageUrl(),
		Note:       w.GetNote(),
		State:      peer.State(w.GetState()),
		HubBirth:   w.GetHubBirth(),
		HubUpdated: w.GetHubUpdated(),
		Pool:       w.GetPool(),
		IsInDB:     w.GetIsInDb(),
		Room:       w.GetRoom(),
		RoomName:   w.GetRoomName(),
	}
}

func stagedToWire(s peer.StagedPeer) *wirepb.StagedPeer {
	return &wirepb.StagedPeer{
		Address:        s.Address,
		Key:            s.Key,
		Name:           s.Name,
		Note:           s.Note,
		Role:           s.Role,
		Room:           s.Room,
		Hints:          hintsToWire(s.Hints),
		StagingUpdated: s.StagingUpdated,
	}
}

func stagedFromWire(w *wirepb.StagedPeer) peer.StagedPeer {
	return peer.StagedPeer{
		Hints:          hintsFromWire(w.GetHints()),
		Address:        w.GetAddress(),
		Key:            w.GetKey(),
		Name:           w.GetName(),
		Note:           w.GetNote(),
		Role:           w.GetRole(),
		Room:           w.GetRoom(),
		StagingUpdated: w.GetStagingUpdated(),
	}
}

func commandToWire(c command.Command) *wirepb.Command {
	w := &wirepb.Command{
		Kind:     uint32(c.Kind),
		Address:  c.Address,
		Uri:      c.URI,
		Invite:   c.Invite,
		Content:  c.Content,
		Interval: c.Interval,
		Number:   c.Number,
		Enabled:  c.Enabled,
	}
	if c.Data != (command.HubData{}) {
		w.Data = &wirepb.HubData{
			Type:   c.Data.Type,
			Key:    c.Data.Key,
			Name:   c.Data.Name,
			Room:   c.Data.Room,
			Traits: traitsToWire(c.Data.RoomTraits),
		}
	}
	return w
}

func commandFromWire(w *wirepb.Command) command.Command {
	d := w.GetData()
	return command.Command{
		Kind:    command.Kind(w.GetKind()),
		Address: w.GetAddress(),
		URI:     w.GetUri(),
		Invite:  w.GetInvite(),
		Content: w.GetContent(),
		Data: command.HubData{
			RoomTraits: traitsFromWire(d.GetTraits()),
			Type:       d.GetType(),
			Key:        d.GetKey(),
			Name:       d.GetName(),
			Room:       d.GetRoom(),
		},
		Interval: w.GetInterval(),
		Number:   w.GetNumber(),
		Enabled:  w.GetEnabled(),
	}
}
