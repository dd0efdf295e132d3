// Package store provides database access for remembered peers, settings,
// hosted invites and invite notes.
package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/db"
)

type PeerStore struct {
	db *gorm.DB
}

func NewPeerStore(db *gorm.DB) *PeerStore {
	return &PeerStore{db: db}
}

func (ps *PeerStore) Remember(ctx context.Context, address string, data command.HubData) error {
	now := time.Now().UnixMilli()
	peer := db.RememberedPeer{
		Address:          address,
		Key:              data.Key,
		Type:             data.Type,
		Name:             data.Name,
		Room:             data.Room,
		OpenInvites:      data.OpenInvites,
		SupportsHTTPAuth: data.SupportsHTTPAuth,
		SupportsAliases:  data.SupportsAliases,
		Membership:       data.Membership,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return ps.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"key", "type", "name", "room",
			"open_invites", "supports_http_auth", "supports_aliases", "membership",
			"updated_at",
		}),
	}).Create(&peer).Error
}

func (ps *PeerStore) Forget(ctx context.Context, address string) error {
	return ps.db.WithContext(ctx).Where("address = ?", address).Delete(&db.RememberedPeer{}).Error
}

func (ps *PeerStore) IsRemembered(ctx context.Context, address string) (bool, error) {
	var count int64
	err := ps.db.WithContext(ctx).Model(&db.RememberedPeer{}).Where("address = ?", address).Count(&count).Error
	return count > 0, err
}

func (ps *PeerStore) Remembered(ctx context.Context) ([]db.RememberedPeer, error) {
	var peers []db.RememberedPeer
	err := ps.db.WithContext(ctx).Order("address").Find(&peers).Error
	return peers, err
}

type SettingStore struct {
	db *gorm.DB
}

func NewSettingStore(db *gorm.DB) *SettingStore {
	return &SettingStore{db: db}
}

func (ss *SettingStore) Set(ctx context.Context, name, value string) error {
	setting := db.Setting{Name: name, Value: value, UpdatedAt: time.Now().UnixMilli()}
	return ss.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

func (ss *SettingStore) Get(ctx context.Context, name string) (string, bool, error) {
	var setting db.Setting
	err := ss.db.WithContext(ctx).First(&setting, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

func (ss *SettingStore) All(ctx context.Context) (map[string]string, error) {
	var settings []db.Setting
	if err := ss.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Name] = s.Value
	}
	return out, nil
}

type InviteStore struct {
	db *gorm.DB
}

func NewInviteStore(db *gorm.DB) *InviteStore {
	return &InviteStore{db: db}
}

func (is *InviteStore) Host(ctx context.Context, seed, invite string) (db.HostedInvite, error) {
	hosted := db.HostedInvite{Seed: seed, Invite: invite, CreatedAt: time.Now().UnixMilli()}
	err := is.db.WithContext(ctx).Create(&hosted).Error
	return hosted, err
}

// Remove deletes the hosted invite and reports whether it existed.
func (is *InviteStore) Remove(ctx context.Context, invite string) (bool, error) {
	res := is.db.WithContext(ctx).Where("invite = ?", invite).Delete(&db.HostedInvite{})
	return res.RowsAffected > 0, res.Error
}

func (is *InviteStore) Hosted(ctx context.Context) ([]db.HostedInvite, error) {
	var invites []db.HostedInvite
	err := is.db.WithContext(ctx).Order("created_at, id").Find(&invites).Error
	return invites, err
}

type NoteStore struct {
	db *gorm.DB
}

func NewNoteStore(db *gorm.DB) *NoteStore {
	return &NoteStore{db: db}
}

// SetNote attaches note to invite. An empty note removes it.
func (ns *NoteStore) SetNote(ctx context.Context, invite, note string) error {
	if note == "" {
		return ns.db.WithContext(ctx).Where("invite = ?", invite).Delete(&db.InviteNote{}).Error
	}
	row := db.InviteNote{Invite: invite, Note: note, UpdatedAt: time.Now().UnixMilli()}
	return ns.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "invite"}},
		DoUpdates: clause.AssignmentColumns([]string{"note", "updated_at"}),
	}).Create(&row).Error
}

func (ns *NoteStore) Note(ctx context.Context, invite string) (string, error) {
	var row db.InviteNote
	err := ns.db.WithContext(ctx).First(&row, "invite = ?", invite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return row.Note, err
}

func (ns *NoteStore) Notes(ctx context.Context) (map[string]string, error) {
	var rows []db.InviteNote
	if err := ns.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Invite] = r.Note
	}
	return out, nil
}

var (
	_ PeerRepository    = (*PeerStore)(nil)
	_ SettingRepository = (*SettingStore)(nil)
	_ InviteRepository  = (*InviteStore)(nil)
	_ NoteRepository    = (*NoteStore)(nil)
)
