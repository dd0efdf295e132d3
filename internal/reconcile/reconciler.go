package reconcile

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

// Reconciler remembers the content of the last inputs and only recomputes
// when something the rows show or act on changed. HubUpdated alone is not
// such a change. Snapshots that are new slices with identical content keep
// the previous Output, so consumers do not restart animations for nothing.
type Reconciler struct {
	mu     sync.Mutex
	print  []string
	output Output
	primed bool
}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

func (r *Reconciler) Update(peers []peer.Peer, rooms []peer.Room, staged []peer.StagedPeer) (Output, bool) {
	fp := fingerprint(peers, rooms, staged)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.primed && slices.Equal(fp, r.print) {
		return r.output, false
	}
	r.print = fp
	r.output = Reconcile(peers, rooms, staged)
	r.primed = true
	return r.output, true
}

func (r *Reconciler) Output() Output {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.output
}

func fingerprint(peers []peer.Peer, rooms []peer.Room, staged []peer.StagedPeer) []string {
	fp := make([]string, 0, len(peers)+len(rooms)+len(staged))
	for _, r := range rooms {
		fp = append(fp, line("r", r.Address, string(r.State), r.Name, r.Key, traits(r.RoomTraits)))
	}
	for _, p := range peers {
		fp = append(fp, line("p", p.Address, string(p.State), p.Name, p.Key, p.Category().String(), p.Room,
			strconv.FormatInt(p.HubBirth, 10), strconv.FormatBool(p.IsInDB), p.Note, p.ImageURL, traits(p.RoomTraits)))
	}
	for _, s := range staged {
		fp = append(fp, line("s", s.Address, s.Role, s.Name, s.Key, s.Category().String(), s.Room, s.Note))
	}
	slices.Sort(fp)
	return fp
}

func line(fields ...string) string {
	return strings.Join(fields, "\x1f")
}

func traits(t peer.RoomTraits) string {
	return fmt.Sprintf("%t%t%t%t", t.OpenInvites, t.SupportsHTTPAuth, t.SupportsAliases, t.Membership)
}
