package view

import (
	"fmt"
	"io"
	"time"

	"github.com/rudransh-shrivastava/peer-conn/internal/animlist"
	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

var phaseMarks = map[animlist.Phase]string{
	animlist.PhaseEntering: "+",
	animlist.PhaseActive:   " ",
	animlist.PhaseExiting:  "-",
}

// Render writes one frame of the list and returns the keys whose exit
// transition has finished by now.
func Render(w io.Writer, entries []animlist.Entry[string, Row], flags peer.Flags, now time.Time, d time.Duration) ([]string, error) {
	if _, err := fmt.Fprintln(w, flagLine(flags, now)); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "  no connections")
		return nil, err
	}

	var finished []string
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %s\n", phaseMarks[e.Phase(now, d)], e.Item.Text); err != nil {
			return finished, err
		}
		if e.Removing() && now.Sub(e.RemovedAt) >= d {
			finished = append(finished, e.Key)
		}
	}
	return finished, nil
}

func flagLine(f peer.Flags, now time.Time) string {
	on := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	line := fmt.Sprintf("bluetooth %s  lan %s  internet %s", on(f.BluetoothEnabled), on(f.LANEnabled), on(f.InternetEnabled))
	if f.RecentlyScanned(now) {
		line += "  (bluetooth scanned recently)"
	}
	return line
}
