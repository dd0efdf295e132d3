package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rudransh-shrivastava/peer-conn/internal/db"
	"github.com/rudransh-shrivastava/peer-conn/internal/store"
)

var noteCmd = &cobra.Command{
	Use:   "note [invite [text]]",
	Short: "lists, sets or clears the local note on a hosted invite",
	Long:  `notes stay on this machine and are shown next to the invite they belong to; an empty text clears the note`,
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(cfg.Client.Notes), 0755); err != nil {
			return err
		}
		gdb, err := db.Open(cfg.Client.Notes)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close(gdb) }()
		notes := store.NewNoteStore(gdb)

		switch len(args) {
		case 0:
			all, err := notes.Notes(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for invite, note := range all {
				fmt.Fprintf(tw, "%s\t%s\n", invite, note)
			}
			return tw.Flush()
		case 1:
			note, err := notes.Note(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), note)
			return nil
		default:
			return notes.SetNote(cmd.Context(), args[0], args[1])
		}
	},
}
