package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/menu"
	"github.com/rudransh-shrivastava/peer-conn/internal/reconcile"
	"github.com/rudransh-shrivastava/peer-conn/internal/view"
)

var ErrNoSuchPeer = errors.New("no such peer in the list")

var menuCmd = &cobra.Command{
	Use:   "menu address [action]",
	Short: "lists or runs the actions offered for a peer",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		c, err := openClient(cfg, log)
		if err != nil {
			return err
		}
		defer c.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
		defer cancel()

		commands := make(chan command.Command)
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = c.bridge.Run(ctx, commands)
		}()
		defer func() {
			cancel()
			<-done
		}()

		if err := awaitIdentity(ctx, c.bridge); err != nil {
			return err
		}
		peers, err := c.bridge.Peers.Wait(ctx)
		if err != nil {
			return fmt.Errorf("waiting for peers: %w", err)
		}
		staged, _ := c.bridge.Staged.Wait(ctx)
		rooms, _ := c.bridge.Rooms.Latest()

		address := args[0]
		row, ok := findRow(view.Rows(reconcile.Reconcile(peers, rooms, staged), time.Now()), address)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoSuchPeer, address)
		}
		options := menu.New(view.Label).For(row.Context, row.Target)

		if len(args) == 1 {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, o := range options {
				fmt.Fprintf(tw, "%s\t%s\n", o.Action, o.Label)
			}
			return tw.Flush()
		}

		for _, o := range options {
			if o.Action.String() != args[1] {
				continue
			}
			action, ok := o.Action.Command(address)
			if !ok {
				return fmt.Errorf("%s is not something the hub does", o.Action)
			}
			c.bridge.Dispatch(ctx, action)
			fmt.Fprintln(cmd.OutOrStdout(), "sent", action.Kind)
			return nil
		}
		return fmt.Errorf("%s is not offered for %s", args[1], address)
	},
}

func findRow(rows []view.Row, address string) (view.Row, bool) {
	for _, r := range rows {
		if r.Address == address {
			return r, true
		}
	}
	return view.Row{}, false
}
