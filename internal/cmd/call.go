package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rudransh-shrivastava/peer-conn/internal/command"
	"github.com/rudransh-shrivastava/peer-conn/internal/hub"
)

const callTimeout = 10 * time.Second

// send runs one command against the hub and prints its outcome.
func send(cmd *cobra.Command, c command.Command) error {
	if err := c.Validate(); err != nil {
		return err
	}

	cfg, log, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
	defer cancel()

	client := hub.NewClient(cfg.Client.Hub, cfg.Client.Listen, log)
	defer func() { _ = client.Close() }()

	if c.Kind.IsIdentity() {
		if err := client.Bootstrap(ctx, c.Kind); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}

	sess, err := client.Dial(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	res, err := sess.Call(ctx, c)
	if err != nil {
		return err
	}
	if !res.OK {
		return errors.New(res.Err)
	}
	if res.Value != "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.Value)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

// sendFunc adapts a command builder to a cobra RunE.
func sendFunc(build func(args []string) (command.Command, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := build(args)
		if err != nil {
			return err
		}
		return send(cmd, c)
	}
}

func simple(kind command.Kind) func(*cobra.Command, []string) error {
	return sendFunc(func([]string) (command.Command, error) {
		return command.Simple(kind), nil
	})
}

func parseBool(s string) (bool, error) {
	switch s {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
