package cmd

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/abacatepay-go/app/client"
)

// runCommand builds a client and runs fn with it, logging the outcome and latency.
func runCommand(cmd *cobra.Command, name string, fn func(ctx context.Context, c *client.Client) error) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	err = fn(ctx, c)
	latency := time.Since(start)
	if err != nil {
		logrus.WithError(err).WithField("command", name).WithField("latency", latency.String()).Error("command_failed")
		return err
	}
	logrus.WithField("command", name).WithField("latency", latency.String()).Debug("command_completed")
	return nil
}
