// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the amnplus command tree.
//
// Every invocation loads the configuration, opens a per-invocation logger
// and request ID, wires a [Runtime] and, for commands that need it,
// restores the persisted session before running.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/amnplus-client/internal/config"
	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/utils"
	"github.com/MKhiriev/amnplus-client/models"
)

const logRole = "amnplus-client"

// Command annotations.
const (
	// annotationStandalone marks commands that run without configuration or
	// runtime.
	annotationStandalone = "amnplus/standalone"

	// annotationSession marks commands that need a restored session.
	annotationSession = "amnplus/session"
)

// Options customises a [CLI]. Zero fields take production defaults.
type Options struct {
	Bootstrap Bootstrap
	Clipboard func(string) error

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// CLI holds the state shared by the commands of one invocation.
type CLI struct {
	build     models.AppBuildInfo
	bootstrap Bootstrap
	clipboard func(string) error

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	flags  *config.Flags
	cfg    *config.StructuredConfig
	logger *logger.Logger
	rt     *Runtime
	prompt Prompter
}

// New returns a CLI for build with opts applied.
func New(build models.AppBuildInfo, opts Options) *CLI {
	c := &CLI{
		build:     build,
		bootstrap: opts.Bootstrap,
		clipboard: opts.Clipboard,
		in:        opts.In,
		out:       opts.Out,
		errOut:    opts.ErrOut,
	}

	if c.bootstrap == nil {
		c.bootstrap = DefaultBootstrap
	}
	if c.clipboard == nil {
		c.clipboard = clipboard.WriteAll
	}
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.errOut == nil {
		c.errOut = os.Stderr
	}
	c.prompt = NewPrompter(c.in, c.errOut)

	return c
}

// Run executes the command line args and releases the runtime afterwards.
func (c *CLI) Run(ctx context.Context, args []string) (err error) {
	root := c.Command()
	root.SetArgs(args)

	defer func() {
		if c.rt != nil && c.rt.Close != nil {
			err = errors.Join(err, c.rt.Close())
		}
	}()

	return root.ExecuteContext(ctx)
}

// Command builds the root command.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:               "amnplus",
		Short:             "Client-side encrypted password and API key vault",
		Long:              "amnplus stores passwords and API keys in the AMNplus vault. Secrets are encrypted on this machine before they are sent.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun,
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	c.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.loginCommand(),
		c.registerCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.passwordsCommand(),
		c.apiKeysCommand(),
		c.statsCommand(),
		c.versionCommand(),
	)

	return root
}

func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationStandalone] != "" {
		return nil
	}

	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return err
	}
	c.cfg = cfg

	requestID := utils.NewUUIDGenerator().Generate()
	c.logger = logger.NewClientLogger(logRole, logger.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	child := &logger.Logger{Logger: c.logger.With().Str("request_id", requestID).Str("command", cmd.CommandPath()).Str("version", cfg.App.Version).Logger()}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = utils.WithRequestID(ctx, requestID)
	ctx = child.WithContext(ctx)

	rt, err := c.bootstrap(ctx, cfg, child)
	if err != nil {
		return fmt.Errorf("start client: %w", err)
	}
	c.rt = rt
	cmd.SetContext(ctx)

	if cmd.Annotations[annotationSession] != "" {
		if _, err = c.rt.Sessions.Restore(ctx); err != nil {
			return err
		}
	}

	child.Debug().Msg("command started")
	return nil
}

func needsSession() map[string]string {
	return map[string]string{annotationSession: "true"}
}
