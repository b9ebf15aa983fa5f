// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the datetime command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"gonih.org/datetime"
	"gonih.org/datetime/internal/config"
)

type app struct {
	cfgFile string
	verbose bool
	layout  string
	offset  string

	cfg *config.Config
	utc datetime.Offset
	log *slog.Logger
	now func() datetime.Instant
}

// NewRootCmd returns the datetime command with all subcommands.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{now: datetime.Now})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "datetime",
		Short: "Proleptic Gregorian calendar and clock",
		Long: `datetime converts between instants, calendar dates and clock times
of the proleptic Gregorian calendar.

Date-times are printed with the configured layout and UTC offset. The
configuration is read from --config, $DATETIME_CONFIG or ./datetime.toml.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $DATETIME_CONFIG or ./datetime.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().StringVar(&a.layout, "layout", "", "layout for date-times (default: "+datetime.ISODateTime+")")
	root.PersistentFlags().StringVar(&a.offset, "offset", "", `UTC offset like "Z" or "+05:30"`)

	root.AddCommand(
		a.atCmd(),
		a.instantCmd(),
		a.ymdCmd(),
		a.ydCmd(),
		a.ywdCmd(),
		a.leapCmd(),
		a.calCmd(),
		a.nowCmd(),
	)
	return root
}

// Execute runs the datetime command with the process arguments.
func Execute() error {
	return execute(NewRootCmd(), os.Args[1:])
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(escapeNegative(root, args))
	return root.Execute()
}

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// escapeNegative inserts "--" before the first argument that is a negative
// number, so that it is not parsed as a shorthand flag. Flags given after
// it are treated as arguments.
func escapeNegative(root *cobra.Command, args []string) []string {
	for i := 0; i < len(args); i++ {
		s := args[i]
		switch {
		case s == "--":
			return args
		case negativeNumber.MatchString(s):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		case strings.HasPrefix(s, "--") && !strings.Contains(s, "="):
			// The value of "--flag value" may itself be a negative number.
			if f := root.PersistentFlags().Lookup(s[2:]); f != nil && f.NoOptDefVal == "" {
				i++
			}
		}
	}
	return args
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.layout != "" {
		a.cfg.Layout = a.layout
	}
	if a.offset != "" {
		a.cfg.Offset = a.offset
	}
	if a.utc, err = a.cfg.UTCOffset(); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configured",
		"command", cmd.Name(),
		"layout", a.cfg.Layout,
		"date_layout", a.cfg.DateLayout,
		"offset", a.utc.String(),
	)
	return nil
}

func (a *app) printDateTime(w io.Writer, dt datetime.DateTime) {
	odt := a.utc.Transform(dt)
	fmt.Fprintln(w, odt.Format(a.cfg.Layout))
}
