// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"gonih.org/datetime"
)

var (
	monthValues = []datetime.Month{
		datetime.January, datetime.February, datetime.March, datetime.April,
		datetime.May, datetime.June, datetime.July, datetime.August,
		datetime.September, datetime.October, datetime.November, datetime.December,
	}
	weekdayValues = []datetime.Weekday{
		datetime.Monday, datetime.Tuesday, datetime.Wednesday, datetime.Thursday,
		datetime.Friday, datetime.Saturday, datetime.Sunday,
	}
)

// lookupName finds the value whose name or three letter abbreviation is s,
// ignoring case.
func lookupName[T fmt.Stringer](values []T, s string) (T, bool) {
	i := slices.IndexFunc(values, func(v T) bool {
		name := v.String()
		return strings.EqualFold(name, s) || (len(s) == 3 && strings.EqualFold(name[:3], s))
	})
	if i < 0 {
		var zero T
		return zero, false
	}
	return values[i], true
}

func parseInt(what, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return n, nil
}

func parseYear(s string) (datetime.Year, error) {
	n, err := parseInt("year", s)
	return datetime.Year(n), err
}

func parseMonth(s string) (datetime.Month, error) {
	if m, ok := lookupName(monthValues, s); ok {
		return m, nil
	}
	n, err := parseInt("month", s)
	if err != nil {
		return 0, err
	}
	return datetime.MonthFromOne(int(n))
}

func parseWeekday(s string) (datetime.Weekday, error) {
	if d, ok := lookupName(weekdayValues, s); ok {
		return d, nil
	}
	n, err := parseInt("weekday", s)
	if err != nil {
		return 0, err
	}
	return datetime.WeekdayFromOne(int(n))
}

func (a *app) atCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "at <seconds> [milliseconds]",
		Short: "Print the date-time of an instant",
		Long: `Print the date-time of an instant, given in seconds and optional
milliseconds since 1970-01-01T00:00:00Z.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := parseInt("seconds", args[0])
			if err != nil {
				return err
			}
			var ms int64
			if len(args) > 1 {
				if ms, err = parseInt("milliseconds", args[1]); err != nil {
					return err
				}
			}
			a.printDateTime(cmd.OutOrStdout(), datetime.AtMs(secs, ms))
			return nil
		},
	}
}

func (a *app) instantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instant <date-time>",
		Short: "Print the instant of a date-time",
		Long: `Parse a date-time with the configured layout and print its instant
in seconds since 1970-01-01T00:00:00Z. If the layout has no offset, the
configured offset is assumed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			odt, err := datetime.ParseOffsetDateTime(a.cfg.Layout, args[0])
			if err != nil {
				return err
			}
			if !strings.Contains(a.cfg.Layout, "Z07") {
				odt = a.utc.FromLocal(odt.Local())
			}
			a.log.Debug("parsed", "value", odt.String())
			fmt.Fprintln(cmd.OutOrStdout(), odt.Instant())
			return nil
		},
	}
}

func (a *app) ymdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ymd <year> <month> <day>",
		Short: "Describe a date given by year, month and day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := parseYear(args[0])
			if err != nil {
				return err
			}
			m, err := parseMonth(args[1])
			if err != nil {
				return err
			}
			day, err := parseInt("day", args[2])
			if err != nil {
				return err
			}
			d, err := datetime.YMD(y, m, int(day))
			if err != nil {
				return err
			}
			a.printDate(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (a *app) ydCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yd <year> <day-of-year>",
		Short: "Describe a date given by year and day of the year",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := parseYear(args[0])
			if err != nil {
				return err
			}
			yday, err := parseInt("day of year", args[1])
			if err != nil {
				return err
			}
			d, err := datetime.YD(y, int(yday))
			if err != nil {
				return err
			}
			a.printDate(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (a *app) ywdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ywd <year> <week> <weekday>",
		Short: "Describe a date given by ISO year, week and weekday",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := parseYear(args[0])
			if err != nil {
				return err
			}
			week, err := parseInt("week", args[1])
			if err != nil {
				return err
			}
			wd, err := parseWeekday(args[2])
			if err != nil {
				return err
			}
			d, err := datetime.YWD(y, int(week), wd)
			if err != nil {
				return err
			}
			a.printDate(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (a *app) printDate(w io.Writer, d datetime.Date) {
	iy, wk := d.ISOWeek()
	fmt.Fprintf(w, "%s %s day %d week %d-W%02d\n", d.Format(a.cfg.DateLayout), d.Weekday(), d.YearDay(), iy, wk)
}

func (a *app) leapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leap <year>...",
		Short: "Report leap years",
		Long: `Report for each year whether it is a leap year, and the number of
leap years between it and 2000.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, arg := range args {
				y, err := parseYear(arg)
				if err != nil {
					return err
				}
				elapsed, leap := y.LeapYearCalculations()
				fmt.Fprintf(w, "%d leap=%t elapsed=%d\n", y, leap, elapsed)
			}
			return nil
		},
	}
}

func (a *app) calCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cal <year> <month>",
		Short: "Print a calendar of a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := parseYear(args[0])
			if err != nil {
				return err
			}
			m, err := parseMonth(args[1])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), calendar(y.Month(m)))
			return err
		},
	}
}

// calendar renders ym as a grid of weeks, starting on Monday.
func calendar(ym datetime.YearMonth) string {
	const width = 20
	var b strings.Builder
	title := ym.Month.String() + " " + ym.Year.String()
	if pad := (width - len(title)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title)
	b.WriteString("\nMo Tu We Th Fr Sa Su\n")

	var line []byte
	for d := range ym.Days() {
		col := d.Weekday().DaysFromMondayAsOne() - 1
		if d.Day() == 1 {
			line = append(line, strings.Repeat("   ", col)...)
		}
		line = fmt.Appendf(line, "%2d ", d.Day())
		if col == 6 {
			b.Write(line[:len(line)-1])
			b.WriteByte('\n')
			line = line[:0]
		}
	}
	if len(line) > 0 {
		b.Write(line[:len(line)-1])
		b.WriteByte('\n')
	}
	return b.String()
}

func (a *app) nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current date-time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.printDateTime(cmd.OutOrStdout(), datetime.FromInstant(a.now()))
			return nil
		},
	}
}
