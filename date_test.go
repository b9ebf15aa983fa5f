// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"encoding/binary"
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"
	"time"
)

var tcs = []struct {
	year  Year
	month Month
	day   int
	want  int64
}{
	{1970, January, 1, 0},
	{1969, December, 31, -1},
	{2000, January, 1, 10957},
	{2000, February, 29, 11016},
	{2000, March, 1, 11017},
	{2004, February, 29, 12477},
	{2023, July, 14, 19552},
	{2400, February, 29, 157113},
	{1, January, 1, -719162},
	{0, January, 1, -719528},
	{-1, January, 1, -719893},
	{1600, March, 1, -135080},
	{1900, March, 1, -25508},
	{9999, December, 31, 2932896},
}

func TestYMD(t *testing.T) {
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			d, err := YMD(tc.year, tc.month, tc.day)
			if err != nil {
				t.Fatalf("YMD(%d, %v, %d) = _, %v, want <nil>", tc.year, tc.month, tc.day, err)
			}
			if got := d.DaysSinceEpoch(); got != tc.want {
				t.Errorf("YMD(%d, %v, %d).DaysSinceEpoch() = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
			}
			if got, err := DateFromUnixDays(tc.want); err != nil || got != d {
				t.Errorf("DateFromUnixDays(%d) = %v, %v, want %v", tc.want, got, err, d)
			}
			check(t, int(tc.year), int(tc.month), tc.day)
		})
	}
}

func TestYMDOutOfRange(t *testing.T) {
	tests := []struct {
		year  Year
		month Month
		day   int
		field string
	}{
		{2023, 0, 1, "month"},
		{2023, 13, 1, "month"},
		{2023, January, 0, "day"},
		{2023, January, 32, "day"},
		{2023, February, 29, "day"},
		{1900, February, 29, "day"},
		{2000, February, 30, "day"},
		{2023, April, 31, "day"},
		{MaxYear + 1, January, 1, "year"},
		{MinYear - 1, December, 31, "year"},
		{1e17, March, 1, "year"},
		{math.MinInt64, March, 1, "year"},
	}
	for _, tc := range tests {
		_, err := YMD(tc.year, tc.month, tc.day)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("YMD(%d, %d, %d) = _, %v, want ErrOutOfRange", tc.year, tc.month, tc.day, err)
			continue
		}
		var oe *OutOfRangeError
		if !errors.As(err, &oe) || oe.Field != tc.field {
			t.Errorf("YMD(%d, %d, %d) = _, %v, want error for %q", tc.year, tc.month, tc.day, err, tc.field)
		}
	}
}

func TestYMDAcceptsEveryDay(t *testing.T) {
	for y := Year(1); y <= 3000; y++ {
		for m := January; m <= December; m++ {
			n := m.DaysIn(y.IsLeap())
			for d := 1; d <= n; d++ {
				if _, err := YMD(y, m, d); err != nil {
					t.Fatalf("YMD(%d, %v, %d) = _, %v, want <nil>", y, m, d, err)
				}
			}
			if _, err := YMD(y, m, n+1); err == nil {
				t.Fatalf("YMD(%d, %v, %d) = _, <nil>, want error", y, m, n+1)
			}
		}
	}
}

func TestYD(t *testing.T) {
	tests := []struct {
		year    Year
		yearday int
		want    string
	}{
		{2015, 0x100, "2015-09-13"},
		{2015, 1, "2015-01-01"},
		{2015, 365, "2015-12-31"},
		{2016, 60, "2016-02-29"},
		{2016, 366, "2016-12-31"},
		{2000, 366, "2000-12-31"},
		{-4, 366, "-0004-12-31"},
	}
	for _, tc := range tests {
		d, err := YD(tc.year, tc.yearday)
		if err != nil {
			t.Errorf("YD(%d, %d) = _, %v, want <nil>", tc.year, tc.yearday, err)
			continue
		}
		if got := d.String(); got != tc.want {
			t.Errorf("YD(%d, %d) = %v, want %v", tc.year, tc.yearday, got, tc.want)
		}
		if got := d.YearDay(); got != tc.yearday {
			t.Errorf("YD(%d, %d).YearDay() = %d, want %d", tc.year, tc.yearday, got, tc.yearday)
		}
	}
	for _, tc := range []struct {
		year    Year
		yearday int
	}{{2015, 0}, {2015, 366}, {2016, 367}, {1900, 366}, {2015, -1}} {
		if d, err := YD(tc.year, tc.yearday); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("YD(%d, %d) = %v, %v, want ErrOutOfRange", tc.year, tc.yearday, d, err)
		}
	}
}

func TestYWD(t *testing.T) {
	tests := []struct {
		year    Year
		week    int
		weekday Weekday
		want    string
	}{
		{2009, 1, Monday, "2008-12-29"},
		{2009, 53, Sunday, "2010-01-03"},
		{2015, 1, Thursday, "2015-01-01"},
		{2020, 53, Friday, "2021-01-01"},
		{2004, 53, Sunday, "2005-01-02"},
		{2016, 52, Sunday, "2017-01-01"},
		{2023, 28, Friday, "2023-07-14"},
	}
	for _, tc := range tests {
		d, err := YWD(tc.year, tc.week, tc.weekday)
		if err != nil {
			t.Errorf("YWD(%d, %d, %v) = _, %v, want <nil>", tc.year, tc.week, tc.weekday, err)
			continue
		}
		if got := d.String(); got != tc.want {
			t.Errorf("YWD(%d, %d, %v) = %v, want %v", tc.year, tc.week, tc.weekday, got, tc.want)
		}
		if y, w := d.ISOWeek(); y != tc.year || w != tc.week {
			t.Errorf("YWD(%d, %d, %v).ISOWeek() = %d, %d", tc.year, tc.week, tc.weekday, y, w)
		}
		if got := d.Weekday(); got != tc.weekday {
			t.Errorf("YWD(%d, %d, %v).Weekday() = %v", tc.year, tc.week, tc.weekday, got)
		}
	}

	for _, tc := range []struct {
		year    Year
		week    int
		weekday Weekday
	}{{2015, 0, Monday}, {2015, 54, Monday}, {2017, 53, Monday}, {2015, 1, 0}, {2015, 1, 8}} {
		if d, err := YWD(tc.year, tc.week, tc.weekday); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("YWD(%d, %d, %d) = %v, %v, want ErrOutOfRange", tc.year, tc.week, tc.weekday, d, err)
		}
	}
}

// TestYWDRoundTrip checks that every date survives the round trip through
// its ISO week date.
func TestYWDRoundTrip(t *testing.T) {
	d, _ := YMD(1990, January, 1)
	end, _ := YMD(2040, January, 1)
	for ; d.Before(end); d = d.AddDays(1) {
		y, w := d.ISOWeek()
		got, err := YWD(y, w, d.Weekday())
		if err != nil || got != d {
			t.Fatalf("YWD(%d, %d, %v) = %v, %v, want %v", y, w, d.Weekday(), got, err, d)
		}
	}
}

func TestYearLimits(t *testing.T) {
	last, err := YMD(MaxYear, December, 31)
	if err != nil {
		t.Fatalf("YMD(MaxYear, December, 31) = _, %v", err)
	}
	first, err := YMD(MinYear, January, 1)
	if err != nil {
		t.Fatalf("YMD(MinYear, January, 1) = _, %v", err)
	}
	if got, want := last.DaysSinceEpoch(), int64(3289811973799017242); got != want {
		t.Errorf("%v.DaysSinceEpoch() = %d, want %d", last, got, want)
	}
	if got, want := first.DaysSinceEpoch(), int64(-3289811973800456299); got != want {
		t.Errorf("%v.DaysSinceEpoch() = %d, want %d", first, got, want)
	}
	if got, want := last.String(), "+9007199254740991-12-31"; got != want {
		t.Errorf("last.String() = %q, want %q", got, want)
	}
	if d := last.Sub(first); d <= 0 {
		t.Errorf("%v.Sub(%v) = %d, want positive", last, first, d)
	}
	for _, n := range []int64{first.DaysSinceEpoch(), last.DaysSinceEpoch()} {
		if got, err := DateFromUnixDays(n); err != nil || got.DaysSinceEpoch() != n {
			t.Errorf("DateFromUnixDays(%d) = %v, %v", n, got, err)
		}
	}
	for _, n := range []int64{math.MinInt64, first.DaysSinceEpoch() - 1, last.DaysSinceEpoch() + 1, math.MaxInt64} {
		if d, err := DateFromUnixDays(n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("DateFromUnixDays(%d) = %v, %v, want ErrOutOfRange", n, d, err)
		}
	}

	if d, err := YD(MaxYear+1, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("YD(MaxYear+1, 1) = %v, %v, want ErrOutOfRange", d, err)
	}
	if d, err := YWD(MinYear-1, 1, Monday); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("YWD(MinYear-1, 1, Monday) = %v, %v, want ErrOutOfRange", d, err)
	}
	// The last ISO week of MaxYear may end in the year after, which does not
	// exist.
	if d, err := YWD(MaxYear, MaxYear.WeeksIn(), Sunday); err == nil && d.Year() != MaxYear {
		t.Errorf("YWD(MaxYear, %d, Sunday) = %v", MaxYear.WeeksIn(), d)
	}
	last.ISOWeek()
	first.ISOWeek()

	if d, err := ParseDate(ISODate, "+100000000000000000-03-01"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ParseDate(%q) = %v, %v, want ErrOutOfRange", "+100000000000000000-03-01", d, err)
	}

	b := binary.AppendVarint(nil, math.MaxInt64)
	var d Date
	if err := d.UnmarshalBinary(b); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("UnmarshalBinary(%q) = %v, want ErrOutOfRange", b, err)
	}

	if got := last.AddDays(-1).AddDays(1); got != last {
		t.Errorf("AddDays at the end of the range = %v, want %v", got, last)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("%v.AddDays(1) did not panic", last)
		}
	}()
	last.AddDays(1)
}

func TestToday(t *testing.T) {
	if got, want := Today(time.UTC), DateOf(time.Now().UTC()); got != want {
		t.Errorf("Today(time.UTC) = %v, want %v", got, want)
	}
	if got, want := Today(time.Local), DateOf(time.Now()); got != want {
		t.Errorf("Today(time.Local) = %v, want %v", got, want)
	}
}

func TestAddDays(t *testing.T) {
	d, _ := YMD(2000, February, 28)
	for _, tc := range []struct {
		n    int64
		want string
	}{
		{0, "2000-02-28"},
		{1, "2000-02-29"},
		{2, "2000-03-01"},
		{-59, "1999-12-31"},
		{366, "2001-02-28"},
		{-146097, "1600-02-28"},
	} {
		got := d.AddDays(tc.n)
		if got.String() != tc.want {
			t.Errorf("%v.AddDays(%d) = %v, want %v", d, tc.n, got, tc.want)
		}
		if s := got.Sub(d); s != tc.n {
			t.Errorf("%v.Sub(%v) = %d, want %d", got, d, s, tc.n)
		}
	}
}

func TestCompare(t *testing.T) {
	a, _ := YMD(-1, December, 31)
	b, _ := YMD(0, January, 1)
	c, _ := YMD(0, January, 2)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || b.Compare(b) != 0 {
		t.Errorf("Compare of %v and %v is inconsistent", a, b)
	}
	if !b.Before(c) || !c.After(b) || c.Before(b) {
		t.Errorf("Before/After of %v and %v is inconsistent", b, c)
	}
	if !a.Equal(a) || a.Equal(b) {
		t.Errorf("Equal of %v and %v is inconsistent", a, b)
	}
	if !(Date{}).IsZero() || a.IsZero() {
		t.Error("IsZero is inconsistent")
	}
}

func TestGoString(t *testing.T) {
	d, _ := YMD(2023, July, 14)
	if got, want := d.GoString(), "datetime.YMD(2023, datetime.July, 14)"; got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}

func addAll(f *testing.F) {
	for _, tc := range tcs {
		f.Add(int(tc.year), int(tc.month), tc.day)
	}
}

func FuzzYMD(f *testing.F) {
	addAll(f)
	f.Fuzz(check)
}

func FuzzDateFromUnixDays(f *testing.F) {
	for _, tc := range tcs {
		f.Add(tc.want)
	}
	f.Fuzz(func(t *testing.T, n int64) {
		d, err := DateFromUnixDays(n)
		if inRange := minUnixDays <= n && n <= maxUnixDays; err != nil || !inRange {
			if inRange || !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("DateFromUnixDays(%d) = %v, %v", n, d, err)
			}
			return
		}
		if got := d.DaysSinceEpoch(); got != n {
			t.Fatalf("DateFromUnixDays(%d).DaysSinceEpoch() = %d", n, got)
		}
		e, err := YMD(d.Date())
		if err != nil || e != d {
			t.Fatalf("YMD(%v.Date()) = %v, %v", d, e, err)
		}
		if n == maxUnixDays {
			return
		}
		if got, want := d.AddDays(1).Sub(d), int64(1); got != want {
			t.Fatalf("%v.AddDays(1).Sub(%v) = %d", d, d, got)
		}
	})
}

func FuzzMarshalText(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want, err := YMD(Year(year), Month(month), day)
		if err != nil {
			return
		}
		b, _ := want.MarshalText()
		t.Logf("YMD(%d, %d, %d).MarshalText() = %q", year, month, day, string(b))
		var got Date
		if err := got.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalText(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		b, err := dateFromUnixDays(rnd.Int63n(1e7) - 5e6).MarshalText()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalText does not panic.
		d.UnmarshalText(b)
	})
}

func FuzzMarshalBinary(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want, err := YMD(Year(year), Month(month), day)
		if err != nil {
			return
		}
		b, _ := want.MarshalBinary()
		t.Logf("YMD(%d, %d, %d).MarshalBinary() = %q", year, month, day, string(b))
		var got Date
		if err := got.UnmarshalBinary(b); err != nil {
			t.Errorf("UnmarshalBinary(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalBinary(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalBinary(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		b, err := dateFromUnixDays(rnd.Int63n(1e7) - 5e6).MarshalBinary()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalBinary does not panic.
		d.UnmarshalBinary(b)
	})
}

// check that the given year, month and day values produce the same date calculations as time.Time.
func check(t *testing.T, year, month, day int) {
	// Stay well within the range of time.Time.
	if year < -1e9 || year > 1e9 {
		return
	}
	want := time.Date(year, time.Month(month), day, 6, 0, 0, 0, time.UTC)
	d, err := YMD(Year(year), Month(month), day)
	if err != nil {
		if wy, wm, wd := want.Date(); wy == year && int(wm) == month && wd == day {
			t.Errorf("YMD(%d, %d, %d) = _, %v, want <nil>", year, month, day, err)
		}
		return
	}
	got := time.Unix(d.DaysSinceEpoch()*secondsPerDay+6*3600, 0).UTC()
	if got != want {
		t.Errorf("YMD(%d, %d, %d): %v != %v", year, month, day, got.Format(time.DateOnly), want.Format(time.DateOnly))
	}
	Y, M, D := d.Date()
	if wantY, wantM, wantD := want.Date(); int(Y) != wantY || M.Std() != wantM || D != wantD {
		t.Errorf("YMD(%d, %d, %d).Date() = %d, %d, %d, want %d, %d, %d", year, month, day, Y, M, D, wantY, wantM, wantD)
	}
	t.Logf("YMD(%d, %d, %d).Date() = %d, %d, %d", year, month, day, Y, M, D)
	if gotYD, wantYD := d.YearDay(), want.YearDay(); gotYD != wantYD {
		t.Errorf("YMD(%d, %d, %d).YearDay() = %d, want %d", year, month, day, gotYD, wantYD)
	}
	if gotWD, wantWD := d.Weekday().Std(), want.Weekday(); gotWD != wantWD {
		t.Errorf("YMD(%d, %d, %d).Weekday() = %v, want %v", year, month, day, gotWD, wantWD)
	}
	gotIY, gotIW := d.ISOWeek()
	wantIY, wantIW := want.ISOWeek()
	if int(gotIY) != wantIY || gotIW != wantIW {
		t.Errorf("YMD(%d, %d, %d).ISOWeek() = (%d, %d), want (%d, %d)", year, month, day, gotIY, gotIW, wantIY, wantIW)
	}
	if std := d.Std(6, 0, 0, 0, time.UTC); std != want {
		t.Errorf("YMD(%d, %d, %d).Std() = %v, want %v", year, month, day, std, want)
	}
}
