// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datepb converts between datetime values and the google.type
// protobuf messages Date, TimeOfDay and DateTime, and between
// datetime.Duration and google.protobuf.Duration.
//
// google.type.Date only covers the years 1 to 9999. Conversions of dates
// outside of that range fail with ErrYearRange.
package datepb

import (
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/type/date"
	dtpb "google.golang.org/genproto/googleapis/type/datetime"
	"google.golang.org/genproto/googleapis/type/timeofday"
	"google.golang.org/protobuf/types/known/durationpb"

	"gonih.org/datetime"
)

var (
	// ErrYearRange is returned for years outside of [1, 9999].
	ErrYearRange = errors.New("year not representable in google.type.Date")
	// ErrPartialDate is returned when a full date is needed, but the
	// message has a zero year, month or day.
	ErrPartialDate = errors.New("partial date")
	// ErrNoOffset is returned by ToOffsetDateTime for a civil DateTime
	// without a UTC offset or time zone.
	ErrNoOffset = errors.New("date-time has no offset")
	// ErrTimeZone is returned for time zones other than UTC, which can not
	// be resolved to a fixed offset.
	ErrTimeZone = errors.New("unsupported time zone")
)

const nanosPerMilli = 1e6

func checkYear(y datetime.Year) error {
	if y < 1 || y > 9999 {
		return fmt.Errorf("%w: %d", ErrYearRange, y)
	}
	return nil
}

// FromDate converts d to a google.type.Date.
func FromDate(d datetime.Date) (*date.Date, error) {
	if err := checkYear(d.Year()); err != nil {
		return nil, err
	}
	return &date.Date{
		Year:  int32(d.Year()),
		Month: int32(d.Month()),
		Day:   int32(d.Day()),
	}, nil
}

// ToDate converts a full google.type.Date. Year, month and day must all be
// set.
func ToDate(pb *date.Date) (datetime.Date, error) {
	if pb.GetYear() == 0 || pb.GetMonth() == 0 || pb.GetDay() == 0 {
		return datetime.Date{}, ErrPartialDate
	}
	return ymd(pb.GetYear(), pb.GetMonth(), pb.GetDay())
}

func ymd(year, month, day int32) (datetime.Date, error) {
	m, err := datetime.MonthFromOne(int(month))
	if err != nil {
		return datetime.Date{}, err
	}
	return datetime.YMD(datetime.Year(year), m, int(day))
}

// Interval returns the first and last day of the period described by pb.
// A date can represent
//   - a full year when month and day are zero,
//   - a full month when day is zero,
//   - an exact date with year, month and day.
//
// A zero year is not supported.
func Interval(pb *date.Date) (first, last datetime.Date, err error) {
	year := datetime.Year(pb.GetYear())
	if year == 0 {
		return first, last, ErrPartialDate
	}
	if pb.GetDay() != 0 {
		d, err := ymd(pb.GetYear(), pb.GetMonth(), pb.GetDay())
		return d, d, err
	}
	if pb.GetMonth() == 0 {
		first, _ = datetime.YD(year, 1)
		last, _ = datetime.YD(year, year.Days())
		return first, last, nil
	}
	m, err := datetime.MonthFromOne(int(pb.GetMonth()))
	if err != nil {
		return first, last, err
	}
	ym := year.Month(m)
	first, _ = ym.Day(1)
	last, _ = ym.Day(ym.DayCount())
	return first, last, nil
}

// FromTime converts t to a google.type.TimeOfDay. The end of the day is
// converted to 24:00:00.
func FromTime(t datetime.Time) *timeofday.TimeOfDay {
	return &timeofday.TimeOfDay{
		Hours:   int32(t.Hour()),
		Minutes: int32(t.Minute()),
		Seconds: int32(t.Second()),
		Nanos:   int32(t.Millisecond()) * nanosPerMilli,
	}
}

// ToTime converts a google.type.TimeOfDay, truncating to milliseconds. Leap
// seconds are rejected.
func ToTime(pb *timeofday.TimeOfDay) (datetime.Time, error) {
	return datetime.HMSMs(int(pb.GetHours()), int(pb.GetMinutes()), int(pb.GetSeconds()), int(pb.GetNanos()/nanosPerMilli))
}

// FromDateTime converts dt to a civil google.type.DateTime, without an
// offset.
func FromDateTime(dt datetime.DateTime) (*dtpb.DateTime, error) {
	if err := checkYear(dt.Year()); err != nil {
		return nil, err
	}
	return &dtpb.DateTime{
		Year:    int32(dt.Year()),
		Month:   int32(dt.Month()),
		Day:     int32(dt.Day()),
		Hours:   int32(dt.Hour()),
		Minutes: int32(dt.Minute()),
		Seconds: int32(dt.Second()),
		Nanos:   int32(dt.Millisecond()) * nanosPerMilli,
	}, nil
}

// FromOffsetDateTime converts the local time of odt to a google.type.DateTime.
// UTC is converted to the time zone "UTC" and a fixed offset to a UTC
// offset, so the two stay distinguishable.
func FromOffsetDateTime(odt datetime.OffsetDateTime) (*dtpb.DateTime, error) {
	pb, err := FromDateTime(odt.Local())
	if err != nil {
		return nil, err
	}
	if o := odt.Offset(); o.IsUTC() {
		pb.TimeOffset = &dtpb.DateTime_TimeZone{TimeZone: &dtpb.TimeZone{Id: "UTC"}}
	} else {
		pb.TimeOffset = &dtpb.DateTime_UtcOffset{UtcOffset: &durationpb.Duration{Seconds: int64(o.TotalSeconds())}}
	}
	return pb, nil
}

// ToDateTime converts the civil fields of pb, ignoring any offset.
func ToDateTime(pb *dtpb.DateTime) (datetime.DateTime, error) {
	if pb.GetYear() == 0 {
		return datetime.DateTime{}, ErrPartialDate
	}
	d, err := ymd(pb.GetYear(), pb.GetMonth(), pb.GetDay())
	if err != nil {
		return datetime.DateTime{}, err
	}
	t, err := datetime.HMSMs(int(pb.GetHours()), int(pb.GetMinutes()), int(pb.GetSeconds()), int(pb.GetNanos()/nanosPerMilli))
	if err != nil {
		return datetime.DateTime{}, err
	}
	return datetime.NewDateTime(d, t), nil
}

// ToOffsetDateTime converts pb, which must carry a UTC offset or the time
// zone "UTC".
func ToOffsetDateTime(pb *dtpb.DateTime) (datetime.OffsetDateTime, error) {
	local, err := ToDateTime(pb)
	if err != nil {
		return datetime.OffsetDateTime{}, err
	}
	var o datetime.Offset
	switch {
	case pb.GetUtcOffset() != nil:
		d := pb.GetUtcOffset()
		if err := d.CheckValid(); err != nil {
			return datetime.OffsetDateTime{}, err
		}
		if o, err = datetime.OffsetOfSeconds(int(d.GetSeconds())); err != nil {
			return datetime.OffsetDateTime{}, err
		}
	case pb.GetTimeZone() != nil:
		if id := pb.GetTimeZone().GetId(); id != "UTC" {
			return datetime.OffsetDateTime{}, fmt.Errorf("%w: %q", ErrTimeZone, id)
		}
		o = datetime.UTC()
	default:
		return datetime.OffsetDateTime{}, ErrNoOffset
	}
	return o.FromLocal(local), nil
}

// FromDuration converts d to a google.protobuf.Duration.
func FromDuration(d datetime.Duration) *durationpb.Duration {
	s, ms := d.Lengths()
	// durationpb wants seconds and nanos with the same sign.
	if s < 0 && ms > 0 {
		s, ms = s+1, ms-1000
	}
	return &durationpb.Duration{Seconds: s, Nanos: int32(ms) * nanosPerMilli}
}

// ToDuration converts a google.protobuf.Duration, truncating to
// milliseconds.
func ToDuration(pb *durationpb.Duration) (datetime.Duration, error) {
	if err := pb.CheckValid(); err != nil {
		return datetime.Duration{}, err
	}
	return datetime.DurationOfMs(pb.GetSeconds(), int64(pb.GetNanos()/nanosPerMilli)), nil
}
