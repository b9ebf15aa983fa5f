// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonih.org/datetime/internal/cache"
)

// These are predefined layouts for use in the Format methods and the Parse
// functions. The reference time used in these layouts is the specific time:
//
//	January 2, 2006 at 15:04:05.000 UTC-07:00
//
// That value is recorded as the constant named [Layout], listed below. The
// time is chosen for compatibility with package [time].
//
// The recognized components are
//
//	Year: "2006" "_2006" "06"
//	Month: "Jan" "January" "01" "1"
//	Day of the week: "Mon" "Monday"
//	Day of the month: "2" "_2", "02"
//	Day of the year: "__2" "002"
//	Hour: "15"
//	Minute: "04"
//	Second: "05"
//	Millisecond: ".000"
//	Offset: "Z07:00"
//
// Components the formatted value does not have, like the hour of a Date, are
// treated as literals.
//
// Years outside 0000…9999 are written with a sign, as in the expanded
// representation of ISO 8601: "+10000", "-0001".
const (
	Layout            = "01/02 15:04:05 '06 Z07:00" // The reference time, in numerical order
	RFC822            = "02 Jan 06"
	RFC1123           = "02 Jan 2006"
	RFC3339           = "2006-01-02"
	ISODate           = "2006-01-02"
	ISOOrdinal        = "2006-002"
	ISOTime           = "15:04:05.000"
	ISODateTime       = "2006-01-02T15:04:05.000"
	ISOOffsetDateTime = "2006-01-02T15:04:05.000Z07:00"
)

var shortDayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var shortMonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// inst is a single component of a layout string, either a literal string, or a
// formatting operator.
type inst struct {
	op  fmtOp
	lit string
}

// String implements fmt.Stringer, for debugging
func (i inst) String() string {
	if i.op == opLiteral {
		return i.lit
	}
	return i.op.String()
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Sorted by parsing preference, do not re-order!
	opLongMonth
	opMonth
	opLongWeekDay
	opWeekDay
	opZeroYearDay
	opZeroMonth
	opZeroDay
	opYear
	opHour
	opZeroMinute
	opZeroSecond
	opMillis
	opOffset
	opNumMonth
	opLongYear
	opDay
	opUnderLongYear // package time treats this as "_"+opLongYear, but it is simpler to just handle it with an extra opcode
	opUnderDay
	opUnderYearDay

	opInvalid
)

// String implements fmt.Stringer. Except for opLiteral, it returns the layout
// component of the operator.
func (op fmtOp) String() string {
	switch op {
	case opLiteral:
		return "<literal>"
	case opLongMonth:
		return "January"
	case opMonth:
		return "Jan"
	case opLongWeekDay:
		return "Monday"
	case opWeekDay:
		return "Mon"
	case opZeroYearDay:
		return "002"
	case opZeroMonth:
		return "01"
	case opZeroDay:
		return "02"
	case opYear:
		return "06"
	case opHour:
		return "15"
	case opZeroMinute:
		return "04"
	case opZeroSecond:
		return "05"
	case opMillis:
		return ".000"
	case opOffset:
		return "Z07:00"
	case opNumMonth:
		return "1"
	case opLongYear:
		return "2006"
	case opDay:
		return "2"
	case opUnderLongYear:
		return "_2006"
	case opUnderDay:
		return "_2"
	case opUnderYearDay:
		return "__2"
	}
	panic("invalid fmtOp")
}

// endsWord returns whether op must be a full word, that is must not be
// followed by a lower-case letter.
func (op fmtOp) endsWord() bool {
	return op == opMonth || op == opWeekDay
}

// kind is a set of value components a layout operator can refer to.
type kind uint8

const (
	kindDate kind = 1 << iota
	kindTime
	kindOffset
)

func (op fmtOp) kind() kind {
	switch op {
	case opLiteral, opInvalid:
		return 0
	case opHour, opZeroMinute, opZeroSecond, opMillis:
		return kindTime
	case opOffset:
		return kindOffset
	}
	return kindDate
}

// restrict turns an operator referring to a component outside of k into a
// literal.
func (i inst) restrict(k kind) inst {
	if i.op != opLiteral && i.op.kind()&k == 0 {
		return inst{lit: i.op.String()}
	}
	return i
}

// A program is a compiled layout.
type program []inst

// Size implements cache.Sizer.
func (p program) Size() int64 {
	return int64(len(p)) + 1
}

// layouts memoizes compiled layout strings.
var layouts cache.Cache[string, program]

// parseLayout parses layout into a set of instructions to parse or format
// according to it.
func parseLayout(layout string) program {
	var prog program
	for len(layout) > 0 {
		prefix, op, suffix := nextOp(layout)
		if prefix != "" {
			prog = append(prog, inst{lit: prefix})
		}
		if op != opLiteral {
			prog = append(prog, inst{op: op})
		}
		layout = suffix
	}
	return prog
}

// nextOp decomposes layout into the next operator, a literal prefix and the
// rest of the layout.
func nextOp(layout string) (prefix string, op fmtOp, suffix string) {
	for i := 0; i < len(layout); i++ {
		for op := opLongMonth; op < opInvalid; op++ {
			suffix, ok := strings.CutPrefix(layout[i:], op.String())
			if !ok {
				continue
			}
			if op.endsWord() && startsWithLowerCase(suffix) {
				continue
			}
			return layout[:i], op, suffix
		}
	}
	return layout, opLiteral, ""
}

// startsWithLowerCase reports whether the string has a lower-case letter at
// the beginning. Its purpose is to prevent matching strings like "Month" when
// looking for "Mon".
func startsWithLowerCase(s string) bool {
	return len(s) > 0 && 'a' <= s[0] && s[0] <= 'z'
}

// fields are the components available to a layout.
type fields struct {
	date   Date
	time   Time
	offset Offset
}

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See the documentation for
// the constant called Layout to see how to represent the layout format.
func (d Date) Format(layout string) string {
	return format(layout, kindDate, fields{date: d})
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, layout string) []byte {
	return appendFields(b, layout, kindDate, fields{date: d})
}

// Format returns a textual representation of t according to layout.
func (t Time) Format(layout string) string {
	return format(layout, kindTime, fields{time: t})
}

// AppendFormat is like Format but appends to b.
func (t Time) AppendFormat(b []byte, layout string) []byte {
	return appendFields(b, layout, kindTime, fields{time: t})
}

// Format returns a textual representation of dt according to layout.
func (dt DateTime) Format(layout string) string {
	return format(layout, kindDate|kindTime, fields{date: dt.date, time: dt.time})
}

// AppendFormat is like Format but appends to b.
func (dt DateTime) AppendFormat(b []byte, layout string) []byte {
	return appendFields(b, layout, kindDate|kindTime, fields{date: dt.date, time: dt.time})
}

// Format returns a textual representation of the local time of odt according
// to layout.
func (odt OffsetDateTime) Format(layout string) string {
	return format(layout, kindDate|kindTime|kindOffset, odt.fields())
}

// AppendFormat is like Format but appends to b.
func (odt OffsetDateTime) AppendFormat(b []byte, layout string) []byte {
	return appendFields(b, layout, kindDate|kindTime|kindOffset, odt.fields())
}

func (odt OffsetDateTime) fields() fields {
	l := odt.Local()
	return fields{date: l.date, time: l.time, offset: odt.offset}
}

func format(layout string, k kind, f fields) string {
	const bufSize = 64
	var b []byte
	max := len(layout) + 10
	if max < bufSize {
		var buf [bufSize]byte
		b = buf[:0]
	} else {
		b = make([]byte, 0, max)
	}
	return string(appendFields(b, layout, k, f))
}

func appendFields(b []byte, layout string, k kind, f fields) []byte {
	year, month, day := f.date.Date()
	yday := f.date.YearDay()

	for _, i := range layouts.Get(layout, parseLayout) {
		i = i.restrict(k)
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opYear:
			y := int64(year) % 100
			if y < 0 {
				y = -y
			}
			b = appendInt(b, y, 2)
		case opUnderLongYear:
			b = append(b, '_')
			fallthrough
		case opLongYear:
			b = appendYear(b, year)
		case opMonth:
			b = append(b, month.String()[:3]...)
		case opLongMonth:
			b = append(b, month.String()...)
		case opNumMonth:
			b = strconv.AppendInt(b, int64(month), 10)
		case opZeroMonth:
			b = appendInt(b, int64(month), 2)
		case opWeekDay:
			b = append(b, f.date.Weekday().String()[:3]...)
		case opLongWeekDay:
			b = append(b, f.date.Weekday().String()...)
		case opDay:
			b = strconv.AppendInt(b, int64(day), 10)
		case opUnderDay:
			if day < 10 {
				b = append(b, ' ')
			}
			b = strconv.AppendInt(b, int64(day), 10)
		case opZeroDay:
			b = appendInt(b, int64(day), 2)
		case opUnderYearDay:
			if yday < 100 {
				b = append(b, ' ')
				if yday < 10 {
					b = append(b, ' ')
				}
			}
			b = strconv.AppendInt(b, int64(yday), 10)
		case opZeroYearDay:
			b = appendInt(b, int64(yday), 3)
		case opHour:
			b = appendInt(b, int64(f.time.hour), 2)
		case opZeroMinute:
			b = appendInt(b, int64(f.time.minute), 2)
		case opZeroSecond:
			b = appendInt(b, int64(f.time.second), 2)
		case opMillis:
			b = append(b, '.')
			b = appendInt(b, int64(f.time.millisecond), 3)
		case opOffset:
			b = appendOffset(b, f.offset)
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
	}
	return b
}

// appendInt appends the decimal representation of v, which must not be
// negative, zero padded to width digits.
func appendInt(b []byte, v int64, width int) []byte {
	return appendUint(b, uint64(v), width)
}

func appendUint(b []byte, v uint64, width int) []byte {
	for n := uint64(1); width > 1; width-- {
		n *= 10
		if v < n {
			b = append(b, '0')
		}
	}
	return strconv.AppendUint(b, v, 10)
}

// appendYear appends y with at least four digits. Years outside 0000…9999 get
// a sign.
func appendYear(b []byte, y Year) []byte {
	switch {
	case y < 0:
		b = append(b, '-')
		// Also correct for math.MinInt64.
		return appendUint(b, uint64(-y), 4)
	case y > 9999:
		b = append(b, '+')
	}
	return appendUint(b, uint64(y), 4)
}

// appendOffset appends "Z" for UTC and ±hh:mm otherwise. Offsets with a
// seconds component get an additional ":ss".
func appendOffset(b []byte, o Offset) []byte {
	if o.IsUTC() {
		return append(b, 'Z')
	}
	b = appendOffsetSign(b, o)
	b = appendInt(b, int64(abs(o.Hours())), 2)
	b = append(b, ':')
	b = appendInt(b, int64(abs(o.Minutes())), 2)
	if s := o.Seconds(); s != 0 {
		b = append(b, ':')
		b = appendInt(b, int64(abs(s)), 2)
	}
	return b
}

// ParseDate parses a formatted string and returns the date value it
// represents. See the documentation for the constant called Layout to see how
// to represent the format. The second argument must be parseable using the
// format string (layout) provided as the first argument.
//
// Elements omitted from the layout are assumed to be zero or, when zero is
// impossible, one. Years must be four digits, or carry a sign. The day of the
// week is checked for syntax but is otherwise ignored.
//
// For layouts specifying the two-digit year 06, a value NN >= 69 will be
// treated as 19NN and a value NN < 69 will be treated as 20NN.
//
// If a field is out of range, the returned *ParseError wraps an
// *OutOfRangeError.
func ParseDate(layout, value string) (Date, error) {
	f, err := parse(layout, value, kindDate)
	return f.date, err
}

// ParseTime is like ParseDate, for a time of day. Omitted fields are zero.
// "24:00:00.000" is accepted as the end of the day.
func ParseTime(layout, value string) (Time, error) {
	f, err := parse(layout, value, kindTime)
	return f.time, err
}

// ParseDateTime is like ParseDate, for a date and time of day.
func ParseDateTime(layout, value string) (DateTime, error) {
	f, err := parse(layout, value, kindDate|kindTime)
	return DateTime{date: f.date, time: f.time}, err
}

// ParseOffsetDateTime is like ParseDateTime, but also parses an offset. The
// parsed fields are the local time at that offset. If the layout has no
// offset, UTC is assumed.
func ParseOffsetDateTime(layout, value string) (OffsetDateTime, error) {
	f, err := parse(layout, value, kindDate|kindTime|kindOffset)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return f.offset.FromLocal(DateTime{date: f.date, time: f.time}), nil
}

func parse(layout, value string, k kind) (fields, error) {
	p := newParser(value)
	var (
		// kept around for error reporting
		alayout, avalue = layout, value
		year            int64
		month           int = -1
		day             int = -1
		yday            int = -1
		hour            int
		minute          int
		second          int
		millisecond     int
		offset          Offset
	)

	// Execute the parsing instructions
	for _, i := range layouts.Get(layout, parseLayout) {
		i = i.restrict(k)
		p.setInst(i)
		switch i.op {
		case opLiteral:
			p.accept(i.lit)
		case opYear:
			year = int64(p.num(true))
			if year >= 69 { // Unix time starts Dec 31 1969 in some time zones
				year += 1900
			} else {
				year += 2000
			}
		case opUnderLongYear:
			p.accept("_")
			fallthrough
		case opLongYear:
			year = p.year()
		case opMonth:
			month = p.lookup(shortMonthNames[:]) + 1
		case opLongMonth:
			month = p.lookup(longMonthNames[:]) + 1
		case opNumMonth, opZeroMonth:
			month = p.num(i.op == opZeroMonth)
		case opWeekDay:
			// ignore weekday, except for parsing
			p.lookup(shortDayNames[:])
		case opLongWeekDay:
			// ignore weekday, except for parsing
			p.lookup(longDayNames[:])
		case opUnderDay:
			p.skipByte(' ')
			fallthrough
		case opDay, opZeroDay:
			day = p.num(i.op == opZeroDay)
		case opUnderYearDay:
			p.skipByte(' ')
			p.skipByte(' ')
			fallthrough
		case opZeroYearDay:
			yday = p.num3(i.op == opZeroYearDay)
		case opHour:
			hour = p.num(false)
		case opZeroMinute:
			minute = p.num(true)
		case opZeroSecond:
			second = p.num(true)
		case opMillis:
			p.accept(".")
			millisecond = p.getnumN(3, true)
		case opOffset:
			offset = p.offset(false)
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
		if p.hasErr {
			return fields{}, p.err(alayout, avalue, "")
		}
	}
	if len(p.value) > 0 {
		return fields{}, p.err(alayout, avalue, "extra text: "+strconv.Quote(p.value))
	}
	p.finish()

	var (
		f   fields
		err error
	)
	if k&kindDate != 0 {
		if yday >= 0 {
			f.date, err = YD(Year(year), yday)
			if err != nil {
				return fields{}, p.wrap(alayout, avalue, err)
			}
			// If month, day already seen, yday's month and day must match.
			if month >= 0 && month != int(f.date.Month()) {
				return fields{}, p.err(alayout, avalue, "day-of-year does not match month")
			}
			if day >= 0 && day != f.date.Day() {
				return fields{}, p.err(alayout, avalue, "day-of-year does not match day")
			}
		} else {
			if month < 0 {
				month = int(January)
			}
			if day < 0 {
				day = 1
			}
			f.date, err = YMD(Year(year), Month(month), day)
			if err != nil {
				return fields{}, p.wrap(alayout, avalue, err)
			}
		}
	}
	if k&kindTime != 0 {
		f.time, err = HMSMs(hour, minute, second, millisecond)
		if err != nil {
			return fields{}, p.wrap(alayout, avalue, err)
		}
	}
	f.offset = offset
	return f, nil
}

// match reports whether s1 and s2 match ignoring case.
// It is assumed s1 and s2 are the same length.
func match(s1, s2 string) bool {
	for i := 0; i < len(s1); i++ {
		c1 := s1[i]
		c2 := s2[i]
		if c1 != c2 {
			// Switch to lower-case; 'a'-'A' is known to be a single bit.
			c1 |= 'a' - 'A'
			c2 |= 'a' - 'A'
			if c1 != c2 || c1 < 'a' || c1 > 'z' {
				return false
			}
		}
	}
	return true
}

func isDigit(s string, i int) bool {
	if len(s) <= i {
		return false
	}
	return '0' <= s[i] && s[i] <= '9'
}

type parser struct {
	inst   inst
	hasErr bool
	value  string
	valEl  string
}

func newParser(value string) *parser {
	return &parser{
		value: value,
	}
}

// setInst sets the current instruction and input offset for error reporting.
func (p *parser) setInst(i inst) {
	p.inst = i
	p.valEl = p.value
}

// finish signals that parsing is finished and the parser is only being kept
// around for error reporting.
func (p *parser) finish() {
	p.inst = inst{op: opInvalid}
	p.valEl = ""
}

// parseFailed signals that the parse has failed at the current instruction.
func (p *parser) parseFailed() {
	p.hasErr = true
}

func (p *parser) err(layout, value, msg string) error {
	// We call strings.Clone in this function to prevent parse from allocating
	// in the happy path. As parts of the input appear in the error message,
	// the compiler has to mark the value argument to parse as potentially
	// escaping. Cloning them here means the input itself never escapes.
	v := strings.Clone(value)
	if msg == "" {
		ve := strings.Clone(p.valEl)
		le := strings.Clone(p.inst.String())
		return &ParseError{
			Layout:     layout,
			Value:      v,
			LayoutElem: le,
			ValueElem:  ve,
		}
	}
	return &ParseError{
		Layout:  layout,
		Value:   v,
		Message: msg,
	}
}

// wrap reports a syntactically valid value with an invalid field.
func (p *parser) wrap(layout, value string, err error) error {
	return &ParseError{
		Layout:  layout,
		Value:   strings.Clone(value),
		Message: err.Error(),
		Err:     err,
	}
}

// skipByte skips the given byte, if the input starts with it.
func (p *parser) skipByte(b byte) {
	if len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// trimByte skips a run of the given byte.
func (p *parser) trimByte(b byte) {
	for len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// accept a literal string, treating runs of space characters as equivalent.
func (p *parser) accept(lit string) {
	for len(lit) > 0 {
		if lit[0] == ' ' {
			if p.value != "" && p.value[0] != ' ' {
				p.parseFailed()
				return
			}
			p.trimByte(' ')
			lit = strings.TrimLeft(lit, " ")
			continue
		}
		if p.value == "" || p.value[0] != lit[0] {
			p.parseFailed()
			return
		}
		lit, p.value = lit[1:], p.value[1:]
	}
}

// getnumN parses s[0:1], …, or s[0:N] (fixed forces s[0:N])
// as a decimal integer.
func (p *parser) getnumN(N int, fixed bool) int {
	var n, i int
	for i = 0; i < N && isDigit(p.value, i); i++ {
		n = n*10 + int(p.value[i]-'0')
	}
	if i == 0 || (fixed && i != N) {
		p.parseFailed()
		return 0
	}
	p.value = p.value[i:]
	return n
}

// num parses s[:1] or s[:2] (fixed forces s[:2]) as a decimal integer.
func (p *parser) num(fixed bool) int {
	return p.getnumN(2, fixed)
}

// num parser s[:1], s[:2] or s[:3] (fixed forces s[:3]) as a decimal integer.
func (p *parser) num3(fixed bool) int {
	return p.getnumN(3, fixed)
}

// year parses exactly four digits, or a sign followed by at least four
// digits.
func (p *parser) year() int64 {
	if len(p.value) == 0 || (p.value[0] != '+' && p.value[0] != '-') {
		return int64(p.getnumN(4, true))
	}
	n := 1
	for isDigit(p.value, n) {
		n++
	}
	if n < 5 {
		p.parseFailed()
		return 0
	}
	v, err := strconv.ParseInt(p.value[:n], 10, 64)
	if err != nil {
		p.parseFailed()
		return 0
	}
	p.value = p.value[n:]
	return v
}

// offset parses "Z" or a signed offset "±hh:mm", optionally followed by
// ":ss". If short is set, "±hh" is accepted as well.
func (p *parser) offset(short bool) Offset {
	if len(p.value) > 0 && p.value[0] == 'Z' {
		p.value = p.value[1:]
		return UTC()
	}
	if len(p.value) == 0 || (p.value[0] != '+' && p.value[0] != '-') {
		p.parseFailed()
		return Offset{}
	}
	sign := 1
	if p.value[0] == '-' {
		sign = -1
	}
	p.value = p.value[1:]
	h := p.num(true)
	var m, s int
	if !short || (len(p.value) > 0 && p.value[0] == ':') {
		p.accept(":")
		m = p.num(true)
		if len(p.value) > 1 && p.value[0] == ':' && isDigit(p.value, 1) {
			p.value = p.value[1:]
			s = p.num(true)
		}
	}
	if p.hasErr || m >= 60 || s >= 60 {
		p.parseFailed()
		return Offset{}
	}
	o, err := OffsetOfSeconds(sign * (h*3600 + m*60 + s))
	if err != nil {
		p.parseFailed()
	}
	return o
}

// lookup a value from a table and accept a case-insensitive match.
func (p *parser) lookup(table []string) int {
	for i, v := range table {
		if len(p.value) >= len(v) && match(p.value[0:len(v)], v) {
			p.value = p.value[len(v):]
			return i
		}
	}
	p.parseFailed()
	return 0
}

// ParseError describes a problem parsing a date or time string.
type ParseError struct {
	Layout     string
	Value      string
	LayoutElem string
	ValueElem  string
	Message    string
	// Err is the validation error of a field, if any.
	Err error
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("parsing %q as %q: cannot parse %q as %q", e.Value, e.Layout, e.ValueElem, e.LayoutElem)
	}
	return fmt.Sprintf("parsing %q: %s", e.Value, e.Message)
}

// Unwrap returns e.Err.
func (e *ParseError) Unwrap() error {
	return e.Err
}
