package dialects

import (
	"strings"

	"github.com/yiblet/dateform/internal/dateform"
	"github.com/yiblet/dateform/internal/dateform/fields"
)

// Strf is the strftime-style dialect: one-letter codes such as %Y and %b.
var Strf = dateform.MustDialect("strf", dateform.SingleLetter, strfCodes(), strfFlags(),
	dateform.WithDefaultTemplate("%Y-%m-%dT%H:%M:%S%:z"))

func strfCodes() dateform.CodeTable {
	type lit = dateform.Literal
	ref := dateform.Ref
	return dateform.CodeTable{
		"%": {Gen: dateform.Const("%")},
		"a": {Gen: fields.DayNameAbbr, Flag: '_'},
		"A": {Gen: fields.DayName, Flag: '_'},
		"b": {Gen: fields.MonthNameAbbr, Flag: '_'},
		"B": {Gen: fields.MonthName, Flag: '_'},
		"c": {Gen: dateform.Alias(
			ref("a"), lit(" "), ref("b"), lit(" "), ref("d"), lit(" "),
			ref("X"), lit(" "), ref("Y"), lit(" "), ref("Z"))},
		"C": {Gen: fields.Century, Flag: '0', Pad: 2},
		"d": {Gen: fields.DayOfMonth, Flag: '0', Pad: 2},
		"D": {Gen: dateform.Alias(ref("m"), lit("/"), ref("d"), lit("/"), ref("y"))},
		"e": {Gen: fields.DayOfMonth, Flag: '_', Pad: 2},
		"F": {Gen: dateform.Alias(ref("Y"), lit("-"), ref("m"), lit("-"), ref("d"))},
		"h": {Gen: fields.MonthNameAbbr, Flag: '_'},
		"H": {Gen: fields.Hour24, Flag: '0', Pad: 2},
		"I": {Gen: fields.Hour12, Flag: '0', Pad: 2},
		"j": {Gen: fields.DayOfYear, Flag: '0', Pad: 3},
		"k": {Gen: fields.Hour24, Flag: '_', Pad: 2},
		"l": {Gen: fields.Hour12, Flag: '_', Pad: 2},
		"L": {Gen: fields.Millisecond, Flag: '0', Pad: 3},
		"m": {Gen: fields.MonthNum, Flag: '0', Pad: 2},
		"M": {Gen: fields.Minute, Flag: '0', Pad: 2},
		"n": {Gen: dateform.Const("\n")},
		"p": {Gen: fields.MeridiemUpper, Flag: '_'},
		"P": {Gen: fields.MeridiemLower, Flag: '_'},
		"q": {Gen: fields.QuarterOfYear, Flag: '0'},
		"r": {Gen: dateform.Alias(ref("I"), lit(":"), ref("M"), lit(":"), ref("S"), lit(" "), ref("p"))},
		"R": {Gen: dateform.Alias(ref("H"), lit(":"), ref("M"))},
		"s": {Gen: fields.SecondsSinceEpoch, Flag: '0'},
		"S": {Gen: fields.Second, Flag: '0', Pad: 2},
		"t": {Gen: dateform.Const("\t")},
		// Seconds of the minute, not epoch seconds.
		"T": {Gen: dateform.Alias(ref("H"), lit(":"), ref("M"), lit(":"), ref("S"))},
		"u": {Gen: fields.DayOfWeekMon, Flag: '0'},
		"U": {Gen: fields.WeekOfYear, Flag: '0'},
		"w": {Gen: fields.DayOfWeek, Flag: '0'},
		"W": {Gen: fields.WeekOfYearMon, Flag: '0'},
		"x": {Gen: dateform.Alias(ref("D"))},
		"X": {Gen: dateform.Alias(ref("r"))},
		"y": {Gen: fields.YearOfCentury, Flag: '0', Pad: 2},
		"Y": {Gen: fields.Year, Flag: '0', Pad: 4},
		"z": {Gen: fields.TimeZoneNum, Flag: '_'},
		"Z": {Gen: fields.TimeZoneAbbr, Flag: '_'},
	}
}

func strfFlags() dateform.FlagTable {
	flags := dateform.BaseFlags()
	flags[':'] = dateform.Transform(colonize)
	return flags
}

// colonize steps a numeric zone through its colon forms, one step per ':'
// flag: +hhmm becomes +hh:mm, +hh:mm becomes +hh:mm:00, and a trailing
// :00:00 is dropped back to +hh.
func colonize(s string, _ int) string {
	switch {
	case strings.HasSuffix(s, ":00:00"):
		return s[:len(s)-6]
	case len(s) >= 3 && s[len(s)-3] == ':':
		return s + ":00"
	case len(s) >= 2:
		return s[:len(s)-2] + ":" + s[len(s)-2:]
	default:
		return ":" + s
	}
}
