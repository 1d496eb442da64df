package dialects

import (
	"github.com/yiblet/dateform/internal/dateform"
	"github.com/yiblet/dateform/internal/dateform/fields"
)

// Express is the word dialect: repeated-letter codes such as %YYYY and %MMM.
// A code runs until the first character that is not a letter or '%', so
// "%DDT" names the code "DDT" and "%ss%ZZZ" the code "ss%ZZZ".
var Express = dateform.MustDialect("express", dateform.Word, expressCodes(), dateform.BaseFlags(),
	dateform.WithDefaultTemplate("%YYYY-%MM-%DD %HH:%mm:%ss %ZZZ"))

func expressCodes() dateform.CodeTable {
	return dateform.CodeTable{
		"%":    {Gen: dateform.Const("%")},
		"a":    {Gen: fields.MeridiemLower, Flag: '_'},
		"A":    {Gen: fields.MeridiemUpper, Flag: '_'},
		"C":    {Gen: fields.Century, Flag: '0', Pad: 2},
		"d":    {Gen: fields.DayOfWeek, Flag: '0'},
		"ddd":  {Gen: fields.DayNameAbbr, Flag: '_'},
		"dddd": {Gen: fields.DayName, Flag: '_'},
		"D":    {Gen: fields.DayOfMonth, Flag: '0'},
		"DD":   {Gen: fields.DayOfMonth, Flag: '0', Pad: 2},
		"h":    {Gen: fields.Hour12, Flag: '0'},
		"hh":   {Gen: fields.Hour12, Flag: '0', Pad: 2},
		"H":    {Gen: fields.Hour24, Flag: '0'},
		"HH":   {Gen: fields.Hour24, Flag: '0', Pad: 2},
		"m":    {Gen: fields.Minute, Flag: '0'},
		"mm":   {Gen: fields.Minute, Flag: '0', Pad: 2},
		"M":    {Gen: fields.MonthNum, Flag: '0'},
		"MM":   {Gen: fields.MonthNum, Flag: '0', Pad: 2},
		"MMM":  {Gen: fields.MonthNameAbbr, Flag: '_'},
		"MMMM": {Gen: fields.MonthName, Flag: '_'},
		"s":    {Gen: fields.Second, Flag: '0'},
		"ss":   {Gen: fields.Second, Flag: '0', Pad: 2},
		"S":    {Gen: fields.Decisecond, Flag: '0'},
		"SS":   {Gen: fields.Centisecond, Flag: '0', Pad: 2},
		"SSS":  {Gen: fields.Millisecond, Flag: '0', Pad: 3},
		"YY":   {Gen: fields.YearOfCentury, Flag: '0', Pad: 2},
		"YYYY": {Gen: fields.Year, Flag: '0', Pad: 4},
		"Z":    {Gen: fields.TimeZoneAbbr, Flag: '_'},
		"ZZ":   {Gen: fields.TimeZoneNum, Flag: '_'},
		"ZZZ":  {Gen: zoneWithColon, Flag: '_'},
	}
}

func zoneWithColon(d dateform.Date) dateform.Value {
	off := fields.ZoneOffset(d)
	return dateform.Text(off[:3] + ":" + off[3:])
}
