package dialects

import (
	"testing"
	"time"

	"github.com/tebeka/strftime"

	"github.com/yiblet/dateform/internal/dateform"
)

// 977768145000 ms since the epoch, shown in a UTC-5 zone.
var christmas = time.Date(2000, time.December, 25, 13, 15, 45, 0, time.FixedZone("EST", -5*60*60))

type formatCase struct {
	tpl  string
	want string
}

func runCases(t *testing.T, d *dateform.Dialect, date time.Time, cases []formatCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.tpl, func(t *testing.T) {
			if got := d.Format(tc.tpl, date); got != tc.want {
				t.Fatalf("format %q: got %q want %q", tc.tpl, got, tc.want)
			}
		})
	}
}

func TestStrfScenarios(t *testing.T) {
	runCases(t, Strf, christmas, []formatCase{
		{"%Y-%m-%d %-I:%M:%S", "2000-12-25 1:15:45"},
		{"%8Y", "00002000"},
		{"%-I", "1"},
		{"%5_M", "   15"},
		{"%04p", "00PM"},
		{"%^b", "DEC"},
		{"%#a", "mon"},
	})
}

func TestStrfCodes(t *testing.T) {
	runCases(t, Strf, christmas, []formatCase{
		{"%%", "%"},
		{"%a %A %b %B %h", "Mon Monday Dec December Dec"},
		{"%c", "Mon Dec 25 01:15:45 PM 2000 EST"},
		{"%C", "20"},
		{"%d %e", "25 25"},
		{"%D", "12/25/00"},
		{"%F", "2000-12-25"},
		{"%H %I %k %l", "13 01 13  1"},
		{"%j", "360"},
		{"%L", "000"},
		{"%n%t", "\n\t"},
		{"%p %P", "PM pm"},
		{"%q", "4"},
		{"%r", "01:15:45 PM"},
		{"%R", "13:15"},
		{"%s", "977768145"},
		{"%T", "13:15:45"},
		{"%u %w", "1 1"},
		{"%U %W", "52 52"},
		{"%x", "12/25/00"},
		{"%X", "01:15:45 PM"},
		{"%y", "00"},
		{"%z %Z", "-0500 EST"},
		{"%:z", "-05:00"},
		{"%::z", "-05:00:00"},
		{"%:::z", "-05"},
		{"%^c", "MON DEC 25 01:15:45 PM 2000 EST"},
		{"%-d/%-m", "25/12"},
		{"%_3d", " 25"},
	})
}

func TestStrfPadsSingleDigits(t *testing.T) {
	date := time.Date(2021, time.March, 4, 5, 6, 7, 89_000_000, time.UTC)
	runCases(t, Strf, date, []formatCase{
		{"%F %T", "2021-03-04 05:06:07"},
		{"%e|%k|%l", " 4| 5| 5"},
		{"%-e|%-k", "4|5"},
		{"%j", "063"},
		{"%L", "089"},
		{"%y", "21"},
		{"%z %:z", "+0000 +00:00"},
	})
}

func TestStrfIgnoresUnknown(t *testing.T) {
	runCases(t, Strf, christmas, []formatCase{
		{"[%Q]", "[]"},
		{"%~Y", "2000"},
		{"100%", "100%"},
		{"plain text", "plain text"},
	})
}

func TestExpressScenarios(t *testing.T) {
	runCases(t, Express, christmas, []formatCase{
		{"%YYYY-%MM-%DD %h:%mm:%ss", "2000-12-25 1:15:45"},
		{"%8YYYY", "00002000"},
		{"%-hh", "1"},
		{"%5_m", "   15"},
		{"%04A", "00PM"},
		{"%^MMM", "DEC"},
		{"%#ddd", "mon"},
	})
}

func TestExpressCodes(t *testing.T) {
	runCases(t, Express, christmas, []formatCase{
		{"%%", "%"},
		{"%a %A", "pm PM"},
		{"%C", "20"},
		{"%d %ddd %dddd", "1 Mon Monday"},
		{"%D %DD", "25 25"},
		{"%h %hh %H %HH", "1 01 13 13"},
		{"%m %mm", "15 15"},
		{"%M %MM %MMM %MMMM", "12 12 Dec December"},
		{"%s %ss", "45 45"},
		{"%S %SS %SSS", "0 00 000"},
		{"%YY %YYYY", "00 2000"},
		{"%Z %ZZ %ZZZ", "EST -0500 -05:00"},
		{"%YYYYMM", ""},
		{"%:ZZ", "-0500"},
		{"%DDT%ss%ZZZ", ""},
	})
}

func TestExpressFractions(t *testing.T) {
	date := time.Date(2021, time.March, 4, 5, 6, 7, 89_000_000, time.FixedZone("IST", 5*3600+1800))
	runCases(t, Express, date, []formatCase{
		{"%S|%SS|%SSS", "0|08|089"},
		{"%D %M %h", "4 3 5"},
		{"%ZZZ", "+05:30"},
	})
}

func TestStrfAgreesWithPythonStrftime(t *testing.T) {
	// Codes whose meaning matches python's strftime exactly.
	const tpl = "%a %A %b %B %d %H %I %m %M %p %S %w %x %y %Y %Z %%"
	dates := []time.Time{
		christmas,
		time.Date(2021, time.March, 4, 5, 6, 7, 0, time.UTC),
		time.Date(1999, time.January, 1, 0, 0, 0, 0, time.FixedZone("JST", 9*3600)),
		time.Date(2024, time.February, 29, 12, 30, 59, 0, time.UTC),
		time.Date(2030, time.July, 14, 23, 59, 1, 0, time.FixedZone("PDT", -7*3600)),
	}
	for _, date := range dates {
		want, err := strftime.Format(tpl, date)
		if err != nil {
			t.Fatalf("reference strftime failed: %v", err)
		}
		if got := Strf.Format(tpl, date); got != want {
			t.Fatalf("%s: got %q want %q", date, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	cases := []struct {
		name string
		want *dateform.Dialect
	}{
		{"strf", Strf},
		{"STRFTIME", Strf},
		{" express ", Express},
	}
	for _, tc := range cases {
		got, ok := Lookup(tc.name)
		if !ok || got != tc.want {
			t.Fatalf("Lookup(%q) = %v, %v", tc.name, got, ok)
		}
	}
	if _, ok := Lookup("moment"); ok {
		t.Fatalf("expected unknown dialect")
	}
	if names := Names(); len(names) != 3 || names[0] != "express" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestDefaultTemplates(t *testing.T) {
	runCases(t, Strf, christmas, []formatCase{{Strf.DefaultTemplate(), "2000-12-25T13:15:45-05:00"}})
	runCases(t, Express, christmas, []formatCase{{Express.DefaultTemplate(), "2000-12-25 13:15:45 -05:00"}})
}
