package fields

import (
	"testing"
	"time"

	"github.com/yiblet/dateform/internal/dateform"
)

var christmas = time.Date(2000, time.December, 25, 13, 15, 45, 678_000_000, time.FixedZone("EST", -5*60*60))

func scalar(t *testing.T, v dateform.Value) string {
	t.Helper()
	s, ok := v.Scalar()
	if !ok {
		t.Fatalf("expected scalar value, got %s", v.Kind())
	}
	return s
}

func TestExtractors(t *testing.T) {
	cases := []struct {
		name string
		gen  dateform.Generator
		date time.Time
		want string
	}{
		{name: "year", gen: Year, date: christmas, want: "2000"},
		{name: "year of century", gen: YearOfCentury, date: christmas, want: "0"},
		{name: "century", gen: Century, date: christmas, want: "20"},
		{name: "month", gen: MonthNum, date: christmas, want: "12"},
		{name: "month name", gen: MonthName, date: christmas, want: "December"},
		{name: "month abbr", gen: MonthNameAbbr, date: christmas, want: "Dec"},
		{name: "quarter", gen: QuarterOfYear, date: christmas, want: "4"},
		{name: "quarter first", gen: QuarterOfYear, date: time.Date(2021, time.March, 31, 0, 0, 0, 0, time.UTC), want: "1"},
		{name: "day", gen: DayOfMonth, date: christmas, want: "25"},
		{name: "day of year leap", gen: DayOfYear, date: christmas, want: "360"},
		{name: "day of year jan 1", gen: DayOfYear, date: time.Date(2021, time.January, 1, 23, 0, 0, 0, time.UTC), want: "1"},
		{name: "weekday", gen: DayOfWeek, date: christmas, want: "1"},
		{name: "weekday monday based sunday", gen: DayOfWeekMon, date: time.Date(2000, time.December, 24, 0, 0, 0, 0, time.UTC), want: "7"},
		{name: "weekday monday based monday", gen: DayOfWeekMon, date: christmas, want: "1"},
		{name: "day name", gen: DayName, date: christmas, want: "Monday"},
		{name: "day abbr", gen: DayNameAbbr, date: christmas, want: "Mon"},
		{name: "hour24", gen: Hour24, date: christmas, want: "13"},
		{name: "hour12", gen: Hour12, date: christmas, want: "1"},
		{name: "hour12 midnight", gen: Hour12, date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), want: "12"},
		{name: "hour12 noon", gen: Hour12, date: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), want: "12"},
		{name: "meridiem upper", gen: MeridiemUpper, date: christmas, want: "PM"},
		{name: "meridiem lower morning", gen: MeridiemLower, date: time.Date(2000, 1, 1, 11, 59, 0, 0, time.UTC), want: "am"},
		{name: "minute", gen: Minute, date: christmas, want: "15"},
		{name: "second", gen: Second, date: christmas, want: "45"},
		{name: "millisecond", gen: Millisecond, date: christmas, want: "678"},
		{name: "decisecond", gen: Decisecond, date: christmas, want: "6"},
		{name: "centisecond", gen: Centisecond, date: christmas, want: "67"},
		{name: "epoch seconds", gen: SecondsSinceEpoch, date: christmas, want: "977768145"},
		{name: "epoch seconds before 1970", gen: SecondsSinceEpoch, date: time.Unix(-1, 500_000_000), want: "-1"},
		{name: "zone offset west", gen: TimeZoneNum, date: christmas, want: "-0500"},
		{name: "zone offset east half hour", gen: TimeZoneNum, date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)), want: "+0530"},
		{name: "zone offset utc", gen: TimeZoneNum, date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), want: "+0000"},
		{name: "zone name", gen: TimeZoneAbbr, date: christmas, want: "EST"},
		{name: "week sunday based", gen: WeekOfYear, date: christmas, want: "52"},
		{name: "week monday based", gen: WeekOfYearMon, date: christmas, want: "52"},
		{name: "week before first sunday", gen: WeekOfYear, date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), want: "0"},
		{name: "week first sunday", gen: WeekOfYear, date: time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), want: "1"},
		{name: "week monday based first monday", gen: WeekOfYearMon, date: time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), want: "1"},
		{name: "week monday based sunday before", gen: WeekOfYearMon, date: time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), want: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scalar(t, tc.gen(tc.date)); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestCenturyRoundsDown(t *testing.T) {
	d := time.Date(-50, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := scalar(t, Century(d)); got != "-1" {
		t.Fatalf("got %q want %q", got, "-1")
	}
}

func TestNumbersAreUnpadded(t *testing.T) {
	d := time.Date(2005, time.March, 4, 5, 6, 7, 0, time.UTC)
	for _, gen := range []dateform.Generator{MonthNum, DayOfMonth, Hour24, Minute, Second, YearOfCentury} {
		v := gen(d)
		if v.Kind() != dateform.KindNumber {
			t.Fatalf("expected number, got %s", v.Kind())
		}
		if s := scalar(t, v); len(s) != 1 {
			t.Fatalf("expected single digit, got %q", s)
		}
	}
}
