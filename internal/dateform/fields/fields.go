// Package fields holds the calendar and clock extractors that dialect code
// tables are built from. Each extractor is a dateform.Generator.
package fields

import (
	"time"

	"github.com/yiblet/dateform/internal/dateform"
)

// Names are the English day, month and meridiem names.
var Names = struct {
	Days       [7]string
	AbbrDays   [7]string
	Months     [12]string
	AbbrMonths [12]string
	AM, PM     string
	Am, Pm     string
}{
	Days:     [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	AbbrDays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	AbbrMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	AM:         "AM",
	PM:         "PM",
	Am:         "am",
	Pm:         "pm",
}

func num(n int) dateform.Value {
	return dateform.Number(int64(n))
}

// floorDiv rounds toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func Year(d dateform.Date) dateform.Value {
	return num(d.Year())
}

func YearOfCentury(d dateform.Date) dateform.Value {
	return num(d.Year() % 100)
}

func Century(d dateform.Date) dateform.Value {
	return dateform.Number(floorDiv(int64(d.Year()), 100))
}

func MonthNum(d dateform.Date) dateform.Value {
	return num(int(d.Month()))
}

func MonthName(d dateform.Date) dateform.Value {
	return dateform.Text(Names.Months[d.Month()-1])
}

func MonthNameAbbr(d dateform.Date) dateform.Value {
	return dateform.Text(Names.AbbrMonths[d.Month()-1])
}

func QuarterOfYear(d dateform.Date) dateform.Value {
	return num((int(d.Month())-1)/3 + 1)
}

func DayOfMonth(d dateform.Date) dateform.Value {
	return num(d.Day())
}

// DayOfYear is 1 on January 1st.
func DayOfYear(d dateform.Date) dateform.Value {
	return num(yearDay(d))
}

// DayOfWeek counts from Sunday = 0.
func DayOfWeek(d dateform.Date) dateform.Value {
	return num(int(d.Weekday()))
}

// DayOfWeekMon counts from Monday = 1 to Sunday = 7.
func DayOfWeekMon(d dateform.Date) dateform.Value {
	if d.Weekday() == time.Sunday {
		return num(7)
	}
	return num(int(d.Weekday()))
}

func DayName(d dateform.Date) dateform.Value {
	return dateform.Text(Names.Days[d.Weekday()])
}

func DayNameAbbr(d dateform.Date) dateform.Value {
	return dateform.Text(Names.AbbrDays[d.Weekday()])
}

// WeekOfYear numbers weeks starting on Sunday; days before the first Sunday
// are in week 0.
func WeekOfYear(d dateform.Date) dateform.Value {
	return num(weekNum(d, false))
}

// WeekOfYearMon numbers weeks starting on Monday.
func WeekOfYearMon(d dateform.Date) dateform.Value {
	return num(weekNum(d, true))
}

func Hour24(d dateform.Date) dateform.Value {
	return num(d.Hour())
}

// Hour12 maps 0 and 12 to 12.
func Hour12(d dateform.Date) dateform.Value {
	return num((d.Hour()+11)%12 + 1)
}

func MeridiemUpper(d dateform.Date) dateform.Value {
	if d.Hour() >= 12 {
		return dateform.Text(Names.PM)
	}
	return dateform.Text(Names.AM)
}

func MeridiemLower(d dateform.Date) dateform.Value {
	if d.Hour() >= 12 {
		return dateform.Text(Names.Pm)
	}
	return dateform.Text(Names.Am)
}

func Minute(d dateform.Date) dateform.Value {
	return num(d.Minute())
}

func Second(d dateform.Date) dateform.Value {
	return num(d.Second())
}

func Millisecond(d dateform.Date) dateform.Value {
	return num(d.Nanosecond() / int(time.Millisecond))
}

// Decisecond is the tenths digit of the second.
func Decisecond(d dateform.Date) dateform.Value {
	return num(d.Nanosecond() / int(100*time.Millisecond))
}

// Centisecond is hundredths of the second.
func Centisecond(d dateform.Date) dateform.Value {
	return num(d.Nanosecond() / int(10*time.Millisecond))
}

func SecondsSinceEpoch(d dateform.Date) dateform.Value {
	return dateform.Number(floorDiv(d.UnixMilli(), 1000))
}

// TimeZoneNum is the UTC offset as +hhmm or -hhmm.
func TimeZoneNum(d dateform.Date) dateform.Value {
	return dateform.Text(ZoneOffset(d))
}

// TimeZoneAbbr is whatever zone name the date reports.
func TimeZoneAbbr(d dateform.Date) dateform.Value {
	name, _ := d.Zone()
	return dateform.Text(name)
}

// ZoneOffset formats the date's UTC offset as +hhmm or -hhmm. Seconds beyond
// whole minutes are dropped.
func ZoneOffset(d dateform.Date) string {
	_, offset := d.Zone()
	sign := byte('+')
	minutes := offset / 60
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	h, m := minutes/60, minutes%60
	return string([]byte{sign, byte('0' + h/10%10), byte('0' + h%10), byte('0' + m/10), byte('0' + m%10)})
}

func yearDay(d dateform.Date) int {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).YearDay()
}

func weekNum(d dateform.Date, monday bool) int {
	weekday := int(d.Weekday())
	if monday {
		weekday = (weekday + 6) % 7
	}
	return (yearDay(d) - 1 + 7 - weekday) / 7
}
