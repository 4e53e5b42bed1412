package newsletter

import (
	"strconv"
	"time"
)

// JST is the time zone of the school.
var JST = time.FixedZone("JST", 9*60*60)

// BaseDate is the publication date of issue No.1.
var BaseDate = time.Date(2025, time.April, 3, 0, 0, 0, 0, JST)

var (
	weekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

	themes = [...]string{
		"",
		"日大一の地理情報",
		"日大一の6年間",
		"日大一の進路",
		"日大一の学校行事",
		"日大一の入試",
		"日大一ストーリー",
	}
)

// Today returns the current date in JST.
func Today() time.Time {
	now := time.Now().In(JST)
	return civil(now)
}

// IssueNumber returns the newsletter issue number for date. Issues are
// published every day except Sunday, starting with No.1 on BaseDate. A
// Sunday gets the number of the previous Saturday, dates before BaseDate
// get 1.
func IssueNumber(date time.Time) int {
	date = civil(date)
	if date.Before(BaseDate) {
		return 1
	}
	if date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, -1)
	}

	days := daysBetween(BaseDate, date)
	res := 1 + (days/7)*6
	cur := BaseDate.AddDate(0, 0, (days/7)*7)
	for cur.Before(date) {
		cur = cur.AddDate(0, 0, 1)
		if cur.Weekday() != time.Sunday {
			res++
		}
	}
	return res
}

// Weekday returns the Japanese weekday name, for example "月".
func Weekday(date time.Time) string {
	return weekdays[date.Weekday()]
}

// WeekdayTheme returns the theme of the day. Sunday has no theme.
func WeekdayTheme(date time.Time) string {
	return themes[date.Weekday()]
}

// FormatDate renders the date as "2025年5月25日（日）".
func FormatDate(date time.Time) string {
	return strconv.Itoa(date.Year()) + "年" +
		strconv.Itoa(int(date.Month())) + "月" +
		strconv.Itoa(date.Day()) + "日（" + Weekday(date) + "）"
}

// civil drops the clock part of t and moves it to JST keeping the
// calendar date.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, JST)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
