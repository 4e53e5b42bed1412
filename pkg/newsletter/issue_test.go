package newsletter_test

import (
	"testing"
	"time"

	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, newsletter.JST)
}

func TestIssueNumber(t *testing.T) {
	tests := []struct {
		msg  string
		date time.Time
		res  int
	}{
		{"before base date", day(2025, 4, 1), 1},
		{"base date", day(2025, 4, 3), 1},
		{"next day", day(2025, 4, 4), 2},
		{"saturday", day(2025, 4, 5), 3},
		{"sunday takes saturday", day(2025, 4, 6), 3},
		{"monday", day(2025, 4, 7), 4},
		{"one week later", day(2025, 4, 10), 7},
		{"second sunday", day(2025, 4, 13), 9},
		{"utc date is kept", time.Date(2025, 4, 4, 23, 0, 0, 0, time.UTC), 2},
	}

	for _, v := range tests {
		res := newsletter.IssueNumber(v.date)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestIssueNumberSundayExcluded(t *testing.T) {
	start := day(2025, 4, 3)
	prev := newsletter.IssueNumber(start)
	for i := 1; i < 400; i++ {
		d := start.AddDate(0, 0, i)
		res := newsletter.IssueNumber(d)
		if d.Weekday() == time.Sunday {
			assert.Equal(t, prev, res, d.String())
		} else {
			assert.Equal(t, prev+1, res, d.String())
		}
		prev = res
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		date    time.Time
		weekday string
		theme   string
	}{
		{day(2025, 4, 7), "月", "日大一の地理情報"},
		{day(2025, 4, 8), "火", "日大一の6年間"},
		{day(2025, 4, 9), "水", "日大一の進路"},
		{day(2025, 4, 10), "木", "日大一の学校行事"},
		{day(2025, 4, 11), "金", "日大一の入試"},
		{day(2025, 4, 12), "土", "日大一ストーリー"},
		{day(2025, 4, 13), "日", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.weekday, newsletter.Weekday(v.date))
		assert.Equal(t, v.theme, newsletter.WeekdayTheme(v.date))
	}
	assert.Equal(t, "2025年5月25日（日）", newsletter.FormatDate(day(2025, 5, 25)))
}
