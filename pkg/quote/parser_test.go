package quote_test

import (
	"strings"
	"testing"

	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullSection = `
1. 「提出物は期限の前日に出す習慣を
身に付けよう」
発言者: 山田先生
発言者属性:
役職: 教務主任
担当科目: 数学
学年担当: 中学1年
カテゴリ: 習慣形成
詳細背景: 中1の保護者会で
提出物管理について話した
発言場面: 学校説明会
前後の内容: 小テストの話の後
教育的価値: 学習習慣の定着
日付: 2025年6月14日
`

func TestParseSection(t *testing.T) {
	q, ok := quote.ParseSection(fullSection)
	require.True(t, ok)

	assert.Equal(t, 1, q.ID)
	assert.Equal(t, "提出物は期限の前日に出す習慣を\n身に付けよう", q.Quote)
	assert.Equal(t, "山田先生", q.Speaker)
	assert.Equal(t, "教務主任、数学担当、中学1年の先生", q.SpeakerRole)
	assert.Equal(t, "習慣形成", q.Category)
	assert.Equal(t, quote.TagHabit, q.Tag)
	assert.Equal(t, quote.PriorityHigh, q.Priority)
	assert.Equal(t, "中1の保護者会で\n提出物管理について話した", q.Background)
	assert.Equal(t, "学校説明会", q.Scene)
	assert.Equal(t, "学習習慣の定着", q.EducationalValue)
	assert.Equal(t, "2025年6月14日", q.Date)
	assert.False(t, q.Published)
	assert.Nil(t, q.PublishDate)
	assert.Nil(t, q.NewsletterNumber)
}

func TestParseSectionFullWidthColon(t *testing.T) {
	section := "7. 「挨拶は自分から」\n発言者：佐藤先生\nカテゴリ：コミュニケーション\n日付：2025年5月1日"
	q, ok := quote.ParseSection(section)
	require.True(t, ok)
	assert.Equal(t, 7, q.ID)
	assert.Equal(t, "佐藤先生", q.Speaker)
	assert.Equal(t, "コミュニケーション", q.Category)
	assert.Equal(t, quote.PriorityHigh, q.Priority)
	assert.Equal(t, "2025年5月1日", q.Date)
}

func TestParseSectionMissingLabels(t *testing.T) {
	q, ok := quote.ParseSection("5. 「X」")
	require.True(t, ok)

	assert.Equal(t, 5, q.ID)
	assert.Equal(t, "X", q.Quote)
	assert.Equal(t, "不明", q.Speaker)
	assert.Equal(t, "その他", q.Category)
	assert.Equal(t, quote.PriorityMedium, q.Priority)
	assert.Equal(t, quote.TagOther, q.Tag)
	assert.Equal(t, "先生", q.SpeakerRole)
	assert.Empty(t, q.Background)
	assert.Empty(t, q.Scene)
	assert.Empty(t, q.EducationalValue)
	assert.Empty(t, q.Date)
}

func TestParseSectionMalformed(t *testing.T) {
	tests := []struct {
		msg     string
		section string
	}{
		{"no id", "「名言だけ」\n発言者: 先生"},
		{"no brackets", "3. 名言だけ"},
		{"empty quote", "3. 「 」"},
		{"plain text", "メモ: 後で確認"},
	}

	for _, v := range tests {
		_, ok := quote.ParseSection(v.section)
		assert.False(t, ok, v.msg)
	}
}

func TestParse(t *testing.T) {
	delim := quote.DefaultDelimiter
	text := strings.Join([]string{
		"1. 「一つ目」\nカテゴリ: 習慣形成\n",
		"\n\n",
		"見出しだけのセクション\n",
		"2. 「二つ目」\nカテゴリ: その他\n",
		"2. 「重複ID」\n",
		"3. 「一つ目」\nカテゴリ: その他\n",
	}, delim)

	qs, rep := quote.Parse(text, delim)
	require.Len(t, qs, 3)

	ids := make([]int, len(qs))
	for i := range qs {
		ids[i] = qs[i].ID
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, "二つ目", qs[1].Quote)

	assert.Equal(t, 5, rep.Sections)
	assert.Equal(t, 1, rep.Malformed)
	assert.Equal(t, []int{2}, rep.DuplicateIDs)
	assert.Equal(t, []quote.Repeat{{ID: 3, FirstID: 1}}, rep.Repeats)
}

func TestParseDefaultDelimiter(t *testing.T) {
	text := "1. 「A」\n" + strings.Repeat("-", 50) + "\n2. 「B」\n"
	qs, _ := quote.Parse(text, "")
	require.Len(t, qs, 2)
	assert.Equal(t, "B", qs[1].Quote)
}

func TestParseDeterministic(t *testing.T) {
	text := fullSection + quote.DefaultDelimiter + "2. 「二つ目」\n"
	qs1, _ := quote.Parse(text, "")
	qs2, _ := quote.Parse(text, "")
	assert.Equal(t, qs1, qs2)
}
