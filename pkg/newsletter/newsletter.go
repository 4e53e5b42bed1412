// Package newsletter renders the quote section of the daily newsletter and
// computes issue numbers.
package newsletter

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/ichinichi/meigen/pkg/quote"
)

// Enricher rewrites a featured quote into a richer section, for example
// with a language model. It is optional.
type Enricher interface {
	Enrich(q quote.Featured) (string, error)
}

const quoteSectionTmpl = `5. 日大一・今日の名言
-----
今年度の学校行事・広報イベントの中から、日大一に関係する人たちによる名言をご紹介します。
名言：{{.Quote}}
誰が？：{{.Teacher}}
いつ？：{{.Date}}の{{.Scene}}
どんな文脈で？：{{.EducationalValue}}
-----`

// Placeholder is the section shown when no quote is available.
const Placeholder = `5. 日大一・今日の名言
-----
今年度の学校行事・広報イベントの中から、日大一に関係する人たちによる名言をご紹介します。
名言：本日の名言は準備中です
誰が？：
いつ？：
どんな文脈で？：
-----`

var quoteSection = template.Must(template.New("quote").Parse(quoteSectionTmpl))

// QuoteSection renders the "今日の名言" block. A nil quote gives the
// placeholder. When enricher is set its result is used, unless it fails or
// returns an empty string.
func QuoteSection(q *quote.Featured, enricher Enricher) string {
	if q == nil {
		return Placeholder
	}
	if enricher != nil {
		if res, err := enricher.Enrich(*q); err == nil && strings.TrimSpace(res) != "" {
			return res
		}
	}

	var buf bytes.Buffer
	if err := quoteSection.Execute(&buf, q); err != nil {
		return Placeholder
	}
	return buf.String()
}

// Content renders the weekly preview of a corpus record.
func Content(q quote.Quote, date time.Time) string {
	var b strings.Builder
	b.WriteString("今週の教育名言\n\n")
	b.WriteString(quote.NewsletterFormat(q))
	b.WriteString("\n\n---\n")
	b.WriteString("配信日: " + date.Format("2006年01月02日") + "\n")
	b.WriteString("名言ID: " + strconv.Itoa(q.ID) + "\n")
	b.WriteString("カテゴリ: " + q.Category + "\n")
	return b.String()
}
