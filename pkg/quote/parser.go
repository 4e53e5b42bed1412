package quote

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gnames/gnlib"
)

// DefaultDelimiter separates records in the corpus: a line of 50 dashes.
var DefaultDelimiter = strings.Repeat("-", 50)

// DefaultSpeaker is used when a section has no speaker label.
const DefaultSpeaker = "不明"

// Field labels recognised inside a record section.
const (
	labelSpeaker     = "発言者"
	labelAttributes  = "発言者属性"
	labelCategory    = "カテゴリ"
	labelBackground  = "詳細背景"
	labelScene       = "発言場面"
	labelSurrounding = "前後の内容"
	labelValue       = "教育的価値"
	labelDate        = "日付"
)

var (
	// headRe matches the leading `<id>. 「<quote>」`; the quote may span
	// several lines.
	headRe = regexp.MustCompile(`(?s)(\d+)\.\s*「(.+?)」`)

	// labelRe finds field labels. The longer 発言者属性 comes first so it is
	// not taken for 発言者.
	labelRe = regexp.MustCompile(
		`(発言者属性|発言者|カテゴリ|詳細背景|発言場面|前後の内容|教育的価値|日付)[:：]`,
	)
)

// Report describes what happened to the sections of a corpus.
type Report struct {
	// Sections is the number of non-blank sections.
	Sections int

	// Malformed counts sections without the leading id and quote.
	Malformed int

	// DuplicateIDs lists ids that appeared again after their first
	// occurrence. Only the first occurrence is kept.
	DuplicateIDs []int

	// Repeats lists records whose text already appeared under an earlier id.
	Repeats []Repeat
}

// Repeat links a record to an earlier record with the same text.
type Repeat struct {
	ID      int
	FirstID int
}

// Parse splits the corpus text on delimiter and parses every section.
// Blank and malformed sections are skipped. The order of the corpus is
// preserved.
func Parse(text, delimiter string) ([]Quote, Report) {
	var rep Report
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	text = gnlib.FixUtf8(text)

	var res []Quote
	seenIDs := make(map[int]struct{})
	seenText := make(map[string]int)
	for _, section := range strings.Split(text, delimiter) {
		if strings.TrimSpace(section) == "" {
			continue
		}
		rep.Sections++

		q, ok := ParseSection(section)
		if !ok {
			rep.Malformed++
			continue
		}
		if _, ok := seenIDs[q.ID]; ok {
			rep.DuplicateIDs = append(rep.DuplicateIDs, q.ID)
			continue
		}
		seenIDs[q.ID] = struct{}{}

		fp := Fingerprint(q.Quote)
		if first, ok := seenText[fp]; ok {
			rep.Repeats = append(rep.Repeats, Repeat{ID: q.ID, FirstID: first})
		} else {
			seenText[fp] = q.ID
		}
		res = append(res, q)
	}
	return res, rep
}

// ParseSection extracts one record. It returns false if the section does
// not start with the `<id>. 「<quote>」` pattern.
func ParseSection(section string) (Quote, bool) {
	var res Quote
	m := headRe.FindStringSubmatchIndex(section)
	if m == nil {
		return res, false
	}
	id, err := strconv.Atoi(section[m[2]:m[3]])
	if err != nil {
		return res, false
	}
	text := strings.TrimSpace(section[m[4]:m[5]])
	if text == "" {
		return res, false
	}

	fields := labelledFields(section[m[1]:])

	speaker := firstLine(fields[labelSpeaker])
	if speaker == "" {
		speaker = DefaultSpeaker
	}

	category := firstLine(fields[labelCategory])
	if category == "" {
		category = DefaultCategory
	}
	tag := ClassifyCategory(category)

	var attrs map[string]string
	if _, ok := fields[labelCategory]; ok {
		attrs = SpeakerAttributes(fields[labelAttributes])
	}

	res = Quote{
		ID:               id,
		Quote:            text,
		Speaker:          speaker,
		SpeakerRole:      SpeakerRole(speaker, attrs),
		Category:         category,
		Tag:              tag,
		Background:       fields[labelBackground],
		Scene:            fields[labelScene],
		EducationalValue: fields[labelValue],
		Date:             firstLine(fields[labelDate]),
		Priority:         tag.Priority(),
	}
	return res, true
}

// labelledFields maps every label found in s to its trimmed value. A value
// runs from its label to the next recognised label or to the end of s.
// When a label repeats, the first value is kept.
func labelledFields(s string) map[string]string {
	res := make(map[string]string)
	locs := labelRe.FindAllStringSubmatchIndex(s, -1)
	for i, loc := range locs {
		label := s[loc[2]:loc[3]]
		end := len(s)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if _, ok := res[label]; ok {
			continue
		}
		res[label] = strings.TrimSpace(s[loc[1]:end])
	}
	return res
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
