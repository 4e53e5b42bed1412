package quote

import (
	"regexp"
	"strings"

	"github.com/gnames/gnlib"
)

var transcriptRe = regexp.MustCompile(`(?s)「(.+?)」`)

// ParseTranscript reads the legacy transcript list. Its sections have the
// same labels as the corpus but no ids, and nothing about them is
// tracked. Sections without a quote in corner brackets are skipped.
func ParseTranscript(text, delimiter string) []Featured {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	text = gnlib.FixUtf8(text)

	var res []Featured
	for _, section := range strings.Split(text, delimiter) {
		m := transcriptRe.FindStringSubmatchIndex(section)
		if m == nil {
			continue
		}
		fields := labelledFields(section[m[1]:])
		teacher := firstLine(fields[labelSpeaker])
		if teacher == "" {
			teacher = DefaultSpeaker
		}
		category := firstLine(fields[labelCategory])
		if category == "" {
			category = DefaultCategory
		}
		res = append(res, Featured{
			Quote:            strings.TrimSpace(section[m[2]:m[3]]),
			Teacher:          teacher,
			Category:         category,
			Background:       fields[labelBackground],
			Scene:            fields[labelScene],
			Context:          fields[labelSurrounding],
			EducationalValue: fields[labelValue],
			Date:             firstLine(fields[labelDate]),
		})
	}
	return res
}
