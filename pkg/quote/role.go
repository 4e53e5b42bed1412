package quote

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Attribute keys used to describe a speaker.
const (
	AttrGrade      = "学年担当"
	AttrPosition   = "役職"
	AttrDepartment = "所属部署"
	AttrSubject    = "担当科目"
)

// SpeakerAttributes reads `key: value` lines of a speaker attribute block.
// Lines without a colon are ignored. Both ASCII and full-width colons are
// accepted.
func SpeakerAttributes(block string) map[string]string {
	res := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-・ ")
		idx := strings.IndexAny(line, ":：")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		_, size := utf8.DecodeRuneInString(line[idx:])
		val := strings.TrimSpace(line[idx+size:])
		if key == "" {
			continue
		}
		res[key] = val
	}
	return res
}

// SpeakerRole builds a description of the speaker from the name and the
// attributes. Students are detected by "生徒" in the name or in any
// attribute value. Everybody else is a teacher.
func SpeakerRole(speaker string, attrs map[string]string) string {
	if isStudent(speaker, attrs) {
		var parts []string
		parts = appendAttr(parts, attrs, AttrGrade, "")
		parts = appendAttr(parts, attrs, AttrPosition, "")
		if club := clubMembership(attrs); club != "" {
			parts = append(parts, club)
		}
		if len(parts) == 0 {
			return "生徒"
		}
		return strings.Join(parts, "、")
	}

	var parts []string
	parts = appendAttr(parts, attrs, AttrPosition, "")
	parts = appendAttr(parts, attrs, AttrDepartment, "")
	parts = appendAttr(parts, attrs, AttrSubject, "担当")
	parts = appendAttr(parts, attrs, AttrGrade, "")
	if len(parts) == 0 {
		return "先生"
	}
	return strings.Join(parts, "、") + "の先生"
}

func isStudent(speaker string, attrs map[string]string) bool {
	if strings.Contains(speaker, "生徒") {
		return true
	}
	for _, v := range attrs {
		if strings.Contains(v, "生徒") {
			return true
		}
	}
	return false
}

func clubMembership(attrs map[string]string) string {
	vals := make([]string, 0, len(attrs))
	for _, v := range attrs {
		vals = append(vals, v)
	}
	has := func(club string) bool {
		return slices.ContainsFunc(vals, func(v string) bool {
			return strings.Contains(v, club)
		})
	}
	switch {
	case has("バレーボール部"):
		return "バレーボール部所属"
	case has("水泳部"):
		return "水泳部所属"
	default:
		return ""
	}
}

func appendAttr(
	parts []string,
	attrs map[string]string,
	key, suffix string,
) []string {
	if v, ok := attrs[key]; ok {
		return append(parts, v+suffix)
	}
	return parts
}
