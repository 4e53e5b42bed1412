package quote

import "strings"

// CategoryTag is the closed set of categories the system reacts to.
// The corpus may use any label; labels outside of the known vocabulary
// are tagged TagOther.
type CategoryTag string

const (
	TagHabit         CategoryTag = "habit"
	TagFoundation    CategoryTag = "foundation"
	TagCommunication CategoryTag = "communication"
	TagOther         CategoryTag = "other"
)

// DefaultCategory is used when a section has no category label.
const DefaultCategory = "その他"

var categoryTags = map[string]CategoryTag{
	"習慣形成":      TagHabit,
	"基礎力育成":     TagFoundation,
	"コミュニケーション": TagCommunication,
}

// HighPriorityCategories lists corpus labels that get PriorityHigh,
// in the order they are preferred by default.
func HighPriorityCategories() []string {
	return []string{"習慣形成", "基礎力育成", "コミュニケーション"}
}

// ClassifyCategory maps a corpus label to its tag. Matching is exact on the
// trimmed label.
func ClassifyCategory(category string) CategoryTag {
	if tag, ok := categoryTags[strings.TrimSpace(category)]; ok {
		return tag
	}
	return TagOther
}

// Priority returns the rotation priority of the tag.
func (t CategoryTag) Priority() Priority {
	switch t {
	case TagHabit, TagFoundation, TagCommunication:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}
