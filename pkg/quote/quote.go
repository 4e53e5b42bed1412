// Package quote turns the sayings corpus into structured records.
//
// The package is pure: it has no file system or network access. Callers
// read the corpus text and hand it to Parse. Every record gets its category
// tag and priority computed once, at parse time, so the rest of the system
// switches on CategoryTag and Priority instead of inspecting free text.
package quote

// Priority orders records for rotation.
type Priority string

const (
	// PriorityHigh is assigned to categories from the high priority set.
	PriorityHigh Priority = "高"
	// PriorityMedium is assigned to everything else.
	PriorityMedium Priority = "中"
)

// Quote is one saying extracted from the corpus.
type Quote struct {
	// ID is unique and strictly increasing in corpus order.
	ID int `json:"id" yaml:"id"`

	// Quote is the text inside the corner brackets.
	Quote string `json:"quote" yaml:"quote"`

	// Speaker is the raw speaker name, "不明" when missing.
	Speaker string `json:"speaker" yaml:"speaker"`

	// SpeakerRole is a human readable description of the speaker,
	// for example "学年担当、バレーボール部所属の先生" or "生徒".
	SpeakerRole string `json:"speaker_role" yaml:"speaker_role"`

	// Category is the label as written in the corpus, "その他" when missing.
	Category string `json:"category" yaml:"category"`

	// Tag is the closed classification of Category.
	Tag CategoryTag `json:"category_tag" yaml:"category_tag"`

	Background       string `json:"background" yaml:"background"`
	Scene            string `json:"scene" yaml:"scene"`
	EducationalValue string `json:"educational_value" yaml:"educational_value"`

	// Date is a free-text label, not guaranteed to be an ISO date.
	Date string `json:"date" yaml:"date"`

	Priority Priority `json:"priority" yaml:"priority"`

	// Published is never reset to false once set.
	Published        bool    `json:"published" yaml:"published"`
	PublishDate      *string `json:"publish_date" yaml:"publish_date"`
	NewsletterNumber *int    `json:"newsletter_number" yaml:"newsletter_number"`
}

// IsHighPriority is true for records from the high priority categories.
func (q Quote) IsHighPriority() bool {
	return q.Priority == PriorityHigh
}
