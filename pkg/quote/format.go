package quote

import (
	"strings"

	"github.com/gnames/gnuuid"
)

// Featured is the shape of a quote handed to newsletter code. Records
// from the corpus keep their ID, transcript quotes have ID 0.
type Featured struct {
	ID               int    `json:"id,omitempty" yaml:"id,omitempty"`
	Quote            string `json:"quote" yaml:"quote"`
	Teacher          string `json:"teacher" yaml:"teacher"`
	Category         string `json:"category" yaml:"category"`
	Background       string `json:"background" yaml:"background"`
	Scene            string `json:"scene" yaml:"scene"`
	Context          string `json:"context" yaml:"context"`
	EducationalValue string `json:"educational_value" yaml:"educational_value"`
	Date             string `json:"date" yaml:"date"`
}

// NewsletterText is the one-line context used by the newsletter.
func NewsletterText(q Quote) string {
	return q.Scene + "で語られた言葉。" + q.EducationalValue
}

// NewsletterFormat renders the record as the short markdown block used in
// newsletter previews.
func NewsletterFormat(q Quote) string {
	return "**名言**: 「" + q.Quote + "」\n\n" +
		"**誰が**: " + q.SpeakerRole + "\n\n" +
		"**文脈**: " + NewsletterText(q)
}

// Normalize converts a corpus record to Featured. The speaker role takes
// the place of the speaker name.
func Normalize(q Quote) Featured {
	return Featured{
		ID:               q.ID,
		Quote:            q.Quote,
		Teacher:          q.SpeakerRole,
		Category:         q.Category,
		Background:       q.Background,
		Scene:            q.Scene,
		Context:          NewsletterText(q),
		EducationalValue: q.EducationalValue,
		Date:             q.Date,
	}
}

// Fingerprint returns a stable UUIDv5 of the quote text. Surrounding and
// repeated inner whitespace do not change the result.
func Fingerprint(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	return gnuuid.New(text).String()
}
