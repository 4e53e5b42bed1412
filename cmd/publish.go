/*
Copyright © 2025 The meigen Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/ichinichi/meigen/pkg/schedule"
	"github.com/spf13/cobra"
)

// getPublishCmd returns the publish command.
func getPublishCmd() *cobra.Command {
	var (
		issue  int
		byText bool
	)

	publishCmd := &cobra.Command{
		Use:   "publish <quote-id>",
		Short: "Mark a quote as published in a newsletter issue",
		Long: `Mark a quote as published and record it in the publication history.

The issue number defaults to the number of the pending schedule entry of
the quote. Quotes that were never scheduled get the issue of today:
issues are counted from No.1 on 2025-04-03, Sundays excluded. Pending
schedule entries of the quote are flipped to published. Publishing a quote twice keeps the first
publication.

With --text the argument is the quote text instead of its id, which is
useful for quotes taken from the transcript file.

Examples:
  meigen publish 42
  meigen publish 42 --issue 118
  meigen publish --text "宿題は帰ったらすぐ"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPublish(cmd, args[0], issue, byText)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	publishCmd.Flags().IntVarP(&issue, "issue", "n", 0,
		"newsletter issue number (default scheduled issue or issue of today)")
	publishCmd.Flags().BoolVar(&byText, "text", false,
		"the argument is the quote text")

	return publishCmd
}

func runPublish(cmd *cobra.Command, arg string, issue int, byText bool) (err error) {
	var id int
	if !byText {
		if id, err = strconv.Atoi(arg); err != nil {
			return fmt.Errorf("quote id must be a number: %w", err)
		}
	}
	s, err := openSession("publish")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	src, err := s.source()
	if err != nil {
		return err
	}

	var q quote.Quote
	var ok bool
	if byText {
		q, ok = s.corpus.FindByText(arg)
	} else {
		q, ok = s.corpus.Find(id)
	}
	if !ok {
		gn.Warn("<warn>Quote is not in the corpus, nothing to publish</warn>")
		return nil
	}
	if q.Published {
		gn.Warn("Quote <em>%d</em> is already published", q.ID)
		return nil
	}
	if issue <= 0 {
		issue = defaultIssue(s.ledger.Scheduled(), q.ID)
	}

	if byText {
		err = src.Publish(quote.Featured{Quote: arg}, issue)
	} else {
		err = src.MarkPublished(q.ID, issue)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "配信済み: 名言ID %d 第%d号\n", q.ID, issue)
	return nil
}

// defaultIssue returns the number of the first pending entry of the quote,
// or the issue of today.
func defaultIssue(pending []schedule.Entry, quoteID int) int {
	for _, v := range pending {
		if v.QuoteID == quoteID {
			return v.NewsletterNumber
		}
	}
	return newsletter.IssueNumber(newsletter.Today())
}
