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
	"time"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/ichinichi/meigen/pkg/schedule"
	"github.com/spf13/cobra"
)

// getSectionCmd returns the section command.
func getSectionCmd() *cobra.Command {
	var (
		category   string
		date       string
		transcript bool
		publish    bool
	)

	sectionCmd := &cobra.Command{
		Use:   "section",
		Short: "Render the quote section of a newsletter issue",
		Long: `Render the "5. 日大一・今日の名言" section for an issue.

The header shows the issue number, the date and the theme of the day.
When no quote is available the placeholder section is printed. With
--publish the chosen quote is marked as published in the issue.

Examples:
  meigen section
  meigen section --date 2025-05-24 --publish
  meigen section --transcript`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSection(cmd, category, date, transcript, publish)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	sectionCmd.Flags().StringVar(&category, "category", "",
		"pick from this category only")
	sectionCmd.Flags().StringVarP(&date, "date", "d", "",
		"issue date YYYY-MM-DD (default today)")
	sectionCmd.Flags().BoolVarP(&transcript, "transcript", "t", false,
		"pick from the legacy transcript file")
	sectionCmd.Flags().BoolVarP(&publish, "publish", "p", false,
		"mark the quote as published in the issue")

	return sectionCmd
}

func runSection(
	cmd *cobra.Command,
	category, date string,
	transcript, publish bool,
) (err error) {
	day := newsletter.Today()
	if date != "" {
		if day, err = time.ParseInLocation(schedule.DateLayout, date, newsletter.JST); err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
	}
	issue := newsletter.IssueNumber(day)

	s, err := openSession("section")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	src, err := s.source()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "『一日一知』 No.%d %s", issue, newsletter.FormatDate(day))
	if theme := newsletter.WeekdayTheme(day); theme != "" {
		fmt.Fprintf(out, " %s", theme)
	}
	fmt.Fprint(out, "\n\n")

	q, ok := src.RandomQuote(category, !transcript)
	if !ok {
		gn.Warn("<warn>No quote is available</warn>")
		fmt.Fprintln(out, newsletter.QuoteSection(nil, nil))
		return nil
	}
	fmt.Fprintln(out, newsletter.QuoteSection(&q, nil))

	if publish {
		if err = src.Publish(q, issue); err != nil {
			return err
		}
		gn.Info("Quote is marked as published in issue <em>%d</em>", issue)
	}
	return nil
}
