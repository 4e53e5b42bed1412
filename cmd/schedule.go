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
	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/ichinichi/meigen/pkg/rotation"
	"github.com/spf13/cobra"
)

// getScheduleCmd returns the schedule command.
func getScheduleCmd() *cobra.Command {
	var date, category string

	scheduleCmd := &cobra.Command{
		Use:   "schedule [quote-id]",
		Short: "Schedule a quote for the next newsletter number",
		Long: `Add a quote to the schedule under the next newsletter number.

Without a quote id the quote is chosen the same way as by 'meigen next'.
The quote is not marked as published, use 'meigen publish' after the
issue goes out.

Examples:
  meigen schedule
  meigen schedule 42
  meigen schedule 42 --date 2025-10-01`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSchedule(cmd, args, date, category)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	scheduleCmd.Flags().StringVarP(&date, "date", "d", "",
		"publish date YYYY-MM-DD (default today)")
	scheduleCmd.Flags().StringVar(&category, "category", "",
		"preferred category when no quote id is given")

	return scheduleCmd
}

func runSchedule(
	cmd *cobra.Command,
	args []string,
	date, category string,
) (err error) {
	var id int
	if len(args) == 1 {
		if id, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("quote id must be a number: %w", err)
		}
	}

	s, err := openSession("schedule")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	var q quote.Quote
	var ok bool
	if id > 0 {
		q, ok = s.corpus.Find(id)
	} else {
		q, ok = rotation.Next(s.corpus.Unpublished(), category)
	}
	if !ok {
		gn.Warn("<warn>No quote to schedule</warn>")
		return nil
	}
	if q.Published {
		gn.Warn("Quote <em>%d</em> is already published, not scheduled", q.ID)
		return nil
	}

	entry, err := s.ledger.ScheduleQuote(q, date)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "スケジュール登録完了: 第%d号 (%s) 名言ID: %d\n",
		entry.NewsletterNumber, entry.PublishDate, entry.QuoteID)
	return nil
}
