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
	"github.com/ichinichi/meigen/pkg/config"
	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/ichinichi/meigen/pkg/schedule"
	"github.com/spf13/cobra"
)

// getWeeklyCmd returns the weekly command.
func getWeeklyCmd() *cobra.Command {
	var (
		weeks     int
		frequency string
		preview   bool
	)

	weeklyCmd := &cobra.Command{
		Use:   "weekly",
		Short: "Plan several issues ahead",
		Long: `Schedule quotes for the next issues, starting today.

Each slot takes the first preferred category that still has an unpublished
quote (smallest id first), otherwise the smallest unpublished id. Quotes
that are already scheduled are skipped, so no quote is planned twice.
Planning stops early when the corpus runs out of quotes.

Examples:
  meigen weekly
  meigen weekly --weeks 8
  meigen weekly -w 3 --frequency monthly --preview`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runWeekly(cmd, weeks, frequency, preview)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	weeklyCmd.Flags().IntVarP(&weeks, "weeks", "w", 4,
		"number of issues to plan")
	weeklyCmd.Flags().StringVarP(&frequency, "frequency", "f", "",
		"weekly, biweekly or monthly (default from config)")
	weeklyCmd.Flags().BoolVarP(&preview, "preview", "p", false,
		"show newsletter preview of every planned quote")

	return weeklyCmd
}

func runWeekly(
	cmd *cobra.Command,
	weeks int,
	frequency string,
	preview bool,
) (err error) {
	if frequency != "" {
		cfg.Update([]config.Option{config.OptScheduleFrequency(frequency)})
	}

	s, err := openSession("weekly")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	entries, err := s.ledger.GenerateWeeklySchedule(weeks)
	if err != nil {
		return err
	}
	if len(entries) < weeks {
		gn.Warn("Only <em>%d</em> of <em>%d</em> issues could be planned",
			len(entries), weeks)
	}

	out := cmd.OutOrStdout()
	for _, v := range entries {
		q, ok := s.corpus.Find(v.QuoteID)
		if !ok {
			continue
		}
		fmt.Fprintf(out, "第%d号 (%s): %s - ID%d\n",
			v.NewsletterNumber, v.PublishDate, q.Category, q.ID)
		if preview {
			date, _ := time.Parse(schedule.DateLayout, v.PublishDate)
			fmt.Fprintf(out, "\n%s\n", newsletter.Content(q, date))
		}
	}
	return nil
}
