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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/config"
	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/spf13/cobra"
)

// getParseCmd returns the parse command.
func getParseCmd() *cobra.Command {
	var all, sample bool

	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse new quotes from the corpus",
		Long: `Parse the corpus file and update the ledger.

Only quotes with ids above the last processed id are reported as new.
Use --all to report every quote of the corpus again. Publication state
is kept in both cases.

Examples:
  meigen parse
  meigen parse --all
  meigen parse -c meigen_db_20250916.txt --sample`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runParse(cmd, all, sample)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	parseCmd.Flags().BoolVarP(&all, "all", "a", false,
		"process all quotes, not only new ones")
	parseCmd.Flags().BoolVarP(&sample, "sample", "s", false,
		"show the first unpublished quote in newsletter format")

	return parseCmd
}

func runParse(cmd *cobra.Command, all, sample bool) (err error) {
	if all {
		cfg.Update([]config.Option{config.OptProcessAll(true)})
	}

	s, err := openSession("parse")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	unpublished := s.corpus.Unpublished()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "新規名言数: %s\n", humanize.Comma(int64(len(s.parsed))))
	fmt.Fprintf(out, "未掲載名言数: %s\n", humanize.Comma(int64(len(unpublished))))

	if sample && len(unpublished) > 0 {
		fmt.Fprintf(out, "\n=== メルマガ形式サンプル ===\n%s\n",
			quote.NewsletterFormat(unpublished[0]))
	}

	gn.Info("Ledger updated at <em>%s</em>", cfg.LedgerPath())
	return nil
}
