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
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getStatsCmd returns the stats command.
func getStatsCmd() *cobra.Command {
	var asJSON bool

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show corpus and schedule statistics",
		Long: `Show how many quotes are published, what is left per category and
which newsletter number comes next.

Examples:
  meigen stats
  meigen stats --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStats(cmd, asJSON)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	statsCmd.Flags().BoolVarP(&asJSON, "json", "j", false,
		"print statistics as JSON")

	return statsCmd
}

func runStats(cmd *cobra.Command, asJSON bool) (err error) {
	s, err := openSession("stats")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	st := s.ledger.Statistics()
	out := cmd.OutOrStdout()

	if asJSON {
		enc := gnfmt.GNjson{Pretty: true}
		var data []byte
		if data, err = enc.Encode(st); err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, "【統計情報】")
	fmt.Fprintf(out, "総名言数: %s\n", humanize.Comma(int64(st.TotalQuotes)))
	fmt.Fprintf(out, "配信済み: %s\n", humanize.Comma(int64(st.PublishedCount)))
	fmt.Fprintf(out, "未配信: %s\n", humanize.Comma(int64(st.UnpublishedCount)))
	fmt.Fprintf(out, "次回配信号数: %d\n", st.NextNewsletterNumber)
	if upd := s.corpus.State().LastUpdate; upd != nil {
		fmt.Fprintf(out, "最終更新: %s\n", humanize.Time(*upd))
	}

	if len(st.Categories) == 0 {
		return nil
	}
	fmt.Fprintln(out, "\n【カテゴリ別】")
	cats := make([]string, 0, len(st.Categories))
	for k := range st.Categories {
		cats = append(cats, k)
	}
	slices.Sort(cats)
	for _, k := range cats {
		v := st.Categories[k]
		fmt.Fprintf(out, "%s: %d / %d\n", k, v.Published, v.Total)
	}
	return nil
}
