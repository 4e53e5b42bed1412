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

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/ichinichi/meigen/pkg/rotation"
	"github.com/spf13/cobra"
)

// getNextCmd returns the next command.
func getNextCmd() *cobra.Command {
	var category string

	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Show the quote that rotation picks next",
		Long: `Show the next unpublished quote without changing any state.

The choice is deterministic: quotes of the requested category come first
(high priority, then the smallest id), otherwise the high priority quote
with the smallest id, otherwise the smallest id.

Examples:
  meigen next
  meigen next --category 習慣形成`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runNext(cmd, category)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	nextCmd.Flags().StringVar(&category, "category", "",
		"preferred category")

	return nextCmd
}

func runNext(cmd *cobra.Command, category string) (err error) {
	s, err := openSession("next")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	q, ok := rotation.Next(s.corpus.Unpublished(), category)
	if !ok {
		gn.Warn("<warn>All quotes are published</warn>")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "名言ID: %d\nカテゴリ: %s\n優先度: %s\n\n",
		q.ID, q.Category, q.Priority)
	fmt.Fprint(out, newsletter.Content(q, newsletter.Today()))
	return nil
}
