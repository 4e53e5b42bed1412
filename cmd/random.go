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
	"github.com/spf13/cobra"
)

// getRandomCmd returns the random command.
func getRandomCmd() *cobra.Command {
	var (
		category   string
		transcript bool
	)

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Show a random quote in the newsletter section format",
		Long: `Pick a random unpublished quote and render the newsletter section.

Without --category, categories of recently published issues are avoided
while other categories have quotes left. With --transcript the quote
comes from the legacy transcript file, which is not tracked.

Nothing is marked as published.

Examples:
  meigen random
  meigen random --category コミュニケーション
  meigen random --transcript`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRandom(cmd, category, transcript)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	randomCmd.Flags().StringVar(&category, "category", "",
		"pick from this category only")
	randomCmd.Flags().BoolVarP(&transcript, "transcript", "t", false,
		"pick from the legacy transcript file")

	return randomCmd
}

func runRandom(cmd *cobra.Command, category string, transcript bool) (err error) {
	s, err := openSession("random")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	src, err := s.source()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	q, ok := src.RandomQuote(category, !transcript)
	if !ok {
		gn.Warn("<warn>No quote is available</warn>")
		fmt.Fprintln(out, newsletter.QuoteSection(nil, nil))
		return nil
	}
	fmt.Fprintln(out, newsletter.QuoteSection(&q, nil))
	return nil
}
