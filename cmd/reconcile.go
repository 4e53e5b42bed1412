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
	"github.com/spf13/cobra"
)

// getReconcileCmd returns the reconcile command.
func getReconcileCmd() *cobra.Command {
	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair disagreement between the ledger and the schedule",
		Long: `Compare published quotes of the ledger with the publication history of
the schedule and fix both sides.

A crash between updating the ledger and the schedule leaves a quote
published in one of them only. Running reconcile again changes nothing.

Examples:
  meigen reconcile`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReconcile(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return reconcileCmd
}

func runReconcile(cmd *cobra.Command) (err error) {
	s, err := openSession("reconcile")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	rep, err := s.ledger.Reconcile()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rep.Empty() {
		fmt.Fprintln(out, "ledger and schedule agree")
		return nil
	}
	fmt.Fprintf(out, "marked published in ledger: %v\n", rep.MarkedInCorpus)
	fmt.Fprintf(out, "added to publication history: %v\n", rep.AddedToHistory)
	fmt.Fprintf(out, "closed scheduled entries: %v\n", rep.ClosedEntries)
	return nil
}
