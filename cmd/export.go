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
	"github.com/ichinichi/meigen/internal/ioexport"
	"github.com/ichinichi/meigen/pkg/config"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var (
		format      string
		unpublished bool
		quiet       bool
	)

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the corpus for audits",
		Long: `Write every quote with its publication state to a file.

The format follows the file extension (.json, .yaml, .yml, .sqlite, .db).
Without a file name, quotes_export_YYYYMMDD_HHMMSS.<ext> is created in the
export directory (~/.local/share/meigen/exports by default) using the
configured format.

Examples:
  meigen export
  meigen export audit.yaml
  meigen export --format sqlite --unpublished`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			err := runExport(cmd, path, format, unpublished, quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(&format, "format", "f", "",
		"json, yaml or sqlite (default from config)")
	exportCmd.Flags().BoolVarP(&unpublished, "unpublished", "u", false,
		"export only unpublished quotes")
	exportCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"do not show progress")

	return exportCmd
}

func runExport(
	cmd *cobra.Command,
	path, format string,
	unpublished, quiet bool,
) (err error) {
	if format != "" {
		cfg.Update([]config.Option{config.OptExportFormat(format)})
	}

	s, err := openSession("export")
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	qs := s.corpus.Quotes()
	if unpublished {
		qs = s.corpus.Unpublished()
	}

	exp := ioexport.New(cfg, !quiet)
	if path, err = exp.Export(qs, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "データをエクスポートしました: %s (%s件)\n",
		path, humanize.Comma(int64(len(qs))))
	return nil
}
