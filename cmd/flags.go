package cmd

import (
	"github.com/ichinichi/meigen/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command) []config.Option

var flagFuncs = []funcFlag{corpusFlag, transcriptFlag}

// flagOptions converts persistent flags that were set explicitly into
// config options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	for _, f := range flagFuncs {
		res = append(res, f(cmd)...)
	}
	return res
}

func corpusFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("corpus") {
		return nil
	}
	s, _ := cmd.Flags().GetString("corpus")
	return []config.Option{config.OptCorpusFile(s)}
}

func transcriptFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("transcript-file") {
		return nil
	}
	s, _ := cmd.Flags().GetString("transcript-file")
	return []config.Option{config.OptCorpusTranscriptFile(s)}
}
