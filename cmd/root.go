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
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnsys"
	"github.com/ichinichi/meigen/internal/iofs"
	"github.com/ichinichi/meigen/internal/iologger"
	app "github.com/ichinichi/meigen/pkg"
	"github.com/ichinichi/meigen/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir  string
	opts     []config.Option
	cfg      *config.Config
	closeLog = func() error { return nil }
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "meigen",
		Short:   "meigen keeps the quote corpus of the school newsletter",
		Long: `meigen manages the corpus of sayings by teachers, students and guests
that appear in the "日大一・今日の名言" section of the newsletter.

It parses the corpus file incrementally, remembers which quotes were
already published, picks the next quote without repeats, plans issues
ahead and exports the corpus for audits.

Configuration precedence (highest to lowest):
  1. CLI flags (--corpus, --transcript-file)
  2. Environment variables (MEIGEN_*)
  3. Config file (~/.config/meigen/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (corpus.file → MEIGEN_CORPUS_FILE).

  Examples:
    MEIGEN_CORPUS_FILE            Corpus of numbered quotes
    MEIGEN_SCHEDULE_FREQUENCY     weekly, biweekly or monthly
    MEIGEN_EXPORT_FORMAT          json, yaml or sqlite
    MEIGEN_METRICS_FILE           Prometheus textfile
    MEIGEN_LOG_LEVEL              Log level (debug/info/warn/error)

  See 'go doc github.com/ichinichi/meigen/pkg/config' for complete list.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "meigen version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for meigen")

	rootCmd.PersistentFlags().StringP(
		"corpus", "c", "", "corpus file with numbered quotes",
	)
	rootCmd.PersistentFlags().String(
		"transcript-file", "", "legacy transcript file with quotes without ids",
	)

	rootCmd.AddCommand(
		getParseCmd(),
		getNextCmd(),
		getRandomCmd(),
		getScheduleCmd(),
		getPublishCmd(),
		getWeeklyCmd(),
		getStatsCmd(),
		getExportCmd(),
		getSectionCmd(),
		getReconcileCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// CLI flags have the last word
	cfg.Update(flagOptions(cmd))

	if err = expandPaths(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	_ = closeLog()
	closeLog, err = iologger.Init(cfg, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"corpus", cfg.Corpus.File,
	)

	return nil
}

// expandPaths replaces a leading ~ in user supplied file names.
func expandPaths(cfg *config.Config) error {
	paths := []struct {
		val string
		opt func(string) config.Option
	}{
		{cfg.Corpus.File, config.OptCorpusFile},
		{cfg.Corpus.TranscriptFile, config.OptCorpusTranscriptFile},
		{cfg.Metrics.File, config.OptMetricsFile},
	}

	var res []config.Option
	for _, v := range paths {
		if !strings.HasPrefix(v.val, "~") {
			continue
		}
		path, err := gnsys.ConvertTilda(v.val)
		if err != nil {
			return err
		}
		res = append(res, v.opt(path))
	}
	cfg.Update(res)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("MEIGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Corpus configuration
	v.BindEnv("corpus.file", "MEIGEN_CORPUS_FILE")
	v.BindEnv("corpus.transcript_file", "MEIGEN_CORPUS_TRANSCRIPT_FILE")
	v.BindEnv("corpus.delimiter", "MEIGEN_CORPUS_DELIMITER")

	// Ledger configuration
	v.BindEnv("ledger.file", "MEIGEN_LEDGER_FILE")

	// Schedule configuration
	v.BindEnv("schedule.file", "MEIGEN_SCHEDULE_FILE")
	v.BindEnv("schedule.frequency", "MEIGEN_SCHEDULE_FREQUENCY")
	v.BindEnv("schedule.recent_issues", "MEIGEN_SCHEDULE_RECENT_ISSUES")

	// Export configuration
	v.BindEnv("export.dir", "MEIGEN_EXPORT_DIR")
	v.BindEnv("export.format", "MEIGEN_EXPORT_FORMAT")

	// Metrics configuration
	v.BindEnv("metrics.file", "MEIGEN_METRICS_FILE")

	// Log configuration
	v.BindEnv("log.level", "MEIGEN_LOG_LEVEL")
	v.BindEnv("log.format", "MEIGEN_LOG_FORMAT")
	v.BindEnv("log.destination", "MEIGEN_LOG_DESTINATION")

	v.AutomaticEnv()
}
