// Package cmd provides the root command and CLI setup for graphsniper.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"graphsniper.dev/pkg/graphsniper/internal/adapter"
	"graphsniper.dev/pkg/graphsniper/internal/controller"
	"graphsniper.dev/pkg/graphsniper/internal/domain"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// workflow overrides the workflow built from the configuration. Tests set it.
var workflow domain.Workflow

var outputFlag string
var formatFlag string
var threadsFlag int
var verboseFlag bool
var logFileFlag string

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./static/...   recursively scan the static directory
  - ./a.js ./dist  scan files and directories`

const rootLongDescription = `graphsniper recovers the GraphQL operations and the GraphQL endpoint of a
web application from its JavaScript. Given a domain it collects the script
URLs known for it, downloads them and writes every named query and mutation,
with its variables, to <output>/<domain>_graphql_schema.json.`

const extractLongDescription = `Extract GraphQL operations from local JavaScript files.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "graphsniper [domain]",
		Short:        "GraphQL operation finder",
		Long:         rootLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindScanFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return runScan(cmd, args[0])
		},
	}

	configureRootFlags(cmd)
	configureScanFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputFlag, outputFlagName, "o",
			defaultOutputDir,
			"output directory for scan results",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputConfigKey)

	cmd.PersistentFlags().StringVar(&formatFlag, formatFlagName, defaultFormat, "result format: json or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().IntVarP(&threadsFlag, threadsFlagName, "t", defaultRunThreads, "files scanned in parallel (0 uses every CPU)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(threadsFlagName), runThreadsKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// currentWorkflow returns the test override or a workflow built from the
// configuration seen by cmd.
func currentWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	return newWorkflow(cmd)
}

func newWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	collector, err := adapter.NewToolCollector(
		adapter.ExecRunner{},
		viper.GetStringSlice(collectToolsKey),
		viper.GetStringSlice(collectPatternsKey),
		viper.GetDuration(collectTimeoutKey),
	)
	if err != nil {
		return nil, fmt.Errorf("configure collectors: %w", err)
	}

	fetcher := adapter.NewHTTPFetcher(nil, adapter.FetchOptions{
		Workers:    viper.GetInt(runWorkersKey),
		Timeout:    viper.GetDuration(fetchTimeoutKey),
		Attempts:   viper.GetInt(fetchRetriesKey),
		RetryDelay: viper.GetDuration(fetchRetryDelayKey),
		UserAgent:  viper.GetString(fetchUserAgentKey),
		Rate:       viper.GetFloat64(fetchRateKey),
		MaxBytes:   viper.GetInt64(fetchMaxBytesKey),
	})

	var beautifier adapter.Beautifier = adapter.PlainBeautifier{}
	if viper.GetBool(jsBeautifyKey) {
		beautifier = adapter.NewEsbuildBeautifier()
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewResultStore(fsAdapter),
		collector,
		fetcher,
		adapter.NewLocalJSStore(fsAdapter, beautifier),
		ui,
		domain.NewExtractor(viper.GetInt(runThreadsKey)),
	), nil
}

func resultFormat() (adapter.Format, error) {
	return adapter.ParseFormat(viper.GetString(formatConfigKey))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
