package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"graphsniper.dev/pkg/graphsniper/internal/adapter"
	"graphsniper.dev/pkg/graphsniper/internal/domain"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <domain>",
		Short: "Collect, download and extract GraphQL operations for a domain",
		Long: `Collect the JavaScript URLs known for a domain with waybackurls, gau and
katana, download them, keep readable copies and extract every named GraphQL
query and mutation together with the endpoint they are sent to.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindScanFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0])
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

// configureScanFlags declares the scan tuning flags. The root command and
// scan both carry them, so they are bound to the configuration only once the
// executing command is known. Defaults shown are the built-in ones, the
// configuration file and environment still apply.
func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().IntP(workersFlagName, "w", adapter.DefaultFetchWorkers, "concurrent downloads")
	cmd.Flags().Duration(timeoutFlagName, adapter.DefaultFetchTimeout, "timeout of a single download")
	cmd.Flags().Int(retriesFlagName, adapter.DefaultFetchAttempts, "download attempts per URL")
	cmd.Flags().Float64(rateFlagName, defaultFetchRate, "maximum downloads per second (0 for no limit)")
	cmd.Flags().StringSlice(toolsFlagName, adapter.DefaultTools, "URL collectors to run, in order")
	cmd.Flags().String(jsDirFlagName, defaultJSDir, "directory for readable copies of the downloaded scripts")
	cmd.Flags().Bool(noJSFlagName, false, "do not keep copies of the downloaded scripts")
	cmd.Flags().Bool(beautifyFlagName, defaultJSBeautify, "reformat saved scripts")
}

func bindScanFlags(cmd *cobra.Command) {
	for flag, key := range map[string]string{
		workersFlagName:  runWorkersKey,
		timeoutFlagName:  fetchTimeoutKey,
		retriesFlagName:  fetchRetriesKey,
		rateFlagName:     fetchRateKey,
		toolsFlagName:    collectToolsKey,
		jsDirFlagName:    jsDirKey,
		beautifyFlagName: jsBeautifyKey,
	} {
		bindFlagToConfig(cmd.Flags().Lookup(flag), key)
	}
}

func runScan(cmd *cobra.Command, target string) error {
	format, err := resultFormat()
	if err != nil {
		return err
	}

	noJS, err := cmd.Flags().GetBool(noJSFlagName)
	if err != nil {
		return err
	}

	wf, err := currentWorkflow(cmd)
	if err != nil {
		return err
	}

	return wf.Scan(cmd.Context(), domain.ScanArgs{
		Target: target,
		Output: m.Path(viper.GetString(outputConfigKey)),
		Format: format,
		JSDir:  m.Path(viper.GetString(jsDirKey)),
		SaveJS: viper.GetBool(jsSaveKey) && !noJS,
	})
}
