package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"graphsniper.dev/pkg/graphsniper/internal/adapter"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "graphsniper"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName   = "output"
	formatFlagName   = "format"
	threadsFlagName  = "threads"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"
	fileFlagName     = "file"
	excludeFlagName  = "exclude"
	includeFlagName  = "include"
	workersFlagName  = "workers"
	timeoutFlagName  = "timeout"
	retriesFlagName  = "retries"
	rateFlagName     = "rate"
	toolsFlagName    = "tools"
	jsDirFlagName    = "js-dir"
	noJSFlagName     = "no-js"
	beautifyFlagName = "beautify"

	outputConfigKey = "output"
	formatConfigKey = "format"

	runThreadsKey = "run.threads"
	runWorkersKey = "run.workers"

	fetchTimeoutKey    = "fetch.timeout"
	fetchRetriesKey    = "fetch.retries"
	fetchRetryDelayKey = "fetch.retry_delay"
	fetchUserAgentKey  = "fetch.user_agent"
	fetchRateKey       = "fetch.rate"
	fetchMaxBytesKey   = "fetch.max_bytes"

	collectToolsKey    = "collect.tools"
	collectPatternsKey = "collect.patterns"
	collectTimeoutKey  = "collect.timeout"

	jsDirKey      = "js.dir"
	jsSaveKey     = "js.save"
	jsBeautifyKey = "js.beautify"

	excludeConfigKey = "paths.exclude"

	defaultOutputDir  = "."
	defaultFormat     = string(adapter.FormatJSON)
	defaultRunThreads = 0
	defaultJSDir      = "js_files"
	defaultJSSave     = true
	defaultJSBeautify = true
	defaultFetchRate  = 0.0

	envPrefix = "GRAPHSNIPER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".graphsniper.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputConfigKey, defaultOutputDir)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(runThreadsKey, defaultRunThreads)
	viper.SetDefault(runWorkersKey, adapter.DefaultFetchWorkers)

	viper.SetDefault(fetchTimeoutKey, adapter.DefaultFetchTimeout)
	viper.SetDefault(fetchRetriesKey, adapter.DefaultFetchAttempts)
	viper.SetDefault(fetchRetryDelayKey, adapter.DefaultFetchRetryDelay)
	viper.SetDefault(fetchUserAgentKey, adapter.DefaultUserAgent)
	viper.SetDefault(fetchRateKey, defaultFetchRate)
	viper.SetDefault(fetchMaxBytesKey, adapter.DefaultMaxBytes)

	viper.SetDefault(collectToolsKey, adapter.DefaultTools)
	viper.SetDefault(collectPatternsKey, adapter.DefaultIncludePatterns)
	viper.SetDefault(collectTimeoutKey, adapter.DefaultCollectTimeout)

	viper.SetDefault(jsDirKey, defaultJSDir)
	viper.SetDefault(jsSaveKey, defaultJSSave)
	viper.SetDefault(jsBeautifyKey, defaultJSBeautify)

	viper.SetDefault(excludeConfigKey, []string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
