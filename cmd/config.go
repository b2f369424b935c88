package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "fixpool"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	dotenvFileName   = ".env"

	outputFlagName       = "output"
	verboseFlagName      = "verbose"
	logFileFlagName      = "log-file"
	mineParallelFlagName = "parallel"
	beforeFlagName       = "before"
	afterFlagName        = "after"
	extFlagName          = "ext"
	contextDepthFlagName = "context-depth"
	dedupFlagName        = "dedup"
	appendFlagName       = "append"

	mineParallelConfigKey = "mine.parallel"
	contextDepthConfigKey = "mine.context_depth"
	dedupConfigKey        = "mine.dedup"
	cacheSizeConfigKey    = "mine.cache_size"
	appendConfigKey       = "mine.append"
	extConfigKey          = "mine.extensions"
	journalDirConfigKey   = "mine.journal_dir"

	defaultPoolPath     = ".fixpool/pool.yaml"
	defaultMineParallel = 1
	defaultContextDepth = 3
	defaultDedup        = "global"
	defaultCacheSize    = 256
	defaultAppend       = false

	envPrefix = "FIXPOOL"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".fixpool.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultExtensions = []string{".go"}

var globalLogger *slog.Logger

// configErr holds a config file that exists but could not be read.
var configErr error

// dotenvErr holds a .env file that exists but could not be parsed.
var dotenvErr error

func init() {
	// Values from .env become regular environment variables, so the FIXPOOL_
	// prefix applies to them too.
	dotenvErr = loadDotenv(filepath.Join(configFolderPath, dotenvFileName))

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultPoolPath)
	viper.SetDefault(mineParallelConfigKey, defaultMineParallel)
	viper.SetDefault(contextDepthConfigKey, defaultContextDepth)
	viper.SetDefault(dedupConfigKey, defaultDedup)
	viper.SetDefault(cacheSizeConfigKey, defaultCacheSize)
	viper.SetDefault(appendConfigKey, defaultAppend)
	viper.SetDefault(extConfigKey, defaultExtensions)
	viper.SetDefault(journalDirConfigKey, "")

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		// Reported once the logger is configured.
		configErr = err
	}
}

// loadDotenv loads path into the environment. A missing file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// reportConfigErrors logs config sources that were skipped during init.
func reportConfigErrors() {
	if dotenvErr != nil {
		slog.Warn("ignoring unreadable env file", "file", dotenvFileName, "error", dotenvErr)
	}

	if configErr != nil {
		slog.Warn("ignoring unreadable config", "file", viper.ConfigFileUsed(), "error", configErr)
	}
}

// treeCacheSize returns mine.cache_size. Values the cache cannot hold fall
// back to the default.
func treeCacheSize() int {
	size := viper.GetInt(cacheSizeConfigKey)
	if size <= 0 {
		return defaultCacheSize
	}

	return size
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

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the global slog logger writing to a rotated file.
//
// It logs at log.level, or at Debug when verbose is set.
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
