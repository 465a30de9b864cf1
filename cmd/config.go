package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"lanoma.dev/pkg/lanoma/internal/domain"
	m "lanoma.dev/pkg/lanoma/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "lanoma"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	shelfFlagName     = "shelf"
	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	parallelFlagName  = "parallel"
	commandFlagName   = "command"
	filesFlagName     = "files"
	timeoutFlagName   = "timeout"
	extensionFlagName = "extension"
	forceFlagName     = "force"

	shelfConfigKey          = "shelf"
	compileCommandConfigKey = "compile.command"
	compileThreadsConfigKey = "compile.threads"
	compileTimeoutConfigKey = "compile.timeout"
	compileFilesConfigKey   = "compile.files"
	noteExtensionConfigKey  = "note.extension"

	defaultShelf          = "."
	defaultCompileThreads = 1
	defaultCompileTimeout = 0

	envPrefix = "LANOMA"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".lanoma.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultCompileFiles = []string{"*" + m.DefaultNoteExtension}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config", "file", viper.ConfigFileUsed(), "error", err)
	}
}

func setConfigDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(shelfConfigKey, defaultShelf)
	viper.SetDefault(compileCommandConfigKey, domain.DefaultCommand)
	viper.SetDefault(compileThreadsConfigKey, defaultCompileThreads)
	viper.SetDefault(compileTimeoutConfigKey, defaultCompileTimeout)
	viper.SetDefault(compileFilesConfigKey, defaultCompileFiles)
	viper.SetDefault(noteExtensionConfigKey, m.DefaultNoteExtension)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
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

// shelfRoot returns the configured shelf location.
func shelfRoot() domain.ShelfArgs {
	return domain.ShelfArgs{Shelf: m.Path(viper.GetString(shelfConfigKey))}
}

// saveShelfLocation records root as the shelf location, and persists it when
// a config file exists.
func saveShelfLocation(root m.Path) error {
	viper.Set(shelfConfigKey, root.String())

	configFile := viper.ConfigFileUsed()
	if _, err := os.Stat(configFile); err != nil {
		slog.Debug("No config file to update", "file", configFile)
		return nil
	}

	return viper.WriteConfig()
}
