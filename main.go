package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/sloman-logger/logger"
)

var (
	// Version is injected at build time via -ldflags.
	Version = "DEV"
	// BuildDate is injected at build time via -ldflags.
	BuildDate = ""
)

const (
	appName  = "sloman-logger"
	appShort = "sloman-logger shows every level of the logger package on the console"
	appLong  = `Logs one line per level, an error with its traceback, a custom NOTICE level
	and a record routed through the hclog bridge.

	Defaults come from SLOMAN_LOG_LEVEL and SLOMAN_OUTPUT_FILE; flags override them.`

	logLevelFlagName        = "log-level"
	logLevelShortFlagName   = "v"
	outputFileFlagName      = "output-file"
	outputFileShortFlagName = "o"

	versionCmdName = "version"
	versionShort   = "Display the " + appName + " version"

	// noticeLevel sits between INFO and WARNING.
	noticeLevel logger.Level = 25
)

var (
	allLoggerLevels = []string{"TRACE", "DEBUG", "VERBOSE", "INFO", "WARNING", "ERROR", "CRITICAL"}
	logLevelUsage   = "set the logging level (possible values: " + strings.Join(allLoggerLevels, ", ") + ")"
	outputFileUsage = "mirror the log to this file, truncating it first"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel   string
	outputFile string
}

// addFlags registers the persistent CLI flags on cmd, defaulting to config.
func (f *rootFlags) addFlags(cmd *cobra.Command, config *envConfig) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, logLevelFlagName, logLevelShortFlagName, config.LogLevel, logLevelUsage)
	flags.StringVarP(&f.outputFile, outputFileFlagName, outputFileShortFlagName, config.OutputFile, outputFileUsage)
}

func main() {
	config, err := loadEnvConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	exitCode := 0
	if err := rootCmd(config).Execute(); err != nil {
		exitCode = 1
	}
	os.Exit(exitCode)
}

// rootCmd constructs the root Cobra command with shared configuration.
func rootCmd(config *envConfig) *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),
		Long:  heredoc.Doc(appLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(flag.logLevel)
			if err != nil {
				cmd.PrintErrln(err)
				return err
			}
			log, err := logger.Get(appName, logger.Config{Level: level, OutputFile: flag.outputFile})
			if err != nil {
				cmd.PrintErrln(err)
				return err
			}
			defer log.Close()

			return runDemo(log)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd, config)
	cmd.AddCommand(versionCmd())

	return cmd
}

// runDemo logs one record per level through log.
func runDemo(log *logger.Logger) error {
	if log.Level() > logger.InfoLevel {
		fmt.Fprintf(os.Stderr, "threshold is %s, some records below will be dropped\n", log.Level())
	}

	log.Trace("trace is the most detailed level")
	log.Debug("debug is on")
	log.Verbose("verbose sits between %s and %s", logger.DebugLevel, logger.InfoLevel)
	log.Info("hello %s", "world")
	log.Warning("be careful")
	log.Error("oops: %v", "something happened")
	log.Exception(fmt.Errorf("write config: %w", os.ErrPermission), "could not save settings")
	log.Critical("critical error: %v", "system failure")

	if err := logger.RegisterLevel("NOTICE", noticeLevel); err != nil && !errors.Is(err, logger.ErrDuplicateLevel) {
		return err
	}
	if notice, ok := log.Method("notice"); ok {
		notice("custom levels use the %s colour", logger.DebugLevel)
	}

	log.Hclog().Named("bridge").Info("routed through hclog", "status", 200, "path", "/api/users")
	return nil
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
