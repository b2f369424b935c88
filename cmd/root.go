// Package cmd provides the root command and CLI setup for fixpool.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fixpool.dev/pkg/fixpool/internal/adapter"
	"fixpool.dev/pkg/fixpool/internal/controller"
	"fixpool.dev/pkg/fixpool/internal/domain"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var treeParser adapter.TreeParser
var differ adapter.Differ
var converter adapter.Converter
var poolStore adapter.PoolStore
var workflow domain.Workflow
var ui controller.UI

// outputFlag is a root-level flag naming the pool file shared by mine and view.
var outputFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		reportConfigErrors()
	}

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()

	cached, err := adapter.NewCachingTreeParser(adapter.NewGoTreeAdapter(), treeCacheSize())
	cobra.CheckErr(err)

	treeParser = cached
	differ = adapter.NewSequenceDiffer()
	converter = adapter.NewEditConverter()
	poolStore = adapter.NewFilePoolStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		treeParser,
		differ,
		converter,
		poolStore,
		ui,
	)
}

const pathPatternsHelp = `Pairs are found by name: X_old.go is the buggy side of X_new.go.
Supports Go-style path patterns:
  - ./...             recursively scan current directory
  - ./dataset/...     recursively scan dataset directory
  - ./a ./b           scan multiple directories
Use --before and --after to pair two directory trees by relative path instead.`

const rootLongDescription = `Fixpool mines fix templates from pairs of buggy and fixed source files.
Each structural edit is stored in a change pool under its structural context,
together with its reverse and operator variants, so repair tools can draw
candidate fixes from it.

` + pathPatternsHelp

const mineLongDescription = `Mine file pairs into the change pool (default: ./...).

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixpool",
		Short: "Fix template mining tool",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"change pool file (.yaml or .db)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
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
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
