package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fixpool.dev/pkg/fixpool/internal/domain"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

const defaultMineRoot = "./..."

var mineParallelFlag int
var mineBeforeFlag string
var mineAfterFlag string
var mineExtFlag []string
var mineContextDepthFlag int
var mineDedupFlag string
var mineAppendFlag bool

// mineCmd represents the mine command.
var mineCmd = newMineCmd()

func newMineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine [roots...]",
		Short: "Mine buggy/fixed file pairs into a change pool",
		Long:  mineLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Mine(cmd.Context(), buildMineArgs(args))
		},
	}

	configureMineFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func configureMineFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&mineParallelFlag, mineParallelFlagName, "p", viper.GetInt(mineParallelConfigKey), "number of parallel workers preparing pairs")
	bindFlagToConfig(cmd.Flags().Lookup(mineParallelFlagName), mineParallelConfigKey)

	cmd.Flags().IntVar(&mineContextDepthFlag, contextDepthFlagName, viper.GetInt(contextDepthConfigKey), "number of ancestor types forming a context")
	bindFlagToConfig(cmd.Flags().Lookup(contextDepthFlagName), contextDepthConfigKey)

	cmd.Flags().StringVar(&mineDedupFlag, dedupFlagName, viper.GetString(dedupConfigKey), "dedup policy: global or context")
	bindFlagToConfig(cmd.Flags().Lookup(dedupFlagName), dedupConfigKey)

	cmd.Flags().BoolVar(&mineAppendFlag, appendFlagName, viper.GetBool(appendConfigKey), "add to the existing pool instead of replacing it")
	bindFlagToConfig(cmd.Flags().Lookup(appendFlagName), appendConfigKey)

	cmd.Flags().StringSliceVar(&mineExtFlag, extFlagName, viper.GetStringSlice(extConfigKey), "file extensions to pair (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(extFlagName), extConfigKey)

	cmd.Flags().StringVar(&mineBeforeFlag, beforeFlagName, "", "directory holding the buggy files")
	cmd.Flags().StringVar(&mineAfterFlag, afterFlagName, "", "directory holding the fixed files")
	cmd.MarkFlagsRequiredTogether(beforeFlagName, afterFlagName)
}

func buildMineArgs(args []string) domain.MineArgs {
	mineArgs := domain.MineArgs{
		Before:       m.Path(mineBeforeFlag),
		After:        m.Path(mineAfterFlag),
		Extensions:   viper.GetStringSlice(extConfigKey),
		Output:       m.Path(viper.GetString(outputFlagName)),
		Append:       viper.GetBool(appendConfigKey),
		Threads:      viper.GetInt(mineParallelConfigKey),
		ContextDepth: viper.GetInt(contextDepthConfigKey),
		Dedup:        viper.GetString(dedupConfigKey),
		JournalDir:   viper.GetString(journalDirConfigKey),
	}

	if mineArgs.Before != "" {
		return mineArgs
	}

	mineArgs.Roots = parsePaths(args)
	if len(mineArgs.Roots) == 0 {
		mineArgs.Roots = []m.Path{defaultMineRoot}
	}

	return mineArgs
}
